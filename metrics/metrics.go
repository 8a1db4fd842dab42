// Package metrics records counters and timings of conversion runs on a private
// Prometheus registry, which can be dumped as a node-exporter textfile.
package metrics

import (
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const defaultNamespace = "smd"

type (
	Option func(*Recorder)

	// Recorder is safe for concurrent use. A nil *Recorder records nothing.
	Recorder struct {
		namespace string
		buckets   []float64
		registry  *prometheus.Registry

		filesConverted  prometheus.Counter
		filesFailed     *prometheus.CounterVec
		framesProcessed prometheus.Counter
		duration        prometheus.Histogram
	}
)

func WithNamespace(namespace string) Option {
	return func(r *Recorder) {
		if namespace != "" {
			r.namespace = namespace
		}
	}
}

func WithHistogramBuckets(buckets []float64) Option {
	return func(r *Recorder) {
		if len(buckets) > 0 {
			r.buckets = buckets
		}
	}
}

func NewRecorder(opts ...Option) *Recorder {
	r := &Recorder{
		namespace: defaultNamespace,
		buckets:   prometheus.DefBuckets,
		registry:  prometheus.NewRegistry(),
	}
	for _, opt := range opts {
		opt(r)
	}

	auto := promauto.With(r.registry)
	r.filesConverted = auto.NewCounter(prometheus.CounterOpts{
		Namespace: r.namespace,
		Name:      "files_converted_total",
		Help:      "Number of files converted successfully",
	})
	r.filesFailed = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: r.namespace,
		Name:      "files_failed_total",
		Help:      "Number of files that failed to convert, by error kind",
	}, []string{"kind"})
	r.framesProcessed = auto.NewCounter(prometheus.CounterOpts{
		Namespace: r.namespace,
		Name:      "frames_processed_total",
		Help:      "Number of animation frames written",
	})
	r.duration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: r.namespace,
		Name:      "conversion_duration_seconds",
		Help:      "Time spent converting one file",
		Buckets:   r.buckets,
	})
	return r
}

func (r *Recorder) Registry() *prometheus.Registry {
	if r == nil {
		return nil
	}
	return r.registry
}

func (r *Recorder) ObserveConverted(frames int, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.filesConverted.Inc()
	r.framesProcessed.Add(float64(frames))
	r.duration.Observe(elapsed.Seconds())
}

func (r *Recorder) ObserveFailed(kind string, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.filesFailed.WithLabelValues(kind).Inc()
	r.duration.Observe(elapsed.Seconds())
}

// WriteTextfile dumps every metric in the text exposition format, replacing
// path atomically.
func (r *Recorder) WriteTextfile(path string) error {
	if r == nil {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return errors.Wrapf(err, "WriteTextfile error: %s", path)
	}
	return nil
}
