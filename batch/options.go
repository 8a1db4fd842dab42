package batch

import (
	"time"

	"smd-steady/logger"
	"smd-steady/metrics"
	"smd-steady/smd"
	"smd-steady/smd/dframe"
	"smd-steady/stabilize"
)

// Options fully parameterizes one conversion run. The zero value converts
// without filtering, stabilization or scaling.
type Options struct {
	// Ignore leaves matching bones out of the written frames.
	Ignore dframe.Ignorer
	// BaseBones are stabilized in listed order. Empty skips stabilization.
	BaseBones []string
	// Channels to freeze on base bones. Empty means translation channels.
	Channels []int
	// Strict fails a file when a base bone is missing from a later frame.
	Strict bool
	// Scale multiplies every written channel; nil means smd.DefaultScale so
	// that 0 stays a usable factor.
	Scale *float64
	// ChannelCount is the expected number of values per bone sample; 0 means 6
	// and dframe.AnyChannelCount accepts any.
	ChannelCount int
	Validate     bool

	// Extension selects input files, case-sensitively. Empty means ".smd".
	Extension string
	Workers   int
	// Timeout bounds each file; 0 disables it.
	Timeout  time.Duration
	FailFast bool

	Logger  logger.Logger
	Metrics *metrics.Recorder
}

func DefaultOptions() Options {
	return Options{
		Extension: smd.DefaultExtension,
		Workers:   1,
	}
}

// ScaleFactor resolves Scale against smd.DefaultScale.
func (r Options) ScaleFactor() float64 {
	if r.Scale == nil {
		return smd.DefaultScale
	}
	return *r.Scale
}

func (r Options) extension() string {
	if r.Extension == "" {
		return smd.DefaultExtension
	}
	return r.Extension
}

func (r Options) workers() int {
	if r.Workers < 1 {
		return 1
	}
	return r.Workers
}

func (r Options) logger() logger.Logger {
	if r.Logger == nil {
		return logger.Nop()
	}
	return r.Logger
}

func (r Options) DecodeOptions() smd.DecodeOptions {
	return smd.DecodeOptions{
		Ignore:   r.Ignore,
		Channels: r.ChannelCount,
		Validate: r.Validate,
	}
}

// StabilizeOptions translates the stabilization fields, reporting skipped
// frames to onSkip when it is not nil.
func (r Options) StabilizeOptions(onSkip stabilize.SkipHook) []stabilize.Option {
	return []stabilize.Option{
		stabilize.WithChannels(r.Channels),
		stabilize.WithStrict(r.Strict),
		stabilize.WithSkipHook(onSkip),
	}
}
