package batch

import (
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"smd-steady/smd/derr"
)

const (
	KindFormat  = "format"
	KindLookup  = "lookup"
	KindIO      = "io"
	KindTimeout = "timeout"
	KindOther   = "other"
)

type (
	FileResult struct {
		Input    string
		Output   string
		Frames   int
		Bones    int
		Duration time.Duration
		Err      error
	}
	Report struct {
		RunID     string
		InputDir  string
		OutputDir string
		Started   time.Time
		Duration  time.Duration
		Results   []FileResult
	}

	fileResultView struct {
		Input      string  `json:"input" yaml:"input"`
		Output     string  `json:"output" yaml:"output"`
		Frames     int     `json:"frames" yaml:"frames"`
		Bones      int     `json:"bones" yaml:"bones"`
		DurationMs float64 `json:"duration_ms" yaml:"duration_ms"`
		Kind       string  `json:"kind,omitempty" yaml:"kind,omitempty"`
		Error      string  `json:"error,omitempty" yaml:"error,omitempty"`
	}
	reportView struct {
		RunID      string           `json:"run_id" yaml:"run_id"`
		InputDir   string           `json:"input_dir" yaml:"input_dir"`
		OutputDir  string           `json:"output_dir" yaml:"output_dir"`
		Started    string           `json:"started" yaml:"started"`
		DurationMs float64          `json:"duration_ms" yaml:"duration_ms"`
		Converted  int              `json:"converted" yaml:"converted"`
		Failed     int              `json:"failed" yaml:"failed"`
		Results    []fileResultView `json:"results" yaml:"results"`
	}
)

// Kind classifies err as one of the Kind* constants. A nil error has no kind.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, context.DeadlineExceeded):
		return KindTimeout
	case derr.IsFormatError(err):
		return KindFormat
	case derr.IsLookupError(err):
		return KindLookup
	case derr.IsIOError(err):
		return KindIO
	default:
		return KindOther
	}
}

func (r FileResult) OK() bool {
	return r.Err == nil
}

func (r *Report) Failed() []FileResult {
	return lo.Reject(r.Results, func(result FileResult, _ int) bool { return result.OK() })
}

func (r *Report) Succeeded() []FileResult {
	return lo.Filter(r.Results, func(result FileResult, _ int) bool { return result.OK() })
}

// CountByKind counts failures per error kind.
func (r *Report) CountByKind() map[string]int {
	return lo.CountValuesBy(r.Failed(), func(result FileResult) string { return Kind(result.Err) })
}

func milliseconds(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

func (r *Report) view() reportView {
	return reportView{
		RunID:      r.RunID,
		InputDir:   r.InputDir,
		OutputDir:  r.OutputDir,
		Started:    r.Started.Format(time.RFC3339),
		DurationMs: milliseconds(r.Duration),
		Converted:  len(r.Succeeded()),
		Failed:     len(r.Failed()),
		Results: lo.Map(
			r.Results,
			func(result FileResult, _ int) fileResultView {
				view := fileResultView{
					Input:      result.Input,
					Output:     result.Output,
					Frames:     result.Frames,
					Bones:      result.Bones,
					DurationMs: milliseconds(result.Duration),
					Kind:       Kind(result.Err),
				}
				if result.Err != nil {
					view.Error = result.Err.Error()
				}
				return view
			},
		),
	}
}

// Marshal renders the report as YAML when format is "yaml" or "yml" and as
// indented JSON otherwise.
func (r *Report) Marshal(format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case "yaml", "yml":
		bs, err := yaml.Marshal(r.view())
		return bs, errors.Wrap(err, "Marshal error")
	default:
		bs, err := json.MarshalIndent(r.view(), "", "  ")
		return bs, errors.Wrap(err, "Marshal error")
	}
}

// WriteFile picks the format from the extension of path.
func (r *Report) WriteFile(path string) error {
	bs, err := r.Marshal(strings.TrimPrefix(filepath.Ext(path), "."))
	if err != nil {
		return err
	}
	return WriteFileAtomic(path, bs)
}
