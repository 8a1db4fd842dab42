// Package config holds the parameters of a conversion run. Values are layered
// from defaults, an optional YAML file, SMD_ environment variables and explicit
// overrides, then bone lists not set by any layer are filled from the preset.
package config

import (
	"math"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"smd-steady/batch"
	"smd-steady/logger"
	"smd-steady/smd"
	"smd-steady/smd/dframe"
)

const (
	KeyLogLevel     = "log_level"
	KeyPreset       = "preset"
	KeyExtension    = "extension"
	KeyScale        = "scale"
	KeyChannels     = "channels"
	KeyBaseBones    = "base_bones"
	KeyIgnore       = "ignore"
	KeyIgnoreExpr   = "ignore_expr"
	KeyChannelCount = "channel_count"
	KeyStrict       = "strict"
	KeyValidate     = "validate"
	KeyWorkers      = "workers"
	KeyTimeout      = "timeout"
	KeyFailFast     = "fail_fast"
	KeyMetricsFile  = "metrics_file"
	KeyReportFile   = "report_file"

	DefaultPreset = PresetValveBiped
)

type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`
	// Preset fills ignore, base_bones and channels when they are not set.
	Preset    string `koanf:"preset"`
	Extension string `koanf:"extension"`
	// Scale multiplies every channel on output.
	Scale      float64  `koanf:"scale"`
	Channels   []int    `koanf:"channels"`
	BaseBones  []string `koanf:"base_bones"`
	Ignore     []string `koanf:"ignore"`
	IgnoreExpr string   `koanf:"ignore_expr"`
	// ChannelCount is the expected number of values per sample; 0 means 6,
	// -1 accepts any count.
	ChannelCount int  `koanf:"channel_count"`
	Strict       bool `koanf:"strict"`
	// ValidateHierarchy rejects dangling parents and cyclic node tables.
	ValidateHierarchy bool          `koanf:"validate"`
	Workers           int           `koanf:"workers"`
	Timeout           time.Duration `koanf:"timeout"`
	FailFast          bool          `koanf:"fail_fast"`
	MetricsFile       string        `koanf:"metrics_file"`
	ReportFile        string        `koanf:"report_file"`
}

// New returns the defaults with the default preset applied.
func New() *Config {
	c := &Config{
		LogLevel:  "info",
		Preset:    DefaultPreset,
		Extension: smd.DefaultExtension,
		Scale:     smd.DefaultScale,
		Workers:   1,
	}
	_ = c.applyPreset(nil)
	return c
}

// applyPreset copies the preset's lists into every field whose key is not in explicit.
func (c *Config) applyPreset(explicit map[string]bool) error {
	preset, ok := LookupPreset(c.Preset)
	if !ok {
		return errors.Wrapf(
			ErrInvalidConfig,
			"unknown preset %q, expected one of %s",
			c.Preset,
			strings.Join(PresetNames(), ", "),
		)
	}
	if !explicit[KeyIgnore] {
		c.Ignore = preset.Ignore
	}
	if !explicit[KeyBaseBones] {
		c.BaseBones = preset.BaseBones
	}
	if !explicit[KeyChannels] {
		c.Channels = preset.Channels
	}
	return nil
}

func (c *Config) Validate() error {
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(ErrInvalidConfig, err.Error())
	}
	if !strings.HasPrefix(c.Extension, ".") || len(c.Extension) < 2 {
		return errors.Wrapf(ErrInvalidConfig, "extension %q must start with a dot", c.Extension)
	}
	if math.IsNaN(c.Scale) || math.IsInf(c.Scale, 0) {
		return errors.Wrapf(ErrInvalidConfig, "scale %v must be finite", c.Scale)
	}
	if channel, found := lo.Find(c.Channels, func(channel int) bool { return channel < 0 }); found {
		return errors.Wrapf(ErrInvalidConfig, "channel %d must not be negative", channel)
	}
	if c.ChannelCount < dframe.AnyChannelCount {
		return errors.Wrapf(ErrInvalidConfig, "channel_count %d must be -1 or more", c.ChannelCount)
	}
	if c.Workers < 1 {
		return errors.Wrapf(ErrInvalidConfig, "workers %d must be at least 1", c.Workers)
	}
	if c.Timeout < 0 {
		return errors.Wrapf(ErrInvalidConfig, "timeout %s must not be negative", c.Timeout)
	}
	if lo.Contains(c.BaseBones, "") || lo.Contains(c.Ignore, "") {
		return errors.Wrap(ErrInvalidConfig, "bone names must not be empty")
	}
	return nil
}

// Ignorer combines the ignore list and the ignore expression. It is nil when
// neither is set.
func (c *Config) Ignorer() (dframe.Ignorer, error) {
	ignorers := make(dframe.AnyIgnorer, 0, 2)
	if len(c.Ignore) > 0 {
		ignorers = append(ignorers, dframe.NewIgnoreSet(c.Ignore...))
	}
	if strings.TrimSpace(c.IgnoreExpr) != "" {
		ignoreExpr, err := dframe.CompileIgnoreExpr(c.IgnoreExpr)
		if err != nil {
			return nil, errors.Wrap(ErrInvalidConfig, err.Error())
		}
		ignorers = append(ignorers, ignoreExpr)
	}
	if len(ignorers) == 0 {
		return nil, nil
	}
	return ignorers, nil
}

// Options converts the configuration into batch options logging through log.
func (c *Config) Options(log logger.Logger) (batch.Options, error) {
	if err := c.Validate(); err != nil {
		return batch.Options{}, err
	}
	ignorer, err := c.Ignorer()
	if err != nil {
		return batch.Options{}, err
	}
	return batch.Options{
		Ignore:       ignorer,
		BaseBones:    c.BaseBones,
		Channels:     c.Channels,
		Strict:       c.Strict,
		Scale:        lo.ToPtr(c.Scale),
		ChannelCount: c.ChannelCount,
		Validate:     c.ValidateHierarchy,
		Extension:    c.Extension,
		Workers:      c.Workers,
		Timeout:      c.Timeout,
		FailFast:     c.FailFast,
		Logger:       log,
	}, nil
}
