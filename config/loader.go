package config

import (
	"context"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

const (
	EnvPrefix     = "SMD_"
	EnvConfigFile = EnvPrefix + "CONFIG"
	listSeparator = ","
)

// Overrides holds values set explicitly by the caller, such as command line
// flags, keyed like the YAML file.
type Overrides map[string]any

// Read implements koanf.Provider.
func (r Overrides) Read() (map[string]any, error) {
	return lo.OmitBy(r, func(_ string, value any) bool { return value == nil }), nil
}

// ReadBytes implements koanf.Provider.
func (r Overrides) ReadBytes() ([]byte, error) {
	return nil, errors.New("Overrides does not support ReadBytes")
}

// Load builds a Config by layering, from low to high precedence:
//  1. defaults (New)
//  2. the YAML file at path, or at $SMD_CONFIG when path is empty
//  3. environment variables SMD_<KEY>, comma separated for lists
//  4. overrides
//
// The preset then fills ignore, base_bones and channels if no layer set them.
func Load(_ context.Context, path string, overrides Overrides) (*Config, error) {
	k := koanf.New(".")

	if path == "" {
		path = os.Getenv(EnvConfigFile)
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, errors.Wrapf(ErrLoadConfig, "%s: %v", path, err)
		}
	}

	envProvider := env.ProviderWithValue(EnvPrefix, ".", func(key string, value string) (string, any) {
		key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
		if key == "config" || value == "" {
			return "", nil
		}
		if strings.Contains(value, listSeparator) {
			return key, lo.Map(
				strings.Split(value, listSeparator),
				func(item string, _ int) string { return strings.TrimSpace(item) },
			)
		}
		return key, value
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, errors.Wrapf(ErrLoadConfig, "environment: %v", err)
	}

	if len(overrides) > 0 {
		if err := k.Load(overrides, nil); err != nil {
			return nil, errors.Wrapf(ErrLoadConfig, "overrides: %v", err)
		}
	}

	cfg := New()
	cfg.Ignore, cfg.BaseBones, cfg.Channels = nil, nil, nil
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, errors.Wrap(ErrInvalidConfig, err.Error())
	}
	explicit := lo.SliceToMap(k.Keys(), func(key string) (string, bool) { return key, true })
	if err := cfg.applyPreset(explicit); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
