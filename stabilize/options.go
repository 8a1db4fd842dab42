package stabilize

import (
	"smd-steady/ds"
)

var (
	// TranslationChannels freezes the three translation channels of a
	// six-channel transform.
	TranslationChannels = ds.MakeRange(0, 3, 1)
	// LegacyChannels freezes only the second translation channel, which is what
	// older exports of the converter did.
	LegacyChannels = []int{1}
)

type (
	// SkipHook is called for every later frame that lacks a base bone in
	// lenient mode.
	SkipHook func(frame int, bone string)

	Option func(*options)

	options struct {
		channels []int
		strict   bool
		onSkip   SkipHook
	}
)

func defaultOptions() options {
	return options{
		channels: TranslationChannels,
	}
}

// WithChannels sets the channel positions to freeze. An empty list keeps the default.
func WithChannels(channels []int) Option {
	return func(o *options) {
		if len(channels) > 0 {
			o.channels = ds.ShallowCopy(channels)
		}
	}
}

// WithStrict makes a base bone missing from a later frame an error instead of a skip.
func WithStrict(strict bool) Option {
	return func(o *options) {
		o.strict = strict
	}
}

func WithSkipHook(hook SkipHook) Option {
	return func(o *options) {
		o.onSkip = hook
	}
}
