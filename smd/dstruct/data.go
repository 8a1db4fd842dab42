package dstruct

import (
	"smd-steady/smd/dframe"
	"smd-steady/smd/dheader"
	"smd-steady/smd/dnode"
)

type (
	Struct struct {
		Header    dheader.Header   `json:"header"`
		Skeleton  *dnode.Skeleton  `json:"-"`
		Animation dframe.Animation `json:"-"`
	}
	DecodeOptions struct {
		// Ignore leaves matching bones out of every frame.
		Ignore dframe.Ignorer
		// Channels is the expected channel count per sample: 0 means
		// dframe.DefaultChannelCount, dframe.AnyChannelCount accepts any.
		Channels int
		// Validate rejects dangling parents and cyclic hierarchies.
		Validate bool
	}
)

func (r DecodeOptions) channels() int {
	if r.Channels == 0 {
		return dframe.DefaultChannelCount
	}
	return r.Channels
}
