// Package dframe decodes and encodes the per-frame bone transforms of the
// "skeleton" section.
package dframe

import (
	"github.com/samber/lo"

	"smd-steady/ds"
)

type (
	// Transform is an ordered list of channel values. The reference layout is
	// three translation channels followed by three rotation channels.
	Transform []float64
	// Frame maps bone names to transforms in source order.
	Frame = ds.LinkedHashMap[string, Transform]
	// Animation is indexed by frame position; time markers are not kept.
	Animation []*Frame
)

const (
	SectionName         = "skeleton"
	TimeToken           = "time"
	DefaultChannelCount = 6
	AnyChannelCount     = -1
)

func NewFrame() *Frame {
	return ds.NewLinkedHashMap[string, Transform]()
}

func (r Transform) Clone() Transform {
	return ds.ShallowCopy(r)
}

// Clone deep copies the animation so the copy can be mutated independently.
func (r Animation) Clone() Animation {
	return lo.Map(
		r,
		func(frame *Frame, _ int) *Frame {
			frameCopy := NewFrame()
			if frame == nil {
				return frameCopy
			}
			frame.Each(func(name string, transform Transform) bool {
				frameCopy.Put(name, transform.Clone())
				return true
			})
			return frameCopy
		},
	)
}

// BoneNames returns every bone name present in at least one frame, in first-seen order.
func (r Animation) BoneNames() []string {
	names := lo.FlatMap(
		r,
		func(frame *Frame, _ int) []string {
			if frame == nil {
				return nil
			}
			return frame.Keys()
		},
	)
	return lo.Uniq(names)
}
