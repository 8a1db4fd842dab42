// Package stabilize freezes selected channels of "base" bones to their value in
// the first frame, removing drift baked into reference bones such as the pelvis.
package stabilize

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"smd-steady/smd/derr"
	"smd-steady/smd/dframe"
)

var ErrNoBaseBones = errors.New("no base bones given")

// Stabilize overwrites, in place, the configured channels of every base bone in
// every frame after the first with the first frame's values. It is a no-op on an
// empty animation and gives the same result when applied more than once. Every
// frame is checked before any is changed, so on error the animation is left as
// it was.
func Stabilize(animation dframe.Animation, baseBones []string, opts ...Option) error {
	if len(animation) == 0 {
		return nil
	}
	if len(baseBones) == 0 {
		return ErrNoBaseBones
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	references, err := referenceTransforms(animation[0], lo.Uniq(baseBones), o.channels)
	if err != nil {
		return err
	}
	targets, err := collectTargets(animation, references, o)
	if err != nil {
		return err
	}
	for _, target := range targets {
		freeze(target.transform, target.reference, o.channels)
	}
	return nil
}

type target struct {
	transform dframe.Transform
	reference dframe.Transform
}

// collectTargets pairs each later-frame transform of a base bone with its
// reference, without touching either.
func collectTargets(animation dframe.Animation, references *dframe.Frame, o options) ([]target, error) {
	targets := make([]target, 0, (len(animation)-1)*references.Len())
	for i, frame := range animation[1:] {
		frameIndex := i + 1
		for _, bone := range references.Keys() {
			reference, _ := references.Get(bone)
			transform, ok := lookup(frame, bone)
			if !ok {
				if o.strict {
					return nil, derr.LookupError{
						Kind:  derr.LookupKindBoneName,
						Key:   bone,
						Where: fmt.Sprintf("frame %d", frameIndex),
					}
				}
				if o.onSkip != nil {
					o.onSkip(frameIndex, bone)
				}
				continue
			}
			if err := checkChannels(transform, o.channels); err != nil {
				return nil, errors.Wrapf(err, "Stabilize error at frame %d", frameIndex)
			}
			targets = append(targets, target{transform: transform, reference: reference})
		}
	}
	return targets, nil
}

// referenceTransforms copies the first frame's transform of every base bone,
// checking up front that each requested channel exists.
func referenceTransforms(first *dframe.Frame, baseBones []string, channels []int) (*dframe.Frame, error) {
	references := dframe.NewFrame()
	for _, bone := range baseBones {
		transform, ok := lookup(first, bone)
		if !ok {
			return nil, derr.LookupError{
				Kind:  derr.LookupKindBoneName,
				Key:   bone,
				Where: "frame 0",
			}
		}
		if err := checkChannels(transform, channels); err != nil {
			return nil, err
		}
		references.Put(bone, transform.Clone())
	}
	return references, nil
}

func lookup(frame *dframe.Frame, bone string) (dframe.Transform, bool) {
	if frame == nil {
		return nil, false
	}
	return frame.Get(bone)
}

func checkChannels(transform dframe.Transform, channels []int) error {
	outOfRange, found := lo.Find(
		channels,
		func(channel int) bool { return channel < 0 || channel >= len(transform) },
	)
	if found {
		return derr.LookupError{
			Kind:  derr.LookupKindChannel,
			Key:   strconv.Itoa(outOfRange),
			Where: fmt.Sprintf("transform of %d channels", len(transform)),
		}
	}
	return nil
}

func freeze(transform dframe.Transform, reference dframe.Transform, channels []int) {
	for _, channel := range channels {
		transform[channel] = reference[channel]
	}
}
