package dframe

import (
	"fmt"
	"math"

	"github.com/samber/lo"

	"smd-steady/smd/derr"
	"smd-steady/smd/dnode"
	"smd-steady/smd/ltext"
)

// ResolveIndexes maps every bone of every frame to its node index, failing on
// the first name the skeleton does not know.
func ResolveIndexes(skeleton *dnode.Skeleton, animation Animation) (map[string]int, error) {
	indexes := map[string]int{}
	for i, frame := range animation {
		if frame == nil {
			continue
		}
		for _, name := range frame.Keys() {
			if _, ok := indexes[name]; ok {
				continue
			}
			index, ok := skeleton.IndexOf(name)
			if !ok {
				return nil, derr.LookupError{
					Kind:  derr.LookupKindBoneName,
					Key:   name,
					Where: fmt.Sprintf("frame %d", i),
				}
			}
			indexes[name] = index
		}
	}
	return indexes, nil
}

func EncodeTransform(index int, transform Transform, scale float64) []string {
	return append(
		[]string{ltext.FormatInt(index)},
		lo.Map(
			transform,
			func(value float64, _ int) string { return ltext.FormatFloat(value * scale) },
		)...,
	)
}

// Encode writes the frame table with time markers renumbered from 0 and every
// channel multiplied by scale. Nothing is written when a bone does not resolve.
func Encode(writer *ltext.Writer, skeleton *dnode.Skeleton, animation Animation, scale float64) error {
	if math.IsNaN(scale) || math.IsInf(scale, 0) {
		return derr.ErrInvalidScale
	}
	indexes, err := ResolveIndexes(skeleton, animation)
	if err != nil {
		return err
	}

	writer.Line(SectionName)
	for i, frame := range animation {
		writer.Line(TimeToken, ltext.FormatInt(i))
		if frame == nil {
			continue
		}
		frame.Each(func(name string, transform Transform) bool {
			writer.Line(EncodeTransform(indexes[name], transform, scale)...)
			return true
		})
	}
	writer.Line(ltext.EndToken)
	return nil
}
