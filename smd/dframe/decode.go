package dframe

import (
	"fmt"
	"strconv"

	"smd-steady/smd/derr"
	"smd-steady/smd/dnode"
	"smd-steady/smd/ltext"
)

// DecodeTransform reads the channel values following the bone index.
// channels <= 0 accepts any non-zero count.
func DecodeTransform(reader *ltext.Reader, channels int) (Transform, error) {
	capacity := channels
	if capacity <= 0 {
		capacity = DefaultChannelCount
	}
	transform := make(Transform, 0, capacity)
	for !reader.EOF() {
		value, err := reader.ReadFloat()
		if err != nil {
			return nil, err
		}
		transform = append(transform, value)
	}
	if len(transform) == 0 {
		return nil, reader.Errorf("missing channel values")
	}
	if channels > 0 && len(transform) != channels {
		return nil, reader.Errorf("expected %d channel values, got %d", channels, len(transform))
	}
	return transform, nil
}

func decodeTimeMarker(reader *ltext.Reader) error {
	_, _ = reader.ReadToken()
	if _, err := reader.ReadInt(); err != nil {
		return err
	}
	return reader.ExpectEOF()
}

// Decode builds the animation from the frame table. A "time" marker closes the
// frame being built and the last open frame is flushed at the end of the section.
func Decode(
	section *ltext.Section,
	skeleton *dnode.Skeleton,
	ignore Ignorer,
	channels int,
) (Animation, error) {
	animation := make(Animation, 0)
	var frame *Frame

	for _, line := range section.Lines {
		reader := ltext.NewLineReader(SectionName, line)
		if ltext.FirstToken(line) == TimeToken {
			if err := decodeTimeMarker(reader); err != nil {
				return nil, err
			}
			if frame != nil {
				animation = append(animation, frame)
			}
			frame = NewFrame()
			continue
		}

		boneIndex, err := reader.ReadInt()
		if err != nil {
			return nil, err
		}
		if frame == nil {
			return nil, reader.Errorf(`bone sample before the first "%s" marker`, TimeToken)
		}
		node, ok := skeleton.Node(boneIndex)
		if !ok {
			return nil, derr.LookupError{
				Kind:  derr.LookupKindBoneIndex,
				Key:   strconv.Itoa(boneIndex),
				Where: fmt.Sprintf("%s section line %d", SectionName, line.Number),
			}
		}
		if ignore != nil {
			ignored, err := ignore.Ignores(node)
			if err != nil {
				return nil, reader.Errorf("%v", err)
			}
			if ignored {
				continue
			}
		}
		transform, err := DecodeTransform(reader, channels)
		if err != nil {
			return nil, err
		}
		frame.Put(node.Name, transform)
	}

	if frame != nil {
		animation = append(animation, frame)
	}
	return animation, nil
}
