package smd

import (
	"io"

	"github.com/pkg/errors"

	"smd-steady/smd/dframe"
	"smd-steady/smd/dnode"
	"smd-steady/smd/dstruct"
)

// Decode parses text into a skeleton and its frames. Bones matched by ignore are
// left out of the frames but kept in the skeleton; a nil ignore keeps everything.
func Decode(text string, ignore dframe.Ignorer) (*dnode.Skeleton, dframe.Animation, error) {
	return DecodeWithOptions(text, DecodeOptions{Ignore: ignore})
}

func DecodeWithOptions(text string, opts DecodeOptions) (*dnode.Skeleton, dframe.Animation, error) {
	file, err := dstruct.ToStructuredFile(text, opts)
	if err != nil {
		return nil, nil, err
	}
	return file.Skeleton, file.Animation, nil
}

func DecodeReader(r io.Reader, opts DecodeOptions) (*dnode.Skeleton, dframe.Animation, error) {
	bs, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, errors.Wrap(err, "DecodeReader error")
	}
	return DecodeWithOptions(string(bs), opts)
}
