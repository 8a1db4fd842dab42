package smd

import (
	"io"
	"strings"

	"smd-steady/smd/dframe"
	"smd-steady/smd/dheader"
	"smd-steady/smd/dnode"
	"smd-steady/smd/dstruct"
)

// Encode writes skeleton and animation to w, multiplying every channel value by
// scale. Negative scales are allowed for mirroring.
func Encode(w io.Writer, skeleton *dnode.Skeleton, animation dframe.Animation, scale float64) error {
	file := dstruct.Struct{
		Header:    dheader.Header{Version: dheader.DefaultVersion},
		Skeleton:  skeleton,
		Animation: animation,
	}
	return dstruct.EncodeStruct(w, file, scale)
}

func EncodeString(skeleton *dnode.Skeleton, animation dframe.Animation, scale float64) (string, error) {
	builder := strings.Builder{}
	if err := Encode(&builder, skeleton, animation, scale); err != nil {
		return "", err
	}
	return builder.String(), nil
}
