package dstruct

import (
	"io"
	"math"

	"github.com/pkg/errors"

	"smd-steady/smd/derr"
	"smd-steady/smd/dframe"
	"smd-steady/smd/dheader"
	"smd-steady/smd/dnode"
	"smd-steady/smd/ltext"
)

// EncodeStruct writes the version line, the node table and the frame table.
func EncodeStruct(w io.Writer, file Struct, scale float64) error {
	if file.Skeleton == nil {
		return errors.New("EncodeStruct error: nil skeleton")
	}
	if math.IsNaN(scale) || math.IsInf(scale, 0) {
		return derr.ErrInvalidScale
	}
	// resolve before writing anything so a bad frame leaves w untouched
	if _, err := dframe.ResolveIndexes(file.Skeleton, file.Animation); err != nil {
		return err
	}

	writer := ltext.NewWriter(w)
	dheader.Encode(writer, dheader.Header{Version: dheader.DefaultVersion})
	dnode.Encode(writer, file.Skeleton)
	if err := dframe.Encode(writer, file.Skeleton, file.Animation, scale); err != nil {
		return err
	}
	return writer.Flush()
}
