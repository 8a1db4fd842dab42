package dstruct

import (
	"bytes"
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smd-steady/smd/derr"
	"smd-steady/smd/dframe"
	"smd-steady/smd/dnode"
)

const twoBones = `nodes
0 "root" -1
1 "child" 0
end
skeleton
time 0
0 0 0 0 0 0 0
1 1 0 0 0 0 0
end
`

func TestToStructuredFile(t *testing.T) {
	file, err := ToStructuredFile(twoBones, DecodeOptions{})
	require.NoError(t, err)

	assert.False(t, file.Header.Present)
	assert.Equal(t, 1, file.Header.Version)
	assert.Equal(t, 2, file.Skeleton.Len())
	assert.Len(t, file.Animation, 1)
}

func TestToStructuredFile_ChannelCount(t *testing.T) {
	short := `nodes
0 "root" -1
end
skeleton
time 0
0 1 2 3
end
`
	_, err := ToStructuredFile(short, DecodeOptions{})
	assert.True(t, derr.IsFormatError(err))

	file, err := ToStructuredFile(short, DecodeOptions{Channels: dframe.AnyChannelCount})
	require.NoError(t, err)
	root, _ := file.Animation[0].Get("root")
	assert.Equal(t, dframe.Transform{1, 2, 3}, root)
}

func TestToJSON(t *testing.T) {
	file, err := ToStructuredFile(twoBones, DecodeOptions{})
	require.NoError(t, err)

	bs, err := ToJSON(*file)
	require.NoError(t, err)

	compact := bytes.Buffer{}
	require.NoError(t, json.Compact(&compact, bs))
	assert.Equal(
		t,
		`{"version":1,`+
			`"nodes":[{"index":0,"name":"root","parent_index":-1},{"index":1,"name":"child","parent_index":0}],`+
			`"frames":[{"time":0,"bones":{"root":[0,0,0,0,0,0],"child":[1,0,0,0,0,0]}}]}`,
		compact.String(),
	)
}

func TestEncodeStruct_Errors(t *testing.T) {
	file, err := ToStructuredFile(twoBones, DecodeOptions{})
	require.NoError(t, err)

	buf := bytes.Buffer{}
	assert.ErrorIs(t, EncodeStruct(&buf, *file, math.Inf(1)), derr.ErrInvalidScale)
	assert.Zero(t, buf.Len())

	file.Animation[0].Put("ghost", dframe.Transform{0, 0, 0, 0, 0, 0})
	err = EncodeStruct(&buf, *file, 1)
	var lookupErr derr.LookupError
	require.ErrorAs(t, err, &lookupErr)
	assert.Equal(t, "ghost", lookupErr.Key)
	assert.Zero(t, buf.Len())

	assert.Error(t, EncodeStruct(&buf, Struct{Animation: dframe.Animation{}}, 1))
}

func TestEncodeStruct_EmptyAnimation(t *testing.T) {
	skeleton, err := dnode.NewSkeleton([]dnode.Node{{Index: 0, Name: "root", ParentIndex: dnode.NoParent}})
	require.NoError(t, err)

	buf := bytes.Buffer{}
	require.NoError(t, EncodeStruct(&buf, Struct{Skeleton: skeleton}, 1))
	assert.Equal(t, "version 1\nnodes\n0 \"root\" -1\nend\nskeleton\nend\n", buf.String())
}
