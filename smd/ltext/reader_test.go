package ltext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smd-steady/smd/derr"
)

func TestReader_ReadInt(t *testing.T) {
	reader := NewLineReader("nodes", Line{Number: 3, Text: "  12 -1 abc"})

	resultInt1, err := reader.ReadInt()
	assert.NoError(t, err)
	assert.Equal(t, 12, resultInt1)

	resultInt2, err := reader.ReadInt()
	assert.NoError(t, err)
	assert.Equal(t, -1, resultInt2)

	_, err = reader.ReadInt()
	var formatErr derr.FormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Equal(t, 3, formatErr.Line)
	assert.Equal(t, "nodes", formatErr.Section)
}

func TestReader_ReadFloat(t *testing.T) {
	reader := NewLineReader("skeleton", Line{Number: 1, Text: "1.5 -2e-3 +4 .25"})
	expected := []float64{1.5, -0.002, 4, 0.25}
	for _, value := range expected {
		actual, err := reader.ReadFloat()
		require.NoError(t, err)
		assert.InDelta(t, value, actual, 1e-12)
	}
	assert.True(t, reader.EOF())

	_, err := reader.ReadFloat()
	assert.True(t, derr.IsFormatError(err))
}

func TestReader_ReadQuoted(t *testing.T) {
	reader := NewLineReader("nodes", Line{Number: 1, Text: `0 "ValveBiped.Bip01 Pelvis" -1`})
	_, err := reader.ReadInt()
	require.NoError(t, err)

	name, err := reader.ReadQuoted()
	require.NoError(t, err)
	assert.Equal(t, "ValveBiped.Bip01 Pelvis", name)

	parent, err := reader.ReadInt()
	require.NoError(t, err)
	assert.Equal(t, -1, parent)
	assert.NoError(t, reader.ExpectEOF())
}

func TestReader_ReadQuotedMissing(t *testing.T) {
	reader := NewLineReader("nodes", Line{Number: 7, Text: `0 root -1`})
	_, _ = reader.ReadInt()
	_, err := reader.ReadQuoted()
	assert.True(t, derr.IsFormatError(err))
}

func TestStringBetween(t *testing.T) {
	value, ok := StringBetween(`a "b c" d`, `"`, `"`)
	assert.True(t, ok)
	assert.Equal(t, "b c", value)

	_, ok = StringBetween(`a "b`, `"`, `"`)
	assert.False(t, ok)
}

func TestExecuteInstructions(t *testing.T) {
	type T struct {
		Index int
		Name  string
	}
	result := T{}
	reader := NewLineReader("nodes", Line{Number: 1, Text: "4 \"hand \xe9paule\""})
	instructions := []Instruction{
		{"index", CreateIntReadFunction(reader, &result.Index)},
		{"name", CreateQuotedReadFunction(reader, &result.Name)},
		{"", CreateEOFReadFunction(reader)},
	}
	require.NoError(t, ExecuteInstructions(instructions))
	assert.Equal(t, T{Index: 4, Name: "hand \xe9paule"}, result)
}

func TestExecuteInstructions_StopsAtFirstError(t *testing.T) {
	index := 0
	name := "untouched"
	reader := NewLineReader("nodes", Line{Number: 2, Text: `x "hand"`})
	instructions := []Instruction{
		{"index", CreateIntReadFunction(reader, &index)},
		{"name", CreateQuotedReadFunction(reader, &name)},
	}
	err := ExecuteInstructions(instructions)
	var formatErr derr.FormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Equal(t, 2, formatErr.Line)
	assert.Equal(t, "untouched", name)
}

func TestReader_ReadToken_Latin1IsNotSpace(t *testing.T) {
	reader := NewLineReader("skeleton", Line{Number: 1, Text: "a\xa0b\x85c d"})

	token, err := reader.ReadToken()
	require.NoError(t, err)
	assert.Equal(t, "a\xa0b\x85c", token)
}
