package ltext

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smd-steady/smd/derr"
)

func TestSplitLines(t *testing.T) {
	lines := SplitLines("\ufeffversion 1\r\nnodes\n")
	texts := lo.Map(lines, func(line Line, _ int) string { return line.Text })
	assert.Equal(t, []string{"version 1", "nodes", ""}, texts)
	assert.Equal(t, 2, lines[1].Number)
}

func TestFindSection(t *testing.T) {
	text := "version 1\nnodes\n0 \"end_bone\" -1\n\n  end  \nskeleton\nend\n"
	lines := SplitLines(text)

	section, err := FindSection(lines, "nodes")
	require.NoError(t, err)
	assert.Equal(t, 2, section.HeaderAt)
	assert.Equal(t, 5, section.EndAt)
	require.Len(t, section.Lines, 1)
	assert.Equal(t, `0 "end_bone" -1`, section.Lines[0].Text)
	assert.Equal(t, "skeleton", FirstToken(section.Remainder()[0]))

	skeleton, err := FindSection(lines, "skeleton")
	require.NoError(t, err)
	assert.Empty(t, skeleton.Lines)
}

func TestFindSection_Missing(t *testing.T) {
	lines := SplitLines("version 1\nskeleton\ntime 0\n")

	_, err := FindSection(lines, "nodes")
	var formatErr derr.FormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Equal(t, "nodes", formatErr.Section)

	_, err = FindSection(lines, "skeleton")
	require.ErrorAs(t, err, &formatErr)
	assert.Contains(t, formatErr.Msg, `"end"`)
}
