package ltext

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_Line(t *testing.T) {
	buf := bytes.Buffer{}
	writer := NewWriter(&buf)
	writer.Line("time", FormatInt(0))
	writer.Line(FormatInt(1), FormatFloat(1.2345), FormatFloat(-2))
	writer.Line(FormatInt(0), FormatQuoted("root"), FormatInt(-1))
	require.NoError(t, writer.Flush())

	assert.Equal(t, "time 0\n1 1.234500 -2.000000\n0 \"root\" -1\n", buf.String())
}
