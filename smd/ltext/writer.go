package ltext

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Writer writes lines and keeps the first error, so callers check once at Flush.
type Writer struct {
	w   *bufio.Writer
	err error
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

func (r *Writer) Line(fields ...string) {
	if r.err != nil {
		return
	}
	_, r.err = r.w.WriteString(strings.Join(fields, " ") + "\n")
}

func (r *Writer) Flush() error {
	if r.err != nil {
		return errors.Wrap(r.err, "ltext.Writer error")
	}
	return errors.Wrap(r.w.Flush(), "ltext.Writer error: flush")
}

// FormatFloat renders a channel value as fixed point with 6 fractional digits.
func FormatFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', 6, 64)
}

func FormatInt(value int) string {
	return strconv.Itoa(value)
}

func FormatQuoted(value string) string {
	return `"` + value + `"`
}
