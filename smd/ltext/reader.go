package ltext

import (
	"fmt"
	"strconv"
	"strings"

	"smd-steady/smd/derr"
)

func NewLineReader(section string, line Line) *Reader {
	return &Reader{
		section: section,
		line:    line,
	}
}

func (r *Reader) Errorf(format string, args ...any) error {
	return derr.FormatError{
		Section: r.section,
		Line:    r.line.Number,
		Text:    strings.TrimSpace(r.line.Text),
		Msg:     fmt.Sprintf(format, args...),
	}
}

// isSpace works on single bytes so Latin-1 text such as 0xA0 is never taken
// for a separator.
func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\r', '\v', '\f':
		return true
	}
	return false
}

func (r *Reader) skipSpace() {
	for r.pos < len(r.line.Text) && isSpace(r.line.Text[r.pos]) {
		r.pos++
	}
}

// EOF reports whether only whitespace is left on the line.
func (r *Reader) EOF() bool {
	r.skipSpace()
	return r.pos >= len(r.line.Text)
}

func (r *Reader) ReadToken() (string, error) {
	r.skipSpace()
	if r.pos >= len(r.line.Text) {
		return "", r.Errorf("unexpected end of line")
	}
	start := r.pos
	for r.pos < len(r.line.Text) && !isSpace(r.line.Text[r.pos]) {
		r.pos++
	}
	return r.line.Text[start:r.pos], nil
}

func (r *Reader) ReadInt() (int, error) {
	token, err := r.ReadToken()
	if err != nil {
		return 0, err
	}
	value, err := strconv.Atoi(token)
	if err != nil {
		return 0, r.Errorf(`expected an integer, got "%s"`, token)
	}
	return value, nil
}

func (r *Reader) ReadFloat() (float64, error) {
	token, err := r.ReadToken()
	if err != nil {
		return 0, err
	}
	value, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, r.Errorf(`expected a number, got "%s"`, token)
	}
	return value, nil
}

// ReadQuoted returns the text between the next pair of double quotes and moves past
// the closing quote. Anything before the opening quote is skipped.
func (r *Reader) ReadQuoted() (string, error) {
	rest := r.line.Text[r.pos:]
	value, ok := StringBetween(rest, `"`, `"`)
	if !ok {
		return "", r.Errorf("expected a double quoted name")
	}
	opening := strings.Index(rest, `"`)
	r.pos += opening + 1 + len(value) + 1
	return value, nil
}

func (r *Reader) ExpectEOF() error {
	if !r.EOF() {
		return r.Errorf(`unexpected trailing text "%s"`, strings.TrimSpace(r.line.Text[r.pos:]))
	}
	return nil
}

// StringBetween returns the substring between the first occurrence of first and
// the next occurrence of last after it.
func StringBetween(s string, first string, last string) (string, bool) {
	start := strings.Index(s, first)
	if start < 0 {
		return "", false
	}
	start += len(first)
	end := strings.Index(s[start:], last)
	if end < 0 {
		return "", false
	}
	return s[start : start+end], true
}
