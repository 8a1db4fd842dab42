// Package derr holds the error kinds shared by the SMD codec packages.
package derr

import (
	"fmt"

	"github.com/pkg/errors"
)

var ErrInvalidScale = errors.New("scale must be a finite number")

type (
	// FormatError reports a missing section delimiter or a line that does not
	// tokenize into the expected shape. Line is 1-based; 0 means the whole section.
	FormatError struct {
		Section string
		Line    int
		Text    string
		Msg     string
	}
	// LookupError reports a reference that does not resolve against the skeleton.
	LookupError struct {
		Kind  string
		Key   string
		Where string
	}
	// IOError wraps a file system failure with the path involved.
	IOError struct {
		Op   string
		Path string
		Err  error
	}
)

const (
	LookupKindBoneIndex = "bone index"
	LookupKindBoneName  = "bone name"
	LookupKindParent    = "parent index"
	LookupKindChannel   = "channel"
)

func (r FormatError) Error() string {
	switch {
	case r.Line > 0 && r.Text != "":
		return fmt.Sprintf(`format error in "%s" section at line %d (%q): %s`, r.Section, r.Line, r.Text, r.Msg)
	case r.Line > 0:
		return fmt.Sprintf(`format error in "%s" section at line %d: %s`, r.Section, r.Line, r.Msg)
	default:
		return fmt.Sprintf(`format error in "%s" section: %s`, r.Section, r.Msg)
	}
}

func (r LookupError) Error() string {
	if r.Where == "" {
		return fmt.Sprintf(`lookup error: unknown %s "%s"`, r.Kind, r.Key)
	}
	return fmt.Sprintf(`lookup error: unknown %s "%s" (%s)`, r.Kind, r.Key, r.Where)
}

func (r IOError) Error() string {
	return fmt.Sprintf(`io error: %s "%s": %v`, r.Op, r.Path, r.Err)
}

func (r IOError) Unwrap() error {
	return r.Err
}

func IsFormatError(err error) bool {
	var target FormatError
	return errors.As(err, &target)
}

func IsLookupError(err error) bool {
	var target LookupError
	return errors.As(err, &target)
}

func IsIOError(err error) bool {
	var target IOError
	return errors.As(err, &target)
}
