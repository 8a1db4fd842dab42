// Package smd stores the code to decode and encode the text skeletal animation
// format: a node table describing the bone hierarchy and a frame table holding
// one transform per bone per frame.
package smd

import (
	"strings"

	"smd-steady/smd/derr"
	"smd-steady/smd/dframe"
	"smd-steady/smd/dheader"
	"smd-steady/smd/dnode"
	"smd-steady/smd/dstruct"
	"smd-steady/smd/ltext"
)

type (
	FormatError   = derr.FormatError
	LookupError   = derr.LookupError
	IOError       = derr.IOError
	DecodeOptions = dstruct.DecodeOptions
)

const (
	DefaultExtension = ".smd"
	DefaultScale     = 1.0
)

// IsSMDFile reports whether text starts with a version line or contains a
// node table, which is enough to tell it apart from other inputs.
func IsSMDFile(text string) bool {
	lines := ltext.SplitLines(text)
	header, err := dheader.Decode(lines)
	if err == nil && header.Present {
		return true
	}
	for _, line := range lines {
		if ltext.IsBlank(line) {
			continue
		}
		return strings.TrimSpace(line.Text) == dnode.SectionName
	}
	return false
}

// NewIgnoreSet is a shortcut for dframe.NewIgnoreSet.
func NewIgnoreSet(names ...string) dframe.IgnoreSet {
	return dframe.NewIgnoreSet(names...)
}
