package dheader

import (
	"smd-steady/smd/ltext"
)

func Encode(writer *ltext.Writer, header Header) {
	version := header.Version
	if version == 0 {
		version = DefaultVersion
	}
	writer.Line(SectionName, ltext.FormatInt(version))
}
