package dheader

import (
	"smd-steady/smd/ltext"
)

// Decode reads the optional "version <n>" line, which has to be the first
// non-blank line when present. A missing line yields the default version.
func Decode(lines []ltext.Line) (*Header, error) {
	for _, line := range lines {
		if ltext.IsBlank(line) {
			continue
		}
		if ltext.FirstToken(line) != SectionName {
			break
		}
		reader := ltext.NewLineReader(SectionName, line)
		_, _ = reader.ReadToken()
		version, err := reader.ReadInt()
		if err != nil {
			return nil, err
		}
		if err := reader.ExpectEOF(); err != nil {
			return nil, err
		}
		return &Header{Version: version, Present: true}, nil
	}

	return &Header{Version: DefaultVersion}, nil
}
