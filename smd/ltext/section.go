package ltext

import (
	"strings"

	"smd-steady/smd/derr"
)

const byteOrderMark = "\ufeff"

// SplitLines splits text into numbered lines, accepting both \n and \r\n endings.
func SplitLines(text string) []Line {
	text = strings.TrimPrefix(text, byteOrderMark)
	rawLines := strings.Split(text, "\n")
	lines := make([]Line, 0, len(rawLines))
	for i, rawLine := range rawLines {
		lines = append(lines, Line{
			Number: i + 1,
			Text:   strings.TrimRight(rawLine, "\r"),
		})
	}
	return lines
}

func IsBlank(line Line) bool {
	return strings.TrimSpace(line.Text) == ""
}

// FirstToken returns the first whitespace separated token of the line, or "".
func FirstToken(line Line) string {
	fields := strings.Fields(line.Text)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// FindSection locates the first line whose first token is header and the first
// following line that reads exactly "end". Blank lines in between are dropped.
func FindSection(lines []Line, header string) (*Section, error) {
	headerAt := -1
	for i, line := range lines {
		if FirstToken(line) == header {
			headerAt = i
			break
		}
	}
	if headerAt < 0 {
		return nil, derr.FormatError{
			Section: header,
			Msg:     `header "` + header + `" not found`,
		}
	}

	section := Section{
		Header:   header,
		HeaderAt: lines[headerAt].Number,
		Lines:    make([]Line, 0),
	}
	for i := headerAt + 1; i < len(lines); i++ {
		line := lines[i]
		if strings.TrimSpace(line.Text) == EndToken {
			section.EndAt = line.Number
			section.remainder = lines[i+1:]
			return &section, nil
		}
		if IsBlank(line) {
			continue
		}
		section.Lines = append(section.Lines, line)
	}

	return nil, derr.FormatError{
		Section: header,
		Line:    lines[headerAt].Number,
		Msg:     `missing "end" terminator`,
	}
}

// Remainder returns the lines following the section's "end" line.
func (r *Section) Remainder() []Line {
	return r.remainder
}
