package ltext

type (
	// Line is one source line; Number is 1-based.
	Line struct {
		Number int
		Text   string
	}
	// Section holds the non-blank lines between a header line and its "end" line.
	Section struct {
		Header    string
		HeaderAt  int
		EndAt     int
		Lines     []Line
		remainder []Line
	}
	// Reader consumes whitespace separated tokens from a single line.
	Reader struct {
		section string
		line    Line
		pos     int
	}
	// Instruction reads one field of a record into its destination. Key names
	// the field for diagnostics only.
	Instruction struct {
		Key          string
		ReadFunction ReadFunction
	}
	ReadFunction func() error
)

const (
	EndToken = "end"
)
