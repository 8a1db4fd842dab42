package ltext

// ExecuteInstructions runs the read functions in order, stopping at the first
// failure. Each read function stores its value straight into the destination
// it was created with, so tokens are kept byte for byte. Errors returned by a
// read function are passed through untouched so callers can match on their kind.
func ExecuteInstructions(instructions []Instruction) error {
	for _, instruction := range instructions {
		if err := instruction.ReadFunction(); err != nil {
			return err
		}
	}
	return nil
}

func CreateIntReadFunction(reader *Reader, dst *int) ReadFunction {
	return func() error {
		value, err := reader.ReadInt()
		if err != nil {
			return err
		}
		*dst = value
		return nil
	}
}

// CreateQuotedReadFunction rejects an empty name; the quoted text is stored as
// is, whatever its encoding.
func CreateQuotedReadFunction(reader *Reader, dst *string) ReadFunction {
	return func() error {
		value, err := reader.ReadQuoted()
		if err != nil {
			return err
		}
		if value == "" {
			return reader.Errorf("empty name")
		}
		*dst = value
		return nil
	}
}

// CreateEOFReadFunction checks that nothing is left on the line.
func CreateEOFReadFunction(reader *Reader) ReadFunction {
	return reader.ExpectEOF
}
