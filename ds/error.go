package ds

import (
	"fmt"
)

type (
	// ErrUnreachableCode marks a branch that a valid state never takes. Value
	// holds the offending state when there is one.
	ErrUnreachableCode struct {
		Caller string
		Value  any
	}
)

func (r ErrUnreachableCode) Error() string {
	if r.Value == nil {
		return fmt.Sprintf("%s: unreachable code", r.Caller)
	}
	return fmt.Sprintf("%s: unreachable code reached with %#v", r.Caller, r.Value)
}
