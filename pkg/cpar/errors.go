package cpar

import "fmt"

// ParseError is the structured error returned by Parse. It carries the
// offending input and the specific status so callers can branch on the
// failure kind.
type ParseError struct {
	// Input is the original colour string.
	Input string
	// Status categorizes the failure; never StatusOK.
	Status Status
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cpar: cannot parse %q: %s", e.Input, e.Status.Describe())
}
