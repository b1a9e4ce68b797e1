package pathmatch

import "fmt"

// PatternError is returned by Compile for malformed patterns.
type PatternError struct {
	Pattern string
	Reason  string
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid path pattern %q: %s", e.Pattern, e.Reason)
}

// MissingParamError is returned by Format when a required capture has no value.
type MissingParamError struct {
	Pattern string
	Name    string
}

func (e *MissingParamError) Error() string {
	return fmt.Sprintf("path %q requires param %q", e.Pattern, e.Name)
}
