package geo

import (
	"errors"
	"fmt"
)

// ErrParse indicates that a coordinate string could not be parsed.
var ErrParse = errors.New("geo: malformed coordinate")

// ParseError describes why a coordinate string was rejected.
type ParseError struct {
	Text   string // input as received
	Reason string // short human-readable cause
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("geo: parse coordinate %q: %s", e.Text, e.Reason)
}

// Is reports ErrParse so callers can branch with errors.Is.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}
