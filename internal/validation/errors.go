// Package validation checks a resume document against its field constraints.
package validation

import (
	"fmt"
	"strings"
)

// Error wraps a non-empty Result so callers that need an error (CLI exit codes,
// export gating) can treat violations as one.
type Error struct {
	Violations []Violation
}

func (e *Error) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("resume has %d validation error(s):\n", len(e.Violations)))
	for i, v := range e.Violations {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, v.Field, v.Message))
	}
	return sb.String()
}
