// Package issues provides a unified issue type for parsing and generation problems.
package issues

import (
	"fmt"

	"github.com/lizlecrone/fitbit-api/internal/severity"
)

// Issue represents a single problem found during parsing or code generation.
type Issue struct {
	// Path is the document path to the problematic element
	// (e.g., "paths./1/user/-/activities/date/{date}.json.get")
	Path string
	// Message is a human-readable description of the issue
	Message string
	// Severity indicates the severity level of the issue
	Severity severity.Severity
	// Field is the specific field name that has the issue (optional)
	Field string
	// Value is the problematic value (optional)
	Value any
}

// String returns a formatted string representation of the issue.
// Uses different symbols based on severity level:
// - "✗" for Error or Critical severity
// - "⚠" for Warning severity
// - "ℹ" for Info severity
func (i Issue) String() string {
	var symbol string
	switch i.Severity {
	case severity.SeverityError, severity.SeverityCritical:
		symbol = "✗"
	case severity.SeverityWarning:
		symbol = "⚠"
	case severity.SeverityInfo:
		symbol = "ℹ"
	default:
		symbol = "?"
	}

	if i.Path == "" {
		return fmt.Sprintf("%s %s", symbol, i.Message)
	}
	return fmt.Sprintf("%s %s: %s", symbol, i.Path, i.Message)
}

// New creates an issue with the given severity, path, and message.
func New(sev severity.Severity, path, format string, args ...any) Issue {
	return Issue{
		Path:     path,
		Message:  fmt.Sprintf(format, args...),
		Severity: sev,
	}
}
