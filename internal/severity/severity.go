// Package severity provides severity level constants and utilities
// for issues reported by the swagger parser and the generator package.
//
// The severity levels are ordered from least to most severe:
// Info < Warning < Error < Critical
package severity

// Severity indicates the severity level of an issue during parsing or code generation.
type Severity int

const (
	// SeverityError indicates a document violation that makes it invalid.
	SeverityError Severity = iota

	// SeverityWarning indicates recoverable problems such as skipped
	// operations or best-practice violations that don't prevent generation.
	SeverityWarning

	// SeverityInfo indicates informational messages about processing choices.
	SeverityInfo

	// SeverityCritical indicates features that cannot be processed without data loss.
	SeverityCritical
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}
