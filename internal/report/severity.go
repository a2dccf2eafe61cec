package report

// Severity defines the importance of an issue.
//
// The variants are totally ordered; the numeric order is part of the public
// contract and is used both for display and for aggregating a report's
// severity.
type Severity uint8

const (
	// SeverityNote is for purely informational issues.
	SeverityNote Severity = iota
	// SeverityHelp is for actionable suggestions.
	SeverityHelp
	// SeverityWarning is for issues that do not stop a build.
	SeverityWarning
	// SeverityError is for issues that fail a build.
	SeverityError
	// SeverityBug is for internal faults of the producer itself.
	SeverityBug
)

// Severities lists all variants in ascending order.
func Severities() []Severity {
	return []Severity{SeverityNote, SeverityHelp, SeverityWarning, SeverityError, SeverityBug}
}

func (s Severity) String() string {
	switch s {
	case SeverityNote:
		return "note"
	case SeverityHelp:
		return "help"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityBug:
		return "bug"
	}
	return "unknown"
}
