package report

import "strings"

// Footer is an optional closing block for a report. When Summary is set the
// renderer appends a generated counts-by-severity note; the generated note is
// never stored in Notes.
type Footer struct {
	Message string   `json:"message" msgpack:"message"`
	Notes   []string `json:"notes,omitempty" msgpack:"notes"`
	Summary bool     `json:"summary" msgpack:"summary"`
}

// NewFooter creates a footer with the given closing message.
func NewFooter(message string) Footer {
	return Footer{Message: message}
}

// WithNote appends a note line to the footer.
func (f Footer) WithNote(note string) Footer {
	f.Notes = append(f.Notes, note)
	return f
}

// WithSummary enables the generated counts-by-severity note.
func (f Footer) WithSummary() Footer {
	f.Summary = true
	return f
}

// Report is an ordered collection of issues plus an optional footer,
// typically one per compilation unit. A report owns its issues; the source
// map it is rendered against is supplied separately and only borrowed.
type Report struct {
	Issues []Issue `json:"issues" msgpack:"issues"`
	Footer *Footer `json:"footer,omitempty" msgpack:"footer"`
}

// New creates an empty report.
func New() *Report {
	return &Report{}
}

// WithIssue appends an issue, preserving insertion order.
func (r *Report) WithIssue(issue Issue) *Report {
	r.Issues = append(r.Issues, issue)
	return r
}

// WithFooter sets the closing footer.
func (r *Report) WithFooter(footer Footer) *Report {
	r.Footer = &footer
	return r
}

// Severity returns the maximum severity over the report's issues. The second
// result is false when the report holds no issues.
func (r *Report) Severity() (Severity, bool) {
	if len(r.Issues) == 0 {
		return 0, false
	}
	max := r.Issues[0].Severity
	for _, issue := range r.Issues[1:] {
		if issue.Severity > max {
			max = issue.Severity
		}
	}
	return max, true
}

// HasErrors reports whether any issue is an error or worse.
func (r *Report) HasErrors() bool {
	for i := range r.Issues {
		if r.Issues[i].Severity >= SeverityError {
			return true
		}
	}
	return false
}

// Len returns the number of issues.
func (r *Report) Len() int {
	return len(r.Issues)
}

// String renders the report as one issue header per line.
func (r *Report) String() string {
	var b strings.Builder
	for _, issue := range r.Issues {
		b.WriteString(issue.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// Collection is an ordered list of reports rendered as one output stream,
// e.g. one report per compiled file.
type Collection []*Report
