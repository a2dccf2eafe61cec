package report

import "testing"

func TestSeverityOrder(t *testing.T) {
	ascending := Severities()
	for i := 1; i < len(ascending); i++ {
		if ascending[i-1] >= ascending[i] {
			t.Errorf("severity order broken: %s >= %s", ascending[i-1], ascending[i])
		}
	}
	if SeverityNote >= SeverityHelp || SeverityHelp >= SeverityWarning ||
		SeverityWarning >= SeverityError || SeverityError >= SeverityBug {
		t.Error("expected Note < Help < Warning < Error < Bug")
	}
}

func TestSeverityString(t *testing.T) {
	tests := []struct {
		sev  Severity
		want string
	}{
		{SeverityNote, "note"},
		{SeverityHelp, "help"},
		{SeverityWarning, "warning"},
		{SeverityError, "error"},
		{SeverityBug, "bug"},
	}
	for _, tt := range tests {
		if got := tt.sev.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.sev, got, tt.want)
		}
	}
}

func TestReportSeverityAggregates(t *testing.T) {
	tests := []struct {
		name       string
		severities []Severity
		want       Severity
		ok         bool
	}{
		{name: "empty report has no severity", severities: nil, ok: false},
		{name: "single issue", severities: []Severity{SeverityWarning}, want: SeverityWarning, ok: true},
		{
			name:       "maximum wins",
			severities: []Severity{SeverityNote, SeverityError, SeverityWarning},
			want:       SeverityError,
			ok:         true,
		},
		{
			name:       "bug outranks error",
			severities: []Severity{SeverityError, SeverityBug, SeverityError},
			want:       SeverityBug,
			ok:         true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New()
			for _, sev := range tt.severities {
				r.WithIssue(NewIssue(sev, "msg"))
			}
			got, ok := r.Severity()
			if ok != tt.ok {
				t.Fatalf("Severity() ok = %v, want %v", ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("Severity() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestIssueChain(t *testing.T) {
	issue := Error("E0417", "mismatched types").
		WithSpan("main.vx", 10, 14).
		WithAnnotation(SecondaryAnnotation("main.vx", 9, 10).WithMessage("union type starts here")).
		WithNote("consider using `null` instead")

	if issue.Severity != SeverityError {
		t.Errorf("Severity = %s", issue.Severity)
	}
	if issue.Code != "E0417" {
		t.Errorf("Code = %q", issue.Code)
	}
	if issue.Span == nil || *issue.Span != (Span{Origin: "main.vx", From: 10, To: 14}) {
		t.Errorf("Span = %+v", issue.Span)
	}
	if len(issue.Annotations) != 1 {
		t.Fatalf("Annotations = %d", len(issue.Annotations))
	}
	ann := issue.Annotations[0]
	if ann.Type != Secondary || ann.Message != "union type starts here" {
		t.Errorf("annotation = %+v", ann)
	}
	if len(issue.Notes) != 1 || issue.Notes[0] != "consider using `null` instead" {
		t.Errorf("Notes = %v", issue.Notes)
	}
}

func TestIssueChainDoesNotMutateOriginal(t *testing.T) {
	base := Warning("W1", "base")
	derived := base.WithCode("W2").WithNote("extra")

	if base.Code != "W1" || len(base.Notes) != 0 {
		t.Errorf("base mutated: %+v", base)
	}
	if derived.Code != "W2" || len(derived.Notes) != 1 {
		t.Errorf("derived wrong: %+v", derived)
	}
}

func TestIssueString(t *testing.T) {
	tests := []struct {
		name  string
		issue Issue
		want  string
	}{
		{
			name:  "code and span",
			issue: Error("E0231", "unexpected token `{`").WithSpan("main.vx", 10, 12),
			want:  "error[E0231]: unexpected token `{` at main.vx@10:12",
		},
		{
			name:  "code only",
			issue: Bug("B0001", "failed to read the file"),
			want:  "bug[B0001]: failed to read the file",
		},
		{
			name:  "bare",
			issue: NewIssue(SeverityError, "some error just happened"),
			want:  "error: some error just happened",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.issue.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFromError(t *testing.T) {
	issue := FromError(&FileError{})
	if issue.Severity != SeverityError {
		t.Errorf("Severity = %s", issue.Severity)
	}
	if issue.Message != "file error" {
		t.Errorf("Message = %q", issue.Message)
	}
}

type FileError struct{}

func (*FileError) Error() string { return "file error" }

func TestFooterChain(t *testing.T) {
	f := NewFooter("compilation failed").WithNote("see docs").WithSummary()
	if f.Message != "compilation failed" || !f.Summary {
		t.Errorf("footer = %+v", f)
	}
	if len(f.Notes) != 1 || f.Notes[0] != "see docs" {
		t.Errorf("Notes = %v", f.Notes)
	}
}

func TestHasErrors(t *testing.T) {
	r := New().WithIssue(Warning("W1", "w"))
	if r.HasErrors() {
		t.Error("warning-only report reported errors")
	}
	r.WithIssue(Error("E1", "e"))
	if !r.HasErrors() {
		t.Error("report with an error did not report errors")
	}
}
