package report

import "fmt"

// Issue is a single diagnostic: a severity, an optional stable code, a
// message, an optional primary span, and any number of annotations and
// notes. Issues are built once through the With* chain and treated as
// immutable afterwards.
type Issue struct {
	Severity    Severity     `json:"severity" msgpack:"severity"`
	Code        string       `json:"code,omitempty" msgpack:"code"`
	Message     string       `json:"message" msgpack:"message"`
	Span        *Span        `json:"span,omitempty" msgpack:"span"`
	Annotations []Annotation `json:"annotations,omitempty" msgpack:"annotations"`
	Notes       []string     `json:"notes,omitempty" msgpack:"notes"`
}

// NewIssue creates an issue with the given severity and message.
func NewIssue(severity Severity, message string) Issue {
	return Issue{Severity: severity, Message: message}
}

// Error creates an error issue with the given code.
func Error(code, message string) Issue {
	return NewIssue(SeverityError, message).WithCode(code)
}

// Warning creates a warning issue with the given code.
func Warning(code, message string) Issue {
	return NewIssue(SeverityWarning, message).WithCode(code)
}

// Note creates a note issue with the given code.
func Note(code, message string) Issue {
	return NewIssue(SeverityNote, message).WithCode(code)
}

// Help creates a help issue with the given code.
func Help(code, message string) Issue {
	return NewIssue(SeverityHelp, message).WithCode(code)
}

// Bug creates a bug issue with the given code. Bugs report faults in the
// producer itself, not in the analyzed input.
func Bug(code, message string) Issue {
	return NewIssue(SeverityBug, message).WithCode(code)
}

// FromError converts any error into a span-less error issue.
func FromError(err error) Issue {
	return NewIssue(SeverityError, err.Error())
}

// WithCode sets the stable diagnostic code.
func (i Issue) WithCode(code string) Issue {
	i.Code = code
	return i
}

// WithSpan sets the primary span. The renderer treats it as an implicit
// primary annotation on the origin.
func (i Issue) WithSpan(origin string, from, to uint32) Issue {
	i.Span = &Span{Origin: origin, From: from, To: to}
	return i
}

// WithAnnotation appends an annotation.
func (i Issue) WithAnnotation(a Annotation) Issue {
	i.Annotations = append(i.Annotations, a)
	return i
}

// WithNote appends a trailing note line.
func (i Issue) WithNote(note string) Issue {
	i.Notes = append(i.Notes, note)
	return i
}

// String renders the issue header in one line, with the primary span when
// present: "error[E0231]: unexpected token at main.vx@10:12".
func (i Issue) String() string {
	var head string
	if i.Code != "" {
		head = fmt.Sprintf("%s[%s]: %s", i.Severity, i.Code, i.Message)
	} else {
		head = fmt.Sprintf("%s: %s", i.Severity, i.Message)
	}
	if i.Span != nil {
		return head + " at " + i.Span.String()
	}
	return head
}
