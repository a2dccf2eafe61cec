package report

import "fmt"

// Span is a byte range inside a named source. From is inclusive, To is
// exclusive, and From <= To. Both offsets must land on UTF-8 character
// boundaries of the origin's content; the renderer rejects spans that do not.
type Span struct {
	Origin string `json:"origin" msgpack:"origin"`
	From   uint32 `json:"from" msgpack:"from"`
	To     uint32 `json:"to" msgpack:"to"`
}

func (s Span) String() string {
	return fmt.Sprintf("%s@%d:%d", s.Origin, s.From, s.To)
}

// AnnotationType selects the visual weight of an annotation. It does not
// affect positioning.
type AnnotationType uint8

const (
	// Primary marks the span the issue is about.
	Primary AnnotationType = iota
	// Secondary marks supporting context.
	Secondary
)

func (t AnnotationType) String() string {
	if t == Primary {
		return "primary"
	}
	return "secondary"
}

// Annotation is a labeled byte range attached to an issue. Immutable once
// attached; the With* chain copies by value.
type Annotation struct {
	Span    Span           `json:"span" msgpack:"span"`
	Type    AnnotationType `json:"type" msgpack:"type"`
	Message string         `json:"message,omitempty" msgpack:"message"`
}

// NewAnnotation creates an annotation of the given type with no message.
func NewAnnotation(typ AnnotationType, origin string, from, to uint32) Annotation {
	return Annotation{
		Span: Span{Origin: origin, From: from, To: to},
		Type: typ,
	}
}

// PrimaryAnnotation creates a primary annotation.
func PrimaryAnnotation(origin string, from, to uint32) Annotation {
	return NewAnnotation(Primary, origin, from, to)
}

// SecondaryAnnotation creates a secondary annotation.
func SecondaryAnnotation(origin string, from, to uint32) Annotation {
	return NewAnnotation(Secondary, origin, from, to)
}

// WithMessage sets the inline label shown next to the underline.
func (a Annotation) WithMessage(message string) Annotation {
	a.Message = message
	return a
}
