// Package report defines the diagnostic data model shared by producers and
// the renderer.
//
// # Purpose
//
//   - Provide deterministic, serialisable structures describing issues:
//     severity, code, message, spans, annotations, notes.
//   - Keep the model pure data: no formatting, IO, or terminal concerns.
//     Rendering lives in internal/render, transport in internal/bundle.
//
// # Data model
//
// Issue is the central record. Every location is a Span (origin name plus a
// half-open byte range); an issue optionally carries one primary Span and
// any number of Annotations pointing at the same or other sources. Reports
// group issues in order and may close with a Footer.
//
// All constructors are fluent value-receiver chains:
//
//	issue := report.Error("E0417", "mismatched types").
//		WithSpan("main.vx", 68, 71).
//		WithAnnotation(report.SecondaryAnnotation("main.vx", 61, 64).
//			WithMessage("arguments to this function are incorrect")).
//		WithNote("expected `int`, found `string`")
//
// Severity is an ordered enumeration (Note < Help < Warning < Error < Bug);
// Report.Severity aggregates by maximum, so producers can gate exit codes on
// it without inspecting individual issues.
package report
