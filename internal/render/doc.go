// Package render turns report data into source-anchored, optionally
// colorized text.
//
// The Builder binds a source.Map and the three presentation options (colors,
// charset, style) and offers equivalent output modes: an arbitrary io.Writer,
// stdout/stderr shortcuts, and an in-memory string. All modes share the same
// emission path, so the bytes are identical regardless of mode.
//
// Per issue the emitter prints a severity-colored header, one excerpt block
// per distinct origin (primary origin first), trailing notes, and after all
// issues an optional footer with a generated counts-by-severity summary.
// The excerpt machinery resolves byte offsets through internal/source,
// extracts the annotated lines with context, and packs overlapping
// annotations into stacked underline rows; geometry is measured in display
// cells so markers stay aligned under wide runes.
//
// Rendering fails atomically at the first bad reference or write error;
// output already flushed to the sink stays there, nothing after the failure
// is emitted.
package render
