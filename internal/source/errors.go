package source

import "fmt"

// FileMissingError reports a lookup for a name absent from the Map.
type FileMissingError struct {
	Name string
}

func (e *FileMissingError) Error() string {
	return fmt.Sprintf("source %q is not in the source map", e.Name)
}

// IndexTooLargeError reports a byte offset past the end of a source.
type IndexTooLargeError struct {
	Given uint32
	Max   uint32
}

func (e *IndexTooLargeError) Error() string {
	return fmt.Sprintf("byte index %d exceeds source length %d", e.Given, e.Max)
}

// LineTooLargeError reports a line number past the last line of a source.
type LineTooLargeError struct {
	Given uint32
	Max   uint32
}

func (e *LineTooLargeError) Error() string {
	return fmt.Sprintf("line %d exceeds line count %d", e.Given, e.Max)
}

// ColumnTooLargeError reports a column past the end of a line.
type ColumnTooLargeError struct {
	Given uint32
	Max   uint32
}

func (e *ColumnTooLargeError) Error() string {
	return fmt.Sprintf("column %d exceeds line width %d", e.Given, e.Max)
}

// InvalidCharBoundaryError reports a byte offset that lands inside a
// multi-byte UTF-8 sequence. Offsets are never rounded to a nearby boundary;
// the caller supplied a broken span and must fix it.
type InvalidCharBoundaryError struct {
	Given uint32
}

func (e *InvalidCharBoundaryError) Error() string {
	return fmt.Sprintf("byte index %d is not a UTF-8 character boundary", e.Given)
}
