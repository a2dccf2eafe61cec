package source

import (
	"fmt"
	"sort"
	"unicode/utf8"

	"fortio.org/safecast"
)

// Position is a resolved location inside a source.
//
// Line and Column are 1-based. Column counts Unicode scalar values from the
// line start, not bytes. LineStart/LineEnd are the byte offsets of the
// containing line, excluding its terminating newline.
type Position struct {
	Line      uint32
	Column    uint32
	LineStart uint32
	LineEnd   uint32
}

// Position maps a byte offset to a line/column pair.
//
// The offset must lie in [0, Len()]. An offset pointing at a '\n' belongs to
// the line that newline terminates. An offset strictly inside a multi-byte
// UTF-8 sequence yields *InvalidCharBoundaryError.
func (s *Source) Position(offset uint32) (Position, error) {
	n := s.Len()
	if offset > n {
		return Position{}, &IndexTooLargeError{Given: offset, Max: n}
	}
	if offset < n && !utf8.RuneStart(s.Content[offset]) {
		return Position{}, &InvalidCharBoundaryError{Given: offset}
	}

	// First newline at or after the offset; everything before it is on
	// earlier lines.
	i := sort.Search(len(s.lineIdx), func(k int) bool {
		return s.lineIdx[k] >= offset
	})

	var lineStart uint32
	if i > 0 {
		lineStart = s.lineIdx[i-1] + 1
	}
	lineEnd := n
	if i < len(s.lineIdx) {
		lineEnd = s.lineIdx[i]
	}

	col, err := safecast.Conv[uint32](utf8.RuneCount(s.Content[lineStart:offset]) + 1)
	if err != nil {
		panic(fmt.Errorf("column overflow at offset %d: %w", offset, err))
	}
	line, err := safecast.Conv[uint32](i + 1)
	if err != nil {
		panic(fmt.Errorf("line overflow at offset %d: %w", offset, err))
	}

	return Position{
		Line:      line,
		Column:    col,
		LineStart: lineStart,
		LineEnd:   lineEnd,
	}, nil
}

// LineSpan returns the byte range [start, end) of a 1-based line, excluding
// the terminating newline. Lines past the end yield *LineTooLargeError.
func (s *Source) LineSpan(line uint32) (start, end uint32, err error) {
	max := s.LineCount()
	if line == 0 || line > max {
		return 0, 0, &LineTooLargeError{Given: line, Max: max}
	}
	if line > 1 {
		start = s.lineIdx[line-2] + 1
	}
	end = s.Len()
	if int(line-1) < len(s.lineIdx) {
		end = s.lineIdx[line-1]
	}
	return start, end, nil
}

// Line returns the text of a 1-based line without its newline, or "" when
// the line does not exist.
func (s *Source) Line(line uint32) string {
	start, end, err := s.LineSpan(line)
	if err != nil {
		return ""
	}
	return string(s.Content[start:end])
}

// ColumnOffset re-derives the byte offset of a 1-based line/column pair.
// Columns count Unicode scalar values; column len+1 addresses the position
// just past the line's last character. A larger column yields
// *ColumnTooLargeError.
func (s *Source) ColumnOffset(line, column uint32) (uint32, error) {
	start, end, err := s.LineSpan(line)
	if err != nil {
		return 0, err
	}
	if column == 0 {
		return 0, &ColumnTooLargeError{Given: column, Max: 1}
	}

	off := start
	for col := uint32(1); col < column; col++ {
		if off >= end {
			width, cerr := safecast.Conv[uint32](utf8.RuneCount(s.Content[start:end]) + 1)
			if cerr != nil {
				panic(fmt.Errorf("line width overflow: %w", cerr))
			}
			return 0, &ColumnTooLargeError{Given: column, Max: width}
		}
		_, size := utf8.DecodeRune(s.Content[off:end])
		off += uint32(size)
	}
	return off, nil
}
