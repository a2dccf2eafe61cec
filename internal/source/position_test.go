package source

import (
	"errors"
	"testing"
	"unicode/utf8"
)

func TestPosition(t *testing.T) {
	tests := []struct {
		name    string
		content string
		offset  uint32
		want    Position
	}{
		{
			name:    "start of file",
			content: "x = 1\ny = 2\n",
			offset:  0,
			want:    Position{Line: 1, Column: 1, LineStart: 0, LineEnd: 5},
		},
		{
			name:    "middle of first line",
			content: "x = 1\ny = 2\n",
			offset:  4,
			want:    Position{Line: 1, Column: 5, LineStart: 0, LineEnd: 5},
		},
		{
			name:    "newline belongs to the line it terminates",
			content: "x = 1\ny = 2\n",
			offset:  5,
			want:    Position{Line: 1, Column: 6, LineStart: 0, LineEnd: 5},
		},
		{
			name:    "first byte of second line",
			content: "x = 1\ny = 2\n",
			offset:  6,
			want:    Position{Line: 2, Column: 1, LineStart: 6, LineEnd: 11},
		},
		{
			name:    "value on second line",
			content: "x = 1\ny = 2\n",
			offset:  9,
			want:    Position{Line: 2, Column: 4, LineStart: 6, LineEnd: 11},
		},
		{
			name:    "end of file",
			content: "x = 1\ny = 2\n",
			offset:  12,
			want:    Position{Line: 3, Column: 1, LineStart: 12, LineEnd: 12},
		},
		{
			name:    "no trailing newline",
			content: "abc",
			offset:  3,
			want:    Position{Line: 1, Column: 4, LineStart: 0, LineEnd: 3},
		},
		{
			name:    "empty source",
			content: "",
			offset:  0,
			want:    Position{Line: 1, Column: 1, LineStart: 0, LineEnd: 0},
		},
		{
			name:    "column counts scalars not bytes",
			content: "αβγ = 1\n",
			offset:  6, // after three 2-byte letters
			want:    Position{Line: 1, Column: 4, LineStart: 0, LineEnd: 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := New("test.vx", []byte(tt.content))
			got, err := src.Position(tt.offset)
			if err != nil {
				t.Fatalf("Position(%d) returned error: %v", tt.offset, err)
			}
			if got != tt.want {
				t.Errorf("Position(%d) = %+v, want %+v", tt.offset, got, tt.want)
			}
		})
	}
}

func TestPositionIndexTooLarge(t *testing.T) {
	src := New("test.vx", []byte("abc"))

	_, err := src.Position(4)
	var idxErr *IndexTooLargeError
	if !errors.As(err, &idxErr) {
		t.Fatalf("expected *IndexTooLargeError, got %v", err)
	}
	if idxErr.Given != 4 || idxErr.Max != 3 {
		t.Errorf("unexpected fields: %+v", idxErr)
	}
}

func TestPositionInvalidCharBoundary(t *testing.T) {
	// 4-byte emoji: every interior offset must be rejected, never rounded.
	src := New("test.vx", []byte("a\U0001F600b"))

	for _, offset := range []uint32{2, 3, 4} {
		_, err := src.Position(offset)
		var boundaryErr *InvalidCharBoundaryError
		if !errors.As(err, &boundaryErr) {
			t.Fatalf("Position(%d): expected *InvalidCharBoundaryError, got %v", offset, err)
		}
		if boundaryErr.Given != offset {
			t.Errorf("Position(%d): Given = %d", offset, boundaryErr.Given)
		}
	}

	for _, offset := range []uint32{0, 1, 5, 6} {
		if _, err := src.Position(offset); err != nil {
			t.Errorf("Position(%d): unexpected error %v", offset, err)
		}
	}
}

// Resolving any valid offset and re-deriving it from the line/column pair
// must reproduce the offset exactly.
func TestPositionRoundTrip(t *testing.T) {
	content := []byte("first line\nsecond αβ line\n\nlast 😀 line")
	src := New("test.vx", content)

	for offset := uint32(0); offset <= src.Len(); offset++ {
		if offset < src.Len() && !utf8.RuneStart(content[offset]) {
			continue
		}
		pos, err := src.Position(offset)
		if err != nil {
			t.Fatalf("Position(%d) returned error: %v", offset, err)
		}
		back, err := src.ColumnOffset(pos.Line, pos.Column)
		if err != nil {
			t.Fatalf("ColumnOffset(%d, %d) returned error: %v", pos.Line, pos.Column, err)
		}
		if back != offset {
			t.Errorf("round trip %d -> %d:%d -> %d", offset, pos.Line, pos.Column, back)
		}
	}
}

func TestLineSpan(t *testing.T) {
	src := New("test.vx", []byte("ab\ncd\n"))

	tests := []struct {
		line       uint32
		start, end uint32
	}{
		{line: 1, start: 0, end: 2},
		{line: 2, start: 3, end: 5},
		{line: 3, start: 6, end: 6}, // empty tail after trailing newline
	}
	for _, tt := range tests {
		start, end, err := src.LineSpan(tt.line)
		if err != nil {
			t.Fatalf("LineSpan(%d) returned error: %v", tt.line, err)
		}
		if start != tt.start || end != tt.end {
			t.Errorf("LineSpan(%d) = %d:%d, want %d:%d", tt.line, start, end, tt.start, tt.end)
		}
	}

	_, _, err := src.LineSpan(4)
	var lineErr *LineTooLargeError
	if !errors.As(err, &lineErr) {
		t.Fatalf("expected *LineTooLargeError, got %v", err)
	}
	if lineErr.Given != 4 || lineErr.Max != 3 {
		t.Errorf("unexpected fields: %+v", lineErr)
	}
}

func TestColumnOffsetTooLarge(t *testing.T) {
	src := New("test.vx", []byte("ab\n"))

	_, err := src.ColumnOffset(1, 5)
	var colErr *ColumnTooLargeError
	if !errors.As(err, &colErr) {
		t.Fatalf("expected *ColumnTooLargeError, got %v", err)
	}
	if colErr.Given != 5 || colErr.Max != 3 {
		t.Errorf("unexpected fields: %+v", colErr)
	}
}

func TestLine(t *testing.T) {
	src := New("test.vx", []byte("ab\ncd"))

	if got := src.Line(1); got != "ab" {
		t.Errorf("Line(1) = %q", got)
	}
	if got := src.Line(2); got != "cd" {
		t.Errorf("Line(2) = %q", got)
	}
	if got := src.Line(3); got != "" {
		t.Errorf("Line(3) = %q, want empty", got)
	}
}
