package render

import (
	"sort"

	"github.com/mattn/go-runewidth"

	"lantern/internal/report"
	"lantern/internal/source"
)

// resolvedAnn is an annotation with both ends mapped to line/column.
type resolvedAnn struct {
	ann   report.Annotation
	start source.Position
	end   source.Position
}

// block is one excerpt: every annotation of an issue that points into the
// same origin, in the order the annotations were added.
type block struct {
	src  *source.Source
	anns []resolvedAnn
}

// buildBlocks resolves an issue's spans against the source map and groups
// them per origin. The issue's own span, when present, becomes an implicit
// primary annotation and pins its origin to the first block; otherwise the
// first annotation does. Any lookup failure aborts the whole issue.
func buildBlocks(sources *source.Map, issue report.Issue) ([]*block, error) {
	anns := make([]report.Annotation, 0, len(issue.Annotations)+1)
	if issue.Span != nil {
		anns = append(anns, report.PrimaryAnnotation(issue.Span.Origin, issue.Span.From, issue.Span.To))
	}
	anns = append(anns, issue.Annotations...)

	var blocks []*block
	byOrigin := make(map[string]*block, 1)
	for _, ann := range anns {
		blk, ok := byOrigin[ann.Span.Origin]
		if !ok {
			src, err := sources.Get(ann.Span.Origin)
			if err != nil {
				return nil, err
			}
			blk = &block{src: src}
			byOrigin[ann.Span.Origin] = blk
			blocks = append(blocks, blk)
		}
		start, err := blk.src.Position(ann.Span.From)
		if err != nil {
			return nil, err
		}
		end, err := blk.src.Position(ann.Span.To)
		if err != nil {
			return nil, err
		}
		blk.anns = append(blk.anns, resolvedAnn{ann: ann, start: start, end: end})
	}
	return blocks, nil
}

// location returns the position the block's header points at: the first
// primary annotation, or the first annotation when none is primary.
func (blk *block) location() source.Position {
	for _, r := range blk.anns {
		if r.ann.Type == report.Primary {
			return r.start
		}
	}
	return blk.anns[0].start
}

// displayLines returns the sorted set of lines to show: every annotated line
// plus context lines around each annotation. The empty tail line after a
// trailing newline is shown only when annotated.
func (blk *block) displayLines(context uint32) []uint32 {
	set := make(map[uint32]struct{})
	last := blk.src.LineCount()
	for _, r := range blk.anns {
		lo := r.start.Line
		if lo > context {
			lo -= context
		} else {
			lo = 1
		}
		hi := r.end.Line + context
		if hi > last {
			hi = last
		}
		for l := lo; l <= hi; l++ {
			if l == last && l > r.end.Line && blk.src.Line(l) == "" {
				continue
			}
			set[l] = struct{}{}
		}
	}
	lines := make([]uint32, 0, len(set))
	for l := range set {
		lines = append(lines, l)
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i] < lines[j] })
	return lines
}

// maxLine returns the highest line number the block will display.
func (blk *block) maxLine(context uint32) uint32 {
	lines := blk.displayLines(context)
	if len(lines) == 0 {
		return 1
	}
	return lines[len(lines)-1]
}

// fragment is the part of one annotation that lands on a single display
// line, measured in display cells so underlines align under wide runes.
type fragment struct {
	startCol uint32 // 1-based column, ordering key
	pad      int    // display cells before the underline
	width    int    // display cells under the marker, >= 1
	typ      report.AnnotationType
	message  string
}

// lineFragments collects the fragments of every annotation touching the
// given line, sorted by ascending start column. A multi-line annotation
// contributes its head (start column to end of line) on its first line and
// its tail (line start to end column, carrying the message) on its last.
func (blk *block) lineFragments(line uint32) []fragment {
	lineStart, lineEnd, err := blk.src.LineSpan(line)
	if err != nil {
		return nil
	}

	var frags []fragment
	for _, r := range blk.anns {
		if line < r.start.Line || line > r.end.Line {
			continue
		}
		if line > r.start.Line && line < r.end.Line {
			continue
		}

		from, to := r.ann.Span.From, r.ann.Span.To
		startCol := r.start.Column
		message := r.ann.Message
		switch {
		case r.start.Line == r.end.Line:
			// single-line annotation, as is
		case line == r.start.Line:
			to = lineEnd
			message = ""
		default: // line == r.end.Line
			from = lineStart
			startCol = 1
		}
		if from < lineStart {
			from = lineStart
		}
		if to > lineEnd {
			to = lineEnd
		}

		w := runewidth.StringWidth(string(blk.src.Content[from:to]))
		if w < 1 {
			w = 1
		}
		frags = append(frags, fragment{
			startCol: startCol,
			pad:      runewidth.StringWidth(string(blk.src.Content[lineStart:from])),
			width:    w,
			typ:      r.ann.Type,
			message:  message,
		})
	}

	sort.SliceStable(frags, func(i, j int) bool { return frags[i].startCol < frags[j].startCol })
	return frags
}

// layoutRows packs fragments into visual rows: fragments whose cell ranges
// are disjoint share a row, overlapping fragments stack. First-fit over
// fragments sorted by start column puts the earliest start nearest the
// source line.
func layoutRows(frags []fragment) [][]fragment {
	var rows [][]fragment
	for _, f := range frags {
		placed := false
		for i := range rows {
			if !overlapsRow(rows[i], f) {
				rows[i] = append(rows[i], f)
				placed = true
				break
			}
		}
		if !placed {
			rows = append(rows, []fragment{f})
		}
	}
	return rows
}

func overlapsRow(row []fragment, f fragment) bool {
	for _, other := range row {
		if f.pad < other.pad+other.width && other.pad < f.pad+f.width {
			return true
		}
	}
	return false
}
