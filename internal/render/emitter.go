package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"lantern/internal/report"
	"lantern/internal/source"
)

// emitter carries the per-render state: one sink, one resolved palette, one
// glyph set. All emission for a render call flows through here so every
// output mode produces identical bytes.
type emitter struct {
	p       printer
	pal     *palette
	g       glyphs
	sources *source.Map
	style   Style
}

func (e *emitter) report(r *report.Report) error {
	for _, issue := range r.Issues {
		if err := e.issue(issue); err != nil {
			return err
		}
	}
	if r.Footer != nil {
		if err := e.footer(r); err != nil {
			return err
		}
	}
	return e.p.wrapped()
}

func (e *emitter) issue(issue report.Issue) error {
	if e.style == StyleCompact {
		return e.compactIssue(issue)
	}

	// Resolve everything before the first byte goes out, so a malformed
	// annotation never leaves a partial excerpt behind.
	blocks, err := buildBlocks(e.sources, issue)
	if err != nil {
		return err
	}

	gutterWidth := 0
	for _, blk := range blocks {
		if w := digits(blk.maxLine(e.style.contextLines())); w > gutterWidth {
			gutterWidth = w
		}
	}

	e.header(issue)
	for _, blk := range blocks {
		e.block(blk, issue.Severity, gutterWidth)
	}
	for _, note := range issue.Notes {
		e.note(gutterWidth, note)
	}
	e.p.printf("\n")
	return e.p.wrapped()
}

// header emits "severity[code]: message" with the severity's color.
func (e *emitter) header(issue report.Issue) {
	c := e.pal.severity(issue.Severity)
	e.p.cprintf(c, "%s", issue.Severity)
	if issue.Code != "" {
		e.p.cprintf(c, "[%s]", issue.Code)
	}
	e.p.printf(": ")
	e.p.cprintf(e.pal.header, "%s\n", issue.Message)
}

// compactIssue folds the whole issue into one line, resolving the primary
// location when the issue has one.
func (e *emitter) compactIssue(issue report.Issue) error {
	span := issue.Span
	if span == nil && len(issue.Annotations) > 0 {
		span = &issue.Annotations[0].Span
	}

	c := e.pal.severity(issue.Severity)
	e.p.cprintf(c, "%s", issue.Severity)
	if issue.Code != "" {
		e.p.cprintf(c, "[%s]", issue.Code)
	}
	e.p.printf(": %s", issue.Message)

	if span != nil {
		src, err := e.sources.Get(span.Origin)
		if err != nil {
			return err
		}
		pos, err := src.Position(span.From)
		if err != nil {
			return err
		}
		e.p.printf(" at %s:%d:%d", src.Name, pos.Line, pos.Column)
	}
	e.p.printf("\n")
	return e.p.wrapped()
}

// block emits one excerpt: location header, bordered source lines, and the
// underline/connector rows beneath each annotated line.
func (e *emitter) block(blk *block, sev report.Severity, gutterWidth int) {
	loc := blk.location()
	e.p.cprintf(e.pal.gutter, "%*s%s ", gutterWidth, "", e.g.snippetStart)
	e.p.printf("%s:%d:%d\n", blk.src.Name, loc.Line, loc.Column)
	e.borderRow(gutterWidth)

	var prev uint32
	for _, line := range blk.displayLines(e.style.contextLines()) {
		if prev != 0 && line > prev+1 {
			e.p.cprintf(e.pal.gutter, "%*s%s\n", gutterWidth, "", e.g.ellipsis)
		}
		prev = line

		e.p.cprintf(e.pal.gutter, "%*d %s ", gutterWidth, line, e.g.border)
		e.p.printf("%s\n", blk.src.Line(line))

		for _, row := range layoutRows(blk.lineFragments(line)) {
			e.underlineRow(gutterWidth, row, sev)
			e.connectorRows(gutterWidth, row, sev)
		}
	}
	e.borderRow(gutterWidth)
}

// borderRow emits an empty gutter row separating block sections.
func (e *emitter) borderRow(gutterWidth int) {
	e.p.cprintf(e.pal.gutter, "%*s %s\n", gutterWidth, "", e.g.border)
}

// underlineRow draws the markers for every fragment sharing a visual row,
// left to right, and inlines the rightmost fragment's message.
func (e *emitter) underlineRow(gutterWidth int, row []fragment, sev report.Severity) {
	e.p.cprintf(e.pal.gutter, "%*s %s ", gutterWidth, "", e.g.border)
	pos := 0
	for _, f := range row {
		e.p.printf("%s", strings.Repeat(" ", f.pad-pos))
		e.p.cprintf(e.fragColor(f, sev), "%s", strings.Repeat(f.marker(), f.width))
		pos = f.pad + f.width
	}
	last := row[len(row)-1]
	if last.message != "" {
		e.p.cprintf(e.fragColor(last, sev), " %s", last.message)
	}
	e.p.printf("\n")
}

// connectorRows routes the messages of the non-rightmost fragments of a row
// down to their own lines, rightmost pending message first. Each pending
// fragment keeps a vertical bar at its start column until its message is
// placed.
func (e *emitter) connectorRows(gutterWidth int, row []fragment, sev report.Severity) {
	var pending []fragment
	for _, f := range row[:len(row)-1] {
		if f.message != "" {
			pending = append(pending, f)
		}
	}

	for len(pending) > 0 {
		// bar row
		e.p.cprintf(e.pal.gutter, "%*s %s ", gutterWidth, "", e.g.border)
		pos := 0
		for _, f := range pending {
			e.p.printf("%s", strings.Repeat(" ", f.pad-pos))
			e.p.cprintf(e.fragColor(f, sev), "|")
			pos = f.pad + 1
		}
		e.p.printf("\n")

		// message row for the rightmost pending fragment
		last := pending[len(pending)-1]
		e.p.cprintf(e.pal.gutter, "%*s %s ", gutterWidth, "", e.g.border)
		pos = 0
		for _, f := range pending[:len(pending)-1] {
			e.p.printf("%s", strings.Repeat(" ", f.pad-pos))
			e.p.cprintf(e.fragColor(f, sev), "|")
			pos = f.pad + 1
		}
		e.p.printf("%s", strings.Repeat(" ", last.pad-pos))
		e.p.cprintf(e.fragColor(last, sev), "%s\n", last.message)

		pending = pending[:len(pending)-1]
	}
}

func (e *emitter) note(gutterWidth int, text string) {
	e.p.cprintf(e.pal.gutter, "%*s %s ", gutterWidth, "", e.g.noteBullet)
	e.p.printf("note: %s\n", text)
}

// footer emits the closing block: the footer message styled with the
// report's aggregate severity, its notes, and the generated summary note
// when requested.
func (e *emitter) footer(r *report.Report) error {
	sev, ok := r.Severity()
	if !ok {
		sev = report.SeverityError
	}

	e.p.cprintf(e.pal.severity(sev), "%s", sev)
	e.p.printf(": ")
	e.p.cprintf(e.pal.header, "%s\n", r.Footer.Message)

	for _, note := range r.Footer.Notes {
		e.note(0, note)
	}
	if r.Footer.Summary {
		e.note(0, "summary: "+summarize(r))
	}
	e.p.printf("\n")
	return e.p.wrapped()
}

// summarize renders issue counts grouped by severity, ascending:
// "1 warning(s), 2 error(s)".
func summarize(r *report.Report) string {
	counts := make(map[report.Severity]int, 5)
	for _, issue := range r.Issues {
		counts[issue.Severity]++
	}

	parts := make([]string, 0, len(counts))
	for _, sev := range report.Severities() {
		if n := counts[sev]; n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s(s)", n, sev))
		}
	}
	return strings.Join(parts, ", ")
}

// fragColor picks the drawing color: primary markers carry the issue's
// severity color, secondary markers the lighter secondary color.
func (e *emitter) fragColor(f fragment, sev report.Severity) *color.Color {
	if f.typ == report.Primary {
		return e.pal.severity(sev)
	}
	return e.pal.secondary
}

// marker is the underline character: '^' for a one-cell primary, '~' for a
// wider one, '-' for secondary.
func (f fragment) marker() string {
	if f.typ == report.Primary {
		if f.width == 1 {
			return "^"
		}
		return "~"
	}
	return "-"
}

func digits(n uint32) int {
	return len(strconv.FormatUint(uint64(n), 10))
}
