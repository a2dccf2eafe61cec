package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"lantern/internal/report"
	"lantern/internal/source"
)

// Builder renders reports against a source map. Options are independently
// settable through the With* chain; the zero configuration is
// {ColorAuto, CharsetASCII, StyleDefault}.
//
// A Builder is read-only during a render, so concurrent renders into
// distinct sinks are safe. Concurrent writes into the same sink are not; the
// caller serializes those.
type Builder struct {
	sources *source.Map
	colors  ColorChoice
	charset Charset
	style   Style
}

// New creates a builder with default options.
func New(sources *source.Map) *Builder {
	return &Builder{
		sources: sources,
		colors:  ColorAuto,
		charset: CharsetASCII,
		style:   StyleDefault,
	}
}

// WithColors sets the color choice.
func (b *Builder) WithColors(colors ColorChoice) *Builder {
	b.colors = colors
	return b
}

// WithCharset sets the border character set.
func (b *Builder) WithCharset(charset Charset) *Builder {
	b.charset = charset
	return b
}

// WithStyle sets the display style.
func (b *Builder) WithStyle(style Style) *Builder {
	b.style = style
	return b
}

// Render writes the reports to w in order. The first failed source lookup or
// write aborts the render; bytes already written stay written.
func (b *Builder) Render(w io.Writer, reports ...*report.Report) error {
	e := &emitter{
		p:       printer{w: w},
		pal:     newPalette(b.colorEnabled(w)),
		g:       b.charset.glyphs(),
		sources: b.sources,
		style:   b.style,
	}
	for _, r := range reports {
		if err := e.report(r); err != nil {
			return err
		}
	}
	return nil
}

// Print renders to stdout.
func (b *Builder) Print(reports ...*report.Report) error {
	return b.Render(os.Stdout, reports...)
}

// Eprint renders to stderr.
func (b *Builder) Eprint(reports ...*report.Report) error {
	return b.Render(os.Stderr, reports...)
}

// String renders into memory and returns the accumulated text.
func (b *Builder) String(reports ...*report.Report) (string, error) {
	var sb strings.Builder
	if err := b.Render(&sb, reports...); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// colorEnabled resolves the color choice against the sink. Auto asks the
// sink itself: only terminal files get colors.
func (b *Builder) colorEnabled(w io.Writer) bool {
	switch b.colors {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

// printer funnels every write through one error slot so emitters can stay
// linear. After the first failed write all further calls are no-ops.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, err := fmt.Fprintf(p.w, format, args...)
	p.err = err
}

func (p *printer) cprintf(c *color.Color, format string, args ...any) {
	if p.err != nil {
		return
	}
	_, err := c.Fprintf(p.w, format, args...)
	p.err = err
}

func (p *printer) wrapped() error {
	if p.err != nil {
		return fmt.Errorf("write diagnostic output: %w", p.err)
	}
	return nil
}
