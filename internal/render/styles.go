package render

import (
	"github.com/fatih/color"

	"lantern/internal/report"
)

// glyphs holds the border characters selected by the Charset option.
// Underline carets stay ASCII in both sets; the charset swaps the frame.
type glyphs struct {
	border       string // gutter bar after line numbers
	snippetStart string // marker before "origin:line:col"
	ellipsis     string // gap between non-adjacent excerpt lines
	noteBullet   string // marker before note lines
}

func (c Charset) glyphs() glyphs {
	if c == CharsetUnicode {
		return glyphs{
			border:       "│",
			snippetStart: "┌─",
			ellipsis:     "·",
			noteBullet:   "═",
		}
	}
	return glyphs{
		border:       "|",
		snippetStart: "-->",
		ellipsis:     "...",
		noteBullet:   "=",
	}
}

// palette groups the colors used across one render pass. Every color is
// pre-resolved against the sink's capability so the emitters never branch on
// the color mode.
type palette struct {
	bug       *color.Color
	err       *color.Color
	warning   *color.Color
	help      *color.Color
	note      *color.Color
	secondary *color.Color
	gutter    *color.Color
	header    *color.Color
}

func newPalette(enabled bool) *palette {
	p := &palette{
		bug:       color.New(color.FgRed, color.Bold),
		err:       color.New(color.FgRed, color.Bold),
		warning:   color.New(color.FgYellow, color.Bold),
		help:      color.New(color.FgGreen, color.Bold),
		note:      color.New(color.FgCyan, color.Bold),
		secondary: color.New(color.FgBlue),
		gutter:    color.New(color.FgHiBlack),
		header:    color.New(color.Bold),
	}
	for _, c := range []*color.Color{p.bug, p.err, p.warning, p.help, p.note, p.secondary, p.gutter, p.header} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// severity returns the color carrying the visual weight of a severity.
func (p *palette) severity(s report.Severity) *color.Color {
	switch s {
	case report.SeverityBug:
		return p.bug
	case report.SeverityError:
		return p.err
	case report.SeverityWarning:
		return p.warning
	case report.SeverityHelp:
		return p.help
	default:
		return p.note
	}
}
