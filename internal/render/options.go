package render

import "fmt"

// ColorChoice controls whether styled output carries ANSI colors.
type ColorChoice uint8

const (
	// ColorAuto enables colors only when the sink is a terminal.
	ColorAuto ColorChoice = iota
	// ColorAlways enables colors unconditionally.
	ColorAlways
	// ColorNever disables colors unconditionally.
	ColorNever
)

func (c ColorChoice) String() string {
	switch c {
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	}
	return "auto"
}

// ParseColorChoice maps a flag or config value to a ColorChoice.
func ParseColorChoice(s string) (ColorChoice, error) {
	switch s {
	case "auto", "":
		return ColorAuto, nil
	case "always", "on":
		return ColorAlways, nil
	case "never", "off":
		return ColorNever, nil
	}
	return ColorAuto, fmt.Errorf("unknown color choice %q (want always|auto|never)", s)
}

// Charset selects the glyphs used for excerpt borders and markers.
type Charset uint8

const (
	// CharsetASCII draws borders with '|', '-->' and '='.
	CharsetASCII Charset = iota
	// CharsetUnicode draws borders with box-drawing characters.
	CharsetUnicode
)

func (c Charset) String() string {
	if c == CharsetUnicode {
		return "unicode"
	}
	return "ascii"
}

// ParseCharset maps a flag or config value to a Charset.
func ParseCharset(s string) (Charset, error) {
	switch s {
	case "ascii", "":
		return CharsetASCII, nil
	case "unicode":
		return CharsetUnicode, nil
	}
	return CharsetASCII, fmt.Errorf("unknown charset %q (want ascii|unicode)", s)
}

// Style controls the vertical density of the output.
type Style uint8

const (
	// StyleDefault renders full excerpt blocks with one line of context.
	StyleDefault Style = iota
	// StyleComfortable renders excerpt blocks without context lines.
	StyleComfortable
	// StyleCompact renders a single line per issue.
	StyleCompact
)

func (s Style) String() string {
	switch s {
	case StyleComfortable:
		return "comfortable"
	case StyleCompact:
		return "compact"
	}
	return "default"
}

// ParseStyle maps a flag or config value to a Style.
func ParseStyle(s string) (Style, error) {
	switch s {
	case "default", "":
		return StyleDefault, nil
	case "comfortable":
		return StyleComfortable, nil
	case "compact":
		return StyleCompact, nil
	}
	return StyleDefault, fmt.Errorf("unknown style %q (want default|comfortable|compact)", s)
}

// contextLines returns how many lines surround an annotated line.
func (s Style) contextLines() uint32 {
	if s == StyleDefault {
		return 1
	}
	return 0
}
