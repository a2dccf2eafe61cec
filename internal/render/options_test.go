package render

import "testing"

func TestParseColorChoice(t *testing.T) {
	tests := []struct {
		input string
		want  ColorChoice
		ok    bool
	}{
		{input: "", want: ColorAuto, ok: true},
		{input: "auto", want: ColorAuto, ok: true},
		{input: "always", want: ColorAlways, ok: true},
		{input: "on", want: ColorAlways, ok: true},
		{input: "never", want: ColorNever, ok: true},
		{input: "off", want: ColorNever, ok: true},
		{input: "rainbow", ok: false},
	}
	for _, tt := range tests {
		got, err := ParseColorChoice(tt.input)
		if (err == nil) != tt.ok {
			t.Errorf("ParseColorChoice(%q) err = %v", tt.input, err)
			continue
		}
		if tt.ok && got != tt.want {
			t.Errorf("ParseColorChoice(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestParseCharset(t *testing.T) {
	tests := []struct {
		input string
		want  Charset
		ok    bool
	}{
		{input: "", want: CharsetASCII, ok: true},
		{input: "ascii", want: CharsetASCII, ok: true},
		{input: "unicode", want: CharsetUnicode, ok: true},
		{input: "utf8", ok: false},
	}
	for _, tt := range tests {
		got, err := ParseCharset(tt.input)
		if (err == nil) != tt.ok {
			t.Errorf("ParseCharset(%q) err = %v", tt.input, err)
			continue
		}
		if tt.ok && got != tt.want {
			t.Errorf("ParseCharset(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestParseStyle(t *testing.T) {
	tests := []struct {
		input string
		want  Style
		ok    bool
	}{
		{input: "", want: StyleDefault, ok: true},
		{input: "default", want: StyleDefault, ok: true},
		{input: "comfortable", want: StyleComfortable, ok: true},
		{input: "compact", want: StyleCompact, ok: true},
		{input: "dense", ok: false},
	}
	for _, tt := range tests {
		got, err := ParseStyle(tt.input)
		if (err == nil) != tt.ok {
			t.Errorf("ParseStyle(%q) err = %v", tt.input, err)
			continue
		}
		if tt.ok && got != tt.want {
			t.Errorf("ParseStyle(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestOptionStrings(t *testing.T) {
	if ColorAuto.String() != "auto" || ColorAlways.String() != "always" || ColorNever.String() != "never" {
		t.Error("ColorChoice strings wrong")
	}
	if CharsetASCII.String() != "ascii" || CharsetUnicode.String() != "unicode" {
		t.Error("Charset strings wrong")
	}
	if StyleDefault.String() != "default" || StyleComfortable.String() != "comfortable" || StyleCompact.String() != "compact" {
		t.Error("Style strings wrong")
	}
}
