// Tests for VisibleWidth, the column-width measurement the status banner
// and any fixed-width layout in cmd/coreedit/render.go use to keep
// truncation and padding aligned with what the terminal actually draws.

package text

import "testing"

func TestVisibleWidth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "empty string", input: "", want: 0},
		{name: "ascii", input: "hello", want: 5},
		{name: "ansi colored", input: "\x1b[31mred\x1b[0m", want: 3},
		{name: "cjk", input: "你好", want: 4},
		{name: "mixed", input: "hi\x1b[1m!\x1b[0m", want: 3},
		{name: "emoji", input: "👋", want: 2},
		{name: "only ansi", input: "\x1b[31m\x1b[0m", want: 0},
		{name: "tabs not plain ascii", input: "a\tb", want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := VisibleWidth(tt.input)
			if got != tt.want {
				t.Errorf("VisibleWidth(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsPlainASCII(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "plain ascii", input: "hello world!", want: true},
		{name: "with escape", input: "hello\x1b[31m", want: false},
		{name: "with tab", input: "a\tb", want: false},
		{name: "with newline", input: "a\nb", want: false},
		{name: "empty", input: "", want: true},
		{name: "unicode", input: "caf√©", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := isPlainASCII(tt.input)
			if got != tt.want {
				t.Errorf("isPlainASCII(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestGraphemeWidth_EastAsianAmbiguous(t *testing.T) {
	t.Parallel()

	// U+00B1 PLUS-MINUS SIGN is classified Ambiguous: 2 columns in an
	// East-Asian locale, 1 in a Western one. graphemeWidth takes the
	// narrow-terminal-safe reading (1) rather than go-runewidth's
	// locale-independent default for this codepoint.
	if got := graphemeWidth("±"); got != 1 {
		t.Errorf("graphemeWidth(U+00B1) = %d, want 1", got)
	}
}

func TestGraphemeWidth_EastAsianFullwidth(t *testing.T) {
	t.Parallel()

	// U+FF21 FULLWIDTH LATIN CAPITAL LETTER A is unambiguously Fullwidth.
	if got := graphemeWidth("Ａ"); got != 2 {
		t.Errorf("graphemeWidth(U+FF21) = %d, want 2", got)
	}
}

func BenchmarkVisibleWidth_ASCII(b *testing.B) {
	s := "This is a plain ASCII string for benchmarking"
	for b.Loop() {
		VisibleWidth(s)
	}
}

func BenchmarkVisibleWidth_ANSI(b *testing.B) {
	s := "\x1b[31;1mColored\x1b[0m and \x1b[4munderlined\x1b[0m text"
	for b.Loop() {
		VisibleWidth(s)
	}
}

func BenchmarkVisibleWidth_Unicode(b *testing.B) {
	s := "‰Ω†Â•Ω‰∏ñÁïå Hello üåç"
	for b.Loop() {
		VisibleWidth(s)
	}
}
