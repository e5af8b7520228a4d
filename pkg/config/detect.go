package config

import "strings"

const detectScanBytes = 4096

// DetectIndent implements §9's heuristic: scan the first 4 KiB of text,
// histogram each line's leading-whitespace delta against the previous
// line's, and pick the modal (style, size). Ties prefer tabs. This is a
// guess, not a contract — callers fall back to it only when no
// document-local Config was found.
func DetectIndent(text string) (IndentStyle, int) {
	if len(text) > detectScanBytes {
		text = text[:detectScanBytes]
	}
	lines := strings.Split(text, "\n")

	type key struct {
		style IndentStyle
		size  int
	}
	counts := make(map[key]int)

	var prevIndent string
	for _, line := range lines {
		indent := leadingWhitespace(line)
		if strings.TrimSpace(line) == "" {
			continue
		}
		if len(indent) > len(prevIndent) && strings.HasPrefix(indent, prevIndent) {
			delta := indent[len(prevIndent):]
			style, size := classify(delta)
			if size > 0 {
				counts[key{style, size}]++
			}
		}
		prevIndent = indent
	}

	if len(counts) == 0 {
		return IndentSpace, 4
	}

	var best key
	bestCount := -1
	for k, n := range counts {
		if n > bestCount || (n == bestCount && k.style == IndentTab && best.style != IndentTab) {
			best, bestCount = k, n
		}
	}
	return best.style, best.size
}

func leadingWhitespace(line string) string {
	i := 0
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	return line[:i]
}

func classify(delta string) (IndentStyle, int) {
	if delta == "" {
		return "", 0
	}
	tabs, spaces := 0, 0
	for _, r := range delta {
		if r == '\t' {
			tabs++
		} else {
			spaces++
		}
	}
	if tabs > 0 && spaces == 0 {
		return IndentTab, tabs
	}
	if spaces > 0 && tabs == 0 {
		return IndentSpace, spaces
	}
	// Mixed delta: not a clean signal, ignore.
	return "", 0
}
