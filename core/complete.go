package core

import (
	"strings"
	"unicode/utf8"
)

// splitTrailingToken splits input into everything up to and including the
// last blank, and the token being typed after it.
func splitTrailingToken(input string) (string, string) {
	idx := strings.LastIndexAny(input, " \t")
	if idx < 0 {
		return "", input
	}
	return input[:idx+1], input[idx+1:]
}

// CommonPrefix returns the longest rune prefix shared by all values.
func CommonPrefix(values []string) string {
	if len(values) == 0 {
		return ""
	}
	prefix := []rune(values[0])
	for _, value := range values[1:] {
		runes := []rune(value)
		n := 0
		for n < len(prefix) && n < len(runes) && prefix[n] == runes[n] {
			n++
		}
		prefix = prefix[:n]
		if n == 0 {
			break
		}
	}
	return string(prefix)
}

// formatCandidates lays out completion candidates: one line for up to ten,
// rows of four otherwise.
func formatCandidates(candidates []string) string {
	if len(candidates) <= 10 {
		return strings.Join(candidates, "  ")
	}
	var b strings.Builder
	for i, candidate := range candidates {
		if i > 0 && i%4 == 0 {
			b.WriteByte('\n')
		} else if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(candidate)
	}
	return b.String()
}

func longerThan(a, b string) bool {
	return utf8.RuneCountInString(a) > utf8.RuneCountInString(b)
}
