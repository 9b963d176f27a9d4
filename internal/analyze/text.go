// Package analyze implements the text analysis primitives behind the
// API: sentiment, language detection, keyword extraction, summarizing,
// readability scoring and text comparison.
package analyze

import (
	"regexp"
	"strings"
)

var (
	wordRe     = regexp.MustCompile(`[\pL\pN]+(?:'[\pL]+)?`)
	sentenceRe = regexp.MustCompile(`[.!?]+`)
)

// Words returns the word tokens of s, lowercased.
func Words(s string) []string {
	raw := wordRe.FindAllString(s, -1)
	out := make([]string, 0, len(raw))
	for _, w := range raw {
		out = append(out, strings.ToLower(w))
	}
	return out
}

// Sentences splits s on terminal punctuation and drops empty parts.
func Sentences(s string) []string {
	parts := sentenceRe.Split(s, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func round3(f float64) float64 {
	if f < 0 {
		return float64(int(f*1000-0.5)) / 1000
	}
	return float64(int(f*1000+0.5)) / 1000
}

func round2(f float64) float64 {
	if f < 0 {
		return float64(int(f*100-0.5)) / 100
	}
	return float64(int(f*100+0.5)) / 100
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
