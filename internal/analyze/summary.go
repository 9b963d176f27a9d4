package analyze

import "strings"

type Summary struct {
	Summary          string  `json:"summary"`
	OriginalLength   int     `json:"original_length"`
	SummaryLength    int     `json:"summary_length"`
	CompressionRatio float64 `json:"compression_ratio"`
}

// Summarize produces an extractive summary: the leading sentences that
// fit maxLength, a truncated first sentence when none fit, and a
// word-level fallback when the result is shorter than minLength.
func Summarize(text string, maxLength, minLength int) Summary {
	text = strings.TrimSpace(text)

	if len(text) <= maxLength {
		return Summary{
			Summary:          text,
			OriginalLength:   len(text),
			SummaryLength:    len(text),
			CompressionRatio: 1.0,
		}
	}

	sentences := strings.Split(text, ". ")

	var picked []string
	length := 0
	for _, sentence := range sentences {
		sentence = strings.TrimSpace(sentence)
		if sentence == "" {
			continue
		}
		if !strings.HasSuffix(sentence, ".") {
			sentence += "."
		}
		if length+len(sentence)+1 <= maxLength {
			picked = append(picked, sentence)
			length += len(sentence) + 1
		} else {
			break
		}
	}

	var summary string
	if len(picked) == 0 && len(sentences) > 0 {
		first := strings.TrimSpace(sentences[0])
		if len(first) > maxLength {
			summary = first[:maxLength-3] + "..."
		} else {
			summary = first + "."
		}
	} else {
		summary = strings.Join(picked, " ")
	}

	// Too short: rebuild from leading words instead.
	if len(summary) < minLength && len(text) > minLength {
		words := strings.Fields(text)
		var kept []string
		length = 0
		for _, w := range words {
			if length+len(w)+1 > maxLength {
				break
			}
			kept = append(kept, w)
			length += len(w) + 1
		}
		summary = strings.Join(kept, " ") + "..."
	}

	ratio := 0.0
	if len(text) > 0 {
		ratio = float64(len(summary)) / float64(len(text))
	}
	return Summary{
		Summary:          summary,
		OriginalLength:   len(text),
		SummaryLength:    len(summary),
		CompressionRatio: round3(ratio),
	}
}
