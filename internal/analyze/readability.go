package analyze

import "strings"

type Readability struct {
	FleschKincaidGrade    float64 `json:"flesch_kincaid_grade"`
	FleschReadingEase     float64 `json:"flesch_reading_ease"`
	GunningFogIndex       float64 `json:"gunning_fog_index"`
	ReadabilityLevel      string  `json:"readability_level"`
	AverageSentenceLength float64 `json:"average_sentence_length"`
	SyllableCount         int     `json:"syllable_count"`
}

var emptyReadability = Readability{ReadabilityLevel: "unknown"}

// AnalyzeReadability computes Flesch Reading Ease, the Flesch-Kincaid
// grade and the Gunning Fog index from sentence, word and syllable
// counts.
func AnalyzeReadability(text string) Readability {
	sentences := Sentences(text)
	words := Words(text)
	if len(sentences) == 0 || len(words) == 0 {
		return emptyReadability
	}

	var syllables, complexWords int
	for _, w := range words {
		n := countSyllables(w)
		syllables += n
		if n >= 3 {
			complexWords++
		}
	}

	avgSentenceLen := float64(len(words)) / float64(len(sentences))
	avgSyllables := float64(syllables) / float64(len(words))

	readingEase := 206.835 - 1.015*avgSentenceLen - 84.6*avgSyllables
	kincaidGrade := 0.39*avgSentenceLen + 11.8*avgSyllables - 15.59
	gunningFog := 0.4 * (avgSentenceLen + 100*float64(complexWords)/float64(len(words)))

	var level string
	switch {
	case readingEase >= 60:
		level = "easy"
	case readingEase >= 30:
		level = "medium"
	default:
		level = "hard"
	}

	return Readability{
		FleschKincaidGrade:    round2(kincaidGrade),
		FleschReadingEase:     round2(readingEase),
		GunningFogIndex:       round2(gunningFog),
		ReadabilityLevel:      level,
		AverageSentenceLength: round2(avgSentenceLen),
		SyllableCount:         syllables,
	}
}

// countSyllables estimates syllables by counting vowel groups, with
// the usual silent-e adjustment.
func countSyllables(word string) int {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return 1
	}

	const vowels = "aeiouy"
	n := 0
	prevVowel := false
	for _, r := range word {
		isVowel := strings.ContainsRune(vowels, r)
		if isVowel && !prevVowel {
			n++
		}
		prevVowel = isVowel
	}
	if strings.HasSuffix(word, "e") && n > 1 {
		n--
	}
	if n == 0 {
		n = 1
	}
	return n
}
