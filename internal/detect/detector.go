// Package detect estimates whether text was machine-generated, using
// phrase patterns and linguistic features. Scores are heuristic
// probabilities, not classifications backed by a trained model.
package detect

import (
	"math"
	"regexp"
	"strings"
)

type Detection struct {
	IsAIGenerated    bool    `json:"is_ai_generated"`
	Confidence       float64 `json:"confidence"`
	AIProbability    float64 `json:"ai_probability"`
	HumanProbability float64 `json:"human_probability"`
}

const aiThreshold = 0.6

var aiPhrasePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:as an AI|I don't have personal|I cannot|I'm not able to|I don't actually)\b`),
	regexp.MustCompile(`(?i)\b(?:furthermore|moreover|additionally|consequently|therefore)\b`),
	regexp.MustCompile(`(?i)\b(?:it's important to note|it's worth mentioning|keep in mind)\b`),
	regexp.MustCompile(`(?i)\b(?:comprehensive guide|step-by-step|in-depth analysis)\b`),
	regexp.MustCompile(`(?i)\b(?:cutting-edge|state-of-the-art|revolutionary|innovative)\b`),
	regexp.MustCompile(`(?i)\b(?:optimize|streamline|enhance|facilitate|leverage)\b.*?\b(?:optimize|streamline|enhance|facilitate|leverage)\b`),
	regexp.MustCompile(`(?i)\b(?:in conclusion|to summarize|in summary)\b`),
	regexp.MustCompile(`(?i)\b(?:game-changer|paradigm shift|unlock potential)\b`),
}

var humanPhrasePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:I think|I believe|in my opinion|personally|from my experience)\b`),
	regexp.MustCompile(`(?i)\b(?:um|uh|well|you know|like|actually)\b`),
	regexp.MustCompile(`[.!?]{2,}`),
	regexp.MustCompile(`(?i)\b(?:lol|haha|omg|wtf)\b`),
	regexp.MustCompile(`['"]\w+['"]\s`),
}

var formalWords = []string{
	"furthermore", "moreover", "additionally", "consequently", "therefore",
	"comprehensive", "extensive", "significant", "substantial", "considerable",
	"optimize", "enhance", "facilitate", "leverage", "implement",
	"methodology", "framework", "paradigm", "systematic", "strategic",
}

var neutralDetection = Detection{
	IsAIGenerated:    false,
	Confidence:       0.5,
	AIProbability:    0.5,
	HumanProbability: 0.5,
}

// DetectAIContent scores text against phrase patterns and stylistic
// features. The 0.6 threshold decides the boolean verdict.
func DetectAIContent(text string) Detection {
	if strings.TrimSpace(text) == "" {
		return neutralDetection
	}

	f := extractFeatures(text)
	p := aiProbability(f, text)

	return Detection{
		IsAIGenerated:    p > aiThreshold,
		Confidence:       round3(math.Min(0.95, 0.5+math.Abs(p-0.5))),
		AIProbability:    round3(p),
		HumanProbability: round3(1 - p),
	}
}

type features struct {
	avgSentenceLength   float64
	vocabularyDiversity float64
	wordRepetition      float64
	punctuationVariety  float64
	formalLanguageRatio float64
}

func extractFeatures(text string) features {
	words := tokenize(text)
	sentences := splitSentences(text)

	var f features
	if len(sentences) > 0 {
		f.avgSentenceLength = float64(len(words)) / float64(len(sentences))
	}
	if len(words) > 0 {
		unique := make(map[string]bool, len(words))
		for _, w := range words {
			unique[w] = true
		}
		f.vocabularyDiversity = float64(len(unique)) / float64(len(words))
	}
	f.wordRepetition = wordRepetition(words)
	f.punctuationVariety = punctuationVariety(text)
	f.formalLanguageRatio = formalLanguageRatio(words)
	return f
}

func aiProbability(f features, text string) float64 {
	var score, totalWeight float64

	aiMatches, humanMatches := 0, 0
	for _, p := range aiPhrasePatterns {
		if p.MatchString(text) {
			aiMatches++
		}
	}
	if hasAdjacentRepeat(tokenize(text)) {
		aiMatches++
	}
	for _, p := range humanPhrasePatterns {
		if p.MatchString(text) {
			humanMatches++
		}
	}
	total := aiMatches + humanMatches
	if total < 1 {
		total = 1
	}
	score += float64(aiMatches-humanMatches) / float64(total) * 0.3
	totalWeight += 0.3

	if f.avgSentenceLength >= 15 && f.avgSentenceLength <= 25 {
		score += 0.2
	}
	totalWeight += 0.2

	switch {
	case f.vocabularyDiversity < 0.6:
		score += 0.15
	case f.vocabularyDiversity > 0.8:
		score -= 0.1
	}
	totalWeight += 0.15

	switch {
	case f.wordRepetition < 0.1:
		score += 0.1
	case f.wordRepetition > 0.3:
		score -= 0.05
	}
	totalWeight += 0.1

	if f.formalLanguageRatio > 0.3 {
		score += f.formalLanguageRatio * 0.15
	}
	totalWeight += 0.15

	if f.punctuationVariety < 0.2 {
		score += 0.1
	}
	totalWeight += 0.1

	if totalWeight > 0 {
		score /= totalWeight
	}
	return clamp01(0.5 + score)
}

func wordRepetition(words []string) float64 {
	if len(words) == 0 {
		return 0
	}
	counts := make(map[string]int, len(words))
	for _, w := range words {
		counts[w]++
	}
	repeated := 0
	for _, c := range counts {
		if c > 1 {
			repeated++
		}
	}
	return float64(repeated) / float64(len(counts))
}

// hasAdjacentRepeat reports a word immediately repeating itself, a
// glitch pattern the regexp engine cannot express without
// backreferences.
func hasAdjacentRepeat(words []string) bool {
	for i := 1; i < len(words); i++ {
		if words[i] == words[i-1] {
			return true
		}
	}
	return false
}

var punctuationMarks = ".!?,;:-()\"'"

// punctuationVariety is the normalized Shannon diversity of
// punctuation usage.
func punctuationVariety(text string) float64 {
	counts := make(map[rune]int)
	total := 0
	for _, r := range text {
		if strings.ContainsRune(punctuationMarks, r) {
			counts[r]++
			total++
		}
	}
	if total == 0 {
		return 0
	}
	var diversity float64
	for _, c := range counts {
		p := float64(c) / float64(total)
		diversity -= p * math.Log2(p)
	}
	max := math.Log2(float64(len(punctuationMarks)))
	return diversity / max
}

func formalLanguageRatio(words []string) float64 {
	if len(words) == 0 {
		return 0
	}
	n := 0
	for _, w := range words {
		for _, f := range formalWords {
			if strings.Contains(w, f) {
				n++
				break
			}
		}
	}
	return float64(n) / float64(len(words))
}
