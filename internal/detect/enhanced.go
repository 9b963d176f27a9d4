package detect

import (
	"math"
	"regexp"
	"strings"
)

type EnhancedDetection struct {
	IsAIGenerated     bool               `json:"is_ai_generated"`
	Confidence        float64            `json:"confidence"`
	AIProbability     float64            `json:"ai_probability"`
	HumanProbability  float64            `json:"human_probability"`
	AnalysisBreakdown map[string]float64 `json:"analysis_breakdown"`
}

type weightedPattern struct {
	re     *regexp.Regexp
	weight float64
}

var enhancedAIPatterns = []weightedPattern{
	{regexp.MustCompile(`(?i)\b(?:as an AI|I don't have personal|I cannot|I'm not able to|I don't actually)\b`), 0.9},
	{regexp.MustCompile(`(?is)\b(?:furthermore|moreover|additionally|consequently|therefore)\b.*?\b(?:furthermore|moreover|additionally|consequently|therefore)\b`), 0.8},
	{regexp.MustCompile(`(?i)\b(?:it's important to note|it's worth mentioning|keep in mind)\b`), 0.7},
	{regexp.MustCompile(`(?i)\b(?:comprehensive guide|step-by-step|in-depth analysis)\b`), 0.6},
	{regexp.MustCompile(`(?is)\b(?:cutting-edge|state-of-the-art|revolutionary|innovative)\b.*?\b(?:cutting-edge|state-of-the-art|revolutionary|innovative)\b`), 0.6},
	{regexp.MustCompile(`(?is)\b(?:optimize|streamline|enhance|facilitate|leverage)\b.*?\b(?:optimize|streamline|enhance|facilitate|leverage)\b`), 0.5},
	{regexp.MustCompile(`(?i)\b(?:in conclusion|to summarize|in summary)\b`), 0.5},
	{regexp.MustCompile(`(?i)\b(?:paradigm shift|game-changer|unlock potential)\b`), 0.6},
	{regexp.MustCompile(`(?m)^\d+\.\s`), 0.3},
	{regexp.MustCompile(`(?i)\b(?:firstly|secondly|thirdly|finally)\b`), 0.4},
	{regexp.MustCompile(`(?i)\b(?:methodology|framework|systematic|strategic)\b`), 0.3},
}

var enhancedHumanPatterns = []weightedPattern{
	{regexp.MustCompile(`(?i)\b(?:I think|I believe|in my opinion|personally|from my experience)\b`), -0.4},
	{regexp.MustCompile(`(?i)\b(?:um|uh|well|you know|like|actually)\b`), -0.6},
	{regexp.MustCompile(`[.!?]{2,}`), -0.3},
	{regexp.MustCompile(`(?i)\b(?:lol|haha|omg|wtf|tbh|imo)\b`), -0.7},
	{regexp.MustCompile(`['"]\w+['"]\s`), -0.2},
	{regexp.MustCompile(`(?i)\b(?:kinda|sorta|gonna|wanna)\b`), -0.5},
	{regexp.MustCompile(`(?::\)|:\(|:D|;\)|xD)`), -0.6},
}

var (
	numberedItemRe     = regexp.MustCompile(`(?m)^\s*\d+\.`)
	sequentialMarkerRe = regexp.MustCompile(`(?i)\b(?:first|second|third|fourth|fifth|finally|in conclusion)\b`)
	transitionWordRe   = regexp.MustCompile(`(?i)\b(?:however|therefore|furthermore|moreover|additionally|consequently|nevertheless)\b`)
)

// DetectAIContentEnhanced blends three analyses: weighted phrase
// patterns (0.4), linguistic features (0.4) and document structure
// (0.2). Confidence reflects consensus between the three.
func DetectAIContentEnhanced(text string) EnhancedDetection {
	if strings.TrimSpace(text) == "" {
		return EnhancedDetection{
			Confidence:       0.5,
			AIProbability:    0.5,
			HumanProbability: 0.5,
			AnalysisBreakdown: map[string]float64{
				"pattern_score":    0.5,
				"linguistic_score": 0.5,
				"structural_score": 0.5,
			},
		}
	}

	pattern := patternAnalysis(text)
	linguistic := linguisticAnalysis(text)
	structural := structuralAnalysis(text)

	p := clamp01(pattern*0.4 + linguistic*0.4 + structural*0.2)

	scores := []float64{pattern, linguistic, structural}
	confidence := 0.5
	if m := mean(scores); m > 0 {
		confidence = 1 - stddev(scores)/m
	}
	confidence = math.Max(0.5, math.Min(0.95, confidence))

	return EnhancedDetection{
		IsAIGenerated:    p > aiThreshold,
		Confidence:       round3(confidence),
		AIProbability:    round3(p),
		HumanProbability: round3(1 - p),
		AnalysisBreakdown: map[string]float64{
			"pattern_score":    round3(pattern),
			"linguistic_score": round3(linguistic),
			"structural_score": round3(structural),
		},
	}
}

func patternAnalysis(text string) float64 {
	score := 0.5
	for _, p := range enhancedAIPatterns {
		if n := len(p.re.FindAllStringIndex(text, -1)); n > 0 {
			score += float64(n) * p.weight * 0.1
		}
	}
	for _, p := range enhancedHumanPatterns {
		if n := len(p.re.FindAllStringIndex(text, -1)); n > 0 {
			score += float64(n) * p.weight * 0.1
		}
	}
	return clamp01(score)
}

func linguisticAnalysis(text string) float64 {
	sentences := splitSentences(text)
	words := tokenize(text)
	if len(sentences) == 0 || len(words) == 0 {
		return 0.5
	}

	var feats []float64

	// Consistent sentence lengths read as machine-written.
	lengths := make([]float64, len(sentences))
	for i, s := range sentences {
		lengths[i] = float64(len(strings.Fields(s)))
	}
	if len(lengths) > 1 && mean(lengths) > 0 {
		cv := stddev(lengths) / mean(lengths)
		feats = append(feats, 1-math.Min(1, cv))
	} else {
		feats = append(feats, 0.5)
	}

	var wordLen float64
	for _, w := range words {
		wordLen += float64(len(w))
	}
	avgWordLen := wordLen / float64(len(words))
	feats = append(feats, clamp01((avgWordLen-3)/5))

	freq := make(map[string]int, len(words))
	maxFreq := 0
	for _, w := range words {
		freq[w]++
		if freq[w] > maxFreq {
			maxFreq = freq[w]
		}
	}
	feats = append(feats, math.Min(1, float64(maxFreq)/float64(len(words))))

	complexity := make([]float64, len(sentences))
	for i, s := range sentences {
		complexity[i] = math.Min(1, float64(len(strings.Fields(s))+strings.Count(s, ",")*2)/20)
	}
	feats = append(feats, clamp01(1-stddev(complexity)))

	return clamp01(mean(feats))
}

func structuralAnalysis(text string) float64 {
	indicators := 0.0

	if len(numberedItemRe.FindAllStringIndex(text, -1)) >= 3 {
		indicators += 0.3
	}
	if len(sequentialMarkerRe.FindAllStringIndex(text, -1)) >= 2 {
		indicators += 0.2
	}

	paragraphs := strings.Split(text, "\n\n")
	if len(paragraphs) > 1 {
		var lengths []float64
		for _, p := range paragraphs {
			if strings.TrimSpace(p) != "" {
				lengths = append(lengths, float64(len(strings.Fields(p))))
			}
		}
		if len(lengths) > 0 && mean(lengths) > 0 && stddev(lengths)/mean(lengths) < 0.5 {
			indicators += 0.2
		}
	}

	wordCount := len(strings.Fields(text))
	if wordCount > 0 {
		density := float64(len(transitionWordRe.FindAllStringIndex(text, -1))) / float64(wordCount)
		if density > 0.02 {
			indicators += 0.3
		}
	}

	return math.Min(1, 0.5+indicators)
}
