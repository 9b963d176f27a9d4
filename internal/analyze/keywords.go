package analyze

import (
	"math"
	"sort"
)

type Keyword struct {
	Word  string  `json:"word"`
	Score float64 `json:"score"`
}

type Keywords struct {
	Keywords      []Keyword `json:"keywords"`
	TotalKeywords int       `json:"total_keywords"`
}

// English stopwords, close to the usual vectorizer list.
var englishStopwords = set(
	"a", "about", "above", "after", "again", "against", "all", "am", "an",
	"and", "any", "are", "as", "at", "be", "because", "been", "before",
	"being", "below", "between", "both", "but", "by", "can", "could",
	"did", "do", "does", "doing", "down", "during", "each", "few", "for",
	"from", "further", "had", "has", "have", "having", "he", "her", "here",
	"hers", "him", "his", "how", "i", "if", "in", "into", "is", "it",
	"its", "itself", "just", "me", "more", "most", "my", "myself", "no",
	"nor", "not", "now", "of", "off", "on", "once", "only", "or", "other",
	"our", "ours", "out", "over", "own", "s", "same", "she", "should",
	"so", "some", "such", "t", "than", "that", "the", "their", "theirs",
	"them", "then", "there", "these", "they", "this", "those", "through",
	"to", "too", "under", "until", "up", "very", "was", "we", "were",
	"what", "when", "where", "which", "while", "who", "whom", "why",
	"will", "with", "would", "you", "your", "yours", "yourself",
)

// ExtractKeywords ranks unigrams and bigrams of a single document by
// L2-normalized term frequency (single-document TF-IDF degenerates to
// exactly that). Stopwords are removed before n-grams are formed.
func ExtractKeywords(text string, maxKeywords int) Keywords {
	if maxKeywords <= 0 {
		maxKeywords = 10
	}

	var terms []string
	for _, w := range Words(text) {
		if len(w) < 2 || englishStopwords[w] {
			continue
		}
		terms = append(terms, w)
	}
	if len(terms) == 0 {
		return Keywords{Keywords: []Keyword{}}
	}

	counts := make(map[string]int, len(terms)*2)
	for i, t := range terms {
		counts[t]++
		if i+1 < len(terms) {
			counts[t+" "+terms[i+1]]++
		}
	}

	var sumSq float64
	for _, c := range counts {
		sumSq += float64(c) * float64(c)
	}
	norm := math.Sqrt(sumSq)

	ranked := make([]Keyword, 0, len(counts))
	for term, c := range counts {
		ranked = append(ranked, Keyword{Word: term, Score: float64(c) / norm})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Word < ranked[j].Word
	})

	if len(ranked) > maxKeywords {
		ranked = ranked[:maxKeywords]
	}
	for i := range ranked {
		ranked[i].Score = round3(ranked[i].Score)
	}

	return Keywords{Keywords: ranked, TotalKeywords: len(ranked)}
}
