package analyze

import (
	"fmt"
	"math"
	"sort"
)

type Comparison struct {
	SimilarityScore      float64  `json:"similarity_score"`
	SemanticSimilarity   float64  `json:"semantic_similarity"`
	StructuralSimilarity float64  `json:"structural_similarity"`
	CommonKeywords       []string `json:"common_keywords"`
	Differences          []string `json:"differences"`
}

// CompareTexts measures how alike two texts are: lexical overlap
// (Jaccard over word sets), semantic similarity (cosine over term
// frequencies) and structural similarity (sentence count and length
// profiles).
func CompareTexts(text1, text2 string) Comparison {
	words1 := contentWords(text1)
	words2 := contentWords(text2)

	return Comparison{
		SimilarityScore:      round3(jaccard(words1, words2)),
		SemanticSimilarity:   round3(cosine(words1, words2)),
		StructuralSimilarity: round3(structural(text1, text2)),
		CommonKeywords:       commonKeywords(words1, words2),
		Differences:          differences(words1, words2),
	}
}

func contentWords(text string) map[string]int {
	freq := make(map[string]int)
	for _, w := range Words(text) {
		if len(w) < 2 || englishStopwords[w] {
			continue
		}
		freq[w]++
	}
	return freq
}

func jaccard(a, b map[string]int) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}
	inter := 0
	for w := range a {
		if _, ok := b[w]; ok {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}

func cosine(a, b map[string]int) float64 {
	var dot, na, nb float64
	for w, ca := range a {
		na += float64(ca) * float64(ca)
		if cb, ok := b[w]; ok {
			dot += float64(ca) * float64(cb)
		}
	}
	for _, cb := range b {
		nb += float64(cb) * float64(cb)
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

func structural(text1, text2 string) float64 {
	s1, s2 := Sentences(text1), Sentences(text2)
	w1, w2 := Words(text1), Words(text2)

	countSim := ratioSim(float64(len(s1)), float64(len(s2)))

	var avg1, avg2 float64
	if len(s1) > 0 {
		avg1 = float64(len(w1)) / float64(len(s1))
	}
	if len(s2) > 0 {
		avg2 = float64(len(w2)) / float64(len(s2))
	}
	lengthSim := ratioSim(avg1, avg2)

	return (countSim + lengthSim) / 2
}

func ratioSim(a, b float64) float64 {
	if a == 0 && b == 0 {
		return 1
	}
	max := math.Max(a, b)
	if max == 0 {
		return 0
	}
	return 1 - math.Abs(a-b)/max
}

func commonKeywords(a, b map[string]int) []string {
	common := []string{}
	for w := range a {
		if _, ok := b[w]; ok {
			common = append(common, w)
		}
	}
	sort.Slice(common, func(i, j int) bool {
		ci, cj := a[common[i]]+b[common[i]], a[common[j]]+b[common[j]]
		if ci != cj {
			return ci > cj
		}
		return common[i] < common[j]
	})
	if len(common) > 10 {
		common = common[:10]
	}
	return common
}

func differences(a, b map[string]int) []string {
	onlyA := topExclusive(a, b)
	onlyB := topExclusive(b, a)

	diffs := []string{}
	if len(onlyA) > 0 {
		diffs = append(diffs, fmt.Sprintf("only the first text mentions: %s", joinWords(onlyA)))
	}
	if len(onlyB) > 0 {
		diffs = append(diffs, fmt.Sprintf("only the second text mentions: %s", joinWords(onlyB)))
	}
	return diffs
}

func topExclusive(a, b map[string]int) []string {
	var out []string
	for w := range a {
		if _, ok := b[w]; !ok {
			out = append(out, w)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if a[out[i]] != a[out[j]] {
			return a[out[i]] > a[out[j]]
		}
		return out[i] < out[j]
	})
	if len(out) > 3 {
		out = out[:3]
	}
	return out
}

func joinWords(words []string) string {
	s := ""
	for i, w := range words {
		if i > 0 {
			s += ", "
		}
		s += w
	}
	return s
}
