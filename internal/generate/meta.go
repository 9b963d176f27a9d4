package generate

import (
	"fmt"
	"strings"
)

type MetaDescription struct {
	MetaDescription string   `json:"meta_description"`
	Length          int      `json:"length"`
	SEOScore        float64  `json:"seo_score"`
	Suggestions     []string `json:"suggestions"`
}

var actionWords = []string{"discover", "learn", "explore", "find", "get", "start"}

// Meta builds an SEO meta description from the first sentence of
// content, folding in missing topical keywords when they fit.
func (g *Generator) Meta(content string, maxLength int) MetaDescription {
	content = strings.TrimSpace(content)
	keywords := ExtractTopics(content)

	sentences := strings.Split(content, ". ")
	var desc string
	if len(sentences) == 0 || strings.TrimSpace(sentences[0]) == "" {
		desc = content
	} else {
		first := strings.TrimSpace(sentences[0])
		if len(first) <= maxLength {
			desc = first
		} else {
			desc = first[:maxLength-10] + "..."
		}
		for _, kw := range capTopics(keywords, 2) {
			if strings.Contains(strings.ToLower(desc), kw) {
				continue
			}
			if len(desc)+len(kw)+2 <= maxLength {
				desc = strings.TrimRight(desc, ".") + ", " + kw + "."
			}
			break
		}
	}

	if len(desc) > maxLength {
		desc = desc[:maxLength]
	}

	return MetaDescription{
		MetaDescription: desc,
		Length:          len(desc),
		SEOScore:        seoScore(desc, keywords),
		Suggestions:     seoSuggestions(desc, keywords),
	}
}

func seoScore(desc string, keywords []string) float64 {
	score := 0.5

	switch l := len(desc); {
	case l >= 140 && l <= 160:
		score += 0.2
	case l >= 120 && l <= 180:
		score += 0.1
	}

	lower := strings.ToLower(desc)
	hits := 0
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			hits++
		}
	}
	if hits > 0 {
		bonus := float64(hits) * 0.15
		if bonus > 0.3 {
			bonus = 0.3
		}
		score += bonus
	}

	if score > 1 {
		score = 1
	}
	return score
}

func seoSuggestions(desc string, keywords []string) []string {
	var suggestions []string

	if len(desc) < 120 {
		suggestions = append(suggestions, "Consider making the description longer (120-160 characters is optimal)")
	} else if len(desc) > 160 {
		suggestions = append(suggestions, "Description is too long, consider shortening to under 160 characters")
	}

	lower := strings.ToLower(desc)
	var missing []string
	for _, kw := range capTopics(keywords, 3) {
		if !strings.Contains(lower, kw) {
			missing = append(missing, kw)
		}
	}
	if len(missing) > 0 {
		suggestions = append(suggestions, fmt.Sprintf("Consider including keywords: %s", strings.Join(missing, ", ")))
	}

	hasAction := false
	for _, w := range actionWords {
		if strings.Contains(lower, w) {
			hasAction = true
			break
		}
	}
	if !hasAction {
		suggestions = append(suggestions, "Add an action word to make the description more compelling")
	}

	if len(suggestions) == 0 {
		suggestions = []string{"Meta description looks good!"}
	}
	return suggestions
}
