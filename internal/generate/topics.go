package generate

import (
	"regexp"
	"strings"
)

var topicWordRe = regexp.MustCompile(`\b[a-zA-Z]{4,}\b`)

var topicStopwords = map[string]bool{
	"that": true, "with": true, "have": true, "this": true, "will": true,
	"your": true, "from": true, "they": true, "know": true, "want": true,
	"been": true, "good": true, "much": true, "some": true, "time": true,
	"very": true, "when": true, "come": true, "here": true, "just": true,
	"like": true, "long": true, "make": true, "many": true, "over": true,
	"such": true, "take": true, "than": true, "them": true, "well": true,
	"work": true,
}

// ExtractTopics pulls up to five distinct topical words out of text.
func ExtractTopics(text string) []string {
	words := topicWordRe.FindAllString(strings.ToLower(text), -1)

	seen := make(map[string]bool, len(words))
	var topics []string
	for _, w := range words {
		if topicStopwords[w] || seen[w] {
			continue
		}
		seen[w] = true
		topics = append(topics, w)
		if len(topics) == 5 {
			break
		}
	}
	return topics
}

func hashtags(topics []string) string {
	tags := make([]string, 0, 3)
	for _, t := range capTopics(topics, 3) {
		tags = append(tags, "#"+strings.ReplaceAll(t, " ", ""))
	}
	return strings.Join(tags, " ")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func title(s string) string {
	fields := strings.Fields(strings.ToLower(s))
	for i, f := range fields {
		fields[i] = capitalize(f)
	}
	return strings.Join(fields, " ")
}

// trimToLength cuts text at a sentence boundary when possible, at a
// word boundary otherwise.
func trimToLength(text string, maxLength int) string {
	if len(text) <= maxLength {
		return text
	}

	var b strings.Builder
	for _, sentence := range strings.Split(text, ". ") {
		if b.Len()+len(sentence)+2 > maxLength {
			break
		}
		b.WriteString(sentence + ". ")
	}

	if b.Len() == 0 {
		for _, word := range strings.Fields(text) {
			if b.Len()+len(word)+1 > maxLength {
				break
			}
			b.WriteString(word + " ")
		}
	}

	return strings.TrimSpace(b.String())
}
