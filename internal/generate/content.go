// Package generate produces template-driven marketing and editorial
// content: typed content pieces and SEO meta descriptions.
package generate

import (
	"fmt"
	"math/rand"
	"strings"
)

type ContentType string

const (
	ContentBlogPost           ContentType = "blog_post"
	ContentEmail              ContentType = "email"
	ContentSocialMedia        ContentType = "social_media"
	ContentProductDescription ContentType = "product_description"
	ContentArticle            ContentType = "article"
	ContentAdCopy             ContentType = "ad_copy"
)

func (c ContentType) Valid() bool {
	switch c {
	case ContentBlogPost, ContentEmail, ContentSocialMedia,
		ContentProductDescription, ContentArticle, ContentAdCopy:
		return true
	}
	return false
}

type Tone string

const (
	ToneProfessional Tone = "professional"
	ToneCasual       Tone = "casual"
	ToneFriendly     Tone = "friendly"
	ToneFormal       Tone = "formal"
	TonePersuasive   Tone = "persuasive"
	ToneCreative     Tone = "creative"
)

func (t Tone) Valid() bool {
	switch t {
	case ToneProfessional, ToneCasual, ToneFriendly, ToneFormal, TonePersuasive, ToneCreative:
		return true
	}
	return false
}

var toneModifiers = map[Tone][]string{
	ToneProfessional: {"leverage", "optimize", "streamline", "enhance", "facilitate"},
	ToneCasual:       {"awesome", "cool", "great", "fun", "easy"},
	ToneFriendly:     {"wonderful", "amazing", "fantastic", "delightful", "perfect"},
	ToneFormal:       {"furthermore", "therefore", "consequently", "moreover", "nevertheless"},
	TonePersuasive:   {"proven", "guaranteed", "exclusive", "limited", "revolutionary"},
	ToneCreative:     {"innovative", "unique", "imaginative", "artistic", "original"},
}

type Content struct {
	Content     string `json:"content"`
	ContentType string `json:"content_type"`
	WordCount   int    `json:"word_count"`
	Tone        string `json:"tone"`
}

// Generator builds content pieces. The rand source only varies word
// choice within a tone, never structure.
type Generator struct {
	rng *rand.Rand
}

func New() *Generator {
	return &Generator{rng: rand.New(rand.NewSource(rand.Int63()))}
}

// NewSeeded returns a deterministic generator for tests.
func NewSeeded(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

func (g *Generator) Content(prompt string, contentType ContentType, maxLength int, tone Tone) Content {
	var body string
	switch contentType {
	case ContentBlogPost:
		body = g.blogPost(prompt, maxLength, tone)
	case ContentEmail:
		body = g.email(prompt, maxLength, tone)
	case ContentSocialMedia:
		body = g.socialMedia(prompt, maxLength, tone)
	case ContentProductDescription:
		body = g.productDescription(prompt, maxLength, tone)
	case ContentArticle:
		body = g.article(prompt, maxLength, tone)
	case ContentAdCopy:
		body = g.adCopy(prompt, maxLength, tone)
	default:
		body = g.generic(prompt, maxLength, tone)
	}

	return Content{
		Content:     body,
		ContentType: string(contentType),
		WordCount:   len(strings.Fields(body)),
		Tone:        string(tone),
	}
}

func (g *Generator) pick(tone Tone) string {
	words := toneModifiers[tone]
	if len(words) == 0 {
		return "effective"
	}
	return words[g.rng.Intn(len(words))]
}

func (g *Generator) blogPost(prompt string, maxLength int, tone Tone) string {
	topics := ExtractTopics(prompt)

	var b strings.Builder
	fmt.Fprintf(&b, "In today's digital landscape, %s has become increasingly important. ", strings.ToLower(prompt))

	for i, topic := range capTopics(topics, 3) {
		fmt.Fprintf(&b, "%d. %s is %s for achieving your goals. ", i+1, capitalize(topic), g.pick(tone))
	}

	fmt.Fprintf(&b, "By implementing these strategies, you can %s improve your approach to %s.", g.pick(tone), strings.ToLower(prompt))

	return trimToLength(b.String(), maxLength)
}

func (g *Generator) email(prompt string, maxLength int, tone Tone) string {
	greeting, closing := "Hello,", "Best regards,"
	switch tone {
	case ToneFormal:
		greeting = "Dear Valued Customer,"
	case ToneCasual:
		greeting, closing = "Hi there!", "Cheers!"
	}

	body := fmt.Sprintf("I hope this email finds you well. I wanted to reach out regarding %s. ", strings.ToLower(prompt))
	switch tone {
	case TonePersuasive:
		body += "This is an exclusive opportunity that I believe would be perfect for you. "
	case ToneFriendly:
		body += "I thought you might find this interesting and valuable. "
	default:
		body += "I believe this information could be beneficial for you. "
	}
	body += "Please let me know if you have any questions or would like to discuss further."

	return trimToLength(greeting+"\n\n"+body+"\n\n"+closing, maxLength)
}

func (g *Generator) socialMedia(prompt string, maxLength int, tone Tone) string {
	if maxLength > 280 {
		maxLength = 280
	}

	var b strings.Builder
	switch tone {
	case ToneCasual:
		fmt.Fprintf(&b, "Just discovered something amazing about %s! ", strings.ToLower(prompt))
	case ToneProfessional:
		fmt.Fprintf(&b, "Insights on %s that every professional should know: ", strings.ToLower(prompt))
	case ToneCreative:
		fmt.Fprintf(&b, "Unleashing the power of %s. ", strings.ToLower(prompt))
	default:
		fmt.Fprintf(&b, "Key insights about %s: ", strings.ToLower(prompt))
	}

	topics := ExtractTopics(prompt)
	if len(topics) > 0 {
		fmt.Fprintf(&b, "Focus on %s for maximum impact. ", topics[0])
	}
	b.WriteString(hashtags(topics))

	return trimToLength(b.String(), maxLength)
}

func (g *Generator) productDescription(prompt string, maxLength int, tone Tone) string {
	topics := ExtractTopics(prompt)

	var b strings.Builder
	fmt.Fprintf(&b, "Introducing %s - the %s solution for your needs. ", title(prompt), g.pick(tone))

	features := make([]string, 0, 3)
	for _, topic := range capTopics(topics, 3) {
		features = append(features, capitalize(g.pick(tone))+" "+topic)
	}
	if len(features) > 0 {
		b.WriteString("Key features include: " + strings.Join(features, ", ") + ". ")
	}

	if tone == TonePersuasive {
		b.WriteString("Don't miss out - order yours today!")
	} else {
		b.WriteString("Perfect for anyone looking to improve their experience.")
	}

	return trimToLength(b.String(), maxLength)
}

func (g *Generator) article(prompt string, maxLength int, tone Tone) string {
	topics := ExtractTopics(prompt)

	var b strings.Builder
	fmt.Fprintf(&b, "In recent years, %s has gained significant attention. This article explores the key aspects and implications.", strings.ToLower(prompt))

	for i, topic := range capTopics(topics, 4) {
		fmt.Fprintf(&b, "\n\n%d. %s\n", i+1, title(topic))
		fmt.Fprintf(&b, "When considering %s, it's important to understand the fundamental principles. ", topic)
	}

	fmt.Fprintf(&b, "\n\nIn conclusion, %s represents a significant opportunity for growth and improvement. By focusing on these key areas, you can achieve better results.", strings.ToLower(prompt))

	return trimToLength(b.String(), maxLength)
}

func (g *Generator) adCopy(prompt string, maxLength int, tone Tone) string {
	headlines := []string{
		fmt.Sprintf("Transform Your %s Today!", title(prompt)),
		fmt.Sprintf("The %s %s Solution", capitalize(g.pick(tone)), title(prompt)),
		fmt.Sprintf("Discover the Secret to Better %s", title(prompt)),
	}
	headline := headlines[g.rng.Intn(len(headlines))]

	var b strings.Builder
	b.WriteString(headline + "\n\n")
	fmt.Fprintf(&b, "Are you ready to revolutionize your approach to %s? ", strings.ToLower(prompt))
	fmt.Fprintf(&b, "Our %s solution delivers results that exceed expectations. ", g.pick(tone))

	topics := ExtractTopics(prompt)
	if len(topics) > 0 {
		fmt.Fprintf(&b, "Experience improved %s and enhanced performance. ", topics[0])
	}

	ctas := []string{
		"Get started today!",
		"Don't wait - act now!",
		"Transform your results today!",
		"Unlock your potential now!",
	}
	b.WriteString(ctas[g.rng.Intn(len(ctas))])

	return trimToLength(b.String(), maxLength)
}

func (g *Generator) generic(prompt string, maxLength int, tone Tone) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s is %s in today's world. ", capitalize(prompt), g.pick(tone))

	for _, topic := range capTopics(ExtractTopics(prompt), 3) {
		fmt.Fprintf(&b, "Consider the impact of %s on your objectives. ", topic)
	}

	fmt.Fprintf(&b, "By understanding these concepts, you can make more informed decisions about %s.", strings.ToLower(prompt))

	return trimToLength(b.String(), maxLength)
}

func capTopics(topics []string, n int) []string {
	if len(topics) > n {
		return topics[:n]
	}
	return topics
}
