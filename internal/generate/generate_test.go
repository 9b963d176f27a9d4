package generate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentAllTypes(t *testing.T) {
	g := NewSeeded(1)

	types := []ContentType{
		ContentBlogPost, ContentEmail, ContentSocialMedia,
		ContentProductDescription, ContentArticle, ContentAdCopy,
	}
	for _, ct := range types {
		res := g.Content("AI and machine learning benefits", ct, 300, ToneProfessional)

		assert.Equal(t, string(ct), res.ContentType, "type %s", ct)
		assert.Equal(t, "professional", res.Tone)
		assert.NotEmpty(t, res.Content)
		assert.Greater(t, res.WordCount, 0)
		assert.Equal(t, len(strings.Fields(res.Content)), res.WordCount)
		assert.LessOrEqual(t, len(res.Content), 300)
	}
}

func TestContentSocialMediaLimit(t *testing.T) {
	g := NewSeeded(2)
	res := g.Content("productivity tips for remote workers", ContentSocialMedia, 2000, ToneCasual)

	assert.LessOrEqual(t, len(res.Content), 280)
	assert.Contains(t, res.Content, "#")
}

func TestContentEmailTones(t *testing.T) {
	g := NewSeeded(3)

	formal := g.Content("quarterly results", ContentEmail, 500, ToneFormal)
	assert.True(t, strings.HasPrefix(formal.Content, "Dear Valued Customer,"))

	casual := g.Content("quarterly results", ContentEmail, 500, ToneCasual)
	assert.True(t, strings.HasPrefix(casual.Content, "Hi there!"))
	assert.Contains(t, casual.Content, "Cheers!")
}

func TestContentDeterministicWithSeed(t *testing.T) {
	a := NewSeeded(42).Content("cloud migration", ContentAdCopy, 400, TonePersuasive)
	b := NewSeeded(42).Content("cloud migration", ContentAdCopy, 400, TonePersuasive)
	assert.Equal(t, a.Content, b.Content)
}

func TestContentTypeAndToneValidation(t *testing.T) {
	assert.True(t, ContentBlogPost.Valid())
	assert.False(t, ContentType("poem").Valid())
	assert.True(t, ToneCreative.Valid())
	assert.False(t, Tone("sarcastic").Valid())
}

func TestExtractTopics(t *testing.T) {
	topics := ExtractTopics("Improve your business with modern automation and business intelligence")

	assert.Contains(t, topics, "improve")
	assert.Contains(t, topics, "business")
	assert.LessOrEqual(t, len(topics), 5)

	// No duplicates, no stopwords, no short words.
	seen := map[string]bool{}
	for _, tp := range topics {
		assert.False(t, seen[tp])
		seen[tp] = true
		assert.False(t, topicStopwords[tp])
		assert.GreaterOrEqual(t, len(tp), 4)
	}
}

func TestMeta(t *testing.T) {
	g := NewSeeded(4)
	content := "Artificial intelligence has revolutionized the way we approach technology and business. " +
		"Companies across industries are leveraging AI to improve efficiency and reduce costs."

	res := g.Meta(content, 160)

	require.NotEmpty(t, res.MetaDescription)
	assert.LessOrEqual(t, res.Length, 160)
	assert.Equal(t, len(res.MetaDescription), res.Length)
	assert.GreaterOrEqual(t, res.SEOScore, 0.5)
	assert.LessOrEqual(t, res.SEOScore, 1.0)
	assert.NotEmpty(t, res.Suggestions)
}

func TestMetaLongFirstSentenceTruncated(t *testing.T) {
	g := NewSeeded(5)
	content := strings.Repeat("comprehensive analytics platform capability ", 10) + "delivers value."

	res := g.Meta(content, 120)
	assert.LessOrEqual(t, res.Length, 120)
}

func TestTrimToLength(t *testing.T) {
	text := "First sentence here. Second sentence follows. Third one is longer still."

	trimmed := trimToLength(text, 45)
	assert.LessOrEqual(t, len(trimmed), 45)
	assert.True(t, strings.HasPrefix(trimmed, "First sentence here."))

	assert.Equal(t, text, trimToLength(text, 500))
}
