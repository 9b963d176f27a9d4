package analyze

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const longText = `Artificial intelligence has revolutionized the way we approach technology and business. ` +
	`In recent years, AI has become increasingly sophisticated, enabling automation of complex tasks ` +
	`that were previously thought to require human intelligence. From natural language processing ` +
	`to computer vision, AI applications are now ubiquitous in our daily lives. Companies across ` +
	`industries are leveraging AI to improve efficiency, reduce costs, and create new revenue streams.`

func TestAnalyzeSentimentPositive(t *testing.T) {
	res := AnalyzeSentiment("I love this amazing product! It works perfectly.")

	assert.Equal(t, "positive", res.Sentiment)
	assert.Greater(t, res.Confidence, 0.0)
	assert.LessOrEqual(t, res.Confidence, 0.95)
	assert.Greater(t, res.Scores["positive"], res.Scores["negative"])
	assert.Greater(t, res.Scores["polarity"], 0.1)
}

func TestAnalyzeSentimentNegative(t *testing.T) {
	res := AnalyzeSentiment("This is a terrible, awful product. I hate it, the worst purchase ever.")

	assert.Equal(t, "negative", res.Sentiment)
	assert.Greater(t, res.Scores["negative"], res.Scores["positive"])
	assert.Less(t, res.Scores["polarity"], -0.1)
}

func TestAnalyzeSentimentNeutral(t *testing.T) {
	res := AnalyzeSentiment("The meeting is scheduled for Tuesday at three.")

	assert.Equal(t, "neutral", res.Sentiment)
	assert.Equal(t, 1.0, res.Scores["neutral"])
}

func TestAnalyzeSentimentNegation(t *testing.T) {
	plain := AnalyzeSentiment("The product is good.")
	negated := AnalyzeSentiment("The product is not good.")

	assert.Less(t, negated.Scores["polarity"], plain.Scores["polarity"])
}

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"The quick brown fox jumps over the lazy dog and runs into the forest.", "en"},
		{"Bonjour, comment allez-vous? Je suis très heureux aujourd'hui!", "fr"},
		{"El gato está en la casa y es muy bonito para todos.", "es"},
		{"Das ist ein sehr schönes Haus und ich bin heute glücklich.", "de"},
		{"Привет, как дела? Сегодня хорошая погода.", "ru"},
		{"こんにちは、お元気ですか。", "ja"},
	}
	for _, tt := range tests {
		res := DetectLanguage(tt.text)
		assert.Equal(t, tt.want, res.Language, "text: %s", tt.text)
		assert.Equal(t, languageNames[tt.want], res.LanguageName)
		assert.Greater(t, res.Confidence, 0.0)
		assert.LessOrEqual(t, res.Confidence, 0.9)
	}
}

func TestDetectLanguageTooShort(t *testing.T) {
	res := DetectLanguage("a!")
	assert.Equal(t, "unknown", res.Language)
	assert.Equal(t, "Unknown", res.LanguageName)
	assert.Equal(t, 0.0, res.Confidence)
}

func TestExtractKeywords(t *testing.T) {
	res := ExtractKeywords(longText, 5)

	require.NotEmpty(t, res.Keywords)
	assert.LessOrEqual(t, len(res.Keywords), 5)
	assert.Equal(t, len(res.Keywords), res.TotalKeywords)

	// "ai" dominates the document.
	assert.Equal(t, "ai", res.Keywords[0].Word)

	for i := 1; i < len(res.Keywords); i++ {
		assert.GreaterOrEqual(t, res.Keywords[i-1].Score, res.Keywords[i].Score)
	}
	for _, k := range res.Keywords {
		assert.Greater(t, k.Score, 0.0)
		assert.LessOrEqual(t, k.Score, 1.0)
		assert.NotContains(t, englishStopwords, k.Word)
	}
}

func TestExtractKeywordsEmpty(t *testing.T) {
	res := ExtractKeywords("the and of to in", 10)
	assert.Empty(t, res.Keywords)
	assert.Zero(t, res.TotalKeywords)
}

func TestSummarizeShortTextReturnedWhole(t *testing.T) {
	text := "AI is changing everything."
	res := Summarize(text, 150, 10)

	assert.Equal(t, text, res.Summary)
	assert.Equal(t, 1.0, res.CompressionRatio)
	assert.Equal(t, res.OriginalLength, res.SummaryLength)
}

func TestSummarizeLongText(t *testing.T) {
	res := Summarize(longText, 100, 30)

	assert.NotEmpty(t, res.Summary)
	assert.LessOrEqual(t, res.SummaryLength, 100)
	assert.GreaterOrEqual(t, res.SummaryLength, 30)
	assert.Equal(t, len(longText), res.OriginalLength)
	assert.Less(t, res.CompressionRatio, 1.0)
	assert.Greater(t, res.CompressionRatio, 0.0)
}

func TestAnalyzeReadability(t *testing.T) {
	res := AnalyzeReadability(longText)

	assert.Contains(t, []string{"easy", "medium", "hard"}, res.ReadabilityLevel)
	assert.Greater(t, res.AverageSentenceLength, 0.0)
	assert.Greater(t, res.SyllableCount, 0)
	assert.Greater(t, res.GunningFogIndex, 0.0)
}

func TestAnalyzeReadabilitySimpleVsDense(t *testing.T) {
	simple := AnalyzeReadability("The cat sat. The dog ran. We had fun. It was hot.")
	dense := AnalyzeReadability(longText)

	assert.Greater(t, simple.FleschReadingEase, dense.FleschReadingEase)
	assert.Equal(t, "easy", simple.ReadabilityLevel)
}

func TestAnalyzeReadabilityEmpty(t *testing.T) {
	res := AnalyzeReadability("   ")
	assert.Equal(t, "unknown", res.ReadabilityLevel)
	assert.Zero(t, res.SyllableCount)
}

func TestCountSyllables(t *testing.T) {
	tests := map[string]int{
		"cat":       1,
		"hello":     2,
		"beautiful": 3,
		"a":         1,
		"rhythm":    1,
	}
	for word, want := range tests {
		assert.Equal(t, want, countSyllables(word), "word: %s", word)
	}
}

func TestCompareTextsIdentical(t *testing.T) {
	res := CompareTexts(longText, longText)

	assert.Equal(t, 1.0, res.SimilarityScore)
	assert.Equal(t, 1.0, res.SemanticSimilarity)
	assert.Equal(t, 1.0, res.StructuralSimilarity)
	assert.NotEmpty(t, res.CommonKeywords)
	assert.Empty(t, res.Differences)
}

func TestCompareTextsDisjoint(t *testing.T) {
	res := CompareTexts(
		"Quantum computers exploit superposition for parallel computation.",
		"My grandmother bakes wonderful apple pies every autumn weekend.",
	)

	assert.Equal(t, 0.0, res.SimilarityScore)
	assert.Equal(t, 0.0, res.SemanticSimilarity)
	assert.Empty(t, res.CommonKeywords)
	require.Len(t, res.Differences, 2)
	assert.True(t, strings.HasPrefix(res.Differences[0], "only the first text"))
	assert.True(t, strings.HasPrefix(res.Differences[1], "only the second text"))
}

func TestCompareTextsRelated(t *testing.T) {
	res := CompareTexts(
		"Machine learning models analyze large datasets to find patterns.",
		"Machine learning systems process large datasets looking for patterns.",
	)

	assert.Greater(t, res.SimilarityScore, 0.3)
	assert.Greater(t, res.SemanticSimilarity, res.SimilarityScore*0.5)
	assert.Contains(t, res.CommonKeywords, "machine")
}
