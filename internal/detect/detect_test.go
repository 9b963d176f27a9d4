package detect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const aiText = `Furthermore, it's important to note that artificial intelligence represents a paradigm shift
in how we approach problem-solving. Moreover, AI technologies can optimize and streamline
various processes across multiple industries. Additionally, machine learning algorithms
facilitate the analysis of large datasets, consequently enabling organizations to leverage
data-driven insights for strategic decision-making.`

const humanText = `Hey, I was just thinking... you know what really bugs me? When people say 'literally'
but they don't mean it literally! Like, my friend was like 'I literally died laughing'
and I'm like, no you didn't! You're still here! Anyway, that's just my random thought for today lol.`

func TestDetectAIContent(t *testing.T) {
	ai := DetectAIContent(aiText)
	human := DetectAIContent(humanText)

	assert.True(t, ai.IsAIGenerated)
	assert.False(t, human.IsAIGenerated)
	assert.Greater(t, ai.AIProbability, human.AIProbability)
	assert.InDelta(t, 1.0, ai.AIProbability+ai.HumanProbability, 0.001)
	assert.InDelta(t, 1.0, human.AIProbability+human.HumanProbability, 0.001)
}

func TestDetectAIContentEmpty(t *testing.T) {
	d := DetectAIContent("   ")
	assert.False(t, d.IsAIGenerated)
	assert.Equal(t, 0.5, d.AIProbability)
	assert.Equal(t, 0.5, d.HumanProbability)
}

func TestExtractFeatures(t *testing.T) {
	f := extractFeatures(aiText)
	require.Greater(t, f.avgSentenceLength, 0.0)
	assert.Greater(t, f.vocabularyDiversity, 0.0)
	assert.LessOrEqual(t, f.vocabularyDiversity, 1.0)
	assert.Greater(t, f.formalLanguageRatio, 0.0)
	assert.Greater(t, f.punctuationVariety, 0.0)
}

func TestDetectAIContentEnhanced(t *testing.T) {
	ai := DetectAIContentEnhanced(aiText)
	human := DetectAIContentEnhanced(humanText)

	assert.True(t, ai.IsAIGenerated)
	assert.False(t, human.IsAIGenerated)
	assert.Greater(t, ai.AIProbability, human.AIProbability)

	for _, d := range []EnhancedDetection{ai, human} {
		assert.GreaterOrEqual(t, d.Confidence, 0.5)
		assert.LessOrEqual(t, d.Confidence, 0.95)
		for _, key := range []string{"pattern_score", "linguistic_score", "structural_score"} {
			_, ok := d.AnalysisBreakdown[key]
			assert.True(t, ok, "missing breakdown %q", key)
		}
	}
}

func TestDetectAIContentEnhancedEmpty(t *testing.T) {
	d := DetectAIContentEnhanced("")
	assert.False(t, d.IsAIGenerated)
	assert.Equal(t, 0.5, d.AIProbability)
	assert.Equal(t, 0.5, d.Confidence)
}

func TestHasAdjacentRepeat(t *testing.T) {
	assert.True(t, hasAdjacentRepeat(tokenize("the the quick fox")))
	assert.False(t, hasAdjacentRepeat(tokenize("the quick brown fox")))
	assert.False(t, hasAdjacentRepeat(nil))
}
