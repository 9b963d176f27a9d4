package analyze

import "math"

type Sentiment struct {
	Sentiment  string             `json:"sentiment"`
	Confidence float64            `json:"confidence"`
	Scores     map[string]float64 `json:"scores"`
}

type lexEntry struct {
	polarity     float64
	subjectivity float64
}

// Compact polarity lexicon. Values follow the usual -1..1 / 0..1
// conventions of pattern-style sentiment lexicons.
var sentimentLexicon = map[string]lexEntry{
	"amazing": {0.6, 0.9}, "awesome": {1.0, 1.0}, "awful": {-1.0, 1.0},
	"bad": {-0.7, 0.67}, "beautiful": {0.85, 1.0}, "best": {1.0, 0.3},
	"better": {0.5, 0.5}, "boring": {-1.0, 1.0}, "brilliant": {0.9, 0.9},
	"broken": {-0.4, 0.4}, "clean": {0.37, 0.55}, "comfortable": {0.5, 0.6},
	"confusing": {-0.5, 0.9}, "cool": {0.35, 0.65}, "delicious": {1.0, 1.0},
	"delightful": {1.0, 1.0}, "disappointing": {-0.6, 0.7}, "disgusting": {-1.0, 1.0},
	"dreadful": {-1.0, 1.0}, "easy": {0.43, 0.83}, "enjoyable": {0.5, 0.5},
	"excellent": {1.0, 1.0}, "exciting": {0.45, 0.8}, "fail": {-0.5, 0.5},
	"fantastic": {0.4, 0.9}, "fast": {0.2, 0.6}, "favorite": {0.5, 1.0},
	"fine": {0.42, 0.54}, "flawless": {0.8, 0.8}, "friendly": {0.38, 0.75},
	"fun": {0.3, 0.2}, "glad": {0.5, 1.0}, "good": {0.7, 0.6},
	"great": {0.8, 0.75}, "happy": {0.8, 1.0}, "hate": {-0.8, 0.9},
	"helpful": {0.4, 0.5}, "horrible": {-1.0, 1.0}, "impressive": {0.9, 1.0},
	"incredible": {0.9, 0.9}, "interesting": {0.5, 0.5}, "lie": {-0.5, 0.75},
	"love": {0.5, 0.6}, "lovely": {0.5, 0.75}, "mediocre": {-0.3, 0.5},
	"nasty": {-1.0, 1.0}, "nice": {0.6, 1.0}, "outstanding": {0.9, 0.9},
	"pathetic": {-1.0, 1.0}, "perfect": {1.0, 1.0}, "perfectly": {1.0, 1.0},
	"pleasant": {0.73, 0.87}, "poor": {-0.4, 0.6}, "problem": {-0.3, 0.3},
	"recommend": {0.4, 0.4}, "reliable": {0.5, 0.6}, "remarkable": {0.75, 0.75},
	"rude": {-0.75, 0.9}, "sad": {-0.5, 1.0}, "slow": {-0.3, 0.4},
	"solid": {0.3, 0.4}, "stunning": {0.8, 0.9}, "stupid": {-0.8, 0.9},
	"superb": {1.0, 0.9}, "terrible": {-1.0, 1.0}, "terrific": {0.8, 0.9},
	"trust": {0.3, 0.4}, "ugly": {-0.7, 0.9}, "unhappy": {-0.6, 1.0},
	"unreliable": {-0.5, 0.6}, "useful": {0.3, 0.3}, "useless": {-0.5, 0.4},
	"waste": {-0.4, 0.4}, "weak": {-0.4, 0.5}, "wonderful": {1.0, 1.0},
	"worst": {-1.0, 1.0}, "worthless": {-0.8, 0.7}, "wrong": {-0.5, 0.6},
}

var negators = map[string]bool{
	"not": true, "no": true, "never": true, "cannot": true,
	"n't": true, "don't": true, "doesn't": true, "didn't": true,
	"isn't": true, "wasn't": true, "aren't": true, "won't": true,
	"can't": true, "couldn't": true, "wouldn't": true, "shouldn't": true,
}

// AnalyzeSentiment scores text with the polarity lexicon. Polarity and
// subjectivity are averages over lexicon hits; a negator directly
// before a hit flips its polarity at half strength.
func AnalyzeSentiment(text string) Sentiment {
	words := Words(text)

	var polSum, subSum float64
	var hits int
	for i, w := range words {
		e, ok := sentimentLexicon[w]
		if !ok {
			continue
		}
		pol := e.polarity
		if i > 0 && negators[words[i-1]] {
			pol *= -0.5
		}
		polSum += pol
		subSum += e.subjectivity
		hits++
	}

	var polarity, subjectivity float64
	if hits > 0 {
		polarity = polSum / float64(hits)
		subjectivity = subSum / float64(hits)
	}

	var label string
	switch {
	case polarity > 0.1:
		label = "positive"
	case polarity < -0.1:
		label = "negative"
	default:
		label = "neutral"
	}

	confidence := math.Min(0.95, math.Abs(polarity)*0.8+subjectivity*0.2)

	var pos, neg, neu float64
	switch label {
	case "positive":
		pos = (polarity + 1) / 2
		neu = 1 - pos
	case "negative":
		neg = math.Abs(polarity)
		neu = 1 - neg
	default:
		neu = 1 - math.Abs(polarity)
		pos = math.Max(0, polarity) * 0.5
		neg = math.Max(0, -polarity) * 0.5
	}

	return Sentiment{
		Sentiment:  label,
		Confidence: round3(confidence),
		Scores: map[string]float64{
			"positive":     round3(pos),
			"negative":     round3(neg),
			"neutral":      round3(neu),
			"polarity":     round3(polarity),
			"subjectivity": round3(subjectivity),
		},
	}
}
