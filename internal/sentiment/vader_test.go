package sentiment_test

import (
	"math"
	"testing"

	"github.com/spacesedan/mooddecode/internal/sentiment"
)

func TestVADERScorer_Polarity(t *testing.T) {
	scorer := sentiment.NewVADERScorer()

	tests := []struct {
		name string
		text string
		sign float64
	}{
		{"positive text", "I love this wonderful sunny day", 1},
		{"negative text", "I hate this horrible miserable day", -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := scorer.Score(tt.text)
			if result.Compound*tt.sign <= 0 {
				t.Errorf("Score(%q).Compound = %v, want sign %v", tt.text, result.Compound, tt.sign)
			}
		})
	}
}

func TestVADERScorer_ProportionsSumToOne(t *testing.T) {
	scorer := sentiment.NewVADERScorer()

	result := scorer.Score("The meeting was fine, nothing remarkable happened.")
	sum := result.Negative + result.Neutral + result.Positive
	if math.Abs(sum-1) > 0.01 {
		t.Errorf("neg+neu+pos = %v, want ~1", sum)
	}
	if result.Compound < -1 || result.Compound > 1 {
		t.Errorf("compound %v outside [-1,1]", result.Compound)
	}
}

func TestVADERScorer_Deterministic(t *testing.T) {
	scorer := sentiment.NewVADERScorer()

	first := scorer.Score("mixed feelings about all of this")
	second := scorer.Score("mixed feelings about all of this")
	if first != second {
		t.Errorf("identical input scored differently: %+v vs %+v", first, second)
	}
}

func TestVADERScorer_MarkdownNormalized(t *testing.T) {
	scorer := sentiment.NewVADERScorer()

	plain := scorer.Score("what a wonderful day")
	marked := scorer.Score("what a **wonderful** day")
	if plain != marked {
		t.Errorf("markdown emphasis changed the score: %+v vs %+v", plain, marked)
	}
}
