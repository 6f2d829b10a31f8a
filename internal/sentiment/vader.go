package sentiment

import (
	"github.com/jonreiter/govader"

	"github.com/spacesedan/mooddecode/internal/models"
	"github.com/spacesedan/mooddecode/internal/textproc"
)

// Scorer produces a polarity reading for a text. Implementations are
// stateless and safe for concurrent use; scoring well-formed text never
// fails.
type Scorer interface {
	Score(text string) models.SentimentResult
}

// VADERScorer scores text with the VADER lexicon. The underlying analyzer
// loads its lexicon once and is read-only afterwards.
type VADERScorer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func NewVADERScorer() *VADERScorer {
	return &VADERScorer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

func (s *VADERScorer) Score(text string) models.SentimentResult {
	plainText := textproc.NormalizeText(text)

	sentiment := s.analyzer.PolarityScores(plainText)

	return models.SentimentResult{
		Compound: sentiment.Compound,
		Negative: sentiment.Negative,
		Neutral:  sentiment.Neutral,
		Positive: sentiment.Positive,
	}
}
