package analyzer

import (
	"sort"
	"strings"

	"github.com/spacesedan/mooddecode/internal/models"
	"github.com/spacesedan/mooddecode/internal/textproc"
)

// Summarize picks the topN highest-scoring sentences and re-joins them in
// their original order. topN <= 0 is rejected; text with topN sentences or
// fewer comes back whole.
func (a *Analyzer) Summarize(text string, topN int) (string, error) {
	if topN <= 0 {
		return "", models.ErrInvalidInput
	}

	analyzed, err := textproc.Preprocess(text)
	if err != nil {
		return "", err
	}

	sentences := analyzed.Sentences
	if len(sentences) <= topN {
		return strings.Join(sentences, " "), nil
	}

	scores := scoreSentences(sentences, analyzed.Frequencies)

	// Stable sort keeps the earliest sentence first among equal scores.
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Score > scores[j].Score
	})
	top := scores[:topN]

	// Reading order, never rank order.
	sort.Slice(top, func(i, j int) bool {
		return top[i].Index < top[j].Index
	})

	selected := make([]string, 0, topN)
	for _, score := range top {
		selected = append(selected, sentences[score.Index])
	}

	return strings.Join(selected, " "), nil
}

// scoreSentences sums each sentence's normalized token weights. Stopwords
// have no frequency entry, so they contribute nothing; a sentence with no
// scorable tokens scores 0.
func scoreSentences(sentences []string, frequencies map[string]float64) []models.SentenceScore {
	scores := make([]models.SentenceScore, len(sentences))
	for i, sentence := range sentences {
		var total float64
		for _, token := range textproc.Tokenize(sentence) {
			total += frequencies[token]
		}
		scores[i] = models.SentenceScore{Index: i, Score: total}
	}
	return scores
}
