package analyzer

import (
	"strings"

	"github.com/spacesedan/mooddecode/internal/models"
)

// DetectCrisis flags text that indicates a mental-health crisis. The phrase
// score and the sentiment trigger are OR-combined: either alone is enough.
// False positives are acceptable here; a missed flag is not, so ambiguous
// cases at the threshold bounds count as triggering.
func (a *Analyzer) DetectCrisis(text string) (models.CrisisAssessment, error) {
	if strings.TrimSpace(text) == "" {
		return models.CrisisAssessment{}, models.ErrInvalidInput
	}

	lowered := strings.ToLower(text)

	var assessment models.CrisisAssessment
	for _, phrase := range crisisPhrases {
		if !strings.Contains(lowered, phrase) {
			continue
		}
		weight, ok := crisisSeverityWeights[phrase]
		if !ok {
			weight = a.cfg.DefaultPhraseWeight
		}
		assessment.Score += weight
		assessment.MatchedPhrases = append(assessment.MatchedPhrases, phrase)
	}

	result := a.scorer.Score(text)
	sentimentTrigger := result.Compound <= a.cfg.CrisisCompound && result.Negative >= a.cfg.CrisisNeg

	assessment.CrisisDetected = assessment.Score >= a.cfg.CrisisScoreThreshold || sentimentTrigger

	return assessment, nil
}
