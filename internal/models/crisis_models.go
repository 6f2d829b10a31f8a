package models

// CrisisAssessment is the outcome of one crisis check. Score is the sum of
// matched phrase weights; CrisisDetected is true when either the phrase score
// or the sentiment trigger fired.
type CrisisAssessment struct {
	Score          float64  `json:"score"`
	CrisisDetected bool     `json:"crisis_detected"`
	MatchedPhrases []string `json:"matched_phrases,omitempty"`
}
