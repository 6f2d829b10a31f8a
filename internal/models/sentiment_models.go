package models

// SentimentResult holds one VADER polarity reading. Compound is in [-1,1];
// Negative, Neutral and Positive are proportions in [0,1] that sum to ~1.
type SentimentResult struct {
	Compound float64 `json:"compound"`
	Negative float64 `json:"neg"`
	Neutral  float64 `json:"neu"`
	Positive float64 `json:"pos"`
}
