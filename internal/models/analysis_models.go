package models

import "errors"

// ErrInvalidInput is returned when a request carries empty or blank text.
// It is the only error the analysis core produces; everything else is a
// documented default outcome.
var ErrInvalidInput = errors.New("invalid input: text must be a non-empty string")

// AnalyzedText is the request-scoped view of one input text. Built once by
// the preprocessor and discarded after the response.
type AnalyzedText struct {
	Original  string   `json:"original"`
	Sentences []string `json:"sentences"`
	Tokens    []string `json:"tokens"`
	// Frequencies maps each stopword-free token to its count divided by the
	// max count, so values are in (0,1].
	Frequencies map[string]float64 `json:"frequencies"`
}

// SentenceScore pairs a sentence's original position with its aggregate
// frequency score. Index is what keeps summaries in reading order.
type SentenceScore struct {
	Index int     `json:"index"`
	Score float64 `json:"score"`
}
