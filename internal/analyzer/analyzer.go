// Package analyzer is the text-analysis decision engine: mood classification,
// crisis detection and extractive summarization over one request's text.
// Everything here is a pure function of the input plus the read-only tables
// in config.go, so instances are safe to share across requests.
package analyzer

import (
	"github.com/spacesedan/mooddecode/internal/sentiment"
)

type Analyzer struct {
	scorer sentiment.Scorer
	cfg    Config
}

func New(scorer sentiment.Scorer, cfg Config) *Analyzer {
	return &Analyzer{scorer: scorer, cfg: cfg}
}

func (a *Analyzer) Config() Config {
	return a.cfg
}
