package analyzer

import (
	"regexp"
	"strings"

	"github.com/spacesedan/mooddecode/internal/models"
)

type moodMatcher struct {
	label    string
	patterns []*regexp.Regexp
}

// moodMatchers compiles the emotion keyword table into word-boundary
// matchers once at startup, keeping the priority order of emotionKeywords.
var moodMatchers = buildMoodMatchers()

func buildMoodMatchers() []moodMatcher {
	matchers := make([]moodMatcher, 0, len(emotionKeywords))
	for _, entry := range emotionKeywords {
		patterns := make([]*regexp.Regexp, 0, len(entry.keywords))
		for _, keyword := range entry.keywords {
			patterns = append(patterns, regexp.MustCompile(`\b`+regexp.QuoteMeta(keyword)+`\b`))
		}
		matchers = append(matchers, moodMatcher{label: entry.label, patterns: patterns})
	}
	return matchers
}

// ClassifyMood returns one emotion label for the text. A keyword hit always
// wins over the sentiment score; with no keyword hit the compound score maps
// to happy, sad or neutral.
func (a *Analyzer) ClassifyMood(text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", models.ErrInvalidInput
	}

	lowered := strings.ToLower(text)
	for _, matcher := range moodMatchers {
		for _, pattern := range matcher.patterns {
			if pattern.MatchString(lowered) {
				return matcher.label, nil
			}
		}
	}

	result := a.scorer.Score(text)
	switch {
	case result.Compound > a.cfg.HappyThreshold:
		return EmotionHappy, nil
	case result.Compound < a.cfg.SadThreshold:
		return EmotionSad, nil
	default:
		return EmotionNeutral, nil
	}
}
