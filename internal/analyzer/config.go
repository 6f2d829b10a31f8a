package analyzer

import (
	"os"
	"strconv"
)

// Emotion labels. Neutral is the fallback terminal outcome and has no
// keyword set of its own.
const (
	EmotionHappy    = "happy"
	EmotionSad      = "sad"
	EmotionAngry    = "angry"
	EmotionFear     = "fear"
	EmotionSurprise = "surprise"
	EmotionDisgust  = "disgust"
	EmotionNeutral  = "neutral"
)

// Config holds every tunable threshold. Loaded once at startup and treated
// as read-only afterwards.
type Config struct {
	// Compound fallback bounds for mood classification. Exclusive:
	// compound must be strictly above/below to leave neutral.
	HappyThreshold float64
	SadThreshold   float64

	// Sentiment crisis trigger. Inclusive: compound <= CrisisCompound AND
	// neg >= CrisisNeg fires.
	CrisisCompound float64
	CrisisNeg      float64

	// Cumulative phrase weight at or above which a crisis is flagged.
	CrisisScoreThreshold float64

	// Weight applied to crisis phrases without an explicit severity entry.
	DefaultPhraseWeight float64

	// Summary length when the caller doesn't ask for one.
	DefaultTopN int
}

func DefaultConfig() Config {
	topN := getenvInt("SUMMARY_DEFAULT_SENTENCES", 3)
	if topN < 1 {
		topN = 3
	}

	return Config{
		HappyThreshold:       getenvFloat("MOOD_HAPPY_THRESHOLD", 0.05),
		SadThreshold:         getenvFloat("MOOD_SAD_THRESHOLD", -0.05),
		CrisisCompound:       getenvFloat("CRISIS_COMPOUND_THRESHOLD", -0.8),
		CrisisNeg:            getenvFloat("CRISIS_NEG_THRESHOLD", 0.6),
		CrisisScoreThreshold: getenvFloat("CRISIS_SCORE_THRESHOLD", 0.7),
		DefaultPhraseWeight:  getenvFloat("CRISIS_DEFAULT_PHRASE_WEIGHT", 0.5),
		DefaultTopN:          topN,
	}
}

// emotionKeywords lists emotions in evaluation order. First match wins, so
// the order is the tie-break: crisis-adjacent emotions outrank generic ones,
// with happy last.
var emotionKeywords = []struct {
	label    string
	keywords []string
}{
	{EmotionSad, []string{
		"sad", "depressed", "unhappy", "miserable", "gloomy", "down",
		"blue", "melancholy",
	}},
	{EmotionFear, []string{
		"afraid", "scared", "terrified", "anxious", "worried", "nervous",
		"panic", "frightened",
	}},
	{EmotionAngry, []string{
		"angry", "mad", "furious", "irritated", "annoyed", "rage",
		"upset", "frustrated",
	}},
	{EmotionDisgust, []string{
		"disgusted", "revolted", "repulsed", "sick", "nauseated", "appalled",
	}},
	{EmotionSurprise, []string{
		"surprised", "shocked", "amazed", "astonished", "stunned", "unexpected",
	}},
	{EmotionHappy, []string{
		"happy", "joy", "excited", "amazing", "wonderful", "great",
		"fantastic", "awesome", "pleased", "delighted",
	}},
}

// crisisPhrases are matched as substrings of the lowercased text. The slice
// keeps iteration order deterministic; weights not listed in
// crisisSeverityWeights fall back to Config.DefaultPhraseWeight.
var crisisPhrases = []string{
	"suicide", "kill myself", "end my life", "hurt myself", "self harm",
	"want to die", "better off dead", "no point living", "hopeless",
	"can't go on", "end it all", "take my life", "harm myself",
	"cut myself", "overdose", "jump off", "hanging myself",
	"worthless", "useless", "burden", "everyone would be better",
	"plan to hurt", "plan to kill", "thoughts of death",
}

var crisisSeverityWeights = map[string]float64{
	"suicide":     0.9,
	"kill myself": 0.9,
	"hurt myself": 0.7,
	"hopeless":    0.6,
	"worthless":   0.5,
	"can't go on": 0.7,
	"want to die": 0.8,
}

func getenvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
