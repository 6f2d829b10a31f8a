package textproc

import (
	"regexp"
	"strings"

	"github.com/russross/blackfriday/v2"

	"github.com/spacesedan/mooddecode/internal/models"
)

var (
	linkPattern = regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	urlPattern  = regexp.MustCompile(`https?://\S+|www\.\S+`)
	tagPattern  = regexp.MustCompile(`<[^>]*>`)
	wordPattern = regexp.MustCompile(`[a-z0-9]+`)
)

var entityReplacer = strings.NewReplacer(
	"&amp;", "&",
	"&quot;", "\"",
	"&#39;", "'",
	"&lt;", "<",
	"&gt;", ">",
)

func RemoveLinks(input string) string {
	input = linkPattern.ReplaceAllString(input, "$1") // Keep only the text

	return urlPattern.ReplaceAllString(input, "")
}

// NormalizeText renders markdown to plain text and strips links, so pasted
// rich text is scored on its words rather than its syntax.
func NormalizeText(input string) string {
	output := blackfriday.Run([]byte(input), blackfriday.WithNoExtensions())
	plain := tagPattern.ReplaceAllString(string(output), " ")
	plain = entityReplacer.Replace(plain)
	plain = strings.Join(strings.Fields(plain), " ")

	return strings.TrimSpace(RemoveLinks(plain))
}

// SplitSentences splits on terminal punctuation runs (. ! ?) followed by
// whitespace or end of text. Casing and order are preserved; trailing text
// without terminal punctuation counts as its own sentence.
func SplitSentences(text string) []string {
	var sentences []string

	last := 0
	for i := 0; i < len(text); i++ {
		if !isTerminal(text[i]) {
			continue
		}
		j := i + 1
		for j < len(text) && isTerminal(text[j]) {
			j++
		}
		if j < len(text) && !isSpace(text[j]) {
			i = j - 1
			continue
		}
		if s := strings.TrimSpace(text[last:j]); s != "" {
			sentences = append(sentences, s)
		}
		last = j
		i = j - 1
	}
	if s := strings.TrimSpace(text[last:]); s != "" {
		sentences = append(sentences, s)
	}

	return sentences
}

// Tokenize lowercases text and returns its alphanumeric runs with stopwords
// removed.
func Tokenize(text string) []string {
	var tokens []string
	for _, token := range wordPattern.FindAllString(strings.ToLower(text), -1) {
		if IsStopword(token) {
			continue
		}
		tokens = append(tokens, token)
	}

	return tokens
}

// Preprocess builds the request-scoped AnalyzedText: sentences, stopword-free
// tokens, and token weights normalized by the max count. Blank input and
// markdown that normalizes to nothing both fail with ErrInvalidInput.
func Preprocess(text string) (models.AnalyzedText, error) {
	if strings.TrimSpace(text) == "" {
		return models.AnalyzedText{}, models.ErrInvalidInput
	}

	plain := NormalizeText(text)
	sentences := SplitSentences(plain)
	if len(sentences) == 0 {
		return models.AnalyzedText{}, models.ErrInvalidInput
	}

	tokens := Tokenize(plain)

	counts := make(map[string]int, len(tokens))
	maxCount := 0
	for _, token := range tokens {
		counts[token]++
		if counts[token] > maxCount {
			maxCount = counts[token]
		}
	}

	frequencies := make(map[string]float64, len(counts))
	for token, count := range counts {
		frequencies[token] = float64(count) / float64(maxCount)
	}

	return models.AnalyzedText{
		Original:    text,
		Sentences:   sentences,
		Tokens:      tokens,
		Frequencies: frequencies,
	}, nil
}

func isTerminal(c byte) bool {
	return c == '.' || c == '!' || c == '?'
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
