package analyzer_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/spacesedan/mooddecode/internal/models"
)

// sixSentences has a controlled vocabulary: "cats" appears three times and
// dominates the frequency table, so the three cat sentences score highest.
const sixSentences = "Cats chase mice. Dogs bark loudly. Cats nap often. " +
	"Birds sing sweetly. Cats purr happily. Fish swim."

func TestSummarize_PicksHighestScoringInOriginalOrder(t *testing.T) {
	a := newAnalyzer(neutralSentiment)

	summary, err := a.Summarize(sixSentences, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "Cats chase mice. Cats nap often. Cats purr happily."
	if summary != want {
		t.Errorf("summary = %q, want %q", summary, want)
	}
}

func TestSummarize_OrderIsPositional_NeverByScore(t *testing.T) {
	a := newAnalyzer(neutralSentiment)

	// The highest-scoring sentence is the last one; it must still appear
	// after the lower-scoring earlier pick.
	text := "Dogs bark loudly. Birds sing sweetly. Cats cats cats chase cats."
	summary, err := a.Summarize(text, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.HasSuffix(summary, "Cats cats cats chase cats.") {
		t.Errorf("top-scoring sentence not in original position: %q", summary)
	}
}

func TestSummarize_TiesBreakByEarliestPosition(t *testing.T) {
	a := newAnalyzer(neutralSentiment)

	// Every sentence scores the same, so the first topN win.
	text := "Alpha beta. Gamma delta. Epsilon zeta. Eta theta."
	summary, err := a.Summarize(text, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "Alpha beta. Gamma delta."
	if summary != want {
		t.Errorf("summary = %q, want %q", summary, want)
	}
}

func TestSummarize_ShortTextReturnedWhole(t *testing.T) {
	a := newAnalyzer(neutralSentiment)

	tests := []struct {
		name string
		text string
		topN int
		want string
	}{
		{"fewer sentences than topN", "One thing. Another thing.", 3, "One thing. Another thing."},
		{"exactly topN sentences", "First. Second. Third.", 3, "First. Second. Third."},
		{"single sentence", "Just this one.", 3, "Just this one."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary, err := a.Summarize(tt.text, tt.topN)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if summary != tt.want {
				t.Errorf("summary = %q, want %q", summary, tt.want)
			}
		})
	}
}

func TestSummarize_SentenceCount(t *testing.T) {
	a := newAnalyzer(neutralSentiment)

	summary, err := a.Summarize(sixSentences, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := len(strings.Split(summary, ". ")); got != 3 {
		t.Errorf("summary has %d sentences, want 3: %q", got, summary)
	}
}

func TestSummarize_InvalidInput(t *testing.T) {
	a := newAnalyzer(neutralSentiment)

	if _, err := a.Summarize("   ", 3); !errors.Is(err, models.ErrInvalidInput) {
		t.Errorf("blank text: got err %v, want ErrInvalidInput", err)
	}
	if _, err := a.Summarize("Fine text here.", 0); !errors.Is(err, models.ErrInvalidInput) {
		t.Errorf("topN=0: got err %v, want ErrInvalidInput", err)
	}
	if _, err := a.Summarize("Fine text here.", -2); !errors.Is(err, models.ErrInvalidInput) {
		t.Errorf("negative topN: got err %v, want ErrInvalidInput", err)
	}
}

func TestSummarize_Idempotent(t *testing.T) {
	a := newAnalyzer(neutralSentiment)

	first, err := a.Summarize(sixSentences, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := a.Summarize(sixSentences, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Errorf("results differ across identical calls: %q vs %q", first, second)
	}
}
