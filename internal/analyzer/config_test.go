package analyzer_test

import (
	"testing"

	"github.com/spacesedan/mooddecode/internal/analyzer"
)

func TestDefaultConfig_TopNRejectsNonPositive(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{"unset uses default", "", 3},
		{"zero falls back", "0", 3},
		{"negative falls back", "-5", 3},
		{"positive respected", "5", 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("SUMMARY_DEFAULT_SENTENCES", tt.value)
			if got := analyzer.DefaultConfig().DefaultTopN; got != tt.want {
				t.Errorf("DefaultTopN = %d, want %d", got, tt.want)
			}
		})
	}
}
