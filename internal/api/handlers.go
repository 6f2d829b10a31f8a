package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/spacesedan/mooddecode/internal/models"
)

const (
	opMood    = "mood"
	opCrisis  = "crisis"
	opSummary = "summary"
)

func (s *Server) handleAnalyzeMood(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeText(w, r)
	if !ok {
		return
	}

	if body, hit := s.cache.Get(r.Context(), opMood, req.Text); hit {
		respondRaw(w, http.StatusOK, body)
		return
	}

	emotion, err := s.analyzer.ClassifyMood(req.Text)
	if err != nil {
		s.respondAnalysisErr(w, r, err)
		return
	}

	s.logger.Info("[API] Mood analysis",
		slog.String("analysis_id", uuid.NewString()),
		slog.String("input", truncate(req.Text, 50)),
		slog.String("emotion", emotion))

	s.respondCached(w, r, opMood, req.Text, models.MoodResponse{Emotion: emotion})
}

func (s *Server) handleDetectCrisis(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeText(w, r)
	if !ok {
		return
	}

	if body, hit := s.cache.Get(r.Context(), opCrisis, req.Text); hit {
		respondRaw(w, http.StatusOK, body)
		return
	}

	assessment, err := s.analyzer.DetectCrisis(req.Text)
	if err != nil {
		s.respondAnalysisErr(w, r, err)
		return
	}

	s.logger.Info("[API] Crisis detection",
		slog.String("analysis_id", uuid.NewString()),
		slog.String("input", truncate(req.Text, 50)),
		slog.Bool("crisis_detected", assessment.CrisisDetected),
		slog.Float64("score", assessment.Score))

	s.respondCached(w, r, opCrisis, req.Text, models.CrisisResponse{
		CrisisDetected: assessment.CrisisDetected,
		Score:          assessment.Score,
	})
}

func (s *Server) handleSummarize(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeText(w, r)
	if !ok {
		return
	}

	topN := req.MaxSentences
	if topN == 0 {
		topN = s.analyzer.Config().DefaultTopN
	}
	if topN < 0 {
		respondErr(w, http.StatusBadRequest, "max_sentences must be positive")
		return
	}

	summary, err := s.analyzer.Summarize(req.Text, topN)
	if err != nil {
		s.respondAnalysisErr(w, r, err)
		return
	}

	s.logger.Info("[API] Text summarization",
		slog.String("analysis_id", uuid.NewString()),
		slog.Int("input_length", len(req.Text)),
		slog.Int("summary_length", len(summary)))

	// Summaries depend on topN as well as the text, so they skip the cache.
	respond(w, http.StatusOK, models.SummaryResponse{Summary: summary})
}

// decodeText parses the shared {text} envelope. Returns false after writing
// a 400 when the body is malformed, the text field is missing, or the text
// is blank — each with its own message.
func (s *Server) decodeText(w http.ResponseWriter, r *http.Request) (models.AnalysisRequest, bool) {
	var raw struct {
		Text         *string `json:"text"`
		MaxSentences int     `json:"max_sentences,omitempty"`
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil || raw.Text == nil {
		respondErr(w, http.StatusBadRequest, "Missing 'text' field in request")
		return models.AnalysisRequest{}, false
	}
	if strings.TrimSpace(*raw.Text) == "" {
		respondErr(w, http.StatusBadRequest, "Text cannot be empty")
		return models.AnalysisRequest{}, false
	}

	return models.AnalysisRequest{Text: *raw.Text, MaxSentences: raw.MaxSentences}, true
}

func (s *Server) respondAnalysisErr(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, models.ErrInvalidInput) {
		respondErr(w, http.StatusBadRequest, "Text cannot be empty")
		return
	}

	s.logger.Error("[API] Analysis failed",
		slog.String("path", r.URL.Path),
		slog.String("error", err.Error()))
	respondErr(w, http.StatusInternalServerError, "Internal server error")
}

// respondCached writes the JSON response and stores the encoded body for
// identical follow-up requests.
func (s *Server) respondCached(w http.ResponseWriter, r *http.Request, op, text string, body any) {
	encoded, err := json.Marshal(body)
	if err != nil {
		s.respondAnalysisErr(w, r, err)
		return
	}

	s.cache.Set(r.Context(), op, text, encoded)
	respondRaw(w, http.StatusOK, encoded)
}

func respond(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		_ = json.NewEncoder(w).Encode(body)
	}
}

func respondRaw(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func respondErr(w http.ResponseWriter, status int, message string) {
	respond(w, status, models.ErrorResponse{Error: message})
}

// truncate shortens s to at most n bytes for log attributes, backing up to
// a rune boundary so the output stays valid UTF-8.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	cut := n
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
