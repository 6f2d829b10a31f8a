// Package api is the HTTP layer over the analysis core. Handlers are
// methods on *Server and only adapt JSON envelopes to the three pure
// operations; all decision logic lives in internal/analyzer.
package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/spacesedan/mooddecode/internal/analyzer"
	"github.com/spacesedan/mooddecode/internal/cache"
	"github.com/spacesedan/mooddecode/internal/models"
)

// Server holds the shared dependencies. The analyzer and its tables are
// read-only after startup, so one Server serves all requests concurrently.
type Server struct {
	analyzer *analyzer.Analyzer

	// cache may be nil; every call through it is then a no-op.
	cache *cache.ResultCache

	logger *slog.Logger
}

// NewServer wires the chi router. The returned http.Handler is ready to
// pass to http.ListenAndServe.
func NewServer(a *analyzer.Analyzer, rc *cache.ResultCache, logger *slog.Logger) http.Handler {
	s := &Server{
		analyzer: a,
		cache:    rc,
		logger:   logger,
	}

	return s.routes()
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.loggerMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(10 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Get("/", s.handleHome)
	r.Post("/analyze_mood", s.handleAnalyzeMood)
	r.Post("/detect_crisis", s.handleDetectCrisis)
	r.Post("/summarize", s.handleSummarize)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondErr(w, http.StatusNotFound, "Endpoint not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondErr(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	return r
}

// loggerMiddleware logs each request with method, path, status and duration.
func (s *Server) loggerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			s.logger.Info("[API] request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.Status()),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()),
				slog.String("request_id", middleware.GetReqID(r.Context())))
		}()

		next.ServeHTTP(ww, r)
	})
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, map[string]any{
		"message": "MoodDecode NLP API",
		"version": "1.0",
		"endpoints": map[string]string{
			"POST /analyze_mood":  "Analyze emotion from text",
			"POST /detect_crisis": "Detect crisis situations",
			"POST /summarize":     "Summarize text content",
		},
		"example_usage": map[string]any{
			"analyze_mood": map[string]any{
				"input":  models.AnalysisRequest{Text: "I feel amazing today!"},
				"output": models.MoodResponse{Emotion: analyzer.EmotionHappy},
			},
			"detect_crisis": map[string]any{
				"input":  models.AnalysisRequest{Text: "I'm feeling hopeless and might hurt myself"},
				"output": models.CrisisResponse{CrisisDetected: true, Score: 1.3},
			},
			"summarize": map[string]any{
				"input":  models.AnalysisRequest{Text: "Long paragraph here..."},
				"output": models.SummaryResponse{Summary: "Condensed version..."},
			},
		},
	})
}
