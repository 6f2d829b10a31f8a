package models

type AnalysisRequest struct {
	Text string `json:"text"`
	// MaxSentences only applies to /summarize; zero means "use the default".
	MaxSentences int `json:"max_sentences,omitempty"`
}

type MoodResponse struct {
	Emotion string `json:"emotion"`
}

type CrisisResponse struct {
	CrisisDetected bool    `json:"crisis_detected"`
	Score          float64 `json:"score"`
}

type SummaryResponse struct {
	Summary string `json:"summary"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
