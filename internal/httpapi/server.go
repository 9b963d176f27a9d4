package httpapi

import (
	"net/http"

	"text-analytics/server/internal/config"
	"text-analytics/server/internal/generate"
	"text-analytics/server/internal/store"
)

type Server struct {
	cfg     config.Config
	store   store.Store
	mux     *http.ServeMux
	bus     *eventBus
	limiter *rateLimiter
	gen     *generate.Generator
}

func NewServer(cfg config.Config, st store.Store) *Server {
	initJWTKey(cfg.JWTSecret)

	s := &Server{
		cfg:     cfg,
		store:   st,
		mux:     http.NewServeMux(),
		bus:     newEventBus(),
		limiter: newRateLimiter(),
		gen:     generate.New(),
	}
	s.registerRoutes()
	return s
}

func (s *Server) Handler() http.Handler {
	var h http.Handler = s.mux
	h = s.meterMiddleware(h)
	h = s.rateLimitMiddleware(h)
	h = recoverMiddleware(h)
	h = requestIDMiddleware(h)
	h = loggingMiddleware(h)
	h = s.authMiddleware(h)
	return h
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("/", s.handleRoot)
	s.mux.HandleFunc("/health", s.handleHealth)
	s.mux.HandleFunc("/debug", s.handleDebug)

	s.mux.HandleFunc("/analyze-sentiment", s.handleAnalyzeSentiment)
	s.mux.HandleFunc("/detect-language", s.handleDetectLanguage)
	s.mux.HandleFunc("/extract-keywords", s.handleExtractKeywords)
	s.mux.HandleFunc("/summarize-text", s.handleSummarizeText)
	s.mux.HandleFunc("/analyze-readability", s.handleAnalyzeReadability)
	s.mux.HandleFunc("/generate-content", s.handleGenerateContent)
	s.mux.HandleFunc("/generate-meta-description", s.handleGenerateMetaDescription)
	s.mux.HandleFunc("/detect-ai-content", s.handleDetectAIContent)
	s.mux.HandleFunc("/detect-ai-content/enhanced", s.handleDetectAIContentEnhanced)
	s.mux.HandleFunc("/compare-texts", s.handleCompareTexts)
	s.mux.HandleFunc("/batch-analyze", s.handleBatchAnalyze)

	s.mux.HandleFunc("/v1/auth/register", s.handleRegister)
	s.mux.HandleFunc("/v1/auth/login", s.handleLogin)
	s.mux.HandleFunc("/v1/usage", s.handleUsage)
	s.mux.HandleFunc("/v1/dashboard", s.handleDashboard)
	s.mux.HandleFunc("/v1/stream", s.handleStream)
}
