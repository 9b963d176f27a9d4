package httpapi

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"text-analytics/server/internal/analyze"
	"text-analytics/server/internal/detect"
	"text-analytics/server/internal/generate"
)

const (
	maxTextLength    = 50000
	maxCompareLength = 10000
	maxMetaLength    = 10000
)

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		writeError(w, http.StatusNotFound, "not_found", "no such endpoint")
		return
	}
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "AI Text Analytics API",
		"version": "1.0.0",
		"endpoints": []string{
			"/analyze-sentiment",
			"/detect-language",
			"/extract-keywords",
			"/summarize-text",
			"/generate-content",
			"/detect-ai-content",
			"/analyze-readability",
			"/generate-meta-description",
		},
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "healthy",
		"message": "API is running",
		"time":    time.Now().UTC().Format(time.RFC3339Nano),
	})
}

func (s *Server) handleDebug(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
		return
	}
	key := s.cfg.APIKey
	starts := "Not set"
	if len(key) > 10 {
		starts = key[:10] + "..."
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"api_key_configured":  key != "",
		"api_key_length":      len(key),
		"api_key_starts_with": starts,
		"database_configured": s.cfg.DatabaseURL != "",
	})
}

type textRequest struct {
	Text string `json:"text"`
}

func readText(w http.ResponseWriter, r *http.Request) (string, bool) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "POST only")
		return "", false
	}
	var req textRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid JSON")
		return "", false
	}
	if msg := validateText(req.Text, 1, maxTextLength); msg != "" {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", msg)
		return "", false
	}
	return req.Text, true
}

func validateText(text string, min, max int) string {
	if len(text) < min {
		return fmt.Sprintf("text must be at least %d characters", min)
	}
	if len(text) > max {
		return fmt.Sprintf("text must be at most %d characters", max)
	}
	return ""
}

func (s *Server) handleAnalyzeSentiment(w http.ResponseWriter, r *http.Request) {
	text, ok := readText(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, analyze.AnalyzeSentiment(text))
}

func (s *Server) handleDetectLanguage(w http.ResponseWriter, r *http.Request) {
	text, ok := readText(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, analyze.DetectLanguage(text))
}

type keywordRequest struct {
	Text        string `json:"text"`
	MaxKeywords *int   `json:"max_keywords"`
}

func (s *Server) handleExtractKeywords(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "POST only")
		return
	}
	var req keywordRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid JSON")
		return
	}
	if msg := validateText(req.Text, 1, maxTextLength); msg != "" {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", msg)
		return
	}
	maxKeywords := 10
	if req.MaxKeywords != nil {
		maxKeywords = *req.MaxKeywords
	}
	if maxKeywords < 1 || maxKeywords > 50 {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", "max_keywords must be between 1 and 50")
		return
	}
	writeJSON(w, http.StatusOK, analyze.ExtractKeywords(req.Text, maxKeywords))
}

type summaryRequest struct {
	Text      string `json:"text"`
	MaxLength *int   `json:"max_length"`
	MinLength *int   `json:"min_length"`
}

func (s *Server) handleSummarizeText(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "POST only")
		return
	}
	var req summaryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid JSON")
		return
	}
	if msg := validateText(req.Text, 100, maxTextLength); msg != "" {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", msg)
		return
	}
	maxLength, minLength := 150, 30
	if req.MaxLength != nil {
		maxLength = *req.MaxLength
	}
	if req.MinLength != nil {
		minLength = *req.MinLength
	}
	if maxLength < 50 || maxLength > 500 {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", "max_length must be between 50 and 500")
		return
	}
	if minLength < 10 || minLength > 200 {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", "min_length must be between 10 and 200")
		return
	}
	writeJSON(w, http.StatusOK, analyze.Summarize(req.Text, maxLength, minLength))
}

func (s *Server) handleAnalyzeReadability(w http.ResponseWriter, r *http.Request) {
	text, ok := readText(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, analyze.AnalyzeReadability(text))
}

type contentRequest struct {
	Prompt      string `json:"prompt"`
	ContentType string `json:"content_type"`
	MaxLength   *int   `json:"max_length"`
	Tone        string `json:"tone"`
}

func (s *Server) handleGenerateContent(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "POST only")
		return
	}
	var req contentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid JSON")
		return
	}
	if len(req.Prompt) < 5 || len(req.Prompt) > 1000 {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", "prompt must be between 5 and 1000 characters")
		return
	}
	contentType := generate.ContentType(req.ContentType)
	if !contentType.Valid() {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", "unknown content_type")
		return
	}
	tone := generate.Tone(req.Tone)
	if req.Tone == "" {
		tone = generate.ToneProfessional
	}
	if !tone.Valid() {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", "unknown tone")
		return
	}
	maxLength := 300
	if req.MaxLength != nil {
		maxLength = *req.MaxLength
	}
	if maxLength < 50 || maxLength > 2000 {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", "max_length must be between 50 and 2000")
		return
	}
	writeJSON(w, http.StatusOK, s.gen.Content(req.Prompt, contentType, maxLength, tone))
}

type metaRequest struct {
	Content   string `json:"content"`
	MaxLength *int   `json:"max_length"`
}

func (s *Server) handleGenerateMetaDescription(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "POST only")
		return
	}
	var req metaRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid JSON")
		return
	}
	if len(req.Content) < 50 || len(req.Content) > maxMetaLength {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", "content must be between 50 and 10000 characters")
		return
	}
	maxLength := 160
	if req.MaxLength != nil {
		maxLength = *req.MaxLength
	}
	if maxLength < 120 || maxLength > 200 {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", "max_length must be between 120 and 200")
		return
	}
	writeJSON(w, http.StatusOK, s.gen.Meta(req.Content, maxLength))
}

func (s *Server) handleDetectAIContent(w http.ResponseWriter, r *http.Request) {
	text, ok := readText(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, detect.DetectAIContent(text))
}

func (s *Server) handleDetectAIContentEnhanced(w http.ResponseWriter, r *http.Request) {
	text, ok := readText(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, detect.DetectAIContentEnhanced(text))
}

type compareRequest struct {
	Text1 string `json:"text1"`
	Text2 string `json:"text2"`
}

func (s *Server) handleCompareTexts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "POST only")
		return
	}
	var req compareRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid JSON")
		return
	}
	for name, text := range map[string]string{"text1": req.Text1, "text2": req.Text2} {
		if len(text) < 10 || len(text) > maxCompareLength {
			writeError(w, http.StatusUnprocessableEntity, "validation_error", name+" must be between 10 and 10000 characters")
			return
		}
	}
	writeJSON(w, http.StatusOK, analyze.CompareTexts(strings.TrimSpace(req.Text1), strings.TrimSpace(req.Text2)))
}
