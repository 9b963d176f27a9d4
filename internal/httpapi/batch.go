package httpapi

import (
	"net/http"
	"time"

	"text-analytics/server/internal/analyze"

	"golang.org/x/sync/errgroup"
)

type batchRequest struct {
	Texts        []string `json:"texts"`
	AnalysisType string   `json:"analysis_type"`
}

type batchResponse struct {
	Results        []map[string]any `json:"results"`
	Summary        map[string]any   `json:"summary"`
	ProcessingTime float64          `json:"processing_time"`
}

const batchConcurrency = 8

func (s *Server) handleBatchAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "POST only")
		return
	}
	var req batchRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid JSON")
		return
	}
	if len(req.Texts) < 2 || len(req.Texts) > 100 {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", "texts must contain between 2 and 100 items")
		return
	}
	for _, text := range req.Texts {
		if msg := validateText(text, 1, maxTextLength); msg != "" {
			writeError(w, http.StatusUnprocessableEntity, "validation_error", msg)
			return
		}
	}

	var analyzeOne func(text string) map[string]any
	switch req.AnalysisType {
	case "sentiment":
		analyzeOne = func(text string) map[string]any {
			res := analyze.AnalyzeSentiment(text)
			return map[string]any{
				"sentiment":  res.Sentiment,
				"confidence": res.Confidence,
				"scores":     res.Scores,
			}
		}
	case "language":
		analyzeOne = func(text string) map[string]any {
			res := analyze.DetectLanguage(text)
			return map[string]any{
				"language":      res.Language,
				"language_name": res.LanguageName,
				"confidence":    res.Confidence,
			}
		}
	case "keywords":
		analyzeOne = func(text string) map[string]any {
			res := analyze.ExtractKeywords(text, 10)
			return map[string]any{
				"keywords":       res.Keywords,
				"total_keywords": res.TotalKeywords,
			}
		}
	default:
		writeError(w, http.StatusUnprocessableEntity, "validation_error", "analysis_type must be sentiment, language or keywords")
		return
	}

	start := time.Now()
	results := make([]map[string]any, len(req.Texts))

	g, _ := errgroup.WithContext(r.Context())
	g.SetLimit(batchConcurrency)
	for i, text := range req.Texts {
		i, text := i, text
		g.Go(func() error {
			results[i] = analyzeOne(text)
			return nil
		})
	}
	_ = g.Wait()

	writeJSON(w, http.StatusOK, batchResponse{
		Results:        results,
		Summary:        batchSummary(req.AnalysisType, results),
		ProcessingTime: time.Since(start).Seconds(),
	})
}

func batchSummary(analysisType string, results []map[string]any) map[string]any {
	summary := map[string]any{
		"total_texts":   len(results),
		"analysis_type": analysisType,
	}

	switch analysisType {
	case "sentiment":
		counts := map[string]int{}
		for _, res := range results {
			if label, ok := res["sentiment"].(string); ok {
				counts[label]++
			}
		}
		summary["sentiment_distribution"] = counts
	case "language":
		counts := map[string]int{}
		for _, res := range results {
			if lang, ok := res["language"].(string); ok {
				counts[lang]++
			}
		}
		summary["language_distribution"] = counts
	case "keywords":
		total := 0
		for _, res := range results {
			if n, ok := res["total_keywords"].(int); ok {
				total += n
			}
		}
		summary["total_keywords"] = total
	}
	return summary
}
