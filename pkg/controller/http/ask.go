package http

import (
	"net/http"

	"github.com/construct-hq/tenderbase/pkg/utils/errutil"
)

type askRequest struct {
	Question     string `json:"question"`
	ForceRefresh bool   `json:"force_refresh"`
}

func (s *Server) askQuestion(w http.ResponseWriter, r *http.Request) {
	var req askRequest
	if err := decodeBody(r, &req); err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}

	result, err := s.uc.Answer.Ask(r.Context(), projectIDParam(r), req.Question, req.ForceRefresh)
	if err != nil {
		respondError(w, r, err)
		return
	}

	if !result.Success {
		respondJSON(w, r, http.StatusOK, map[string]any{
			"success":            false,
			"error":              result.Error,
			"processing_time_ms": result.ProcessingTime.Milliseconds(),
		})
		return
	}

	respondJSON(w, r, http.StatusOK, map[string]any{
		"success":             true,
		"answer":              result.Answer.Text,
		"confidence":          result.Answer.Confidence,
		"key_findings":        result.Answer.KeyFindings,
		"document_references": result.Answer.DocumentReferences,
		"cross_references":    result.Answer.CrossReferences,
		"recommendations":     result.Answer.Recommendations,
		"follow_up_questions": result.Answer.FollowUpQuestions,
		"source_documents":    result.SourceDocs,
		"knowledge_stats": map[string]any{
			"total_documents":     result.Stats.TotalDocuments,
			"processed_documents": result.Stats.ProcessedDocuments,
			"categories":          result.Stats.Categories,
			"relevant_documents":  result.Stats.RelevantDocuments,
		},
		"processing_time_ms": result.ProcessingTime.Milliseconds(),
	})
}

func (s *Server) runAnalysis(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ForceRefresh bool `json:"force_refresh"`
	}
	// An empty body means default options
	_ = decodeBody(r, &req)

	analysis, err := s.uc.Analysis.Run(r.Context(), projectIDParam(r), req.ForceRefresh)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, analysisResponse(analysis))
}

func (s *Server) getAnalysis(w http.ResponseWriter, r *http.Request) {
	analysis, err := s.uc.Analysis.Get(r.Context(), projectIDParam(r))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, analysisResponse(analysis))
}
