package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"

	"github.com/construct-hq/tenderbase/pkg/domain/model"
	"github.com/construct-hq/tenderbase/pkg/domain/types"
	"github.com/construct-hq/tenderbase/pkg/utils/errutil"
)

func analysisResponse(a *model.TenderAnalysis) map[string]any {
	return map[string]any{
		"id":                       a.ID.String(),
		"project_id":               a.ProjectID.String(),
		"project_overview":         a.ProjectOverview,
		"scope_of_work":            a.ScopeOfWork,
		"key_requirements":         a.KeyRequirements,
		"technical_specifications": a.TechnicalSpecifications,
		"risk_assessment":          a.RiskAssessment,
		"risk_level":               a.RiskLevel,
		"timeline_analysis":        a.TimelineAnalysis,
		"budget_estimates":         a.BudgetEstimates,
		"contract_information":     a.ContractInformation,
		"contract_type":            a.ContractType,
		"analysis_confidence":      a.AnalysisConfidence,
		"estimated_project_value":  a.EstimatedProjectValue,
		"project_duration_weeks":   a.ProjectDurationWeeks,
		"key_opportunities":        a.KeyOpportunities,
		"documents_analyzed":       a.DocumentsAnalyzed,
		"clarification_questions":  clarificationResponse(a.ClarificationQuestions),
		"created_at":               a.CreatedAt.Format(timeFormat),
		"updated_at":               a.UpdatedAt.Format(timeFormat),
	}
}

func clarificationResponse(questions []model.ClarificationQuestion) []map[string]any {
	out := make([]map[string]any, 0, len(questions))
	for _, q := range questions {
		out = append(out, map[string]any{
			"category":  q.Category,
			"question":  q.Question,
			"priority":  q.Priority,
			"reference": q.Reference,
		})
	}
	return out
}

type generateRFIRequest struct {
	CreatedBy  string `json:"created_by"`
	Regenerate bool   `json:"regenerate"`
}

func (s *Server) generateRFIs(w http.ResponseWriter, r *http.Request) {
	var req generateRFIRequest
	_ = decodeBody(r, &req)

	var result *model.RFIGenerationResult
	var err error
	if req.Regenerate {
		result, err = s.uc.RFI.Regenerate(r.Context(), projectIDParam(r), req.CreatedBy)
	} else {
		result, err = s.uc.RFI.Generate(r.Context(), projectIDParam(r), req.CreatedBy)
	}
	if err != nil {
		respondError(w, r, err)
		return
	}

	status := http.StatusOK
	if !result.Success {
		status = http.StatusConflict
	}
	respondJSON(w, r, status, map[string]any{
		"success":    result.Success,
		"message":    result.Message,
		"rfi_count":  result.Count,
		"categories": result.Categories,
	})
}

func (s *Server) listRFIs(w http.ResponseWriter, r *http.Request) {
	items, err := s.uc.RFI.List(r.Context(), projectIDParam(r))
	if err != nil {
		respondError(w, r, err)
		return
	}

	type rfiResponse struct {
		ID                string `json:"id"`
		Category          string `json:"category"`
		Priority          string `json:"priority"`
		Question          string `json:"question"`
		Context           string `json:"context"`
		DocumentReference string `json:"document_reference"`
		PricingImpact     string `json:"pricing_impact"`
		RiskIfUnresolved  string `json:"risk_if_unresolved"`
		Status            string `json:"status"`
		CreatedBy         string `json:"created_by"`
		CreatedAt         string `json:"created_at"`
	}

	resp := make([]rfiResponse, len(items))
	for i, item := range items {
		resp[i] = rfiResponse{
			ID:                item.ID.String(),
			Category:          item.Category.String(),
			Priority:          item.Priority.String(),
			Question:          item.Question,
			Context:           item.Context,
			DocumentReference: item.DocumentReference,
			PricingImpact:     item.PricingImpact.String(),
			RiskIfUnresolved:  item.RiskIfUnresolved,
			Status:            item.Status.String(),
			CreatedBy:         item.CreatedBy,
			CreatedAt:         item.CreatedAt.Format(timeFormat),
		}
	}
	respondJSON(w, r, http.StatusOK, map[string]any{"rfis": resp})
}

func (s *Server) updateRFIStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status string `json:"status"`
	}
	if err := decodeBody(r, &req); err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}

	var newStatus types.RFIStatus
	switch types.RFIStatus(req.Status) {
	case types.RFIStatusPending, types.RFIStatusAnswered, types.RFIStatusClosed:
		newStatus = types.RFIStatus(req.Status)
	default:
		errutil.HandleHTTP(r.Context(), w, goerr.New("invalid RFI status", goerr.V("status", req.Status)), http.StatusBadRequest)
		return
	}

	id := types.RFIID(chi.URLParam(r, "rfiID"))
	if err := s.uc.RFI.UpdateStatus(r.Context(), id, newStatus); err != nil {
		respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
