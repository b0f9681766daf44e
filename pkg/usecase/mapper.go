package usecase

import (
	"fmt"
	"strings"

	"github.com/construct-hq/tenderbase/pkg/domain/model"
	"github.com/construct-hq/tenderbase/pkg/domain/types"
)

// Mapping limits. Requirements beyond the cap are noise for the tender
// team; the contract type column is bounded in the store.
const (
	maxKeyRequirements        = 20
	maxContractTypeLength     = 100
	maxClarificationQuestions = 20
	defaultDurationWeeks      = 26
	defaultConfidence         = 70.0

	// lowConfidenceThreshold triggers a clarification question when the
	// model reports its own confidence below this value
	lowConfidenceThreshold = 80.0
)

// MapAnalysis converts a raw model analysis into a fully populated
// TenderAnalysis. The mapping is total: every field receives either the
// model's value or a deterministic default, so downstream consumers never
// see a zero-value record.
func MapAnalysis(result model.AnalysisResult, project *model.Project, documentsAnalyzed []string) *model.TenderAnalysis {
	analysis := &model.TenderAnalysis{
		ProjectID:         project.ID,
		DocumentsAnalyzed: documentsAnalyzed,
	}

	analysis.ProjectOverview = joinParts(
		"AI Analysis for "+project.Name,
		result.String("project_overview"),
		labeled("Project", result.String("project_name")),
		labeled("Location", result.String("project_location")),
		labeled("Client", result.String("client_details")),
		labeled("Type", result.String("project_type")),
	)

	analysis.ScopeOfWork = joinParts(
		"Scope to be determined from document analysis",
		result.String("scope_of_work"),
		labeled("Technical Specifications", result.String("technical_specifications")),
		labeled("Coordination", result.String("coordination_requirements")),
	)

	analysis.KeyRequirements = mapKeyRequirements(result)
	analysis.TechnicalSpecifications = mapTechnicalSpecifications(result)
	analysis.RiskAssessment = mapRiskAssessment(result)
	analysis.RiskLevel = types.ParseRiskLevel(result.String("risk_level"))
	analysis.TimelineAnalysis = mapTimeline(result)
	analysis.BudgetEstimates = mapBudget(result)
	analysis.ContractInformation = mapContractInformation(result)
	analysis.ContractType = mapContractType(result, analysis.ContractInformation)
	analysis.KeyOpportunities = result.StringList("key_opportunities")

	analysis.AnalysisConfidence = defaultConfidence
	if conf, ok := result.Float("analysis_confidence"); ok {
		analysis.AnalysisConfidence = conf
	}

	if valueRange, ok := result["estimated_value_range"].(map[string]any); ok {
		if max, ok := numeric(valueRange["max"]); ok && max > 0 {
			analysis.EstimatedProjectValue = max
		}
	}

	if _, present := result["project_duration_weeks"]; present {
		analysis.ProjectDurationWeeks = result.Int("project_duration_weeks", defaultDurationWeeks)
	}

	analysis.ClarificationQuestions = mapClarificationQuestions(result)

	return analysis
}

// mapClarificationQuestions collects the model's own clarification
// questions and appends one per detected gap: low self-reported
// confidence, no value range, no duration.
func mapClarificationQuestions(result model.AnalysisResult) []model.ClarificationQuestion {
	var questions []model.ClarificationQuestion

	if list, ok := result["clarification_questions"].([]any); ok {
		for _, entry := range list {
			raw, ok := entry.(map[string]any)
			if !ok {
				continue
			}
			q := model.AnalysisResult(raw)
			text := strings.TrimSpace(q.String("question"))
			if text == "" {
				continue
			}
			reference := q.String("reference")
			if reference == "" {
				reference = "General"
			}
			questions = append(questions, model.ClarificationQuestion{
				Category:  types.ParseRFICategory(q.String("category")),
				Question:  text,
				Priority:  types.ParseRFIPriority(q.String("priority")),
				Reference: reference,
			})
		}
	}

	if conf, ok := result.Float("analysis_confidence"); ok && conf < lowConfidenceThreshold {
		questions = append(questions, model.ClarificationQuestion{
			Category:  types.RFICategoryTechnical,
			Question:  "Please provide additional technical specifications for unclear areas",
			Priority:  types.RFIPriorityHigh,
			Reference: "Document Review",
		})
	}

	hasValue := false
	if valueRange, ok := result["estimated_value_range"].(map[string]any); ok {
		if max, ok := numeric(valueRange["max"]); ok && max > 0 {
			hasValue = true
		}
	}
	if !hasValue {
		questions = append(questions, model.ClarificationQuestion{
			Category:  types.RFICategoryCommercial,
			Question:  "Confirm project budget and target cost expectations",
			Priority:  types.RFIPriorityHigh,
			Reference: "Commercial",
		})
	}

	if !hasDuration(result) {
		questions = append(questions, model.ClarificationQuestion{
			Category:  types.RFICategoryProgramme,
			Question:  "Provide detailed programme with key milestones",
			Priority:  types.RFIPriorityHigh,
			Reference: "Programme",
		})
	}

	if len(questions) > maxClarificationQuestions {
		questions = questions[:maxClarificationQuestions]
	}
	return questions
}

// hasDuration reports whether the model supplied any non-empty duration
// value, numeric or free text.
func hasDuration(result model.AnalysisResult) bool {
	switch v := result["project_duration_weeks"].(type) {
	case float64:
		return v > 0
	case int:
		return v > 0
	case string:
		return strings.TrimSpace(v) != ""
	default:
		return false
	}
}

func mapKeyRequirements(result model.AnalysisResult) []string {
	var reqs []string
	reqs = append(reqs, result.StringList("key_requirements")...)

	for _, trade := range result.StringList("required_trades") {
		reqs = append(reqs, "Required trade: "+trade)
	}
	reqs = append(reqs, result.StringList("compliance_requirements")...)

	for _, entry := range []struct{ label, key string }{
		{"Quality", "quality_requirements"},
		{"Safety", "safety_requirements"},
		{"Environmental", "environmental_considerations"},
	} {
		if v := result.String(entry.key); v != "" {
			reqs = append(reqs, entry.label+": "+v)
		}
	}

	if len(reqs) > maxKeyRequirements {
		reqs = reqs[:maxKeyRequirements]
	}
	return reqs
}

func mapTechnicalSpecifications(result model.AnalysisResult) string {
	var drawings string
	if list := result.StringList("drawings_available"); len(list) > 0 {
		drawings = "Available drawings: " + strings.Join(list, ", ")
	}
	return joinParts(
		"Technical specifications to be reviewed from documents",
		result.String("technical_specifications"),
		drawings,
	)
}

func mapRiskAssessment(result model.AnalysisResult) string {
	var identified string
	if risks := result.StringList("identified_risks"); len(risks) > 0 {
		lines := []string{"Identified Risks:"}
		for _, r := range risks {
			lines = append(lines, "• "+r)
		}
		identified = strings.Join(lines, "\n")
	}
	return joinParts(
		"Risk assessment pending detailed review",
		result.String("risk_assessment"),
		identified,
		labeled("Site Conditions", result.String("site_conditions")),
	)
}

func mapTimeline(result model.AnalysisResult) string {
	var duration string
	if weeks := result.Int("project_duration_weeks", 0); weeks > 0 {
		duration = fmt.Sprintf("Estimated duration: %d weeks", weeks)
	} else if s := strings.TrimSpace(result.String("project_duration_weeks")); s != "" {
		duration = "Duration: " + s
	}

	var milestones string
	if list := result.StringList("critical_milestones"); len(list) > 0 {
		lines := []string{"Critical Milestones:"}
		for _, m := range list {
			lines = append(lines, "• "+m)
		}
		milestones = strings.Join(lines, "\n")
	}

	return joinParts(
		"Timeline analysis pending programme review",
		result.String("timeline_analysis"),
		duration,
		milestones,
	)
}

func mapBudget(result model.AnalysisResult) string {
	var rangeText string
	if valueRange, ok := result["estimated_value_range"].(map[string]any); ok {
		min, minOK := numeric(valueRange["min"])
		max, maxOK := numeric(valueRange["max"])
		if minOK && maxOK {
			rangeText = fmt.Sprintf("Estimated range: £%.0f - £%.0f", min, max)
		}
	}
	return joinParts(
		"Budget estimates to be developed from quantity analysis",
		result.String("budget_estimates"),
		rangeText,
	)
}

func mapContractInformation(result model.AnalysisResult) map[string]string {
	info := result.Map("contract_information")
	if info == nil {
		info = make(map[string]string)
	}

	for _, key := range []string{"contract_type", "payment_terms", "insurance_requirements", "liquidated_damages"} {
		if v := result.String(key); v != "" {
			info[key] = v
		}
	}
	return info
}

func mapContractType(result model.AnalysisResult, contractInfo map[string]string) string {
	ct := contractInfo["contract_type"]
	if ct == "" {
		ct = result.String("contract_type")
	}
	if len(ct) > maxContractTypeLength {
		ct = ct[:maxContractTypeLength]
	}
	return ct
}

// joinParts joins the non-empty parts with blank lines, falling back to
// the default when every part is empty.
func joinParts(def string, parts ...string) string {
	var kept []string
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}
	if len(kept) == 0 {
		return def
	}
	return strings.Join(kept, "\n\n")
}

func labeled(label, value string) string {
	if value == "" {
		return ""
	}
	return label + ": " + value
}

func numeric(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	default:
		return 0, false
	}
}
