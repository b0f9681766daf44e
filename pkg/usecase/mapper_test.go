package usecase_test

import (
	"strings"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/construct-hq/tenderbase/pkg/domain/model"
	"github.com/construct-hq/tenderbase/pkg/domain/types"
	"github.com/construct-hq/tenderbase/pkg/usecase"
)

func mapperProject() *model.Project {
	return &model.Project{
		ID:   types.NewProjectID(),
		Name: "Harbour Works",
	}
}

func TestMapAnalysis_EmptyResultGetsDefaults(t *testing.T) {
	analysis := usecase.MapAnalysis(model.AnalysisResult{}, mapperProject(), []string{"a.pdf"})

	gt.Value(t, analysis.ProjectOverview).Equal("AI Analysis for Harbour Works")
	gt.Value(t, analysis.ScopeOfWork).Equal("Scope to be determined from document analysis")
	gt.Value(t, analysis.TechnicalSpecifications).Equal("Technical specifications to be reviewed from documents")
	gt.Value(t, analysis.RiskAssessment).Equal("Risk assessment pending detailed review")
	gt.Value(t, analysis.RiskLevel).Equal(types.RiskMedium)
	gt.Value(t, analysis.TimelineAnalysis).Equal("Timeline analysis pending programme review")
	gt.Value(t, analysis.BudgetEstimates).Equal("Budget estimates to be developed from quantity analysis")
	gt.Value(t, analysis.AnalysisConfidence).Equal(70.0)
	gt.Value(t, analysis.EstimatedProjectValue).Equal(0.0)
	gt.Number(t, analysis.ProjectDurationWeeks).Equal(0)
	gt.Array(t, analysis.KeyRequirements).Length(0)
	gt.Array(t, analysis.DocumentsAnalyzed).Equal([]string{"a.pdf"})
}

func TestMapAnalysis_OverviewComposition(t *testing.T) {
	result := model.AnalysisResult{
		"project_overview": "Quay wall replacement.",
		"project_location": "Hull",
		"client_details":   "ABP",
	}

	analysis := usecase.MapAnalysis(result, mapperProject(), nil)

	gt.Value(t, analysis.ProjectOverview).Equal(
		"Quay wall replacement.\n\nLocation: Hull\n\nClient: ABP")
}

func TestMapAnalysis_KeyRequirements(t *testing.T) {
	result := model.AnalysisResult{
		"key_requirements":        []any{"CSCS cards for all operatives"},
		"required_trades":         []any{"Piling", "Marine civils"},
		"compliance_requirements": []any{"ISO 9001"},
		"quality_requirements":    "NHBC standards",
	}

	analysis := usecase.MapAnalysis(result, mapperProject(), nil)

	gt.Array(t, analysis.KeyRequirements).Equal([]string{
		"CSCS cards for all operatives",
		"Required trade: Piling",
		"Required trade: Marine civils",
		"ISO 9001",
		"Quality: NHBC standards",
	})
}

func TestMapAnalysis_KeyRequirementsCapped(t *testing.T) {
	var reqs []any
	for i := 0; i < 30; i++ {
		reqs = append(reqs, "requirement "+strings.Repeat("x", i+1))
	}
	result := model.AnalysisResult{"key_requirements": reqs}

	analysis := usecase.MapAnalysis(result, mapperProject(), nil)
	gt.Array(t, analysis.KeyRequirements).Length(20)
}

func TestMapAnalysis_DurationCoercion(t *testing.T) {
	// Numeric weeks pass through
	analysis := usecase.MapAnalysis(model.AnalysisResult{"project_duration_weeks": 40}, mapperProject(), nil)
	gt.Number(t, analysis.ProjectDurationWeeks).Equal(40)
	gt.Bool(t, strings.Contains(analysis.TimelineAnalysis, "Estimated duration: 40 weeks")).True()

	// A stringy answer yields its first integer
	analysis = usecase.MapAnalysis(model.AnalysisResult{"project_duration_weeks": "approx. 26 weeks"}, mapperProject(), nil)
	gt.Number(t, analysis.ProjectDurationWeeks).Equal(26)

	// A string with no digits falls back to the default
	analysis = usecase.MapAnalysis(model.AnalysisResult{"project_duration_weeks": "one year"}, mapperProject(), nil)
	gt.Number(t, analysis.ProjectDurationWeeks).Equal(26)
	gt.Bool(t, strings.Contains(analysis.TimelineAnalysis, "Duration: one year")).True()
}

func TestMapAnalysis_RiskLevelNormalized(t *testing.T) {
	analysis := usecase.MapAnalysis(model.AnalysisResult{"risk_level": "CRITICAL"}, mapperProject(), nil)
	gt.Value(t, analysis.RiskLevel).Equal(types.RiskHigh)

	analysis = usecase.MapAnalysis(model.AnalysisResult{"risk_level": "low"}, mapperProject(), nil)
	gt.Value(t, analysis.RiskLevel).Equal(types.RiskLow)
}

func TestMapAnalysis_ValueRange(t *testing.T) {
	result := model.AnalysisResult{
		"estimated_value_range": map[string]any{"min": 250000.0, "max": 400000.0},
	}

	analysis := usecase.MapAnalysis(result, mapperProject(), nil)

	gt.Value(t, analysis.EstimatedProjectValue).Equal(400000.0)
	gt.Bool(t, strings.Contains(analysis.BudgetEstimates, "Estimated range: £250000 - £400000")).True()
}

func TestMapAnalysis_ContractTypeTruncated(t *testing.T) {
	long := strings.Repeat("JCT Design and Build ", 10)
	analysis := usecase.MapAnalysis(model.AnalysisResult{"contract_type": long}, mapperProject(), nil)

	gt.Number(t, len(analysis.ContractType)).Equal(100)
	gt.Value(t, analysis.ContractInformation["contract_type"]).Equal(long)
}

func TestMapAnalysis_ContractInformationMerged(t *testing.T) {
	result := model.AnalysisResult{
		"contract_information": map[string]any{"retention": "3%"},
		"payment_terms":        "Monthly valuations",
	}

	analysis := usecase.MapAnalysis(result, mapperProject(), nil)

	gt.Value(t, analysis.ContractInformation["retention"]).Equal("3%")
	gt.Value(t, analysis.ContractInformation["payment_terms"]).Equal("Monthly valuations")
}

func TestMapAnalysis_ClarificationGapFill(t *testing.T) {
	result := model.AnalysisResult{
		"analysis_confidence": 60,
	}

	analysis := usecase.MapAnalysis(result, mapperProject(), nil)

	gt.Array(t, analysis.ClarificationQuestions).Length(3)
	gt.Value(t, analysis.ClarificationQuestions[0].Category).Equal(types.RFICategoryTechnical)
	gt.Value(t, analysis.ClarificationQuestions[0].Reference).Equal("Document Review")
	gt.Value(t, analysis.ClarificationQuestions[1].Category).Equal(types.RFICategoryCommercial)
	gt.Value(t, analysis.ClarificationQuestions[2].Category).Equal(types.RFICategoryProgramme)
	for _, q := range analysis.ClarificationQuestions {
		gt.Value(t, q.Priority).Equal(types.RFIPriorityHigh)
	}
}

func TestMapAnalysis_NoClarificationsWhenComplete(t *testing.T) {
	result := model.AnalysisResult{
		"analysis_confidence":    90,
		"estimated_value_range":  map[string]any{"min": 100000.0, "max": 250000.0},
		"project_duration_weeks": 30,
	}

	analysis := usecase.MapAnalysis(result, mapperProject(), nil)
	gt.Array(t, analysis.ClarificationQuestions).Length(0)
}

func TestMapAnalysis_ClarificationsFromModel(t *testing.T) {
	result := model.AnalysisResult{
		"analysis_confidence":    90,
		"estimated_value_range":  map[string]any{"max": 250000.0},
		"project_duration_weeks": 30,
		"clarification_questions": []any{
			map[string]any{
				"category": "nonsense",
				"question": "Confirm asbestos survey availability",
				"priority": "critical",
			},
			map[string]any{"question": "   "},
			map[string]any{
				"category":  "COMMERCIAL",
				"question":  "Confirm retention release terms",
				"priority":  "HIGH",
				"reference": "Contract",
			},
		},
	}

	analysis := usecase.MapAnalysis(result, mapperProject(), nil)

	gt.Array(t, analysis.ClarificationQuestions).Length(2)
	gt.Value(t, analysis.ClarificationQuestions[0].Category).Equal(types.RFICategoryTechnical)
	gt.Value(t, analysis.ClarificationQuestions[0].Priority).Equal(types.RFIPriorityCritical)
	gt.Value(t, analysis.ClarificationQuestions[0].Reference).Equal("General")
	gt.Value(t, analysis.ClarificationQuestions[1].Reference).Equal("Contract")
}

func TestMapAnalysis_ClarificationsCapped(t *testing.T) {
	var list []any
	for i := 0; i < 25; i++ {
		list = append(list, map[string]any{
			"question": "Question " + strings.Repeat("x", i+1),
		})
	}
	result := model.AnalysisResult{"clarification_questions": list}

	analysis := usecase.MapAnalysis(result, mapperProject(), nil)
	gt.Array(t, analysis.ClarificationQuestions).Length(20)
}
