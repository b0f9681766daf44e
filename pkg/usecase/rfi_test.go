package usecase_test

import (
	"context"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/construct-hq/tenderbase/pkg/domain/model"
	"github.com/construct-hq/tenderbase/pkg/domain/types"
	"github.com/construct-hq/tenderbase/pkg/repository/memory"
	"github.com/construct-hq/tenderbase/pkg/usecase"
)

func seedAnalysis(t *testing.T, repo *memory.Memory, overview string) *model.TenderAnalysis {
	t.Helper()
	analysis, err := repo.Analysis().Create(context.Background(), &model.TenderAnalysis{
		ProjectID:       types.NewProjectID(),
		ProjectOverview: overview,
		ScopeOfWork:     "Fit out of two office floors",
	})
	gt.NoError(t, err)
	return analysis
}

func TestRFIGenerate_FallbackWithoutModel(t *testing.T) {
	repo := memory.New()
	analysis := seedAnalysis(t, repo, "New build warehouse")
	uc := usecase.NewRFIUseCase(repo, nil)
	ctx := context.Background()

	result, err := uc.Generate(ctx, analysis.ProjectID, "")
	gt.NoError(t, err)
	gt.Bool(t, result.Success).True()
	gt.Number(t, result.Count).Equal(5)

	items, err := repo.RFI().ListByAnalysisID(ctx, analysis.ID)
	gt.NoError(t, err)
	gt.Array(t, items).Length(5)

	// Priority ordering: the two CRITICAL items come first
	gt.Value(t, items[0].Priority).Equal(types.RFIPriorityCritical)
	gt.Value(t, items[1].Priority).Equal(types.RFIPriorityCritical)

	for _, item := range items {
		gt.Value(t, item.Status).Equal(types.RFIStatusPending)
		gt.Value(t, item.CreatedBy).Equal("System Generated")
		gt.Value(t, item.AnalysisID).Equal(analysis.ID)
	}
}

func TestRFIGenerate_LiveEnvironmentAddsCoordination(t *testing.T) {
	repo := memory.New()
	analysis := seedAnalysis(t, repo, "Refurbishment within a live environment hospital wing")
	uc := usecase.NewRFIUseCase(repo, nil)

	result, err := uc.Generate(context.Background(), analysis.ProjectID, "")
	gt.NoError(t, err)
	gt.Number(t, result.Count).Equal(6)
	gt.Number(t, result.Categories[types.RFICategoryCoordination]).Equal(1)
}

func TestRFIGenerate_SecondRunReportsPrecondition(t *testing.T) {
	repo := memory.New()
	analysis := seedAnalysis(t, repo, "New build warehouse")
	uc := usecase.NewRFIUseCase(repo, nil)
	ctx := context.Background()

	_, err := uc.Generate(ctx, analysis.ProjectID, "")
	gt.NoError(t, err)

	result, err := uc.Generate(ctx, analysis.ProjectID, "")
	gt.NoError(t, err)
	gt.Bool(t, result.Success).False()
	gt.Value(t, result.Message).Equal("RFIs already generated for this project (5 items exist)")
}

func TestRFIGenerate_WithoutAnalysisFails(t *testing.T) {
	repo := memory.New()
	uc := usecase.NewRFIUseCase(repo, nil)

	_, err := uc.Generate(context.Background(), types.NewProjectID(), "")
	gt.Error(t, err)
}

func TestRFIRegenerate_ReplacesExistingSet(t *testing.T) {
	repo := memory.New()
	analysis := seedAnalysis(t, repo, "New build warehouse")
	uc := usecase.NewRFIUseCase(repo, nil)
	ctx := context.Background()

	_, err := uc.Generate(ctx, analysis.ProjectID, "")
	gt.NoError(t, err)

	result, err := uc.Regenerate(ctx, analysis.ProjectID, "J. Smith")
	gt.NoError(t, err)
	gt.Bool(t, result.Success).True()
	gt.Number(t, result.Count).Equal(5)

	count, err := repo.RFI().CountByAnalysisID(ctx, analysis.ID)
	gt.NoError(t, err)
	gt.Number(t, count).Equal(5)

	items, err := repo.RFI().ListByAnalysisID(ctx, analysis.ID)
	gt.NoError(t, err)
	gt.Value(t, items[0].CreatedBy).Equal("J. Smith")
}

func TestRFIGenerate_ModelResponseNormalized(t *testing.T) {
	repo := memory.New()
	analysis := seedAnalysis(t, repo, "New build warehouse")

	completion := `Here are the clarifications:
[
  {"category": "PROGRAM", "priority": "critical", "question": "Confirm sectional handover dates", "pricing_impact": "HIGH"},
  {"category": "BASEMENT", "priority": "whenever", "question": "Confirm waterproofing warranty", "context": "Grade 3 required"},
  {"category": "SCOPE", "priority": "LOW", "question": "   "}
]`
	uc := usecase.NewRFIUseCase(repo, fixedTextClient(completion))
	ctx := context.Background()

	result, err := uc.Generate(ctx, analysis.ProjectID, "")
	gt.NoError(t, err)
	gt.Bool(t, result.Success).True()
	gt.Number(t, result.Count).Equal(2)

	items, err := repo.RFI().ListByAnalysisID(ctx, analysis.ID)
	gt.NoError(t, err)
	gt.Array(t, items).Length(2)

	first := items[0]
	gt.Value(t, first.Category).Equal(types.RFICategoryProgramme)
	gt.Value(t, first.Priority).Equal(types.RFIPriorityCritical)
	gt.Value(t, first.Context).Equal("Clarification required for accurate estimation")
	gt.Value(t, first.DocumentReference).Equal("General")
	gt.Value(t, first.RiskIfUnresolved).Equal("May affect pricing accuracy")
	gt.Value(t, first.PricingImpact).Equal(types.PricingImpactHigh)

	second := items[1]
	gt.Value(t, second.Category).Equal(types.RFICategoryTechnical)
	gt.Value(t, second.Priority).Equal(types.RFIPriorityMedium)
	gt.Value(t, second.Context).Equal("Grade 3 required")
}

func TestRFIGenerate_GarbageModelOutputFallsBack(t *testing.T) {
	repo := memory.New()
	analysis := seedAnalysis(t, repo, "New build warehouse")
	uc := usecase.NewRFIUseCase(repo, fixedTextClient("no array here"))

	result, err := uc.Generate(context.Background(), analysis.ProjectID, "")
	gt.NoError(t, err)
	gt.Number(t, result.Count).Equal(5)
}

func TestRFIGenerate_ModelSetCapped(t *testing.T) {
	repo := memory.New()
	analysis := seedAnalysis(t, repo, "New build warehouse")

	var entries []string
	for i := 0; i < 30; i++ {
		entries = append(entries, `{"category": "TECHNICAL", "priority": "HIGH", "question": "Question `+strings.Repeat("x", i+1)+`"}`)
	}
	completion := "[" + strings.Join(entries, ",") + "]"

	uc := usecase.NewRFIUseCase(repo, fixedTextClient(completion))

	result, err := uc.Generate(context.Background(), analysis.ProjectID, "")
	gt.NoError(t, err)
	gt.Number(t, result.Count).Equal(20)
}

func TestRFIUpdateStatus(t *testing.T) {
	repo := memory.New()
	analysis := seedAnalysis(t, repo, "New build warehouse")
	uc := usecase.NewRFIUseCase(repo, nil)
	ctx := context.Background()

	_, err := uc.Generate(ctx, analysis.ProjectID, "")
	gt.NoError(t, err)

	items, err := uc.List(ctx, analysis.ProjectID)
	gt.NoError(t, err)

	target := items[0].ID
	gt.NoError(t, uc.UpdateStatus(ctx, target, types.RFIStatusAnswered))

	items, err = uc.List(ctx, analysis.ProjectID)
	gt.NoError(t, err)
	answered := 0
	for _, item := range items {
		if item.ID == target {
			gt.Value(t, item.Status).Equal(types.RFIStatusAnswered)
			answered++
		}
	}
	gt.Number(t, answered).Equal(1)
}
