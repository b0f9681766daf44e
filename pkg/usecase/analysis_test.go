package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/construct-hq/tenderbase/pkg/cache"
	"github.com/construct-hq/tenderbase/pkg/domain/model"
	"github.com/construct-hq/tenderbase/pkg/domain/types"
	"github.com/construct-hq/tenderbase/pkg/repository/memory"
	"github.com/construct-hq/tenderbase/pkg/service/knowledge"
	"github.com/construct-hq/tenderbase/pkg/usecase"
)

func newAnalysisFixture(t *testing.T, completion string) (*usecase.AnalysisUseCase, *memory.Memory, *model.Project) {
	t.Helper()

	repo := memory.New()
	project, err := repo.Project().Create(context.Background(), &model.Project{
		Name:       "Harbour Works",
		FolderPath: "/Tenders/Harbour",
	})
	gt.NoError(t, err)

	store := &stubFolderStore{
		docs: []*model.Document{
			{Name: "contract.pdf", DownloadRef: "r1", MIMEType: "application/pdf"},
		},
		contents: map[string][]byte{"r1": tenderText("contract terms")},
	}
	builder := knowledge.NewBuilder(store, cache.NewMemory(), plainTextExtractor{}, knowledge.NewCategorizer(), knowledge.DefaultLimits())

	uc := usecase.NewAnalysisUseCase(repo, builder, fixedTextClient(completion))
	return uc, repo, project
}

func TestAnalysisRun_CreatesAnalysis(t *testing.T) {
	completion := "```json\n" + `{
  "project_overview": "Quay wall replacement",
  "risk_level": "HIGH",
  "project_duration_weeks": 32,
  "analysis_confidence": 85
}` + "\n```"

	uc, _, project := newAnalysisFixture(t, completion)

	analysis, err := uc.Run(context.Background(), project.ID, false)
	gt.NoError(t, err)

	gt.Value(t, analysis.ProjectID).Equal(project.ID)
	gt.Value(t, analysis.ProjectOverview).Equal("Quay wall replacement")
	gt.Value(t, analysis.RiskLevel).Equal(types.RiskHigh)
	gt.Number(t, analysis.ProjectDurationWeeks).Equal(32)
	gt.Value(t, analysis.AnalysisConfidence).Equal(85.0)
	gt.Array(t, analysis.DocumentsAnalyzed).Equal([]string{"contract.pdf"})
}

func TestAnalysisRun_SecondRunKeepsID(t *testing.T) {
	uc, _, project := newAnalysisFixture(t, `{"project_overview": "first"}`)
	ctx := context.Background()

	first, err := uc.Run(ctx, project.ID, false)
	gt.NoError(t, err)

	second, err := uc.Run(ctx, project.ID, true)
	gt.NoError(t, err)

	gt.Value(t, second.ID).Equal(first.ID)
	gt.Value(t, second.CreatedAt).Equal(first.CreatedAt)
}

func TestAnalysisRun_WithoutLLMClient(t *testing.T) {
	repo := memory.New()
	builder := knowledge.NewBuilder(nil, cache.NewMemory(), plainTextExtractor{}, knowledge.NewCategorizer(), knowledge.DefaultLimits())
	uc := usecase.NewAnalysisUseCase(repo, builder, nil)

	_, err := uc.Run(context.Background(), types.NewProjectID(), false)
	gt.Error(t, err)
	gt.Bool(t, errors.Is(err, usecase.ErrLLMNotConfigured)).True()
}

func TestAnalysisRun_UnparseableCompletionFails(t *testing.T) {
	uc, _, project := newAnalysisFixture(t, "no json in this reply")

	_, err := uc.Run(context.Background(), project.ID, false)
	gt.Error(t, err)
}

func TestAnalysisGet_NotFound(t *testing.T) {
	uc, _, project := newAnalysisFixture(t, `{}`)

	_, err := uc.Get(context.Background(), project.ID)
	gt.Error(t, err)
	gt.Bool(t, errors.Is(err, types.ErrNotFound)).True()
}
