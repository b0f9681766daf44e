package usecase

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"

	"github.com/construct-hq/tenderbase/pkg/domain/interfaces"
	"github.com/construct-hq/tenderbase/pkg/domain/model"
	"github.com/construct-hq/tenderbase/pkg/domain/types"
	"github.com/construct-hq/tenderbase/pkg/service/knowledge"
	"github.com/construct-hq/tenderbase/pkg/utils/logging"
)

//go:embed prompt/analysis_system.md
var analysisSystemPrompt string

// analysisDocExcerpt bounds the per-document text fed to the analysis
// prompt. Analyses read more documents than answers do, so the excerpt is
// smaller.
const analysisDocExcerpt = 4000

// AnalysisUseCase runs the full-tender analysis pipeline: knowledge base,
// generative analysis, field mapping, persistence.
type AnalysisUseCase struct {
	repo      interfaces.Repository
	builder   *knowledge.Builder
	llmClient gollem.LLMClient
}

func NewAnalysisUseCase(repo interfaces.Repository, builder *knowledge.Builder, llmClient gollem.LLMClient) *AnalysisUseCase {
	return &AnalysisUseCase{
		repo:      repo,
		builder:   builder,
		llmClient: llmClient,
	}
}

// Run analyzes the tender documents of a project and persists the result.
// A project with an existing analysis gets it replaced in place, keeping
// its analysis ID stable for the RFI set hanging off it.
func (uc *AnalysisUseCase) Run(ctx context.Context, projectID types.ProjectID, forceRefresh bool) (*model.TenderAnalysis, error) {
	logger := logging.From(ctx)

	if uc.llmClient == nil {
		return nil, ErrLLMNotConfigured
	}

	project, err := uc.repo.Project().Get(ctx, projectID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load project", goerr.V("projectID", projectID))
	}

	kb, err := uc.builder.Build(ctx, project, forceRefresh)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build knowledge base", goerr.V("projectID", projectID))
	}

	result, err := uc.generate(ctx, kb)
	if err != nil {
		return nil, err
	}

	analysis := MapAnalysis(result, project, kb.DocOrder)

	existing, err := uc.repo.Analysis().GetByProjectID(ctx, projectID)
	switch {
	case err == nil:
		analysis.ID = existing.ID
		analysis.CreatedAt = existing.CreatedAt
		updated, err := uc.repo.Analysis().Update(ctx, analysis)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to update analysis")
		}
		logger.Info("tender analysis updated", "projectID", projectID, "analysisID", updated.ID)
		return updated, nil

	case errors.Is(err, types.ErrNotFound):
		created, err := uc.repo.Analysis().Create(ctx, analysis)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create analysis")
		}
		logger.Info("tender analysis created", "projectID", projectID, "analysisID", created.ID)
		return created, nil

	default:
		return nil, goerr.Wrap(err, "failed to look up existing analysis")
	}
}

// Get returns the analysis of a project
func (uc *AnalysisUseCase) Get(ctx context.Context, projectID types.ProjectID) (*model.TenderAnalysis, error) {
	return uc.repo.Analysis().GetByProjectID(ctx, projectID)
}

func (uc *AnalysisUseCase) generate(ctx context.Context, kb *model.KnowledgeBase) (model.AnalysisResult, error) {
	session, err := uc.llmClient.NewSession(ctx,
		gollem.WithSessionContentType(gollem.ContentTypeJSON),
		gollem.WithSessionSystemPrompt(analysisSystemPrompt),
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create LLM session")
	}

	resp, err := session.GenerateContent(ctx, gollem.Text(buildAnalysisPrompt(kb)))
	if err != nil {
		return nil, goerr.Wrap(err, "analysis generation failed")
	}
	if len(resp.Texts) == 0 {
		return nil, goerr.New("analysis generation returned no content")
	}

	var result model.AnalysisResult
	if err := json.Unmarshal([]byte(extractJSONObject(resp.Texts[0])), &result); err != nil {
		return nil, goerr.Wrap(err, "failed to parse analysis response", goerr.V("response", resp.Texts[0]))
	}
	return result, nil
}

func buildAnalysisPrompt(kb *model.KnowledgeBase) string {
	var sb strings.Builder
	sb.WriteString("PROJECT: " + kb.ProjectName + "\n\n")

	remaining := contextTotalLimit
	for _, cat := range kb.CategoryNames() {
		for _, doc := range kb.Categories[cat] {
			if remaining <= 0 {
				break
			}
			text := doc.Text
			limit := analysisDocExcerpt
			if limit > remaining {
				limit = remaining
			}
			if len(text) > limit {
				text = text[:limit]
			}
			sb.WriteString(fmt.Sprintf("--- %s (%s) ---\n", doc.DocumentName, cat))
			sb.WriteString(text)
			sb.WriteString("\n\n")
			remaining -= len(text)
		}
	}

	sb.WriteString("Analyze this tender package.\n")
	return sb.String()
}

// extractJSONObject trims surrounding prose or markdown fencing from a
// completion that should be a bare JSON object.
func extractJSONObject(s string) string {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start >= 0 && end > start {
		return s[start : end+1]
	}
	return s
}
