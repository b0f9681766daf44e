package usecase

import (
	"context"
	_ "embed"
	"fmt"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"

	"github.com/construct-hq/tenderbase/pkg/domain/interfaces"
	"github.com/construct-hq/tenderbase/pkg/domain/model"
	"github.com/construct-hq/tenderbase/pkg/domain/types"
	"github.com/construct-hq/tenderbase/pkg/service/answer"
	"github.com/construct-hq/tenderbase/pkg/service/knowledge"
	"github.com/construct-hq/tenderbase/pkg/service/question"
	"github.com/construct-hq/tenderbase/pkg/utils/logging"
)

//go:embed prompt/answer_system.md
var answerSystemPrompt string

// Prompt assembly budgets. Category excerpts give the model broad project
// context; retrieved documents carry the material most likely to answer
// the question. The total cap keeps the prompt within a predictable token
// envelope regardless of project size.
const (
	contextDocsPerCategory = 3
	contextCategoryExcerpt = 2000
	contextRetrievedDocs   = 5
	contextRetrievedChars  = 3000
	contextTotalLimit      = 25000
)

// AnswerUseCase answers free-text questions against a project's knowledge
// base and records the exchange in the project conversation.
type AnswerUseCase struct {
	repo      interfaces.Repository
	builder   *knowledge.Builder
	llmClient gollem.LLMClient
}

func NewAnswerUseCase(repo interfaces.Repository, builder *knowledge.Builder, llmClient gollem.LLMClient) *AnswerUseCase {
	return &AnswerUseCase{
		repo:      repo,
		builder:   builder,
		llmClient: llmClient,
	}
}

// Ask answers one question about a project. Build and model failures are
// reported inside the result with Success=false; only programming errors
// (missing project, broken repository) surface as errors.
func (uc *AnswerUseCase) Ask(ctx context.Context, projectID types.ProjectID, questionText string, forceRefresh bool) (*model.AskResult, error) {
	started := time.Now()
	logger := logging.From(ctx)

	if strings.TrimSpace(questionText) == "" {
		return &model.AskResult{Success: false, Error: "question must not be empty"}, nil
	}
	if uc.llmClient == nil {
		return nil, ErrLLMNotConfigured
	}

	project, err := uc.repo.Project().Get(ctx, projectID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load project", goerr.V("projectID", projectID))
	}

	qc := question.Analyze(questionText)
	logger.Info("question analyzed",
		"type", qc.Type,
		"complexity", qc.Complexity,
		"categories", len(qc.RelevantCategories),
	)

	kb, err := uc.builder.Build(ctx, project, forceRefresh)
	if err != nil {
		logger.Warn("knowledge base build failed", "error", err.Error())
		return &model.AskResult{
			Success:        false,
			Error:          "could not read the project documents: " + err.Error(),
			ProcessingTime: time.Since(started),
		}, nil
	}

	retrieved := knowledge.Search(kb, qc.SearchTerms)
	promptText := buildAnswerPrompt(kb, qc, retrieved)

	session, err := uc.llmClient.NewSession(ctx,
		gollem.WithSessionSystemPrompt(answerSystemPrompt),
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create LLM session")
	}

	resp, err := session.GenerateContent(ctx, gollem.Text(promptText))
	if err != nil || len(resp.Texts) == 0 {
		logger.Warn("answer generation failed", "error", fmt.Sprint(err))
		return &model.AskResult{
			Success:        false,
			Error:          "answer generation failed",
			ProcessingTime: time.Since(started),
		}, nil
	}

	ans := answer.Parse(resp.Texts[0])
	sourceDocs := retrieved
	if len(sourceDocs) > contextRetrievedDocs {
		sourceDocs = sourceDocs[:contextRetrievedDocs]
	}

	if err := uc.record(ctx, project, questionText, ans, sourceDocs); err != nil {
		// History is best-effort: the answer still goes out
		logger.Warn("failed to record question history", "error", err.Error())
	}

	return &model.AskResult{
		Success:    true,
		Answer:     ans,
		SourceDocs: sourceDocs,
		Stats: model.KnowledgeStats{
			TotalDocuments:     kb.Summary.TotalDocuments,
			ProcessedDocuments: kb.Summary.Succeeded,
			Categories:         kb.CategoryNames(),
			RelevantDocuments:  len(retrieved),
		},
		ProcessingTime: time.Since(started),
	}, nil
}

func (uc *AnswerUseCase) record(ctx context.Context, project *model.Project, questionText string, ans *model.Answer, sourceDocs []string) error {
	conv, err := uc.repo.Conversation().GetOrCreate(ctx, project.ID, conversationTitle(project))
	if err != nil {
		return goerr.Wrap(err, "failed to open conversation")
	}

	_, err = uc.repo.Conversation().AddQuestion(ctx, &model.Question{
		ConversationID: conv.ID,
		QuestionText:   questionText,
		AnswerText:     ans.Text,
		Confidence:     ans.Confidence,
		SourceDocs:     sourceDocs,
		References:     ans.DocumentReferences,
	})
	return err
}

// buildAnswerPrompt assembles the bounded document context and the
// question. Relevant categories contribute excerpts in taxonomy order and
// retrieved documents follow in relevance order, so two identical
// questions over the same knowledge base produce the same prompt.
func buildAnswerPrompt(kb *model.KnowledgeBase, qc *model.QuestionContext, retrieved []string) string {
	var sb strings.Builder
	remaining := contextTotalLimit

	writeSection := func(header, text string, limit int) {
		if remaining <= 0 || text == "" {
			return
		}
		if limit > remaining {
			limit = remaining
		}
		if len(text) > limit {
			text = text[:limit]
		}
		sb.WriteString(header)
		sb.WriteString(text)
		sb.WriteString("\n\n")
		remaining -= len(text)
	}

	sb.WriteString("PROJECT: " + kb.ProjectName + "\n\n")
	sb.WriteString("=== DOCUMENT CONTEXT ===\n\n")

	for _, cat := range qc.RelevantCategories {
		docs := kb.Categories[cat]
		if len(docs) > contextDocsPerCategory {
			docs = docs[:contextDocsPerCategory]
		}
		for _, doc := range docs {
			writeSection(
				fmt.Sprintf("--- %s (%s) ---\n", doc.DocumentName, cat),
				doc.Text,
				contextCategoryExcerpt,
			)
		}
	}

	if len(retrieved) > 0 {
		sb.WriteString("=== MOST RELEVANT DOCUMENTS ===\n\n")
		count := len(retrieved)
		if count > contextRetrievedDocs {
			count = contextRetrievedDocs
		}
		for _, name := range retrieved[:count] {
			writeSection(
				fmt.Sprintf("--- %s ---\n", name),
				kb.Contents[name],
				contextRetrievedChars,
			)
		}
	}

	sb.WriteString("=== QUESTION ===\n")
	sb.WriteString(qc.Question)
	sb.WriteString("\n")

	return sb.String()
}
