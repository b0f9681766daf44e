package usecase

import (
	"github.com/m-mizutani/gollem"

	"github.com/construct-hq/tenderbase/pkg/domain/interfaces"
	"github.com/construct-hq/tenderbase/pkg/service/knowledge"
)

// UseCases bundles the application operations behind the HTTP controller
// and the CLI commands.
type UseCases struct {
	repo      interfaces.Repository
	llmClient gollem.LLMClient
	builder   *knowledge.Builder

	Project  *ProjectUseCase
	Answer   *AnswerUseCase
	Analysis *AnalysisUseCase
	RFI      *RFIUseCase
}

type Option func(*UseCases)

// WithLLMClient attaches the generative model client. Without it the
// answer, analysis and RFI operations fail with ErrLLMNotConfigured.
func WithLLMClient(client gollem.LLMClient) Option {
	return func(uc *UseCases) {
		uc.llmClient = client
	}
}

func New(repo interfaces.Repository, builder *knowledge.Builder, opts ...Option) *UseCases {
	uc := &UseCases{
		repo:    repo,
		builder: builder,
	}

	for _, opt := range opts {
		opt(uc)
	}

	uc.Project = NewProjectUseCase(repo, builder)
	uc.Answer = NewAnswerUseCase(repo, builder, uc.llmClient)
	uc.Analysis = NewAnalysisUseCase(repo, builder, uc.llmClient)
	uc.RFI = NewRFIUseCase(repo, uc.llmClient)

	return uc
}
