package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/construct-hq/tenderbase/pkg/domain/interfaces"
	"github.com/construct-hq/tenderbase/pkg/domain/model"
	"github.com/construct-hq/tenderbase/pkg/domain/types"
	"github.com/construct-hq/tenderbase/pkg/service/knowledge"
)

// ProjectUseCase covers project CRUD and knowledge base lifecycle
// operations.
type ProjectUseCase struct {
	repo    interfaces.Repository
	builder *knowledge.Builder
}

func NewProjectUseCase(repo interfaces.Repository, builder *knowledge.Builder) *ProjectUseCase {
	return &ProjectUseCase{repo: repo, builder: builder}
}

func (uc *ProjectUseCase) Create(ctx context.Context, project *model.Project) (*model.Project, error) {
	if err := project.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid project")
	}
	return uc.repo.Project().Create(ctx, project)
}

func (uc *ProjectUseCase) Get(ctx context.Context, id types.ProjectID) (*model.Project, error) {
	return uc.repo.Project().Get(ctx, id)
}

func (uc *ProjectUseCase) List(ctx context.Context) ([]*model.Project, error) {
	return uc.repo.Project().List(ctx)
}

func (uc *ProjectUseCase) Update(ctx context.Context, project *model.Project) (*model.Project, error) {
	if err := project.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid project")
	}
	return uc.repo.Project().Update(ctx, project)
}

// Delete removes a project and drops its cached knowledge base
func (uc *ProjectUseCase) Delete(ctx context.Context, id types.ProjectID) error {
	if err := uc.repo.Project().Delete(ctx, id); err != nil {
		return err
	}
	return uc.builder.Invalidate(ctx, id.String())
}

// RefreshKnowledge rebuilds the knowledge base of a project, bypassing the
// cache.
func (uc *ProjectUseCase) RefreshKnowledge(ctx context.Context, id types.ProjectID) (*model.KnowledgeBase, error) {
	project, err := uc.repo.Project().Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.builder.Build(ctx, project, true)
}

// ClearKnowledge drops the cached knowledge base without rebuilding it
func (uc *ProjectUseCase) ClearKnowledge(ctx context.Context, id types.ProjectID) error {
	return uc.builder.Invalidate(ctx, id.String())
}

// History returns the question history of a project in creation order. A
// project that was never asked anything has an empty history, not an
// error.
func (uc *ProjectUseCase) History(ctx context.Context, id types.ProjectID) ([]*model.Question, error) {
	project, err := uc.repo.Project().Get(ctx, id)
	if err != nil {
		return nil, err
	}

	conv, err := uc.repo.Conversation().GetOrCreate(ctx, project.ID, conversationTitle(project))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open conversation", goerr.V("projectID", project.ID))
	}
	return uc.repo.Conversation().ListQuestions(ctx, conv.ID)
}

func conversationTitle(project *model.Project) string {
	return "Questions - " + project.Name
}
