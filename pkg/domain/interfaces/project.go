package interfaces

import (
	"context"

	"github.com/construct-hq/tenderbase/pkg/domain/model"
	"github.com/construct-hq/tenderbase/pkg/domain/types"
)

// ProjectRepository defines the interface for Project data persistence
type ProjectRepository interface {
	// Create creates a new project and assigns its ID
	Create(ctx context.Context, project *model.Project) (*model.Project, error)

	// Get retrieves a project by ID
	Get(ctx context.Context, id types.ProjectID) (*model.Project, error)

	// List retrieves all projects
	List(ctx context.Context) ([]*model.Project, error)

	// Update updates an existing project
	Update(ctx context.Context, project *model.Project) (*model.Project, error)

	// Delete deletes a project by ID
	Delete(ctx context.Context, id types.ProjectID) error
}
