package interfaces

import (
	"context"

	"github.com/construct-hq/tenderbase/pkg/domain/model"
	"github.com/construct-hq/tenderbase/pkg/domain/types"
)

// AnalysisRepository defines the interface for TenderAnalysis persistence
type AnalysisRepository interface {
	// Create creates a new tender analysis record
	Create(ctx context.Context, analysis *model.TenderAnalysis) (*model.TenderAnalysis, error)

	// Get retrieves an analysis by ID
	Get(ctx context.Context, id types.AnalysisID) (*model.TenderAnalysis, error)

	// GetByProjectID retrieves the latest analysis for a project
	GetByProjectID(ctx context.Context, projectID types.ProjectID) (*model.TenderAnalysis, error)

	// Update updates an existing analysis
	Update(ctx context.Context, analysis *model.TenderAnalysis) (*model.TenderAnalysis, error)
}
