package interfaces

import (
	"context"

	"github.com/construct-hq/tenderbase/pkg/domain/model"
	"github.com/construct-hq/tenderbase/pkg/domain/types"
)

// RFIRepository defines the interface for RFIItem persistence
type RFIRepository interface {
	// Create creates a new RFI item
	Create(ctx context.Context, item *model.RFIItem) (*model.RFIItem, error)

	// ListByAnalysisID retrieves all RFI items generated for an analysis,
	// ordered by priority rank then creation time
	ListByAnalysisID(ctx context.Context, analysisID types.AnalysisID) ([]*model.RFIItem, error)

	// CountByAnalysisID returns the number of RFI items for an analysis
	CountByAnalysisID(ctx context.Context, analysisID types.AnalysisID) (int, error)

	// DeleteByAnalysisID deletes the full RFI set of an analysis and
	// returns the number of deleted items
	DeleteByAnalysisID(ctx context.Context, analysisID types.AnalysisID) (int, error)

	// UpdateStatus changes the status of a single RFI item
	UpdateStatus(ctx context.Context, id types.RFIID, status types.RFIStatus) error
}
