package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/construct-hq/tenderbase/pkg/domain/types"
)

// RFIItem is a structured clarification request derived from a tender
// analysis. RFIs are generated exactly once per analysis; regeneration
// requires deleting the prior set first.
type RFIItem struct {
	ID         types.RFIID
	ProjectID  types.ProjectID
	AnalysisID types.AnalysisID

	Category          types.RFICategory
	Priority          types.RFIPriority
	Question          string
	Context           string
	DocumentReference string
	PricingImpact     types.PricingImpact
	RiskIfUnresolved  string

	Status    types.RFIStatus
	CreatedBy string
	CreatedAt time.Time
}

// Validate checks the fields that must be present on every RFI
func (r *RFIItem) Validate() error {
	if r.Question == "" {
		return goerr.New("RFI question is required")
	}
	if r.Category == "" {
		return goerr.New("RFI category is required", goerr.V("question", r.Question))
	}
	if r.Priority == "" {
		return goerr.New("RFI priority is required", goerr.V("question", r.Question))
	}
	return nil
}

// RFIGenerationResult reports the outcome of an RFI generation run. A
// precondition failure (RFIs already exist) is reported here with
// Success=false rather than as an error.
type RFIGenerationResult struct {
	Success    bool
	Message    string
	Count      int
	Categories map[types.RFICategory]int
}
