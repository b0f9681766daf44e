package memory

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/construct-hq/tenderbase/pkg/domain/model"
	"github.com/construct-hq/tenderbase/pkg/domain/types"
)

type analysisRepository struct {
	mu       sync.RWMutex
	analyses map[types.AnalysisID]*model.TenderAnalysis
}

func newAnalysisRepository() *analysisRepository {
	return &analysisRepository{
		analyses: make(map[types.AnalysisID]*model.TenderAnalysis),
	}
}

func copyAnalysis(a *model.TenderAnalysis) *model.TenderAnalysis {
	cp := *a
	cp.KeyRequirements = append([]string(nil), a.KeyRequirements...)
	cp.KeyOpportunities = append([]string(nil), a.KeyOpportunities...)
	cp.DocumentsAnalyzed = append([]string(nil), a.DocumentsAnalyzed...)
	if a.ContractInformation != nil {
		cp.ContractInformation = make(map[string]string, len(a.ContractInformation))
		for k, v := range a.ContractInformation {
			cp.ContractInformation[k] = v
		}
	}
	return &cp
}

func (r *analysisRepository) Create(ctx context.Context, analysis *model.TenderAnalysis) (*model.TenderAnalysis, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	created := copyAnalysis(analysis)
	if created.ID == "" {
		created.ID = types.NewAnalysisID()
	}
	created.CreatedAt = now
	created.UpdatedAt = now

	r.analyses[created.ID] = created
	return copyAnalysis(created), nil
}

func (r *analysisRepository) Get(ctx context.Context, id types.AnalysisID) (*model.TenderAnalysis, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	analysis, exists := r.analyses[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "analysis not found", goerr.V("id", id))
	}

	return copyAnalysis(analysis), nil
}

func (r *analysisRepository) GetByProjectID(ctx context.Context, projectID types.ProjectID) (*model.TenderAnalysis, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var latest *model.TenderAnalysis
	for _, analysis := range r.analyses {
		if analysis.ProjectID != projectID {
			continue
		}
		if latest == nil || analysis.CreatedAt.After(latest.CreatedAt) {
			latest = analysis
		}
	}

	if latest == nil {
		return nil, goerr.Wrap(ErrNotFound, "analysis not found", goerr.V("projectID", projectID))
	}

	return copyAnalysis(latest), nil
}

func (r *analysisRepository) Update(ctx context.Context, analysis *model.TenderAnalysis) (*model.TenderAnalysis, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.analyses[analysis.ID]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "analysis not found", goerr.V("id", analysis.ID))
	}

	updated := copyAnalysis(analysis)
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	r.analyses[updated.ID] = updated
	return copyAnalysis(updated), nil
}
