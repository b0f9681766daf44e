package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/construct-hq/tenderbase/pkg/domain/model"
	"github.com/construct-hq/tenderbase/pkg/domain/types"
)

type rfiRepository struct {
	mu    sync.RWMutex
	items map[types.RFIID]*model.RFIItem
}

func newRFIRepository() *rfiRepository {
	return &rfiRepository{
		items: make(map[types.RFIID]*model.RFIItem),
	}
}

func copyRFI(item *model.RFIItem) *model.RFIItem {
	cp := *item
	return &cp
}

func (r *rfiRepository) Create(ctx context.Context, item *model.RFIItem) (*model.RFIItem, error) {
	if err := item.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid RFI item")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	created := copyRFI(item)
	if created.ID == "" {
		created.ID = types.NewRFIID()
	}
	if created.Status == "" {
		created.Status = types.RFIStatusPending
	}
	created.CreatedAt = time.Now().UTC()

	r.items[created.ID] = created
	return copyRFI(created), nil
}

func (r *rfiRepository) ListByAnalysisID(ctx context.Context, analysisID types.AnalysisID) ([]*model.RFIItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var items []*model.RFIItem
	for _, item := range r.items {
		if item.AnalysisID == analysisID {
			items = append(items, copyRFI(item))
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Priority.Rank() != items[j].Priority.Rank() {
			return items[i].Priority.Rank() < items[j].Priority.Rank()
		}
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})

	return items, nil
}

func (r *rfiRepository) CountByAnalysisID(ctx context.Context, analysisID types.AnalysisID) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, item := range r.items {
		if item.AnalysisID == analysisID {
			count++
		}
	}
	return count, nil
}

func (r *rfiRepository) DeleteByAnalysisID(ctx context.Context, analysisID types.AnalysisID) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	deleted := 0
	for id, item := range r.items {
		if item.AnalysisID == analysisID {
			delete(r.items, id)
			deleted++
		}
	}
	return deleted, nil
}

func (r *rfiRepository) UpdateStatus(ctx context.Context, id types.RFIID, status types.RFIStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, exists := r.items[id]
	if !exists {
		return goerr.Wrap(ErrNotFound, "RFI item not found", goerr.V("id", id))
	}

	item.Status = status
	return nil
}
