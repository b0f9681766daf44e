package firestore

import (
	"context"
	"sort"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/construct-hq/tenderbase/pkg/domain/model"
	"github.com/construct-hq/tenderbase/pkg/domain/types"
)

type rfiRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newRFIRepository(client *firestore.Client) *rfiRepository {
	return &rfiRepository{client: client}
}

func (r *rfiRepository) collection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_rfi_items"
	}
	return "rfi_items"
}

func (r *rfiRepository) Create(ctx context.Context, item *model.RFIItem) (*model.RFIItem, error) {
	created := *item
	if created.ID == "" {
		created.ID = types.NewRFIID()
	}
	created.CreatedAt = time.Now().UTC()

	if _, err := r.client.Collection(r.collection()).Doc(created.ID.String()).Set(ctx, &created); err != nil {
		return nil, goerr.Wrap(err, "failed to create RFI item", goerr.V("id", created.ID))
	}
	return &created, nil
}

func (r *rfiRepository) ListByAnalysisID(ctx context.Context, analysisID types.AnalysisID) ([]*model.RFIItem, error) {
	items, err := r.queryByAnalysisID(ctx, analysisID)
	if err != nil {
		return nil, err
	}

	// Priority ranking is domain logic, not a stored column, so ordering
	// happens client-side.
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Priority.Rank() != items[j].Priority.Rank() {
			return items[i].Priority.Rank() < items[j].Priority.Rank()
		}
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
	return items, nil
}

func (r *rfiRepository) CountByAnalysisID(ctx context.Context, analysisID types.AnalysisID) (int, error) {
	items, err := r.queryByAnalysisID(ctx, analysisID)
	if err != nil {
		return 0, err
	}
	return len(items), nil
}

func (r *rfiRepository) DeleteByAnalysisID(ctx context.Context, analysisID types.AnalysisID) (int, error) {
	items, err := r.queryByAnalysisID(ctx, analysisID)
	if err != nil {
		return 0, err
	}

	deleted := 0
	for _, item := range items {
		if _, err := r.client.Collection(r.collection()).Doc(item.ID.String()).Delete(ctx); err != nil {
			return deleted, goerr.Wrap(err, "failed to delete RFI item", goerr.V("id", item.ID))
		}
		deleted++
	}
	return deleted, nil
}

func (r *rfiRepository) UpdateStatus(ctx context.Context, id types.RFIID, newStatus types.RFIStatus) error {
	_, err := r.client.Collection(r.collection()).Doc(id.String()).Update(ctx, []firestore.Update{
		{Path: "Status", Value: newStatus.String()},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(ErrNotFound, "RFI item not found", goerr.V("id", id))
		}
		return goerr.Wrap(err, "failed to update RFI status", goerr.V("id", id))
	}
	return nil
}

func (r *rfiRepository) queryByAnalysisID(ctx context.Context, analysisID types.AnalysisID) ([]*model.RFIItem, error) {
	iter := r.client.Collection(r.collection()).
		Where("AnalysisID", "==", analysisID.String()).
		Documents(ctx)
	defer iter.Stop()

	items := make([]*model.RFIItem, 0)
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to query RFI items", goerr.V("analysisID", analysisID))
		}

		var item model.RFIItem
		if err := docSnap.DataTo(&item); err != nil {
			return nil, goerr.Wrap(err, "failed to decode RFI item", goerr.V("doc", docSnap.Ref.ID))
		}
		items = append(items, &item)
	}
	return items, nil
}
