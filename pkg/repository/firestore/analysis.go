package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/construct-hq/tenderbase/pkg/domain/model"
	"github.com/construct-hq/tenderbase/pkg/domain/types"
)

type analysisRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newAnalysisRepository(client *firestore.Client) *analysisRepository {
	return &analysisRepository{client: client}
}

func (r *analysisRepository) collection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_analyses"
	}
	return "analyses"
}

func (r *analysisRepository) Create(ctx context.Context, analysis *model.TenderAnalysis) (*model.TenderAnalysis, error) {
	now := time.Now().UTC()
	created := *analysis
	if created.ID == "" {
		created.ID = types.NewAnalysisID()
	}
	created.CreatedAt = now
	created.UpdatedAt = now

	if _, err := r.client.Collection(r.collection()).Doc(created.ID.String()).Set(ctx, &created); err != nil {
		return nil, goerr.Wrap(err, "failed to create analysis", goerr.V("id", created.ID))
	}
	return &created, nil
}

func (r *analysisRepository) Get(ctx context.Context, id types.AnalysisID) (*model.TenderAnalysis, error) {
	docSnap, err := r.client.Collection(r.collection()).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "analysis not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get analysis", goerr.V("id", id))
	}

	var a model.TenderAnalysis
	if err := docSnap.DataTo(&a); err != nil {
		return nil, goerr.Wrap(err, "failed to decode analysis", goerr.V("id", id))
	}
	return &a, nil
}

func (r *analysisRepository) GetByProjectID(ctx context.Context, projectID types.ProjectID) (*model.TenderAnalysis, error) {
	iter := r.client.Collection(r.collection()).
		Where("ProjectID", "==", projectID.String()).
		Documents(ctx)
	defer iter.Stop()

	// A project holds at most a handful of analysis records; the latest
	// one wins. Sorting client-side avoids a composite index.
	var latest *model.TenderAnalysis
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to query analyses", goerr.V("projectID", projectID))
		}

		var a model.TenderAnalysis
		if err := docSnap.DataTo(&a); err != nil {
			return nil, goerr.Wrap(err, "failed to decode analysis", goerr.V("doc", docSnap.Ref.ID))
		}
		if latest == nil || a.CreatedAt.After(latest.CreatedAt) {
			latest = &a
		}
	}

	if latest == nil {
		return nil, goerr.Wrap(ErrNotFound, "no analysis for project", goerr.V("projectID", projectID))
	}
	return latest, nil
}

func (r *analysisRepository) Update(ctx context.Context, analysis *model.TenderAnalysis) (*model.TenderAnalysis, error) {
	existing, err := r.Get(ctx, analysis.ID)
	if err != nil {
		return nil, err
	}

	updated := *analysis
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	if _, err := r.client.Collection(r.collection()).Doc(updated.ID.String()).Set(ctx, &updated); err != nil {
		return nil, goerr.Wrap(err, "failed to update analysis", goerr.V("id", updated.ID))
	}
	return &updated, nil
}
