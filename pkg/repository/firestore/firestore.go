package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"

	"github.com/construct-hq/tenderbase/pkg/domain/interfaces"
)

type Firestore struct {
	client       *firestore.Client
	project      *projectRepository
	analysis     *analysisRepository
	rfi          *rfiRepository
	conversation *conversationRepository
}

var _ interfaces.Repository = &Firestore{}

type Option func(*Firestore)

// WithCollectionPrefix namespaces every collection, letting multiple
// deployments share one Firestore database.
func WithCollectionPrefix(prefix string) Option {
	return func(f *Firestore) {
		f.project.collectionPrefix = prefix
		f.analysis.collectionPrefix = prefix
		f.rfi.collectionPrefix = prefix
		f.conversation.collectionPrefix = prefix
	}
}

func New(ctx context.Context, projectID string, opts ...Option) (*Firestore, error) {
	client, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client", goerr.V("projectID", projectID))
	}

	f := &Firestore{
		client:       client,
		project:      newProjectRepository(client),
		analysis:     newAnalysisRepository(client),
		rfi:          newRFIRepository(client),
		conversation: newConversationRepository(client),
	}

	for _, opt := range opts {
		opt(f)
	}

	return f, nil
}

func (f *Firestore) Project() interfaces.ProjectRepository {
	return f.project
}

func (f *Firestore) Analysis() interfaces.AnalysisRepository {
	return f.analysis
}

func (f *Firestore) RFI() interfaces.RFIRepository {
	return f.rfi
}

func (f *Firestore) Conversation() interfaces.ConversationRepository {
	return f.conversation
}

func (f *Firestore) Close() error {
	if f.client != nil {
		return f.client.Close()
	}
	return nil
}
