package firestore

import (
	"context"
	"sort"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"

	"github.com/construct-hq/tenderbase/pkg/domain/model"
	"github.com/construct-hq/tenderbase/pkg/domain/types"
)

type conversationRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newConversationRepository(client *firestore.Client) *conversationRepository {
	return &conversationRepository{client: client}
}

func (r *conversationRepository) conversationsCollection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_conversations"
	}
	return "conversations"
}

func (r *conversationRepository) questionsCollection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_questions"
	}
	return "questions"
}

func (r *conversationRepository) GetOrCreate(ctx context.Context, projectID types.ProjectID, title string) (*model.Conversation, error) {
	iter := r.client.Collection(r.conversationsCollection()).
		Where("ProjectID", "==", projectID.String()).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	docSnap, err := iter.Next()
	if err == nil {
		var conv model.Conversation
		if err := docSnap.DataTo(&conv); err != nil {
			return nil, goerr.Wrap(err, "failed to decode conversation", goerr.V("doc", docSnap.Ref.ID))
		}
		return &conv, nil
	}
	if err != iterator.Done {
		return nil, goerr.Wrap(err, "failed to query conversations", goerr.V("projectID", projectID))
	}

	conv := &model.Conversation{
		ID:        types.NewConversationID(),
		ProjectID: projectID,
		Title:     title,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := r.client.Collection(r.conversationsCollection()).Doc(conv.ID.String()).Set(ctx, conv); err != nil {
		return nil, goerr.Wrap(err, "failed to create conversation", goerr.V("projectID", projectID))
	}
	return conv, nil
}

func (r *conversationRepository) AddQuestion(ctx context.Context, question *model.Question) (*model.Question, error) {
	created := *question
	if created.ID == "" {
		created.ID = types.NewQuestionID()
	}
	created.CreatedAt = time.Now().UTC()

	if _, err := r.client.Collection(r.questionsCollection()).Doc(created.ID.String()).Set(ctx, &created); err != nil {
		return nil, goerr.Wrap(err, "failed to store question", goerr.V("id", created.ID))
	}
	return &created, nil
}

func (r *conversationRepository) ListQuestions(ctx context.Context, conversationID types.ConversationID) ([]*model.Question, error) {
	iter := r.client.Collection(r.questionsCollection()).
		Where("ConversationID", "==", conversationID.String()).
		Documents(ctx)
	defer iter.Stop()

	questions := make([]*model.Question, 0)
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to query questions", goerr.V("conversationID", conversationID))
		}

		var q model.Question
		if err := docSnap.DataTo(&q); err != nil {
			return nil, goerr.Wrap(err, "failed to decode question", goerr.V("doc", docSnap.Ref.ID))
		}
		questions = append(questions, &q)
	}

	sort.SliceStable(questions, func(i, j int) bool {
		return questions[i].CreatedAt.Before(questions[j].CreatedAt)
	})
	return questions, nil
}
