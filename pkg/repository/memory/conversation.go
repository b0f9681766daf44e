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

type conversationRepository struct {
	mu            sync.RWMutex
	conversations map[types.ProjectID]*model.Conversation
	questions     map[types.QuestionID]*model.Question
}

func newConversationRepository() *conversationRepository {
	return &conversationRepository{
		conversations: make(map[types.ProjectID]*model.Conversation),
		questions:     make(map[types.QuestionID]*model.Question),
	}
}

func (r *conversationRepository) GetOrCreate(ctx context.Context, projectID types.ProjectID, title string) (*model.Conversation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if conv, exists := r.conversations[projectID]; exists {
		cp := *conv
		return &cp, nil
	}

	conv := &model.Conversation{
		ID:        types.NewConversationID(),
		ProjectID: projectID,
		Title:     title,
		CreatedAt: time.Now().UTC(),
	}
	r.conversations[projectID] = conv

	cp := *conv
	return &cp, nil
}

func (r *conversationRepository) AddQuestion(ctx context.Context, question *model.Question) (*model.Question, error) {
	if question.ConversationID == "" {
		return nil, goerr.New("conversation ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	created := *question
	if created.ID == "" {
		created.ID = types.NewQuestionID()
	}
	created.CreatedAt = time.Now().UTC()
	created.SourceDocs = append([]string(nil), question.SourceDocs...)
	created.References = append([]string(nil), question.References...)

	r.questions[created.ID] = &created

	cp := created
	return &cp, nil
}

func (r *conversationRepository) ListQuestions(ctx context.Context, conversationID types.ConversationID) ([]*model.Question, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var questions []*model.Question
	for _, q := range r.questions {
		if q.ConversationID == conversationID {
			cp := *q
			questions = append(questions, &cp)
		}
	}

	sort.SliceStable(questions, func(i, j int) bool {
		return questions[i].CreatedAt.Before(questions[j].CreatedAt)
	})

	return questions, nil
}
