package interfaces

import (
	"context"

	"github.com/construct-hq/tenderbase/pkg/domain/model"
	"github.com/construct-hq/tenderbase/pkg/domain/types"
)

// ConversationRepository defines the interface for question history
// persistence
type ConversationRepository interface {
	// GetOrCreate returns the conversation of a project, creating it with
	// the given title on first use
	GetOrCreate(ctx context.Context, projectID types.ProjectID, title string) (*model.Conversation, error)

	// AddQuestion appends a question/answer record to a conversation
	AddQuestion(ctx context.Context, question *model.Question) (*model.Question, error)

	// ListQuestions retrieves the question history of a conversation in
	// creation order
	ListQuestions(ctx context.Context, conversationID types.ConversationID) ([]*model.Question, error)
}
