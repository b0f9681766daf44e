package model

import (
	"time"

	"github.com/construct-hq/tenderbase/pkg/domain/types"
)

// QuestionContext is the analyzed form of an inbound free-text question.
// It is transient and never persisted.
type QuestionContext struct {
	Question           string
	Complexity         types.Complexity
	Type               types.QuestionType
	RelevantCategories []types.DocumentCategory
	SearchTerms        []string

	// RequiresCrossReference is set when the question touches more than
	// one document category.
	RequiresCrossReference bool
}

// Answer is the parsed, structured form of a generative model completion.
// Missing sections default to empty values, never to an error.
type Answer struct {
	Text               string
	Confidence         int
	KeyFindings        []string
	DocumentReferences []string
	CrossReferences    []string
	Recommendations    []string
	FollowUpQuestions  []string
}

// Conversation groups the question history of one project. One conversation
// exists per project, created on first question.
type Conversation struct {
	ID        types.ConversationID
	ProjectID types.ProjectID
	Title     string
	CreatedAt time.Time
}

// Question is one persisted question/answer history record. Records are
// immutable once written; a corrected answer is a new record.
type Question struct {
	ID             types.QuestionID
	ConversationID types.ConversationID
	QuestionText   string
	AnswerText     string
	Confidence     int
	SourceDocs     []string
	References     []string
	CreatedAt      time.Time
}

// KnowledgeStats summarizes the knowledge base state behind an answer
type KnowledgeStats struct {
	TotalDocuments     int
	ProcessedDocuments int
	Categories         []types.DocumentCategory
	RelevantDocuments  int
}

// AskResult is the outward-facing result of answering a question. A failed
// build or model call yields Success=false with a human-readable reason
// instead of an error, so the CRUD layer can render it without crashing.
type AskResult struct {
	Success        bool
	Error          string
	Answer         *Answer
	SourceDocs     []string
	Stats          KnowledgeStats
	ProcessingTime time.Duration
}
