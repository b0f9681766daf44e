package types

import (
	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

// ProjectID is an opaque identifier for a construction project
type ProjectID string

// NewProjectID generates a new UUID v4 ProjectID
func NewProjectID() ProjectID {
	return ProjectID(uuid.New().String())
}

func (id ProjectID) Validate() error {
	if id == "" {
		return goerr.New("project ID cannot be empty")
	}
	return nil
}

func (id ProjectID) String() string {
	return string(id)
}

// AnalysisID identifies a persisted tender analysis record
type AnalysisID string

// NewAnalysisID generates a new UUID v4 AnalysisID
func NewAnalysisID() AnalysisID {
	return AnalysisID(uuid.New().String())
}

func (id AnalysisID) Validate() error {
	if id == "" {
		return goerr.New("analysis ID cannot be empty")
	}
	return nil
}

func (id AnalysisID) String() string {
	return string(id)
}

// ConversationID identifies a per-project question/answer conversation
type ConversationID string

// NewConversationID generates a new UUID v4 ConversationID
func NewConversationID() ConversationID {
	return ConversationID(uuid.New().String())
}

func (id ConversationID) String() string {
	return string(id)
}

// QuestionID identifies a single question/answer history record
type QuestionID string

// NewQuestionID generates a new UUID v4 QuestionID
func NewQuestionID() QuestionID {
	return QuestionID(uuid.New().String())
}

func (id QuestionID) String() string {
	return string(id)
}

// RFIID identifies a single RFI item
type RFIID string

// NewRFIID generates a new UUID v4 RFIID
func NewRFIID() RFIID {
	return RFIID(uuid.New().String())
}

func (id RFIID) String() string {
	return string(id)
}
