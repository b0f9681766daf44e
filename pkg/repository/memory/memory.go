package memory

import (
	"github.com/construct-hq/tenderbase/pkg/domain/interfaces"
)

// Repository is an alias for Memory to match the pattern
type Repository = Memory

type Memory struct {
	project      *projectRepository
	analysis     *analysisRepository
	rfi          *rfiRepository
	conversation *conversationRepository
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	return &Memory{
		project:      newProjectRepository(),
		analysis:     newAnalysisRepository(),
		rfi:          newRFIRepository(),
		conversation: newConversationRepository(),
	}
}

func (m *Memory) Project() interfaces.ProjectRepository {
	return m.project
}

func (m *Memory) Analysis() interfaces.AnalysisRepository {
	return m.analysis
}

func (m *Memory) RFI() interfaces.RFIRepository {
	return m.rfi
}

func (m *Memory) Conversation() interfaces.ConversationRepository {
	return m.conversation
}

func (m *Memory) Close() error {
	return nil
}
