package interfaces

// Repository defines the interface for data persistence
type Repository interface {
	Project() ProjectRepository
	Analysis() AnalysisRepository
	RFI() RFIRepository
	Conversation() ConversationRepository

	Close() error
}
