package usecase

import "github.com/m-mizutani/goerr/v2"

var (
	// ErrLLMNotConfigured is returned by operations that need the
	// generative model when no client was attached.
	ErrLLMNotConfigured = goerr.New("LLM client is not configured")

	// ErrNoAnalysis is returned when an operation requires a completed
	// tender analysis and the project has none.
	ErrNoAnalysis = goerr.New("project has no tender analysis")
)
