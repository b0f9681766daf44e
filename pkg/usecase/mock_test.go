package usecase_test

import (
	"context"
	"strings"

	"github.com/m-mizutani/gollem"

	"github.com/construct-hq/tenderbase/pkg/domain/model"
)

// mockLLMSession is a mock gollem Session for testing
type mockLLMSession struct {
	generateContentFn func(ctx context.Context, input ...gollem.Input) (*gollem.Response, error)
}

func (s *mockLLMSession) Generate(ctx context.Context, input []gollem.Input, opts ...gollem.GenerateOption) (*gollem.Response, error) {
	return s.GenerateContent(ctx, input...)
}

func (s *mockLLMSession) Stream(ctx context.Context, input []gollem.Input, opts ...gollem.GenerateOption) (<-chan *gollem.Response, error) {
	return s.GenerateStream(ctx, input...)
}

func (s *mockLLMSession) GenerateContent(ctx context.Context, input ...gollem.Input) (*gollem.Response, error) {
	if s.generateContentFn != nil {
		return s.generateContentFn(ctx, input...)
	}
	return &gollem.Response{
		Texts: []string{"This is a test completion."},
	}, nil
}

func (s *mockLLMSession) GenerateStream(ctx context.Context, input ...gollem.Input) (<-chan *gollem.Response, error) {
	return nil, nil
}

func (s *mockLLMSession) History() (*gollem.History, error) {
	return nil, nil
}

func (s *mockLLMSession) AppendHistory(*gollem.History) error {
	return nil
}

func (s *mockLLMSession) CountToken(ctx context.Context, input ...gollem.Input) (int, error) {
	return 0, nil
}

// mockLLMClient is a mock gollem LLMClient for testing
type mockLLMClient struct {
	newSessionFn func(ctx context.Context, options ...gollem.SessionOption) (gollem.Session, error)
}

func (c *mockLLMClient) NewSession(ctx context.Context, options ...gollem.SessionOption) (gollem.Session, error) {
	if c.newSessionFn != nil {
		return c.newSessionFn(ctx, options...)
	}
	return &mockLLMSession{}, nil
}

func (c *mockLLMClient) GenerateEmbedding(ctx context.Context, dimension int, input []string) ([][]float64, error) {
	return nil, nil
}

// fixedTextClient replies to every prompt with the same completion
func fixedTextClient(completion string) *mockLLMClient {
	return &mockLLMClient{
		newSessionFn: func(ctx context.Context, options ...gollem.SessionOption) (gollem.Session, error) {
			return &mockLLMSession{
				generateContentFn: func(ctx context.Context, input ...gollem.Input) (*gollem.Response, error) {
					return &gollem.Response{Texts: []string{completion}}, nil
				},
			}, nil
		},
	}
}

// stubFolderStore backs the knowledge builder with in-memory documents
type stubFolderStore struct {
	docs     []*model.Document
	contents map[string][]byte
}

func (s *stubFolderStore) List(ctx context.Context, path string, maxDepth, maxCount int) ([]*model.Document, error) {
	if len(s.docs) > maxCount {
		return s.docs[:maxCount], nil
	}
	return s.docs, nil
}

func (s *stubFolderStore) Download(ctx context.Context, ref string) ([]byte, error) {
	return s.contents[ref], nil
}

// plainTextExtractor passes document bytes through unchanged
type plainTextExtractor struct{}

func (plainTextExtractor) Extract(data []byte, mimeType, filename string) string {
	return string(data)
}

func tenderText(topic string) []byte {
	return []byte(topic + " " + strings.Repeat("tender documentation detail ", 20))
}
