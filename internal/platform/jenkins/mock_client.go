package jenkins

import "context"

// MockClient is a mock implementation of Client.
type MockClient struct {
	CreatePipelineFunc func(ctx context.Context, folder, appName, document string) error
	GetPipelineFunc    func(ctx context.Context, folder, appName string) (string, error)
}

// CreatePipeline implements Client.
func (m *MockClient) CreatePipeline(ctx context.Context, folder, appName, document string) error {
	if m.CreatePipelineFunc != nil {
		return m.CreatePipelineFunc(ctx, folder, appName, document)
	}
	return nil
}

// GetPipeline implements Client.
func (m *MockClient) GetPipeline(ctx context.Context, folder, appName string) (string, error) {
	if m.GetPipelineFunc != nil {
		return m.GetPipelineFunc(ctx, folder, appName)
	}
	return "", nil
}
