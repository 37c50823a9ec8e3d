package openshift

import (
	"context"

	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
)

// MockClient is a mock implementation of Client.
// Unset functions succeed; ProcessTemplate then echoes its input.
type MockClient struct {
	CreateTemplateFunc  func(ctx context.Context, project string, template *unstructured.Unstructured) error
	ProcessTemplateFunc func(ctx context.Context, project string, template *unstructured.Unstructured) (*unstructured.Unstructured, error)
	CreateObjectFunc    func(ctx context.Context, project string, obj *unstructured.Unstructured) error
	PatchDeploymentFunc func(ctx context.Context, project, name string, patch []byte) error
}

// CreateTemplate implements Client.
func (m *MockClient) CreateTemplate(ctx context.Context, project string, template *unstructured.Unstructured) error {
	if m.CreateTemplateFunc != nil {
		return m.CreateTemplateFunc(ctx, project, template)
	}
	return nil
}

// ProcessTemplate implements Client.
func (m *MockClient) ProcessTemplate(ctx context.Context, project string, template *unstructured.Unstructured) (*unstructured.Unstructured, error) {
	if m.ProcessTemplateFunc != nil {
		return m.ProcessTemplateFunc(ctx, project, template)
	}
	return template, nil
}

// CreateObject implements Client.
func (m *MockClient) CreateObject(ctx context.Context, project string, obj *unstructured.Unstructured) error {
	if m.CreateObjectFunc != nil {
		return m.CreateObjectFunc(ctx, project, obj)
	}
	return nil
}

// PatchDeployment implements Client.
func (m *MockClient) PatchDeployment(ctx context.Context, project, name string, patch []byte) error {
	if m.PatchDeploymentFunc != nil {
		return m.PatchDeploymentFunc(ctx, project, name, patch)
	}
	return nil
}
