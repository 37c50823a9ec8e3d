package openshift

import (
	"context"
	"fmt"
	"time"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/types"
	"k8s.io/client-go/dynamic"
	"k8s.io/client-go/rest"

	"github.com/imamik/kscaffold/internal/config"
)

const userAgent = "kscaffold"

// RealClient implements Client against a live platform.
type RealClient struct {
	dyn dynamic.Interface
}

// NewRealClient creates a client for the platform described by settings.
// timeout bounds each request; zero means no limit.
func NewRealClient(settings config.PlatformSettings, timeout time.Duration) (*RealClient, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	cfg := &rest.Config{
		Host:        settings.URL,
		BearerToken: settings.Token,
		Timeout:     timeout,
		UserAgent:   userAgent,
		TLSClientConfig: rest.TLSClientConfig{
			Insecure: settings.InsecureSkipTLSVerify,
		},
	}

	dyn, err := dynamic.NewForConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create platform client: %w", err)
	}
	return &RealClient{dyn: dyn}, nil
}

// NewFromDynamic wraps an existing dynamic client.
func NewFromDynamic(dyn dynamic.Interface) *RealClient {
	return &RealClient{dyn: dyn}
}

// CreateTemplate implements Client.
func (c *RealClient) CreateTemplate(ctx context.Context, project string, template *unstructured.Unstructured) error {
	_, err := c.dyn.Resource(TemplatesResource).Namespace(project).Create(ctx, template, metav1.CreateOptions{})
	return err
}

// ProcessTemplate implements Client.
func (c *RealClient) ProcessTemplate(ctx context.Context, project string, template *unstructured.Unstructured) (*unstructured.Unstructured, error) {
	return c.dyn.Resource(ProcessedTemplatesResource).Namespace(project).Create(ctx, template, metav1.CreateOptions{})
}

// CreateObject implements Client.
func (c *RealClient) CreateObject(ctx context.Context, project string, obj *unstructured.Unstructured) error {
	gvr, err := ResourceFor(obj.GetKind())
	if err != nil {
		return err
	}
	_, err = c.dyn.Resource(gvr).Namespace(project).Create(ctx, obj, metav1.CreateOptions{})
	return err
}

// PatchDeployment implements Client.
func (c *RealClient) PatchDeployment(ctx context.Context, project, name string, patch []byte) error {
	_, err := c.dyn.Resource(DeploymentsResource).Namespace(project).Patch(ctx, name, types.MergePatchType, patch, metav1.PatchOptions{})
	return err
}
