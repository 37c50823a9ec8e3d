package openshift

import (
	"context"
	"fmt"

	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime/schema"
)

// Resources addressed by the client.
var (
	TemplatesResource          = schema.GroupVersionResource{Group: "template.openshift.io", Version: "v1", Resource: "templates"}
	ProcessedTemplatesResource = schema.GroupVersionResource{Group: "template.openshift.io", Version: "v1", Resource: "processedtemplates"}
	ServicesResource           = schema.GroupVersionResource{Version: "v1", Resource: "services"}
	DeploymentsResource        = schema.GroupVersionResource{Group: "apps", Version: "v1", Resource: "deployments"}
	ConfigMapsResource         = schema.GroupVersionResource{Version: "v1", Resource: "configmaps"}
	SecretsResource            = schema.GroupVersionResource{Version: "v1", Resource: "secrets"}
)

// kindResources maps the kinds a processed template yields to their collection.
var kindResources = map[string]schema.GroupVersionResource{
	"Service":    ServicesResource,
	"Deployment": DeploymentsResource,
	"ConfigMap":  ConfigMapsResource,
	"Secret":     SecretsResource,
}

// ResourceFor returns the collection objects of kind are created in.
func ResourceFor(kind string) (schema.GroupVersionResource, error) {
	gvr, ok := kindResources[kind]
	if !ok {
		return schema.GroupVersionResource{}, fmt.Errorf("unsupported object kind %q", kind)
	}
	return gvr, nil
}

// Client is the platform API used by the provisioner.
type Client interface {
	// CreateTemplate stores a template in project.
	CreateTemplate(ctx context.Context, project string, template *unstructured.Unstructured) error
	// ProcessTemplate expands a template with its parameter values set and
	// returns the processed template. Nothing is created.
	ProcessTemplate(ctx context.Context, project string, template *unstructured.Unstructured) (*unstructured.Unstructured, error)
	// CreateObject creates a Service, Deployment, ConfigMap or Secret in project.
	CreateObject(ctx context.Context, project string, obj *unstructured.Unstructured) error
	// PatchDeployment applies a JSON merge patch to a deployment.
	PatchDeployment(ctx context.Context, project, name string, patch []byte) error
}
