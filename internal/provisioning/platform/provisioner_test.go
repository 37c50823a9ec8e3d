package platform

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime/schema"

	"github.com/imamik/kscaffold/internal/config"
	"github.com/imamik/kscaffold/internal/document"
	"github.com/imamik/kscaffold/internal/platform/openshift"
	"github.com/imamik/kscaffold/internal/provisioning"
)

// recordingClient returns a MockClient that logs every call and processes
// templates like the platform does.
func recordingClient(calls *[]string) *openshift.MockClient {
	return &openshift.MockClient{
		CreateTemplateFunc: func(_ context.Context, project string, tmpl *unstructured.Unstructured) error {
			*calls = append(*calls, fmt.Sprintf("template %s/%s", project, tmpl.GetName()))
			return nil
		},
		ProcessTemplateFunc: func(_ context.Context, project string, tmpl *unstructured.Unstructured) (*unstructured.Unstructured, error) {
			out, err := processLikePlatform(tmpl)
			if err != nil {
				return nil, err
			}
			params, _, _ := unstructured.NestedSlice(tmpl.Object, "parameters")
			value := params[0].(map[string]any)["value"]
			*calls = append(*calls, fmt.Sprintf("process %s/%v", project, value))
			return out, nil
		},
		CreateObjectFunc: func(_ context.Context, project string, obj *unstructured.Unstructured) error {
			*calls = append(*calls, fmt.Sprintf("create %s %s/%s", obj.GetKind(), project, obj.GetName()))
			return nil
		},
		PatchDeploymentFunc: func(_ context.Context, project, name string, _ []byte) error {
			*calls = append(*calls, fmt.Sprintf("patch %s/%s", project, name))
			return nil
		},
	}
}

func request(t *testing.T, spec config.AppSpec) Request {
	t.Helper()
	doc, err := renderDocument(spec)
	require.NoError(t, err)
	return Request{
		Project:      spec.Namespace,
		AppName:      spec.AppName,
		Environments: spec.Environments,
		Document:     doc,
	}
}

func TestProvision_AllResources(t *testing.T) {
	t.Parallel()
	var calls []string
	spec := testSpec(func(s *config.AppSpec) {
		s.ConfigMapKeys = []string{"LOG_LEVEL"}
		s.Secrets = []string{"DB_PASSWORD"}
	})
	ctx := provisioning.NewContext(context.Background())

	err := NewProvisioner(recordingClient(&calls)).Provision(ctx, request(t, spec))

	require.NoError(t, err)
	assert.Equal(t, []string{
		"template team/demo",
		"process team/int",
		"create Service team/demo-int",
		"create Deployment team/demo-int",
		"patch team/demo-int",
		"create ConfigMap team/demo-int",
		"create Secret team/demo-int",
		"process team/prd",
		"create Service team/demo-prd",
		"create Deployment team/demo-prd",
		"patch team/demo-prd",
		"create ConfigMap team/demo-prd",
		"create Secret team/demo-prd",
	}, calls)

	created := ctx.State.Created()
	require.Len(t, created, 11)
	assert.Equal(t, provisioning.Resource{Step: "template", Kind: "Template", Name: "demo"}, created[0])
	assert.Equal(t, provisioning.Resource{Environment: "int", Step: "trigger", Kind: "Deployment", Name: "demo-int"}, created[3])
	assert.Equal(t, []string{"int", "prd"}, ctx.State.Environments())
}

func TestProvision_SkipsAbsentOptionalObjects(t *testing.T) {
	t.Parallel()
	var calls []string
	var logged []string
	log := funcr.New(func(_, args string) { logged = append(logged, args) }, funcr.Options{})
	ctx := provisioning.NewContext(logr.NewContext(context.Background(), log))

	spec := testSpec(func(s *config.AppSpec) { s.Environments = []string{"qas"} })
	err := NewProvisioner(recordingClient(&calls)).Provision(ctx, request(t, spec))

	require.NoError(t, err)
	assert.Equal(t, []string{
		"template team/demo",
		"process team/qas",
		"create Service team/demo-qas",
		"create Deployment team/demo-qas",
		"patch team/demo-qas",
	}, calls)
	assert.Contains(t, fmt.Sprint(logged), "no configmap declared, skipping")
	assert.Contains(t, fmt.Sprint(logged), "no secret declared, skipping")
}

func TestProvision_TriggerPatch(t *testing.T) {
	t.Parallel()
	var patches [][]byte
	client := &openshift.MockClient{
		ProcessTemplateFunc: func(_ context.Context, _ string, tmpl *unstructured.Unstructured) (*unstructured.Unstructured, error) {
			return processLikePlatform(tmpl)
		},
		PatchDeploymentFunc: func(_ context.Context, _, name string, patch []byte) error {
			assert.Equal(t, "demo-int", name)
			patches = append(patches, patch)
			return nil
		},
	}
	spec := testSpec(func(s *config.AppSpec) { s.Environments = []string{"int"} })

	err := NewProvisioner(client).Provision(provisioning.NewContext(context.Background()), request(t, spec))

	require.NoError(t, err)
	want, err := document.ImageTriggerPatch("demo", "int")
	require.NoError(t, err)
	require.Len(t, patches, 1)
	assert.JSONEq(t, string(want), string(patches[0]))
}

func TestProvision_ProcessesFreshCopyPerEnvironment(t *testing.T) {
	t.Parallel()
	var values []any
	var created *unstructured.Unstructured
	client := &openshift.MockClient{
		CreateTemplateFunc: func(_ context.Context, _ string, tmpl *unstructured.Unstructured) error {
			created = tmpl
			return nil
		},
		ProcessTemplateFunc: func(_ context.Context, _ string, tmpl *unstructured.Unstructured) (*unstructured.Unstructured, error) {
			params, _, _ := unstructured.NestedSlice(tmpl.Object, "parameters")
			values = append(values, params[0].(map[string]any)["value"])
			return processLikePlatform(tmpl)
		},
	}

	err := NewProvisioner(client).Provision(provisioning.NewContext(context.Background()), request(t, testSpec(nil)))

	require.NoError(t, err)
	assert.Equal(t, []any{"int", "prd"}, values)
	params, _, _ := unstructured.NestedSlice(created.Object, "parameters")
	assert.NotContains(t, params[0].(map[string]any), "value")
}

func TestProvision_FailsFast(t *testing.T) {
	t.Parallel()
	var calls []string
	client := recordingClient(&calls)
	record := client.CreateObjectFunc
	client.CreateObjectFunc = func(ctx context.Context, project string, obj *unstructured.Unstructured) error {
		if err := record(ctx, project, obj); err != nil {
			return err
		}
		if obj.GetKind() == "Deployment" {
			return apierrors.NewAlreadyExists(schema.GroupResource{Group: "apps", Resource: "deployments"}, obj.GetName())
		}
		return nil
	}
	ctx := provisioning.NewContext(context.Background())

	err := NewProvisioner(client).Provision(ctx, request(t, testSpec(nil)))

	require.Error(t, err)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, StepDeployment, apiErr.Step)
	assert.Equal(t, "int", apiErr.Environment)
	assert.True(t, apierrors.IsAlreadyExists(err))
	assert.Equal(t, []string{
		"template team/demo",
		"process team/int",
		"create Service team/demo-int",
		"create Deployment team/demo-int",
	}, calls)

	created := ctx.State.Created()
	require.Len(t, created, 2)
	assert.Equal(t, "demo-int", created[1].Name)
	assert.Equal(t, "service", created[1].Step)
}

func TestProvision_TemplateFailure(t *testing.T) {
	t.Parallel()
	var calls []string
	client := recordingClient(&calls)
	client.CreateTemplateFunc = func(context.Context, string, *unstructured.Unstructured) error {
		calls = append(calls, "template")
		return apierrors.NewForbidden(schema.GroupResource{Group: "template.openshift.io", Resource: "templates"}, "demo", errors.New("denied"))
	}

	err := NewProvisioner(client).Provision(provisioning.NewContext(context.Background()), request(t, testSpec(nil)))

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, StepTemplate, apiErr.Step)
	assert.Empty(t, apiErr.Environment)
	assert.True(t, apierrors.IsForbidden(err))
	assert.Equal(t, []string{"template"}, calls)
}

func TestProvision_InvalidProcessedTemplate(t *testing.T) {
	t.Parallel()
	client := &openshift.MockClient{
		ProcessTemplateFunc: func(context.Context, string, *unstructured.Unstructured) (*unstructured.Unstructured, error) {
			return &unstructured.Unstructured{Object: map[string]any{
				"objects": []any{map[string]any{"kind": "Deployment"}},
			}}, nil
		},
		CreateObjectFunc: func(context.Context, string, *unstructured.Unstructured) error {
			t.Fatal("no object may be created from an invalid processed template")
			return nil
		},
	}

	err := NewProvisioner(client).Provision(provisioning.NewContext(context.Background()), request(t, testSpec(nil)))

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, StepProcess, apiErr.Step)
	var parseErr *document.ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestProvision_InvalidDocument(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		doc  string
	}{
		{"empty", ""},
		{"not yaml", "objects: [unclosed"},
		{"no objects", "parameters:\n  - name: env\n"},
		{"parameters not objects", "objects: []\nparameters:\n  - env\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var calls []string
			err := NewProvisioner(recordingClient(&calls)).Provision(
				provisioning.NewContext(context.Background()),
				Request{Project: "team", AppName: "demo", Environments: []string{"int"}, Document: tt.doc},
			)

			var parseErr *document.ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Empty(t, calls)
		})
	}
}

func TestProvision_CanceledContext(t *testing.T) {
	t.Parallel()
	var calls []string
	cctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewProvisioner(recordingClient(&calls)).Provision(provisioning.NewContext(cctx), request(t, testSpec(nil)))

	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, calls)
}

func TestProvision_NoEnvironments(t *testing.T) {
	t.Parallel()
	var calls []string
	req := request(t, testSpec(nil))
	req.Environments = nil

	err := NewProvisioner(recordingClient(&calls)).Provision(provisioning.NewContext(context.Background()), req)

	require.NoError(t, err)
	assert.Equal(t, []string{"template team/demo"}, calls)
}

func TestAPIError(t *testing.T) {
	t.Parallel()
	cause := errors.New("boom")

	err := &APIError{Step: StepSecret, Environment: "prd", Err: cause}
	assert.Equal(t, "secret step failed for environment prd: boom", err.Error())
	assert.ErrorIs(t, err, cause)

	err = &APIError{Step: StepTemplate, Err: cause}
	assert.Equal(t, "template step failed: boom", err.Error())
}
