package platform

import (
	"fmt"
	"strings"

	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"

	"github.com/imamik/kscaffold/internal/document"
	"github.com/imamik/kscaffold/internal/platform/openshift"
	"github.com/imamik/kscaffold/internal/provisioning"
	"github.com/imamik/kscaffold/internal/util/naming"
)

// step is one platform call made for an environment.
type step struct {
	name Step
	run  func(ctx *provisioning.Context, r *environmentRun) error
}

// environmentSteps run in order for every environment. Later steps read what
// the process step stored on the run.
var environmentSteps = []step{
	{name: StepProcess, run: processTemplate},
	{name: StepService, run: createService},
	{name: StepDeployment, run: createDeployment},
	{name: StepTrigger, run: patchImageTrigger},
	{name: StepConfigMap, run: createOptional(document.KindConfigMap)},
	{name: StepSecret, run: createOptional(document.KindSecret)},
}

// environmentRun carries the state of one environment across its steps.
type environmentRun struct {
	client    openshift.Client
	project   string
	app       string
	env       string
	template  *document.Template
	processed *document.Processed
}

func processTemplate(ctx *provisioning.Context, r *environmentRun) error {
	ctx.Observer.Printf("[%s] Processing template %s", r.env, r.template.Object().GetName())

	obj, err := r.client.ProcessTemplate(ctx, r.project, r.template.Object())
	if err != nil {
		return err
	}
	processed, err := document.NewProcessed(obj)
	if err != nil {
		return err
	}
	r.processed = processed
	return nil
}

func createService(ctx *provisioning.Context, r *environmentRun) error {
	return r.create(ctx, StepService, r.processed.Service())
}

func createDeployment(ctx *provisioning.Context, r *environmentRun) error {
	return r.create(ctx, StepDeployment, r.processed.Deployment())
}

func patchImageTrigger(ctx *provisioning.Context, r *environmentRun) error {
	name := naming.Resource(r.app, r.env)
	container := naming.Container(r.app, r.env)

	found, err := document.HasContainer(r.processed.Deployment(), container)
	if err != nil {
		ctx.Observer.Printf("[%s] Could not inspect deployment %s: %v", r.env, name, err)
	} else if !found {
		ctx.Observer.Printf("[%s] Deployment %s has no container %s, the image trigger will not match", r.env, name, container)
	}

	patch, err := document.ImageTriggerPatch(r.app, r.env)
	if err != nil {
		return err
	}

	provisioning.LogResourceCreating(ctx.Observer, r.env, string(StepTrigger), name)
	if err := r.client.PatchDeployment(ctx, r.project, name, patch); err != nil {
		provisioning.LogResourceFailed(ctx.Observer, r.env, string(StepTrigger), name, err)
		return err
	}
	ctx.State.Record(provisioning.Resource{
		Environment: r.env,
		Step:        string(StepTrigger),
		Kind:        document.KindDeployment,
		Name:        name,
	})
	provisioning.LogResourceCreated(ctx.Observer, r.env, string(StepTrigger), name)
	return nil
}

// createOptional creates the first object of kind, if the processed template has one.
func createOptional(kind string) func(*provisioning.Context, *environmentRun) error {
	return func(ctx *provisioning.Context, r *environmentRun) error {
		obj, ok := r.processed.FirstOfKind(kind)
		if !ok {
			provisioning.LogResourceSkipped(ctx.Observer, r.env, strings.ToLower(kind))
			return nil
		}
		return r.create(ctx, Step(strings.ToLower(kind)), obj)
	}
}

func (r *environmentRun) create(ctx *provisioning.Context, s Step, obj *unstructured.Unstructured) error {
	kind := obj.GetKind()
	if _, err := openshift.ResourceFor(kind); err != nil {
		return fmt.Errorf("cannot create %s: %w", s, err)
	}

	name := obj.GetName()
	provisioning.LogResourceCreating(ctx.Observer, r.env, string(s), name)
	if err := r.client.CreateObject(ctx, r.project, obj); err != nil {
		provisioning.LogResourceFailed(ctx.Observer, r.env, string(s), name, err)
		return err
	}

	ctx.State.Record(provisioning.Resource{
		Environment: r.env,
		Step:        string(s),
		Kind:        kind,
		Name:        name,
	})
	provisioning.LogResourceCreated(ctx.Observer, r.env, string(s), name)
	return nil
}
