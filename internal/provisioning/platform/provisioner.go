package platform

import (
	"fmt"

	"github.com/imamik/kscaffold/internal/document"
	"github.com/imamik/kscaffold/internal/platform/openshift"
	"github.com/imamik/kscaffold/internal/provisioning"
)

const templatePhase = "template"

// Request describes one provisioning run.
type Request struct {
	Project      string
	AppName      string
	Environments []string
	// Document is the rendered deployment template.
	Document string
}

// Provisioner drives the platform API for a rendered deployment template.
type Provisioner struct {
	client openshift.Client
}

// NewProvisioner creates a provisioner using client.
func NewProvisioner(client openshift.Client) *Provisioner {
	return &Provisioner{client: client}
}

// Provision stores the template in the project, then processes and applies it
// for each environment in order. The first failing call stops the run and is
// returned as an *APIError; resources already created stay in place and are
// listed in ctx.State.
func (p *Provisioner) Provision(ctx *provisioning.Context, req Request) error {
	tmpl, err := document.Parse([]byte(req.Document))
	if err != nil {
		return err
	}

	ctx = ctx.WithObserver(ctx.Observer.WithFields(map[string]string{
		"project": req.Project,
		"app":     req.AppName,
	}))

	phases := make([]provisioning.Phase, 0, len(req.Environments)+1)
	phases = append(phases, provisioning.PhaseFunc{
		PhaseName: templatePhase,
		Fn: func(ctx *provisioning.Context) error {
			return p.createTemplate(ctx, req.Project, tmpl)
		},
	})
	for _, env := range req.Environments {
		phases = append(phases, &environmentPhase{
			client:   p.client,
			project:  req.Project,
			app:      req.AppName,
			env:      env,
			template: tmpl,
		})
	}

	return provisioning.RunPhases(ctx, phases)
}

func (p *Provisioner) createTemplate(ctx *provisioning.Context, project string, tmpl *document.Template) error {
	name := tmpl.Object().GetName()
	provisioning.LogResourceCreating(ctx.Observer, templatePhase, "template", name)

	if err := p.client.CreateTemplate(ctx, project, tmpl.Object()); err != nil {
		provisioning.LogResourceFailed(ctx.Observer, templatePhase, "template", name, err)
		return &APIError{Step: StepTemplate, Err: err}
	}

	ctx.State.Record(provisioning.Resource{Step: string(StepTemplate), Kind: "Template", Name: name})
	provisioning.LogResourceCreated(ctx.Observer, templatePhase, "template", name)
	ctx.Observer.Printf("[%s] Template %s stored with %d objects", templatePhase, name, tmpl.ObjectCount())
	return nil
}

// environmentPhase applies the template to one environment.
type environmentPhase struct {
	client   openshift.Client
	project  string
	app      string
	env      string
	template *document.Template
}

// Name implements provisioning.Phase.
func (e *environmentPhase) Name() string {
	return e.env
}

// Provision implements provisioning.Phase.
func (e *environmentPhase) Provision(ctx *provisioning.Context) error {
	run := &environmentRun{
		client:   e.client,
		project:  e.project,
		app:      e.app,
		env:      e.env,
		template: e.template.ForEnvironment(e.env),
	}

	for _, s := range environmentSteps {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("%s step not started: %w", s.name, err)
		}
		if err := s.run(ctx, run); err != nil {
			return &APIError{Step: s.name, Environment: e.env, Err: err}
		}
	}
	return nil
}
