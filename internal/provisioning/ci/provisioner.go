package ci

import (
	"github.com/imamik/kscaffold/internal/platform/jenkins"
	"github.com/imamik/kscaffold/internal/provisioning"
)

const phase = "pipeline"

// Request describes the job to create.
type Request struct {
	Folder  string
	AppName string
	// Document is the rendered multibranch pipeline configuration.
	Document string
}

// Provisioner creates pipeline jobs.
type Provisioner struct {
	client jenkins.Client
}

// NewProvisioner creates a provisioner using client.
func NewProvisioner(client jenkins.Client) *Provisioner {
	return &Provisioner{client: client}
}

// Provision creates the job as a single-phase run.
func (p *Provisioner) Provision(ctx *provisioning.Context, req Request) error {
	ctx = ctx.WithObserver(ctx.Observer.WithFields(map[string]string{
		"folder": req.Folder,
		"app":    req.AppName,
	}))

	return provisioning.RunPhases(ctx, []provisioning.Phase{
		provisioning.PhaseFunc{
			PhaseName: phase,
			Fn: func(ctx *provisioning.Context) error {
				return p.createJob(ctx, req)
			},
		},
	})
}

func (p *Provisioner) createJob(ctx *provisioning.Context, req Request) error {
	provisioning.LogResourceCreating(ctx.Observer, phase, "job", req.AppName)

	if err := p.client.CreatePipeline(ctx, req.Folder, req.AppName, req.Document); err != nil {
		provisioning.LogResourceFailed(ctx.Observer, phase, "job", req.AppName, err)
		return err
	}

	ctx.State.Record(provisioning.Resource{Step: phase, Kind: "Job", Name: req.Folder + "/" + req.AppName})
	provisioning.LogResourceCreated(ctx.Observer, phase, "job", req.AppName)
	return nil
}
