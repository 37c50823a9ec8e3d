package handlers

import (
	"context"
	"fmt"

	"github.com/imamik/kscaffold/internal/artifact"
	"github.com/imamik/kscaffold/internal/config"
	"github.com/imamik/kscaffold/internal/logging"
)

// UploadOptions holds the parsed upload command line.
type UploadOptions struct {
	Namespace     string
	AppName       string
	Environments  []string
	JenkinsFolder string
	OutputDir     string
	Credentials   Credentials
}

// Upload provisions previously created artifacts without rendering them
// again. Artifacts that were never written are skipped.
func Upload(ctx context.Context, opts UploadOptions) error {
	spec := config.AppSpec{
		Namespace:     opts.Namespace,
		AppName:       opts.AppName,
		Environments:  opts.Environments,
		JenkinsFolder: opts.JenkinsFolder,
	}.WithDefaults()
	if err := spec.Validate(); err != nil {
		return err
	}

	settings, err := resolveSettings(opts.Credentials)
	if err != nil {
		return err
	}
	store, err := newStore(settings.Store)
	if err != nil {
		return err
	}

	log := logging.FromContext(ctx)
	reload := func(kind artifact.Kind) (string, bool) {
		a := artifact.New(kind, spec.AppName, kind.Dir(opts.OutputDir), artifact.WithStore(store), artifact.WithLogger(log))
		return a.Reload(ctx)
	}

	req := provisionRequest{Spec: spec}
	req.TemplateDocument, req.HasTemplate = reload(artifact.KindDeploymentTemplate)
	req.PipelineDocument, req.HasPipeline = reload(artifact.KindMultibranchPipeline)
	if !req.HasTemplate && !req.HasPipeline {
		fmt.Printf("Nothing to upload for %s in %s, run 'kscaffold create' first.\n", spec.AppName, opts.OutputDir)
		return nil
	}

	return provisionApp(ctx, settings, req)
}
