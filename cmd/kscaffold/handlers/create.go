package handlers

import (
	"context"
	"fmt"

	"github.com/imamik/kscaffold/internal/artifact"
	"github.com/imamik/kscaffold/internal/config"
	"github.com/imamik/kscaffold/internal/logging"
)

// CreateOptions holds the parsed create command line.
type CreateOptions struct {
	// ConfigPath is a YAML spec file used instead of the positional
	// arguments and spec flags.
	ConfigPath string

	Namespace     string
	AppName       string
	AppType       string
	Environments  []string
	Resources     config.Resources
	Replicas      int
	Port          int
	MainBranch    string
	JenkinsFolder string

	// EnvFile, ConfigMapFile and SecretFile are KEY=VALUE files; only the
	// keys are used.
	EnvFile       string
	ConfigMapFile string
	SecretFile    string

	OutputDir   string
	Provision   bool
	Credentials Credentials
}

// Create renders and writes the four artifacts for an application and,
// with opts.Provision, creates the deployment and the pipeline job.
func Create(ctx context.Context, opts CreateOptions) error {
	spec, err := BuildSpec(opts)
	if err != nil {
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
	log.V(1).Info("Creating artifacts", "namespace", spec.Namespace, "app", spec.AppName, "output", opts.OutputDir)

	id := newUUID()
	docs := make(map[artifact.Kind]string, len(artifact.Kinds()))
	var written []string
	for _, a := range artifact.All(spec.AppName, opts.OutputDir, artifact.WithStore(store), artifact.WithLogger(log)) {
		out, err := a.Persist(ctx, artifactParams(a.Kind, spec, id))
		if err != nil {
			return err
		}
		docs[a.Kind] = out
		written = append(written, a.OutputPath())
		log.Info("Wrote artifact", "kind", a.Kind.String(), "path", a.OutputPath())
	}

	fmt.Print(renderCreateSummary(spec, written))

	if !opts.Provision {
		return nil
	}
	return provisionApp(ctx, settings, provisionRequest{
		Spec:             spec,
		TemplateDocument: docs[artifact.KindDeploymentTemplate],
		HasTemplate:      true,
		PipelineDocument: docs[artifact.KindMultibranchPipeline],
		HasPipeline:      true,
	})
}

// BuildSpec assembles the application spec from a spec file or from the
// command line, applies defaults and validates it.
func BuildSpec(opts CreateOptions) (config.AppSpec, error) {
	if opts.ConfigPath != "" {
		if opts.Namespace != "" || opts.AppName != "" {
			return config.AppSpec{}, fmt.Errorf("NAMESPACE and APP_NAME cannot be combined with --config")
		}
		spec, err := config.LoadAppSpec(opts.ConfigPath)
		if err != nil {
			return config.AppSpec{}, err
		}
		return *spec, nil
	}

	if opts.Namespace == "" || opts.AppName == "" {
		return config.AppSpec{}, fmt.Errorf("NAMESPACE and APP_NAME are required unless --config is given")
	}

	spec := config.AppSpec{
		Namespace:     opts.Namespace,
		AppName:       opts.AppName,
		Environments:  opts.Environments,
		Resources:     opts.Resources,
		Replicas:      opts.Replicas,
		Port:          opts.Port,
		MainBranch:    opts.MainBranch,
		JenkinsFolder: opts.JenkinsFolder,
	}
	if opts.AppType != "" {
		t, err := config.ParseAppType(opts.AppType)
		if err != nil {
			return config.AppSpec{}, err
		}
		spec.AppType = t
	}

	var err error
	if spec.EnvVars, err = loadKeys(opts.EnvFile, "env file"); err != nil {
		return config.AppSpec{}, err
	}
	if spec.ConfigMapKeys, err = loadKeys(opts.ConfigMapFile, "config map file"); err != nil {
		return config.AppSpec{}, err
	}
	if spec.Secrets, err = loadKeys(opts.SecretFile, "secret file"); err != nil {
		return config.AppSpec{}, err
	}

	spec = spec.WithDefaults()
	if err := spec.Validate(); err != nil {
		return config.AppSpec{}, err
	}
	return spec, nil
}

func loadKeys(path, what string) ([]string, error) {
	if path == "" {
		return nil, nil
	}
	keys, err := config.LoadEnvKeys(path)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", what, err)
	}
	return keys, nil
}

// artifactParams returns the template parameters of kind.
func artifactParams(kind artifact.Kind, spec config.AppSpec, id string) map[string]any {
	switch kind {
	case artifact.KindDeploymentTemplate:
		return spec.TemplateParams()
	case artifact.KindMultibranchPipeline:
		return spec.PipelineParams(id)
	default:
		return spec.BuildParams()
	}
}
