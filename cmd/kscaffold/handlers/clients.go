package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/imamik/kscaffold/internal/artifact"
	"github.com/imamik/kscaffold/internal/config"
	"github.com/imamik/kscaffold/internal/platform/jenkins"
	"github.com/imamik/kscaffold/internal/platform/openshift"
	"github.com/imamik/kscaffold/internal/platform/s3"
	"github.com/imamik/kscaffold/internal/provisioning"
	"github.com/imamik/kscaffold/internal/provisioning/ci"
	"github.com/imamik/kscaffold/internal/provisioning/platform"
)

// Factory function variables - can be replaced in tests.
var (
	// loadSettings reads endpoints and credentials from the environment.
	loadSettings = config.LoadSettings

	// loadTimeouts reads request and provisioning timeouts from the environment.
	loadTimeouts = config.LoadTimeouts

	// newUUID generates the multibranch pipeline identifier.
	newUUID = uuid.NewString

	// newPlatformClient creates the platform API client.
	newPlatformClient = func(settings config.PlatformSettings, timeout time.Duration) (openshift.Client, error) {
		return openshift.NewRealClient(settings, timeout)
	}

	// newCIClient creates the CI API client.
	newCIClient = func(settings config.CISettings, timeout time.Duration) (jenkins.Client, error) {
		return jenkins.NewRealClient(settings, timeout)
	}

	// newObjectClient creates the object storage client for the S3 artifact store.
	newObjectClient = func(settings config.StoreSettings) (artifact.ObjectClient, error) {
		return s3.NewClient(settings.Endpoint, settings.Region, settings.AccessKey, settings.SecretKey)
	}
)

// Credentials holds command-line overrides for the environment settings.
// Empty fields leave the environment value in place.
type Credentials struct {
	OpenShiftURL   string
	OpenShiftToken string
	JenkinsURL     string
	JenkinsUser    string
	JenkinsToken   string
}

// apply returns s with the non-empty overrides set.
func (c Credentials) apply(s config.Settings) config.Settings {
	if c.OpenShiftURL != "" {
		s.Platform.URL = c.OpenShiftURL
	}
	if c.OpenShiftToken != "" {
		s.Platform.Token = c.OpenShiftToken
	}
	if c.JenkinsURL != "" {
		s.CI.URL = c.JenkinsURL
	}
	if c.JenkinsUser != "" {
		s.CI.User = c.JenkinsUser
	}
	if c.JenkinsToken != "" {
		s.CI.Token = c.JenkinsToken
	}
	return s
}

// resolveSettings loads the environment settings and applies creds.
func resolveSettings(creds Credentials) (config.Settings, error) {
	settings, err := loadSettings()
	if err != nil {
		return config.Settings{}, err
	}
	settings = creds.apply(settings)
	if err := settings.Store.Validate(); err != nil {
		return config.Settings{}, err
	}
	return settings, nil
}

// newStore returns the artifact store selected by the settings: object
// storage when a bucket is configured, the local filesystem otherwise.
func newStore(settings config.StoreSettings) (artifact.Store, error) {
	if !settings.Enabled() {
		return artifact.NewOSFileStore(), nil
	}
	client, err := newObjectClient(settings)
	if err != nil {
		return nil, fmt.Errorf("failed to create object storage client: %w", err)
	}
	return artifact.NewS3Store(client, settings.Bucket, settings.Prefix), nil
}

// provisionRequest is the input of one provisioning run. A document whose
// Has flag is false skips its provisioner; an empty document that is present
// is still provisioned and fails there.
type provisionRequest struct {
	Spec             config.AppSpec
	TemplateDocument string
	HasTemplate      bool
	PipelineDocument string
	HasPipeline      bool
}

// provisionApp drives the platform provisioner and then the CI provisioner.
// The created resources are printed even when a step fails.
func provisionApp(ctx context.Context, settings config.Settings, req provisionRequest) error {
	timeouts := loadTimeouts()
	if timeouts.Provisioning > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeouts.Provisioning)
		defer cancel()
	}

	pCtx := provisioning.NewContext(ctx)
	err := runProvisioners(pCtx, settings, timeouts, req)
	fmt.Print(renderProvisionSummary(pCtx.State.Created(), err))
	return err
}

func runProvisioners(pCtx *provisioning.Context, settings config.Settings, timeouts *config.Timeouts, req provisionRequest) error {
	spec := req.Spec

	if req.HasTemplate {
		client, err := newPlatformClient(settings.Platform, timeouts.HTTPRequest)
		if err != nil {
			return fmt.Errorf("failed to create platform client: %w", err)
		}
		err = platform.NewProvisioner(client).Provision(pCtx, platform.Request{
			Project:      spec.Namespace,
			AppName:      spec.AppName,
			Environments: spec.Environments,
			Document:     req.TemplateDocument,
		})
		if err != nil {
			return fmt.Errorf("platform provisioning failed: %w", err)
		}
	}

	if req.HasPipeline {
		client, err := newCIClient(settings.CI, timeouts.HTTPRequest)
		if err != nil {
			return fmt.Errorf("failed to create CI client: %w", err)
		}
		err = ci.NewProvisioner(client).Provision(pCtx, ci.Request{
			Folder:   spec.Folder(),
			AppName:  spec.AppName,
			Document: req.PipelineDocument,
		})
		if jenkins.IsAlreadyExists(err) {
			return fmt.Errorf("pipeline provisioning failed: job %s/%s already exists, delete it or choose another --jenkins-folder: %w",
				spec.Folder(), spec.AppName, err)
		}
		if err != nil {
			return fmt.Errorf("pipeline provisioning failed: %w", err)
		}
	}
	return nil
}
