package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// PlatformSettings holds the container platform endpoint and credentials.
type PlatformSettings struct {
	URL                   string `envconfig:"OPENSHIFT_URL"`
	Token                 string `envconfig:"OPENSHIFT_TOKEN"`
	InsecureSkipTLSVerify bool   `envconfig:"OPENSHIFT_INSECURE_SKIP_TLS_VERIFY" default:"false"`
}

// CISettings holds the Jenkins endpoint and credentials.
type CISettings struct {
	URL                   string `envconfig:"JENKINS_URL"`
	User                  string `envconfig:"JENKINS_USER"`
	Token                 string `envconfig:"JENKINS_TOKEN"`
	InsecureSkipTLSVerify bool   `envconfig:"JENKINS_INSECURE_SKIP_TLS_VERIFY" default:"false"`
}

// StoreSettings selects where artifacts are persisted. When Bucket is empty
// artifacts are written to the local filesystem.
type StoreSettings struct {
	Bucket    string `envconfig:"KSCAFFOLD_S3_BUCKET"`
	Prefix    string `envconfig:"KSCAFFOLD_S3_PREFIX"`
	Endpoint  string `envconfig:"KSCAFFOLD_S3_ENDPOINT"`
	Region    string `envconfig:"KSCAFFOLD_S3_REGION" default:"us-east-1"`
	AccessKey string `envconfig:"KSCAFFOLD_S3_ACCESS_KEY"`
	SecretKey string `envconfig:"KSCAFFOLD_S3_SECRET_KEY"`
}

// Settings is the process-wide configuration, constructed once at the
// command boundary and passed explicitly to the clients.
type Settings struct {
	Platform PlatformSettings
	CI       CISettings
	Store    StoreSettings
}

// LoadSettings reads Settings from environment variables.
func LoadSettings() (Settings, error) {
	var s Settings
	if err := envconfig.Process("", &s.Platform); err != nil {
		return Settings{}, fmt.Errorf("failed to read platform settings: %w", err)
	}
	if err := envconfig.Process("", &s.CI); err != nil {
		return Settings{}, fmt.Errorf("failed to read CI settings: %w", err)
	}
	if err := envconfig.Process("", &s.Store); err != nil {
		return Settings{}, fmt.Errorf("failed to read artifact store settings: %w", err)
	}
	return s, nil
}

// Validate checks the platform settings are usable.
func (p PlatformSettings) Validate() error {
	if p.URL == "" {
		return fmt.Errorf("platform URL is required (--openshift-url or OPENSHIFT_URL)")
	}
	if p.Token == "" {
		return fmt.Errorf("platform token is required (--openshift-token or OPENSHIFT_TOKEN)")
	}
	return nil
}

// Validate checks the CI settings are usable.
func (c CISettings) Validate() error {
	if c.URL == "" {
		return fmt.Errorf("jenkins URL is required (--jenkins-url or JENKINS_URL)")
	}
	if c.User == "" || c.Token == "" {
		return fmt.Errorf("jenkins user and token are required (JENKINS_USER, JENKINS_TOKEN)")
	}
	return nil
}

// Enabled reports whether artifacts go to object storage.
func (s StoreSettings) Enabled() bool {
	return s.Bucket != ""
}

// Validate checks the object storage settings are complete.
func (s StoreSettings) Validate() error {
	if !s.Enabled() {
		return nil
	}
	if s.Endpoint == "" {
		return fmt.Errorf("KSCAFFOLD_S3_ENDPOINT is required when KSCAFFOLD_S3_BUCKET is set")
	}
	if s.AccessKey == "" || s.SecretKey == "" {
		return fmt.Errorf("KSCAFFOLD_S3_ACCESS_KEY and KSCAFFOLD_S3_SECRET_KEY are required when KSCAFFOLD_S3_BUCKET is set")
	}
	return nil
}
