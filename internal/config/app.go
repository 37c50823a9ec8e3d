package config

import (
	"fmt"
	"slices"
	"strings"
)

// AppType distinguishes long-running services from batch executables.
type AppType string

const (
	// AppTypeWebApp is a long-running service that listens on a port.
	AppTypeWebApp AppType = "web-app"
	// AppTypeExec is a batch executable without probes.
	AppTypeExec AppType = "exec"
)

// ParseAppType parses an app type case-insensitively.
func ParseAppType(s string) (AppType, error) {
	switch t := AppType(strings.ToLower(strings.TrimSpace(s))); t {
	case AppTypeWebApp, AppTypeExec:
		return t, nil
	default:
		return "", fmt.Errorf("invalid app type %q: must be one of %s, %s", s, AppTypeWebApp, AppTypeExec)
	}
}

// String implements fmt.Stringer.
func (t AppType) String() string {
	return string(t)
}

// Resources holds the container resource requests and limits.
type Resources struct {
	// MemoryRequested is the minimum requested memory in Mebibytes.
	MemoryRequested int `yaml:"memory_requested"`
	// MemoryLimit is the maximum memory in Mebibytes.
	MemoryLimit int `yaml:"memory_limit"`
	// CPURequested is the minimum requested CPU in millicores.
	CPURequested int `yaml:"cpu_requested"`
	// CPULimit is the maximum CPU in millicores.
	CPULimit int `yaml:"cpu_limit"`
}

// DefaultResources returns the resource defaults.
func DefaultResources() Resources {
	return Resources{
		MemoryRequested: DefaultMemoryRequested,
		MemoryLimit:     DefaultMemoryLimit,
		CPURequested:    DefaultCPURequested,
		CPULimit:        DefaultCPULimit,
	}
}

// AppSpec describes one deployment of one application.
//
// It is created once per command and never mutated afterwards; methods use
// value receivers and return copies.
type AppSpec struct {
	// Namespace is the platform project the application is deployed to.
	Namespace string `yaml:"namespace"`

	// AppName names every generated resource and artifact.
	AppName string `yaml:"app_name"`

	AppType AppType `yaml:"app_type"`

	Resources Resources `yaml:"resources"`

	// EnvVars are environment variable names set directly on the container.
	EnvVars []string `yaml:"env_vars,omitempty"`

	// ConfigMapKeys are the keys of the per-environment config map.
	// The config map is only generated when at least one key is declared.
	ConfigMapKeys []string `yaml:"config_map_keys,omitempty"`

	// Secrets are the keys of the per-environment secret.
	// The secret is only generated when at least one key is declared.
	Secrets []string `yaml:"secrets,omitempty"`

	Replicas int `yaml:"replicas"`
	Port     int `yaml:"port"`

	// MainBranch is the branch the multibranch pipeline treats as releasable.
	MainBranch string `yaml:"main_branch"`

	// JenkinsFolder is the CI folder the job is created in. Defaults to Namespace.
	JenkinsFolder string `yaml:"jenkins_folder,omitempty"`

	// Environments is the ordered set of target environments.
	Environments []string `yaml:"environments"`
}

// WithDefaults returns a copy of s with empty fields set to their defaults.
func (s AppSpec) WithDefaults() AppSpec {
	out := s
	if out.AppType == "" {
		out.AppType = DefaultAppType
	}
	defaults := DefaultResources()
	if out.Resources.MemoryRequested == 0 {
		out.Resources.MemoryRequested = defaults.MemoryRequested
	}
	if out.Resources.MemoryLimit == 0 {
		out.Resources.MemoryLimit = defaults.MemoryLimit
	}
	if out.Resources.CPURequested == 0 {
		out.Resources.CPURequested = defaults.CPURequested
	}
	if out.Resources.CPULimit == 0 {
		out.Resources.CPULimit = defaults.CPULimit
	}
	if out.Port == 0 {
		out.Port = DefaultPort
	}
	if out.MainBranch == "" {
		out.MainBranch = DefaultMainBranch
	}
	if len(out.Environments) == 0 {
		out.Environments = DefaultEnvironments()
	} else {
		out.Environments = NormalizeEnvironments(out.Environments)
	}
	out.EnvVars = slices.Clone(out.EnvVars)
	out.ConfigMapKeys = slices.Clone(out.ConfigMapKeys)
	out.Secrets = slices.Clone(out.Secrets)
	return out
}

// Folder returns the CI folder for the application's job.
func (s AppSpec) Folder() string {
	if s.JenkinsFolder != "" {
		return s.JenkinsFolder
	}
	return s.Namespace
}

// NormalizeEnvironments lower-cases environment identifiers and drops
// duplicates while keeping the first-seen order.
func NormalizeEnvironments(envs []string) []string {
	out := make([]string, 0, len(envs))
	for _, e := range envs {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" || slices.Contains(out, e) {
			continue
		}
		out = append(out, e)
	}
	return out
}
