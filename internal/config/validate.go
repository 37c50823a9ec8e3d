package config

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"k8s.io/apimachinery/pkg/util/validation"

	"github.com/imamik/kscaffold/internal/util/naming"
)

// Validate checks the spec for common errors and returns a detailed error if validation fails.
func (s AppSpec) Validate() error {
	// Required fields
	if s.Namespace == "" {
		return fmt.Errorf("namespace is required")
	}
	if s.AppName == "" {
		return fmt.Errorf("app name is required")
	}

	if errs := validation.IsDNS1123Label(s.Namespace); len(errs) > 0 {
		return fmt.Errorf("invalid namespace %q: %s", s.Namespace, strings.Join(errs, "; "))
	}
	if errs := validation.IsDNS1123Label(s.AppName); len(errs) > 0 {
		return fmt.Errorf("invalid app name %q: %s", s.AppName, strings.Join(errs, "; "))
	}

	if _, err := ParseAppType(string(s.AppType)); err != nil {
		return err
	}

	if err := s.validateEnvironments(); err != nil {
		return fmt.Errorf("environment validation failed: %w", err)
	}

	if err := s.Resources.validate(); err != nil {
		return fmt.Errorf("resource validation failed: %w", err)
	}

	if err := s.validateKeys(); err != nil {
		return fmt.Errorf("key validation failed: %w", err)
	}

	if s.Replicas < 0 {
		return fmt.Errorf("replicas must be >= 0, got %d", s.Replicas)
	}
	if s.Port < 1 || s.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", s.Port)
	}
	if s.MainBranch == "" {
		return fmt.Errorf("main branch is required")
	}
	if err := validateBranch(s.MainBranch); err != nil {
		return err
	}
	if !folderPattern.MatchString(s.Folder()) {
		return fmt.Errorf("invalid jenkins folder %q: segments must match %s separated by '/'", s.Folder(), segmentChars)
	}

	return nil
}

// Branch and folder names end up in the CI job XML and in quoted Jenkinsfile
// strings, so both are held to a conservative charset.
const segmentChars = `[A-Za-z0-9][A-Za-z0-9._-]*`

var (
	branchPattern = regexp.MustCompile(`^` + segmentChars + `(/` + segmentChars + `)*$`)
	folderPattern = branchPattern
)

func validateBranch(branch string) error {
	if !branchPattern.MatchString(branch) {
		return fmt.Errorf("invalid main branch %q: only letters, digits, '.', '_', '-' and '/' are allowed", branch)
	}
	if strings.Contains(branch, "..") || strings.HasSuffix(branch, ".") || strings.HasSuffix(branch, ".lock") {
		return fmt.Errorf("invalid main branch %q: not a valid git ref name", branch)
	}
	return nil
}

// validateEnvironments checks that every environment is known and that the
// per-environment resource names stay valid DNS labels.
func (s AppSpec) validateEnvironments() error {
	if len(s.Environments) == 0 {
		return fmt.Errorf("at least one environment is required")
	}
	seen := make(map[string]bool, len(s.Environments))
	for _, env := range s.Environments {
		if !ValidEnvironments[env] {
			return fmt.Errorf("invalid environment %q: must be one of %v", env, getMapKeys(ValidEnvironments))
		}
		if seen[env] {
			return fmt.Errorf("duplicate environment %q", env)
		}
		seen[env] = true

		name := naming.Resource(s.AppName, env)
		if errs := validation.IsDNS1123Label(name); len(errs) > 0 {
			return fmt.Errorf("resource name %q for environment %s is invalid: %s", name, env, strings.Join(errs, "; "))
		}
	}
	return nil
}

func (r Resources) validate() error {
	if r.MemoryRequested <= 0 || r.MemoryLimit <= 0 {
		return fmt.Errorf("memory request and limit must be positive")
	}
	if r.CPURequested <= 0 || r.CPULimit <= 0 {
		return fmt.Errorf("cpu request and limit must be positive")
	}
	if r.MemoryRequested > r.MemoryLimit {
		return fmt.Errorf("memory request %dMi exceeds limit %dMi", r.MemoryRequested, r.MemoryLimit)
	}
	if r.CPURequested > r.CPULimit {
		return fmt.Errorf("cpu request %dm exceeds limit %dm", r.CPURequested, r.CPULimit)
	}
	return nil
}

// validateKeys checks the declared variable, config map and secret key names.
func (s AppSpec) validateKeys() error {
	for _, k := range s.EnvVars {
		if errs := validation.IsEnvVarName(k); len(errs) > 0 {
			return fmt.Errorf("invalid env var name %q: %s", k, strings.Join(errs, "; "))
		}
	}
	for _, k := range s.ConfigMapKeys {
		if errs := validation.IsConfigMapKey(k); len(errs) > 0 {
			return fmt.Errorf("invalid config map key %q: %s", k, strings.Join(errs, "; "))
		}
	}
	// Secret keys follow the same rules as config map keys.
	for _, k := range s.Secrets {
		if errs := validation.IsConfigMapKey(k); len(errs) > 0 {
			return fmt.Errorf("invalid secret key %q: %s", k, strings.Join(errs, "; "))
		}
	}
	return nil
}

// getMapKeys returns the sorted keys of a map for error messages.
func getMapKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
