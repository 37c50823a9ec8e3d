package config

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"k8s.io/apimachinery/pkg/util/validation"
)

// WizardResult holds the user's choices from the wizard.
type WizardResult struct {
	Namespace    string
	AppName      string
	AppType      AppType
	Environments []string
	Port         string
	Replicas     string
	MainBranch   string
}

// RunWizard runs the interactive spec wizard.
func RunWizard(ctx context.Context) (*WizardResult, error) {
	result := &WizardResult{
		// Defaults
		AppType:      DefaultAppType,
		Environments: DefaultEnvironments(),
		Port:         strconv.Itoa(DefaultPort),
		Replicas:     strconv.Itoa(DefaultReplicas),
		MainBranch:   DefaultMainBranch,
	}

	form := huh.NewForm(
		// Identity
		huh.NewGroup(
			huh.NewInput().
				Title("Namespace").
				Description("Platform project the application is deployed to").
				Placeholder("my-team").
				Value(&result.Namespace).
				Validate(validateDNSLabel("namespace")),
			huh.NewInput().
				Title("App name").
				Description("Names every generated resource and file").
				Placeholder("my-app").
				Value(&result.AppName).
				Validate(validateDNSLabel("app name")),
		),

		// Workload
		huh.NewGroup(
			huh.NewSelect[AppType]().
				Title("App type").
				Options(
					huh.NewOption("Web app (long-running service)", AppTypeWebApp),
					huh.NewOption("Exec (batch executable)", AppTypeExec),
				).
				Value(&result.AppType),
			huh.NewMultiSelect[string]().
				Title("Environments").
				Options(
					huh.NewOption("int", EnvInt).Selected(true),
					huh.NewOption("qas", EnvQas).Selected(true),
					huh.NewOption("prd", EnvPrd).Selected(true),
				).
				Value(&result.Environments).
				Validate(validateEnvironmentSelection),
		),

		// Sizing
		huh.NewGroup(
			huh.NewInput().
				Title("Service port").
				Value(&result.Port).
				Validate(validateIntRange(1, 65535)),
			huh.NewInput().
				Title("Replicas").
				Description("Starts at 0: the image trigger rolls out once an image is tagged").
				Value(&result.Replicas).
				Validate(validateIntRange(0, 100)),
			huh.NewInput().
				Title("Main branch").
				Value(&result.MainBranch),
		),
	)

	if err := form.RunWithContext(ctx); err != nil {
		return nil, fmt.Errorf("wizard canceled: %w", err)
	}

	return result, nil
}

// ToSpec converts the wizard result to a defaulted AppSpec.
func (r *WizardResult) ToSpec() (AppSpec, error) {
	port, err := strconv.Atoi(strings.TrimSpace(r.Port))
	if err != nil {
		return AppSpec{}, fmt.Errorf("invalid port %q: %w", r.Port, err)
	}
	replicas, err := strconv.Atoi(strings.TrimSpace(r.Replicas))
	if err != nil {
		return AppSpec{}, fmt.Errorf("invalid replicas %q: %w", r.Replicas, err)
	}

	spec := AppSpec{
		Namespace:    strings.TrimSpace(r.Namespace),
		AppName:      strings.TrimSpace(r.AppName),
		AppType:      r.AppType,
		Environments: r.Environments,
		Port:         port,
		Replicas:     replicas,
		MainBranch:   strings.TrimSpace(r.MainBranch),
	}.WithDefaults()

	if err := spec.Validate(); err != nil {
		return AppSpec{}, err
	}
	return spec, nil
}

func validateDNSLabel(field string) func(string) error {
	return func(s string) error {
		s = strings.TrimSpace(s)
		if s == "" {
			return fmt.Errorf("%s is required", field)
		}
		if errs := validation.IsDNS1123Label(s); len(errs) > 0 {
			return fmt.Errorf("%s %s", field, errs[0])
		}
		return nil
	}
}

func validateEnvironmentSelection(envs []string) error {
	if len(envs) == 0 {
		return fmt.Errorf("select at least one environment")
	}
	return nil
}

func validateIntRange(lo, hi int) func(string) error {
	return func(s string) error {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("must be a number")
		}
		if n < lo || n > hi {
			return fmt.Errorf("must be between %d and %d", lo, hi)
		}
		return nil
	}
}
