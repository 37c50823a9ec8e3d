package handlers

import (
	"context"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/imamik/kscaffold/internal/config"
)

// Factory function variables for init - can be replaced in tests.
var (
	// fileExists checks if a file exists.
	fileExists = func(path string) bool {
		_, err := os.Stat(path)
		return err == nil
	}

	// isInteractiveTTY reports whether the wizard can prompt the user.
	isInteractiveTTY = func() bool {
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}

	// runWizard runs the interactive spec wizard.
	runWizard = config.RunWizard

	// writeAppSpec writes the spec to a file.
	writeAppSpec = config.WriteAppSpec
)

// Init runs the spec wizard and writes the result to outputPath.
func Init(ctx context.Context, outputPath string) error {
	if !isInteractiveTTY() {
		return fmt.Errorf("init needs an interactive terminal, write %s by hand or pass flags to 'kscaffold create'", outputPath)
	}

	if fileExists(outputPath) {
		fmt.Printf("Warning: %s already exists and will be overwritten.\n\n", outputPath)
	}

	result, err := runWizard(ctx)
	if err != nil {
		return err
	}

	spec, err := result.ToSpec()
	if err != nil {
		return err
	}

	if err := writeAppSpec(spec, outputPath); err != nil {
		return fmt.Errorf("failed to write spec: %w", err)
	}

	fmt.Print(renderInitSummary(outputPath, spec))
	return nil
}
