// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument parsing,
// flag binding, and validation. Command execution is delegated to handler
// functions in the handlers package.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/kscaffold/internal/logging"
)

// Root returns the root command for the kscaffold CLI.
func Root() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:           "kscaffold",
		Short:         "Scaffold and provision platform deployments and CI pipelines",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			log := logging.NewFromEnv(verbose)
			cmd.SetContext(logging.IntoContext(cmd.Context(), log))
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(Create())
	cmd.AddCommand(Upload())
	cmd.AddCommand(GetPipeline())
	cmd.AddCommand(Init())
	cmd.AddCommand(Version())
	cmd.AddCommand(Completion())

	return cmd
}
