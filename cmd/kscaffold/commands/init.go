package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/kscaffold/cmd/kscaffold/handlers"
	"github.com/imamik/kscaffold/internal/config"
)

// Init returns the command for interactively creating an application spec.
func Init() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Interactively create an application spec",
		Long: `Interactively create an application spec file.

The wizard asks for the namespace, the app name and type, the environments,
the service port, the replica count and the main branch. The written file
is used with 'kscaffold create -c'.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Init(cmd.Context(), outputPath)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", config.DefaultSpecFilename, "Output file path")

	return cmd
}
