package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/kscaffold/cmd/kscaffold/handlers"
)

// GetPipeline returns the command that prints a Jenkins job configuration.
func GetPipeline() *cobra.Command {
	var creds handlers.Credentials

	cmd := &cobra.Command{
		Use:   "get-pipeline FOLDER APP_NAME",
		Short: "Print the configuration of a Jenkins job",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handlers.GetPipeline(cmd.Context(), args[0], args[1], creds)
		},
	}

	bindCIFlags(cmd, &creds)

	return cmd
}
