package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/kscaffold/cmd/kscaffold/handlers"
	"github.com/imamik/kscaffold/internal/config"
)

// Upload returns the command that provisions files written earlier by create.
func Upload() *cobra.Command {
	var opts handlers.UploadOptions

	cmd := &cobra.Command{
		Use:   "upload NAMESPACE APP_NAME",
		Short: "Provision previously generated files",
		Long: `Create the platform resources and the Jenkins job from files written
earlier by 'kscaffold create'. Files are not rendered again, so manual edits
are kept. Missing files are skipped.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Namespace, opts.AppName = args[0], args[1]
			return handlers.Upload(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.OutputDir, "output-folder", "o", ".", "Project folder the files were written to")
	cmd.Flags().StringSliceVar(&opts.Environments, "envs", config.DefaultEnvironments(), "Environments (int, qas, prd), repeatable")
	cmd.Flags().StringVar(&opts.JenkinsFolder, "jenkins-folder", "", "Jenkins folder of the job (default: NAMESPACE)")

	bindPlatformFlags(cmd, &opts.Credentials)
	bindCIFlags(cmd, &opts.Credentials)

	return cmd
}
