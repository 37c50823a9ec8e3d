package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/kscaffold/cmd/kscaffold/handlers"
	"github.com/imamik/kscaffold/internal/config"
)

// Create returns the command that writes the deployment template, the
// multibranch pipeline, the Jenkinsfile and the Makefile of an application.
//
// Environment variables:
//
//	OPENSHIFT_URL, OPENSHIFT_TOKEN: platform API (with --provision)
//	JENKINS_URL, JENKINS_USER, JENKINS_TOKEN: CI server (with --provision)
//	KSCAFFOLD_S3_BUCKET: write artifacts to object storage instead of disk
func Create() *cobra.Command {
	var opts handlers.CreateOptions

	cmd := &cobra.Command{
		Use:   "create [NAMESPACE APP_NAME]",
		Short: "Generate deployment and pipeline files for an application",
		Long: `Generate the deployment and pipeline files for an application.

Written files:
  {output}/openshift/{app}-template.yml              platform template
  {output}/openshift/{app}-multibranch-pipeline.xml  Jenkins job
  {output}/Jenkinsfile
  {output}/Makefile

Env, config map and secret files use KEY=VALUE lines. Only the keys end up
in the generated files.

Examples:
  # Generate files for an exec app in all environments
  kscaffold create my-team my-app

  # Web app in int and prd with a secret
  kscaffold create my-team my-app --app-type web-app --envs int --envs prd --secret-file .secrets

  # Use a spec file written by 'kscaffold init' and provision right away
  kscaffold create -c kscaffold.yaml --provision`,
		Args: cobra.MatchAll(cobra.RangeArgs(0, 2), func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return cobra.ExactArgs(2)(cmd, args)
			}
			return nil
		}),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 2 {
				opts.Namespace, opts.AppName = args[0], args[1]
			}
			return handlers.Create(cmd.Context(), opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.ConfigPath, "config", "c", "", "Path to an application spec file instead of NAMESPACE APP_NAME")
	f.StringVar(&opts.MainBranch, "main-branch", config.DefaultMainBranch, "The name of the main branch of the repository")
	f.StringSliceVar(&opts.Environments, "envs", config.DefaultEnvironments(), "Environments (int, qas, prd), repeatable")
	f.StringVar(&opts.AppType, "app-type", string(config.DefaultAppType), "Type of the app (web-app, exec)")
	f.StringVarP(&opts.OutputDir, "output-folder", "o", ".", "Project folder the files are written to")
	f.StringVar(&opts.EnvFile, "env-file", "", "File with environment variables set on the container")
	f.StringVar(&opts.ConfigMapFile, "config-map-file", "", "File with the config map keys")
	f.StringVar(&opts.SecretFile, "secret-file", "", "File with the secret keys")
	f.IntVar(&opts.Resources.MemoryRequested, "memory-requested", config.DefaultMemoryRequested, "Minimum requested memory in Mebibytes")
	f.IntVar(&opts.Resources.CPURequested, "cpu-requested", config.DefaultCPURequested, "Minimum requested CPU in millicores")
	f.IntVar(&opts.Resources.MemoryLimit, "memory-limit", config.DefaultMemoryLimit, "Maximum limit of memory in Mebibytes")
	f.IntVar(&opts.Resources.CPULimit, "cpu-limit", config.DefaultCPULimit, "Maximum limit of CPU in millicores")
	f.IntVar(&opts.Replicas, "replicas", config.DefaultReplicas, "Number of replicas per environment")
	f.IntVar(&opts.Port, "port", config.DefaultPort, "Service port")
	f.StringVar(&opts.JenkinsFolder, "jenkins-folder", "", "Jenkins folder of the job (default: NAMESPACE)")
	f.BoolVar(&opts.Provision, "provision", false, "Create the platform resources and the Jenkins job after writing")

	bindPlatformFlags(cmd, &opts.Credentials)
	bindCIFlags(cmd, &opts.Credentials)

	return cmd
}
