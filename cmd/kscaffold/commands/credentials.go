package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/kscaffold/cmd/kscaffold/handlers"
)

// bindPlatformFlags adds the platform endpoint and token overrides.
func bindPlatformFlags(cmd *cobra.Command, creds *handlers.Credentials) {
	cmd.Flags().StringVar(&creds.OpenShiftURL, "openshift-url", "", "Platform API URL (overrides OPENSHIFT_URL)")
	cmd.Flags().StringVar(&creds.OpenShiftToken, "openshift-token", "", "Platform API token (overrides OPENSHIFT_TOKEN)")
}

// bindCIFlags adds the Jenkins endpoint and credential overrides.
func bindCIFlags(cmd *cobra.Command, creds *handlers.Credentials) {
	cmd.Flags().StringVar(&creds.JenkinsURL, "jenkins-url", "", "Jenkins URL (overrides JENKINS_URL)")
	cmd.Flags().StringVar(&creds.JenkinsUser, "jenkins-user", "", "Jenkins user (overrides JENKINS_USER)")
	cmd.Flags().StringVar(&creds.JenkinsToken, "jenkins-token", "", "Jenkins API token (overrides JENKINS_TOKEN)")
}
