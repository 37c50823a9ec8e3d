// Package main is the entry point for the kscaffold CLI.
//
// kscaffold generates the deployment template, the Jenkins multibranch
// pipeline, the Jenkinsfile and the Makefile of an application, and can
// provision the template and the job on the platform and the CI server.
//
// Commands: create, upload, get-pipeline, init.
//
// For detailed usage information, run:
//
//	kscaffold --help
package main

import (
	"fmt"
	"os"

	"github.com/imamik/kscaffold/cmd/kscaffold/commands"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
