package artifact

import (
	"fmt"
	"path/filepath"
)

// Kind identifies one of the generated artifacts.
type Kind int

const (
	// KindDeploymentTemplate is the platform deployment template.
	KindDeploymentTemplate Kind = iota
	// KindMultibranchPipeline is the CI multibranch pipeline job definition.
	KindMultibranchPipeline
	// KindJenkinsfile is the declarative pipeline file.
	KindJenkinsfile
	// KindMakefile is the build helper file.
	KindMakefile
)

type kindInfo struct {
	name        string
	templateRef string
	basename    string
	qualified   bool
	// subdir is relative to the project output folder.
	subdir string
}

var kinds = map[Kind]kindInfo{
	KindDeploymentTemplate: {
		name:        "deployment-template",
		templateRef: "openshift/template.yml",
		basename:    "template.yml",
		qualified:   true,
		subdir:      "openshift",
	},
	KindMultibranchPipeline: {
		name:        "multibranch-pipeline",
		templateRef: "jenkins/multibranch-pipeline.xml",
		basename:    "multibranch-pipeline.xml",
		qualified:   true,
		subdir:      "openshift",
	},
	KindJenkinsfile: {
		name:        "jenkinsfile",
		templateRef: "jenkins/Jenkinsfile",
		basename:    "Jenkinsfile",
	},
	KindMakefile: {
		name:        "makefile",
		templateRef: "jenkins/Makefile",
		basename:    "Makefile",
	},
}

// Kinds returns every artifact kind in generation order.
func Kinds() []Kind {
	return []Kind{KindDeploymentTemplate, KindMultibranchPipeline, KindJenkinsfile, KindMakefile}
}

func (k Kind) info() kindInfo {
	info, ok := kinds[k]
	if !ok {
		panic(fmt.Sprintf("unknown artifact kind %d", int(k)))
	}
	return info
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if info, ok := kinds[k]; ok {
		return info.name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// TemplateRef returns the template the kind is rendered from.
func (k Kind) TemplateRef() string { return k.info().templateRef }

// Basename returns the file name without the app name prefix.
func (k Kind) Basename() string { return k.info().basename }

// Qualified reports whether the file name is prefixed with the app name.
func (k Kind) Qualified() bool { return k.info().qualified }

// Dir returns the directory the kind is written to below the project folder.
func (k Kind) Dir(projectDir string) string {
	return filepath.Join(projectDir, k.info().subdir)
}
