package naming

import "fmt"

// Naming functions for per-environment platform resources.
// The rendered template names every object {app}-${env}, so the client side
// has to reproduce the same pattern when it addresses them after creation.

func Resource(app, env string) string {
	return fmt.Sprintf("%s-%s", app, env)
}

func Container(app, env string) string {
	return Resource(app, env)
}

func ImageStreamTag(app, env string) string {
	return fmt.Sprintf("%s:%s", app, env)
}

// ArtifactFile returns the file name of an app-qualified artifact.
func ArtifactFile(app, basename string) string {
	return fmt.Sprintf("%s-%s", app, basename)
}
