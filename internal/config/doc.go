// Package config defines the application model and process configuration
// for kscaffold.
//
// [AppSpec] is the immutable description of one deployment (names, app type,
// resources, declared keys, environments). It is built from command-line
// flags, a YAML spec file or the interactive wizard, and is converted into
// the parameter maps each artifact template renders with.
//
// [Settings] carries platform and CI endpoints and credentials read from the
// environment; [Timeouts] bounds remote calls.
package config
