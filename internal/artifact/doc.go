// Package artifact produces, persists and reloads the generated files.
//
// An Artifact is a (kind, app name, output directory) triple. The kind
// selects the template, the file basename and whether the basename is
// prefixed with the app name; these are looked up in a fixed table rather
// than dispatched through per-kind types.
//
// Rendering failures are errors. Reloading a file that was never written is
// not: Reload reports it as absent so upload flows can skip it.
package artifact
