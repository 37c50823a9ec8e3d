// Package render turns embedded artifact templates into text.
//
// Templates live under templates/ and are addressed by a slash-separated
// reference relative to that directory, e.g. "openshift/template.yml".
// They are executed with text/template plus the sprig function map, and a
// parameter the template references but the caller did not supply is an
// error rather than an empty string.
package render
