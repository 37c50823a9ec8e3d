// Package jenkins talks to the CI server's REST API with basic auth.
package jenkins
