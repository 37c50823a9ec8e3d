// Package ci creates the multibranch pipeline job of an application on the
// CI server.
package ci
