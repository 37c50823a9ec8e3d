// Package openshift talks to the container platform's REST API.
//
// All calls go through client-go's dynamic client authenticated with a
// bearer token. Templates and processed templates live in the
// template.openshift.io/v1 group; the objects a processed template yields
// are created in the core and apps groups.
package openshift
