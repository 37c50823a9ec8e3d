// Package document gives typed access to the rendered deployment template
// and to the platform's processed expansion of it.
//
// The template format is positional: the first parameter selects the
// environment, and a processed template lists the Service first and the
// Deployment second, followed by an optional ConfigMap and Secret. This
// package is the only place that knows those positions, and it checks them
// explicitly instead of trusting the index.
package document
