// Package handlers implements the kscaffold commands.
//
// Handlers receive parsed options from the commands package, talk to the
// artifact store and the remote APIs, and print summaries. Clients and
// prompts are created through package variables so tests can replace them.
package handlers
