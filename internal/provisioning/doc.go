// Package provisioning provides shared types and orchestration for
// provisioning generated artifacts onto remote systems.
//
// # Subpackages
//
//   - platform: templates, services, deployments, config maps and secrets
//   - ci: the CI multibranch pipeline job
//
// # Core Types
//
// Context carries the request context, the State and the Observer.
// Phase defines a provisioning step with Name() and Provision() methods.
// State records every resource created so far, so a failed run can report
// what it left behind.
package provisioning
