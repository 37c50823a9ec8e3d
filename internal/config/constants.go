package config

// Defaults applied to an AppSpec when a value is not provided.
const (
	// DefaultMemoryRequested is the requested memory in Mebibytes.
	DefaultMemoryRequested = 128
	// DefaultMemoryLimit is the memory limit in Mebibytes.
	DefaultMemoryLimit = 328
	// DefaultCPURequested is the requested CPU in millicores.
	DefaultCPURequested = 100
	// DefaultCPULimit is the CPU limit in millicores.
	DefaultCPULimit = 300

	DefaultPort       = 8080
	DefaultReplicas   = 0
	DefaultMainBranch = "main"
	DefaultAppType    = AppTypeExec

	// DefaultSpecFilename is the spec file written by init and read by --config.
	DefaultSpecFilename = "kscaffold.yaml"
)

// Environment identifiers accepted by the platform template.
const (
	EnvInt = "int"
	EnvQas = "qas"
	EnvPrd = "prd"
)

// DefaultEnvironments returns the environments provisioned when none are given.
func DefaultEnvironments() []string {
	return []string{EnvInt, EnvQas, EnvPrd}
}

// ValidEnvironments contains the environment identifiers kscaffold knows.
var ValidEnvironments = map[string]bool{
	EnvInt: true,
	EnvQas: true,
	EnvPrd: true,
}
