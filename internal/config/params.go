package config

// Parameter names shared with the embedded templates.
const (
	ParamAppName         = "app_name"
	ParamNamespace       = "namespace"
	ParamAppType         = "app_type"
	ParamMemoryRequested = "memory_requested"
	ParamMemoryLimit     = "memory_limit"
	ParamCPURequested    = "cpu_requested"
	ParamCPULimit        = "cpu_limit"
	ParamEnvVars         = "env_vars"
	ParamConfigMapKeys   = "cm_keys"
	ParamSecrets         = "secrets"
	ParamReplicas        = "replicas"
	ParamPort            = "port"
	ParamUUID            = "uuid"
	ParamMainBranch      = "main_branch"
	ParamFolder          = "folder"
	ParamEnvironments    = "environments"
)

// TemplateParams returns the parameters of the deployment template.
// The app name is added by the artifact itself.
func (s AppSpec) TemplateParams() map[string]any {
	return map[string]any{
		ParamNamespace:       s.Namespace,
		ParamAppType:         s.AppType.String(),
		ParamMemoryRequested: s.Resources.MemoryRequested,
		ParamMemoryLimit:     s.Resources.MemoryLimit,
		ParamCPURequested:    s.Resources.CPURequested,
		ParamCPULimit:        s.Resources.CPULimit,
		ParamEnvVars:         nonNil(s.EnvVars),
		ParamConfigMapKeys:   nonNil(s.ConfigMapKeys),
		ParamSecrets:         nonNil(s.Secrets),
		ParamReplicas:        s.Replicas,
		ParamPort:            s.Port,
	}
}

// PipelineParams returns the parameters of the multibranch pipeline job.
// id is the job's unique identifier.
func (s AppSpec) PipelineParams(id string) map[string]any {
	return map[string]any{
		ParamUUID:       id,
		ParamMainBranch: s.MainBranch,
		ParamNamespace:  s.Namespace,
		ParamFolder:     s.Folder(),
	}
}

// BuildParams returns the parameters of the Jenkinsfile and the Makefile.
func (s AppSpec) BuildParams() map[string]any {
	return map[string]any{
		ParamNamespace:    s.Namespace,
		ParamAppType:      s.AppType.String(),
		ParamMainBranch:   s.MainBranch,
		ParamPort:         s.Port,
		ParamEnvironments: nonNil(s.Environments),
	}
}

func nonNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
