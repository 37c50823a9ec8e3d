package platform

import "fmt"

// Step names one platform call in the provisioning sequence.
type Step string

// Provisioning steps, in execution order.
const (
	StepTemplate   Step = "template"
	StepProcess    Step = "process"
	StepService    Step = "service"
	StepDeployment Step = "deployment"
	StepTrigger    Step = "trigger"
	StepConfigMap  Step = "configmap"
	StepSecret     Step = "secret"
)

// APIError is returned when a platform call fails. Environment is empty for
// the template step.
type APIError struct {
	Step        Step
	Environment string
	Err         error
}

func (e *APIError) Error() string {
	if e.Environment == "" {
		return fmt.Sprintf("%s step failed: %v", e.Step, e.Err)
	}
	return fmt.Sprintf("%s step failed for environment %s: %v", e.Step, e.Environment, e.Err)
}

func (e *APIError) Unwrap() error {
	return e.Err
}
