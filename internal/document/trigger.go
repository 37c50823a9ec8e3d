package document

import (
	"encoding/json"
	"fmt"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime"

	"github.com/imamik/kscaffold/internal/util/naming"
)

// TriggerAnnotation is the annotation the platform reads image triggers from.
const TriggerAnnotation = "image.openshift.io/triggers"

// ImageTrigger binds a container image to an image stream tag.
type ImageTrigger struct {
	From      corev1.ObjectReference `json:"from"`
	FieldPath string                 `json:"fieldPath"`
	Paused    bool                   `json:"paused,omitempty"`
}

// NewImageTrigger returns the trigger for app in env: the image stream tag
// {app}:{env} drives the image of the container {app}-{env}.
func NewImageTrigger(app, env string) ImageTrigger {
	return ImageTrigger{
		From: corev1.ObjectReference{
			Kind: "ImageStreamTag",
			Name: naming.ImageStreamTag(app, env),
		},
		FieldPath: ContainerImageFieldPath(naming.Container(app, env)),
	}
}

// ContainerImageFieldPath returns the JSONPath of a named container's image.
func ContainerImageFieldPath(container string) string {
	return fmt.Sprintf(`spec.template.spec.containers[?(@.name=="%s")].image`, container)
}

// ImageTriggerPatch returns the merge patch that sets the image trigger
// annotation on the deployment of app in env.
func ImageTriggerPatch(app, env string) ([]byte, error) {
	triggers, err := json.Marshal([]ImageTrigger{NewImageTrigger(app, env)})
	if err != nil {
		return nil, fmt.Errorf("failed to encode image trigger: %w", err)
	}

	patch := map[string]any{
		"metadata": map[string]any{
			"annotations": map[string]string{
				TriggerAnnotation: string(triggers),
			},
		},
	}
	data, err := json.Marshal(patch)
	if err != nil {
		return nil, fmt.Errorf("failed to encode trigger patch: %w", err)
	}
	return data, nil
}

// HasContainer reports whether the deployment declares a container named name.
func HasContainer(deployment *unstructured.Unstructured, name string) (bool, error) {
	var d appsv1.Deployment
	if err := runtime.DefaultUnstructuredConverter.FromUnstructured(deployment.Object, &d); err != nil {
		return false, fmt.Errorf("failed to decode deployment: %w", err)
	}
	for _, c := range d.Spec.Template.Spec.Containers {
		if c.Name == name {
			return true, nil
		}
	}
	return false, nil
}
