package platform

import (
	"encoding/json"
	"fmt"
	"strings"

	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"

	"github.com/imamik/kscaffold/internal/config"
	"github.com/imamik/kscaffold/internal/render"
)

func testSpec(mutate func(*config.AppSpec)) config.AppSpec {
	spec := config.AppSpec{
		Namespace:    "team",
		AppName:      "demo",
		Environments: []string{"int", "prd"},
	}.WithDefaults()
	if mutate != nil {
		mutate(&spec)
	}
	return spec
}

// renderDocument renders the deployment template the way the create command does.
func renderDocument(spec config.AppSpec) (string, error) {
	params := spec.TemplateParams()
	params[config.ParamAppName] = spec.AppName
	return render.New().Render("openshift/template.yml", params)
}

// processLikePlatform substitutes the environment parameter into the objects
// of a template, as the platform does when processing it.
func processLikePlatform(tmpl *unstructured.Unstructured) (*unstructured.Unstructured, error) {
	params, _, err := unstructured.NestedSlice(tmpl.Object, "parameters")
	if err != nil || len(params) == 0 {
		return nil, fmt.Errorf("template has no parameters")
	}
	first, _ := params[0].(map[string]any)
	name, _ := first["name"].(string)
	value, _ := first["value"].(string)

	data, err := json.Marshal(tmpl.Object)
	if err != nil {
		return nil, err
	}
	data = []byte(strings.ReplaceAll(string(data), "${"+name+"}", value))

	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return &unstructured.Unstructured{Object: out}, nil
}
