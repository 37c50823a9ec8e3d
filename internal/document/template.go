package document

import (
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	utiljson "k8s.io/apimachinery/pkg/util/json"
	"sigs.k8s.io/yaml"
)

const (
	fieldParameters = "parameters"
	fieldObjects    = "objects"
)

// Template is a parsed deployment template.
type Template struct {
	obj *unstructured.Unstructured
}

// Parse decodes a YAML or JSON template and checks that it has an objects
// list and an environment parameter in first position.
func Parse(data []byte) (*Template, error) {
	raw, err := yaml.YAMLToJSON(data)
	if err != nil {
		return nil, &ParseError{Err: err}
	}

	var content map[string]any
	if err := utiljson.Unmarshal(raw, &content); err != nil {
		return nil, &ParseError{Err: err}
	}
	if content == nil {
		return nil, parseErrorf("document is empty")
	}

	t := &Template{obj: &unstructured.Unstructured{Object: content}}
	if err := t.validate(); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Template) validate() error {
	objects, found, err := unstructured.NestedFieldNoCopy(t.obj.Object, fieldObjects)
	if err != nil || !found {
		return parseErrorf("missing %s list", fieldObjects)
	}
	if _, ok := objects.([]any); !ok {
		return parseErrorf("%s must be a list, got %T", fieldObjects, objects)
	}

	if _, err := environmentParameter(t.obj.Object); err != nil {
		return err
	}
	return nil
}

// environmentParameter returns the first template parameter.
func environmentParameter(content map[string]any) (map[string]any, error) {
	params, found, err := unstructured.NestedFieldNoCopy(content, fieldParameters)
	if err != nil || !found {
		return nil, parseErrorf("missing %s list", fieldParameters)
	}
	list, ok := params.([]any)
	if !ok {
		return nil, parseErrorf("%s must be a list, got %T", fieldParameters, params)
	}
	if len(list) == 0 {
		return nil, parseErrorf("%s is empty, expected the environment parameter first", fieldParameters)
	}
	first, ok := list[0].(map[string]any)
	if !ok {
		return nil, parseErrorf("%s[0] must be an object, got %T", fieldParameters, list[0])
	}
	return first, nil
}

// Object returns the template as sent to the platform on creation.
func (t *Template) Object() *unstructured.Unstructured {
	return t.obj
}

// EnvironmentParameter returns the name of the environment selector.
func (t *Template) EnvironmentParameter() string {
	p, _ := environmentParameter(t.obj.Object)
	name, _ := p["name"].(string)
	return name
}

// EnvironmentValue returns the value currently set on the environment selector.
func (t *Template) EnvironmentValue() string {
	p, _ := environmentParameter(t.obj.Object)
	value, _ := p["value"].(string)
	return value
}

// ObjectCount returns the number of objects in the template.
func (t *Template) ObjectCount() int {
	objects, _, _ := unstructured.NestedSlice(t.obj.Object, fieldObjects)
	return len(objects)
}

// ForEnvironment returns a copy of the template with the environment
// selector set to env. The receiver is not modified.
func (t *Template) ForEnvironment(env string) *Template {
	cp := t.obj.DeepCopy()
	// validated by Parse
	p, _ := environmentParameter(cp.Object)
	p["value"] = env
	return &Template{obj: cp}
}
