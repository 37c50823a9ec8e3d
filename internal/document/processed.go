package document

import (
	"fmt"

	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
)

const (
	// KindService is the kind of the first processed object.
	KindService = "Service"
	// KindDeployment is the kind of the second processed object.
	KindDeployment = "Deployment"
	KindConfigMap  = "ConfigMap"
	KindSecret     = "Secret"
)

// Processed is a template expanded by the platform for one environment.
type Processed struct {
	objects []*unstructured.Unstructured
}

// NewProcessed wraps a processed template returned by the platform.
func NewProcessed(obj *unstructured.Unstructured) (*Processed, error) {
	if obj == nil {
		return nil, parseErrorf("processed template is empty")
	}
	items, found, err := unstructured.NestedSlice(obj.Object, fieldObjects)
	if err != nil {
		return nil, &ParseError{Err: fmt.Errorf("processed template %s: %w", fieldObjects, err)}
	}
	if !found {
		return nil, parseErrorf("processed template has no %s", fieldObjects)
	}

	p := &Processed{objects: make([]*unstructured.Unstructured, 0, len(items))}
	for i, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			return nil, parseErrorf("%s[%d] must be an object, got %T", fieldObjects, i, item)
		}
		p.objects = append(p.objects, &unstructured.Unstructured{Object: m})
	}

	if err := p.expect(0, KindService); err != nil {
		return nil, err
	}
	if err := p.expect(1, KindDeployment); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Processed) expect(index int, kind string) error {
	if len(p.objects) <= index {
		return parseErrorf("processed template has %d objects, expected a %s at index %d", len(p.objects), kind, index)
	}
	if got := p.objects[index].GetKind(); got != kind {
		return parseErrorf("%s[%d] is a %q, expected a %s", fieldObjects, index, got, kind)
	}
	return nil
}

// Service returns the service object.
func (p *Processed) Service() *unstructured.Unstructured {
	return p.objects[0]
}

// Deployment returns the deployment object.
func (p *Processed) Deployment() *unstructured.Unstructured {
	return p.objects[1]
}

// FirstOfKind returns the first object of the given kind, if any.
func (p *Processed) FirstOfKind(kind string) (*unstructured.Unstructured, bool) {
	for _, o := range p.objects {
		if o.GetKind() == kind {
			return o, true
		}
	}
	return nil, false
}

// Objects returns all processed objects in order.
func (p *Processed) Objects() []*unstructured.Unstructured {
	return p.objects
}
