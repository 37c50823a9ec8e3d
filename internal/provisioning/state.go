package provisioning

import "sync"

// Resource is one object created on a remote system.
type Resource struct {
	// Environment is empty for resources shared by all environments.
	Environment string
	Step        string
	Kind        string
	Name        string
}

// State holds the resources created by provisioning phases, in creation order.
// Nothing is rolled back on failure, so after a failed run State is the
// record of what exists.
type State struct {
	mu      sync.Mutex
	created []Resource
}

// NewState creates an empty provisioning state.
func NewState() *State {
	return &State{}
}

// Record appends a created resource.
func (s *State) Record(r Resource) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.created = append(s.created, r)
}

// Created returns a copy of the created resources in creation order.
func (s *State) Created() []Resource {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Resource(nil), s.created...)
}

// Environments returns the environments with at least one created resource,
// in the order they were first touched.
func (s *State) Environments() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	var envs []string
	seen := map[string]bool{}
	for _, r := range s.created {
		if r.Environment == "" || seen[r.Environment] {
			continue
		}
		seen[r.Environment] = true
		envs = append(envs, r.Environment)
	}
	return envs
}
