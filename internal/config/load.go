package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadAppSpec reads a YAML spec file, applies defaults and validates it.
func LoadAppSpec(path string) (*AppSpec, error) {
	// #nosec G304
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read spec file: %w", err)
	}

	return LoadAppSpecFromBytes(data)
}

// LoadAppSpecFromBytes parses, defaults and validates a YAML spec.
func LoadAppSpecFromBytes(data []byte) (*AppSpec, error) {
	var spec AppSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
	}

	spec = spec.WithDefaults()
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("spec validation failed: %w", err)
	}

	return &spec, nil
}

// WriteAppSpec writes the spec as YAML to path.
func WriteAppSpec(spec AppSpec, path string) error {
	data, err := MarshalAppSpec(spec)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write spec file: %w", err)
	}
	return nil
}

// MarshalAppSpec encodes the spec with a short header comment.
func MarshalAppSpec(spec AppSpec) ([]byte, error) {
	body, err := yaml.Marshal(spec)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal spec: %w", err)
	}

	header := "# kscaffold application spec\n# Use with: kscaffold create -c " + DefaultSpecFilename + "\n\n"
	return append([]byte(header), body...), nil
}
