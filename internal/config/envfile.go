package config

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
)

// ParseEnvKeys reads KEY=VALUE lines and returns the keys in first-seen order.
// Blank lines and lines starting with # are ignored, an "export " prefix is
// stripped. Values are never returned: only the key names end up in the
// generated artifacts.
func ParseEnvKeys(r io.Reader) ([]string, error) {
	keys := []string{}
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimPrefix(line, "export ")

		key, _, ok := strings.Cut(line, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("line %d: expected KEY=VALUE, got %q", lineNo, line)
		}
		if !slices.Contains(keys, key) {
			keys = append(keys, key)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read env file: %w", err)
	}
	return keys, nil
}

// LoadEnvKeys parses the env file at path. An empty path yields no keys.
func LoadEnvKeys(path string) ([]string, error) {
	if path == "" {
		return nil, nil
	}
	// #nosec G304
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open env file: %w", err)
	}
	defer f.Close()

	keys, err := ParseEnvKeys(f)
	if err != nil {
		return nil, fmt.Errorf("error parsing the env file %s: %w", path, err)
	}
	return keys, nil
}
