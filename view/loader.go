package view

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Parse parses a YAML view definition document.
func Parse(data []byte) (*File, error) {
	var f File

	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, fmt.Errorf("parse views: %w", err)
	}

	return &f, nil
}

// LoadFromFile reads and parses a YAML view definition file.
func LoadFromFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read views %s: %w", path, err)
	}

	return Parse(data)
}
