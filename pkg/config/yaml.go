package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DecodeYAMLFile decodes the YAML file into v using v's json tags.
// Unknown fields are rejected.
func DecodeYAMLFile(path string, v any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	err = DecodeYAML(b, v)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	return nil
}

// DecodeYAML decodes the YAML document into v using v's json tags.
// Unknown fields are rejected.
func DecodeYAML(b []byte, v any) error {
	m := map[string]any{}

	err := yaml.Unmarshal(b, &m)
	if err != nil {
		return err
	}

	b, err = json.Marshal(m)
	if err != nil {
		return fmt.Errorf("convert yaml to json: %w", err)
	}

	d := json.NewDecoder(bytes.NewReader(b))
	d.DisallowUnknownFields()

	return d.Decode(v)
}
