package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// NewConfig decodes the yaml file at configPath into T. Environment
// references of the form ${VAR} are expanded before decoding, so secrets
// can stay out of the file itself.
func NewConfig[T any](configPath string) (*T, error) {
	var config *T

	raw, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	expanded := os.ExpandEnv(string(raw))

	if err := yaml.Unmarshal([]byte(expanded), &config); err != nil {
		return nil, err
	}

	if config == nil {
		config = new(T)
	}

	return config, nil
}
