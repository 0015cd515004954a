package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// FileConfig is the YAML config file schema. All fields are optional;
// pointers distinguish "absent" from zero values so the CLI can apply only
// the keys the file actually sets, and only where no flag overrides them.
type FileConfig struct {
	Style     *string `yaml:"style"`
	Output    *string `yaml:"output"`
	Color     *string `yaml:"color"`
	Log       *string `yaml:"log"`
	Verbose   *bool   `yaml:"verbose"`
	KeepGoing *bool   `yaml:"keep_going"`
}

// LoadFile reads and decodes a YAML config file. Unknown keys are rejected
// so typos fail loudly instead of being silently ignored. An empty file is
// valid and sets nothing.
func LoadFile(path string) (*FileConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)

	var fc FileConfig
	if err := dec.Decode(&fc); err != nil {
		if errors.Is(err, io.EOF) {
			return &fc, nil
		}
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return &fc, nil
}
