// SPDX-FileCopyrightText: Copyright 2026 Logsieve Authors
// SPDX-License-Identifier: Apache-2.0

package definition

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

//go:embed data/parser-definitions.schema.json
var embeddedSchemaFS embed.FS

const schemaFile = "data/parser-definitions.schema.json"

// CurrentFileVersion is the definitions file format version this package
// reads and writes.
const CurrentFileVersion = 1

// File is a definitions file: a format version plus the parser definitions
// it carries.
type File struct {
	Version int          `json:"version" yaml:"version"`
	Parsers []Definition `json:"parsers" yaml:"parsers"`
}

// Load parses YAML definitions data. The raw document is validated against
// the embedded JSON schema before it is decoded, so unknown or missing keys
// are reported with their schema diagnostics. Examples are truncated to
// MaxExampleSize; semantic checks (blank fields, compilability) are left to
// the Validator.
func Load(data []byte) (*File, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing definitions YAML: %w", err)
	}
	jsonData, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("converting definitions to JSON: %w", err)
	}
	if err := validateAgainstSchema(jsonData); err != nil {
		return nil, err
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing definitions YAML: %w", err)
	}
	for i := range f.Parsers {
		f.Parsers[i].Example = Truncate(f.Parsers[i].Example)
	}
	return &f, nil
}

// LoadFile reads and parses the definitions file at path.
func LoadFile(path string) (*File, error) {
	// #nosec G304 - the path is the user-specified definitions file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading definitions file: %w", err)
	}
	return Load(data)
}

// Validate checks the file against the embedded JSON schema. Load already
// validates; this covers files assembled in code before they are written out.
func (f *File) Validate() error {
	data, err := json.Marshal(f)
	if err != nil {
		return fmt.Errorf("serializing definitions: %w", err)
	}
	return validateAgainstSchema(data)
}

// ConfigPath returns the definitions file path within the given config home
// directory. This is the injectable, testable form. For the standard XDG
// location, use DefaultPath.
func ConfigPath(configHome string) string {
	return filepath.Join(configHome, "logsieve", "parsers.yaml")
}

// DefaultPath returns the default definitions file path using XDG base
// directory conventions.
func DefaultPath() string {
	return ConfigPath(xdg.ConfigHome)
}

// validateAgainstSchema validates definitions JSON against the embedded schema.
func validateAgainstSchema(data []byte) error {
	schemaData, err := embeddedSchemaFS.ReadFile(schemaFile)
	if err != nil {
		return fmt.Errorf("failed to read embedded schema %s: %w", schemaFile, err)
	}

	const errPrefix = "definitions schema validation failed"
	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schemaData),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return fmt.Errorf("%s: %w", errPrefix, err)
	}

	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		msgs = append(msgs, desc.String())
	}
	return formatNumberedErrors(errPrefix, msgs)
}

// formatNumberedErrors formats a list of messages as a single error with a numbered list.
func formatNumberedErrors(prefix string, msgs []string) error {
	if len(msgs) == 0 {
		return nil
	}
	if len(msgs) == 1 {
		return fmt.Errorf("%s: %s", prefix, msgs[0])
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s with %d errors:\n", prefix, len(msgs))
	for i, msg := range msgs {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, msg)
	}
	return errors.New(strings.TrimSuffix(b.String(), "\n"))
}
