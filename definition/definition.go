// SPDX-FileCopyrightText: Copyright 2026 Logsieve Authors
// SPDX-License-Identifier: Apache-2.0

package definition

import (
	"fmt"
	"regexp"
	"strings"
)

// MaxExampleSize caps the example text stored in a definition. Longer
// examples are silently cut; an example exists to demonstrate one diagnostic,
// not to carry a whole log.
const MaxExampleSize = 4096

// Definition describes one custom log parser: a pattern that finds
// diagnostics and an expression that turns a match into an issue. The id is
// the definition's identity everywhere (registry, issue origin); the name is
// for display only.
type Definition struct {
	ID         string `json:"id" yaml:"id"`
	Name       string `json:"name" yaml:"name"`
	Regexp     string `json:"regexp" yaml:"regexp"`
	Expression string `json:"expression" yaml:"expression"`
	Example    string `json:"example,omitempty" yaml:"example,omitempty"`
}

// New assembles a definition, truncating the example to MaxExampleSize.
// No other checking happens here: a definition is plain data, and validity
// is re-derived on demand by a Validator.
func New(id, name, pattern, expression, example string) Definition {
	return Definition{
		ID:         id,
		Name:       name,
		Regexp:     pattern,
		Expression: expression,
		Example:    Truncate(example),
	}
}

// Truncate cuts example text to MaxExampleSize characters.
func Truncate(example string) string {
	if len(example) > MaxExampleSize {
		return example[:MaxExampleSize]
	}
	return example
}

var validIDRegex = regexp.MustCompile(`^[a-z0-9_-]+$`)

// ValidateID validates that a definition id only contains allowed characters:
// lowercase alphanumeric, underscore, and dash. It also disallows null bytes.
func ValidateID(id string) error {
	if id == "" || strings.TrimSpace(id) == "" {
		return fmt.Errorf("id cannot be empty or consist only of whitespace")
	}

	// Check for null bytes explicitly
	if strings.Contains(id, "\x00") {
		return fmt.Errorf("id cannot contain null bytes")
	}

	// Enforce lowercase-only ids
	if id != strings.ToLower(id) {
		return fmt.Errorf("id must be lowercase")
	}

	// Validate characters
	if !validIDRegex.MatchString(id) {
		return fmt.Errorf("id can only contain lowercase alphanumeric characters, underscores, and dashes: %q", id)
	}

	return nil
}

// Catalog is the subset of a definition registry the validator consults for
// id collisions. *registry.Registry satisfies it.
type Catalog interface {
	Lookup(id string) (Definition, error)
}
