// SPDX-FileCopyrightText: Copyright 2026 Logsieve Authors
// SPDX-License-Identifier: Apache-2.0

// Package registry holds the process-wide collection of parser definitions.
//
// A Registry enforces id uniqueness and nothing else: whether a definition's
// fields actually work is re-derived on demand by definition.Validator.
// Replacing a definition under the same id discards the previous one
// entirely; no history is kept.
//
// Most callers use the process-wide default:
//
//	reg := registry.Default()
//	if err := registry.RegisterBuiltins(reg); err != nil { ... }
//	def, err := reg.Lookup("gcc")
//
// Tests that mutate the default should call ResetDefault to get a fresh one.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/logsieve/logsieve-core/definition"
)

// Registry manages parser definitions keyed by id. The zero value is not
// usable; construct with NewRegistry. All methods are safe for concurrent
// use, and a mutation is visible to every lookup that starts after it.
type Registry struct {
	mu   sync.RWMutex
	defs map[string]definition.Definition
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		defs: make(map[string]definition.Definition),
	}
}

// Register adds a definition to the registry. The id must be well-formed and
// free; a collision returns a *DuplicateIDError naming the definition that
// holds the id.
func (r *Registry) Register(def definition.Definition) error {
	if err := definition.ValidateID(def.ID); err != nil {
		return fmt.Errorf("invalid parser id: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.defs[def.ID]; ok {
		return &DuplicateIDError{ID: def.ID, ExistingName: existing.Name}
	}
	r.defs[def.ID] = def
	return nil
}

// Replace upserts a definition, discarding any previous one under the same
// id.
func (r *Registry) Replace(def definition.Definition) error {
	if err := definition.ValidateID(def.ID); err != nil {
		return fmt.Errorf("invalid parser id: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.defs[def.ID] = def
	return nil
}

// Lookup returns the definition registered under id, or a *NotFoundError.
func (r *Registry) Lookup(id string) (definition.Definition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	def, ok := r.defs[id]
	if !ok {
		return definition.Definition{}, &NotFoundError{ID: id}
	}
	return def, nil
}

// Contains reports whether a definition is registered under id.
func (r *Registry) Contains(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.defs[id]
	return ok
}

// Remove deletes the definition under id and reports whether one existed.
func (r *Registry) Remove(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.defs[id]
	delete(r.defs, id)
	return ok
}

// Len returns the number of registered definitions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.defs)
}

// List returns a snapshot of all definitions, sorted by id.
func (r *Registry) List() []definition.Definition {
	r.mu.RLock()
	defer r.mu.RUnlock()

	defs := make([]definition.Definition, 0, len(r.defs))
	for _, def := range r.defs {
		defs = append(defs, def)
	}
	sort.Slice(defs, func(i, j int) bool {
		return defs[i].ID < defs[j].ID
	})
	return defs
}

// RegisterBuiltins registers every builtin definition into the registry.
// Registration stops at the first collision.
func RegisterBuiltins(r *Registry) error {
	for _, def := range definition.Builtins() {
		if err := r.Register(def); err != nil {
			return fmt.Errorf("registering builtin %q: %w", def.ID, err)
		}
	}
	return nil
}

var (
	defaultMu       sync.Mutex
	defaultRegistry *Registry
)

// Default returns the process-wide registry, constructing it on first use.
func Default() *Registry {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultRegistry == nil {
		defaultRegistry = NewRegistry()
	}
	return defaultRegistry
}

// ResetDefault discards the process-wide registry. The next Default call
// constructs a fresh one. Intended for tests.
func ResetDefault() {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	defaultRegistry = nil
}
