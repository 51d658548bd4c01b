// module.go: Modules and the typed implementation registration table
//
// A module is an independently built unit that exports analysis
// implementations under fully-qualified names. The host never imports a
// module's code to resolve it: the module registers constructors in its
// table, and the capability registry looks names up across every module it
// captured at start.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package goanalysis

import (
	"sort"
	"sync"
)

// Module is one independently loaded unit with its own resolution boundary.
//
// Lookup returns the value exported under name. A module that does not
// export name must return an error for which IsNotFound reports true; any
// other error is treated as a linkage failure of the module.
type Module interface {
	Name() string
	Lookup(name string) (any, error)
}

// ModuleSource hands the host's loaded modules to a registry. The registry
// calls Modules exactly once, at start.
type ModuleSource interface {
	Modules() []Module
}

// ModuleList is a ModuleSource over an explicit, ordered list of modules.
type ModuleList []Module

// Modules implements ModuleSource.
func (l ModuleList) Modules() []Module {
	return l
}

// freezer is implemented by modules that stop accepting registrations once
// a registry captures them.
type freezer interface {
	freeze()
}

// StaticModule is the typed registration table of a module. Providers
// register constructors for the names they export before the module is
// handed to a registry; once captured the table is frozen.
type StaticModule struct {
	name string

	mu      sync.RWMutex
	entries map[string]any
	frozen  bool
}

// NewModule creates an empty module table.
func NewModule(name string) *StaticModule {
	return &StaticModule{
		name:    name,
		entries: make(map[string]any),
	}
}

// Name implements Module.
func (m *StaticModule) Name() string {
	return m.name
}

// Lookup implements Module.
func (m *StaticModule) Lookup(name string) (any, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.entries[name]
	if !ok {
		return nil, NewImplementationNotFoundError(m.name, name)
	}
	return value, nil
}

// Provide registers a raw value under name. Values that are not a
// Constructor of the kind requested by a delegating factory make that
// factory fail with a delegation failure.
func (m *StaticModule) Provide(name string, value any) error {
	if name == "" {
		return NewRegistryError("implementation name cannot be empty", nil).
			WithContext("module", m.name)
	}
	if value == nil {
		return NewRegistryError("implementation value cannot be nil", nil).
			WithContext("module", m.name).
			WithContext("implementation", name)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.frozen {
		return NewRegistryError("module is sealed", nil).
			WithContext("module", m.name).
			WithContext("implementation", name)
	}
	if _, exists := m.entries[name]; exists {
		return NewRegistryError("implementation already provided", nil).
			WithContext("module", m.name).
			WithContext("implementation", name)
	}

	m.entries[name] = value
	return nil
}

// ProvideCharFilter registers a char filter constructor under name.
func (m *StaticModule) ProvideCharFilter(name string, ctor CharFilterConstructor) error {
	if ctor == nil {
		return m.Provide(name, nil)
	}
	return m.Provide(name, ctor)
}

// ProvideTokenFilter registers a token filter constructor under name.
func (m *StaticModule) ProvideTokenFilter(name string, ctor TokenFilterConstructor) error {
	if ctor == nil {
		return m.Provide(name, nil)
	}
	return m.Provide(name, ctor)
}

// ProvideTokenizer registers a tokenizer constructor under name.
func (m *StaticModule) ProvideTokenizer(name string, ctor TokenizerConstructor) error {
	if ctor == nil {
		return m.Provide(name, nil)
	}
	return m.Provide(name, ctor)
}

// Exports returns the sorted names the module provides.
func (m *StaticModule) Exports() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.entries))
	for name := range m.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Frozen reports whether a registry has captured the module.
func (m *StaticModule) Frozen() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.frozen
}

func (m *StaticModule) freeze() {
	m.mu.Lock()
	m.frozen = true
	m.mu.Unlock()
}
