// registry.go: Capability registry over the sealed module inventory
//
// This file implements the process-scoped registry that captures the host's
// loaded modules once and resolves implementation names against them. The
// inventory is injected through a ModuleSource; the registry never reaches
// into host internals to find modules.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package goanalysis

import (
	"sync"
	"sync/atomic"
	"time"

	timecache "github.com/agilira/go-timecache"
	"github.com/google/uuid"
)

// ClassLoader resolves implementation names. It is what delegating
// factories depend on; *CapabilityRegistry is the production implementation.
type ClassLoader interface {
	// LoadClass returns the first implementation exported under name.
	// found is false when no module exports it. err is reserved for
	// ordering violations and module linkage failures; on a linkage
	// failure impl.Module names the failing module.
	LoadClass(name string) (impl Implementation, found bool, err error)
}

// Implementation is a resolved export: the value a module registered under
// a name, plus the module it came from.
type Implementation struct {
	Name   string
	Module string
	Value  any
}

// RegistryConfig configures the capability registry.
type RegistryConfig struct {
	// DisabledModules are skipped when the inventory is captured.
	DisabledModules []string `json:"disabled_modules" yaml:"disabled_modules"`

	// Logging
	Logger Logger `json:"-" yaml:"-"`
}

// RegistryStats provides registry lookup statistics.
type RegistryStats struct {
	Modules   int       `json:"modules"`
	Lookups   int64     `json:"lookups"`
	Hits      int64     `json:"hits"`
	Misses    int64     `json:"misses"`
	Failures  int64     `json:"failures"`
	StartedAt time.Time `json:"started_at"`
}

// CapabilityRegistry inventories loaded modules and resolves implementation
// names against them.
//
// The inventory follows a two-phase model: unpopulated until Start, then
// sealed and read-only. Lookups are lock-free once sealed.
type CapabilityRegistry struct {
	id     string
	source ModuleSource
	config RegistryConfig
	logger Logger

	inventory atomic.Pointer[[]Module]
	startedAt atomic.Int64

	lookups  atomic.Int64
	hits     atomic.Int64
	misses   atomic.Int64
	failures atomic.Int64

	stateMu sync.Mutex
	stopped bool
	closed  bool
}

// NewCapabilityRegistry creates a registry over the given module source.
func NewCapabilityRegistry(source ModuleSource, config RegistryConfig) *CapabilityRegistry {
	if config.Logger == nil {
		config.Logger = DefaultLogger()
	}
	if source == nil {
		source = ModuleList(nil)
	}

	id := uuid.NewString()
	return &CapabilityRegistry{
		id:     id,
		source: source,
		config: config,
		logger: config.Logger.With("registry_id", id),
	}
}

// ID returns the registry instance identifier used in log context.
func (r *CapabilityRegistry) ID() string {
	return r.id
}

// Start seals the module inventory. It must complete before any LoadClass
// call. Starting twice is an error.
func (r *CapabilityRegistry) Start() error {
	r.stateMu.Lock()
	defer r.stateMu.Unlock()

	if r.inventory.Load() != nil {
		return NewRegistryError("capability registry is already started", nil).
			WithContext("registry_id", r.id)
	}

	r.logger.Debug("Starting capability registry")

	disabled := make(map[string]struct{}, len(r.config.DisabledModules))
	for _, name := range r.config.DisabledModules {
		disabled[name] = struct{}{}
	}

	captured := make([]Module, 0)
	seen := make(map[string]struct{})
	for _, m := range r.source.Modules() {
		if isNil(m) {
			continue
		}
		if _, skip := disabled[m.Name()]; skip {
			r.logger.Info("Module disabled by configuration", "module", m.Name())
			continue
		}
		if _, dup := seen[m.Name()]; dup {
			return NewRegistryError("duplicate module name", nil).
				WithContext("registry_id", r.id).
				WithContext("module", m.Name())
		}
		seen[m.Name()] = struct{}{}
		captured = append(captured, m)
	}

	for _, m := range captured {
		if f, ok := m.(freezer); ok {
			f.freeze()
		}
	}

	r.startedAt.Store(timecache.CachedTimeNano())
	r.inventory.Store(&captured)

	r.logger.Info("Capability registry started", "modules", len(captured))
	return nil
}

// Started reports whether the inventory has been sealed.
func (r *CapabilityRegistry) Started() bool {
	return r.inventory.Load() != nil
}

// LoadClass implements ClassLoader. Modules are tried strictly in capture
// order; a NotFound outcome from one module moves on to the next.
func (r *CapabilityRegistry) LoadClass(name string) (Implementation, bool, error) {
	modules := r.inventory.Load()
	if modules == nil {
		return Implementation{}, false, NewOrderingViolationError("LoadClass").
			WithContext("registry_id", r.id).
			WithContext("implementation", name)
	}

	r.lookups.Add(1)
	for _, m := range *modules {
		value, err := m.Lookup(name)
		if err != nil {
			if IsNotFound(err) {
				continue
			}
			r.failures.Add(1)
			return Implementation{Name: name, Module: m.Name()}, false, NewModuleLinkageError(m.Name(), name, err)
		}
		r.hits.Add(1)
		return Implementation{Name: name, Module: m.Name(), Value: value}, true, nil
	}

	r.misses.Add(1)
	return Implementation{}, false, nil
}

// Modules returns the names of the captured modules in capture order.
func (r *CapabilityRegistry) Modules() ([]string, error) {
	modules := r.inventory.Load()
	if modules == nil {
		return nil, NewOrderingViolationError("Modules").WithContext("registry_id", r.id)
	}
	names := make([]string, 0, len(*modules))
	for _, m := range *modules {
		names = append(names, m.Name())
	}
	return names, nil
}

// Stats returns registry statistics.
func (r *CapabilityRegistry) Stats() RegistryStats {
	stats := RegistryStats{
		Lookups:  r.lookups.Load(),
		Hits:     r.hits.Load(),
		Misses:   r.misses.Load(),
		Failures: r.failures.Load(),
	}
	if modules := r.inventory.Load(); modules != nil {
		stats.Modules = len(*modules)
		stats.StartedAt = time.Unix(0, r.startedAt.Load())
	}
	return stats
}

// Stop is bookkeeping only; the sealed inventory stays readable.
func (r *CapabilityRegistry) Stop() error {
	r.stateMu.Lock()
	defer r.stateMu.Unlock()

	if !r.stopped {
		r.stopped = true
		r.logger.Debug("Stopping capability registry")
	}
	return nil
}

// Close is bookkeeping only; the sealed inventory stays readable.
func (r *CapabilityRegistry) Close() error {
	r.stateMu.Lock()
	defer r.stateMu.Unlock()

	if !r.closed {
		r.closed = true
		r.logger.Debug("Closing capability registry")
	}
	return nil
}
