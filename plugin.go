// plugin.go: Analysis plugin composition root
//
// The analysis plugin wires extension-point identifiers to delegating
// factories and exposes them to the host's analysis registry. It owns the
// capability registry and hands it directly to every factory it builds.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package goanalysis

// AnalysisProvider builds an analysis component for one configured instance.
type AnalysisProvider[T any] func(index IndexSettings, env Environment, name string, settings Settings) (T, error)

// AnalysisPlugin maps extension-point identifiers to delegating factories.
//
// Lifecycle: NewAnalysisPlugin → Start (seals the module inventory) →
// providers are invoked by the host → Stop/Close. Invoking a provider
// before Start fails with an ordering violation.
type AnalysisPlugin struct {
	config   Config
	logger   Logger
	registry *CapabilityRegistry
	points   []ExtensionPoint
	byID     map[string]int
}

// NewAnalysisPlugin creates the plugin over the host's module source.
func NewAnalysisPlugin(modules ModuleSource, config Config, logger Logger) (*AnalysisPlugin, error) {
	config.ApplyDefaults()
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = DefaultLogger()
	}

	registry := NewCapabilityRegistry(modules, RegistryConfig{
		DisabledModules: config.DisabledModules,
		Logger:          logger,
	})

	points := DefaultExtensionPoints()
	byID := make(map[string]int, len(points))
	for i := range points {
		if epc, ok := config.ExtensionPoints[points[i].ID]; ok && len(epc.ExtraCandidates) > 0 {
			merged := make(CandidateList, 0, len(points[i].Candidates)+len(epc.ExtraCandidates))
			merged = append(merged, points[i].Candidates...)
			merged = append(merged, epc.ExtraCandidates...)
			points[i].Candidates = merged
		}
		byID[points[i].ID] = i
	}

	return &AnalysisPlugin{
		config:   config,
		logger:   logger,
		registry: registry,
		points:   points,
		byID:     byID,
	}, nil
}

// Start seals the module inventory.
func (p *AnalysisPlugin) Start() error {
	return p.registry.Start()
}

// Stop stops the registry.
func (p *AnalysisPlugin) Stop() error {
	return p.registry.Stop()
}

// Close closes the registry.
func (p *AnalysisPlugin) Close() error {
	return p.registry.Close()
}

// Config returns the effective configuration.
func (p *AnalysisPlugin) Config() Config {
	return p.config
}

// Registry returns the capability registry the plugin's factories use.
func (p *AnalysisPlugin) Registry() *CapabilityRegistry {
	return p.registry
}

// ExtensionPoints returns the extension points with configured extra
// candidates applied.
func (p *AnalysisPlugin) ExtensionPoints() []ExtensionPoint {
	out := make([]ExtensionPoint, len(p.points))
	copy(out, p.points)
	return out
}

// ExtensionPoint returns the extension point registered under id.
func (p *AnalysisPlugin) ExtensionPoint(id string) (ExtensionPoint, bool) {
	i, ok := p.byID[id]
	if !ok {
		return ExtensionPoint{}, false
	}
	return p.points[i], true
}

func (p *AnalysisPlugin) options() FactoryOptions {
	return FactoryOptions{Logger: p.logger}
}

// CharFilters returns the char filter providers keyed by extension id.
func (p *AnalysisPlugin) CharFilters() map[string]AnalysisProvider[CharFilterFactory] {
	providers := make(map[string]AnalysisProvider[CharFilterFactory])
	for _, ep := range p.points {
		if ep.Kind != KindCharFilter {
			continue
		}
		candidates := ep.Candidates
		providers[ep.ID] = func(index IndexSettings, env Environment, name string, settings Settings) (CharFilterFactory, error) {
			args := ConstructionArgs{Index: index, Env: env, Name: name, Settings: settings}
			f, err := NewDelegatingCharFilterFactory(p.registry, args, candidates, p.options())
			if err != nil {
				return nil, err
			}
			return f, nil
		}
	}
	return providers
}

// TokenFilters returns the token filter providers keyed by extension id.
func (p *AnalysisPlugin) TokenFilters() map[string]AnalysisProvider[TokenFilterFactory] {
	providers := make(map[string]AnalysisProvider[TokenFilterFactory])
	for _, ep := range p.points {
		if ep.Kind != KindTokenFilter {
			continue
		}
		candidates := ep.Candidates
		providers[ep.ID] = func(index IndexSettings, env Environment, name string, settings Settings) (TokenFilterFactory, error) {
			args := ConstructionArgs{Index: index, Env: env, Name: name, Settings: settings}
			f, err := NewDelegatingTokenFilterFactory(p.registry, args, candidates, p.options())
			if err != nil {
				return nil, err
			}
			return f, nil
		}
	}
	return providers
}

// Tokenizers returns the tokenizer providers keyed by extension id.
func (p *AnalysisPlugin) Tokenizers() map[string]AnalysisProvider[TokenizerFactory] {
	providers := make(map[string]AnalysisProvider[TokenizerFactory])
	for _, ep := range p.points {
		if ep.Kind != KindTokenizer {
			continue
		}
		candidates := ep.Candidates
		providers[ep.ID] = func(index IndexSettings, env Environment, name string, settings Settings) (TokenizerFactory, error) {
			args := ConstructionArgs{Index: index, Env: env, Name: name, Settings: settings}
			f, err := NewDelegatingTokenizerFactory(p.registry, args, candidates, p.options())
			if err != nil {
				return nil, err
			}
			return f, nil
		}
	}
	return providers
}

// SystemIndexDescriptors returns the system indices the plugin declares.
func (p *AnalysisPlugin) SystemIndexDescriptors() []SystemIndexDescriptor {
	return DefaultSystemIndexDescriptors()
}

// Bindings resolves every extension point with empty settings and reports
// what each one bound to. The first delegation failure aborts the report.
func (p *AnalysisPlugin) Bindings(index IndexSettings, env Environment) ([]Binding, error) {
	bindings := make([]Binding, 0, len(p.points))
	for _, ep := range p.points {
		args := ConstructionArgs{Index: index, Env: env, Name: ep.ID, Settings: Settings{}}

		var (
			binding Binding
			err     error
		)
		switch ep.Kind {
		case KindCharFilter:
			var f *DelegatingCharFilterFactory
			if f, err = NewDelegatingCharFilterFactory(p.registry, args, ep.Candidates, p.options()); err == nil {
				binding = f.Binding()
			}
		case KindTokenFilter:
			var f *DelegatingTokenFilterFactory
			if f, err = NewDelegatingTokenFilterFactory(p.registry, args, ep.Candidates, p.options()); err == nil {
				binding = f.Binding()
			}
		case KindTokenizer:
			var f *DelegatingTokenizerFactory
			if f, err = NewDelegatingTokenizerFactory(p.registry, args, ep.Candidates, p.options()); err == nil {
				binding = f.Binding()
			}
		}
		if err != nil {
			return bindings, err
		}
		bindings = append(bindings, binding)
	}
	return bindings, nil
}
