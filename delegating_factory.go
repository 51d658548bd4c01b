// delegating_factory.go: Delegating factories with ordered candidate resolution
//
// A delegating factory stands in for an analysis stage whose real
// implementation lives in an optional module. At construction it walks an
// ordered candidate list against a ClassLoader, constructs the first
// implementation it finds and forwards every later call to it. When no
// candidate resolves it binds an inert fallback instead.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package goanalysis

import (
	"fmt"
	"io"
	"reflect"
	"time"

	timecache "github.com/agilira/go-timecache"
)

// CandidateList is an ordered list of fully-qualified implementation names
// for one extension point. Earlier entries win.
type CandidateList []string

// Binding describes what a delegating factory resolved to. It is fixed at
// construction and never changes.
type Binding struct {
	Extension  string    `json:"extension"`
	Kind       Kind      `json:"kind"`
	Fallback   bool      `json:"fallback"`
	Candidate  string    `json:"candidate,omitempty"`
	Module     string    `json:"module,omitempty"`
	Candidates []string  `json:"candidates"`
	ResolvedAt time.Time `json:"resolved_at"`
}

// String returns a one-line description of the binding.
func (b Binding) String() string {
	if b.Fallback {
		return fmt.Sprintf("%s %s -> fallback", b.Kind, b.Extension)
	}
	return fmt.Sprintf("%s %s -> %s (%s)", b.Kind, b.Extension, b.Candidate, b.Module)
}

// FactoryOptions configures delegating factory construction.
type FactoryOptions struct {
	Logger Logger
}

// delegation holds the immutable result of resolution for one factory.
type delegation[T any] struct {
	binding  Binding
	delegate T
}

// resolveDelegate walks the candidate list in order and constructs the first
// implementation the loader resolves. A candidate that resolves but cannot
// be constructed is a delegation failure, never a silent fallback.
func resolveDelegate[T any](loader ClassLoader, kind Kind, args ConstructionArgs, candidates CandidateList, opts FactoryOptions) (delegation[T], error) {
	logger := opts.Logger
	if logger == nil {
		logger = DefaultLogger()
	}
	logger = logger.With("extension", args.Name, "kind", kind.String())

	names := make([]string, len(candidates))
	copy(names, candidates)

	result := delegation[T]{
		binding: Binding{
			Extension:  args.Name,
			Kind:       kind,
			Candidates: names,
		},
	}

	if loader == nil {
		return result, NewRegistryError("class loader cannot be nil", nil).
			WithContext("extension", args.Name)
	}

	for _, candidate := range names {
		impl, found, err := loader.LoadClass(candidate)
		if err != nil {
			if IsOrderingViolation(err) {
				return result, err
			}
			return result, NewDelegationFailureError(args.Name, candidate, impl.Module, err)
		}
		if !found {
			logger.Debug("Implementation is not found", "candidate", candidate)
			continue
		}

		logger.Debug("Implementation is found", "candidate", candidate, "module", impl.Module)

		delegate, err := construct[T](impl, args)
		if err != nil {
			return result, NewDelegationFailureError(args.Name, candidate, impl.Module, err)
		}

		result.delegate = delegate
		result.binding.Candidate = candidate
		result.binding.Module = impl.Module
		result.binding.ResolvedAt = timecache.CachedTime()
		logger.Info("Delegate bound", "candidate", candidate, "module", impl.Module)
		return result, nil
	}

	result.binding.Fallback = true
	result.binding.ResolvedAt = timecache.CachedTime()
	logger.Warn("No implementation available, using fallback", "candidates", names)
	return result, nil
}

// construct applies the four-parameter construction contract to a resolved
// implementation.
func construct[T any](impl Implementation, args ConstructionArgs) (delegate T, err error) {
	var ctor Constructor[T]
	switch fn := impl.Value.(type) {
	case Constructor[T]:
		ctor = fn
	case func(IndexSettings, Environment, string, Settings) (T, error):
		ctor = fn
	default:
		var zero T
		return zero, fmt.Errorf("%s does not provide a constructor (IndexSettings, Environment, string, Settings) returning %s, got %T",
			impl.Name, reflect.TypeOf((*T)(nil)).Elem(), impl.Value)
	}

	defer func() {
		if r := recover(); r != nil {
			var zero T
			delegate = zero
			err = fmt.Errorf("constructor of %s panicked: %v", impl.Name, r)
		}
	}()

	delegate, err = ctor(args.Index, args.Env, args.Name, args.Settings)
	if err != nil {
		return delegate, err
	}
	if isNil(delegate) {
		var zero T
		return zero, fmt.Errorf("constructor of %s returned nil", impl.Name)
	}
	return delegate, nil
}

// isNil reports whether v is a nil interface or a typed nil pointer.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// DelegatingCharFilterFactory forwards to a char filter from an optional
// module, or passes the reader through unchanged.
type DelegatingCharFilterFactory struct {
	name  string
	state delegation[CharFilterFactory]
}

// NewDelegatingCharFilterFactory resolves candidates against loader.
func NewDelegatingCharFilterFactory(loader ClassLoader, args ConstructionArgs, candidates CandidateList, opts FactoryOptions) (*DelegatingCharFilterFactory, error) {
	state, err := resolveDelegate[CharFilterFactory](loader, KindCharFilter, args, candidates, opts)
	if err != nil {
		return nil, err
	}
	if state.binding.Fallback {
		state.delegate = passthroughCharFilter{name: args.Name}
	}
	return &DelegatingCharFilterFactory{name: args.Name, state: state}, nil
}

// Name implements CharFilterFactory.
func (f *DelegatingCharFilterFactory) Name() string { return f.name }

// Binding returns the resolution outcome.
func (f *DelegatingCharFilterFactory) Binding() Binding { return f.state.binding }

// Create implements CharFilterFactory.
func (f *DelegatingCharFilterFactory) Create(r io.Reader) io.Reader {
	return f.state.delegate.Create(r)
}

// DelegatingTokenFilterFactory forwards to a token filter from an optional
// module, or passes the stream through unchanged.
type DelegatingTokenFilterFactory struct {
	name  string
	state delegation[TokenFilterFactory]
}

// NewDelegatingTokenFilterFactory resolves candidates against loader.
func NewDelegatingTokenFilterFactory(loader ClassLoader, args ConstructionArgs, candidates CandidateList, opts FactoryOptions) (*DelegatingTokenFilterFactory, error) {
	state, err := resolveDelegate[TokenFilterFactory](loader, KindTokenFilter, args, candidates, opts)
	if err != nil {
		return nil, err
	}
	if state.binding.Fallback {
		state.delegate = passthroughTokenFilter{name: args.Name}
	}
	return &DelegatingTokenFilterFactory{name: args.Name, state: state}, nil
}

// Name implements TokenFilterFactory.
func (f *DelegatingTokenFilterFactory) Name() string { return f.name }

// Binding returns the resolution outcome.
func (f *DelegatingTokenFilterFactory) Binding() Binding { return f.state.binding }

// Create implements TokenFilterFactory.
func (f *DelegatingTokenFilterFactory) Create(ts TokenStream) TokenStream {
	return f.state.delegate.Create(ts)
}

// DelegatingTokenizerFactory forwards to a tokenizer from an optional
// module, or hands out EmptyTokenizer instances.
type DelegatingTokenizerFactory struct {
	name  string
	state delegation[TokenizerFactory]
}

// NewDelegatingTokenizerFactory resolves candidates against loader.
func NewDelegatingTokenizerFactory(loader ClassLoader, args ConstructionArgs, candidates CandidateList, opts FactoryOptions) (*DelegatingTokenizerFactory, error) {
	state, err := resolveDelegate[TokenizerFactory](loader, KindTokenizer, args, candidates, opts)
	if err != nil {
		return nil, err
	}
	if state.binding.Fallback {
		state.delegate = emptyTokenizerFactory{name: args.Name}
	}
	return &DelegatingTokenizerFactory{name: args.Name, state: state}, nil
}

// Name implements TokenizerFactory.
func (f *DelegatingTokenizerFactory) Name() string { return f.name }

// Binding returns the resolution outcome.
func (f *DelegatingTokenizerFactory) Binding() Binding { return f.state.binding }

// Create implements TokenizerFactory.
func (f *DelegatingTokenizerFactory) Create() Tokenizer {
	return f.state.delegate.Create()
}
