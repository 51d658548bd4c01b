// module_test.go: module registration table tests
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package goanalysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubTokenizerFactory is a minimal tokenizer delegate used across tests.
type stubTokenizerFactory struct {
	name     string
	args     ConstructionArgs
	produced string
}

func (s *stubTokenizerFactory) Name() string      { return s.name }
func (s *stubTokenizerFactory) Create() Tokenizer { return NewEmptyTokenizer() }

func stubTokenizerCtor(label string) TokenizerConstructor {
	return func(index IndexSettings, env Environment, name string, settings Settings) (TokenizerFactory, error) {
		return &stubTokenizerFactory{
			name:     name,
			args:     ConstructionArgs{Index: index, Env: env, Name: name, Settings: settings},
			produced: label,
		}, nil
	}
}

func TestStaticModule_LookupAndProvide(t *testing.T) {
	m := NewModule("ext")
	require.NoError(t, m.ProvideTokenizer("ext.Bar", stubTokenizerCtor("bar")))

	value, err := m.Lookup("ext.Bar")
	require.NoError(t, err)
	assert.IsType(t, TokenizerConstructor(nil), value)

	_, err = m.Lookup("ext.Foo")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))

	assert.Equal(t, "ext", m.Name())
	assert.Equal(t, []string{"ext.Bar"}, m.Exports())
}

func TestStaticModule_ProvideRejectsInvalidEntries(t *testing.T) {
	m := NewModule("ext")

	assert.Error(t, m.Provide("", "value"))
	assert.Error(t, m.Provide("ext.Nil", nil))
	assert.Error(t, m.ProvideCharFilter("ext.NilCtor", nil))
	assert.Error(t, m.ProvideTokenFilter("ext.NilCtor", nil))
	assert.Error(t, m.ProvideTokenizer("ext.NilCtor", nil))

	require.NoError(t, m.Provide("ext.Raw", 42))
	err := m.Provide("ext.Raw", 43)
	require.Error(t, err)
	assert.True(t, hasCode(err, ErrCodeRegistryError))
}

func TestStaticModule_FrozenAfterCapture(t *testing.T) {
	m := NewModule("ext")
	require.NoError(t, m.ProvideTokenizer("ext.Bar", stubTokenizerCtor("bar")))
	assert.False(t, m.Frozen())

	registry := NewCapabilityRegistry(ModuleList{m}, RegistryConfig{})
	require.NoError(t, registry.Start())

	assert.True(t, m.Frozen())
	err := m.ProvideTokenizer("ext.Late", stubTokenizerCtor("late"))
	require.Error(t, err)
	assert.Equal(t, []string{"ext.Bar"}, m.Exports())
}

func TestModuleList(t *testing.T) {
	a, b := NewModule("a"), NewModule("b")
	list := ModuleList{a, b}
	modules := list.Modules()
	require.Len(t, modules, 2)
	assert.Equal(t, "a", modules[0].Name())
	assert.Equal(t, "b", modules[1].Name())
}
