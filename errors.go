// errors.go: structured error definitions for the go-analysis system
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package goanalysis

import (
	stderrors "errors"

	"github.com/agilira/go-errors"
)

// Error codes for the go-analysis system
const (
	// Resolution errors (1100-1199)
	ErrCodeImplementationNotFound = "ANALYSIS_1101"

	// Delegation errors (1200-1299)
	ErrCodeDelegationFailure = "ANALYSIS_1201"

	// Ordering and linkage errors (1300-1399)
	ErrCodeOrderingViolation = "ANALYSIS_1301"
	ErrCodeModuleLinkage     = "ANALYSIS_1302"

	// Extension point errors (1400-1499)
	ErrCodeUnknownExtensionPoint = "ANALYSIS_1401"

	// Configuration management errors (1700-1799)
	ErrCodeConfigNotFound        = "CONFIG_1701"
	ErrCodeConfigParseError      = "CONFIG_1702"
	ErrCodeConfigValidationError = "CONFIG_1703"
	ErrCodeConfigFileError       = "CONFIG_1706"

	// Registry errors (1900-1999)
	ErrCodeRegistryError = "REGISTRY_1901"
)

// Resolution error constructors

// NewImplementationNotFoundError reports that a module does not export the
// requested implementation. It is an expected outcome and never fatal.
func NewImplementationNotFoundError(moduleName, implementation string) *errors.Error {
	return errors.New(ErrCodeImplementationNotFound, "Implementation not found").
		WithUserMessage("The module does not provide the requested implementation").
		WithContext("module", moduleName).
		WithContext("implementation", implementation).
		WithSeverity("info")
}

// Delegation error constructors

// NewDelegationFailureError reports a candidate that was located but could
// not be constructed.
func NewDelegationFailureError(extension, candidate, moduleName string, cause error) *errors.Error {
	return errors.Wrap(cause, ErrCodeDelegationFailure, "Failed to load "+candidate).
		WithUserMessage("An analysis implementation was found but could not be constructed").
		WithContext("extension", extension).
		WithContext("candidate", candidate).
		WithContext("module", moduleName).
		WithSeverity("error")
}

// Ordering and linkage error constructors

func NewOrderingViolationError(operation string) *errors.Error {
	return errors.New(ErrCodeOrderingViolation, "Capability registry used before start").
		WithUserMessage("The capability registry must be started before it is queried").
		WithContext("operation", operation).
		WithSeverity("critical")
}

func NewModuleLinkageError(moduleName, implementation string, cause error) *errors.Error {
	return errors.Wrap(cause, ErrCodeModuleLinkage, "Module failed to resolve implementation").
		WithUserMessage("A module failed while resolving an implementation").
		WithContext("module", moduleName).
		WithContext("implementation", implementation).
		WithSeverity("error")
}

func NewUnknownExtensionPointError(id string) *errors.Error {
	return errors.New(ErrCodeUnknownExtensionPoint, "Unknown extension point").
		WithUserMessage("The requested analysis extension point is not registered").
		WithContext("extension", id).
		WithSeverity("error")
}

// Configuration management error constructors

func NewConfigNotFoundError(path string) *errors.Error {
	return errors.New(ErrCodeConfigNotFound, "Configuration file not found").
		WithUserMessage("The configuration file could not be found").
		WithContext("config_path", path).
		WithSeverity("error")
}

func NewConfigParseError(path string, cause error) *errors.Error {
	return errors.Wrap(cause, ErrCodeConfigParseError, "Configuration parse error").
		WithUserMessage("Failed to parse configuration file").
		WithContext("config_path", path).
		WithSeverity("error")
}

func NewConfigValidationError(message string, cause error) *errors.Error {
	if cause != nil {
		return errors.Wrap(cause, ErrCodeConfigValidationError, "Configuration validation error: "+message).
			WithUserMessage("Configuration validation failed").
			WithSeverity("error")
	}
	return errors.New(ErrCodeConfigValidationError, "Configuration validation error: "+message).
		WithUserMessage("Configuration validation failed").
		WithSeverity("error")
}

func NewConfigFileError(path string, message string, cause error) *errors.Error {
	return errors.Wrap(cause, ErrCodeConfigFileError, "Configuration file error: "+message).
		WithUserMessage("Configuration file access failed").
		WithContext("config_path", path).
		WithSeverity("error")
}

// Registry error constructors

func NewRegistryError(message string, cause error) *errors.Error {
	return errors.Wrap(cause, ErrCodeRegistryError, "Registry error: "+message).
		WithUserMessage("Capability registry operation failed").
		WithSeverity("error")
}

// Classification helpers

// hasCode reports whether err carries one of the given codes.
func hasCode(err error, codes ...errors.ErrorCode) bool {
	var analysisErr *errors.Error
	if !stderrors.As(err, &analysisErr) {
		return false
	}
	for _, code := range codes {
		if analysisErr.Code == code {
			return true
		}
	}
	return false
}

// IsNotFound reports whether err means "implementation absent".
func IsNotFound(err error) bool {
	return hasCode(err, ErrCodeImplementationNotFound)
}

// IsDelegationFailure reports whether err means a located implementation
// could not be constructed.
func IsDelegationFailure(err error) bool {
	return hasCode(err, ErrCodeDelegationFailure)
}

// IsOrderingViolation reports whether err means the registry was queried
// before it was started.
func IsOrderingViolation(err error) bool {
	return hasCode(err, ErrCodeOrderingViolation)
}
