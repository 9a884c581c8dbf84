// File: standards.go
// Title: Error Standards for imstr Foundation
// Description: Module identifiers, module error codes and the standard
//              constructors used by all foundation packages.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for error standardization
// - 2026-10-19 v0.2.0: Reduced to imstr, config and log modules

package errors

import (
	"fmt"

	mdwerror "github.com/msto63/imstr/foundation/core/error"
)

// Module identifiers for error categorization
const (
	ModuleImstr  = "imstr"
	ModuleConfig = "config"
	ModuleLog    = "log"
)

// Module-specific error codes
const (
	CodeImstrAllocationFailed = "IMSTR_ALLOCATION_FAILED"
	CodeImstrLengthOverflow   = "IMSTR_LENGTH_OVERFLOW"
	CodeConfigInvalidValue    = "CONFIG_INVALID_VALUE"
)

// AllocationFailed reports a buffer request that the allocator could not
// satisfy. limit is the applicable ceiling, or -1 when none applies.
func AllocationFailed(module, operation string, requested, limit int, cause error) *mdwerror.Error {
	msg := fmt.Sprintf("%s.%s: cannot allocate %d bytes", module, operation, requested)
	if limit >= 0 {
		msg = fmt.Sprintf("%s (limit %d)", msg, limit)
	}

	var err *mdwerror.Error
	if cause != nil {
		err = mdwerror.Wrap(cause, msg)
	} else {
		err = mdwerror.New(msg)
	}

	return err.
		WithCode(mdwerror.CodeAllocationFailed).
		WithOperation(fmt.Sprintf("%s.%s", module, operation)).
		WithDetails(map[string]interface{}{
			"module":      module,
			"operation":   operation,
			"requested":   requested,
			"limit":       limit,
			"module_code": CodeImstrAllocationFailed,
		})
}

// LengthOverflow reports a length computation that does not fit in an int.
func LengthOverflow(module, operation string, cause error) *mdwerror.Error {
	msg := fmt.Sprintf("%s.%s: result length overflows", module, operation)

	var err *mdwerror.Error
	if cause != nil {
		err = mdwerror.Wrap(cause, msg)
	} else {
		err = mdwerror.New(msg)
	}

	return err.
		WithCode(mdwerror.CodeLengthOverflow).
		WithOperation(fmt.Sprintf("%s.%s", module, operation)).
		WithDetails(map[string]interface{}{
			"module":      module,
			"operation":   operation,
			"module_code": CodeImstrLengthOverflow,
		})
}

// InvalidInput creates a standardized input validation error
func InvalidInput(module, operation string, input interface{}, expected string) *mdwerror.Error {
	return mdwerror.New(fmt.Sprintf("invalid input for %s.%s: expected %s", module, operation, expected)).
		WithCode(mdwerror.CodeInvalidInput).
		WithOperation(fmt.Sprintf("%s.%s", module, operation)).
		WithDetails(map[string]interface{}{
			"module":    module,
			"operation": operation,
			"input":     input,
			"expected":  expected,
		})
}

// InvalidConfig reports a configuration value that failed validation.
func InvalidConfig(key string, value interface{}, reason string) *mdwerror.Error {
	return mdwerror.New(fmt.Sprintf("invalid configuration value for %s: %s", key, reason)).
		WithCode(mdwerror.CodeInvalidConfig).
		WithOperation(ModuleConfig + ".Validate").
		WithDetails(map[string]interface{}{
			"module":      ModuleConfig,
			"key":         key,
			"value":       value,
			"module_code": CodeConfigInvalidValue,
		})
}

// OperationFailed wraps a cause with module and operation context
func OperationFailed(module, operation string, cause error) *mdwerror.Error {
	if cause == nil {
		return nil
	}
	return mdwerror.Wrap(cause, fmt.Sprintf("%s.%s failed", module, operation)).
		WithOperation(fmt.Sprintf("%s.%s", module, operation)).
		WithDetails(map[string]interface{}{
			"module":    module,
			"operation": operation,
		})
}
