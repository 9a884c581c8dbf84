// Package errors provides the module-scoped error constructors used by the
// imstr foundation packages.
//
// Package: errors
// Title: Standard Error Handling API for imstr Foundation
// Description: Builds *error.Error values that always carry a module and an
//              operation detail, so logs and callers can tell which library call
//              failed without parsing messages.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for cross-module error standardization
// - 2026-10-19 v0.2.0: Allocation helpers for the imstr string library
//
// Usage:
//
//	err := errors.AllocationFailed(errors.ModuleImstr, "Concat", 128, 64, cause)
//	errors.ExtractModule(err)    // "imstr"
//	errors.ExtractOperation(err) // "Concat"
package errors
