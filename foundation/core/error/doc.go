// Package error provides structured error handling for the imstr foundation.
//
// Package: error
// Title: imstr Error Handling Framework
// Description: Structured errors carrying a code, a severity, an operation name,
//              free-form details and a captured stack trace. Errors stay compatible
//              with the standard error interface, so errors.Is and errors.As work
//              through Wrap chains.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-19 v0.2.0: Reduced code table to the string library's failure modes
//
// Usage:
//
//	err := error.New("buffer request exceeds budget").
//		WithCode(error.CodeAllocationFailed).
//		WithDetail("requested", 4096)
//
//	wrapped := error.Wrap(err, "imstr.Concat").WithOperation("imstr.Concat")
//	if error.HasCode(wrapped, error.CodeAllocationFailed) {
//		// out of budget
//	}
//
// Wrap keeps the code and severity of a wrapped *Error, so callers can check
// the code at any level of the chain.
package error
