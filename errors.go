package cask

import (
	"fmt"
	"strings"

	"github.com/xraph/go-utils/errs"
)

// =============================================================================
// ERROR CODES
// =============================================================================

const (
	// CodeInvalidFactory indicates a factory function is invalid or nil
	CodeInvalidFactory = "INVALID_FACTORY"

	// CodeInvalidScope indicates an object does not satisfy the Scope contract
	CodeInvalidScope = "INVALID_SCOPE"

	// CodeKeyNotFound indicates a key has no binding in the container
	CodeKeyNotFound = "KEY_NOT_FOUND"

	// CodeUnresolvable indicates a key whose declared dependencies are not all bound
	CodeUnresolvable = "UNRESOLVABLE"

	// CodeUnknownScope indicates a scope reference that names no registered scope
	CodeUnknownScope = "UNKNOWN_SCOPE"

	// CodeCircularDependency indicates a cycle in the declared dependency edges
	CodeCircularDependency = "CIRCULAR_DEPENDENCY"

	// CodeTypeMismatch indicates a type mismatch during typed resolution
	CodeTypeMismatch = "TYPE_MISMATCH"
)

// =============================================================================
// SENTINEL ERRORS
// =============================================================================

// ErrInvalidFactory is returned when a nil factory is registered.
var ErrInvalidFactory = errs.NewError(CodeInvalidFactory, "factory cannot be nil", nil)

// ErrInvalidScope is returned when a nil scope is added to a scope registry.
var ErrInvalidScope = errs.NewError(CodeInvalidScope, "object does not satisfy the scope contract", nil)

// ErrKeyNotFoundSentinel is a sentinel error for unbound keys (for error checking).
var ErrKeyNotFoundSentinel = errs.NewError(CodeKeyNotFound, "key not bound", nil)

// ErrUnresolvableSentinel is a sentinel error for missing declared dependencies.
var ErrUnresolvableSentinel = errs.NewError(CodeUnresolvable, "unresolvable dependencies", nil)

// ErrUnknownScopeSentinel is a sentinel error for unknown scope references.
var ErrUnknownScopeSentinel = errs.NewError(CodeUnknownScope, "unknown scope", nil)

// ErrCircularDependencySentinel is a sentinel error for declared dependency cycles.
var ErrCircularDependencySentinel = errs.NewError(CodeCircularDependency, "circular dependency", nil)

// ErrTypeMismatchSentinel is a sentinel error for typed resolution mismatches.
var ErrTypeMismatchSentinel = errs.NewError(CodeTypeMismatch, "type mismatch", nil)

// =============================================================================
// ERROR CONSTRUCTORS
// =============================================================================

// ErrKeyNotFound creates an error for a key with no binding
func ErrKeyNotFound(key string) *errs.Error {
	return errs.NewError(
		CodeKeyNotFound,
		fmt.Sprintf("key '%s' is not bound", key),
		nil,
	).WithContext("key", key).(*errs.Error)
}

// ErrUnresolvable creates an error for a key whose declared dependencies
// are not all bound. The missing keys travel in the error context.
func ErrUnresolvable(key string, missing []string) *errs.Error {
	return errs.NewError(
		CodeUnresolvable,
		fmt.Sprintf("key '%s' has missing dependencies: %s", key, strings.Join(missing, ", ")),
		nil,
	).WithContext("key", key).
		WithContext("missing", missing).(*errs.Error)
}

// ErrUnknownScope creates an error for a scope reference that resolves to nothing
func ErrUnknownScope(ref any) *errs.Error {
	return errs.NewError(
		CodeUnknownScope,
		fmt.Sprintf("scope %v does not exist", ref),
		nil,
	).WithContext("scope", fmt.Sprintf("%v", ref)).(*errs.Error)
}

// ErrCircularDependency creates an error for a cycle in declared dependencies
func ErrCircularDependency(cycle []string) *errs.Error {
	return errs.NewError(
		CodeCircularDependency,
		fmt.Sprintf("circular dependency detected: %s", strings.Join(cycle, " -> ")),
		nil,
	).WithContext("cycle", cycle).(*errs.Error)
}

// ErrTypeMismatch creates an error for a typed resolution that produced the wrong type
func ErrTypeMismatch(key string, actual any) *errs.Error {
	return errs.NewError(
		CodeTypeMismatch,
		fmt.Sprintf("key '%s' type mismatch: got %T", key, actual),
		nil,
	).WithContext("key", key).
		WithContext("actual_type", fmt.Sprintf("%T", actual)).(*errs.Error)
}
