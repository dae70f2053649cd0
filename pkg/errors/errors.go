// Package errors provides structured error handling for the weft runtime.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindContract indicates a construction-time contract violation.
	KindContract
	// KindMount indicates a failure during a mount pass.
	KindMount
	// KindDispatch indicates a failure while dispatching a message.
	KindDispatch
	// KindConfig indicates a configuration error.
	KindConfig
	// KindInspect indicates an inspector server error.
	KindInspect
)

func (k ErrorKind) String() string {
	switch k {
	case KindContract:
		return "contract"
	case KindMount:
		return "mount"
	case KindDispatch:
		return "dispatch"
	case KindConfig:
		return "config"
	case KindInspect:
		return "inspect"
	default:
		return "unknown"
	}
}

// WeftError represents a structured error in the weft runtime.
type WeftError struct {
	// Op is the operation that failed (e.g., "core.Renderer.Mount").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *WeftError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *WeftError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "inspect.handleTree").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ContractError represents a broken construction-time invariant: a
// deferred node's erased props do not hold the type its captured
// render path expects. This is a programmer error, unreachable under
// correct use of the node-construction API, and is raised as a panic
// that terminates the mount pass.
type ContractError struct {
	// Component is the type name of the component whose capability
	// rejected the props.
	Component string
	// Expected is the props type the capability was captured for.
	Expected string
	// Got is the type actually held by the erased props.
	Got string
	// StackTrace contains the call stack at the time of the violation.
	StackTrace string
	// Timestamp is when the violation was detected.
	Timestamp time.Time
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("props contract violation in %s: expected %s, got %s",
		e.Component, e.Expected, e.Got)
}

// ErrorHandler receives errors reported by the weft runtime.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *WeftError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
	// HandleContract is called when a contract violation is detected,
	// immediately before the violation is raised as a panic.
	HandleContract(err *ContractError)
}
