// Package result provides the success/failure envelope returned by usecases.
// Expected business outcomes travel through Result; Go errors and panics are
// reserved for infrastructure faults and programming mistakes.
package result

import "fmt"

// Kind classifies a failure. The set is closed.
type Kind int

const (
	// BadRequest means the caller supplied invalid or conflicting input.
	BadRequest Kind = iota + 1
	// SomethingWentWrong means an internal or persistence failure the caller cannot correct.
	SomethingWentWrong
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case BadRequest:
		return "BadRequest"
	case SomethingWentWrong:
		return "SomethingWentWrong"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Error is the machine-readable code and human-readable message of a failure.
type Error struct {
	Code    string
	Message string
}

// Result holds either a value of type T or an Error with its Kind.
type Result[T any] struct {
	ok    bool
	value T
	err   Error
	kind  Kind
}

// Success wraps a value.
func Success[T any](value T) Result[T] {
	return Result[T]{ok: true, value: value}
}

// Failure builds a failed Result.
func Failure[T any](code, message string, kind Kind) Result[T] {
	return Result[T]{err: Error{Code: code, Message: message}, kind: kind}
}

// IsSuccess reports whether the Result carries a value.
func (r Result[T]) IsSuccess() bool {
	return r.ok
}

// Value returns the success value. Calling it on a failure panics.
func (r Result[T]) Value() T {
	if !r.ok {
		panic(fmt.Sprintf("result: Value called on failure %s (%s)", r.err.Code, r.kind))
	}
	return r.value
}

// Error returns the failure details. It is the zero Error on success.
func (r Result[T]) Error() Error {
	return r.err
}

// Kind returns the failure kind. It is zero on success.
func (r Result[T]) Kind() Kind {
	return r.kind
}
