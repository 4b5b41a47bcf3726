package civitai

import "fmt"

// Result is the discriminated outcome of every API operation: exactly one of
// a success payload or a structured Failure. Operations that talk to the
// remote service never report errors any other way; transport faults, decode
// faults, and remote-reported errors are all normalized into the failure
// variant.
//
// There is deliberately no unchecked unwrap: Value reports whether the
// payload is present, so every consumption path handles both variants.
type Result[T any] struct {
	value   T
	failure *Failure
}

// Ok creates a successful result.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Fail creates a failed result.
func Fail[T any](failure *Failure) Result[T] {
	if failure == nil {
		failure = &Failure{Code: FailureTransport, Message: "unspecified failure"}
	}

	return Result[T]{failure: failure}
}

// Failf creates a failed result from a code and a formatted message.
func Failf[T any](code FailureCode, format string, args ...any) Result[T] {
	return Fail[T](&Failure{Code: code, Message: fmt.Sprintf(format, args...)})
}

// IsSuccess returns true if the result holds a payload.
func (r Result[T]) IsSuccess() bool {
	return r.failure == nil
}

// IsFailure returns true if the result holds a failure.
func (r Result[T]) IsFailure() bool {
	return r.failure != nil
}

// Value returns the payload and whether it is present.
func (r Result[T]) Value() (T, bool) {
	return r.value, r.failure == nil
}

// Failure returns the failure, or nil for a successful result.
func (r Result[T]) Failure() *Failure {
	return r.failure
}

// Match applies exactly one of the two functions depending on the variant.
func Match[T, U any](r Result[T], onSuccess func(T) U, onFailure func(*Failure) U) U {
	if r.failure != nil {
		return onFailure(r.failure)
	}

	return onSuccess(r.value)
}

// MapResult transforms a successful result's payload; failures pass through
// unchanged.
func MapResult[T, U any](r Result[T], transform func(T) U) Result[U] {
	if r.failure != nil {
		return Fail[U](r.failure)
	}

	return Ok(transform(r.value))
}
