// Package result provides a two-variant outcome type used by the layout core
// instead of bare (value, error) pairs, so callers can chain and fall back.
package result

import (
	"errors"

	"github.com/rs/zerolog"
)

// Unit is the payload of results that carry no value.
type Unit = struct{}

var errNilError = errors.New("result: nil error")

// Result holds either a success value or an error, never both.
type Result[T any] struct {
	value T
	err   error
}

// Ok wraps a success value.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Err wraps an error. A nil error is replaced so the result stays an err variant.
func Err[T any](err error) Result[T] {
	if err == nil {
		err = errNilError
	}
	return Result[T]{err: err}
}

// Done is the success result for operations without a payload.
func Done() Result[Unit] {
	return Ok(Unit{})
}

// IsOk reports whether r is the success variant.
func (r Result[T]) IsOk() bool {
	return r.err == nil
}

// IsErr reports whether r is the error variant.
func (r Result[T]) IsErr() bool {
	return r.err != nil
}

// Error returns the carried error, or nil for a success result.
func (r Result[T]) Error() error {
	return r.err
}

// Get converts r into the usual Go (value, error) pair.
func (r Result[T]) Get() (T, error) {
	return r.value, r.err
}

// UnwrapOrElse returns the success value or computes a fallback from the error.
func (r Result[T]) UnwrapOrElse(f func(error) T) T {
	if r.err != nil {
		return f(r.err)
	}
	return r.value
}

// UnwrapOrLog returns the success value, or logs the error and returns fallback.
func (r Result[T]) UnwrapOrLog(log *zerolog.Logger, fallback T) T {
	return r.UnwrapOrElse(func(err error) T {
		if log != nil {
			log.Error().Err(err).Msg("unwrapped error result")
		}
		return fallback
	})
}

// Unwrap returns the success value and panics with the error otherwise.
// Only call it where success has already been established.
func (r Result[T]) Unwrap() T {
	if r.err != nil {
		panic(r.err)
	}
	return r.value
}

// Map transforms the success payload; errors pass through untouched.
func Map[T, U any](r Result[T], f func(T) U) Result[U] {
	if r.err != nil {
		return Err[U](r.err)
	}
	return Ok(f(r.value))
}

// From builds a Result from a (value, error) pair.
func From[T any](value T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(value)
}
