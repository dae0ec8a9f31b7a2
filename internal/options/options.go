// Package options implements generic functional options.
//
// Packages declare an alias such as
//
//	type EncodingOption = options.Option[*encodingConfig]
//
// and build option constructors with New (validating) or NoError (plain setters).
package options

import "fmt"

// Option configures a target of type T.
type Option[T any] interface {
	apply(T) error
}

// Func adapts a function to the Option interface.
type Func[T any] struct {
	applyFunc func(T) error
}

func (f *Func[T]) apply(target T) error {
	return f.applyFunc(target)
}

// New creates an option from a function that may reject its input.
func New[T any](fn func(T) error) *Func[T] {
	return &Func[T]{applyFunc: fn}
}

// NoError creates an option from a setter that cannot fail.
func NoError[T any](fn func(T)) *Func[T] {
	return &Func[T]{
		applyFunc: func(target T) error {
			fn(target)
			return nil
		},
	}
}

// Apply applies opts to target in order and stops at the first failure.
// Nil options are skipped.
func Apply[T any](target T, opts ...Option[T]) error {
	for i, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.apply(target); err != nil {
			return fmt.Errorf("option %d: %w", i, err)
		}
	}

	return nil
}
