package anyof

import "fmt"

// Option holds a value of type T that may be absent. It is the canonical
// representation of a slot and the building block of Opt2.
type Option[T any] struct {
	value   T
	defined bool
}

func Some[T any](v T) Option[T] {
	return Option[T]{value: v, defined: true}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

func (o Option[T]) IsDefined() bool {
	return o.defined
}

func (o Option[T]) IsEmpty() bool {
	return !o.defined
}

// Get returns the value. It panics when the option is empty; callers that
// have not established presence should use GetOrElse or GetOrZero instead.
func (o Option[T]) Get() T {
	if !o.defined {
		panic("anyof: Get on empty Option")
	}
	return o.value
}

func (o Option[T]) GetOrElse(def T) T {
	if o.defined {
		return o.value
	}
	return def
}

func (o Option[T]) GetOrFunc(f func() T) T {
	if o.defined {
		return o.value
	}
	return f()
}

func (o Option[T]) GetOrZero() T {
	if o.defined {
		return o.value
	}
	var zero T
	return zero
}

func (o Option[T]) String() string {
	if !o.defined {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}

// MapOption and AndThen are package functions because Go methods cannot
// introduce type parameters.

func MapOption[T, U any](o Option[T], f func(T) U) Option[U] {
	if o.IsEmpty() {
		return None[U]()
	}
	return Some(f(o.value))
}

func AndThen[T, U any](o Option[T], f func(T) Option[U]) Option[U] {
	if o.IsEmpty() {
		return None[U]()
	}
	return f(o.value)
}
