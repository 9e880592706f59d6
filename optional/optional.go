// Package optional holds a value that may be absent.
package optional

import (
	"fmt"

	"github.com/dlshle/minbench/errors"
)

// Optional tracks presence explicitly, so the zero value of T is a valid present value.
type Optional[T any] struct {
	val     T
	present bool
}

func Of[T any](val T) Optional[T] {
	return Optional[T]{
		val:     val,
		present: true,
	}
}

func Empty[T any]() Optional[T] {
	return Optional[T]{}
}

func (o Optional[T]) Get() (T, bool) {
	return o.val, o.present
}

func (o Optional[T]) GetOrError() (T, error) {
	if !o.present {
		return o.val, errors.Error("empty Optional value")
	}
	return o.val, nil
}

func (o Optional[T]) GetOrPanic() T {
	val, err := o.GetOrError()
	if err != nil {
		panic(err)
	}
	return val
}

func (o Optional[T]) IsPresent() bool {
	return o.present
}

func (o Optional[T]) IfPresent(thenFunc func(T)) {
	if !o.present {
		return
	}
	thenFunc(o.val)
}

func (o Optional[T]) Filter(filterFunc func(T) bool) Optional[T] {
	if !o.present || !filterFunc(o.val) {
		return Empty[T]()
	}
	return o
}

func (o Optional[T]) Map(mappingFunc func(val T) T) Optional[T] {
	if !o.present {
		return o
	}
	return Of(mappingFunc(o.val))
}

func (o Optional[T]) OrElse(val T) T {
	if !o.present {
		return val
	}
	return o.val
}

func (o Optional[T]) OrElseGet(getFunc func() T) T {
	if !o.present {
		return getFunc()
	}
	return o.val
}

func (o Optional[T]) String() string {
	if !o.present {
		return "Optional.Empty"
	}
	return fmt.Sprintf("Optional[%v]", o.val)
}
