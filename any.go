// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package roseq

import (
	"fmt"
	"iter"
	"reflect"
)

// Loosely-typed surface of [View], satisfying [AnyList]. Lookups given a
// value that cannot possibly be an element report absence instead of
// failing, so untyped consumers can probe any view without knowing T.

// AtAny returns the element at index i as an any value. Bounds checking
// is the backing sequence's, as with [View.At].
func (v *View[T]) AtAny(i int) any { return v.backing().At(i) }

// ContainsAny reports whether some element equals value. A value that is
// not a T — and not a nil standing in for T's nil value — cannot be an
// element, so the lookup reports false rather than failing.
func (v *View[T]) ContainsAny(value any) bool {
	t, ok := asElem[T](value)
	if !ok {
		return false
	}
	return v.backing().Contains(t)
}

// IndexOfAny returns the first index holding value, or -1. As with
// [View.ContainsAny], an incompatible value yields -1 rather than an
// error.
func (v *View[T]) IndexOfAny(value any) int {
	t, ok := asElem[T](value)
	if !ok {
		return -1
	}
	return v.backing().IndexOf(t)
}

// AllAny returns the traversal of [View.All] with elements boxed as any.
func (v *View[T]) AllAny() iter.Seq[any] {
	if v.backing().Len() == 0 {
		return emptyAll[any]
	}
	return func(yield func(any) bool) {
		for e := range v.backing().All() {
			if !yield(e) {
				return
			}
		}
	}
}

// CopyToAny copies every element, in order, into the slice dst starting
// at index at. dst must be a plain slice whose element type can hold T
// values; []any always qualifies. Validation — [ErrNilDestination],
// [ErrIncompatibleDestination] for a non-slice destination or an element
// type failing a bidirectional assignability test against T, and
// [ErrIndexOutOfRange] for a negative start or short destination —
// completes before any element is written. The assignability test is
// best-effort: when T is an interface type a destination can pass it and
// still not hold every element, so those elements are checked in a
// separate pass, again before any write.
func (v *View[T]) CopyToAny(dst any, at int) error {
	if dst == nil {
		return ErrNilDestination
	}
	rd := reflect.ValueOf(dst)
	if rd.Kind() != reflect.Slice {
		return fmt.Errorf("%w: %T is not a slice", ErrIncompatibleDestination, dst)
	}
	elem := rd.Type().Elem()
	et := reflect.TypeFor[T]()
	if !et.AssignableTo(elem) && !elem.AssignableTo(et) {
		return fmt.Errorf("%w: cannot hold %s elements in []%s",
			ErrIncompatibleDestination, et, elem)
	}
	seq := v.backing()
	n := seq.Len()
	if at < 0 || rd.Len()-at < n {
		return fmt.Errorf("%w: need %d at start %d, destination holds %d",
			ErrIndexOutOfRange, n, at, rd.Len())
	}
	if !et.AssignableTo(elem) {
		i := 0
		for e := range seq.All() {
			if !assignableTo(e, elem) {
				return fmt.Errorf("%w: element %d is %T, destination holds %s",
					ErrIncompatibleDestination, i, e, elem)
			}
			i++
		}
	}
	i := at
	for e := range seq.All() {
		re := reflect.ValueOf(e)
		if !re.IsValid() {
			re = reflect.Zero(elem)
		}
		rd.Index(i).Set(re)
		i++
	}
	return nil
}

// asElem converts value to an element of type T. A nil value converts to
// T's zero value when T can be nil (pointer, interface, map, slice,
// channel, function, or unsafe pointer); any other non-T value does not
// convert.
func asElem[T any](value any) (T, bool) {
	if value == nil {
		var zero T
		return zero, nilable[T]()
	}
	t, ok := value.(T)
	return t, ok
}

// nilable reports whether T's values include nil.
func nilable[T any]() bool {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map,
		reflect.Slice, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return true
	}
	return false
}

// assignableTo reports whether the boxed value e can be stored in a
// destination of type elem.
func assignableTo(e any, elem reflect.Type) bool {
	if e == nil {
		switch elem.Kind() {
		case reflect.Pointer, reflect.Interface, reflect.Map,
			reflect.Slice, reflect.Chan, reflect.Func, reflect.UnsafePointer:
			return true
		}
		return false
	}
	return reflect.TypeOf(e).AssignableTo(elem)
}
