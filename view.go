// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package roseq

import "iter"

// View is a read-only wrapper around a [Sequence]. It borrows the backing
// sequence: construction copies nothing, queries cache nothing, and every
// read reports the backing sequence's state at the moment of the call.
// Whoever holds the backing sequence may keep mutating it through their
// own reference; the view only removes the write path, not the writer.
//
// The zero View is not usable; construct with [NewView], [Of], or [Empty].
type View[T any] struct {
	// seq is the view's only state, set once at construction and never
	// reassigned. The field name is part of the package's persistence
	// contract for external serialization of views; keep it stable.
	seq Sequence[T]
}

// NewView wraps s in a read-only view. The sequence is borrowed, not
// copied: mutations to s through other references stay visible through
// the view. Panics with [ErrNilSequence] when s is nil.
func NewView[T any](s Sequence[T]) *View[T] {
	if s == nil {
		panic(ErrNilSequence)
	}
	return &View[T]{seq: s}
}

// backing returns the borrowed sequence for trusted in-package use; the
// read-only contract holds only while this reference stays unexposed.
func (v *View[T]) backing() Sequence[T] { return v.seq }

// Len returns the backing sequence's current element count.
func (v *View[T]) Len() int { return v.seq.Len() }

// At returns the element at index i. Bounds checking is the backing
// sequence's; the view adds none of its own.
func (v *View[T]) At(i int) T { return v.seq.At(i) }

// Contains reports whether some element equals v under the backing
// sequence's equality.
func (v *View[T]) Contains(value T) bool { return v.seq.Contains(value) }

// IndexOf returns the first index whose element equals value under the
// backing sequence's equality, or -1.
func (v *View[T]) IndexOf(value T) int { return v.seq.IndexOf(value) }

// CopyTo copies every element, in order, into dst starting at index at.
// Per the [Sequence] contract the destination is validated first; a
// failed copy leaves dst untouched.
func (v *View[T]) CopyTo(dst []T, at int) error { return v.seq.CopyTo(dst, at) }

// All returns a traversal of the elements in backing order. Each call
// starts a fresh traversal of live state; behavior when the backing
// sequence is mutated mid-traversal is whatever the backing sequence's
// own iteration defines. A view that is empty at call time returns a
// shared traversal that allocates nothing.
func (v *View[T]) All() iter.Seq[T] {
	if v.seq.Len() == 0 {
		return emptyAll[T]
	}
	return v.seq.All()
}

// SyncRoot returns the backing sequence's synchronization root when it
// exposes one, and the view itself otherwise. The root is advisory — a
// candidate object for external callers to coordinate on. This package
// never acquires it.
func (v *View[T]) SyncRoot() any {
	if r, ok := v.seq.(interface{ SyncRoot() any }); ok {
		return r.SyncRoot()
	}
	return v
}

// emptyAll is the shared empty traversal.
// Named generic function produces a static funcval per type instantiation,
// so returning it allocates nothing.
func emptyAll[T any](func(T) bool) {}
