// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package roseq

import (
	"fmt"
	"iter"
	"slices"
)

// Sequence is the capability set a backing store must provide to be
// wrapped by a [View]: an ordered, indexable, iterable container.
//
// Implementations define their own bounds-checking behavior for At and
// their own element equality for Contains and IndexOf; a [View] delegates
// both without adding validation of its own. CopyTo must validate the
// destination and its capacity before writing any element, so that a
// failed copy is never observable as a partial write.
type Sequence[T any] interface {
	// Len returns the current number of elements.
	Len() int

	// At returns the element at index i.
	At(i int) T

	// Contains reports whether some element equals v.
	Contains(v T) bool

	// IndexOf returns the first index whose element equals v, or -1.
	IndexOf(v T) int

	// CopyTo copies every element, in order, into dst starting at index
	// at. It returns [ErrNilDestination] or [ErrIndexOutOfRange] without
	// touching dst when the destination cannot hold the elements.
	CopyTo(dst []T, at int) error

	// All returns a restartable traversal of the elements in order.
	All() iter.Seq[T]
}

// SliceSequence is the slice-backed mutable [Sequence]. It is the store
// the factory helpers copy into, and the reference collaborator for
// wrapping: equality is ==, indexed access panics exactly like a slice
// index, and every mutation is immediately visible through any [View]
// wrapping it.
//
// SliceSequence also satisfies [List], so code written against the list
// capability set can receive either a mutable sequence or a read-only
// view of one.
type SliceSequence[T comparable] struct {
	items []T
}

// NewSliceSequence returns a sequence holding a copy of values.
// The caller's slice is not aliased.
func NewSliceSequence[T comparable](values ...T) *SliceSequence[T] {
	return &SliceSequence[T]{items: append([]T(nil), values...)}
}

// Len returns the number of elements.
func (s *SliceSequence[T]) Len() int { return len(s.items) }

// At returns the element at index i, panicking like a slice index when i
// is out of range.
func (s *SliceSequence[T]) At(i int) T { return s.items[i] }

// Contains reports whether some element equals v under ==.
func (s *SliceSequence[T]) Contains(v T) bool { return slices.Contains(s.items, v) }

// IndexOf returns the first index holding v, or -1.
func (s *SliceSequence[T]) IndexOf(v T) int { return slices.Index(s.items, v) }

// CopyTo copies every element into dst starting at index at.
// The destination is validated before anything is written.
func (s *SliceSequence[T]) CopyTo(dst []T, at int) error {
	if dst == nil {
		return ErrNilDestination
	}
	if at < 0 || len(dst)-at < len(s.items) {
		return fmt.Errorf("%w: need %d at start %d, destination holds %d",
			ErrIndexOutOfRange, len(s.items), at, len(dst))
	}
	copy(dst[at:], s.items)
	return nil
}

// All returns a traversal of the elements in order. Each call starts
// fresh. The traversal reads the sequence live: elements appended before
// the cursor reaches them are yielded, elements removed ahead of it are
// not, and a shrink past the cursor ends the traversal early.
func (s *SliceSequence[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < len(s.items); i++ {
			if !yield(s.items[i]) {
				return
			}
		}
	}
}

// SetAt replaces the element at index i.
func (s *SliceSequence[T]) SetAt(i int, v T) error {
	s.items[i] = v
	return nil
}

// Append adds v after the last element.
func (s *SliceSequence[T]) Append(v T) error {
	s.items = append(s.items, v)
	return nil
}

// Insert places v at index i, shifting later elements up.
// i may equal Len, which appends.
func (s *SliceSequence[T]) Insert(i int, v T) error {
	s.items = slices.Insert(s.items, i, v)
	return nil
}

// RemoveAt deletes the element at index i, shifting later elements down.
func (s *SliceSequence[T]) RemoveAt(i int) error {
	s.items = slices.Delete(s.items, i, i+1)
	return nil
}

// Remove deletes the first element equal to v. Removing an absent value
// is a no-op.
func (s *SliceSequence[T]) Remove(v T) error {
	if i := slices.Index(s.items, v); i >= 0 {
		s.items = slices.Delete(s.items, i, i+1)
	}
	return nil
}

// Clear removes every element.
func (s *SliceSequence[T]) Clear() error {
	s.items = nil
	return nil
}

// SyncRoot returns the sequence itself as the object external callers may
// coordinate on. Nothing in this package acquires it.
func (s *SliceSequence[T]) SyncRoot() any { return s }
