// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package roseq

import "iter"

// Set is a read-only hash set, the companion to [View] for deduplicated
// batches. Build one with [SetOf] or share the empty one with [EmptySet].
// Unlike a view, a set owns its storage outright: nothing else holds a
// reference to it, so its contents never change after construction.
type Set[T comparable] struct {
	elems map[T]struct{}
	order []T
}

// Len returns the number of distinct elements.
func (s *Set[T]) Len() int { return len(s.order) }

// Contains reports whether v is an element, under ==.
func (s *Set[T]) Contains(v T) bool {
	_, ok := s.elems[v]
	return ok
}

// All returns a traversal of the elements in first-occurrence order of
// the batch the set was built from. Each call starts fresh; an empty set
// returns the shared allocation-free traversal.
func (s *Set[T]) All() iter.Seq[T] {
	if len(s.order) == 0 {
		return emptyAll[T]
	}
	return func(yield func(T) bool) {
		for _, v := range s.order {
			if !yield(v) {
				return
			}
		}
	}
}

// Add always returns [ErrReadOnly].
func (s *Set[T]) Add(T) error { return ErrReadOnly }

// Remove always returns [ErrReadOnly].
func (s *Set[T]) Remove(T) error { return ErrReadOnly }

// Clear always returns [ErrReadOnly].
func (s *Set[T]) Clear() error { return ErrReadOnly }
