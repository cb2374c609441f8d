// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package roseq

import (
	"iter"
	"reflect"
	"sync"
)

// Shared empty singletons. One empty [View] and one empty [Set] exist per
// element type for the life of the process, built on first request and
// immutable afterwards, so every caller can share them instead of
// allocating. A shared empty view behaves exactly like a fresh view over
// a zero-length sequence; only its identity is special.

var (
	emptyViews sync.Map // reflect.Type -> *View[T]
	emptySets  sync.Map // reflect.Type -> *Set[T]
)

// Empty returns the process-wide empty view for element type T.
// Repeated calls return the identical instance.
func Empty[T any]() *View[T] {
	key := reflect.TypeFor[T]()
	if cached, ok := emptyViews.Load(key); ok {
		return cached.(*View[T])
	}
	cached, _ := emptyViews.LoadOrStore(key, &View[T]{seq: emptySequence[T]{}})
	return cached.(*View[T])
}

// EmptySet returns the process-wide empty set for element type T.
// Repeated calls return the identical instance.
func EmptySet[T comparable]() *Set[T] {
	key := reflect.TypeFor[T]()
	if cached, ok := emptySets.Load(key); ok {
		return cached.(*Set[T])
	}
	cached, _ := emptySets.LoadOrStore(key, &Set[T]{})
	return cached.(*Set[T])
}

// emptySequence is the zero-length [Sequence] backing the shared empty
// views. It exists separately from [SliceSequence] because the empty view
// carries no comparable constraint on T.
type emptySequence[T any] struct{}

func (emptySequence[T]) Len() int         { return 0 }
func (emptySequence[T]) Contains(T) bool  { return false }
func (emptySequence[T]) IndexOf(T) int    { return -1 }
func (emptySequence[T]) All() iter.Seq[T] { return emptyAll[T] }

func (emptySequence[T]) At(i int) T {
	_ = []T{}[i] // trigger a slice bounds panic
	var zero T
	return zero
}

func (emptySequence[T]) CopyTo(dst []T, at int) error {
	if dst == nil {
		return ErrNilDestination
	}
	if at < 0 || len(dst)-at < 0 {
		return ErrIndexOutOfRange
	}
	return nil
}
