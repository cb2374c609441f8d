// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package roseq

import "iter"

// Capability interfaces. Each is deliberately narrow; one [View] value
// satisfies all of them, so the same view can be handed to typed readers,
// typed writers (whose writes fail), and loosely-typed consumers.

// ReadOnlyList is the typed read surface of a list-like container.
type ReadOnlyList[T any] interface {
	Len() int
	At(i int) T
	Contains(v T) bool
	IndexOf(v T) int
	CopyTo(dst []T, at int) error
	All() iter.Seq[T]
}

// List is the full typed list surface, reads and writes. A mutable
// implementation such as [SliceSequence] performs the writes; a [View]
// returns [ErrReadOnly] from every one of them.
type List[T any] interface {
	ReadOnlyList[T]

	SetAt(i int, v T) error
	Append(v T) error
	Insert(i int, v T) error
	RemoveAt(i int) error
	Remove(v T) error
	Clear() error
}

// AnyList is the loosely-typed list surface, for consumers that handle
// elements as any and cannot name the element type. Lookups given a value
// that cannot be an element soft-fail (false, -1) instead of erroring;
// writes through a read-only implementation return [ErrReadOnly].
type AnyList interface {
	Len() int
	AtAny(i int) any
	SetAny(i int, v any) error
	ContainsAny(v any) bool
	IndexOfAny(v any) int
	CopyToAny(dst any, at int) error
	AllAny() iter.Seq[any]
	SyncRoot() any
}

// ReadOnlySet is the read surface of a set-like container.
type ReadOnlySet[T comparable] interface {
	Len() int
	Contains(v T) bool
	All() iter.Seq[T]
}

var (
	_ Sequence[int]     = (*SliceSequence[int])(nil)
	_ List[int]         = (*SliceSequence[int])(nil)
	_ Sequence[int]     = (*View[int])(nil)
	_ ReadOnlyList[int] = (*View[int])(nil)
	_ List[int]         = (*View[int])(nil)
	_ AnyList           = (*View[int])(nil)
	_ ReadOnlySet[int]  = (*Set[int])(nil)
)
