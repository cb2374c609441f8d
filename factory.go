// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package roseq

// Factory helpers build read-only collections from a fixed batch of
// values. Unlike [NewView], which borrows a live sequence, the factories
// copy their input: the returned collection never aliases caller storage,
// so nothing outside this package can mutate it afterwards.

// Of returns a read-only view over a copy of values. An empty batch
// returns [Empty]'s shared singleton without allocating.
func Of[T comparable](values ...T) *View[T] {
	if len(values) == 0 {
		return Empty[T]()
	}
	return &View[T]{seq: NewSliceSequence(values...)}
}

// SetOf returns a read-only set of the distinct values, traversed in
// first-occurrence order. An empty batch returns [EmptySet]'s shared
// singleton without allocating.
func SetOf[T comparable](values ...T) *Set[T] {
	if len(values) == 0 {
		return EmptySet[T]()
	}
	elems := make(map[T]struct{}, len(values))
	order := make([]T, 0, len(values))
	for _, v := range values {
		if _, dup := elems[v]; dup {
			continue
		}
		elems[v] = struct{}{}
		order = append(order, v)
	}
	return &Set[T]{elems: elems, order: order}
}
