// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package roseq

// Rejected writes. The view exposes the whole [List] write surface so it
// can stand in wherever a list is accepted, and fails every write the
// same way: one shared [ErrReadOnly], no side effects, no partial
// execution. Rejection is unconditional — it does not depend on the
// index, the value, or the backing sequence's state.

// SetAt always returns [ErrReadOnly].
func (v *View[T]) SetAt(int, T) error { return ErrReadOnly }

// Append always returns [ErrReadOnly].
func (v *View[T]) Append(T) error { return ErrReadOnly }

// Insert always returns [ErrReadOnly].
func (v *View[T]) Insert(int, T) error { return ErrReadOnly }

// RemoveAt always returns [ErrReadOnly].
func (v *View[T]) RemoveAt(int) error { return ErrReadOnly }

// Remove always returns [ErrReadOnly].
func (v *View[T]) Remove(T) error { return ErrReadOnly }

// Clear always returns [ErrReadOnly].
func (v *View[T]) Clear() error { return ErrReadOnly }

// SetAny always returns [ErrReadOnly], whatever the value's type.
func (v *View[T]) SetAny(int, any) error { return ErrReadOnly }
