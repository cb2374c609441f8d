// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package roseq

import "errors"

// Error values reported by views, sets, and sequences.
// All of them mark programming-contract violations; none is transient and
// none is retried or swallowed inside the package.

// ErrReadOnly is returned by every write operation on a read-only
// collection. The write has no effect and never partially executes.
var ErrReadOnly = errors.New("roseq: collection is read-only")

// ErrNilSequence is the panic value of [NewView] when the backing
// sequence is absent.
var ErrNilSequence = errors.New("roseq: nil backing sequence")

// ErrNilDestination is returned by bulk copies given no destination.
var ErrNilDestination = errors.New("roseq: nil copy destination")

// ErrIndexOutOfRange is returned by bulk copies when the start index is
// negative or the destination cannot hold every element. Returned errors
// wrap it with the offending sizes; match with [errors.Is].
var ErrIndexOutOfRange = errors.New("roseq: index out of range")

// ErrIncompatibleDestination is returned by [View.CopyToAny] when the
// destination is not a plain slice or its element type cannot hold the
// view's elements. The element-type test is best-effort: a destination
// that passes it can still fail per element when the view's element type
// is an interface, and that failure reports the same error before any
// element is written.
var ErrIncompatibleDestination = errors.New("roseq: incompatible copy destination")
