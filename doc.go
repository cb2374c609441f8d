// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package roseq provides read-only views over mutable ordered sequences
// in Go.
//
// The core type [View] wraps an existing [Sequence] and exposes every read
// operation of a list-like container while rejecting every write. The view
// borrows the backing sequence; it never copies it and never owns it. Any
// holder of the backing sequence may keep mutating it, and those mutations
// are visible through the view immediately.
//
// # Design Philosophy
//
// roseq provides:
//   - Minimal but complete capability interfaces for sequences, lists, and sets
//   - A single borrowed reference per view, with no caching and no snapshots
//   - Shared per-element-type empty singletons with allocation-free iteration
//
// # Capability Sets
//
// One [View] value satisfies three narrow interfaces at once:
//
//   - [List]: the full typed list surface, reads and writes — every write
//     returns [ErrReadOnly]
//   - [ReadOnlyList]: the typed read surface only
//   - [AnyList]: the loosely-typed surface for code that handles elements
//     as any — writes rejected, incompatible lookups soft-fail
//
// Accept [ReadOnlyList] in your own functions and interfaces when you only
// read; accept [List] when callers may hand you either a mutable sequence
// or a view, and be prepared for [ErrReadOnly] from the writes.
//
// A [View] is itself a [Sequence], so views compose: wrapping a view in
// another view yields the same read surface over the same backing store.
//
// # Core Operations
//
// Construction:
//
//   - [NewView]: Wrap a live sequence — mutations to it stay visible
//   - [Of]: Copy a fixed batch of values into a fresh, detached view
//   - [SetOf]: Deduplicate a batch into a read-only [Set]
//   - [Empty], [EmptySet]: Shared per-element-type empty singletons
//
// Reads:
//
//   - [View.Len], [View.At], [View.Contains], [View.IndexOf]
//   - [View.CopyTo]: Bulk copy with full validation before any write
//   - [View.All]: Restartable live iteration in backing order
//
// # Live Reflection
//
// The view has no storage of its own. Every query reads the backing
// sequence at the moment of the call: after wrapping s in a view, appending
// to s grows the view's Len by one. Views built by [Of] and [SetOf] copy
// their input batch instead, so later changes to the caller's values are
// not observable through them.
//
// If the backing sequence is mutated while a traversal from [View.All] is
// in progress, the traversal behaves however the backing sequence's own
// iteration behaves under mutation. The view neither strengthens nor
// weakens that contract.
//
// # Error Model
//
// Writes through any surface return [ErrReadOnly] and have no effect.
// Bulk copies validate destination and capacity before writing anything,
// so a failed copy leaves the destination untouched. Indexed reads
// delegate bounds checking to the backing sequence; the slice-backed
// implementations panic exactly like a slice index. The one deliberate
// soft failure: [View.ContainsAny] and [View.IndexOfAny] given a value
// that cannot be an element report absence (false, -1) instead of failing.
//
// # Concurrency
//
// The package performs no locking. The backing sequence may be shared;
// serializing access to it is the caller's concern. [View.SyncRoot]
// reports a candidate object for external callers to coordinate on and is
// advisory only — nothing in this package ever acquires it. The empty
// singletons are immutable after construction and safe to share across
// goroutines.
package roseq
