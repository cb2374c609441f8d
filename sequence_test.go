// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package roseq_test

import (
	"errors"
	"iter"
	"slices"
	"testing"

	"code.hybscloud.com/roseq"
)

// bareSequence is a minimal Sequence[int] with no SyncRoot of its own.
type bareSequence struct {
	items []int
}

func (s bareSequence) Len() int               { return len(s.items) }
func (s bareSequence) At(i int) int           { return s.items[i] }
func (s bareSequence) Contains(v int) bool    { return slices.Contains(s.items, v) }
func (s bareSequence) IndexOf(v int) int      { return slices.Index(s.items, v) }
func (s bareSequence) All() iter.Seq[int]     { return slices.Values(s.items) }
func (s bareSequence) CopyTo(dst []int, at int) error {
	if dst == nil {
		return roseq.ErrNilDestination
	}
	if at < 0 || len(dst)-at < len(s.items) {
		return roseq.ErrIndexOutOfRange
	}
	copy(dst[at:], s.items)
	return nil
}

func TestSliceSequenceCopiesInput(t *testing.T) {
	src := []int{1, 2, 3}
	seq := roseq.NewSliceSequence(src...)
	src[0] = 99
	if got := seq.At(0); got != 1 {
		t.Fatalf("At(0) = %d after caller slice mutation, want 1", got)
	}
}

func TestSliceSequenceReads(t *testing.T) {
	seq := roseq.NewSliceSequence("x", "y", "x")
	if got := seq.Len(); got != 3 {
		t.Fatalf("Len = %d, want 3", got)
	}
	if got := seq.IndexOf("x"); got != 0 {
		t.Fatalf("IndexOf(x) = %d, want first occurrence 0", got)
	}
	if seq.Contains("z") {
		t.Fatal("Contains(z) = true, want false")
	}
}

func TestSliceSequenceMutators(t *testing.T) {
	seq := roseq.NewSliceSequence(1, 2, 3)

	if err := seq.Insert(1, 9); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if got := slices.Collect(seq.All()); !slices.Equal(got, []int{1, 9, 2, 3}) {
		t.Fatalf("after Insert: %v", got)
	}

	if err := seq.RemoveAt(0); err != nil {
		t.Fatalf("RemoveAt: %v", err)
	}
	if got := slices.Collect(seq.All()); !slices.Equal(got, []int{9, 2, 3}) {
		t.Fatalf("after RemoveAt: %v", got)
	}

	if err := seq.Remove(2); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if got := slices.Collect(seq.All()); !slices.Equal(got, []int{9, 3}) {
		t.Fatalf("after Remove: %v", got)
	}

	// Removing an absent value is a no-op.
	if err := seq.Remove(42); err != nil {
		t.Fatalf("Remove(absent): %v", err)
	}
	if got := seq.Len(); got != 2 {
		t.Fatalf("Len after Remove(absent) = %d, want 2", got)
	}

	if err := seq.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if got := seq.Len(); got != 0 {
		t.Fatalf("Len after Clear = %d, want 0", got)
	}
}

func TestSliceSequenceCopyToValidatesFirst(t *testing.T) {
	seq := roseq.NewSliceSequence(1, 2, 3)
	dst := []int{7, 7}
	if err := seq.CopyTo(dst, 0); !errors.Is(err, roseq.ErrIndexOutOfRange) {
		t.Fatalf("CopyTo short = %v, want ErrIndexOutOfRange", err)
	}
	if !slices.Equal(dst, []int{7, 7}) {
		t.Fatalf("failed copy modified destination: %v", dst)
	}
}

func TestSliceSequenceSatisfiesList(t *testing.T) {
	var l roseq.List[int] = roseq.NewSliceSequence(1)
	if err := l.Append(2); err != nil {
		t.Fatalf("Append through List: %v", err)
	}
	if got := l.Len(); got != 2 {
		t.Fatalf("Len = %d, want 2", got)
	}
}
