// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package roseq_test

import (
	"errors"
	"slices"
	"testing"

	"code.hybscloud.com/roseq"
)

func TestOf(t *testing.T) {
	v := roseq.Of(1, 2, 3)
	if got := v.Len(); got != 3 {
		t.Fatalf("Len = %d, want 3", got)
	}
	if got := v.At(1); got != 2 {
		t.Fatalf("At(1) = %d, want 2", got)
	}
	if err := v.Append(4); !errors.Is(err, roseq.ErrReadOnly) {
		t.Fatalf("Append = %v, want ErrReadOnly", err)
	}
}

func TestOfEmptyReturnsSingleton(t *testing.T) {
	if roseq.Of[int]() != roseq.Of[int]() {
		t.Fatal("Of() returned distinct empty views")
	}
	if roseq.Of[int]() != roseq.Empty[int]() {
		t.Fatal("Of() did not return the shared empty singleton")
	}
}

func TestOfCopiesInput(t *testing.T) {
	src := []int{1, 2, 3}
	v := roseq.Of(src...)
	src[1] = 99
	if got := v.At(1); got != 2 {
		t.Fatalf("At(1) = %d after caller slice mutation, want 2", got)
	}
}

// Wrapping borrows; the factory copies. The two construction paths differ
// exactly in whether later backing mutations are observable.
func TestWrapBorrowsFactoryCopies(t *testing.T) {
	seq := roseq.NewSliceSequence(1, 2, 3)

	wrapped := roseq.NewView[int](seq)
	detached := roseq.Of(slices.Collect(seq.All())...)

	if err := seq.Append(4); err != nil {
		t.Fatalf("Append: %v", err)
	}

	if got := wrapped.Len(); got != 4 {
		t.Fatalf("wrapped Len = %d, want 4", got)
	}
	if got := detached.Len(); got != 3 {
		t.Fatalf("detached Len = %d, want 3", got)
	}
}
