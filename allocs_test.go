// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package roseq_test

import (
	"code.hybscloud.com/roseq"
	"testing"
)

func TestEmptyAllocations(t *testing.T) {
	// Prime the per-type singletons; only the first request may allocate.
	_ = roseq.Empty[int]()
	_ = roseq.EmptySet[int]()

	allocs := testing.AllocsPerRun(100, func() {
		_ = roseq.Empty[int]()
	})
	if allocs > 0 {
		t.Errorf("Empty[int] allocs = %v; want 0", allocs)
	}

	allocs = testing.AllocsPerRun(100, func() {
		_ = roseq.Of[int]()
	})
	if allocs > 0 {
		t.Errorf("Of() allocs = %v; want 0", allocs)
	}

	allocs = testing.AllocsPerRun(100, func() {
		_ = roseq.SetOf[int]()
	})
	if allocs > 0 {
		t.Errorf("SetOf() allocs = %v; want 0", allocs)
	}
}

func TestEmptyTraversalAllocations(t *testing.T) {
	e := roseq.Empty[int]()
	allocs := testing.AllocsPerRun(100, func() {
		for range e.All() {
		}
	})
	if allocs > 0 {
		t.Errorf("traversal of empty view allocs = %v; want 0", allocs)
	}
}

func TestReadAllocations(t *testing.T) {
	v := roseq.Of(1, 2, 3)
	allocs := testing.AllocsPerRun(100, func() {
		_ = v.Len()
		_ = v.At(1)
		_ = v.Contains(2)
		_ = v.IndexOf(3)
	})
	if allocs > 0 {
		t.Errorf("typed reads allocs = %v; want 0", allocs)
	}
}
