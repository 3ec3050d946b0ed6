// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package sharedbuf

import "testing"

func TestAllocatorFirstFit(t *testing.T) {
	a := NewAllocator(1024)

	off1, ok := a.Allocate(256)
	if !ok || off1 != 0 {
		t.Fatalf("Allocate(256) = %d, %v; want 0, true", off1, ok)
	}
	off2, ok := a.Allocate(256)
	if !ok || off2 != 256 {
		t.Fatalf("Allocate(256) = %d, %v; want 256, true", off2, ok)
	}
}

func TestAllocatorExhaustion(t *testing.T) {
	a := NewAllocator(512)

	if _, ok := a.Allocate(512); !ok {
		t.Fatal("Allocate(512) should succeed on an empty 512-byte allocator")
	}
	if _, ok := a.Allocate(1); ok {
		t.Fatal("Allocate(1) should fail when the allocator is exhausted")
	}
}

func TestAllocatorFreeCoalescesToSingleRegion(t *testing.T) {
	a := NewAllocator(4096)

	off1, _ := a.Allocate(1024)
	off2, _ := a.Allocate(1024)
	off3, _ := a.Allocate(1024)

	a.Free(off2, 1024)
	a.Free(off1, 1024)
	a.Free(off3, 1024)

	if !a.IsFullyFree() {
		t.Errorf("expected allocator to coalesce back into one free region covering [0, %d)", a.Size())
	}
	if n := a.FreeRegionCount(); n != 1 {
		t.Errorf("FreeRegionCount() = %d, want 1", n)
	}
}

func TestAllocatorGrowAddsFreeRegion(t *testing.T) {
	a := NewAllocator(1024)
	a.Allocate(1024) // fully consumed, zero free regions

	a.Grow(2048)
	if got := a.FreeRegionCount(); got != 1 {
		t.Fatalf("FreeRegionCount() after grow = %d, want 1", got)
	}

	off, ok := a.Allocate(1024)
	if !ok || off != 1024 {
		t.Errorf("Allocate(1024) after grow = %d, %v; want 1024, true", off, ok)
	}
}

// TestAllocatorSharedBufferGrowthScenario mirrors the shared-buffer GPU
// growth walkthrough: allocate 20 KiB, allocate 30 KiB (forces a grow to
// 50 KiB), allocate 50 KiB (forces a grow to 100 KiB), free the 30 KiB
// region, then allocate 20 KiB and 10 KiB without any further growth.
func TestAllocatorSharedBufferGrowthScenario(t *testing.T) {
	const KiB = 1024
	a := NewAllocator(20 * KiB)

	off, ok := a.Allocate(20 * KiB)
	if !ok || off != 0 {
		t.Fatalf("first allocate = %d, %v; want 0, true", off, ok)
	}

	// 30 KiB does not fit in the exhausted 20 KiB buffer: grow to
	// max(20*2, 20+30) = 50 KiB, then satisfy the request.
	if _, ok := a.Allocate(30 * KiB); ok {
		t.Fatal("30 KiB allocate should not fit before growth")
	}
	a.Grow(50 * KiB)
	off30, ok := a.Allocate(30 * KiB)
	if !ok || off30 != 20*KiB {
		t.Fatalf("allocate(30 KiB) after grow = %d, %v; want %d, true", off30, ok, 20*KiB)
	}
	if got := a.Size(); got != 50*KiB {
		t.Fatalf("Size() = %d, want %d", got, 50*KiB)
	}

	// 50 KiB does not fit in the exhausted 50 KiB buffer: grow to
	// max(50*2, 50+50) = 100 KiB.
	if _, ok := a.Allocate(50 * KiB); ok {
		t.Fatal("50 KiB allocate should not fit before second growth")
	}
	a.Grow(100 * KiB)
	off50, ok := a.Allocate(50 * KiB)
	if !ok || off50 != 50*KiB {
		t.Fatalf("allocate(50 KiB) after second grow = %d, %v; want %d, true", off50, ok, 50*KiB)
	}
	if got := a.Size(); got != 100*KiB {
		t.Fatalf("Size() = %d, want %d", got, 100*KiB)
	}

	a.Free(off30, 30*KiB)

	offA, ok := a.Allocate(20 * KiB)
	if !ok || offA != 20*KiB {
		t.Fatalf("allocate(20 KiB) after free = %d, %v; want %d, true", offA, ok, 20*KiB)
	}
	offB, ok := a.Allocate(10 * KiB)
	if !ok || offB != 40*KiB {
		t.Fatalf("allocate(10 KiB) after free = %d, %v; want %d, true", offB, ok, 40*KiB)
	}
	if got := a.Size(); got != 100*KiB {
		t.Errorf("Size() after final allocations = %d, want %d (no further growth)", got, 100*KiB)
	}
}
