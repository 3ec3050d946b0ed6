// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package memory

import (
	"errors"
	"testing"
)

func TestNewBuddy(t *testing.T) {
	tests := []struct {
		name         string
		totalSize    uint64
		minBlockSize uint64
		wantErr      bool
	}{
		{"valid 1MB with 256B min", 1 << 20, 256, false},
		{"valid 256MB with 4KB min", 256 << 20, 4096, false},
		{"valid equal sizes", 4096, 4096, false},
		{"invalid zero total", 0, 256, true},
		{"invalid zero min", 1 << 20, 0, true},
		{"invalid non-power-of-2 total", 1000, 256, true},
		{"invalid non-power-of-2 min", 1 << 20, 300, true},
		{"invalid min > total", 256, 4096, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewBuddy(tt.totalSize, tt.minBlockSize)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewBuddy() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if err == nil && b == nil {
				t.Error("NewBuddy() returned nil allocator without error")
			}
		})
	}
}

func TestBuddyAlloc(t *testing.T) {
	b, err := NewBuddy(1<<20, 256)
	if err != nil {
		t.Fatalf("NewBuddy failed: %v", err)
	}

	tests := []struct {
		name     string
		size     uint64
		wantSize uint64
		wantErr  error
	}{
		{"min size", 1, 256, nil},
		{"exact min", 256, 256, nil},
		{"between powers", 300, 512, nil},
		{"exact power", 512, 512, nil},
		{"1KB", 1024, 1024, nil},
		{"zero size", 0, 0, ErrInvalidSize},
		{"too large", 2 << 20, 0, ErrInvalidSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			block, err := b.Alloc(tt.size, 0)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Alloc(%d) error = %v, wantErr %v", tt.size, err, tt.wantErr)
				return
			}
			if err == nil {
				if block.Size != tt.wantSize {
					t.Errorf("Alloc(%d) size = %d, want %d", tt.size, block.Size, tt.wantSize)
				}
				if err := b.Free(block); err != nil {
					t.Errorf("Free failed: %v", err)
				}
			}
		})
	}
}

// TestBuddyBoundaryAlignedOffsets covers the three-257B/align-256 scenario
// from spec.md §8.1: min block 256B forces each 257B request up to 512B
// (max(257,256) rounded to the next power of 2), so the first three
// allocations land at 0, 512, 1024.
func TestBuddyBoundaryAlignedOffsets(t *testing.T) {
	b, err := NewBuddy(1<<20, 256)
	if err != nil {
		t.Fatalf("NewBuddy failed: %v", err)
	}

	wantOffsets := []uint64{0, 512, 1024}
	for i, want := range wantOffsets {
		block, err := b.Alloc(257, 256)
		if err != nil {
			t.Fatalf("Alloc %d failed: %v", i, err)
		}
		if block.Offset != want {
			t.Errorf("block %d offset = %d, want %d", i, block.Offset, want)
		}
		if block.Size != 512 {
			t.Errorf("block %d size = %d, want 512", i, block.Size)
		}
	}
}

// TestBuddyAllocAlignmentWidensSize checks that a small size with a large
// alignment request is folded to max(size, alignment) before rounding,
// per spec.md §4.1's allocate(size, alignment) signature.
func TestBuddyAllocAlignmentWidensSize(t *testing.T) {
	b, err := NewBuddy(1<<20, 256)
	if err != nil {
		t.Fatalf("NewBuddy failed: %v", err)
	}

	block, err := b.Alloc(64, 1024)
	if err != nil {
		t.Fatalf("Alloc failed: %v", err)
	}
	if block.Size != 1024 {
		t.Errorf("block size = %d, want 1024 (alignment should widen size)", block.Size)
	}
	if block.Offset%1024 != 0 {
		t.Errorf("block offset %d not aligned to 1024", block.Offset)
	}
}

func TestBuddyAllocMultiple(t *testing.T) {
	b, err := NewBuddy(1<<20, 256)
	if err != nil {
		t.Fatalf("NewBuddy failed: %v", err)
	}

	blocks := make([]Block, 0)
	for i := 0; i < 100; i++ {
		block, err := b.Alloc(1024, 0)
		if err != nil {
			t.Fatalf("Alloc %d failed: %v", i, err)
		}
		blocks = append(blocks, block)
	}

	stats := b.Stats()
	if stats.AllocationCount != 100 {
		t.Errorf("AllocationCount = %d, want 100", stats.AllocationCount)
	}
	if stats.AllocatedSize != 100*1024 {
		t.Errorf("AllocatedSize = %d, want %d", stats.AllocatedSize, 100*1024)
	}

	for _, block := range blocks {
		if err := b.Free(block); err != nil {
			t.Errorf("Free failed: %v", err)
		}
	}

	stats = b.Stats()
	if stats.AllocationCount != 0 {
		t.Errorf("AllocationCount after free = %d, want 0", stats.AllocationCount)
	}
	if stats.AllocatedSize != 0 {
		t.Errorf("AllocatedSize after free = %d, want 0", stats.AllocatedSize)
	}
}

func TestBuddyAllocUntilFull(t *testing.T) {
	b, err := NewBuddy(4096, 256)
	if err != nil {
		t.Fatalf("NewBuddy failed: %v", err)
	}

	blocks := make([]Block, 0)
	for {
		block, err := b.Alloc(256, 0)
		if errors.Is(err, ErrOutOfMemory) {
			break
		}
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		blocks = append(blocks, block)
	}

	if len(blocks) != 16 {
		t.Errorf("Allocated %d blocks, want 16", len(blocks))
	}

	if err := b.Free(blocks[0]); err != nil {
		t.Fatalf("Free failed: %v", err)
	}
	blocks = blocks[1:]

	block, err := b.Alloc(256, 0)
	if err != nil {
		t.Errorf("Alloc after free failed: %v", err)
	} else {
		blocks = append(blocks, block)
	}

	for _, blk := range blocks {
		_ = b.Free(blk)
	}
}

func TestBuddyFree(t *testing.T) {
	b, err := NewBuddy(1<<20, 256)
	if err != nil {
		t.Fatalf("NewBuddy failed: %v", err)
	}

	block, err := b.Alloc(1024, 0)
	if err != nil {
		t.Fatalf("Alloc failed: %v", err)
	}

	if err := b.Free(block); err != nil {
		t.Errorf("Free() error = %v", err)
	}

	if err := b.Free(block); !errors.Is(err, ErrDoubleFree) {
		t.Errorf("Double Free() error = %v, want ErrDoubleFree", err)
	}
}

func TestBuddyMerging(t *testing.T) {
	b, err := NewBuddy(4096, 256)
	if err != nil {
		t.Fatalf("NewBuddy failed: %v", err)
	}

	block1, err := b.Alloc(2048, 0)
	if err != nil {
		t.Fatalf("Alloc 1 failed: %v", err)
	}
	block2, err := b.Alloc(2048, 0)
	if err != nil {
		t.Fatalf("Alloc 2 failed: %v", err)
	}

	_, err = b.Alloc(256, 0)
	if !errors.Is(err, ErrOutOfMemory) {
		t.Errorf("Expected ErrOutOfMemory, got %v", err)
	}

	if err := b.Free(block1); err != nil {
		t.Fatalf("Free 1 failed: %v", err)
	}
	if err := b.Free(block2); err != nil {
		t.Fatalf("Free 2 failed: %v", err)
	}

	bigBlock, err := b.Alloc(4096, 0)
	if err != nil {
		t.Errorf("Alloc full block failed: %v", err)
	}
	if bigBlock.Size != 4096 {
		t.Errorf("Big block size = %d, want 4096", bigBlock.Size)
	}

	stats := b.Stats()
	if stats.MergeCount == 0 {
		t.Error("Expected merges to occur")
	}
}

func TestBuddyAllocAlignment(t *testing.T) {
	b, err := NewBuddy(1<<20, 256)
	if err != nil {
		t.Fatalf("NewBuddy failed: %v", err)
	}

	sizes := []uint64{256, 512, 1024, 2048, 4096, 8192}
	for _, size := range sizes {
		block, err := b.Alloc(size, 0)
		if err != nil {
			t.Fatalf("Alloc(%d) failed: %v", size, err)
		}

		if block.Offset%block.Size != 0 {
			t.Errorf("Block offset %d not aligned to size %d", block.Offset, block.Size)
		}

		_ = b.Free(block)
	}
}

func TestBuddyNoOverlap(t *testing.T) {
	b, err := NewBuddy(1<<16, 256)
	if err != nil {
		t.Fatalf("NewBuddy failed: %v", err)
	}

	blocks := make([]Block, 0)
	for i := 0; i < 50; i++ {
		block, err := b.Alloc(1024, 0)
		if errors.Is(err, ErrOutOfMemory) {
			break
		}
		if err != nil {
			t.Fatalf("Alloc failed: %v", err)
		}
		blocks = append(blocks, block)
	}

	for i := 0; i < len(blocks); i++ {
		for j := i + 1; j < len(blocks); j++ {
			a := blocks[i]
			bb := blocks[j]

			aEnd := a.Offset + a.Size
			bEnd := bb.Offset + bb.Size

			if a.Offset < bEnd && bb.Offset < aEnd {
				t.Errorf("Blocks overlap: [%d-%d) and [%d-%d)", a.Offset, aEnd, bb.Offset, bEnd)
			}
		}
	}

	for _, blk := range blocks {
		_ = b.Free(blk)
	}
}

func TestAvailableSize(t *testing.T) {
	b, err := NewBuddy(4096, 256)
	if err != nil {
		t.Fatalf("NewBuddy failed: %v", err)
	}

	if got := b.AvailableSize(); got != 4096 {
		t.Errorf("AvailableSize() = %d, want 4096", got)
	}

	block, err := b.Alloc(1024, 0)
	if err != nil {
		t.Fatalf("Alloc failed: %v", err)
	}
	if got := b.AvailableSize(); got != 4096-1024 {
		t.Errorf("AvailableSize() after alloc = %d, want %d", got, 4096-1024)
	}

	_ = b.Free(block)
	if got := b.AvailableSize(); got != 4096 {
		t.Errorf("AvailableSize() after free = %d, want 4096", got)
	}
}

func BenchmarkBuddyAlloc(b *testing.B) {
	allocator, err := NewBuddy(256<<20, 256)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		block, err := allocator.Alloc(4096, 0)
		if err != nil {
			allocator.Reset()
			block, _ = allocator.Alloc(4096, 0)
		}
		_ = allocator.Free(block)
	}
}

func TestIsPowerOfTwo(t *testing.T) {
	tests := []struct {
		n    uint64
		want bool
	}{
		{0, false}, {1, true}, {2, true}, {3, false}, {4, true},
		{5, false}, {256, true}, {1000, false}, {1 << 20, true},
	}

	for _, tt := range tests {
		if got := isPowerOfTwo(tt.n); got != tt.want {
			t.Errorf("isPowerOfTwo(%d) = %v, want %v", tt.n, got, tt.want)
		}
	}
}

func TestNextPowerOfTwo(t *testing.T) {
	tests := []struct {
		n    uint64
		want uint64
	}{
		{0, 1}, {1, 1}, {2, 2}, {3, 4}, {4, 4}, {5, 8},
		{100, 128}, {256, 256}, {257, 512},
	}

	for _, tt := range tests {
		if got := nextPowerOfTwo(tt.n); got != tt.want {
			t.Errorf("nextPowerOfTwo(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestLog2(t *testing.T) {
	tests := []struct {
		n    uint64
		want int
	}{
		{1, 0}, {2, 1}, {4, 2}, {8, 3}, {16, 4}, {256, 8}, {1024, 10},
	}

	for _, tt := range tests {
		if got := log2(tt.n); got != tt.want {
			t.Errorf("log2(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}
