// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package sharedbuf implements the shared-buffer allocator: a free-list
// over one physical resource's address space, plus the GPU/CPU shared
// buffers and temporary data buffer built on top of it.
package sharedbuf

import "sort"

// region is a free byte range [Offset, Offset+Size).
type region struct {
	Offset uint64
	Size   uint64
}

// Allocator maintains an offset-ordered list of free regions over
// [0, Size). Allocation is first-fit; deallocation coalesces with
// neighbours. Alignment is the caller's responsibility.
type Allocator struct {
	size uint64
	free []region
}

// NewAllocator creates an allocator over [0, size).
func NewAllocator(size uint64) *Allocator {
	a := &Allocator{size: size}
	if size > 0 {
		a.free = append(a.free, region{Offset: 0, Size: size})
	}
	return a
}

// Size returns the total address space size.
func (a *Allocator) Size() uint64 { return a.size }

// Allocate finds the first free region with enough room, splits the
// remainder back into the free list, and returns its offset.
func (a *Allocator) Allocate(size uint64) (uint64, bool) {
	for i, r := range a.free {
		if r.Size < size {
			continue
		}
		offset := r.Offset
		if r.Size == size {
			a.free = append(a.free[:i], a.free[i+1:]...)
		} else {
			a.free[i] = region{Offset: r.Offset + size, Size: r.Size - size}
		}
		return offset, true
	}
	return 0, false
}

// Free inserts [offset, offset+size) back into the free list in offset
// order and coalesces it with any adjacent free neighbours.
func (a *Allocator) Free(offset, size uint64) {
	idx := sort.Search(len(a.free), func(i int) bool { return a.free[i].Offset >= offset })

	a.free = append(a.free, region{})
	copy(a.free[idx+1:], a.free[idx:])
	a.free[idx] = region{Offset: offset, Size: size}

	// Merge with the next region first (keeps earlier indices stable).
	if idx+1 < len(a.free) && a.free[idx].Offset+a.free[idx].Size == a.free[idx+1].Offset {
		a.free[idx].Size += a.free[idx+1].Size
		a.free = append(a.free[:idx+1], a.free[idx+2:]...)
	}
	if idx > 0 && a.free[idx-1].Offset+a.free[idx-1].Size == a.free[idx].Offset {
		a.free[idx-1].Size += a.free[idx].Size
		a.free = append(a.free[:idx], a.free[idx+1:]...)
	}
}

// Grow extends the address space to newSize, adding the new range as a
// free region (merged with the trailing free region, if any). newSize
// must be >= the current size.
func (a *Allocator) Grow(newSize uint64) {
	if newSize <= a.size {
		return
	}
	added := region{Offset: a.size, Size: newSize - a.size}
	if n := len(a.free); n > 0 && a.free[n-1].Offset+a.free[n-1].Size == added.Offset {
		a.free[n-1].Size += added.Size
	} else {
		a.free = append(a.free, added)
	}
	a.size = newSize
}

// FreeRegionCount returns the number of disjoint free regions, for tests
// and diagnostics.
func (a *Allocator) FreeRegionCount() int { return len(a.free) }

// IsFullyFree reports whether the whole address space coalesced back into
// a single free region covering it.
func (a *Allocator) IsFullyFree() bool {
	return len(a.free) == 1 && a.free[0].Offset == 0 && a.free[0].Size == a.size
}
