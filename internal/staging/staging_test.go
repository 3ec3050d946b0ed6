// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package staging

import (
	"testing"

	"github.com/terra-gfx/terra/vk"
	"github.com/terra-gfx/terra/internal/memory"
	"github.com/terra-gfx/terra/internal/sharedbuf"
	"github.com/terra-gfx/terra/internal/thread"
)

func testMemoryProperties() memory.DeviceMemoryProperties {
	return memory.DeviceMemoryProperties{
		MemoryTypes: []vk.MemoryType{
			{PropertyFlags: vk.MemoryPropertyDeviceLocalBit, HeapIndex: 0},
			{PropertyFlags: vk.MemoryPropertyHostVisibleBit | vk.MemoryPropertyHostCoherentBit, HeapIndex: 1},
		},
		MemoryHeaps: []vk.MemoryHeap{
			{Size: 4 << 30, Flags: 0},
			{Size: 8 << 30, Flags: 0},
		},
	}
}

// fakeRecorder is a CopyRecorder that just counts calls, for exercising
// release/acquire dedup logic without a real device.
type fakeRecorder struct {
	copies     int
	imageCopies int
	barriers   []*vk.DependencyInfo
}

func (f *fakeRecorder) CopyBuffer(src, dst vk.Buffer, regions []vk.BufferCopy) { f.copies++ }
func (f *fakeRecorder) CopyBufferToImage(src vk.Buffer, dst vk.Image, dstLayout vk.ImageLayout, regions []vk.BufferImageCopy) {
	f.imageCopies++
}
func (f *fakeRecorder) PipelineBarrier(info *vk.DependencyInfo) {
	f.barriers = append(f.barriers, info)
}

func TestCopyAndClearFailsWithoutDevice(t *testing.T) {
	mem := memory.NewManager(vk.Device(1), vk.NewCommands(), testMemoryProperties(), memory.DefaultConfig())
	m := NewManager(vk.Device(1), vk.NewCommands(), mem)

	temp := sharedbuf.NewTemporaryDataBuffer()
	m.AddBuffer([]byte("hello"), vk.Buffer(5), 0, Target{}, temp)

	rec := &fakeRecorder{}
	err := m.CopyAndClear(rec, temp)
	if err == nil {
		t.Fatal("expected an error when the staging buffer cannot be created")
	}
	if rec.copies != 0 {
		t.Errorf("CopyBuffer should not be recorded when staging buffer creation fails, got %d calls", rec.copies)
	}
}

func TestSetWorkerPoolStoresPool(t *testing.T) {
	mem := memory.NewManager(vk.Device(1), vk.NewCommands(), testMemoryProperties(), memory.DefaultConfig())
	m := NewManager(vk.Device(1), vk.NewCommands(), mem)

	pool := thread.New(2)
	defer pool.Stop()
	m.SetWorkerPool(pool)

	if m.pool != pool {
		t.Fatal("SetWorkerPool did not store the pool")
	}
}

func TestAddBufferHoldsDataInTemp(t *testing.T) {
	mem := memory.NewManager(vk.Device(1), vk.NewCommands(), testMemoryProperties(), memory.DefaultConfig())
	m := NewManager(vk.Device(1), vk.NewCommands(), mem)
	temp := sharedbuf.NewTemporaryDataBuffer()

	m.AddBuffer([]byte("payload"), vk.Buffer(1), 0, Target{}, temp)

	if temp.Len() != 1 {
		t.Fatalf("temp.Len() = %d, want 1", temp.Len())
	}
	buffers, textures := m.PendingCount()
	if buffers != 1 || textures != 0 {
		t.Errorf("PendingCount() = (%d, %d), want (1, 0)", buffers, textures)
	}
}

func TestReleaseOwnershipSkipsNonCrossQueueEntries(t *testing.T) {
	m := NewManager(vk.Device(1), vk.NewCommands(), nil)
	m.pending = []pendingTransfer{
		{handle: 1, target: Target{CrossQueue: false, DstQueue: 2}},
	}

	rec := &fakeRecorder{}
	m.ReleaseOwnership(rec, 0)

	if len(rec.barriers) != 0 {
		t.Errorf("ReleaseOwnership recorded %d barriers, want 0 for a non-cross-queue entry", len(rec.barriers))
	}
}

func TestReleaseOwnershipDedupsSameResourceAndQueue(t *testing.T) {
	m := NewManager(vk.Device(1), vk.NewCommands(), nil)
	target := Target{CrossQueue: true, DstQueue: 3, DstAccess: 0x20, DstStage: 0x400}
	m.pending = []pendingTransfer{
		{handle: 42, target: target},
		{handle: 42, target: target},
		{handle: 43, target: target},
	}

	rec := &fakeRecorder{}
	m.ReleaseOwnership(rec, 0)

	if len(rec.barriers) != 2 {
		t.Fatalf("ReleaseOwnership recorded %d barriers, want 2 (one per distinct resource)", len(rec.barriers))
	}

	// A second call with the same pending list must not emit any more
	// barriers: the (resource, queue) pair has already been released.
	m.ReleaseOwnership(rec, 0)
	if len(rec.barriers) != 2 {
		t.Errorf("second ReleaseOwnership call recorded extra barriers, got %d total, want 2", len(rec.barriers))
	}
}

func TestAcquireOwnershipFiltersByOwnerFamily(t *testing.T) {
	m := NewManager(vk.Device(1), vk.NewCommands(), nil)
	m.pending = []pendingTransfer{
		{handle: 1, target: Target{CrossQueue: true, DstQueue: 5}},
		{handle: 2, target: Target{CrossQueue: true, DstQueue: 6}},
	}

	rec := &fakeRecorder{}
	m.AcquireOwnership(rec, 5, 0)

	if len(rec.barriers) != 1 {
		t.Fatalf("AcquireOwnership recorded %d barriers, want 1 for the matching owner family", len(rec.barriers))
	}

	info := rec.barriers[0]
	if info.BufferMemoryBarrierCount != 1 {
		t.Errorf("DependencyInfo.BufferMemoryBarrierCount = %d, want 1", info.BufferMemoryBarrierCount)
	}
}

func TestResetOwnershipTrackingClearsPendingAndDedupSets(t *testing.T) {
	m := NewManager(vk.Device(1), vk.NewCommands(), nil)
	target := Target{CrossQueue: true, DstQueue: 1}
	m.pending = []pendingTransfer{{handle: 9, target: target}}

	rec := &fakeRecorder{}
	m.ReleaseOwnership(rec, 0)
	if len(m.released) != 1 {
		t.Fatalf("released set has %d entries, want 1", len(m.released))
	}

	m.ResetOwnershipTracking()
	if len(m.pending) != 0 || len(m.released) != 0 || len(m.acquired) != 0 {
		t.Error("ResetOwnershipTracking should clear pending, released and acquired state")
	}
}
