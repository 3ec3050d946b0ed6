// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package memory

import (
	"errors"
	"testing"

	"github.com/terra-gfx/terra/vk"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	return NewManager(vk.Device(1), vk.NewCommands(), testProperties(), DefaultConfig())
}

func seedPool(t *testing.T, m *Manager, class poolClass, memTypeIndex uint32, size uint64, mapped bool) *pool {
	t.Helper()
	buddy, err := NewBuddy(size, m.config.MinBlockSize)
	if err != nil {
		t.Fatalf("NewBuddy: %v", err)
	}
	p := &pool{memory: vk.DeviceMemory(0xf00d), size: size, memoryTypeIndex: memTypeIndex, buddy: buddy}
	if mapped {
		p.mappedBase = 0x1000
	}

	if class == classCPU {
		p.id = uint16(len(m.cpuPools)) | cpuIDBit
		m.cpuPools = append(m.cpuPools, p)
	} else {
		p.id = uint16(len(m.gpuPools))
		m.gpuPools = append(m.gpuPools, p)
	}
	return p
}

func TestAllocateReusesExistingGPUPool(t *testing.T) {
	m := newTestManager(t)
	seedPool(t, m, classGPU, 0, 64<<10, false)

	req := AllocationRequest{Size: 1024, Alignment: 256, Usage: UsageFastDeviceAccess, MemoryTypeBits: 0b111}
	a, err := m.Allocate(req)
	if err != nil {
		t.Fatalf("Allocate() error = %v", err)
	}
	if !a.Valid {
		t.Fatal("allocation should be valid")
	}
	if a.HostVisible {
		t.Error("GPU allocation should not be host visible")
	}
	if a.GPUOffset%a.Alignment != 0 {
		t.Errorf("GPUOffset %d not aligned to %d", a.GPUOffset, a.Alignment)
	}
	if a.MemoryID != 0 {
		t.Errorf("MemoryID = %d, want 0 (first GPU pool)", a.MemoryID)
	}
	if len(m.gpuPools) != 1 {
		t.Errorf("expected no new pool to be created, got %d pools", len(m.gpuPools))
	}
}

func TestAllocateCPUPoolComputesCPUOffset(t *testing.T) {
	m := newTestManager(t)
	seedPool(t, m, classCPU, 1, 64<<10, true)

	req := AllocationRequest{Size: 1024, Alignment: 256, Usage: UsageUpload, MemoryTypeBits: 0b111}
	a, err := m.Allocate(req)
	if err != nil {
		t.Fatalf("Allocate() error = %v", err)
	}
	if !a.HostVisible {
		t.Fatal("CPU pool allocation should be host visible")
	}
	if a.CPUOffset != 0x1000+uintptr(a.GPUOffset) {
		t.Errorf("CPUOffset = %#x, want mappedBase + gpuOffset", a.CPUOffset)
	}
	if a.MemoryID&cpuIDBit == 0 {
		t.Errorf("MemoryID %#x should carry the CPU discriminant bit", a.MemoryID)
	}
}

func TestAllocateNoSuitableMemoryType(t *testing.T) {
	m := newTestManager(t)

	_, err := m.Allocate(AllocationRequest{Size: 1024, Usage: UsageFastDeviceAccess, MemoryTypeBits: 0})
	if !errors.Is(err, ErrNoSuitableMemoryType) {
		t.Errorf("Allocate() error = %v, want ErrNoSuitableMemoryType", err)
	}
}

func TestAllocateWithoutDeviceFailsCleanly(t *testing.T) {
	m := newTestManager(t)

	// No pool seeded and cmds has no function pointers loaded (as in a test
	// process with no real Vulkan driver): pool growth must fail without
	// panicking.
	_, err := m.Allocate(AllocationRequest{Size: 1024, Usage: UsageFastDeviceAccess, MemoryTypeBits: 0b111})
	if err == nil {
		t.Fatal("expected an error when the device cannot allocate memory")
	}
}

func TestFreeInvalidatesAllocationAndReturnsRegion(t *testing.T) {
	m := newTestManager(t)
	p := seedPool(t, m, classGPU, 0, 64<<10, false)

	req := AllocationRequest{Size: 1024, Alignment: 256, Usage: UsageFastDeviceAccess, MemoryTypeBits: 0b111}
	a, err := m.Allocate(req)
	if err != nil {
		t.Fatalf("Allocate() error = %v", err)
	}

	before := p.buddy.Stats().AllocatedSize
	if err := m.Free(&a); err != nil {
		t.Fatalf("Free() error = %v", err)
	}
	if a.Valid {
		t.Error("Free should clear Valid")
	}
	if p.buddy.Stats().AllocatedSize != before-a.Size {
		t.Errorf("buddy AllocatedSize after free = %d, want %d", p.buddy.Stats().AllocatedSize, before-a.Size)
	}

	if err := m.Free(&a); !errors.Is(err, ErrInvalidAllocation) {
		t.Errorf("double Free() error = %v, want ErrInvalidAllocation", err)
	}
}

func TestPoolByIDDiscriminatesCPUAndGPU(t *testing.T) {
	m := newTestManager(t)
	seedPool(t, m, classGPU, 0, 4096, false)
	seedPool(t, m, classCPU, 1, 4096, true)

	gp, ok := m.poolByID(0)
	if !ok || gp.memoryTypeIndex != 0 {
		t.Errorf("poolByID(0) = %v, %v; want GPU pool 0", gp, ok)
	}

	cp, ok := m.poolByID(cpuIDBit | 0)
	if !ok || cp.memoryTypeIndex != 1 {
		t.Errorf("poolByID(cpuIDBit) = %v, %v; want CPU pool 0", cp, ok)
	}

	if _, ok := m.poolByID(cpuIDBit | 7); ok {
		t.Error("poolByID should fail for an out-of-range CPU index")
	}
}

func TestMemoryReturnsPoolHandle(t *testing.T) {
	m := newTestManager(t)
	p := seedPool(t, m, classGPU, 0, 4096, false)

	mem, ok := m.Memory(p.id)
	if !ok || mem != p.memory {
		t.Errorf("Memory(%d) = %v, %v; want %v, true", p.id, mem, ok, p.memory)
	}

	if _, ok := m.Memory(99); ok {
		t.Error("Memory() should fail for an unknown id")
	}
}
