// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package sharedbuf

import (
	"testing"

	"github.com/terra-gfx/terra/vk"
	"github.com/terra-gfx/terra/internal/memory"
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

func TestNewSharedBufferGPUFailsWithoutDevice(t *testing.T) {
	mem := memory.NewManager(vk.Device(1), vk.NewCommands(), testMemoryProperties(), memory.DefaultConfig())

	_, err := NewSharedBufferGPU(vk.Device(1), vk.NewCommands(), mem, vk.BufferUsageStorageBufferBit, 4096)
	if err == nil {
		t.Fatal("expected an error when the underlying device cannot create a buffer")
	}
}

func TestNewSharedBufferCPUFailsWithoutDevice(t *testing.T) {
	mem := memory.NewManager(vk.Device(1), vk.NewCommands(), testMemoryProperties(), memory.DefaultConfig())

	_, err := NewSharedBufferCPU(vk.Device(1), vk.NewCommands(), mem, vk.BufferUsageUniformBufferBit, 4096)
	if err == nil {
		t.Fatal("expected an error when the underlying device cannot create a buffer")
	}
}

func TestSharedBufferGPUCopyOldBufferNoopWithoutPendingGrowth(t *testing.T) {
	var called bool
	s := &SharedBufferGPU{}
	s.CopyOldBuffer(recorderFunc(func(src, dst vk.Buffer, regions []vk.BufferCopy) { called = true }))
	if called {
		t.Error("CopyOldBuffer should not record a copy when no growth is pending")
	}
}

type recorderFunc func(src, dst vk.Buffer, regions []vk.BufferCopy)

func (f recorderFunc) CopyBuffer(src, dst vk.Buffer, regions []vk.BufferCopy) { f(src, dst, regions) }
