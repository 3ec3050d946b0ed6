// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package resource

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

func TestNewBufferFailsWithoutDevice(t *testing.T) {
	mem := memory.NewManager(vk.Device(1), vk.NewCommands(), testMemoryProperties(), memory.DefaultConfig())

	_, err := NewBuffer(vk.Device(1), vk.NewCommands(), mem, 1024, vk.BufferUsageStorageBufferBit, memory.UsageFastDeviceAccess)
	if err == nil {
		t.Fatal("expected an error when vkCreateBuffer has no function pointer loaded")
	}
}

func TestNewTextureFailsWithoutDevice(t *testing.T) {
	mem := memory.NewManager(vk.Device(1), vk.NewCommands(), testMemoryProperties(), memory.DefaultConfig())

	_, err := NewTexture(vk.Device(1), vk.NewCommands(), mem, vk.Extent3D{Width: 256, Height: 256, Depth: 1}, vk.Format(37), vk.ImageUsageSampledBit, 1, 0)
	if err == nil {
		t.Fatal("expected an error when vkCreateImage has no function pointer loaded")
	}
}

func TestBufferDestroyNilCmdsIsNoop(t *testing.T) {
	b := &Buffer{handle: vk.Buffer(42), cmds: nil}
	b.Destroy() // should not panic
	if b.handle != vk.Buffer(42) {
		t.Error("handle should remain unchanged after Destroy with nil cmds")
	}
}

func TestTextureDestroyExternalIsNoop(t *testing.T) {
	tex := WrapExternal(vk.Image(7), vk.Extent3D{Width: 800, Height: 600, Depth: 1}, vk.Format(44))
	if !tex.IsExternal() {
		t.Fatal("WrapExternal should produce an external texture")
	}
	tex.Destroy() // should not panic and not touch cmds (nil)
	if tex.Handle() != vk.Image(7) {
		t.Error("handle should remain unchanged after Destroy on an external texture")
	}
}

func TestImageViewDestroyNilCmdsIsNoop(t *testing.T) {
	v := &ImageView{handle: vk.ImageView(9), cmds: nil}
	v.Destroy() // should not panic
}

func TestSamplerDestroyNilCmdsIsNoop(t *testing.T) {
	s := &Sampler{handle: vk.Sampler(3), cmds: nil}
	s.Destroy() // should not panic
}

func TestBufferHostPointerNilWhenNotHostVisible(t *testing.T) {
	b := &Buffer{}
	if ptr := b.HostPointer(); ptr != nil {
		t.Errorf("HostPointer() = %v, want nil for a non-host-visible allocation", ptr)
	}
}
