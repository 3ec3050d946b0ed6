// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package external

import (
	"testing"

	"github.com/terra-gfx/terra/vk"
	"github.com/terra-gfx/terra/internal/memory"
)

func testMemoryManager() *memory.Manager {
	props := memory.DeviceMemoryProperties{
		MemoryTypes: []vk.MemoryType{
			{PropertyFlags: vk.MemoryPropertyDeviceLocalBit, HeapIndex: 0},
			{PropertyFlags: vk.MemoryPropertyHostVisibleBit | vk.MemoryPropertyHostCoherentBit, HeapIndex: 1},
		},
		MemoryHeaps: []vk.MemoryHeap{
			{Size: 4 << 30, Flags: 0},
			{Size: 8 << 30, Flags: 0},
		},
	}
	return memory.NewManager(vk.Device(1), vk.NewCommands(), props, memory.DefaultConfig())
}

func TestCreateExternalBufferUnknownType(t *testing.T) {
	f := NewFactory(vk.Device(1), vk.NewCommands(), testMemoryManager())
	if _, err := f.CreateExternalBuffer(BufferType(99), 256); err == nil {
		t.Fatal("expected an error for an unknown buffer type")
	}
}

func TestCreateExternalBufferFailsWithoutDevice(t *testing.T) {
	f := NewFactory(vk.Device(1), vk.NewCommands(), testMemoryManager())
	if _, err := f.CreateExternalBuffer(GPUOnly, 256); err == nil {
		t.Fatal("expected an error when the underlying device cannot create a buffer")
	}
}

func TestTextureTypeAttachmentUsageAndAspect(t *testing.T) {
	tests := []struct {
		typ        TextureType
		wantUsage  vk.ImageUsageFlags
		wantAspect vk.ImageAspectFlags
	}{
		{RenderTarget, vk.ImageUsageColorAttachmentBit, vk.ImageAspectColorBit},
		{Depth, vk.ImageUsageDepthStencilAttachmentBit, vk.ImageAspectDepthBit},
		{Stencil, vk.ImageUsageDepthStencilAttachmentBit, vk.ImageAspectStencilBit},
	}
	for _, tt := range tests {
		usage, aspect := tt.typ.attachmentUsageAndAspect()
		if usage != tt.wantUsage || aspect != tt.wantAspect {
			t.Errorf("attachmentUsageAndAspect(%d) = (%d, %d), want (%d, %d)", tt.typ, usage, aspect, tt.wantUsage, tt.wantAspect)
		}
	}
}

func TestTextureFlagsToUsage(t *testing.T) {
	got := (CopySrc | CopyDst | SampleTexture).toUsage()
	want := vk.ImageUsageTransferSrcBit | vk.ImageUsageTransferDstBit | vk.ImageUsageSampledBit
	if got != want {
		t.Errorf("toUsage() = %#x, want %#x", got, want)
	}
}

func TestTransitionStateUnknownTexture(t *testing.T) {
	f := NewFactory(vk.Device(1), vk.NewCommands(), testMemoryManager())
	if _, ok := f.TransitionState(0, 0, vk.ImageLayoutGeneral, 0); ok {
		t.Error("transition_state on an empty factory reported ok, want false")
	}
}

func TestRemoveExternalBufferIsIdempotent(t *testing.T) {
	f := NewFactory(vk.Device(1), vk.NewCommands(), testMemoryManager())
	// No buffer exists at index 0 yet; removing it must not panic.
	f.RemoveExternalBuffer(0)
	f.RemoveExternalTexture(0)
}
