// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package gpusync

import (
	"testing"

	"github.com/terra-gfx/terra/vk"
)

func newTestCommandBuffer() *CommandBuffer {
	return &CommandBuffer{handle: vk.CommandBuffer(1), device: vk.Device(1), cmds: vk.NewCommands()}
}

func TestCommandBufferBeginFailsWithoutDevice(t *testing.T) {
	cb := newTestCommandBuffer()
	if err := cb.Begin(vk.CommandBufferUsageOneTimeSubmitBit); err == nil {
		t.Fatal("expected an error when vkBeginCommandBuffer has no function pointer loaded")
	}
}

func TestCommandBufferEndFailsWithoutDevice(t *testing.T) {
	cb := newTestCommandBuffer()
	if err := cb.End(); err == nil {
		t.Fatal("expected an error when vkEndCommandBuffer has no function pointer loaded")
	}
}

func TestCommandBufferResetFailsWithoutDevice(t *testing.T) {
	cb := newTestCommandBuffer()
	if err := cb.Reset(); err == nil {
		t.Fatal("expected an error when vkResetCommandBuffer has no function pointer loaded")
	}
}

func TestCommandBufferCopyBufferNoopsOnEmptyRegions(t *testing.T) {
	cb := newTestCommandBuffer()
	cb.CopyBuffer(vk.Buffer(1), vk.Buffer(2), nil)
}

func TestCommandBufferCopyBufferToImageNoopsOnEmptyRegions(t *testing.T) {
	cb := newTestCommandBuffer()
	cb.CopyBufferToImage(vk.Buffer(1), vk.Image(2), vk.ImageLayoutTransferDstOptimal, nil)
}

func TestCommandBufferPipelineBarrierDoesNotPanicWithoutDevice(t *testing.T) {
	cb := newTestCommandBuffer()
	cb.PipelineBarrier(&vk.DependencyInfo{SType: vk.StructureTypeDependencyInfo})
}

func TestCommandBufferHandleReturnsUnderlyingHandle(t *testing.T) {
	cb := newTestCommandBuffer()
	if cb.Handle() != vk.CommandBuffer(1) {
		t.Fatal("Handle() did not return the wrapped VkCommandBuffer")
	}
}
