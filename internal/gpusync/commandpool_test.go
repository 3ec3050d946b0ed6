// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package gpusync

import (
	"testing"

	"github.com/terra-gfx/terra/vk"
)

func TestNewCommandPoolFailsWithoutDevice(t *testing.T) {
	_, err := NewCommandPool(vk.Device(1), vk.NewCommands(), 0, 2)
	if err == nil {
		t.Fatal("expected an error when vkCreateCommandPool has no function pointer loaded")
	}
}

func TestCommandPoolResetFailsWithoutDevice(t *testing.T) {
	p := &CommandPool{device: vk.Device(1), cmds: vk.NewCommands(), handle: vk.CommandPool(1)}
	if err := p.Reset(); err == nil {
		t.Fatal("expected an error when vkResetCommandPool has no function pointer loaded")
	}
}

func TestCommandPoolDestroyIsNoopOnZeroHandle(t *testing.T) {
	p := &CommandPool{}
	p.Destroy()
}

func TestCommandPoolBufferReturnsAllocatedSlot(t *testing.T) {
	cb := &CommandBuffer{handle: vk.CommandBuffer(7)}
	p := &CommandPool{buffers: []*CommandBuffer{cb}}
	if p.Buffer(0) != cb {
		t.Fatal("Buffer(0) did not return the expected command buffer")
	}
}
