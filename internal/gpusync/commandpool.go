// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package gpusync

import "github.com/terra-gfx/terra/vk"

// CommandPool owns one VkCommandPool and the primary CommandBuffers
// allocated from it. A Queue keeps one CommandPool per in-flight
// frame so resetting frame i's pool never races the GPU's use of frame
// i-1's buffers.
type CommandPool struct {
	device vk.Device
	cmds   *vk.Commands

	handle  vk.CommandPool
	buffers []*CommandBuffer
}

// NewCommandPool creates a command pool for queueFamilyIndex and
// allocates count primary command buffers from it.
func NewCommandPool(device vk.Device, cmds *vk.Commands, queueFamilyIndex uint32, count uint32) (*CommandPool, error) {
	info := vk.CommandPoolCreateInfo{
		SType:            vk.StructureTypeCommandPoolCreateInfo,
		Flags:            vk.CommandPoolCreateResetCommandBufferBit,
		QueueFamilyIndex: queueFamilyIndex,
	}

	var handle vk.CommandPool
	if result := cmds.CreateCommandPool(device, &info, nil, &handle); result != vk.Success {
		return nil, resultError("vkCreateCommandPool", result)
	}

	p := &CommandPool{device: device, cmds: cmds, handle: handle}
	if count == 0 {
		return p, nil
	}

	raw := make([]vk.CommandBuffer, count)
	allocInfo := vk.CommandBufferAllocateInfo{
		SType:              vk.StructureTypeCommandBufferAllocateInfo,
		CommandPool:        handle,
		Level:              vk.CommandBufferLevelPrimary,
		CommandBufferCount: count,
	}
	if result := cmds.AllocateCommandBuffers(device, &allocInfo, &raw[0]); result != vk.Success {
		cmds.DestroyCommandPool(device, handle, nil)
		return nil, resultError("vkAllocateCommandBuffers", result)
	}

	p.buffers = make([]*CommandBuffer, count)
	for i, h := range raw {
		p.buffers[i] = &CommandBuffer{handle: h, device: device, cmds: cmds}
	}
	return p, nil
}

// Buffer returns the i'th command buffer allocated from this pool.
func (p *CommandPool) Buffer(i int) *CommandBuffer { return p.buffers[i] }

// Reset recycles every command buffer allocated from this pool for
// re-recording, without returning the pool's backing memory to the
// driver.
func (p *CommandPool) Reset() error {
	if result := p.cmds.ResetCommandPool(p.device, p.handle, 0); result != vk.Success {
		return resultError("vkResetCommandPool", result)
	}
	return nil
}

// Destroy frees the pool and every command buffer allocated from it.
func (p *CommandPool) Destroy() {
	if p.handle == 0 {
		return
	}
	p.cmds.DestroyCommandPool(p.device, p.handle, nil)
	p.handle = 0
	p.buffers = nil
}
