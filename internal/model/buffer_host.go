// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package model

import (
	"unsafe"

	"github.com/terra-gfx/terra/vk"
	"github.com/terra-gfx/terra/internal/memory"
	"github.com/terra-gfx/terra/internal/resource"
)

// bufferWithHost is a single host-visible buffer that grows in place
// (allocate new, memcpy old contents, destroy old), the same shape
// internal/descriptor.Manager uses for its descriptor buffer. Unlike
// internal/sharedbuf it is not sub-allocated: each per-frame instance,
// indirect-argument, or counter buffer owns its entire backing resource.
type bufferWithHost struct {
	device vk.Device
	cmds   *vk.Commands
	mem    *memory.Manager
	usage  vk.BufferUsageFlags

	buffer *resource.Buffer
	size   uint64
}

func newBufferWithHost(device vk.Device, cmds *vk.Commands, mem *memory.Manager, size uint64, usage vk.BufferUsageFlags) (*bufferWithHost, error) {
	buf, err := resource.NewBuffer(device, cmds, mem, size, usage, memory.UsageUpload)
	if err != nil {
		return nil, err
	}
	return &bufferWithHost{device: device, cmds: cmds, mem: mem, usage: usage, buffer: buf, size: size}, nil
}

func (b *bufferWithHost) grow(newSize uint64) error {
	newBuf, err := resource.NewBuffer(b.device, b.cmds, b.mem, newSize, b.usage, memory.UsageUpload)
	if err != nil {
		return err
	}
	if oldPtr, newPtr := b.buffer.HostPointer(), newBuf.HostPointer(); oldPtr != nil && newPtr != nil && b.size > 0 {
		copy(unsafe.Slice((*byte)(newPtr), b.size), unsafe.Slice((*byte)(oldPtr), b.size))
	}
	b.buffer.Destroy()
	b.buffer = newBuf
	b.size = newSize
	return nil
}

func (b *bufferWithHost) handle() vk.Buffer           { return b.buffer.Handle() }
func (b *bufferWithHost) hostPointer() unsafe.Pointer { return b.buffer.HostPointer() }

func (b *bufferWithHost) destroy() {
	b.buffer.Destroy()
}
