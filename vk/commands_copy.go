// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vk

import "unsafe"

// --- Transfer commands ---

func (c *Commands) CmdCopyBuffer(cmd CommandBuffer, src, dst Buffer, regionCount uint32, regions *BufferCopy) {
	args := [5]unsafe.Pointer{
		unsafe.Pointer(&cmd), unsafe.Pointer(&src), unsafe.Pointer(&dst),
		unsafe.Pointer(&regionCount), unsafe.Pointer(&regions),
	}
	callVoid(&SigVoidCmdCopyBuffer, c.cmdCopyBuffer, args[:])
}

func (c *Commands) CmdCopyBufferToImage(cmd CommandBuffer, src Buffer, dst Image, dstLayout ImageLayout, regionCount uint32, regions *BufferImageCopy) {
	layout := uint32(dstLayout)
	args := [6]unsafe.Pointer{
		unsafe.Pointer(&cmd), unsafe.Pointer(&src), unsafe.Pointer(&dst),
		unsafe.Pointer(&layout), unsafe.Pointer(&regionCount), unsafe.Pointer(&regions),
	}
	callVoid(&SigVoidCmdCopyBufferToImage, c.cmdCopyBufferToImage, args[:])
}

// CmdFillBuffer records vkCmdFillBuffer, used by the VS-indirect model
// manager to zero its per-frame indirect-draw counter before the culling
// compute pass writes to it.
func (c *Commands) CmdFillBuffer(cmd CommandBuffer, buffer Buffer, offset, size DeviceSize, data uint32) {
	args := [5]unsafe.Pointer{
		unsafe.Pointer(&cmd), unsafe.Pointer(&buffer),
		unsafe.Pointer(&offset), unsafe.Pointer(&size), unsafe.Pointer(&data),
	}
	callVoid(&SigVoidCmdFillBuffer, c.cmdFillBuffer, args[:])
}

// CmdCopyImage records vkCmdCopyImage, used by the render-pass manager's
// swapchain blit (end_pass_for_swapchain).
func (c *Commands) CmdCopyImage(cmd CommandBuffer, src Image, srcLayout ImageLayout, dst Image, dstLayout ImageLayout, regionCount uint32, regions *ImageCopy) {
	srcL, dstL := uint32(srcLayout), uint32(dstLayout)
	args := [7]unsafe.Pointer{
		unsafe.Pointer(&cmd), unsafe.Pointer(&src), unsafe.Pointer(&srcL),
		unsafe.Pointer(&dst), unsafe.Pointer(&dstL), unsafe.Pointer(&regionCount), unsafe.Pointer(&regions),
	}
	callVoid(&SigVoidCmdCopyImage, c.cmdCopyImage, args[:])
}
