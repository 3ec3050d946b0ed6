// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package engine

import (
	"github.com/terra-gfx/terra/vk"
	"github.com/terra-gfx/terra/internal/descriptor"
	"github.com/terra-gfx/terra/internal/gpusync"
	"github.com/terra-gfx/terra/internal/memory"
	"github.com/terra-gfx/terra/internal/sharedbuf"
)

// frameRecord is one frame-in-flight's mutable state: its own descriptor
// buffer (independent host-mapped bytes, but built from the same set
// layouts every other frame uses so a single VkPipelineLayout serves
// all of them), the transfer/compute timeline fences the command queue
// scheduling chain waits and signals at, and the keep-alive buffer for
// the frame's staging uploads.
//
// Nothing in this package constructs a frameRecord: there is no Renderer
// type or per-frame Render loop that would own a set of them.
type frameRecord struct {
	descriptors *descriptor.Manager

	graphicsCmd *gpusync.CommandBuffer
	transferCmd *gpusync.CommandBuffer

	transferFence *gpusync.Fence // T[i]
	computeFence  *gpusync.Fence // C[i], only populated for VariantVSIndirect
	graphicsFence *gpusync.Fence // this frame's CPU-waitable completion fence

	presentSemaphore vk.Semaphore // binary, signaled by the graphics submission, waited on by Present

	keepAlive *sharedbuf.TemporaryDataBuffer
}

// newFrameRecord allocates one frame's descriptor buffer (its sets
// declared by declareSets, so every frame built with the same callback
// shares the same set declarations) and synchronization primitives.
// variant selects whether a compute timeline fence is created.
func newFrameRecord(device vk.Device, cmds *vk.Commands, mem *memory.Manager, descProps descriptor.Properties,
	variant Variant, declareSets func(*descriptor.Manager)) (*frameRecord, error) {

	f := &frameRecord{keepAlive: sharedbuf.NewTemporaryDataBuffer()}

	f.descriptors = descriptor.NewManager(device, cmds, mem, descProps)
	declareSets(f.descriptors)
	if err := f.descriptors.CreateBuffer(); err != nil {
		return nil, newError(ErrOutOfDeviceMemory, "frame: descriptor buffer", err)
	}

	var err error
	if f.transferFence, err = gpusync.NewFence(device, cmds); err != nil {
		return nil, newError(ErrUnknown, "frame: transfer fence", err)
	}
	if f.graphicsFence, err = gpusync.NewFence(device, cmds); err != nil {
		return nil, newError(ErrUnknown, "frame: graphics fence", err)
	}
	if variant == VariantVSIndirect {
		if f.computeFence, err = gpusync.NewFence(device, cmds); err != nil {
			return nil, newError(ErrUnknown, "frame: compute fence", err)
		}
	}

	semInfo := vk.SemaphoreCreateInfo{SType: vk.StructureTypeSemaphoreCreateInfo}
	if res := cmds.CreateSemaphore(device, &semInfo, nil, &f.presentSemaphore); res != vk.Success {
		f.destroy(device, cmds)
		return nil, resultError(ErrUnknown, "frame: present semaphore", res)
	}

	return f, nil
}

func (f *frameRecord) destroy(device vk.Device, cmds *vk.Commands) {
	if f.descriptors != nil {
		f.descriptors.Destroy()
	}
	if f.transferFence != nil {
		f.transferFence.Destroy()
	}
	if f.computeFence != nil {
		f.computeFence.Destroy()
	}
	if f.graphicsFence != nil {
		f.graphicsFence.Destroy()
	}
	if f.presentSemaphore != 0 {
		cmds.DestroySemaphore(device, f.presentSemaphore, nil)
		f.presentSemaphore = 0
	}
}
