// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package gpusync wraps Vulkan command pools/buffers, queues and the
// submission synchronization primitives: a timeline-semaphore-backed
// Fence (with a binary VkFence pool fallback for pre-1.2 drivers), and a
// SubmissionBuilder that assembles VkSubmitInfo2.
package gpusync

import (
	"fmt"
	"sync/atomic"

	"github.com/terra-gfx/terra/vk"
)

// Fence abstracts GPU/CPU synchronization for one submission stream using
// either a VK_KHR_timeline_semaphore (preferred) or a pool of binary
// VkFences as fallback on drivers without Vulkan 1.2.
type Fence struct {
	device vk.Device
	cmds   *vk.Commands

	timeline   vk.Semaphore
	isTimeline bool

	lastSignaled  atomic.Uint64
	lastCompleted uint64

	pool *fencePool
}

// NewFence creates a Fence, preferring a timeline semaphore and falling
// back to a binary fence pool when the driver lacks
// VK_KHR_timeline_semaphore.
func NewFence(device vk.Device, cmds *vk.Commands) (*Fence, error) {
	if cmds.HasTimelineSemaphore() {
		typeInfo := vk.SemaphoreTypeCreateInfo{
			SType:         vk.StructureTypeSemaphoreTypeCreateInfo,
			SemaphoreType: vk.SemaphoreTypeTimeline,
			InitialValue:  0,
		}
		info := vk.SemaphoreCreateInfo{
			SType: vk.StructureTypeSemaphoreCreateInfo,
			PNext: ptrToFirst(&typeInfo),
		}
		var sem vk.Semaphore
		if result := cmds.CreateSemaphore(device, &info, nil, &sem); result == vk.Success {
			return &Fence{device: device, cmds: cmds, timeline: sem, isTimeline: true}, nil
		}
	}

	return &Fence{device: device, cmds: cmds, pool: &fencePool{}, isTimeline: false}, nil
}

// NextSignalValue returns the next value to signal for a new submission.
func (f *Fence) NextSignalValue() uint64 { return f.lastSignaled.Add(1) }

// CurrentSignalValue returns the most recently reserved signal value.
func (f *Fence) CurrentSignalValue() uint64 { return f.lastSignaled.Load() }

// Semaphore returns the timeline semaphore handle backing this fence.
// Zero when the binary fallback is active.
func (f *Fence) Semaphore() vk.Semaphore { return f.timeline }

// IsTimeline reports whether this fence uses a timeline semaphore.
func (f *Fence) IsTimeline() bool { return f.isTimeline }

// BinaryFenceFor returns a VkFence to pass to vkQueueSubmit2 for the given
// submission value, valid only when !IsTimeline().
func (f *Fence) BinaryFenceFor(value uint64) (vk.Fence, error) {
	return f.pool.signal(f.cmds, f.device, value)
}

// Wait blocks until the submission that signaled value has completed.
func (f *Fence) Wait(value uint64, timeoutNs uint64) error {
	if !f.isTimeline {
		if err := f.pool.wait(f.cmds, f.device, value, timeoutNs); err != nil {
			return err
		}
		f.lastCompleted = f.pool.lastCompleted
		return nil
	}

	if value <= f.lastCompleted || value == 0 {
		return nil
	}

	waitInfo := vk.SemaphoreWaitInfo{
		SType:          vk.StructureTypeSemaphoreWaitInfo,
		SemaphoreCount: 1,
		PSemaphores:    ptrToFirst(&f.timeline),
		PValues:        ptrToFirst(&value),
	}

	switch result := f.cmds.WaitSemaphores(f.device, &waitInfo, timeoutNs); result {
	case vk.Success:
		f.lastCompleted = value
		return nil
	case vk.Timeout:
		return fmt.Errorf("gpusync: timeline semaphore wait timed out (value=%d)", value)
	default:
		return fmt.Errorf("gpusync: vkWaitSemaphores failed: %d", result)
	}
}

// WaitForLatest waits for the highest reserved signal value to complete.
func (f *Fence) WaitForLatest(timeoutNs uint64) error {
	if !f.isTimeline {
		if err := f.pool.waitForLatest(f.cmds, f.device, timeoutNs); err != nil {
			return err
		}
		f.lastCompleted = f.pool.lastCompleted
		return nil
	}
	return f.Wait(f.CurrentSignalValue(), timeoutNs)
}

// Destroy releases the timeline semaphore or every pooled binary fence.
func (f *Fence) Destroy() {
	if f.timeline != 0 {
		f.cmds.DestroySemaphore(f.device, f.timeline, nil)
		f.timeline = 0
	}
	if f.pool != nil {
		f.pool.destroy(f.cmds, f.device)
		f.pool = nil
	}
}
