// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package gpusync

import "github.com/terra-gfx/terra/vk"

// fencePool manages binary VkFences for drivers without timeline
// semaphores. Submissions are tracked by monotonic value rather than a
// fixed-size ring buffer, so any outstanding value can be waited on
// individually. Signaled fences are recycled into a free list.
type fencePool struct {
	active []fenceEntry
	free   []vk.Fence

	lastCompleted uint64
}

type fenceEntry struct {
	value uint64
	fence vk.Fence
}

// maintain reclaims any signaled fences into the free list without
// blocking.
func (p *fencePool) maintain(cmds *vk.Commands, device vk.Device) {
	n := 0
	for _, entry := range p.active {
		if cmds.GetFenceStatus(device, entry.fence) == vk.Success {
			_ = cmds.ResetFences(device, 1, &entry.fence)
			p.free = append(p.free, entry.fence)
			if entry.value > p.lastCompleted {
				p.lastCompleted = entry.value
			}
			continue
		}
		p.active[n] = entry
		n++
	}
	p.active = p.active[:n]
}

// signal returns a fence to pass to vkQueueSubmit2 for the given
// submission value, reusing a recycled fence when one is free.
func (p *fencePool) signal(cmds *vk.Commands, device vk.Device, value uint64) (vk.Fence, error) {
	var fence vk.Fence
	if n := len(p.free); n > 0 {
		fence = p.free[n-1]
		p.free = p.free[:n-1]
	} else {
		info := vk.FenceCreateInfo{SType: vk.StructureTypeFenceCreateInfo}
		if result := cmds.CreateFence(device, &info, nil, &fence); result != vk.Success {
			return 0, resultError("vkCreateFence", result)
		}
	}

	p.active = append(p.active, fenceEntry{value: value, fence: fence})
	return fence, nil
}

// wait blocks until the submission with the given value has completed.
func (p *fencePool) wait(cmds *vk.Commands, device vk.Device, value, timeoutNs uint64) error {
	if value <= p.lastCompleted || value == 0 {
		return nil
	}

	p.maintain(cmds, device)
	if value <= p.lastCompleted {
		return nil
	}

	var targetFence vk.Fence
	targetIdx := -1
	for i, entry := range p.active {
		if entry.value == value {
			targetFence, targetIdx = entry.fence, i
			break
		}
		if entry.value > value && (targetFence == 0 || entry.value < p.active[targetIdx].value) {
			targetFence, targetIdx = entry.fence, i
		}
	}
	if targetFence == 0 {
		return nil
	}

	result := cmds.WaitForFences(device, 1, &targetFence, vk.True, timeoutNs)
	switch result {
	case vk.Success:
		_ = cmds.ResetFences(device, 1, &targetFence)
		if completed := p.active[targetIdx].value; completed > p.lastCompleted {
			p.lastCompleted = completed
		}
		last := len(p.active) - 1
		p.active[targetIdx] = p.active[last]
		p.active = p.active[:last]
		p.maintain(cmds, device)
		return nil
	case vk.Timeout:
		return resultError("vkWaitForFences timed out", result)
	default:
		return resultError("vkWaitForFences", result)
	}
}

// waitForLatest blocks until the highest active submission completes.
func (p *fencePool) waitForLatest(cmds *vk.Commands, device vk.Device, timeoutNs uint64) error {
	if len(p.active) == 0 {
		return nil
	}
	var maxValue uint64
	for _, entry := range p.active {
		if entry.value > maxValue {
			maxValue = entry.value
		}
	}
	return p.wait(cmds, device, maxValue, timeoutNs)
}

// destroy releases every active and free fence. The caller must ensure
// the device is idle first.
func (p *fencePool) destroy(cmds *vk.Commands, device vk.Device) {
	for _, entry := range p.active {
		cmds.DestroyFence(device, entry.fence, nil)
	}
	p.active = nil
	for _, fence := range p.free {
		cmds.DestroyFence(device, fence, nil)
	}
	p.free = nil
	p.lastCompleted = 0
}
