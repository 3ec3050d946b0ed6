// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package gpusync

import "github.com/terra-gfx/terra/vk"

// Queue owns a Vulkan queue handle, its family index, and one CommandPool
// per in-flight frame. Callers record into Pool(frameIndex).Buffer(i), then submit
// through a SubmissionBuilder so waits, signals and command buffers are
// assembled into a single VkSubmitInfo2.
type Queue struct {
	device      vk.Device
	cmds        *vk.Commands
	handle      vk.Queue
	familyIndex uint32

	pools []*CommandPool
}

// NewQueue retrieves the VkQueue for familyIndex/queueIndex and allocates
// framesInFlight command pools, each holding buffersPerFrame primary
// command buffers.
func NewQueue(device vk.Device, cmds *vk.Commands, familyIndex, queueIndex uint32, framesInFlight, buffersPerFrame int) (*Queue, error) {
	var handle vk.Queue
	cmds.GetDeviceQueue(device, familyIndex, queueIndex, &handle)

	q := &Queue{device: device, cmds: cmds, handle: handle, familyIndex: familyIndex}
	q.pools = make([]*CommandPool, framesInFlight)
	for i := range q.pools {
		pool, err := NewCommandPool(device, cmds, familyIndex, uint32(buffersPerFrame))
		if err != nil {
			q.destroyPools(i)
			return nil, err
		}
		q.pools[i] = pool
	}
	return q, nil
}

func (q *Queue) destroyPools(n int) {
	for i := 0; i < n; i++ {
		q.pools[i].Destroy()
	}
}

// Handle returns the underlying VkQueue.
func (q *Queue) Handle() vk.Queue { return q.handle }

// FamilyIndex returns the queue family this queue was created from.
func (q *Queue) FamilyIndex() uint32 { return q.familyIndex }

// Pool returns the command pool for the given frame-in-flight slot.
func (q *Queue) Pool(frame int) *CommandPool { return q.pools[frame] }

// ResetFrame resets the command pool belonging to frame, recycling all of
// its command buffers for re-recording. Callers must have already waited
// on the fence value that frame's previous submission signaled.
func (q *Queue) ResetFrame(frame int) error { return q.pools[frame].Reset() }

// WaitIdle blocks until every submission on this queue has completed.
func (q *Queue) WaitIdle() error {
	if result := q.cmds.QueueWaitIdle(q.handle); result != vk.Success {
		return resultError("vkQueueWaitIdle", result)
	}
	return nil
}

// Destroy destroys every per-frame command pool owned by this queue. The
// VkQueue handle itself is owned by the device and is not destroyed here.
func (q *Queue) Destroy() {
	q.destroyPools(len(q.pools))
	q.pools = nil
}

// WaitPoint names a semaphore this submission must wait on before
// executing, at the pipeline stage the consuming work first needs it.
type WaitPoint struct {
	Semaphore vk.Semaphore
	Value     uint64 // ignored for binary semaphores
	Stage     uint64 // VkPipelineStageFlags2
}

// SignalPoint names a semaphore this submission signals on completion.
type SignalPoint struct {
	Semaphore vk.Semaphore
	Value     uint64 // ignored for binary semaphores
	Stage     uint64 // VkPipelineStageFlags2
}

// SubmissionBuilder assembles one VkSubmitInfo2 from a set of waits,
// command buffers and signals, then submits it through vkQueueSubmit2.
// Reset and reuse across frames to avoid reallocating its backing arrays.
type SubmissionBuilder struct {
	waits   []vk.SemaphoreSubmitInfo
	cmds    []vk.CommandBufferSubmitInfo
	signals []vk.SemaphoreSubmitInfo
}

// Reset clears the builder for a new submission, keeping its backing
// arrays allocated.
func (b *SubmissionBuilder) Reset() {
	b.waits = b.waits[:0]
	b.cmds = b.cmds[:0]
	b.signals = b.signals[:0]
}

// Wait adds a semaphore wait.
func (b *SubmissionBuilder) Wait(w WaitPoint) *SubmissionBuilder {
	b.waits = append(b.waits, vk.SemaphoreSubmitInfo{
		SType: vk.StructureTypeSemaphoreSubmitInfo, Semaphore: w.Semaphore, Value: w.Value, StageMask: w.Stage,
	})
	return b
}

// AddCommandBuffer adds a command buffer to execute.
func (b *SubmissionBuilder) AddCommandBuffer(cmd *CommandBuffer) *SubmissionBuilder {
	b.cmds = append(b.cmds, vk.CommandBufferSubmitInfo{
		SType: vk.StructureTypeCommandBufferSubmitInfo, CommandBuffer: cmd.handle,
	})
	return b
}

// Signal adds a semaphore signal.
func (b *SubmissionBuilder) Signal(s SignalPoint) *SubmissionBuilder {
	b.signals = append(b.signals, vk.SemaphoreSubmitInfo{
		SType: vk.StructureTypeSemaphoreSubmitInfo, Semaphore: s.Semaphore, Value: s.Value, StageMask: s.Stage,
	})
	return b
}

// Submit assembles the accumulated waits/buffers/signals into a single
// VkSubmitInfo2 and submits it to queue, signaling fence (may be 0 when
// synchronization is tracked entirely through semaphores).
func (b *SubmissionBuilder) Submit(queue *Queue, fence vk.Fence) error {
	info := vk.SubmitInfo2{
		SType:                    vk.StructureTypeSubmitInfo2,
		WaitSemaphoreInfoCount:   uint32(len(b.waits)),
		CommandBufferInfoCount:   uint32(len(b.cmds)),
		SignalSemaphoreInfoCount: uint32(len(b.signals)),
	}
	if len(b.waits) > 0 {
		info.PWaitSemaphoreInfos = ptrToFirst(&b.waits[0])
	}
	if len(b.cmds) > 0 {
		info.PCommandBufferInfos = ptrToFirst(&b.cmds[0])
	}
	if len(b.signals) > 0 {
		info.PSignalSemaphoreInfos = ptrToFirst(&b.signals[0])
	}

	if result := queue.cmds.QueueSubmit2(queue.handle, 1, &info, fence); result != vk.Success {
		return resultError("vkQueueSubmit2", result)
	}
	return nil
}
