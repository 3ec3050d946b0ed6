// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package staging implements the CPU-to-GPU upload queue: callers queue
// buffer and texture writes, copy_and_clear lazily creates host-visible
// staging buffers and records the copies, and release/acquire emit the
// queue-family ownership transfer barrier pairs for entries that cross
// queues.
package staging

import (
	"fmt"
	"sync"

	"github.com/terra-gfx/terra/vk"
	"github.com/terra-gfx/terra/internal/memory"
	"github.com/terra-gfx/terra/internal/resource"
	"github.com/terra-gfx/terra/internal/sharedbuf"
	"github.com/terra-gfx/terra/internal/thread"
)

// largeCopyThreshold is the CPU blob size above which CopyAndClear splits
// the host memcpy across Manager's worker pool instead of copying inline.
const largeCopyThreshold = 1 << 20 // 1 MiB

// copyChunkSize bounds how much of a large blob a single worker job covers.
const copyChunkSize = 256 << 10 // 256 KiB

// Target describes the optional cross-queue ownership transfer a queued
// write may need once the copy lands on the transfer queue.
type Target struct {
	// CrossQueue is false when the destination is only ever used on the
	// transfer queue (no release/acquire pair is recorded).
	CrossQueue bool
	DstQueue   uint32
	DstAccess  uint64 // VkAccessFlags2
	DstStage   uint64 // VkPipelineStageFlags2
}

// CopyRecorder is the subset of command buffer recording copy_and_clear
// needs. Satisfied structurally by internal/gpusync's command buffer type.
type CopyRecorder interface {
	CopyBuffer(src, dst vk.Buffer, regions []vk.BufferCopy)
	CopyBufferToImage(src vk.Buffer, dst vk.Image, dstLayout vk.ImageLayout, regions []vk.BufferImageCopy)
	PipelineBarrier(info *vk.DependencyInfo)
}

type bufferEntry struct {
	data   []byte
	dst    vk.Buffer
	offset uint64
	target Target
}

type textureEntry struct {
	data   []byte
	dst    vk.Image
	extent vk.Extent3D
	aspect vk.ImageAspectFlags
	target Target
}

// resourceKey identifies a (resource, destination queue) pair for
// release/acquire dedup: the same resource must not get two release
// barriers to the same destination queue.
type resourceKey struct {
	handle uint64
	queue  uint32
}

// pendingTransfer is a copied entry still awaiting its ownership transfer
// barrier pair, recorded by copy_and_clear for every cross-queue write.
type pendingTransfer struct {
	handle uint64
	target Target
}

// Manager is the staging buffer manager: one per transfer-capable command
// queue.
type Manager struct {
	mu sync.Mutex

	device vk.Device
	cmds   *vk.Commands
	mem    *memory.Manager
	pool   *thread.Pool

	buffers  []*bufferEntry
	textures []*textureEntry

	pending  []pendingTransfer
	released map[resourceKey]struct{}
	acquired map[resourceKey]struct{}
}

// NewManager creates an empty staging manager.
func NewManager(device vk.Device, cmds *vk.Commands, mem *memory.Manager) *Manager {
	return &Manager{
		device:   device,
		cmds:     cmds,
		mem:      mem,
		released: make(map[resourceKey]struct{}),
		acquired: make(map[resourceKey]struct{}),
	}
}

// SetWorkerPool attaches a background worker pool used to parallelize the
// CPU-side memcpy of staging entries at or above largeCopyThreshold. Optional:
// a Manager with no pool always falls back to a single-threaded copy.
func (m *Manager) SetWorkerPool(pool *thread.Pool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pool = pool
}

// AddBuffer queues a CPU-to-buffer upload. data is kept alive in temp
// until the staging buffer copy_and_clear creates for it is itself
// queued for keep-alive.
func (m *Manager) AddBuffer(data []byte, dst vk.Buffer, offset uint64, target Target, temp *sharedbuf.TemporaryDataBuffer) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if temp != nil {
		temp.Add(data)
	}
	m.buffers = append(m.buffers, &bufferEntry{data: data, dst: dst, offset: offset, target: target})
}

// AddTexture queues a CPU-to-texture upload.
func (m *Manager) AddTexture(data []byte, dst vk.Image, extent vk.Extent3D, aspect vk.ImageAspectFlags, target Target, temp *sharedbuf.TemporaryDataBuffer) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if temp != nil {
		temp.Add(data)
	}
	m.textures = append(m.textures, &textureEntry{data: data, dst: dst, extent: extent, aspect: aspect, target: target})
}

// CopyAndClear lazily creates a staging buffer per queued entry, memcpys
// the CPU data into it, records the copy into the transfer command
// buffer, and adds each staging buffer to temp for later release. Every
// cross-queue entry is recorded for a later release/acquire pair. The
// queue is emptied regardless of per-entry errors; the first error
// encountered is returned after every entry has been attempted.
func (m *Manager) CopyAndClear(cmd CopyRecorder, temp *sharedbuf.TemporaryDataBuffer) error {
	m.mu.Lock()
	buffers := m.buffers
	textures := m.textures
	pool := m.pool
	m.buffers = nil
	m.textures = nil
	m.mu.Unlock()

	hostCopy := func(dst, src []byte) {
		if len(src) >= largeCopyThreshold {
			thread.CopyChunked(pool, dst, src, copyChunkSize)
			return
		}
		copy(dst, src)
	}

	var firstErr error
	recordErr := func(err error) {
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}
	var pending []pendingTransfer

	for _, e := range buffers {
		staging, err := resource.NewBuffer(m.device, m.cmds, m.mem, uint64(len(e.data)), vk.BufferUsageTransferSrcBit, memory.UsageUpload)
		if err != nil {
			recordErr(fmt.Errorf("staging: buffer entry: %w", err))
			continue
		}
		if ptr := staging.HostPointer(); ptr != nil && len(e.data) > 0 {
			hostCopy(hostSlice(ptr, len(e.data)), e.data)
		}

		cmd.CopyBuffer(staging.Handle(), e.dst, []vk.BufferCopy{
			{SrcOffset: 0, DstOffset: vk.DeviceSize(e.offset), Size: vk.DeviceSize(len(e.data))},
		})

		if temp != nil {
			temp.Add(staging)
		}
		if e.target.CrossQueue {
			pending = append(pending, pendingTransfer{handle: uint64(e.dst), target: e.target})
		}
	}

	for _, e := range textures {
		staging, err := resource.NewBuffer(m.device, m.cmds, m.mem, uint64(len(e.data)), vk.BufferUsageTransferSrcBit, memory.UsageUpload)
		if err != nil {
			recordErr(fmt.Errorf("staging: texture entry: %w", err))
			continue
		}
		if ptr := staging.HostPointer(); ptr != nil && len(e.data) > 0 {
			hostCopy(hostSlice(ptr, len(e.data)), e.data)
		}

		barrier := vk.ImageMemoryBarrier2{
			SType:               vk.StructureTypeImageMemoryBarrier2,
			DstStageMask:        transferStage,
			DstAccessMask:       transferWriteAccess,
			OldLayout:           vk.ImageLayoutUndefined,
			NewLayout:           vk.ImageLayoutTransferDstOptimal,
			SrcQueueFamilyIndex: vk.QueueFamilyIgnored,
			DstQueueFamilyIndex: vk.QueueFamilyIgnored,
			Image:               e.dst,
			SubresourceRange:    vk.ImageSubresourceRange{AspectMask: e.aspect, LevelCount: 1, LayerCount: 1},
		}
		cmd.PipelineBarrier(&vk.DependencyInfo{
			SType:                   vk.StructureTypeDependencyInfo,
			ImageMemoryBarrierCount: 1,
			PImageMemoryBarriers:    ptrToFirst(&barrier),
		})

		cmd.CopyBufferToImage(staging.Handle(), e.dst, vk.ImageLayoutTransferDstOptimal, []vk.BufferImageCopy{
			{ImageSubresource: vk.ImageSubresourceLayers{AspectMask: e.aspect, LayerCount: 1}, ImageExtent: e.extent},
		})

		if temp != nil {
			temp.Add(staging)
		}
		if e.target.CrossQueue {
			pending = append(pending, pendingTransfer{handle: uint64(e.dst), target: e.target})
		}
	}

	if len(pending) > 0 {
		m.mu.Lock()
		m.pending = append(m.pending, pending...)
		m.mu.Unlock()
	}

	return firstErr
}

const (
	transferStage       = 1 << 32 // VK_PIPELINE_STAGE_2_COPY_BIT
	transferWriteAccess = 1 << 12 // VK_ACCESS_2_TRANSFER_WRITE_BIT
)

// ReleaseOwnership emits a queue-family release barrier (transfer ->
// destination) for every pending cross-queue entry not already released.
// Duplicate release for the same (resource, queue) pair is skipped.
func (m *Manager) ReleaseOwnership(cmd CopyRecorder, transferFamily uint32) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, p := range m.pending {
		if !p.target.CrossQueue {
			continue
		}
		key := resourceKey{handle: p.handle, queue: p.target.DstQueue}
		if _, done := m.released[key]; done {
			continue
		}
		m.released[key] = struct{}{}
		m.emitBarrierLocked(cmd, p, transferFamily, p.target.DstQueue)
	}
}

// AcquireOwnership emits the matching acquire barrier on the owning
// queue's command buffer, for every pending entry destined for
// ownerFamily. Duplicate acquire for the same (resource, queue) pair is
// skipped.
func (m *Manager) AcquireOwnership(cmd CopyRecorder, ownerFamily, transferFamily uint32) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, p := range m.pending {
		if p.target.DstQueue != ownerFamily {
			continue
		}
		key := resourceKey{handle: p.handle, queue: ownerFamily}
		if _, done := m.acquired[key]; done {
			continue
		}
		m.acquired[key] = struct{}{}
		m.emitBarrierLocked(cmd, p, transferFamily, ownerFamily)
	}
}

// emitBarrierLocked records a VkBufferMemoryBarrier2 ownership transfer.
// Callers hold m.mu.
func (m *Manager) emitBarrierLocked(cmd CopyRecorder, p pendingTransfer, srcFamily, dstFamily uint32) {
	barrier := vk.BufferMemoryBarrier2{
		SType:               vk.StructureTypeBufferMemoryBarrier2,
		SrcStageMask:        transferStage,
		SrcAccessMask:       transferWriteAccess,
		DstStageMask:        p.target.DstStage,
		DstAccessMask:       p.target.DstAccess,
		SrcQueueFamilyIndex: srcFamily,
		DstQueueFamilyIndex: dstFamily,
		Buffer:              vk.Buffer(p.handle),
		Size:                vk.WholeSize,
	}
	cmd.PipelineBarrier(&vk.DependencyInfo{
		SType:                    vk.StructureTypeDependencyInfo,
		BufferMemoryBarrierCount: 1,
		PBufferMemoryBarriers:    ptrToFirst(&barrier),
	})
}

// ResetOwnershipTracking clears the pending-transfer list and the
// release/acquire dedup sets. Call once per frame, after the submission
// those barriers belonged to completes.
func (m *Manager) ResetOwnershipTracking() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pending = nil
	m.released = make(map[resourceKey]struct{})
	m.acquired = make(map[resourceKey]struct{})
}

// PendingCount returns the number of queued buffer and texture entries,
// for tests and diagnostics.
func (m *Manager) PendingCount() (buffers, textures int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.buffers), len(m.textures)
}
