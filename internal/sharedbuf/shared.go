// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package sharedbuf

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/terra-gfx/terra/vk"
	"github.com/terra-gfx/terra/internal/memory"
	"github.com/terra-gfx/terra/internal/resource"
)

// SharedBufferData is a snapshot handed to a reader: a (buffer, offset,
// size) view into a shared buffer's current resource. Generation encodes
// the growth epoch the snapshot was taken in; a reader comparing its
// snapshot's Generation against the shared buffer's current Generation can
// detect a stale reference instead of silently reading the wrong resource.
type SharedBufferData struct {
	Buffer     vk.Buffer
	Offset     uint64
	Size       uint64
	Generation uint64
}

// CommandRecorder is the subset of command buffer recording the shared
// buffer needs to emit its deferred copy-old-buffer. Satisfied structurally
// by internal/gpusync's command buffer type.
type CommandRecorder interface {
	CopyBuffer(src, dst vk.Buffer, regions []vk.BufferCopy)
}

// SharedBufferGPU is a single Vulkan buffer multiplexed between many
// logical sub-allocations tracked by an Allocator. Growth allocates a new,
// larger resource; the retired one is kept alive in a TemporaryDataBuffer
// until CopyOldBuffer records the full-buffer copy during the next
// transfer submission.
type SharedBufferGPU struct {
	mu sync.Mutex

	device vk.Device
	cmds   *vk.Commands
	mem    *memory.Manager
	usage  vk.BufferUsageFlags

	buffer     *resource.Buffer
	alloc      *Allocator
	generation uint64

	hasPendingOld  bool
	pendingOld     *resource.Buffer
	pendingOldSize uint64
}

// NewSharedBufferGPU creates a device-local shared buffer of initialSize
// bytes.
func NewSharedBufferGPU(device vk.Device, cmds *vk.Commands, mem *memory.Manager, usage vk.BufferUsageFlags, initialSize uint64) (*SharedBufferGPU, error) {
	buf, err := resource.NewBuffer(device, cmds, mem, initialSize, usage, memory.UsageFastDeviceAccess)
	if err != nil {
		return nil, err
	}
	return &SharedBufferGPU{
		device: device,
		cmds:   cmds,
		mem:    mem,
		usage:  usage,
		buffer: buf,
		alloc:  NewAllocator(initialSize),
	}, nil
}

// Allocate finds or grows room for size bytes and returns a snapshot of
// the resource and offset it lives at.
func (s *SharedBufferGPU) Allocate(size uint64, temp *TemporaryDataBuffer) (SharedBufferData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	offset, ok := s.alloc.Allocate(size)
	if !ok {
		if err := s.grow(maxU64(s.alloc.Size()*2, s.alloc.Size()+size), temp); err != nil {
			return SharedBufferData{}, err
		}
		offset, ok = s.alloc.Allocate(size)
		if !ok {
			return SharedBufferData{}, fmt.Errorf("sharedbuf: grew GPU buffer but %d bytes still does not fit", size)
		}
	}

	return SharedBufferData{Buffer: s.buffer.Handle(), Offset: offset, Size: size, Generation: s.generation}, nil
}

// Free returns [offset, offset+size) to the free list.
func (s *SharedBufferGPU) Free(offset, size uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.alloc.Free(offset, size)
}

// grow creates a newSize-byte replacement resource. The very first growth
// since the last CopyOldBuffer keeps the retired resource alive (pending a
// copy); any growth after that drops its immediately-prior resource, since
// no command buffer ever wrote to it.
func (s *SharedBufferGPU) grow(newSize uint64, temp *TemporaryDataBuffer) error {
	newBuf, err := resource.NewBuffer(s.device, s.cmds, s.mem, newSize, s.usage, memory.UsageFastDeviceAccess)
	if err != nil {
		return err
	}

	old := s.buffer
	oldSize := s.alloc.Size()

	if !s.hasPendingOld {
		s.hasPendingOld = true
		s.pendingOld = old
		s.pendingOldSize = oldSize
		if temp != nil {
			temp.Add(old)
		}
	} else {
		old.Destroy()
	}

	s.buffer = newBuf
	s.alloc.Grow(newSize)
	s.generation++
	return nil
}

// CopyOldBuffer records the deferred full-buffer copy from the retired
// resource into the current one, then clears the pending slot. A no-op if
// no growth is pending.
func (s *SharedBufferGPU) CopyOldBuffer(cmd CommandRecorder) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.hasPendingOld {
		return
	}
	cmd.CopyBuffer(s.pendingOld.Handle(), s.buffer.Handle(), []vk.BufferCopy{
		{SrcOffset: 0, DstOffset: 0, Size: vk.DeviceSize(s.pendingOldSize)},
	})

	s.hasPendingOld = false
	s.pendingOld = nil
	s.pendingOldSize = 0
}

// Size returns the current resource's total size in bytes.
func (s *SharedBufferGPU) Size() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.alloc.Size()
}

// Handle returns the current VkBuffer. Holding onto it across an Allocate
// call that triggers growth yields a stale handle — take a fresh
// SharedBufferData snapshot instead.
func (s *SharedBufferGPU) Handle() vk.Buffer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buffer.Handle()
}

// Generation returns the current growth epoch.
func (s *SharedBufferGPU) Generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation
}

// Destroy releases the current resource. Any still-pending old resource
// must already have been released via its TemporaryDataBuffer.
func (s *SharedBufferGPU) Destroy() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.buffer.Destroy()
}

// SharedBufferCPU is a host-visible shared buffer. Growth copies the
// previous contents memcpy-style into the new mapped resource immediately;
// no temporary data buffer or deferred GPU copy is involved.
type SharedBufferCPU struct {
	mu sync.Mutex

	device vk.Device
	cmds   *vk.Commands
	mem    *memory.Manager
	usage  vk.BufferUsageFlags

	buffer     *resource.Buffer
	alloc      *Allocator
	generation uint64
}

// NewSharedBufferCPU creates a host-visible shared buffer of initialSize
// bytes.
func NewSharedBufferCPU(device vk.Device, cmds *vk.Commands, mem *memory.Manager, usage vk.BufferUsageFlags, initialSize uint64) (*SharedBufferCPU, error) {
	buf, err := resource.NewBuffer(device, cmds, mem, initialSize, usage, memory.UsageUpload)
	if err != nil {
		return nil, err
	}
	return &SharedBufferCPU{
		device: device,
		cmds:   cmds,
		mem:    mem,
		usage:  usage,
		buffer: buf,
		alloc:  NewAllocator(initialSize),
	}, nil
}

// Allocate finds or grows room for size bytes and returns a snapshot.
func (s *SharedBufferCPU) Allocate(size uint64) (SharedBufferData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	offset, ok := s.alloc.Allocate(size)
	if !ok {
		if err := s.grow(maxU64(s.alloc.Size()*2, s.alloc.Size()+size)); err != nil {
			return SharedBufferData{}, err
		}
		offset, ok = s.alloc.Allocate(size)
		if !ok {
			return SharedBufferData{}, fmt.Errorf("sharedbuf: grew CPU buffer but %d bytes still does not fit", size)
		}
	}

	return SharedBufferData{Buffer: s.buffer.Handle(), Offset: offset, Size: size, Generation: s.generation}, nil
}

// Free returns [offset, offset+size) to the free list.
func (s *SharedBufferCPU) Free(offset, size uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.alloc.Free(offset, size)
}

func (s *SharedBufferCPU) grow(newSize uint64) error {
	newBuf, err := resource.NewBuffer(s.device, s.cmds, s.mem, newSize, s.usage, memory.UsageUpload)
	if err != nil {
		return err
	}

	oldSize := s.alloc.Size()
	if oldPtr, newPtr := s.buffer.HostPointer(), newBuf.HostPointer(); oldPtr != nil && newPtr != nil && oldSize > 0 {
		copy(unsafe.Slice((*byte)(newPtr), oldSize), unsafe.Slice((*byte)(oldPtr), oldSize))
	}

	s.buffer.Destroy()
	s.buffer = newBuf
	s.alloc.Grow(newSize)
	s.generation++
	return nil
}

// HostPointer returns the mapped base address of the current resource.
func (s *SharedBufferCPU) HostPointer() unsafe.Pointer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buffer.HostPointer()
}

// Size returns the current resource's total size in bytes.
func (s *SharedBufferCPU) Size() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.alloc.Size()
}

// Generation returns the current growth epoch.
func (s *SharedBufferCPU) Generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation
}

// Destroy releases the current resource.
func (s *SharedBufferCPU) Destroy() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.buffer.Destroy()
}

func maxU64(a, b uint64) uint64 {
	if a > b {
		return a
	}
	return b
}
