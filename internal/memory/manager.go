// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package memory implements Terra's device memory allocator: a buddy
// suballocator per Vulkan memory pool, and a Manager that holds two
// vectors of pools (CPU, GPU) keyed by a 16-bit memory_id.
package memory

import (
	"errors"
	"fmt"
	"sync"
	"unsafe"

	"github.com/terra-gfx/terra/vk"
)

var (
	// ErrNoSuitableMemoryType indicates no memory type matches requirements.
	ErrNoSuitableMemoryType = errors.New("memory: no suitable memory type")

	// ErrInvalidAllocation indicates an Allocation that does not belong to
	// this manager, or has already been freed.
	ErrInvalidAllocation = errors.New("memory: invalid allocation")
)

// poolClass distinguishes the CPU and GPU pool vectors. It also occupies
// the high bit of every Allocation.MemoryID.
type poolClass uint16

const (
	classGPU poolClass = 0
	classCPU poolClass = 1

	cpuIDBit  uint16 = 0x8000
	idIndexMask uint16 = 0x7fff
)

// pool owns one VkDeviceMemory object of a single memory-property class and
// memory-type index, with a persistent mapping when host-visible.
type pool struct {
	id              uint16
	memory          vk.DeviceMemory
	size            uint64
	memoryTypeIndex uint32
	buddy           *Buddy
	mappedBase      uintptr
}

// Allocation is the handle returned by Manager.Allocate. gpu_offset is
// always aligned to the requested alignment; cpu_offset is meaningful only
// when HostVisible is true, and equals the pool's mapped base plus
// gpu_offset. Valid is cleared by Manager.Free to mark a moved-from value.
type Allocation struct {
	GPUOffset   uint64
	CPUOffset   uintptr
	HostVisible bool
	Size        uint64
	Alignment   uint64
	MemoryID    uint16
	Valid       bool

	buddyBlock Block
}

// Config mirrors the teacher allocator's tunables, restyled around the two
// pool vectors.
type Config struct {
	// InitialBudget sizes the first pool created for a given memory type.
	// Default: 64MB.
	InitialBudget uint64

	// MinBlockSize is the buddy allocator's granularity. Default: 256B,
	// matching Vulkan's minimum suballocation alignment.
	MinBlockSize uint64
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		InitialBudget: 64 << 20,
		MinBlockSize:  256,
	}
}

// Manager is the device memory allocator: two vectors of pools (CPU, GPU)
// keyed by a 16-bit memory_id, each suballocated with a buddy allocator.
//
// Thread-safe. Allocate/Free may be called concurrently.
type Manager struct {
	mu sync.Mutex

	device vk.Device
	cmds   *vk.Commands

	config   Config
	selector *MemoryTypeSelector

	gpuPools []*pool
	cpuPools []*pool
}

// NewManager creates a Manager over the given device's memory properties.
func NewManager(device vk.Device, cmds *vk.Commands, props DeviceMemoryProperties, config Config) *Manager {
	if config.InitialBudget == 0 {
		config = DefaultConfig()
	}
	return &Manager{
		device:   device,
		cmds:     cmds,
		config:   config,
		selector: NewMemoryTypeSelector(props),
	}
}

// Selector returns the underlying memory type selector, e.g. so a caller
// can check IsDeviceLocal/IsHostVisible before building a request.
func (m *Manager) Selector() *MemoryTypeSelector {
	return m.selector
}

// Allocate implements the allocate(resource_handle, property) algorithm:
// select a memory type, scan that class's pools for the first one with
// room, else grow a new pool sized max(initial_budget, 2x requested)
// rounded up to a power of 2 (the buddy allocator requires one).
func (m *Manager) Allocate(req AllocationRequest) (Allocation, error) {
	memTypeIndex, ok := m.selector.SelectMemoryType(req)
	if !ok {
		return Allocation{}, ErrNoSuitableMemoryType
	}
	hostVisible := m.selector.IsHostVisible(memTypeIndex)

	alignment := req.Alignment
	if alignment == 0 {
		alignment = 1
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	class := classGPU
	pools := &m.gpuPools
	if hostVisible {
		class = classCPU
		pools = &m.cpuPools
	}

	for _, p := range *pools {
		if p.memoryTypeIndex != memTypeIndex {
			continue
		}
		if bb, err := p.buddy.Alloc(req.Size, alignment); err == nil {
			return m.newAllocation(p, bb, req.Alignment), nil
		}
	}

	newSize := maxU64(m.config.InitialBudget, 2*req.Size)
	newSize = nextPowerOfTwo(maxU64(newSize, maxU64(req.Size, alignment)))

	p, err := m.createPool(class, memTypeIndex, newSize, hostVisible)
	if err != nil {
		return Allocation{}, err
	}
	*pools = append(*pools, p)

	bb, err := p.buddy.Alloc(req.Size, alignment)
	if err != nil {
		return Allocation{}, fmt.Errorf("memory: new pool too small: %w", err)
	}

	return m.newAllocation(p, bb, req.Alignment), nil
}

// Free returns an allocation's region to its pool's buddy allocator. Empty
// pools are not freed automatically — a later allocation of the same
// memory type may reuse the space.
func (m *Manager) Free(a *Allocation) error {
	if a == nil || !a.Valid {
		return ErrInvalidAllocation
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.poolByID(a.MemoryID)
	if !ok {
		return ErrInvalidAllocation
	}
	if err := p.buddy.Free(a.buddyBlock); err != nil {
		return err
	}

	a.Valid = false
	return nil
}

// Memory returns the VkDeviceMemory handle backing the pool identified by
// id, for resource binding (vkBindBufferMemory/vkBindImageMemory).
func (m *Manager) Memory(id uint16) (vk.DeviceMemory, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.poolByID(id)
	if !ok {
		return 0, false
	}
	return p.memory, true
}

func (m *Manager) poolByID(id uint16) (*pool, bool) {
	idx := int(id & idIndexMask)
	if id&cpuIDBit != 0 {
		if idx >= len(m.cpuPools) {
			return nil, false
		}
		return m.cpuPools[idx], true
	}
	if idx >= len(m.gpuPools) {
		return nil, false
	}
	return m.gpuPools[idx], true
}

func (m *Manager) newAllocation(p *pool, bb Block, alignment uint64) Allocation {
	a := Allocation{
		GPUOffset:  bb.Offset,
		Size:       bb.Size,
		Alignment:  alignment,
		MemoryID:   p.id,
		Valid:      true,
		buddyBlock: bb,
	}
	if p.mappedBase != 0 {
		a.HostVisible = true
		a.CPUOffset = p.mappedBase + uintptr(bb.Offset)
	}
	return a
}

func (m *Manager) createPool(class poolClass, memTypeIndex uint32, size uint64, hostVisible bool) (*pool, error) {
	info := vk.MemoryAllocateInfo{
		SType:           vk.StructureTypeMemoryAllocateInfo,
		AllocationSize:  vk.DeviceSize(size),
		MemoryTypeIndex: memTypeIndex,
	}

	var memory vk.DeviceMemory
	if result := m.cmds.AllocateMemory(m.device, &info, nil, &memory); result != vk.Success {
		return nil, fmt.Errorf("memory: vkAllocateMemory(%d bytes, type %d): %d", size, memTypeIndex, result)
	}

	buddy, err := NewBuddy(size, m.config.MinBlockSize)
	if err != nil {
		m.cmds.FreeMemory(m.device, memory, nil)
		return nil, err
	}

	p := &pool{
		memory:          memory,
		size:            size,
		memoryTypeIndex: memTypeIndex,
		buddy:           buddy,
	}

	var index int
	if class == classCPU {
		index = len(m.cpuPools)
		p.id = uint16(index) | cpuIDBit
	} else {
		index = len(m.gpuPools)
		p.id = uint16(index)
	}

	if hostVisible {
		var data unsafe.Pointer
		if result := m.cmds.MapMemory(m.device, memory, 0, vk.WholeSize, 0, &data); result != vk.Success {
			m.cmds.FreeMemory(m.device, memory, nil)
			return nil, fmt.Errorf("memory: vkMapMemory: %d", result)
		}
		p.mappedBase = uintptr(data)
	}

	return p, nil
}

// Destroy frees every pool's VkDeviceMemory. Call once, before destroying
// the Vulkan device, after all resources bound to this manager are gone.
func (m *Manager) Destroy() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, p := range m.gpuPools {
		m.cmds.FreeMemory(m.device, p.memory, nil)
	}
	for _, p := range m.cpuPools {
		if p.mappedBase != 0 {
			m.cmds.UnmapMemory(m.device, p.memory)
		}
		m.cmds.FreeMemory(m.device, p.memory, nil)
	}
	m.gpuPools = nil
	m.cpuPools = nil
}

func maxU64(a, b uint64) uint64 {
	if a > b {
		return a
	}
	return b
}
