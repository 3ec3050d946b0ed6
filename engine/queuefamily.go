// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package engine

import (
	"unsafe"

	"github.com/terra-gfx/terra/vk"
)

// ptrToFirst returns v's address as a uintptr, matching the Vulkan
// struct fields (PNext, PQueuePriorities, ...) that model a C pointer as
// uintptr rather than unsafe.Pointer. Mirrors internal/gpusync's helper
// of the same name; kept package-local since it's a one-line leaf.
func ptrToFirst[T any](v *T) uintptr {
	return uintptr(unsafe.Pointer(v))
}

// QueueType names one of the three logical queues spec.md §5 describes;
// any two (or all three) may end up sharing the same Vulkan queue family.
type QueueType int

const (
	QueueGraphics QueueType = iota
	QueueCompute
	QueueTransfer
)

// QueueFamilyIndices records, for each logical queue, the physical
// device's queue family index it was assigned to. Every logical queue
// uses queue index 0 of its family.
type QueueFamilyIndices struct {
	Graphics uint32
	Compute  uint32
	Transfer uint32
}

type familyCandidate struct {
	index      uint32
	flags      vk.QueueFlags
	queueCount uint32
	assigned   uint32 // how many logical queues have claimed a slot here
}

// QueueFamilyManager discovers the mapping from Terra's three logical
// queues to physical queue families, grounded on original_source's
// VkQueueFamilyManager: prefer a dedicated transfer-only family, then a
// dedicated compute family, else share with graphics.
type QueueFamilyManager struct {
	indices    QueueFamilyIndices
	candidates []familyCandidate
}

// DiscoverQueueFamilies inspects physicalDevice's queue family
// properties and assigns graphics, compute, and transfer to concrete
// family indices. Graphics is always assigned to the first family
// advertising VK_QUEUE_GRAPHICS_BIT (Terra requires one for
// presentation); transfer prefers a family with neither the graphics
// nor the compute bit, and compute prefers a family without the
// graphics bit. Both fall back to the first family that supports their
// bit, and finally to the graphics family itself.
func DiscoverQueueFamilies(cmds *vk.Commands, physicalDevice vk.PhysicalDevice) (*QueueFamilyManager, error) {
	var count uint32
	cmds.GetPhysicalDeviceQueueFamilyProperties(physicalDevice, &count, nil)
	if count == 0 {
		return nil, newError(ErrNoSuitableMemoryType, "no queue families reported", nil)
	}
	props := make([]vk.QueueFamilyProperties, count)
	cmds.GetPhysicalDeviceQueueFamilyProperties(physicalDevice, &count, &props[0])

	candidates := make([]familyCandidate, count)
	for i, p := range props {
		candidates[i] = familyCandidate{index: uint32(i), flags: p.QueueFlags, queueCount: p.QueueCount}
	}

	m := &QueueFamilyManager{candidates: candidates}

	graphics, ok := m.firstWith(vk.QueueGraphicsBit)
	if !ok {
		return nil, newError(ErrNoSuitableMemoryType, "no queue family supports VK_QUEUE_GRAPHICS_BIT", nil)
	}
	m.indices.Graphics = graphics
	m.claim(graphics)

	m.indices.Transfer = m.pickDedicatedOrShared(vk.QueueTransferBit, vk.QueueGraphicsBit|vk.QueueComputeBit, graphics)
	m.claim(m.indices.Transfer)

	m.indices.Compute = m.pickDedicatedOrShared(vk.QueueComputeBit, vk.QueueGraphicsBit, graphics)
	m.claim(m.indices.Compute)

	return m, nil
}

func (m *QueueFamilyManager) firstWith(bit vk.QueueFlags) (uint32, bool) {
	for _, c := range m.candidates {
		if c.flags&bit != 0 {
			return c.index, true
		}
	}
	return 0, false
}

// pickDedicatedOrShared looks for a family supporting want but none of
// without first (a "dedicated" family per the original's terminology),
// then any family supporting want, then falls back to fallback.
func (m *QueueFamilyManager) pickDedicatedOrShared(want, without vk.QueueFlags, fallback uint32) uint32 {
	for _, c := range m.candidates {
		if c.flags&want != 0 && c.flags&without == 0 {
			return c.index
		}
	}
	if idx, ok := m.firstWith(want); ok {
		return idx
	}
	return fallback
}

func (m *QueueFamilyManager) claim(index uint32) {
	for i := range m.candidates {
		if m.candidates[i].index == index {
			m.candidates[i].assigned++
			return
		}
	}
}

// Indices returns the discovered family assignment.
func (m *QueueFamilyManager) Indices() QueueFamilyIndices { return m.indices }

// Index returns the family index assigned to typ.
func (m *QueueFamilyManager) Index(typ QueueType) uint32 {
	switch typ {
	case QueueCompute:
		return m.indices.Compute
	case QueueTransfer:
		return m.indices.Transfer
	default:
		return m.indices.Graphics
	}
}

// UniqueFamilies returns the distinct family indices among the three
// logical queues, the set DeviceQueueCreateInfo entries must cover.
func (m *QueueFamilyManager) UniqueFamilies() []uint32 {
	seen := map[uint32]bool{}
	var out []uint32
	for _, idx := range []uint32{m.indices.Graphics, m.indices.Compute, m.indices.Transfer} {
		if !seen[idx] {
			seen[idx] = true
			out = append(out, idx)
		}
	}
	return out
}

// DeviceQueueCreateInfos builds one VkDeviceQueueCreateInfo per unique
// family, each requesting a single queue at priority 1.0, for use in
// VkDeviceCreateInfo.PQueueCreateInfos.
func (m *QueueFamilyManager) DeviceQueueCreateInfos() ([]vk.DeviceQueueCreateInfo, *float32) {
	priority := float32(1.0)
	families := m.UniqueFamilies()
	infos := make([]vk.DeviceQueueCreateInfo, len(families))
	for i, f := range families {
		infos[i] = vk.DeviceQueueCreateInfo{
			SType:            vk.StructureTypeDeviceQueueCreateInfo,
			QueueFamilyIndex: f,
			QueueCount:       1,
			PQueuePriorities: ptrToFirst(&priority),
		}
	}
	return infos, &priority
}
