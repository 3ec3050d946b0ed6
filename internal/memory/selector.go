// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package memory

import (
	"github.com/terra-gfx/terra/vk"
)

// UsageFlags specifies intended memory usage; it steers which Vulkan
// memory-property flags SelectMemoryType treats as required vs preferred.
type UsageFlags uint32

const (
	// UsageFastDeviceAccess indicates memory primarily accessed by GPU.
	// Prefers DEVICE_LOCAL memory.
	UsageFastDeviceAccess UsageFlags = 1 << iota

	// UsageHostAccess indicates memory needs CPU access.
	// Requires HOST_VISIBLE memory.
	UsageHostAccess

	// UsageUpload indicates memory used for CPU->GPU transfers.
	// Requires HOST_VISIBLE, prefers HOST_COHERENT.
	UsageUpload

	// UsageDownload indicates memory used for GPU->CPU readback.
	// Prefers HOST_VISIBLE + HOST_CACHED.
	UsageDownload

	// UsageTransient indicates memory for short-lived allocations.
	// May use LAZILY_ALLOCATED if available.
	UsageTransient
)

// AllocationRequest describes a memory allocation request, generally built
// from a vkGetXMemoryRequirements call plus the caller's intended usage.
type AllocationRequest struct {
	// Size is the required allocation size in bytes.
	Size uint64

	// Alignment is the required alignment (must be power of 2).
	Alignment uint64

	// Usage specifies how the memory will be used.
	Usage UsageFlags

	// MemoryTypeBits is a bitmask of allowed memory type indices, taken
	// directly from VkMemoryRequirements.memoryTypeBits.
	MemoryTypeBits uint32
}

// DeviceMemoryProperties holds a device's memory types and heaps, in the
// shape returned by vkGetPhysicalDeviceMemoryProperties.
type DeviceMemoryProperties struct {
	MemoryTypes []vk.MemoryType
	MemoryHeaps []vk.MemoryHeap
}

// DeviceMemoryPropertiesFrom converts the raw Vulkan struct (fixed-size
// arrays, counted fields) into the slice-based form the selector uses.
func DeviceMemoryPropertiesFrom(props *vk.PhysicalDeviceMemoryProperties) DeviceMemoryProperties {
	return DeviceMemoryProperties{
		MemoryTypes: props.MemoryTypes[:props.MemoryTypeCount],
		MemoryHeaps: props.MemoryHeaps[:props.MemoryHeapCount],
	}
}

// MemoryTypeSelector picks the best Vulkan memory type index for a request,
// in two passes: required+preferred flags, then required flags alone.
type MemoryTypeSelector struct {
	properties DeviceMemoryProperties

	// validTypes is a bitmask of memory types whose property flags we fully
	// understand; exotic vendor-specific types are excluded.
	validTypes uint32
}

const knownMemoryFlags = vk.MemoryPropertyDeviceLocalBit |
	vk.MemoryPropertyHostVisibleBit |
	vk.MemoryPropertyHostCoherentBit |
	vk.MemoryPropertyHostCachedBit |
	vk.MemoryPropertyLazilyAllocatedBit

// NewMemoryTypeSelector creates a selector from device memory properties.
func NewMemoryTypeSelector(props DeviceMemoryProperties) *MemoryTypeSelector {
	var validTypes uint32
	for i, mt := range props.MemoryTypes {
		if mt.PropertyFlags & ^knownMemoryFlags == 0 {
			validTypes |= 1 << i
		}
	}

	return &MemoryTypeSelector{properties: props, validTypes: validTypes}
}

// SelectMemoryType finds the best memory type index for the given request.
func (s *MemoryTypeSelector) SelectMemoryType(req AllocationRequest) (uint32, bool) {
	required, preferred := s.usageToFlags(req.Usage)

	if idx, ok := s.findMemoryType(req.MemoryTypeBits, required|preferred); ok {
		return idx, true
	}
	return s.findMemoryType(req.MemoryTypeBits, required)
}

func (s *MemoryTypeSelector) findMemoryType(typeBits uint32, flags vk.MemoryPropertyFlags) (uint32, bool) {
	for i, mt := range s.properties.MemoryTypes {
		typeMask := uint32(1) << i

		if typeBits&typeMask == 0 {
			continue
		}
		if s.validTypes&typeMask == 0 {
			continue
		}
		if mt.PropertyFlags&flags == flags {
			return uint32(i), true
		}
	}

	return 0, false
}

func (s *MemoryTypeSelector) usageToFlags(usage UsageFlags) (required, preferred vk.MemoryPropertyFlags) {
	if usage&UsageHostAccess != 0 || usage&UsageUpload != 0 || usage&UsageDownload != 0 {
		required |= vk.MemoryPropertyHostVisibleBit

		if usage&UsageUpload != 0 {
			preferred |= vk.MemoryPropertyHostCoherentBit
		}
		if usage&UsageDownload != 0 {
			preferred |= vk.MemoryPropertyHostCachedBit
		}
	} else if usage&UsageFastDeviceAccess != 0 {
		preferred |= vk.MemoryPropertyDeviceLocalBit
	}

	if usage&UsageTransient != 0 {
		preferred |= vk.MemoryPropertyLazilyAllocatedBit
	}

	return required, preferred
}

// GetMemoryType returns the memory type at the given index.
func (s *MemoryTypeSelector) GetMemoryType(index uint32) (vk.MemoryType, bool) {
	if int(index) >= len(s.properties.MemoryTypes) {
		return vk.MemoryType{}, false
	}
	return s.properties.MemoryTypes[index], true
}

// IsHostVisible returns true if the memory type is host visible.
func (s *MemoryTypeSelector) IsHostVisible(typeIndex uint32) bool {
	mt, ok := s.GetMemoryType(typeIndex)
	return ok && mt.PropertyFlags&vk.MemoryPropertyHostVisibleBit != 0
}

// IsDeviceLocal returns true if the memory type is device local.
func (s *MemoryTypeSelector) IsDeviceLocal(typeIndex uint32) bool {
	mt, ok := s.GetMemoryType(typeIndex)
	return ok && mt.PropertyFlags&vk.MemoryPropertyDeviceLocalBit != 0
}
