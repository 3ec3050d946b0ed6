// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vk

import "unsafe"

// --- Device memory ---

func (c *Commands) AllocateMemory(device Device, info *MemoryAllocateInfo, alloc *AllocationCallbacks, out *DeviceMemory) Result {
	args := [4]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&info), unsafe.Pointer(&alloc), unsafe.Pointer(&out)}
	return callResult(&SigResultHandlePtrPtrPtr, c.allocateMemory, args[:])
}

func (c *Commands) FreeMemory(device Device, memory DeviceMemory, alloc *AllocationCallbacks) {
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&memory), unsafe.Pointer(&alloc)}
	callVoid(&SigVoidHandleHandlePtr, c.freeMemory, args[:])
}

// MapMemory wraps vkMapMemory; Terra keeps pools host-visible mapped for
// their whole lifetime, so this is only called once per pool.
func (c *Commands) MapMemory(device Device, memory DeviceMemory, offset, size DeviceSize, flags uint32, data *unsafe.Pointer) Result {
	args := [6]unsafe.Pointer{
		unsafe.Pointer(&device), unsafe.Pointer(&memory), unsafe.Pointer(&offset),
		unsafe.Pointer(&size), unsafe.Pointer(&flags), unsafe.Pointer(&data),
	}
	return callResult(&SigResultMapMemory, c.mapMemory, args[:])
}

func (c *Commands) UnmapMemory(device Device, memory DeviceMemory) {
	args := [2]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&memory)}
	callVoid(&SigVoidHandleHandle, c.unmapMemory, args[:])
}

func (c *Commands) GetPhysicalDeviceMemoryProperties(physicalDevice PhysicalDevice, props *PhysicalDeviceMemoryProperties) {
	args := [2]unsafe.Pointer{unsafe.Pointer(&physicalDevice), unsafe.Pointer(&props)}
	callVoid(&SigVoidHandlePtr, c.getPhysicalDeviceMemoryProperties, args[:])
}

// --- Buffers ---

func (c *Commands) CreateBuffer(device Device, info *BufferCreateInfo, alloc *AllocationCallbacks, out *Buffer) Result {
	args := [4]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&info), unsafe.Pointer(&alloc), unsafe.Pointer(&out)}
	return callResult(&SigResultHandlePtrPtrPtr, c.createBuffer, args[:])
}

func (c *Commands) DestroyBuffer(device Device, buffer Buffer, alloc *AllocationCallbacks) {
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&buffer), unsafe.Pointer(&alloc)}
	callVoid(&SigVoidHandleHandlePtr, c.destroyBuffer, args[:])
}

func (c *Commands) GetBufferMemoryRequirements(device Device, buffer Buffer, out *MemoryRequirements) {
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&buffer), unsafe.Pointer(&out)}
	callVoid(&SigVoidHandleHandlePtr, c.getBufferMemoryRequirements, args[:])
}

func (c *Commands) BindBufferMemory(device Device, buffer Buffer, memory DeviceMemory, offset DeviceSize) Result {
	args := [4]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&buffer), unsafe.Pointer(&memory), unsafe.Pointer(&offset)}
	return callResult(&SigResultHandle4, c.bindBufferMemory, args[:])
}

// --- Images ---

func (c *Commands) CreateImage(device Device, info *ImageCreateInfo, alloc *AllocationCallbacks, out *Image) Result {
	args := [4]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&info), unsafe.Pointer(&alloc), unsafe.Pointer(&out)}
	return callResult(&SigResultHandlePtrPtrPtr, c.createImage, args[:])
}

func (c *Commands) DestroyImage(device Device, image Image, alloc *AllocationCallbacks) {
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&image), unsafe.Pointer(&alloc)}
	callVoid(&SigVoidHandleHandlePtr, c.destroyImage, args[:])
}

func (c *Commands) GetImageMemoryRequirements(device Device, image Image, out *MemoryRequirements) {
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&image), unsafe.Pointer(&out)}
	callVoid(&SigVoidHandleHandlePtr, c.getImageMemoryRequirements, args[:])
}

func (c *Commands) BindImageMemory(device Device, image Image, memory DeviceMemory, offset DeviceSize) Result {
	args := [4]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&image), unsafe.Pointer(&memory), unsafe.Pointer(&offset)}
	return callResult(&SigResultHandle4, c.bindImageMemory, args[:])
}

func (c *Commands) CreateImageView(device Device, info *ImageViewCreateInfo, alloc *AllocationCallbacks, out *ImageView) Result {
	args := [4]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&info), unsafe.Pointer(&alloc), unsafe.Pointer(&out)}
	return callResult(&SigResultHandlePtrPtrPtr, c.createImageView, args[:])
}

func (c *Commands) DestroyImageView(device Device, view ImageView, alloc *AllocationCallbacks) {
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&view), unsafe.Pointer(&alloc)}
	callVoid(&SigVoidHandleHandlePtr, c.destroyImageView, args[:])
}

func (c *Commands) CreateSampler(device Device, info *SamplerCreateInfo, alloc *AllocationCallbacks, out *Sampler) Result {
	args := [4]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&info), unsafe.Pointer(&alloc), unsafe.Pointer(&out)}
	return callResult(&SigResultHandlePtrPtrPtr, c.createSampler, args[:])
}

func (c *Commands) DestroySampler(device Device, sampler Sampler, alloc *AllocationCallbacks) {
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&sampler), unsafe.Pointer(&alloc)}
	callVoid(&SigVoidHandleHandlePtr, c.destroySampler, args[:])
}
