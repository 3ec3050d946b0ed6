// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vk

import "unsafe"

// This file wraps the instance/physical-device/device bootstrap
// functions engine's device initialisation needs: vkCreateInstance
// through vkQueueSubmit. These sit below LoadGlobal/LoadInstance/
// LoadDevice in the call order documented in commands.go.

func (c *Commands) CreateInstance(info *InstanceCreateInfo, alloc *AllocationCallbacks, out *Instance) Result {
	args := [3]unsafe.Pointer{unsafe.Pointer(&info), unsafe.Pointer(&alloc), unsafe.Pointer(&out)}
	return callResult(&SigResultPtrPtrPtr, c.createInstance, args[:])
}

func (c *Commands) DestroyInstance(instance Instance, alloc *AllocationCallbacks) {
	args := [2]unsafe.Pointer{unsafe.Pointer(&instance), unsafe.Pointer(&alloc)}
	callVoid(&SigVoidHandlePtr, c.destroyInstance, args[:])
}

func (c *Commands) EnumeratePhysicalDevices(instance Instance, count *uint32, out *PhysicalDevice) Result {
	args := [3]unsafe.Pointer{unsafe.Pointer(&instance), unsafe.Pointer(&count), unsafe.Pointer(&out)}
	return callResult(&SigResultHandleU32PtrPtr, c.enumeratePhysicalDevices, args[:])
}

func (c *Commands) GetPhysicalDeviceProperties(physicalDevice PhysicalDevice, out *PhysicalDeviceProperties) {
	args := [2]unsafe.Pointer{unsafe.Pointer(&physicalDevice), unsafe.Pointer(&out)}
	callVoid(&SigVoidHandlePtr, c.getPhysicalDeviceProperties, args[:])
}

func (c *Commands) GetPhysicalDeviceFeatures(physicalDevice PhysicalDevice, out *PhysicalDeviceFeatures) {
	args := [2]unsafe.Pointer{unsafe.Pointer(&physicalDevice), unsafe.Pointer(&out)}
	callVoid(&SigVoidHandlePtr, c.getPhysicalDeviceFeatures, args[:])
}

// GetPhysicalDeviceProperties2 lets out.PNext chain extension property
// structs (PhysicalDeviceDescriptorBufferPropertiesEXT) onto the query;
// the engine uses this instead of GetPhysicalDeviceProperties whenever it
// needs descriptor-buffer sizing at device init.
func (c *Commands) GetPhysicalDeviceProperties2(physicalDevice PhysicalDevice, out *PhysicalDeviceProperties2) {
	args := [2]unsafe.Pointer{unsafe.Pointer(&physicalDevice), unsafe.Pointer(&out)}
	callVoid(&SigVoidHandlePtr, c.getPhysicalDeviceProperties2, args[:])
}

func (c *Commands) GetPhysicalDeviceQueueFamilyProperties(physicalDevice PhysicalDevice, count *uint32, out *QueueFamilyProperties) {
	args := [3]unsafe.Pointer{unsafe.Pointer(&physicalDevice), unsafe.Pointer(&count), unsafe.Pointer(&out)}
	callVoid(&SigVoidHandleU32Ptr, c.getPhysicalDeviceQueueFamilyProperties, args[:])
}

func (c *Commands) CreateDevice(physicalDevice PhysicalDevice, info *DeviceCreateInfo, alloc *AllocationCallbacks, out *Device) Result {
	args := [4]unsafe.Pointer{unsafe.Pointer(&physicalDevice), unsafe.Pointer(&info), unsafe.Pointer(&alloc), unsafe.Pointer(&out)}
	return callResult(&SigResultHandlePtrPtrPtr, c.createDevice, args[:])
}

func (c *Commands) DestroyDevice(device Device, alloc *AllocationCallbacks) {
	args := [2]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&alloc)}
	callVoid(&SigVoidHandlePtr, c.destroyDevice, args[:])
}

// EnumerateDeviceExtensionProperties lists the extensions physicalDevice
// advertises (layerName nil for the device's own list, as opposed to a
// specific layer's). Called twice by convention: once with out nil to
// learn count, once to fill it.
func (c *Commands) EnumerateDeviceExtensionProperties(physicalDevice PhysicalDevice, layerName *byte, count *uint32, out *ExtensionProperties) Result {
	args := [4]unsafe.Pointer{unsafe.Pointer(&physicalDevice), unsafe.Pointer(&layerName), unsafe.Pointer(&count), unsafe.Pointer(&out)}
	return callResult(&SigResultHandlePtrPtrPtr, c.enumerateDeviceExtensionProperties, args[:])
}

// QueueSubmit wraps the core vkQueueSubmit (as opposed to QueueSubmit2,
// which internal/gpusync uses for its timeline-semaphore path). Only
// used where the host's bootstrap code needs a one-time submit before
// any frame's timeline semaphore exists, e.g. an upload that must
// complete before finalise_initialisation returns.
func (c *Commands) QueueSubmit(queue Queue, count uint32, submits *SubmitInfo, fence Fence) Result {
	args := [4]unsafe.Pointer{unsafe.Pointer(&queue), unsafe.Pointer(&count), unsafe.Pointer(&submits), unsafe.Pointer(&fence)}
	return callResult(&SigResultHandleU32PtrHandle, c.queueSubmit, args[:])
}
