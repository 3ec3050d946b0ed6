// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vk

import "unsafe"

// This file wraps VK_KHR_surface/VK_KHR_swapchain functions engine's
// swapchain integration needs, beyond the platform-specific
// vkCreate{Xlib,Wayland,Metal,Win32}SurfaceKHR wrappers already present
// in commands_wrap.go.

func (c *Commands) DestroySurfaceKHR(instance Instance, surface SurfaceKHR, alloc *AllocationCallbacks) {
	args := [3]unsafe.Pointer{unsafe.Pointer(&instance), unsafe.Pointer(&surface), unsafe.Pointer(&alloc)}
	callVoid(&SigVoidHandleHandlePtr, c.destroySurfaceKHR, args[:])
}

func (c *Commands) GetPhysicalDeviceSurfaceSupportKHR(physicalDevice PhysicalDevice, queueFamilyIndex uint32, surface SurfaceKHR, out *Bool32) Result {
	args := [4]unsafe.Pointer{unsafe.Pointer(&physicalDevice), unsafe.Pointer(&queueFamilyIndex), unsafe.Pointer(&surface), unsafe.Pointer(&out)}
	return callResult(&SigResultHandleU32HandlePtr, c.getPhysicalDeviceSurfaceSupportKHR, args[:])
}

func (c *Commands) GetPhysicalDeviceSurfaceCapabilitiesKHR(physicalDevice PhysicalDevice, surface SurfaceKHR, out *SurfaceCapabilitiesKHR) Result {
	args := [3]unsafe.Pointer{unsafe.Pointer(&physicalDevice), unsafe.Pointer(&surface), unsafe.Pointer(&out)}
	return callResult(&SigResultHandleHandlePtr, c.getPhysicalDeviceSurfaceCapabilitiesKHR, args[:])
}

func (c *Commands) GetPhysicalDeviceSurfaceFormatsKHR(physicalDevice PhysicalDevice, surface SurfaceKHR, count *uint32, out *SurfaceFormatKHR) Result {
	args := [4]unsafe.Pointer{unsafe.Pointer(&physicalDevice), unsafe.Pointer(&surface), unsafe.Pointer(&count), unsafe.Pointer(&out)}
	return callResult(&SigResultHandleHandlePtrPtr, c.getPhysicalDeviceSurfaceFormatsKHR, args[:])
}

func (c *Commands) GetPhysicalDeviceSurfacePresentModesKHR(physicalDevice PhysicalDevice, surface SurfaceKHR, count *uint32, out *PresentModeKHR) Result {
	args := [4]unsafe.Pointer{unsafe.Pointer(&physicalDevice), unsafe.Pointer(&surface), unsafe.Pointer(&count), unsafe.Pointer(&out)}
	return callResult(&SigResultHandleHandlePtrPtr, c.getPhysicalDeviceSurfacePresentModesKHR, args[:])
}

func (c *Commands) CreateSwapchainKHR(device Device, info *SwapchainCreateInfoKHR, alloc *AllocationCallbacks, out *SwapchainKHR) Result {
	args := [4]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&info), unsafe.Pointer(&alloc), unsafe.Pointer(&out)}
	return callResult(&SigResultHandlePtrPtrPtr, c.createSwapchainKHR, args[:])
}

func (c *Commands) DestroySwapchainKHR(device Device, swapchain SwapchainKHR, alloc *AllocationCallbacks) {
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&swapchain), unsafe.Pointer(&alloc)}
	callVoid(&SigVoidHandleHandlePtr, c.destroySwapchainKHR, args[:])
}

func (c *Commands) GetSwapchainImagesKHR(device Device, swapchain SwapchainKHR, count *uint32, out *Image) Result {
	args := [4]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&swapchain), unsafe.Pointer(&count), unsafe.Pointer(&out)}
	return callResult(&SigResultHandleHandlePtrPtr, c.getSwapchainImagesKHR, args[:])
}

// AcquireNextImageKHR blocks (bounded by timeoutNs) until a swapchain
// image is available, signalling semaphore and/or fence (either may be
// the zero handle) and writing the acquired image's index to imageIndex.
func (c *Commands) AcquireNextImageKHR(device Device, swapchain SwapchainKHR, timeoutNs uint64, semaphore Semaphore, fence Fence, imageIndex *uint32) Result {
	args := [6]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&swapchain), unsafe.Pointer(&timeoutNs), unsafe.Pointer(&semaphore), unsafe.Pointer(&fence), unsafe.Pointer(&imageIndex)}
	return callResult(&SigResultAcquireNextImage, c.acquireNextImageKHR, args[:])
}

func (c *Commands) QueuePresentKHR(queue Queue, info *PresentInfoKHR) Result {
	args := [2]unsafe.Pointer{unsafe.Pointer(&queue), unsafe.Pointer(&info)}
	return callResult(&SigResultHandlePtr, c.queuePresentKHR, args[:])
}
