// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vk

import "unsafe"

// --- Queues ---

func (c *Commands) GetDeviceQueue(device Device, queueFamilyIndex, queueIndex uint32, out *Queue) {
	args := [4]unsafe.Pointer{
		unsafe.Pointer(&device), unsafe.Pointer(&queueFamilyIndex),
		unsafe.Pointer(&queueIndex), unsafe.Pointer(&out),
	}
	callVoid(&SigVoidDeviceU32Ptr, c.getDeviceQueue, args[:])
}

func (c *Commands) QueueWaitIdle(queue Queue) Result {
	args := [1]unsafe.Pointer{unsafe.Pointer(&queue)}
	return callResult(&SigResultHandle, c.queueWaitIdle, args[:])
}

func (c *Commands) DeviceWaitIdle(device Device) Result {
	args := [1]unsafe.Pointer{unsafe.Pointer(&device)}
	return callResult(&SigResultHandle, c.deviceWaitIdle, args[:])
}

// --- Command pools ---

func (c *Commands) CreateCommandPool(device Device, info *CommandPoolCreateInfo, alloc *AllocationCallbacks, out *CommandPool) Result {
	args := [4]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&info), unsafe.Pointer(&alloc), unsafe.Pointer(&out)}
	return callResult(&SigResultHandlePtrPtrPtr, c.createCommandPool, args[:])
}

func (c *Commands) DestroyCommandPool(device Device, pool CommandPool, alloc *AllocationCallbacks) {
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&pool), unsafe.Pointer(&alloc)}
	callVoid(&SigVoidHandleHandlePtr, c.destroyCommandPool, args[:])
}

func (c *Commands) ResetCommandPool(device Device, pool CommandPool, flags uint32) Result {
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&pool), unsafe.Pointer(&flags)}
	return callResult(&SigResultHandleHandleU32, c.resetCommandPool, args[:])
}

func (c *Commands) ResetCommandBuffer(cmd CommandBuffer, flags uint32) Result {
	args := [2]unsafe.Pointer{unsafe.Pointer(&cmd), unsafe.Pointer(&flags)}
	return callResult(&SigResultHandleU32, c.resetCommandBuffer, args[:])
}

// --- Timeline semaphores ---

func (c *Commands) GetSemaphoreCounterValue(device Device, sem Semaphore, out *uint64) Result {
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&sem), unsafe.Pointer(&out)}
	return callResult(&SigResultHandleHandlePtr, c.getSemaphoreCounterValue, args[:])
}

func (c *Commands) SignalSemaphore(device Device, info *SemaphoreSignalInfo) Result {
	args := [2]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&info)}
	return callResult(&SigResultDevicePtr, c.signalSemaphore, args[:])
}
