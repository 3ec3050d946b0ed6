// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT
package vk

import "unsafe"

func (c *Commands) CreateDescriptorSetLayout(device Device, info *DescriptorSetLayoutCreateInfo, alloc *AllocationCallbacks, out *DescriptorSetLayout) Result {
	args := [4]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&info), unsafe.Pointer(&alloc), unsafe.Pointer(&out)}
	return callResult(&SigResultHandlePtrPtrPtr, c.createDescriptorSetLayout, args[:])
}

func (c *Commands) DestroyDescriptorSetLayout(device Device, layout DescriptorSetLayout, alloc *AllocationCallbacks) {
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&layout), unsafe.Pointer(&alloc)}
	callVoid(&SigVoidHandleHandlePtr, c.destroyDescriptorSetLayout, args[:])
}
