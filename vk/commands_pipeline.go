// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vk

import "unsafe"

// CreateShaderModule wraps vkCreateShaderModule.
func (c *Commands) CreateShaderModule(device Device, info *ShaderModuleCreateInfo, alloc *AllocationCallbacks, out *ShaderModule) Result {
	args := [4]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&info), unsafe.Pointer(&alloc), unsafe.Pointer(&out)}
	return callResult(&SigResultHandlePtrPtrPtr, c.createShaderModule, args[:])
}

// DestroyShaderModule wraps vkDestroyShaderModule.
func (c *Commands) DestroyShaderModule(device Device, module ShaderModule, alloc *AllocationCallbacks) {
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&module), unsafe.Pointer(&alloc)}
	callVoid(&SigVoidHandleHandlePtr, c.destroyShaderModule, args[:])
}

// CreatePipelineLayout wraps vkCreatePipelineLayout.
func (c *Commands) CreatePipelineLayout(device Device, info *PipelineLayoutCreateInfo, alloc *AllocationCallbacks, out *PipelineLayout) Result {
	args := [4]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&info), unsafe.Pointer(&alloc), unsafe.Pointer(&out)}
	return callResult(&SigResultHandlePtrPtrPtr, c.createPipelineLayout, args[:])
}

// DestroyPipelineLayout wraps vkDestroyPipelineLayout.
func (c *Commands) DestroyPipelineLayout(device Device, layout PipelineLayout, alloc *AllocationCallbacks) {
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&layout), unsafe.Pointer(&alloc)}
	callVoid(&SigVoidHandleHandlePtr, c.destroyPipelineLayout, args[:])
}

// CreateGraphicsPipelines wraps vkCreateGraphicsPipelines for a single
// pipeline (count is always 1 in Terra's PipelineManager, so callers pass
// one CreateInfo and receive one handle back).
func (c *Commands) CreateGraphicsPipelines(device Device, cache PipelineCache, count uint32, infos *GraphicsPipelineCreateInfo, alloc *AllocationCallbacks, out *Pipeline) Result {
	args := [6]unsafe.Pointer{
		unsafe.Pointer(&device), unsafe.Pointer(&cache), unsafe.Pointer(&count),
		unsafe.Pointer(&infos), unsafe.Pointer(&alloc), unsafe.Pointer(&out),
	}
	return callResult(&SigResultCreatePipelines, c.createGraphicsPipelines, args[:])
}

// CreateComputePipelines wraps vkCreateComputePipelines for a single
// pipeline.
func (c *Commands) CreateComputePipelines(device Device, cache PipelineCache, count uint32, infos *ComputePipelineCreateInfo, alloc *AllocationCallbacks, out *Pipeline) Result {
	args := [6]unsafe.Pointer{
		unsafe.Pointer(&device), unsafe.Pointer(&cache), unsafe.Pointer(&count),
		unsafe.Pointer(&infos), unsafe.Pointer(&alloc), unsafe.Pointer(&out),
	}
	return callResult(&SigResultCreatePipelines, c.createComputePipelines, args[:])
}

// DestroyPipeline wraps vkDestroyPipeline.
func (c *Commands) DestroyPipeline(device Device, pipeline Pipeline, alloc *AllocationCallbacks) {
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&pipeline), unsafe.Pointer(&alloc)}
	callVoid(&SigVoidHandleHandlePtr, c.destroyPipeline, args[:])
}
