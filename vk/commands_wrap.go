// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vk

import (
	"unsafe"

	"github.com/go-webgpu/goffi/ffi"
	"github.com/go-webgpu/goffi/types"
)

// This file hand-wraps the Commands entry points Terra's internal
// packages call directly (as opposed to the raw function-pointer getters
// some of the older call sites still use). Each wrapper follows the
// calling convention documented in loader.go: every argument, including
// pointer-typed ones, is passed as a pointer to its own storage.

func callVoid(sig *types.CallInterface, fn unsafe.Pointer, args []unsafe.Pointer) {
	if fn == nil {
		return
	}
	_ = ffi.CallFunction(sig, fn, nil, args)
}

func callResult(sig *types.CallInterface, fn unsafe.Pointer, args []unsafe.Pointer) Result {
	if fn == nil {
		return ErrorInitializationFailed
	}
	var result int32
	if err := ffi.CallFunction(sig, fn, unsafe.Pointer(&result), args); err != nil {
		return ErrorInitializationFailed
	}
	return Result(result)
}

// --- Command buffer recording ---

func (c *Commands) BeginCommandBuffer(cmd CommandBuffer, info *CommandBufferBeginInfo) Result {
	args := [2]unsafe.Pointer{unsafe.Pointer(&cmd), unsafe.Pointer(&info)}
	return callResult(&SigResultHandlePtr, c.beginCommandBuffer, args[:])
}

func (c *Commands) EndCommandBuffer(cmd CommandBuffer) Result {
	args := [1]unsafe.Pointer{unsafe.Pointer(&cmd)}
	return callResult(&SigResultHandle, c.endCommandBuffer, args[:])
}

func (c *Commands) AllocateCommandBuffers(device Device, info *CommandBufferAllocateInfo, out *CommandBuffer) Result {
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&info), unsafe.Pointer(&out)}
	return callResult(&SigResultHandlePtrPtr, c.allocateCommandBuffers, args[:])
}

func (c *Commands) FreeCommandBuffers(device Device, pool CommandPool, count uint32, bufs *CommandBuffer) {
	args := [4]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&pool), unsafe.Pointer(&count), unsafe.Pointer(&bufs)}
	callVoid(&SigVoidHandleHandleU32Ptr, c.freeCommandBuffers, args[:])
}

func (c *Commands) CmdBindPipeline(cmd CommandBuffer, bindPoint PipelineBindPoint, pipeline Pipeline) {
	bp := uint32(bindPoint)
	args := [3]unsafe.Pointer{unsafe.Pointer(&cmd), unsafe.Pointer(&bp), unsafe.Pointer(&pipeline)}
	callVoid(&SigVoidHandleU32Handle, c.cmdBindPipeline, args[:])
}

func (c *Commands) CmdBindDescriptorSets(cmd CommandBuffer, bindPoint PipelineBindPoint, layout PipelineLayout, firstSet, setCount uint32, sets *DescriptorSet, dynCount uint32, dynOffsets *uint32) {
	bp := uint32(bindPoint)
	args := [8]unsafe.Pointer{
		unsafe.Pointer(&cmd), unsafe.Pointer(&bp), unsafe.Pointer(&layout),
		unsafe.Pointer(&firstSet), unsafe.Pointer(&setCount), unsafe.Pointer(&sets),
		unsafe.Pointer(&dynCount), unsafe.Pointer(&dynOffsets),
	}
	callVoid(&SigVoidCmdBindDescriptorSets, c.cmdBindDescriptorSets, args[:])
}

func (c *Commands) CmdBindVertexBuffers(cmd CommandBuffer, firstBinding, count uint32, buffers *Buffer, offsets *DeviceSize) {
	args := [5]unsafe.Pointer{
		unsafe.Pointer(&cmd), unsafe.Pointer(&firstBinding), unsafe.Pointer(&count),
		unsafe.Pointer(&buffers), unsafe.Pointer(&offsets),
	}
	callVoid(&SigVoidHandleU32U32PtrPtr, c.cmdBindVertexBuffers, args[:])
}

func (c *Commands) CmdBindIndexBuffer(cmd CommandBuffer, buffer Buffer, offset DeviceSize, indexType IndexType) {
	it := uint32(indexType)
	args := [4]unsafe.Pointer{unsafe.Pointer(&cmd), unsafe.Pointer(&buffer), unsafe.Pointer(&offset), unsafe.Pointer(&it)}
	callVoid(&SigVoidHandleHandleU64U32, c.cmdBindIndexBuffer, args[:])
}

func (c *Commands) CmdDraw(cmd CommandBuffer, vertexCount, instanceCount, firstVertex, firstInstance uint32) {
	args := [5]unsafe.Pointer{unsafe.Pointer(&cmd), unsafe.Pointer(&vertexCount), unsafe.Pointer(&instanceCount), unsafe.Pointer(&firstVertex), unsafe.Pointer(&firstInstance)}
	callVoid(&SigVoidHandleU32x4, c.cmdDraw, args[:])
}

func (c *Commands) CmdDrawIndexed(cmd CommandBuffer, indexCount, instanceCount, firstIndex uint32, vertexOffset int32, firstInstance uint32) {
	args := [6]unsafe.Pointer{unsafe.Pointer(&cmd), unsafe.Pointer(&indexCount), unsafe.Pointer(&instanceCount), unsafe.Pointer(&firstIndex), unsafe.Pointer(&vertexOffset), unsafe.Pointer(&firstInstance)}
	callVoid(&SigVoidHandleU32x3I32U32, c.cmdDrawIndexed, args[:])
}

func (c *Commands) CmdDrawIndexedIndirect(cmd CommandBuffer, buffer Buffer, offset DeviceSize, drawCount, stride uint32) {
	args := [5]unsafe.Pointer{unsafe.Pointer(&cmd), unsafe.Pointer(&buffer), unsafe.Pointer(&offset), unsafe.Pointer(&drawCount), unsafe.Pointer(&stride)}
	callVoid(&SigVoidHandleHandleU64U32U32, c.cmdDrawIndexedIndirect, args[:])
}

func (c *Commands) CmdDrawIndexedIndirectCount(cmd CommandBuffer, buffer Buffer, offset DeviceSize, countBuffer Buffer, countBufferOffset DeviceSize, maxDrawCount, stride uint32) {
	args := [7]unsafe.Pointer{
		unsafe.Pointer(&cmd), unsafe.Pointer(&buffer), unsafe.Pointer(&offset),
		unsafe.Pointer(&countBuffer), unsafe.Pointer(&countBufferOffset),
		unsafe.Pointer(&maxDrawCount), unsafe.Pointer(&stride),
	}
	callVoid(&SigVoidCmdDrawIndexedIndirectCount, c.cmdDrawIndexedIndirectCount, args[:])
}

func (c *Commands) CmdDrawMeshTasksEXT(cmd CommandBuffer, groupCountX, groupCountY, groupCountZ uint32) {
	args := [4]unsafe.Pointer{unsafe.Pointer(&cmd), unsafe.Pointer(&groupCountX), unsafe.Pointer(&groupCountY), unsafe.Pointer(&groupCountZ)}
	callVoid(&SigVoidHandleU32x3, c.cmdDrawMeshTasksEXT, args[:])
}

func (c *Commands) CmdDispatch(cmd CommandBuffer, x, y, z uint32) {
	args := [4]unsafe.Pointer{unsafe.Pointer(&cmd), unsafe.Pointer(&x), unsafe.Pointer(&y), unsafe.Pointer(&z)}
	callVoid(&SigVoidHandleU32U32U32, c.cmdDispatch, args[:])
}

func (c *Commands) CmdSetViewport(cmd CommandBuffer, first, count uint32, viewports *Viewport) {
	args := [4]unsafe.Pointer{unsafe.Pointer(&cmd), unsafe.Pointer(&first), unsafe.Pointer(&count), unsafe.Pointer(&viewports)}
	callVoid(&SigVoidHandleU32U32Ptr, c.cmdSetViewport, args[:])
}

func (c *Commands) CmdSetScissor(cmd CommandBuffer, first, count uint32, scissors *Rect2D) {
	args := [4]unsafe.Pointer{unsafe.Pointer(&cmd), unsafe.Pointer(&first), unsafe.Pointer(&count), unsafe.Pointer(&scissors)}
	callVoid(&SigVoidHandleU32U32Ptr, c.cmdSetScissor, args[:])
}

func (c *Commands) CmdBeginRendering(cmd CommandBuffer, info *RenderingInfo) {
	args := [2]unsafe.Pointer{unsafe.Pointer(&cmd), unsafe.Pointer(&info)}
	callVoid(&SigVoidHandlePtrRendering, c.cmdBeginRendering, args[:])
}

func (c *Commands) CmdEndRendering(cmd CommandBuffer) {
	args := [1]unsafe.Pointer{unsafe.Pointer(&cmd)}
	callVoid(&SigVoidHandle, c.cmdEndRendering, args[:])
}

func (c *Commands) CmdPipelineBarrier2(cmd CommandBuffer, info *DependencyInfo) {
	args := [2]unsafe.Pointer{unsafe.Pointer(&cmd), unsafe.Pointer(&info)}
	callVoid(&SigVoidHandlePtr, c.cmdPipelineBarrier2, args[:])
}

// --- Synchronization ---

func (c *Commands) CreateFence(device Device, info *FenceCreateInfo, alloc *AllocationCallbacks, out *Fence) Result {
	args := [4]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&info), unsafe.Pointer(&alloc), unsafe.Pointer(&out)}
	return callResult(&SigResultHandlePtrPtrPtr, c.createFence, args[:])
}

func (c *Commands) DestroyFence(device Device, fence Fence, alloc *AllocationCallbacks) {
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&fence), unsafe.Pointer(&alloc)}
	callVoid(&SigVoidHandleHandlePtr, c.destroyFence, args[:])
}

func (c *Commands) GetFenceStatus(device Device, fence Fence) Result {
	args := [2]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&fence)}
	return callResult(&SigResultHandleHandle, c.getFenceStatus, args[:])
}

func (c *Commands) ResetFences(device Device, count uint32, fences *Fence) Result {
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&count), unsafe.Pointer(&fences)}
	return callResult(&SigResultHandleU32Ptr, c.resetFences, args[:])
}

func (c *Commands) WaitForFences(device Device, count uint32, fences *Fence, waitAll Bool32, timeout uint64) Result {
	args := [5]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&count), unsafe.Pointer(&fences), unsafe.Pointer(&waitAll), unsafe.Pointer(&timeout)}
	return callResult(&SigResultWaitForFences, c.waitForFences, args[:])
}

func (c *Commands) CreateSemaphore(device Device, info *SemaphoreCreateInfo, alloc *AllocationCallbacks, out *Semaphore) Result {
	args := [4]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&info), unsafe.Pointer(&alloc), unsafe.Pointer(&out)}
	return callResult(&SigResultHandlePtrPtrPtr, c.createSemaphore, args[:])
}

func (c *Commands) DestroySemaphore(device Device, sem Semaphore, alloc *AllocationCallbacks) {
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&sem), unsafe.Pointer(&alloc)}
	callVoid(&SigVoidHandleHandlePtr, c.destroySemaphore, args[:])
}

func (c *Commands) QueueSubmit2(queue Queue, count uint32, submits *SubmitInfo2, fence Fence) Result {
	args := [4]unsafe.Pointer{unsafe.Pointer(&queue), unsafe.Pointer(&count), unsafe.Pointer(&submits), unsafe.Pointer(&fence)}
	return callResult(&SigResultHandleU32PtrHandle, c.queueSubmit2, args[:])
}

// --- Query pools ---

func (c *Commands) CreateQueryPool(device Device, info *QueryPoolCreateInfo, alloc *AllocationCallbacks, out *QueryPool) Result {
	args := [4]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&info), unsafe.Pointer(&alloc), unsafe.Pointer(&out)}
	return callResult(&SigResultHandlePtrPtrPtr, c.createQueryPool, args[:])
}

func (c *Commands) DestroyQueryPool(device Device, pool QueryPool, alloc *AllocationCallbacks) {
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&pool), unsafe.Pointer(&alloc)}
	callVoid(&SigVoidHandleHandlePtr, c.destroyQueryPool, args[:])
}

// ResetQueryPool wraps vkResetQueryPool (VK_EXT_host_query_reset / Vulkan 1.2),
// a device-level call, distinct from vkCmdResetQueryPool recorded into a buffer.
func (c *Commands) ResetQueryPool(device Device, pool QueryPool, first, count uint32) {
	args := [4]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&pool), unsafe.Pointer(&first), unsafe.Pointer(&count)}
	callVoid(&SigVoidHandleHandleU32U32, c.resetQueryPool, args[:])
}

// --- Render passes / framebuffers (legacy path, kept for dynamic-rendering fallback tests) ---

func (c *Commands) CreateRenderPass(device Device, info *RenderPassCreateInfo, alloc *AllocationCallbacks, out *RenderPass) Result {
	args := [4]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&info), unsafe.Pointer(&alloc), unsafe.Pointer(&out)}
	return callResult(&SigResultHandlePtrPtrPtr, c.createRenderPass, args[:])
}

func (c *Commands) DestroyRenderPass(device Device, pass RenderPass, alloc *AllocationCallbacks) {
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&pass), unsafe.Pointer(&alloc)}
	callVoid(&SigVoidHandleHandlePtr, c.destroyRenderPass, args[:])
}

func (c *Commands) CreateFramebuffer(device Device, info *FramebufferCreateInfo, alloc *AllocationCallbacks, out *Framebuffer) Result {
	args := [4]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&info), unsafe.Pointer(&alloc), unsafe.Pointer(&out)}
	return callResult(&SigResultHandlePtrPtrPtr, c.createFramebuffer, args[:])
}

func (c *Commands) DestroyFramebuffer(device Device, fb Framebuffer, alloc *AllocationCallbacks) {
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&fb), unsafe.Pointer(&alloc)}
	callVoid(&SigVoidHandleHandlePtr, c.destroyFramebuffer, args[:])
}

func (c *Commands) HasDebugUtils() bool {
	return c.setDebugUtilsObjectNameEXT != nil
}

func (c *Commands) SetDebugUtilsObjectNameEXT(device Device, info *DebugUtilsObjectNameInfoEXT) Result {
	args := [2]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&info)}
	return callResult(&SigResultHandlePtr, c.setDebugUtilsObjectNameEXT, args[:])
}

func (c *Commands) CreateDebugUtilsMessengerEXT(instance Instance, info *DebugUtilsMessengerCreateInfoEXT, alloc *AllocationCallbacks, out *DebugUtilsMessengerEXT) Result {
	args := [4]unsafe.Pointer{unsafe.Pointer(&instance), unsafe.Pointer(&info), unsafe.Pointer(&alloc), unsafe.Pointer(&out)}
	return callResult(&SigResultHandlePtrPtrPtr, c.createDebugUtilsMessengerEXT, args[:])
}

func (c *Commands) DestroyDebugUtilsMessengerEXT(instance Instance, messenger DebugUtilsMessengerEXT, alloc *AllocationCallbacks) {
	args := [3]unsafe.Pointer{unsafe.Pointer(&instance), unsafe.Pointer(&messenger), unsafe.Pointer(&alloc)}
	callVoid(&SigVoidHandleHandlePtr, c.destroyDebugUtilsMessengerEXT, args[:])
}

// --- Descriptors ---

func (c *Commands) CreateDescriptorPool(device Device, info *DescriptorPoolCreateInfo, alloc *AllocationCallbacks, out *DescriptorPool) Result {
	args := [4]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&info), unsafe.Pointer(&alloc), unsafe.Pointer(&out)}
	return callResult(&SigResultHandlePtrPtrPtr, c.createDescriptorPool, args[:])
}

func (c *Commands) DestroyDescriptorPool(device Device, pool DescriptorPool, alloc *AllocationCallbacks) {
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&pool), unsafe.Pointer(&alloc)}
	callVoid(&SigVoidHandleHandlePtr, c.destroyDescriptorPool, args[:])
}

func (c *Commands) AllocateDescriptorSets(device Device, info *DescriptorSetAllocateInfo, out *DescriptorSet) Result {
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&info), unsafe.Pointer(&out)}
	return callResult(&SigResultHandlePtrPtr, c.allocateDescriptorSets, args[:])
}

func (c *Commands) FreeDescriptorSets(device Device, pool DescriptorPool, count uint32, sets *DescriptorSet) Result {
	args := [4]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&pool), unsafe.Pointer(&count), unsafe.Pointer(&sets)}
	return callResult(&SigResultHandleHandleU32Ptr, c.freeDescriptorSets, args[:])
}

func (c *Commands) UpdateDescriptorSets(device Device, writeCount uint32, writes *WriteDescriptorSet, copyCount uint32, copies *CopyDescriptorSet) {
	args := [5]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&writeCount), unsafe.Pointer(&writes), unsafe.Pointer(&copyCount), unsafe.Pointer(&copies)}
	callVoid(&SigVoidDeviceUpdateDescriptorSets, c.updateDescriptorSets, args[:])
}

// --- VK_EXT_descriptor_buffer ---

func (c *Commands) GetDescriptorSetLayoutSizeEXT(device Device, layout DescriptorSetLayout, size *DeviceSize) {
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&layout), unsafe.Pointer(&size)}
	callVoid(&SigVoidHandleHandlePtr, c.getDescriptorSetLayoutSizeEXT, args[:])
}

func (c *Commands) GetDescriptorSetLayoutBindingOffsetEXT(device Device, layout DescriptorSetLayout, binding uint32, offset *DeviceSize) {
	args := [4]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&layout), unsafe.Pointer(&binding), unsafe.Pointer(&offset)}
	callVoid(&SigVoidHandleHandleU32Ptr, c.getDescriptorSetLayoutBindingOffsetEXT, args[:])
}

func (c *Commands) GetDescriptorEXT(device Device, info *DescriptorGetInfoEXT, dataSize uintptr, descriptor unsafe.Pointer) {
	size := uint64(dataSize)
	args := [4]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&info), unsafe.Pointer(&size), unsafe.Pointer(&descriptor)}
	callVoid(&SigVoidHandlePtrU64Ptr, c.getDescriptorEXT, args[:])
}

func (c *Commands) CmdBindDescriptorBuffersEXT(cmd CommandBuffer, count uint32, bindings *DescriptorBufferBindingInfoEXT) {
	args := [3]unsafe.Pointer{unsafe.Pointer(&cmd), unsafe.Pointer(&count), unsafe.Pointer(&bindings)}
	callVoid(&SigVoidHandleU32Ptr, c.cmdBindDescriptorBuffersEXT, args[:])
}

func (c *Commands) CmdSetDescriptorBufferOffsetsEXT(cmd CommandBuffer, bindPoint PipelineBindPoint, layout PipelineLayout, firstSet, setCount uint32, bufferIndices *uint32, offsets *DeviceSize) {
	bp := uint32(bindPoint)
	args := [7]unsafe.Pointer{
		unsafe.Pointer(&cmd), unsafe.Pointer(&bp), unsafe.Pointer(&layout),
		unsafe.Pointer(&firstSet), unsafe.Pointer(&setCount),
		unsafe.Pointer(&bufferIndices), unsafe.Pointer(&offsets),
	}
	callVoid(&SigVoidCmdSetDescriptorBufferOffsets, c.cmdSetDescriptorBufferOffsetsEXT, args[:])
}

func (c *Commands) GetBufferDeviceAddress(device Device, info *BufferDeviceAddressInfo) DeviceAddress {
	if c.getBufferDeviceAddress == nil {
		return 0
	}
	var addr uint64
	args := [2]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&info)}
	_ = ffi.CallFunction(&SigU64HandlePtr, c.getBufferDeviceAddress, unsafe.Pointer(&addr), args[:])
	return DeviceAddress(addr)
}

// --- Platform surfaces ---

func (c *Commands) HasCreateXlibSurfaceKHR() bool    { return c.createXlibSurfaceKHR != nil }
func (c *Commands) HasCreateWaylandSurfaceKHR() bool { return c.createWaylandSurfaceKHR != nil }

func (c *Commands) CreateXlibSurfaceKHR(instance Instance, info *XlibSurfaceCreateInfoKHR, alloc *AllocationCallbacks, out *SurfaceKHR) Result {
	args := [4]unsafe.Pointer{unsafe.Pointer(&instance), unsafe.Pointer(&info), unsafe.Pointer(&alloc), unsafe.Pointer(&out)}
	return callResult(&SigResultHandlePtrPtrPtr, c.createXlibSurfaceKHR, args[:])
}

func (c *Commands) CreateWaylandSurfaceKHR(instance Instance, info *WaylandSurfaceCreateInfoKHR, alloc *AllocationCallbacks, out *SurfaceKHR) Result {
	args := [4]unsafe.Pointer{unsafe.Pointer(&instance), unsafe.Pointer(&info), unsafe.Pointer(&alloc), unsafe.Pointer(&out)}
	return callResult(&SigResultHandlePtrPtrPtr, c.createWaylandSurfaceKHR, args[:])
}

func (c *Commands) CreateMetalSurfaceEXT(instance Instance, info *MetalSurfaceCreateInfoEXT, alloc *AllocationCallbacks, out *SurfaceKHR) Result {
	args := [4]unsafe.Pointer{unsafe.Pointer(&instance), unsafe.Pointer(&info), unsafe.Pointer(&alloc), unsafe.Pointer(&out)}
	return callResult(&SigResultHandlePtrPtrPtr, c.createMetalSurfaceEXT, args[:])
}
