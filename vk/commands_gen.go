// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vk

import "unsafe"

// Commands holds every Vulkan function pointer Terra loads, resolved via
// vkGetInstanceProcAddr/vkGetDeviceProcAddr in commands.go's three-stage
// LoadGlobal/LoadInstance/LoadDevice sequence. Every field is an
// unsafe.Pointer (not uintptr) so it can be handed straight to
// ffi.CallFunction as the callee address.
type Commands struct {
	// --- Global (pre-instance) ---
	createInstance                        unsafe.Pointer
	enumerateInstanceVersion              unsafe.Pointer
	enumerateInstanceLayerProperties      unsafe.Pointer
	enumerateInstanceExtensionProperties  unsafe.Pointer

	// --- Instance-level ---
	destroyInstance                               unsafe.Pointer
	enumeratePhysicalDevices                      unsafe.Pointer
	getPhysicalDeviceProperties                    unsafe.Pointer
	getPhysicalDeviceQueueFamilyProperties         unsafe.Pointer
	getPhysicalDeviceMemoryProperties              unsafe.Pointer
	getPhysicalDeviceFeatures                      unsafe.Pointer
	getPhysicalDeviceFormatProperties              unsafe.Pointer
	getPhysicalDeviceImageFormatProperties         unsafe.Pointer
	createDevice                                   unsafe.Pointer
	getDeviceProcAddr                              unsafe.Pointer
	enumerateDeviceLayerProperties                 unsafe.Pointer
	enumerateDeviceExtensionProperties             unsafe.Pointer
	getPhysicalDeviceSparseImageFormatProperties   unsafe.Pointer
	destroySurfaceKHR                              unsafe.Pointer
	getPhysicalDeviceSurfaceSupportKHR              unsafe.Pointer
	getPhysicalDeviceSurfaceCapabilitiesKHR         unsafe.Pointer
	getPhysicalDeviceSurfaceFormatsKHR              unsafe.Pointer
	getPhysicalDeviceSurfacePresentModesKHR         unsafe.Pointer
	createWin32SurfaceKHR                          unsafe.Pointer
	createXlibSurfaceKHR                           unsafe.Pointer
	createWaylandSurfaceKHR                        unsafe.Pointer
	createMetalSurfaceEXT                          unsafe.Pointer
	getPhysicalDeviceFeatures2                     unsafe.Pointer
	getPhysicalDeviceProperties2                   unsafe.Pointer
	getPhysicalDeviceMemoryProperties2              unsafe.Pointer
	createDebugUtilsMessengerEXT                   unsafe.Pointer
	destroyDebugUtilsMessengerEXT                  unsafe.Pointer

	// --- Device-level ---
	destroyDevice                        unsafe.Pointer
	getDeviceQueue                       unsafe.Pointer
	queueSubmit                          unsafe.Pointer
	queueSubmit2                         unsafe.Pointer
	queueWaitIdle                        unsafe.Pointer
	deviceWaitIdle                       unsafe.Pointer
	allocateMemory                       unsafe.Pointer
	freeMemory                           unsafe.Pointer
	mapMemory                            unsafe.Pointer
	unmapMemory                          unsafe.Pointer
	flushMappedMemoryRanges              unsafe.Pointer
	invalidateMappedMemoryRanges         unsafe.Pointer
	getDeviceMemoryCommitment            unsafe.Pointer
	getBufferMemoryRequirements          unsafe.Pointer
	bindBufferMemory                     unsafe.Pointer
	getImageMemoryRequirements           unsafe.Pointer
	bindImageMemory                      unsafe.Pointer
	getImageSparseMemoryRequirements     unsafe.Pointer
	getBufferDeviceAddress               unsafe.Pointer
	queueBindSparse                      unsafe.Pointer
	createFence                          unsafe.Pointer
	destroyFence                         unsafe.Pointer
	resetFences                          unsafe.Pointer
	getFenceStatus                       unsafe.Pointer
	waitForFences                        unsafe.Pointer
	createSemaphore                      unsafe.Pointer
	destroySemaphore                     unsafe.Pointer
	createEvent                          unsafe.Pointer
	destroyEvent                         unsafe.Pointer
	getEventStatus                       unsafe.Pointer
	setEvent                             unsafe.Pointer
	resetEvent                           unsafe.Pointer
	createQueryPool                      unsafe.Pointer
	destroyQueryPool                     unsafe.Pointer
	getQueryPoolResults                  unsafe.Pointer
	resetQueryPool                       unsafe.Pointer
	createBuffer                         unsafe.Pointer
	destroyBuffer                        unsafe.Pointer
	createBufferView                     unsafe.Pointer
	destroyBufferView                    unsafe.Pointer
	createImage                          unsafe.Pointer
	destroyImage                         unsafe.Pointer
	getImageSubresourceLayout            unsafe.Pointer
	createImageView                      unsafe.Pointer
	destroyImageView                     unsafe.Pointer
	createShaderModule                   unsafe.Pointer
	destroyShaderModule                  unsafe.Pointer
	createPipelineCache                  unsafe.Pointer
	destroyPipelineCache                 unsafe.Pointer
	getPipelineCacheData                 unsafe.Pointer
	mergePipelineCaches                  unsafe.Pointer
	createGraphicsPipelines              unsafe.Pointer
	createComputePipelines               unsafe.Pointer
	destroyPipeline                      unsafe.Pointer
	createPipelineLayout                 unsafe.Pointer
	destroyPipelineLayout                unsafe.Pointer
	createSampler                        unsafe.Pointer
	destroySampler                       unsafe.Pointer
	createDescriptorSetLayout            unsafe.Pointer
	destroyDescriptorSetLayout           unsafe.Pointer
	getDescriptorSetLayoutSizeEXT        unsafe.Pointer
	getDescriptorSetLayoutBindingOffsetEXT unsafe.Pointer
	getDescriptorEXT                     unsafe.Pointer
	createDescriptorPool                 unsafe.Pointer
	destroyDescriptorPool                unsafe.Pointer
	resetDescriptorPool                  unsafe.Pointer
	allocateDescriptorSets               unsafe.Pointer
	freeDescriptorSets                   unsafe.Pointer
	updateDescriptorSets                 unsafe.Pointer
	createFramebuffer                    unsafe.Pointer
	destroyFramebuffer                   unsafe.Pointer
	createRenderPass                     unsafe.Pointer
	destroyRenderPass                    unsafe.Pointer
	getRenderAreaGranularity             unsafe.Pointer
	createCommandPool                    unsafe.Pointer
	destroyCommandPool                   unsafe.Pointer
	resetCommandPool                     unsafe.Pointer
	allocateCommandBuffers               unsafe.Pointer
	freeCommandBuffers                   unsafe.Pointer
	beginCommandBuffer                   unsafe.Pointer
	endCommandBuffer                     unsafe.Pointer
	resetCommandBuffer                   unsafe.Pointer
	setDebugUtilsObjectNameEXT           unsafe.Pointer

	cmdBindPipeline              unsafe.Pointer
	cmdSetViewport               unsafe.Pointer
	cmdSetScissor                unsafe.Pointer
	cmdSetLineWidth              unsafe.Pointer
	cmdSetDepthBias              unsafe.Pointer
	cmdSetBlendConstants         unsafe.Pointer
	cmdSetDepthBounds            unsafe.Pointer
	cmdSetStencilCompareMask     unsafe.Pointer
	cmdSetStencilWriteMask       unsafe.Pointer
	cmdSetStencilReference       unsafe.Pointer
	cmdBindDescriptorSets        unsafe.Pointer
	cmdBindDescriptorBuffersEXT  unsafe.Pointer
	cmdSetDescriptorBufferOffsetsEXT unsafe.Pointer
	cmdBindIndexBuffer           unsafe.Pointer
	cmdBindVertexBuffers         unsafe.Pointer
	cmdDraw                      unsafe.Pointer
	cmdDrawIndexed               unsafe.Pointer
	cmdDrawIndirect              unsafe.Pointer
	cmdDrawIndexedIndirect       unsafe.Pointer
	cmdDrawIndexedIndirectCount  unsafe.Pointer
	cmdDrawMeshTasksEXT          unsafe.Pointer
	cmdDispatch                  unsafe.Pointer
	cmdDispatchIndirect          unsafe.Pointer
	cmdCopyBuffer                unsafe.Pointer
	cmdCopyImage                 unsafe.Pointer
	cmdBlitImage                 unsafe.Pointer
	cmdCopyBufferToImage         unsafe.Pointer
	cmdCopyImageToBuffer         unsafe.Pointer
	cmdUpdateBuffer              unsafe.Pointer
	cmdFillBuffer                unsafe.Pointer
	cmdClearColorImage           unsafe.Pointer
	cmdClearDepthStencilImage    unsafe.Pointer
	cmdClearAttachments          unsafe.Pointer
	cmdResolveImage              unsafe.Pointer
	cmdSetEvent                  unsafe.Pointer
	cmdResetEvent                unsafe.Pointer
	cmdWaitEvents                unsafe.Pointer
	cmdPipelineBarrier           unsafe.Pointer
	cmdPipelineBarrier2          unsafe.Pointer
	cmdBeginQuery                unsafe.Pointer
	cmdEndQuery                  unsafe.Pointer
	cmdResetQueryPool            unsafe.Pointer
	cmdWriteTimestamp            unsafe.Pointer
	cmdCopyQueryPoolResults      unsafe.Pointer
	cmdPushConstants             unsafe.Pointer
	cmdBeginRenderPass           unsafe.Pointer
	cmdNextSubpass               unsafe.Pointer
	cmdEndRenderPass             unsafe.Pointer
	cmdBeginRendering            unsafe.Pointer
	cmdEndRendering              unsafe.Pointer
	cmdExecuteCommands           unsafe.Pointer

	getSemaphoreCounterValue unsafe.Pointer
	waitSemaphores           unsafe.Pointer
	signalSemaphore          unsafe.Pointer

	createSwapchainKHR     unsafe.Pointer
	destroySwapchainKHR    unsafe.Pointer
	getSwapchainImagesKHR  unsafe.Pointer
	acquireNextImageKHR    unsafe.Pointer
	queuePresentKHR        unsafe.Pointer
}
