// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package gpusync

import (
	"unsafe"

	"github.com/terra-gfx/terra/vk"
)

// CommandBuffer wraps one primary VkCommandBuffer. Its recording methods
// satisfy internal/sharedbuf.CommandRecorder and
// internal/staging.CopyRecorder so those packages can record copies and
// barriers without importing gpusync.
type CommandBuffer struct {
	handle vk.CommandBuffer
	device vk.Device
	cmds   *vk.Commands
}

// Handle returns the underlying VkCommandBuffer.
func (c *CommandBuffer) Handle() vk.CommandBuffer { return c.handle }

// Begin starts recording with the given usage flags (e.g.
// vk.CommandBufferUsageOneTimeSubmitBit).
func (c *CommandBuffer) Begin(flags vk.CommandBufferUsageFlags) error {
	info := vk.CommandBufferBeginInfo{SType: vk.StructureTypeCommandBufferBeginInfo, Flags: flags}
	if result := c.cmds.BeginCommandBuffer(c.handle, &info); result != vk.Success {
		return resultError("vkBeginCommandBuffer", result)
	}
	return nil
}

// End finishes recording.
func (c *CommandBuffer) End() error {
	if result := c.cmds.EndCommandBuffer(c.handle); result != vk.Success {
		return resultError("vkEndCommandBuffer", result)
	}
	return nil
}

// Reset recycles this single command buffer for re-recording.
func (c *CommandBuffer) Reset() error {
	if result := c.cmds.ResetCommandBuffer(c.handle, 0); result != vk.Success {
		return resultError("vkResetCommandBuffer", result)
	}
	return nil
}

// CopyBuffer records vkCmdCopyBuffer.
func (c *CommandBuffer) CopyBuffer(src, dst vk.Buffer, regions []vk.BufferCopy) {
	if len(regions) == 0 {
		return
	}
	c.cmds.CmdCopyBuffer(c.handle, src, dst, uint32(len(regions)), &regions[0])
}

// CopyBufferToImage records vkCmdCopyBufferToImage.
func (c *CommandBuffer) CopyBufferToImage(src vk.Buffer, dst vk.Image, dstLayout vk.ImageLayout, regions []vk.BufferImageCopy) {
	if len(regions) == 0 {
		return
	}
	c.cmds.CmdCopyBufferToImage(c.handle, src, dst, dstLayout, uint32(len(regions)), &regions[0])
}

// CopyImage records vkCmdCopyImage, used by the render-pass manager's
// swapchain blit.
func (c *CommandBuffer) CopyImage(src vk.Image, srcLayout vk.ImageLayout, dst vk.Image, dstLayout vk.ImageLayout, regions []vk.ImageCopy) {
	if len(regions) == 0 {
		return
	}
	c.cmds.CmdCopyImage(c.handle, src, srcLayout, dst, dstLayout, uint32(len(regions)), &regions[0])
}

// PipelineBarrier records vkCmdPipelineBarrier2 (VK_KHR_synchronization2).
func (c *CommandBuffer) PipelineBarrier(info *vk.DependencyInfo) {
	c.cmds.CmdPipelineBarrier2(c.handle, info)
}

// FillBuffer records vkCmdFillBuffer, used to zero the VS-indirect
// culling pass's counter buffer at the start of each frame.
func (c *CommandBuffer) FillBuffer(buffer vk.Buffer, offset, size vk.DeviceSize, data uint32) {
	c.cmds.CmdFillBuffer(c.handle, buffer, offset, size, data)
}

// BeginRendering records vkCmdBeginRendering (VK_KHR_dynamic_rendering).
func (c *CommandBuffer) BeginRendering(info *vk.RenderingInfo) {
	c.cmds.CmdBeginRendering(c.handle, info)
}

// EndRendering records vkCmdEndRendering.
func (c *CommandBuffer) EndRendering() {
	c.cmds.CmdEndRendering(c.handle)
}

// BindPipeline records vkCmdBindPipeline.
func (c *CommandBuffer) BindPipeline(bindPoint vk.PipelineBindPoint, pipeline vk.Pipeline) {
	c.cmds.CmdBindPipeline(c.handle, bindPoint, pipeline)
}

// BindDescriptorBuffers records vkCmdBindDescriptorBuffersEXT.
func (c *CommandBuffer) BindDescriptorBuffers(bindings []vk.DescriptorBufferBindingInfoEXT) {
	if len(bindings) == 0 {
		return
	}
	c.cmds.CmdBindDescriptorBuffersEXT(c.handle, uint32(len(bindings)), &bindings[0])
}

// SetDescriptorBufferOffsets records vkCmdSetDescriptorBufferOffsetsEXT.
func (c *CommandBuffer) SetDescriptorBufferOffsets(bindPoint vk.PipelineBindPoint, layout vk.PipelineLayout, firstSet uint32, bufferIndices []uint32, offsets []vk.DeviceSize) {
	if len(bufferIndices) == 0 {
		return
	}
	c.cmds.CmdSetDescriptorBufferOffsetsEXT(c.handle, bindPoint, layout, firstSet, uint32(len(bufferIndices)), &bufferIndices[0], &offsets[0])
}

// BindVertexBuffers records vkCmdBindVertexBuffers.
func (c *CommandBuffer) BindVertexBuffers(firstBinding uint32, buffers []vk.Buffer, offsets []vk.DeviceSize) {
	if len(buffers) == 0 {
		return
	}
	c.cmds.CmdBindVertexBuffers(c.handle, firstBinding, uint32(len(buffers)), &buffers[0], &offsets[0])
}

// BindIndexBuffer records vkCmdBindIndexBuffer.
func (c *CommandBuffer) BindIndexBuffer(buffer vk.Buffer, offset vk.DeviceSize, indexType vk.IndexType) {
	c.cmds.CmdBindIndexBuffer(c.handle, buffer, offset, indexType)
}

// SetViewport records vkCmdSetViewport.
func (c *CommandBuffer) SetViewport(viewport vk.Viewport) {
	c.cmds.CmdSetViewport(c.handle, 0, 1, &viewport)
}

// SetScissor records vkCmdSetScissor.
func (c *CommandBuffer) SetScissor(scissor vk.Rect2D) {
	c.cmds.CmdSetScissor(c.handle, 0, 1, &scissor)
}

// DrawIndexed records vkCmdDrawIndexed.
func (c *CommandBuffer) DrawIndexed(indexCount, instanceCount, firstIndex uint32, vertexOffset int32, firstInstance uint32) {
	c.cmds.CmdDrawIndexed(c.handle, indexCount, instanceCount, firstIndex, vertexOffset, firstInstance)
}

// DrawIndexedIndirectCount records vkCmdDrawIndexedIndirectCount, used by
// the VS-indirect engine's culled draw argument buffer.
func (c *CommandBuffer) DrawIndexedIndirectCount(buffer vk.Buffer, offset vk.DeviceSize, countBuffer vk.Buffer, countBufferOffset vk.DeviceSize, maxDrawCount, stride uint32) {
	c.cmds.CmdDrawIndexedIndirectCount(c.handle, buffer, offset, countBuffer, countBufferOffset, maxDrawCount, stride)
}

// DrawMeshTasks records vkCmdDrawMeshTasksEXT, used by the mesh-shader
// engine.
func (c *CommandBuffer) DrawMeshTasks(groupCountX, groupCountY, groupCountZ uint32) {
	c.cmds.CmdDrawMeshTasksEXT(c.handle, groupCountX, groupCountY, groupCountZ)
}

// Dispatch records vkCmdDispatch, used by the VS-indirect engine's GPU
// culling compute pass.
func (c *CommandBuffer) Dispatch(x, y, z uint32) {
	c.cmds.CmdDispatch(c.handle, x, y, z)
}

// PushConstants records vkCmdPushConstants. values must point to a packed
// layout matching the pipeline layout's push-constant range (e.g. the
// mesh-shader engine's (model_index, meshlet_offset) pair).
func (c *CommandBuffer) PushConstants(layout vk.PipelineLayout, stageFlags vk.ShaderStageFlags, offset, size uint32, values unsafe.Pointer) {
	c.cmds.CmdPushConstants(c.handle, layout, stageFlags, offset, size, values)
}

// BindDescriptorSets records vkCmdBindDescriptorSets.
func (c *CommandBuffer) BindDescriptorSets(bindPoint vk.PipelineBindPoint, layout vk.PipelineLayout, firstSet uint32, sets []vk.DescriptorSet, dynamicOffsets []uint32) {
	if len(sets) == 0 {
		return
	}
	var dynPtr *uint32
	if len(dynamicOffsets) > 0 {
		dynPtr = &dynamicOffsets[0]
	}
	c.cmds.CmdBindDescriptorSets(c.handle, bindPoint, layout, firstSet, uint32(len(sets)), &sets[0], uint32(len(dynamicOffsets)), dynPtr)
}
