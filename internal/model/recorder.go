// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package model

import (
	"unsafe"

	"github.com/terra-gfx/terra/vk"
)

// DrawRecorderVS is the command buffer surface ModelManagerVSIndividual.Draw
// and ModelManagerVSIndirect.Draw need. Satisfied structurally by
// internal/gpusync's command buffer type, and substitutable with a
// recording fake in tests — mirrors internal/sharedbuf.CommandRecorder.
type DrawRecorderVS interface {
	BindVertexBuffers(firstBinding uint32, buffers []vk.Buffer, offsets []vk.DeviceSize)
	BindIndexBuffer(buffer vk.Buffer, offset vk.DeviceSize, indexType vk.IndexType)
	DrawIndexed(indexCount, instanceCount, firstIndex uint32, vertexOffset int32, firstInstance uint32)
	DrawIndexedIndirectCount(buffer vk.Buffer, offset vk.DeviceSize, countBuffer vk.Buffer, countBufferOffset vk.DeviceSize, maxDrawCount, stride uint32)
}

// DrawRecorderMS is the command buffer surface ModelManagerMS.Draw needs.
type DrawRecorderMS interface {
	PushConstants(layout vk.PipelineLayout, stageFlags vk.ShaderStageFlags, offset, size uint32, values unsafe.Pointer)
	DrawMeshTasks(groupCountX, groupCountY, groupCountZ uint32)
}

// CullRecorder is the command buffer surface ModelManagerVSIndirect.Cull
// needs to reset the counter buffer, dispatch the culling compute shader
// and barrier the draw-argument buffer for the following indirect draw.
type CullRecorder interface {
	FillBuffer(buffer vk.Buffer, offset, size vk.DeviceSize, data uint32)
	PipelineBarrier(info *vk.DependencyInfo)
	BindPipeline(bindPoint vk.PipelineBindPoint, pipeline vk.Pipeline)
	Dispatch(x, y, z uint32)
}
