// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package model

import (
	"unsafe"

	"github.com/terra-gfx/terra/vk"
	"github.com/terra-gfx/terra/internal/handle"
	"github.com/terra-gfx/terra/internal/memory"
)

// cullingWorkgroupSize matches the compute shader's local_size_x; the
// dispatch count is ceil(model_count / cullingWorkgroupSize) per spec §4.9.
const cullingWorkgroupSize = 64

// counterBufferSize is two u32s: {count, pad}, per spec §4.9.
const counterBufferSize = 8

// ModelManagerVSIndirect reuses MeshManagerVSIndividual's shared
// vertex/index/AABB buffers and adds the GPU frustum-culling pipeline:
// a per-frame VkDrawIndexedIndirectCommand argument buffer and a
// {count, pad} counter buffer the compute pass resets and populates.
type ModelManagerVSIndirect struct {
	meshes *MeshManagerVSIndividual
	models *handle.Arena[modelRecord]

	perFrame []indirectFrameData
}

type indirectFrameData struct {
	instances *bufferWithHost
	drawArgs  *bufferWithHost
	counter   *bufferWithHost
}

// NewModelManagerVSIndirect allocates one instance/draw-argument/counter
// buffer triple per frame-in-flight.
func NewModelManagerVSIndirect(device vk.Device, cmds *vk.Commands, mem *memory.Manager, meshes *MeshManagerVSIndividual, framesInFlight int, initialModels uint32) (*ModelManagerVSIndirect, error) {
	mm := &ModelManagerVSIndirect{
		meshes: meshes,
		models: handle.NewArena[modelRecord](),
	}
	for i := 0; i < framesInFlight; i++ {
		instances, err := newBufferWithHost(device, cmds, mem, uint64(initialModels)*uint64(unsafe.Sizeof(InstanceData{})),
			vk.BufferUsageStorageBufferBit)
		if err != nil {
			mm.Destroy()
			return nil, err
		}
		drawArgs, err := newBufferWithHost(device, cmds, mem, uint64(initialModels)*uint64(unsafe.Sizeof(vk.DrawIndexedIndirectCommand{})),
			vk.BufferUsageIndirectBufferBit|vk.BufferUsageStorageBufferBit)
		if err != nil {
			mm.Destroy()
			return nil, err
		}
		counter, err := newBufferWithHost(device, cmds, mem, counterBufferSize,
			vk.BufferUsageIndirectBufferBit|vk.BufferUsageStorageBufferBit)
		if err != nil {
			mm.Destroy()
			return nil, err
		}
		mm.perFrame = append(mm.perFrame, indirectFrameData{instances: instances, drawArgs: drawArgs, counter: counter})
	}
	return mm, nil
}

func (m *ModelManagerVSIndirect) AddModel(mesh MeshHandle, transform [16]float32) ModelHandle {
	return m.models.Insert(modelRecord{Mesh: mesh, Transform: transform})
}

func (m *ModelManagerVSIndirect) RemoveModel(h ModelHandle) {
	m.models.Remove(h)
}

func (m *ModelManagerVSIndirect) SetTransform(h ModelHandle, transform [16]float32) bool {
	rec, ok := m.models.Get(h)
	if !ok {
		return false
	}
	rec.Transform = transform
	return m.models.Set(h, rec)
}

// UpdateFrame recomputes frameIndex's instance buffer and grows the
// draw-argument buffer alongside it if the model count increased.
func (m *ModelManagerVSIndirect) UpdateFrame(frameIndex int) error {
	f := m.perFrame[frameIndex]
	count := m.models.Len()

	neededInstances := uint64(count) * uint64(unsafe.Sizeof(InstanceData{}))
	if neededInstances > f.instances.size {
		if err := f.instances.grow(neededInstances * 2); err != nil {
			return err
		}
	}
	neededArgs := uint64(count) * uint64(unsafe.Sizeof(vk.DrawIndexedIndirectCommand{}))
	if neededArgs > f.drawArgs.size {
		if err := f.drawArgs.grow(neededArgs * 2); err != nil {
			return err
		}
	}

	dst := unsafe.Slice((*InstanceData)(f.instances.hostPointer()), count)
	i := 0
	m.models.Each(func(h ModelHandle, rec modelRecord) {
		mesh, _ := m.meshes.Mesh(rec.Mesh)
		dst[i] = InstanceData{Transform: rec.Transform, MeshIndex: mesh.AABBIndex}
		i++
	})
	return nil
}

// Cull resets the frame's counter buffer to zero and dispatches the
// frustum-culling compute pass; computePipeline binds a shader that reads the shared AABB buffer, this frame's instance
// buffer, and frustum, writing visible draws + the counter. The caller
// must have already bound the compute pipeline's descriptor buffer.
func (m *ModelManagerVSIndirect) Cull(cmd CullRecorder, frameIndex int, computePipeline vk.Pipeline) {
	f := m.perFrame[frameIndex]
	cmd.FillBuffer(f.counter.handle(), 0, counterBufferSize, 0)

	barrier := vk.BufferMemoryBarrier2{
		SType:               vk.StructureTypeBufferMemoryBarrier2,
		SrcStageMask:        stageTransfer,
		SrcAccessMask:       accessTransferWrite,
		DstStageMask:        stageComputeShader,
		DstAccessMask:       accessShaderWrite,
		SrcQueueFamilyIndex: vk.QueueFamilyIgnored,
		DstQueueFamilyIndex: vk.QueueFamilyIgnored,
		Buffer:              f.counter.handle(),
		Size:                counterBufferSize,
	}
	cmd.PipelineBarrier(&vk.DependencyInfo{
		SType:                    vk.StructureTypeDependencyInfo,
		BufferMemoryBarrierCount: 1,
		PBufferMemoryBarriers:    uintptr(unsafe.Pointer(&barrier)),
	})

	cmd.BindPipeline(vk.PipelineBindPointCompute, computePipeline)
	count := uint32(m.models.Len())
	cmd.Dispatch(ceilDiv(count, cullingWorkgroupSize), 1, 1)

	post := vk.BufferMemoryBarrier2{
		SType:               vk.StructureTypeBufferMemoryBarrier2,
		SrcStageMask:        stageComputeShader,
		SrcAccessMask:       accessShaderWrite,
		DstStageMask:        stageDrawIndirect,
		DstAccessMask:       accessIndirectCommandRead,
		SrcQueueFamilyIndex: vk.QueueFamilyIgnored,
		DstQueueFamilyIndex: vk.QueueFamilyIgnored,
		Buffer:              f.drawArgs.handle(),
		Size:                vk.DeviceSize(f.drawArgs.size),
	}
	cmd.PipelineBarrier(&vk.DependencyInfo{
		SType:                    vk.StructureTypeDependencyInfo,
		BufferMemoryBarrierCount: 1,
		PBufferMemoryBarriers:    uintptr(unsafe.Pointer(&post)),
	})
}

// Draw binds the shared vertex/index buffers and records
// vkCmdDrawIndexedIndirectCount against this frame's culled arguments.
func (m *ModelManagerVSIndirect) Draw(cmd DrawRecorderVS, frameIndex int) {
	f := m.perFrame[frameIndex]
	cmd.BindVertexBuffers(0, []vk.Buffer{m.meshes.VertexBuffer()}, []vk.DeviceSize{0})
	cmd.BindIndexBuffer(m.meshes.IndexBuffer(), 0, vk.IndexTypeUint32)
	cmd.DrawIndexedIndirectCount(f.drawArgs.handle(), 0, f.counter.handle(), 0,
		uint32(m.models.Len()), uint32(unsafe.Sizeof(vk.DrawIndexedIndirectCommand{})))
}

func (m *ModelManagerVSIndirect) Destroy() {
	for _, f := range m.perFrame {
		if f.instances != nil {
			f.instances.destroy()
		}
		if f.drawArgs != nil {
			f.drawArgs.destroy()
		}
		if f.counter != nil {
			f.counter.destroy()
		}
	}
	m.perFrame = nil
}
