// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package model

import (
	"unsafe"

	"github.com/terra-gfx/terra/vk"
	"github.com/terra-gfx/terra/internal/handle"
	"github.com/terra-gfx/terra/internal/memory"
)

// ModelManagerVSIndividual holds the model container (handles +
// per-model transform/mesh reference) and a per-frame, upload-streamed
// instance-data buffer recomputed every frame from the container.
type ModelManagerVSIndividual struct {
	meshes *MeshManagerVSIndividual
	models *handle.Arena[modelRecord]

	perFrame []instanceBuffer
}

type instanceBuffer struct {
	buffer *bufferWithHost
}

// NewModelManagerVSIndividual creates a model container and allocates
// one per-frame instance buffer per frame-in-flight.
func NewModelManagerVSIndividual(device vk.Device, cmds *vk.Commands, mem *memory.Manager, meshes *MeshManagerVSIndividual, framesInFlight int, initialModels uint32) (*ModelManagerVSIndividual, error) {
	mm := &ModelManagerVSIndividual{
		meshes: meshes,
		models: handle.NewArena[modelRecord](),
	}
	for i := 0; i < framesInFlight; i++ {
		buf, err := newBufferWithHost(device, cmds, mem, uint64(initialModels)*uint64(unsafe.Sizeof(InstanceData{})),
			vk.BufferUsageVertexBufferBit|vk.BufferUsageStorageBufferBit)
		if err != nil {
			mm.Destroy()
			return nil, err
		}
		mm.perFrame = append(mm.perFrame, instanceBuffer{buffer: buf})
	}
	return mm, nil
}

// AddModel registers a model instancing mesh with the given transform.
func (m *ModelManagerVSIndividual) AddModel(mesh MeshHandle, transform [16]float32) ModelHandle {
	return m.models.Insert(modelRecord{Mesh: mesh, Transform: transform})
}

// RemoveModel deletes a model.
func (m *ModelManagerVSIndividual) RemoveModel(h ModelHandle) {
	m.models.Remove(h)
}

// SetTransform updates a model's world transform in place.
func (m *ModelManagerVSIndividual) SetTransform(h ModelHandle, transform [16]float32) bool {
	rec, ok := m.models.Get(h)
	if !ok {
		return false
	}
	rec.Transform = transform
	return m.models.Set(h, rec)
}

// UpdateFrame recomputes frameIndex's instance buffer from the current
// model container, growing the buffer if the model count exceeds its
// capacity.
func (m *ModelManagerVSIndividual) UpdateFrame(frameIndex int) error {
	count := m.models.Len()
	needed := uint64(count) * uint64(unsafe.Sizeof(InstanceData{}))
	buf := m.perFrame[frameIndex].buffer
	if needed > buf.size {
		if err := buf.grow(needed * 2); err != nil {
			return err
		}
	}

	dst := unsafe.Slice((*InstanceData)(buf.hostPointer()), count)
	i := 0
	m.models.Each(func(h ModelHandle, rec modelRecord) {
		mesh, _ := m.meshes.Mesh(rec.Mesh)
		dst[i] = InstanceData{Transform: rec.Transform, MeshIndex: mesh.AABBIndex}
		i++
	})
	return nil
}

// Draw binds the shared vertex/index buffers once and records one
// vkCmdDrawIndexed per live model.
func (m *ModelManagerVSIndividual) Draw(cmd DrawRecorderVS, frameIndex int) {
	cmd.BindVertexBuffers(0, []vk.Buffer{m.meshes.VertexBuffer()}, []vk.DeviceSize{0})
	cmd.BindIndexBuffer(m.meshes.IndexBuffer(), 0, vk.IndexTypeUint32)

	m.models.Each(func(h ModelHandle, rec modelRecord) {
		mesh, ok := m.meshes.Mesh(rec.Mesh)
		if !ok {
			return
		}
		cmd.DrawIndexed(mesh.IndexCount, 1, mesh.IndexOffset, int32(mesh.VertexOffset), 0)
	})
}

// Destroy releases every per-frame instance buffer.
func (m *ModelManagerVSIndividual) Destroy() {
	for _, f := range m.perFrame {
		if f.buffer != nil {
			f.buffer.destroy()
		}
	}
	m.perFrame = nil
}
