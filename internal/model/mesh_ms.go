// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package model

import (
	"github.com/terra-gfx/terra/vk"
	"github.com/terra-gfx/terra/internal/handle"
	"github.com/terra-gfx/terra/internal/memory"
	"github.com/terra-gfx/terra/internal/sharedbuf"
)

const (
	msVertexStride         = 4 * (3 + 3 + 2) // tightly packed (vec3, vec3, vec2), same 32-byte layout as Vertex
	msVertexIndexStride    = 4               // uint32 per vertex index
	msPrimitiveIndexStride = 4               // packed uint32 (3x uint8 + pad) per triangle
	msMeshletStride        = 4 * 4           // {vertex_offset, vertex_count, primitive_offset, primitive_count}
)

// MeshManagerMS allocates the four shared buffers a mesh-shading
// pipeline reads from directly via descriptor buffers: vertices,
// vertex-indices, primitive-indices, and meshlet descriptors.
type MeshManagerMS struct {
	vertices         *sharedbuf.SharedBufferGPU
	vertexIndices    *sharedbuf.SharedBufferGPU
	primitiveIndices *sharedbuf.SharedBufferGPU
	meshlets         *sharedbuf.SharedBufferGPU

	meshes *handle.Arena[meshRecord]
	temp   *sharedbuf.TemporaryDataBuffer
}

// NewMeshManagerMS creates the four empty shared buffers.
func NewMeshManagerMS(device vk.Device, cmds *vk.Commands, mem *memory.Manager, initialVertices, initialVertexIndices, initialPrimitiveIndices, initialMeshlets uint32) (*MeshManagerMS, error) {
	const usage = vk.BufferUsageStorageBufferBit | vk.BufferUsageTransferDstBit

	vertices, err := sharedbuf.NewSharedBufferGPU(device, cmds, mem, usage, uint64(initialVertices)*msVertexStride)
	if err != nil {
		return nil, err
	}
	vertexIndices, err := sharedbuf.NewSharedBufferGPU(device, cmds, mem, usage, uint64(initialVertexIndices)*msVertexIndexStride)
	if err != nil {
		return nil, err
	}
	primitiveIndices, err := sharedbuf.NewSharedBufferGPU(device, cmds, mem, usage, uint64(initialPrimitiveIndices)*msPrimitiveIndexStride)
	if err != nil {
		return nil, err
	}
	meshlets, err := sharedbuf.NewSharedBufferGPU(device, cmds, mem, usage, uint64(initialMeshlets)*msMeshletStride)
	if err != nil {
		return nil, err
	}

	return &MeshManagerMS{
		vertices:         vertices,
		vertexIndices:    vertexIndices,
		primitiveIndices: primitiveIndices,
		meshlets:         meshlets,
		meshes:           handle.NewArena[meshRecord](),
		temp:             sharedbuf.NewTemporaryDataBuffer(),
	}, nil
}

// RegisterMesh reserves ranges for a mesh's vertices, vertex indices,
// primitive indices, and meshlets, returning a handle to the combined
// range plus each range's (buffer, offset, size) so the caller can queue
// the actual upload through the staging pipeline, same as
// MeshManagerVSIndividual.RegisterMesh.
func (m *MeshManagerMS) RegisterMesh(vertexCount, vertexIndexCount, primitiveIndexCount, meshletCount uint32) (MeshHandle, sharedbuf.SharedBufferData, sharedbuf.SharedBufferData, sharedbuf.SharedBufferData, sharedbuf.SharedBufferData, error) {
	var zero sharedbuf.SharedBufferData
	vertexData, err := m.vertices.Allocate(uint64(vertexCount)*msVertexStride, m.temp)
	if err != nil {
		return MeshHandle{}, zero, zero, zero, zero, err
	}
	viData, err := m.vertexIndices.Allocate(uint64(vertexIndexCount)*msVertexIndexStride, m.temp)
	if err != nil {
		return MeshHandle{}, zero, zero, zero, zero, err
	}
	piData, err := m.primitiveIndices.Allocate(uint64(primitiveIndexCount)*msPrimitiveIndexStride, m.temp)
	if err != nil {
		return MeshHandle{}, zero, zero, zero, zero, err
	}
	mlData, err := m.meshlets.Allocate(uint64(meshletCount)*msMeshletStride, m.temp)
	if err != nil {
		return MeshHandle{}, zero, zero, zero, zero, err
	}

	rec := meshRecord{
		VertexOffset:         uint32(vertexData.Offset / msVertexStride),
		VertexCount:          vertexCount,
		VertexIndexOffset:    uint32(viData.Offset / msVertexIndexStride),
		VertexIndexCount:     vertexIndexCount,
		PrimitiveIndexOffset: uint32(piData.Offset / msPrimitiveIndexStride),
		PrimitiveIndexCount:  primitiveIndexCount,
		MeshletOffset:        uint32(mlData.Offset / msMeshletStride),
		MeshletCount:         meshletCount,
	}
	h := m.meshes.Insert(rec)
	return h, vertexData, viData, piData, mlData, nil
}

func (m *MeshManagerMS) Mesh(h MeshHandle) (meshRecord, bool) { return m.meshes.Get(h) }

func (m *MeshManagerMS) VertexBuffer() vk.Buffer         { return m.vertices.Handle() }
func (m *MeshManagerMS) VertexIndexBuffer() vk.Buffer    { return m.vertexIndices.Handle() }
func (m *MeshManagerMS) PrimitiveIndexBuffer() vk.Buffer { return m.primitiveIndices.Handle() }
func (m *MeshManagerMS) MeshletBuffer() vk.Buffer        { return m.meshlets.Handle() }

// UnregisterMesh returns a mesh's four geometry ranges to their free
// lists, mirroring MeshManagerVSIndividual.UnregisterMesh.
func (m *MeshManagerMS) UnregisterMesh(h MeshHandle) {
	rec, ok := m.meshes.Get(h)
	if !ok {
		return
	}
	m.vertices.Free(uint64(rec.VertexOffset)*msVertexStride, uint64(rec.VertexCount)*msVertexStride)
	m.vertexIndices.Free(uint64(rec.VertexIndexOffset)*msVertexIndexStride, uint64(rec.VertexIndexCount)*msVertexIndexStride)
	m.primitiveIndices.Free(uint64(rec.PrimitiveIndexOffset)*msPrimitiveIndexStride, uint64(rec.PrimitiveIndexCount)*msPrimitiveIndexStride)
	m.meshlets.Free(uint64(rec.MeshletOffset)*msMeshletStride, uint64(rec.MeshletCount)*msMeshletStride)
	m.meshes.Remove(h)
}

// CopyOldBuffers records any deferred post-growth copies for all four
// shared buffers.
func (m *MeshManagerMS) CopyOldBuffers(cmd sharedbuf.CommandRecorder) {
	m.vertices.CopyOldBuffer(cmd)
	m.vertexIndices.CopyOldBuffer(cmd)
	m.primitiveIndices.CopyOldBuffer(cmd)
	m.meshlets.CopyOldBuffer(cmd)
}

func (m *MeshManagerMS) Destroy() {
	m.vertices.Destroy()
	m.vertexIndices.Destroy()
	m.primitiveIndices.Destroy()
	m.meshlets.Destroy()
}
