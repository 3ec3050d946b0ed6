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
	vertexStride = 4 * (3 + 3 + 2) // bytes per model.Vertex
	indexStride  = 4               // bytes per uint32 index
	aabbStride   = 4 * 8           // bytes per model.AABB (two padded vec4s)
)

// MeshManagerVSIndividual owns the shared vertex, index, and AABB
// buffers both the VS-individual and VS-indirect engine variants draw
// from. AABBs live here (not in ModelManagerVSIndirect) because the
// spec treats per-mesh bounds as shared geometry data, identical across
// every model instancing the same mesh.
type MeshManagerVSIndividual struct {
	vertices *sharedbuf.SharedBufferGPU
	indices  *sharedbuf.SharedBufferGPU
	aabbs    *sharedbuf.SharedBufferGPU

	meshes *handle.Arena[meshRecord]
	temp   *sharedbuf.TemporaryDataBuffer
}

// NewMeshManagerVSIndividual creates empty shared geometry buffers sized
// for an initial capacity hint (in vertices/indices/meshes); they grow
// on demand via SharedBufferGPU's doubling growth.
func NewMeshManagerVSIndividual(device vk.Device, cmds *vk.Commands, mem *memory.Manager, initialVertices, initialIndices, initialMeshes uint32) (*MeshManagerVSIndividual, error) {
	vertices, err := sharedbuf.NewSharedBufferGPU(device, cmds, mem,
		vk.BufferUsageVertexBufferBit|vk.BufferUsageTransferDstBit, uint64(initialVertices)*vertexStride)
	if err != nil {
		return nil, err
	}
	indices, err := sharedbuf.NewSharedBufferGPU(device, cmds, mem,
		vk.BufferUsageIndexBufferBit|vk.BufferUsageTransferDstBit, uint64(initialIndices)*indexStride)
	if err != nil {
		return nil, err
	}
	aabbs, err := sharedbuf.NewSharedBufferGPU(device, cmds, mem,
		vk.BufferUsageStorageBufferBit|vk.BufferUsageTransferDstBit, uint64(initialMeshes)*aabbStride)
	if err != nil {
		return nil, err
	}
	return &MeshManagerVSIndividual{
		vertices: vertices,
		indices:  indices,
		aabbs:    aabbs,
		meshes:   handle.NewArena[meshRecord](),
		temp:     sharedbuf.NewTemporaryDataBuffer(),
	}, nil
}

// RegisterMesh reserves a vertex range, an index range and one AABB slot
// in the shared buffers and returns a handle identifying the mesh plus
// the three reserved ranges. It copies no data and does not store aabb;
// the caller queues the host-to-device copies into the returned ranges.
func (m *MeshManagerVSIndividual) RegisterMesh(vertexCount, indexCount uint32, aabb AABB) (MeshHandle, sharedbuf.SharedBufferData, sharedbuf.SharedBufferData, sharedbuf.SharedBufferData, error) {
	vertexData, err := m.vertices.Allocate(uint64(vertexCount)*vertexStride, m.temp)
	if err != nil {
		return MeshHandle{}, sharedbuf.SharedBufferData{}, sharedbuf.SharedBufferData{}, sharedbuf.SharedBufferData{}, err
	}
	indexData, err := m.indices.Allocate(uint64(indexCount)*indexStride, m.temp)
	if err != nil {
		return MeshHandle{}, sharedbuf.SharedBufferData{}, sharedbuf.SharedBufferData{}, sharedbuf.SharedBufferData{}, err
	}
	aabbData, err := m.aabbs.Allocate(aabbStride, m.temp)
	if err != nil {
		return MeshHandle{}, sharedbuf.SharedBufferData{}, sharedbuf.SharedBufferData{}, sharedbuf.SharedBufferData{}, err
	}

	rec := meshRecord{
		VertexOffset: uint32(vertexData.Offset / vertexStride),
		VertexCount:  vertexCount,
		IndexOffset:  uint32(indexData.Offset / indexStride),
		IndexCount:   indexCount,
		AABBIndex:    uint32(aabbData.Offset / aabbStride),
	}
	h := m.meshes.Insert(rec)
	return h, vertexData, indexData, aabbData, nil
}

// UnregisterMesh returns a mesh's geometry ranges to the free lists.
func (m *MeshManagerVSIndividual) UnregisterMesh(h MeshHandle) {
	rec, ok := m.meshes.Get(h)
	if !ok {
		return
	}
	m.vertices.Free(uint64(rec.VertexOffset)*vertexStride, uint64(rec.VertexCount)*vertexStride)
	m.indices.Free(uint64(rec.IndexOffset)*indexStride, uint64(rec.IndexCount)*indexStride)
	m.aabbs.Free(uint64(rec.AABBIndex)*aabbStride, aabbStride)
	m.meshes.Remove(h)
}

// CopyOldBuffers records any deferred post-growth copies (see
// sharedbuf.SharedBufferGPU.CopyOldBuffer) for all three shared buffers.
func (m *MeshManagerVSIndividual) CopyOldBuffers(cmd sharedbuf.CommandRecorder) {
	m.vertices.CopyOldBuffer(cmd)
	m.indices.CopyOldBuffer(cmd)
	m.aabbs.CopyOldBuffer(cmd)
}

func (m *MeshManagerVSIndividual) VertexBuffer() vk.Buffer { return m.vertices.Handle() }
func (m *MeshManagerVSIndividual) IndexBuffer() vk.Buffer  { return m.indices.Handle() }
func (m *MeshManagerVSIndividual) AABBBuffer() vk.Buffer   { return m.aabbs.Handle() }

func (m *MeshManagerVSIndividual) Mesh(h MeshHandle) (meshRecord, bool) {
	return m.meshes.Get(h)
}

// Destroy releases all three shared buffers.
func (m *MeshManagerVSIndividual) Destroy() {
	m.vertices.Destroy()
	m.indices.Destroy()
	m.aabbs.Destroy()
}
