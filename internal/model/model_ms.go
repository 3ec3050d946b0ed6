// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package model

import (
	"unsafe"

	"github.com/terra-gfx/terra/vk"
	"github.com/terra-gfx/terra/internal/handle"
)

// meshPushConstants is the two-uint32 (model_index, meshlet_offset)
// push constant a mesh-shader draw records per model bundle, per spec
// §4.9.
type meshPushConstants struct {
	ModelIndex    uint32
	MeshletOffset uint32
}

// ModelManagerMS tracks models drawn by a mesh-shading pipeline. It has
// no per-frame GPU instance buffer of its own the way the VS variants
// do: the model index travels in the push constant and the mesh shader
// looks up the transform from a shared model buffer the caller binds
// via a descriptor buffer.
type ModelManagerMS struct {
	meshes *MeshManagerMS
	models *handle.Arena[modelRecord]
}

func NewModelManagerMS(meshes *MeshManagerMS) *ModelManagerMS {
	return &ModelManagerMS{meshes: meshes, models: handle.NewArena[modelRecord]()}
}

func (m *ModelManagerMS) AddModel(mesh MeshHandle, transform [16]float32) ModelHandle {
	return m.models.Insert(modelRecord{Mesh: mesh, Transform: transform})
}

func (m *ModelManagerMS) RemoveModel(h ModelHandle) {
	m.models.Remove(h)
}

func (m *ModelManagerMS) SetTransform(h ModelHandle, transform [16]float32) bool {
	rec, ok := m.models.Get(h)
	if !ok {
		return false
	}
	rec.Transform = transform
	return m.models.Set(h, rec)
}

// Model returns a model's current record for callers that maintain
// their own GPU-visible model/transform buffer (e.g. the renderer's
// shared model-data SSBO all three engine variants can read from).
func (m *ModelManagerMS) Model(h ModelHandle) ([16]float32, MeshHandle, bool) {
	rec, ok := m.models.Get(h)
	return rec.Transform, rec.Mesh, ok
}

// Each iterates every live model's handle, transform and mesh, for a
// caller building a shared GPU-visible model buffer (the renderer's
// model SSBO every draw path's shader indexes into).
func (m *ModelManagerMS) Each(fn func(h ModelHandle, transform [16]float32, mesh MeshHandle)) {
	m.models.Each(func(h ModelHandle, rec modelRecord) {
		fn(h, rec.Transform, rec.Mesh)
	})
}

// Draw records one vkCmdDrawMeshTasksEXT per live model, pushing
// (model_index, meshlet_offset) before each. modelIndexOf resolves a
// model handle to the stable index the shader-visible model buffer
// uses, since the arena's internal slot index is not guaranteed to
// match the renderer's upload order.
func (m *ModelManagerMS) Draw(cmd DrawRecorderMS, layout vk.PipelineLayout, modelIndexOf func(ModelHandle) uint32) {
	m.models.Each(func(h ModelHandle, rec modelRecord) {
		mesh, ok := m.meshes.Mesh(rec.Mesh)
		if !ok || mesh.MeshletCount == 0 {
			return
		}
		pc := meshPushConstants{ModelIndex: modelIndexOf(h), MeshletOffset: mesh.MeshletOffset}
		cmd.PushConstants(layout, vk.ShaderStageMeshBitExt|vk.ShaderStageTaskBitExt, 0, uint32(unsafe.Sizeof(pc)), unsafe.Pointer(&pc))
		cmd.DrawMeshTasks(mesh.MeshletCount, 1, 1)
	})
}
