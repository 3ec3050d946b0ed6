// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package model

import (
	"testing"
	"unsafe"

	"github.com/terra-gfx/terra/internal/handle"
	"github.com/terra-gfx/terra/vk"
)

// recordedDraw is one recorded (push constants, dispatch) pair from a
// fake DrawRecorderMS.
type recordedDraw struct {
	pc    meshPushConstants
	gx    uint32
	gy    uint32
	gz    uint32
}

// fakeDrawRecorderMS implements DrawRecorderMS by recording every call
// instead of touching a real command buffer, mirroring
// internal/sharedbuf's test fakes for CommandRecorder.
type fakeDrawRecorderMS struct {
	pending meshPushConstants
	calls   []recordedDraw
}

func (f *fakeDrawRecorderMS) PushConstants(layout vk.PipelineLayout, stageFlags vk.ShaderStageFlags, offset, size uint32, values unsafe.Pointer) {
	f.pending = *(*meshPushConstants)(values)
}

func (f *fakeDrawRecorderMS) DrawMeshTasks(groupCountX, groupCountY, groupCountZ uint32) {
	f.calls = append(f.calls, recordedDraw{pc: f.pending, gx: groupCountX, gy: groupCountY, gz: groupCountZ})
}

// TestModelManagerMSDrawTwoMeshlets is the literal two-meshlet draw
// scenario: a model bundling meshlet counts [3, 5] dispatches
// (3,1,1) with push constant (model_index=0, meshlet_offset=0), then
// (5,1,1) with (model_index=1, meshlet_offset=3).
func TestModelManagerMSDrawTwoMeshlets(t *testing.T) {
	meshes := &MeshManagerMS{meshes: handle.NewArena[meshRecord]()}
	meshA := meshes.meshes.Insert(meshRecord{MeshletOffset: 0, MeshletCount: 3})
	meshB := meshes.meshes.Insert(meshRecord{MeshletOffset: 3, MeshletCount: 5})

	mm := NewModelManagerMS(meshes)
	modelA := mm.AddModel(meshA, Identity())
	modelB := mm.AddModel(meshB, Identity())

	indices := map[ModelHandle]uint32{modelA: 0, modelB: 1}
	modelIndexOf := func(h ModelHandle) uint32 { return indices[h] }

	rec := &fakeDrawRecorderMS{}
	mm.Draw(rec, vk.PipelineLayout(1), modelIndexOf)

	want := []recordedDraw{
		{pc: meshPushConstants{ModelIndex: 0, MeshletOffset: 0}, gx: 3, gy: 1, gz: 1},
		{pc: meshPushConstants{ModelIndex: 1, MeshletOffset: 3}, gx: 5, gy: 1, gz: 1},
	}
	if len(rec.calls) != len(want) {
		t.Fatalf("got %d DrawMeshTasks calls, want %d: %+v", len(rec.calls), len(want), rec.calls)
	}
	for i, w := range want {
		if rec.calls[i] != w {
			t.Errorf("call %d = %+v, want %+v", i, rec.calls[i], w)
		}
	}
}

// TestModelManagerMSDrawSkipsEmptyMeshlets verifies a mesh registered
// with zero meshlets (e.g. still mid-upload) is skipped entirely,
// never reaching PushConstants or DrawMeshTasks.
func TestModelManagerMSDrawSkipsEmptyMeshlets(t *testing.T) {
	meshes := &MeshManagerMS{meshes: handle.NewArena[meshRecord]()}
	empty := meshes.meshes.Insert(meshRecord{MeshletOffset: 0, MeshletCount: 0})

	mm := NewModelManagerMS(meshes)
	mm.AddModel(empty, Identity())

	rec := &fakeDrawRecorderMS{}
	mm.Draw(rec, vk.PipelineLayout(1), func(ModelHandle) uint32 { return 0 })

	if len(rec.calls) != 0 {
		t.Fatalf("got %d DrawMeshTasks calls for a zero-meshlet mesh, want 0", len(rec.calls))
	}
}
