// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package pipeline

import (
	"testing"

	"github.com/terra-gfx/terra/vk"
)

func TestGraphicsDescriptionEquals(t *testing.T) {
	a := NewGraphicsBuilder().
		SetVertexStage("vert.spv", "frag.spv").
		AddColourAttachment(vk.FormatR32g32b32Sfloat, BlendNone).
		Build()
	b := NewGraphicsBuilder().
		SetVertexStage("vert.spv", "frag.spv").
		AddColourAttachment(vk.FormatR32g32b32Sfloat, BlendNone).
		Build()
	if !a.Equals(b) {
		t.Error("identical descriptions should be Equals")
	}

	c := NewGraphicsBuilder().
		SetVertexStage("vert.spv", "frag.spv").
		AddColourAttachment(vk.FormatR32g32b32Sfloat, BlendAlpha).
		Build()
	if a.Equals(c) {
		t.Error("descriptions differing by blend mode should not be Equals")
	}
}

func TestGraphicsBuilderMeshStage(t *testing.T) {
	desc := NewGraphicsBuilder().
		SetTaskStage("task.spv").
		SetMeshStage("mesh.spv", "frag.spv").
		Build()
	if desc.UsesVertexInput {
		t.Error("mesh pipelines should not set UsesVertexInput")
	}
	if desc.TaskShader != "task.spv" || desc.MeshShader != "mesh.spv" {
		t.Error("task/mesh shader paths not recorded")
	}
}

func TestComputeDescriptionEquals(t *testing.T) {
	a := NewComputeBuilder().SetComputeStage("cull.spv").Build()
	b := NewComputeBuilder().SetComputeStage("cull.spv").Build()
	if !a.Equals(b) {
		t.Error("identical compute descriptions should be Equals")
	}
	c := NewComputeBuilder().SetComputeStage("other.spv").Build()
	if a.Equals(c) {
		t.Error("differing compute shaders should not be Equals")
	}
}

func TestManagerAddOrGetReusesMatchingSlot(t *testing.T) {
	calls := 0
	m := NewManager[ComputeDescription](0, nil, 0, "", func(desc ComputeDescription, layout vk.PipelineLayout, shaderRoot string) (vk.Pipeline, error) {
		calls++
		return vk.Pipeline(calls), nil
	})

	descA := NewComputeBuilder().SetComputeStage("a.spv").Build()
	i1, err := m.AddOrGet(descA)
	if err != nil {
		t.Fatalf("AddOrGet: %v", err)
	}
	i2, err := m.AddOrGet(descA)
	if err != nil {
		t.Fatalf("AddOrGet: %v", err)
	}
	if i1 != i2 {
		t.Errorf("AddOrGet with equal description returned different slots: %d vs %d", i1, i2)
	}
	if calls != 1 {
		t.Errorf("build called %d times, want 1 (second AddOrGet should hit cache)", calls)
	}

	descB := NewComputeBuilder().SetComputeStage("b.spv").Build()
	i3, err := m.AddOrGet(descB)
	if err != nil {
		t.Fatalf("AddOrGet: %v", err)
	}
	if i3 == i1 {
		t.Error("distinct description should not reuse the same slot")
	}
	if calls != 2 {
		t.Errorf("build called %d times, want 2", calls)
	}
}

func TestManagerOverwritableSlotReuse(t *testing.T) {
	var built []string
	m := NewManager[ComputeDescription](0, nil, 0, "", func(desc ComputeDescription, layout vk.PipelineLayout, shaderRoot string) (vk.Pipeline, error) {
		built = append(built, desc.ComputeShader)
		return vk.Pipeline(len(built)), nil
	})

	i, _ := m.AddOrGet(NewComputeBuilder().SetComputeStage("a.spv").Build())
	m.SetOverwritable(i)

	j, err := m.AddOrGet(NewComputeBuilder().SetComputeStage("b.spv").Build())
	if err != nil {
		t.Fatalf("AddOrGet: %v", err)
	}
	if j != i {
		t.Errorf("AddOrGet should reuse the overwritable slot %d, got %d", i, j)
	}
	if len(built) != 2 {
		t.Errorf("expected 2 builds, got %d", len(built))
	}
}

func TestManagerDestroyIsNilSafe(t *testing.T) {
	m := NewManager[ComputeDescription](0, nil, 0, "", func(desc ComputeDescription, layout vk.PipelineLayout, shaderRoot string) (vk.Pipeline, error) {
		return 1, nil
	})
	m.AddOrGet(NewComputeBuilder().SetComputeStage("a.spv").Build())
	m.Destroy() // must not panic even though cmds is nil
}
