// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package pipeline

import (
	"fmt"
	"unsafe"

	"github.com/terra-gfx/terra/vk"
)

// ComputeDescription is the external, comparable description of a
// compute pipeline: a single shader module. Terra's GPU frustum-culling
// pass is the only consumer today, but any future compute work reuses
// this builder.
type ComputeDescription struct {
	ComputeShader string
}

// Equals implements Equatable[ComputeDescription].
func (d ComputeDescription) Equals(o ComputeDescription) bool {
	return d.ComputeShader == o.ComputeShader
}

// ComputeBuilder mirrors GraphicsBuilder's incremental style for
// symmetry, even though a compute description only ever has one field.
type ComputeBuilder struct {
	desc ComputeDescription
}

func NewComputeBuilder() *ComputeBuilder {
	return &ComputeBuilder{}
}

func (b *ComputeBuilder) SetComputeStage(computeShader string) *ComputeBuilder {
	b.desc.ComputeShader = computeShader
	return b
}

func (b *ComputeBuilder) Build() ComputeDescription {
	return b.desc
}

// BuildComputePipeline constructs a VkPipeline for desc, loading its
// shader from shaderRoot. It satisfies pipeline.BuildFunc[ComputeDescription].
func BuildComputePipeline(device vk.Device, cmds *vk.Commands) BuildFunc[ComputeDescription] {
	return func(desc ComputeDescription, layout vk.PipelineLayout, shaderRoot string) (vk.Pipeline, error) {
		if desc.ComputeShader == "" {
			return 0, fmt.Errorf("pipeline: compute description has no shader")
		}
		module, cleanup, err := createShaderModule(device, cmds, shaderRoot, desc.ComputeShader)
		if err != nil {
			return 0, err
		}
		defer cleanup()

		createInfo := vk.ComputePipelineCreateInfo{
			SType: vk.StructureTypeComputePipelineCreateInfo,
			Stage: vk.PipelineShaderStageCreateInfo{
				SType:  vk.StructureTypePipelineShaderStageCreateInfo,
				Stage:  vk.ShaderStageComputeBit,
				Module: module,
				PName:  uintptr(unsafe.Pointer(&entryPointMain[0])),
			},
			Layout:            layout,
			BasePipelineIndex: -1,
		}

		var pipeline vk.Pipeline
		if res := cmds.CreateComputePipelines(device, 0, 1, &createInfo, nil, &pipeline); res != vk.Success {
			return 0, fmt.Errorf("pipeline: vkCreateComputePipelines: result %d", res)
		}
		return pipeline, nil
	}
}
