// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package pipeline

import (
	"fmt"
	"unsafe"

	"github.com/terra-gfx/terra/vk"
)

// BuildPipelineLayout creates a VkPipelineLayout from the descriptor set
// layouts produced by internal/descriptor and the push-constant ranges a
// render engine needs (e.g. the mesh-shader engine's two-uint32
// (model_index, meshlet_offset) range).
func BuildPipelineLayout(device vk.Device, cmds *vk.Commands, setLayouts []vk.DescriptorSetLayout, pushConstantRanges []vk.PushConstantRange) (vk.PipelineLayout, error) {
	info := vk.PipelineLayoutCreateInfo{
		SType:                  vk.StructureTypePipelineLayoutCreateInfo,
		SetLayoutCount:         uint32(len(setLayouts)),
		PushConstantRangeCount: uint32(len(pushConstantRanges)),
	}
	if len(setLayouts) > 0 {
		info.PSetLayouts = uintptr(unsafe.Pointer(&setLayouts[0]))
	}
	if len(pushConstantRanges) > 0 {
		info.PPushConstantRanges = uintptr(unsafe.Pointer(&pushConstantRanges[0]))
	}

	var layout vk.PipelineLayout
	if res := cmds.CreatePipelineLayout(device, &info, nil, &layout); res != vk.Success {
		return 0, fmt.Errorf("pipeline: vkCreatePipelineLayout: result %d", res)
	}
	return layout, nil
}
