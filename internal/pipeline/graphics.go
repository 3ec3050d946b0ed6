// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package pipeline

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"unsafe"

	"github.com/terra-gfx/terra/vk"
)

// The engine's single fixed vertex layout is (vec3 position, vec3
// normal, vec2 uv), tightly packed.
const (
	vertexStride       = 3*4 + 3*4 + 2*4
	vertexOffsetPos    = 0
	vertexOffsetNormal = 3 * 4
	vertexOffsetUV     = 3*4 + 3*4
)

// ColourAttachment describes one dynamic-rendering colour attachment a
// graphics pipeline writes, along with its blend state.
type ColourAttachment struct {
	Format    vk.Format
	BlendMode BlendMode
}

// BlendMode selects a canned blend configuration; Terra does not expose
// the full Vulkan blend-equation surface to callers.
type BlendMode int

const (
	BlendNone BlendMode = iota
	BlendAlpha
	BlendAdditive
)

func (b BlendMode) attachmentState(mask vk.ColorComponentFlags) vk.PipelineColorBlendAttachmentState {
	state := vk.PipelineColorBlendAttachmentState{ColorWriteMask: mask}
	switch b {
	case BlendAlpha:
		state.BlendEnable = 1
		state.SrcColorBlendFactor = vk.BlendFactorOne
		state.DstColorBlendFactor = vk.BlendFactorOneMinusSrcAlpha
		state.ColorBlendOp = vk.BlendOpAdd
		state.SrcAlphaBlendFactor = vk.BlendFactorOne
		state.DstAlphaBlendFactor = vk.BlendFactorOneMinusSrcAlpha
		state.AlphaBlendOp = vk.BlendOpAdd
	case BlendAdditive:
		state.BlendEnable = 1
		state.SrcColorBlendFactor = vk.BlendFactorOne
		state.DstColorBlendFactor = vk.BlendFactorOne
		state.ColorBlendOp = vk.BlendOpAdd
		state.SrcAlphaBlendFactor = vk.BlendFactorOne
		state.DstAlphaBlendFactor = vk.BlendFactorOne
		state.AlphaBlendOp = vk.BlendOpAdd
	}
	return state
}

// DepthStencilState configures depth test/write for a graphics pipeline.
// Stencil testing is never used by Terra's render engines and is always
// disabled.
type DepthStencilState struct {
	TestEnable  bool
	WriteEnable bool
	CompareOp   vk.CompareOp
}

// GraphicsDescription is the external, comparable description of a
// graphics pipeline. Two descriptions that are field-for-field equal
// (shader paths compared as given, colour attachments element by
// element) produce the same pipeline; Manager.AddOrGet uses Equals to
// detect a reusable slot.
type GraphicsDescription struct {
	// Stage selects the shading path: either vertex+fragment, or
	// mesh(+task)+fragment.
	VertexShader   string
	TaskShader     string
	MeshShader     string
	FragmentShader string

	Topology  vk.PrimitiveTopology
	CullMode  vk.CullModeFlags
	FrontFace vk.FrontFace

	DepthStencil DepthStencilState

	ColourAttachments []ColourAttachment
	DepthFormat       vk.Format

	// UsesVertexInput selects the fixed (position, normal, uv) vertex
	// layout when true; mesh-shader pipelines leave it false since they
	// read geometry from shader storage buffers instead.
	UsesVertexInput bool
}

// Equals implements Equatable[GraphicsDescription].
func (d GraphicsDescription) Equals(o GraphicsDescription) bool {
	if d.VertexShader != o.VertexShader || d.TaskShader != o.TaskShader ||
		d.MeshShader != o.MeshShader || d.FragmentShader != o.FragmentShader {
		return false
	}
	if d.Topology != o.Topology || d.CullMode != o.CullMode || d.FrontFace != o.FrontFace {
		return false
	}
	if d.DepthStencil != o.DepthStencil {
		return false
	}
	if d.DepthFormat != o.DepthFormat || d.UsesVertexInput != o.UsesVertexInput {
		return false
	}
	if len(d.ColourAttachments) != len(o.ColourAttachments) {
		return false
	}
	for i := range d.ColourAttachments {
		if d.ColourAttachments[i] != o.ColourAttachments[i] {
			return false
		}
	}
	return true
}

// GraphicsBuilder assembles a GraphicsDescription through the same
// incremental calls the spec names: SetInputAssembler, SetVertexStage /
// SetMeshStage / SetTaskStage, SetDepthStencilState, AddColourAttachment,
// SetCullMode. Viewport and scissor are always dynamic state, so callers
// never configure them here.
type GraphicsBuilder struct {
	desc GraphicsDescription
}

// NewGraphicsBuilder starts a builder with triangle-list topology,
// back-face culling, and counter-clockwise front face — Terra's default
// rasterization state.
func NewGraphicsBuilder() *GraphicsBuilder {
	return &GraphicsBuilder{desc: GraphicsDescription{
		Topology:  vk.PrimitiveTopologyTriangleList,
		CullMode:  vk.CullModeBackBit,
		FrontFace: vk.FrontFaceCounterClockwise,
	}}
}

func (b *GraphicsBuilder) SetInputAssembler(topology vk.PrimitiveTopology) *GraphicsBuilder {
	b.desc.Topology = topology
	b.desc.UsesVertexInput = true
	return b
}

func (b *GraphicsBuilder) SetVertexStage(vertexShader, fragmentShader string) *GraphicsBuilder {
	b.desc.VertexShader = vertexShader
	b.desc.FragmentShader = fragmentShader
	b.desc.UsesVertexInput = true
	return b
}

func (b *GraphicsBuilder) SetMeshStage(meshShader, fragmentShader string) *GraphicsBuilder {
	b.desc.MeshShader = meshShader
	b.desc.FragmentShader = fragmentShader
	return b
}

func (b *GraphicsBuilder) SetTaskStage(taskShader string) *GraphicsBuilder {
	b.desc.TaskShader = taskShader
	return b
}

func (b *GraphicsBuilder) SetDepthStencilState(s DepthStencilState) *GraphicsBuilder {
	b.desc.DepthStencil = s
	return b
}

func (b *GraphicsBuilder) AddColourAttachment(format vk.Format, blend BlendMode) *GraphicsBuilder {
	b.desc.ColourAttachments = append(b.desc.ColourAttachments, ColourAttachment{Format: format, BlendMode: blend})
	return b
}

func (b *GraphicsBuilder) SetDepthFormat(format vk.Format) *GraphicsBuilder {
	b.desc.DepthFormat = format
	return b
}

func (b *GraphicsBuilder) SetCullMode(mode vk.CullModeFlags) *GraphicsBuilder {
	b.desc.CullMode = mode
	return b
}

// AddDynamicState exists for API symmetry with the spec's builder list;
// VIEWPORT and SCISSOR are unconditional, so there is nothing else Terra
// makes dynamic today.
func (b *GraphicsBuilder) AddDynamicState(_ vk.DynamicState) *GraphicsBuilder {
	return b
}

func (b *GraphicsBuilder) Build() GraphicsDescription {
	return b.desc
}

func loadSPIRV(path string) ([]uint32, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("pipeline: reading shader %q: %w", path, err)
	}
	if len(raw)%4 != 0 {
		return nil, fmt.Errorf("pipeline: shader %q is not a whole number of 32-bit words", path)
	}
	words := make([]uint32, len(raw)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(raw[i*4:])
	}
	return words, nil
}

func createShaderModule(device vk.Device, cmds *vk.Commands, shaderRoot, name string) (vk.ShaderModule, func(), error) {
	code, err := loadSPIRV(filepath.Join(shaderRoot, name))
	if err != nil {
		return 0, nil, err
	}
	info := vk.ShaderModuleCreateInfo{
		SType:    vk.StructureTypeShaderModuleCreateInfo,
		CodeSize: uintptr(len(code) * 4),
		PCode:    uintptr(unsafe.Pointer(&code[0])),
	}
	var module vk.ShaderModule
	if res := cmds.CreateShaderModule(device, &info, nil, &module); res != vk.Success {
		return 0, nil, fmt.Errorf("pipeline: vkCreateShaderModule(%q): result %d", name, res)
	}
	return module, func() { cmds.DestroyShaderModule(device, module, nil) }, nil
}

var entryPointMain = append([]byte("main"), 0)

// BuildGraphicsPipeline constructs a VkPipeline for desc, loading its
// shader stages from shaderRoot. It satisfies pipeline.BuildFunc[GraphicsDescription].
//
//nolint:maintidx // pipeline creation configures a lot of fixed Vulkan state
func BuildGraphicsPipeline(device vk.Device, cmds *vk.Commands) BuildFunc[GraphicsDescription] {
	return func(desc GraphicsDescription, layout vk.PipelineLayout, shaderRoot string) (vk.Pipeline, error) {
		var stages []vk.PipelineShaderStageCreateInfo
		var cleanups []func()
		defer func() {
			for _, c := range cleanups {
				c()
			}
		}()

		addStage := func(stageBit vk.ShaderStageFlags, name string) error {
			module, cleanup, err := createShaderModule(device, cmds, shaderRoot, name)
			if err != nil {
				return err
			}
			cleanups = append(cleanups, cleanup)
			stages = append(stages, vk.PipelineShaderStageCreateInfo{
				SType:  vk.StructureTypePipelineShaderStageCreateInfo,
				Stage:  stageBit,
				Module: module,
				PName:  uintptr(unsafe.Pointer(&entryPointMain[0])),
			})
			return nil
		}

		if desc.MeshShader != "" {
			if desc.TaskShader != "" {
				if err := addStage(vk.ShaderStageTaskBitExt, desc.TaskShader); err != nil {
					return 0, err
				}
			}
			if err := addStage(vk.ShaderStageMeshBitExt, desc.MeshShader); err != nil {
				return 0, err
			}
		} else {
			if desc.VertexShader == "" {
				return 0, fmt.Errorf("pipeline: graphics description has neither a vertex nor a mesh stage")
			}
			if err := addStage(vk.ShaderStageVertexBit, desc.VertexShader); err != nil {
				return 0, err
			}
		}
		if desc.FragmentShader != "" {
			if err := addStage(vk.ShaderStageFragmentBit, desc.FragmentShader); err != nil {
				return 0, err
			}
		}

		var vertexInput vk.PipelineVertexInputStateCreateInfo
		var bindings [1]vk.VertexInputBindingDescription
		var attribs [3]vk.VertexInputAttributeDescription
		if desc.UsesVertexInput {
			bindings[0] = vk.VertexInputBindingDescription{Binding: 0, Stride: vertexStride, InputRate: vk.VertexInputRateVertex}
			attribs[0] = vk.VertexInputAttributeDescription{Location: 0, Binding: 0, Format: vk.FormatR32g32b32Sfloat, Offset: vertexOffsetPos}
			attribs[1] = vk.VertexInputAttributeDescription{Location: 1, Binding: 0, Format: vk.FormatR32g32b32Sfloat, Offset: vertexOffsetNormal}
			attribs[2] = vk.VertexInputAttributeDescription{Location: 2, Binding: 0, Format: vk.FormatR32g32Sfloat, Offset: vertexOffsetUV}
			vertexInput = vk.PipelineVertexInputStateCreateInfo{
				SType:                           vk.StructureTypePipelineVertexInputStateCreateInfo,
				VertexBindingDescriptionCount:   1,
				PVertexBindingDescriptions:      uintptr(unsafe.Pointer(&bindings[0])),
				VertexAttributeDescriptionCount: 3,
				PVertexAttributeDescriptions:    uintptr(unsafe.Pointer(&attribs[0])),
			}
		} else {
			vertexInput = vk.PipelineVertexInputStateCreateInfo{SType: vk.StructureTypePipelineVertexInputStateCreateInfo}
		}

		inputAssembly := vk.PipelineInputAssemblyStateCreateInfo{
			SType:    vk.StructureTypePipelineInputAssemblyStateCreateInfo,
			Topology: desc.Topology,
		}

		viewportState := vk.PipelineViewportStateCreateInfo{
			SType:         vk.StructureTypePipelineViewportStateCreateInfo,
			ViewportCount: 1,
			ScissorCount:  1,
		}

		rasterization := vk.PipelineRasterizationStateCreateInfo{
			SType:       vk.StructureTypePipelineRasterizationStateCreateInfo,
			PolygonMode: vk.PolygonModeFill,
			CullMode:    desc.CullMode,
			FrontFace:   desc.FrontFace,
			LineWidth:   1.0,
		}

		multisample := vk.PipelineMultisampleStateCreateInfo{
			SType:                vk.StructureTypePipelineMultisampleStateCreateInfo,
			RasterizationSamples: vk.SampleCount1Bit,
		}

		var boolToU32 = func(b bool) vk.Bool32 {
			if b {
				return 1
			}
			return 0
		}
		depthStencil := vk.PipelineDepthStencilStateCreateInfo{
			SType:            vk.StructureTypePipelineDepthStencilStateCreateInfo,
			DepthTestEnable:  boolToU32(desc.DepthStencil.TestEnable),
			DepthWriteEnable: boolToU32(desc.DepthStencil.WriteEnable),
			DepthCompareOp:   desc.DepthStencil.CompareOp,
		}

		const colourMask = vk.ColorComponentRBit | vk.ColorComponentGBit | vk.ColorComponentBBit | vk.ColorComponentABit
		blendAttachments := make([]vk.PipelineColorBlendAttachmentState, len(desc.ColourAttachments))
		formats := make([]vk.Format, len(desc.ColourAttachments))
		for i, a := range desc.ColourAttachments {
			blendAttachments[i] = a.BlendMode.attachmentState(colourMask)
			formats[i] = a.Format
		}
		colourBlend := vk.PipelineColorBlendStateCreateInfo{
			SType:           vk.StructureTypePipelineColorBlendStateCreateInfo,
			AttachmentCount: uint32(len(blendAttachments)),
		}
		if len(blendAttachments) > 0 {
			colourBlend.PAttachments = uintptr(unsafe.Pointer(&blendAttachments[0]))
		}

		dynamicStates := [2]vk.DynamicState{vk.DynamicStateViewport, vk.DynamicStateScissor}
		dynamicState := vk.PipelineDynamicStateCreateInfo{
			SType:             vk.StructureTypePipelineDynamicStateCreateInfo,
			DynamicStateCount: uint32(len(dynamicStates)),
			PDynamicStates:    uintptr(unsafe.Pointer(&dynamicStates[0])),
		}

		rendering := vk.PipelineRenderingCreateInfo{
			SType:                 vk.StructureTypePipelineRenderingCreateInfo,
			ColorAttachmentCount:  uint32(len(formats)),
			DepthAttachmentFormat: desc.DepthFormat,
		}
		if len(formats) > 0 {
			rendering.PColorAttachmentFormats = uintptr(unsafe.Pointer(&formats[0]))
		}

		createInfo := vk.GraphicsPipelineCreateInfo{
			SType:               vk.StructureTypeGraphicsPipelineCreateInfo,
			PNext:               uintptr(unsafe.Pointer(&rendering)),
			StageCount:          uint32(len(stages)),
			PStages:             uintptr(unsafe.Pointer(&stages[0])),
			PVertexInputState:   uintptr(unsafe.Pointer(&vertexInput)),
			PInputAssemblyState: uintptr(unsafe.Pointer(&inputAssembly)),
			PViewportState:      uintptr(unsafe.Pointer(&viewportState)),
			PRasterizationState: uintptr(unsafe.Pointer(&rasterization)),
			PMultisampleState:   uintptr(unsafe.Pointer(&multisample)),
			PDepthStencilState:  uintptr(unsafe.Pointer(&depthStencil)),
			PColorBlendState:    uintptr(unsafe.Pointer(&colourBlend)),
			PDynamicState:       uintptr(unsafe.Pointer(&dynamicState)),
			Layout:              layout,
			BasePipelineIndex:   -1,
		}

		var pipeline vk.Pipeline
		if res := cmds.CreateGraphicsPipelines(device, 0, 1, &createInfo, nil, &pipeline); res != vk.Success {
			return 0, fmt.Errorf("pipeline: vkCreateGraphicsPipelines: result %d", res)
		}
		return pipeline, nil
	}
}
