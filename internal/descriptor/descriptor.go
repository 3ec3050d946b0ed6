// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package descriptor implements Terra's descriptor buffer manager
// (VK_EXT_descriptor_buffer): K VkDescriptorSetLayouts backed by one
// host-coherent VkBuffer addressed by byte offset, replacing the teacher's
// VkDescriptorPool/VkDescriptorSet allocation model.
package descriptor

import (
	"fmt"
	"unsafe"

	"github.com/terra-gfx/terra/vk"
	"github.com/terra-gfx/terra/internal/gpusync"
	"github.com/terra-gfx/terra/internal/memory"
	"github.com/terra-gfx/terra/internal/resource"
)

// Binding describes one binding appended to a descriptor set layout via
// AddBinding. Flags is reserved for VK_EXT_descriptor_indexing binding
// flags (partially-bound, update-after-bind); Terra does not wire that
// extension, so the field is stored but never acted on.
type Binding struct {
	Slot   uint32
	Type   vk.DescriptorType
	Count  uint32
	Stages vk.ShaderStageFlags
	Flags  uint32
}

// Properties mirrors the subset of
// VkPhysicalDeviceDescriptorBufferPropertiesEXT every Manager needs to
// size and align its descriptor writes. Callers query it once, at device
// init, via vkGetPhysicalDeviceProperties2 and share it across every
// Manager the engine creates.
type Properties struct {
	OffsetAlignment                    uint64
	SamplerDescriptorSize              uint64
	CombinedImageSamplerDescriptorSize uint64
	SampledImageDescriptorSize         uint64
	StorageImageDescriptorSize         uint64
	UniformBufferDescriptorSize        uint64
	StorageBufferDescriptorSize        uint64
}

func (p Properties) descriptorSize(t vk.DescriptorType) uint64 {
	switch t {
	case vk.DescriptorTypeSampler:
		return p.SamplerDescriptorSize
	case vk.DescriptorTypeCombinedImageSampler:
		return p.CombinedImageSamplerDescriptorSize
	case vk.DescriptorTypeSampledImage:
		return p.SampledImageDescriptorSize
	case vk.DescriptorTypeStorageImage:
		return p.StorageImageDescriptorSize
	case vk.DescriptorTypeUniformBuffer:
		return p.UniformBufferDescriptorSize
	case vk.DescriptorTypeStorageBuffer:
		return p.StorageBufferDescriptorSize
	default:
		return 0
	}
}

func alignUp(v, align uint64) uint64 {
	if align == 0 {
		return v
	}
	return (v + align - 1) &^ (align - 1)
}

type setLayout struct {
	bindings []Binding
	handle   vk.DescriptorSetLayout
	size     uint64 // vkGetDescriptorSetLayoutSizeEXT, rounded up to OffsetAlignment
}

// Manager is one descriptor buffer: K VkDescriptorSetLayouts (built from
// AddBinding/UpdateBinding calls) backed by a single host-coherent
// VkBuffer that CreateBuffer sizes to the sum of the per-set layout
// sizes. Callers typically keep one Manager per frame-in-flight so
// concurrent frames never write the same descriptor bytes.
type Manager struct {
	device vk.Device
	cmds   *vk.Commands
	mem    *memory.Manager
	props  Properties

	sets         []*setLayout
	layoutOffset []uint64
	buffer       *resource.Buffer
	address      vk.DeviceAddress
}

// NewManager creates an empty descriptor buffer manager.
func NewManager(device vk.Device, cmds *vk.Commands, mem *memory.Manager, props Properties) *Manager {
	return &Manager{device: device, cmds: cmds, mem: mem, props: props}
}

// AddBinding appends a binding to set's pending binding list. The set's
// VkDescriptorSetLayout is (re)built by CreateBuffer, not here — add_binding
// only records intent.
func (m *Manager) AddBinding(set int, b Binding) {
	for len(m.sets) <= set {
		m.sets = append(m.sets, &setLayout{})
	}
	m.sets[set].bindings = append(m.sets[set].bindings, b)
}

// UpdateBinding replaces an existing binding of set in place, matched by
// slot.
func (m *Manager) UpdateBinding(set int, b Binding) error {
	if set >= len(m.sets) {
		return fmt.Errorf("descriptor: update_binding: set %d was never added", set)
	}
	bindings := m.sets[set].bindings
	for i := range bindings {
		if bindings[i].Slot == b.Slot {
			bindings[i] = b
			return nil
		}
	}
	return fmt.Errorf("descriptor: update_binding: set %d has no binding at slot %d", set, b.Slot)
}

// buildLayouts creates a VkDescriptorSetLayout for every set that doesn't
// have one yet.
func (m *Manager) buildLayouts() error {
	for i, s := range m.sets {
		if s.handle != 0 {
			continue
		}
		vkBindings := make([]vk.DescriptorSetLayoutBinding, len(s.bindings))
		for j, b := range s.bindings {
			vkBindings[j] = vk.DescriptorSetLayoutBinding{
				Binding:         b.Slot,
				DescriptorType:  b.Type,
				DescriptorCount: b.Count,
				StageFlags:      b.Stages,
			}
		}
		info := vk.DescriptorSetLayoutCreateInfo{
			SType:        vk.StructureTypeDescriptorSetLayoutCreateInfo,
			Flags:        vk.DescriptorSetLayoutCreateDescriptorBufferBitExt,
			BindingCount: uint32(len(vkBindings)),
		}
		if len(vkBindings) > 0 {
			info.PBindings = uintptr(unsafe.Pointer(&vkBindings[0]))
		}

		var layout vk.DescriptorSetLayout
		if result := m.cmds.CreateDescriptorSetLayout(m.device, &info, nil, &layout); result != vk.Success {
			return fmt.Errorf("descriptor: vkCreateDescriptorSetLayout(set %d): %d", i, result)
		}
		s.handle = layout

		var size vk.DeviceSize
		m.cmds.GetDescriptorSetLayoutSizeEXT(m.device, layout, &size)
		s.size = alignUp(uint64(size), m.props.OffsetAlignment)
	}
	return nil
}

// CreateBuffer resolves the per-layout size of every set via the
// descriptor-buffer extension, totals them, and allocates one
// host-coherent buffer sized to the sum.
func (m *Manager) CreateBuffer() error {
	if err := m.buildLayouts(); err != nil {
		return err
	}

	m.layoutOffset = make([]uint64, len(m.sets))
	var total uint64
	for i, s := range m.sets {
		m.layoutOffset[i] = total
		total += s.size
	}
	if total == 0 {
		return nil
	}

	usage := vk.BufferUsageResourceDescriptorBufferBitExt | vk.BufferUsageSamplerDescriptorBufferBitExt | vk.BufferUsageShaderDeviceAddressBit
	buf, err := resource.NewBuffer(m.device, m.cmds, m.mem, total, usage, memory.UsageUpload)
	if err != nil {
		return fmt.Errorf("descriptor: create_buffer: %w", err)
	}
	m.buffer = buf
	m.address = m.cmds.GetBufferDeviceAddress(m.device, &vk.BufferDeviceAddressInfo{
		SType:  vk.StructureTypeBufferDeviceAddressInfo,
		Buffer: buf.Handle(),
	})
	return nil
}

// RecreateBuffer allocates a fresh buffer at the current total size. If
// the new size is greater than or equal to the old one the previous
// buffer's bytes are copied in; otherwise the caller must re-issue every
// descriptor write.
func (m *Manager) RecreateBuffer() error {
	old := m.buffer
	oldSize := uint64(0)
	if old != nil {
		oldSize = old.Size()
	}

	if err := m.buildLayouts(); err != nil {
		return err
	}
	m.layoutOffset = make([]uint64, len(m.sets))
	var total uint64
	for i, s := range m.sets {
		m.layoutOffset[i] = total
		total += s.size
	}

	usage := vk.BufferUsageResourceDescriptorBufferBitExt | vk.BufferUsageSamplerDescriptorBufferBitExt | vk.BufferUsageShaderDeviceAddressBit
	buf, err := resource.NewBuffer(m.device, m.cmds, m.mem, total, usage, memory.UsageUpload)
	if err != nil {
		return fmt.Errorf("descriptor: recreate_buffer: %w", err)
	}

	if old != nil && total >= oldSize && oldSize > 0 {
		srcPtr := old.HostPointer()
		dstPtr := buf.HostPointer()
		if srcPtr != nil && dstPtr != nil {
			src := unsafe.Slice((*byte)(srcPtr), oldSize)
			dst := unsafe.Slice((*byte)(dstPtr), oldSize)
			copy(dst, src)
		}
	}

	old.Destroy()
	m.buffer = buf
	m.address = m.cmds.GetBufferDeviceAddress(m.device, &vk.BufferDeviceAddressInfo{
		SType:  vk.StructureTypeBufferDeviceAddressInfo,
		Buffer: buf.Handle(),
	})
	return nil
}

// SetLayoutHandles builds (if needed) and returns every set's
// VkDescriptorSetLayout, in set order, for use in
// pipeline.BuildPipelineLayout. Sets with no bindings still get an empty
// layout so indices line up with AddBinding's set numbering.
func (m *Manager) SetLayoutHandles() ([]vk.DescriptorSetLayout, error) {
	if err := m.buildLayouts(); err != nil {
		return nil, err
	}
	handles := make([]vk.DescriptorSetLayout, len(m.sets))
	for i, s := range m.sets {
		handles[i] = s.handle
	}
	return handles, nil
}

// bindingOffset returns binding_offset(set, slot): the byte offset of
// slot's descriptors within set's layout.
func (m *Manager) bindingOffset(set int, slot uint32) (uint64, error) {
	if set >= len(m.sets) || m.sets[set].handle == 0 {
		return 0, fmt.Errorf("descriptor: set %d has no layout", set)
	}
	var offset vk.DeviceSize
	m.cmds.GetDescriptorSetLayoutBindingOffsetEXT(m.device, m.sets[set].handle, slot, &offset)
	return uint64(offset), nil
}

// writeDescriptor computes layout_offsets[set] + binding_offset(set, slot)
// + index*descriptor_size and memcpys the extension-provided descriptor
// payload into the mapped buffer at that address.
func (m *Manager) writeDescriptor(set int, slot uint32, index uint32, typ vk.DescriptorType, data unsafe.Pointer) error {
	if m.buffer == nil {
		return fmt.Errorf("descriptor: write before create_buffer")
	}
	bindOff, err := m.bindingOffset(set, slot)
	if err != nil {
		return err
	}
	size := m.props.descriptorSize(typ)
	target := m.layoutOffset[set] + bindOff + uint64(index)*size

	host := m.buffer.HostPointer()
	if host == nil {
		return fmt.Errorf("descriptor: buffer is not host-visible")
	}
	dst := unsafe.Add(host, target)

	info := vk.DescriptorGetInfoEXT{SType: vk.StructureTypeDescriptorGetInfoEXT, Type: typ}
	*(*uintptr)(unsafe.Pointer(&info.Data)) = uintptr(data)
	m.cmds.GetDescriptorEXT(m.device, &info, uintptr(size), dst)
	return nil
}

// SetUniformBufferDescriptor writes a UNIFORM_BUFFER descriptor at
// (set, slot, index) referencing [address, address+size).
func (m *Manager) SetUniformBufferDescriptor(set int, slot, index uint32, address vk.DeviceAddress, size uint64) error {
	addrInfo := vk.DescriptorAddressInfoEXT{
		SType:   vk.StructureTypeDescriptorAddressInfoEXT,
		Address: address,
		Range:   vk.DeviceSize(size),
	}
	return m.writeDescriptor(set, slot, index, vk.DescriptorTypeUniformBuffer, unsafe.Pointer(&addrInfo))
}

// SetStorageBufferDescriptor writes a STORAGE_BUFFER descriptor at
// (set, slot, index) referencing [address, address+size).
func (m *Manager) SetStorageBufferDescriptor(set int, slot, index uint32, address vk.DeviceAddress, size uint64) error {
	addrInfo := vk.DescriptorAddressInfoEXT{
		SType:   vk.StructureTypeDescriptorAddressInfoEXT,
		Address: address,
		Range:   vk.DeviceSize(size),
	}
	return m.writeDescriptor(set, slot, index, vk.DescriptorTypeStorageBuffer, unsafe.Pointer(&addrInfo))
}

// SetCombinedImageDescriptor writes a COMBINED_IMAGE_SAMPLER descriptor at
// (set, slot, index).
func (m *Manager) SetCombinedImageDescriptor(set int, slot, index uint32, sampler vk.Sampler, view vk.ImageView, layout vk.ImageLayout) error {
	imgInfo := vk.DescriptorImageInfo{Sampler: sampler, ImageView: view, ImageLayout: layout}
	return m.writeDescriptor(set, slot, index, vk.DescriptorTypeCombinedImageSampler, unsafe.Pointer(&imgInfo))
}

// Bind records one VkDescriptorBufferBindingInfoEXT for this buffer's
// device address, then vkCmdSetDescriptorBufferOffsetsEXT with
// layout_offset for every set index in [0, K).
func (m *Manager) Bind(cmd *gpusync.CommandBuffer, bindPoint vk.PipelineBindPoint, pipelineLayout vk.PipelineLayout) {
	if m.buffer == nil || len(m.sets) == 0 {
		return
	}
	binding := vk.DescriptorBufferBindingInfoEXT{
		SType:   vk.StructureTypeDescriptorBufferBindingInfoEXT,
		Address: m.address,
		Usage:   vk.BufferUsageResourceDescriptorBufferBitExt | vk.BufferUsageSamplerDescriptorBufferBitExt,
	}
	cmd.BindDescriptorBuffers([]vk.DescriptorBufferBindingInfoEXT{binding})

	indices := make([]uint32, len(m.sets))
	offsets := make([]vk.DeviceSize, len(m.sets))
	for i := range m.sets {
		indices[i] = 0 // single bound buffer, all sets index into it
		offsets[i] = vk.DeviceSize(m.layoutOffset[i])
	}
	cmd.SetDescriptorBufferOffsets(bindPoint, pipelineLayout, 0, indices, offsets)
}

// Destroy releases the backing buffer and every built descriptor set
// layout.
func (m *Manager) Destroy() {
	if m.buffer != nil {
		m.buffer.Destroy()
		m.buffer = nil
	}
	for _, s := range m.sets {
		if s.handle != 0 {
			m.cmds.DestroyDescriptorSetLayout(m.device, s.handle, nil)
			s.handle = 0
		}
	}
}
