// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package external

import (
	"fmt"

	"github.com/terra-gfx/terra/vk"
	"github.com/terra-gfx/terra/internal/descriptor"
	"github.com/terra-gfx/terra/internal/sharedbuf"
	"github.com/terra-gfx/terra/internal/staging"
)

// BindingDetails names the descriptor-buffer slot update_descriptor
// writes into: a uniform or storage buffer descriptor at (set, slot,
// index), sized from the external buffer itself.
type BindingDetails struct {
	Set   int
	Slot  uint32
	Index uint32
}

// Manager exposes the external-resource operations spec.md §4.10 names
// for VkExternalResourceManager: uploading CPU data into a GPU-only
// external buffer, queuing a GPU-to-GPU copy between two external
// buffers, and writing an external buffer's descriptor. It holds no
// state of its own beyond what it needs to route to the factory,
// staging manager, and descriptor buffer it was built from.
type Manager struct {
	device vk.Device
	cmds   *vk.Commands

	factory    *Factory
	staging    *staging.Manager
	descriptor *descriptor.Manager
}

// NewManager builds an external resource manager over an existing
// factory, staging manager, and descriptor buffer manager. All three
// are typically shared across the engine, not owned exclusively here.
func NewManager(device vk.Device, cmds *vk.Commands, factory *Factory, stagingMgr *staging.Manager, descriptorMgr *descriptor.Manager) *Manager {
	return &Manager{device: device, cmds: cmds, factory: factory, staging: stagingMgr, descriptor: descriptorMgr}
}

// UploadExternalBufferGPUOnlyData queues cpuData for upload into the
// GPU-only external buffer at idx, offset dstOffset bytes in, routed
// through the staging manager per spec.md §4.10. The copy is recorded
// the next time the caller runs the staging manager's CopyAndClear.
func (m *Manager) UploadExternalBufferGPUOnlyData(idx uint32, cpuData []byte, dstOffset uint64, temp *sharedbuf.TemporaryDataBuffer) error {
	buf, ok := m.factory.Buffer(idx)
	if !ok {
		return fmt.Errorf("external: upload_external_buffer_gpu_only_data: unknown buffer %d", idx)
	}
	m.staging.AddBuffer(cpuData, buf.Handle(), dstOffset, staging.Target{}, temp)
	return nil
}

// QueueExternalBufferGPUCopy records a vkCmdCopyBuffer from srcIdx to
// dstIdx on cmd, copying size bytes from srcOffset to dstOffset. Per
// spec.md §4.10 this is recorded on the next transfer submission, so
// cmd must be a command buffer already open on the transfer queue.
func (m *Manager) QueueExternalBufferGPUCopy(cmd staging.CopyRecorder, srcIdx, dstIdx uint32, dstOffset, srcOffset, size uint64) error {
	src, ok := m.factory.Buffer(srcIdx)
	if !ok {
		return fmt.Errorf("external: queue_external_buffer_gpu_copy: unknown source buffer %d", srcIdx)
	}
	dst, ok := m.factory.Buffer(dstIdx)
	if !ok {
		return fmt.Errorf("external: queue_external_buffer_gpu_copy: unknown destination buffer %d", dstIdx)
	}
	cmd.CopyBuffer(src.Handle(), dst.Handle(), []vk.BufferCopy{
		{SrcOffset: vk.DeviceSize(srcOffset), DstOffset: vk.DeviceSize(dstOffset), Size: vk.DeviceSize(size)},
	})
	return nil
}

// UpdateDescriptor writes a UBO or SSBO descriptor for the external
// buffer at idx into details' descriptor-buffer slot, sizing the
// descriptor's range to the buffer's full extent. The external buffer's
// type decides which descriptor kind is written: CPUVisibleUniform gets a
// uniform-buffer descriptor, CPUVisibleSSBO and GPUOnly get a
// storage-buffer descriptor.
func (m *Manager) UpdateDescriptor(idx uint32, details BindingDetails) error {
	buf, ok := m.factory.Buffer(idx)
	if !ok {
		return fmt.Errorf("external: update_descriptor: unknown buffer %d", idx)
	}
	typ, _ := m.factory.BufferType(idx)

	addrInfo := vk.BufferDeviceAddressInfo{SType: vk.StructureTypeBufferDeviceAddressInfo, Buffer: buf.Handle()}
	address := m.cmds.GetBufferDeviceAddress(m.device, &addrInfo)

	switch typ {
	case CPUVisibleUniform:
		return m.descriptor.SetUniformBufferDescriptor(details.Set, details.Slot, details.Index, address, buf.Size())
	case CPUVisibleSSBO, GPUOnly:
		return m.descriptor.SetStorageBufferDescriptor(details.Set, details.Slot, details.Index, address, buf.Size())
	default:
		return fmt.Errorf("external: update_descriptor: buffer %d has unhandled type %d", idx, typ)
	}
}
