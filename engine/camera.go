// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package engine

import (
	"unsafe"

	"github.com/terra-gfx/terra/vk"
	"github.com/terra-gfx/terra/internal/descriptor"
	"github.com/terra-gfx/terra/internal/handle"
	"github.com/terra-gfx/terra/internal/memory"
	"github.com/terra-gfx/terra/internal/model"
	"github.com/terra-gfx/terra/internal/resource"
)

// Camera is the host-supplied view/projection/frustum/position a
// CameraManager slot holds. View and Projection are row-major 4x4
// matrices; Frustum carries the six clip-space planes the VS-indirect
// variant's culling pass tests model AABBs against.
type Camera struct {
	View       [16]float32
	Projection [16]float32
	Frustum    model.CameraFrustum
	Position   [4]float32
}

// cameraBufferData is the GPU-side layout Update writes: the same four
// fields as Camera, concatenated with no padding (matches the original's
// CameraBufferData, used there only to size the allocation).
type cameraBufferData struct {
	view       [16]float32
	projection [16]float32
	frustum    model.CameraFrustum
	position   [4]float32
}

const cameraBufferInstanceSize = uint64(unsafe.Sizeof(cameraBufferData{}))

// CameraManager is a reusable vector of host-supplied cameras with one
// "active" slot, backing add_camera/set_camera/remove_camera. Grounded
// on original_source's CameraManager/VkCameraManager: a per-frame
// uniform buffer sized frameCount*sizeof(CameraBufferData), updated once
// per frame from whichever camera is active, and bound as a uniform
// buffer descriptor the same way internal/external's Manager wires
// external buffers.
type CameraManager struct {
	device vk.Device
	cmds   *vk.Commands

	cameras      *handle.Arena[Camera]
	activeIndex  uint32
	hasActive    bool
	buffer       *resource.Buffer
	frameCount   uint32
	bindingSlot  uint32
	setLayoutIdx int
}

// NewCameraManager creates an empty camera manager. CreateBuffer must be
// called once frameCount is known, before the first Update.
func NewCameraManager(device vk.Device, cmds *vk.Commands) *CameraManager {
	return &CameraManager{device: device, cmds: cmds, cameras: handle.NewArena[Camera]()}
}

// AddCamera appends camera and makes it the active camera, matching the
// original's AddCamera/m_activeCameraIndex-on-add behaviour.
func (m *CameraManager) AddCamera(camera Camera) uint32 {
	h := m.cameras.Insert(camera)
	m.activeIndex = h.Index()
	m.hasActive = true
	return h.Index()
}

// SetCamera makes the camera at idx active. Reports false if idx is
// unknown.
func (m *CameraManager) SetCamera(idx uint32) bool {
	if _, ok := m.cameras.ByIndex(idx); !ok {
		return false
	}
	m.activeIndex = idx
	m.hasActive = true
	return true
}

// RemoveCamera frees idx's slot. If idx was active, no camera is active
// until the next SetCamera/AddCamera.
func (m *CameraManager) RemoveCamera(idx uint32) {
	m.cameras.RemoveByIndex(idx)
	if m.hasActive && m.activeIndex == idx {
		m.hasActive = false
	}
}

// CreateBuffer allocates the per-frame camera uniform buffer, one
// instance per frame in flight.
func (m *CameraManager) CreateBuffer(mem *memory.Manager, frameCount uint32) error {
	m.frameCount = frameCount
	buf, err := resource.NewBuffer(m.device, m.cmds, mem, cameraBufferInstanceSize*uint64(frameCount),
		vk.BufferUsageUniformBufferBit, memory.UsageUpload)
	if err != nil {
		return newError(ErrOutOfDeviceMemory, "camera manager: create buffer", err)
	}
	m.buffer = buf
	return nil
}

// Update writes the active camera's data into frameIndex's slot of the
// per-frame buffer. A no-op if no camera is active, matching the
// original's "run without any cameras" allowance.
func (m *CameraManager) Update(frameIndex uint32) {
	if !m.hasActive || m.buffer == nil {
		return
	}
	cam, ok := m.cameras.ByIndex(m.activeIndex)
	if !ok {
		return
	}
	data := cameraBufferData{view: cam.View, projection: cam.Projection, frustum: cam.Frustum, position: cam.Position}
	dst := unsafe.Add(m.buffer.HostPointer(), uintptr(frameIndex)*uintptr(cameraBufferInstanceSize))
	*(*cameraBufferData)(dst) = data
}

// ActiveFrustum returns the active camera's frustum planes for the
// VS-indirect variant's culling dispatch, or false if no camera active.
func (m *CameraManager) ActiveFrustum() (model.CameraFrustum, bool) {
	if !m.hasActive {
		return model.CameraFrustum{}, false
	}
	cam, ok := m.cameras.ByIndex(m.activeIndex)
	if !ok {
		return model.CameraFrustum{}, false
	}
	return cam.Frustum, true
}

// BindDescriptor writes a uniform buffer descriptor for frameIndex's
// camera buffer slot into the given descriptor buffer set/slot.
func (m *CameraManager) BindDescriptor(mgr *descriptor.Manager, set int, slot uint32, frameIndex uint32) error {
	addrInfo := vk.BufferDeviceAddressInfo{SType: vk.StructureTypeBufferDeviceAddressInfo, Buffer: m.buffer.Handle()}
	base := m.cmds.GetBufferDeviceAddress(m.device, &addrInfo)
	address := vk.DeviceAddress(uint64(base) + uint64(frameIndex)*cameraBufferInstanceSize)
	return mgr.SetUniformBufferDescriptor(set, slot, frameIndex, address, cameraBufferInstanceSize)
}

// Destroy releases the per-frame camera buffer.
func (m *CameraManager) Destroy() {
	if m.buffer != nil {
		m.buffer.Destroy()
		m.buffer = nil
	}
}
