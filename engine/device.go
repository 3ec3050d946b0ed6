// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package engine

import (
	"fmt"
	"runtime"
	"unsafe"

	"github.com/terra-gfx/terra/vk"
	"github.com/terra-gfx/terra/internal/descriptor"
	"github.com/terra-gfx/terra/internal/memory"
)

// requiredInstanceExtensions names the WSI extensions every Terra
// instance enables; the platform surface extension is appended by
// platformSurfaceExtension.
var requiredInstanceExtensions = []string{
	"VK_KHR_surface\x00",
}

// requiredDeviceExtensions names the extensions finalise_initialisation
// cannot proceed without: swapchain presentation, descriptor buffers
// (every variant binds resources this way), mesh shading (only the MS
// variant chains its feature struct on, but the extension itself is
// cheap to require across the board so device.go has one code path),
// and the memory budget extension. Nothing queries the budget:
// internal/memory.Manager sizes pools from its static InitialBudget.
var requiredDeviceExtensions = []string{
	"VK_KHR_swapchain\x00",
	"VK_EXT_descriptor_buffer\x00",
	"VK_EXT_mesh_shader\x00",
	"VK_EXT_memory_budget\x00",
}

func platformSurfaceExtension() string {
	switch runtime.GOOS {
	case "windows":
		return "VK_KHR_win32_surface\x00"
	case "darwin":
		return "VK_EXT_metal_surface\x00"
	default:
		return "VK_KHR_xlib_surface\x00"
	}
}

func vkMakeVersion(major, minor, patch uint32) uint32 {
	return (major << 22) | (minor << 12) | patch
}

// cStringPtrs converts a set of NUL-terminated Go strings into the
// uintptr array vkCreateInstance/vkCreateDevice's
// PpEnabledExtensionNames/PpEnabledLayerNames expect. Callers must keep
// the returned slice (and the strings it points into) alive until the
// Vulkan call returns — runtime.KeepAlive at the call site, matching the
// teacher's hal/vulkan/api.go convention.
func cStringPtrs(strs []string) []uintptr {
	if len(strs) == 0 {
		return nil
	}
	ptrs := make([]uintptr, len(strs))
	for i, s := range strs {
		ptrs[i] = uintptr(unsafe.Pointer(unsafe.StringData(s)))
	}
	return ptrs
}

// Device owns the Vulkan instance, physical device, logical device, and
// the queue family assignment and descriptor-buffer properties every
// later stage of bootstrap (memory, descriptor, swapchain, render
// engine) is built from.
type Device struct {
	Cmds           *vk.Commands
	Instance       vk.Instance
	PhysicalDevice vk.PhysicalDevice
	Handle         vk.Device
	Families       *QueueFamilyManager
	GraphicsQueue  vk.Queue
	ComputeQueue   vk.Queue
	TransferQueue  vk.Queue

	MemoryProperties     memory.DeviceMemoryProperties
	DescriptorProperties descriptor.Properties

	debugEnabled bool
}

// DeviceOptions configures instance/device creation.
type DeviceOptions struct {
	ApplicationName string
	EnableDebug     bool
}

// CreateDevice runs Terra's full bootstrap: vkCreateInstance, physical
// device selection (the first device advertising every required
// extension), vkCreateDevice with the Vulkan-1.3/descriptor-buffer/
// mesh-shader feature chain, and queue retrieval. Grounded on the
// teacher's hal/vulkan/api.go Backend.CreateInstance plus
// adapter.go Adapter.Open, generalised from one hardcoded graphics queue
// to Terra's three logical queues.
func CreateDevice(opts DeviceOptions) (*Device, error) {
	if err := vk.Init(); err != nil {
		return nil, newError(ErrUnknown, "vk.Init", err)
	}

	cmds := &vk.Commands{}
	if err := cmds.LoadGlobal(); err != nil {
		return nil, newError(ErrUnknown, "LoadGlobal", err)
	}

	appName := []byte(opts.ApplicationName + "\x00")
	engineName := []byte("terra\x00")
	appInfo := vk.ApplicationInfo{
		SType:              vk.StructureTypeApplicationInfo,
		PApplicationName:   uintptr(unsafe.Pointer(&appName[0])),
		ApplicationVersion: vkMakeVersion(1, 0, 0),
		PEngineName:        uintptr(unsafe.Pointer(&engineName[0])),
		EngineVersion:      vkMakeVersion(1, 0, 0),
		ApiVersion:         vkMakeVersion(1, 3, 0),
	}

	instExtensions := append(append([]string{}, requiredInstanceExtensions...), platformSurfaceExtension())
	var layers []string
	if opts.EnableDebug {
		layers = append(layers, "VK_LAYER_KHRONOS_validation\x00")
		instExtensions = append(instExtensions, "VK_EXT_debug_utils\x00")
	}

	extPtrs := cStringPtrs(instExtensions)
	layerPtrs := cStringPtrs(layers)

	instInfo := vk.InstanceCreateInfo{
		SType:                 vk.StructureTypeInstanceCreateInfo,
		PApplicationInfo:      &appInfo,
		EnabledExtensionCount: uint32(len(instExtensions)),
		EnabledLayerCount:     uint32(len(layers)),
	}
	if len(extPtrs) > 0 {
		instInfo.PpEnabledExtensionNames = uintptr(unsafe.Pointer(&extPtrs[0]))
	}
	if len(layerPtrs) > 0 {
		instInfo.PpEnabledLayerNames = uintptr(unsafe.Pointer(&layerPtrs[0]))
	}

	var instance vk.Instance
	if res := cmds.CreateInstance(&instInfo, nil, &instance); res != vk.Success {
		return nil, resultError(ErrUnknown, "vkCreateInstance", res)
	}
	runtime.KeepAlive(appName)
	runtime.KeepAlive(engineName)
	runtime.KeepAlive(instExtensions)
	runtime.KeepAlive(layers)
	runtime.KeepAlive(extPtrs)
	runtime.KeepAlive(layerPtrs)

	if err := cmds.LoadInstance(instance); err != nil {
		return nil, newError(ErrUnknown, "LoadInstance", err)
	}

	physicalDevice, err := pickPhysicalDevice(cmds, instance)
	if err != nil {
		return nil, err
	}

	families, err := DiscoverQueueFamilies(cmds, physicalDevice)
	if err != nil {
		return nil, err
	}

	var memProps vk.PhysicalDeviceMemoryProperties
	cmds.GetPhysicalDeviceMemoryProperties(physicalDevice, &memProps)

	descProps, err := queryDescriptorBufferProperties(cmds, physicalDevice)
	if err != nil {
		return nil, err
	}

	device, err := createLogicalDevice(cmds, physicalDevice, families)
	if err != nil {
		return nil, err
	}
	if err := cmds.LoadDevice(device); err != nil {
		return nil, newError(ErrUnknown, "LoadDevice", err)
	}

	d := &Device{
		Cmds:                 cmds,
		Instance:             instance,
		PhysicalDevice:       physicalDevice,
		Handle:               device,
		Families:             families,
		MemoryProperties:     memory.DeviceMemoryPropertiesFrom(&memProps),
		DescriptorProperties: descProps,
		debugEnabled:         opts.EnableDebug,
	}
	cmds.GetDeviceQueue(device, families.Index(QueueGraphics), 0, &d.GraphicsQueue)
	cmds.GetDeviceQueue(device, families.Index(QueueCompute), 0, &d.ComputeQueue)
	cmds.GetDeviceQueue(device, families.Index(QueueTransfer), 0, &d.TransferQueue)

	return d, nil
}

// pickPhysicalDevice returns the first enumerated physical device that
// advertises every extension in requiredDeviceExtensions. Terra does not
// rank candidates by type/VRAM the way a full engine might; spec.md's
// boundary scenarios only require "fail loudly when unsupported", not
// "pick the best of several GPUs".
func pickPhysicalDevice(cmds *vk.Commands, instance vk.Instance) (vk.PhysicalDevice, error) {
	var count uint32
	if res := cmds.EnumeratePhysicalDevices(instance, &count, nil); res != vk.Success {
		return 0, resultError(ErrUnknown, "vkEnumeratePhysicalDevices(count)", res)
	}
	if count == 0 {
		return 0, newError(ErrExtensionMissing, "no Vulkan physical devices present", nil)
	}
	devices := make([]vk.PhysicalDevice, count)
	if res := cmds.EnumeratePhysicalDevices(instance, &count, &devices[0]); res != vk.Success {
		return 0, resultError(ErrUnknown, "vkEnumeratePhysicalDevices", res)
	}

	for _, pd := range devices {
		if err := checkDeviceExtensions(cmds, pd); err == nil {
			return pd, nil
		}
	}
	return 0, newError(ErrExtensionMissing, fmt.Sprintf("no physical device supports %v", requiredDeviceExtensions), nil)
}

func checkDeviceExtensions(cmds *vk.Commands, pd vk.PhysicalDevice) error {
	var count uint32
	if res := cmds.EnumerateDeviceExtensionProperties(pd, nil, &count, nil); res != vk.Success {
		return resultError(ErrExtensionMissing, "vkEnumerateDeviceExtensionProperties(count)", res)
	}
	props := make([]vk.ExtensionProperties, count)
	if count > 0 {
		if res := cmds.EnumerateDeviceExtensionProperties(pd, nil, &count, &props[0]); res != vk.Success {
			return resultError(ErrExtensionMissing, "vkEnumerateDeviceExtensionProperties", res)
		}
	}
	available := make(map[string]bool, count)
	for _, p := range props {
		available[extensionNameString(p.ExtensionName)] = true
	}
	for _, req := range requiredDeviceExtensions {
		name := req[:len(req)-1] // strip the trailing NUL used for the C call
		if !available[name] {
			return newError(ErrExtensionMissing, name, nil)
		}
	}
	return nil
}

func extensionNameString(raw [256]byte) string {
	n := 0
	for n < len(raw) && raw[n] != 0 {
		n++
	}
	return string(raw[:n])
}

// queryDescriptorBufferProperties chains PhysicalDeviceDescriptorBufferPropertiesEXT
// onto vkGetPhysicalDeviceProperties2, the same pNext idiom device.go
// uses on the create side to enable the extension's features.
func queryDescriptorBufferProperties(cmds *vk.Commands, pd vk.PhysicalDevice) (descriptor.Properties, error) {
	descBufProps := vk.PhysicalDeviceDescriptorBufferPropertiesEXT{
		SType: vk.StructureTypePhysicalDeviceDescriptorBufferPropertiesEXT,
	}
	props2 := vk.PhysicalDeviceProperties2{
		SType: vk.StructureTypePhysicalDeviceProperties2,
		PNext: uintptr(unsafe.Pointer(&descBufProps)),
	}
	cmds.GetPhysicalDeviceProperties2(pd, &props2)

	return descriptor.Properties{
		OffsetAlignment:                    uint64(descBufProps.DescriptorBufferOffsetAlignment),
		SamplerDescriptorSize:              uint64(descBufProps.SamplerDescriptorSize),
		CombinedImageSamplerDescriptorSize: uint64(descBufProps.CombinedImageSamplerDescriptorSize),
		SampledImageDescriptorSize:         uint64(descBufProps.SampledImageDescriptorSize),
		StorageImageDescriptorSize:         uint64(descBufProps.StorageImageDescriptorSize),
		UniformBufferDescriptorSize:        uint64(descBufProps.UniformBufferDescriptorSize),
		StorageBufferDescriptorSize:        uint64(descBufProps.StorageBufferDescriptorSize),
	}, nil
}

// createLogicalDevice builds the VkDeviceCreateInfo pNext chain
// (Vulkan13Features -> DescriptorBufferFeaturesEXT -> MeshShaderFeaturesEXT)
// enabling dynamicRendering/synchronization2, descriptor buffers, and
// mesh/task shaders, then creates one queue per unique family.
func createLogicalDevice(cmds *vk.Commands, pd vk.PhysicalDevice, families *QueueFamilyManager) (vk.Device, error) {
	meshShaderFeatures := vk.PhysicalDeviceMeshShaderFeaturesEXT{
		SType:      vk.StructureTypePhysicalDeviceMeshShaderFeaturesExt,
		TaskShader: vk.True,
		MeshShader: vk.True,
	}
	descBufFeatures := vk.PhysicalDeviceDescriptorBufferFeaturesEXT{
		SType:            vk.StructureTypePhysicalDeviceDescriptorBufferFeaturesExt,
		PNext:            uintptr(unsafe.Pointer(&meshShaderFeatures)),
		DescriptorBuffer: vk.True,
	}
	vulkan13Features := vk.PhysicalDeviceVulkan13Features{
		SType:             vk.StructureTypePhysicalDeviceVulkan13Features,
		PNext:             uintptr(unsafe.Pointer(&descBufFeatures)),
		Synchronization2:  vk.True,
		DynamicRendering:  vk.True,
	}

	queueInfos, priority := families.DeviceQueueCreateInfos()
	extPtrs := cStringPtrs(requiredDeviceExtensions)

	info := vk.DeviceCreateInfo{
		SType:                   vk.StructureTypeDeviceCreateInfo,
		PNext:                   uintptr(unsafe.Pointer(&vulkan13Features)),
		QueueCreateInfoCount:    uint32(len(queueInfos)),
		PQueueCreateInfos:       uintptr(unsafe.Pointer(&queueInfos[0])),
		EnabledExtensionCount:   uint32(len(extPtrs)),
		PpEnabledExtensionNames: uintptr(unsafe.Pointer(&extPtrs[0])),
	}

	var device vk.Device
	res := cmds.CreateDevice(pd, &info, nil, &device)
	runtime.KeepAlive(queueInfos)
	runtime.KeepAlive(priority)
	runtime.KeepAlive(extPtrs)
	runtime.KeepAlive(meshShaderFeatures)
	runtime.KeepAlive(descBufFeatures)
	runtime.KeepAlive(vulkan13Features)
	if res != vk.Success {
		return 0, resultError(ErrUnknown, "vkCreateDevice", res)
	}
	return device, nil
}

// Destroy tears down the logical device and instance, in that order.
func (d *Device) Destroy() {
	if d.Handle != 0 {
		d.Cmds.DestroyDevice(d.Handle, nil)
		d.Handle = 0
	}
	if d.Instance != 0 {
		d.Cmds.DestroyInstance(d.Instance, nil)
		d.Instance = 0
	}
}
