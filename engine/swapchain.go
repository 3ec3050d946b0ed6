// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package engine

import (
	"github.com/terra-gfx/terra/vk"
)

// Swapchain wraps a VkSwapchainKHR and its per-image views. Surface
// creation is out of scope (spec.md §1 treats window/surface creation as
// an external collaborator); callers hand Swapchain an already-created
// vk.SurfaceKHR.
//
// Grounded on the teacher's hal/vulkan/swapchain.go Surface.createSwapchain/
// acquireNextImage, stripped of the Windows-only surface-creation half and
// generalised to Terra's frames-in-flight acquire/present cycle.
type Swapchain struct {
	device  *Device
	surface vk.SurfaceKHR

	handle      vk.SwapchainKHR
	images      []vk.Image
	imageViews  []vk.ImageView
	format      vk.Format
	extent      vk.Extent2D
	presentMode vk.PresentModeKHR

	imageAvailable []vk.Semaphore // one per frame in flight
	framesInFlight int

	formatChanged bool
}

// ChooseSurfaceFormat prefers B8G8R8A8_SRGB (spec.md §8 scenario 6's
// starting format), falling back to the first format the surface
// reports. If the format that was available has since been dropped by
// the surface (the scenario's forced recreate), the first remaining
// candidate — typically R8G8B8A8_SRGB — is chosen instead.
func ChooseSurfaceFormat(available []vk.SurfaceFormatKHR) vk.SurfaceFormatKHR {
	for _, f := range available {
		if f.Format == vk.FormatB8g8r8a8Srgb && f.ColorSpace == vk.ColorSpaceSrgbNonlinearKhr {
			return f
		}
	}
	if len(available) > 0 {
		return available[0]
	}
	return vk.SurfaceFormatKHR{Format: vk.FormatB8g8r8a8Srgb, ColorSpace: vk.ColorSpaceSrgbNonlinearKhr}
}

// formatChanged reports whether a swapchain recreate picked a
// different surface format than the swapchain it replaced. hadPrevious
// is false on the first create, when there is nothing to compare
// against.
func formatChanged(hadPrevious bool, oldFormat, newFormat vk.Format) bool {
	return hadPrevious && oldFormat != newFormat
}

// ChoosePresentMode prefers mailbox (lowest-latency vsync'd triple
// buffering) and falls back to FIFO, which every Vulkan implementation
// guarantees.
func ChoosePresentMode(available []vk.PresentModeKHR) vk.PresentModeKHR {
	for _, m := range available {
		if m == vk.PresentModeMailboxKhr {
			return m
		}
	}
	return vk.PresentModeFifoKhr
}

// NewSwapchain queries surface capabilities/formats/present modes and
// creates the swapchain, its image views, and one acquire semaphore per
// frame in flight.
func NewSwapchain(device *Device, surface vk.SurfaceKHR, width, height uint32, framesInFlight int) (*Swapchain, error) {
	sc := &Swapchain{device: device, surface: surface, framesInFlight: framesInFlight}
	if err := sc.create(width, height); err != nil {
		return nil, err
	}
	return sc, nil
}

func (sc *Swapchain) create(width, height uint32) error {
	cmds := sc.device.Cmds
	pd := sc.device.PhysicalDevice

	var caps vk.SurfaceCapabilitiesKHR
	if res := cmds.GetPhysicalDeviceSurfaceCapabilitiesKHR(pd, sc.surface, &caps); res != vk.Success {
		return resultError(ErrSwapchainLost, "vkGetPhysicalDeviceSurfaceCapabilitiesKHR", res)
	}

	var formatCount uint32
	cmds.GetPhysicalDeviceSurfaceFormatsKHR(pd, sc.surface, &formatCount, nil)
	formats := make([]vk.SurfaceFormatKHR, formatCount)
	if formatCount > 0 {
		cmds.GetPhysicalDeviceSurfaceFormatsKHR(pd, sc.surface, &formatCount, &formats[0])
	}
	chosenFormat := ChooseSurfaceFormat(formats)

	var modeCount uint32
	cmds.GetPhysicalDeviceSurfacePresentModesKHR(pd, sc.surface, &modeCount, nil)
	modes := make([]vk.PresentModeKHR, modeCount)
	if modeCount > 0 {
		cmds.GetPhysicalDeviceSurfacePresentModesKHR(pd, sc.surface, &modeCount, &modes[0])
	}
	presentMode := ChoosePresentMode(modes)

	extent := caps.CurrentExtent
	if extent.Width == 0xFFFFFFFF {
		extent.Width = width
		extent.Height = height
	}

	imageCount := caps.MinImageCount + 1
	if caps.MaxImageCount > 0 && imageCount > caps.MaxImageCount {
		imageCount = caps.MaxImageCount
	}

	oldSwapchain := sc.handle
	info := vk.SwapchainCreateInfoKHR{
		SType:            vk.StructureTypeSwapchainCreateInfoKhr,
		Surface:          sc.surface,
		MinImageCount:    imageCount,
		ImageFormat:      chosenFormat.Format,
		ImageColorSpace:  chosenFormat.ColorSpace,
		ImageExtent:      extent,
		ImageArrayLayers: 1,
		ImageUsage:       vk.ImageUsageColorAttachmentBit | vk.ImageUsageTransferDstBit,
		ImageSharingMode: vk.SharingModeExclusive,
		PreTransform:     caps.CurrentTransform,
		CompositeAlpha:   vk.CompositeAlphaOpaqueBitKhr,
		PresentMode:      presentMode,
		Clipped:          vk.True,
		OldSwapchain:     oldSwapchain,
	}

	var handle vk.SwapchainKHR
	if res := cmds.CreateSwapchainKHR(sc.device.Handle, &info, nil, &handle); res != vk.Success {
		return resultError(ErrSwapchainLost, "vkCreateSwapchainKHR", res)
	}

	sc.destroyImageViews()
	if oldSwapchain != 0 {
		cmds.DestroySwapchainKHR(sc.device.Handle, oldSwapchain, nil)
	}

	var imageCountOut uint32
	cmds.GetSwapchainImagesKHR(sc.device.Handle, handle, &imageCountOut, nil)
	images := make([]vk.Image, imageCountOut)
	if imageCountOut > 0 {
		cmds.GetSwapchainImagesKHR(sc.device.Handle, handle, &imageCountOut, &images[0])
	}

	views := make([]vk.ImageView, len(images))
	for i, img := range images {
		viewInfo := vk.ImageViewCreateInfo{
			SType:    vk.StructureTypeImageViewCreateInfo,
			Image:    img,
			ViewType: vk.ImageViewType2d,
			Format:   chosenFormat.Format,
			SubresourceRange: vk.ImageSubresourceRange{
				AspectMask: vk.ImageAspectColorBit,
				LevelCount: 1,
				LayerCount: 1,
			},
		}
		if res := cmds.CreateImageView(sc.device.Handle, &viewInfo, nil, &views[i]); res != vk.Success {
			return resultError(ErrSwapchainLost, "vkCreateImageView", res)
		}
	}

	if len(sc.imageAvailable) == 0 {
		sc.imageAvailable = make([]vk.Semaphore, sc.framesInFlight)
		for i := range sc.imageAvailable {
			semInfo := vk.SemaphoreCreateInfo{SType: vk.StructureTypeSemaphoreCreateInfo}
			if res := cmds.CreateSemaphore(sc.device.Handle, &semInfo, nil, &sc.imageAvailable[i]); res != vk.Success {
				return resultError(ErrSwapchainLost, "vkCreateSemaphore", res)
			}
		}
	}

	sc.formatChanged = formatChanged(sc.handle != 0, sc.format, chosenFormat.Format)
	sc.handle = handle
	sc.images = images
	sc.imageViews = views
	sc.format = chosenFormat.Format
	sc.extent = extent
	sc.presentMode = presentMode
	return nil
}

func (sc *Swapchain) destroyImageViews() {
	for _, v := range sc.imageViews {
		if v != 0 {
			sc.device.Cmds.DestroyImageView(sc.device.Handle, v, nil)
		}
	}
	sc.imageViews = nil
	sc.images = nil
}

// Resize recreates the swapchain at the new dimensions, per spec.md
// §6's resize operation. Any format change relative to the previous
// swapchain is reported by HasFormatChanged until the next Resize.
func (sc *Swapchain) Resize(width, height uint32) error {
	return sc.create(width, height)
}

// HasFormatChanged reports whether the most recent create/Resize picked
// a different surface format than the swapchain it replaced, per
// spec.md §8 scenario 6.
func (sc *Swapchain) HasFormatChanged() bool { return sc.formatChanged }

// Format returns the swapchain's current image format.
func (sc *Swapchain) Format() vk.Format { return sc.format }

// Extent returns the swapchain's current image extent.
func (sc *Swapchain) Extent() vk.Extent2D { return sc.extent }

// ImageView returns the colour view for swapchain image index i.
func (sc *Swapchain) ImageView(i uint32) vk.ImageView { return sc.imageViews[i] }

// Image returns the swapchain image handle at index i, for the layout
// transition barrier the render-pass manager issues before/after
// rendering into it.
func (sc *Swapchain) Image(i uint32) vk.Image { return sc.images[i] }

// ImageCount returns the number of images the swapchain was created with.
func (sc *Swapchain) ImageCount() int { return len(sc.images) }

// AcquireNextImage acquires the next presentable image for frameIndex
// (frameIndex selects which of the frames-in-flight acquire semaphores
// to signal). Returns ErrSwapchainLost wrapping VK_ERROR_OUT_OF_DATE_KHR
// so the caller can recreate and retry, matching spec.md §7's per-frame
// transient error handling.
func (sc *Swapchain) AcquireNextImage(frameIndex int) (imageIndex uint32, acquireSemaphore vk.Semaphore, err error) {
	sem := sc.imageAvailable[frameIndex%len(sc.imageAvailable)]
	res := sc.device.Cmds.AcquireNextImageKHR(sc.device.Handle, sc.handle, ^uint64(0), sem, 0, &imageIndex)
	switch res {
	case vk.Success, vk.SuboptimalKhr:
		return imageIndex, sem, nil
	case vk.ErrorOutOfDateKhr:
		return 0, 0, newError(ErrSwapchainLost, "vkAcquireNextImageKHR: out of date", nil)
	default:
		return 0, 0, resultError(ErrSwapchainLost, "vkAcquireNextImageKHR", res)
	}
}

// Present submits imageIndex to the presentation queue, waiting on
// renderFinished (the per-frame semaphore internal/gpusync signals at
// the end of the frame's submission).
func (sc *Swapchain) Present(queue vk.Queue, imageIndex uint32, renderFinished vk.Semaphore) error {
	waits := [1]vk.Semaphore{renderFinished}
	swapchains := [1]vk.SwapchainKHR{sc.handle}
	indices := [1]uint32{imageIndex}
	info := vk.PresentInfoKHR{
		SType:              vk.StructureTypePresentInfoKhr,
		WaitSemaphoreCount: 1,
		SwapchainCount:     1,
	}
	info.PWaitSemaphores = ptrToFirst(&waits[0])
	info.PSwapchains = ptrToFirst(&swapchains[0])
	info.PImageIndices = ptrToFirst(&indices[0])

	res := sc.device.Cmds.QueuePresentKHR(queue, &info)
	switch res {
	case vk.Success, vk.SuboptimalKhr:
		return nil
	case vk.ErrorOutOfDateKhr:
		return newError(ErrSwapchainLost, "vkQueuePresentKHR: out of date", nil)
	default:
		return resultError(ErrSwapchainLost, "vkQueuePresentKHR", res)
	}
}

// Destroy releases the swapchain, its image views, and acquire semaphores.
func (sc *Swapchain) Destroy() {
	sc.device.Cmds.DeviceWaitIdle(sc.device.Handle)
	sc.destroyImageViews()
	for _, s := range sc.imageAvailable {
		if s != 0 {
			sc.device.Cmds.DestroySemaphore(sc.device.Handle, s, nil)
		}
	}
	sc.imageAvailable = nil
	if sc.handle != 0 {
		sc.device.Cmds.DestroySwapchainKHR(sc.device.Handle, sc.handle, nil)
		sc.handle = 0
	}
}
