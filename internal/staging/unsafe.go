// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package staging

import "unsafe"

// hostSlice views n bytes starting at ptr as a Go byte slice, for memcpy
// into a mapped staging buffer.
func hostSlice(ptr unsafe.Pointer, n int) []byte {
	return unsafe.Slice((*byte)(ptr), n)
}

// ptrToFirst returns v's address as a uintptr, matching the Vulkan struct
// fields (PBufferMemoryBarriers, PImageMemoryBarriers, ...) that model a
// C pointer as uintptr rather than unsafe.Pointer.
func ptrToFirst[T any](v *T) uintptr {
	return uintptr(unsafe.Pointer(v))
}
