// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package gpusync

import (
	"fmt"
	"unsafe"

	"github.com/terra-gfx/terra/vk"
)

// ptrToFirst returns v's address as a uintptr, matching the Vulkan struct
// fields (PNext, PSemaphores, PBufferMemoryBarriers, ...) that model a C
// pointer as uintptr rather than unsafe.Pointer.
func ptrToFirst[T any](v *T) uintptr {
	return uintptr(unsafe.Pointer(v))
}

func resultError(op string, result vk.Result) error {
	return fmt.Errorf("gpusync: %s: %d", op, result)
}
