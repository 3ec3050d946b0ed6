// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vk

import (
	"github.com/go-webgpu/goffi/ffi"
	"github.com/go-webgpu/goffi/types"
)

// Signature templates for functions signatures.go's generator-covered set
// doesn't reach: the timeline-semaphore wait call already referenced by
// commands_manual.go, plus the descriptor-buffer, mesh-shader, and
// synchronization2 entry points Terra's engine adds on top of the
// teacher's subset.
var (
	// VkResult(handle, ptr, u64) - vkWaitSemaphores
	SigResultHandlePtrU64 types.CallInterface

	// void(handle, u32, handle, u32) - vkCmdWriteTimestamp
	SigVoidHandleU32HandleU32 types.CallInterface

	// void(handle, handle, u32, u32, handle, u64, u64, u32) - vkCmdCopyQueryPoolResults
	SigVoidCmdCopyQueryPoolResults types.CallInterface

	// void(handle, ptr, u64, ptr) - vkGetDescriptorEXT
	SigVoidHandlePtrU64Ptr types.CallInterface

	// void(handle, u32, handle, u32, u32, ptr, ptr) - vkCmdSetDescriptorBufferOffsetsEXT
	SigVoidCmdSetDescriptorBufferOffsets types.CallInterface

	// void(handle, handle, u64, handle, u64, u32, u32) - vkCmdDrawIndexedIndirectCount
	SigVoidCmdDrawIndexedIndirectCount types.CallInterface

	// u64(handle, ptr) - vkGetBufferDeviceAddress
	SigU64HandlePtr types.CallInterface

	// void(handle, handle, u32, u32, u32, ptr) - vkCmdPushConstants
	SigVoidCmdPushConstants types.CallInterface
)

// InitExtensionSignatures prepares the CallInterface templates declared in
// this file. Called from doInit() right after InitSignatures.
func InitExtensionSignatures() error {
	ptr := types.PointerTypeDescriptor
	u32 := types.UInt32TypeDescriptor
	u64 := types.UInt64TypeDescriptor
	voidRet := types.VoidTypeDescriptor
	resultRet := types.SInt32TypeDescriptor

	if err := ffi.PrepareCallInterface(&SigResultHandlePtrU64, types.DefaultCall, resultRet,
		[]*types.TypeDescriptor{u64, ptr, u64}); err != nil {
		return err
	}

	if err := ffi.PrepareCallInterface(&SigVoidHandleU32HandleU32, types.DefaultCall, voidRet,
		[]*types.TypeDescriptor{u64, u32, u64, u32}); err != nil {
		return err
	}

	if err := ffi.PrepareCallInterface(&SigVoidCmdCopyQueryPoolResults, types.DefaultCall, voidRet,
		[]*types.TypeDescriptor{u64, u64, u32, u32, u64, u64, u64, u32}); err != nil {
		return err
	}

	if err := ffi.PrepareCallInterface(&SigVoidHandlePtrU64Ptr, types.DefaultCall, voidRet,
		[]*types.TypeDescriptor{u64, ptr, u64, ptr}); err != nil {
		return err
	}

	if err := ffi.PrepareCallInterface(&SigVoidCmdSetDescriptorBufferOffsets, types.DefaultCall, voidRet,
		[]*types.TypeDescriptor{u64, u32, u64, u32, u32, ptr, ptr}); err != nil {
		return err
	}

	if err := ffi.PrepareCallInterface(&SigVoidCmdDrawIndexedIndirectCount, types.DefaultCall, voidRet,
		[]*types.TypeDescriptor{u64, u64, u64, u64, u64, u32, u32}); err != nil {
		return err
	}

	if err := ffi.PrepareCallInterface(&SigU64HandlePtr, types.DefaultCall, u64,
		[]*types.TypeDescriptor{u64, ptr}); err != nil {
		return err
	}

	if err := ffi.PrepareCallInterface(&SigVoidCmdPushConstants, types.DefaultCall, voidRet,
		[]*types.TypeDescriptor{u64, u64, u32, u32, u32, ptr}); err != nil {
		return err
	}

	return nil
}
