// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package engine

import (
	"fmt"

	"github.com/terra-gfx/terra/vk"
)

// ErrorKind tags the coarse-grained error categories spec.md §7 defines.
// Extension/layer/shader errors abort engine construction; per-frame
// transient errors (SwapchainLost) are handled by the caller re-running
// render() after an implicit recreate.
type ErrorKind int

const (
	ErrUnknown ErrorKind = iota
	ErrExtensionMissing
	ErrValidationLayerMissing
	ErrNoSuitableMemoryType
	ErrOutOfDeviceMemory
	ErrBarrierOverflow
	ErrShaderLoadFailure
	ErrPipelineBuildFailure
	ErrSwapchainLost
)

func (k ErrorKind) String() string {
	switch k {
	case ErrExtensionMissing:
		return "extension missing"
	case ErrValidationLayerMissing:
		return "validation layer missing"
	case ErrNoSuitableMemoryType:
		return "no suitable memory type"
	case ErrOutOfDeviceMemory:
		return "out of device memory"
	case ErrBarrierOverflow:
		return "barrier overflow"
	case ErrShaderLoadFailure:
		return "shader load failure"
	case ErrPipelineBuildFailure:
		return "pipeline build failure"
	case ErrSwapchainLost:
		return "swapchain lost"
	default:
		return "unknown"
	}
}

// Error is Terra's uniform error type: a Kind plus a human-readable
// context string, optionally wrapping the error that triggered it.
type Error struct {
	Kind    ErrorKind
	Context string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("terra: %s: %s: %v", e.Kind, e.Context, e.Err)
	}
	return fmt.Sprintf("terra: %s: %s", e.Kind, e.Context)
}

func (e *Error) Unwrap() error { return e.Err }

func newError(kind ErrorKind, context string, err error) *Error {
	return &Error{Kind: kind, Context: context, Err: err}
}

func resultError(kind ErrorKind, op string, result vk.Result) error {
	return newError(kind, op, fmt.Errorf("VkResult(%d)", result))
}
