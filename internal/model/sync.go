// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package model

// Synchronization2 stage/access bits this package needs for the
// culling pass's buffer barriers. As elsewhere in this module, each
// package defines only the handful of VK_PIPELINE_STAGE_2_*/
// VK_ACCESS_2_* bits it actually uses rather than sharing a central
// table.
const (
	stageTransfer       = 1 << 32
	stageComputeShader  = 0x00000800
	stageDrawIndirect   = 0x00000002

	accessTransferWrite       = 0x00001000
	accessShaderWrite         = 0x00000040
	accessIndirectCommandRead = 0x00000001
)
