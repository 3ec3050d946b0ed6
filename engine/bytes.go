// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package engine

import (
	"unsafe"

	"github.com/terra-gfx/terra/internal/model"
)

// asBytes reinterprets a slice of fixed-size values as a byte slice
// without copying, producing the host blob staging.Manager.AddBuffer
// takes.
func asBytes[T any](v []T) []byte {
	if len(v) == 0 {
		return nil
	}
	var zero T
	size := int(unsafe.Sizeof(zero))
	return unsafe.Slice((*byte)(unsafe.Pointer(&v[0])), size*len(v))
}

func vertexBytes(v []model.Vertex) []byte   { return asBytes(v) }
func indexBytes(v []uint32) []byte          { return asBytes(v) }
func meshletBytes(v []MeshletDetail) []byte { return asBytes(v) }
