// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package pipeline implements Terra's graphics/compute pipeline managers:
// a reusable vector of pipelines keyed by external description equality,
// rebuilt in place when the shader root changes.
package pipeline

import (
	"github.com/terra-gfx/terra/vk"
)

// Equatable is the constraint every pipeline description type must
// satisfy so Manager can scan for a matching slot without relying on
// Go's built-in == (descriptions generally hold slices: colour
// attachments, dynamic states, shader paths).
type Equatable[D any] interface {
	Equals(other D) bool
}

// BuildFunc constructs a VkPipeline from a description against the
// given layout and shader root.
type BuildFunc[D any] func(desc D, layout vk.PipelineLayout, shaderRoot string) (vk.Pipeline, error)

type slot[D any] struct {
	description  D
	handle       vk.Pipeline
	overwritable bool
}

// Manager owns one VkPipelineLayout, a shader root path, and a reusable
// vector of pipelines built from descriptions of type D. T (graphics or
// compute) is implicit in the BuildFunc the caller supplies.
type Manager[D Equatable[D]] struct {
	device vk.Device
	cmds   *vk.Commands

	layout     vk.PipelineLayout
	shaderRoot string
	build      BuildFunc[D]

	slots []slot[D]
}

// NewManager creates a pipeline manager bound to layout, rooted at
// shaderRoot, building new pipelines with build.
func NewManager[D Equatable[D]](device vk.Device, cmds *vk.Commands, layout vk.PipelineLayout, shaderRoot string, build BuildFunc[D]) *Manager[D] {
	return &Manager[D]{device: device, cmds: cmds, layout: layout, shaderRoot: shaderRoot, build: build}
}

// AddOrGet scans existing pipelines for one whose stored external
// description equals desc; on a hit it returns that slot index. On a
// miss it first tries to reuse a slot marked overwritable (destroying
// its old pipeline), falling back to appending a new slot. Returns the
// slot index of the (possibly newly built) pipeline.
func (m *Manager[D]) AddOrGet(desc D) (int, error) {
	for i := range m.slots {
		if m.slots[i].overwritable {
			continue
		}
		if m.slots[i].description.Equals(desc) {
			return i, nil
		}
	}

	for i := range m.slots {
		if !m.slots[i].overwritable {
			continue
		}
		handle, err := m.build(desc, m.layout, m.shaderRoot)
		if err != nil {
			return 0, err
		}
		m.destroy(m.slots[i].handle)
		m.slots[i] = slot[D]{description: desc, handle: handle}
		return i, nil
	}

	handle, err := m.build(desc, m.layout, m.shaderRoot)
	if err != nil {
		return 0, err
	}
	m.slots = append(m.slots, slot[D]{description: desc, handle: handle})
	return len(m.slots) - 1, nil
}

// SetOverwritable marks slot i as available for reuse by the next
// AddOrGet miss, without shrinking the vector.
func (m *Manager[D]) SetOverwritable(i int) {
	if i < 0 || i >= len(m.slots) {
		return
	}
	m.slots[i].overwritable = true
}

// RecreateAll rebuilds every live (non-overwritable) pipeline against
// shaderRoot, used when the shader root changes.
func (m *Manager[D]) RecreateAll(shaderRoot string) error {
	m.shaderRoot = shaderRoot
	for i := range m.slots {
		if m.slots[i].overwritable {
			continue
		}
		handle, err := m.build(m.slots[i].description, m.layout, shaderRoot)
		if err != nil {
			return err
		}
		m.destroy(m.slots[i].handle)
		m.slots[i].handle = handle
	}
	return nil
}

// Get returns the pipeline handle at slot i.
func (m *Manager[D]) Get(i int) vk.Pipeline {
	if i < 0 || i >= len(m.slots) {
		return 0
	}
	return m.slots[i].handle
}

// Layout returns the manager's pipeline layout.
func (m *Manager[D]) Layout() vk.PipelineLayout { return m.layout }

func (m *Manager[D]) destroy(handle vk.Pipeline) {
	if handle != 0 && m.cmds != nil {
		m.cmds.DestroyPipeline(m.device, handle, nil)
	}
}

// Destroy releases the pipeline layout and every pipeline the manager
// built.
func (m *Manager[D]) Destroy() {
	for _, s := range m.slots {
		m.destroy(s.handle)
	}
	m.slots = nil
	if m.layout != 0 && m.cmds != nil {
		m.cmds.DestroyPipelineLayout(m.device, m.layout, nil)
		m.layout = 0
	}
}
