// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render bridges flattened layers to a renderer backend.
//
// strata itself never touches the GPU. A backend, software or
// GPU-accelerated, implements the Backend interface, and Compositor
// drives it: one clipped draw pass per layer, in list order, with the
// layer bounds converted to a physical-space scissor rectangle.
package render

import (
	"errors"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/strata"
	"github.com/gogpu/strata/layer"
)

// Common errors returned by Compositor operations.
var (
	// ErrNilBackend is returned when a nil Backend is passed.
	ErrNilBackend = errors.New("render: nil Backend")

	// ErrNilProvider is returned when a nil DeviceProvider is attached.
	ErrNilProvider = errors.New("render: nil DeviceProvider")
)

// Backend is the draw surface a frame of layers is presented to.
//
// Draw calls arrive in layer list order; within one layer, quads first,
// then meshes, then text, then images. Every batch is already in
// device-ready form: geometry transformed, colors linear. The backend
// must apply bounds as a scissor rectangle for the whole batch.
type Backend interface {
	// Format returns the texture format of the backend's target.
	Format() gputypes.TextureFormat

	// Clear fills the target with a linear-space color.
	Clear(color gputypes.Color)

	DrawQuads(quads []layer.Quad, bounds Scissor)
	DrawMeshes(meshes []layer.Mesh, bounds Scissor)
	DrawText(text []layer.Text, bounds Scissor)
	DrawImages(images []layer.Image, bounds Scissor)
}

// Compositor presents flattened layers to a backend.
//
// Compositor is NOT safe for concurrent use; drive each frame from a
// single goroutine.
type Compositor struct {
	backend  Backend
	provider gpucontext.DeviceProvider
}

// NewCompositor creates a compositor over a backend.
func NewCompositor(backend Backend) (*Compositor, error) {
	if backend == nil {
		return nil, ErrNilBackend
	}
	return &Compositor{backend: backend}, nil
}

// AttachProvider hands the compositor a GPU device provider for
// GPU-backed backends to share. Software backends never need one.
func (c *Compositor) AttachProvider(provider gpucontext.DeviceProvider) error {
	if provider == nil {
		return ErrNilProvider
	}
	c.provider = provider
	return nil
}

// Provider returns the attached device provider, or nil.
func (c *Compositor) Provider() gpucontext.DeviceProvider {
	return c.provider
}

// Backend returns the compositor's backend.
func (c *Compositor) Backend() Backend {
	return c.backend
}

// Present draws one frame: a clear with the background color, then every
// layer in list order, each clipped to its scissor rectangle. Layers
// whose scissor is empty on the physical target are skipped whole.
func (c *Compositor) Present(layers []layer.Layer, viewport *strata.Viewport, background strata.Color) {
	linear := background.Linear()
	c.backend.Clear(gputypes.Color{
		R: float64(linear[0]),
		G: float64(linear[1]),
		B: float64(linear[2]),
		A: float64(linear[3]),
	})

	drawn := 0

	for i := range layers {
		l := &layers[i]

		bounds, ok := NewScissor(
			l.Bounds,
			viewport.ScaleFactor(),
			viewport.PhysicalWidth(),
			viewport.PhysicalHeight(),
		)
		if !ok {
			continue
		}

		if len(l.Quads) > 0 {
			c.backend.DrawQuads(l.Quads, bounds)
		}
		if len(l.Meshes) > 0 {
			c.backend.DrawMeshes(l.Meshes, bounds)
		}
		if len(l.Text) > 0 {
			c.backend.DrawText(l.Text, bounds)
		}
		if len(l.Images) > 0 {
			c.backend.DrawImages(l.Images, bounds)
		}

		drawn++
	}

	strata.Logger().Debug("render: frame presented",
		"layers", len(layers), "drawn", drawn)
}
