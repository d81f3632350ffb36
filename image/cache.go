// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package image

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/strata"
)

// Common errors returned by Cache operations.
var (
	// ErrInvalidHandle is returned for the zero Handle.
	ErrInvalidHandle = errors.New("image: invalid handle")

	// ErrNilCreator is returned when a nil TextureCreator is passed.
	ErrNilCreator = errors.New("image: nil TextureCreator")
)

// TextureCreator uploads RGBA pixel data to the GPU. It is implemented by
// gpucontext renderer backends (obtained from a TextureDrawer).
type TextureCreator interface {
	NewTextureFromRGBA(width, height int, data []byte) (any, error)
}

// textureDestroyer is the interface for releasing textures.
// This matches the gpucontext texture Destroy signature.
type textureDestroyer interface {
	Destroy()
}

// entry is one cached texture.
type entry struct {
	texture any
	width   int
	height  int
	live    bool
}

// Cache decodes image handles and uploads their pixels as textures,
// once per handle identity. Trim releases textures that were not used
// since the previous Trim, mirroring a per-frame retain/release cycle.
//
// Cache is safe for concurrent use.
type Cache struct {
	mu      sync.Mutex
	entries map[uint64]*entry
}

// NewCache creates an empty texture cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[uint64]*entry)}
}

// Get returns the texture for a handle, decoding and uploading it on
// first use. The returned value is whatever the creator produced
// (a gpucontext.Texture for GPU-backed creators).
func (c *Cache) Get(h Handle, creator TextureCreator) (any, error) {
	if creator == nil {
		return nil, ErrNilCreator
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[h.ID()]; ok {
		e.live = true
		return e.texture, nil
	}

	rgba, err := h.decode()
	if err != nil {
		return nil, err
	}

	width := rgba.Rect.Dx()
	height := rgba.Rect.Dy()

	texture, err := creator.NewTextureFromRGBA(width, height, rgba.Pix)
	if err != nil {
		return nil, fmt.Errorf("image: upload %#x: %w", h.ID(), err)
	}

	c.entries[h.ID()] = &entry{
		texture: texture,
		width:   width,
		height:  height,
		live:    true,
	}

	strata.Logger().Debug("image: texture uploaded",
		"id", h.ID(), "width", width, "height", height)

	return texture, nil
}

// Dimensions returns the pixel size of a cached texture. The second
// return value is false if the handle has not been uploaded.
func (c *Cache) Dimensions(h Handle) (width, height int, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[h.ID()]
	if !ok {
		return 0, 0, false
	}
	return e.width, e.height, true
}

// Len returns the number of cached textures.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Trim releases every texture that was not retrieved since the previous
// Trim and marks the survivors for the next cycle. Call it once per frame
// after all layers have been drawn.
func (c *Cache) Trim() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for id, e := range c.entries {
		if e.live {
			e.live = false
			continue
		}

		if destroyer, ok := e.texture.(textureDestroyer); ok {
			destroyer.Destroy()
		}
		delete(c.entries, id)

		strata.Logger().Debug("image: texture released", "id", id)
	}
}
