// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package image provides cheap, shareable handles to raster and vector
// image resources, and a texture cache that uploads decoded pixels to a
// renderer.
//
// A Handle is an identifier plus a shared pointer to the underlying data
// source; copying one never copies image bytes. The layer builder moves
// handles into image records untouched; decoding and GPU upload happen in
// the renderer via Cache.
package image

import (
	"bytes"
	"fmt"
	"hash/fnv"
	stdimage "image"
	"image/draw"
	"os"

	// Raster decode support for the formats handles commonly reference.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Kind identifies the data source backing a handle.
type Kind uint8

// Handle data source constants.
const (
	// KindPath references an image file on disk, decoded on first use.
	KindPath Kind = iota

	// KindBytes references encoded image data held in memory.
	KindBytes

	// KindPixels references raw RGBA pixels, no decoding needed.
	KindPixels
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindPath:
		return "Path"
	case KindBytes:
		return "Bytes"
	case KindPixels:
		return "Pixels"
	default:
		return "Unknown"
	}
}

// data is the shared, immutable backing of a handle.
type data struct {
	kind   Kind
	path   string
	bytes  []byte
	width  int
	height int
	pixels []byte
}

// Handle is a cheap reference to an image resource. Copies share the same
// identity and data; the zero value is invalid.
type Handle struct {
	id   uint64
	data *data
}

// FromPath creates a handle referencing an image file. The file is not
// touched until the handle is first decoded.
func FromPath(path string) Handle {
	h := fnv.New64a()
	h.Write([]byte(path))

	return Handle{
		id:   h.Sum64(),
		data: &data{kind: KindPath, path: path},
	}
}

// FromBytes creates a handle over encoded image data (PNG, JPEG, GIF,
// BMP, TIFF, WebP, or SVG for vector records).
func FromBytes(b []byte) Handle {
	h := fnv.New64a()
	h.Write(b)

	return Handle{
		id:   h.Sum64(),
		data: &data{kind: KindBytes, bytes: b},
	}
}

// FromPixels creates a handle over raw RGBA pixels, row-major,
// 4 bytes per pixel.
func FromPixels(width, height int, pixels []byte) Handle {
	h := fnv.New64a()
	h.Write(pixels)

	return Handle{
		id: h.Sum64(),
		data: &data{
			kind:   KindPixels,
			width:  width,
			height: height,
			pixels: pixels,
		},
	}
}

// ID returns the handle identity. Handles created from the same content
// share an ID.
func (h Handle) ID() uint64 {
	return h.id
}

// Kind returns the data source backing the handle.
func (h Handle) Kind() Kind {
	if h.data == nil {
		return KindPath
	}
	return h.data.kind
}

// decode resolves the handle to RGBA pixels.
func (h Handle) decode() (*stdimage.RGBA, error) {
	if h.data == nil {
		return nil, fmt.Errorf("image: decode: %w", ErrInvalidHandle)
	}

	switch h.data.kind {
	case KindPixels:
		return &stdimage.RGBA{
			Pix:    h.data.pixels,
			Stride: 4 * h.data.width,
			Rect:   stdimage.Rect(0, 0, h.data.width, h.data.height),
		}, nil

	case KindBytes:
		img, _, err := stdimage.Decode(bytes.NewReader(h.data.bytes))
		if err != nil {
			return nil, fmt.Errorf("image: decode bytes: %w", err)
		}
		return toRGBA(img), nil

	case KindPath:
		f, err := os.Open(h.data.path)
		if err != nil {
			return nil, fmt.Errorf("image: open %q: %w", h.data.path, err)
		}
		defer f.Close()

		img, _, err := stdimage.Decode(f)
		if err != nil {
			return nil, fmt.Errorf("image: decode %q: %w", h.data.path, err)
		}
		return toRGBA(img), nil

	default:
		return nil, fmt.Errorf("image: decode: unknown kind %d", h.data.kind)
	}
}

// toRGBA converts any decoded image to RGBA without re-decoding.
func toRGBA(img stdimage.Image) *stdimage.RGBA {
	if rgba, ok := img.(*stdimage.RGBA); ok {
		return rgba
	}

	bounds := img.Bounds()
	rgba := stdimage.NewRGBA(bounds)
	draw.Draw(rgba, bounds, img, bounds.Min, draw.Src)
	return rgba
}
