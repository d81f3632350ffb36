// Package font provides cheap font references for text records.
//
// A Font is a small value identifying a typeface; it carries no parsed
// state and copies freely. The layer builder moves Font values into text
// records untouched; shaping and rasterization are the renderer's job.
// Resolve a Font to a parsed face with Face when handing records to a
// text renderer.
package font

import (
	"bytes"
	"fmt"
	"sync"

	otfont "github.com/go-text/typesetting/font"
	"golang.org/x/image/font/gofont/goregular"
)

// Font identifies a typeface. The zero value is the default font
// (Go Regular).
type Font struct {
	name string
	data []byte
}

// Default is the default font.
var Default = Font{}

// FromBytes creates a font reference from raw TTF/OTF data. The name is
// the cache identity: callers must use one name per distinct data.
func FromBytes(name string, data []byte) Font {
	return Font{name: name, data: data}
}

// Name returns the font's identifying name.
func (f Font) Name() string {
	if f.name == "" {
		return "Go Regular"
	}
	return f.name
}

// IsDefault returns true for the default font.
func (f Font) IsDefault() bool {
	return f.name == "" && f.data == nil
}

// source returns the raw font data backing f.
func (f Font) source() []byte {
	if f.data == nil {
		return goregular.TTF
	}
	return f.data
}

// FaceCache parses fonts once and shares the resulting faces.
//
// FaceCache is safe for concurrent use. The cached *font.Face embeds the
// read-only parsed font tables; callers that shape concurrently should
// derive per-goroutine state from it themselves.
type FaceCache struct {
	mu    sync.RWMutex
	faces map[string]*otfont.Face
}

// NewFaceCache creates an empty face cache.
func NewFaceCache() *FaceCache {
	return &FaceCache{faces: make(map[string]*otfont.Face)}
}

// Face returns the parsed face for a font, parsing and caching it on
// first use.
func (c *FaceCache) Face(f Font) (*otfont.Face, error) {
	key := f.name

	c.mu.RLock()
	if face, ok := c.faces[key]; ok {
		c.mu.RUnlock()
		return face, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check after acquiring the write lock.
	if face, ok := c.faces[key]; ok {
		return face, nil
	}

	face, err := otfont.ParseTTF(bytes.NewReader(f.source()))
	if err != nil {
		return nil, fmt.Errorf("font: parse %q: %w", f.Name(), err)
	}

	c.faces[key] = face
	return face, nil
}

// defaultCache backs the package-level Face helper.
var defaultCache = NewFaceCache()

// Face resolves a font through the shared package-level cache.
func Face(f Font) (*otfont.Face, error) {
	return defaultCache.Face(f)
}
