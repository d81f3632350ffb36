// Package strata flattens trees of drawing primitives into ordered lists of
// render-ready layers.
//
// A primitive tree (see the primitive package) describes what to draw:
// quads, text runs, triangle meshes, raster and vector images, and the
// structural wrappers that group, clip, translate, and scale their content.
// The layer package walks such a tree in a single depth-first pass,
// composing coordinate transforms and intersecting clip rectangles as it
// descends, and produces []layer.Layer: flat batches of device-space draw
// records that each share one clip rectangle.
//
// The root package holds the value types the rest of the module is built
// on: points, vectors, sizes, rectangles, affine transformations, colors,
// and the viewport descriptor. All of them are plain immutable values; the
// only mutable state anywhere in a flatten pass is the growing output
// slice of layers.
//
// strata does not rasterize, shape text, or talk to the GPU. A renderer
// consumes the produced layers (see the render package for the backend
// contract), resolving the image handles, font references, and mesh
// buffers the records carry.
package strata
