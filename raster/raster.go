// Package raster defines the rasterizer contract the tile-band driver
// depends on (spec.md §6.2) and ships one reference implementation,
// Edge, so the driver package is exercisable end to end without real
// hardware or a full 3D pipeline.
//
// The rasterizer is explicitly out of scope for the driver's own
// correctness per spec.md §1 — the driver treats RasterizedTriangle as
// opaque, fixed-size POD — but a complete repository needs something
// real behind the interface.
package raster

// Vec2 is a 2D coordinate, used for texture coordinates.
type Vec2 struct{ S, T float32 }

// Vec3 is a clip-space vertex position.
type Vec3 struct{ X, Y, Z float32 }

// Vertex holds one triangle corner's full attribute set after
// rasterization: screen position, Gouraud color, and texture
// coordinates plus the perspective W.
type Vertex struct {
	X, Y, Z    float32
	R, G, B, A float32
	S, T, W    float32
}

// RasterizedTriangle is the hardware-consumable record the rasterizer
// produces and the driver streams to the device. It is plain
// old data: fixed size, no pointers, safe to place in a byte arena.
//
// YMin/YMax are the triangle's half-open screen-space vertical extent
// [YMin, YMax),
// precomputed once by Rasterize so CalcLineIncrement can test band
// overlap without re-deriving it from the three vertices every band.
type RasterizedTriangle struct {
	V           [3]Vertex
	StaticColor uint16
	YMin, YMax  uint16
}

// Rasterizer converts three clip-space vertices plus texture
// coordinates into a RasterizedTriangle, and specializes an already
// rasterized triangle to one horizontal band.
type Rasterizer interface {
	// Rasterize fills out from the three triangle corners. It returns
	// false to signal the triangle has no visible coverage at all
	// (entirely outside the view volume) — the caller must treat that
	// as a silent drop, not an error.
	Rasterize(out *RasterizedTriangle, v0 Vec3, st0 Vec2, v1 Vec3, st1 Vec2, v2 Vec3, st2 Vec2) bool

	// CalcLineIncrement specializes in to the horizontal band
	// [yStart, yEnd), writing the result to out. It returns false if
	// the triangle does not touch that band at all, in which case out
	// is left unspecified and must not be streamed to the device.
	CalcLineIncrement(out, in *RasterizedTriangle, yStart, yEnd uint16) bool
}
