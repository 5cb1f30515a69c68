package raster

// Edge is a reference Rasterizer grounded in the teacher's own vertex
// model (VoodooVertex in video_voodoo.go — position, Gouraud color,
// texture S/T/W) and in the original RasteriCEr contract this spec was
// distilled from. It computes each triangle's screen-space Y extent
// and tests that extent for overlap with a band's Y range, passing
// the record through unchanged when they overlap; it does not
// do actual edge-function pixel coverage, since the driver's job ends
// at handing the device a RasterizedTriangle record, not at shading
// pixels.
type Edge struct {
	// ScreenHeight is the total vertical resolution
	// (DISPLAY_LINES*LINE_RESOLUTION). Triangles whose Y extent falls
	// entirely outside [0, ScreenHeight) are dropped by Rasterize.
	ScreenHeight uint16
}

// NewEdge returns an Edge rasterizer for the given total screen
// height.
func NewEdge(screenHeight uint16) *Edge {
	return &Edge{ScreenHeight: screenHeight}
}

func (e *Edge) Rasterize(out *RasterizedTriangle, v0 Vec3, st0 Vec2, v1 Vec3, st1 Vec2, v2 Vec3, st2 Vec2) bool {
	yMin := minOf3(v0.Y, v1.Y, v2.Y)
	yMax := maxOf3(v0.Y, v1.Y, v2.Y)

	if yMax < 0 || yMin >= float32(e.ScreenHeight) {
		// Entirely above or below the visible area.
		return false
	}
	if yMax <= yMin {
		// Degenerate (zero-height) triangle: no pixels.
		return false
	}

	out.V[0] = Vertex{X: v0.X, Y: v0.Y, Z: v0.Z, S: st0.S, T: st0.T, W: 1}
	out.V[1] = Vertex{X: v1.X, Y: v1.Y, Z: v1.Z, S: st1.S, T: st1.T, W: 1}
	out.V[2] = Vertex{X: v2.X, Y: v2.Y, Z: v2.Z, S: st2.S, T: st2.T, W: 1}
	out.YMin = clampY(yMin)
	out.YMax = clampY(yMax)
	return true
}

func (e *Edge) CalcLineIncrement(out, in *RasterizedTriangle, yStart, yEnd uint16) bool {
	if in.YMax <= yStart || in.YMin >= yEnd {
		return false
	}
	*out = *in
	return true
}

func minOf3(a, b, c float32) float32 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

func maxOf3(a, b, c float32) float32 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}

func clampY(y float32) uint16 {
	if y < 0 {
		return 0
	}
	if y > 65535 {
		return 65535
	}
	return uint16(y)
}
