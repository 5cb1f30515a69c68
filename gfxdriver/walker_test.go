package gfxdriver

import (
	"testing"

	"github.com/bandcaster/tilegpu/bus"
	"github.com/bandcaster/tilegpu/raster"
)

// drain pumps Tick until the front list has fully flushed, the way a
// real caller would from its own event loop — Commit only kicks the
// walker once, it does not block until the transfer finishes.
func drain(t *testing.T, d *Driver) {
	t.Helper()
	for i := 0; d.Tick(); i++ {
		if i > 10000 {
			t.Fatalf("Tick never returned false; walker appears stuck")
		}
	}
}

func TestBandWalkerStallsWhileBusNotClear(t *testing.T) {
	// Commit's drain-the-old-front loop busy-polls ClearToSend with no
	// escape hatch (matching the original bare-metal driver this was
	// ported from), so the bus must already be clear for the initial
	// Commit. With two bands, Commit's single kick emits only band 1,
	// so band 0 is still pending when the bus stalls; the stall is then
	// exercised by explicit Tick calls rather than Commit.
	cfg := DefaultConfig()
	cfg.DisplayLines = 2
	clear := true
	b := &bus.Recording{ClearFunc: func() bool { return clear }}
	d, err := NewDriver(cfg, b, raster.NewEdge(cfg.ScreenHeight()))
	if err != nil {
		t.Fatalf("NewDriver: %v", err)
	}

	d.DrawTriangle(
		raster.Vec3{X: 0, Y: 0, Z: 0},
		raster.Vec3{X: 128, Y: 0, Z: 0},
		raster.Vec3{X: 64, Y: 128, Z: 0},
		raster.Vec2{}, raster.Vec2{}, raster.Vec2{}, Vec4i{},
	)
	d.Commit()
	transfersBefore := len(b.Transfers)

	clear = false
	d.DrawTriangle(
		raster.Vec3{X: 0, Y: 0, Z: 0},
		raster.Vec3{X: 128, Y: 0, Z: 0},
		raster.Vec3{X: 64, Y: 128, Z: 0},
		raster.Vec2{}, raster.Vec2{}, raster.Vec2{}, Vec4i{},
	)
	for i := 0; i < 5; i++ {
		d.Tick()
	}
	if len(b.Transfers) != transfersBefore {
		t.Fatalf("no new transfer should happen while the bus reports not-clear")
	}

	clear = true
	drain(t, d)
}

func TestBandsAreWalkedInReverseOrder(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DisplayLines = 2
	cfg.LineResolution = 64
	d, b := newTestDriver(t, cfg)

	// Spans the full screen height, so it is visible in both bands.
	d.DrawTriangle(
		raster.Vec3{X: 0, Y: 0, Z: 0},
		raster.Vec3{X: 128, Y: 0, Z: 0},
		raster.Vec3{X: 64, Y: 128, Z: 0},
		raster.Vec2{}, raster.Vec2{}, raster.Vec2{}, Vec4i{},
	)
	d.Commit()
	drain(t, d)

	bands := b.Bands()
	if len(bands) < 2 {
		t.Fatalf("expected at least 2 band transfers, got %v", bands)
	}
	if bands[0] != 1 || bands[1] != 0 {
		t.Fatalf("bands should be walked high-to-low (picture is upside down), got %v", bands)
	}
}

func TestTriangleAbsentFromBandItDoesNotTouch(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DisplayLines = 2
	cfg.LineResolution = 64
	d, b := newTestDriver(t, cfg)

	// Confined to the top half (band 0, y in [0,64)).
	d.DrawTriangle(
		raster.Vec3{X: 0, Y: 0, Z: 0},
		raster.Vec3{X: 32, Y: 0, Z: 0},
		raster.Vec3{X: 16, Y: 32, Z: 0},
		raster.Vec2{}, raster.Vec2{}, raster.Vec2{}, Vec4i{},
	)
	d.Commit()
	drain(t, d)

	// Band 1 (the first one walked) carries the register writes and the
	// commit opcode but not the triangle, so it is strictly smaller than
	// band 0's triangle-bearing payload.
	band1Bytes := b.TotalBytes(1, false)
	band0Bytes := b.TotalBytes(0, false)
	if band1Bytes >= band0Bytes {
		t.Fatalf("band without the triangle (%d bytes) should be smaller than the band with it (%d bytes)", band1Bytes, band0Bytes)
	}
}

func TestUseTextureStreamsExactlyOneChunkFor32x32(t *testing.T) {
	d, b := newTestDriver(t, DefaultConfig())
	pixels := make([]uint16, 32*32)
	for i := range pixels {
		pixels[i] = uint16(i)
	}

	if !d.UseTexture(pixels, 32, 32) {
		t.Fatalf("UseTexture should have accepted a 32x32 texture")
	}
	d.Commit()
	drain(t, d)

	chunks := countTransfersOfLen(b, texturePixelChunk*2)
	if chunks != 1 {
		t.Fatalf("expected exactly 1 full-chunk transfer for a 1024-pixel texture, got %d", chunks)
	}
}

func TestRepeatedIdenticalTextureIsNotReuploaded(t *testing.T) {
	d, b := newTestDriver(t, DefaultConfig())
	pixels := make([]uint16, 32*32)

	d.UseTexture(pixels, 32, 32)
	d.UseTexture(pixels, 32, 32)
	d.Commit()
	drain(t, d)

	chunks := countTransfersOfLen(b, texturePixelChunk*2)
	if chunks != 1 {
		t.Fatalf("re-specifying the same texture buffer should not re-upload it, got %d chunk transfers", chunks)
	}
}

func TestDifferentTextureBuffersAreBothUploaded(t *testing.T) {
	d, b := newTestDriver(t, DefaultConfig())
	a := make([]uint16, 32*32)
	c := make([]uint16, 32*32)

	d.UseTexture(a, 32, 32)
	d.UseTexture(c, 32, 32)
	d.Commit()
	drain(t, d)

	chunks := countTransfersOfLen(b, texturePixelChunk*2)
	if chunks != 2 {
		t.Fatalf("two distinct texture buffers should both be uploaded, got %d chunk transfers", chunks)
	}
}

func countTransfersOfLen(b *bus.Recording, n int) int {
	count := 0
	for _, tr := range b.Transfers {
		if len(tr.Data) == n {
			count++
		}
	}
	return count
}
