// Command tilegpu-demo drives a gfxdriver.Driver from the command
// line: it loads a texture image, submits one textured triangle, and
// commits the frame to either a file-backed serial bus or an
// in-memory recorder for inspection.
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"

	"golang.org/x/image/draw"

	"github.com/bandcaster/tilegpu/bus"
	"github.com/bandcaster/tilegpu/gfxdriver"
	"github.com/bandcaster/tilegpu/raster"
)

func main() {
	fs := flag.NewFlagSet("tilegpu-demo", flag.ExitOnError)
	texturePath := fs.String("texture", "", "path to a PNG/JPEG texture image (optional)")
	texSize := fs.Int("texsize", 64, "square texture size to resample to: 32, 64, 128 or 256")
	outPath := fs.String("out", "", "write the committed bus stream to this file instead of discarding it")
	lines := fs.Int("lines", 1, "DISPLAY_LINES: number of horizontal bands")
	resolution := fs.Int("resolution", 128, "LINE_RESOLUTION: scanlines per band")
	fs.Parse(os.Args[1:])

	fmt.Println("tilegpu-demo: tile-band rasterizer host driver")

	cfg := gfxdriver.DefaultConfig()
	cfg.DisplayLines = uint16(*lines)
	cfg.LineResolution = uint16(*resolution)

	var transport bus.Bus
	var closeFn func()
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			log.Fatalf("tilegpu-demo: %v", err)
		}
		transport = bus.NewSerial(f)
		closeFn = func() { f.Close() }
	} else {
		transport = bus.NewRecording()
		closeFn = func() {}
	}
	defer closeFn()

	rasterizer := raster.NewEdge(cfg.ScreenHeight())
	driver, err := gfxdriver.NewDriver(cfg, transport, rasterizer)
	if err != nil {
		log.Fatalf("tilegpu-demo: %v", err)
	}

	if *texturePath != "" {
		pixels, err := loadTexture(*texturePath, *texSize)
		if err != nil {
			log.Fatalf("tilegpu-demo: loading texture: %v", err)
		}
		if !driver.UseTexture(pixels, uint16(*texSize), uint16(*texSize)) {
			log.Fatalf("tilegpu-demo: UseTexture rejected a %dx%d texture", *texSize, *texSize)
		}
	}

	screenHeight := float32(cfg.ScreenHeight())
	driver.DrawTriangle(
		raster.Vec3{X: 0, Y: 0, Z: 0},
		raster.Vec3{X: 256, Y: 0, Z: 0},
		raster.Vec3{X: 128, Y: screenHeight, Z: 0},
		raster.Vec2{S: 0, T: 0},
		raster.Vec2{S: 1, T: 0},
		raster.Vec2{S: 0.5, T: 1},
		gfxdriver.Vec4i{R: 255, G: 255, B: 255, A: 255},
	)
	driver.Commit()

	for driver.Tick() {
	}

	if rec, ok := transport.(*bus.Recording); ok {
		fmt.Printf("committed frame: %d transfers, %d bytes total\n", len(rec.Transfers), rec.TotalBytes(0, true))
	} else {
		fmt.Println("committed frame")
	}
}

// loadTexture decodes an image file and resamples it down to an
// n x n RGBA4444 pixel buffer using golang.org/x/image/draw, since
// the driver only accepts the hardware's fixed square texture sizes.
func loadTexture(path string, n int) ([]uint16, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}

	dst := image.NewRGBA(image.Rect(0, 0, n, n))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)

	pixels := make([]uint16, n*n)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			r, g, b, a := dst.At(x, y).RGBA()
			pixels[y*n+x] = gfxdriver.ConvertColor(gfxdriver.Vec4i{
				R: uint8(r >> 8),
				G: uint8(g >> 8),
				B: uint8(b >> 8),
				A: uint8(a >> 8),
			})
		}
	}
	return pixels, nil
}
