package gfxdriver

import (
	"github.com/bandcaster/tilegpu/bus"
	"github.com/bandcaster/tilegpu/displaylist"
	"github.com/bandcaster/tilegpu/raster"
)

// displayBuffers is the number of alternating frame lists. Only two
// are supported, exactly as in Renderer.hpp — anything else would
// need a different front/back swap rule than the one below.
const displayBuffers = 2

// Driver is the host-side encoder and band walker for the tile-based
// rasterizer. It is the single entry point everything above the bus
// talks to: callers build a frame with DrawTriangle/UseTexture/Clear
// and the register setters, then hand it to the hardware with Commit.
//
// A Driver is not safe for concurrent use. It is a single cooperative
// state machine with exactly one writer and no background goroutine;
// Tick (called automatically, and available for a caller that wants
// to drive bus timing itself) is the only thing that talks to Bus.
type Driver struct {
	cfg  Config
	bus  bus.Bus
	rast raster.Rasterizer

	lists     [displayBuffers]*displaylist.Arena
	frontList int
	backList  int

	uploadList    *displaylist.Arena
	uploadLinePos uint16

	triangleOp Opcode

	textures *textureRegistry
	cursor   textureCursor

	confReg1 ConfReg1
	confReg2 ConfReg2
}

// NewDriver constructs a driver bound to the given transport and
// rasterizer and seeds the default register state Renderer.hpp's
// constructor establishes: depth test off with LESS armed, depth
// writes off, all color channels writable, alpha test always-pass,
// modulate texturing, src-plus-dst-zero blending, and a zeroed clear
// color with max clear depth.
func NewDriver(cfg Config, b bus.Bus, r raster.Rasterizer) (*Driver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, &DriverError{Operation: "NewDriver", Details: "invalid config", Err: err}
	}

	d := &Driver{
		cfg:       cfg,
		bus:       b,
		rast:      r,
		frontList: 0,
		backList:  1,
		textures:  newTextureRegistry(textureRegistryCapacity(cfg)),
	}

	for i := range d.lists {
		d.lists[i] = displaylist.New(cfg.DisplayListSize, cfg.Align())
	}
	d.uploadList = displaylist.New(HardwareBufferSize, cfg.Align())
	d.triangleOp = opTriangleStream | Opcode(displaylist.SizeOfAligned[raster.RasterizedTriangle](cfg.Align()))

	d.confReg2.PerspectiveCorrect = cfg.PerspCorrect
	d.SetDepthFunc(Less)
	d.SetDepthMask(false)
	d.SetColorMask(true, true, true, true)
	d.SetAlphaFunc(Always, 0xF)
	d.SetTexEnv(TextureEnv, TextureEnvMode, Modulate)
	d.SetBlendFunc(BlendOne, BlendZero)
	d.SetLogicOp(LogicCopy)
	d.SetTexEnvColor(Vec4i{})
	d.SetClearColor(Vec4i{})
	d.SetClearDepth(65535)

	return d, nil
}

// textureRegistryCapacity sizes the handle ring generously enough
// that a texture command's handle can never be recycled before the
// band walker has had a chance to read it: up to DisplayBuffers lists
// worth of the smallest possible texture command can be outstanding
// at once (one list mid-drain, one list still being encoded).
func textureRegistryCapacity(cfg Config) int {
	minCommand := displaylist.SizeOfAligned[Opcode](cfg.Align()) + displaylist.SizeOfAligned[texturePayload](cfg.Align())
	if minCommand == 0 {
		return displayBuffers
	}
	perList := int(cfg.DisplayListSize / minCommand)
	if perList < 1 {
		perList = 1
	}
	return displayBuffers * perList
}

func (d *Driver) backArena() *displaylist.Arena { return d.lists[d.backList] }

// ConfReg1Snapshot reports the driver's current depth/alpha/color-mask
// register state, for tests and diagnostics (spec.md §8 property 3).
func (d *Driver) ConfReg1Snapshot() ConfReg1 { return d.confReg1 }

// ConfReg2Snapshot reports the driver's current texture/blend
// register state.
func (d *Driver) ConfReg2Snapshot() ConfReg2 { return d.confReg2 }

// DrawTriangle rasterizes v0/v1/v2 and appends the result to the back
// list, returning false only if the list is out of room. A triangle
// with no visible coverage is silently dropped and reported as
// success, matching Renderer.hpp's drawTriangle.
func (d *Driver) DrawTriangle(v0, v1, v2 raster.Vec3, st0, st1, st2 raster.Vec2, color Vec4i) bool {
	var tri raster.RasterizedTriangle
	if !d.rast.Rasterize(&tri, v0, st0, v1, st1, v2, st2) {
		return true
	}
	tri.StaticColor = ConvertColor(color)

	ok := appendStreamCommand(d.backArena(), d.triangleOp, tri)
	d.Tick()
	return ok
}

// UseTexture stages a texture upload. Only square textures of side
// 32, 64, 128 or 256 are supported; anything else is rejected.
// The pixel buffer is borrowed, not copied — it must stay valid and
// unmodified until the band walker has fully streamed it to the bus.
func (d *Driver) UseTexture(pixels []uint16, texWidth, texHeight uint16) bool {
	if texWidth != texHeight {
		return false
	}
	op, ok := textureOpcodeFor(int(texWidth))
	if !ok {
		return false
	}

	handle := d.textures.register(pixels)
	arg := texturePayload{Handle: handle, RemainingPixels: int32(len(pixels))}
	return appendStreamCommand(d.backArena(), op, arg)
}

// Clear appends a framebuffer memset command for the requested
// buffers. Clearing neither buffer appends a NOP, matching
// Renderer.hpp rather than silently dropping the call.
func (d *Driver) Clear(colorBuffer, depthBuffer bool) bool {
	var op Opcode
	switch {
	case colorBuffer && depthBuffer:
		op = fbMemset | fbColor | fbDepth
	case colorBuffer:
		op = fbMemset | fbColor
	case depthBuffer:
		op = fbMemset | fbDepth
	default:
		op = opNOP
	}

	ptr, ok := displaylist.Create[Opcode](d.backArena())
	if ok {
		*ptr = op
	}
	return ok
}

// SetClearColor sets the color the hardware fills the color buffer
// with on the next color-buffer FRAMEBUFFER_MEMSET.
func (d *Driver) SetClearColor(color Vec4i) bool {
	return appendStreamCommand(d.backArena(), regClearColor, ConvertColor(color))
}

// SetClearDepth sets the depth value the hardware fills the depth
// buffer with on the next depth-buffer FRAMEBUFFER_MEMSET.
func (d *Driver) SetClearDepth(depth uint16) bool {
	return appendStreamCommand(d.backArena(), regClearDepth, depth)
}

// SetDepthMask enables or disables writes to the depth buffer.
func (d *Driver) SetDepthMask(flag bool) bool {
	d.confReg1.DepthMask = flag
	return d.pushConfReg1()
}

// EnableDepthTest turns the depth test on or off.
func (d *Driver) EnableDepthTest(enable bool) bool {
	d.confReg1.EnableDepthTest = enable
	return d.pushConfReg1()
}

// SetColorMask enables or disables writes to each color channel.
func (d *Driver) SetColorMask(r, g, b, a bool) bool {
	d.confReg1.ColorMaskR = r
	d.confReg1.ColorMaskG = g
	d.confReg1.ColorMaskB = b
	d.confReg1.ColorMaskA = a
	return d.pushConfReg1()
}

// SetDepthFunc sets the depth comparison function.
func (d *Driver) SetDepthFunc(fn TestFunc) bool {
	d.confReg1.DepthFunc = fn
	return d.pushConfReg1()
}

// SetAlphaFunc sets the alpha test comparison function and its
// 4-bit reference value.
func (d *Driver) SetAlphaFunc(fn TestFunc, ref uint8) bool {
	d.confReg1.AlphaFunc = fn
	d.confReg1.AlphaRef = ref
	return d.pushConfReg1()
}

func (d *Driver) pushConfReg1() bool {
	return appendStreamCommand(d.backArena(), regConfReg1, d.confReg1.Pack())
}

// SetTexEnv sets how the texture sample combines with the iterated
// vertex color. Only the texture-environment mode parameter is
// honoured — target and pname exist purely so the signature matches
// the host graphics API's shape, exactly as Renderer.hpp ignores them.
func (d *Driver) SetTexEnv(target TexEnvTarget, pname TexEnvParamName, param TexEnvParam) bool {
	_, _ = target, pname
	d.confReg2.TexEnvFunc = param
	return d.pushConfReg2()
}

// SetBlendFunc sets the source and destination blend factors.
func (d *Driver) SetBlendFunc(sfactor, dfactor BlendFunc) bool {
	d.confReg2.BlendSrc = sfactor
	d.confReg2.BlendDst = dfactor
	return d.pushConfReg2()
}

// SetLogicOp always fails: the hardware has no logic-op stage. The
// parameter is retained so callers porting from an API that has one
// get a clean false instead of a missing method.
func (d *Driver) SetLogicOp(op LogicOp) bool {
	_ = op
	return false
}

// SetTexEnvColor sets the constant color used by BLEND-mode texture
// environments.
func (d *Driver) SetTexEnvColor(color Vec4i) bool {
	return appendStreamCommand(d.backArena(), regTexEnvColor, ConvertColor(color))
}

// SetTextureWrapModeS sets the S-axis texture coordinate wrap mode.
func (d *Driver) SetTextureWrapModeS(mode TextureWrapMode) bool {
	d.confReg2.TexClampS = mode == ClampToEdge
	return d.pushConfReg2()
}

// SetTextureWrapModeT sets the T-axis texture coordinate wrap mode.
func (d *Driver) SetTextureWrapModeT(mode TextureWrapMode) bool {
	d.confReg2.TexClampT = mode == ClampToEdge
	return d.pushConfReg2()
}

func (d *Driver) pushConfReg2() bool {
	return appendStreamCommand(d.backArena(), regConfReg2, d.confReg2.Pack())
}

// Commit closes out the back list (appending the framebuffer commit
// command), drains whatever the front list still has in flight, then
// swaps front and back and kicks off the new front list's transfer.
//
// If the commit command itself doesn't fit, the back list is
// discarded outright rather than left half-written: sending a
// mismatched commit later would desync the hardware's band cadence
// from the host's, smearing the displayed image.
func (d *Driver) Commit() {
	back := d.backArena()

	opPtr, ok := displaylist.Create[Opcode](back)
	if !ok {
		back.Clear()
		return
	}
	*opPtr = FramebufferCommitColor

	for d.Tick() {
	}

	back.Enqueue()

	if d.backList == 0 {
		d.backList, d.frontList = 1, 0
	} else {
		d.backList, d.frontList = 0, 1
	}

	d.Tick()
}
