package gfxdriver

import (
	"unsafe"

	"github.com/bandcaster/tilegpu/displaylist"
	"github.com/bandcaster/tilegpu/raster"
)

// texturePixelChunk is how many pixels one WriteData call streams for
// a texture upload: HardwareBufferSize bytes worth, since every
// supported texture size (32x32 through 256x256) is an exact multiple
// of it.
const texturePixelChunk = HardwareBufferSize / 2

// Tick drives one step of the band walker. It performs at most one
// bus interaction — one texture chunk, or one re-emitted sub-list for
// the band currently being walked — and returns.
//
// DrawTriangle and Commit call it automatically, mirroring
// Renderer.hpp calling uploadDisplayList() from drawTriangle;
// UseTexture and the register setters do not. It is also exported so a caller that wants
// explicit control over bus timing (e.g. only ticking once per vsync)
// can drive it directly instead.
//
// Tick returns true while the front list still has bands or texture
// data in flight, and false once it has fully drained back to Free.
func (d *Driver) Tick() bool {
	if !d.bus.ClearToSend() {
		return true
	}

	front := d.lists[d.frontList]

	if front.GetState() == displaylist.Queued {
		d.uploadLinePos = d.cfg.DisplayLines - 1
		front.Transfer()
	}

	if front.GetState() != displaylist.Transferring {
		return false
	}

	if d.cursor.remaining() > 0 {
		d.streamTextureChunk()
		return true
	}

	d.uploadList.Clear()
	leaveLoop := false
	for !leaveLoop && d.hasEnoughSpace() {
		opPtr, ok := displaylist.GetNext[Opcode](front)
		if !ok {
			break
		}
		op := *opPtr

		dstOp, _ := displaylist.Create[Opcode](d.uploadList)
		*dstOp = op

		switch op.class() {
		case opTriangleStream:
			d.walkTriangle(front)
		case opFramebufferOp, opNOP:
			// no argument
		case opTextureStream:
			leaveLoop = d.walkTexture(front)
		case opSetReg:
			d.walkSetReg(front)
		default:
			displaylist.Remove[Opcode](d.uploadList)
		}
	}

	d.bus.StartColorBufferTransfer(uint32(d.uploadLinePos))
	d.bus.WriteData(d.uploadList.Bytes())

	if front.AtEnd() {
		front.ResetRead()
		if d.uploadLinePos == 0 {
			front.Clear()
			return false
		}
		d.uploadLinePos--
	}
	return true
}

// hasEnoughSpace reports whether the upload list has room for the
// largest possible next record: an opcode plus a full triangle.
func (d *Driver) hasEnoughSpace() bool {
	needed := displaylist.SizeOfAligned[Opcode](d.uploadList.Align()) +
		displaylist.SizeOfAligned[raster.RasterizedTriangle](d.uploadList.Align())
	return d.uploadList.FreeSpace() >= needed
}

// walkTriangle specializes the next triangle to the band currently
// being walked, dropping it from the upload list if it doesn't touch
// that band at all.
func (d *Driver) walkTriangle(front *displaylist.Arena) {
	triPtr, ok := displaylist.GetNext[raster.RasterizedTriangle](front)
	if !ok {
		return
	}

	dstTri, _ := displaylist.Create[raster.RasterizedTriangle](d.uploadList)
	start := d.uploadLinePos * d.cfg.LineResolution
	end := (d.uploadLinePos + 1) * d.cfg.LineResolution

	if !d.rast.CalcLineIncrement(dstTri, triPtr, start, end) {
		displaylist.Remove[raster.RasterizedTriangle](d.uploadList)
		displaylist.Remove[Opcode](d.uploadList)
	}
}

// walkSetReg copies a register-set command's 16-bit argument through
// unchanged: register writes don't depend on which band is current.
func (d *Driver) walkSetReg(front *displaylist.Arena) {
	valPtr, ok := displaylist.GetNext[uint16](front)
	if !ok {
		return
	}
	dst, _ := displaylist.Create[uint16](d.uploadList)
	*dst = *valPtr
}

// walkTexture reads the next texture command's argument, starts a new
// cursor for it, and deduplicates against whatever the previous
// cursor was: if the new buffer's end address coincides with the
// previous cursor's end address, it's the same texture re-specified
// back to back (the common case of redrawing with an unchanged
// texture), so there is nothing to re-upload and the just-written
// opcode is discarded instead of handed to the bus.
//
// It reports whether the walker must leave the band loop now to
// drain the new texture before reading any further opcodes.
func (d *Driver) walkTexture(front *displaylist.Arena) bool {
	argPtr, ok := displaylist.GetNext[texturePayload](front)
	if !ok {
		return false
	}
	arg := *argPtr

	newSlot := d.textures.slot(arg.Handle)
	dedup := d.cursor.hasHandle &&
		textureEndAddr(newSlot.pixels) == textureEndAddr(d.textures.slot(d.cursor.handle).pixels)

	d.cursor = textureCursor{
		handle:    arg.Handle,
		hasHandle: true,
		sent:      0,
		total:     arg.RemainingPixels,
	}

	if dedup {
		d.cursor.sent = d.cursor.total
		displaylist.Remove[Opcode](d.uploadList)
		return false
	}
	return true
}

// streamTextureChunk pushes one fixed-size chunk of the in-flight
// texture to the bus and advances the cursor.
func (d *Driver) streamTextureChunk() {
	slot := d.textures.slot(d.cursor.handle)

	chunkLen := int32(texturePixelChunk)
	if remaining := d.cursor.remaining(); remaining < chunkLen {
		chunkLen = remaining
	}
	start := d.cursor.sent
	end := start + chunkLen
	if max := int32(len(slot.pixels)); end > max {
		end = max
	}

	d.bus.WriteData(uint16sToBytes(slot.pixels[start:end]))
	d.cursor.sent += chunkLen
}

// textureEndAddr returns the address one element past the end of
// pixels — the Go equivalent of the original C++ driver's raw
// pointer arithmetic (pixels + remainingPixels) used to detect an
// unchanged texture buffer.
func textureEndAddr(pixels []uint16) unsafe.Pointer {
	base := unsafe.Pointer(unsafe.SliceData(pixels))
	return unsafe.Add(base, len(pixels)*2)
}

// uint16sToBytes reinterprets a uint16 pixel slice as its underlying
// bytes without copying, for handing a texture chunk to Bus.WriteData.
func uint16sToBytes(s []uint16) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), len(s)*2)
}
