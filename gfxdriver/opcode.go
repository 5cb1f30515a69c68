package gfxdriver

// Opcode is the 16-bit command word consumed by the hardware: a 4-bit
// operation in the top nibble and a 12-bit immediate below it.
type Opcode uint16

const (
	opMask  Opcode = 0xF000
	immMask Opcode = 0x0FFF
)

// Opcode classes (top 4 bits).
const (
	opNOP            Opcode = 0x0000
	opTextureStream  Opcode = 0x1000
	opSetReg         Opcode = 0x2000
	opFramebufferOp  Opcode = 0x3000
	opTriangleStream Opcode = 0x4000
)

// class extracts the opcode's top-4-bit dispatch tag.
func (o Opcode) class() Opcode { return o & opMask }

// Texture size-class immediates. Values are deliberately non-sequential
// (each nibble pair repeats the log2 step) to match the wire format
// the hardware expects; see voodoo_constants.go's register layout for
// the sibling convention of packing two equal sub-fields into one
// immediate.
const (
	texStream32  Opcode = opTextureStream | 0x0011
	texStream64  Opcode = opTextureStream | 0x0022
	texStream128 Opcode = opTextureStream | 0x0044
	texStream256 Opcode = opTextureStream | 0x0088
)

// FRAMEBUFFER_OP immediate bits.
const (
	fbCommit Opcode = opFramebufferOp | 0x0001
	fbMemset Opcode = opFramebufferOp | 0x0002
	fbColor  Opcode = opFramebufferOp | 0x0010
	fbDepth  Opcode = opFramebufferOp | 0x0020
)

// FramebufferCommitColor is the sentinel commit opcode appended to the
// back list at the end of every frame (spec.md §4.5 Commit step 1).
const FramebufferCommitColor Opcode = fbCommit | fbColor

// SET_REG immediates.
const (
	regClearColor  Opcode = opSetReg | 0x0000
	regClearDepth  Opcode = opSetReg | 0x0001
	regConfReg1    Opcode = opSetReg | 0x0002
	regConfReg2    Opcode = opSetReg | 0x0003
	regTexEnvColor Opcode = opSetReg | 0x0004
)

// textureOpcodeFor returns the TEXTURE_STREAM opcode for a square
// texture of the given side length, or (0, false) if unsupported.
func textureOpcodeFor(size int) (Opcode, bool) {
	switch size {
	case 32:
		return texStream32, true
	case 64:
		return texStream64, true
	case 128:
		return texStream128, true
	case 256:
		return texStream256, true
	default:
		return 0, false
	}
}
