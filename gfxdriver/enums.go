package gfxdriver

// TestFunc selects a depth or alpha comparison function. Values match
// the hardware's depth-compare encoding (see voodoo_constants.go's
// VOODOO_DEPTH_* for the sibling chip's identical ordering) so they
// fit directly into ConfReg1's 3-bit fields.
type TestFunc uint8

const (
	Never TestFunc = iota
	Less
	Equal
	LessEqual
	Greater
	NotEqual
	GreaterEqual
	Always
)

// BlendFunc selects a source or destination alpha-blend factor.
// Values match VOODOO_BLEND_* so they fit ConfReg2's 4-bit fields.
type BlendFunc uint8

const (
	BlendZero        BlendFunc = 0
	BlendSrcAlpha    BlendFunc = 1
	BlendColor       BlendFunc = 2
	BlendDstAlpha    BlendFunc = 3
	BlendOne         BlendFunc = 4
	BlendInvSrcAlpha BlendFunc = 5
	BlendInvColor    BlendFunc = 6
	BlendInvDstAlpha BlendFunc = 7
	BlendSaturate    BlendFunc = 15
)

// LogicOp enumerates the classic raster logic ops. SetLogicOp accepts
// any of these but always fails (spec.md §4.2, §9 Open Question 2):
// the opcode is retained for API compatibility only.
type LogicOp uint8

const (
	LogicClear LogicOp = iota
	LogicCopy
	LogicCopyInverted
	LogicNoOp
	LogicInvert
	LogicAnd
	LogicNand
	LogicOr
	LogicNor
	LogicXor
	LogicEquiv
	LogicSet
)

// TexEnvParam selects how texture and iterated color combine. Fits
// ConfReg2's 3-bit tex_env_func field.
type TexEnvParam uint8

const (
	Modulate TexEnvParam = iota
	Decal
	Blend
	Replace
	Add
)

// TextureWrapMode selects S/T coordinate wrapping behaviour.
type TextureWrapMode uint8

const (
	Repeat TextureWrapMode = iota
	ClampToEdge
)

// TexEnvTarget and TexEnvParamName exist only so SetTexEnv's signature
// matches the host graphics API's shape; the driver ignores both and
// always applies the TexEnvParam as the texture-environment mode,
// exactly as the original Renderer.hpp ignores both and only consumes
// the TexEnvParam.
type TexEnvTarget uint8

const TextureEnv TexEnvTarget = 0

type TexEnvParamName uint8

const TextureEnvMode TexEnvParamName = 0
