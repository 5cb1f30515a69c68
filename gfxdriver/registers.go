package gfxdriver

// ConfReg1 and ConfReg2 mirror spec.md §3's bit-packed wire registers.
// Go has no bitfields with a guaranteed little-endian layout, so
// Pack/Unpack do the shifting by hand at the register-emit site, per
// the design note in spec.md §9.

// ConfReg1 packs depth/alpha test state and the color/depth write
// masks into 16 bits: enable_depth_test(1) | depth_func(3) |
// alpha_func(3) | alpha_ref(4) | depth_mask(1) | color_mask_a(1) |
// color_mask_b(1) | color_mask_g(1) | color_mask_r(1), LSB first.
type ConfReg1 struct {
	EnableDepthTest bool
	DepthFunc       TestFunc
	AlphaFunc       TestFunc
	AlphaRef        uint8 // 4 bits
	DepthMask       bool
	ColorMaskA      bool
	ColorMaskB      bool
	ColorMaskG      bool
	ColorMaskR      bool
}

// Pack produces the wire-exact 16-bit value.
func (r ConfReg1) Pack() uint16 {
	var v uint16
	if r.EnableDepthTest {
		v |= 1 << 0
	}
	v |= uint16(r.DepthFunc&0x7) << 1
	v |= uint16(r.AlphaFunc&0x7) << 4
	v |= uint16(r.AlphaRef&0xF) << 7
	if r.DepthMask {
		v |= 1 << 11
	}
	if r.ColorMaskA {
		v |= 1 << 12
	}
	if r.ColorMaskB {
		v |= 1 << 13
	}
	if r.ColorMaskG {
		v |= 1 << 14
	}
	if r.ColorMaskR {
		v |= 1 << 15
	}
	return v
}

// UnpackConfReg1 is the inverse of Pack, used by tests to verify the
// register snapshot property (spec.md §8 property 3).
func UnpackConfReg1(v uint16) ConfReg1 {
	return ConfReg1{
		EnableDepthTest: v&(1<<0) != 0,
		DepthFunc:       TestFunc((v >> 1) & 0x7),
		AlphaFunc:       TestFunc((v >> 4) & 0x7),
		AlphaRef:        uint8((v >> 7) & 0xF),
		DepthMask:       v&(1<<11) != 0,
		ColorMaskA:      v&(1<<12) != 0,
		ColorMaskB:      v&(1<<13) != 0,
		ColorMaskG:      v&(1<<14) != 0,
		ColorMaskR:      v&(1<<15) != 0,
	}
}

// ConfReg2 packs texture/blend state into 16 bits:
// perspective_correct_tex(1) | tex_env_func(3) | blend_src(4) |
// blend_dst(4) | tex_clamp_s(1) | tex_clamp_t(1), LSB first. The top
// two bits are unused.
type ConfReg2 struct {
	PerspectiveCorrect bool
	TexEnvFunc         TexEnvParam
	BlendSrc           BlendFunc
	BlendDst           BlendFunc
	TexClampS          bool
	TexClampT          bool
}

func (r ConfReg2) Pack() uint16 {
	var v uint16
	if r.PerspectiveCorrect {
		v |= 1 << 0
	}
	v |= uint16(r.TexEnvFunc&0x7) << 1
	v |= uint16(r.BlendSrc&0xF) << 4
	v |= uint16(r.BlendDst&0xF) << 8
	if r.TexClampS {
		v |= 1 << 12
	}
	if r.TexClampT {
		v |= 1 << 13
	}
	return v
}

func UnpackConfReg2(v uint16) ConfReg2 {
	return ConfReg2{
		PerspectiveCorrect: v&(1<<0) != 0,
		TexEnvFunc:         TexEnvParam((v >> 1) & 0x7),
		BlendSrc:           BlendFunc((v >> 4) & 0xF),
		BlendDst:           BlendFunc((v >> 8) & 0xF),
		TexClampS:          v&(1<<12) != 0,
		TexClampT:          v&(1<<13) != 0,
	}
}
