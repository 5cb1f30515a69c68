package gfxdriver

import "testing"

func TestConfReg1PackUnpackRoundTrip(t *testing.T) {
	in := ConfReg1{
		EnableDepthTest: true,
		DepthFunc:       GreaterEqual,
		AlphaFunc:       NotEqual,
		AlphaRef:        0xB,
		DepthMask:       true,
		ColorMaskA:      false,
		ColorMaskB:      true,
		ColorMaskG:      false,
		ColorMaskR:      true,
	}
	out := UnpackConfReg1(in.Pack())
	if out != in {
		t.Fatalf("round trip mismatch: got %+v, want %+v", out, in)
	}
}

func TestConfReg1DefaultPacksToZeroPlusFields(t *testing.T) {
	var in ConfReg1
	if in.Pack() != 0 {
		t.Fatalf("zero-value ConfReg1 should pack to 0, got %#x", in.Pack())
	}
}

func TestConfReg2PackUnpackRoundTrip(t *testing.T) {
	in := ConfReg2{
		PerspectiveCorrect: true,
		TexEnvFunc:         Decal,
		BlendSrc:           BlendSrcAlpha,
		BlendDst:           BlendInvSrcAlpha,
		TexClampS:          true,
		TexClampT:          false,
	}
	out := UnpackConfReg2(in.Pack())
	if out != in {
		t.Fatalf("round trip mismatch: got %+v, want %+v", out, in)
	}
}

func TestConfReg2FieldsDoNotOverlap(t *testing.T) {
	a := ConfReg2{BlendSrc: BlendSaturate}.Pack()
	b := ConfReg2{BlendDst: BlendSaturate}.Pack()
	if a == b {
		t.Fatalf("BlendSrc and BlendDst packed to the same bits: %#x", a)
	}
	if a&0xF0 == 0 {
		t.Fatalf("BlendSrc should occupy bits 4-7, got %#x", a)
	}
	if b&0xF00 == 0 {
		t.Fatalf("BlendDst should occupy bits 8-11, got %#x", b)
	}
}
