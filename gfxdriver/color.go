package gfxdriver

// Vec4i is a host-side color with one byte per channel, as handed in
// by the graphics API above the driver.
type Vec4i struct {
	R, G, B, A uint8
}

// ConvertColor packs an 8-bit-per-channel host color into the
// hardware's 16-bit RGBA4444 wire format: each channel is right-shifted
// by 4 (keeping its high nibble) and packed as (R<<12)|(G<<8)|(B<<4)|A
// — R in the most significant nibble, A in the least, per spec.md §4.3.
func ConvertColor(c Vec4i) uint16 {
	r := uint16(c.R>>4) & 0xF
	g := uint16(c.G>>4) & 0xF
	b := uint16(c.B>>4) & 0xF
	a := uint16(c.A>>4) & 0xF
	return (r << 12) | (g << 8) | (b << 4) | a
}
