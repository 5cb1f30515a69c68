package gfxdriver

// texturePayload is what actually lives in the display list for a
// TEXTURE_STREAM command. Unlike the original C++ (which stores the
// raw pixel pointer directly in the display list), this driver stores
// a handle into an in-process texture registry: the byte arena is
// typed via unsafe pointer-punning, and Go's garbage collector does
// not scan arbitrary byte storage for pointers it might contain, so
// storing a real slice header inside the arena would be unsafe. The
// registry (below) holds the actual borrowed slice in ordinary,
// GC-visible Go memory; the arena only ever holds plain integers.
//
// This preserves the "borrowed, not copied" contract from spec.md §3
// and §9 (Texture ownership) — no pixel data is ever copied — while
// staying memory-safe.
type texturePayload struct {
	Handle          uint32
	RemainingPixels int32
}

// textureSlot is one entry in the texture registry: the borrowed
// pixel buffer for a single UseTexture call. Streaming position is
// tracked separately by textureCursor, since only one slot is ever
// being drained at a time.
type textureSlot struct {
	pixels []uint16
}

// textureRegistry is a fixed-capacity ring of texture slots, sized at
// construction so steady-state UseTexture calls never allocate.
type textureRegistry struct {
	slots []textureSlot
	next  uint32
}

func newTextureRegistry(capacity int) *textureRegistry {
	if capacity < 1 {
		capacity = 1
	}
	return &textureRegistry{slots: make([]textureSlot, capacity)}
}

// register borrows pixels (it does not copy them) and returns a handle
// valid until the slot is recycled by a later register call capacity
// slots from now.
func (r *textureRegistry) register(pixels []uint16) uint32 {
	h := r.next
	r.next++
	slot := &r.slots[h%uint32(len(r.slots))]
	slot.pixels = pixels
	return h
}

func (r *textureRegistry) slot(handle uint32) *textureSlot {
	return &r.slots[handle%uint32(len(r.slots))]
}

// textureCursor tracks the single in-flight texture upload the band
// walker is draining, exactly one per spec.md §4.4/§4.5.
type textureCursor struct {
	handle    uint32
	hasHandle bool
	sent      int32
	total     int32
}

func (c *textureCursor) remaining() int32 { return c.total - c.sent }
