// Package displaylist implements the bounded, bus-aligned, append-only
// byte arena that backs both the front/back frame lists and the
// hardware upload list of the tile-band rasterizer driver.
//
// The arena has no notion of opcodes or payload classes; it only
// knows how to reserve, read back, and roll back fixed-size, aligned
// records. The driver layers the opcode/payload discipline on top.
package displaylist

import "unsafe"

// State tracks where in its life a list currently is.
type State int8

const (
	// Free lists may be written to by the encoder.
	Free State = iota
	// Queued lists are committed and waiting for the band walker to
	// start transferring them.
	Queued
	// Transferring lists are actively being re-emitted to the bus,
	// band by band.
	Transferring
)

func (s State) String() string {
	switch s {
	case Free:
		return "free"
	case Queued:
		return "queued"
	case Transferring:
		return "transferring"
	default:
		return "unknown"
	}
}

// Arena is a fixed-capacity byte buffer with append-only, bus-aligned
// record allocation and exactly-one-level LIFO rollback.
//
// Zero value is not usable; construct with New.
type Arena struct {
	storage  []byte
	writePos uint32
	readPos  uint32
	align    uint32
	state    State
}

// New allocates an Arena with the given capacity in bytes. align is
// the bus alignment in bytes (BUS_WIDTH/8 in spec terms) that every
// record is padded up to.
func New(capacity, align uint32) *Arena {
	if align == 0 {
		align = 1
	}
	return &Arena{
		storage: make([]byte, capacity),
		align:   align,
	}
}

// Align reports the arena's bus alignment in bytes.
func (a *Arena) Align() uint32 { return a.align }

// Capacity reports the arena's total byte capacity.
func (a *Arena) Capacity() uint32 { return uint32(len(a.storage)) }

// FreeSpace reports how many bytes remain before WritePos reaches
// capacity.
func (a *Arena) FreeSpace() uint32 { return uint32(len(a.storage)) - a.writePos }

// Size reports the number of bytes currently written (write_pos).
func (a *Arena) Size() uint32 { return a.writePos }

// ReadPos reports the current read cursor.
func (a *Arena) ReadPos() uint32 { return a.readPos }

// WritePos reports the current write cursor.
func (a *Arena) WritePos() uint32 { return a.writePos }

// GetState reports the list's lifecycle state.
func (a *Arena) GetState() State { return a.state }

// Bytes exposes the written portion of the backing store. Callers
// must not retain it past the next mutating call.
func (a *Arena) Bytes() []byte { return a.storage[:a.writePos] }

// ResetRead rewinds the read cursor to the start, without touching
// what has been written. Used by the band walker between passes.
func (a *Arena) ResetRead() { a.readPos = 0 }

// AtEnd reports whether the read cursor has caught up with the write
// cursor.
func (a *Arena) AtEnd() bool { return a.readPos == a.writePos }

// Clear resets both cursors to zero and returns the list to Free.
func (a *Arena) Clear() {
	a.readPos = 0
	a.writePos = 0
	a.state = Free
}

// Enqueue transitions a Free list to Queued. Returns false (no state
// change) if the list isn't Free.
func (a *Arena) Enqueue() bool {
	if a.state != Free {
		return false
	}
	a.state = Queued
	return true
}

// Transfer transitions a Queued list to Transferring. Returns false
// (no state change) if the list isn't Queued.
func (a *Arena) Transfer() bool {
	if a.state != Queued {
		return false
	}
	a.state = Transferring
	return true
}

// sizeofAligned rounds sizeof(T) up to the arena's alignment.
func sizeofAligned[T any](align uint32) uint32 {
	var zero T
	size := uint32(unsafe.Sizeof(zero))
	if align <= 1 {
		return size
	}
	return (size + align - 1) &^ (align - 1)
}

// SizeOf reports the aligned, on-wire size of T in this arena — the
// Go equivalent of the C++ template's sizeOf<T>().
func SizeOf[T any](a *Arena) uint32 { return sizeofAligned[T](a.align) }

// SizeOfAligned is SizeOf without needing a live Arena, for callers
// that only have an alignment value on hand (e.g. sizing a second
// arena or a registry before either exists).
func SizeOfAligned[T any](align uint32) uint32 { return sizeofAligned[T](align) }

// Create reserves sizeof_aligned[T]() bytes at the write cursor and
// returns a pointer into the arena's backing storage, or (nil, false)
// if the arena doesn't have room. On success write_pos advances by
// the reserved size; the caller fills in the returned value in place.
func Create[T any](a *Arena) (*T, bool) {
	size := sizeofAligned[T](a.align)
	if a.writePos+size > uint32(len(a.storage)) {
		return nil, false
	}
	ptr := (*T)(unsafe.Pointer(&a.storage[a.writePos]))
	a.writePos += size
	return ptr, true
}

// Remove rolls write_pos back by sizeof_aligned[T](), undoing the most
// recent Create[T] call. It is only valid immediately after such a
// call (exactly-one-level LIFO rollback) — calling it without a
// matching prior Create corrupts the arena.
func Remove[T any](a *Arena) {
	size := sizeofAligned[T](a.align)
	a.writePos -= size
}

// GetNext reads the next sizeof_aligned[T]() bytes at the read cursor
// and advances it, or returns (nil, false) if there isn't a full
// record left before write_pos.
func GetNext[T any](a *Arena) (*T, bool) {
	size := sizeofAligned[T](a.align)
	if a.readPos+size > a.writePos {
		return nil, false
	}
	ptr := (*T)(unsafe.Pointer(&a.storage[a.readPos]))
	a.readPos += size
	return ptr, true
}
