package bus

import (
	"encoding/binary"
	"io"
	"log"
)

// Serial is a Bus backed by any io.Writer — a serial port, a TCP
// socket, a named pipe, or a file opened for raw writing. It frames
// each WriteData call with the band index most recently announced by
// StartColorBufferTransfer, little-endian, 4 bytes, so a dumb byte
// pipe on the other end can recover band boundaries without any
// out-of-band signalling. This mirrors machine_bus.go's use of
// encoding/binary.LittleEndian for every wire-visible field.
type Serial struct {
	w    io.Writer
	band uint32

	// ReadyFunc polls hardware readiness. nil means "always ready",
	// which is correct for a transport whose Write blocks until the
	// bytes are actually on the wire (true of most io.Writer-backed
	// byte pipes).
	ReadyFunc func() bool

	// Logger receives one line per failed write. Nil disables logging;
	// the hot path never logs on success.
	Logger *log.Logger

	lastErr error
}

// NewSerial wraps w as a Bus.
func NewSerial(w io.Writer) *Serial {
	return &Serial{w: w}
}

func (s *Serial) ClearToSend() bool {
	if s.ReadyFunc != nil {
		return s.ReadyFunc()
	}
	return true
}

func (s *Serial) StartColorBufferTransfer(bandIndex uint32) {
	s.band = bandIndex
}

func (s *Serial) WriteData(data []byte) {
	var header [4]byte
	binary.LittleEndian.PutUint32(header[:], s.band)

	if _, err := s.w.Write(header[:]); err != nil {
		s.fail("write band header", err)
		return
	}
	if _, err := s.w.Write(data); err != nil {
		s.fail("write band payload", err)
		return
	}
}

// LastErr returns the most recent write error, if any. The Bus
// interface itself has no error channel (the driver treats the bus as
// infallible per spec.md's non-goals), so callers that care about
// transport health poll this out-of-band.
func (s *Serial) LastErr() error { return s.lastErr }

func (s *Serial) fail(op string, err error) {
	s.lastErr = err
	if s.Logger != nil {
		s.Logger.Printf("tilegpu: bus %s failed: %v", op, err)
	}
}
