package gfxdriver

import (
	"testing"

	"github.com/bandcaster/tilegpu/displaylist"
)

func TestAppendStreamCommandWritesOpcodeAndArg(t *testing.T) {
	a := displaylist.New(64, 4)
	if !appendStreamCommand(a, regClearDepth, uint16(65535)) {
		t.Fatalf("append should have succeeded")
	}

	op, ok := displaylist.GetNext[Opcode](a)
	if !ok || *op != regClearDepth {
		t.Fatalf("opcode = %v, ok=%v, want %v", op, ok, regClearDepth)
	}
	arg, ok := displaylist.GetNext[uint16](a)
	if !ok || *arg != 65535 {
		t.Fatalf("arg = %v, ok=%v, want 65535", arg, ok)
	}
}

func TestAppendStreamCommandRollsBackOnFailure(t *testing.T) {
	// Room for exactly one aligned uint16 (4-byte alignment), not
	// enough for an opcode plus its argument.
	a := displaylist.New(4, 4)
	before := a.WritePos()

	if appendStreamCommand(a, regClearDepth, uint16(1)) {
		t.Fatalf("append should have failed: arena too small")
	}
	if a.WritePos() != before {
		t.Fatalf("WritePos changed after failed append: got %d, want %d", a.WritePos(), before)
	}
}

func TestAppendStreamCommandLeavesRoomForNextCommand(t *testing.T) {
	a := displaylist.New(16, 4)
	if !appendStreamCommand(a, regClearColor, uint16(0x1234)) {
		t.Fatalf("first append should have succeeded")
	}
	if !appendStreamCommand(a, regClearDepth, uint16(0xFFFF)) {
		t.Fatalf("second append should have succeeded")
	}

	first, _ := displaylist.GetNext[Opcode](a)
	firstArg, _ := displaylist.GetNext[uint16](a)
	second, _ := displaylist.GetNext[Opcode](a)
	secondArg, _ := displaylist.GetNext[uint16](a)

	if *first != regClearColor || *firstArg != 0x1234 {
		t.Fatalf("first command corrupted: op=%v arg=%#x", *first, *firstArg)
	}
	if *second != regClearDepth || *secondArg != 0xFFFF {
		t.Fatalf("second command corrupted: op=%v arg=%#x", *second, *secondArg)
	}
}
