package displaylist

import "testing"

type testRecord struct {
	A uint32
	B uint32
}

func TestCreateGetNextRoundTrip(t *testing.T) {
	a := New(64, 4)

	rec, ok := Create[testRecord](a)
	if !ok {
		t.Fatal("Create failed on fresh arena")
	}
	rec.A, rec.B = 1, 2

	got, ok := GetNext[testRecord](a)
	if !ok {
		t.Fatal("GetNext failed to read back the record just written")
	}
	if got.A != 1 || got.B != 2 {
		t.Errorf("got {%d,%d}, want {1,2}", got.A, got.B)
	}
	if !a.AtEnd() {
		t.Error("expected AtEnd after reading the only record")
	}
}

func TestRemoveRollsBackWritePos(t *testing.T) {
	a := New(64, 4)
	preWrite := a.WritePos()
	preFree := a.FreeSpace()

	if _, ok := Create[testRecord](a); !ok {
		t.Fatal("Create failed")
	}
	Remove[testRecord](a)

	if a.WritePos() != preWrite {
		t.Errorf("write_pos = %d, want %d", a.WritePos(), preWrite)
	}
	if a.FreeSpace() != preFree {
		t.Errorf("free_space = %d, want %d", a.FreeSpace(), preFree)
	}
}

func TestCreateFailsWhenFull(t *testing.T) {
	a := New(8, 4)
	if _, ok := Create[testRecord](a); !ok {
		t.Fatal("first Create should fit exactly")
	}
	if _, ok := Create[testRecord](a); ok {
		t.Fatal("second Create should fail: arena is full")
	}
	if a.WritePos() != 8 {
		t.Errorf("write_pos = %d, want 8 (failed Create must not move it)", a.WritePos())
	}
}

func TestAlignmentPadsRecordSize(t *testing.T) {
	a := New(64, 8)
	type small struct{ X uint16 }
	if SizeOf[small](a) != 8 {
		t.Errorf("SizeOf(small) = %d, want 8 (rounded up to align)", SizeOf[small](a))
	}
}

func TestResetReadRewindsOnly(t *testing.T) {
	a := New(64, 4)
	Create[testRecord](a)
	Create[testRecord](a)
	GetNext[testRecord](a)

	a.ResetRead()
	if a.ReadPos() != 0 {
		t.Errorf("ReadPos = %d, want 0", a.ReadPos())
	}
	if a.WritePos() != 16 {
		t.Errorf("WritePos = %d, want 16 (ResetRead must not touch writes)", a.WritePos())
	}
}

func TestClearResetsEverything(t *testing.T) {
	a := New(64, 4)
	Create[testRecord](a)
	a.Enqueue()
	a.Clear()

	if a.WritePos() != 0 || a.ReadPos() != 0 {
		t.Errorf("Clear left nonzero cursors: write=%d read=%d", a.WritePos(), a.ReadPos())
	}
	if a.GetState() != Free {
		t.Errorf("Clear left state %v, want Free", a.GetState())
	}
}

func TestEnqueueTransferLifecycle(t *testing.T) {
	a := New(64, 4)
	if a.GetState() != Free {
		t.Fatal("new arena must start Free")
	}
	if !a.Enqueue() {
		t.Fatal("Enqueue from Free must succeed")
	}
	if a.Enqueue() {
		t.Fatal("Enqueue from Queued must fail")
	}
	if !a.Transfer() {
		t.Fatal("Transfer from Queued must succeed")
	}
	if a.Transfer() {
		t.Fatal("Transfer from Transferring must fail")
	}
}

func TestGetNextStopsAtWritePos(t *testing.T) {
	a := New(64, 4)
	Create[testRecord](a)
	if _, ok := GetNext[testRecord](a); !ok {
		t.Fatal("expected one record")
	}
	if _, ok := GetNext[testRecord](a); ok {
		t.Fatal("GetNext past write_pos must fail")
	}
}
