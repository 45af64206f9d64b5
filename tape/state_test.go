package tape

import (
	"fmt"
	"testing"
)

func TestSnapshotRestore(t *testing.T) {
	tp, err := New(byteConfig(4))
	if err != nil {
		t.Fatal(err)
	}
	if err := tp.Write(5); err != nil {
		t.Fatal(err)
	}
	if err := tp.Move(2); err != nil {
		t.Fatal(err)
	}
	saved := tp.Snapshot()

	if err := tp.Replace(make([]int64, 4)); err != nil {
		t.Fatal(err)
	}
	if saved.Cells[0] != 5 {
		t.Fatal("snapshot must not alias")
	}

	if err := tp.Restore(saved); err != nil {
		t.Fatal(err)
	}
	if tp.Pointer() != 2 {
		t.Fatal()
	}
	if str := fmt.Sprint(tp.Cells()); str != "[5 0 0 0]" {
		t.Fatalf("got %s", str)
	}

	saved.Pointer = 4
	if err := tp.Restore(saved); err == nil {
		t.Fatal("should error")
	}
}
