package grid

import "testing"

func TestColumnStacking(t *testing.T) {
	// Two rows of heights 6 and 9: the second starts at y=6, column is 15 tall.
	row1 := NewRow(fixedLeaf(12, 6), fixedLeaf(12, 6))
	row2 := NewRow(fixedLeaf(24, 9))
	col := NewColumn(row1, row2)

	if col.Height() != 15 {
		t.Errorf("column height = %d, want 15", col.Height())
	}
	if col.Width() != 24 {
		t.Errorf("column width = %d, want 24", col.Width())
	}

	out := place(t, col, 0, 0)
	if len(out) != 3 {
		t.Fatalf("expected 3 records, got %d", len(out))
	}
	if out[2].Y != 6 {
		t.Errorf("second row placed at y=%d, want 6", out[2].Y)
	}
}

func TestColumnNoWrapping(t *testing.T) {
	// Columns stack; they never wrap, even past the grid width.
	col := NewColumn(fixedLeaf(10, 2), fixedLeaf(20, 3), fixedLeaf(5, 1))
	out := place(t, col, 0, 0)

	wantY := []int{0, 2, 5}
	for i, p := range out {
		if p.X != 0 {
			t.Errorf("record %d x=%d, want 0", i, p.X)
		}
		if p.Y != wantY[i] {
			t.Errorf("record %d y=%d, want %d", i, p.Y, wantY[i])
		}
	}
	if col.Width() != 20 {
		t.Errorf("column width = %d, want 20 (widest child)", col.Width())
	}
	if col.Height() != 6 {
		t.Errorf("column height = %d, want 6 (sum of children)", col.Height())
	}
}

func TestTraversalOrder(t *testing.T) {
	// A column of two rows with two leaves each flattens in reading order.
	mk := func(typ string) *Leaf {
		return NewLeaf(typ, 12, 4, nil)
	}
	col := NewColumn(
		NewRow(mk("a"), mk("b")),
		NewRow(mk("c"), mk("d")),
	)
	out := place(t, col, 0, 0)

	if len(out) != 4 {
		t.Fatalf("expected 4 records, got %d", len(out))
	}
	want := []string{"a", "b", "c", "d"}
	for i, p := range out {
		if p.Type != want[i] {
			t.Errorf("record %d type = %q, want %q", i, p.Type, want[i])
		}
	}
}

func TestNestedOffsets(t *testing.T) {
	// Leaf coordinates are absolute: column offset + row cursor.
	inner := NewRow(fixedLeaf(10, 4), fixedLeaf(10, 4))
	col := NewColumn(fixedLeaf(24, 3), inner)
	out := place(t, col, 2, 1)

	if out[1].X != 2 || out[1].Y != 4 {
		t.Errorf("nested leaf 1 at (%d,%d), want (2,4)", out[1].X, out[1].Y)
	}
	if out[2].X != 12 || out[2].Y != 4 {
		t.Errorf("nested leaf 2 at (%d,%d), want (12,4)", out[2].X, out[2].Y)
	}
}
