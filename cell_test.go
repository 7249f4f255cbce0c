package termgrid

import "testing"

func TestCellBufferSetGet(t *testing.T) {
	b := newCellBuffer(10, 5)
	if len(b.Cells) != 50 {
		t.Fatalf("expected 50 cells, got %d", len(b.Cells))
	}

	if err := b.set(0, 0, 'a', 1, 2); err != nil {
		t.Fatalf("set: %v", err)
	}
	cell, err := b.get(0, 0)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if cell.Ch != 'a' || cell.Fg != 1 || cell.Bg != 2 {
		t.Fatalf("unexpected cell: %+v", cell)
	}
}

func TestCellBufferOutOfBounds(t *testing.T) {
	b := newCellBuffer(3, 3)
	if _, err := b.get(-1, 0); err == nil {
		t.Fatal("expected an out-of-bounds error")
	}
	if _, err := b.get(3, 0); err == nil {
		t.Fatal("expected an out-of-bounds error")
	}
}

func TestCellBufferResizePreservesSubrect(t *testing.T) {
	b := newCellBuffer(10, 10)
	b.set(0, 0, 'x', 0, 0)
	b.set(9, 9, 'y', 0, 0)

	b.resize(5, 5, 0, 0)
	if b.Width != 5 || b.Height != 5 {
		t.Fatalf("resize failed: %dx%d", b.Width, b.Height)
	}
	c, _ := b.get(0, 0)
	if c.Ch != 'x' {
		t.Fatalf("expected preserved cell at (0,0), got %q", c.Ch)
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if x == 0 && y == 0 {
				continue
			}
			// Shrinking keeps the whole new 5x5 grid from the old one,
			// whose untouched cells are still zero-valued.
			c, _ := b.get(x, y)
			if c.Ch != 0 {
				t.Fatalf("expected preserved zero-valued cell at (%d,%d), got %q", x, y, c.Ch)
			}
		}
	}
}

func TestCellBufferResizeClampsToOne(t *testing.T) {
	b := newCellBuffer(10, 10)
	b.resize(0, 0, 0, 0)
	if b.Width != 1 || b.Height != 1 {
		t.Fatalf("expected clamp to 1x1, got %dx%d", b.Width, b.Height)
	}
}

func TestCellEqual(t *testing.T) {
	a := Cell{Ch: 'a', Fg: 1, Bg: 2}
	b := Cell{Ch: 'a', Fg: 1, Bg: 2}
	if !a.equal(b) {
		t.Fatal("identical cells should compare equal")
	}

	b.Fg = 3
	if a.equal(b) {
		t.Fatal("cells differing in fg should not compare equal")
	}
}

func TestCellExtendClusterInvariant(t *testing.T) {
	b := newCellBuffer(3, 1)
	if !graphemeClustersSupported() {
		if err := b.extend(0, 0, 'b'); err == nil {
			t.Fatal("expected an error without grapheme-cluster support")
		}
		return
	}
	b.set(0, 0, 'a', 0, 0)
	if err := b.extend(0, 0, 0x0301); err != nil {
		t.Fatalf("extend: %v", err)
	}
	c, _ := b.get(0, 0)
	if !c.hasCluster() || len(c.Ech) != 2 || c.Ech[0] != 'a' {
		t.Fatalf("expected seeded cluster [a, combining], got %+v", c)
	}
}
