package termgrid

// Cell is one grid position. Ch is the primary code point. When Ech is
// non-empty, it (not Ch) is the rendered content — an ordered extension
// cluster such as a base rune plus combining marks — and Ch is preserved
// only as the cluster's first code point. Fg/Bg are attribute words; see
// attr.go.
type Cell struct {
	Ch  rune
	Fg  Attr
	Bg  Attr
	Ech []rune // len(Ech) > 0 iff this cell carries an extension cluster
}

func blankCell(fg, bg Attr) Cell {
	return Cell{Ch: ' ', Fg: fg, Bg: bg}
}

// invalidCellMarker is not a valid code point (it exceeds Unicode's
// range); it seeds a fresh front buffer after a resize so every back cell
// compares unequal on the next Present, forcing a full repaint.
const invalidCellMarker rune = 0x110000

// hasCluster reports whether this cell's rendered content is Ech rather
// than Ch, per spec.md §3's invariant.
func (c Cell) hasCluster() bool { return len(c.Ech) > 0 }

// equal reports whether two cells render identically — used by Present's
// diff walk. Two cells with different cluster lengths, or differing
// cluster contents, are never equal even if Ch/Fg/Bg match.
func (c Cell) equal(o Cell) bool {
	if c.Fg != o.Fg || c.Bg != o.Bg {
		return false
	}
	if len(c.Ech) != len(o.Ech) {
		return false
	}
	if len(c.Ech) > 0 {
		for i := range c.Ech {
			if c.Ech[i] != o.Ech[i] {
				return false
			}
		}
		return true
	}
	return c.Ch == o.Ch
}

// CellBuffer is a fixed-(width,height) rectangular grid of cells, row
// major. len(Cells) == Width*Height always holds.
type CellBuffer struct {
	Width, Height int
	Cells         []Cell
}

func newCellBuffer(w, h int) *CellBuffer {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return &CellBuffer{Width: w, Height: h, Cells: make([]Cell, w*h)}
}

// clear sets every cell to (' ', fg, bg).
func (b *CellBuffer) clear(fg, bg Attr) {
	blank := blankCell(fg, bg)
	for i := range b.Cells {
		b.Cells[i] = blank
	}
}

// get returns a pointer to the cell at (x,y), or an OUT_OF_BOUNDS error.
func (b *CellBuffer) get(x, y int) (*Cell, error) {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		return nil, newErr(KindOutOfBounds, nil)
	}
	return &b.Cells[y*b.Width+x], nil
}

// resize allocates a new grid, copies the min(old,new) sub-rectangle from
// (0,0), and clears the rest with fg/bg. A no-op when dimensions are
// unchanged. Both dimensions are clamped to at least 1.
func (b *CellBuffer) resize(w, h int, fg, bg Attr) {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	if w == b.Width && h == b.Height {
		return
	}
	blank := blankCell(fg, bg)
	cells := make([]Cell, w*h)
	for i := range cells {
		cells[i] = blank
	}
	minW, minH := w, h
	if b.Width < minW {
		minW = b.Width
	}
	if b.Height < minH {
		minH = b.Height
	}
	for y := 0; y < minH; y++ {
		copy(cells[y*w:y*w+minW], b.Cells[y*b.Width:y*b.Width+minW])
	}
	b.Width, b.Height, b.Cells = w, h, cells
}

// set overwrites the cell at (x,y) with the single code point ch and
// clears any existing cluster. Multi-rune content goes through setCluster.
func (b *CellBuffer) set(x, y int, ch rune, fg, bg Attr) error {
	cell, err := b.get(x, y)
	if err != nil {
		return err
	}
	cell.Ch, cell.Fg, cell.Bg, cell.Ech = ch, fg, bg, nil
	return nil
}

// setCluster overwrites the cell at (x,y) with an explicit extension
// cluster. Requires graphemeClustersSupported(); see cluster.go.
func (b *CellBuffer) setCluster(x, y int, cluster []rune, fg, bg Attr) error {
	if len(cluster) > 1 && !graphemeClustersSupported() {
		return newErr(KindGeneric, errNoGraphemeSupport)
	}
	cell, err := b.get(x, y)
	if err != nil {
		return err
	}
	if len(cluster) <= 1 {
		ch := rune(0)
		if len(cluster) == 1 {
			ch = cluster[0]
		}
		cell.Ch, cell.Fg, cell.Bg, cell.Ech = ch, fg, bg, nil
		return nil
	}
	cell.Ech = append(cell.Ech[:0], cluster...)
	cell.Ch, cell.Fg, cell.Bg = cluster[0], fg, bg
	return nil
}

// extend appends a code point to the cell's extension cluster, seeding it
// from the cell's current Ch if it has none yet. Requires
// graphemeClustersSupported().
func (b *CellBuffer) extend(x, y int, ch rune) error {
	if !graphemeClustersSupported() {
		return newErr(KindGeneric, errNoGraphemeSupport)
	}
	cell, err := b.get(x, y)
	if err != nil {
		return err
	}
	if len(cell.Ech) == 0 {
		cell.Ech = append(cell.Ech[:0], cell.Ch, ch)
	} else {
		cell.Ech = append(cell.Ech, ch)
	}
	return nil
}
