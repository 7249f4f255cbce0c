package termgrid

import "strconv"

// renderer diffs a back buffer against a front buffer and writes the
// minimal control-sequence stream needed to bring the terminal into sync:
// cursor motion is elided when the next cell to draw is immediately right
// of the last one written, and SGR attribute codes are only emitted when
// they change from the previous cell.
type renderer struct {
	caps       termCaps
	mode       OutputMode
	out        *byteBuffer
	lastX      int
	lastY      int
	lastFg     Attr
	lastBg     Attr
	haveStyled bool
}

func newRenderer(caps termCaps, mode OutputMode) *renderer {
	return &renderer{caps: caps, mode: mode, out: newByteBuffer(4096)}
}

// present walks front/back row-major, appending output only for cells that
// differ to out (the session's shared output buffer — not reset here,
// since SetCursor/HideCursor may have already queued bytes into it ahead
// of this present), then positions the real cursor at (cursorX,cursorY)
// — a no-op when either is negative, matching send_cursor_if. Wide cells
// (width > 1) blank their trailing columns in front so a later present
// doesn't see stale content there; a wide cell that doesn't fit in the
// remaining row width is rendered as spaces instead, per spec.md's edge
// case for wide runes at the right margin.
func (r *renderer) present(out *byteBuffer, front, back *CellBuffer, cursorX, cursorY int) {
	r.out = out
	r.lastX, r.lastY = -1, -1

	for y := 0; y < back.Height; y++ {
		for x := 0; x < back.Width; {
			bc := back.Cells[y*back.Width+x]
			fc := front.Cells[y*front.Width+x]
			w := cellWidth(bc)
			if w < 1 {
				w = 1
			}

			if !bc.equal(fc) {
				front.Cells[y*front.Width+x] = bc
				r.writeAttr(bc.Fg, bc.Bg)

				if w > 1 && x >= back.Width-(w-1) {
					for i := x; i < back.Width; i++ {
						r.writeCell(i, y, blankCell(bc.Fg, bc.Bg))
					}
				} else {
					r.writeCell(x, y, bc)
					blank := blankCell(bc.Fg, bc.Bg)
					for i := 1; i < w; i++ {
						front.Cells[y*front.Width+x+i] = blank
					}
				}
			}
			x += w
		}
	}

	r.writeCursor(cursorX, cursorY)
}

// writeCursor positions the real cursor, unless x/y is off-screen (both
// negative, i.e. hidden) — mirroring send_cursor_if's no-op for a
// negative coordinate.
func (r *renderer) writeCursor(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	r.out.AppendString("\x1b[")
	r.out.AppendString(strconv.Itoa(y + 1))
	r.out.AppendByte(';')
	r.out.AppendString(strconv.Itoa(x + 1))
	r.out.AppendByte('H')
}

// writeCell moves the cursor only if this cell isn't immediately after
// the last one written, then emits the cell's rune or cluster.
func (r *renderer) writeCell(x, y int, c Cell) {
	if r.lastX != x-1 || r.lastY != y {
		r.writeCursor(x, y)
	}
	r.lastX, r.lastY = x, y

	if c.hasCluster() {
		for _, ch := range c.Ech {
			r.out.AppendString(renderedRune(ch))
		}
		return
	}
	r.out.AppendString(renderedRune(c.Ch))
}

func renderedRune(ch rune) string {
	if ch == 0 {
		return " "
	}
	return string(ch)
}

// writeAttr emits sgr0 plus the bold/blink/underline/italic/reverse
// capability strings plus a numeric SGR sequence, but only when fg/bg
// differ from the last cell drawn — coalescing runs of identically
// styled cells into a single style change.
func (r *renderer) writeAttr(fg, bg Attr) {
	if !r.haveStyled {
		r.haveStyled = true
	} else if fg == r.lastFg && bg == r.lastBg {
		return
	}
	r.lastFg, r.lastBg = fg, bg

	r.out.AppendString(r.caps[capSgr0])

	var cfg, cbg uint32
	switch r.mode {
	case Output256:
		cfg, cbg = uint32(fg)&0xff, uint32(bg)&0xff
	case Output216:
		cfg, cbg = clampAdd(uint32(fg)&0xff, 216, 0x0f), clampAdd(uint32(bg)&0xff, 216, 0x0f)
	case OutputGrayscale:
		cfg, cbg = clampAdd(uint32(fg)&0xff, 24, 0xe7), clampAdd(uint32(bg)&0xff, 24, 0xe7)
	case OutputTruecolor:
		cfg, cbg = uint32(fg)&0xffffff, uint32(bg)&0xffffff
	default:
		cfg, cbg = uint32(fg)&0x0f, uint32(bg)&0x0f
	}

	attrBold, attrBlink, attrItalic, attrUnderline, attrReverse, attrDefault := AttrBold, AttrBlink, AttrItalic, AttrUnderline, AttrReverse, AttrDefault
	if r.mode == OutputTruecolor {
		attrBold, attrBlink, attrItalic, attrUnderline, attrReverse, attrDefault =
			AttrTruecolorBold, AttrTruecolorBlink, AttrTruecolorItalic, AttrTruecolorUnderline, AttrTruecolorReverse, AttrTruecolorDefault
	}

	// A zero low byte means "default" in normal, 216 and grayscale modes;
	// in 256 and truecolor modes zero is a real color and is emitted.
	fgIsDefault := fg&attrDefault != 0
	bgIsDefault := bg&attrDefault != 0
	if r.mode == OutputNormal || r.mode == Output216 || r.mode == OutputGrayscale {
		if uint32(fg)&0xff == 0 {
			fgIsDefault = true
		}
		if uint32(bg)&0xff == 0 {
			bgIsDefault = true
		}
	}

	if fg&attrBold != 0 {
		r.out.AppendString(r.caps[capBold])
	}
	if fg&attrBlink != 0 {
		r.out.AppendString(r.caps[capBlink])
	}
	if fg&attrUnderline != 0 {
		r.out.AppendString(r.caps[capUnderline])
	}
	if fg&attrItalic != 0 {
		r.out.AppendString(r.caps[capItalic])
	}
	if fg&attrReverse != 0 || bg&attrReverse != 0 {
		r.out.AppendString(r.caps[capReverse])
	}

	r.writeSGR(cfg, cbg, fgIsDefault, bgIsDefault)
}

func clampAdd(v, max, add uint32) uint32 {
	if v > max {
		v = max
	}
	return v + add
}

// writeSGR emits the numeric color-setting escape for the active output
// mode. Normal mode uses the classic 30-37/40-47 palette; 256/216/
// grayscale use the indexed 38;5;n/48;5;n form; truecolor decomposes the
// packed 0xRRGGBB value into 38;2;r;g;b/48;2;r;g;b.
func (r *renderer) writeSGR(cfg, cbg uint32, fgDefault, bgDefault bool) {
	if fgDefault && bgDefault {
		return
	}
	r.out.AppendString("\x1b[")
	switch r.mode {
	case Output256, Output216, OutputGrayscale:
		if !fgDefault {
			r.out.AppendString("38;5;")
			r.out.AppendString(strconv.Itoa(int(cfg)))
			if !bgDefault {
				r.out.AppendByte(';')
			}
		}
		if !bgDefault {
			r.out.AppendString("48;5;")
			r.out.AppendString(strconv.Itoa(int(cbg)))
		}
	case OutputTruecolor:
		if !fgDefault {
			r.out.AppendString("38;2;")
			r.out.AppendString(strconv.Itoa(int(cfg >> 16 & 0xff)))
			r.out.AppendByte(';')
			r.out.AppendString(strconv.Itoa(int(cfg >> 8 & 0xff)))
			r.out.AppendByte(';')
			r.out.AppendString(strconv.Itoa(int(cfg & 0xff)))
			if !bgDefault {
				r.out.AppendByte(';')
			}
		}
		if !bgDefault {
			r.out.AppendString("48;2;")
			r.out.AppendString(strconv.Itoa(int(cbg >> 16 & 0xff)))
			r.out.AppendByte(';')
			r.out.AppendString(strconv.Itoa(int(cbg >> 8 & 0xff)))
			r.out.AppendByte(';')
			r.out.AppendString(strconv.Itoa(int(cbg & 0xff)))
		}
	default:
		if !fgDefault {
			r.out.AppendByte('3')
			r.out.AppendString(strconv.Itoa(int(cfg) - 1))
			if !bgDefault {
				r.out.AppendByte(';')
			}
		}
		if !bgDefault {
			r.out.AppendByte('4')
			r.out.AppendString(strconv.Itoa(int(cbg) - 1))
		}
	}
	r.out.AppendByte('m')
}
