package termgrid

import (
	"os"

	"golang.org/x/term"
)

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// hardcapEnterMouse/ExitMouse are emitted verbatim, not resolved through
// the capability table — spec.md §6 calls these out as hard-coded rather
// than terminfo-driven.
const (
	hardcapEnterMouse = "\x1b[?1000h\x1b[?1002h\x1b[?1015h\x1b[?1006h"
	hardcapExitMouse  = "\x1b[?1000l\x1b[?1002l\x1b[?1015l\x1b[?1006l"
)

// Session is the single process-wide record described in spec.md §3: it
// owns the tty descriptors, both cell buffers, the input/output byte
// buffers, the resolved capability table and trie, the saved terminal
// state, and the last-emitted renderer coordinates. Init rejects a second
// Init of an already-initialized Session with KindInitAlready; it does not
// check whether some other Session is initialized.
type Session struct {
	rfd, wfd    *os.File
	ownedTTY    *os.File
	state       *termState
	isTTY       bool
	caps        termCaps
	trie        *trieNode
	dec         *decoder
	back, front *CellBuffer
	out         *byteBuffer
	in          *byteBuffer
	renderer    *renderer
	resize      *resizeWatcher
	reader      *ttyReader

	inputMode  InputMode
	outputMode OutputMode
	clearFg    Attr
	clearBg    Attr
	cursorX    int
	cursorY    int

	terminfoLoaded bool
	initialized    bool
	lastErr        error

	preHook, postHook EscHook
}

func newSession() *Session {
	return &Session{cursorX: -1, cursorY: -1, inputMode: InputEsc, outputMode: OutputNormal}
}

// Init opens /dev/tty for both reading and writing and initializes the
// session on it, mirroring tb_init/tb_init_file.
func (s *Session) Init() error {
	return s.InitWithRWFds(nil, nil)
}

// InitWithFd initializes the session using f for both reading and
// writing, mirroring tb_init_fd.
func (s *Session) InitWithFd(f *os.File) error {
	return s.InitWithRWFds(f, f)
}

// InitWithRWFds initializes the session on separate read/write
// descriptors, mirroring tb_init_rwfd. Passing nil for both opens
// /dev/tty and owns the resulting descriptor (closed on Shutdown).
func (s *Session) InitWithRWFds(r, w *os.File) error {
	if s.initialized {
		return newErr(KindInitAlready, nil)
	}

	if r == nil && w == nil {
		tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
		if err != nil {
			s.lastErr = err
			return newErr(KindInitOpen, err)
		}
		s.ownedTTY = tty
		r, w = tty, tty
	}
	s.rfd, s.wfd = r, w
	s.isTTY = r == w && isTerminal(w)

	if s.isTTY {
		state, err := enableRawMode(w)
		if err != nil {
			s.lastErr = err
			return newErr(KindTCSetAttr, err)
		}
		s.state = state
	}

	termName := os.Getenv("TERM")
	if termName == "" {
		s.Shutdown()
		return newErr(KindNoTerm, nil)
	}

	caps, err := loadTerminfo(termName)
	if err == nil {
		s.caps = caps
		s.terminfoLoaded = true
	} else if builtin, ok := builtinCaps(termName); ok {
		s.caps = builtin
	} else {
		s.Shutdown()
		return newErr(KindUnsupportedTerm, nil)
	}

	trie, err := newDefaultTrie(s.caps)
	if err != nil {
		s.Shutdown()
		return err
	}
	s.trie = trie
	s.dec = newDecoder(s.inputMode, s.trie)
	s.dec.pre, s.dec.post = s.preHook, s.postHook

	s.out = newByteBuffer(4096)
	s.in = newByteBuffer(4096)
	s.renderer = newRenderer(s.caps, s.outputMode)

	s.out.AppendString(s.caps[capEnterCA])
	s.out.AppendString(s.caps[capEnterKeypad])
	s.out.AppendString(s.caps[capHideCursor])
	if err := s.out.Flush(s.wfd); err != nil {
		s.lastErr = err
		s.Shutdown()
		return err
	}

	w2, h2, err := s.querySize()
	if err != nil {
		s.lastErr = err
		s.Shutdown()
		return err
	}

	s.back = newCellBuffer(w2, h2)
	s.front = newCellBuffer(w2, h2)
	s.back.clear(s.clearFg, s.clearBg)
	s.front.clear(s.clearFg, s.clearBg)

	s.resize = startResizeWatcher()
	s.reader = startTTYReader(s.rfd)

	s.initialized = true
	return nil
}

// querySize tries TIOCGWINSZ first, falling back to the CPR escape-code
// query on failure, matching update_term_size.
func (s *Session) querySize() (int, int, error) {
	if s.isTTY {
		if w, h, ok := queryWinsize(s.wfd); ok {
			return w, h, nil
		}
	}
	w, h, err := queryWinsizeViaEsc(s.rfd, s.wfd)
	if err != nil {
		return 0, 0, err
	}
	return w, h, nil
}

// Shutdown performs the exact inverse of Init, in inverse order, and
// restores the saved terminal attributes. A session may be re-initialized
// after Shutdown.
func (s *Session) Shutdown() error {
	if s.reader != nil {
		s.reader.stop()
		s.reader = nil
	}
	if s.resize != nil {
		s.resize.stop()
		s.resize = nil
	}

	if s.out != nil && s.wfd != nil {
		s.out.AppendString(s.caps[capShowCursor])
		s.out.AppendString(s.caps[capSgr0])
		s.out.AppendString(s.caps[capClearScreen])
		s.out.AppendString(s.caps[capExitCA])
		s.out.AppendString(s.caps[capExitKeypad])
		s.out.AppendString(hardcapExitMouse)
		if err := s.out.Flush(s.wfd); err != nil {
			s.lastErr = err
		}
	}

	if s.isTTY && s.state != nil {
		if err := disableRawMode(s.wfd, s.state); err != nil {
			s.lastErr = err
		}
	}
	if s.ownedTTY != nil {
		s.ownedTTY.Close()
		s.ownedTTY = nil
	}

	s.back, s.front = nil, nil
	s.out, s.in = nil, nil
	s.trie = nil
	s.dec = nil
	s.caps = termCaps{}
	s.terminfoLoaded = false
	s.initialized = false
	s.state = nil
	s.rfd, s.wfd = nil, nil
	return nil
}

func (s *Session) mustInit() error {
	if !s.initialized {
		return newErr(KindNotInit, nil)
	}
	return nil
}

// Width and Height report the current cell-grid dimensions.
func (s *Session) Width() int {
	if !s.initialized {
		return 0
	}
	return s.back.Width
}

func (s *Session) Height() int {
	if !s.initialized {
		return 0
	}
	return s.back.Height
}

// Clear resets the back buffer to the session's clear color.
func (s *Session) Clear() error {
	if err := s.mustInit(); err != nil {
		return err
	}
	s.back.clear(s.clearFg, s.clearBg)
	return nil
}

// SetClearAttrs sets the (fg,bg) pair Clear and resize use to fill blank
// cells, persisting across calls like termbox.c's global.fg/global.bg.
func (s *Session) SetClearAttrs(fg, bg Attr) {
	s.clearFg, s.clearBg = fg, bg
}

// SetCell overwrites the cell at (x,y) with a single code point.
func (s *Session) SetCell(x, y int, ch rune, fg, bg Attr) error {
	if err := s.mustInit(); err != nil {
		return err
	}
	return s.back.set(x, y, ch, fg, bg)
}

// SetCellEx overwrites the cell at (x,y) with an explicit extension
// cluster; requires grapheme-cluster support for clusters longer than one
// rune.
func (s *Session) SetCellEx(x, y int, cluster []rune, fg, bg Attr) error {
	if err := s.mustInit(); err != nil {
		return err
	}
	return s.back.setCluster(x, y, cluster, fg, bg)
}

// ExtendCell appends a code point to the cell's extension cluster.
func (s *Session) ExtendCell(x, y int, ch rune) error {
	if err := s.mustInit(); err != nil {
		return err
	}
	return s.back.extend(x, y, ch)
}

// SetCursor positions the real terminal cursor, making it visible if it
// was hidden. Negative coordinates are clamped to 0, matching
// tb_set_cursor.
func (s *Session) SetCursor(x, y int) error {
	if err := s.mustInit(); err != nil {
		return err
	}
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	if s.cursorX == -1 {
		s.out.AppendString(s.caps[capShowCursor])
	}
	s.cursorX, s.cursorY = x, y
	return nil
}

// HideCursor hides the real terminal cursor.
func (s *Session) HideCursor() error {
	if err := s.mustInit(); err != nil {
		return err
	}
	if s.cursorX >= 0 {
		s.out.AppendString(s.caps[capHideCursor])
	}
	s.cursorX, s.cursorY = -1, -1
	return nil
}

// Present diffs back against front and flushes the minimal update stream,
// per spec.md §4.6.
func (s *Session) Present() error {
	if err := s.mustInit(); err != nil {
		return err
	}
	s.renderer.present(s.out, s.front, s.back, s.cursorX, s.cursorY)
	if err := s.out.Flush(s.wfd); err != nil {
		s.lastErr = err
		return err
	}
	return nil
}

// SetInputMode updates the decoder's mode bits, applying the esc/alt
// mutual-exclusion and esc-forced-by-default rules of spec.md §6. Passing
// InputMouse toggles mouse reporting and emits the hard-coded enable/
// disable sequence accordingly.
func (s *Session) SetInputMode(mode InputMode) error {
	if err := s.mustInit(); err != nil {
		return err
	}
	mode = normalizeInputMode(mode)
	wasMouse := s.inputMode&InputMouse != 0
	nowMouse := mode&InputMouse != 0
	if nowMouse && !wasMouse {
		s.out.AppendString(hardcapEnterMouse)
	} else if !nowMouse && wasMouse {
		s.out.AppendString(hardcapExitMouse)
	}
	s.inputMode = mode
	s.dec = newDecoder(mode, s.trie)
	s.dec.pre, s.dec.post = s.preHook, s.postHook
	if err := s.out.Flush(s.wfd); err != nil {
		s.lastErr = err
		return err
	}
	return nil
}

// SetOutputMode updates the color-emission scheme used by Present.
func (s *Session) SetOutputMode(mode OutputMode) error {
	if err := s.mustInit(); err != nil {
		return err
	}
	if mode == OutputCurrent {
		return nil
	}
	s.outputMode = mode
	s.renderer = newRenderer(s.caps, mode)
	return nil
}

// SetFunc installs a pre- or post- escape-sequence extraction hook,
// mirroring tb_set_func's pre/post extension points.
func (s *Session) SetFunc(post bool, fn EscHook) {
	if post {
		s.postHook = fn
	} else {
		s.preHook = fn
	}
	if s.dec != nil {
		s.dec.pre, s.dec.post = s.preHook, s.postHook
	}
}

// CellBuffer exposes the back buffer directly, for callers that want
// tb_cell_buffer-style bulk access.
func (s *Session) CellBuffer() *CellBuffer {
	return s.back
}

// GetFds returns the tty descriptor (for select/poll-based callers) and
// the resize-notification channel.
func (s *Session) GetFds() (*os.File, <-chan struct{}) {
	var resizeC <-chan struct{}
	if s.resize != nil {
		resizeC = s.resize.C
	}
	return s.rfd, resizeC
}

// LastErrno returns the OS error latched by the most recent failing
// syscall, or nil.
func (s *Session) LastErrno() error {
	return s.lastErr
}

// HasTruecolor reports whether OutputTruecolor is available to this
// build (it always is — the 32-bit attribute packing is unconditional
// per attr.go's doc comment).
func (s *Session) HasTruecolor() bool { return true }

// HasGraphemeClusters reports whether this build was compiled with
// grapheme-cluster support (the grapheme build tag).
func (s *Session) HasGraphemeClusters() bool { return graphemeClustersSupported() }

// Version returns the module's version string.
func Version() string { return "termgrid 0" }

// Print writes str starting at (x,y), advancing one cell per rendered
// width unit (using grapheme clusters when compiled in), and returns the
// total width written.
func (s *Session) Print(x, y int, fg, bg Attr, str string) (int, error) {
	if err := s.mustInit(); err != nil {
		return 0, err
	}
	col := x
	total := 0
	for _, cluster := range splitClusters(str) {
		var err error
		if len(cluster) > 1 {
			err = s.back.setCluster(col, y, cluster, fg, bg)
		} else if len(cluster) == 1 {
			err = s.back.set(col, y, cluster[0], fg, bg)
		}
		if err != nil {
			return total, err
		}
		w := cellWidth(Cell{Ch: firstRune(cluster), Ech: clusterEch(cluster)})
		if w < 1 {
			w = 1
		}
		col += w
		total += w
	}
	return total, nil
}

func firstRune(cluster []rune) rune {
	if len(cluster) == 0 {
		return 0
	}
	return cluster[0]
}

func clusterEch(cluster []rune) []rune {
	if len(cluster) > 1 {
		return cluster
	}
	return nil
}

// SendRaw writes bytes directly to the output buffer without going
// through the cell grid, for callers that need to emit a capability or
// escape sequence the library doesn't model.
func (s *Session) SendRaw(p []byte) error {
	if err := s.mustInit(); err != nil {
		return err
	}
	s.out.AppendBytes(p)
	return nil
}

// resizeBuffers re-queries the terminal size, resizes the back buffer
// preserving the top-left sub-rectangle, replaces the front buffer with
// one whose every cell holds invalidCellMarker so the next Present is a
// full redraw, and re-queues the clear-screen
// sequence — mirroring the resize path described in spec.md §4.8.
func (s *Session) resizeBuffers() error {
	w, h, err := s.querySize()
	if err != nil {
		return err
	}
	s.back.resize(w, h, s.clearFg, s.clearBg)
	// front is not content-preserved on resize: it is rebuilt as a fresh
	// grid one tick "behind" a marker value so the next Present treats
	// every cell as changed, even ones back happens to share with the
	// terminal's actual prior contents.
	s.front = newCellBuffer(w, h)
	for i := range s.front.Cells {
		s.front.Cells[i] = Cell{Ch: invalidCellMarker}
	}
	s.out.AppendString(s.caps[capSgr0])
	s.out.AppendString(s.caps[capClearScreen])
	return nil
}
