//go:build unix

package termgrid

import (
	"os"
	"strconv"
	"time"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// termState wraps the saved termios so Shutdown can restore it, in the
// teacher's tui/term.go style (a thin rename of term.State rather than
// hand-rolling termios save/restore over golang.org/x/sys/unix directly).
type termState struct {
	state *term.State
}

// enableRawMode switches f into raw mode (cfmakeraw-equivalent, VMIN=1
// VTIME=0) and returns the prior state for restoration.
func enableRawMode(f *os.File) (*termState, error) {
	old, err := term.MakeRaw(int(f.Fd()))
	if err != nil {
		return nil, err
	}
	return &termState{state: old}, nil
}

func disableRawMode(f *os.File, s *termState) error {
	if s == nil || s.state == nil {
		return nil
	}
	return term.Restore(int(f.Fd()), s.state)
}

// queryWinsize attempts TIOCGWINSZ on f; ok is false when f isn't a tty or
// the ioctl fails, in which case the caller should fall back to the CPR
// escape-sequence query.
func queryWinsize(f *os.File) (w, h int, ok bool) {
	ws, err := unix.IoctlGetWinsize(int(f.Fd()), unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 || ws.Row == 0 {
		return 0, 0, false
	}
	return int(ws.Col), int(ws.Row), true
}

// queryWinsizeViaEsc is the ioctl-failure fallback: move the cursor to
// (9999,9999) — past any real terminal's bottom-right corner — request a
// cursor position report, and parse the "\x1b[row;colR" reply with a
// bounded read timeout. A short read here is a final failure, not
// retried, per spec.md §9's explicit open-question resolution.
func queryWinsizeViaEsc(r, w *os.File) (width, height int, err error) {
	const query = "\x1b[9999;9999H\x1b[6n"
	n, werr := w.Write([]byte(query))
	if werr != nil || n != len(query) {
		return 0, 0, newErr(KindResizeWrite, werr)
	}

	if err := w.SetReadDeadline(time.Now().Add(time.Second)); err == nil {
		defer w.SetReadDeadline(time.Time{})
	}
	if err := r.SetReadDeadline(time.Now().Add(time.Second)); err != nil {
		return 0, 0, newErr(KindResizePoll, err)
	}
	defer r.SetReadDeadline(time.Time{})

	buf := make([]byte, 64)
	n, rerr := r.Read(buf)
	if n < 1 {
		return 0, 0, newErr(KindResizeRead, rerr)
	}

	rh, rw, ok := parseCPR(buf[:n])
	if !ok {
		return 0, 0, newErr(KindResizeSscanf, nil)
	}
	return rw, rh, nil
}

// parseCPR extracts row/col from a "\x1b[row;colR" cursor position report,
// tolerating any leading bytes (some terminals interleave other input
// ahead of the reply).
func parseCPR(buf []byte) (row, col int, ok bool) {
	idx := -1
	for i := 0; i+1 < len(buf); i++ {
		if buf[i] == 0x1b && buf[i+1] == '[' {
			idx = i + 2
		}
	}
	if idx < 0 {
		return 0, 0, false
	}
	semi := -1
	end := -1
	for i := idx; i < len(buf); i++ {
		switch buf[i] {
		case ';':
			if semi == -1 {
				semi = i
			}
		case 'R':
			end = i
		}
		if end >= 0 {
			break
		}
	}
	if semi < 0 || end < 0 || semi >= end {
		return 0, 0, false
	}
	row, err1 := strconv.Atoi(string(buf[idx:semi]))
	col, err2 := strconv.Atoi(string(buf[semi+1 : end]))
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	return row, col, true
}
