package termgrid

import (
	"os"
	"time"
)

// afterMs returns a channel that closes after ms milliseconds, standing
// in for spec.md §5's bounded select/poll timeout.
func afterMs(ms int) <-chan struct{} {
	c := make(chan struct{})
	go func() {
		time.Sleep(time.Duration(ms) * time.Millisecond)
		close(c)
	}()
	return c
}

// ttyReader runs a single goroutine that blocks in Read on the tty
// descriptor and forwards whatever bytes arrive to chunks, mirroring the
// teacher's "single reader goroutine feeding a channel" shape
// (tui/input.go's StartInput) generalized so the actual decoding still
// happens synchronously in the caller's PeekEvent/PollEvent, keeping the
// state machine itself single-threaded per spec.md §5.
type ttyReader struct {
	chunks chan []byte
	errs   chan error
	done   chan struct{}
}

func startTTYReader(f *os.File) *ttyReader {
	r := &ttyReader{
		chunks: make(chan []byte),
		errs:   make(chan error, 1),
		done:   make(chan struct{}),
	}
	go r.run(f)
	return r
}

func (r *ttyReader) run(f *os.File) {
	buf := make([]byte, 4096)
	for {
		n, err := f.Read(buf)
		if n > 0 {
			chunk := make([]byte, n)
			copy(chunk, buf[:n])
			select {
			case r.chunks <- chunk:
			case <-r.done:
				return
			}
		}
		if err != nil {
			select {
			case r.errs <- err:
			case <-r.done:
			}
			return
		}
	}
}

func (r *ttyReader) stop() {
	close(r.done)
}

// PollEvent blocks until an event, a resize, or a real error occurs.
func (s *Session) PollEvent() (Event, error) {
	return s.peekEvent(-1)
}

// PeekEvent waits at most timeoutMs milliseconds for an event; on timeout
// it returns ErrNoEvent.
func (s *Session) PeekEvent(timeoutMs int) (Event, error) {
	return s.peekEvent(timeoutMs)
}

func (s *Session) peekEvent(timeoutMs int) (Event, error) {
	if err := s.mustInit(); err != nil {
		return Event{}, err
	}

	if ev, ok, err := s.tryDecode(); ok || err != nil {
		return ev, err
	}

	var timeout <-chan struct{}
	if timeoutMs >= 0 {
		timeout = afterMs(timeoutMs)
	}

	for {
		select {
		case chunk, ok := <-s.reader.chunks:
			if !ok {
				return Event{}, newErr(KindRead, nil)
			}
			s.in.AppendBytes(chunk)
			if ev, ok, err := s.tryDecode(); ok || err != nil {
				return ev, err
			}
		case err := <-s.reader.errs:
			s.lastErr = err
			return Event{}, newErr(KindRead, err)
		case <-s.resize.C:
			if err := s.resizeBuffers(); err != nil {
				s.lastErr = err
				return Event{}, err
			}
			return Event{Type: EventResize, W: s.back.Width, H: s.back.Height}, nil
		case <-timeout:
			return Event{}, ErrNoEvent
		}
	}
}

// tryDecode attempts to extract a single event from the buffered input
// without blocking; ok is false when the buffer is empty or only a
// prefix, in which case the caller should wait for more bytes.
func (s *Session) tryDecode() (Event, bool, error) {
	if s.in.Len() == 0 {
		return Event{}, false, nil
	}
	ev, n, res := s.dec.extract(s.in.Bytes())
	switch res {
	case oneEvent:
		s.in.ShiftHead(n)
		return ev, true, nil
	case needMore:
		return Event{}, false, nil
	default:
		// noMatch with a non-empty buffer can only happen if extract saw a
		// single stray byte it declined to classify; shift it off so the
		// decoder doesn't spin on it forever.
		s.in.ShiftHead(1)
		return Event{}, false, nil
	}
}
