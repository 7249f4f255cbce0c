package termgrid

import (
	"bytes"
	"errors"
	"testing"
)

func TestByteBufferAppend(t *testing.T) {
	b := newByteBuffer(4)
	b.AppendString("ab")
	b.AppendByte('c')
	b.AppendBytes([]byte("de"))
	if got := string(b.Bytes()); got != "abcde" {
		t.Fatalf("got %q", got)
	}
}

func TestByteBufferShiftHead(t *testing.T) {
	b := newByteBuffer(8)
	b.AppendString("hello world")

	b.ShiftHead(6)
	if got := string(b.Bytes()); got != "world" {
		t.Fatalf("got %q", got)
	}

	b.ShiftHead(100)
	if b.Len() != 0 {
		t.Fatalf("expected empty buffer, got %d bytes", b.Len())
	}

	b.ShiftHead(0)
	if b.Len() != 0 {
		t.Fatalf("shift of 0 on empty buffer should be a no-op")
	}
}

type fakeWriter struct {
	buf     bytes.Buffer
	short   bool
	failErr error
}

func (w *fakeWriter) Write(p []byte) (int, error) {
	if w.failErr != nil {
		return 0, w.failErr
	}
	if w.short {
		return len(p) - 1, nil
	}
	return w.buf.Write(p)
}

func TestByteBufferFlush(t *testing.T) {
	b := newByteBuffer(8)
	b.AppendString("payload")

	w := &fakeWriter{}
	if err := b.Flush(w); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.buf.String() != "payload" {
		t.Fatalf("got %q", w.buf.String())
	}
	if b.Len() != 0 {
		t.Fatalf("flush should empty the buffer")
	}
}

func TestByteBufferFlushShortWrite(t *testing.T) {
	b := newByteBuffer(8)
	b.AppendString("payload")

	err := b.Flush(&fakeWriter{short: true})
	if err == nil {
		t.Fatal("expected an error on short write")
	}
	var terr *Error
	if !errors.As(err, &terr) || terr.Kind != KindRead {
		t.Fatalf("expected KindRead, got %v", err)
	}
}

func TestByteBufferFlushEmpty(t *testing.T) {
	b := newByteBuffer(8)
	if err := b.Flush(&fakeWriter{failErr: errors.New("should not be called")}); err != nil {
		t.Fatalf("flushing an empty buffer should not write: %v", err)
	}
}
