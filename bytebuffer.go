package termgrid

// byteBuffer is a growable append-only byte sink with amortized-doubling
// growth, a ShiftHead operation to discard a consumed prefix, and a Flush
// that writes its entire contents to an fd in one syscall. Modeled
// directly on termbox.c's bytebuf_t; a bufio.Writer doesn't expose the
// shift-from-head primitive the input buffer needs, so this module keeps a
// small dedicated type rather than two different buffering strategies for
// input and output.
type byteBuffer struct {
	buf []byte
}

func newByteBuffer(capHint int) *byteBuffer {
	return &byteBuffer{buf: make([]byte, 0, capHint)}
}

func (b *byteBuffer) Len() int { return len(b.buf) }

func (b *byteBuffer) Bytes() []byte { return b.buf }

// AppendBytes appends raw bytes, growing the backing array by doubling.
func (b *byteBuffer) AppendBytes(p []byte) {
	b.buf = append(b.buf, p...)
}

// AppendString appends a string's bytes.
func (b *byteBuffer) AppendString(s string) {
	b.buf = append(b.buf, s...)
}

// AppendByte appends a single byte.
func (b *byteBuffer) AppendByte(c byte) {
	b.buf = append(b.buf, c)
}

// ShiftHead discards the first n bytes (clamped to the current length) and
// moves the remainder to the start.
func (b *byteBuffer) ShiftHead(n int) {
	if n <= 0 {
		return
	}
	if n >= len(b.buf) {
		b.buf = b.buf[:0]
		return
	}
	copy(b.buf, b.buf[n:])
	b.buf = b.buf[:len(b.buf)-n]
}

// Reset empties the buffer without releasing its backing array.
func (b *byteBuffer) Reset() {
	b.buf = b.buf[:0]
}

// writer is the minimal interface Flush needs; satisfied by *os.File and
// any io.Writer whose Write either writes everything or fails, matching
// spec.md §4.1's "partial writes are treated as failure" contract.
type writer interface {
	Write(p []byte) (int, error)
}

// Flush writes the whole current length to w in one Write call. A short
// write is treated as failure, per spec.md §4.1. On success the buffer is
// emptied.
func (b *byteBuffer) Flush(w writer) error {
	if len(b.buf) == 0 {
		return nil
	}
	n, err := w.Write(b.buf)
	if err != nil {
		return newErr(KindRead, err)
	}
	if n != len(b.buf) {
		return newErr(KindRead, errShortWrite)
	}
	b.Reset()
	return nil
}
