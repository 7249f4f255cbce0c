package termgrid

import "testing"

func TestDecodeRawEcho(t *testing.T) {
	d := newDecoder(InputEsc, newTrieRoot())
	ev, n, res := d.extract([]byte("A"))
	if res != oneEvent || n != 1 {
		t.Fatalf("got n=%d res=%v", n, res)
	}
	if ev.Type != EventKey || ev.Ch != 'A' || ev.Key != 0 || ev.Mod != 0 {
		t.Fatalf("got %+v", ev)
	}
}

func TestDecodeCtrlA(t *testing.T) {
	d := newDecoder(InputEsc, newTrieRoot())
	ev, n, res := d.extract([]byte("\x01"))
	if res != oneEvent || n != 1 {
		t.Fatalf("got n=%d res=%v", n, res)
	}
	if ev.Key != KeyCtrlA || ev.Mod != ModCtrl || ev.Ch != 0 {
		t.Fatalf("got %+v", ev)
	}
}

func TestDecodeAltA(t *testing.T) {
	d := newDecoder(InputAlt, newTrieRoot())
	ev, n, res := d.extract([]byte("\x1bA"))
	if res != oneEvent || n != 2 {
		t.Fatalf("got n=%d res=%v", n, res)
	}
	if ev.Ch != 'A' || ev.Mod != ModAlt {
		t.Fatalf("got %+v", ev)
	}
}

func TestDecodeEscModeSplitsEscThenRune(t *testing.T) {
	d := newDecoder(InputEsc, newTrieRoot())

	ev1, n1, res1 := d.extract([]byte("\x1bA"))
	if res1 != oneEvent || n1 != 1 || ev1.Key != KeyEsc {
		t.Fatalf("first event: n=%d res=%v ev=%+v", n1, res1, ev1)
	}

	ev2, n2, res2 := d.extract([]byte("A"))
	if res2 != oneEvent || n2 != 1 || ev2.Ch != 'A' {
		t.Fatalf("second event: n=%d res=%v ev=%+v", n2, res2, ev2)
	}
}

func TestDecodeF1Xterm(t *testing.T) {
	trie, err := newDefaultTrie(xtermCaps)
	if err != nil {
		t.Fatalf("newDefaultTrie: %v", err)
	}
	d := newDecoder(InputEsc, trie)

	ev, n, res := d.extract([]byte("\x1bOP"))
	if res != oneEvent || n != 3 {
		t.Fatalf("got n=%d res=%v", n, res)
	}
	if ev.Key != KeyF1 || ev.Mod != 0 {
		t.Fatalf("got %+v", ev)
	}
}

func TestDecodeEscNeedsMoreOnPartialTrieMatch(t *testing.T) {
	trie, err := newDefaultTrie(xtermCaps)
	if err != nil {
		t.Fatalf("newDefaultTrie: %v", err)
	}
	d := newDecoder(InputEsc, trie)

	_, _, res := d.extract([]byte("\x1bO"))
	if res != needMore {
		t.Fatalf("expected needMore for a partial F1/Home/End prefix, got %v", res)
	}
}

func TestDecodeMouseThroughExtract(t *testing.T) {
	trie, err := newDefaultTrie(xtermCaps)
	if err != nil {
		t.Fatalf("newDefaultTrie: %v", err)
	}
	d := newDecoder(InputEsc|InputMouse, trie)

	ev, n, res := d.extract([]byte("\x1b[<0;11;6M"))
	if res != oneEvent || n != len("\x1b[<0;11;6M") {
		t.Fatalf("got n=%d res=%v", n, res)
	}
	if ev.Type != EventMouse || ev.Key != KeyMouseLeft || ev.X != 10 || ev.Y != 5 {
		t.Fatalf("got %+v", ev)
	}
}

func TestDecodeEmptyBufferIsNoMatch(t *testing.T) {
	d := newDecoder(InputEsc, newTrieRoot())
	_, _, res := d.extract(nil)
	if res != noMatch {
		t.Fatalf("expected noMatch for an empty buffer, got %v", res)
	}
}

func TestDecodeUTF8RoundTrip(t *testing.T) {
	d := newDecoder(InputEsc, newTrieRoot())
	// "é" (U+00E9) encodes to two UTF-8 bytes.
	ev, n, res := d.extract([]byte("\xc3\xa9"))
	if res != oneEvent || n != 2 {
		t.Fatalf("got n=%d res=%v", n, res)
	}
	if ev.Ch != 0xe9 {
		t.Fatalf("got rune %U", ev.Ch)
	}
}

func TestDecodeUTF8NeedsMoreBytes(t *testing.T) {
	d := newDecoder(InputEsc, newTrieRoot())
	_, _, res := d.extract([]byte("\xc3"))
	if res != needMore {
		t.Fatalf("expected needMore for a truncated UTF-8 sequence, got %v", res)
	}
}
