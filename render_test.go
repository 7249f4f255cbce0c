package termgrid

import (
	"bytes"
	"strings"
	"testing"
)

func TestPresentDiffScenario(t *testing.T) {
	// Mirrors spec.md §8 scenario 6: a 3x1 grid filled with 'a', presented,
	// then (1,0) changed to 'b' and presented again. The second present's
	// output, stripped of SGR and cursor-show, equals CSI 1;2 H then 'b'.
	front := newCellBuffer(3, 1)
	back := newCellBuffer(3, 1)
	for i := 0; i < 3; i++ {
		back.set(i, 0, 'a', 0, 0)
	}

	r := newRenderer(xtermCaps, OutputNormal)
	out := newByteBuffer(256)
	r.present(out, front, back, -1, -1)

	out.Reset()
	back.set(1, 0, 'b', 0, 0)
	r.present(out, front, back, -1, -1)

	stripped := stripSGR(string(out.Bytes()))
	if stripped != "\x1b[1;2Hb" {
		t.Fatalf("got %q", stripped)
	}
}

// stripSGR removes every escape sequence from s except a CSI cursor-
// position command (one ending in 'H'), for asserting on present's
// output modulo style/cursor-show noise.
func stripSGR(s string) string {
	var b strings.Builder
	i := 0
	for i < len(s) {
		if s[i] != 0x1b {
			b.WriteByte(s[i])
			i++
			continue
		}
		if i+1 < len(s) && s[i+1] == '[' {
			j := i + 2
			for j < len(s) && !isFinalByte(s[j]) {
				j++
			}
			if j < len(s) && s[j] == 'H' {
				b.WriteString(s[i : j+1])
			}
			i = j + 1
			continue
		}
		// A charset designation such as "\x1b(B" (xterm's sgr0 prefix) is
		// three bytes; any other non-CSI escape is taken as two.
		if i+1 < len(s) && s[i+1] == '(' {
			i += 3
			continue
		}
		i += 2
	}
	return b.String()
}

func isFinalByte(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func TestPresentIdempotent(t *testing.T) {
	front := newCellBuffer(5, 2)
	back := newCellBuffer(5, 2)
	for y := 0; y < 2; y++ {
		for x := 0; x < 5; x++ {
			back.set(x, y, 'x', 0, 0)
		}
	}

	r := newRenderer(xtermCaps, OutputNormal)
	out := newByteBuffer(256)
	r.present(out, front, back, -1, -1)
	if out.Len() == 0 {
		t.Fatal("expected the first present to emit something")
	}

	out.Reset()
	r.present(out, front, back, -1, -1)
	if out.Len() != 0 {
		t.Fatalf("second present on an unchanged grid should emit nothing, got %q", out.Bytes())
	}
}

func TestPresentCursorNoOpWhenHidden(t *testing.T) {
	front := newCellBuffer(2, 1)
	back := newCellBuffer(2, 1)
	r := newRenderer(xtermCaps, OutputNormal)
	out := newByteBuffer(64)
	r.present(out, front, back, -1, -1)
	if bytes.Contains(out.Bytes(), []byte("H")) {
		t.Fatalf("expected no cursor-position sequence for a hidden cursor, got %q", out.Bytes())
	}
}

func TestWriteSGRNormalModeDefault(t *testing.T) {
	r := newRenderer(xtermCaps, OutputNormal)
	out := newByteBuffer(64)
	r.out = out
	r.writeAttr(0, 0)
	// A zero fg/bg in normal mode means default on both sides: sgr0 is
	// still emitted, but no numeric color SGR follows.
	if bytes.Contains(out.Bytes(), []byte("[3")) || bytes.Contains(out.Bytes(), []byte("[4")) {
		t.Fatalf("expected no color SGR for default fg/bg, got %q", out.Bytes())
	}
}

func TestWriteSGRSkipsWhenUnchanged(t *testing.T) {
	r := newRenderer(xtermCaps, OutputNormal)
	out := newByteBuffer(64)
	r.out = out
	r.writeAttr(3, 4)
	firstLen := out.Len()
	r.writeAttr(3, 4)
	if out.Len() != firstLen {
		t.Fatalf("expected writeAttr to be a no-op when fg/bg are unchanged")
	}
}
