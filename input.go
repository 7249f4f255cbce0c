package termgrid

import "unicode/utf8"

// decoder turns a raw input byte stream into Events. It holds no OS
// resources of its own — Session feeds it bytes read from the terminal
// and drains decoded events from it — which keeps the state machine
// trivially testable against canned byte slices.
type decoder struct {
	mode InputMode
	trie *trieNode
	pre  EscHook
	post EscHook
}

// EscHook lets a caller intercept an escape sequence before (pre) or
// after (post) the built-in capability trie and mouse parsers get a
// chance at it, mirroring termbox.c's fn_extract_esc_pre/post
// extension points. It returns the decoded event, how many bytes of buf
// it consumed, and whether it recognized anything at all.
type EscHook func(buf []byte) (ev Event, consumed int, ok bool)

func newDecoder(mode InputMode, trie *trieNode) *decoder {
	return &decoder{mode: normalizeInputMode(mode), trie: trie}
}

// decodeResult reports what extract found: oneEvent with its event and
// byte count, needMore when buf might be a genuine prefix of a longer
// sequence and the caller should wait for more bytes, or noMatch when
// buf's head cannot start any recognized sequence and the caller should
// fall through to raw-byte handling.
type decodeResult int

const (
	noMatch decodeResult = iota
	needMore
	oneEvent
)

// extract decodes at most one event from the head of buf. It never
// blocks or mutates buf; callers shift their own buffer by the returned
// consumed count on oneEvent.
func (d *decoder) extract(buf []byte) (Event, int, decodeResult) {
	if len(buf) == 0 {
		return Event{}, 0, noMatch
	}

	if buf[0] == 0x1b {
		if !(d.mode&InputEsc != 0 && len(buf) == 1) {
			if ev, n, res := d.extractEsc(buf); res != noMatch {
				return ev, n, res
			}
		}
		if d.mode&InputEsc != 0 {
			return Event{Type: EventKey, Key: KeyEsc}, 1, oneEvent
		}
		// Alt+<key>: consume the ESC, mark ModAlt, and recurse on the rest.
		ev, n, res := d.extract(buf[1:])
		if res == needMore {
			return Event{}, 0, needMore
		}
		if res != oneEvent {
			return Event{}, 0, noMatch
		}
		ev.Mod |= ModAlt
		return ev, n + 1, oneEvent
	}

	if buf[0] < byte(KeySpace) || buf[0] == byte(KeyBackspace2) {
		return Event{Type: EventKey, Key: Key(buf[0]), Mod: ModCtrl}, 1, oneEvent
	}

	if !utf8.FullRune(buf) {
		return Event{}, 0, needMore
	}
	r, size := utf8.DecodeRune(buf)
	return Event{Type: EventKey, Ch: r}, size, oneEvent
}

// extractEsc tries, in order: a caller-supplied pre-hook, the capability
// trie, the mouse parsers, then a caller-supplied post-hook. The first of
// these to produce a definite match (event or need-more) wins.
func (d *decoder) extractEsc(buf []byte) (Event, int, decodeResult) {
	if d.pre != nil {
		if ev, n, ok := d.pre(buf); ok {
			return ev, n, oneEvent
		}
	}

	if d.trie != nil {
		key, mod, consumed, m := d.trie.match(buf)
		switch m {
		case trieMatchFull:
			return Event{Type: EventKey, Key: key, Mod: mod}, consumed, oneEvent
		case trieMatchPrefix:
			return Event{}, 0, needMore
		}
	}

	if d.mode&InputMouse != 0 {
		if ev, n, res := parseMouse(buf); res != noMatch {
			return ev, n, res
		}
	}

	if d.post != nil {
		if ev, n, ok := d.post(buf); ok {
			return ev, n, oneEvent
		}
	}

	return Event{}, 0, noMatch
}
