package termgrid

import "testing"

func TestTrieMatchFull(t *testing.T) {
	root := newTrieRoot()
	root.insert("\x1bOP", KeyF1, 0)

	key, mod, n, m := root.match([]byte("\x1bOP"))
	if m != trieMatchFull {
		t.Fatalf("expected trieMatchFull, got %v", m)
	}
	if key != KeyF1 || mod != 0 || n != 3 {
		t.Fatalf("got key=%v mod=%v n=%d", key, mod, n)
	}
}

func TestTrieMatchPrefix(t *testing.T) {
	root := newTrieRoot()
	root.insert("\x1bOP", KeyF1, 0)

	_, _, _, m := root.match([]byte("\x1bO"))
	if m != trieMatchPrefix {
		t.Fatalf("expected trieMatchPrefix, got %v", m)
	}
}

func TestTrieNoMatch(t *testing.T) {
	root := newTrieRoot()
	root.insert("\x1bOP", KeyF1, 0)

	_, _, _, m := root.match([]byte("x"))
	if m != trieNoMatch {
		t.Fatalf("expected trieNoMatch, got %v", m)
	}
}

func TestTrieLongestLeafWins(t *testing.T) {
	root := newTrieRoot()
	// "\x1b[1" is a leaf on the path of "\x1b[1;2A"; the deeper leaf wins.
	root.insert("\x1b[1", KeyHome, 0)
	root.insert("\x1b[1;2A", KeyArrowUp, ModShift)

	key, mod, n, m := root.match([]byte("\x1b[1;2A"))
	if m != trieMatchFull || key != KeyArrowUp || mod != ModShift || n != 6 {
		t.Fatalf("got key=%v mod=%v n=%d m=%v", key, mod, n, m)
	}
}

func TestTrieFirstInsertWinsOnCollision(t *testing.T) {
	root := newTrieRoot()
	if collided := root.insert("\x1bOP", KeyF1, 0); collided {
		t.Fatal("expected no collision on the first insertion")
	}
	if collided := root.insert("\x1bOP", KeyF2, ModAlt); !collided {
		t.Fatal("expected the second insertion of the same sequence to report a collision")
	}

	key, mod, _, m := root.match([]byte("\x1bOP"))
	if m != trieMatchFull || key != KeyF1 || mod != 0 {
		t.Fatalf("expected the first insertion to win, got key=%v mod=%v", key, mod)
	}
}

func TestNewDefaultTrieRejectsStoreCollision(t *testing.T) {
	caps := xtermCaps
	// Give two distinct store capabilities the exact same sequence so
	// phase one's own insertions collide with each other.
	caps[capF2] = caps[capF1]
	if _, err := newDefaultTrie(caps); err == nil {
		t.Fatal("expected a collision within the store's own capabilities to be fatal")
	}
}

func TestNewDefaultTrieTreatsModCapCollisionAsOK(t *testing.T) {
	// builtinModCaps includes "\x1bOA" for ctrl-arrowUp; xtermCaps' own
	// capArrowUp is also "\x1bOA". The store's insertion must win and the
	// overall build must still succeed.
	trie, err := newDefaultTrie(xtermCaps)
	if err != nil {
		t.Fatalf("newDefaultTrie: %v", err)
	}
	key, mod, _, m := trie.match([]byte("\x1bOA"))
	if m != trieMatchFull || key != KeyArrowUp || mod != 0 {
		t.Fatalf("expected the store's unmodified arrow-up to win, got key=%v mod=%v", key, mod)
	}
}

func TestNewDefaultTrieXtermF1(t *testing.T) {
	trie, err := newDefaultTrie(xtermCaps)
	if err != nil {
		t.Fatalf("newDefaultTrie: %v", err)
	}

	key, mod, n, m := trie.match([]byte("\x1bOP"))
	if m != trieMatchFull {
		t.Fatalf("expected F1 sequence to match, got %v", m)
	}
	if key != KeyF1 || mod != 0 || n != 3 {
		t.Fatalf("got key=%v mod=%v n=%d", key, mod, n)
	}
}
