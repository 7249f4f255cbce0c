package termgrid

// capIndex names one of the string capabilities termgrid drives. The
// values double as indexes into termCaps and are grouped independently of
// terminfo's own numbering (see terminfoCapIndexes): the 23 key-producing
// capabilities first (the ones also resolved via the trie/mod-cap table
// in trie.go and this file's builtinModCaps), then the output capabilities.
type capIndex int

const (
	capF1 capIndex = iota
	capF2
	capF3
	capF4
	capF5
	capF6
	capF7
	capF8
	capF9
	capF10
	capF11
	capF12
	capInsert
	capDelete
	capHome
	capEnd
	capPgup
	capPgdn
	capArrowUp
	capArrowDown
	capArrowLeft
	capArrowRight
	capBackTab
	capEnterCA
	capExitCA
	capShowCursor
	capHideCursor
	capClearScreen
	capSgr0
	capUnderline
	capBold
	capBlink
	capItalic
	capReverse
	capEnterKeypad
	capExitKeypad
	numCaps
)

// keyCapIndexes maps each of the first 23 capIndex entries to the Key it
// produces, for wiring loaded/built-in capability strings into the input
// trie (see newDefaultTrie in trie.go).
var keyCapIndexes = [...]Key{
	capF1:         KeyF1,
	capF2:         KeyF2,
	capF3:         KeyF3,
	capF4:         KeyF4,
	capF5:         KeyF5,
	capF6:         KeyF6,
	capF7:         KeyF7,
	capF8:         KeyF8,
	capF9:         KeyF9,
	capF10:        KeyF10,
	capF11:        KeyF11,
	capF12:        KeyF12,
	capInsert:     KeyInsert,
	capDelete:     KeyDelete,
	capHome:       KeyHome,
	capEnd:        KeyEnd,
	capPgup:       KeyPgup,
	capPgdn:       KeyPgdn,
	capArrowUp:    KeyArrowUp,
	capArrowDown:  KeyArrowDown,
	capArrowLeft:  KeyArrowLeft,
	capArrowRight: KeyArrowRight,
	capBackTab:    KeyBackTab,
}

const numKeyCaps = int(capBackTab) + 1

// terminfoCapIndexes maps each capIndex to its index in the terminfo
// extended string table, identified here by the terminfo capability name
// in the comment (e.g. kf1, smcup). These offsets are fixed by the
// terminfo format itself, not by any particular terminal database.
var terminfoCapIndexes = [numCaps]struct {
	cap           capIndex
	terminfoIndex int
}{
	{capF1, 66},           // kf1
	{capF2, 68},           // kf2
	{capF3, 69},           // kf3
	{capF4, 70},           // kf4
	{capF5, 71},           // kf5
	{capF6, 72},           // kf6
	{capF7, 73},           // kf7
	{capF8, 74},           // kf8
	{capF9, 75},           // kf9
	{capF10, 67},          // kf10
	{capF11, 216},         // kf11
	{capF12, 217},         // kf12
	{capInsert, 77},       // kich1
	{capDelete, 59},       // kdch1
	{capHome, 76},         // khome
	{capEnd, 164},         // kend
	{capPgup, 82},         // kpp
	{capPgdn, 81},         // knp
	{capArrowUp, 87},      // kcuu1
	{capArrowDown, 61},    // kcud1
	{capArrowLeft, 79},    // kcub1
	{capArrowRight, 83},   // kcuf1
	{capBackTab, 148},     // kcbt
	{capEnterCA, 28},      // smcup
	{capExitCA, 40},       // rmcup
	{capShowCursor, 16},   // cnorm
	{capHideCursor, 13},   // civis
	{capClearScreen, 5},   // clear
	{capSgr0, 39},         // sgr0
	{capUnderline, 36},    // smul
	{capBold, 27},         // bold
	{capBlink, 26},        // blink
	{capItalic, 311},      // sitm
	{capReverse, 34},      // rev
	{capEnterKeypad, 89},  // smkx
	{capExitKeypad, 88},   // rmkx
}

var xtermCaps = termCaps{
	capF1: "\x1bOP", capF2: "\x1bOQ", capF3: "\x1bOR", capF4: "\x1bOS",
	capF5: "\x1b[15~", capF6: "\x1b[17~", capF7: "\x1b[18~", capF8: "\x1b[19~",
	capF9: "\x1b[20~", capF10: "\x1b[21~", capF11: "\x1b[23~", capF12: "\x1b[24~",
	capInsert: "\x1b[2~", capDelete: "\x1b[3~", capHome: "\x1bOH", capEnd: "\x1bOF",
	capPgup: "\x1b[5~", capPgdn: "\x1b[6~",
	capArrowUp: "\x1bOA", capArrowDown: "\x1bOB", capArrowLeft: "\x1bOD", capArrowRight: "\x1bOC",
	capBackTab:     "\x1b[Z",
	capEnterCA:     "\x1b[?1049h\x1b[22;0;0t",
	capExitCA:      "\x1b[?1049l\x1b[23;0;0t",
	capShowCursor:  "\x1b[?12l\x1b[?25h",
	capHideCursor:  "\x1b[?25l",
	capClearScreen: "\x1b[H\x1b[2J",
	capSgr0:        "\x1b(B\x1b[m",
	capUnderline:   "\x1b[4m",
	capBold:        "\x1b[1m",
	capBlink:       "\x1b[5m",
	capItalic:      "\x1b[3m",
	capReverse:     "\x1b[7m",
	capEnterKeypad: "\x1b[?1h\x1b=",
	capExitKeypad:  "\x1b[?1l\x1b>",
}

var linuxCaps = termCaps{
	capF1: "\x1b[[A", capF2: "\x1b[[B", capF3: "\x1b[[C", capF4: "\x1b[[D",
	capF5: "\x1b[[E", capF6: "\x1b[17~", capF7: "\x1b[18~", capF8: "\x1b[19~",
	capF9: "\x1b[20~", capF10: "\x1b[21~", capF11: "\x1b[23~", capF12: "\x1b[24~",
	capInsert: "\x1b[2~", capDelete: "\x1b[3~", capHome: "\x1b[1~", capEnd: "\x1b[4~",
	capPgup: "\x1b[5~", capPgdn: "\x1b[6~",
	capArrowUp: "\x1b[A", capArrowDown: "\x1b[B", capArrowLeft: "\x1b[D", capArrowRight: "\x1b[C",
	capBackTab:     "\x1b[Z",
	capShowCursor:  "\x1b[?25h\x1b[?0c",
	capHideCursor:  "\x1b[?25l\x1b[?1c",
	capClearScreen: "\x1b[H\x1b[J",
	capSgr0:        "\x1b[m\x0f",
	capUnderline:   "\x1b[4m",
	capBold:        "\x1b[1m",
	capBlink:       "\x1b[5m",
	capReverse:     "\x1b[7m",
}

var screenCaps = termCaps{
	capF1: "\x1bOP", capF2: "\x1bOQ", capF3: "\x1bOR", capF4: "\x1bOS",
	capF5: "\x1b[15~", capF6: "\x1b[17~", capF7: "\x1b[18~", capF8: "\x1b[19~",
	capF9: "\x1b[20~", capF10: "\x1b[21~", capF11: "\x1b[23~", capF12: "\x1b[24~",
	capInsert: "\x1b[2~", capDelete: "\x1b[3~", capHome: "\x1b[1~", capEnd: "\x1b[4~",
	capPgup: "\x1b[5~", capPgdn: "\x1b[6~",
	capArrowUp: "\x1bOA", capArrowDown: "\x1bOB", capArrowLeft: "\x1bOD", capArrowRight: "\x1bOC",
	capBackTab:     "\x1b[Z",
	capEnterCA:     "\x1b[?1049h",
	capExitCA:      "\x1b[?1049l",
	capShowCursor:  "\x1b[34h\x1b[?25h",
	capHideCursor:  "\x1b[?25l",
	capClearScreen: "\x1b[H\x1b[J",
	capSgr0:        "\x1b[m\x0f",
	capUnderline:   "\x1b[4m",
	capBold:        "\x1b[1m",
	capBlink:       "\x1b[5m",
	capReverse:     "\x1b[7m",
	capEnterKeypad: "\x1b[?1h\x1b=",
	capExitKeypad:  "\x1b[?1l\x1b>",
}

var rxvt256colorCaps = termCaps{
	capF1: "\x1b[11~", capF2: "\x1b[12~", capF3: "\x1b[13~", capF4: "\x1b[14~",
	capF5: "\x1b[15~", capF6: "\x1b[17~", capF7: "\x1b[18~", capF8: "\x1b[19~",
	capF9: "\x1b[20~", capF10: "\x1b[21~", capF11: "\x1b[23~", capF12: "\x1b[24~",
	capInsert: "\x1b[2~", capDelete: "\x1b[3~", capHome: "\x1b[7~", capEnd: "\x1b[8~",
	capPgup: "\x1b[5~", capPgdn: "\x1b[6~",
	capArrowUp: "\x1b[A", capArrowDown: "\x1b[B", capArrowLeft: "\x1b[D", capArrowRight: "\x1b[C",
	capBackTab:     "\x1b[Z",
	capEnterCA:     "\x1b7\x1b[?47h",
	capExitCA:      "\x1b[2J\x1b[?47l\x1b8",
	capShowCursor:  "\x1b[?25h",
	capHideCursor:  "\x1b[?25l",
	capClearScreen: "\x1b[H\x1b[2J",
	capSgr0:        "\x1b[m\x0f",
	capUnderline:   "\x1b[4m",
	capBold:        "\x1b[1m",
	capBlink:       "\x1b[5m",
	capReverse:     "\x1b[7m",
	capEnterKeypad: "\x1b=",
	capExitKeypad:  "\x1b>",
}

var rxvtUnicodeCaps = termCaps{
	capF1: "\x1b[11~", capF2: "\x1b[12~", capF3: "\x1b[13~", capF4: "\x1b[14~",
	capF5: "\x1b[15~", capF6: "\x1b[17~", capF7: "\x1b[18~", capF8: "\x1b[19~",
	capF9: "\x1b[20~", capF10: "\x1b[21~", capF11: "\x1b[23~", capF12: "\x1b[24~",
	capInsert: "\x1b[2~", capDelete: "\x1b[3~", capHome: "\x1b[7~", capEnd: "\x1b[8~",
	capPgup: "\x1b[5~", capPgdn: "\x1b[6~",
	capArrowUp: "\x1b[A", capArrowDown: "\x1b[B", capArrowLeft: "\x1b[D", capArrowRight: "\x1b[C",
	capBackTab:     "\x1b[Z",
	capEnterCA:     "\x1b[?1049h",
	capExitCA:      "\x1b[r\x1b[?1049l",
	capShowCursor:  "\x1b[?12l\x1b[?25h",
	capHideCursor:  "\x1b[?25l",
	capClearScreen: "\x1b[H\x1b[2J",
	capSgr0:        "\x1b[m\x1b(B",
	capUnderline:   "\x1b[4m",
	capBold:        "\x1b[1m",
	capBlink:       "\x1b[5m",
	capItalic:      "\x1b[3m",
	capReverse:     "\x1b[7m",
	capEnterKeypad: "\x1b=",
	capExitKeypad:  "\x1b>",
}

var etermCaps = termCaps{
	capF1: "\x1b[11~", capF2: "\x1b[12~", capF3: "\x1b[13~", capF4: "\x1b[14~",
	capF5: "\x1b[15~", capF6: "\x1b[17~", capF7: "\x1b[18~", capF8: "\x1b[19~",
	capF9: "\x1b[20~", capF10: "\x1b[21~", capF11: "\x1b[23~", capF12: "\x1b[24~",
	capInsert: "\x1b[2~", capDelete: "\x1b[3~", capHome: "\x1b[7~", capEnd: "\x1b[8~",
	capPgup: "\x1b[5~", capPgdn: "\x1b[6~",
	capArrowUp: "\x1b[A", capArrowDown: "\x1b[B", capArrowLeft: "\x1b[D", capArrowRight: "\x1b[C",
	capEnterCA:     "\x1b7\x1b[?47h",
	capExitCA:      "\x1b[2J\x1b[?47l\x1b8",
	capShowCursor:  "\x1b[?25h",
	capHideCursor:  "\x1b[?25l",
	capClearScreen: "\x1b[H\x1b[2J",
	capSgr0:        "\x1b[m\x0f",
	capUnderline:   "\x1b[4m",
	capBold:        "\x1b[1m",
	capBlink:       "\x1b[5m",
	capReverse:     "\x1b[7m",
}

// builtinTerms is searched in order: exact name match first, then a
// substring match against name or alias (e.g. "xterm-256color" matches
// "xterm", "tmux-256color" matches the "screen" entry's "tmux" alias).
var builtinTerms = []struct {
	name  string
	caps  termCaps
	alias string
}{
	{"xterm", xtermCaps, ""},
	{"linux", linuxCaps, ""},
	{"screen", screenCaps, "tmux"},
	{"rxvt-256color", rxvt256colorCaps, ""},
	{"rxvt-unicode", rxvtUnicodeCaps, "rxvt"},
	{"Eterm", etermCaps, ""},
}

func builtinCaps(termName string) (termCaps, bool) {
	for _, t := range builtinTerms {
		if t.name == termName {
			return t.caps, true
		}
	}
	for _, t := range builtinTerms {
		if containsFold(termName, t.name) || (t.alias != "" && containsFold(termName, t.alias)) {
			return t.caps, true
		}
	}
	return termCaps{}, false
}

func containsFold(s, substr string) bool {
	if substr == "" {
		return true
	}
	for i := 0; i+len(substr) <= len(s); i++ {
		if equalFold(s[i:i+len(substr)], substr) {
			return true
		}
	}
	return false
}

func equalFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if 'A' <= ca && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if 'A' <= cb && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}

// modCap is one entry of the fixed modifier-decorated escape table: a
// literal byte sequence a terminal emits for some key held with
// modifiers, which terminfo itself has no capability name for (terminfo
// only records the unmodified form). Grouped below by the terminal family
// that emits it: xterm (CSI 1;<mod><letter> / CSI <n>;<mod>~), rxvt
// (doubled-ESC and $/^/@ suffixed variants), and the small set shared by
// the Linux console and PuTTY.
type modCap struct {
	seq string
	key Key
	mod Mod
}

var builtinModCaps = []modCap{
	{"\x1b[1;2A", KeyArrowUp, ModShift},
	{"\x1b[1;3A", KeyArrowUp, ModAlt},
	{"\x1b[1;4A", KeyArrowUp, ModAlt | ModShift},
	{"\x1b[1;5A", KeyArrowUp, ModCtrl},
	{"\x1b[1;6A", KeyArrowUp, ModCtrl | ModShift},
	{"\x1b[1;7A", KeyArrowUp, ModCtrl | ModAlt},
	{"\x1b[1;8A", KeyArrowUp, ModCtrl | ModAlt | ModShift},
	{"\x1b[1;2B", KeyArrowDown, ModShift},
	{"\x1b[1;3B", KeyArrowDown, ModAlt},
	{"\x1b[1;4B", KeyArrowDown, ModAlt | ModShift},
	{"\x1b[1;5B", KeyArrowDown, ModCtrl},
	{"\x1b[1;6B", KeyArrowDown, ModCtrl | ModShift},
	{"\x1b[1;7B", KeyArrowDown, ModCtrl | ModAlt},
	{"\x1b[1;8B", KeyArrowDown, ModCtrl | ModAlt | ModShift},
	{"\x1b[1;2C", KeyArrowRight, ModShift},
	{"\x1b[1;3C", KeyArrowRight, ModAlt},
	{"\x1b[1;4C", KeyArrowRight, ModAlt | ModShift},
	{"\x1b[1;5C", KeyArrowRight, ModCtrl},
	{"\x1b[1;6C", KeyArrowRight, ModCtrl | ModShift},
	{"\x1b[1;7C", KeyArrowRight, ModCtrl | ModAlt},
	{"\x1b[1;8C", KeyArrowRight, ModCtrl | ModAlt | ModShift},
	{"\x1b[1;2D", KeyArrowLeft, ModShift},
	{"\x1b[1;3D", KeyArrowLeft, ModAlt},
	{"\x1b[1;4D", KeyArrowLeft, ModAlt | ModShift},
	{"\x1b[1;5D", KeyArrowLeft, ModCtrl},
	{"\x1b[1;6D", KeyArrowLeft, ModCtrl | ModShift},
	{"\x1b[1;7D", KeyArrowLeft, ModCtrl | ModAlt},
	{"\x1b[1;8D", KeyArrowLeft, ModCtrl | ModAlt | ModShift},
	{"\x1b[1;2H", KeyHome, ModShift},
	{"\x1b[1;3H", KeyHome, ModAlt},
	{"\x1b[1;4H", KeyHome, ModAlt | ModShift},
	{"\x1b[1;5H", KeyHome, ModCtrl},
	{"\x1b[1;6H", KeyHome, ModCtrl | ModShift},
	{"\x1b[1;7H", KeyHome, ModCtrl | ModAlt},
	{"\x1b[1;8H", KeyHome, ModCtrl | ModAlt | ModShift},
	{"\x1b[1;2F", KeyEnd, ModShift},
	{"\x1b[1;3F", KeyEnd, ModAlt},
	{"\x1b[1;4F", KeyEnd, ModAlt | ModShift},
	{"\x1b[1;5F", KeyEnd, ModCtrl},
	{"\x1b[1;6F", KeyEnd, ModCtrl | ModShift},
	{"\x1b[1;7F", KeyEnd, ModCtrl | ModAlt},
	{"\x1b[1;8F", KeyEnd, ModCtrl | ModAlt | ModShift},
	{"\x1b[2;2~", KeyInsert, ModShift},
	{"\x1b[2;3~", KeyInsert, ModAlt},
	{"\x1b[2;4~", KeyInsert, ModAlt | ModShift},
	{"\x1b[2;5~", KeyInsert, ModCtrl},
	{"\x1b[2;6~", KeyInsert, ModCtrl | ModShift},
	{"\x1b[2;7~", KeyInsert, ModCtrl | ModAlt},
	{"\x1b[2;8~", KeyInsert, ModCtrl | ModAlt | ModShift},
	{"\x1b[3;2~", KeyDelete, ModShift},
	{"\x1b[3;3~", KeyDelete, ModAlt},
	{"\x1b[3;4~", KeyDelete, ModAlt | ModShift},
	{"\x1b[3;5~", KeyDelete, ModCtrl},
	{"\x1b[3;6~", KeyDelete, ModCtrl | ModShift},
	{"\x1b[3;7~", KeyDelete, ModCtrl | ModAlt},
	{"\x1b[3;8~", KeyDelete, ModCtrl | ModAlt | ModShift},
	{"\x1b[5;2~", KeyPgup, ModShift},
	{"\x1b[5;3~", KeyPgup, ModAlt},
	{"\x1b[5;4~", KeyPgup, ModAlt | ModShift},
	{"\x1b[5;5~", KeyPgup, ModCtrl},
	{"\x1b[5;6~", KeyPgup, ModCtrl | ModShift},
	{"\x1b[5;7~", KeyPgup, ModCtrl | ModAlt},
	{"\x1b[5;8~", KeyPgup, ModCtrl | ModAlt | ModShift},
	{"\x1b[6;2~", KeyPgdn, ModShift},
	{"\x1b[6;3~", KeyPgdn, ModAlt},
	{"\x1b[6;4~", KeyPgdn, ModAlt | ModShift},
	{"\x1b[6;5~", KeyPgdn, ModCtrl},
	{"\x1b[6;6~", KeyPgdn, ModCtrl | ModShift},
	{"\x1b[6;7~", KeyPgdn, ModCtrl | ModAlt},
	{"\x1b[6;8~", KeyPgdn, ModCtrl | ModAlt | ModShift},
	{"\x1b[1;2P", KeyF1, ModShift},
	{"\x1b[1;3P", KeyF1, ModAlt},
	{"\x1b[1;4P", KeyF1, ModAlt | ModShift},
	{"\x1b[1;5P", KeyF1, ModCtrl},
	{"\x1b[1;6P", KeyF1, ModCtrl | ModShift},
	{"\x1b[1;7P", KeyF1, ModCtrl | ModAlt},
	{"\x1b[1;8P", KeyF1, ModCtrl | ModAlt | ModShift},
	{"\x1b[1;2Q", KeyF2, ModShift},
	{"\x1b[1;3Q", KeyF2, ModAlt},
	{"\x1b[1;4Q", KeyF2, ModAlt | ModShift},
	{"\x1b[1;5Q", KeyF2, ModCtrl},
	{"\x1b[1;6Q", KeyF2, ModCtrl | ModShift},
	{"\x1b[1;7Q", KeyF2, ModCtrl | ModAlt},
	{"\x1b[1;8Q", KeyF2, ModCtrl | ModAlt | ModShift},
	{"\x1b[1;2R", KeyF3, ModShift},
	{"\x1b[1;3R", KeyF3, ModAlt},
	{"\x1b[1;4R", KeyF3, ModAlt | ModShift},
	{"\x1b[1;5R", KeyF3, ModCtrl},
	{"\x1b[1;6R", KeyF3, ModCtrl | ModShift},
	{"\x1b[1;7R", KeyF3, ModCtrl | ModAlt},
	{"\x1b[1;8R", KeyF3, ModCtrl | ModAlt | ModShift},
	{"\x1b[1;2S", KeyF4, ModShift},
	{"\x1b[1;3S", KeyF4, ModAlt},
	{"\x1b[1;4S", KeyF4, ModAlt | ModShift},
	{"\x1b[1;5S", KeyF4, ModCtrl},
	{"\x1b[1;6S", KeyF4, ModCtrl | ModShift},
	{"\x1b[1;7S", KeyF4, ModCtrl | ModAlt},
	{"\x1b[1;8S", KeyF4, ModCtrl | ModAlt | ModShift},
	{"\x1b[15;2~", KeyF5, ModShift},
	{"\x1b[15;3~", KeyF5, ModAlt},
	{"\x1b[15;4~", KeyF5, ModAlt | ModShift},
	{"\x1b[15;5~", KeyF5, ModCtrl},
	{"\x1b[15;6~", KeyF5, ModCtrl | ModShift},
	{"\x1b[15;7~", KeyF5, ModCtrl | ModAlt},
	{"\x1b[15;8~", KeyF5, ModCtrl | ModAlt | ModShift},
	{"\x1b[17;2~", KeyF6, ModShift},
	{"\x1b[17;3~", KeyF6, ModAlt},
	{"\x1b[17;4~", KeyF6, ModAlt | ModShift},
	{"\x1b[17;5~", KeyF6, ModCtrl},
	{"\x1b[17;6~", KeyF6, ModCtrl | ModShift},
	{"\x1b[17;7~", KeyF6, ModCtrl | ModAlt},
	{"\x1b[17;8~", KeyF6, ModCtrl | ModAlt | ModShift},
	{"\x1b[18;2~", KeyF7, ModShift},
	{"\x1b[18;3~", KeyF7, ModAlt},
	{"\x1b[18;4~", KeyF7, ModAlt | ModShift},
	{"\x1b[18;5~", KeyF7, ModCtrl},
	{"\x1b[18;6~", KeyF7, ModCtrl | ModShift},
	{"\x1b[18;7~", KeyF7, ModCtrl | ModAlt},
	{"\x1b[18;8~", KeyF7, ModCtrl | ModAlt | ModShift},
	{"\x1b[19;2~", KeyF8, ModShift},
	{"\x1b[19;3~", KeyF8, ModAlt},
	{"\x1b[19;4~", KeyF8, ModAlt | ModShift},
	{"\x1b[19;5~", KeyF8, ModCtrl},
	{"\x1b[19;6~", KeyF8, ModCtrl | ModShift},
	{"\x1b[19;7~", KeyF8, ModCtrl | ModAlt},
	{"\x1b[19;8~", KeyF8, ModCtrl | ModAlt | ModShift},
	{"\x1b[20;2~", KeyF9, ModShift},
	{"\x1b[20;3~", KeyF9, ModAlt},
	{"\x1b[20;4~", KeyF9, ModAlt | ModShift},
	{"\x1b[20;5~", KeyF9, ModCtrl},
	{"\x1b[20;6~", KeyF9, ModCtrl | ModShift},
	{"\x1b[20;7~", KeyF9, ModCtrl | ModAlt},
	{"\x1b[20;8~", KeyF9, ModCtrl | ModAlt | ModShift},
	{"\x1b[21;2~", KeyF10, ModShift},
	{"\x1b[21;3~", KeyF10, ModAlt},
	{"\x1b[21;4~", KeyF10, ModAlt | ModShift},
	{"\x1b[21;5~", KeyF10, ModCtrl},
	{"\x1b[21;6~", KeyF10, ModCtrl | ModShift},
	{"\x1b[21;7~", KeyF10, ModCtrl | ModAlt},
	{"\x1b[21;8~", KeyF10, ModCtrl | ModAlt | ModShift},
	{"\x1b[23;2~", KeyF11, ModShift},
	{"\x1b[23;3~", KeyF11, ModAlt},
	{"\x1b[23;4~", KeyF11, ModAlt | ModShift},
	{"\x1b[23;5~", KeyF11, ModCtrl},
	{"\x1b[23;6~", KeyF11, ModCtrl | ModShift},
	{"\x1b[23;7~", KeyF11, ModCtrl | ModAlt},
	{"\x1b[23;8~", KeyF11, ModCtrl | ModAlt | ModShift},
	{"\x1b[24;2~", KeyF12, ModShift},
	{"\x1b[24;3~", KeyF12, ModAlt},
	{"\x1b[24;4~", KeyF12, ModAlt | ModShift},
	{"\x1b[24;5~", KeyF12, ModCtrl},
	{"\x1b[24;6~", KeyF12, ModCtrl | ModShift},
	{"\x1b[24;7~", KeyF12, ModCtrl | ModAlt},
	{"\x1b[24;8~", KeyF12, ModCtrl | ModAlt | ModShift},
	{"\x1b[a", KeyArrowUp, ModShift},
	{"\x1b\x1b[A", KeyArrowUp, ModAlt},
	{"\x1b\x1b[a", KeyArrowUp, ModAlt | ModShift},
	{"\x1bOa", KeyArrowUp, ModCtrl},
	{"\x1b\x1bOa", KeyArrowUp, ModCtrl | ModAlt},
	{"\x1b[b", KeyArrowDown, ModShift},
	{"\x1b\x1b[B", KeyArrowDown, ModAlt},
	{"\x1b\x1b[b", KeyArrowDown, ModAlt | ModShift},
	{"\x1bOb", KeyArrowDown, ModCtrl},
	{"\x1b\x1bOb", KeyArrowDown, ModCtrl | ModAlt},
	{"\x1b[c", KeyArrowRight, ModShift},
	{"\x1b\x1b[C", KeyArrowRight, ModAlt},
	{"\x1b\x1b[c", KeyArrowRight, ModAlt | ModShift},
	{"\x1bOc", KeyArrowRight, ModCtrl},
	{"\x1b\x1bOc", KeyArrowRight, ModCtrl | ModAlt},
	{"\x1b[d", KeyArrowLeft, ModShift},
	{"\x1b\x1b[D", KeyArrowLeft, ModAlt},
	{"\x1b\x1b[d", KeyArrowLeft, ModAlt | ModShift},
	{"\x1bOd", KeyArrowLeft, ModCtrl},
	{"\x1b\x1bOd", KeyArrowLeft, ModCtrl | ModAlt},
	{"\x1b[7$", KeyHome, ModShift},
	{"\x1b\x1b[7~", KeyHome, ModAlt},
	{"\x1b\x1b[7$", KeyHome, ModAlt | ModShift},
	{"\x1b[7^", KeyHome, ModCtrl},
	{"\x1b[7@", KeyHome, ModCtrl | ModShift},
	{"\x1b\x1b[7^", KeyHome, ModCtrl | ModAlt},
	{"\x1b\x1b[7@", KeyHome, ModCtrl | ModAlt | ModShift},
	{"\x1b\x1b[8~", KeyEnd, ModAlt},
	{"\x1b\x1b[8$", KeyEnd, ModAlt | ModShift},
	{"\x1b[8^", KeyEnd, ModCtrl},
	{"\x1b\x1b[8^", KeyEnd, ModCtrl | ModAlt},
	{"\x1b\x1b[8@", KeyEnd, ModCtrl | ModAlt | ModShift},
	{"\x1b[8@", KeyEnd, ModCtrl | ModShift},
	{"\x1b[8$", KeyEnd, ModShift},
	{"\x1b\x1b[2~", KeyInsert, ModAlt},
	{"\x1b\x1b[2$", KeyInsert, ModAlt | ModShift},
	{"\x1b[2^", KeyInsert, ModCtrl},
	{"\x1b\x1b[2^", KeyInsert, ModCtrl | ModAlt},
	{"\x1b\x1b[2@", KeyInsert, ModCtrl | ModAlt | ModShift},
	{"\x1b[2@", KeyInsert, ModCtrl | ModShift},
	{"\x1b[2$", KeyInsert, ModShift},
	{"\x1b\x1b[3~", KeyDelete, ModAlt},
	{"\x1b\x1b[3$", KeyDelete, ModAlt | ModShift},
	{"\x1b[3^", KeyDelete, ModCtrl},
	{"\x1b\x1b[3^", KeyDelete, ModCtrl | ModAlt},
	{"\x1b\x1b[3@", KeyDelete, ModCtrl | ModAlt | ModShift},
	{"\x1b[3@", KeyDelete, ModCtrl | ModShift},
	{"\x1b[3$", KeyDelete, ModShift},
	{"\x1b\x1b[5~", KeyPgup, ModAlt},
	{"\x1b\x1b[5$", KeyPgup, ModAlt | ModShift},
	{"\x1b[5^", KeyPgup, ModCtrl},
	{"\x1b\x1b[5^", KeyPgup, ModCtrl | ModAlt},
	{"\x1b\x1b[5@", KeyPgup, ModCtrl | ModAlt | ModShift},
	{"\x1b[5@", KeyPgup, ModCtrl | ModShift},
	{"\x1b[5$", KeyPgup, ModShift},
	{"\x1b\x1b[6~", KeyPgdn, ModAlt},
	{"\x1b\x1b[6$", KeyPgdn, ModAlt | ModShift},
	{"\x1b[6^", KeyPgdn, ModCtrl},
	{"\x1b\x1b[6^", KeyPgdn, ModCtrl | ModAlt},
	{"\x1b\x1b[6@", KeyPgdn, ModCtrl | ModAlt | ModShift},
	{"\x1b[6@", KeyPgdn, ModCtrl | ModShift},
	{"\x1b[6$", KeyPgdn, ModShift},
	{"\x1b\x1b[11~", KeyF1, ModAlt},
	{"\x1b\x1b[23~", KeyF1, ModAlt | ModShift},
	{"\x1b[11^", KeyF1, ModCtrl},
	{"\x1b\x1b[11^", KeyF1, ModCtrl | ModAlt},
	{"\x1b\x1b[23^", KeyF1, ModCtrl | ModAlt | ModShift},
	{"\x1b[23^", KeyF1, ModCtrl | ModShift},
	{"\x1b[23~", KeyF1, ModShift},
	{"\x1b\x1b[12~", KeyF2, ModAlt},
	{"\x1b\x1b[24~", KeyF2, ModAlt | ModShift},
	{"\x1b[12^", KeyF2, ModCtrl},
	{"\x1b\x1b[12^", KeyF2, ModCtrl | ModAlt},
	{"\x1b\x1b[24^", KeyF2, ModCtrl | ModAlt | ModShift},
	{"\x1b[24^", KeyF2, ModCtrl | ModShift},
	{"\x1b[24~", KeyF2, ModShift},
	{"\x1b\x1b[13~", KeyF3, ModAlt},
	{"\x1b\x1b[25~", KeyF3, ModAlt | ModShift},
	{"\x1b[13^", KeyF3, ModCtrl},
	{"\x1b\x1b[13^", KeyF3, ModCtrl | ModAlt},
	{"\x1b\x1b[25^", KeyF3, ModCtrl | ModAlt | ModShift},
	{"\x1b[25^", KeyF3, ModCtrl | ModShift},
	{"\x1b[25~", KeyF3, ModShift},
	{"\x1b\x1b[14~", KeyF4, ModAlt},
	{"\x1b\x1b[26~", KeyF4, ModAlt | ModShift},
	{"\x1b[14^", KeyF4, ModCtrl},
	{"\x1b\x1b[14^", KeyF4, ModCtrl | ModAlt},
	{"\x1b\x1b[26^", KeyF4, ModCtrl | ModAlt | ModShift},
	{"\x1b[26^", KeyF4, ModCtrl | ModShift},
	{"\x1b[26~", KeyF4, ModShift},
	{"\x1b\x1b[15~", KeyF5, ModAlt},
	{"\x1b\x1b[28~", KeyF5, ModAlt | ModShift},
	{"\x1b[15^", KeyF5, ModCtrl},
	{"\x1b\x1b[15^", KeyF5, ModCtrl | ModAlt},
	{"\x1b\x1b[28^", KeyF5, ModCtrl | ModAlt | ModShift},
	{"\x1b[28^", KeyF5, ModCtrl | ModShift},
	{"\x1b[28~", KeyF5, ModShift},
	{"\x1b\x1b[17~", KeyF6, ModAlt},
	{"\x1b\x1b[29~", KeyF6, ModAlt | ModShift},
	{"\x1b[17^", KeyF6, ModCtrl},
	{"\x1b\x1b[17^", KeyF6, ModCtrl | ModAlt},
	{"\x1b\x1b[29^", KeyF6, ModCtrl | ModAlt | ModShift},
	{"\x1b[29^", KeyF6, ModCtrl | ModShift},
	{"\x1b[29~", KeyF6, ModShift},
	{"\x1b\x1b[18~", KeyF7, ModAlt},
	{"\x1b\x1b[31~", KeyF7, ModAlt | ModShift},
	{"\x1b[18^", KeyF7, ModCtrl},
	{"\x1b\x1b[18^", KeyF7, ModCtrl | ModAlt},
	{"\x1b\x1b[31^", KeyF7, ModCtrl | ModAlt | ModShift},
	{"\x1b[31^", KeyF7, ModCtrl | ModShift},
	{"\x1b[31~", KeyF7, ModShift},
	{"\x1b\x1b[19~", KeyF8, ModAlt},
	{"\x1b\x1b[32~", KeyF8, ModAlt | ModShift},
	{"\x1b[19^", KeyF8, ModCtrl},
	{"\x1b\x1b[19^", KeyF8, ModCtrl | ModAlt},
	{"\x1b\x1b[32^", KeyF8, ModCtrl | ModAlt | ModShift},
	{"\x1b[32^", KeyF8, ModCtrl | ModShift},
	{"\x1b[32~", KeyF8, ModShift},
	{"\x1b\x1b[20~", KeyF9, ModAlt},
	{"\x1b\x1b[33~", KeyF9, ModAlt | ModShift},
	{"\x1b[20^", KeyF9, ModCtrl},
	{"\x1b\x1b[20^", KeyF9, ModCtrl | ModAlt},
	{"\x1b\x1b[33^", KeyF9, ModCtrl | ModAlt | ModShift},
	{"\x1b[33^", KeyF9, ModCtrl | ModShift},
	{"\x1b[33~", KeyF9, ModShift},
	{"\x1b\x1b[21~", KeyF10, ModAlt},
	{"\x1b\x1b[34~", KeyF10, ModAlt | ModShift},
	{"\x1b[21^", KeyF10, ModCtrl},
	{"\x1b\x1b[21^", KeyF10, ModCtrl | ModAlt},
	{"\x1b\x1b[34^", KeyF10, ModCtrl | ModAlt | ModShift},
	{"\x1b[34^", KeyF10, ModCtrl | ModShift},
	{"\x1b[34~", KeyF10, ModShift},
	{"\x1b\x1b[23~", KeyF11, ModAlt},
	{"\x1b\x1b[23$", KeyF11, ModAlt | ModShift},
	{"\x1b[23^", KeyF11, ModCtrl},
	{"\x1b\x1b[23^", KeyF11, ModCtrl | ModAlt},
	{"\x1b\x1b[23@", KeyF11, ModCtrl | ModAlt | ModShift},
	{"\x1b[23@", KeyF11, ModCtrl | ModShift},
	{"\x1b[23$", KeyF11, ModShift},
	{"\x1b\x1b[24~", KeyF12, ModAlt},
	{"\x1b\x1b[24$", KeyF12, ModAlt | ModShift},
	{"\x1b[24^", KeyF12, ModCtrl},
	{"\x1b\x1b[24^", KeyF12, ModCtrl | ModAlt},
	{"\x1b\x1b[24@", KeyF12, ModCtrl | ModAlt | ModShift},
	{"\x1b[24@", KeyF12, ModCtrl | ModShift},
	{"\x1b[24$", KeyF12, ModShift},
	{"\x1b[A", KeyArrowUp, ModShift},
	{"\x1b[B", KeyArrowDown, ModShift},
	{"\x1b[C", KeyArrowRight, ModShift},
	{"\x1b[D", KeyArrowLeft, ModShift},
	{"\x1bOA", KeyArrowUp, ModCtrl},
	{"\x1b\x1bOA", KeyArrowUp, ModCtrl | ModAlt},
	{"\x1bOB", KeyArrowDown, ModCtrl},
	{"\x1b\x1bOB", KeyArrowDown, ModCtrl | ModAlt},
	{"\x1bOC", KeyArrowRight, ModCtrl},
	{"\x1b\x1bOC", KeyArrowRight, ModCtrl | ModAlt},
	{"\x1bOD", KeyArrowLeft, ModCtrl},
	{"\x1b\x1bOD", KeyArrowLeft, ModCtrl | ModAlt},
}
