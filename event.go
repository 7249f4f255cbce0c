package termgrid

// EventType tags an Event's payload.
type EventType int

const (
	EventKey EventType = iota
	EventResize
	EventMouse
)

// Key is a symbolic key code. Values below 0x20 double as the literal
// control byte they represent (Ctrl-<letter>); the named constants above
// 0xff00 are out-of-band symbolic keys with no byte representation of
// their own (function keys, arrows, mouse buttons), mirroring termbox.c's
// "0xffff - n" numbering so the numeric space never collides with a
// printable rune.
type Key uint16

const (
	KeyCtrlTilde     Key = 0x00
	KeyCtrlA         Key = 0x01
	KeyCtrlB         Key = 0x02
	KeyCtrlC         Key = 0x03
	KeyCtrlD         Key = 0x04
	KeyCtrlE         Key = 0x05
	KeyCtrlF         Key = 0x06
	KeyCtrlG         Key = 0x07
	KeyBackspace     Key = 0x08
	KeyTab           Key = 0x09
	KeyCtrlJ         Key = 0x0a
	KeyCtrlK         Key = 0x0b
	KeyCtrlL         Key = 0x0c
	KeyEnter         Key = 0x0d
	KeyCtrlN         Key = 0x0e
	KeyCtrlO         Key = 0x0f
	KeyCtrlP         Key = 0x10
	KeyCtrlQ         Key = 0x11
	KeyCtrlR         Key = 0x12
	KeyCtrlS         Key = 0x13
	KeyCtrlT         Key = 0x14
	KeyCtrlU         Key = 0x15
	KeyCtrlV         Key = 0x16
	KeyCtrlW         Key = 0x17
	KeyCtrlX         Key = 0x18
	KeyCtrlY         Key = 0x19
	KeyCtrlZ         Key = 0x1a
	KeyEsc           Key = 0x1b
	KeyCtrlBackslash Key = 0x1c
	KeyCtrlRsqBraket Key = 0x1d
	KeyCtrl6         Key = 0x1e
	KeyCtrlSlash     Key = 0x1f
	KeySpace         Key = 0x20
	KeyBackspace2    Key = 0x7f
)

// keyI mirrors termbox.c's tb_key_i(i) = 0xffff - i numbering for the
// out-of-band symbolic keys.
func keyI(i int) Key { return Key(0xffff - i) }

var (
	KeyF1        = keyI(0)
	KeyF2        = keyI(1)
	KeyF3        = keyI(2)
	KeyF4        = keyI(3)
	KeyF5        = keyI(4)
	KeyF6        = keyI(5)
	KeyF7        = keyI(6)
	KeyF8        = keyI(7)
	KeyF9        = keyI(8)
	KeyF10       = keyI(9)
	KeyF11       = keyI(10)
	KeyF12       = keyI(11)
	KeyInsert    = keyI(12)
	KeyDelete    = keyI(13)
	KeyHome      = keyI(14)
	KeyEnd       = keyI(15)
	KeyPgup      = keyI(16)
	KeyPgdn      = keyI(17)
	KeyArrowUp    = keyI(18)
	KeyArrowDown  = keyI(19)
	KeyArrowLeft  = keyI(20)
	KeyArrowRight = keyI(21)
	KeyBackTab    = keyI(22)

	KeyMouseLeft      = keyI(23)
	KeyMouseRight     = keyI(24)
	KeyMouseMiddle    = keyI(25)
	KeyMouseRelease   = keyI(26)
	KeyMouseWheelUp   = keyI(27)
	KeyMouseWheelDown = keyI(28)
)

// Event is a decoded input occurrence. For EventKey, exactly one of Key or
// Ch is nonzero. For EventResize, W/H carry the new size. For EventMouse,
// Key is one of the KeyMouse* constants and X/Y are the cell coordinates.
type Event struct {
	Type EventType
	Key  Key
	Ch   rune
	Mod  Mod
	W, H int
	X, Y int
}
