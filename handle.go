package termgrid

import "os"

// defaultSession backs the package-level convenience functions, per
// spec.md §9's design note: the source's singleton contract (one
// terminal per process is physically true) is preserved, but encapsulated
// behind an opaque *Session rather than a package-global struct, with
// this thin layer deferring to one default instance for callers who don't
// need more than one session.
var defaultSession = newSession()

// NewSession returns a fresh, uninitialized Session handle for callers
// who want explicit control instead of the package-level convenience
// functions below.
func NewSession() *Session { return newSession() }

func Init() error                               { return defaultSession.Init() }
func InitWithFd(f *os.File) error                { return defaultSession.InitWithFd(f) }
func InitWithRWFds(r, w *os.File) error           { return defaultSession.InitWithRWFds(r, w) }
func Shutdown() error                             { return defaultSession.Shutdown() }
func Width() int                                  { return defaultSession.Width() }
func Height() int                                 { return defaultSession.Height() }
func Clear() error                                { return defaultSession.Clear() }
func SetClearAttrs(fg, bg Attr)                   { defaultSession.SetClearAttrs(fg, bg) }
func Present() error                              { return defaultSession.Present() }
func SetCursor(x, y int) error                    { return defaultSession.SetCursor(x, y) }
func HideCursor() error                           { return defaultSession.HideCursor() }
func SetCell(x, y int, ch rune, fg, bg Attr) error { return defaultSession.SetCell(x, y, ch, fg, bg) }
func SetCellEx(x, y int, cluster []rune, fg, bg Attr) error {
	return defaultSession.SetCellEx(x, y, cluster, fg, bg)
}
func ExtendCell(x, y int, ch rune) error            { return defaultSession.ExtendCell(x, y, ch) }
func SetInputMode(mode InputMode) error             { return defaultSession.SetInputMode(mode) }
func SetOutputMode(mode OutputMode) error           { return defaultSession.SetOutputMode(mode) }
func PeekEvent(timeoutMs int) (Event, error)        { return defaultSession.PeekEvent(timeoutMs) }
func PollEvent() (Event, error)                     { return defaultSession.PollEvent() }
func GetFds() (*os.File, <-chan struct{})           { return defaultSession.GetFds() }
func Print(x, y int, fg, bg Attr, str string) (int, error) {
	return defaultSession.Print(x, y, fg, bg, str)
}
func SendRaw(p []byte) error              { return defaultSession.SendRaw(p) }
func SetFunc(post bool, fn EscHook)       { defaultSession.SetFunc(post, fn) }
func CellBuffer() *CellBuffer             { return defaultSession.CellBuffer() }
func LastErrno() error                    { return defaultSession.LastErrno() }
func HasTruecolor() bool                  { return defaultSession.HasTruecolor() }
func HasGraphemeClusters() bool           { return defaultSession.HasGraphemeClusters() }
