// Package termgrid treats a character terminal as a two-dimensional grid of
// styled cells. Callers write into a back buffer without regard for what is
// already on screen; Present diffs it against the front buffer and emits
// the minimal control-sequence stream needed to bring the terminal into
// sync. Keyboard, mouse, and resize events are delivered as a single Event
// stream decoded from the incoming byte stream.
//
// A single Session is meant to be live per process (one real terminal, one
// session), but the type itself carries no global state: construct one with
// NewSession, or use the package-level functions (Init, SetCell, Present,
// ...) which operate on a default Session created at package
// initialization, for the common case of a program that only ever touches
// one terminal.
package termgrid
