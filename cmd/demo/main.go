package main

import (
	"fmt"
	"os"

	"termgrid"
)

func main() {
	// Move a character around a bordered box with the arrow keys; q or
	// Ctrl-C quits. Exercises Init, SetCell, Print, Present, and the
	// mouse/key event loop end to end.

	if err := termgrid.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "termgrid: init: %v\n", err)
		os.Exit(1)
	}
	defer termgrid.Shutdown()

	if err := termgrid.SetInputMode(termgrid.InputEsc | termgrid.InputMouse); err != nil {
		fmt.Fprintf(os.Stderr, "termgrid: set input mode: %v\n", err)
	}

	x, y := termgrid.Width()/2, termgrid.Height()/2
	const fg, bg termgrid.Attr = 0, 0

	draw := func(status string) {
		termgrid.Clear()
		w, h := termgrid.Width(), termgrid.Height()
		for i := 0; i < w; i++ {
			termgrid.SetCell(i, 0, '-', fg, bg)
			termgrid.SetCell(i, h-1, '-', fg, bg)
		}
		for j := 0; j < h; j++ {
			termgrid.SetCell(0, j, '|', fg, bg)
			termgrid.SetCell(w-1, j, '|', fg, bg)
		}
		termgrid.Print(2, 1, fg, bg, status)
		termgrid.SetCell(x, y, '@', fg, bg)
		termgrid.SetCursor(x, y)
		termgrid.Present()
	}

	draw("arrows to move, q to quit")

	for {
		ev, err := termgrid.PollEvent()
		if err != nil {
			fmt.Fprintf(os.Stderr, "termgrid: poll event: %v\n", err)
			return
		}

		switch ev.Type {
		case termgrid.EventResize:
			draw(fmt.Sprintf("resized to %dx%d", ev.W, ev.H))
		case termgrid.EventMouse:
			x, y = ev.X, ev.Y
			draw(fmt.Sprintf("mouse at (%d,%d)", ev.X, ev.Y))
		case termgrid.EventKey:
			switch ev.Key {
			case termgrid.KeyArrowUp:
				y--
			case termgrid.KeyArrowDown:
				y++
			case termgrid.KeyArrowLeft:
				x--
			case termgrid.KeyArrowRight:
				x++
			case termgrid.KeyCtrlC:
				return
			default:
				if ev.Ch == 'q' {
					return
				}
			}
			draw("arrows to move, q to quit")
		}
	}
}
