package chart

import "github.com/gdamore/tcell/v2"

// Run shows charts on screen one at a time until the user quits.
// n / Space / Right advance, p / Left go back, q / Esc / Ctrl-C quit.
// The caller owns screen initialisation and Fini.
func Run(screen tcell.Screen, charts []Chart) {
	if len(charts) == 0 {
		return
	}
	idx := 0
	redraw := func() {
		Draw(screen, charts[idx])
		w, h := screen.Size()
		hint := "[n] next  [p] prev  [q] quit"
		drawText(screen, max(0, w-len(hint)), h-1, styleHint, hint)
		screen.Show()
	}
	redraw()

	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			screen.Sync()
			redraw()
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
				return
			case ev.Key() == tcell.KeyRight:
				idx = (idx + 1) % len(charts)
			case ev.Key() == tcell.KeyLeft:
				idx = (idx + len(charts) - 1) % len(charts)
			case ev.Key() == tcell.KeyRune:
				switch ev.Rune() {
				case 'q':
					return
				case 'n', ' ':
					idx = (idx + 1) % len(charts)
				case 'p':
					idx = (idx + len(charts) - 1) % len(charts)
				}
			}
			redraw()
		}
	}
}
