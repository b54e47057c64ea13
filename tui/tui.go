package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/mazegraph/grid"
)

// Glyphs drawn for each cell class.
const (
	WallRune     = '█'
	OpenRune     = ' '
	SolutionRune = '•'
	StartRune    = 'S'
	GoalRune     = 'G'
)

var (
	wallStyle     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	openStyle     = tcell.StyleDefault
	solutionStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	endpointStyle = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
)

// Draw paints g onto screen with one terminal cell per maze cell, anchored at
// the top-left corner. Cells beyond the screen size are clipped. path is drawn
// from start (first) to goal (last) and may be empty.
func Draw(screen tcell.Screen, g *grid.Grid, path []grid.Cell) {
	screen.Clear()
	sw, sh := screen.Size()

	for r := 0; r < min(g.Height(), sh); r++ {
		for c := 0; c < min(g.Width(), sw); c++ {
			if g.At(grid.Cell{Row: r, Col: c}) {
				screen.SetContent(c, r, OpenRune, nil, openStyle)
			} else {
				screen.SetContent(c, r, WallRune, nil, wallStyle)
			}
		}
	}

	for i, c := range path {
		if c.Col >= sw || c.Row >= sh || !g.InBounds(c) {
			continue
		}
		r, st := SolutionRune, solutionStyle
		switch i {
		case 0:
			r, st = StartRune, endpointStyle
		case len(path) - 1:
			r, st = GoalRune, endpointStyle
		}
		screen.SetContent(c.Col, c.Row, r, nil, st)
	}

	screen.Show()
}

// Run draws the maze and blocks until the user quits with q, Esc or Ctrl-C.
// The screen must already be initialized; Run does not finalize it.
func Run(screen tcell.Screen, g *grid.Grid, path []grid.Cell) error {
	Draw(screen, g, path)
	for {
		ev := screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			// Screen finalized elsewhere.
			return nil
		case *tcell.EventResize:
			screen.Sync()
			Draw(screen, g, path)
		case *tcell.EventKey:
			if quits(ev) {
				return nil
			}
		}
	}
}

func quits(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEsc, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}

	return false
}
