package view

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/katalvlaran/digitalfov/fov"
	"github.com/katalvlaran/digitalfov/grid"
)

// Render draws m with the field of view vis computed at (cx, cy) for radius.
// Cells outside the screen are skipped. A nil vis draws everything unseen.
func Render(s tcell.Screen, m fov.Map, vis *grid.Bools, cx, cy, radius int, t Theme) {
	sw, sh := s.Size()
	w, h := min(m.Width(), sw), min(m.Height(), sh)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			lx, ly := fov.ToLocal(x, y, cx, cy, radius)
			if vis == nil || !vis.Get(lx, ly) {
				s.SetContent(x, y, ' ', nil, t.Unseen)
				continue
			}
			k := m.Terrain(x, y)
			style := t.Floor
			if k.BlocksVision() {
				style = t.Wall
			}
			s.SetContent(x, y, k.Glyph(), nil, style)
		}
	}
	if cx >= 0 && cx < w && cy >= 0 && cy < h {
		s.SetContent(cx, cy, '@', nil, t.Viewer)
	}
}

// DrawTarget marks the line-of-sight target at (x, y).
func DrawTarget(s tcell.Screen, x, y int, visible bool, t Theme) {
	r := 'x'
	if visible {
		r = 'X'
	}
	s.SetContent(x, y, r, nil, t.Target)
}

// DrawStatus writes text on screen row row and blanks the rest of it. Text
// wider than the screen is cut.
func DrawStatus(s tcell.Screen, row int, text string, t Theme) {
	sw, _ := s.Size()
	x := 0
	for _, r := range text {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		if x+rw > sw {
			break
		}
		s.SetContent(x, row, r, nil, t.Status)
		x += rw
	}
	for ; x < sw; x++ {
		s.SetContent(x, row, ' ', nil, t.Status)
	}
}
