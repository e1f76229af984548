// Command fovview walks a viewer around an ASCII map in the terminal and
// shows its field of view and line of sight to a marked target.
package main

import (
	_ "embed"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/digitalfov/fov"
	"github.com/katalvlaran/digitalfov/grid"
	"github.com/katalvlaran/digitalfov/pathmap"
	"github.com/katalvlaran/digitalfov/vision"
	"github.com/katalvlaran/digitalfov/view"
)

//go:embed demo.map
var demoMap string

const maxRadius = 60

type app struct {
	screen tcell.Screen
	level  *grid.TerrainMap
	viewer *vision.Viewer
	theme  view.Theme
	opts   []fov.Option

	target    grid.Point
	hasTarget bool
	paths     *pathmap.Pathmap
}

func loadLevel(path string) (*grid.TerrainMap, error) {
	var r io.Reader = strings.NewReader(demoMap)
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	return grid.ParseTerrain(r)
}

// firstOpenCell returns the first transparent cell in row-major order.
func firstOpenCell(m *grid.TerrainMap) (x, y int, ok bool) {
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			if !m.Terrain(x, y).BlocksVision() {
				return x, y, true
			}
		}
	}
	return 0, 0, false
}

func newApp(s tcell.Screen, level *grid.TerrainMap, x, y, radius int, opts ...fov.Option) (*app, error) {
	if x < 0 || y < 0 {
		var ok bool
		if x, y, ok = firstOpenCell(level); !ok {
			return nil, errors.New("map has no open cell to start on")
		}
	}
	if !level.InBounds(x, y) {
		return nil, fmt.Errorf("start (%d,%d) is outside the %dx%d map", x, y, level.Width(), level.Height())
	}
	if radius < 0 || radius > maxRadius {
		return nil, fmt.Errorf("radius %d outside [0,%d]", radius, maxRadius)
	}

	v := vision.NewViewer(vision.WithRadius(radius), vision.WithFOVOptions(opts...))
	v.MoveTo(x, y)
	return &app{
		screen: s,
		level:  level,
		viewer: v,
		theme:  view.DefaultTheme(),
		opts:   opts,
	}, nil
}

// step moves the viewer by (dx, dy) unless the destination blocks vision.
func (a *app) step(dx, dy int) {
	p, _ := a.viewer.Position()
	x, y := p.X+dx, p.Y+dy
	if !a.level.InBounds(x, y) || a.level.Terrain(x, y).BlocksVision() {
		return
	}
	a.viewer.MoveTo(x, y)
}

// setTarget marks the viewer's cell as the target and floods a distance map
// towards it.
func (a *app) setTarget() {
	p, _ := a.viewer.Position()
	paths, err := pathmap.Build(a.level, p.X, p.Y)
	if err != nil {
		log.Printf("target: %v", err)
		return
	}
	a.target = p
	a.hasTarget = true
	a.paths = paths
}

// approach takes one step towards the target.
func (a *app) approach() {
	if a.paths == nil {
		return
	}
	p, _ := a.viewer.Position()
	if dx, dy, ok := a.paths.NextStep(p.X, p.Y); ok {
		a.step(dx, dy)
	}
}

func (a *app) resize(delta int) {
	r := a.viewer.Radius() + delta
	if r < 0 || r > maxRadius {
		return
	}
	if err := a.viewer.SetRadius(r); err != nil {
		log.Printf("radius: %v", err)
	}
}

var moves = map[rune][2]int{
	'h': {-1, 0}, 'j': {0, 1}, 'k': {0, -1}, 'l': {1, 0},
	'y': {-1, -1}, 'u': {1, -1}, 'b': {-1, 1}, 'n': {1, 1},
}

// handleInput applies one event and reports whether to keep running.
func (a *app) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyLeft:
			a.step(-1, 0)
		case tcell.KeyRight:
			a.step(1, 0)
		case tcell.KeyUp:
			a.step(0, -1)
		case tcell.KeyDown:
			a.step(0, 1)
		case tcell.KeyRune:
			r := ev.Rune()
			if d, ok := moves[r]; ok {
				a.step(d[0], d[1])
				break
			}
			switch r {
			case 'q':
				return false
			case 't':
				a.setTarget()
			case 'T':
				a.hasTarget = false
				a.paths = nil
			case 'g':
				a.approach()
			case '+', '=':
				a.resize(1)
			case '-':
				a.resize(-1)
			}
		}
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}

// status describes the current view for the bottom line.
func (a *app) status(visible int) string {
	p, _ := a.viewer.Position()
	s := fmt.Sprintf(" (%d,%d) r=%d  %d visible", p.X, p.Y, a.viewer.Radius(), visible)
	if a.hasTarget {
		sight := "hidden"
		if fov.LineOfSight(a.level, p.X, p.Y, a.target.X, a.target.Y, a.opts...) {
			sight = "in sight"
		}
		s += fmt.Sprintf("  target (%d,%d): %s", a.target.X, a.target.Y, sight)
		if d := a.paths.Distance(p.X, p.Y); d != pathmap.Unreached {
			s += fmt.Sprintf(", %d steps", d)
		}
	}
	return s + "  [hjklyubn move, t target, g approach, +/- radius, q quit]"
}

func (a *app) draw() error {
	vis, err := a.viewer.FieldOfView(a.level)
	if err != nil {
		return err
	}
	p, _ := a.viewer.Position()

	a.screen.Clear()
	view.Render(a.screen, a.level, vis, p.X, p.Y, a.viewer.Radius(), a.theme)
	if a.hasTarget && a.target != p {
		seen := fov.LineOfSight(a.level, p.X, p.Y, a.target.X, a.target.Y, a.opts...)
		view.DrawTarget(a.screen, a.target.X, a.target.Y, seen, a.theme)
	}
	_, h := a.screen.Size()
	view.DrawStatus(a.screen, h-1, a.status(vis.Count()), a.theme)
	a.screen.Show()
	return nil
}

func (a *app) run() error {
	for {
		if err := a.draw(); err != nil {
			return err
		}
		if !a.handleInput(a.screen.PollEvent()) {
			return nil
		}
	}
}

func main() {
	flag.Parse()

	level, err := loadLevel(*mapFlag)
	if err != nil {
		log.Fatalf("load map: %v", err)
	}

	var opts []fov.Option
	if *darkWallsFlag {
		opts = append(opts, fov.WithLightWalls(false))
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("screen init: %v", err)
	}

	a, err := newApp(screen, level, *startXFlag, *startYFlag, *radiusFlag, opts...)
	if err != nil {
		screen.Fini()
		log.Fatal(err)
	}

	err = a.run()
	screen.Fini()
	if err != nil {
		log.Fatal(err)
	}
}
