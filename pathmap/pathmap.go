package pathmap

import (
	"context"
	"fmt"

	"github.com/katalvlaran/digitalfov/grid"
)

// directions in NextStep preference order: cardinals, then diagonals.
var directions = [8][2]int{
	{0, -1}, {1, 0}, {0, 1}, {-1, 0},
	{-1, -1}, {1, -1}, {1, 1}, {-1, 1},
}

// Pathmap holds the step distance of every cell to one target.
type Pathmap struct {
	width, height int
	target        grid.Point
	dist          []int
}

// walker encapsulates mutable flood state.
type walker struct {
	m     Map
	opts  Options
	ctx   context.Context
	queue []grid.Point
	pm    *Pathmap
}

// Build floods m from (tx, ty) and returns the resulting distance map.
// Returns ErrNilMap, ErrOptionViolation, ErrTargetOutOfBounds, the
// context's error on cancellation, or a wrapped OnVisit error.
func Build(m Map, tx, ty int, opts ...Option) (*Pathmap, error) {
	if m == nil {
		return nil, ErrNilMap
	}
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.err != nil {
		return nil, o.err
	}

	w, h := m.Width(), m.Height()
	if tx < 0 || tx >= w || ty < 0 || ty >= h {
		return nil, fmt.Errorf("%w: (%d,%d) in %dx%d", ErrTargetOutOfBounds, tx, ty, w, h)
	}

	pm := &Pathmap{
		width:  w,
		height: h,
		target: grid.Point{X: tx, Y: ty},
		dist:   make([]int, w*h),
	}
	for i := range pm.dist {
		pm.dist[i] = Unreached
	}

	wk := &walker{
		m:     m,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]grid.Point, 0, w*h),
		pm:    pm,
	}
	wk.enqueue(pm.target, 0)
	if err := wk.loop(); err != nil {
		return nil, err
	}
	return pm, nil
}

func (w *walker) enqueue(p grid.Point, d int) {
	w.pm.dist[w.pm.index(p.X, p.Y)] = d
	w.queue = append(w.queue, p)
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		p := w.queue[0]
		w.queue = w.queue[1:]
		d := w.pm.dist[w.pm.index(p.X, p.Y)]
		if err := w.opts.OnVisit(p.X, p.Y, d); err != nil {
			return fmt.Errorf("pathmap: OnVisit error at (%d,%d): %w", p.X, p.Y, err)
		}
		if w.opts.MaxDepth > 0 && d >= w.opts.MaxDepth {
			continue
		}
		for _, dir := range directions {
			n := p.Add(dir[0], dir[1])
			if !w.pm.inBounds(n.X, n.Y) || w.pm.dist[w.pm.index(n.X, n.Y)] != Unreached {
				continue
			}
			if !w.opts.Passable(w.m.Terrain(n.X, n.Y)) {
				continue
			}
			w.enqueue(n, d+1)
		}
	}
	return nil
}

func (p *Pathmap) inBounds(x, y int) bool {
	return x >= 0 && x < p.width && y >= 0 && y < p.height
}

func (p *Pathmap) index(x, y int) int {
	return y*p.width + x
}

// Target returns the cell the map leads to.
func (p *Pathmap) Target() grid.Point { return p.target }

// Distance returns the number of steps from (x, y) to the target, or
// Unreached.
func (p *Pathmap) Distance(x, y int) int {
	if !p.inBounds(x, y) {
		return Unreached
	}
	return p.dist[p.index(x, y)]
}

// Reaches reports whether (x, y) has a path to the target.
func (p *Pathmap) Reaches(x, y int) bool {
	return p.Distance(x, y) != Unreached
}

// NextStep returns the move from (x, y) to the neighbour closest to the
// target, preferring cardinal moves on ties. ok is false at the target and
// on unreached cells.
func (p *Pathmap) NextStep(x, y int) (dx, dy int, ok bool) {
	cur := p.Distance(x, y)
	if cur <= 0 {
		return 0, 0, false
	}
	best := cur
	for _, dir := range directions {
		d := p.Distance(x+dir[0], y+dir[1])
		if d != Unreached && d < best {
			best = d
			dx, dy = dir[0], dir[1]
		}
	}
	return dx, dy, best < cur
}

// PathFrom lists the cells from (x, y) to the target, excluding (x, y) and
// ending at the target. It is empty when (x, y) is the target.
func (p *Pathmap) PathFrom(x, y int) ([]grid.Point, error) {
	n := p.Distance(x, y)
	if n == Unreached {
		return nil, fmt.Errorf("%w: from (%d,%d)", ErrUnreachable, x, y)
	}
	path := make([]grid.Point, 0, n)
	cur := grid.Point{X: x, Y: y}
	for cur != p.target {
		dx, dy, _ := p.NextStep(cur.X, cur.Y)
		cur = cur.Add(dx, dy)
		path = append(path, cur)
	}
	return path, nil
}
