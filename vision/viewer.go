package vision

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/digitalfov/fov"
	"github.com/katalvlaran/digitalfov/grid"
)

// DefaultRadius is the radius of a Viewer built without WithRadius.
const DefaultRadius = 10

var (
	// ErrUnplaced is returned when a Viewer is queried before MoveTo.
	ErrUnplaced = errors.New("vision: viewer has no position")

	// ErrBadRadius indicates a negative radius.
	ErrBadRadius = errors.New("vision: radius must be >= 0")
)

// ViewerOption configures a Viewer at construction.
type ViewerOption func(*Viewer)

// WithRadius sets the view radius. A negative radius panics, since it is a
// programming error at construction time.
func WithRadius(r int) ViewerOption {
	return func(v *Viewer) {
		if r < 0 {
			panic(ErrBadRadius.Error())
		}
		v.radius = r
	}
}

// WithFOVOptions passes opts to every fov.Compute the Viewer runs.
func WithFOVOptions(opts ...fov.Option) ViewerOption {
	return func(v *Viewer) {
		v.fovOpts = append(v.fovOpts, opts...)
	}
}

// Viewer caches the field of view of one observer.
type Viewer struct {
	radius  int
	fovOpts []fov.Option

	pos    grid.Point
	placed bool

	buf   *grid.Bools
	fresh bool
}

// NewViewer returns an unplaced Viewer with DefaultRadius unless overridden.
func NewViewer(opts ...ViewerOption) *Viewer {
	v := &Viewer{radius: DefaultRadius}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Radius returns the current view radius.
func (v *Viewer) Radius() int { return v.radius }

// SetRadius changes the view radius. The buffer is reallocated on the next
// query when the size changes.
func (v *Viewer) SetRadius(r int) error {
	if r < 0 {
		return fmt.Errorf("%w: got %d", ErrBadRadius, r)
	}
	if r == v.radius {
		return nil
	}
	v.radius = r
	v.buf = nil
	v.fresh = false
	return nil
}

// MoveTo places the viewer at (x, y). Moving to the current position keeps
// the cache.
func (v *Viewer) MoveTo(x, y int) {
	p := grid.Point{X: x, Y: y}
	if v.placed && p == v.pos {
		return
	}
	v.pos = p
	v.placed = true
	v.fresh = false
}

// Position returns the viewer's position and whether it has one.
func (v *Viewer) Position() (grid.Point, bool) {
	return v.pos, v.placed
}

// Invalidate forces the next query to recompute, e.g. after the map changed.
func (v *Viewer) Invalidate() { v.fresh = false }

// Fresh reports whether the cached field of view is current.
func (v *Viewer) Fresh() bool { return v.fresh }

// FieldOfView returns the visibility grid centred on the viewer, recomputing
// it over m when stale. The returned grid is owned by the Viewer and is
// overwritten by later recomputations.
//
// The cache does not know which map it was computed for: call Invalidate
// when switching maps.
func (v *Viewer) FieldOfView(m fov.Map) (*grid.Bools, error) {
	if !v.placed {
		return nil, ErrUnplaced
	}
	if v.fresh {
		return v.buf, nil
	}
	if v.buf == nil {
		d := 2*v.radius + 1
		buf, err := grid.NewBools(d, d)
		if err != nil {
			return nil, err
		}
		v.buf = buf
	}
	if err := fov.Compute(m, v.buf, v.pos.X, v.pos.Y, v.radius, v.fovOpts...); err != nil {
		return nil, err
	}
	v.fresh = true
	return v.buf, nil
}

// CanSee reports whether map cell (x, y) is in the viewer's field of view.
// Cells outside the view square are never visible.
func (v *Viewer) CanSee(m fov.Map, x, y int) (bool, error) {
	vis, err := v.FieldOfView(m)
	if err != nil {
		return false, err
	}
	lx, ly := fov.ToLocal(x, y, v.pos.X, v.pos.Y, v.radius)
	return vis.Get(lx, ly), nil
}

// VisibleCells lists the map coordinates of every visible cell in row-major
// order.
func (v *Viewer) VisibleCells(m fov.Map) ([]grid.Point, error) {
	vis, err := v.FieldOfView(m)
	if err != nil {
		return nil, err
	}
	cells := make([]grid.Point, 0, vis.Count())
	vis.Each(func(lx, ly int) {
		x, y := fov.ToMap(lx, ly, v.pos.X, v.pos.Y, v.radius)
		cells = append(cells, grid.Point{X: x, Y: y})
	})
	return cells, nil
}
