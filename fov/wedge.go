// SPDX-License-Identifier: MIT

package fov

// wedge is the sector scanned by one recursive scanner call. It is owned by
// exactly one call frame and handed back to its pool before that frame
// returns.
type wedge struct {
	rays
}

// newWedge returns a full-octant wedge whose chains hold radius+1 vertices.
func newWedge(radius int) *wedge {
	w := &wedge{}
	w.reset(radius + 1)
	return w
}

// copyFrom overwrites w with src: both rays and the used part of both chains.
// Complexity: O(len(chains)).
func (w *wedge) copyFrom(src *wedge) error {
	if w == nil || src == nil {
		return errNilWedge
	}
	if w == src {
		return errWedgeAlias
	}
	w.bottom = src.bottom
	w.top = src.top
	w.bottomWall = append(w.bottomWall[:0], src.bottomWall...)
	w.topWall = append(w.topWall[:0], src.topWall...)
	return nil
}

// addBottomWall records a wall cell at (u, v) lying under the wedge. Its top
// corner (u, v+1) raises the bottom ray and joins the bottom chain.
// Returns errWedgeBlocked, leaving w unchanged, when the corner is on or over
// the top ray.
func (w *wedge) addBottomWall(u, v int) error {
	p := point{u, v + 1}
	if w.bottomWallCloses(p) {
		return errWedgeBlocked
	}
	w.raiseBottom(p)
	w.pushBottomWall(p)
	return nil
}

// addTopWall records a wall cell at (u, v) lying over the wedge. Its bottom
// corner (u, v) lowers the top ray and joins the top chain.
// Returns errWedgeBlocked, leaving w unchanged, when the corner is on or
// under the bottom ray.
func (w *wedge) addTopWall(u, v int) error {
	p := point{u, v}
	if w.topWallCloses(p) {
		return errWedgeBlocked
	}
	w.lowerTop(p)
	w.pushTopWall(p)
	return nil
}

// degenerate reports whether either ray has both touch points in one column,
// i.e. the wedge has no area.
func (w *wedge) degenerate() bool {
	return w.bottom.near.u == w.bottom.far.u || w.top.near.u == w.top.far.u
}

// lowestRow is the first row at column u on or above the bottom ray,
// clamped to 0.
func (w *wedge) lowestRow(u int) int {
	b := w.bottom
	v := floorDiv((b.far.v-b.near.v)*(u-b.near.u), b.far.u-b.near.u) + b.near.v
	if v < 0 {
		return 0
	}
	return v
}

// highestRow is the last row at column u strictly under the top ray,
// clamped to the octant diagonal u.
func (w *wedge) highestRow(u int) int {
	t := w.top
	v := ceilDiv((t.far.v-t.near.v)*(u-t.near.u), t.far.u-t.near.u) + t.near.v - 1
	if v > u {
		return u
	}
	return v
}

// wedgePool hands out wedges sized for one radius and takes them back.
// It lives for a single Compute call and is not safe for concurrent use.
type wedgePool struct {
	radius      int
	free        []*wedge
	outstanding int
}

func newWedgePool(radius int) *wedgePool {
	return &wedgePool{radius: radius}
}

// acquire returns a full-octant wedge, reusing a released one when possible.
func (p *wedgePool) acquire() *wedge {
	p.outstanding++
	if n := len(p.free); n > 0 {
		w := p.free[n-1]
		p.free = p.free[:n-1]
		w.reset(p.radius + 1)
		return w
	}
	return newWedge(p.radius)
}

// release gives w back. Releasing nil is a no-op.
func (p *wedgePool) release(w *wedge) {
	if w == nil {
		return
	}
	p.outstanding--
	p.free = append(p.free, w)
}
