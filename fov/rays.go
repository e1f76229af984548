// SPDX-License-Identifier: MIT

package fov

// ray is a bounding ray pinned by two wall corners. near lies on the
// opposite chain, far on the ray's own side, and near.u < far.u always.
// touch is the index in the opposite chain that near was last taken from;
// the chain vertex at touch may sit left of near but never right of it.
type ray struct {
	near, far point
	touch     int
}

// side is whichSideOfLine against the ray.
func (r *ray) side(p point) int {
	return whichSideOfLine(r.near, r.far, p)
}

// rays is the bookkeeping of one angular sector: a bottom and a top ray plus
// the two wall chains that may still bound them. Both the recursive scanner
// (through wedge) and the line-of-sight sweep drive it.
//
// bottomWall holds the top corners of walls under the sector, topWall the
// bottom corners of walls over it. Both are convex, strictly increasing in u,
// and live in buffers whose capacity is fixed by reset.
type rays struct {
	bottom, top ray

	bottomWall []point
	topWall    []point
}

// reset opens the sector to a full octant and sizes both chains to hold
// capacity vertices without reallocating.
func (r *rays) reset(capacity int) {
	if cap(r.bottomWall) < capacity {
		r.bottomWall = make([]point, 0, capacity)
	}
	if cap(r.topWall) < capacity {
		r.topWall = make([]point, 0, capacity)
	}
	r.bottom = ray{near: point{0, 1}, far: point{1, -1}}
	r.top = ray{near: point{0, 0}, far: point{1, 2}}
	r.bottomWall = append(r.bottomWall[:0], point{0, 0})
	r.topWall = append(r.topWall[:0], point{0, 1})
}

// admits reports whether some ray between bottom and top still passes
// through the cell (u, v).
func (r *rays) admits(u, v int) bool {
	return r.bottom.side(point{u, v + 1}) > 0 && r.top.side(point{u, v}) < 0
}

// bottomWallCloses reports whether a bottom wall corner at p would leave no
// room under the top ray.
func (r *rays) bottomWallCloses(p point) bool {
	return r.top.side(p) >= 0
}

// topWallCloses reports whether a top wall corner at p would leave no room
// over the bottom ray.
func (r *rays) topWallCloses(p point) bool {
	return r.bottom.side(p) <= 0
}

// raiseBottom swings the bottom ray up to pass through corner p when p is
// above it, then slides its near end along the top chain while the next
// vertex left of p still lies under the ray.
// Each slide consumes one top-chain vertex, so the work is amortized O(1).
func (r *rays) raiseBottom(p point) {
	if r.bottom.side(p) <= 0 {
		return
	}
	r.bottom.far = p
	for r.bottom.touch+1 < len(r.topWall) {
		next := r.topWall[r.bottom.touch+1]
		if next.u >= p.u || r.bottom.side(next) >= 0 {
			break
		}
		r.bottom.near = next
		r.bottom.touch++
	}
}

// lowerTop mirrors raiseBottom for the top ray and the bottom chain.
func (r *rays) lowerTop(p point) {
	if r.top.side(p) >= 0 {
		return
	}
	r.top.far = p
	for r.top.touch+1 < len(r.bottomWall) {
		next := r.bottomWall[r.top.touch+1]
		if next.u >= p.u || r.top.side(next) <= 0 {
			break
		}
		r.top.near = next
		r.top.touch++
	}
}

// pushBottomWall appends p to the bottom chain, replacing the last vertex
// when it shares p's column, and pops middle vertices that no longer bulge
// upwards.
func (r *rays) pushBottomWall(p point) {
	r.bottomWall = pushVertex(r.bottomWall, p)
	for n := len(r.bottomWall); n >= 3; n = len(r.bottomWall) {
		c := r.bottomWall
		if whichSideOfLine(c[n-3], c[n-1], c[n-2]) > 0 {
			break
		}
		c[n-2] = c[n-1]
		r.bottomWall = c[:n-1]
		if r.top.touch == n-2 {
			r.top.touch--
		}
	}
}

// pushTopWall appends p to the top chain and pops middle vertices that no
// longer bulge downwards.
func (r *rays) pushTopWall(p point) {
	r.topWall = pushVertex(r.topWall, p)
	for n := len(r.topWall); n >= 3; n = len(r.topWall) {
		c := r.topWall
		if whichSideOfLine(c[n-3], c[n-1], c[n-2]) < 0 {
			break
		}
		c[n-2] = c[n-1]
		r.topWall = c[:n-1]
		if r.bottom.touch == n-2 {
			r.bottom.touch--
		}
	}
}

// pushVertex appends p, or overwrites the last vertex when it has the same u.
func pushVertex(c []point, p point) []point {
	if n := len(c); n > 0 && c[n-1].u == p.u {
		c[n-1] = p
		return c
	}
	return append(c, p)
}
