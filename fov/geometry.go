// SPDX-License-Identifier: MIT

package fov

// point is a wall corner in octant-local axes: u along the octant's major
// direction, v across it.
type point struct {
	u, v int
}

// whichSideOfLine returns a value with the sign of p.v - Y, where (p.u, Y) is
// the point of line AB above p.u. Positive means p is strictly above AB.
// The caller must ensure a.u < b.u; nothing here checks it.
func whichSideOfLine(a, b, p point) int {
	return (p.v-a.v)*(b.u-a.u) - (b.v-a.v)*(p.u-a.u)
}

// gridIsIllegal reports whether (x,y) lies outside [0,w)×[0,h).
func gridIsIllegal(x, y, w, h int) bool {
	return x < 0 || x >= w || y < 0 || y >= h
}

// floorDiv is a/b rounded towards negative infinity; b > 0.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

// ceilDiv is a/b rounded towards positive infinity; b > 0.
func ceilDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a > 0 {
		q++
	}
	return q
}

// transform maps octant-local (u, v) to a map offset for direction code dir.
// Bit 0 swaps the axes, bit 1 turns a quarter (x, y) -> (-y, x), bit 2
// negates both; always applied in that order.
//
//	dir  offset      dir  offset
//	 0   ( u,  v)     4   (-u, -v)
//	 1   ( v,  u)     5   (-v, -u)
//	 2   (-v,  u)     6   ( v, -u)
//	 3   (-u,  v)     7   ( u, -v)
func transform(dir, u, v int) (x, y int) {
	x, y = u, v
	if dir&1 != 0 {
		x, y = y, x
	}
	if dir&2 != 0 {
		x, y = -y, x
	}
	if dir&4 != 0 {
		x, y = -x, -y
	}
	return x, y
}

// octantOf picks the direction code whose octant contains offset (dx, dy).
// Ties on the diagonal go to the x-major octant.
func octantOf(dx, dy int) int {
	xMajor := abs(dx) >= abs(dy)
	switch {
	case dx >= 0 && dy >= 0:
		if xMajor {
			return 0
		}
		return 1
	case dx >= 0:
		if xMajor {
			return 7
		}
		return 6
	case dy >= 0:
		if xMajor {
			return 3
		}
		return 2
	default:
		if xMajor {
			return 4
		}
		return 5
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
