// SPDX-License-Identifier: MIT

package fov

import "fmt"

// LineOfSight reports whether an unobstructed sightline joins (ax, ay) and
// (bx, by). Invalid input (nil map, an endpoint off the map, a bad option)
// yields false; use CheckLineOfSight to tell those apart from a blocked line.
func LineOfSight(m Map, ax, ay, bx, by int, opts ...Option) bool {
	ok, err := CheckLineOfSight(m, ax, ay, bx, by, opts...)
	return err == nil && ok
}

// CheckLineOfSight is LineOfSight with validation failures returned as
// errors.
//
// A ray from (0, 0) to (U, V) with U ≥ V ≥ 0 crosses column u only in rows
// ⌊u·V/U⌋ and ⌊u·V/U⌋+1, so the sweep steps u from 1 to U with Bresenham
// arithmetic and looks at those two cells. It keeps one bottom and one top
// ray with their wall chains:
//
//   - When u·V/U is whole the line crosses a single cell. Sight fails if no
//     ray passes it, or if it is a wall short of the target.
//   - Otherwise sight fails if neither cell admits a ray. Walls found in the
//     lower and upper cell then tighten the bottom and top ray, and only after
//     both rays moved are the wall corners pushed onto their chains. A wall
//     that would close the sector fails the sweep short of the target.
//
// Cells at Chebyshev distance ≤ 1 always see each other.
//
// Complexity: O(max(|dx|,|dy|)) time and memory.
func CheckLineOfSight(m Map, ax, ay, bx, by int, opts ...Option) (bool, error) {
	o, err := resolve(opts)
	if err != nil {
		return false, err
	}
	if m == nil {
		return false, ErrNilMap
	}
	w, h := m.Width(), m.Height()
	if gridIsIllegal(ax, ay, w, h) {
		return false, fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfBounds, ax, ay, w, h)
	}
	if gridIsIllegal(bx, by, w, h) {
		return false, fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfBounds, bx, by, w, h)
	}

	dx, dy := bx-ax, by-ay
	du, dv := abs(dx), abs(dy)
	if du <= 1 && dv <= 1 {
		return true, nil
	}
	if dv > du {
		du, dv = dv, du
	}
	dir := octantOf(dx, dy)

	// wall reports whether octant-local (u, v) blocks, and whether it is on the map.
	wall := func(u, v int) (blocks, inside bool) {
		ox, oy := transform(dir, u, v)
		x, y := ax+ox, ay+oy
		if gridIsIllegal(x, y, w, h) {
			return true, false
		}
		return m.Terrain(x, y).BlocksVisionAt(o.Threshold), true
	}

	var r rays
	r.reset(du + 1)

	v, rem := 0, 0
	for u := 1; u <= du; u++ {
		rem += dv
		if rem >= du {
			v++
			rem -= du
		}
		last := u == du

		wall0, in0 := wall(u, v)
		if rem == 0 {
			if !in0 || !r.admits(u, v) {
				return false, nil
			}
			if wall0 {
				return last, nil
			}
			continue
		}

		wall1, in1 := wall(u, v+1)
		if !(in0 && r.admits(u, v)) && !(in1 && r.admits(u, v+1)) {
			return false, nil
		}

		corner := point{u, v + 1}
		if wall0 {
			r.raiseBottom(corner)
		}
		if wall1 {
			r.lowerTop(corner)
		}
		if wall0 {
			if r.bottomWallCloses(corner) {
				return last, nil
			}
			r.pushBottomWall(corner)
		}
		if wall1 {
			if r.topWallCloses(corner) {
				return last, nil
			}
			r.pushTopWall(corner)
		}
	}

	return true, nil
}
