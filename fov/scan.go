// SPDX-License-Identifier: MIT

package fov

import (
	"errors"
	"fmt"
)

// scanner carries everything the recursive octant walk needs for one
// Compute call.
type scanner struct {
	m             Map
	out           Grid
	width, height int
	cx, cy        int
	radius        int
	opts          Options
	pool          *wedgePool
}

func newScanner(m Map, out Grid, cx, cy, radius int, opts Options) *scanner {
	return &scanner{
		m:      m,
		out:    out,
		width:  m.Width(),
		height: m.Height(),
		cx:     cx,
		cy:     cy,
		radius: radius,
		opts:   opts,
		pool:   newWedgePool(radius),
	}
}

// run scans all 8 octants. A failing octant does not stop the others; the
// failures are joined and marks already written stay in place.
func (s *scanner) run() error {
	var errs []error
	for dir := 0; dir < 8; dir++ {
		if err := s.scan(dir, 1, s.pool.acquire()); err != nil {
			errs = append(errs, fmt.Errorf("fov: octant %d: %w", dir, err))
		}
	}
	return errors.Join(errs...)
}

// visit marks the cell at octant-local (u, v) and reports whether it blocks
// sight. Cells off the map block and are never marked.
func (s *scanner) visit(dir, u, v int) (blocks bool) {
	dx, dy := transform(dir, u, v)
	x, y := s.cx+dx, s.cy+dy
	if gridIsIllegal(x, y, s.width, s.height) {
		return true
	}
	blocks = s.m.Terrain(x, y).BlocksVisionAt(s.opts.Threshold)
	if !blocks || s.opts.LightWalls {
		s.out.Set(dx+s.radius, dy+s.radius, true)
	}
	return blocks
}

// scan walks octant dir from column uStart outwards inside w.
//
// scan owns w: it is released on every return path, including the
// degenerate-wedge check and a failing child.
//
// Per column the visible rows run from the bottom ray to the top ray. A
// floor→wall step remembers a pending top wall. A wall→floor step first
// hands the region above that wall to a child wedge scanned from u+1, then
// narrows w to the region below it. After the column a pending top wall is
// committed to w; a column that ends in wall with nothing pending closes w.
func (s *scanner) scan(dir, uStart int, w *wedge) error {
	defer s.pool.release(w)

	if w.degenerate() {
		return ErrDegenerateWedge
	}

	for u := uStart; u <= s.radius; u++ {
		vStart := w.lowestRow(u)
		vEnd := w.highestRow(u)
		if vStart > vEnd {
			break
		}

		prevWall := true
		pending := false
		pendingV := 0

		for v := vStart; v <= vEnd; v++ {
			if s.visit(dir, u, v) {
				if !prevWall {
					pending = true
					pendingV = v
				}
				prevWall = true
				continue
			}
			if prevWall {
				if pending {
					if err := s.spawn(dir, u, pendingV, w); err != nil {
						return err
					}
					pending = false
				}
				if w.addBottomWall(u, v-1) != nil {
					// w is closed
					return nil
				}
			}
			prevWall = false
		}

		if pending {
			if w.addTopWall(u, pendingV) != nil {
				return nil
			}
		} else if prevWall {
			break
		}
	}

	return nil
}

// spawn scans the part of w above a wall whose bottom corner is (u, v) in a
// child wedge starting at column u+1.
func (s *scanner) spawn(dir, u, v int, w *wedge) error {
	child := s.pool.acquire()
	if err := child.copyFrom(w); err != nil {
		s.pool.release(child)
		return err
	}
	if err := child.addTopWall(u, v); err != nil {
		// nothing of w lies above the wall
		s.pool.release(child)
		return nil
	}
	return s.scan(dir, u+1, child)
}
