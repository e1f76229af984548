// SPDX-License-Identifier: MIT

package fov

import (
	"fmt"

	"github.com/katalvlaran/digitalfov/grid"
)

// Compute writes into out every cell visible from (cx, cy) within radius.
//
// out must be (2·radius+1)×(2·radius+1); the cell at map (x, y) is stored at
// (x-cx+radius, y-cy+radius). Every cell of out is reset to false first, then
// visible cells are set. The viewpoint is always visible. Cells off the map
// are never set and block sight.
//
// Steps:
//  1. Resolve options; validate map, output, radius and output size.
//  2. Clear out.
//  3. Reject a viewpoint off the map (out stays cleared).
//  4. Mark the viewpoint and scan the 8 octants, each from column 1 with a
//     full-octant wedge.
//
// A failing octant does not roll back marks written by earlier ones: on
// error the content of out is indeterminate and should be discarded.
//
// Complexity: O(radius²) time; O(radius²) extra memory in the worst case
// for the wedges alive along the deepest recursion.
func Compute(m Map, out Grid, cx, cy, radius int, opts ...Option) error {
	o, err := resolve(opts)
	if err != nil {
		return err
	}
	if m == nil {
		return ErrNilMap
	}
	if out == nil {
		return ErrNilOutput
	}
	if radius < 0 {
		return fmt.Errorf("%w: got %d", ErrNegativeRadius, radius)
	}
	d := 2*radius + 1
	if out.Width() != d || out.Height() != d {
		return fmt.Errorf("%w: got %dx%d, want %dx%d", ErrOutputSize, out.Width(), out.Height(), d, d)
	}

	for y := 0; y < d; y++ {
		for x := 0; x < d; x++ {
			out.Set(x, y, false)
		}
	}

	if gridIsIllegal(cx, cy, m.Width(), m.Height()) {
		return fmt.Errorf("%w: viewpoint (%d,%d) in %dx%d", ErrOutOfBounds, cx, cy, m.Width(), m.Height())
	}
	out.Set(radius, radius, true)

	return newScanner(m, out, cx, cy, radius, o).run()
}

// FieldOfView allocates a (2·radius+1)² grid and fills it with Compute.
// The grid is returned only on success.
func FieldOfView(m Map, cx, cy, radius int, opts ...Option) (*grid.Bools, error) {
	if radius < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegativeRadius, radius)
	}
	out, err := grid.NewBools(2*radius+1, 2*radius+1)
	if err != nil {
		return nil, err
	}
	if err := Compute(m, out, cx, cy, radius, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// ToLocal converts map (x, y) into the output grid frame of a view centred
// on (cx, cy).
func ToLocal(x, y, cx, cy, radius int) (lx, ly int) {
	return x - cx + radius, y - cy + radius
}

// ToMap converts output grid (lx, ly) back into map coordinates.
func ToMap(lx, ly, cx, cy, radius int) (x, y int) {
	return lx + cx - radius, ly + cy - radius
}
