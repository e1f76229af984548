package grid

import "strings"

// Bools is a fixed-size boolean grid stored row-major.
// It is the visibility buffer handed to fov.Compute.
type Bools struct {
	width, height int
	data          []bool
}

// NewBools allocates a w×h grid with every cell false.
// Returns ErrBadShape if w or h is not positive.
// Complexity: O(W×H).
func NewBools(w, h int) (*Bools, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrBadShape
	}
	return &Bools{width: w, height: h, data: make([]bool, w*h)}, nil
}

// Width returns the number of columns.
func (b *Bools) Width() int { return b.width }

// Height returns the number of rows.
func (b *Bools) Height() int { return b.height }

// InBounds reports whether (x,y) lies within the grid.
func (b *Bools) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the cell at (x,y); out-of-range reads are false.
func (b *Bools) Get(x, y int) bool {
	if !b.InBounds(x, y) {
		return false
	}
	return b.data[b.index(x, y)]
}

// Set writes the cell at (x,y); out-of-range writes are ignored.
func (b *Bools) Set(x, y int, v bool) {
	if !b.InBounds(x, y) {
		return
	}
	b.data[b.index(x, y)] = v
}

// Fill sets every cell to v.
func (b *Bools) Fill(v bool) {
	for i := range b.data {
		b.data[i] = v
	}
}

// Count returns the number of true cells.
func (b *Bools) Count() int {
	n := 0
	for _, v := range b.data {
		if v {
			n++
		}
	}
	return n
}

// Each calls fn for every true cell in row-major order.
func (b *Bools) Each(fn func(x, y int)) {
	for i, v := range b.data {
		if v {
			fn(b.Coordinate(i))
		}
	}
}

// index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (b *Bools) index(x, y int) int {
	return y*b.width + x
}

// Coordinate converts a row‑major index back to (x,y).
// Complexity: O(1).
func (b *Bools) Coordinate(idx int) (x, y int) {
	return idx % b.width, idx / b.width
}

// String renders true cells as '#' and false cells as '.', one row per line.
func (b *Bools) String() string {
	var sb strings.Builder
	sb.Grow((b.width + 1) * b.height)
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			if b.data[b.index(x, y)] {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
