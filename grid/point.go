package grid

// Point is a map coordinate.
type Point struct {
	X, Y int
}

// Add returns p moved by (dx, dy).
func (p Point) Add(dx, dy int) Point {
	return Point{p.X + dx, p.Y + dy}
}
