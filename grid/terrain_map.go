package grid

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/digitalfov/terrain"
)

// TerrainMap is a rectangular grid of terrain kinds.
// cells[y][x] holds the kind at (x, y); x grows to the right, y downwards.
type TerrainMap struct {
	width, height int
	cells         [][]terrain.Kind
}

// NewTerrainMap constructs a TerrainMap from a non-empty, rectangular 2D slice
// indexed [y][x]. It deep-copies the input so later edits to cells do not leak in.
// Returns ErrEmptyGrid if cells has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func NewTerrainMap(cells [][]terrain.Kind) (*TerrainMap, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(cells), len(cells[0])
	for _, row := range cells {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	copied := make([][]terrain.Kind, h)
	for y := 0; y < h; y++ {
		copied[y] = make([]terrain.Kind, w)
		copy(copied[y], cells[y])
	}

	return &TerrainMap{width: w, height: h, cells: copied}, nil
}

// NewFilled returns a w×h map where every cell is k.
// Returns ErrBadShape if w or h is not positive.
func NewFilled(w, h int, k terrain.Kind) (*TerrainMap, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrBadShape
	}
	cells := make([][]terrain.Kind, h)
	for y := range cells {
		row := make([]terrain.Kind, w)
		for x := range row {
			row[x] = k
		}
		cells[y] = row
	}

	return &TerrainMap{width: w, height: h, cells: cells}, nil
}

// ParseTerrain reads an ASCII map, one row per line and one glyph per cell
// (see terrain.FromGlyph). Blank lines are skipped.
// Unknown glyphs are reported with their 1-based line and column.
func ParseTerrain(r io.Reader) (*TerrainMap, error) {
	var cells [][]terrain.Kind
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), "\r")
		if text == "" {
			continue
		}
		row := make([]terrain.Kind, 0, len(text))
		col := 0
		for _, g := range text {
			col++
			k, err := terrain.FromGlyph(g)
			if err != nil {
				return nil, fmt.Errorf("grid: line %d column %d: %w", line, col, err)
			}
			row = append(row, k)
		}
		cells = append(cells, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("grid: read map: %w", err)
	}

	return NewTerrainMap(cells)
}

// FromStrings is ParseTerrain over in-memory rows; handy for fixtures.
func FromStrings(rows ...string) (*TerrainMap, error) {
	return ParseTerrain(strings.NewReader(strings.Join(rows, "\n")))
}

// Width returns the number of columns.
func (m *TerrainMap) Width() int { return m.width }

// Height returns the number of rows.
func (m *TerrainMap) Height() int { return m.height }

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (m *TerrainMap) InBounds(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

// Terrain returns the kind at (x,y). Out-of-range reads return StoneWall,
// so anything past the edge blocks vision.
func (m *TerrainMap) Terrain(x, y int) terrain.Kind {
	if !m.InBounds(x, y) {
		return terrain.StoneWall
	}
	return m.cells[y][x]
}

// Set overwrites the kind at (x,y).
// Returns ErrOutOfRange for coordinates outside the map.
func (m *TerrainMap) Set(x, y int, k terrain.Kind) error {
	if !m.InBounds(x, y) {
		return fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfRange, x, y, m.width, m.height)
	}
	m.cells[y][x] = k
	return nil
}

// String renders the map with one glyph per cell and a newline per row.
func (m *TerrainMap) String() string {
	var sb strings.Builder
	sb.Grow((m.width + 1) * m.height)
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			sb.WriteRune(m.cells[y][x].Glyph())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
