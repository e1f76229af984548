package grid_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/digitalfov/grid"
	"github.com/katalvlaran/digitalfov/terrain"
)

//----------------------------------------------------------------------------//
// TerrainMap construction
//----------------------------------------------------------------------------//

// TestNewTerrainMap_Errors verifies that NewTerrainMap rejects empty or ragged inputs.
func TestNewTerrainMap_Errors(t *testing.T) {
	f, w := terrain.StoneFloor, terrain.StoneWall
	cases := []struct {
		name  string
		cells [][]terrain.Kind
		err   error
	}{
		{"EmptyRows", [][]terrain.Kind{}, grid.ErrEmptyGrid},
		{"EmptyCols", [][]terrain.Kind{{}}, grid.ErrEmptyGrid},
		{"NonRectangular", [][]terrain.Kind{{f, w}, {f}}, grid.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.NewTerrainMap(tc.cells)
			if !errors.Is(err, tc.err) {
				t.Errorf("NewTerrainMap(%v) error = %v; want %v", tc.cells, err, tc.err)
			}
		})
	}
}

// TestNewTerrainMap_DeepCopy ensures later edits of the input do not reach the map.
func TestNewTerrainMap_DeepCopy(t *testing.T) {
	cells := [][]terrain.Kind{{terrain.StoneFloor, terrain.Grass}}
	m, err := grid.NewTerrainMap(cells)
	require.NoError(t, err)
	cells[0][0] = terrain.StoneWall
	assert.Equal(t, terrain.StoneFloor, m.Terrain(0, 0))
	assert.Equal(t, 2, m.Width())
	assert.Equal(t, 1, m.Height())
}

func TestNewFilled(t *testing.T) {
	_, err := grid.NewFilled(0, 3, terrain.Dirt)
	assert.ErrorIs(t, err, grid.ErrBadShape)

	m, err := grid.NewFilled(3, 2, terrain.Dirt)
	require.NoError(t, err)
	assert.Equal(t, ":::\n:::\n", m.String())
}

// TestInBounds checks InBounds and the wall returned past the edge.
func TestInBounds(t *testing.T) {
	m, err := grid.FromStrings(
		"...",
		"...",
	)
	require.NoError(t, err)

	for _, xy := range [][2]int{{0, 0}, {2, 1}, {1, 1}} {
		assert.True(t, m.InBounds(xy[0], xy[1]), "InBounds(%d,%d)", xy[0], xy[1])
	}
	for _, xy := range [][2]int{{-1, 0}, {3, 0}, {1, 2}, {2, -1}} {
		assert.False(t, m.InBounds(xy[0], xy[1]), "InBounds(%d,%d)", xy[0], xy[1])
		assert.Equal(t, terrain.StoneWall, m.Terrain(xy[0], xy[1]))
	}
}

//----------------------------------------------------------------------------//
// ASCII parsing
//----------------------------------------------------------------------------//

func TestParseTerrain(t *testing.T) {
	src := "#=|\r\n\n._\"\n:<>\n"
	m, err := grid.ParseTerrain(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, 3, m.Width())
	require.Equal(t, 3, m.Height())

	assert.Equal(t, terrain.StoneWall, m.Terrain(0, 0))
	assert.Equal(t, terrain.WoodWall, m.Terrain(1, 0))
	assert.Equal(t, terrain.Palisade, m.Terrain(2, 0))
	assert.Equal(t, terrain.WoodFloor, m.Terrain(1, 1))
	assert.Equal(t, terrain.Grass, m.Terrain(2, 1))
	assert.Equal(t, terrain.Downstairs, m.Terrain(2, 2))
	assert.Equal(t, "#=|\n._\"\n:<>\n", m.String())
}

func TestParseTerrain_Errors(t *testing.T) {
	_, err := grid.FromStrings("...", ".X.")
	require.ErrorIs(t, err, terrain.ErrUnknownGlyph)
	assert.Contains(t, err.Error(), "line 2 column 2")

	_, err = grid.FromStrings("...", "..")
	assert.ErrorIs(t, err, grid.ErrNonRectangular)

	_, err = grid.FromStrings()
	assert.ErrorIs(t, err, grid.ErrEmptyGrid)
}

func TestTerrainMap_Set(t *testing.T) {
	m, err := grid.FromStrings("...")
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 0, terrain.Palisade))
	assert.Equal(t, terrain.Palisade, m.Terrain(1, 0))
	assert.ErrorIs(t, m.Set(3, 0, terrain.Palisade), grid.ErrOutOfRange)
}

//----------------------------------------------------------------------------//
// Bools
//----------------------------------------------------------------------------//

func TestBools(t *testing.T) {
	_, err := grid.NewBools(2, 0)
	assert.ErrorIs(t, err, grid.ErrBadShape)

	b, err := grid.NewBools(3, 2)
	require.NoError(t, err)
	assert.Equal(t, 0, b.Count())

	b.Set(2, 1, true)
	b.Set(0, 0, true)
	b.Set(5, 5, true) // ignored
	assert.True(t, b.Get(2, 1))
	assert.False(t, b.Get(1, 1))
	assert.False(t, b.Get(-1, 0))
	assert.Equal(t, 2, b.Count())
	assert.Equal(t, "#..\n..#\n", b.String())

	var cells [][2]int
	b.Each(func(x, y int) { cells = append(cells, [2]int{x, y}) })
	assert.Equal(t, [][2]int{{0, 0}, {2, 1}}, cells)

	x, y := b.Coordinate(5)
	assert.Equal(t, [2]int{2, 1}, [2]int{x, y})

	b.Fill(true)
	assert.Equal(t, 6, b.Count())
	b.Fill(false)
	assert.Equal(t, 0, b.Count())
}

func TestPoint_Add(t *testing.T) {
	p := grid.Point{X: 2, Y: 3}
	assert.Equal(t, grid.Point{X: 1, Y: 4}, p.Add(-1, 1))
	assert.Equal(t, grid.Point{X: 2, Y: 3}, p, "Add does not mutate")
}
