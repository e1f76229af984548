// SPDX-License-Identifier: MIT

package fov_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/digitalfov/fov"
	"github.com/katalvlaran/digitalfov/grid"
	"github.com/katalvlaran/digitalfov/terrain"
)

func mustMap(t testing.TB, rows ...string) *grid.TerrainMap {
	t.Helper()
	m, err := grid.FromStrings(rows...)
	require.NoError(t, err)
	return m
}

// picture renders vis as rows of '#' (visible) and '.' (hidden).
func picture(vis *grid.Bools) []string {
	return strings.Split(strings.TrimSuffix(vis.String(), "\n"), "\n")
}

func TestCompute_Errors(t *testing.T) {
	m := mustMap(t, "...", "...", "...")
	out, err := grid.NewBools(3, 3)
	require.NoError(t, err)

	assert.ErrorIs(t, fov.Compute(nil, out, 1, 1, 1), fov.ErrNilMap)
	assert.ErrorIs(t, fov.Compute(m, nil, 1, 1, 1), fov.ErrNilOutput)
	assert.ErrorIs(t, fov.Compute(m, out, 1, 1, -1), fov.ErrNegativeRadius)
	assert.ErrorIs(t, fov.Compute(m, out, 1, 1, 2), fov.ErrOutputSize)
	assert.ErrorIs(t, fov.Compute(m, out, 1, 1, 1, fov.WithThreshold(terrain.NumKinds+1)), fov.ErrOptionViolation)

	_, err = fov.FieldOfView(m, 1, 1, -3)
	assert.ErrorIs(t, err, fov.ErrNegativeRadius)
}

func TestCompute_ViewpointOffMapClearsOutput(t *testing.T) {
	m := mustMap(t, "...", "...", "...")
	out, err := grid.NewBools(3, 3)
	require.NoError(t, err)
	out.Fill(true)

	err = fov.Compute(m, out, 3, 1, 1)
	require.ErrorIs(t, err, fov.ErrOutOfBounds)
	assert.Zero(t, out.Count(), "output is cleared before the viewpoint check")

	_, err = fov.FieldOfView(m, -1, 0, 1)
	assert.ErrorIs(t, err, fov.ErrOutOfBounds)
}

func TestCompute_RadiusZero(t *testing.T) {
	m := mustMap(t, "#")
	vis, err := fov.FieldOfView(m, 0, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, vis.Width())
	assert.True(t, vis.Get(0, 0), "the viewpoint is visible even inside a wall")
}

func TestCompute_OverwritesStaleOutput(t *testing.T) {
	m := mustMap(t,
		".....",
		"..#..",
		".....",
		".....",
		".....",
	)
	out, err := grid.NewBools(5, 5)
	require.NoError(t, err)
	out.Fill(true)

	require.NoError(t, fov.Compute(m, out, 2, 2, 2))
	assert.False(t, out.Get(2, 0), "stale mark behind the wall is cleared")
	assert.Equal(t, 24, out.Count())
}

// FOVSuite runs Compute over hand-checked maps.
type FOVSuite struct {
	suite.Suite
	room *grid.TerrainMap
}

func (s *FOVSuite) SetupTest() {
	s.room = mustMap(s.T(),
		"#########",
		"#.......#",
		"#.......#",
		"#.......#",
		"#...#...#",
		"#.......#",
		"#.......#",
		"#.......#",
		"#########",
	)
}

// TestOpenSquare checks that nothing is hidden without walls.
func (s *FOVSuite) TestOpenSquare() {
	m := mustMap(s.T(), ".....", ".....", ".....", ".....", ".....")
	vis, err := fov.FieldOfView(m, 2, 2, 2)
	s.Require().NoError(err)
	s.Equal(25, vis.Count())
}

// TestOpenRoomLargerThanView checks that the whole square is seen when the
// map extends past it.
func (s *FOVSuite) TestOpenRoomLargerThanView() {
	rows := make([]string, 21)
	for i := range rows {
		rows[i] = strings.Repeat(".", 21)
	}
	m := mustMap(s.T(), rows...)
	const r = 7
	vis, err := fov.FieldOfView(m, 10, 10, r)
	s.Require().NoError(err)
	s.Equal((2*r+1)*(2*r+1), vis.Count())
}

// TestSingleWall checks the shadow of one wall cell straight ahead.
func (s *FOVSuite) TestSingleWall() {
	m := mustMap(s.T(),
		".....",
		"..#..",
		".....",
		".....",
		".....",
	)
	vis, err := fov.FieldOfView(m, 2, 2, 2)
	s.Require().NoError(err)
	s.Equal([]string{
		"##.##",
		"#####",
		"#####",
		"#####",
		"#####",
	}, picture(vis))

	vis, err = fov.FieldOfView(m, 2, 2, 2, fov.WithLightWalls(false))
	s.Require().NoError(err)
	s.False(vis.Get(2, 1), "unlit wall")
	s.Equal(23, vis.Count())
}

// TestBoxedIn checks a viewpoint with all eight neighbours walled.
func (s *FOVSuite) TestBoxedIn() {
	m := mustMap(s.T(), "###", "#.#", "###")

	vis, err := fov.FieldOfView(m, 1, 1, 1)
	s.Require().NoError(err)
	s.Equal(9, vis.Count(), "lit walls")

	vis, err = fov.FieldOfView(m, 1, 1, 1, fov.WithLightWalls(false))
	s.Require().NoError(err)
	s.Equal(1, vis.Count())
	s.True(vis.Get(1, 1))

	// a larger radius reaches nothing new; off-map cells stay hidden
	vis, err = fov.FieldOfView(m, 1, 1, 3)
	s.Require().NoError(err)
	s.Equal(9, vis.Count())
}

// TestPillar checks the shadow cast by a pillar in a walled room.
func (s *FOVSuite) TestPillar() {
	const r = 4
	vis, err := fov.FieldOfView(s.room, 4, 2, r)
	s.Require().NoError(err)
	s.Equal([]string{
		".........",
		".........",
		"#########",
		"#########",
		"#########",
		"#########",
		"#########",
		"####.####",
		"####.####",
	}, picture(vis))
	s.Equal(61, vis.Count())

	for _, c := range [][2]int{{4, 5}, {4, 6}} {
		lx, ly := fov.ToLocal(c[0], c[1], 4, 2, r)
		s.False(vis.Get(lx, ly), "(%d,%d) behind the pillar", c[0], c[1])
	}

	vis, err = fov.FieldOfView(s.room, 4, 2, r, fov.WithLightWalls(false))
	s.Require().NoError(err)
	s.Equal(39, vis.Count())
}

// TestOffCentrePillar checks a pillar seen from beside a wall.
func (s *FOVSuite) TestOffCentrePillar() {
	m := mustMap(s.T(),
		"#######",
		"#.....#",
		"#..#..#",
		"#.....#",
		"#######",
	)
	vis, err := fov.FieldOfView(m, 1, 2, 3)
	s.Require().NoError(err)
	s.Equal([]string{
		".......",
		"..#####",
		"..#####",
		"..####.",
		"..#####",
		"..#####",
		".......",
	}, picture(vis))
}

// TestThreshold checks that a palisade blocks by default and not once the
// threshold drops below it.
func (s *FOVSuite) TestThreshold() {
	m := mustMap(s.T(),
		".....",
		"..|..",
		".....",
		".....",
		".....",
	)
	vis, err := fov.FieldOfView(m, 2, 2, 2)
	s.Require().NoError(err)
	s.Equal(24, vis.Count())

	vis, err = fov.FieldOfView(m, 2, 2, 2, fov.WithThreshold(terrain.Palisade))
	s.Require().NoError(err)
	s.Equal(25, vis.Count())

	vis, err = fov.FieldOfView(m, 2, 2, 2, fov.WithThreshold(0))
	s.Require().NoError(err)
	s.Equal(25, vis.Count())
}

// TestCoordinateRoundTrip checks ToLocal and ToMap against each other.
func (s *FOVSuite) TestCoordinateRoundTrip() {
	lx, ly := fov.ToLocal(7, 3, 5, 5, 4)
	s.Equal([2]int{6, 2}, [2]int{lx, ly})
	x, y := fov.ToMap(lx, ly, 5, 5, 4)
	s.Equal([2]int{7, 3}, [2]int{x, y})
}

func TestFOVSuite(t *testing.T) {
	suite.Run(t, new(FOVSuite))
}

// randomMap builds a w×h map with walls at roughly the given density and a
// floor cell at (cx, cy).
func randomMap(t testing.TB, rng *rand.Rand, w, h, cx, cy int, density float64) *grid.TerrainMap {
	t.Helper()
	rows := make([]string, h)
	for y := range rows {
		var sb strings.Builder
		for x := 0; x < w; x++ {
			if (x != cx || y != cy) && rng.Float64() < density {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		rows[y] = sb.String()
	}
	return mustMap(t, rows...)
}

// Compute with unlit walls and LineOfSight agree on every floor cell.
func TestCompute_AgreesWithLineOfSight(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 50; i++ {
		w, h := 4+rng.Intn(10), 4+rng.Intn(10)
		cx, cy := rng.Intn(w), rng.Intn(h)
		m := randomMap(t, rng, w, h, cx, cy, 0.3)
		r := w
		if h > r {
			r = h
		}

		vis, err := fov.FieldOfView(m, cx, cy, r, fov.WithLightWalls(false))
		require.NoError(t, err)
		lit, err := fov.FieldOfView(m, cx, cy, r)
		require.NoError(t, err)

		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				lx, ly := fov.ToLocal(x, y, cx, cy, r)
				if m.Terrain(x, y).BlocksVision() {
					assert.False(t, vis.Get(lx, ly), "map %d: unlit wall (%d,%d)", i, x, y)
					continue
				}
				want := fov.LineOfSight(m, cx, cy, x, y)
				assert.Equal(t, want, vis.Get(lx, ly), "map %d: (%d,%d) from (%d,%d)\n%s", i, x, y, cx, cy, m)
				assert.Equal(t, want, lit.Get(lx, ly), "map %d: lit walls change floor (%d,%d)", i, x, y)
			}
		}
	}
}

// A viewpoint in the open sees the same cells in all eight octants.
func TestCompute_Symmetric(t *testing.T) {
	m := mustMap(t,
		".........",
		".#.....#.",
		"...#.#...",
		".........",
		"....#....",
		".........",
		"...#.#...",
		".#.....#.",
		".........",
	)
	vis, err := fov.FieldOfView(m, 4, 3, 4)
	require.NoError(t, err)
	d := vis.Width()
	// the map is mirror symmetric about x = 4
	for y := 0; y < d; y++ {
		for x := 0; x < d; x++ {
			assert.Equal(t, vis.Get(x, y), vis.Get(d-1-x, y), "(%d,%d)", x, y)
		}
	}
}
