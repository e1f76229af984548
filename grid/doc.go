// Package grid holds the caller-owned rectangular containers the visibility
// core reads from and writes into.
//
// What:
//
//   - TerrainMap wraps a rectangular grid of terrain.Kind values. The core
//     only reads it; callers own its lifetime and may mutate it between calls.
//   - Point is a plain map coordinate shared by the higher-level packages.
//   - Bools is a fixed-size boolean grid, used as the (2r+1)×(2r+1)
//     visibility buffer with the viewpoint at (r, r).
//
// Why:
//
//   - Game maps: load an ASCII level, probe terrain, feed it to fov.
//   - Test fixtures: FromStrings keeps expected maps readable in test code.
//
// Complexity:
//
//   - NewTerrainMap, ParseTerrain: O(W×H) time and memory.
//   - Terrain, Set, Get, InBounds: O(1).
//   - Bools.Fill, Bools.Count: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadShape: requested width or height is not positive.
//   - ErrOutOfRange: a coordinate lies outside the grid.
package grid
