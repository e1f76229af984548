// Package digitalfov computes what a viewer on a square grid can see, using
// integer-exact digital field of view by recursive shadowcasting.
//
// A cell is visible when some straight line leaves the viewer's cell and
// reaches it without entering a wall cell on the way. Everything is decided
// with integer cross products, so the result is exact and the same on every
// platform.
//
// Packages:
//
//	terrain/     terrain kinds and the vision-blocking threshold
//	grid/        rectangular terrain maps, ASCII parsing, boolean grids
//	fov/         field of view (Compute, FieldOfView) and LineOfSight
//	vision/      per-observer cached field of view
//	pathmap/     breadth-first distance maps toward a target cell
//	view/        tcell rendering of a map and its field of view
//	cmd/fovview/ interactive terminal viewer
//
// Quick ASCII example, viewer '@' at radius 2 with one wall ahead:
//
//	. . . . .        # # . # #
//	. . # . .   →    # # # # #      '#' visible, '.' hidden
//	. . @ . .        # # # # #
//
// (only the top three rows shown; the wall is lit, the cell behind it is not)
//
//	go get github.com/katalvlaran/digitalfov/fov
package digitalfov
