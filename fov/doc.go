// SPDX-License-Identifier: MIT

// Package fov computes what an actor standing on a grid cell can see, using
// integer-exact digital field of view with recursive shadowcasting, and
// answers single line-of-sight queries between two cells.
//
// What:
//
//   - Compute fills a caller-owned (2r+1)×(2r+1) boolean grid with every cell
//     visible from (cx, cy) within radius r. The viewpoint sits at (r, r).
//   - FieldOfView allocates that grid and calls Compute.
//   - LineOfSight reports whether an unobstructed sightline joins two cells.
//
// How:
//
//	The plane around the viewpoint is split into 8 octants. One scanner works
//	in octant-local axes (u along the major direction, v across it, 0 ≤ v ≤ u)
//	and a 3-bit direction code maps (u, v) back to map offsets.
//
//	Inside an octant the visible area is a wedge bounded by a bottom ray and a
//	top ray. Each ray is pinned by two wall corners, so no slope is ever stored
//	as a fraction. Walls seen so far are kept as two convex chains; a corner
//	that can no longer bound any future ray is pruned when it is pushed. Rays
//	remember which chain vertex they rest on, so re-seating them only moves
//	forward.
//
//	Scanning walks column by column. When a run of wall ends, the part of the
//	wedge above the wall continues in a child wedge (a recursive call) and the
//	current wedge narrows to the part below it.
//
//	LineOfSight follows one Bresenham line and keeps a single pair of rays and
//	chains, since a single sightline never branches.
//
// Complexity:
//
//   - Compute: O(r²) cells visited; every ray and chain update is amortized O(1).
//     Recursion depth is bounded by the number of wall runs in an octant (≤ r).
//   - LineOfSight: O(max(|dx|,|dy|)) time and memory.
//
// Options:
//
//   - WithThreshold: first transparent terrain ordinal (default
//     terrain.VisionBlockingThreshold).
//   - WithLightWalls: whether blocking cells hit by a ray are marked visible
//     (default true).
//
// Errors:
//
//   - ErrNilMap, ErrNilOutput: a required collaborator is nil.
//   - ErrNegativeRadius: radius < 0.
//   - ErrOutputSize: the output grid is not (2r+1)×(2r+1).
//   - ErrOutOfBounds: the viewpoint or an endpoint lies off the map.
//   - ErrOptionViolation: an Option was given a meaningless value.
//   - ErrDegenerateWedge: a wedge with zero area reached the scanner.
//
// Calls are synchronous and keep no state between them; concurrent calls are
// safe as long as they do not share an output grid.
package fov
