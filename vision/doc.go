// Package vision keeps a per-observer field of view up to date.
//
// A Viewer owns one visibility buffer sized for its radius and recomputes it
// with fov.Compute only when something that affects it has changed: the
// viewer moved, its radius changed, or the caller reported that the map
// changed through Invalidate. Repeated queries between changes reuse the
// cached result.
//
//	v := vision.NewViewer(vision.WithRadius(8))
//	v.MoveTo(12, 4)
//	ok, err := v.CanSee(level, 15, 7)
//
// Errors:
//
//   - ErrUnplaced: a query was made before the first MoveTo.
//   - ErrBadRadius: SetRadius or WithRadius was given a negative radius.
//   - any fov error, returned unchanged; the viewer then stays stale.
//
// A Viewer is not safe for concurrent use.
package vision
