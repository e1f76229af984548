// Package pathmap builds breadth-first distance maps over a terrain grid,
// for walking towards a target one step at a time.
//
// What:
//
//   - Build floods outwards from a target cell over the eight neighbouring
//     directions and records, for every reachable cell, the number of steps
//     to the target.
//   - NextStep picks the neighbouring move that gets closest to the target;
//     PathFrom follows NextStep all the way.
//
// Passability:
//
//   - By default a cell is passable when its terrain does not block vision.
//     WithPassable swaps in another rule, e.g. to treat palisades as walls.
//   - The target itself is always reachable, even when it is not passable,
//     so a distance map can lead up to a wall or a closed door.
//
// Options follow the same pattern as the fov package: invalid values are
// recorded and surfaced as ErrOptionViolation when Build runs.
//
//   - WithContext    – cancellation, checked once per dequeued cell.
//   - WithMaxDepth   – stop flooding past a number of steps (0 = no limit).
//   - WithPassable   – custom passability rule.
//   - WithOnVisit    – hook called per dequeued cell; an error aborts Build.
//
// Complexity:
//
//   - Build: O(W·H) time and memory.
//   - NextStep: O(1); PathFrom: O(path length).
package pathmap
