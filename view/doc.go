// Package view draws a terrain map and a field of view onto a tcell screen.
//
// Map cell (x, y) is drawn at screen column x, row y. Cells in the field of
// view get their terrain glyph in the floor or wall style; everything else
// is blank. Themes are built from "#rrggbb" palettes. The viewer is drawn as '@' and a
// line-of-sight target as 'X' (in sight) or 'x' (hidden).
//
// The package only draws; callers own the screen and call Show.
package view
