// SPDX-License-Identifier: MIT

// Package terrain defines the ordinal terrain kinds understood by the
// visibility core and the ASCII glyphs used to read and print maps.
//
// What:
//
//   - Kind is a small ordinal. Every kind below VisionBlockingThreshold
//     blocks vision; every kind at or above it is transparent.
//   - The blocking kinds form a contiguous prefix that ends exactly at the
//     threshold. Any other definition of this enum (a renderer, a save file,
//     a scripting layer) must keep the same ordinals or occlusion silently
//     breaks.
//
// Layout:
//
//	0 StoneWall   #   blocks
//	1 WoodWall    =   blocks
//	2 Palisade    |   blocks
//	3 VisionBlockingThreshold
//	4 StoneFloor  .
//	5 WoodFloor   _
//	6 Grass       "
//	7 Dirt        :
//	8 Upstairs    <
//	9 Downstairs  >
//
// Errors:
//
//   - ErrUnknownGlyph: FromGlyph got a rune that names no kind.
package terrain
