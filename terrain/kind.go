// SPDX-License-Identifier: MIT

package terrain

import (
	"errors"
	"fmt"
)

// ErrUnknownGlyph indicates a rune that does not map to any Kind.
var ErrUnknownGlyph = errors.New("terrain: unknown glyph")

// Kind is the ordinal terrain classification of one map cell.
type Kind uint8

// Terrain kinds. The order is part of the public contract, see package doc.
const (
	StoneWall Kind = iota
	WoodWall
	Palisade

	// VisionBlockingThreshold separates blocking kinds (below) from
	// transparent kinds (at or above). It is not a terrain itself.
	VisionBlockingThreshold

	StoneFloor
	WoodFloor
	Grass
	Dirt
	Upstairs
	Downstairs

	numKinds
)

// NumKinds is one past the largest ordinal. A threshold of NumKinds makes
// every kind block vision; larger thresholds mean nothing more.
const NumKinds = numKinds

var names = [numKinds]string{
	StoneWall:               "StoneWall",
	WoodWall:                "WoodWall",
	Palisade:                "Palisade",
	VisionBlockingThreshold: "VisionBlockingThreshold",
	StoneFloor:              "StoneFloor",
	WoodFloor:               "WoodFloor",
	Grass:                   "Grass",
	Dirt:                    "Dirt",
	Upstairs:                "Upstairs",
	Downstairs:              "Downstairs",
}

var glyphs = [numKinds]rune{
	StoneWall:               '#',
	WoodWall:                '=',
	Palisade:                '|',
	VisionBlockingThreshold: '?',
	StoneFloor:              '.',
	WoodFloor:               '_',
	Grass:                   '"',
	Dirt:                    ':',
	Upstairs:                '<',
	Downstairs:              '>',
}

// BlocksVision reports whether k stops sight under the default threshold.
// Complexity: O(1).
func (k Kind) BlocksVision() bool {
	return k < VisionBlockingThreshold
}

// BlocksVisionAt reports whether k stops sight when threshold is the first
// transparent ordinal.
func (k Kind) BlocksVisionAt(threshold Kind) bool {
	return k < threshold
}

// Valid reports whether k is a real terrain kind. The threshold marker and
// anything past Downstairs are not.
func (k Kind) Valid() bool {
	return k < numKinds && k != VisionBlockingThreshold
}

// String returns the Go name of the kind.
func (k Kind) String() string {
	if k < numKinds {
		return names[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Glyph returns the ASCII map glyph of k, or '?' for invalid kinds.
func (k Kind) Glyph() rune {
	if !k.Valid() {
		return '?'
	}
	return glyphs[k]
}

// FromGlyph parses a single map glyph.
// Returns ErrUnknownGlyph wrapped with the offending rune.
func FromGlyph(r rune) (Kind, error) {
	for k := Kind(0); k < numKinds; k++ {
		if k.Valid() && glyphs[k] == r {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownGlyph, r)
}

// Kinds returns every valid kind in ordinal order.
func Kinds() []Kind {
	out := make([]Kind, 0, numKinds-1)
	for k := Kind(0); k < numKinds; k++ {
		if k.Valid() {
			out = append(out, k)
		}
	}
	return out
}
