// SPDX-License-Identifier: MIT

package fov

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/digitalfov/terrain"
)

// Sentinel errors for FOV and LOS computation.
var (
	// ErrNilMap is returned when the terrain map is nil.
	ErrNilMap = errors.New("fov: map is nil")

	// ErrNilOutput is returned when the visibility grid is nil.
	ErrNilOutput = errors.New("fov: output grid is nil")

	// ErrNegativeRadius is returned for radius < 0.
	ErrNegativeRadius = errors.New("fov: radius must be >= 0")

	// ErrOutputSize is returned when the output grid is not (2r+1)×(2r+1).
	ErrOutputSize = errors.New("fov: output grid has wrong size")

	// ErrOutOfBounds is returned when the viewpoint or a LOS endpoint is off the map.
	ErrOutOfBounds = errors.New("fov: coordinate outside map")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("fov: invalid option supplied")

	// ErrDegenerateWedge is returned when a wedge with zero area is scanned.
	ErrDegenerateWedge = errors.New("fov: wedge has zero area")
)

// Wedge bookkeeping errors. They never leave the package on a well-formed
// call; they are wrapped into the scanner's error when they do.
var (
	errNilWedge     = errors.New("fov: nil wedge")
	errWedgeAlias   = errors.New("fov: wedge copied onto itself")
	errWedgeBlocked = errors.New("fov: wall closes the wedge")
)

// Map is the read-only terrain source. Terrain is only called for in-bounds
// coordinates.
type Map interface {
	Width() int
	Height() int
	Terrain(x, y int) terrain.Kind
}

// Grid is the caller-owned visibility buffer written by Compute.
type Grid interface {
	Width() int
	Height() int
	Set(x, y int, visible bool)
}

// Option configures Compute and LineOfSight via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when the
// computation starts.
type Option func(*Options)

// Options holds the tunables shared by Compute and LineOfSight.
type Options struct {
	// Threshold is the first transparent ordinal: kinds below it block vision.
	Threshold terrain.Kind

	// LightWalls marks blocking cells reached by a ray as visible. Only used
	// by Compute.
	LightWalls bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with the terrain package's threshold and
// lit walls.
func DefaultOptions() Options {
	return Options{
		Threshold:  terrain.VisionBlockingThreshold,
		LightWalls: true,
	}
}

// WithThreshold overrides the blocking threshold. Values above
// terrain.NumKinds are rejected with ErrOptionViolation.
func WithThreshold(k terrain.Kind) Option {
	return func(o *Options) {
		if k > terrain.NumKinds {
			o.err = fmt.Errorf("%w: threshold %d above %d", ErrOptionViolation, k, terrain.NumKinds)
			return
		}
		o.Threshold = k
	}
}

// WithLightWalls toggles whether walls bounding the view are marked visible.
func WithLightWalls(on bool) Option {
	return func(o *Options) {
		o.LightWalls = on
	}
}

// resolve applies opts over DefaultOptions.
func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o, o.err
}
