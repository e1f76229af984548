package pathmap

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/digitalfov/terrain"
)

// Sentinel errors for distance map construction and queries.
var (
	// ErrNilMap is returned if a nil map is passed.
	ErrNilMap = errors.New("pathmap: map is nil")

	// ErrTargetOutOfBounds is returned when the target is off the map.
	ErrTargetOutOfBounds = errors.New("pathmap: target outside map")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("pathmap: invalid option supplied")

	// ErrUnreachable is returned by PathFrom for a cell the flood never reached.
	ErrUnreachable = errors.New("pathmap: no path to target")
)

// Unreached is the distance of cells the flood did not reach.
const Unreached = -1

// Map is the terrain source Build floods over.
type Map interface {
	Width() int
	Height() int
	Terrain(x, y int) terrain.Kind
}

// Option configures Build via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks for Build.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// MaxDepth, if > 0, leaves cells more than MaxDepth steps away unreached.
	MaxDepth int

	// Passable decides whether the flood may enter a cell of kind k.
	Passable func(k terrain.Kind) bool

	// OnVisit is called for each dequeued cell with its distance. An error
	// stops Build.
	OnVisit func(x, y, depth int) error

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a background context, no depth limit,
// vision-blocking terrain impassable and a no-op OnVisit.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: 0,
		Passable: func(k terrain.Kind) bool { return !k.BlocksVision() },
		OnVisit:  func(int, int, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth limits the flood to d steps.
//
//	d > 0: limit to d steps
//	d == 0: no limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithPassable replaces the passability rule. nil is ignored.
func WithPassable(fn func(k terrain.Kind) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.Passable = fn
		}
	}
}

// WithOnVisit registers a callback run for every dequeued cell.
func WithOnVisit(fn func(x, y, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}
