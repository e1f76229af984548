package main

import (
	"flag"

	"github.com/katalvlaran/digitalfov/vision"
)

var (
	// mapFlag names an ASCII map file; the built-in demo level is used when empty.
	mapFlag = flag.String("map", "", "ASCII terrain map to load (built-in demo when empty)")

	radiusFlag = flag.Int("radius", vision.DefaultRadius, "field of view radius")

	// startXFlag and startYFlag place the viewer; -1 picks the first open cell.
	startXFlag = flag.Int("x", -1, "starting column")
	startYFlag = flag.Int("y", -1, "starting row")

	darkWallsFlag = flag.Bool("dark-walls", false, "do not draw walls that bound the view")
)
