package view

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// ErrBadColor is returned by NewTheme for a palette entry that is not a
// "#rrggbb" colour.
var ErrBadColor = errors.New("view: bad palette colour")

// Palette names the theme colours as "#rrggbb" strings.
type Palette struct {
	Floor    string
	Wall     string
	Viewer   string
	Target   string
	StatusFg string
	StatusBg string
}

// DefaultPalette is a dark-background palette.
func DefaultPalette() Palette {
	return Palette{
		Floor:    "#c8b97a",
		Wall:     "#f0f0f0",
		Viewer:   "#ffd700",
		Target:   "#e04040",
		StatusFg: "#101010",
		StatusBg: "#b0b0b0",
	}
}

// Theme holds the styles Render and its helpers draw with.
type Theme struct {
	Floor  tcell.Style
	Wall   tcell.Style
	Unseen tcell.Style
	Viewer tcell.Style
	Target tcell.Style
	Status tcell.Style
}

// NewTheme builds a Theme from p. Unseen cells always use the terminal's
// default style.
func NewTheme(p Palette) (Theme, error) {
	var (
		cs   [6]tcell.Color
		errs []error
	)
	for i, hex := range []string{p.Floor, p.Wall, p.Viewer, p.Target, p.StatusFg, p.StatusBg} {
		c, err := colorful.Hex(hex)
		if err != nil {
			errs = append(errs, fmt.Errorf("%w: %q", ErrBadColor, hex))
			continue
		}
		r, g, b := c.RGB255()
		cs[i] = tcell.NewRGBColor(int32(r), int32(g), int32(b))
	}
	if err := errors.Join(errs...); err != nil {
		return Theme{}, err
	}
	return Theme{
		Floor:  tcell.StyleDefault.Foreground(cs[0]),
		Wall:   tcell.StyleDefault.Foreground(cs[1]).Bold(true),
		Unseen: tcell.StyleDefault,
		Viewer: tcell.StyleDefault.Foreground(cs[2]).Bold(true),
		Target: tcell.StyleDefault.Foreground(cs[3]),
		Status: tcell.StyleDefault.Foreground(cs[4]).Background(cs[5]),
	}, nil
}

// DefaultTheme is NewTheme(DefaultPalette()).
func DefaultTheme() Theme {
	t, err := NewTheme(DefaultPalette())
	if err != nil {
		panic(err)
	}
	return t
}
