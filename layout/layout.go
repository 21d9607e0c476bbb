// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"github.com/flexui/flexbutton/f32"
)

// Axis is the Horizontal or Vertical direction.
type Axis uint8

// Direction is the alignment of a box relative to a containing
// space. W and E are the leading and trailing edges.
type Direction uint8

const (
	NW Direction = iota
	N
	NE
	E
	SE
	S
	SW
	W
	Center
)

const (
	Horizontal Axis = iota
	Vertical
)

// Inset is the space between the edges of a container and its content.
type Inset struct {
	Top, Right, Bottom, Left float32
}

// UniformInset returns an Inset with a single inset applied to all
// edges.
func UniformInset(v float32) Inset {
	return Inset{Top: v, Right: v, Bottom: v, Left: v}
}

// Size returns the total space taken by the inset on each axis.
func (in Inset) Size() f32.Point {
	return f32.Point{X: in.Left + in.Right, Y: in.Top + in.Bottom}
}

// Place returns the origin of a box of size sz inside a container of
// size bounds, positioned according to d. Pinned edges sit at the inset
// distance and centered axes are centered in the whole container. The
// result is kept within [inset, bounds-inset]; when the box does not fit,
// the top and leading insets win.
func (in Inset) Place(d Direction, bounds, sz f32.Point) f32.Point {
	var p f32.Point
	switch d {
	case NW, W, SW:
		p.X = in.Left
	case NE, E, SE:
		p.X = bounds.X - in.Right - sz.X
	default:
		p.X = (bounds.X - sz.X) / 2
	}
	switch d {
	case NW, N, NE:
		p.Y = in.Top
	case SW, S, SE:
		p.Y = bounds.Y - in.Bottom - sz.Y
	default:
		p.Y = (bounds.Y - sz.Y) / 2
	}
	p.X = contain(p.X, in.Left, bounds.X-in.Right-sz.X)
	p.Y = contain(p.Y, in.Top, bounds.Y-in.Bottom-sz.Y)
	return p
}

func contain(v, lo, hi float32) float32 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	default:
		panic("unreachable")
	}
}

func (d Direction) String() string {
	switch d {
	case NW:
		return "NW"
	case N:
		return "N"
	case NE:
		return "NE"
	case E:
		return "E"
	case SE:
		return "SE"
	case S:
		return "S"
	case SW:
		return "SW"
	case W:
		return "W"
	case Center:
		return "Center"
	default:
		panic("unreachable")
	}
}
