// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"github.com/flexui/flexbutton/f32"
)

// Edge attaches one edge, or the center line, of a box to a line in
// its container's coordinate space. The zero Edge is inactive.
type Edge struct {
	// Line is the coordinate of the container line.
	Line float32
	// Constant moves the box inwards from Line: Top and Leading edges
	// add it, Bottom and Trailing edges subtract it, center lines add it.
	Constant float32

	active bool
}

// Anchors describe how a box is attached to its container. A box with
// both edges of an axis anchored stretches between them; otherwise it
// takes its explicit or preferred size on that axis.
type Anchors struct {
	Top, Leading, Bottom, Trailing Edge
	CenterX, CenterY               Edge
	// Width and Height are explicit sizes. Zero means unset.
	Width, Height float32
}

// Pin returns an active Edge attached to line.
func Pin(line float32) Edge {
	return Edge{Line: line, active: true}
}

// Inset returns e moved inwards by c.
func (e Edge) Inset(c float32) Edge {
	e.Constant = c
	return e
}

// Active reports whether e takes part in resolution.
func (e Edge) Active() bool {
	return e.active
}

// Resolve returns the frame of a box with the given preferred size.
// Explicit sizes and stretched extents never go below min.
func (a Anchors) Resolve(preferred, min f32.Point) f32.Rectangle {
	x0, x1 := resolveAxis(a.Leading, a.Trailing, a.CenterX, a.Width, preferred.X, min.X)
	y0, y1 := resolveAxis(a.Top, a.Bottom, a.CenterY, a.Height, preferred.Y, min.Y)
	return f32.Rectangle{Min: f32.Pt(x0, y0), Max: f32.Pt(x1, y1)}
}

func resolveAxis(start, end, center Edge, explicit, preferred, min float32) (float32, float32) {
	if start.active && end.active {
		lo := start.Line + start.Constant
		hi := end.Line - end.Constant
		if hi-lo < min {
			hi = lo + min
		}
		return lo, hi
	}
	size := preferred
	if explicit > 0 {
		size = explicit
	}
	if size < min {
		size = min
	}
	var lo float32
	switch {
	case start.active:
		lo = start.Line + start.Constant
	case end.active:
		lo = end.Line - end.Constant - size
	case center.active:
		lo = center.Line + center.Constant - size/2
	}
	return lo, lo + size
}
