// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"github.com/flexui/flexbutton/f32"
)

// Flex lays out child boxes along an axis, separated by a fixed
// spacing and centered in the cross axis.
type Flex struct {
	// Axis is the main axis, either Horizontal or Vertical.
	Axis Axis
	// Spacing is the gap between consecutive children.
	Spacing float32
}

// Layout positions children in order. The returned frames are relative
// to the origin of the arranged cluster, whose size is also returned.
// Callers leave absent children out of the list so that no spacing is
// reserved for them.
func (f Flex) Layout(children ...f32.Point) ([]f32.Rectangle, f32.Point) {
	if len(children) == 0 {
		return nil, f32.Point{}
	}
	var mainSize, maxCross float32
	for i, sz := range children {
		mainSize += axisMain(f.Axis, sz)
		if i > 0 {
			mainSize += f.Spacing
		}
		if c := axisCross(f.Axis, sz); c > maxCross {
			maxCross = c
		}
	}
	frames := make([]f32.Rectangle, len(children))
	var main float32
	for i, sz := range children {
		cross := (maxCross - axisCross(f.Axis, sz)) / 2
		off := axisPoint(f.Axis, main, cross)
		frames[i] = f32.Rectangle{Min: off, Max: off.Add(sz)}
		main += axisMain(f.Axis, sz) + f.Spacing
	}
	return frames, axisPoint(f.Axis, mainSize, maxCross)
}

func axisPoint(a Axis, main, cross float32) f32.Point {
	if a == Horizontal {
		return f32.Point{X: main, Y: cross}
	} else {
		return f32.Point{X: cross, Y: main}
	}
}

func axisMain(a Axis, sz f32.Point) float32 {
	if a == Horizontal {
		return sz.X
	} else {
		return sz.Y
	}
}

func axisCross(a Axis, sz f32.Point) float32 {
	if a == Horizontal {
		return sz.Y
	} else {
		return sz.X
	}
}
