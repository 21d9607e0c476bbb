// SPDX-License-Identifier: Unlicense OR MIT

package anim

import (
	"image/color"

	"github.com/flexui/flexbutton/f32"
)

// Float interpolates between a and b.
func Float(a, b, t float32) float32 {
	return a + (b-a)*t
}

// Point interpolates between a and b.
func Point(a, b f32.Point, t float32) f32.Point {
	return f32.Point{X: Float(a.X, b.X, t), Y: Float(a.Y, b.Y, t)}
}

// Rect interpolates the corners of a and b.
func Rect(a, b f32.Rectangle, t float32) f32.Rectangle {
	return f32.Rectangle{Min: Point(a.Min, b.Min, t), Max: Point(a.Max, b.Max, t)}
}

// Color interpolates each channel of a and b.
func Color(a, b color.NRGBA, t float32) color.NRGBA {
	return color.NRGBA{
		R: channel(a.R, b.R, t),
		G: channel(a.G, b.G, t),
		B: channel(a.B, b.B, t),
		A: channel(a.A, b.A, t),
	}
}

func channel(a, b uint8, t float32) uint8 {
	v := Float(float32(a), float32(b), t) + .5
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
