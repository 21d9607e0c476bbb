// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image/color"

	"github.com/flexui/flexbutton/f32"
)

// Border is a stroke drawn along the button outline.
type Border struct {
	Width float32
	Color color.NRGBA
}

// Shadow is a drop shadow cast by the button.
type Shadow struct {
	Color   color.NRGBA
	Opacity float32
	Offset  f32.Point
	Radius  float32
}

// DefaultShadow is a soft shadow below the button.
var DefaultShadow = Shadow{
	Color:   color.NRGBA{A: 0xff},
	Opacity: 0.3,
	Offset:  f32.Pt(0, 2),
	Radius:  4,
}

// Decor is the cosmetic outline of a button.
type Decor struct {
	CornerRadius float32
	// Clip reports whether content is clipped to the rounded outline.
	// A shadow needs an unclipped outline.
	Clip   bool
	Border Border
	Shadow *Shadow
	// Circular buttons keep a corner radius of half their shorter side.
	Circular bool
}

// fit updates the corner radius of a circular outline for a new size.
func (d *Decor) fit(sz f32.Point) {
	if !d.Circular {
		return
	}
	d.CornerRadius = min(sz.X, sz.Y) / 2
	d.Clip = true
}

// Decor returns the cosmetic outline.
func (b *Button) Decor() Decor {
	return b.decor
}

// SetCornerRadius rounds the corners and clips content to them when r
// is positive.
func (b *Button) SetCornerRadius(r float32) {
	b.decor.CornerRadius = r
	b.decor.Clip = r > 0
}

func (b *Button) SetBorder(width float32, c color.NRGBA) {
	b.decor.Border = Border{Width: width, Color: c}
}

// SetShadow casts s and turns off clipping so the shadow shows.
func (b *Button) SetShadow(s Shadow) {
	b.decor.Shadow = &s
	b.decor.Clip = false
}

func (b *Button) ClearShadow() {
	b.decor.Shadow = nil
}

// SetCircular makes the outline a circle or capsule that follows the
// frame. Turning it off removes the rounding. A circular outline wins
// over a shadow: it clips again whenever the frame is resized.
func (b *Button) SetCircular(on bool) {
	b.decor.Circular = on
	if on {
		b.decor.fit(b.frame.Size())
		return
	}
	b.decor.CornerRadius = 0
	b.decor.Clip = false
}
