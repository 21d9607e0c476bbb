// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image/color"
	"time"

	"github.com/flexui/flexbutton/anim"
	"github.com/flexui/flexbutton/f32"
	"github.com/flexui/flexbutton/text"
)

// AppearanceDuration is the length of animated appearance changes.
const AppearanceDuration = 200 * time.Millisecond

// presented holds the values a renderer shows. They lag the model
// appearance while an appearance animation runs.
type presented struct {
	background color.NRGBA
	imageTint  color.NRGBA
	titleColor color.NRGBA
	alpha      float32
	frame      f32.Rectangle
}

type presentation struct {
	presented
	// transform and tapAlpha are driven by tap animations only.
	transform f32.Affine2D
	tapAlpha  float32
}

// apply resolves the configuration of the current state into the model
// appearance, re-derives the size and presents the result. A field no
// state defines keeps its previous value, except the alpha which falls
// back to opaque.
func (b *Button) apply(animated bool) {
	cur, nrm := b.states.get(b.state), b.states.get(Normal)
	from := b.pres.presented
	l := &b.look
	if c, ok := resolve(cur, nrm, func(c *StateConfig) *color.NRGBA { return c.Background }); ok {
		l.Background = c
	}
	if c, ok := resolve(cur, nrm, func(c *StateConfig) *color.NRGBA { return c.ImageTint }); ok {
		l.ImageTint = c
	}
	if c, ok := resolve(cur, nrm, func(c *StateConfig) *color.NRGBA { return c.TitleColor }); ok {
		l.TitleColor = c
	}
	if f, ok := resolve(cur, nrm, func(c *StateConfig) *text.Font { return c.Font }); ok {
		l.Font = f
	}
	if d := resolveDecoration(cur, nrm); d != nil {
		l.Decoration = d
	}
	if img := resolveImage(cur, nrm); img != nil {
		l.Image = img
	}
	if t, ok := resolve(cur, nrm, func(c *StateConfig) *string { return c.Title }); ok {
		l.Title = t
	}
	if sz, ok := resolve(cur, nrm, func(c *StateConfig) *f32.Point { return c.ImageSize }); ok {
		l.ImageSize = &sz
	}
	l.Alpha = 1
	if a, ok := resolve(cur, nrm, func(c *StateConfig) *float32 { return c.Alpha }); ok {
		l.Alpha = a
	}
	b.invalidateSize()
	b.updateSize()
	b.updateSemantics()
	b.present(from, animated)
}

// target returns the presented values matching the model.
func (b *Button) target() presented {
	bg := b.look.Background
	if b.look.Decoration != nil {
		bg = color.NRGBA{}
	}
	return presented{
		background: bg,
		imageTint:  b.look.ImageTint,
		titleColor: b.look.TitleColor,
		alpha:      b.look.Alpha,
		frame:      b.frame,
	}
}

// present moves the presented values to the model, interpolating from
// from when animated. A running appearance animation is superseded.
func (b *Button) present(from presented, animated bool) {
	b.lookTask.Cancel()
	to := b.target()
	if !animated {
		b.pres.presented = to
		return
	}
	update := func(t float32) {
		b.pres.background = anim.Color(from.background, to.background, t)
		b.pres.imageTint = anim.Color(from.imageTint, to.imageTint, t)
		b.pres.titleColor = anim.Color(from.titleColor, to.titleColor, t)
		b.pres.alpha = anim.Float(from.alpha, to.alpha, t)
		// The frame may move again while animating.
		b.pres.frame = anim.Rect(from.frame, b.frame, t)
	}
	update(0)
	b.lookTask = b.sched.Run(anim.Step{
		Duration: AppearanceDuration,
		Curve:    anim.EaseInOut,
		Update:   update,
	}).Then(func() {
		b.pres.presented = b.target()
	})
}

// resetAnimation stops every running animation and snaps the presented
// values to the model.
func (b *Button) resetAnimation() {
	b.lookTask.Cancel()
	b.lookTask = nil
	b.resetTransform()
	b.pres.presented = b.target()
}

// resetTransform stops a running tap animation and restores the
// identity transform.
func (b *Button) resetTransform() {
	b.tapTask.Cancel()
	b.tapTask = nil
	b.pres.transform = f32.Affine2D{}
	b.pres.tapAlpha = 1
}

// Animating reports whether an appearance or tap animation is running.
func (b *Button) Animating() bool {
	return b.lookTask.Active() || b.tapTask.Active()
}
