// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"time"

	"github.com/flexui/flexbutton/anim"
	"github.com/flexui/flexbutton/f32"
	"github.com/flexui/flexbutton/gesture"
	"github.com/flexui/flexbutton/io/pointer"
)

// TapAnimation is the feedback played when a button is tapped.
type TapAnimation uint8

const (
	TapNone TapAnimation = iota
	// TapScale shrinks the button briefly.
	TapScale
	// TapBounce shrinks the button and springs it back.
	TapBounce
	// TapFlash dims the button briefly.
	TapFlash
	// TapShake moves the button from side to side.
	TapShake
	// TapPulse grows and dims the button briefly.
	TapPulse
	// TapFadeScale shrinks and dims the button, then springs back.
	TapFadeScale
)

// Event processes a pointer event in button coordinates. It reports
// whether the event completed a tap.
func (b *Button) Event(e pointer.Event) bool {
	bounds := f32.Rectangle{Max: b.frame.Size()}
	ev, ok := b.click.Update(bounds, e)
	if !ok || ev.Kind != gesture.KindClick {
		return false
	}
	b.Click()
	return true
}

// Pressed reports whether a pointer is pressing the button.
func (b *Button) Pressed() bool {
	return b.click.Pressed()
}

// Click taps the button: it plays the tap animation, if enabled, and
// calls the tap function. Taps are delivered in every state; Disabled
// only changes the appearance and the semantics.
func (b *Button) Click() {
	b.log.Debug().
		Stringer("state", b.state).
		Stringer("animation", b.animation).
		Bool("animated", b.animated).
		Msg("tap")
	if b.animated {
		b.playTap(b.animation)
	}
	if b.onTap != nil {
		b.onTap(b)
	}
}

func (b *Button) playTap(a TapAnimation) {
	b.resetTransform()
	center := b.frame.Size().Mul(.5)
	scale := func(s float32) {
		b.pres.transform = f32.Affine2D{}.Scale(center, f32.Pt(s, s))
	}
	fade := func(a float32) {
		b.pres.tapAlpha = a
	}
	both := func(s, a float32) func(float32) {
		return func(t float32) {
			scale(anim.Float(1, s, t))
			fade(anim.Float(1, a, t))
		}
	}
	back := func(s, a float32) func(float32) {
		return func(t float32) {
			scale(anim.Float(s, 1, t))
			fade(anim.Float(a, 1, t))
		}
	}
	ms := time.Millisecond
	var steps []anim.Step
	switch a {
	case TapScale:
		steps = []anim.Step{
			{Duration: 100 * ms, Curve: anim.EaseInOut, Update: both(.95, 1)},
			{Duration: 100 * ms, Curve: anim.EaseInOut, Update: back(.95, 1)},
		}
	case TapBounce:
		steps = []anim.Step{
			{Duration: 150 * ms, Curve: anim.Spring(.5), Update: both(.9, 1)},
			{Duration: 300 * ms, Curve: anim.Spring(.3), Update: back(.9, 1)},
		}
	case TapFlash:
		steps = []anim.Step{
			{Duration: 100 * ms, Curve: anim.EaseInOut, Update: both(1, .5)},
			{Duration: 100 * ms, Curve: anim.EaseInOut, Update: back(1, .5)},
		}
	case TapShake:
		shake := anim.Keyframes(-20, 20, -20, 20, -10, 10, -5, 5, 0)
		steps = []anim.Step{{
			Duration: 600 * ms,
			Curve:    anim.Linear,
			Update: func(t float32) {
				b.pres.transform = f32.Affine2D{}.Offset(f32.Pt(shake(t), 0))
			},
		}}
	case TapPulse:
		steps = []anim.Step{
			{Duration: 200 * ms, Curve: anim.EaseInOut, Update: both(1.1, .8)},
			{Duration: 200 * ms, Curve: anim.EaseInOut, Update: back(1.1, .8)},
		}
	case TapFadeScale:
		steps = []anim.Step{
			{Duration: 150 * ms, Curve: anim.EaseInOut, Update: both(.85, .6)},
			{Duration: 250 * ms, Curve: anim.Spring(.8), Update: back(.85, .6)},
		}
	default:
		return
	}
	b.tapTask = b.sched.Run(steps...).Then(b.resetTransform)
}

func (a TapAnimation) String() string {
	switch a {
	case TapNone:
		return "None"
	case TapScale:
		return "Scale"
	case TapBounce:
		return "Bounce"
	case TapFlash:
		return "Flash"
	case TapShake:
		return "Shake"
	case TapPulse:
		return "Pulse"
	case TapFadeScale:
		return "FadeScale"
	default:
		panic("invalid TapAnimation")
	}
}
