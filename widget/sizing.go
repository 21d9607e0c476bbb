// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"github.com/flexui/flexbutton/f32"
	"github.com/flexui/flexbutton/layout"
)

// Regime is the way a button's frame is determined.
type Regime uint8

const (
	// RegimeAbsolute buttons own their frame.
	RegimeAbsolute Regime = iota
	// RegimeConstrained buttons report an intrinsic size and receive
	// their frame from Solve.
	RegimeConstrained
)

func (r Regime) String() string {
	switch r {
	case RegimeAbsolute:
		return "Absolute"
	case RegimeConstrained:
		return "Constrained"
	default:
		panic("invalid Regime")
	}
}

func (b *Button) Regime() Regime {
	return b.regime
}

// Frame returns the button's frame in its container.
func (b *Button) Frame() f32.Rectangle {
	return b.frame
}

// FixedSize returns the fixed-size hint, if any.
func (b *Button) FixedSize() (f32.Point, bool) {
	if b.fixed == nil {
		return f32.Point{}, false
	}
	return *b.fixed, true
}

// SetPosition switches to the absolute regime and places the button at
// (x, y). A positive width or height is a lower bound on that axis; zero
// fits the content. When both are positive they become the fixed-size
// hint, otherwise the hint is cleared. The size never goes below the
// minimum size.
func (b *Button) SetPosition(x, y, width, height float32) {
	b.resetAnimation()
	b.setRegime(RegimeAbsolute)
	if width > 0 && height > 0 {
		b.fixed = &f32.Point{X: width, Y: height}
	} else {
		b.fixed = nil
	}
	sz := b.MinimumSize()
	if width > 0 {
		sz.X = max(width, sz.X)
	}
	if height > 0 {
		sz.Y = max(height, sz.Y)
	}
	b.setFrame(f32.Rectangle{Min: f32.Pt(x, y)}.WithSize(sz))
}

// SetFixedSize records a preferred size. The button is never smaller
// than its minimum size.
func (b *Button) SetFixedSize(width, height float32) {
	b.resetAnimation()
	b.fixed = &f32.Point{X: width, Y: height}
	b.log.Debug().Float32("width", width).Float32("height", height).Msg("fixed size set")
	b.updateSize()
}

// ResetFixedSize clears the fixed-size hint.
func (b *Button) ResetFixedSize() {
	if b.fixed == nil {
		return
	}
	b.fixed = nil
	b.log.Debug().Msg("fixed size cleared")
	b.updateSize()
}

// SetupConstraints switches to the constrained regime with the given
// anchors.
func (b *Button) SetupConstraints(a layout.Anchors) {
	b.resetAnimation()
	b.setRegime(RegimeConstrained)
	b.anchors = a
	b.invalidateIntrinsic()
}

// IntrinsicSize returns the size a constrained button prefers: the
// fixed-size hint grown to the minimum size, or the minimum size. Buttons
// in the absolute regime have no intrinsic size.
func (b *Button) IntrinsicSize() (f32.Point, bool) {
	if b.regime != RegimeConstrained {
		return f32.Point{}, false
	}
	sz := b.MinimumSize()
	if b.fixed != nil {
		sz = b.fixed.Max(sz)
	}
	return sz, true
}

// IntrinsicGeneration is incremented every time the intrinsic size is
// invalidated.
func (b *Button) IntrinsicGeneration() int {
	return b.generation
}

// Solve resolves the anchors of a constrained button against its
// intrinsic size and adopts the result as its frame. Absolute buttons
// return their frame unchanged.
func (b *Button) Solve() f32.Rectangle {
	if b.regime != RegimeConstrained {
		return b.frame
	}
	pref, _ := b.IntrinsicSize()
	b.setFrame(b.anchors.Resolve(pref, b.MinimumSize()))
	return b.frame
}

// updateSize re-derives the size under the current regime.
func (b *Button) updateSize() {
	switch b.regime {
	case RegimeAbsolute:
		sz := b.MinimumSize()
		if b.fixed != nil {
			sz = b.fixed.Max(sz)
		}
		b.setFrame(b.frame.WithSize(sz))
	case RegimeConstrained:
		b.invalidateIntrinsic()
	}
}

func (b *Button) invalidateIntrinsic() {
	b.generation++
	if b.onInvalidate != nil {
		b.onInvalidate()
	}
}

func (b *Button) setRegime(r Regime) {
	if r == b.regime {
		return
	}
	b.log.Debug().Stringer("from", b.regime).Stringer("to", r).Msg("sizing regime changed")
	b.regime = r
}

func (b *Button) setFrame(r f32.Rectangle) {
	if r == b.frame {
		return
	}
	if r.Size() != b.frame.Size() {
		// Tap transforms are built around the old center.
		b.resetTransform()
		b.framesValid = false
		b.decor.fit(r.Size())
	}
	b.frame = r
	if !b.lookTask.Active() {
		b.pres.frame = r
	}
}
