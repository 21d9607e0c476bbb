// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image/color"

	"github.com/flexui/flexbutton/f32"
	"github.com/flexui/flexbutton/text"
)

// Snapshot is a render-neutral description of what a button presents.
// Content frames are in button coordinates; Transform applies to the
// whole button around its own origin.
type Snapshot struct {
	Frame      f32.Rectangle
	Transform  f32.Affine2D
	Alpha      float32
	Background color.NRGBA
	Decoration Decoration
	Decor      Decor

	Image      Image
	ImageFrame f32.Rectangle
	ImageTint  color.NRGBA

	Title      string
	TitleFrame f32.Rectangle
	TitleColor color.NRGBA
	Font       text.Font

	Semantics Semantics
}

// Snapshot returns the presented state of the button.
func (b *Button) Snapshot() Snapshot {
	f := b.Frames()
	s := Snapshot{
		Frame:      b.pres.frame,
		Transform:  b.pres.transform,
		Alpha:      b.pres.alpha * b.pres.tapAlpha,
		Background: b.pres.background,
		Decoration: b.look.Decoration,
		Decor:      b.decor,
		ImageTint:  b.pres.imageTint,
		TitleColor: b.pres.titleColor,
		Font:       b.look.Font,
		Semantics:  b.semantics,
	}
	if b.look.Image != nil {
		s.Image = b.look.Image
		s.ImageFrame = f.Image
	}
	if b.look.Title != "" {
		s.Title = b.look.Title
		s.TitleFrame = f.Title
	}
	return s
}
