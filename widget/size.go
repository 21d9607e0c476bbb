// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"github.com/flexui/flexbutton/f32"
	"github.com/flexui/flexbutton/font/gofont"
	"github.com/flexui/flexbutton/layout"
	"github.com/flexui/flexbutton/text"
)

// Measurer measures single lines of text. *text.Shaper implements it.
type Measurer interface {
	Measure(fnt text.Font, str string) f32.Point
}

const (
	// MinTouchTarget is the smallest width and height of a button.
	MinTouchTarget = 44
	// DefaultSpacing is the default gap between image and title.
	DefaultSpacing = 8
)

var (
	// DefaultInsets is the default space between the edges of a button
	// and its content.
	DefaultInsets = layout.Inset{Top: 12, Right: 16, Bottom: 12, Left: 16}
	// DefaultImageSize is the size of an image with no natural size.
	DefaultImageSize = f32.Pt(20, 20)
	// DefaultFont is the font used for sizing when no state sets one.
	DefaultFont = text.Font{Typeface: gofont.Typeface, Size: text.DefaultSize}
)

// MinimumSize returns the smallest size that fits the current content
// inside the insets, never less than the minimum touch target. The
// result is memoized until a size-affecting property changes.
func (b *Button) MinimumSize() f32.Point {
	if b.minValid {
		return b.minSize
	}
	b.minSize = b.computeMinimumSize()
	b.minValid = true
	b.log.Debug().
		Float32("width", b.minSize.X).
		Float32("height", b.minSize.Y).
		Msg("minimum size computed")
	return b.minSize
}

func (b *Button) computeMinimumSize() f32.Point {
	c := b.content()
	var sz f32.Point
	switch {
	case c.hasImage && c.hasTitle:
		if b.layout.Axis() == layout.Horizontal {
			sz = f32.Pt(c.image.X+b.spacing+c.title.X, max(c.image.Y, c.title.Y))
		} else {
			sz = f32.Pt(max(c.image.X, c.title.X), c.image.Y+b.spacing+c.title.Y)
		}
	case c.hasImage:
		sz = c.image
	case c.hasTitle:
		sz = c.title
	}
	sz = sz.Add(b.insets.Size()).Ceil()
	return sz.Max(f32.Pt(MinTouchTarget, MinTouchTarget))
}

// contentSizes are the extents of the present content views.
type contentSizes struct {
	image, title       f32.Point
	hasImage, hasTitle bool
}

func (b *Button) content() contentSizes {
	var c contentSizes
	if img := b.look.Image; img != nil {
		c.hasImage = true
		c.image = imageExtent(img, b.look.ImageSize, b.imageSize)
	}
	if t := b.look.Title; t != "" {
		c.hasTitle = true
		c.title = b.shaper.Measure(b.sizingFont(), t).Ceil()
	}
	return c
}

// sizingFont returns the font of the current state, else the font of
// the Normal state, else DefaultFont.
func (b *Button) sizingFont() text.Font {
	fnt := func(c *StateConfig) *text.Font { return c.Font }
	if f, ok := resolve(b.states.get(b.state), b.states.get(Normal), fnt); ok {
		return f
	}
	return DefaultFont
}

// invalidateSize drops the memoized minimum size and the arranged
// frames.
func (b *Button) invalidateSize() {
	b.minValid = false
	b.framesValid = false
}
