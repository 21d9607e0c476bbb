// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"

	"github.com/flexui/flexbutton/f32"
)

// Image is the image content of a button.
type Image interface {
	// Size returns the natural size of the image in points. A zero
	// extent means the image has no natural size and the button's
	// default image size applies.
	Size() f32.Point
}

// Bitmap is an Image backed by pixels.
type Bitmap struct {
	Src image.Image
	// Scale is the ratio of image pixels to points. If Scale is
	// zero, one pixel maps to one point.
	Scale float32
}

func (b Bitmap) Size() f32.Point {
	if b.Src == nil {
		return f32.Point{}
	}
	scale := b.Scale
	if scale <= 0 {
		scale = 1
	}
	sz := b.Src.Bounds().Size()
	return f32.Pt(float32(sz.X)/scale, float32(sz.Y)/scale)
}

// imageExtent returns the size an image occupies: the custom size if
// any, else its natural size, else def. Extents are rounded up and
// never below 1.
func imageExtent(img Image, custom *f32.Point, def f32.Point) f32.Point {
	var sz f32.Point
	switch {
	case custom != nil:
		sz = *custom
	default:
		sz = img.Size()
		if sz.X <= 0 || sz.Y <= 0 {
			sz = def
		}
	}
	sz = sz.Ceil()
	return sz.Max(f32.Pt(1, 1))
}
