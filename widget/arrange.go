// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"github.com/flexui/flexbutton/f32"
	"github.com/flexui/flexbutton/layout"
)

// LayoutMode is the relative placement of image and title.
type LayoutMode uint8

const (
	// ImageLeft places the image before the title on a horizontal
	// axis.
	ImageLeft LayoutMode = iota
	ImageRight
	// ImageTop places the image above the title on a vertical axis.
	ImageTop
	ImageBottom
)

// Alignment positions the content cluster inside the insets. The zero
// Alignment centers it.
type Alignment uint8

const (
	AlignCenter Alignment = iota
	AlignLeading
	AlignTrailing
	AlignTop
	AlignBottom
	AlignLeadingTop
	AlignLeadingBottom
	AlignTrailingTop
	AlignTrailingBottom
)

// Frames are the arranged content rectangles in button coordinates.
// Frames of absent content are empty.
type Frames struct {
	// Content bounds the image and the title.
	Content f32.Rectangle
	Image   f32.Rectangle
	Title   f32.Rectangle
}

// Axis returns the stacking axis of m.
func (m LayoutMode) Axis() layout.Axis {
	switch m {
	case ImageTop, ImageBottom:
		return layout.Vertical
	default:
		return layout.Horizontal
	}
}

func (m LayoutMode) imageFirst() bool {
	return m == ImageLeft || m == ImageTop
}

// Direction maps a to a layout direction, with W as the leading edge.
func (a Alignment) Direction() layout.Direction {
	switch a {
	case AlignLeading:
		return layout.W
	case AlignTrailing:
		return layout.E
	case AlignTop:
		return layout.N
	case AlignBottom:
		return layout.S
	case AlignLeadingTop:
		return layout.NW
	case AlignLeadingBottom:
		return layout.SW
	case AlignTrailingTop:
		return layout.NE
	case AlignTrailingBottom:
		return layout.SE
	default:
		return layout.Center
	}
}

// Frames returns the content frames for the current bounds, arranging
// them if anything they depend on changed.
func (b *Button) Frames() Frames {
	if !b.framesValid {
		b.frames = b.arrange()
		b.framesValid = true
	}
	return b.frames
}

func (b *Button) arrange() Frames {
	c := b.content()
	var sizes []f32.Point
	imgIdx, titleIdx := -1, -1
	addImage := func() {
		if c.hasImage {
			imgIdx = len(sizes)
			sizes = append(sizes, c.image)
		}
	}
	addTitle := func() {
		if c.hasTitle {
			titleIdx = len(sizes)
			sizes = append(sizes, c.title)
		}
	}
	if b.layout.imageFirst() {
		addImage()
		addTitle()
	} else {
		addTitle()
		addImage()
	}
	rects, size := layout.Flex{Axis: b.layout.Axis(), Spacing: b.spacing}.Layout(sizes...)
	origin := b.insets.Place(b.alignment.Direction(), b.frame.Size(), size)
	f := Frames{Content: f32.Rectangle{Max: size}.Add(origin)}
	if imgIdx >= 0 {
		f.Image = rects[imgIdx].Add(origin)
	}
	if titleIdx >= 0 {
		f.Title = rects[titleIdx].Add(origin)
	}
	return f
}

func (m LayoutMode) String() string {
	switch m {
	case ImageLeft:
		return "ImageLeft"
	case ImageRight:
		return "ImageRight"
	case ImageTop:
		return "ImageTop"
	case ImageBottom:
		return "ImageBottom"
	default:
		panic("invalid LayoutMode")
	}
}

func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "Center"
	case AlignLeading:
		return "Leading"
	case AlignTrailing:
		return "Trailing"
	case AlignTop:
		return "Top"
	case AlignBottom:
		return "Bottom"
	case AlignLeadingTop:
		return "LeadingTop"
	case AlignLeadingBottom:
		return "LeadingBottom"
	case AlignTrailingTop:
		return "TrailingTop"
	case AlignTrailingBottom:
		return "TrailingBottom"
	default:
		panic("invalid Alignment")
	}
}
