// SPDX-License-Identifier: Unlicense OR MIT

/*
Package text measures single lines of text for button titles.

A Shaper holds a collection of font faces and answers bounding box
queries for a string rendered in a Font. Results are cached.
*/
package text

import (
	"fmt"

	"golang.org/x/image/font/sfnt"
)

// Style is the font style.
type Style int

// Weight is a font weight, in CSS units.
type Weight int

// Typeface identifies a particular typeface design. The empty
// string denotes the default typeface.
type Typeface string

// Variant denotes a typeface variant such as "Mono" or "Smallcaps".
type Variant string

// Font specify a particular typeface, style and size.
type Font struct {
	Typeface Typeface
	Variant  Variant
	Style    Style
	// Weight is the text weight. If zero, Normal is used instead.
	Weight Weight
	// Size is the font size in points.
	Size float32
}

// FontFace pairs a Font description with the parsed font data
// implementing it. The Size of Font is ignored.
type FontFace struct {
	Font Font
	Face *sfnt.Font
}

const (
	Regular Style = iota
	Italic
)

const (
	Thin       Weight = 100
	ExtraLight Weight = 200
	Light      Weight = 300
	Normal     Weight = 400
	Medium     Weight = 500
	SemiBold   Weight = 600
	Bold       Weight = 700
	ExtraBold  Weight = 800
	Black      Weight = 900
)

func (s Style) String() string {
	switch s {
	case Regular:
		return "Regular"
	case Italic:
		return "Italic"
	default:
		return fmt.Sprintf("Style(%d)", int(s))
	}
}

func (w Weight) String() string {
	switch w {
	case Thin:
		return "Thin"
	case ExtraLight:
		return "ExtraLight"
	case Light:
		return "Light"
	case Normal:
		return "Normal"
	case Medium:
		return "Medium"
	case SemiBold:
		return "SemiBold"
	case Bold:
		return "Bold"
	case ExtraBold:
		return "ExtraBold"
	case Black:
		return "Black"
	default:
		return fmt.Sprintf("Weight(%d)", int(w))
	}
}
