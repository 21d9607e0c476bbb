// SPDX-License-Identifier: Unlicense OR MIT

// Package gofont exports the Go fonts as a text.FontFace collection.
//
// See https://blog.golang.org/go-fonts for a description of the
// fonts, and the golang.org/x/image/font/gofont packages for the
// font data.
package gofont

import (
	"fmt"
	"sync"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomediumitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/flexui/flexbutton/text"
)

// Typeface is the typeface name of every face in the collection.
const Typeface text.Typeface = "Go"

type source struct {
	font text.Font
	ttf  []byte
}

// sources lists the faces in registration order. Regular comes first so
// that it is the fallback of a text.Shaper.
var sources = []source{
	{text.Font{}, goregular.TTF},
	{text.Font{Style: text.Italic}, goitalic.TTF},
	{text.Font{Weight: text.Bold}, gobold.TTF},
	{text.Font{Style: text.Italic, Weight: text.Bold}, gobolditalic.TTF},
	{text.Font{Weight: text.Medium}, gomedium.TTF},
	{text.Font{Weight: text.Medium, Style: text.Italic}, gomediumitalic.TTF},
	{text.Font{Variant: "Mono"}, gomono.TTF},
	{text.Font{Variant: "Mono", Weight: text.Bold}, gomonobold.TTF},
}

var (
	once       sync.Once
	collection []text.FontFace
)

// Regular returns a collection of only the Go regular font face.
func Regular() []text.FontFace {
	c := Collection()
	return c[:1:1]
}

// Collection returns the Go font faces. The fonts are parsed once, on
// first use.
func Collection() []text.FontFace {
	once.Do(func() {
		collection = make([]text.FontFace, len(sources))
		for i, src := range sources {
			face, err := opentype.Parse(src.ttf)
			if err != nil {
				panic(fmt.Errorf("failed to parse font: %v", err))
			}
			fnt := src.font
			fnt.Typeface = Typeface
			collection[i] = text.FontFace{Font: fnt, Face: face}
		}
	})
	return collection[:len(collection):len(collection)]
}
