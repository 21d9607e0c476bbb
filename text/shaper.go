// SPDX-License-Identifier: Unlicense OR MIT

package text

import (
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/flexui/flexbutton/f32"
)

// DefaultSize is the size used for fonts that don't specify one.
const DefaultSize = 16

// Shaper measures text from a set of registered fonts.
//
// If a font matches no registered face, Shaper falls back to the
// first registered typeface.
//
// Measurements are cached and re-used if possible.
type Shaper struct {
	def   Typeface
	faces map[Font]*sfnt.Font
	sized map[sizedKey]font.Face
	cache measureCache
}

type sizedKey struct {
	face *sfnt.Font
	size float32
}

// NewShaper returns a Shaper with every face of collection registered.
func NewShaper(collection []FontFace) *Shaper {
	s := new(Shaper)
	for _, ff := range collection {
		s.Register(ff.Font, ff.Face)
	}
	return s
}

// Register makes face available for fonts matching fnt. The first
// registered typeface is the fallback typeface.
func (s *Shaper) Register(fnt Font, face *sfnt.Font) {
	if s.faces == nil {
		s.def = fnt.Typeface
		s.faces = make(map[Font]*sfnt.Font)
		s.sized = make(map[sizedKey]font.Face)
	}
	// Treat all font sizes equally.
	fnt.Size = 0
	if fnt.Weight == 0 {
		fnt.Weight = Normal
	}
	s.faces[fnt] = face
}

// Measure returns the bounding box of str laid out on a single line in
// fnt: the advance width of the string and the line height of the font.
// Line breaks are treated as spaces. The result is not rounded.
func (s *Shaper) Measure(fnt Font, str string) f32.Point {
	if str == "" {
		return f32.Point{}
	}
	if fnt.Size <= 0 {
		fnt.Size = DefaultSize
	}
	if fnt.Weight == 0 {
		fnt.Weight = Normal
	}
	k := measureKey{font: fnt, str: str}
	if sz, ok := s.cache.Get(k); ok {
		return sz
	}
	face := s.sizedFace(fnt)
	if face == nil {
		return f32.Point{}
	}
	line := strings.Map(func(r rune) rune {
		if r == '\n' || r == '\r' {
			return ' '
		}
		return r
	}, str)
	adv := font.MeasureString(face, line)
	m := face.Metrics()
	h := m.Height
	if h == 0 {
		h = m.Ascent + m.Descent
	}
	sz := f32.Point{X: fixedToFloat(adv), Y: fixedToFloat(h)}
	s.cache.Put(k, sz)
	return sz
}

func (s *Shaper) sizedFace(fnt Font) font.Face {
	f := s.faceForFont(fnt)
	if f == nil {
		return nil
	}
	k := sizedKey{face: f, size: fnt.Size}
	if face, ok := s.sized[k]; ok {
		return face
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    float64(fnt.Size),
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil
	}
	s.sized[k] = face
	return face
}

func (s *Shaper) faceForStyle(fnt Font) *sfnt.Font {
	tf := s.faces[fnt]
	if tf == nil {
		fnt := fnt
		fnt.Weight = Normal
		tf = s.faces[fnt]
	}
	if tf == nil {
		fnt := fnt
		fnt.Style = Regular
		tf = s.faces[fnt]
	}
	if tf == nil {
		fnt := fnt
		fnt.Style = Regular
		fnt.Weight = Normal
		tf = s.faces[fnt]
	}
	return tf
}

func (s *Shaper) faceForFont(fnt Font) *sfnt.Font {
	fnt.Size = 0
	tf := s.faceForStyle(fnt)
	if tf == nil {
		fnt.Variant = ""
		tf = s.faceForStyle(fnt)
	}
	if tf == nil {
		fnt.Typeface = s.def
		tf = s.faceForStyle(fnt)
	}
	return tf
}

func fixedToFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64
}
