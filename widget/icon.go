// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/flexui/flexbutton/f32"
	"golang.org/x/exp/shiny/iconvg"
)

// Icon is an Image decoded from IconVG data. Icons scale to any size
// and have no natural size of their own.
type Icon struct {
	src []byte
	// Cached values.
	img      *image.RGBA
	imgSize  int
	imgColor color.NRGBA
}

// NewIcon returns a new Icon from IconVG data.
func NewIcon(data []byte) (*Icon, error) {
	_, err := iconvg.DecodeMetadata(data)
	if err != nil {
		return nil, err
	}
	return &Icon{src: data}, nil
}

func (ic *Icon) Size() f32.Point {
	return f32.Point{}
}

// Image rasterizes the icon sz pixels wide in color c. The result is
// cached until the size or color changes.
func (ic *Icon) Image(sz int, c color.NRGBA) *image.RGBA {
	if ic.img != nil && sz == ic.imgSize && c == ic.imgColor {
		return ic.img
	}
	m, _ := iconvg.DecodeMetadata(ic.src)
	dx, dy := m.ViewBox.AspectRatio()
	img := image.NewRGBA(image.Rectangle{Max: image.Point{X: sz, Y: int(float32(sz) * dy / dx)}})
	var ico iconvg.Rasterizer
	ico.SetDstImage(img, img.Bounds(), draw.Src)
	m.Palette[0] = color.RGBAModel.Convert(c).(color.RGBA)
	iconvg.Decode(&ico, ic.src, &iconvg.DecodeOptions{
		Palette: &m.Palette,
	})
	ic.img = img
	ic.imgSize = sz
	ic.imgColor = c
	return img
}
