// SPDX-License-Identifier: Unlicense OR MIT

package preset

import (
	"fmt"
	"image/color"

	"github.com/flexui/flexbutton/f32"
	"github.com/flexui/flexbutton/font/gofont"
	"github.com/flexui/flexbutton/layout"
	"github.com/flexui/flexbutton/text"
	"github.com/flexui/flexbutton/widget"
)

// Build returns a new button styled by p.
func (p *Preset) Build(opts ...widget.Option) (*widget.Button, error) {
	b := widget.NewButton(opts...)
	if err := p.Apply(b); err != nil {
		return nil, err
	}
	return b, nil
}

// Apply styles b with p. The Normal style goes through Configure, so
// the Selected and Disabled states are first derived from it and then
// overridden by their own styles.
func (p *Preset) Apply(b *widget.Button) error {
	cfg, err := p.config()
	if err != nil {
		return err
	}
	if p.Spacing != nil {
		b.SetSpacing(*p.Spacing)
	}
	if in := p.Insets; in != nil {
		b.SetInsets(layout.Inset{Top: in.Top, Right: in.Right, Bottom: in.Bottom, Left: in.Left})
	}
	if sz := p.ImageSize; sz != nil {
		b.SetDefaultImageSize(f32.Pt(sz.Width, sz.Height))
	}
	b.Configure(cfg)
	if a := p.Normal.Alpha; a != nil {
		b.SetAlpha(widget.Normal, *a)
	}
	for _, o := range []struct {
		state widget.State
		style *StateStyle
	}{
		{widget.Selected, p.Selected},
		{widget.Disabled, p.Disabled},
	} {
		if o.style == nil {
			continue
		}
		if err := o.style.apply(b, o.state); err != nil {
			return err
		}
	}
	if p.CornerRadius > 0 {
		b.SetCornerRadius(p.CornerRadius)
	}
	if bd := p.Border; bd != nil {
		c, err := ParseColor(bd.Color)
		if err != nil {
			return NewValidationError("border.color", err.Error(), err)
		}
		b.SetBorder(bd.Width, c)
	}
	if p.Shadow {
		b.SetShadow(widget.DefaultShadow)
	}
	if p.Circular {
		b.SetCircular(true)
	}
	if sz := p.FixedSize; sz != nil {
		b.SetFixedSize(sz.Width, sz.Height)
	}
	return nil
}

// config converts the Normal style and the button-wide settings.
func (p *Preset) config() (widget.Config, error) {
	cfg := widget.Config{
		Layout:    layoutModes[p.Layout],
		Alignment: alignments[p.Alignment],
		Animated:  p.Animated,
	}
	if p.Animation != "" {
		a := animations[p.Animation]
		cfg.Animation = &a
	}
	n := p.Normal
	if n.Title != nil {
		cfg.Title = *n.Title
	}
	var err error
	if cfg.Image, err = n.image(); err != nil {
		return cfg, err
	}
	if cfg.Background, err = optColor("normal.background", n.Background); err != nil {
		return cfg, err
	}
	if cfg.ImageTint, err = optColor("normal.image_tint", n.ImageTint); err != nil {
		return cfg, err
	}
	if cfg.TitleColor, err = optColor("normal.title_color", n.TitleColor); err != nil {
		return cfg, err
	}
	if n.Font != nil {
		f := n.Font.font()
		cfg.Font = &f
	}
	if sz := n.ImageSize; sz != nil {
		pt := f32.Pt(sz.Width, sz.Height)
		cfg.ImageSize = &pt
	}
	return cfg, nil
}

// apply sets the fields of s on state st of b.
func (s *StateStyle) apply(b *widget.Button, st widget.State) error {
	if s.Title != nil {
		b.SetTitle(st, *s.Title)
	}
	img, err := s.image()
	if err != nil {
		return err
	}
	if img != nil {
		b.SetImage(st, img)
	}
	for _, c := range []struct {
		field string
		value string
		set   func(widget.State, color.NRGBA)
	}{
		{"background", s.Background, b.SetBackgroundColor},
		{"image_tint", s.ImageTint, b.SetImageTint},
		{"title_color", s.TitleColor, b.SetTitleColor},
	} {
		col, err := optColor(fmt.Sprintf("%s.%s", stateKey(st), c.field), c.value)
		if err != nil {
			return err
		}
		if col != nil {
			c.set(st, *col)
		}
	}
	if s.Font != nil {
		b.SetTitleFont(st, s.Font.font())
	}
	if sz := s.ImageSize; sz != nil {
		b.SetImageSize(st, f32.Pt(sz.Width, sz.Height))
	}
	if s.Alpha != nil {
		b.SetAlpha(st, *s.Alpha)
	}
	return nil
}

func (s *StateStyle) image() (widget.Image, error) {
	if s.Icon == "" {
		return nil, nil
	}
	ic, err := Icon(s.Icon)
	if err != nil {
		return nil, NewValidationError("icon", err.Error(), err)
	}
	return ic, nil
}

func (f *Font) font() text.Font {
	fnt := text.Font{
		Typeface: text.Typeface(f.Typeface),
		Weight:   text.Weight(f.Weight),
		Size:     f.Size,
	}
	if fnt.Typeface == "" {
		fnt.Typeface = gofont.Typeface
	}
	if f.Style == "italic" {
		fnt.Style = text.Italic
	}
	if fnt.Size == 0 {
		fnt.Size = text.DefaultSize
	}
	return fnt
}

func optColor(field, s string) (*color.NRGBA, error) {
	if s == "" {
		return nil, nil
	}
	c, err := ParseColor(s)
	if err != nil {
		return nil, NewValidationError(field, err.Error(), err)
	}
	return &c, nil
}

func stateKey(st widget.State) string {
	switch st {
	case widget.Selected:
		return "selected"
	case widget.Disabled:
		return "disabled"
	default:
		return "normal"
	}
}
