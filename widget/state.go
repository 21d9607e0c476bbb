// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image/color"

	"github.com/flexui/flexbutton/f32"
	"github.com/flexui/flexbutton/text"
)

// State is the interaction state of a Button.
type State uint8

const (
	Normal State = iota
	Selected
	Disabled

	numStates
)

// Decoration is an opaque background element owned by the caller, for
// example a gradient or a blurred backdrop. A button with a decoration
// presents a transparent background color.
type Decoration interface{}

// StateConfig holds the appearance overrides for one State. A nil
// field defers to the Normal state's value and then to the value the
// button already presents.
type StateConfig struct {
	Background *color.NRGBA
	ImageTint  *color.NRGBA
	TitleColor *color.NRGBA
	Font       *text.Font
	Decoration Decoration
	Image      Image
	Title      *string
	// ImageSize overrides the natural size of the image.
	ImageSize *f32.Point
	// Alpha is the opacity of the whole button. When neither the
	// state nor Normal define it, the button is opaque.
	Alpha *float32
}

// Field names a StateConfig field for Unset.
type Field uint8

const (
	FieldBackground Field = iota
	FieldImageTint
	FieldTitleColor
	FieldFont
	FieldDecoration
	FieldImage
	FieldTitle
	FieldImageSize
	FieldAlpha
)

// Derivation is the policy Configure uses to fill the Selected and
// Disabled states from the Normal colors. Each alpha replaces the alpha
// channel of the derived colors and becomes the state's opacity.
type Derivation struct {
	SelectedAlpha float32
	DisabledAlpha float32
}

// DefaultDerivation dims selected buttons slightly and disabled buttons
// by half.
var DefaultDerivation = Derivation{SelectedAlpha: 0.9, DisabledAlpha: 0.5}

// stateStore maps each State to an optional StateConfig.
type stateStore struct {
	configs [numStates]*StateConfig
}

func (s *stateStore) get(st State) *StateConfig {
	if st >= numStates {
		return nil
	}
	return s.configs[st]
}

// ensure returns the config for st, creating an empty one if needed.
func (s *stateStore) ensure(st State) *StateConfig {
	if s.configs[st] == nil {
		s.configs[st] = new(StateConfig)
	}
	return s.configs[st]
}

func (s *stateStore) unset(st State, f Field) {
	c := s.configs[st]
	if c == nil {
		return
	}
	switch f {
	case FieldBackground:
		c.Background = nil
	case FieldImageTint:
		c.ImageTint = nil
	case FieldTitleColor:
		c.TitleColor = nil
	case FieldFont:
		c.Font = nil
	case FieldDecoration:
		c.Decoration = nil
	case FieldImage:
		c.Image = nil
	case FieldTitle:
		c.Title = nil
	case FieldImageSize:
		c.ImageSize = nil
	case FieldAlpha:
		c.Alpha = nil
	}
}

// resolve returns the first non-nil field value of cur and then nrm.
func resolve[T any](cur, nrm *StateConfig, field func(*StateConfig) *T) (T, bool) {
	for _, c := range [...]*StateConfig{cur, nrm} {
		if c == nil {
			continue
		}
		if v := field(c); v != nil {
			return *v, true
		}
	}
	var zero T
	return zero, false
}

func resolveImage(cur, nrm *StateConfig) Image {
	if cur != nil && cur.Image != nil {
		return cur.Image
	}
	if nrm != nil {
		return nrm.Image
	}
	return nil
}

func resolveDecoration(cur, nrm *StateConfig) Decoration {
	if cur != nil && cur.Decoration != nil {
		return cur.Decoration
	}
	if nrm != nil {
		return nrm.Decoration
	}
	return nil
}

// derive returns the config of a state derived from the Normal colors
// of cfg.
func (d Derivation) derive(cfg Config, alpha float32) *StateConfig {
	sc := &StateConfig{
		Background: withAlpha(cfg.Background, alpha),
		ImageTint:  withAlpha(cfg.ImageTint, alpha),
		TitleColor: withAlpha(cfg.TitleColor, alpha),
		Font:       clone(cfg.Font),
		Alpha:      &alpha,
	}
	return sc
}

func clone[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func withAlpha(c *color.NRGBA, a float32) *color.NRGBA {
	if c == nil {
		return nil
	}
	v := *c
	v.A = alphaByte(a)
	return &v
}

func alphaByte(a float32) uint8 {
	switch {
	case a <= 0:
		return 0
	case a >= 1:
		return 255
	}
	return uint8(a*255 + .5)
}

func (s State) String() string {
	switch s {
	case Normal:
		return "Normal"
	case Selected:
		return "Selected"
	case Disabled:
		return "Disabled"
	default:
		panic("invalid State")
	}
}

func (f Field) String() string {
	switch f {
	case FieldBackground:
		return "Background"
	case FieldImageTint:
		return "ImageTint"
	case FieldTitleColor:
		return "TitleColor"
	case FieldFont:
		return "Font"
	case FieldDecoration:
		return "Decoration"
	case FieldImage:
		return "Image"
	case FieldTitle:
		return "Title"
	case FieldImageSize:
		return "ImageSize"
	case FieldAlpha:
		return "Alpha"
	default:
		panic("invalid Field")
	}
}
