// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image/color"

	"github.com/rs/zerolog"

	"github.com/flexui/flexbutton/anim"
	"github.com/flexui/flexbutton/f32"
	"github.com/flexui/flexbutton/font/gofont"
	"github.com/flexui/flexbutton/gesture"
	"github.com/flexui/flexbutton/layout"
	"github.com/flexui/flexbutton/text"
)

// Button is a self-sizing button with an image and a title.
type Button struct {
	shaper Measurer
	sched  *anim.Scheduler
	log    zerolog.Logger
	derive Derivation

	layout    LayoutMode
	alignment Alignment
	spacing   float32
	insets    layout.Inset
	imageSize f32.Point
	animated  bool
	animation TapAnimation
	onTap     func(*Button)

	state  State
	states stateStore
	look   Appearance
	pres   presentation

	minSize  f32.Point
	minValid bool

	frames      Frames
	framesValid bool

	regime       Regime
	frame        f32.Rectangle
	fixed        *f32.Point
	anchors      layout.Anchors
	generation   int
	onInvalidate func()

	decor     Decor
	click     gesture.Click
	semantics Semantics
	lookTask  *anim.Task
	tapTask   *anim.Task
}

// Appearance is the resolved model appearance of a button. Presented
// values converge to it once animations finish.
type Appearance struct {
	Background color.NRGBA
	ImageTint  color.NRGBA
	TitleColor color.NRGBA
	Font       text.Font
	Decoration Decoration
	Image      Image
	Title      string
	// ImageSize is the custom image size, if any.
	ImageSize *f32.Point
	Alpha     float32
}

// Config is the bulk configuration applied by Configure.
type Config struct {
	Image Image
	// Title is the Normal title. The empty string sets no title, so a
	// reconfigured button keeps presenting its previous title; call
	// SetTitle(Normal, "") to clear it.
	Title      string
	Layout     LayoutMode
	Background *color.NRGBA
	Decoration Decoration
	ImageTint  *color.NRGBA
	TitleColor *color.NRGBA
	Font       *text.Font
	Alignment  Alignment
	// ImageSize overrides the natural image size.
	ImageSize *f32.Point
	// Animated enables or disables the tap animation. Nil leaves
	// the current setting.
	Animated *bool
	// Animation selects the tap animation. Nil leaves the current
	// setting.
	Animation *TapAnimation
	OnTap     func(*Button)
}

// Option configures a Button at construction.
type Option func(b *Button)

// WithShaper sets the text measurer. The default measures with the Go
// fonts.
func WithShaper(m Measurer) Option {
	return func(b *Button) {
		b.shaper = m
	}
}

// WithScheduler sets the scheduler that runs the button's animations.
func WithScheduler(s *anim.Scheduler) Option {
	return func(b *Button) {
		b.sched = s
	}
}

// WithLogger sets the logger for debug events.
func WithLogger(l zerolog.Logger) Option {
	return func(b *Button) {
		b.log = l
	}
}

// WithDerivation sets the policy Configure uses to derive the Selected
// and Disabled states.
func WithDerivation(d Derivation) Option {
	return func(b *Button) {
		b.derive = d
	}
}

// WithInvalidate registers f to be called whenever the intrinsic size
// of a constrained button changes.
func WithInvalidate(f func()) Option {
	return func(b *Button) {
		b.onInvalidate = f
	}
}

var systemBlue = color.NRGBA{R: 0x00, G: 0x7a, B: 0xff, A: 0xff}

// NewButton returns an empty button sized to its minimum size at the
// origin, in the absolute regime.
func NewButton(opts ...Option) *Button {
	b := &Button{
		log:       zerolog.Nop(),
		derive:    DefaultDerivation,
		spacing:   DefaultSpacing,
		insets:    DefaultInsets,
		imageSize: DefaultImageSize,
		animated:  true,
		animation: TapScale,
		look: Appearance{
			ImageTint:  systemBlue,
			TitleColor: systemBlue,
			Font:       DefaultFont,
			Alpha:      1,
		},
	}
	for _, o := range opts {
		o(b)
	}
	if b.shaper == nil {
		b.shaper = text.NewShaper(gofont.Collection())
	}
	if b.sched == nil {
		b.sched = new(anim.Scheduler)
	}
	b.setFrame(f32.Rectangle{Max: b.MinimumSize()})
	b.resetAnimation()
	b.updateSemantics()
	return b
}

// Configure replaces the Normal state with the values of cfg and
// derives the Selected and Disabled states from its colors. The result
// is applied without animation.
func (b *Button) Configure(cfg Config) {
	b.layout = cfg.Layout
	b.alignment = cfg.Alignment
	b.onTap = cfg.OnTap
	if cfg.Animated != nil {
		b.animated = *cfg.Animated
	}
	if cfg.Animation != nil {
		b.animation = *cfg.Animation
	}
	opaque := float32(1)
	normal := &StateConfig{
		Background: clone(cfg.Background),
		ImageTint:  clone(cfg.ImageTint),
		TitleColor: clone(cfg.TitleColor),
		Font:       clone(cfg.Font),
		Decoration: cfg.Decoration,
		Image:      cfg.Image,
		ImageSize:  clone(cfg.ImageSize),
		Alpha:      &opaque,
	}
	if cfg.Title != "" {
		t := cfg.Title
		normal.Title = &t
	}
	b.states.configs[Normal] = normal
	b.states.configs[Selected] = b.derive.derive(cfg, b.derive.SelectedAlpha)
	b.states.configs[Disabled] = b.derive.derive(cfg, b.derive.DisabledAlpha)
	b.invalidateSize()
	b.apply(false)
}

// Config returns a copy of the configuration of st and whether one
// exists.
func (b *Button) Config(st State) (StateConfig, bool) {
	c := b.states.get(st)
	if c == nil {
		return StateConfig{}, false
	}
	return *c, true
}

func (b *Button) SetBackgroundColor(st State, c color.NRGBA) {
	b.states.ensure(st).Background = &c
	b.changed(st)
}

func (b *Button) SetImageTint(st State, c color.NRGBA) {
	b.states.ensure(st).ImageTint = &c
	b.changed(st)
}

func (b *Button) SetTitleColor(st State, c color.NRGBA) {
	b.states.ensure(st).TitleColor = &c
	b.changed(st)
}

// SetAlpha sets the opacity of the button in st.
func (b *Button) SetAlpha(st State, alpha float32) {
	b.states.ensure(st).Alpha = &alpha
	b.changed(st)
}

func (b *Button) SetTitleFont(st State, f text.Font) {
	b.states.ensure(st).Font = &f
	b.changed(st)
}

func (b *Button) SetDecoration(st State, d Decoration) {
	b.states.ensure(st).Decoration = d
	b.changed(st)
}

func (b *Button) SetImage(st State, img Image) {
	b.states.ensure(st).Image = img
	b.changed(st)
}

func (b *Button) SetTitle(st State, title string) {
	b.states.ensure(st).Title = &title
	b.changed(st)
}

// SetImageSize overrides the natural image size in st.
func (b *Button) SetImageSize(st State, sz f32.Point) {
	b.states.ensure(st).ImageSize = &sz
	b.changed(st)
}

// Unset removes the override of f in st.
func (b *Button) Unset(st State, f Field) {
	b.states.unset(st, f)
	b.changed(st)
}

// changed re-applies the appearance if a change to st can affect what
// the button presents.
func (b *Button) changed(st State) {
	if st == b.state || st == Normal {
		b.apply(true)
	}
}

// SetState moves the button to st. Setting the current state does
// nothing.
func (b *Button) SetState(st State, animated bool) {
	if st == b.state {
		return
	}
	b.log.Debug().
		Stringer("from", b.state).
		Stringer("to", st).
		Bool("animated", animated).
		Msg("state changed")
	b.state = st
	b.resetTransform()
	b.apply(animated)
}

func (b *Button) State() State {
	return b.state
}

// Appearance returns the resolved model appearance.
func (b *Button) Appearance() Appearance {
	return b.look
}

func (b *Button) SetLayout(m LayoutMode) {
	if m == b.layout {
		return
	}
	b.layout = m
	b.invalidateSize()
	b.updateSize()
}

func (b *Button) Layout() LayoutMode {
	return b.layout
}

// SetAlignment positions the content. Alignment does not affect the
// minimum size.
func (b *Button) SetAlignment(a Alignment) {
	b.alignment = a
	b.framesValid = false
}

func (b *Button) Alignment() Alignment {
	return b.alignment
}

// SetSpacing sets the gap between image and title.
func (b *Button) SetSpacing(s float32) {
	if s == b.spacing {
		return
	}
	b.spacing = s
	b.invalidateSize()
	b.updateSize()
}

func (b *Button) Spacing() float32 {
	return b.spacing
}

func (b *Button) SetInsets(in layout.Inset) {
	if in == b.insets {
		return
	}
	b.insets = in
	b.invalidateSize()
	b.updateSize()
}

func (b *Button) Insets() layout.Inset {
	return b.insets
}

// SetDefaultImageSize sets the size of images that have neither a
// custom nor a natural size.
func (b *Button) SetDefaultImageSize(sz f32.Point) {
	if sz == b.imageSize {
		return
	}
	b.imageSize = sz
	b.invalidateSize()
	b.updateSize()
}

// SetOnTap sets the function called for every tap.
func (b *Button) SetOnTap(f func(*Button)) {
	b.onTap = f
}

// SetTapAnimation selects the tap animation and whether it plays.
func (b *Button) SetTapAnimation(a TapAnimation, enabled bool) {
	b.animation = a
	b.animated = enabled
}
