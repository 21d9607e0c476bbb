// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image/color"
	"strings"
	"testing"
	"time"

	"github.com/flexui/flexbutton/anim"
	"github.com/flexui/flexbutton/f32"
	"github.com/flexui/flexbutton/layout"
	"github.com/flexui/flexbutton/text"
)

// fakeMeasurer measures every rune 15 points wide and 18 points high at
// the default size, scaling with the font size.
type fakeMeasurer struct {
	calls int
	sizes map[string]f32.Point
}

func (m *fakeMeasurer) Measure(fnt text.Font, s string) f32.Point {
	m.calls++
	if sz, ok := m.sizes[s]; ok {
		return sz
	}
	scale := fnt.Size / text.DefaultSize
	return f32.Pt(float32(len(s))*15*scale, 18*scale)
}

// fixedImage is an Image with a natural size.
type fixedImage f32.Point

func (i fixedImage) Size() f32.Point {
	return f32.Point(i)
}

var (
	red  = color.NRGBA{R: 0xff, A: 0xff}
	blue = color.NRGBA{B: 0xff, A: 0xff}
)

func newTestButton(opts ...Option) (*Button, *fakeMeasurer) {
	m := &fakeMeasurer{sizes: map[string]f32.Point{"OK": f32.Pt(30, 18)}}
	return NewButton(append([]Option{WithShaper(m)}, opts...)...), m
}

func TestNewButton(t *testing.T) {
	b, _ := newTestButton()
	if got, want := b.Frame(), f32.Rect(0, 0, 44, 44); got != want {
		t.Errorf("frame = %v, want %v", got, want)
	}
	if b.Regime() != RegimeAbsolute {
		t.Errorf("regime = %v, want Absolute", b.Regime())
	}
	if b.State() != Normal {
		t.Errorf("state = %v, want Normal", b.State())
	}
	if a := b.Appearance().Alpha; a != 1 {
		t.Errorf("alpha = %v, want 1", a)
	}
	if s := b.Semantics(); s.Label != "button" {
		t.Errorf("label = %q, want %q", s.Label, "button")
	}
}

func TestMinimumSize(t *testing.T) {
	custom := f32.Pt(40, 40)
	tests := []struct {
		name   string
		cfg    Config
		spacer float32
		want   f32.Point
	}{
		{"image left", Config{Image: fixedImage{20, 20}, Title: "OK"}, 8, f32.Pt(90, 44)},
		{"image right", Config{Image: fixedImage{20, 20}, Title: "OK", Layout: ImageRight}, 8, f32.Pt(90, 44)},
		{"image top", Config{Image: fixedImage{20, 20}, Title: "OK", Layout: ImageTop}, 8, f32.Pt(62, 70)},
		{"image bottom", Config{Image: fixedImage{20, 20}, Title: "OK", Layout: ImageBottom}, 0, f32.Pt(62, 62)},
		{"empty", Config{}, 8, f32.Pt(44, 44)},
		{"empty title", Config{Title: ""}, 8, f32.Pt(44, 44)},
		{"title only", Config{Title: "OK"}, 8, f32.Pt(62, 44)},
		{"image only", Config{Image: fixedImage{20, 20}}, 8, f32.Pt(52, 44)},
		{"custom image", Config{Image: fixedImage{20, 20}, Title: "OK", ImageSize: &custom}, 8, f32.Pt(110, 64)},
		{"default image", Config{Image: fixedImage{}, Title: "OK"}, 8, f32.Pt(90, 44)},
		{"fractional image", Config{Image: fixedImage{19.2, 0.5}}, 8, f32.Pt(52, 44)},
		{"wide spacing", Config{Image: fixedImage{20, 20}, Title: "OK"}, 20, f32.Pt(102, 44)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b, _ := newTestButton()
			b.SetSpacing(tc.spacer)
			b.Configure(tc.cfg)
			if got := b.MinimumSize(); got != tc.want {
				t.Errorf("MinimumSize() = %v, want %v", got, tc.want)
			}
			if got := b.Frame().Size(); got != tc.want {
				t.Errorf("frame size = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestMinimumSizeFloor(t *testing.T) {
	contents := []struct {
		name string
		cfg  Config
	}{
		{"empty", Config{}},
		{"tiny image", Config{Image: fixedImage{1, 1}}},
		{"title", Config{Title: "a"}},
		{"both", Config{Image: fixedImage{1, 1}, Title: "a"}},
	}
	for _, c := range contents {
		for _, m := range []LayoutMode{ImageLeft, ImageRight, ImageTop, ImageBottom} {
			b, _ := newTestButton()
			b.SetInsets(layout.Inset{})
			b.SetSpacing(0)
			cfg := c.cfg
			cfg.Layout = m
			b.Configure(cfg)
			if sz := b.MinimumSize(); sz.X < MinTouchTarget || sz.Y < MinTouchTarget {
				t.Errorf("%s/%v: MinimumSize() = %v, below the touch target", c.name, m, sz)
			}
		}
	}
}

func TestMinimumSizeMonotonic(t *testing.T) {
	grow := []struct {
		name string
		set  func(b *Button, i int)
	}{
		{"insets", func(b *Button, i int) {
			b.SetInsets(layout.UniformInset(float32(i) * 3))
		}},
		{"title", func(b *Button, i int) {
			b.SetTitle(Normal, strings.Repeat("x", i))
		}},
		{"image", func(b *Button, i int) {
			b.SetImageSize(Normal, f32.Pt(float32(i)*4, float32(i)*3))
		}},
	}
	for _, g := range grow {
		for _, m := range []LayoutMode{ImageLeft, ImageRight, ImageTop, ImageBottom} {
			b, _ := newTestButton()
			b.Configure(Config{Image: fixedImage{20, 20}, Title: "OK", Layout: m})
			var prev f32.Point
			for i := 0; i < 20; i++ {
				g.set(b, i)
				sz := b.MinimumSize()
				if sz.X < prev.X || sz.Y < prev.Y {
					t.Errorf("%s/%v step %d: MinimumSize() = %v, shrank from %v", g.name, m, i, sz, prev)
				}
				prev = sz
			}
		}
	}
}

func TestMinimumSizeFractionalTitle(t *testing.T) {
	b, m := newTestButton()
	m.sizes["Go"] = f32.Pt(29.2, 17.01)
	b.Configure(Config{Image: fixedImage{20, 20}, Title: "Go"})
	if got, want := b.MinimumSize(), f32.Pt(90, 44); got != want {
		t.Errorf("MinimumSize() = %v, want %v", got, want)
	}
}

func TestMinimumSizeMemoized(t *testing.T) {
	b, m := newTestButton()
	b.Configure(Config{Image: fixedImage{20, 20}, Title: "OK"})
	first := b.MinimumSize()
	calls := m.calls
	if second := b.MinimumSize(); second != first {
		t.Errorf("MinimumSize changed without mutation: %v != %v", second, first)
	}
	if m.calls != calls {
		t.Errorf("MinimumSize measured again without mutation")
	}
	b.SetSpacing(4)
	if got, want := b.MinimumSize(), f32.Pt(86, 44); got != want {
		t.Errorf("MinimumSize() after SetSpacing = %v, want %v", got, want)
	}
	if m.calls == calls {
		t.Errorf("MinimumSize not recomputed after SetSpacing")
	}
}

func TestMinimumSizeInvalidation(t *testing.T) {
	b, _ := newTestButton()
	b.Configure(Config{Title: "OK"})
	tests := []struct {
		name   string
		mutate func()
		want   f32.Point
	}{
		{"title", func() { b.SetTitle(Normal, "OKOK") }, f32.Pt(92, 44)},
		{"image", func() { b.SetImage(Normal, fixedImage{20, 20}) }, f32.Pt(120, 44)},
		{"layout", func() { b.SetLayout(ImageTop) }, f32.Pt(92, 70)},
		{"insets", func() { b.SetInsets(layout.Inset{}) }, f32.Pt(60, 46)},
		{"image size", func() { b.SetImageSize(Normal, f32.Pt(30, 30)) }, f32.Pt(60, 56)},
		{"shadowed default image size", func() { b.SetDefaultImageSize(f32.Pt(1, 1)) }, f32.Pt(60, 56)},
		{"font", func() { b.SetTitleFont(Normal, text.Font{Size: 32}) }, f32.Pt(120, 74)},
	}
	for _, tc := range tests {
		tc.mutate()
		if got := b.MinimumSize(); got != tc.want {
			t.Errorf("%s: MinimumSize() = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestFixedSize(t *testing.T) {
	b, _ := newTestButton()
	b.Configure(Config{Image: fixedImage{20, 20}, Title: "OK"})
	tests := []struct {
		w, h float32
		want f32.Point
	}{
		{150, 50, f32.Pt(150, 50)},
		{60, 30, f32.Pt(90, 44)},
		{60, 80, f32.Pt(90, 80)},
	}
	for _, tc := range tests {
		b.SetFixedSize(tc.w, tc.h)
		if got := b.Frame().Size(); got != tc.want {
			t.Errorf("SetFixedSize(%v, %v): size = %v, want %v", tc.w, tc.h, got, tc.want)
		}
		if sz, ok := b.FixedSize(); !ok || sz != f32.Pt(tc.w, tc.h) {
			t.Errorf("FixedSize() = %v, %v", sz, ok)
		}
	}
	b.ResetFixedSize()
	if got, want := b.Frame().Size(), f32.Pt(90, 44); got != want {
		t.Errorf("size after ResetFixedSize = %v, want %v", got, want)
	}
	if _, ok := b.FixedSize(); ok {
		t.Error("fixed size not cleared")
	}
}

func TestFixedSizeGrowsWithContent(t *testing.T) {
	b, _ := newTestButton()
	b.Configure(Config{Image: fixedImage{20, 20}, Title: "OK"})
	b.SetFixedSize(150, 50)
	b.SetTitle(Normal, "OKOKOKOKOK")
	if got, want := b.Frame().Size(), f32.Pt(210, 50); got != want {
		t.Errorf("size = %v, want %v", got, want)
	}
}

func TestSetPosition(t *testing.T) {
	b, _ := newTestButton()
	b.Configure(Config{Image: fixedImage{20, 20}, Title: "OK"})
	tests := []struct {
		x, y, w, h float32
		want       f32.Rectangle
		fixed      bool
	}{
		{10, 20, 0, 0, f32.Rect(10, 20, 100, 64), false},
		{0, 0, 200, 0, f32.Rect(0, 0, 200, 44), false},
		{0, 0, 0, 60, f32.Rect(0, 0, 90, 60), false},
		{5, 5, 150, 50, f32.Rect(5, 5, 155, 55), true},
		{5, 5, 60, 30, f32.Rect(5, 5, 95, 49), true},
	}
	for _, tc := range tests {
		b.SetPosition(tc.x, tc.y, tc.w, tc.h)
		if got := b.Frame(); got != tc.want {
			t.Errorf("SetPosition(%v, %v, %v, %v): frame = %v, want %v", tc.x, tc.y, tc.w, tc.h, got, tc.want)
		}
		if _, ok := b.FixedSize(); ok != tc.fixed {
			t.Errorf("SetPosition(%v, %v, %v, %v): fixed = %v, want %v", tc.x, tc.y, tc.w, tc.h, ok, tc.fixed)
		}
		if got := b.Snapshot().Frame; got != tc.want {
			t.Errorf("presented frame = %v, want %v", got, tc.want)
		}
	}
}

func TestConstrained(t *testing.T) {
	invalidated := 0
	b, _ := newTestButton(WithInvalidate(func() { invalidated++ }))
	b.Configure(Config{Image: fixedImage{20, 20}, Title: "OK"})
	if invalidated != 0 {
		t.Errorf("absolute button invalidated its intrinsic size")
	}
	if _, ok := b.IntrinsicSize(); ok {
		t.Error("absolute button reports an intrinsic size")
	}
	gen := b.IntrinsicGeneration()
	b.SetupConstraints(layout.Anchors{Leading: layout.Pin(10), Top: layout.Pin(20)})
	if b.Regime() != RegimeConstrained {
		t.Fatalf("regime = %v, want Constrained", b.Regime())
	}
	if b.IntrinsicGeneration() == gen || invalidated != 1 {
		t.Errorf("SetupConstraints did not invalidate the intrinsic size")
	}
	if sz, ok := b.IntrinsicSize(); !ok || sz != f32.Pt(90, 44) {
		t.Errorf("IntrinsicSize() = %v, %v, want (90,44), true", sz, ok)
	}
	if got, want := b.Solve(), f32.Rect(10, 20, 100, 64); got != want {
		t.Errorf("Solve() = %v, want %v", got, want)
	}

	b.SetFixedSize(150, 50)
	if invalidated != 2 {
		t.Errorf("SetFixedSize did not invalidate the intrinsic size")
	}
	if got, want := b.Frame(), f32.Rect(10, 20, 100, 64); got != want {
		t.Errorf("frame changed before Solve: %v, want %v", got, want)
	}
	if sz, _ := b.IntrinsicSize(); sz != f32.Pt(150, 50) {
		t.Errorf("IntrinsicSize() = %v, want (150,50)", sz)
	}
	if got, want := b.Solve(), f32.Rect(10, 20, 160, 70); got != want {
		t.Errorf("Solve() = %v, want %v", got, want)
	}

	b.SetTitle(Normal, "OKOK")
	if invalidated != 3 {
		t.Errorf("content change did not invalidate the intrinsic size")
	}

	b.SetupConstraints(layout.Anchors{Leading: layout.Pin(0), Trailing: layout.Pin(300), CenterY: layout.Pin(100)})
	if got, want := b.Solve(), f32.Rect(0, 75, 300, 125); got != want {
		t.Errorf("stretched Solve() = %v, want %v", got, want)
	}
	b.SetupConstraints(layout.Anchors{Leading: layout.Pin(0), Trailing: layout.Pin(50), CenterY: layout.Pin(100)})
	if got, want := b.Solve(), f32.Rect(0, 75, 120, 125); got != want {
		t.Errorf("narrow Solve() = %v, want %v", got, want)
	}

	b.SetPosition(0, 0, 0, 0)
	if b.Regime() != RegimeAbsolute {
		t.Errorf("regime = %v, want Absolute", b.Regime())
	}
	if _, ok := b.IntrinsicSize(); ok {
		t.Error("absolute button reports an intrinsic size")
	}
	if got, want := b.Solve(), f32.Rect(0, 0, 120, 44); got != want {
		t.Errorf("Solve() of absolute button = %v, want %v", got, want)
	}
}

func TestStateResolution(t *testing.T) {
	b, _ := newTestButton()
	b.Configure(Config{Title: "Go", Background: &red})
	b.SetTitle(Selected, "Stop")
	if got := b.Appearance().Title; got != "Go" {
		t.Errorf("title = %q, want %q", got, "Go")
	}

	b.SetState(Selected, false)
	a := b.Appearance()
	if a.Title != "Stop" {
		t.Errorf("selected title = %q, want %q", a.Title, "Stop")
	}
	if want := (color.NRGBA{R: 0xff, A: alphaByte(.9)}); a.Background != want {
		t.Errorf("selected background = %v, want %v", a.Background, want)
	}
	if a.Alpha != .9 {
		t.Errorf("selected alpha = %v, want 0.9", a.Alpha)
	}
	if s := b.Semantics(); s.Value != "selected" {
		t.Errorf("selected value = %q", s.Value)
	}

	b.SetState(Disabled, false)
	a = b.Appearance()
	if a.Title != "Go" {
		t.Errorf("disabled title = %q, want %q", a.Title, "Go")
	}
	if want := (color.NRGBA{R: 0xff, A: 0x80}); a.Background != want {
		t.Errorf("disabled background = %v, want %v", a.Background, want)
	}
	if a.Alpha != .5 {
		t.Errorf("disabled alpha = %v, want 0.5", a.Alpha)
	}
	if s := b.Semantics(); !s.Disabled {
		t.Error("disabled button not reported as disabled")
	}

	b.SetState(Normal, false)
	if a := b.Appearance(); a.Background != red || a.Alpha != 1 {
		t.Errorf("normal appearance = %v %v", a.Background, a.Alpha)
	}
}

func TestCustomDerivation(t *testing.T) {
	b, _ := newTestButton(WithDerivation(Derivation{SelectedAlpha: 1, DisabledAlpha: 0}))
	b.Configure(Config{Title: "Go", TitleColor: &red})
	b.SetState(Disabled, false)
	if a := b.Appearance(); a.TitleColor != (color.NRGBA{R: 0xff}) || a.Alpha != 0 {
		t.Errorf("disabled appearance = %v %v", a.TitleColor, a.Alpha)
	}
}

func TestAlphaFallback(t *testing.T) {
	b, _ := newTestButton()
	b.SetTitle(Normal, "A")
	if a := b.Appearance().Alpha; a != 1 {
		t.Errorf("alpha = %v, want 1", a)
	}
	b.SetAlpha(Selected, .3)
	b.SetState(Selected, false)
	if a := b.Appearance().Alpha; a != .3 {
		t.Errorf("selected alpha = %v, want 0.3", a)
	}
	b.SetState(Normal, false)
	if a := b.Appearance().Alpha; a != 1 {
		t.Errorf("alpha = %v, want 1", a)
	}
}

func TestSetStateNoop(t *testing.T) {
	b, m := newTestButton()
	b.Configure(Config{Title: "OK"})
	calls := m.calls
	b.SetState(Normal, true)
	if m.calls != calls || b.Animating() {
		t.Error("setting the current state re-applied the appearance")
	}
}

func TestUnset(t *testing.T) {
	b, _ := newTestButton()
	b.Configure(Config{Title: "Go"})
	b.SetTitle(Selected, "Stop")
	b.SetState(Selected, false)
	b.Unset(Selected, FieldTitle)
	if got := b.Appearance().Title; got != "Go" {
		t.Errorf("title = %q, want %q", got, "Go")
	}
	if c, ok := b.Config(Selected); !ok || c.Title != nil {
		t.Errorf("Config(Selected) = %+v, %v", c, ok)
	}
	if _, ok := b.Config(Disabled); !ok {
		t.Error("Configure did not derive the disabled state")
	}
}

func TestConfigureEmptyTitle(t *testing.T) {
	b, _ := newTestButton()
	b.Configure(Config{Title: "OK"})
	b.Configure(Config{})
	if got := b.Appearance().Title; got != "OK" {
		t.Errorf("title = %q, want the previous %q", got, "OK")
	}
	b.SetTitle(Normal, "")
	if got := b.Appearance().Title; got != "" {
		t.Errorf("title = %q, want it cleared", got)
	}
	if got, want := b.MinimumSize(), f32.Pt(44, 44); got != want {
		t.Errorf("MinimumSize() = %v, want %v", got, want)
	}
}

func TestPriorValueRetained(t *testing.T) {
	b, _ := newTestButton()
	b.SetTitle(Selected, "Stop")
	b.SetState(Selected, false)
	b.SetState(Normal, false)
	if got := b.Appearance().Title; got != "Stop" {
		t.Errorf("title = %q, want the prior %q", got, "Stop")
	}
}

func TestAnimatedStateChange(t *testing.T) {
	s := new(anim.Scheduler)
	b, _ := newTestButton(WithScheduler(s))
	b.Configure(Config{Title: "OK", Background: &red})
	b.SetBackgroundColor(Selected, blue)
	b.SetState(Selected, true)
	if got := b.Appearance().Background; got != blue {
		t.Errorf("model background = %v, want %v", got, blue)
	}
	if got := b.Snapshot().Background; got != red {
		t.Errorf("presented background = %v, want %v", got, red)
	}
	t0 := time.Unix(100, 0)
	if !s.Frame(t0) {
		t.Fatal("no animation scheduled")
	}
	s.Frame(t0.Add(AppearanceDuration / 2))
	if bg := b.Snapshot().Background; bg.R == 0 || bg.B == 0 {
		t.Errorf("background %v not between %v and %v", bg, red, blue)
	}
	if s.Frame(t0.Add(AppearanceDuration)) {
		t.Error("animation still running after its duration")
	}
	snap := b.Snapshot()
	if snap.Background != blue || snap.Alpha != .9 {
		t.Errorf("presented = %v %v, want %v 0.9", snap.Background, snap.Alpha, blue)
	}
}

func TestAnimationSupersede(t *testing.T) {
	s := new(anim.Scheduler)
	b, _ := newTestButton(WithScheduler(s))
	b.Configure(Config{Title: "OK", Background: &red})
	b.SetBackgroundColor(Selected, blue)
	t0 := time.Unix(100, 0)
	b.SetState(Selected, true)
	s.Frame(t0)
	s.Frame(t0.Add(AppearanceDuration / 2))
	mid := b.Snapshot().Background
	b.SetState(Normal, true)
	if got := b.Snapshot().Background; got != mid {
		t.Errorf("superseding animation jumped from %v to %v", mid, got)
	}
	s.Frame(t0.Add(AppearanceDuration / 2))
	s.Frame(t0.Add(AppearanceDuration * 3 / 2))
	if got := b.Snapshot().Background; got != red {
		t.Errorf("presented background = %v, want %v", got, red)
	}
	if b.Animating() {
		t.Error("animation still running")
	}
}

func TestDecorationClearsBackground(t *testing.T) {
	b, _ := newTestButton()
	b.Configure(Config{Title: "OK", Background: &red, Decoration: "gradient"})
	if got := b.Snapshot().Background; got != (color.NRGBA{}) {
		t.Errorf("presented background = %v, want transparent", got)
	}
	if got := b.Appearance().Background; got != red {
		t.Errorf("model background = %v, want %v", got, red)
	}
	if got := b.Snapshot().Decoration; got != "gradient" {
		t.Errorf("decoration = %v", got)
	}
}
