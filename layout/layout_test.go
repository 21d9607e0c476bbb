// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"testing"

	"github.com/flexui/flexbutton/f32"
)

func TestPlaceDirections(t *testing.T) {
	in := Inset{Top: 10, Right: 10, Bottom: 10, Left: 10}
	bounds := f32.Pt(100, 60)
	sz := f32.Pt(40, 20)
	tests := []struct {
		d    Direction
		want f32.Point
	}{
		{Center, f32.Pt(30, 20)},
		{W, f32.Pt(10, 20)},
		{E, f32.Pt(50, 20)},
		{N, f32.Pt(30, 10)},
		{S, f32.Pt(30, 30)},
		{NW, f32.Pt(10, 10)},
		{SW, f32.Pt(10, 30)},
		{NE, f32.Pt(50, 10)},
		{SE, f32.Pt(50, 30)},
	}
	for _, test := range tests {
		if got := in.Place(test.d, bounds, sz); got != test.want {
			t.Errorf("Place(%v) = %v, want %v", test.d, got, test.want)
		}
	}
}

func TestPlaceContainment(t *testing.T) {
	in := Inset{Top: 12, Right: 10, Bottom: 12, Left: 50}
	bounds := f32.Pt(120, 44)
	sz := f32.Pt(40, 20)
	// Centering puts the box at x=40, left of the leading inset.
	got := in.Place(Center, bounds, sz)
	if got.X != in.Left {
		t.Errorf("centered box at %v, want x=%v", got, in.Left)
	}
	// An oversized box keeps the leading and top insets.
	in.Left = 30
	got = in.Place(SE, f32.Pt(50, 30), sz)
	if got != f32.Pt(in.Left, in.Top) {
		t.Errorf("oversized box placed at %v, want %v", got, f32.Pt(in.Left, in.Top))
	}
}

func TestFlexEmptyAndSingle(t *testing.T) {
	frames, size := Flex{Axis: Vertical, Spacing: 8}.Layout()
	if frames != nil || size != (f32.Point{}) {
		t.Errorf("empty flex = %v %v", frames, size)
	}
	frames, size = Flex{Axis: Vertical, Spacing: 8}.Layout(f32.Pt(20, 20))
	if size != f32.Pt(20, 20) {
		t.Errorf("single child flex size = %v, want (20,20)", size)
	}
	if frames[0] != f32.Rect(0, 0, 20, 20) {
		t.Errorf("single child frame = %v", frames[0])
	}
}

func TestFlexVerticalCentersCross(t *testing.T) {
	frames, size := Flex{Axis: Vertical, Spacing: 4}.Layout(f32.Pt(30, 18), f32.Pt(20, 20))
	if size != f32.Pt(30, 42) {
		t.Errorf("size = %v, want (30,42)", size)
	}
	if frames[1] != f32.Rect(5, 22, 25, 42) {
		t.Errorf("second frame = %v, want (5,22)-(25,42)", frames[1])
	}
}

func TestAnchorsResolve(t *testing.T) {
	pref := f32.Pt(90, 44)
	tests := []struct {
		name string
		a    Anchors
		want f32.Rectangle
	}{
		{"unanchored", Anchors{}, f32.Rect(0, 0, 90, 44)},
		{"top leading", Anchors{Top: Pin(10), Leading: Pin(5).Inset(3)}, f32.Rect(8, 10, 98, 54)},
		{"bottom trailing", Anchors{Bottom: Pin(100).Inset(10), Trailing: Pin(200)}, f32.Rect(110, 46, 200, 90)},
		{"stretch", Anchors{Leading: Pin(0), Trailing: Pin(300)}, f32.Rect(0, 0, 300, 44)},
		{"stretch below min", Anchors{Leading: Pin(0), Trailing: Pin(50)}, f32.Rect(0, 0, 90, 44)},
		{"explicit width", Anchors{Width: 150}, f32.Rect(0, 0, 150, 44)},
		{"explicit below min", Anchors{Width: 60, Height: 30}, f32.Rect(0, 0, 90, 44)},
		{"centered", Anchors{CenterX: Pin(100), CenterY: Pin(100)}, f32.Rect(55, 78, 145, 122)},
	}
	for _, test := range tests {
		if got := test.a.Resolve(pref, pref); got != test.want {
			t.Errorf("%s: Resolve = %v, want %v", test.name, got, test.want)
		}
	}
}
