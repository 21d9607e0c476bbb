// SPDX-License-Identifier: Unlicense OR MIT

package layout_test

import (
	"fmt"

	"github.com/flexui/flexbutton/f32"
	"github.com/flexui/flexbutton/layout"
)

func ExampleFlex() {
	flex := layout.Flex{Axis: layout.Horizontal, Spacing: 8}

	// A 20x20 image followed by a 30x18 title.
	frames, size := flex.Layout(f32.Pt(20, 20), f32.Pt(30, 18))

	fmt.Println(frames[0], frames[1])
	fmt.Println(size)

	// Output:
	// (0,0)-(20,20) (28,1)-(58,19)
	// (58,20)
}

func ExampleInset_Place() {
	in := layout.Inset{Top: 12, Right: 16, Bottom: 12, Left: 16}
	content := f32.Pt(58, 20)

	fmt.Println(in.Place(layout.Center, f32.Pt(90, 44), content))
	fmt.Println(in.Place(layout.E, f32.Pt(200, 60), content))
	fmt.Println(in.Place(layout.NW, f32.Pt(200, 60), content))

	// Output:
	// (16,12)
	// (126,20)
	// (16,12)
}

func ExampleAnchors_Resolve() {
	a := layout.Anchors{
		Leading: layout.Pin(0).Inset(20),
		CenterY: layout.Pin(300),
	}
	fmt.Println(a.Resolve(f32.Pt(90, 44), f32.Pt(90, 44)))

	// Output:
	// (20,278)-(110,322)
}
