// SPDX-License-Identifier: Unlicense OR MIT

package gofont

import (
	"testing"

	"github.com/flexui/flexbutton/text"
)

func TestCollection(t *testing.T) {
	c := Collection()
	if len(c) != len(sources) {
		t.Fatalf("got %d faces, want %d", len(c), len(sources))
	}
	for _, ff := range c {
		if ff.Face == nil {
			t.Errorf("%+v: nil face", ff.Font)
		}
		if ff.Font.Typeface != Typeface {
			t.Errorf("%+v: typeface %q, want %q", ff.Font, ff.Font.Typeface, Typeface)
		}
	}
	if r := Regular(); len(r) != 1 || r[0].Font != (text.Font{Typeface: Typeface}) {
		t.Errorf("Regular() = %+v", r)
	}
}
