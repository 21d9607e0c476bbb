// SPDX-License-Identifier: Unlicense OR MIT

package widget

// Semantics describes a button to assistive technology.
type Semantics struct {
	Label string
	Hint  string
	// Value is "selected" for selected buttons.
	Value    string
	Disabled bool
}

const (
	imageButtonLabel = "image button"
	buttonLabel      = "button"
	selectedValue    = "selected"
)

// Semantics returns the accessibility description of the button.
func (b *Button) Semantics() Semantics {
	return b.semantics
}

func (b *Button) updateSemantics() {
	title, hasImage := b.look.Title, b.look.Image != nil
	var s Semantics
	switch {
	case title != "" && hasImage:
		s.Label = title
		s.Hint = imageButtonLabel
	case title != "":
		s.Label = title
	case hasImage:
		s.Label = imageButtonLabel
	default:
		s.Label = buttonLabel
	}
	switch b.state {
	case Selected:
		s.Value = selectedValue
	case Disabled:
		s.Disabled = true
	}
	b.semantics = s
}
