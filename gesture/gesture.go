// SPDX-License-Identifier: Unlicense OR MIT

/*
Package gesture implements the click gesture of a button.

Click accepts low level pointer Events in the button's coordinate
system and detects presses and completed clicks.
*/
package gesture

import (
	"github.com/flexui/flexbutton/f32"
	"github.com/flexui/flexbutton/io/pointer"
)

// Click detects click gestures in the form
// of ClickEvents.
type Click struct {
	// state tracks the gesture state.
	state ClickState
	pid   pointer.ID
}

type ClickState uint8

// ClickEvent represent a click action, either a
// KindPress for the beginning of a click, a KindClick
// for a completed click or a KindCancel for an abandoned one.
type ClickEvent struct {
	Kind     ClickKind
	Position f32.Point
	Source   pointer.Source
}

type ClickKind uint8

const (
	// StateNormal is the default click state.
	StateNormal ClickState = iota
	// StateHovered is reported when a pointer
	// is hovering over the handler.
	StateHovered
	// StatePressed is then a pointer is pressed.
	StatePressed
)

const (
	// KindPress is reported for the first pointer
	// press.
	KindPress ClickKind = iota
	// KindClick is reported when a click action
	// is complete.
	KindClick
	// KindCancel is reported when the gesture is
	// cancelled.
	KindCancel
)

// State reports the click state.
func (c *Click) State() ClickState {
	return c.state
}

// Pressed returns whether a pointer is pressing.
func (c *Click) Pressed() bool {
	return c.state == StatePressed
}

// Update processes a pointer event against the handler's bounds and
// reports the resulting click event, if any. A press starts only inside
// bounds and a click completes only when the pressing pointer is
// released inside bounds.
func (c *Click) Update(bounds f32.Rectangle, e pointer.Event) (ClickEvent, bool) {
	hit := e.Position.In(bounds)
	ev := ClickEvent{Position: e.Position, Source: e.Source}
	switch e.Kind {
	case pointer.Release:
		if c.state != StatePressed || e.PointerID != c.pid {
			break
		}
		c.state = StateNormal
		if hit {
			if e.Source == pointer.Mouse {
				c.state = StateHovered
			}
			ev.Kind = KindClick
		} else {
			ev.Kind = KindCancel
		}
		return ev, true
	case pointer.Cancel:
		wasPressed := c.state == StatePressed
		c.state = StateNormal
		if wasPressed {
			ev.Kind = KindCancel
			return ev, true
		}
	case pointer.Press:
		if c.state == StatePressed || !hit {
			break
		}
		if e.Source == pointer.Mouse && !e.Buttons.Contain(pointer.ButtonPrimary) {
			break
		}
		c.state = StatePressed
		c.pid = e.PointerID
		ev.Kind = KindPress
		return ev, true
	case pointer.Move:
		if c.state == StatePressed {
			break
		}
		if hit {
			c.state = StateHovered
		} else {
			c.state = StateNormal
		}
	}
	return ClickEvent{}, false
}

func (ct ClickKind) String() string {
	switch ct {
	case KindPress:
		return "KindPress"
	case KindClick:
		return "KindClick"
	case KindCancel:
		return "KindCancel"
	default:
		panic("invalid ClickKind")
	}
}

func (cs ClickState) String() string {
	switch cs {
	case StateNormal:
		return "StateNormal"
	case StateHovered:
		return "StateHovered"
	case StatePressed:
		return "StatePressed"
	default:
		panic("invalid ClickState")
	}
}
