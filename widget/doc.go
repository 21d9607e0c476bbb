// SPDX-License-Identifier: Unlicense OR MIT

/*
Package widget implements Button, a self-sizing multi-state button.

A Button owns an image and a title arranged along an axis, a set of
per-state appearance overrides, and the logic that derives its minimum
size from its content. It renders nothing itself: the host reads the
arranged frames and presented values through Snapshot, feeds pointer
events through Event and drives animations by calling Frame on the
Scheduler the button was created with.

Sizing follows one of two regimes. In the absolute regime the button
owns its frame and SetPosition or SetFixedSize write it directly. In
the constrained regime the frame is produced by resolving Anchors
against the button's intrinsic size, which is re-derived whenever the
content changes.

A Button is not safe for concurrent use.
*/
package widget
