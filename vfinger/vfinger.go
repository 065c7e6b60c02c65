// Package vfinger implements the virtual-finger engine of spec.md §4.3: a
// small stateful simulator that synthesizes a second touch pointer from a
// single mouse plus Ctrl/Shift modifier combination, letting a two-finger
// gesture (pinch, rotate, tilt) be driven with one mouse. Grounded on the
// teacher's internal/input/touch.go slot-allocation discipline (one
// mutex-free piece of state, strict alloc/free symmetry), adapted from
// multi-touch slot bookkeeping to a single synthesized pointer.
package vfinger

import (
	"github.com/yourname/scrcpy-go/control"
	"github.com/yourname/scrcpy-go/geom"
)

// PointerID selects which fixed ID the engine uses, per spec.md §3:
// "VIRTUAL_MOUSE if the binding layout has any non-left CLICK, otherwise
// VIRTUAL_FINGER". All touchmap finger IDs must stay disjoint from both.
const (
	PointerIDVirtualFinger uint64 = 1
	PointerIDVirtualMouse  uint64 = 2
)

// Engine holds the per-InputManager virtual-finger state of spec.md §3.
type Engine struct {
	pointerID uint64
	down      bool
	invertX   bool
	invertY   bool
}

// New creates an Engine using VirtualMouse's ID when hasSecondaryClick is
// true (some non-left mouse button is bound to CLICK), else VirtualFinger's.
func New(hasSecondaryClick bool) *Engine {
	id := PointerIDVirtualFinger
	if hasSecondaryClick {
		id = PointerIDVirtualMouse
	}
	return &Engine{pointerID: id}
}

// Down reports whether a virtual finger is currently pressed.
func (e *Engine) Down() bool { return e.down }

// Press activates the engine on LEFT_DOWN with exactly one of ctrl/shift
// held. It is the caller's responsibility (input.Manager) to check
// !relativeMode and !e.Down() before calling, per spec.md §4.3's gating
// ("Activated on LEFT_DOWN while exactly one of Ctrl or Shift is held and
// vfinger_down == false" / "Disabled entirely when mouse_proc.relative_mode").
func (e *Engine) Press(ctrl, shift bool, frame geom.Size, at geom.Point) control.TouchEventMessage {
	e.invertX = ctrl || shift
	e.invertY = ctrl
	e.down = true
	return e.touchMessage(control.ActionDown, frame, at)
}

// Move emits a synthetic MOVE at the reflected position. No-op (zero
// Message, caller must check Down()) when no virtual finger is pressed.
func (e *Engine) Move(frame geom.Size, at geom.Point) control.TouchEventMessage {
	if !e.down {
		return control.TouchEventMessage{}
	}
	return e.touchMessage(control.ActionMove, frame, at)
}

// Release emits a synthetic UP at the reflected position using whatever
// invert flags were set at Press time, regardless of modifier state at
// release (spec.md §4.3: "regardless of modifier state at release").
func (e *Engine) Release(frame geom.Size, at geom.Point) control.TouchEventMessage {
	e.down = false
	return e.touchMessage(control.ActionUp, frame, at)
}

func (e *Engine) touchMessage(action control.Action, frame geom.Size, at geom.Point) control.TouchEventMessage {
	p := geom.Reflect(at, frame, e.invertX, e.invertY)
	pressure := 1.0
	if action == control.ActionUp {
		pressure = 0
	}
	return control.TouchEventMessage{
		Action:     action,
		ScreenSize: frame,
		Point:      p,
		PointerID:  e.pointerID,
		Pressure:   pressure,
	}
}
