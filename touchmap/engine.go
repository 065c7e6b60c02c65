package touchmap

import (
	"github.com/yourname/scrcpy-go/control"
	"github.com/yourname/scrcpy-go/geom"
)

// TouchEvent is a touch action the gamepad engine wants emitted for one of
// its controls. It deliberately omits screen size (control.TouchEventMessage
// needs it): the touchmap package has no business knowing the device's
// frame size, so input.Manager fills it in from the screen collaborator
// before pushing to the outbound Queue.
type TouchEvent struct {
	Action   control.Action
	Point    geom.Point
	FingerID uint64
}

// triggerPressed implements spec.md §4.5's "state = clamp(value * 5 /
// MAX_SINT16)" threshold: nonzero once the trigger is pressed >= 20%.
func triggerPressed(value int16) bool {
	v := int64(value)
	if v < 0 {
		v = 0
	}
	state := v * 5 / sint16Max
	if state > 5 {
		state = 5
	}
	return state != 0
}

// HandleAxis dispatches one ControllerAxis event per spec.md §4.5.
func (m *Map) HandleAxis(axis uint8, value int16) []TouchEvent {
	switch axis {
	case AxisLeftX:
		m.walkAxis[0] = value
		return m.updateWalk()
	case AxisLeftY:
		m.walkAxis[1] = value
		return m.updateWalk()
	case AxisRightX:
		m.rightAxis[0] = value
		return m.updateSkillAim()
	case AxisRightY:
		m.rightAxis[1] = value
		return m.updateSkillAim()
	case AxisTriggerLeft, AxisTriggerRight:
		return m.HandleButton(TriggerButtonCode(axis), triggerPressed(value))
	default:
		return nil
	}
}

func axisComponent(center int32, radius int32, value int16) int32 {
	return center + int32(value)*radius/sint16Max
}

// updateWalk implements the walk-control algorithm of spec.md §4.5.
func (m *Map) updateWalk() []TouchEvent {
	pos := geom.Point{
		X: axisComponent(m.Walk.Center.X, m.Walk.Radius, m.walkAxis[0]),
		Y: axisComponent(m.Walk.Center.Y, m.Walk.Radius, m.walkAxis[1]),
	}
	m.Walk.CurrentPos = pos

	d2 := geom.DistSquared(pos, m.Walk.Center)
	var events []TouchEvent
	if d2 < WalkControlDeadzone {
		if m.Walk.TouchDown {
			m.Walk.TouchDown = false
			events = append(events, TouchEvent{Action: control.ActionUp, Point: m.Walk.Center, FingerID: m.Walk.FingerID})
		}
		return events
	}
	if !m.Walk.TouchDown {
		m.Walk.TouchDown = true
		events = append(events, TouchEvent{Action: control.ActionDown, Point: m.Walk.Center, FingerID: m.Walk.FingerID})
	}
	events = append(events, TouchEvent{Action: control.ActionMove, Point: pos, FingerID: m.Walk.FingerID})
	return events
}

// updateSkillAim recomputes aim for every held-down skill button and emits
// a MOVE, per spec.md §4.5 "Skill aim".
func (m *Map) updateSkillAim() []TouchEvent {
	var events []TouchEvent
	for i := range m.Buttons {
		b := &m.Buttons[i]
		if !b.IsSkill || !b.TouchDown {
			continue
		}
		b.CurrentPos = geom.Point{
			X: axisComponent(b.Center.X, b.Radius, m.rightAxis[0]),
			Y: axisComponent(b.Center.Y, b.Radius, m.rightAxis[1]),
		}
		events = append(events, TouchEvent{Action: control.ActionMove, Point: b.CurrentPos, FingerID: b.FingerID})
	}
	return events
}

// HandleButton dispatches one ControllerButton event (or a synthesized
// trigger-as-button event) per spec.md §4.5 "Button dispatch".
func (m *Map) HandleButton(code uint8, pressed bool) []TouchEvent {
	idx := m.findButton(code)
	if idx < 0 {
		return nil
	}
	b := &m.Buttons[idx]
	switch {
	case pressed && !b.TouchDown:
		b.TouchDown = true
		return []TouchEvent{{Action: control.ActionDown, Point: b.Center, FingerID: b.FingerID}}
	case !pressed && b.TouchDown:
		b.TouchDown = false
		return []TouchEvent{{Action: control.ActionUp, Point: b.Center, FingerID: b.FingerID}}
	default:
		return nil
	}
}
