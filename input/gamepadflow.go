package input

import (
	"github.com/yourname/scrcpy-go/control"
	"github.com/yourname/scrcpy-go/logx"
	"github.com/yourname/scrcpy-go/metrics"
)

// handleControllerAxis implements spec.md §4.5: either forwards the axis
// raw (forward_game_controllers == true) or feeds the gamepad touchmap
// engine and turns its emitted virtual-touch events into outbound messages.
func (m *Manager) handleControllerAxis(ev Event) {
	if m.controller == nil {
		return
	}
	if m.cfg.ForwardGameControllers {
		m.push(control.ControllerAxisMessage{Which: ev.ControllerWhich, Axis: ev.Axis, Value: ev.AxisValue})
		return
	}
	if m.touchmap == nil {
		return
	}
	for _, te := range m.touchmap.HandleAxis(ev.Axis, ev.AxisValue) {
		m.pushTouch(te)
	}
}

func (m *Manager) handleControllerButton(ev Event) {
	if m.controller == nil {
		return
	}
	if m.cfg.ForwardGameControllers {
		m.push(control.ControllerButtonMessage{Which: ev.ControllerWhich, Button: ev.ControllerButton, Down: ev.ControllerButtonDown})
		return
	}
	if m.touchmap == nil {
		return
	}
	for _, te := range m.touchmap.HandleButton(ev.ControllerButton, ev.ControllerButtonDown) {
		m.pushTouch(te)
	}
}

func (m *Manager) handleControllerDeviceAdded(ev Event) {
	if m.controller == nil {
		return
	}
	h, err := m.gamepads.Add(ev.ControllerDeviceIndex)
	if err != nil {
		logx.Error("input: open controller at device index %d: %v", ev.ControllerDeviceIndex, err)
		return
	}
	metrics.ControllersOpen.Add(1)
	m.push(control.ControllerDeviceMessage{Which: h.InstanceID(), Added: true})
}

func (m *Manager) handleControllerDeviceRemoved(ev Event) {
	if m.controller == nil {
		return
	}
	if !m.gamepads.Remove(ev.ControllerWhich) {
		return
	}
	metrics.ControllersOpen.Add(-1)
	m.push(control.ControllerDeviceMessage{Which: ev.ControllerWhich, Added: false})
}
