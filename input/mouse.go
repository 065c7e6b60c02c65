package input

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/yourname/scrcpy-go/config"
	"github.com/yourname/scrcpy-go/control"
	"github.com/yourname/scrcpy-go/geom"
	"github.com/yourname/scrcpy-go/keyproc"
	"github.com/yourname/scrcpy-go/logx"
	"github.com/yourname/scrcpy-go/mouseproc"
)

func (m *Manager) handleMouseMotion(ev Event) {
	if m.paused() {
		return
	}
	if m.vfinger.Down() && !m.relativeMode() {
		frame := m.screen.FrameSize()
		if point, ok := m.screen.WindowToFrame(geom.Point{X: ev.X, Y: ev.Y}); ok {
			m.push(m.vfinger.Move(frame, point))
		}
		return
	}
	if m.mouseProc == nil {
		return
	}
	if handler, ok := m.mouseProc.(mouseproc.MotionHandler); ok {
		handler.ProcessMouseMotion(mouseproc.MotionEvent{
			X: ev.X, Y: ev.Y, XRel: ev.XRel, YRel: ev.YRel, State: ev.MouseState,
		})
	}
}

func (m *Manager) handleMouseWheel(ev Event) {
	if m.mouseProc == nil || m.paused() {
		return
	}
	if handler, ok := m.mouseProc.(mouseproc.ScrollHandler); ok {
		handler.ProcessMouseScroll(mouseproc.ScrollEvent{PreciseX: ev.PreciseX, PreciseY: ev.PreciseY})
	}
}

func (m *Manager) handleTouchFinger(ev Event) {
	if m.mouseProc == nil || m.paused() {
		return
	}
	if handler, ok := m.mouseProc.(mouseproc.TouchHandler); ok {
		handler.ProcessTouch(mouseproc.TouchEvent{FingerID: ev.FingerID, X: ev.TouchX, Y: ev.TouchY, Pressure: ev.Pressure})
	}
}

func (m *Manager) handleDropFile(ev Event) {
	if m.controller == nil || m.filePusher == nil {
		return
	}
	if err := m.filePusher.PushFile(ev.Path); err != nil {
		logx.Error("input: push dropped file %s: %v", ev.Path, err)
	}
}

// handleMouseButton implements the priority-ordered dispatch of spec.md §4.6.
func (m *Manager) handleMouseButton(ev Event) {
	if ev.Which == TouchMouseID {
		// Ignore SDL's synthetic mouse events generated from touch input.
		return
	}

	if m.controller != nil && !m.paused() {
		if m.dispatchMouseBinding(ev) {
			return
		}
	}

	if ev.ButtonDown && ev.Button == sdl.BUTTON_LEFT && ev.Clicks == 2 &&
		m.screen.VideoPlaying() && !m.relativeMode() {
		if _, ok := m.screen.WindowToFrame(geom.Point{X: ev.X, Y: ev.Y}); !ok {
			m.screen.ResizeToFit()
			return
		}
	}

	if m.mouseProc != nil && !m.paused() {
		if handler, ok := m.mouseProc.(mouseproc.ClickHandler); ok {
			handler.ProcessMouseClick(mouseproc.ClickEvent{
				X: ev.X, Y: ev.Y, Button: ev.Button, Down: ev.ButtonDown, Clicks: ev.Clicks,
			})
		}
	}

	m.runVirtualFinger(ev)
}

// dispatchMouseBinding resolves a non-left mouse button's configured
// binding and, for every binding except CLICK, performs the remote action
// and reports the event as fully handled. CLICK returns false so the
// caller continues through the ordinary click/vfinger paths (left is
// always CLICK and never reaches a binding lookup at all). With
// ForwardAllClicks set, no binding applies and it always returns false.
func (m *Manager) dispatchMouseBinding(ev Event) bool {
	if m.cfg.ForwardAllClicks {
		return false
	}
	btn, ok := mapSDLButton(ev.Button)
	if !ok {
		return false
	}
	switch m.cfg.Binding(btn) {
	case config.BindingDisabled:
		return true
	case config.BindingClick:
		return false
	case config.BindingBack:
		m.push(control.BackOrScreenOnMessage{Down: ev.ButtonDown})
		return true
	case config.BindingHome:
		if m.keyProc != nil {
			m.keyProc.ProcessKey(keyproc.KeyEvent{Keycode: androidKeycodeHome, Down: ev.ButtonDown})
		}
		return true
	case config.BindingAppSwitch:
		if m.keyProc != nil {
			m.keyProc.ProcessKey(keyproc.KeyEvent{Keycode: androidKeycodeAppSwitch, Down: ev.ButtonDown})
		}
		return true
	case config.BindingExpandNotificationPanel:
		if ev.ButtonDown {
			m.push(control.ExpandNotificationPanelMessage{})
		}
		return true
	default:
		return false
	}
}

func mapSDLButton(button uint8) (config.MouseButton, bool) {
	switch button {
	case sdl.BUTTON_RIGHT:
		return config.ButtonRight, true
	case sdl.BUTTON_MIDDLE:
		return config.ButtonMiddle, true
	case sdl.BUTTON_X1:
		return config.ButtonX1, true
	case sdl.BUTTON_X2:
		return config.ButtonX2, true
	default:
		return 0, false
	}
}

// runVirtualFinger implements §4.3's activation/release edges as the final
// step of the mouse-button priority order.
func (m *Manager) runVirtualFinger(ev Event) {
	if m.relativeMode() || ev.Button != sdl.BUTTON_LEFT {
		return
	}
	frame := m.screen.FrameSize()

	if ev.ButtonDown {
		ctrl, shift := ctrlHeld(ev.Mod), shiftHeld(ev.Mod)
		if m.vfinger.Down() || ctrl == shift {
			// Already active, or neither/both of Ctrl+Shift held.
			return
		}
		point, ok := m.screen.WindowToFrame(geom.Point{X: ev.X, Y: ev.Y})
		if !ok {
			return
		}
		m.push(m.vfinger.Press(ctrl, shift, frame, point))
		return
	}

	if m.vfinger.Down() {
		point, _ := m.screen.WindowToFrame(geom.Point{X: ev.X, Y: ev.Y})
		m.push(m.vfinger.Release(frame, point))
	}
}
