package input

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/yourname/scrcpy-go/control"
	"github.com/yourname/scrcpy-go/geom"
	"github.com/yourname/scrcpy-go/keyproc"
	"github.com/yourname/scrcpy-go/logx"
	"github.com/yourname/scrcpy-go/metrics"
)

// copy_key values carried by GET_CLIPBOARD, distinguishing the "c" and "x"
// shortcuts (spec.md §6: GET_CLIPBOARD{copy_key}).
const (
	copyKeyCopy uint8 = iota
	copyKeyCut
)

func (m *Manager) handleTextInput(ev Event) {
	if m.keyProc == nil || m.paused() {
		return
	}
	if sdlModMask(ev.Mod)&m.cfg.ShortcutMods != 0 {
		// Shortcut modifier held: no text input forwarded (spec.md §3 invariant).
		return
	}
	injector, ok := m.keyProc.(keyproc.TextInjector)
	if !ok {
		return
	}
	injector.ProcessText(ev.Text)
}

func (m *Manager) handleKeyDown(ev Event) {
	if !ev.HostRepeat {
		if ev.Keycode == m.lastKeycode && ev.Mod == m.lastMod {
			m.keyRepeatCount++
		} else {
			m.keyRepeatCount = 0
			m.lastKeycode = ev.Keycode
			m.lastMod = ev.Mod
		}
	}

	if m.modArmed(ev.Keycode, ev.Mod) {
		m.dispatchShortcut(ev, true)
		return
	}

	// Non-shortcut Ctrl+V clipboard-autosync path (spec.md §4.2): reachable
	// only when Ctrl is held but not configured as a shortcut modifier, so
	// the key never armed the shortcut classification above.
	if !ev.HostRepeat && ctrlHeld(ev.Mod) && !shiftHeld(ev.Mod) && ev.Keycode == int32(sdl.K_v) && m.cfg.ClipboardAutosync {
		if m.cfg.LegacyPaste {
			m.injectPasteAsText()
		} else {
			m.syncClipboardAndAwaitAck()
		}
		return
	}

	if m.keyProc != nil {
		m.keyProc.ProcessKey(keyproc.KeyEvent{Keycode: ev.Keycode, Mod: ev.Mod, Down: true, Repeat: m.keyRepeatCount})
	}
}

func (m *Manager) handleKeyUp(ev Event) {
	if m.modArmed(ev.Keycode, ev.Mod) {
		m.dispatchShortcut(ev, false)
		return
	}
	if m.keyProc != nil {
		m.keyProc.ProcessKey(keyproc.KeyEvent{Keycode: ev.Keycode, Mod: ev.Mod, Down: false})
	}
}

// dispatchShortcut implements the shortcut table of spec.md §4.2. Per the
// invariant "a shortcut classification path is taken ⇒ never forwarded to
// the key processor", every call site swallows the event unconditionally —
// including keys outside the table (spec.md §7 "Unknown shortcut key:
// no-op, not forwarded").
func (m *Manager) dispatchShortcut(ev Event, isDown bool) {
	shift := shiftHeld(ev.Mod)

	switch sdl.Keycode(ev.Keycode) {
	case sdl.K_h:
		m.shortcutAndroidKey(ev, isDown, androidKeycodeHome)
	case sdl.K_b, sdl.K_BACKSPACE:
		m.shortcutAndroidKey(ev, isDown, androidKeycodeBack)
	case sdl.K_s:
		m.shortcutAndroidKey(ev, isDown, androidKeycodeAppSwitch)
	case sdl.K_m:
		m.shortcutAndroidKey(ev, isDown, androidKeycodeMenu)
	case sdl.K_p:
		m.shortcutAndroidKey(ev, isDown, androidKeycodePower)

	case sdl.K_o:
		if !isDown || ev.HostRepeat || m.paused() || m.controller == nil {
			return
		}
		mode := control.ScreenPowerModeOff
		if shift {
			mode = control.ScreenPowerModeNormal
		}
		if m.push(control.SetScreenPowerModeMessage{Mode: mode}) {
			metrics.ShortcutsFired.Add(1)
		}

	case sdl.K_z:
		if !isDown || ev.HostRepeat || !m.screen.VideoPlaying() {
			return
		}
		m.screen.SetPaused(!m.screen.Paused(), !shift)
		metrics.ShortcutsFired.Add(1)

	case sdl.K_DOWN:
		if shift {
			if isDown && m.screen.VideoPlaying() {
				m.screen.SetOrientation(geom.OrientFlip180)
				metrics.ShortcutsFired.Add(1)
			}
			return
		}
		m.shortcutVolumeKey(isDown, androidKeycodeVolumeDown)

	case sdl.K_UP:
		if shift {
			if isDown && m.screen.VideoPlaying() {
				m.screen.SetOrientation(geom.OrientFlip180)
				metrics.ShortcutsFired.Add(1)
			}
			return
		}
		m.shortcutVolumeKey(isDown, androidKeycodeVolumeUp)

	case sdl.K_LEFT:
		if !isDown || ev.HostRepeat || !m.screen.VideoPlaying() {
			return
		}
		if shift {
			m.screen.SetOrientation(geom.OrientFlip0)
		} else {
			m.screen.Rotate(270)
		}
		metrics.ShortcutsFired.Add(1)

	case sdl.K_RIGHT:
		if !isDown || ev.HostRepeat || !m.screen.VideoPlaying() {
			return
		}
		if shift {
			m.screen.SetOrientation(geom.OrientFlip0)
		} else {
			m.screen.Rotate(90)
		}
		metrics.ShortcutsFired.Add(1)

	case sdl.K_c:
		if !isDown || ev.HostRepeat || m.paused() || m.keyProc == nil || m.controller == nil {
			return
		}
		if m.push(control.GetClipboardMessage{CopyKey: copyKeyCopy}) {
			metrics.ShortcutsFired.Add(1)
		}

	case sdl.K_x:
		if !isDown || ev.HostRepeat || m.paused() || m.keyProc == nil || m.controller == nil {
			return
		}
		if m.push(control.GetClipboardMessage{CopyKey: copyKeyCut}) {
			metrics.ShortcutsFired.Add(1)
		}

	case sdl.K_v:
		if !isDown || ev.HostRepeat || m.paused() || m.keyProc == nil || m.controller == nil {
			return
		}
		if shift {
			m.injectPasteAsText()
		} else {
			m.syncClipboardAndAwaitAck()
		}
		metrics.ShortcutsFired.Add(1)

	case sdl.K_f:
		if !isDown || ev.HostRepeat || !m.screen.VideoPlaying() {
			return
		}
		m.screen.ToggleFullscreen()
		metrics.ShortcutsFired.Add(1)

	case sdl.K_w:
		if !isDown || ev.HostRepeat || !m.screen.VideoPlaying() {
			return
		}
		m.screen.ResizeToFit()
		metrics.ShortcutsFired.Add(1)

	case sdl.K_g:
		if !isDown || ev.HostRepeat || !m.screen.VideoPlaying() {
			return
		}
		m.screen.ResizeToPixelPerfect()
		metrics.ShortcutsFired.Add(1)

	case sdl.K_i:
		if !isDown || ev.HostRepeat || !m.screen.VideoPlaying() {
			return
		}
		m.screen.ToggleFPSCounter()
		metrics.ShortcutsFired.Add(1)

	case sdl.K_n:
		if !isDown || ev.HostRepeat || m.paused() || m.controller == nil {
			return
		}
		var msg control.Message
		switch {
		case shift:
			msg = control.CollapsePanelsMessage{}
		case m.keyRepeatCount == 0:
			msg = control.ExpandNotificationPanelMessage{}
		default:
			msg = control.ExpandSettingsPanelMessage{}
		}
		if m.push(msg) {
			metrics.ShortcutsFired.Add(1)
		}

	case sdl.K_r:
		if !isDown || ev.HostRepeat || m.paused() || m.controller == nil {
			return
		}
		if m.push(control.RotateDeviceMessage{}) {
			metrics.ShortcutsFired.Add(1)
		}

	case sdl.K_k:
		if !isDown || ev.HostRepeat || m.paused() || m.controller == nil || !m.hidKeyboardAvailable {
			return
		}
		if m.push(control.OpenHardKeyboardSettingsMessage{}) {
			metrics.ShortcutsFired.Add(1)
		}

	case sdl.K_t:
		if !isDown || m.paused() || m.controller == nil || m.keyProc == nil {
			return
		}
		if shift {
			m.DisableTouchmap()
		} else if m.onTouchmapDialog != nil {
			m.onTouchmapDialog()
		}
		metrics.ShortcutsFired.Add(1)

	default:
		// Unknown shortcut key: no-op, not forwarded (spec.md §7).
	}
}

func (m *Manager) shortcutAndroidKey(ev Event, isDown bool, code int32) {
	if m.keyProc == nil || ev.HostRepeat || m.paused() {
		return
	}
	m.keyProc.ProcessKey(keyproc.KeyEvent{Keycode: code, Down: isDown})
	metrics.ShortcutsFired.Add(1)
}

// shortcutVolumeKey implements the volume rows (spec.md §4.2's ↓/↑ table
// entries), whose only listed guard is "key_proc" — unlike h/b/s/m/p they
// are not gated on !repeat or !paused, so they keep repeating while held
// and keep working while the video is paused.
func (m *Manager) shortcutVolumeKey(isDown bool, code int32) {
	if m.keyProc == nil {
		return
	}
	m.keyProc.ProcessKey(keyproc.KeyEvent{Keycode: code, Down: isDown})
	metrics.ShortcutsFired.Add(1)
}

func (m *Manager) injectPasteAsText() {
	if m.clip == nil {
		logx.Error("input: paste requested with no clipboard collaborator")
		return
	}
	text, err := m.clip.ReadHost()
	if err != nil {
		logx.Error("input: read host clipboard: %v", err)
		return
	}
	injector, ok := m.keyProc.(keyproc.TextInjector)
	if !ok {
		return
	}
	injector.ProcessText(text)
}

// syncClipboardAndAwaitAck implements the non-legacy clipboard-autosync
// paste of spec.md §4.2/scenario 6: push SET_CLIPBOARD with paste=false,
// then (if the key processor supports it) suspend its own Ctrl+V injection
// until the device ACKs the allocated sequence number. On a failed push,
// next_sequence is left unchanged and no waiting is set up.
func (m *Manager) syncClipboardAndAwaitAck() {
	if m.clip == nil {
		logx.Error("input: clipboard autosync requested with no clipboard collaborator")
		return
	}
	text, err := m.clip.ReadHost()
	if err != nil {
		logx.Error("input: read host clipboard: %v", err)
		return
	}
	seq := m.nextSequence
	if !m.push(control.SetClipboardMessage{Sequence: seq, Text: text, Paste: false}) {
		return
	}
	m.nextSequence++
	if waiter, ok := m.keyProc.(keyproc.AsyncPaster); ok {
		waiter.AwaitClipboardSequence(seq)
	}
}
