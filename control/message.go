// Package control defines the outbound control-message vocabulary of
// spec.md §6 and the non-blocking Queue contract it is pushed through.
// Wire encoding is adapted from the teacher's protocol package
// (BuildKeyEvent/BuildMouseEvent) and internal/input/touch.go's 32-byte
// INJECT_TOUCH_EVENT payload, generalized from two message kinds to the
// full tagged union the spec names. Socket I/O and framing beyond this
// byte layout belong to the transport collaborator, not this package
// (spec.md §1: "serialization and socket I/O are elsewhere").
package control

import (
	"bytes"
	"encoding/binary"

	"github.com/yourname/scrcpy-go/geom"
)

// Kind tags a Message with its wire type.
type Kind uint8

const (
	KindInjectKeycode Kind = iota
	KindBackOrScreenOn
	KindExpandNotificationPanel
	KindExpandSettingsPanel
	KindCollapsePanels
	KindGetClipboard
	KindSetClipboard
	KindSetScreenPowerMode
	KindInjectText
	KindInjectTouchEvent
	KindRotateDevice
	KindOpenHardKeyboardSettings
	KindInjectControllerAxis
	KindInjectControllerButton
	KindInjectControllerDevice
)

// Action is the motion action carried by a touch event, matching the
// Android AMOTION_EVENT_ACTION_* values the teacher's touch.go encodes.
type Action uint8

const (
	ActionDown Action = iota
	ActionUp
	ActionMove
	ActionCancel
)

// Message is anything that can be pushed to the outbound Queue.
type Message interface {
	Kind() Kind
	Encode() []byte
}

// Queue is the outbound transport contract assumed by spec.md §1: a
// non-blocking bounded queue. Push returns false under backpressure; per
// spec.md §7/§9 the caller (this module) never retries and, for messages
// that own transferred memory (clipboard strings), must free on a false
// return rather than assume the transport took ownership.
type Queue interface {
	Push(Message) bool
}

// --- message kinds ---

// KeycodeMessage requests INJECT_KEYCODE.
type KeycodeMessage struct {
	Keycode int32
	Down    bool
	Repeat  int32
}

func (KeycodeMessage) Kind() Kind { return KindInjectKeycode }

func (m KeycodeMessage) Encode() []byte {
	buf := new(bytes.Buffer)
	buf.WriteByte(byte(KindInjectKeycode))
	binary.Write(buf, binary.BigEndian, boolToAction(m.Down))
	binary.Write(buf, binary.BigEndian, m.Keycode)
	binary.Write(buf, binary.BigEndian, m.Repeat)
	return buf.Bytes()
}

// BackOrScreenOnMessage requests BACK_OR_SCREEN_ON.
type BackOrScreenOnMessage struct{ Down bool }

func (BackOrScreenOnMessage) Kind() Kind { return KindBackOrScreenOn }

func (m BackOrScreenOnMessage) Encode() []byte {
	return []byte{byte(KindBackOrScreenOn), boolToByte(m.Down)}
}

// ExpandNotificationPanelMessage requests EXPAND_NOTIFICATION_PANEL.
type ExpandNotificationPanelMessage struct{}

func (ExpandNotificationPanelMessage) Kind() Kind    { return KindExpandNotificationPanel }
func (ExpandNotificationPanelMessage) Encode() []byte { return []byte{byte(KindExpandNotificationPanel)} }

// ExpandSettingsPanelMessage requests EXPAND_SETTINGS_PANEL.
type ExpandSettingsPanelMessage struct{}

func (ExpandSettingsPanelMessage) Kind() Kind     { return KindExpandSettingsPanel }
func (ExpandSettingsPanelMessage) Encode() []byte { return []byte{byte(KindExpandSettingsPanel)} }

// CollapsePanelsMessage requests COLLAPSE_PANELS.
type CollapsePanelsMessage struct{}

func (CollapsePanelsMessage) Kind() Kind     { return KindCollapsePanels }
func (CollapsePanelsMessage) Encode() []byte { return []byte{byte(KindCollapsePanels)} }

// GetClipboardMessage requests GET_CLIPBOARD{copy_key}.
type GetClipboardMessage struct{ CopyKey uint8 }

func (GetClipboardMessage) Kind() Kind { return KindGetClipboard }
func (m GetClipboardMessage) Encode() []byte {
	return []byte{byte(KindGetClipboard), m.CopyKey}
}

// SetClipboardMessage requests SET_CLIPBOARD{sequence, text, paste}. Text
// ownership transfers to the transport on a successful Push; on failure the
// caller retains and must discard it (spec.md §9 "Ownership of outbound
// strings").
type SetClipboardMessage struct {
	Sequence uint64
	Text     string
	Paste    bool
}

func (SetClipboardMessage) Kind() Kind { return KindSetClipboard }

func (m SetClipboardMessage) Encode() []byte {
	buf := new(bytes.Buffer)
	buf.WriteByte(byte(KindSetClipboard))
	binary.Write(buf, binary.BigEndian, m.Sequence)
	buf.WriteByte(boolToByte(m.Paste))
	binary.Write(buf, binary.BigEndian, uint32(len(m.Text)))
	buf.WriteString(m.Text)
	return buf.Bytes()
}

// ScreenPowerMode is the device power state requested by SET_SCREEN_POWER_MODE.
type ScreenPowerMode uint8

const (
	ScreenPowerModeOff ScreenPowerMode = iota
	ScreenPowerModeNormal
)

// SetScreenPowerModeMessage requests SET_SCREEN_POWER_MODE{mode}.
type SetScreenPowerModeMessage struct{ Mode ScreenPowerMode }

func (SetScreenPowerModeMessage) Kind() Kind { return KindSetScreenPowerMode }
func (m SetScreenPowerModeMessage) Encode() []byte {
	return []byte{byte(KindSetScreenPowerMode), byte(m.Mode)}
}

// InjectTextMessage requests INJECT_TEXT{text}.
type InjectTextMessage struct{ Text string }

func (InjectTextMessage) Kind() Kind { return KindInjectText }
func (m InjectTextMessage) Encode() []byte {
	buf := new(bytes.Buffer)
	buf.WriteByte(byte(KindInjectText))
	binary.Write(buf, binary.BigEndian, uint32(len(m.Text)))
	buf.WriteString(m.Text)
	return buf.Bytes()
}

// TouchEventMessage requests INJECT_TOUCH_EVENT, encoded exactly as the
// teacher's internal/input/touch.go 32-byte wire layout: type(1) +
// action(1) + pointerId(8) + x(4) + y(4) + screenW(2) + screenH(2) +
// pressure(2, 0xFFFF=max) + actionButton(4) + buttons(4).
type TouchEventMessage struct {
	Action       Action
	ScreenSize   geom.Size
	Point        geom.Point
	PointerID    uint64
	Pressure     float64 // 0..1
	ActionButton uint32
	Buttons      uint32
}

func (TouchEventMessage) Kind() Kind { return KindInjectTouchEvent }

func (m TouchEventMessage) Encode() []byte {
	buf := make([]byte, 32)
	buf[0] = byte(KindInjectTouchEvent)
	buf[1] = byte(m.Action)
	binary.BigEndian.PutUint64(buf[2:10], m.PointerID)
	binary.BigEndian.PutUint32(buf[10:14], uint32(m.Point.X))
	binary.BigEndian.PutUint32(buf[14:18], uint32(m.Point.Y))
	binary.BigEndian.PutUint16(buf[18:20], uint16(m.ScreenSize.W))
	binary.BigEndian.PutUint16(buf[20:22], uint16(m.ScreenSize.H))
	binary.BigEndian.PutUint16(buf[22:24], pressureFixedPoint(m.Pressure))
	binary.BigEndian.PutUint32(buf[24:28], m.ActionButton)
	binary.BigEndian.PutUint32(buf[28:32], m.Buttons)
	return buf
}

func pressureFixedPoint(f float64) uint16 {
	if f < 0 {
		f = 0
	} else if f > 1 {
		f = 1
	}
	if f == 1 {
		return 0xffff
	}
	return uint16(f * 65535)
}

// RotateDeviceMessage requests ROTATE_DEVICE.
type RotateDeviceMessage struct{}

func (RotateDeviceMessage) Kind() Kind     { return KindRotateDevice }
func (RotateDeviceMessage) Encode() []byte { return []byte{byte(KindRotateDevice)} }

// OpenHardKeyboardSettingsMessage requests OPEN_HARD_KEYBOARD_SETTINGS.
type OpenHardKeyboardSettingsMessage struct{}

func (OpenHardKeyboardSettingsMessage) Kind() Kind { return KindOpenHardKeyboardSettings }
func (OpenHardKeyboardSettingsMessage) Encode() []byte {
	return []byte{byte(KindOpenHardKeyboardSettings)}
}

// ControllerAxisMessage requests INJECT_GAME_CONTROLLER_AXIS.
type ControllerAxisMessage struct {
	Which int32
	Axis  uint8
	Value int16
}

func (ControllerAxisMessage) Kind() Kind { return KindInjectControllerAxis }
func (m ControllerAxisMessage) Encode() []byte {
	buf := new(bytes.Buffer)
	buf.WriteByte(byte(KindInjectControllerAxis))
	binary.Write(buf, binary.BigEndian, m.Which)
	buf.WriteByte(m.Axis)
	binary.Write(buf, binary.BigEndian, m.Value)
	return buf.Bytes()
}

// ControllerButtonMessage requests INJECT_GAME_CONTROLLER_BUTTON.
type ControllerButtonMessage struct {
	Which  int32
	Button uint8
	Down   bool
}

func (ControllerButtonMessage) Kind() Kind { return KindInjectControllerButton }
func (m ControllerButtonMessage) Encode() []byte {
	buf := new(bytes.Buffer)
	buf.WriteByte(byte(KindInjectControllerButton))
	binary.Write(buf, binary.BigEndian, m.Which)
	buf.WriteByte(m.Button)
	buf.WriteByte(boolToByte(m.Down))
	return buf.Bytes()
}

// ControllerDeviceMessage requests INJECT_GAME_CONTROLLER_DEVICE.
type ControllerDeviceMessage struct {
	Which int32
	Added bool
}

func (ControllerDeviceMessage) Kind() Kind { return KindInjectControllerDevice }
func (m ControllerDeviceMessage) Encode() []byte {
	buf := new(bytes.Buffer)
	buf.WriteByte(byte(KindInjectControllerDevice))
	binary.Write(buf, binary.BigEndian, m.Which)
	buf.WriteByte(boolToByte(m.Added))
	return buf.Bytes()
}

func boolToByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}

func boolToAction(down bool) uint8 {
	if down {
		return 1
	}
	return 0
}
