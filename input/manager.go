package input

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/yourname/scrcpy-go/clipboard"
	"github.com/yourname/scrcpy-go/config"
	"github.com/yourname/scrcpy-go/control"
	"github.com/yourname/scrcpy-go/filepusher"
	"github.com/yourname/scrcpy-go/gamepad"
	"github.com/yourname/scrcpy-go/keyproc"
	"github.com/yourname/scrcpy-go/logx"
	"github.com/yourname/scrcpy-go/metrics"
	"github.com/yourname/scrcpy-go/mouseproc"
	"github.com/yourname/scrcpy-go/screen"
	"github.com/yourname/scrcpy-go/touchmap"
	"github.com/yourname/scrcpy-go/vfinger"
)

// SequenceInvalid is the reserved sentinel clipboard sequence of spec.md §6.
const SequenceInvalid uint64 = 0

// TouchMouseID is the SDL mouse instance ID used for synthetic mouse events
// SDL itself generates from touch input; these are always ignored by the
// mouse-button dispatcher (spec.md §4.6 point 1).
const TouchMouseID = 0xFFFFFFFF

// Manager is the InputManager of spec.md §3: one process-lived structure
// owned by a single thread, holding every collaborator and every piece of
// shortcut/virtual-finger/touchmap state. Grounded on the teacher's
// ScrcpySession (session.go), which was likewise one struct aggregating
// every per-connection collaborator rather than a web of smaller services.
type Manager struct {
	controller control.Queue
	keyProc    keyproc.Processor
	mouseProc  mouseproc.Processor
	screen     screen.Screen
	filePusher filepusher.Pusher
	clip       clipboard.Clipboard

	cfg config.Options

	vfinger *vfinger.Engine

	gamepads *gamepad.Manager
	touchmap *touchmap.Map

	lastKeycode    int32
	lastMod        uint16
	keyRepeatCount int32

	nextSequence uint64

	hidKeyboardAvailable bool
	onTouchmapDialog     func()
}

// Option mutates a Manager during construction, mirroring the functional
// options shape of package config.
type Option func(*Manager)

// WithController attaches the outbound control-message queue. A Manager
// built without one runs in "no-control" mode (spec.md §3).
func WithController(q control.Queue) Option {
	return func(m *Manager) { m.controller = q }
}

// WithKeyProcessor attaches the key-forwarding collaborator.
func WithKeyProcessor(p keyproc.Processor) Option {
	return func(m *Manager) { m.keyProc = p }
}

// WithMouseProcessor attaches the mouse/touch-forwarding collaborator.
func WithMouseProcessor(p mouseproc.Processor) Option {
	return func(m *Manager) { m.mouseProc = p }
}

// WithFilePusher attaches the drag-and-drop collaborator.
func WithFilePusher(p filepusher.Pusher) Option {
	return func(m *Manager) { m.filePusher = p }
}

// WithClipboard attaches the host-clipboard collaborator.
func WithClipboard(c clipboard.Clipboard) Option {
	return func(m *Manager) { m.clip = c }
}

// WithGamepadOpener installs the controller-open collaborator; defaults to
// gamepad.SDLOpener{} when omitted.
func WithGamepadOpener(o gamepad.Opener) Option {
	return func(m *Manager) { m.gamepads = gamepad.NewManager(o) }
}

// WithHIDKeyboardAvailable marks whether the connected controller exposes a
// HID keyboard (gates the "k" shortcut of spec.md §4.2).
func WithHIDKeyboardAvailable(v bool) Option {
	return func(m *Manager) { m.hidKeyboardAvailable = v }
}

// WithTouchmapDialogHook installs the callback invoked by the "t" shortcut
// to request a touchmap file path from the user. The file-dialog itself is
// out of scope for this core (spec.md §1); the hook is this module's only
// contract with it. A Manager without a hook treats plain "t" as a no-op;
// Shift+"t" still disables the touchmap.
func WithTouchmapDialogHook(fn func()) Option {
	return func(m *Manager) { m.onTouchmapDialog = fn }
}

// NewManager builds an InputManager from a screen collaborator (mandatory:
// every coordinate conversion and pause/video gate routes through it) and
// validated config.Options. If cfg.TouchmapFile is set, it is loaded
// immediately; a load failure is logged and left with no touchmap, per
// spec.md §4.4's failure-mode table.
func NewManager(scr screen.Screen, cfg config.Options, opts ...Option) *Manager {
	m := &Manager{
		screen:       scr,
		cfg:          cfg,
		vfinger:      vfinger.New(cfg.HasSecondaryClick()),
		gamepads:     gamepad.NewManager(gamepad.SDLOpener{}),
		nextSequence: 1,
	}
	for _, apply := range opts {
		apply(m)
	}
	if cfg.TouchmapFile != "" {
		if err := m.LoadTouchmap(cfg.TouchmapFile); err != nil {
			logx.Error("input: initial touchmap load: %v", err)
		}
	}
	return m
}

// Close releases every owned resource (open game controllers). It does not
// touch the collaborators, which the caller owns.
func (m *Manager) Close() {
	m.gamepads.Close()
}

// LoadTouchmap parses path and, on success, atomically replaces the active
// touchmap. On failure the existing touchmap (if any) is left untouched,
// per the "parse first, replace on success" redesign of spec.md §9.
func (m *Manager) LoadTouchmap(path string) error {
	tm, err := touchmap.Load(path)
	if err != nil {
		metrics.TouchmapLoadError.Add(1)
		return fmt.Errorf("input: load touchmap: %w", err)
	}
	m.touchmap = tm
	metrics.TouchmapLoadOK.Add(1)
	return nil
}

// DisableTouchmap turns off the gamepad touchmap engine, per the "t+Shift"
// shortcut of spec.md §4.2. Subsequent controller axis/button events are
// simply dropped (matching forward_game_controllers == false with no map).
func (m *Manager) DisableTouchmap() {
	m.touchmap = nil
}

// push sends msg to the outbound queue if one is configured, recording
// metrics. A nil controller or a full queue are both soft failures: never
// block or retry. A full queue is logged and the message dropped (spec.md
// §7 "Outbound queue full"); with no controller the message is dropped
// silently.
func (m *Manager) push(msg control.Message) bool {
	if m.controller == nil {
		return false
	}
	if !m.controller.Push(msg) {
		metrics.MessagesDropped.Add(1)
		logx.Error("input: outbound queue full, dropping message kind %d", msg.Kind())
		return false
	}
	metrics.MessagesPushed.Add(1)
	return true
}

// pushTouch wraps a touchmap.TouchEvent into a full control.TouchEventMessage
// using the current screen frame size, since the touchmap package itself
// never learns the device frame size (touchmap/engine.go).
func (m *Manager) pushTouch(ev touchmap.TouchEvent) {
	m.push(control.TouchEventMessage{
		Action:     ev.Action,
		ScreenSize: m.screen.FrameSize(),
		Point:      ev.Point,
		PointerID:  ev.FingerID,
		Pressure:   pressureFor(ev.Action),
	})
}

func pressureFor(a control.Action) float64 {
	if a == control.ActionUp {
		return 0
	}
	return 1
}

// HandleEvent is the total dispatcher of spec.md §4.1. It never blocks.
func (m *Manager) HandleEvent(ev Event) {
	switch ev.Kind {
	case KindTextInput:
		metrics.EventDispatched("text_input")
		m.handleTextInput(ev)
	case KindKeyDown:
		metrics.EventDispatched("key_down")
		m.handleKeyDown(ev)
	case KindKeyUp:
		metrics.EventDispatched("key_up")
		m.handleKeyUp(ev)
	case KindMouseMotion:
		metrics.EventDispatched("mouse_motion")
		m.handleMouseMotion(ev)
	case KindMouseButton:
		metrics.EventDispatched("mouse_button")
		m.handleMouseButton(ev)
	case KindMouseWheel:
		metrics.EventDispatched("mouse_wheel")
		m.handleMouseWheel(ev)
	case KindTouchFinger:
		metrics.EventDispatched("touch_finger")
		m.handleTouchFinger(ev)
	case KindDropFile:
		metrics.EventDispatched("drop_file")
		m.handleDropFile(ev)
	case KindControllerAxis:
		metrics.EventDispatched("controller_axis")
		m.handleControllerAxis(ev)
	case KindControllerButton:
		metrics.EventDispatched("controller_button")
		m.handleControllerButton(ev)
	case KindControllerDeviceAdded:
		metrics.EventDispatched("controller_device_added")
		m.handleControllerDeviceAdded(ev)
	case KindControllerDeviceRemoved:
		metrics.EventDispatched("controller_device_removed")
		m.handleControllerDeviceRemoved(ev)
	default:
		// Unknown event type: ignored, per spec.md §7.
	}
}

func (m *Manager) paused() bool {
	return m.screen.Paused()
}

func (m *Manager) relativeMode() bool {
	return m.mouseProc != nil && m.mouseProc.RelativeMode()
}

// modArmed reports whether the current modifier state (or the key itself)
// arms shortcut classification, per spec.md §4.2: "(current_mods &
// configured_shortcut_mods) != 0 OR the pressed key is itself one of the
// configured modifier keys".
func (m *Manager) modArmed(keycode int32, mod uint16) bool {
	if sdlModMask(mod)&m.cfg.ShortcutMods != 0 {
		return true
	}
	return isConfiguredModifierKeycode(keycode, m.cfg.ShortcutMods)
}

func sdlModMask(mod uint16) config.ModifierMask {
	var out config.ModifierMask
	if mod&sdl.KMOD_LCTRL != 0 {
		out |= config.ModLCtrl
	}
	if mod&sdl.KMOD_RCTRL != 0 {
		out |= config.ModRCtrl
	}
	if mod&sdl.KMOD_LALT != 0 {
		out |= config.ModLAlt
	}
	if mod&sdl.KMOD_RALT != 0 {
		out |= config.ModRAlt
	}
	if mod&sdl.KMOD_LGUI != 0 {
		out |= config.ModLSuper
	}
	if mod&sdl.KMOD_RGUI != 0 {
		out |= config.ModRSuper
	}
	return out
}

func isConfiguredModifierKeycode(keycode int32, mods config.ModifierMask) bool {
	switch sdl.Keycode(keycode) {
	case sdl.K_LCTRL:
		return mods.Has(config.ModLCtrl)
	case sdl.K_RCTRL:
		return mods.Has(config.ModRCtrl)
	case sdl.K_LALT:
		return mods.Has(config.ModLAlt)
	case sdl.K_RALT:
		return mods.Has(config.ModRAlt)
	case sdl.K_LGUI:
		return mods.Has(config.ModLSuper)
	case sdl.K_RGUI:
		return mods.Has(config.ModRSuper)
	default:
		return false
	}
}

func shiftHeld(mod uint16) bool { return mod&sdl.KMOD_SHIFT != 0 }
func ctrlHeld(mod uint16) bool  { return mod&sdl.KMOD_CTRL != 0 }
