// Package input implements the event dispatcher and shortcut state machine
// of spec.md §4.1/§4.2/§4.6 — the core of this module. It is grounded on
// the teacher's control-flow style throughout ScrcpySession and main.go:
// small methods, early-return gating, package-local helpers instead of
// generic dispatch tables.
package input

// Kind tags an inbound host Event, per the taxonomy of spec.md §6.
type Kind int

const (
	KindTextInput Kind = iota
	KindKeyDown
	KindKeyUp
	KindMouseMotion
	KindMouseButton
	KindMouseWheel
	KindTouchFinger
	KindDropFile
	KindControllerAxis
	KindControllerButton
	KindControllerDeviceAdded
	KindControllerDeviceRemoved
)

// TouchPhase distinguishes down/up/move/cancel for a TouchFinger event.
type TouchPhase int

const (
	TouchDown TouchPhase = iota
	TouchUp
	TouchMove
	TouchCancel
)

// Event is the tagged union of inbound host events from spec.md §6. Only
// the fields relevant to Kind are meaningful; this flat-struct shape
// mirrors the teacher's own touchEvent/Event structs (internal/input/touch.go,
// input/handler.go), which likewise carry every field a union member might
// need rather than using Go's interface-per-variant idiom — appropriate
// here since the host event source (sdlhost) constructs these from SDL's
// own flat event structs.
type Event struct {
	Kind Kind

	// TextInput
	Text string

	// KeyDown / KeyUp. Mod is also populated for MouseButton and TextInput
	// (the host event source samples the live keyboard-modifier state at
	// event time) since the virtual-finger engine needs Ctrl/Shift at the
	// moment of LEFT_DOWN/UP, and text input is dropped while a shortcut
	// modifier is held.
	Keycode    int32
	Scancode   int32
	Mod        uint16
	HostRepeat bool // true if the OS auto-repeated this key while held

	// MouseMotion
	X, Y       int32
	XRel, YRel int32
	MouseState uint32

	// MouseMotion / MouseButton / MouseWheel: SDL mouse instance ID. Used
	// to filter out SDL's synthetic mouse events generated from touch
	// input (spec.md §4.6 point 1, TOUCH_MOUSEID).
	Which uint32

	// MouseButton
	Button     uint8
	ButtonDown bool
	Clicks     uint8

	// MouseWheel
	PreciseX, PreciseY float32

	// TouchFinger (coordinates normalized to [0,1] per spec.md §6)
	FingerID    uint64
	TouchX      float32
	TouchY      float32
	Pressure    float32
	TouchPhase  TouchPhase

	// DropFile
	Path string

	// ControllerAxis / ControllerButton / ControllerDevice
	ControllerWhich       int32
	Axis                  uint8
	AxisValue             int16
	ControllerButton      uint8
	ControllerButtonDown  bool
	ControllerDeviceIndex int32 // device index to open, meaningful on add
	ControllerAdded       bool
}
