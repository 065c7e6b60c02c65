// Package mouseproc defines the optional mouse/touch processor
// collaborator of spec.md §3/§9, mirroring the capability-struct shape of
// package keyproc.
package mouseproc

// MotionEvent is a normalized mouse-motion event.
type MotionEvent struct {
	X, Y       int32
	XRel, YRel int32
	State      uint32
}

// ClickEvent is a normalized mouse-button event.
type ClickEvent struct {
	X, Y   int32
	Button uint8
	Down   bool
	Clicks uint8
}

// ScrollEvent is a normalized mouse-wheel event.
type ScrollEvent struct {
	PreciseX, PreciseY float32
}

// TouchEvent is a normalized touch-finger event, coordinates in [0,1].
type TouchEvent struct {
	FingerID uint64
	X, Y     float32
	Pressure float32
}

// Processor is the mandatory surface of the mouse/touch collaborator: its
// only required method is RelativeMode, because the virtual-finger engine
// must be able to query it unconditionally per spec.md §3's invariant
// "vfinger_down ⇒ mouse_proc.relative_mode == false". A nil Processor
// disables every mouse/touch path gated on its presence.
type Processor interface {
	// RelativeMode reports whether only motion deltas are meaningful
	// (absolute positions undefined). The virtual-finger engine is disabled
	// while true; touch forwarding does not consult it.
	RelativeMode() bool
}

// MotionHandler is the optional capability for processing mouse motion.
type MotionHandler interface {
	ProcessMouseMotion(MotionEvent)
}

// ClickHandler is the optional capability for processing mouse clicks.
type ClickHandler interface {
	ProcessMouseClick(ClickEvent)
}

// ScrollHandler is the optional capability for processing mouse wheel input.
type ScrollHandler interface {
	ProcessMouseScroll(ScrollEvent)
}

// TouchHandler is the optional capability for forwarding real touchscreen
// input (as opposed to the synthesized virtual finger).
type TouchHandler interface {
	ProcessTouch(TouchEvent)
}
