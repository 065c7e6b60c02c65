// Package screen defines the screen/window collaborator contract of
// spec.md §1 ("provides window->frame coordinate conversion, drawable
// size, orientation state mutation, pause/fullscreen toggles, FPS
// counter") plus a concrete SDL2-backed implementation, generalized from
// the teacher's video/display.go (which only ever drew H.264 frames into
// an SDL window) into a full geometry/orientation/FPS collaborator.
package screen

import "github.com/yourname/scrcpy-go/geom"

// Screen is the contract input.Manager depends on. Every method must be
// safe to call from the single input-handling thread only; per spec.md
// §5 no locking is required internally.
type Screen interface {
	// FrameSize is the current drawable size in device-frame pixels.
	FrameSize() geom.Size
	// Orientation is the current composed rotate/flip state.
	Orientation() geom.Orientation
	// Rotate adds a relative rotation (90 or 270 degrees) to the current
	// orientation, composing with any active flip.
	Rotate(degrees int)
	// SetOrientation replaces the orientation outright (used by the flip
	// shortcuts, which target an absolute state rather than a delta).
	SetOrientation(o geom.Orientation)
	// Paused reports whether rendering is currently paused.
	Paused() bool
	// SetPaused toggles pause state; hide additionally blanks the window
	// when true (spec.md §4.2 "z" shortcut: "pause toggle" vs "pause
	// without hiding").
	SetPaused(paused, hide bool)
	// VideoPlaying reports whether a video stream is currently being
	// rendered (the "video" gate of spec.md §4.1/§4.2).
	VideoPlaying() bool
	// ToggleFullscreen toggles the window's fullscreen state.
	ToggleFullscreen()
	// ResizeToFit resizes the window to fit the frame's aspect ratio.
	ResizeToFit()
	// ResizeToPixelPerfect resizes the window to the frame's native size.
	ResizeToPixelPerfect()
	// ToggleFPSCounter starts or stops the on-screen FPS counter.
	ToggleFPSCounter()
	// WindowToFrame converts a window-space click coordinate into a
	// device-frame coordinate. ok is false when the point lies outside
	// the rendered frame rect (used by the double-click resize-to-fit
	// check of spec.md §4.6).
	WindowToFrame(windowPoint geom.Point) (p geom.Point, ok bool)
}
