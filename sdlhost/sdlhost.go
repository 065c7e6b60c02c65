// Package sdlhost is the host event source of spec.md §1 ("assumed: an
// event loop producing tagged events") — out of scope for the core itself,
// but necessarily concrete somewhere so the module runs. Grounded on the
// teacher's input/handler.go Capture() loop and video/display.go's
// SDL_PollEvent pump, generalized from "keyboard+mouse, forwarded as a
// string-typed Event" to the full input.Event taxonomy of spec.md §6.
package sdlhost

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/yourname/scrcpy-go/input"
)

// Source pumps SDL's event queue and translates each event the core cares
// about into an input.Event, delivered to a sink function. Events SDL
// produces that the core has no use for (window resize, render-target
// reset, etc.) are silently dropped here rather than surfaced.
type Source struct {
	sink  func(input.Event)
	quit  func()
}

// New creates a Source that calls sink for every translated event.
func New(sink func(input.Event)) *Source {
	return &Source{sink: sink}
}

// OnQuit installs a callback invoked when the host signals SDL_QUIT (window
// close). Window lifecycle is outside the input taxonomy of spec.md §6, so
// it is reported out-of-band rather than as an input.Event.
func (s *Source) OnQuit(fn func()) {
	s.quit = fn
}

// Pump drains every event currently queued by SDL, translating and
// dispatching each one to the sink in arrival order. It never blocks: if
// the queue is empty, it returns immediately. Call once per frame from the
// render loop, mirroring the teacher's video/display.go poll-then-render
// structure.
func (s *Source) Pump() {
	for e := sdl.PollEvent(); e != nil; e = sdl.PollEvent() {
		if _, isQuit := e.(*sdl.QuitEvent); isQuit {
			if s.quit != nil {
				s.quit()
			}
			continue
		}
		if ev, ok := translate(e); ok {
			s.sink(ev)
		}
	}
}

func translate(e sdl.Event) (input.Event, bool) {
	switch ev := e.(type) {
	case *sdl.TextInputEvent:
		return input.Event{Kind: input.KindTextInput, Text: textInputString(ev.Text), Mod: uint16(sdl.GetModState())}, true

	case *sdl.KeyboardEvent:
		kind := input.KindKeyDown
		if ev.Type == sdl.KEYUP {
			kind = input.KindKeyUp
		}
		return input.Event{
			Kind:       kind,
			Keycode:    int32(ev.Keysym.Sym),
			Scancode:   int32(ev.Keysym.Scancode),
			Mod:        ev.Keysym.Mod,
			HostRepeat: ev.Repeat != 0,
		}, true

	case *sdl.MouseMotionEvent:
		return input.Event{
			Kind:       input.KindMouseMotion,
			X:          ev.X,
			Y:          ev.Y,
			XRel:       ev.XRel,
			YRel:       ev.YRel,
			Which:      ev.Which,
			MouseState: ev.State,
		}, true

	case *sdl.MouseButtonEvent:
		return input.Event{
			Kind:       input.KindMouseButton,
			X:          ev.X,
			Y:          ev.Y,
			Which:      ev.Which,
			Button:     ev.Button,
			ButtonDown: ev.Type == sdl.MOUSEBUTTONDOWN,
			Clicks:     ev.Clicks,
			Mod:        uint16(sdl.GetModState()),
		}, true

	case *sdl.MouseWheelEvent:
		return input.Event{
			Kind:      input.KindMouseWheel,
			PreciseX:  ev.PreciseX,
			PreciseY:  ev.PreciseY,
			Which:     ev.Which,
		}, true

	case *sdl.TouchFingerEvent:
		phase := input.TouchMove
		switch ev.Type {
		case sdl.FINGERDOWN:
			phase = input.TouchDown
		case sdl.FINGERUP:
			phase = input.TouchUp
		}
		return input.Event{
			Kind:       input.KindTouchFinger,
			FingerID:   uint64(ev.FingerID),
			TouchX:     ev.X,
			TouchY:     ev.Y,
			Pressure:   ev.Pressure,
			TouchPhase: phase,
		}, true

	case *sdl.DropEvent:
		if ev.Type != sdl.DROPFILE {
			return input.Event{}, false
		}
		return input.Event{Kind: input.KindDropFile, Path: ev.File}, true

	case *sdl.ControllerAxisEvent:
		return input.Event{
			Kind:            input.KindControllerAxis,
			ControllerWhich: int32(ev.Which),
			Axis:            ev.Axis,
			AxisValue:       ev.Value,
		}, true

	case *sdl.ControllerButtonEvent:
		return input.Event{
			Kind:                 input.KindControllerButton,
			ControllerWhich:      int32(ev.Which),
			ControllerButton:     ev.Button,
			ControllerButtonDown: ev.State == sdl.PRESSED,
		}, true

	case *sdl.ControllerDeviceEvent:
		switch ev.Type {
		case sdl.CONTROLLERDEVICEADDED:
			return input.Event{
				Kind:                  input.KindControllerDeviceAdded,
				ControllerDeviceIndex: int32(ev.Which),
			}, true
		case sdl.CONTROLLERDEVICEREMOVED:
			return input.Event{
				Kind:            input.KindControllerDeviceRemoved,
				ControllerWhich: int32(ev.Which),
			}, true
		default:
			return input.Event{}, false
		}

	default:
		return input.Event{}, false
	}
}

func textInputString(raw [32]byte) string {
	n := 0
	for n < len(raw) && raw[n] != 0 {
		n++
	}
	return string(raw[:n])
}
