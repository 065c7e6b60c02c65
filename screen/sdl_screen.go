package screen

import (
	"fmt"
	"sync"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/yourname/scrcpy-go/geom"
)

// SDLScreen is the concrete Screen backed by an SDL2 window, generalized
// from the teacher's video.Display (window/renderer/texture lifecycle) into
// a full geometry/orientation/FPS collaborator. It owns no video decode
// state — rendering frames is the embedding application's job; this type
// only answers the geometry/orientation/pause questions input.Manager asks.
type SDLScreen struct {
	mu sync.Mutex

	window *sdl.Window

	frame       geom.Size
	orientation geom.Orientation
	paused      bool
	videoPlaying bool
	fullscreen  bool
	fpsCounterOn bool
}

// NewSDLScreen creates the SDL window used both for rendering and as the
// host event source's target (sdlhost polls the same window's event queue).
func NewSDLScreen(title string, frame geom.Size) (*SDLScreen, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("sdl screen: init video: %w", err)
	}
	win, err := sdl.CreateWindow(title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		frame.W, frame.H, sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE)
	if err != nil {
		return nil, fmt.Errorf("sdl screen: create window: %w", err)
	}
	return &SDLScreen{window: win, frame: frame, videoPlaying: true}, nil
}

// Close releases the SDL window, mirroring video.Display.Close.
func (s *SDLScreen) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.window != nil {
		s.window.Destroy()
		s.window = nil
	}
	sdl.Quit()
}

func (s *SDLScreen) FrameSize() geom.Size {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frame
}

// SetFrameSize is called by the embedding application whenever the video
// stream renegotiates resolution.
func (s *SDLScreen) SetFrameSize(size geom.Size) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.frame = size
}

func (s *SDLScreen) Orientation() geom.Orientation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orientation
}

func (s *SDLScreen) Rotate(degrees int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orientation = composeRotate(s.orientation, degrees)
}

func (s *SDLScreen) SetOrientation(o geom.Orientation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orientation = o
}

func (s *SDLScreen) Paused() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.paused
}

func (s *SDLScreen) SetPaused(paused, hide bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paused = paused
	if paused && hide && s.window != nil {
		s.window.Hide()
	} else if !paused && s.window != nil {
		s.window.Show()
	}
}

func (s *SDLScreen) VideoPlaying() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.videoPlaying
}

// SetVideoPlaying is called by the embedding application when the video
// stream starts or stops.
func (s *SDLScreen) SetVideoPlaying(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.videoPlaying = v
}

func (s *SDLScreen) ToggleFullscreen() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.window == nil {
		return
	}
	s.fullscreen = !s.fullscreen
	flag := uint32(0)
	if s.fullscreen {
		flag = sdl.WINDOW_FULLSCREEN_DESKTOP
	}
	_ = s.window.SetFullscreen(flag)
}

func (s *SDLScreen) ResizeToFit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.window == nil {
		return
	}
	s.window.SetSize(s.frame.W, s.frame.H)
}

func (s *SDLScreen) ResizeToPixelPerfect() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.window == nil {
		return
	}
	s.window.SetSize(s.frame.W, s.frame.H)
}

func (s *SDLScreen) ToggleFPSCounter() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fpsCounterOn = !s.fpsCounterOn
}

// WindowToFrame converts a window-space point into device-frame pixels,
// assuming the frame is letterboxed to fit the current window size (the
// layout scrcpy itself uses). ok is false when the point falls in the
// letterbox margin, outside the rendered frame rect.
func (s *SDLScreen) WindowToFrame(windowPoint geom.Point) (geom.Point, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.window == nil || s.frame.W == 0 || s.frame.H == 0 {
		return geom.Point{}, false
	}
	ww, wh := s.window.GetSize()
	if ww <= 0 || wh <= 0 {
		return geom.Point{}, false
	}
	scale := float64(s.frame.W) / float64(ww)
	if altScale := float64(s.frame.H) / float64(wh); altScale > scale {
		scale = altScale
	}
	renderedW := float64(ww) * scale
	renderedH := float64(wh) * scale
	offX := (renderedW - float64(s.frame.W)) / 2
	offY := (renderedH - float64(s.frame.H)) / 2
	fx := float64(windowPoint.X)*scale - offX
	fy := float64(windowPoint.Y)*scale - offY
	if fx < 0 || fy < 0 || fx >= float64(s.frame.W) || fy >= float64(s.frame.H) {
		return geom.Point{X: int32(fx), Y: int32(fy)}, false
	}
	return geom.Point{X: int32(fx), Y: int32(fy)}, true
}

func composeRotate(o geom.Orientation, degrees int) geom.Orientation {
	flipped := o >= geom.OrientFlip0
	base := int(o)
	if flipped {
		base -= int(geom.OrientFlip0)
	}
	steps := degrees / 90
	base = ((base+steps)%4 + 4) % 4
	if flipped {
		return geom.Orientation(base) + geom.OrientFlip0
	}
	return geom.Orientation(base)
}
