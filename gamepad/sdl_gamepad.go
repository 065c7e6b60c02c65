package gamepad

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
)

// SDLOpener opens controllers through SDL's game controller API.
type SDLOpener struct{}

type sdlHandle struct {
	controller *sdl.GameController
}

func (h *sdlHandle) InstanceID() int32 {
	return int32(h.controller.Joystick().InstanceID())
}

func (h *sdlHandle) Close() {
	h.controller.Close()
}

// Open opens a game controller by SDL device index.
func (SDLOpener) Open(deviceIndex int32) (Handle, error) {
	if !sdl.IsGameController(int(deviceIndex)) {
		return nil, fmt.Errorf("sdl gamepad: device %d is not a game controller", deviceIndex)
	}
	c := sdl.GameControllerOpen(int(deviceIndex))
	if c == nil {
		return nil, fmt.Errorf("sdl gamepad: failed to open device %d", deviceIndex)
	}
	return &sdlHandle{controller: c}, nil
}
