package sdlhost

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/yourname/scrcpy-go/input"
)

func TestTranslateKeyDown(t *testing.T) {
	ev := &sdl.KeyboardEvent{
		Type:   sdl.KEYDOWN,
		Repeat: 1,
		Keysym: sdl.Keysym{Sym: sdl.K_a, Scancode: sdl.SCANCODE_A, Mod: uint16(sdl.KMOD_LCTRL)},
	}
	out, ok := translate(ev)
	require.True(t, ok)
	require.Equal(t, input.KindKeyDown, out.Kind)
	require.Equal(t, int32(sdl.K_a), out.Keycode)
	require.True(t, out.HostRepeat)
}

func TestTranslateKeyUp(t *testing.T) {
	ev := &sdl.KeyboardEvent{Type: sdl.KEYUP, Keysym: sdl.Keysym{Sym: sdl.K_a}}
	out, ok := translate(ev)
	require.True(t, ok)
	require.Equal(t, input.KindKeyUp, out.Kind)
}

func TestTranslateMouseButtonDown(t *testing.T) {
	ev := &sdl.MouseButtonEvent{
		Type: sdl.MOUSEBUTTONDOWN, Button: sdl.BUTTON_LEFT, Clicks: 2, X: 10, Y: 20,
	}
	out, ok := translate(ev)
	require.True(t, ok)
	require.Equal(t, input.KindMouseButton, out.Kind)
	require.True(t, out.ButtonDown)
	require.EqualValues(t, 2, out.Clicks)
}

func TestTranslateControllerAxis(t *testing.T) {
	ev := &sdl.ControllerAxisEvent{Which: 3, Axis: 0, Value: 1000}
	out, ok := translate(ev)
	require.True(t, ok)
	require.Equal(t, input.KindControllerAxis, out.Kind)
	require.EqualValues(t, 3, out.ControllerWhich)
	require.Equal(t, int16(1000), out.AxisValue)
}

func TestTranslateControllerDeviceAddedAndRemoved(t *testing.T) {
	added, ok := translate(&sdl.ControllerDeviceEvent{Type: sdl.CONTROLLERDEVICEADDED, Which: 2})
	require.True(t, ok)
	require.Equal(t, input.KindControllerDeviceAdded, added.Kind)
	require.EqualValues(t, 2, added.ControllerDeviceIndex)

	removed, ok := translate(&sdl.ControllerDeviceEvent{Type: sdl.CONTROLLERDEVICEREMOVED, Which: 2})
	require.True(t, ok)
	require.Equal(t, input.KindControllerDeviceRemoved, removed.Kind)
	require.EqualValues(t, 2, removed.ControllerWhich)
}

func TestTranslateDropFile(t *testing.T) {
	out, ok := translate(&sdl.DropEvent{Type: sdl.DROPFILE, File: "/tmp/app.apk"})
	require.True(t, ok)
	require.Equal(t, input.KindDropFile, out.Kind)
	require.Equal(t, "/tmp/app.apk", out.Path)
}

func TestTranslateUnknownEventIgnored(t *testing.T) {
	_, ok := translate(&sdl.WindowEvent{})
	require.False(t, ok)
}

func TestTextInputStringStopsAtNUL(t *testing.T) {
	var raw [32]byte
	copy(raw[:], "hi")
	require.Equal(t, "hi", textInputString(raw))
}
