package input

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/yourname/scrcpy-go/config"
	"github.com/yourname/scrcpy-go/control"
	"github.com/yourname/scrcpy-go/geom"
	"github.com/yourname/scrcpy-go/keyproc"
)

// --- fakes ---

type fakeQueue struct {
	pushed []control.Message
	full   bool
}

func (q *fakeQueue) Push(msg control.Message) bool {
	if q.full {
		return false
	}
	q.pushed = append(q.pushed, msg)
	return true
}

type fakeScreen struct {
	frame        geom.Size
	orientation  geom.Orientation
	paused       bool
	video        bool
	windowOK     bool
	windowPoint  geom.Point
	fullscreened bool
	resizedFit   bool
	resizedPix   bool
	fpsToggled   bool
}

func (s *fakeScreen) FrameSize() geom.Size          { return s.frame }
func (s *fakeScreen) Orientation() geom.Orientation { return s.orientation }
func (s *fakeScreen) Rotate(degrees int)            {}
func (s *fakeScreen) SetOrientation(o geom.Orientation) {
	s.orientation = o
}
func (s *fakeScreen) Paused() bool { return s.paused }
func (s *fakeScreen) SetPaused(paused, hide bool) {
	s.paused = paused
}
func (s *fakeScreen) VideoPlaying() bool      { return s.video }
func (s *fakeScreen) ToggleFullscreen()       { s.fullscreened = !s.fullscreened }
func (s *fakeScreen) ResizeToFit()            { s.resizedFit = true }
func (s *fakeScreen) ResizeToPixelPerfect()   { s.resizedPix = true }
func (s *fakeScreen) ToggleFPSCounter()       { s.fpsToggled = !s.fpsToggled }
func (s *fakeScreen) WindowToFrame(p geom.Point) (geom.Point, bool) {
	return s.windowPoint, s.windowOK
}

type fakeKeyProc struct {
	keys    []keyproc.KeyEvent
	texts   []string
	awaited []uint64
}

func (p *fakeKeyProc) ProcessKey(ev keyproc.KeyEvent) { p.keys = append(p.keys, ev) }
func (p *fakeKeyProc) ProcessText(text string)        { p.texts = append(p.texts, text) }
func (p *fakeKeyProc) AwaitClipboardSequence(seq uint64) {
	p.awaited = append(p.awaited, seq)
}

type fakeClipboard struct {
	text string
	err  error
}

func (c *fakeClipboard) ReadHost() (string, error) { return c.text, c.err }

func newTestManager(scr *fakeScreen, q *fakeQueue, kp *fakeKeyProc, opts ...Option) *Manager {
	cfg, err := config.New()
	if err != nil {
		panic(err)
	}
	base := []Option{WithController(q), WithKeyProcessor(kp)}
	return NewManager(scr, cfg, append(base, opts...)...)
}

// --- scenario 5: shortcut-mod = LCTRL, "n" notifications/settings/collapse ---

func TestScenario5NotificationsThenSettingsThenCollapse(t *testing.T) {
	scr := &fakeScreen{video: true}
	q := &fakeQueue{}
	kp := &fakeKeyProc{}
	m := newTestManager(scr, q, kp)

	lctrl := uint16(sdl.KMOD_LCTRL)
	m.HandleEvent(Event{Kind: KindKeyDown, Keycode: int32(sdl.K_n), Mod: lctrl})
	require.Len(t, q.pushed, 1)
	require.Equal(t, control.ExpandNotificationPanelMessage{}, q.pushed[0])

	// Press again without releasing mods: key_repeat_count > 0 now.
	m.HandleEvent(Event{Kind: KindKeyDown, Keycode: int32(sdl.K_n), Mod: lctrl})
	require.Len(t, q.pushed, 2)
	require.Equal(t, control.ExpandSettingsPanelMessage{}, q.pushed[1])

	// Shift+n while LCTRL held: collapse panels.
	m.HandleEvent(Event{Kind: KindKeyDown, Keycode: int32(sdl.K_n), Mod: lctrl | uint16(sdl.KMOD_LSHIFT)})
	require.Len(t, q.pushed, 3)
	require.Equal(t, control.CollapsePanelsMessage{}, q.pushed[2])

	// None of this ever reached the key processor.
	require.Empty(t, kp.keys)
}

// --- scenario 6: Ctrl+V clipboard autosync with async_paste ---

type fakeAsyncKeyProc struct {
	fakeKeyProc
}

func TestScenario6ClipboardAutosyncWithAsyncPaste(t *testing.T) {
	scr := &fakeScreen{video: true}
	q := &fakeQueue{}
	kp := &fakeAsyncKeyProc{}
	clip := &fakeClipboard{text: "hello"}
	cfg, err := config.New(config.WithShortcutMods(config.ModLAlt), config.WithClipboardAutosync(true))
	require.NoError(t, err)
	m := NewManager(scr, cfg, WithController(q), WithKeyProcessor(kp), WithClipboard(clip))

	m.HandleEvent(Event{Kind: KindKeyDown, Keycode: int32(sdl.K_v), Mod: uint16(sdl.KMOD_LCTRL)})

	require.Len(t, q.pushed, 1)
	msg, ok := q.pushed[0].(control.SetClipboardMessage)
	require.True(t, ok)
	require.Equal(t, uint64(1), msg.Sequence)
	require.False(t, msg.Paste)
	require.Equal(t, []uint64{1}, kp.awaited)
	require.Equal(t, uint64(2), m.nextSequence)
}

func TestClipboardAutosyncPushFailureLeavesSequenceAndNoWait(t *testing.T) {
	scr := &fakeScreen{video: true}
	q := &fakeQueue{full: true}
	kp := &fakeAsyncKeyProc{}
	clip := &fakeClipboard{text: "hello"}
	cfg, err := config.New(config.WithShortcutMods(config.ModLAlt), config.WithClipboardAutosync(true))
	require.NoError(t, err)
	m := NewManager(scr, cfg, WithController(q), WithKeyProcessor(kp), WithClipboard(clip))

	m.HandleEvent(Event{Kind: KindKeyDown, Keycode: int32(sdl.K_v), Mod: uint16(sdl.KMOD_LCTRL)})

	require.Empty(t, kp.awaited)
	require.Equal(t, uint64(1), m.nextSequence)
}

// --- property: a fired shortcut never reaches process_key ---

func TestArmedShortcutNeverReachesKeyProcessor(t *testing.T) {
	scr := &fakeScreen{video: true}
	q := &fakeQueue{}
	kp := &fakeKeyProc{}
	m := newTestManager(scr, q, kp)

	m.HandleEvent(Event{Kind: KindKeyDown, Keycode: int32(sdl.K_z), Mod: uint16(sdl.KMOD_LCTRL)})
	require.Empty(t, kp.keys)
	require.True(t, scr.paused)
}

func TestPauseShortcutRequiresVideoPlaying(t *testing.T) {
	scr := &fakeScreen{video: false}
	q := &fakeQueue{}
	kp := &fakeKeyProc{}
	m := newTestManager(scr, q, kp)

	m.HandleEvent(Event{Kind: KindKeyDown, Keycode: int32(sdl.K_z), Mod: uint16(sdl.KMOD_LCTRL)})
	require.False(t, scr.paused)
}

func TestVolumeShortcutRepeatsAndIgnoresPause(t *testing.T) {
	scr := &fakeScreen{video: true, paused: true}
	q := &fakeQueue{}
	kp := &fakeKeyProc{}
	m := newTestManager(scr, q, kp)

	lctrl := uint16(sdl.KMOD_LCTRL)
	m.HandleEvent(Event{Kind: KindKeyDown, Keycode: int32(sdl.K_DOWN), Mod: lctrl})
	m.HandleEvent(Event{Kind: KindKeyDown, Keycode: int32(sdl.K_DOWN), Mod: lctrl, HostRepeat: true})

	require.Len(t, kp.keys, 2)
	require.Equal(t, int32(androidKeycodeVolumeDown), kp.keys[0].Keycode)
	require.Equal(t, int32(androidKeycodeVolumeDown), kp.keys[1].Keycode)
}

func TestUnarmedKeyForwardsToKeyProcessor(t *testing.T) {
	scr := &fakeScreen{video: true}
	q := &fakeQueue{}
	kp := &fakeKeyProc{}
	m := newTestManager(scr, q, kp)

	m.HandleEvent(Event{Kind: KindKeyDown, Keycode: int32(sdl.K_a)})
	require.Len(t, kp.keys, 1)
	require.Equal(t, int32(sdl.K_a), kp.keys[0].Keycode)
}

func TestTextInputSuppressedUnderShortcutMod(t *testing.T) {
	scr := &fakeScreen{video: true}
	q := &fakeQueue{}
	kp := &fakeKeyProc{}
	m := newTestManager(scr, q, kp)

	m.HandleEvent(Event{Kind: KindTextInput, Text: "x", Mod: uint16(sdl.KMOD_LCTRL)})
	require.Empty(t, kp.texts)

	m.HandleEvent(Event{Kind: KindTextInput, Text: "x"})
	require.Equal(t, []string{"x"}, kp.texts)
}

func TestHomeShortcutRoutesThroughKeyProcessor(t *testing.T) {
	scr := &fakeScreen{video: true}
	q := &fakeQueue{}
	kp := &fakeKeyProc{}
	m := newTestManager(scr, q, kp)

	m.HandleEvent(Event{Kind: KindKeyDown, Keycode: int32(sdl.K_h), Mod: uint16(sdl.KMOD_LCTRL)})
	require.Len(t, kp.keys, 1)
	require.Equal(t, int32(androidKeycodeHome), kp.keys[0].Keycode)
	require.True(t, kp.keys[0].Down)
}

func TestDoubleClickOutsideFrameResizesToFit(t *testing.T) {
	scr := &fakeScreen{video: true, windowOK: false}
	q := &fakeQueue{}
	kp := &fakeKeyProc{}
	m := newTestManager(scr, q, kp)

	m.HandleEvent(Event{Kind: KindMouseButton, Button: sdl.BUTTON_LEFT, ButtonDown: true, Clicks: 2, X: 10, Y: 10})
	require.True(t, scr.resizedFit)
}

func TestMouseBackBindingPushesBackOrScreenOn(t *testing.T) {
	scr := &fakeScreen{video: true}
	q := &fakeQueue{}
	kp := &fakeKeyProc{}
	m := newTestManager(scr, q, kp, func(mm *Manager) {
		mm.cfg.MouseBindings[config.ButtonRight] = config.BindingBack
	})

	m.HandleEvent(Event{Kind: KindMouseButton, Button: sdl.BUTTON_RIGHT, ButtonDown: true})
	require.Len(t, q.pushed, 1)
	require.Equal(t, control.BackOrScreenOnMessage{Down: true}, q.pushed[0])
}
