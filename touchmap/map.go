// Package touchmap implements the declarative gamepad-to-touch binding of
// spec.md §4.4 (loader) and §4.5 (the engine that drives virtual touch
// pointers from gamepad axes/buttons). JSON decoding is deliberately
// stdlib (see SPEC_FULL.md §3/DESIGN.md for why); the sorted-slice binary
// search dispatch is grounded on the teacher's lookup-table discipline in
// adb/device.go's buildADBArgs.
package touchmap

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/yourname/scrcpy-go/geom"
)

// BaseFingerID is the first finger ID allocated to touchmap controls
// (spec.md §6 "BASE_FINGER_ID = 100"). IDs below this are reserved for the
// virtual-finger engine (see package vfinger).
const BaseFingerID uint64 = 100

// WalkControlDeadzone is the squared-pixel-distance deadzone of spec.md
// §4.5/§9: "d2 < 25 compares squared pixel distance to a constant 25, i.e.
// radius <= ~5 pixels. This is independent of the walk radius."
const WalkControlDeadzone int64 = 25

const sint16Max = 32767

// WalkControl is the simulated analog joystick of spec.md §3.
type WalkControl struct {
	Center     geom.Point
	Radius     int32
	CurrentPos geom.Point
	TouchDown  bool
	FingerID   uint64
}

// TouchButton is a tap or skill-casting control of spec.md §3.
type TouchButton struct {
	Center     geom.Point
	Radius     int32
	CurrentPos geom.Point
	TouchDown  bool
	FingerID   uint64
	Button     uint8
	IsSkill    bool
}

// Map is the exclusively-owned, whole-replacement touchmap of spec.md §3.
// Buttons is kept sorted ascending by Button to permit binary search.
type Map struct {
	Walk    WalkControl
	Buttons []TouchButton

	// walkAxis/rightAxis hold the last raw value seen for each component
	// of the left and right sticks, since ControllerAxis events arrive one
	// component at a time but the walk/aim algorithms need both.
	walkAxis  [2]int16
	rightAxis [2]int16
}

// Load parses path per the schema of spec.md §4.4 and constructs a fully
// independent Map. Per the redesign recommended in spec.md §9 ("parse
// first, replace on success"), Load never touches any existing touchmap —
// callers swap it in only once Load returns a nil error.
func Load(path string) (*Map, error) {
	if path == "" {
		return nil, fmt.Errorf("touchmap: empty path")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("touchmap: open %s: %w", path, err)
	}
	var doc jsonFile
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("touchmap: parse %s: %w", path, err)
	}
	if doc.Mappings.WalkControl == nil {
		return nil, fmt.Errorf("touchmap: %s: missing mappings.walk_control", path)
	}

	nextFingerID := BaseFingerID
	m := &Map{
		Walk: WalkControl{
			Center:   geom.Point{X: doc.Mappings.WalkControl.Center.X, Y: doc.Mappings.WalkControl.Center.Y},
			Radius:   doc.Mappings.WalkControl.Radius,
			FingerID: nextFingerID,
		},
	}
	m.Walk.CurrentPos = m.Walk.Center
	nextFingerID++

	total := len(doc.Mappings.ButtonMappings) + len(doc.Mappings.SkillCasting)
	m.Buttons = make([]TouchButton, 0, total)

	for _, b := range doc.Mappings.ButtonMappings {
		center := geom.Point{X: b.Touch.X, Y: b.Touch.Y}
		m.Buttons = append(m.Buttons, TouchButton{
			Center:     center,
			Radius:     0,
			CurrentPos: center,
			FingerID:   nextFingerID,
			Button:     buttonValueFromName(b.Button),
			IsSkill:    false,
		})
		nextFingerID++
	}
	for _, s := range doc.Mappings.SkillCasting {
		center := geom.Point{X: s.Center.X, Y: s.Center.Y}
		m.Buttons = append(m.Buttons, TouchButton{
			Center:     center,
			Radius:     s.Radius,
			CurrentPos: center,
			FingerID:   nextFingerID,
			Button:     buttonValueFromName(s.Button),
			IsSkill:    true,
		})
		nextFingerID++
	}

	sort.SliceStable(m.Buttons, func(i, j int) bool {
		return m.Buttons[i].Button < m.Buttons[j].Button
	})

	return m, nil
}

// findButton binary-searches the sorted Buttons slice for an exact button
// code match, returning its index or -1 (spec.md §8 invariant 5: "for all
// i<j, buttons[i].button <= buttons[j].button").
func (m *Map) findButton(code uint8) int {
	lo, hi := 0, len(m.Buttons)
	for lo < hi {
		mid := (lo + hi) / 2
		switch {
		case m.Buttons[mid].Button == code:
			return mid
		case m.Buttons[mid].Button < code:
			lo = mid + 1
		default:
			hi = mid
		}
	}
	return -1
}
