package vfinger

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yourname/scrcpy-go/control"
	"github.com/yourname/scrcpy-go/geom"
)

func TestCtrlClickReflectsAboutCenter(t *testing.T) {
	// Scenario 4 from spec.md §8.
	e := New(false)
	frame := geom.Size{W: 400, H: 600}

	down := e.Press(true, false, frame, geom.Point{X: 200, Y: 300})
	require.Equal(t, control.ActionDown, down.Action)
	require.Equal(t, geom.Point{X: 200, Y: 300}, down.Point)
	require.True(t, e.Down())

	move := e.Move(frame, geom.Point{X: 250, Y: 300})
	require.Equal(t, control.ActionMove, move.Action)
	require.Equal(t, geom.Point{X: 150, Y: 300}, move.Point)

	up := e.Release(frame, geom.Point{X: 250, Y: 300})
	require.Equal(t, control.ActionUp, up.Action)
	require.Equal(t, geom.Point{X: 150, Y: 300}, up.Point)
	require.False(t, e.Down())
}

func TestShiftOnlyInvertsX(t *testing.T) {
	e := New(false)
	frame := geom.Size{W: 400, H: 600}
	down := e.Press(false, true, frame, geom.Point{X: 100, Y: 50})
	require.Equal(t, geom.Point{X: 300, Y: 50}, down.Point)
}

func TestVirtualMouseIDWhenSecondaryClickBound(t *testing.T) {
	e := New(true)
	require.Equal(t, PointerIDVirtualMouse, e.pointerID)
	e2 := New(false)
	require.Equal(t, PointerIDVirtualFinger, e2.pointerID)
}

func TestReleaseIgnoresModifierStateAtRelease(t *testing.T) {
	e := New(false)
	frame := geom.Size{W: 200, H: 200}
	e.Press(true, false, frame, geom.Point{X: 50, Y: 50})
	// At release time modifiers are no longer held; invert flags from
	// Press must still apply.
	up := e.Release(frame, geom.Point{X: 60, Y: 60})
	require.Equal(t, geom.Point{X: 140, Y: 140}, up.Point)
}
