package control

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yourname/scrcpy-go/geom"
)

func TestTouchEventMessageEncodeLayout(t *testing.T) {
	msg := TouchEventMessage{
		Action:     ActionDown,
		ScreenSize: geom.Size{W: 1080, H: 1920},
		Point:      geom.Point{X: 100, Y: 200},
		PointerID:  100,
		Pressure:   1,
	}
	buf := msg.Encode()
	require.Len(t, buf, 32)
	require.Equal(t, byte(KindInjectTouchEvent), buf[0])
	require.Equal(t, byte(ActionDown), buf[1])
	require.Equal(t, uint16(0xffff), be16(buf[22:24]))
}

func TestPressureFixedPointClamps(t *testing.T) {
	require.Equal(t, uint16(0), pressureFixedPoint(-1))
	require.Equal(t, uint16(0xffff), pressureFixedPoint(2))
	require.Equal(t, uint16(0xffff), pressureFixedPoint(1))
}

func be16(b []byte) uint16 {
	return uint16(b[0])<<8 | uint16(b[1])
}

type recordingQueue struct {
	pushed  []Message
	accepts bool
}

func (q *recordingQueue) Push(m Message) bool {
	if !q.accepts {
		return false
	}
	q.pushed = append(q.pushed, m)
	return true
}

func TestQueueDropOnBackpressure(t *testing.T) {
	q := &recordingQueue{accepts: false}
	ok := q.Push(RotateDeviceMessage{})
	require.False(t, ok)
	require.Empty(t, q.pushed)
}
