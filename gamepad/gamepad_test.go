package gamepad

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeHandle struct {
	id     int32
	closed bool
}

func (h *fakeHandle) InstanceID() int32 { return h.id }
func (h *fakeHandle) Close()            { h.closed = true }

type fakeOpener struct{ nextID int32 }

func (o *fakeOpener) Open(deviceIndex int32) (Handle, error) {
	o.nextID++
	return &fakeHandle{id: o.nextID}, nil
}

func TestAddRemoveRoundTrip(t *testing.T) {
	m := NewManager(&fakeOpener{})
	h, err := m.Add(0)
	require.NoError(t, err)
	require.Equal(t, 1, m.Count())

	ok := m.Remove(h.InstanceID())
	require.True(t, ok)
	require.Equal(t, 0, m.Count())
	require.True(t, h.(*fakeHandle).closed)
}

func TestOverflowBeyondMaxControllers(t *testing.T) {
	m := NewManager(&fakeOpener{})
	for i := 0; i < MaxControllers; i++ {
		_, err := m.Add(int32(i))
		require.NoError(t, err)
	}
	_, err := m.Add(99)
	require.Error(t, err)
}

func TestRemoveUnknownInstanceIsNoop(t *testing.T) {
	m := NewManager(&fakeOpener{})
	require.False(t, m.Remove(42))
}
