// Package gamepad manages the fixed-size controller slot array of spec.md
// §4.5 "Controller add/remove", generalized from the teacher's
// internal/input/touch.go fixed-capacity touch-slot bookkeeping
// (touchSlotUsed [maxPointers]bool) onto physical game controllers.
package gamepad

import "fmt"

// MaxControllers bounds the number of simultaneously attached controllers
// (spec.md §6: "MAX_GAME_CONTROLLERS implementation-chosen, small (e.g. 4)").
const MaxControllers = 4

// Handle is an opaque reference to an open controller device.
type Handle interface {
	InstanceID() int32
	Close()
}

// Opener abstracts the platform call that opens a controller by its
// currently-connected device index and returns a Handle. SDLOpener (in
// sdl_gamepad.go) is the concrete implementation; tests use a fake.
type Opener interface {
	Open(deviceIndex int32) (Handle, error)
}

// Manager owns the fixed-size controller slot array.
type Manager struct {
	opener Opener
	slots  [MaxControllers]Handle
}

// NewManager creates a controller slot manager backed by opener.
func NewManager(opener Opener) *Manager {
	return &Manager{opener: opener}
}

// Add opens deviceIndex and assigns it a free slot. Overflow beyond
// MaxControllers logs (via the returned error) and drops, per spec.md §4.5.
func (m *Manager) Add(deviceIndex int32) (Handle, error) {
	for i, h := range m.slots {
		if h == nil {
			handle, err := m.opener.Open(deviceIndex)
			if err != nil {
				return nil, fmt.Errorf("gamepad: open device %d: %w", deviceIndex, err)
			}
			m.slots[i] = handle
			return handle, nil
		}
	}
	return nil, fmt.Errorf("gamepad: no free slot (max %d controllers)", MaxControllers)
}

// Remove looks up the slot by instance ID, closes the handle, and frees it.
// Returns false if no slot held that instance ID.
func (m *Manager) Remove(instanceID int32) bool {
	for i, h := range m.slots {
		if h != nil && h.InstanceID() == instanceID {
			h.Close()
			m.slots[i] = nil
			return true
		}
	}
	return false
}

// Count returns how many slots are currently occupied.
func (m *Manager) Count() int {
	n := 0
	for _, h := range m.slots {
		if h != nil {
			n++
		}
	}
	return n
}

// Close closes every open controller, e.g. at InputManager shutdown.
func (m *Manager) Close() {
	for i, h := range m.slots {
		if h != nil {
			h.Close()
			m.slots[i] = nil
		}
	}
}
