package input

import (
	"log/slog"
	"sync"
)

// KeyState tracks which keys are held and which keys changed during the
// current frame.
type KeyState struct {
	mu sync.Mutex

	// keys that are currently held down
	pressed map[Key]bool

	// keys that went down since the last call to EndFrame()
	justPressed map[Key]bool

	// keys that went up since the last call to EndFrame()
	justReleased map[Key]bool
}

var keys = newKeyState()

func newKeyState() *KeyState {
	return &KeyState{
		pressed:      map[Key]bool{},
		justPressed:  map[Key]bool{},
		justReleased: map[Key]bool{},
	}
}

// Keys returns the process-wide keyboard latch.
func Keys() *KeyState {
	return keys
}

// HandleKey ingests one keyboard event. A press of a key that is already
// held, as delivered by OS auto-repeat, must not re-enter the just-pressed
// set; only the initial transition counts as an edge.
func (k *KeyState) HandleKey(key Key, state ButtonState) {
	k.mu.Lock()
	defer k.mu.Unlock()

	switch state {
	case Pressed:
		if !k.pressed[key] {
			slog.Debug("Key pressed", slog.String("key", key.String()))
			k.justPressed[key] = true
		}

		k.pressed[key] = true

	case Released:
		delete(k.pressed, key)
		k.justReleased[key] = true
	}
}

// EndFrame clears the just-pressed and just-released sets. Held keys carry
// over into the next frame.
func (k *KeyState) EndFrame() {
	k.mu.Lock()
	defer k.mu.Unlock()

	clear(k.justPressed)
	clear(k.justReleased)
}

// KeyDown reports whether the key is currently held.
func (k *KeyState) KeyDown(key Key) bool {
	k.mu.Lock()
	defer k.mu.Unlock()

	return k.pressed[key]
}

// KeyJustPressed reports whether the key went down during this frame.
func (k *KeyState) KeyJustPressed(key Key) bool {
	k.mu.Lock()
	defer k.mu.Unlock()

	return k.justPressed[key]
}

// KeyJustReleased reports whether the key went up during this frame.
func (k *KeyState) KeyJustReleased(key Key) bool {
	k.mu.Lock()
	defer k.mu.Unlock()

	return k.justReleased[key]
}
