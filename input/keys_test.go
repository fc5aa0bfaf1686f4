package input

import "testing"

type keyEvent struct {
	key   Key
	state ButtonState
}

func TestKeyStateHandleKey(t *testing.T) {
	tests := []struct {
		name string

		events []keyEvent

		wantPressed      []Key
		wantJustPressed  []Key
		wantJustReleased []Key
	}{
		{
			name:            "single press",
			events:          []keyEvent{{KeyA, Pressed}},
			wantPressed:     []Key{KeyA},
			wantJustPressed: []Key{KeyA},
		},
		{
			name: "auto-repeat does not re-enter just pressed",
			events: []keyEvent{
				{KeyA, Pressed},
				{KeyA, Pressed},
				{KeyA, Pressed},
			},
			wantPressed:     []Key{KeyA},
			wantJustPressed: []Key{KeyA},
		},
		{
			name: "press then release in one frame",
			events: []keyEvent{
				{KeyB, Pressed},
				{KeyB, Released},
			},
			wantJustPressed:  []Key{KeyB},
			wantJustReleased: []Key{KeyB},
		},
		{
			name: "release removes from pressed",
			events: []keyEvent{
				{KeyA, Pressed},
				{KeyB, Pressed},
				{KeyA, Released},
			},
			wantPressed:      []Key{KeyB},
			wantJustPressed:  []Key{KeyA, KeyB},
			wantJustReleased: []Key{KeyA},
		},
		{
			name: "independent keys",
			events: []keyEvent{
				{KeyW, Pressed},
				{KeySpace, Pressed},
			},
			wantPressed:     []Key{KeyW, KeySpace},
			wantJustPressed: []Key{KeyW, KeySpace},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k := newKeyState()

			for _, ev := range tt.events {
				k.HandleKey(ev.key, ev.state)
			}

			checkKeys(t, "KeyDown", k.KeyDown, tt.wantPressed)
			checkKeys(t, "KeyJustPressed", k.KeyJustPressed, tt.wantJustPressed)
			checkKeys(t, "KeyJustReleased", k.KeyJustReleased, tt.wantJustReleased)
		})
	}
}

func TestKeyStateEndFrame(t *testing.T) {
	k := newKeyState()

	k.HandleKey(KeyA, Pressed)
	k.HandleKey(KeyB, Pressed)
	k.HandleKey(KeyB, Released)

	k.EndFrame()

	if !k.KeyDown(KeyA) {
		t.Errorf("KeyDown(KeyA) = false after EndFrame, held keys must carry over")
	}

	for _, key := range []Key{KeyA, KeyB} {
		if k.KeyJustPressed(key) {
			t.Errorf("KeyJustPressed(%v) = true after EndFrame", key)
		}

		if k.KeyJustReleased(key) {
			t.Errorf("KeyJustReleased(%v) = true after EndFrame", key)
		}
	}

	// a repeat press arriving in the next frame is not an edge
	k.HandleKey(KeyA, Pressed)

	if k.KeyJustPressed(KeyA) {
		t.Errorf("KeyJustPressed(KeyA) = true for a repeat press of a held key")
	}
}

func TestKeyStateEndFrameIdempotent(t *testing.T) {
	k := newKeyState()

	k.HandleKey(KeyA, Pressed)
	k.EndFrame()
	k.EndFrame()

	if !k.KeyDown(KeyA) {
		t.Errorf("KeyDown(KeyA) = false, repeated EndFrame must not touch held keys")
	}
}

// Checks that just-pressed implies down and that a key is never just-pressed
// and just-released for the same transition.
func TestKeyStateInvariants(t *testing.T) {
	k := newKeyState()

	events := []keyEvent{
		{KeyA, Pressed},
		{KeyA, Pressed},
		{KeyB, Pressed},
		{KeyB, Released},
		{KeyC, Pressed},
	}

	for _, ev := range events {
		k.HandleKey(ev.key, ev.state)
	}

	for _, key := range []Key{KeyA, KeyB, KeyC, KeyD} {
		if k.KeyJustReleased(key) && k.KeyDown(key) {
			t.Errorf("key %v is both just released and down", key)
		}

		if k.KeyJustPressed(key) && !k.KeyDown(key) && !k.KeyJustReleased(key) {
			t.Errorf("key %v is just pressed but not down", key)
		}
	}
}

func checkKeys(t *testing.T, what string, query func(Key) bool, want []Key) {
	t.Helper()

	wantSet := map[Key]bool{}
	for _, key := range want {
		wantSet[key] = true
	}

	for _, key := range []Key{KeyA, KeyB, KeyC, KeyW, KeySpace} {
		if got := query(key); got != wantSet[key] {
			t.Errorf("%s(%v) = %v, want %v", what, key, got, wantSet[key])
		}
	}
}
