// Package input holds the per-frame input state of the engine.
//
// Two latches, one for the keyboard and one for the pointer, observe the raw
// OS events forwarded by the window event loop. Both distinguish
// level-triggered state ("is the key held?") from edge-triggered state ("did
// the key go down this frame?"). Edge-triggered state is collapsed at the
// frame boundary by EndFrame, so gameplay code must sample it from inside the
// per-frame render hook; sampling after the frame boundary reads empty sets.
//
// The latches live for the whole process and are guarded by independent
// mutexes, so they may be queried from other goroutines, although the
// expected caller is the loop thread itself.
package input

// ButtonState is the transition carried by a key or mouse button event.
type ButtonState uint8

const (
	Released ButtonState = iota
	Pressed
)

// EndFrame collapses the edge-triggered state of both latches. The window
// event loop calls this once per frame, after rendering; everything ingested
// since the previous call belongs to the frame that was just rendered.
func EndFrame() {
	Keys().EndFrame()
	Pointer().EndFrame()
}
