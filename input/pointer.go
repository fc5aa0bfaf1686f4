package input

import "sync"

// MouseButton identifies one of the three tracked pointer buttons.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle

	mouseButtonCount
)

// PointerState tracks the cursor position, scroll deltas and button state of
// the pointer.
type PointerState struct {
	mu sync.Mutex

	x, y         float64
	lastX, lastY float64

	scrollX, scrollY float64

	buttons [mouseButtonCount]bool

	// true once the cursor moved while a button was held; cleared when a
	// button is released
	dragging bool
}

var pointer = &PointerState{}

// Pointer returns the process-wide pointer latch.
func Pointer() *PointerState {
	return pointer
}

// HandleCursorMoved ingests a cursor motion event in window coordinates.
func (p *PointerState) HandleCursorMoved(x, y float64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.lastX = p.x
	p.lastY = p.y
	p.x = x
	p.y = y

	p.dragging = p.anyButtonDown()
}

// HandleButton ingests a button transition. Buttons other than left, right
// and middle are ignored.
func (p *PointerState) HandleButton(button MouseButton, state ButtonState) {
	if button < 0 || button >= mouseButtonCount {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	switch state {
	case Pressed:
		p.buttons[button] = true

	case Released:
		p.buttons[button] = false
		p.dragging = false
	}
}

// HandleScroll ingests a wheel event. Line-based and pixel-based wheels both
// arrive here; the values are stored as delivered, so units differ between
// event sources.
func (p *PointerState) HandleScroll(dx, dy float64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.scrollX = dx
	p.scrollY = dy
}

// EndFrame resets the scroll deltas and folds the current position into the
// previous one, so DX and DY read zero until the next motion event.
func (p *PointerState) EndFrame() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.scrollX = 0
	p.scrollY = 0
	p.lastX = p.x
	p.lastY = p.y
}

// X returns the cursor x position in window coordinates.
func (p *PointerState) X() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.x
}

// Y returns the cursor y position in window coordinates.
func (p *PointerState) Y() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.y
}

// DX returns the horizontal motion since the previous event, computed as
// previous minus current, i.e. pointing opposite the direction of motion.
func (p *PointerState) DX() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.lastX - p.x
}

// DY returns the vertical motion since the previous event, with the same
// orientation as DX.
func (p *PointerState) DY() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.lastY - p.y
}

// ScrollX returns the horizontal wheel delta of this frame.
func (p *PointerState) ScrollX() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.scrollX
}

// ScrollY returns the vertical wheel delta of this frame.
func (p *PointerState) ScrollY() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.scrollY
}

// Dragging reports whether the cursor has moved while a button was held.
func (p *PointerState) Dragging() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.dragging
}

// ButtonDown reports whether the given button is held. Unknown buttons read
// as released.
func (p *PointerState) ButtonDown(button MouseButton) bool {
	if button < 0 || button >= mouseButtonCount {
		return false
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	return p.buttons[button]
}

func (p *PointerState) anyButtonDown() bool {
	for _, down := range p.buttons {
		if down {
			return true
		}
	}

	return false
}
