// Package window owns the single native window and the event loop driving
// the engine. The loop polls OS events, forwards them to the input latches
// and the gpu surface, renders one frame and then closes the frame boundary
// by collapsing edge-triggered input state.
package window

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"
)

const (
	defaultWidth  = 800
	defaultHeight = 600
	defaultTitle  = "Kreeda Engine"
)

// Session is the process-wide window session. It holds the desired geometry
// and title until Run is called; after that the fields are fixed for the
// lifetime of the loop.
type Session struct {
	mu sync.Mutex

	width   int
	height  int
	title   string
	running bool
}

var session = &Session{
	width:  defaultWidth,
	height: defaultHeight,
	title:  defaultTitle,
}

// Get returns the window session singleton.
func Get() *Session {
	return session
}

// SetSize overrides the initial window size. Non-positive dimensions and
// calls made while the loop is running are ignored.
func (s *Session) SetSize(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running || width <= 0 || height <= 0 {
		return
	}

	s.width = width
	s.height = height
}

// SetTitle overrides the window title. Ignored while the loop is running.
func (s *Session) SetTitle(title string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running || title == "" {
		return
	}

	s.title = title
}

// Size returns the configured initial window size.
func (s *Session) Size() (width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.width, s.height
}

// Title returns the configured window title.
func (s *Session) Title() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.title
}

// Run creates the window and the gpu surface and drives the event loop until
// the window is closed or an unrecoverable surface error occurs. It must be
// called from the main goroutine and blocks for the lifetime of the window.
func (s *Session) Run() error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return errors.New("window session already running")
	}

	s.running = true
	width, height, title := s.width, s.height, s.title
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
	}()

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("initialize glfw: %w", err)
	}

	defer glfw.Terminate()

	a, err := newApp(width, height, title)
	if err != nil {
		return err
	}

	defer a.terminate()

	a.run()

	return nil
}
