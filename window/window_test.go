package window

import (
	"testing"
	"time"
)

func TestSessionDefaults(t *testing.T) {
	s := Get()

	if w, h := s.Size(); w != 800 || h != 600 {
		t.Errorf("Size() = %dx%d, want 800x600", w, h)
	}

	if got := s.Title(); got != "Kreeda Engine" {
		t.Errorf("Title() = %q, want %q", got, "Kreeda Engine")
	}
}

func TestSessionOverrides(t *testing.T) {
	tests := []struct {
		name string

		width, height int
		title         string

		wantW, wantH int
		wantTitle    string
	}{
		{
			name:  "valid overrides",
			width: 1280, height: 720, title: "Pong",
			wantW: 1280, wantH: 720, wantTitle: "Pong",
		},
		{
			name:  "non-positive size ignored",
			width: 0, height: 720, title: "Pong",
			wantW: 800, wantH: 600, wantTitle: "Pong",
		},
		{
			name:  "negative size ignored",
			width: -1, height: -1, title: "Pong",
			wantW: 800, wantH: 600, wantTitle: "Pong",
		},
		{
			name:  "empty title ignored",
			width: 640, height: 480, title: "",
			wantW: 640, wantH: 480, wantTitle: "Kreeda Engine",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Session{width: defaultWidth, height: defaultHeight, title: defaultTitle}

			s.SetSize(tt.width, tt.height)
			s.SetTitle(tt.title)

			if w, h := s.Size(); w != tt.wantW || h != tt.wantH {
				t.Errorf("Size() = %dx%d, want %dx%d", w, h, tt.wantW, tt.wantH)
			}

			if got := s.Title(); got != tt.wantTitle {
				t.Errorf("Title() = %q, want %q", got, tt.wantTitle)
			}
		})
	}
}

func TestSessionImmutableWhileRunning(t *testing.T) {
	s := &Session{width: defaultWidth, height: defaultHeight, title: defaultTitle}
	s.running = true

	s.SetSize(1280, 720)
	s.SetTitle("Pong")

	if w, h := s.Size(); w != defaultWidth || h != defaultHeight {
		t.Errorf("Size() = %dx%d, want defaults while running", w, h)
	}

	if got := s.Title(); got != defaultTitle {
		t.Errorf("Title() = %q, want default while running", got)
	}
}

func TestFrameStatsObserve(t *testing.T) {
	var fs frameStats

	// with little history the average tracks the last frame directly
	fs.frames = 1
	fs.observe(16 * time.Millisecond)

	if fs.avg != 16*time.Millisecond {
		t.Errorf("avg = %v, want 16ms", fs.avg)
	}

	if got := fs.fps(); got < 62 || got > 63 {
		t.Errorf("fps() = %v, want 62.5", got)
	}

	// with enough history the average only moves a 64th per frame
	fs.frames = 40
	fs.observe(80 * time.Millisecond)

	if fs.avg != 17*time.Millisecond {
		t.Errorf("avg = %v, want 17ms", fs.avg)
	}

	if fs.peak != 80*time.Millisecond {
		t.Errorf("peak = %v, want 80ms", fs.peak)
	}
}

func TestFrameStatsPeakWindow(t *testing.T) {
	var fs frameStats

	// the peak only covers the frames since the last report
	for range reportEvery {
		fs.tick()
	}

	if fs.frames != reportEvery {
		t.Errorf("frames = %d, want %d", fs.frames, reportEvery)
	}

	if fs.peak != 0 {
		t.Errorf("peak = %v after a report, want 0", fs.peak)
	}
}

func TestFrameStatsEmptyFPS(t *testing.T) {
	var fs frameStats

	if got := fs.fps(); got != 0 {
		t.Errorf("fps() = %v without any frames, want 0", got)
	}
}
