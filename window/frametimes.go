package window

import (
	"log/slog"
	"time"
)

// frames between two stats log lines; at vsync rates roughly once a second
const reportEvery = 60

// frameStats observes the duration of every loop iteration and periodically
// logs frame rate, smoothed average and the peak since the last report.
type frameStats struct {
	frames uint64
	avg    time.Duration
	peak   time.Duration
	last   time.Time
}

// tick marks the end of a frame. Every reportEvery frames it emits the stats
// log line and starts a new peak window.
func (s *frameStats) tick() {
	now := time.Now()

	if s.frames > 0 {
		s.observe(now.Sub(s.last))
	}

	s.last = now
	s.frames++

	if s.frames%reportEvery == 0 {
		slog.Debug("Frame stats",
			slog.Float64("fps", s.fps()),
			slog.Duration("avg", s.avg),
			slog.Duration("peak", s.peak),
		)

		s.peak = 0
	}
}

func (s *frameStats) observe(d time.Duration) {
	// smoothing window, in frames
	const window = 64

	s.peak = max(s.peak, d)

	if s.frames < window/2 {
		// not enough history for the moving average to be meaningful
		s.avg = d
	} else {
		s.avg = ((window-1)*s.avg + d) / window
	}
}

func (s *frameStats) fps() float64 {
	if s.avg <= 0 {
		return 0
	}

	return 1 / s.avg.Seconds()
}
