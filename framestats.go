package stardrift

import (
	"fmt"
	"time"
)

// FrameStats accumulates per-frame render durations for the periodic
// summary the renderer logs.
type FrameStats struct {
	Min    time.Duration
	Max    time.Duration
	Total  time.Duration
	Frames uint64
}

func (s *FrameStats) Record(d time.Duration) {
	if s.Frames == 0 || d < s.Min {
		s.Min = d
	}
	if d > s.Max {
		s.Max = d
	}
	s.Total += d
	s.Frames++
}

// Average returns the mean frame duration, zero when nothing was recorded.
func (s *FrameStats) Average() time.Duration {
	if s.Frames == 0 {
		return 0
	}
	return s.Total / time.Duration(s.Frames)
}

func (s *FrameStats) Summary() string {
	return fmt.Sprintf("frames: %d min: %v max: %v avg: %v", s.Frames, s.Min, s.Max, s.Average())
}
