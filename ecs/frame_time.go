package ecs

import "time"

// FrameTime is the resource a FrameClock keeps current. Schedule.Loop ticks
// one before every run.
type FrameTime struct {
	// Delta is the time since the previous run, zero on the first.
	Delta time.Duration
	// Elapsed is the time since the first frame.
	Elapsed time.Duration
	// Frame counts runs, starting at 1.
	Frame uint64
}

// Seconds returns Delta in seconds.
func (f FrameTime) Seconds() float64 {
	return f.Delta.Seconds()
}

// FrameClock advances a world's FrameTime resource. Schedule.Loop uses one;
// hosts that drive their own loop can too.
type FrameClock struct {
	start time.Time
	last  time.Time
	frame uint64
}

// Tick records a frame at now and stores the resulting FrameTime in w.
func (c *FrameClock) Tick(w *World, now time.Time) FrameTime {
	if c.frame == 0 {
		c.start = now
		c.last = now
	}
	c.frame++
	ft := FrameTime{Delta: now.Sub(c.last), Elapsed: now.Sub(c.start), Frame: c.frame}
	c.last = now
	InsertResource(w, ft)
	return ft
}
