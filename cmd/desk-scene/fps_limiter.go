package main

import "time"

const spinWindow = 200 * time.Microsecond

// FPSLimiter paces the loop when vsync is off
type FPSLimiter struct {
	limit int
	next  time.Time
}

// NewFPSLimiter creates a limiter capped at limit frames per second. Zero disables it.
func NewFPSLimiter(limit int) *FPSLimiter {
	return &FPSLimiter{limit: limit}
}

// Wait sleeps until the next frame is due, spinning for the last few microseconds.
func (f *FPSLimiter) Wait() {
	if f.limit <= 0 {
		return
	}
	frame := time.Second / time.Duration(f.limit)

	if f.next.IsZero() {
		f.next = time.Now().Add(frame)
	} else {
		f.next = f.next.Add(frame)
	}

	for {
		remaining := time.Until(f.next)
		if remaining <= 0 {
			break
		}
		if remaining > spinWindow {
			time.Sleep(remaining - spinWindow)
		}
	}

	// Resync after a hitch instead of rendering a burst of catch-up frames
	if late := -time.Until(f.next); late > frame {
		f.next = time.Now().Add(frame)
	}
}
