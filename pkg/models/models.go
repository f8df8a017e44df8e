package models

import "time"

// Run represents one completed stopwatch interval
type Run struct {
	Start    time.Time     // Wall clock, display only
	End      time.Time     // Wall clock, display only
	Duration time.Duration // Measured on the monotonic clock
}

// StopwatchSnapshot is a read-only view of a stopwatch for renderers
type StopwatchSnapshot struct {
	Elapsed time.Duration
	Running bool
	Runs    []Run
}

// CountdownSnapshot is a read-only view of a countdown for renderers
type CountdownSnapshot struct {
	Initial  time.Duration
	TimeLeft time.Duration
	Running  bool
	Finished bool
}
