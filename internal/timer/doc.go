// Package timer implements the stopwatch and countdown state machines.
//
// Both types are plain values driven by a single caller loop. They perform
// no I/O, never block and do no locking; every mutation happens
// synchronously in the caller's goroutine.
//
// # Clocks
//
// All duration arithmetic uses clock.Clock.Mono. Wall clock timestamps are
// captured only to label stopwatch runs for reporting, so a system clock
// change while a timer is running has no effect on any measured duration.
//
// # Stopwatch
//
// A Stopwatch accumulates running time across start/stop cycles. Each
// completed cycle is appended to Runs exactly once, when it stops. Reset
// zeroes the elapsed time but keeps the run history.
//
// # Countdown
//
// A Countdown subtracts the real elapsed time between consecutive Tick
// calls, so an irregular tick cadence does not cause drift. Pausing clears
// the tick baseline so the paused interval is never subtracted. Reaching
// zero is terminal.
package timer
