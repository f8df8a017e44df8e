// Package format renders durations for display.
package format

import (
	"fmt"
	"strings"
	"time"
)

// Clock formats d as MM:SS, or HH:MM:SS once it reaches an hour. With
// centis set a two digit centisecond suffix is appended. Negative values
// render as zero.
func Clock(d time.Duration, centis bool) string {
	if d < 0 {
		d = 0
	}
	h := int(d / time.Hour)
	m := int(d % time.Hour / time.Minute)
	s := int(d % time.Minute / time.Second)
	cs := int(d % time.Second / (10 * time.Millisecond))

	var out string
	if h > 0 {
		out = fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	} else {
		out = fmt.Sprintf("%02d:%02d", m, s)
	}
	if centis {
		out += fmt.Sprintf(".%02d", cs)
	}
	return out
}

// ClockHMS always formats d as HH:MM:SS.
func ClockHMS(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	h := int(d / time.Hour)
	m := int(d % time.Hour / time.Minute)
	s := int(d % time.Minute / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// Words formats d as a short phrase such as "1h 5m", "2m 3s" or "45s".
// Seconds are dropped once the duration reaches an hour.
func Words(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	d = d.Truncate(time.Second)
	h := int(d / time.Hour)
	m := int(d % time.Hour / time.Minute)
	s := int(d % time.Minute / time.Second)

	var parts []string
	switch {
	case h > 0:
		parts = append(parts, fmt.Sprintf("%dh", h))
		if m > 0 {
			parts = append(parts, fmt.Sprintf("%dm", m))
		}
	case m > 0:
		parts = append(parts, fmt.Sprintf("%dm", m))
		if s > 0 {
			parts = append(parts, fmt.Sprintf("%ds", s))
		}
	default:
		parts = append(parts, fmt.Sprintf("%ds", s))
	}
	return strings.Join(parts, " ")
}

// HourMinute formats a wall clock time as HH:MM in the local zone.
func HourMinute(t time.Time) string {
	if t.IsZero() {
		return "..."
	}
	return t.Local().Format("15:04")
}

// ZoneName returns the abbreviation of the local zone at t, or "Local".
func ZoneName(t time.Time) string {
	name, _ := t.Local().Zone()
	if name == "" {
		return "Local"
	}
	return name
}
