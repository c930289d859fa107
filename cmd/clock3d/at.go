package main

import (
	"strconv"
	"strings"
	"time"

	"clock3d/internal/clock"
	"clock3d/internal/utils"
)

// parseAt reads the -at flag. An empty or unreadable value yields the zero
// time, which makes the clock follow the system clock.
func parseAt(s string, loc *time.Location) time.Time {
	t, ok := parseTime(s, loc, time.Now())
	if !ok && s != "" {
		utils.Warn("Cannot parse -at %q, showing the current time", s)
	}
	return t
}

func parseTime(s string, loc *time.Location, now time.Time) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.Local
	}

	if secs, err := strconv.ParseFloat(s, 64); err == nil {
		t, err := clock.TimeFromUnix(secs)
		if err != nil {
			utils.Warn("%v", err)
			return time.Time{}, false
		}
		return t, true
	}

	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}

	now = now.In(loc)
	for _, layout := range []string{"15:04:05", "15:04"} {
		if c, err := time.ParseInLocation(layout, s, loc); err == nil {
			return time.Date(now.Year(), now.Month(), now.Day(), c.Hour(), c.Minute(), c.Second(), 0, loc), true
		}
	}
	return time.Time{}, false
}
