package main

import (
	"math"
	"strconv"
	"testing"
	"time"

	"clock3d/internal/clock"

	"github.com/stretchr/testify/assert"
)

func TestParseTime(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*3600)
	now := time.Date(2024, 5, 6, 23, 30, 0, 0, time.UTC) // already May 7th in loc

	tests := []struct {
		in   string
		want time.Time
	}{
		{"0", time.Unix(0, 0)},
		{"-1.5", time.Unix(-2, 500_000_000)},
		{"2024-01-02T03:04:05Z", time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)},
		{"06:07:08", time.Date(2024, 5, 7, 6, 7, 8, 0, loc)},
		{" 21:45 ", time.Date(2024, 5, 7, 21, 45, 0, 0, loc)},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := parseTime(tt.in, loc, now)
			assert.True(t, ok)
			assert.True(t, tt.want.Equal(got), "got %v want %v", got, tt.want)
		})
	}
}

func TestParseTimeFallsBack(t *testing.T) {
	for _, in := range []string{"", "noon", "25:00", "NaN", strconv.FormatFloat(math.Inf(1), 'f', -1, 64)} {
		got, ok := parseTime(in, nil, time.Now())
		assert.False(t, ok, in)
		assert.True(t, got.IsZero(), in)
	}
	assert.True(t, parseAt("garbage", time.UTC).IsZero())
}

func TestParsedTimeDrivesClock(t *testing.T) {
	got, ok := parseTime("06:00:00", time.UTC, time.Now())
	assert.True(t, ok)
	assert.Equal(t, 6*3600, clock.SecondsOfDay(got, true, nil))
}
