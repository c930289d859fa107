package audio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScheduleFirstCallPrimes(t *testing.T) {
	s := NewSchedule()
	assert.Equal(t, Event{}, s.Advance(3600))
	assert.Equal(t, Event{}, s.Advance(3600))
	assert.Equal(t, Event{Tick: true}, s.Advance(3601))
}

func TestScheduleStrikes(t *testing.T) {
	tests := []struct {
		name    string
		from    int
		to      int
		strikes int
	}{
		{"one", 3599, 3600, 1},
		{"noon", 12*3600 - 1, 12 * 3600, 12},
		{"midnight", 86399, 0, 12},
		{"fifteen", 15*3600 - 1, 15 * 3600, 3},
		{"off hour", 100, 101, 0},
		{"jump onto hour", 7*3600 - 300, 7 * 3600, 7},
		{"stalled across hour", 9*3600 + 3599, 10*3600 + 1, 10},
		{"stalled across midnight", 86398, 2, 12},
		{"within hour", 10*3600 + 1, 10*3600 + 2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSchedule()
			s.Advance(tt.from)
			assert.Equal(t, Event{Tick: true, Strikes: tt.strikes}, s.Advance(tt.to))
		})
	}
}

func TestSilentManager(t *testing.T) {
	am := NewAudioManager("", "", 1)
	assert.True(t, am.Silent())
	assert.NotPanics(t, func() {
		am.Update(10)
		am.Update(11)
		am.Close()
	})
}
