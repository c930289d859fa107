package audio

// Event is what a change of displayed time should sound like.
type Event struct {
	Tick    bool
	Strikes int
}

// Schedule turns successive displayed times into tick and chime events.
// The first observed time only primes it.
type Schedule struct {
	last int
}

func NewSchedule() Schedule {
	return Schedule{last: -1}
}

// Advance records secondsOfDay. A tick is due whenever the displayed second
// changes; entering a new hour strikes its 12-hour count (12 at noon and
// midnight), also when a slow frame skips the full hour itself.
func (s *Schedule) Advance(secondsOfDay int) Event {
	prev := s.last
	s.last = secondsOfDay
	if prev < 0 || prev == secondsOfDay {
		return Event{}
	}

	ev := Event{Tick: true}
	if prev/3600 != secondsOfDay/3600 {
		h := (secondsOfDay / 3600) % 12
		if h == 0 {
			h = 12
		}
		ev.Strikes = h
	}
	return ev
}
