package system

import (
	"time"

	"github.com/milk9111/waveshooter/ecs"
)

// ClockSystem advances the session clock by one fixed tick.
type ClockSystem struct {
	step time.Duration
}

func NewClockSystem(tps int) *ClockSystem {
	if tps <= 0 {
		tps = 60
	}
	return &ClockSystem{step: time.Second / time.Duration(tps)}
}

func (s *ClockSystem) Step() time.Duration {
	return s.step
}

func (s *ClockSystem) Update(w *ecs.World) {
	session, ok := sessionOf(w)
	if !ok || session.Terminal() {
		return
	}
	session.Now += s.step
}
