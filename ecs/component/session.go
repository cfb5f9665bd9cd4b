package component

import "time"

type SessionState int

const (
	SessionPlaying SessionState = iota
	SessionGameOver
)

func (s SessionState) String() string {
	switch s {
	case SessionPlaying:
		return "playing"
	case SessionGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Session is the per-play-through state shared by the gameplay systems.
type Session struct {
	State SessionState
	// Now is the session clock, advanced once per tick while playing.
	Now time.Duration
	// LastFired is the earliest session time at which the next shot may
	// be taken; a shot requires Now > LastFired.
	LastFired     time.Duration
	GameOverCount int
}

func (s *Session) Terminal() bool {
	return s != nil && s.State == SessionGameOver
}

// EnterGameOver moves the session into the terminal state. Only the first
// call reports true.
func (s *Session) EnterGameOver() bool {
	if s == nil || s.State == SessionGameOver {
		return false
	}
	s.State = SessionGameOver
	s.GameOverCount++
	return true
}

var SessionComponent = NewComponent[Session]()
