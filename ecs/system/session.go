package system

import (
	"github.com/milk9111/waveshooter/ecs"
	"github.com/milk9111/waveshooter/ecs/component"
)

func sessionOf(w *ecs.World) (*component.Session, bool) {
	e, ok := ecs.First(w, component.SessionComponent.Kind())
	if !ok {
		return nil, false
	}
	return ecs.Get(w, e, component.SessionComponent.Kind())
}

// simulating reports whether gameplay systems should advance this tick.
func simulating(w *ecs.World) bool {
	session, ok := sessionOf(w)
	return ok && !session.Terminal()
}
