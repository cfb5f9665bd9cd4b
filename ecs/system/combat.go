package system

import (
	"github.com/milk9111/waveshooter/ecs"
	"github.com/milk9111/waveshooter/ecs/component"
)

// CombatSystem resolves the contacts recorded by the physics step. A bullet
// hitting an enemy frees the bullet and destroys the enemy; an enemy
// touching the player is destroyed and costs one health point. Contacts
// whose participants are already gone are dropped.
type CombatSystem struct{}

func NewCombatSystem() *CombatSystem {
	return &CombatSystem{}
}

func (s *CombatSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	session, _ := sessionOf(w)

	ecs.ForEach(w, component.ContactComponent.Kind(), func(e ecs.Entity, c *component.Contact) {
		contact := *c
		ecs.DestroyEntity(w, e)

		if session == nil || session.Terminal() {
			return
		}
		enemy := ecs.Entity(contact.Target)
		if !ecs.Has(w, enemy, component.EnemyTagComponent.Kind()) {
			return
		}

		switch contact.Kind {
		case component.ContactBulletEnemy:
			if !ReleaseBullet(w, ecs.Entity(contact.Source)) {
				return
			}
			ecs.DestroyEntity(w, enemy)
		case component.ContactPlayerEnemy:
			player := ecs.Entity(contact.Source)
			health, ok := ecs.Get(w, player, component.HealthComponent.Kind())
			if !ok {
				return
			}
			ecs.DestroyEntity(w, enemy)
			if health.Damage(1) > 0 {
				return
			}
			if session.EnterGameOver() {
				req := ecs.CreateEntity(w)
				_ = ecs.Add(w, req, component.GameOverRequestComponent.Kind(), &component.GameOverRequest{})
			}
		}
	})
}
