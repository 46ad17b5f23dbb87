package systems

import (
	"github.com/dfry/skyguard/engine/core"
	"github.com/dfry/skyguard/engine/defense"
)

// EnemySystem advances enemies and resolves the strike when one arrives
// at its target
type EnemySystem struct {
	Session  *core.Session
	Registry *defense.Registry
	Rand     *core.Rand
	EventBus *core.EventBus
}

func (s *EnemySystem) Priority() int { return 20 }

func (s *EnemySystem) Update(w *core.World, dt float64) {
	for _, id := range w.Query(core.CompPosition, core.CompEnemy) {
		en := w.Get(id, core.CompEnemy).(*core.Enemy)
		if !en.Alive() {
			continue
		}
		pos := w.Get(id, core.CompPosition).(*core.Position)

		// Straight-line descent along the direction fixed at spawn; the
		// enemy never re-aims even if its target is gone.
		dir := en.Target.Sub(en.Origin).Normalize()
		pos.X += dir.X * en.Speed * dt
		pos.Y += dir.Y * en.Speed * dt
		en.PushTrail(pos.Vec())

		// Terminal once the descent carries it to the target's altitude
		if pos.Y < en.Target.Y {
			continue
		}

		en.Reached = true
		s.Session.Processed++

		hit := s.Registry.ResolveImpact(pos.Vec(), en.Elite)
		s.emitHit(w, hit)

		SpawnMark(w, s.Rand, pos.Vec())
		// The strike happened: this zone only shows it, damage to other
		// enemies is not part of an impact.
		SpawnZone(w, pos.Vec(), core.ImpactRadius, core.BlastGrowth, false)

		if s.EventBus != nil {
			s.EventBus.Emit(core.Event{Type: core.EvtEnemyImpact, Tick: w.TickCount, Payload: id})
		}
		w.Destroy(id)
	}
}

func (s *EnemySystem) emitHit(w *core.World, hit defense.HitKind) {
	if s.EventBus == nil {
		return
	}
	switch hit {
	case defense.HitBarricade:
		s.EventBus.Emit(core.Event{Type: core.EvtBarricadeHit, Tick: w.TickCount})
	case defense.HitEmplacement:
		s.EventBus.Emit(core.Event{Type: core.EvtEmplacementLost, Tick: w.TickCount})
	case defense.HitShelter:
		s.EventBus.Emit(core.Event{Type: core.EvtShelterLost, Tick: w.TickCount})
	}
}
