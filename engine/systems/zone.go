package systems

import (
	"github.com/dfry/skyguard/engine/core"
)

// ZoneSystem grows and shrinks impact zones and applies their area damage
type ZoneSystem struct {
	Session  *core.Session
	EventBus *core.EventBus
}

func (s *ZoneSystem) Priority() int { return 30 }

func (s *ZoneSystem) Update(w *core.World, dt float64) {
	enemies := w.Query(core.CompPosition, core.CompEnemy)

	for _, id := range w.Query(core.CompPosition, core.CompZone) {
		zone := w.Get(id, core.CompZone).(*core.Zone)
		zpos := w.Get(id, core.CompPosition).(*core.Position)

		switch zone.Phase {
		case core.ZoneGrowing:
			zone.Radius += zone.Growth * dt
			if zone.Radius >= zone.MaxRadius {
				zone.Radius = zone.MaxRadius
				zone.Phase = core.ZoneShrinking
			}
		case core.ZoneShrinking:
			zone.Radius -= zone.Growth / 2 * dt
			if zone.Radius <= 0 {
				w.Destroy(id)
				continue
			}
		}

		if !zone.Damaging {
			continue
		}

		for _, eid := range enemies {
			en := w.Get(eid, core.CompEnemy).(*core.Enemy)
			if !en.Alive() || en.DamagedBy(id) {
				continue
			}
			epos := w.Get(eid, core.CompPosition).(*core.Position)
			if epos.DistanceTo(zpos) >= zone.Radius {
				continue
			}

			en.MarkDamaged(id)
			hp := w.Get(eid, core.CompHealth).(*core.Health)
			hp.Current--
			if hp.Current > 0 {
				continue
			}

			// Credited exactly once: Dead keeps any other zone this step
			// (and the impact check) away from this enemy.
			hp.Current = 0
			en.Dead = true
			s.Session.Processed++
			if en.Elite {
				s.Session.AddScore(core.EliteScore)
			} else {
				s.Session.AddScore(core.EnemyScore)
			}
			if s.EventBus != nil {
				s.EventBus.Emit(core.Event{Type: core.EvtEnemyDestroyed, Tick: w.TickCount, Payload: eid})
			}
			w.Destroy(eid)
		}
	}
}
