package systems

import (
	"github.com/dfry/skyguard/engine/core"
)

// ProjectileSystem moves projectiles and detonates spent ones
type ProjectileSystem struct {
	Session  *core.Session
	EventBus *core.EventBus
}

func (s *ProjectileSystem) Priority() int { return 25 }

func (s *ProjectileSystem) Update(w *core.World, dt float64) {
	for _, id := range w.Query(core.CompPosition, core.CompProjectile) {
		pos := w.Get(id, core.CompPosition).(*core.Position)
		proj := w.Get(id, core.CompProjectile).(*core.Projectile)

		dx := proj.Target.X - pos.X
		dy := proj.Target.Y - pos.Y
		dist := pos.Vec().DistanceTo(proj.Target)

		step := proj.Speed * dt
		if dist <= step {
			// Spent within one step of the target. The blast opens where
			// the projectile is now, not snapped onto the aim point.
			SpawnZone(w, pos.Vec(), core.CurrentBlastRadius(s.Session.RadiusLevel), core.BlastGrowth, true)
			if s.EventBus != nil {
				s.EventBus.Emit(core.Event{Type: core.EvtZoneSpawned, Tick: w.TickCount})
			}
			w.Destroy(id)
			continue
		}

		pos.X += dx / dist * step
		pos.Y += dy / dist * step
	}
}
