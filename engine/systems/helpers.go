package systems

import (
	"math"

	"github.com/dfry/skyguard/engine/core"
	"github.com/dfry/skyguard/engine/geom"
)

// SpawnZone creates an impact zone entity at pos. The radius starts at zero
// and the zone shrinks at half its growth rate after peaking at maxRadius.
func SpawnZone(w *core.World, pos geom.Vec, maxRadius, growth float64, damaging bool) core.EntityID {
	id := w.Spawn()
	w.Attach(id, &core.Position{X: pos.X, Y: pos.Y})
	w.Attach(id, &core.Zone{
		MaxRadius: maxRadius,
		Growth:    growth,
		Phase:     core.ZoneGrowing,
		Damaging:  damaging,
	})
	return id
}

// SpawnMark creates a decorative ground mark at pos with randomized shape
func SpawnMark(w *core.World, rng *core.Rand, pos geom.Vec) core.EntityID {
	id := w.Spawn()
	w.Attach(id, &core.Position{X: pos.X, Y: pos.Y})
	w.Attach(id, &core.Mark{
		Size:     rng.Range(10, 26),
		Opacity:  rng.Range(0.25, 0.6),
		Rotation: rng.Range(0, 2*math.Pi),
	})
	return id
}

// SpawnProjectile creates a projectile entity flying from start to target
func SpawnProjectile(w *core.World, start, target geom.Vec, speed float64) core.EntityID {
	id := w.Spawn()
	w.Attach(id, &core.Position{X: start.X, Y: start.Y})
	w.Attach(id, &core.Projectile{
		Start:  start,
		Target: target,
		Speed:  speed,
	})
	return id
}
