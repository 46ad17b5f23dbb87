package sim

import (
	"github.com/dfry/skyguard/engine/core"
	"github.com/dfry/skyguard/engine/geom"
)

// Read-only projections of simulation state for the presentation layer.
// A snapshot is built fresh each frame; mutating one changes nothing.

type EnemyView struct {
	Pos         geom.Vec
	Elite       bool
	HealthRatio float64
	Trail       []geom.Vec
}

type ProjectileView struct {
	Pos    geom.Vec
	Target geom.Vec
}

type ZoneView struct {
	Pos     geom.Vec
	Radius  float64
	Growing bool
}

type MarkView struct {
	Pos      geom.Vec
	Size     float64
	Opacity  float64
	Rotation float64
}

type StructureView struct {
	Pos    geom.Vec
	Active bool
}

type BarricadeView struct {
	Pos         geom.Vec
	HealthRatio float64
}

// Snapshot is everything the presentation layer reads each frame
type Snapshot struct {
	State core.GameState

	Score      int
	Round      int
	Spawned    int
	Processed  int
	WaveTarget int

	RadiusLevel int
	SpeedLevel  int

	Enemies     []EnemyView
	Projectiles []ProjectileView
	Zones       []ZoneView
	Marks       []MarkView

	Emplacement StructureView
	Shelters    []StructureView
	Barricades  []BarricadeView
}

// Snapshot builds the per-frame render projection
func (d *Director) Snapshot() *Snapshot {
	s := d.Session
	snap := &Snapshot{
		State:       s.State,
		Score:       s.Score,
		Round:       s.Round,
		Spawned:     s.Spawned,
		Processed:   s.Processed,
		WaveTarget:  s.WaveTarget,
		RadiusLevel: s.RadiusLevel,
		SpeedLevel:  s.SpeedLevel,
	}

	w := d.World
	for _, id := range w.Query(core.CompPosition, core.CompEnemy) {
		en := w.Get(id, core.CompEnemy).(*core.Enemy)
		if !en.Alive() {
			continue
		}
		pos := w.Get(id, core.CompPosition).(*core.Position)
		hp := w.Get(id, core.CompHealth).(*core.Health)
		trail := make([]geom.Vec, len(en.Trail))
		copy(trail, en.Trail)
		snap.Enemies = append(snap.Enemies, EnemyView{
			Pos:         pos.Vec(),
			Elite:       en.Elite,
			HealthRatio: hp.Ratio(),
			Trail:       trail,
		})
	}
	for _, id := range w.Query(core.CompPosition, core.CompProjectile) {
		pos := w.Get(id, core.CompPosition).(*core.Position)
		proj := w.Get(id, core.CompProjectile).(*core.Projectile)
		snap.Projectiles = append(snap.Projectiles, ProjectileView{
			Pos:    pos.Vec(),
			Target: proj.Target,
		})
	}
	for _, id := range w.Query(core.CompPosition, core.CompZone) {
		pos := w.Get(id, core.CompPosition).(*core.Position)
		zone := w.Get(id, core.CompZone).(*core.Zone)
		snap.Zones = append(snap.Zones, ZoneView{
			Pos:     pos.Vec(),
			Radius:  zone.Radius,
			Growing: zone.Phase == core.ZoneGrowing,
		})
	}
	for _, id := range w.Query(core.CompPosition, core.CompMark) {
		pos := w.Get(id, core.CompPosition).(*core.Position)
		m := w.Get(id, core.CompMark).(*core.Mark)
		snap.Marks = append(snap.Marks, MarkView{
			Pos:      pos.Vec(),
			Size:     m.Size,
			Opacity:  m.Opacity,
			Rotation: m.Rotation,
		})
	}

	r := d.Registry
	snap.Emplacement = StructureView{Pos: r.Emplacement.Pos, Active: r.Emplacement.Active}
	for i := range r.Shelters {
		sh := &r.Shelters[i]
		snap.Shelters = append(snap.Shelters, StructureView{Pos: sh.Pos, Active: sh.Active})
	}
	for i := range r.Barricades {
		b := &r.Barricades[i]
		ratio := 0.0
		if b.MaxHealth > 0 {
			ratio = float64(b.Health) / float64(b.MaxHealth)
		}
		snap.Barricades = append(snap.Barricades, BarricadeView{Pos: b.Pos, HealthRatio: ratio})
	}
	return snap
}
