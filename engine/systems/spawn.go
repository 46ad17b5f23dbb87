package systems

import (
	"github.com/dfry/skyguard/engine/core"
	"github.com/dfry/skyguard/engine/defense"
	"github.com/dfry/skyguard/engine/geom"
)

// SpawnSystem creates wave enemies on the round's spawn cadence
type SpawnSystem struct {
	Session  *core.Session
	Registry *defense.Registry
	Rand     *core.Rand
	EventBus *core.EventBus
}

func (s *SpawnSystem) Priority() int { return 10 }

func (s *SpawnSystem) Update(w *core.World, dt float64) {
	sess := s.Session
	sess.SpawnTimer += dt

	if sess.Spawned >= sess.WaveTarget {
		return
	}
	if sess.SpawnTimer < core.SpawnInterval(sess.Round) {
		return
	}

	// Enemies only spawn while something is left to aim at
	points := s.Registry.ActivePoints()
	if len(points) == 0 {
		return
	}

	target := points[s.Rand.Intn(len(points))]
	elite := s.Rand.Chance(core.EliteChance(sess.Round))
	origin := geom.Vec{
		X: s.Rand.Range(0, s.Registry.Width()),
		Y: core.EnemySpawnHeight,
	}

	speed := core.EnemySpeed
	health := core.EnemyHealth
	if elite {
		speed = core.EliteSpeed
		health = core.EliteHealth
	}

	id := w.Spawn()
	w.Attach(id, &core.Position{X: origin.X, Y: origin.Y})
	w.Attach(id, &core.Health{Current: health, Max: health})
	w.Attach(id, &core.Enemy{
		Origin: origin,
		Target: target,
		Speed:  speed,
		Elite:  elite,
	})

	sess.Spawned++
	sess.SpawnTimer = 0

	if s.EventBus != nil {
		s.EventBus.Emit(core.Event{Type: core.EvtEnemySpawned, Tick: w.TickCount, Payload: id})
	}
}
