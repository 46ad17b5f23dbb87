package systems

import (
	"testing"

	"github.com/dfry/skyguard/engine/core"
	"github.com/dfry/skyguard/engine/geom"
)

func newZoneEnv(seed int64) (*testEnv, *ZoneSystem) {
	env := newEnv(seed)
	sys := &ZoneSystem{Session: env.session, EventBus: env.bus}
	env.world.AddSystem(sys)
	return env, sys
}

func TestZoneGrowsThenShrinksAtHalfRate(t *testing.T) {
	env, _ := newZoneEnv(1)
	id := SpawnZone(env.world, geom.Vec{X: 100, Y: 100}, 45, 90, true)
	zone := env.world.Get(id, core.CompZone).(*core.Zone)

	env.world.Tick(0.2)
	if zone.Radius != 18 {
		t.Errorf("radius = %v after 0.2s, want 18", zone.Radius)
	}
	env.world.Tick(0.3) // reaches 45, clamps and flips
	if zone.Radius != 45 || zone.Phase != core.ZoneShrinking {
		t.Errorf("radius = %v phase = %v, want 45 shrinking", zone.Radius, zone.Phase)
	}
	env.world.Tick(0.2)
	if zone.Radius != 36 {
		t.Errorf("radius = %v while shrinking 0.2s, want 36", zone.Radius)
	}
}

func TestFinishedZoneIsRemoved(t *testing.T) {
	env, _ := newZoneEnv(1)
	SpawnZone(env.world, geom.Vec{X: 100, Y: 100}, 45, 90, true)

	// 0.5s to peak, 1.0s back to zero
	for i := 0; i < 40; i++ {
		env.world.Tick(0.05)
	}
	if env.world.Count(core.CompZone) != 0 {
		t.Error("expired zone still present")
	}
}

func TestZoneDamagesEnemyStrictlyInside(t *testing.T) {
	env, _ := newZoneEnv(1)
	center := geom.Vec{X: 100, Y: 100}
	inside := env.addEnemy(geom.Vec{X: 100, Y: 110}, geom.Vec{X: 100, Y: 560}, false)
	onEdge := env.addEnemy(geom.Vec{X: 100, Y: 118}, geom.Vec{X: 100, Y: 560}, false)
	SpawnZone(env.world, center, 45, 90, true)

	env.world.Tick(0.2) // radius 18: one enemy at 10, one exactly at 18

	if env.world.Has(inside, core.CompEnemy) {
		t.Error("enemy inside the zone survived one hit point of damage")
	}
	if !env.world.Has(onEdge, core.CompEnemy) {
		t.Error("enemy exactly on the boundary took damage")
	}
	if env.session.Score != core.EnemyScore {
		t.Errorf("score = %d, want %d for one kill", env.session.Score, core.EnemyScore)
	}
	if env.session.Processed != 1 {
		t.Errorf("Processed = %d, want 1", env.session.Processed)
	}
}

func TestZoneDamagesEachEnemyOnce(t *testing.T) {
	env, _ := newZoneEnv(1)
	eid := env.addEnemy(geom.Vec{X: 100, Y: 105}, geom.Vec{X: 100, Y: 560}, true)
	SpawnZone(env.world, geom.Vec{X: 100, Y: 100}, 45, 90, true)

	// The elite sits inside the zone for many steps but may only be
	// charged for the first one.
	for i := 0; i < 6; i++ {
		env.world.Tick(0.05)
	}
	hp := env.world.Get(eid, core.CompHealth).(*core.Health)
	if hp.Current != core.EliteHealth-1 {
		t.Errorf("health = %d, want %d after a single zone", hp.Current, core.EliteHealth-1)
	}
}

func TestOverlappingZonesEachDamageOnce(t *testing.T) {
	env, _ := newZoneEnv(1)
	eid := env.addEnemy(geom.Vec{X: 100, Y: 105}, geom.Vec{X: 100, Y: 560}, true)
	SpawnZone(env.world, geom.Vec{X: 95, Y: 100}, 45, 90, true)
	SpawnZone(env.world, geom.Vec{X: 105, Y: 100}, 45, 90, true)

	env.world.Tick(0.2) // both radii 18, both cover the elite

	hp := env.world.Get(eid, core.CompHealth).(*core.Health)
	if hp.Current != core.EliteHealth-2 {
		t.Errorf("health = %d, want %d after two overlapping zones", hp.Current, core.EliteHealth-2)
	}
	if env.session.Processed != 0 {
		t.Error("surviving elite counted as processed")
	}
}

func TestEliteKillScoresOnceAcrossZones(t *testing.T) {
	env, _ := newZoneEnv(1)
	env.addEnemy(geom.Vec{X: 100, Y: 105}, geom.Vec{X: 100, Y: 560}, true)
	// Five overlapping zones finish the elite in one step; a sixth must
	// find nothing left to credit.
	for i := 0; i < 6; i++ {
		SpawnZone(env.world, geom.Vec{X: 98 + float64(i), Y: 100}, 45, 90, true)
	}

	env.world.Tick(0.2)

	if env.session.Score != core.EliteScore {
		t.Errorf("score = %d, want exactly %d", env.session.Score, core.EliteScore)
	}
	if env.session.Processed != 1 {
		t.Errorf("Processed = %d, want 1", env.session.Processed)
	}
	if env.world.Count(core.CompEnemy) != 0 {
		t.Error("destroyed elite not pruned")
	}
}

func TestNonDamagingZoneLeavesEnemiesAlone(t *testing.T) {
	env, _ := newZoneEnv(1)
	eid := env.addEnemy(geom.Vec{X: 100, Y: 105}, geom.Vec{X: 100, Y: 560}, false)
	SpawnZone(env.world, geom.Vec{X: 100, Y: 100}, core.ImpactRadius, core.BlastGrowth, false)

	env.world.Tick(0.2)

	hp := env.world.Get(eid, core.CompHealth).(*core.Health)
	if hp.Current != core.EnemyHealth {
		t.Errorf("health = %d, want untouched %d", hp.Current, core.EnemyHealth)
	}
	if env.session.Score != 0 {
		t.Error("non-damaging zone awarded score")
	}
}
