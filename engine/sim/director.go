// Package sim owns the simulation: the entity world, the defense registry,
// session state, and the fixed-order step that advances one frame. The
// presentation layer talks to it only through commands and snapshots.
package sim

import (
	"github.com/dfry/skyguard/engine/core"
	"github.com/dfry/skyguard/engine/defense"
	"github.com/dfry/skyguard/engine/systems"
)

// Director drives the whole session. Everything it owns is mutated
// synchronously within one Step call; nothing else writes to it.
type Director struct {
	World    *core.World
	Registry *defense.Registry
	Session  *core.Session
	EventBus *core.EventBus
	Rand     *core.Rand
}

// New creates a director with a fresh session in the Start state.
// Seed 0 gives clock-based randomness; any other seed makes spawn order,
// elite rolls and mark shapes reproducible.
func New(seed int64) *Director {
	d := &Director{
		Registry: defense.NewRegistry(),
		Session:  core.NewSession(),
		EventBus: core.NewEventBus(),
		Rand:     core.NewRand(seed),
	}
	d.World = d.newWorld()
	return d
}

// newWorld builds an entity world with the simulation systems registered in
// step order: spawn, enemy advance/impact, projectile advance, zone
// advance/damage. Pruning runs inside Tick after all of them.
func (d *Director) newWorld() *core.World {
	w := core.NewWorld()
	w.AddSystem(&systems.SpawnSystem{
		Session:  d.Session,
		Registry: d.Registry,
		Rand:     d.Rand,
		EventBus: d.EventBus,
	})
	w.AddSystem(&systems.EnemySystem{
		Session:  d.Session,
		Registry: d.Registry,
		Rand:     d.Rand,
		EventBus: d.EventBus,
	})
	w.AddSystem(&systems.ProjectileSystem{
		Session:  d.Session,
		EventBus: d.EventBus,
	})
	w.AddSystem(&systems.ZoneSystem{
		Session:  d.Session,
		EventBus: d.EventBus,
	})
	return w
}

// Step advances the simulation by dt seconds. It does nothing outside the
// Playing state, and skips the frame entirely while the host has not yet
// reported a viewport.
func (d *Director) Step(dt float64) {
	if d.Session.State != core.StatePlaying {
		return
	}
	if d.Registry.Width() <= 0 || d.Registry.Height() <= 0 {
		return
	}

	d.World.Tick(dt)

	// Wave completion: every enemy of the wave processed, none alive, and
	// no zone still animating.
	if d.Session.Processed >= d.Session.WaveTarget &&
		d.World.Count(core.CompEnemy) == 0 &&
		d.World.Count(core.CompZone) == 0 {
		d.EventBus.Emit(core.Event{Type: core.EvtWaveCleared, Tick: d.World.TickCount})
		if d.Session.Round >= core.RoundLimit {
			d.Session.State = core.StateWon
			d.EventBus.Emit(core.Event{Type: core.EvtGameWon, Tick: d.World.TickCount})
		} else {
			d.Session.State = core.StateShop
		}
	}

	// Loss check runs last and overrides: with no defenses left the wave
	// outcome no longer matters.
	if !d.Registry.HasActiveDefense() {
		if d.Session.State != core.StateLost {
			d.Session.State = core.StateLost
			d.EventBus.Emit(core.Event{Type: core.EvtDefensesLost, Tick: d.World.TickCount})
			d.EventBus.Emit(core.Event{Type: core.EvtGameLost, Tick: d.World.TickCount})
		}
	}
}
