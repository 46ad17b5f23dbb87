package sim

import (
	"github.com/dfry/skyguard/engine/core"
	"github.com/dfry/skyguard/engine/geom"
	"github.com/dfry/skyguard/engine/systems"
)

// Player commands. Every command that arrives in the wrong state, or whose
// precondition fails, is silently ignored: in a real-time input context a
// rejected tap must not interrupt anything.

// Start begins a new session from the Start screen
func (d *Director) Start() {
	if d.Session.State != core.StateStart {
		return
	}
	d.launch()
}

// Restart begins a fresh session after a won or lost game
func (d *Director) Restart() {
	if d.Session.State != core.StateWon && d.Session.State != core.StateLost {
		return
	}
	d.launch()
}

// launch resets the full session state and enters round 1
func (d *Director) launch() {
	d.World = d.newWorld()
	d.Registry.Reset()
	d.Session.ResetProgress()
	d.Session.BeginRound(1)
	d.EventBus.Emit(core.Event{Type: core.EvtGameStart})
}

// NextWave leaves the shop and starts the next round
func (d *Director) NextWave() {
	if d.Session.State != core.StateShop {
		return
	}
	next := d.Session.Round + 1
	if next > core.RoundLimit {
		// Shop is never entered after the final round, but keep the
		// terminal state reachable rather than spawning past the limit.
		d.Session.State = core.StateWon
		d.EventBus.Emit(core.Event{Type: core.EvtGameWon})
		return
	}
	d.Session.BeginRound(next)
}

// Fire launches a projectile from the emplacement toward (x, y).
// Accepted only while playing with the emplacement still active.
func (d *Director) Fire(x, y float64) {
	if d.Session.State != core.StatePlaying {
		return
	}
	if !d.Registry.Emplacement.Active {
		return
	}
	systems.SpawnProjectile(
		d.World,
		d.Registry.Emplacement.Pos,
		geom.Vec{X: x, Y: y},
		core.CurrentProjectileSpeed(d.Session.SpeedLevel),
	)
	d.EventBus.Emit(core.Event{Type: core.EvtProjectileFired, Tick: d.World.TickCount})
}

// Resize repositions the defense layout proportionally to a new viewport.
// Valid at any time the session is active.
func (d *Director) Resize(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	d.Registry.Resize(width, height)
}
