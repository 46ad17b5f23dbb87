package core

import "github.com/dfry/skyguard/engine/geom"

// ---- Position ----

// Position represents a world position in viewport units
type Position struct {
	X, Y float64
}

func (p *Position) Type() ComponentType { return CompPosition }

// Vec returns the position as a vector
func (p *Position) Vec() geom.Vec {
	return geom.Vec{X: p.X, Y: p.Y}
}

// DistanceTo returns euclidean distance to another position
func (p *Position) DistanceTo(other *Position) float64 {
	return p.Vec().DistanceTo(other.Vec())
}

// ---- Health ----

// Health represents hit points
type Health struct {
	Current int
	Max     int
}

func (h *Health) Type() ComponentType { return CompHealth }

func (h *Health) Ratio() float64 {
	if h.Max <= 0 {
		return 0
	}
	return float64(h.Current) / float64(h.Max)
}

// ---- Enemy ----

// TrailCap bounds the per-enemy position history kept for rendering
const TrailCap = 12

// Enemy represents a descending attacker. It aims at a defense point chosen
// at spawn and never re-aims.
type Enemy struct {
	Origin geom.Vec
	Target geom.Vec
	Speed  float64 // units per second
	Elite  bool

	// Reached is set the step the enemy arrives at its target; Dead is set
	// the step its health hits zero. Both guard against double processing
	// between flagging and the end-of-tick prune.
	Reached bool
	Dead    bool

	Trail []geom.Vec

	// HitBy records zone entities that already damaged this enemy, so one
	// zone can never apply damage twice however long they overlap.
	HitBy map[EntityID]struct{}
}

func (e *Enemy) Type() ComponentType { return CompEnemy }

// Alive reports whether the enemy still participates in the simulation
func (e *Enemy) Alive() bool {
	return !e.Reached && !e.Dead
}

// DamagedBy reports whether a zone has already damaged this enemy
func (e *Enemy) DamagedBy(zone EntityID) bool {
	_, ok := e.HitBy[zone]
	return ok
}

// MarkDamaged records a zone as having damaged this enemy
func (e *Enemy) MarkDamaged(zone EntityID) {
	if e.HitBy == nil {
		e.HitBy = make(map[EntityID]struct{})
	}
	e.HitBy[zone] = struct{}{}
}

// PushTrail appends a position sample, dropping the oldest past TrailCap
func (e *Enemy) PushTrail(v geom.Vec) {
	e.Trail = append(e.Trail, v)
	if len(e.Trail) > TrailCap {
		e.Trail = e.Trail[1:]
	}
}

// ---- Projectile ----

// Projectile represents a fired interceptor moving in a straight line from
// start to target at constant speed
type Projectile struct {
	Start  geom.Vec
	Target geom.Vec
	Speed  float64 // units per second
}

func (p *Projectile) Type() ComponentType { return CompProjectile }

// ---- Impact zone ----

// ZonePhase is the life phase of an impact zone
type ZonePhase uint8

const (
	ZoneGrowing ZonePhase = iota
	ZoneShrinking
)

// Zone represents a transient area effect. The radius grows from zero to
// MaxRadius, then shrinks at half the growth rate until it reaches zero.
type Zone struct {
	Radius    float64
	MaxRadius float64
	Growth    float64 // units per second while growing
	Phase     ZonePhase
	// Damaging is false for the zone emitted when an enemy reaches its
	// target: that one marks a hit already resolved against the defenses.
	Damaging bool
}

func (z *Zone) Type() ComponentType { return CompZone }

// ---- Ground mark ----

// Mark is a decorative scorch left at every impact. Marks accumulate for
// the whole session and never affect gameplay.
type Mark struct {
	Size     float64
	Opacity  float64
	Rotation float64
}

func (m *Mark) Type() ComponentType { return CompMark }
