// Package defense tracks the defended assets: the single player-controlled
// emplacement, the passive shelters, and the attritable barricades.
package defense

import "github.com/dfry/skyguard/engine/geom"

// Reach bands for "an enemy arrived here". Barricades intercept on a wider
// band than structures; the two values are intentionally separate knobs.
const (
	BarricadeReach = 30.0
	StructureReach = 20.0
)

const (
	MaxBarricades      = 3
	BarricadeMaxHealth = 4
	ShelterCount       = 4
)

// Fractional anchors: structures keep their position as a fraction of the
// viewport so a resize repositions everything proportionally.
const (
	emplacementAnchorY = 0.92
	shelterAnchorY     = 0.94
)

// Each barricade is anchored just in front of one structure, close enough
// that a strike aimed at that structure lands inside the barricade's reach
// band: first the emplacement, then the two inner shelters.
var barricadeAnchors = [MaxBarricades][2]float64{
	{0.5, 0.90},
	{0.4, 0.92},
	{0.6, 0.92},
}

// Emplacement is the sole firing point. Deactivated for the rest of the
// session when an enemy reaches it.
type Emplacement struct {
	Pos    geom.Vec
	Active bool
	ax, ay float64
}

// Shelter is a passive defended structure
type Shelter struct {
	Pos    geom.Vec
	Active bool
	ax, ay float64
}

// Barricade absorbs enemy strikes in front of the structures, losing one
// health per hit (two for elites), until its health runs out.
type Barricade struct {
	Pos       geom.Vec
	Health    int
	MaxHealth int
	ax, ay    float64
}

// HitKind says what an enemy strike resolved against
type HitKind uint8

const (
	HitGround HitKind = iota // nothing in reach
	HitBarricade
	HitEmplacement
	HitShelter
)

// Registry owns the defended assets and viewport-proportional layout
type Registry struct {
	Emplacement Emplacement
	Shelters    []Shelter
	Barricades  []Barricade

	width, height float64
}

// NewRegistry creates a registry with the emplacement and all shelters
// active and no barricades built. Positions stay zero until Resize.
func NewRegistry() *Registry {
	r := &Registry{}
	r.Emplacement = Emplacement{Active: true, ax: 0.5, ay: emplacementAnchorY}
	for i := 0; i < ShelterCount; i++ {
		// Spread shelters across the lower edge; the center belongs to
		// the emplacement.
		ax := float64(i+1) / float64(ShelterCount+1)
		r.Shelters = append(r.Shelters, Shelter{Active: true, ax: ax, ay: shelterAnchorY})
	}
	return r
}

// Resize repositions every structure proportionally to the new viewport.
// Callable at any time the session is active.
func (r *Registry) Resize(width, height float64) {
	r.width = width
	r.height = height
	r.Emplacement.Pos = geom.Vec{X: r.Emplacement.ax * width, Y: r.Emplacement.ay * height}
	for i := range r.Shelters {
		s := &r.Shelters[i]
		s.Pos = geom.Vec{X: s.ax * width, Y: s.ay * height}
	}
	for i := range r.Barricades {
		b := &r.Barricades[i]
		b.Pos = geom.Vec{X: b.ax * width, Y: b.ay * height}
	}
}

// Reset restores the initial layout: emplacement and shelters active, all
// barricades gone. The viewport dimensions are kept.
func (r *Registry) Reset() {
	r.Emplacement.Active = true
	for i := range r.Shelters {
		r.Shelters[i].Active = true
	}
	r.Barricades = r.Barricades[:0]
}

// Width returns the current viewport width (zero before the first Resize)
func (r *Registry) Width() float64 { return r.width }

// Height returns the current viewport height
func (r *Registry) Height() float64 { return r.height }

// ActivePoints returns the positions an enemy may be assigned to target:
// the emplacement if active, plus every active shelter.
func (r *Registry) ActivePoints() []geom.Vec {
	var pts []geom.Vec
	if r.Emplacement.Active {
		pts = append(pts, r.Emplacement.Pos)
	}
	for i := range r.Shelters {
		if r.Shelters[i].Active {
			pts = append(pts, r.Shelters[i].Pos)
		}
	}
	return pts
}

// HasActiveDefense reports whether any defense point is still standing
func (r *Registry) HasActiveDefense() bool {
	if r.Emplacement.Active {
		return true
	}
	for i := range r.Shelters {
		if r.Shelters[i].Active {
			return true
		}
	}
	return false
}

// ResolveImpact applies an enemy strike at pos. Barricades in reach absorb
// the hit first (1 health, 2 for elites) and spare the structures; failing
// that, an emplacement or shelter in reach is deactivated permanently.
func (r *Registry) ResolveImpact(pos geom.Vec, elite bool) HitKind {
	for i := range r.Barricades {
		b := &r.Barricades[i]
		if b.Health > 0 && pos.DistanceTo(b.Pos) <= BarricadeReach {
			cost := 1
			if elite {
				cost = 2
			}
			b.Health -= cost
			if b.Health < 0 {
				b.Health = 0
			}
			return HitBarricade
		}
	}
	if r.Emplacement.Active && pos.DistanceTo(r.Emplacement.Pos) <= StructureReach {
		r.Emplacement.Active = false
		return HitEmplacement
	}
	for i := range r.Shelters {
		s := &r.Shelters[i]
		if s.Active && pos.DistanceTo(s.Pos) <= StructureReach {
			s.Active = false
			return HitShelter
		}
	}
	return HitGround
}

// InactiveShelters returns the number of shelters taken out so far
func (r *Registry) InactiveShelters() int {
	n := 0
	for i := range r.Shelters {
		if !r.Shelters[i].Active {
			n++
		}
	}
	return n
}

// RestoreShelter reactivates one inactive shelter. Returns false when all
// shelters already stand.
func (r *Registry) RestoreShelter() bool {
	for i := range r.Shelters {
		if !r.Shelters[i].Active {
			r.Shelters[i].Active = true
			return true
		}
	}
	return false
}

// ReactivateEmplacement restores the firing point. Returns false when it is
// already active.
func (r *Registry) ReactivateEmplacement() bool {
	if r.Emplacement.Active {
		return false
	}
	r.Emplacement.Active = true
	return true
}

// DamagedBarricade reports whether any built barricade has lost health
func (r *Registry) DamagedBarricade() bool {
	for i := range r.Barricades {
		b := &r.Barricades[i]
		if b.Health < b.MaxHealth {
			return true
		}
	}
	return false
}

// BuildOrRepairBarricade builds the next barricade, or once at the maximum
// count restores the first damaged one to full health. Returns false when
// at maximum and nothing is damaged.
func (r *Registry) BuildOrRepairBarricade() bool {
	if len(r.Barricades) < MaxBarricades {
		anchor := barricadeAnchors[len(r.Barricades)]
		b := Barricade{
			Health:    BarricadeMaxHealth,
			MaxHealth: BarricadeMaxHealth,
			ax:        anchor[0],
			ay:        anchor[1],
		}
		b.Pos = geom.Vec{X: b.ax * r.width, Y: b.ay * r.height}
		r.Barricades = append(r.Barricades, b)
		return true
	}
	for i := range r.Barricades {
		b := &r.Barricades[i]
		if b.Health < b.MaxHealth {
			b.Health = b.MaxHealth
			return true
		}
	}
	return false
}
