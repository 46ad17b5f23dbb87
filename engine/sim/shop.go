package sim

import (
	"github.com/dfry/skyguard/engine/core"
	"github.com/dfry/skyguard/engine/defense"
)

// UpgradeKind identifies a shop purchase
type UpgradeKind uint8

const (
	UpgradeShelter UpgradeKind = iota
	UpgradeEmplacement
	UpgradeBarricade
	UpgradeRadius
	UpgradeSpeed
)

// Upgrade costs in score points
const (
	CostShelter     = 200
	CostEmplacement = 300
	CostBarricade   = 250
	CostRadius      = 150
	CostSpeed       = 100
)

// Offer describes one shop entry for the presentation layer
type Offer struct {
	Kind       UpgradeKind
	Label      string
	Cost       int
	Available  bool // precondition holds (something to restore, not maxed...)
	Affordable bool
}

// Offers returns the five shop entries with their current availability.
// Each is gated purely on its own precondition and the current score.
func (d *Director) Offers() []Offer {
	r := d.Registry
	s := d.Session
	offers := []Offer{
		{Kind: UpgradeShelter, Label: "Restore shelter", Cost: CostShelter,
			Available: r.InactiveShelters() > 0},
		{Kind: UpgradeEmplacement, Label: "Reactivate emplacement", Cost: CostEmplacement,
			Available: !r.Emplacement.Active},
		{Kind: UpgradeBarricade, Label: "Build/repair barricade", Cost: CostBarricade,
			Available: len(r.Barricades) < defense.MaxBarricades || r.DamagedBarricade()},
		{Kind: UpgradeRadius, Label: "Bigger blast radius", Cost: CostRadius,
			Available: true},
		{Kind: UpgradeSpeed, Label: "Faster projectiles", Cost: CostSpeed,
			Available: true},
	}
	for i := range offers {
		offers[i].Affordable = s.CanAfford(offers[i].Cost)
	}
	return offers
}

// Purchase buys an upgrade. A purchase either fully succeeds (cost
// deducted, effect applied) or is a no-op: wrong state, failed
// precondition, or insufficient score.
func (d *Director) Purchase(kind UpgradeKind) {
	if d.Session.State != core.StateShop {
		return
	}

	apply, cost := d.resolve(kind)
	if apply == nil {
		return
	}
	if !d.Session.CanAfford(cost) {
		return
	}
	if !apply() {
		return
	}
	d.Session.Spend(cost)
	d.EventBus.Emit(core.Event{Type: core.EvtPurchase, Payload: kind})
}

// resolve maps an upgrade to its effect and cost. The effect func returns
// false when its precondition does not hold, leaving the score untouched.
func (d *Director) resolve(kind UpgradeKind) (func() bool, int) {
	switch kind {
	case UpgradeShelter:
		return d.Registry.RestoreShelter, CostShelter
	case UpgradeEmplacement:
		return d.Registry.ReactivateEmplacement, CostEmplacement
	case UpgradeBarricade:
		return d.Registry.BuildOrRepairBarricade, CostBarricade
	case UpgradeRadius:
		return func() bool { d.Session.RadiusLevel++; return true }, CostRadius
	case UpgradeSpeed:
		return func() bool { d.Session.SpeedLevel++; return true }, CostSpeed
	}
	return nil, 0
}
