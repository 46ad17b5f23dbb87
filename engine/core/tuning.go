package core

// Gameplay tuning. Speeds and radii are in viewport units (units per second
// where a rate); intervals are in milliseconds to match the spawn formula.
const (
	RoundLimit = 20

	WaveBaseCount    = 5
	WavePerRound     = 3
	SpawnIntervalMs  = 1500
	SpawnDecrementMs = 100
	SpawnFloorMs     = 300

	EnemySpeed       = 55.0
	EnemyHealth      = 1
	EliteSpeed       = 38.0
	EliteHealth      = 5
	EnemyScore       = 20
	EliteScore       = 100
	EliteChanceBase  = 0.05
	EliteChancePer   = 0.03
	EliteChanceCap   = 0.5
	EnemySpawnHeight = -20.0 // spawn y above the viewport top

	ProjectileSpeed     = 260.0
	ProjectileSpeedStep = 40.0

	BlastRadius     = 45.0
	BlastRadiusStep = 12.0
	BlastGrowth     = 90.0 // shrink runs at half this rate
	ImpactRadius    = 36.0 // fixed radius of the zone left by an enemy strike
)

// SpawnInterval returns the seconds between spawns for a round:
// max(300ms, 1500ms - round*100ms)
func SpawnInterval(round int) float64 {
	ms := SpawnIntervalMs - round*SpawnDecrementMs
	if ms < SpawnFloorMs {
		ms = SpawnFloorMs
	}
	return float64(ms) / 1000.0
}

// WaveTarget returns the number of enemies a round's wave must process
func WaveTarget(round int) int {
	return WaveBaseCount + round*WavePerRound
}

// EliteChance returns the probability that a spawn is elite for a round
func EliteChance(round int) float64 {
	p := EliteChanceBase + float64(round)*EliteChancePer
	if p > EliteChanceCap {
		p = EliteChanceCap
	}
	return p
}

// CurrentBlastRadius returns the max blast radius at an upgrade level
func CurrentBlastRadius(level int) float64 {
	return BlastRadius + float64(level)*BlastRadiusStep
}

// CurrentProjectileSpeed returns the projectile speed at an upgrade level
func CurrentProjectileSpeed(level int) float64 {
	return ProjectileSpeed + float64(level)*ProjectileSpeedStep
}
