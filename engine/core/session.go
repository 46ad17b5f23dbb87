package core

// GameState represents the top-level session state
type GameState uint8

const (
	StateStart GameState = iota
	StatePlaying
	StateShop
	StateWon
	StateLost
)

func (s GameState) String() string {
	switch s {
	case StateStart:
		return "start"
	case StatePlaying:
		return "playing"
	case StateShop:
		return "shop"
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	}
	return "unknown"
}

// Session holds all per-session progress: score, round, upgrade levels and
// the counters of the wave currently in flight. There is exactly one writer
// per frame (the director); the presentation layer only ever sees copies.
type Session struct {
	State GameState

	Score int // executions credited, never spent below zero
	Round int

	RadiusLevel int // damage-radius upgrade level
	SpeedLevel  int // projectile-speed upgrade level

	// Wave progress
	Spawned    int     // enemies spawned this wave
	Processed  int     // enemies that left the wave (reached target or destroyed)
	WaveTarget int     // enemies this wave must process
	SpawnTimer float64 // seconds since last spawn
}

// NewSession returns a session in the initial Start state
func NewSession() *Session {
	return &Session{State: StateStart}
}

// CanAfford reports whether the score covers a cost
func (s *Session) CanAfford(cost int) bool {
	return s.Score >= cost
}

// Spend deducts cost from the score. Returns false, deducting nothing,
// when the score does not cover it.
func (s *Session) Spend(cost int) bool {
	if s.Score < cost {
		return false
	}
	s.Score -= cost
	return true
}

// AddScore credits points
func (s *Session) AddScore(points int) {
	s.Score += points
}

// BeginRound resets the wave counters for a round and enters Playing
func (s *Session) BeginRound(round int) {
	s.Round = round
	s.Spawned = 0
	s.Processed = 0
	s.WaveTarget = WaveTarget(round)
	s.SpawnTimer = 0
	s.State = StatePlaying
}

// ResetProgress returns score, round and upgrades to baseline
func (s *Session) ResetProgress() {
	s.Score = 0
	s.Round = 0
	s.RadiusLevel = 0
	s.SpeedLevel = 0
	s.Spawned = 0
	s.Processed = 0
	s.WaveTarget = 0
	s.SpawnTimer = 0
}
