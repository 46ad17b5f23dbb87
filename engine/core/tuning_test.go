package core

import "testing"

func TestSpawnIntervalFormula(t *testing.T) {
	cases := []struct {
		round int
		want  float64 // seconds
	}{
		{1, 1.4},
		{5, 1.0},
		{12, 0.3},  // exactly at the floor
		{13, 0.3},  // past the floor
		{100, 0.3}, // floored forever
	}
	for _, c := range cases {
		if got := SpawnInterval(c.round); got != c.want {
			t.Errorf("SpawnInterval(%d) = %v, want %v", c.round, got, c.want)
		}
	}
}

func TestSpawnIntervalNonIncreasing(t *testing.T) {
	prev := SpawnInterval(1)
	for round := 2; round <= RoundLimit; round++ {
		cur := SpawnInterval(round)
		if cur > prev {
			t.Fatalf("interval increased from round %d: %v -> %v", round-1, prev, cur)
		}
		if cur < 0.3 {
			t.Fatalf("interval below floor at round %d: %v", round, cur)
		}
		prev = cur
	}
}

func TestWaveTarget(t *testing.T) {
	if got := WaveTarget(1); got != 8 {
		t.Errorf("WaveTarget(1) = %d, want 8", got)
	}
	if got := WaveTarget(20); got != 65 {
		t.Errorf("WaveTarget(20) = %d, want 65", got)
	}
}

func TestEliteChanceCapped(t *testing.T) {
	if EliteChance(1) >= EliteChance(10) {
		t.Error("elite chance should grow with the round")
	}
	if got := EliteChance(1000); got != EliteChanceCap {
		t.Errorf("EliteChance(1000) = %v, want cap %v", got, EliteChanceCap)
	}
}

func TestUpgradeFormulas(t *testing.T) {
	if CurrentBlastRadius(0) != BlastRadius {
		t.Error("level 0 blast radius should be the base")
	}
	if CurrentBlastRadius(2) != BlastRadius+2*BlastRadiusStep {
		t.Error("blast radius should grow by a fixed step per level")
	}
	if CurrentProjectileSpeed(3) != ProjectileSpeed+3*ProjectileSpeedStep {
		t.Error("projectile speed should grow by a fixed step per level")
	}
}

func TestSessionSpendIsAtomic(t *testing.T) {
	s := NewSession()
	s.Score = 150

	if s.Spend(200) {
		t.Error("Spend succeeded beyond the score")
	}
	if s.Score != 150 {
		t.Errorf("failed Spend deducted anyway: score %d", s.Score)
	}

	if !s.Spend(150) {
		t.Error("affordable Spend failed")
	}
	if s.Score != 0 {
		t.Errorf("score = %d after spending everything, want 0", s.Score)
	}
}

func TestSessionBeginRound(t *testing.T) {
	s := NewSession()
	s.Spawned = 7
	s.Processed = 7
	s.BeginRound(3)

	if s.Round != 3 || s.State != StatePlaying {
		t.Errorf("BeginRound left round=%d state=%v", s.Round, s.State)
	}
	if s.Spawned != 0 || s.Processed != 0 || s.SpawnTimer != 0 {
		t.Error("BeginRound did not reset wave counters")
	}
	if s.WaveTarget != WaveTarget(3) {
		t.Errorf("WaveTarget = %d, want %d", s.WaveTarget, WaveTarget(3))
	}
}

func TestRandDeterministicWithSeed(t *testing.T) {
	a := NewRand(7)
	b := NewRand(7)
	for i := 0; i < 100; i++ {
		if a.Intn(1000) != b.Intn(1000) {
			t.Fatal("same seed produced diverging sequences")
		}
	}
}
