package audio

import (
	"github.com/dfry/skyguard/engine/core"
)

// SoundID identifies a sound effect
type SoundID string

const (
	SndFire     SoundID = "fire"
	SndBlast    SoundID = "blast"
	SndImpact   SoundID = "impact"
	SndBreach   SoundID = "breach"
	SndPurchase SoundID = "purchase"
	SndWave     SoundID = "wave"
	SndGameOver SoundID = "gameover"
	SndVictory  SoundID = "victory"
)

// AudioManager turns simulation events into sound cues.
// Uses Ebitengine's audio package internally.
type AudioManager struct {
	MasterVolume float64
	SFXVolume    float64
	Muted        bool

	// LastCue keeps the most recent cue for the host (and tests) to observe
	LastCue SoundID
}

func NewAudioManager() *AudioManager {
	return &AudioManager{
		MasterVolume: 1.0,
		SFXVolume:    0.8,
	}
}

// WireBus subscribes the cue mapping to simulation events
func (am *AudioManager) WireBus(bus *core.EventBus) {
	cues := map[core.EventType]SoundID{
		core.EvtProjectileFired: SndFire,
		core.EvtZoneSpawned:     SndBlast,
		core.EvtEnemyImpact:     SndImpact,
		core.EvtShelterLost:     SndBreach,
		core.EvtEmplacementLost: SndBreach,
		core.EvtPurchase:        SndPurchase,
		core.EvtWaveCleared:     SndWave,
		core.EvtGameLost:        SndGameOver,
		core.EvtGameWon:         SndVictory,
	}
	for evt, snd := range cues {
		snd := snd
		bus.On(evt, func(core.Event) {
			am.PlaySFX(snd)
		})
	}
}

// PlaySFX plays a sound effect
func (am *AudioManager) PlaySFX(id SoundID) {
	if am.Muted || am.volume() <= 0 {
		return
	}
	am.LastCue = id
	// In a real implementation, we'd load and play audio bytes via
	// ebiten/audio. For now this is a stub that integrates into the
	// architecture.
}

// ToggleMute flips the mute state
func (am *AudioManager) ToggleMute() {
	am.Muted = !am.Muted
}

func (am *AudioManager) volume() float64 {
	return am.SFXVolume * am.MasterVolume
}

// SetVolume sets master volume (0-1)
func (am *AudioManager) SetVolume(v float64) {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	am.MasterVolume = v
}
