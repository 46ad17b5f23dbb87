package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/dfry/skyguard/engine/audio"
	"github.com/dfry/skyguard/engine/core"
	"github.com/dfry/skyguard/engine/input"
	"github.com/dfry/skyguard/engine/render"
	"github.com/dfry/skyguard/engine/sim"
	"github.com/dfry/skyguard/engine/ui"
)

const (
	defaultWidth  = 960
	defaultHeight = 720
)

// shopKeys maps number keys to shop offer slots
var shopKeys = []ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5,
}

// Game implements ebiten.Game: it forwards input to the director, steps the
// simulation once per frame, and renders the latest snapshot.
type Game struct {
	director *sim.Director
	input    *input.InputState
	clock    *core.Clock
	scene    *render.SceneRenderer
	hud      *ui.HUD
	sound    *audio.AudioManager
}

func NewGame(seed int64) *Game {
	g := &Game{
		director: sim.New(seed),
		input:    input.NewInputState(),
		clock:    core.NewClock(),
		scene:    render.NewSceneRenderer(),
		hud:      ui.NewHUD(),
		sound:    audio.NewAudioManager(),
	}
	g.sound.WireBus(g.director.EventBus)
	return g
}

func (g *Game) Update() error {
	g.input.Update()

	if g.input.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	switch g.director.Session.State {
	case core.StateStart:
		if g.input.IsKeyJustPressed(ebiten.KeySpace) || g.input.IsKeyJustPressed(ebiten.KeyEnter) {
			g.director.Start()
			g.clock.Reset()
		}
	case core.StatePlaying:
		if g.input.LeftJustPressed {
			g.director.Fire(float64(g.input.MouseX), float64(g.input.MouseY))
		}
	case core.StateShop:
		offers := g.director.Offers()
		for i, k := range shopKeys {
			if i < len(offers) && g.input.IsKeyJustPressed(k) {
				g.director.Purchase(offers[i].Kind)
			}
		}
		if g.input.IsKeyJustPressed(ebiten.KeySpace) {
			g.director.NextWave()
			g.clock.Reset()
		}
	case core.StateWon, core.StateLost:
		if g.input.IsKeyJustPressed(ebiten.KeyR) || g.input.IsKeyJustPressed(ebiten.KeySpace) {
			g.director.Restart()
			g.clock.Reset()
		}
	}

	g.director.Step(g.clock.Delta())
	g.director.EventBus.Dispatch()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.director.Snapshot()
	if snap == nil {
		return
	}
	g.scene.Draw(screen, snap)

	var offers []sim.Offer
	if snap.State == core.StateShop {
		offers = g.director.Offers()
	}
	g.hud.Draw(screen, snap, offers)
}

// Layout forwards the viewport to the simulation so the defense layout
// tracks window resizes proportionally.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		g.director.Resize(float64(outsideWidth), float64(outsideHeight))
	}
	return outsideWidth, outsideHeight
}

func main() {
	seed := flag.Int64("seed", 0, "simulation seed (0 = random)")
	flag.Parse()

	ebiten.SetWindowSize(defaultWidth, defaultHeight)
	ebiten.SetWindowTitle("Skyguard")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(NewGame(*seed)); err != nil {
		log.Fatal(err)
	}
}
