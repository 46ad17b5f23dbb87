// Package ui draws the HUD and the between-wave shop panel on top of the
// scene, and the start/won/lost overlays.
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/dfry/skyguard/engine/core"
	"github.com/dfry/skyguard/engine/sim"
)

const topBarHeight = 26

var (
	barColor     = color.RGBA{0, 0, 0, 180}
	panelColor   = color.RGBA{20, 20, 40, 230}
	textColor    = color.RGBA{230, 230, 230, 255}
	dimColor     = color.RGBA{120, 120, 130, 255}
	accentColor  = color.RGBA{250, 190, 60, 255}
	overlayColor = color.RGBA{0, 0, 0, 150}
)

// HUD is the heads-up display
type HUD struct {
	face text.Face
}

func NewHUD() *HUD {
	return &HUD{face: text.NewGoXFace(basicfont.Face7x13)}
}

// Draw renders the state-appropriate chrome over the scene
func (h *HUD) Draw(screen *ebiten.Image, snap *sim.Snapshot, offers []sim.Offer) {
	switch snap.State {
	case core.StateStart:
		h.drawOverlay(screen, "SKYGUARD", "space to start")
	case core.StatePlaying:
		h.drawTopBar(screen, snap)
	case core.StateShop:
		h.drawTopBar(screen, snap)
		h.drawShop(screen, snap, offers)
	case core.StateWon:
		h.drawTopBar(screen, snap)
		h.drawOverlay(screen, "ALL WAVES REPELLED",
			fmt.Sprintf("final score %d - R to play again", snap.Score))
	case core.StateLost:
		h.drawTopBar(screen, snap)
		h.drawOverlay(screen, "DEFENSES LOST",
			fmt.Sprintf("score %d, round %d - R to retry", snap.Score, snap.Round))
	}
}

func (h *HUD) drawTopBar(screen *ebiten.Image, snap *sim.Snapshot) {
	w := float32(screen.Bounds().Dx())
	vector.DrawFilledRect(screen, 0, 0, w, topBarHeight, barColor, false)
	h.printAt(screen, fmt.Sprintf("score %d", snap.Score), 10, 7, textColor)
	h.printAt(screen, fmt.Sprintf("round %d/%d", snap.Round, core.RoundLimit), 140, 7, textColor)
	h.printAt(screen, fmt.Sprintf("wave %d/%d", snap.Processed, snap.WaveTarget), 280, 7, textColor)
	h.printAt(screen, fmt.Sprintf("blast L%d  speed L%d", snap.RadiusLevel, snap.SpeedLevel),
		float64(screen.Bounds().Dx())-170, 7, dimColor)
}

func (h *HUD) drawShop(screen *ebiten.Image, snap *sim.Snapshot, offers []sim.Offer) {
	sw := float64(screen.Bounds().Dx())
	sh := float64(screen.Bounds().Dy())
	pw := 340.0
	ph := 40.0 + float64(len(offers))*24 + 34
	px := (sw - pw) / 2
	py := (sh - ph) / 2

	vector.DrawFilledRect(screen, float32(px), float32(py), float32(pw), float32(ph), panelColor, false)
	vector.StrokeRect(screen, float32(px), float32(py), float32(pw), float32(ph), 1, accentColor, false)

	h.printAt(screen, fmt.Sprintf("WAVE %d CLEARED - %d pts", snap.Round, snap.Score), px+16, py+12, accentColor)

	y := py + 40
	for i, o := range offers {
		clr := textColor
		note := ""
		if !o.Available {
			clr = dimColor
			note = " (n/a)"
		} else if !o.Affordable {
			clr = dimColor
			note = " (too costly)"
		}
		h.printAt(screen, fmt.Sprintf("%d. %s - %d%s", i+1, o.Label, o.Cost, note), px+16, y, clr)
		y += 24
	}
	h.printAt(screen, "space for next wave", px+16, y+8, accentColor)
}

func (h *HUD) drawOverlay(screen *ebiten.Image, title, hint string) {
	w := float32(screen.Bounds().Dx())
	ht := float32(screen.Bounds().Dy())
	vector.DrawFilledRect(screen, 0, 0, w, ht, overlayColor, false)

	cx := float64(w)/2 - float64(len(title))*3.5
	h.printAt(screen, title, cx, float64(ht)/2-20, accentColor)
	cx = float64(w)/2 - float64(len(hint))*3.5
	h.printAt(screen, hint, cx, float64(ht)/2+6, textColor)
}

func (h *HUD) printAt(screen *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, h.face, op)
}
