// Package render draws the simulation snapshot. It never touches the
// simulation itself: one snapshot in, one frame out.
package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/dfry/skyguard/engine/sim"
)

var (
	skyColor        = color.RGBA{12, 14, 24, 255}
	groundColor     = color.RGBA{24, 30, 26, 255}
	enemyColor      = color.RGBA{235, 90, 70, 255}
	eliteColor      = color.RGBA{250, 190, 60, 255}
	trailColor      = color.RGBA{235, 90, 70, 60}
	projectileColor = color.RGBA{130, 200, 255, 255}
	zoneColor       = color.RGBA{255, 160, 60, 120}
	zoneFadeColor   = color.RGBA{255, 120, 40, 70}
	markColor       = color.RGBA{90, 80, 70, 255}
	emplacementOK   = color.RGBA{120, 220, 140, 255}
	shelterOK       = color.RGBA{100, 160, 230, 255}
	structureDead   = color.RGBA{70, 70, 80, 255}
	barricadeColor  = color.RGBA{170, 150, 90, 255}
)

// SceneRenderer draws the world layer: ground, marks, defenses, enemies,
// projectiles and zones. HUD chrome lives in the ui package.
type SceneRenderer struct{}

func NewSceneRenderer() *SceneRenderer {
	return &SceneRenderer{}
}

func (r *SceneRenderer) Draw(screen *ebiten.Image, snap *sim.Snapshot) {
	w := float32(screen.Bounds().Dx())
	h := float32(screen.Bounds().Dy())

	screen.Fill(skyColor)
	vector.DrawFilledRect(screen, 0, h*0.9, w, h*0.1, groundColor, false)

	// Marks first so everything else layers over them
	for _, m := range snap.Marks {
		r.drawMark(screen, m)
	}

	r.drawDefenses(screen, snap)

	for _, e := range snap.Enemies {
		r.drawEnemy(screen, e)
	}
	for _, p := range snap.Projectiles {
		vector.DrawFilledCircle(screen, float32(p.Pos.X), float32(p.Pos.Y), 3, projectileColor, true)
	}
	for _, z := range snap.Zones {
		clr := zoneColor
		if !z.Growing {
			clr = zoneFadeColor
		}
		vector.DrawFilledCircle(screen, float32(z.Pos.X), float32(z.Pos.Y), float32(z.Radius), clr, true)
	}
}

func (r *SceneRenderer) drawEnemy(screen *ebiten.Image, e sim.EnemyView) {
	for i := 1; i < len(e.Trail); i++ {
		a := e.Trail[i-1]
		b := e.Trail[i]
		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 2, trailColor, false)
	}

	clr := enemyColor
	radius := float32(6)
	if e.Elite {
		clr = eliteColor
		radius = 9
	}
	vector.DrawFilledCircle(screen, float32(e.Pos.X), float32(e.Pos.Y), radius, clr, true)
	// Health ring only means something for elites; normals die in one hit
	if e.Elite && e.HealthRatio < 1 {
		vector.StrokeCircle(screen, float32(e.Pos.X), float32(e.Pos.Y), radius+3,
			2, color.RGBA{250, 190, 60, uint8(60 + 180*e.HealthRatio)}, true)
	}
}

func (r *SceneRenderer) drawMark(screen *ebiten.Image, m sim.MarkView) {
	a := uint8(float64(markColor.A) * m.Opacity)
	clr := color.RGBA{markColor.R, markColor.G, markColor.B, a}
	// A rotated cross reads as debris without costing a sprite
	s := m.Size / 2
	c := math.Cos(m.Rotation)
	sn := math.Sin(m.Rotation)
	x, y := m.Pos.X, m.Pos.Y
	vector.StrokeLine(screen,
		float32(x-c*s), float32(y-sn*s), float32(x+c*s), float32(y+sn*s), 3, clr, false)
	vector.StrokeLine(screen,
		float32(x+sn*s), float32(y-c*s), float32(x-sn*s), float32(y+c*s), 3, clr, false)
}

func (r *SceneRenderer) drawDefenses(screen *ebiten.Image, snap *sim.Snapshot) {
	emp := snap.Emplacement
	clr := emplacementOK
	if !emp.Active {
		clr = structureDead
	}
	x, y := float32(emp.Pos.X), float32(emp.Pos.Y)
	vector.DrawFilledRect(screen, x-10, y-10, 20, 20, clr, false)
	vector.StrokeCircle(screen, x, y, 14, 1, clr, true)

	for _, sh := range snap.Shelters {
		clr := shelterOK
		if !sh.Active {
			clr = structureDead
		}
		vector.DrawFilledRect(screen, float32(sh.Pos.X)-8, float32(sh.Pos.Y)-8, 16, 16, clr, false)
	}

	for _, b := range snap.Barricades {
		if b.HealthRatio <= 0 {
			continue
		}
		a := uint8(80 + 175*b.HealthRatio)
		clr := color.RGBA{barricadeColor.R, barricadeColor.G, barricadeColor.B, a}
		vector.DrawFilledRect(screen, float32(b.Pos.X)-16, float32(b.Pos.Y)-4, 32, 8, clr, false)
	}
}
