// Package game hosts the swarm in an ebiten window.
package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/heart-swarm/internal/config"
	"github.com/iburimskiy/heart-swarm/internal/heart"
	"github.com/iburimskiy/heart-swarm/internal/sound"
)

type Options struct {
	ShowHUD   bool
	Heartbeat *sound.Heartbeat // nil disables sound
}

// Game drives one swarm tick per ebiten update and keeps its trails on a
// persistent canvas.
type Game struct {
	profile config.Profile
	swarm   *heart.Swarm
	opts    Options

	canvas  *ebiten.Image
	surface surface
	hud     hud
	dpr     float64

	// Layout records the host size; Update applies it before the next tick.
	outsideW, outsideH int
	pending            bool
}

func New(profile config.Profile, swarm *heart.Swarm, opts Options) *Game {
	return &Game{
		profile: profile,
		swarm:   swarm,
		opts:    opts,
		dpr:     1,
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if g.pending {
		g.applyResize()
	}
	if g.canvas == nil {
		return nil
	}

	g.swarm.Tick(&g.surface)
	if g.opts.Heartbeat != nil && g.swarm.Beat() {
		g.opts.Heartbeat.Trigger()
	}
	g.hud.Update(1 / float32(ebiten.TPS()))
	return nil
}

// applyResize reallocates the canvas, clears it to black and recentres the
// heart. Emitters are kept.
func (g *Game) applyResize() {
	g.pending = false
	fs := layoutSize(g.outsideW, g.outsideH, g.dpr, g.profile.Resolution)

	if g.canvas != nil {
		b := g.canvas.Bounds()
		if b.Dx() != fs.canvasW || b.Dy() != fs.canvasH {
			g.canvas.Deallocate()
			g.canvas = nil
		}
	}
	if g.canvas == nil {
		g.canvas = ebiten.NewImage(fs.canvasW, fs.canvasH)
	}
	g.surface = surface{img: g.canvas, scale: g.dpr}
	g.surface.Fill(color.Black)
	g.swarm.Resize(fs.logicalW, fs.logicalH)

	if g.opts.ShowHUD {
		g.hud.Show(fmt.Sprintf("%s %.0fx%.0f @%.2gx  emitters %d  targets %d",
			g.profile.Name, fs.logicalW, fs.logicalH, g.dpr,
			len(g.swarm.Emitters()), g.swarm.TargetCount()))
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.canvas == nil {
		return
	}
	sb, cb := screen.Bounds(), g.canvas.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(sb.Dx())/float64(cb.Dx()), float64(sb.Dy())/float64(cb.Dy()))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(g.canvas, op)

	g.hud.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	dpr := 1.0
	if m := ebiten.Monitor(); m != nil {
		dpr = m.DeviceScaleFactor()
	}
	if outsideWidth != g.outsideW || outsideHeight != g.outsideH || dpr != g.dpr || g.canvas == nil {
		g.outsideW, g.outsideH, g.dpr = outsideWidth, outsideHeight, dpr
		g.pending = true
	}
	fs := layoutSize(outsideWidth, outsideHeight, dpr, g.profile.Resolution)
	return fs.screenW, fs.screenH
}

// Run opens the window and blocks until it is closed.
func Run(g *Game) error {
	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(g)
}
