package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/iburimskiy/heart-swarm/internal/config"
)

// Debug font cell size used by ebitenutil.
const (
	glyphW = 6
	glyphH = 16
)

// hud is a one-line status that fades out after being shown.
type hud struct {
	text  string
	tween *gween.Tween
	alpha float64
	img   *ebiten.Image
	dirty bool
}

func (h *hud) Show(text string) {
	h.text = text
	h.tween = gween.New(1, 0, config.HUDFadeSeconds, ease.InQuad)
	h.alpha = 1
	h.dirty = true
}

func (h *hud) Update(dt float32) {
	if h.tween == nil {
		return
	}
	a, done := h.tween.Update(dt)
	h.alpha = clamp01(float64(a))
	if done {
		h.tween = nil
		h.alpha = 0
	}
}

func (h *hud) Visible() bool { return h.alpha > 0 }

func (h *hud) Draw(screen *ebiten.Image) {
	if !h.Visible() {
		return
	}
	if h.dirty {
		if h.img != nil {
			h.img.Deallocate()
		}
		h.img = ebiten.NewImage(len(h.text)*glyphW+glyphW, glyphH)
		ebitenutil.DebugPrint(h.img, h.text)
		h.dirty = false
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(config.HUDX, config.HUDY)
	op.ColorScale.ScaleAlpha(float32(h.alpha))
	screen.DrawImage(h.img, op)
}
