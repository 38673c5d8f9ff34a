package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// surface draws logical coordinates onto an ebiten canvas scaled by the
// device pixel ratio.
type surface struct {
	img   *ebiten.Image
	scale float64
}

func (s *surface) Fill(c color.Color) {
	s.img.Fill(c)
}

func (s *surface) FillRect(x, y, w, h float64, c color.Color) {
	k := s.scale
	vector.DrawFilledRect(s.img, float32(x*k), float32(y*k), float32(w*k), float32(h*k), c, false)
}
