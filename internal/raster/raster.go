// Package raster implements heart.Surface over an in-memory RGBA image.
// It backs the terminal host and headless PNG snapshots.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/draw"
)

// Surface draws logical coordinates multiplied by Scale into an RGBA image.
type Surface struct {
	img   *image.RGBA
	scale float64
}

// New returns a black surface of w x h physical pixels.
func New(w, h int, scale float64) *Surface {
	s := &Surface{scale: scale}
	s.Resize(w, h)
	return s
}

// Resize reallocates the image and clears it to black.
func (s *Surface) Resize(w, h int) {
	s.img = image.NewRGBA(image.Rect(0, 0, max(w, 0), max(h, 0)))
	s.Fill(color.Black)
}

func (s *Surface) Fill(c color.Color) {
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// FillRect covers at least one physical pixel so sub-pixel dots stay visible
// when Scale < 1.
func (s *Surface) FillRect(x, y, w, h float64, c color.Color) {
	x0 := int(math.Floor(x * s.scale))
	y0 := int(math.Floor(y * s.scale))
	x1 := max(int(math.Ceil((x+w)*s.scale)), x0+1)
	y1 := max(int(math.Ceil((y+h)*s.scale)), y0+1)
	r := image.Rect(x0, y0, x1, y1).Intersect(s.img.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(s.img, r, image.NewUniform(c), image.Point{}, draw.Over)
}

func (s *Surface) Image() *image.RGBA { return s.img }

func (s *Surface) Scale() float64 { return s.scale }

// LogicalSize is the surface size in logical pixels.
func (s *Surface) LogicalSize() (w, h float64) {
	b := s.img.Bounds()
	return float64(b.Dx()) / s.scale, float64(b.Dy()) / s.scale
}

// Encode writes img as PNG. A positive width different from the image width
// rescales it first, keeping the aspect ratio.
func Encode(w io.Writer, img image.Image, width int) error {
	if width > 0 && width != img.Bounds().Dx() {
		img = Resample(img, width)
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// Resample scales img to the given width with Catmull-Rom filtering.
func Resample(img image.Image, width int) *image.RGBA {
	b := img.Bounds()
	height := 1
	if b.Dx() > 0 {
		height = max(1, int(math.Round(float64(b.Dy())*float64(width)/float64(b.Dx()))))
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
