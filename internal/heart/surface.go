package heart

import "image/color"

// Surface is the drawing target of a swarm, addressed in logical pixels.
// Implementations map logical coordinates to their own pixel grid.
type Surface interface {
	// Fill replaces every pixel with c.
	Fill(c color.Color)
	// FillRect composites c over the rectangle with source-over blending.
	FillRect(x, y, w, h float64, c color.Color)
}
