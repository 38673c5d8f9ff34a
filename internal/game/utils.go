package game

import "math"

// frameSize is the result of mapping a host window onto the canvas.
type frameSize struct {
	screenW, screenH   int     // physical screen pixels
	canvasW, canvasH   int     // physical canvas pixels
	logicalW, logicalH float64 // simulation coordinates
}

// layoutSize maps an outside window size to screen, canvas and logical
// sizes. resolution shrinks the logical canvas relative to the window and
// dpr maps logical to physical pixels.
func layoutSize(outsideW, outsideH int, dpr, resolution float64) frameSize {
	if dpr <= 0 {
		dpr = 1
	}
	lw := math.Floor(float64(outsideW) * resolution)
	lh := math.Floor(float64(outsideH) * resolution)
	return frameSize{
		screenW:  max(1, int(math.Ceil(float64(outsideW)*dpr))),
		screenH:  max(1, int(math.Ceil(float64(outsideH)*dpr))),
		canvasW:  max(1, int(math.Ceil(lw*dpr))),
		canvasH:  max(1, int(math.Ceil(lh*dpr))),
		logicalW: lw,
		logicalH: lh,
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
