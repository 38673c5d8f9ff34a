package heart

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidStep = errors.New("angular step must be finite and positive")

// Point is a position in logical pixels.
type Point struct {
	X, Y float64
}

// Outline is the scale applied to the unit heart for one nested outline.
type Outline struct {
	SX, SY float64
}

// Outlines lists the nested outlines from outer to inner.
var Outlines = [3]Outline{
	{SX: 210, SY: 13},
	{SX: 150, SY: 9},
	{SX: 90, SY: 5},
}

// HeartPosition returns the canonical heart curve at angle theta.
func HeartPosition(theta float64) Point {
	s := math.Sin(theta)
	return Point{
		X: s * s * s,
		Y: -(15*math.Cos(theta) - 5*math.Cos(2*theta) - 2*math.Cos(3*theta) - math.Cos(4*theta)),
	}
}

// SampleCount is the number of angles SampleCurve visits for step.
func SampleCount(step float64) int {
	return int(math.Ceil(2 * math.Pi / step))
}

// SampleCurve walks one full turn in increments of step and emits, for each
// angle, one point per outline in Outlines order. Indices into the result
// are positional: i±len(Outlines) is the same outline one step along.
func SampleCurve(step float64) ([]Point, error) {
	if !(step > 0) || math.IsInf(step, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidStep, step)
	}
	n := SampleCount(step)
	points := make([]Point, 0, n*len(Outlines))
	for i := 0; i < n; i++ {
		h := HeartPosition(float64(i) * step)
		for _, o := range Outlines {
			points = append(points, Point{X: h.X * o.SX, Y: h.Y * o.SY})
		}
	}
	return points, nil
}
