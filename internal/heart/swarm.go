package heart

import (
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/heart-swarm/internal/config"
)

var fadeColor = color.NRGBA{A: uint8(math.Round(config.FadeAlpha * 255))}

// PulseFactor is the breathing scale at time t, in [0, 1].
func PulseFactor(t float64) float64 {
	return (1 - math.Cos(t)) / 2
}

// TimeRate is the multiplier applied to the time step at time t: fast
// through the contracting half, slow near full extension, unit otherwise.
func TimeRate(t float64) float64 {
	switch {
	case math.Sin(t) < 0:
		return 9
	case -math.Cos(t) > config.FullPulse:
		return 0.2
	}
	return 1
}

// Swarm owns the emitters, the target field and the animation clock.
type Swarm struct {
	field    *TargetField
	emitters []*Emitter
	src      Source

	width, height float64
	time          float64
	pulse         float64
	full          bool
	beat          bool
}

// NewSwarm builds one emitter per sampled curve point, scattered over a
// width x height surface.
func NewSwarm(p config.Profile, width, height float64, src Source) (*Swarm, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	origin, err := SampleCurve(p.AngularStep)
	if err != nil {
		return nil, fmt.Errorf("sample curve: %w", err)
	}
	s := &Swarm{
		field:  NewTargetField(origin),
		src:    src,
		width:  width,
		height: height,
	}
	count := len(origin)
	s.emitters = make([]*Emitter, count)
	for i := range s.emitters {
		start := Point{X: src.Float64() * width, Y: src.Float64() * height}
		s.emitters[i] = NewEmitter(EmitterParams{
			Start:     start,
			TraceLen:  p.TracePointCount,
			Speed:     src.Float64() + config.SpeedBase,
			Target:    src.IntN(count),
			Direction: 2*(i%2) - 1,
			Force:     config.ForceSpread*src.Float64() + config.ForceBase,
			Color:     emitterColor(src),
		})
	}
	return s, nil
}

// emitterColor is a red of random saturation and lightness at trail alpha.
func emitterColor(src Source) color.NRGBA {
	sat := math.Floor(config.SatSpread*src.Float64()+config.SatBase) / 100
	light := math.Floor(config.LightSpread*src.Float64()+config.LightBase) / 100
	r, g, b := colorful.Hsl(config.EmitterHue, sat, light).Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(config.TrailAlpha * 255))}
}

// Tick advances the clock one frame, refreshes the targets, fades dst and
// advances and draws every emitter.
func (s *Swarm) Tick(dst Surface) {
	n := -math.Cos(s.time)
	k := (1 + n) / 2
	s.time += TimeRate(s.time) * config.TimeDelta

	full := n > config.FullPulse
	s.beat = full && !s.full
	s.full = full
	s.pulse = k

	targets := s.field.Update(k, k, s.Center())

	dst.FillRect(0, 0, s.width, s.height, fadeColor)

	count := len(targets)
	for i := len(s.emitters) - 1; i >= 0; i-- {
		e := s.emitters[i]
		e.Advance(targets[e.target], count, s.src)
		e.Draw(dst)
	}
}

// Resize moves the heart to the centre of the new surface. Emitters keep
// their state.
func (s *Swarm) Resize(width, height float64) {
	s.width, s.height = width, height
}

func (s *Swarm) Center() Point {
	return Point{X: s.width / 2, Y: s.height / 2}
}

func (s *Swarm) Size() (width, height float64) { return s.width, s.height }

// Pulse is the scale used by the last Tick.
func (s *Swarm) Pulse() float64 { return s.pulse }

func (s *Swarm) Time() float64 { return s.time }

// Beat reports whether the last Tick entered full extension.
func (s *Swarm) Beat() bool { return s.beat }

func (s *Swarm) Emitters() []*Emitter { return s.emitters }

func (s *Swarm) TargetCount() int { return s.field.Len() }

// Targets returns the targets computed by the last Tick.
func (s *Swarm) Targets() []Point { return s.field.targets }
