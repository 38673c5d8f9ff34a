package heart

import (
	"image/color"
	"math"

	"github.com/iburimskiy/heart-swarm/internal/config"
)

// MinDistance bounds the head-to-target distance used to normalise the
// attraction force. A head sitting exactly on its target gets zero force.
const MinDistance = 1e-6

// EmitterParams are the per-emitter constants chosen at creation.
type EmitterParams struct {
	Start     Point
	TraceLen  int
	Target    int
	Direction int     // +1 or -1
	Speed     float64 // attraction per frame
	Force     float64 // velocity damping, in (0.7, 0.9)
	Color     color.NRGBA
}

// Emitter is one moving dot and its trail. trail[0] is the simulated head,
// the rest relax toward their predecessor.
type Emitter struct {
	vx, vy float64
	target int
	dir    int
	speed  float64
	force  float64
	color  color.NRGBA
	trail  []Point
}

func NewEmitter(p EmitterParams) *Emitter {
	n := p.TraceLen
	if n < 1 {
		n = 1
	}
	trail := make([]Point, n)
	for i := range trail {
		trail[i] = p.Start
	}
	dir := 1
	if p.Direction < 0 {
		dir = -1
	}
	return &Emitter{
		target: p.Target,
		dir:    dir,
		speed:  p.Speed,
		force:  p.Force,
		color:  p.Color,
		trail:  trail,
	}
}

// Advance moves the emitter one frame toward target, the point at its
// current target index, and picks the next index if it has arrived.
// count is the number of targets.
func (e *Emitter) Advance(target Point, count int, src Source) {
	head := &e.trail[0]
	dx := head.X - target.X
	dy := head.Y - target.Y
	dist := math.Sqrt(dx*dx + dy*dy)

	if dist < config.ArrivalRadius {
		e.retarget(count, src)
	}
	if dist < MinDistance {
		dist = MinDistance
	}

	e.vx += (-dx / dist) * e.speed
	e.vy += (-dy / dist) * e.speed
	head.X += e.vx
	head.Y += e.vy
	e.vx *= e.force
	e.vy *= e.force

	e.relax(config.TraceK)
}

// retarget teleports to a random index now and then, otherwise sweeps one
// index along the curve, rarely flipping the sweep direction first.
func (e *Emitter) retarget(count int, src Source) {
	if count <= 0 {
		return
	}
	if src.Float64() > 1-config.TeleportChance {
		e.target = src.IntN(count)
		return
	}
	if src.Float64() > 1-config.FlipChance {
		e.dir = -e.dir
	}
	e.target = wrapIndex(e.target+e.dir, count)
}

func wrapIndex(i, n int) int {
	return ((i % n) + n) % n
}

func (e *Emitter) relax(k float64) {
	for i := 0; i < len(e.trail)-1; i++ {
		lead, next := e.trail[i], &e.trail[i+1]
		next.X -= k * (next.X - lead.X)
		next.Y -= k * (next.Y - lead.Y)
	}
}

// Draw plots every trail point as a 1x1 rect.
func (e *Emitter) Draw(dst Surface) {
	for _, p := range e.trail {
		dst.FillRect(p.X, p.Y, 1, 1, e.color)
	}
}

func (e *Emitter) Head() Point { return e.trail[0] }

// Trail returns the live trail. Callers must not modify it.
func (e *Emitter) Trail() []Point { return e.trail }

func (e *Emitter) Velocity() (vx, vy float64) { return e.vx, e.vy }
func (e *Emitter) TargetIndex() int           { return e.target }
func (e *Emitter) Direction() int             { return e.dir }
func (e *Emitter) Color() color.NRGBA         { return e.color }
