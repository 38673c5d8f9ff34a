// Package sound plays a synthesised heartbeat in time with the pulse.
package sound

import (
	"math"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/heart-swarm/internal/config"
)

// thump is one decaying low sine inside a beat.
type thump struct {
	offset time.Duration
	gain   float64
}

// lub-dub: a strong first sound and a softer second one.
var beatShape = []thump{
	{offset: 0, gain: 1},
	{offset: 180 * time.Millisecond, gain: 0.6},
}

const thumpLength = 150 * time.Millisecond

// Heartbeat is a beep.Streamer producing silence until Trigger is called.
// The speaker reads it from its own goroutine, so state is mutex guarded.
type Heartbeat struct {
	sampleRate beep.SampleRate
	volume     float64

	mu      sync.Mutex
	pos     int // samples into the current beat
	playing bool
}

func NewHeartbeat(sr beep.SampleRate, volume float64) *Heartbeat {
	return &Heartbeat{sampleRate: sr, volume: volume}
}

// Trigger restarts the beat from its first thump.
func (h *Heartbeat) Trigger() {
	h.mu.Lock()
	h.pos = 0
	h.playing = true
	h.mu.Unlock()
}

func (h *Heartbeat) Playing() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.playing
}

func (h *Heartbeat) length() int {
	last := beatShape[len(beatShape)-1]
	return h.sampleRate.N(last.offset + thumpLength)
}

// Stream never drains; it fills silence between beats.
func (h *Heartbeat) Stream(samples [][2]float64) (int, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	total := h.length()
	for i := range samples {
		v := 0.0
		if h.playing {
			v = h.sample(h.pos)
			h.pos++
			if h.pos >= total {
				h.playing = false
			}
		}
		samples[i][0] = v
		samples[i][1] = v
	}
	return len(samples), true
}

func (h *Heartbeat) Err() error { return nil }

func (h *Heartbeat) sample(pos int) float64 {
	t := h.sampleRate.D(pos)
	v := 0.0
	for _, th := range beatShape {
		dt := t - th.offset
		if dt < 0 || dt >= thumpLength {
			continue
		}
		s := dt.Seconds()
		env := math.Exp(-s * 30)
		v += th.gain * env * math.Sin(2*math.Pi*config.BeatFrequency*s)
	}
	return v * h.volume
}

// Start initialises the speaker and plays h on it.
func Start(h *Heartbeat) error {
	if err := speaker.Init(h.sampleRate, h.sampleRate.N(time.Second/20)); err != nil {
		return err
	}
	speaker.Play(h)
	return nil
}

// Stop silences the speaker.
func Stop() {
	speaker.Lock()
	speaker.Clear()
	speaker.Unlock()
}
