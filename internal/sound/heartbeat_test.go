package sound

import (
	"math"
	"testing"

	"github.com/faiface/beep"
)

func peak(samples [][2]float64) float64 {
	m := 0.0
	for _, s := range samples {
		m = math.Max(m, math.Abs(s[0]))
		if s[0] != s[1] {
			return math.NaN()
		}
	}
	return m
}

func TestHeartbeatSilentUntilTriggered(t *testing.T) {
	h := NewHeartbeat(beep.SampleRate(8000), 1)
	buf := make([][2]float64, 512)
	n, ok := h.Stream(buf)
	if n != len(buf) || !ok {
		t.Fatalf("Stream = (%d, %v), want (%d, true)", n, ok, len(buf))
	}
	if p := peak(buf); p != 0 {
		t.Errorf("peak = %v, want silence", p)
	}
}

func TestHeartbeatTriggerPlaysThenStops(t *testing.T) {
	h := NewHeartbeat(beep.SampleRate(8000), 1)
	h.Trigger()
	if !h.Playing() {
		t.Fatal("not playing after Trigger")
	}
	buf := make([][2]float64, 800)
	h.Stream(buf)
	if p := peak(buf); !(p > 0.1) || p > 1 {
		t.Errorf("peak = %v, want an audible beat within [-1, 1]", p)
	}

	rest := make([][2]float64, h.length())
	h.Stream(rest)
	if h.Playing() {
		t.Error("still playing after the beat length")
	}
	h.Stream(buf)
	if p := peak(buf); p != 0 {
		t.Errorf("peak after beat = %v, want silence", p)
	}
}

func TestHeartbeatVolume(t *testing.T) {
	loud := NewHeartbeat(beep.SampleRate(8000), 1)
	quiet := NewHeartbeat(beep.SampleRate(8000), 0.25)
	loud.Trigger()
	quiet.Trigger()
	a := make([][2]float64, 400)
	b := make([][2]float64, 400)
	loud.Stream(a)
	quiet.Stream(b)
	if got, want := peak(b), peak(a)*0.25; math.Abs(got-want) > 1e-12 {
		t.Errorf("quiet peak = %v, want %v", got, want)
	}
}
