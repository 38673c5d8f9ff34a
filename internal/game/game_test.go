package game

import (
	"testing"

	"github.com/iburimskiy/heart-swarm/internal/heart"
)

var _ heart.Surface = (*surface)(nil)

func TestLayoutSize(t *testing.T) {
	tests := []struct {
		name     string
		w, h     int
		dpr, res float64
		want     frameSize
	}{
		{"desktop 1x", 1024, 768, 1, 1, frameSize{1024, 768, 1024, 768, 1024, 768}},
		{"desktop 2x", 800, 600, 2, 1, frameSize{1600, 1200, 1600, 1200, 800, 600}},
		{"compact 2x", 800, 600, 2, 0.5, frameSize{1600, 1200, 800, 600, 400, 300}},
		{"odd half", 801, 601, 1, 0.5, frameSize{801, 601, 400, 300, 400, 300}},
		{"bad dpr", 100, 50, 0, 1, frameSize{100, 50, 100, 50, 100, 50}},
		{"empty", 0, 0, 1, 1, frameSize{1, 1, 1, 1, 0, 0}},
	}
	for _, tt := range tests {
		if got := layoutSize(tt.w, tt.h, tt.dpr, tt.res); got != tt.want {
			t.Errorf("%s: layoutSize = %+v, want %+v", tt.name, got, tt.want)
		}
	}
}

func TestHUDFadesOut(t *testing.T) {
	var h hud
	if h.Visible() {
		t.Fatal("hud visible before Show")
	}
	h.Show("hello")
	if !h.Visible() || h.alpha != 1 {
		t.Fatalf("alpha = %v, want 1 after Show", h.alpha)
	}

	h.Update(1)
	mid := h.alpha
	if !(mid > 0 && mid < 1) {
		t.Errorf("alpha after 1s = %v, want inside (0, 1)", mid)
	}
	h.Update(1)
	if h.alpha >= mid {
		t.Errorf("alpha did not decrease: %v -> %v", mid, h.alpha)
	}
	h.Update(5)
	if h.Visible() {
		t.Errorf("alpha after fade = %v, want 0", h.alpha)
	}
}

func TestHUDShowRestartsFade(t *testing.T) {
	var h hud
	h.Show("a")
	h.Update(10)
	h.Show("b")
	if !h.Visible() || h.text != "b" || !h.dirty {
		t.Errorf("hud = %+v, want visible with new text", h)
	}
}

func TestClamp01(t *testing.T) {
	for _, c := range []struct{ in, want float64 }{{-1, 0}, {0.25, 0.25}, {3, 1}} {
		if got := clamp01(c.in); got != c.want {
			t.Errorf("clamp01(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}
