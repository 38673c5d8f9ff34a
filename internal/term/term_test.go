package term

import (
	"context"
	"image/color"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/heart-swarm/internal/config"
	"github.com/iburimskiy/heart-swarm/internal/heart"
)

func newTestRunner(t *testing.T) (*Runner, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	r, err := New(screen, config.Compact, heart.NewSource(1), nil)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(r.Close)
	return r, screen
}

func TestNewSizesSwarmToScreen(t *testing.T) {
	r, screen := newTestRunner(t)
	cols, rows := screen.Size()
	w, h := r.Swarm().Size()
	if w != float64(cols)/config.TerminalScale || h != float64(rows*2)/config.TerminalScale {
		t.Errorf("swarm size = %vx%v for %dx%d cells", w, h, cols, rows)
	}
}

func TestStepDrawsHalfBlocks(t *testing.T) {
	r, screen := newTestRunner(t)
	for i := 0; i < 5; i++ {
		r.Step()
	}
	cols, rows := screen.Size()
	for _, pos := range [][2]int{{0, 0}, {cols - 1, rows - 1}, {cols / 2, rows / 2}} {
		ch, _, _, _ := screen.GetContent(pos[0], pos[1])
		if ch != halfBlock {
			t.Errorf("cell %v = %q, want %q", pos, ch, halfBlock)
		}
	}
}

func TestResizeAppliedOnNextStep(t *testing.T) {
	r, screen := newTestRunner(t)
	emitters := r.Swarm().Emitters()

	screen.SetSize(40, 12)
	if r.handle(tcell.NewEventResize(40, 12)) {
		t.Fatal("resize treated as quit")
	}
	if !r.pending {
		t.Fatal("resize not recorded")
	}
	r.Step()
	if r.pending {
		t.Error("resize still pending after Step")
	}
	if b := r.surface.Image().Bounds(); b.Dx() != 40 || b.Dy() != 24 {
		t.Errorf("surface = %v, want 40x24", b)
	}
	if w, h := r.Swarm().Size(); w != 160 || h != 96 {
		t.Errorf("swarm size = %vx%v, want 160x96", w, h)
	}
	if r.Swarm().Emitters()[0] != emitters[0] {
		t.Error("emitters were recreated on resize")
	}
}

func TestIsQuit(t *testing.T) {
	tests := []struct {
		key  tcell.Key
		ch   rune
		want bool
	}{
		{tcell.KeyEscape, 0, true},
		{tcell.KeyCtrlC, 0, true},
		{tcell.KeyRune, 'q', true},
		{tcell.KeyRune, 'x', false},
		{tcell.KeyEnter, 0, false},
	}
	for _, tt := range tests {
		if got := isQuit(tt.key, tt.ch); got != tt.want {
			t.Errorf("isQuit(%v, %q) = %v, want %v", tt.key, tt.ch, got, tt.want)
		}
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	r, _ := newTestRunner(t)
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run = %v, want nil", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	if r.Swarm().Time() == 0 {
		t.Error("no ticks ran before cancel")
	}
}

func TestCellStyle(t *testing.T) {
	st := cellStyle(color.RGBA{R: 200, A: 255}, color.RGBA{B: 10, A: 255})
	fg, bg, _ := st.Decompose()
	if fg != tcell.NewRGBColor(200, 0, 0) || bg != tcell.NewRGBColor(0, 0, 10) {
		t.Errorf("style = %v on %v", fg, bg)
	}
}
