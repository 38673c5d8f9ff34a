// Package term hosts the swarm in a terminal. Each cell shows two vertical
// pixels with the upper half block, foreground on top and background below.
package term

import (
	"context"
	"fmt"
	"image/color"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/heart-swarm/internal/config"
	"github.com/iburimskiy/heart-swarm/internal/heart"
	"github.com/iburimskiy/heart-swarm/internal/raster"
	"github.com/iburimskiy/heart-swarm/internal/sound"
)

const halfBlock = '▀'

// Runner owns an initialised screen and the swarm drawn on it.
type Runner struct {
	screen    tcell.Screen
	swarm     *heart.Swarm
	surface   *raster.Surface
	heartbeat *sound.Heartbeat

	pending bool
	events  chan tcell.Event
}

// New initialises screen and sizes the swarm to it. The caller must Close
// the runner to restore the terminal.
func New(screen tcell.Screen, p config.Profile, src heart.Source, hb *sound.Heartbeat) (*Runner, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init terminal: %w", err)
	}
	screen.HideCursor()
	screen.Clear()

	cols, rows := screen.Size()
	surface := raster.New(cols, rows*2, config.TerminalScale)
	w, h := surface.LogicalSize()
	swarm, err := heart.NewSwarm(p, w, h, src)
	if err != nil {
		screen.Fini()
		return nil, err
	}
	return &Runner{
		screen:    screen,
		swarm:     swarm,
		surface:   surface,
		heartbeat: hb,
		events:    make(chan tcell.Event, 16),
	}, nil
}

func (r *Runner) Close() {
	r.screen.Fini()
}

func (r *Runner) Swarm() *heart.Swarm { return r.swarm }

// Run ticks at config.TerminalFPS until ctx is done or a quit key arrives.
func (r *Runner) Run(ctx context.Context) error {
	go r.pollEvents(ctx)

	ticker := time.NewTicker(time.Second / config.TerminalFPS)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-r.events:
			if r.handle(ev) {
				return nil
			}
		case <-ticker.C:
			r.Step()
		}
	}
}

// pollEvents forwards screen events into the loop so resize state is only
// touched between ticks.
func (r *Runner) pollEvents(ctx context.Context) {
	for {
		ev := r.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case r.events <- ev:
		case <-ctx.Done():
			return
		}
	}
}

// handle records resizes and reports whether ev asks to quit.
func (r *Runner) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		r.pending = true
	case *tcell.EventKey:
		return isQuit(ev.Key(), ev.Rune())
	}
	return false
}

func isQuit(k tcell.Key, ch rune) bool {
	switch k {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ch == 'q' || ch == 'Q'
	}
	return false
}

// Step applies a pending resize, ticks the swarm once and shows the frame.
func (r *Runner) Step() {
	if r.pending {
		r.pending = false
		r.screen.Sync()
		cols, rows := r.screen.Size()
		r.surface.Resize(cols, rows*2)
		r.swarm.Resize(r.surface.LogicalSize())
	}
	r.swarm.Tick(r.surface)
	if r.heartbeat != nil && r.swarm.Beat() {
		r.heartbeat.Trigger()
	}
	r.blit()
	r.screen.Show()
}

func (r *Runner) blit() {
	img := r.surface.Image()
	b := img.Bounds()
	for y := 0; y < b.Dy()/2; y++ {
		for x := 0; x < b.Dx(); x++ {
			top := img.RGBAAt(x, 2*y)
			bottom := img.RGBAAt(x, 2*y+1)
			r.screen.SetContent(x, y, halfBlock, nil, cellStyle(top, bottom))
		}
	}
}

func cellStyle(top, bottom color.RGBA) tcell.Style {
	return tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
		Background(tcell.NewRGBColor(int32(bottom.R), int32(bottom.G), int32(bottom.B)))
}
