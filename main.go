package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/faiface/beep"
	"github.com/gdamore/tcell/v2"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/heart-swarm/internal/config"
	"github.com/iburimskiy/heart-swarm/internal/game"
	"github.com/iburimskiy/heart-swarm/internal/heart"
	"github.com/iburimskiy/heart-swarm/internal/raster"
	"github.com/iburimskiy/heart-swarm/internal/sound"
	"github.com/iburimskiy/heart-swarm/internal/term"
)

var ErrUnknownMode = errors.New("unknown mode")

var (
	modeFlag    = flag.String("mode", "window", "Host: window, terminal, snapshot")
	profileFlag = flag.String("profile", "desktop", "Device class: desktop, compact")
	seedFlag    = flag.Uint64("seed", 0, "Random seed, 0 picks one")
	soundFlag   = flag.Bool("sound", false, "Play a heartbeat on every pulse")
	hudFlag     = flag.Bool("hud", false, "Show a status line after start and resize")
	widthFlag   = flag.Int("width", config.WindowWidth, "Snapshot width in logical pixels")
	heightFlag  = flag.Int("height", config.WindowHeight, "Snapshot height in logical pixels")
	scaleFlag   = flag.Float64("scale", 1, "Snapshot device pixel ratio")
	framesFlag  = flag.Int("frames", 600, "Snapshot frames to simulate")
	outFlag     = flag.String("out", "heart.png", "Snapshot output file")
	thumbFlag   = flag.Int("thumb", 0, "Snapshot output width, 0 keeps the rendered size")
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("heart-swarm: ")
	flag.Parse()

	if err := run(); err != nil {
		if *modeFlag == "window" {
			_ = zenity.Error(err.Error(), zenity.Title(config.WindowTitle), zenity.ErrorIcon)
		}
		log.Fatal(err)
	}
}

func run() error {
	profile, err := config.ProfileByName(*profileFlag)
	if err != nil {
		return err
	}
	src := heart.NewSource(*seedFlag)

	var hb *sound.Heartbeat
	if *soundFlag && *modeFlag != "snapshot" {
		hb = sound.NewHeartbeat(beep.SampleRate(config.SampleRate), config.BeatVolume)
		if err := sound.Start(hb); err != nil {
			log.Printf("sound disabled: %v", err)
			hb = nil
		} else {
			defer sound.Stop()
		}
	}

	switch *modeFlag {
	case "window":
		return runWindow(profile, src, hb)
	case "terminal":
		return runTerminal(profile, src, hb)
	case "snapshot":
		return runSnapshot(profile, src)
	}
	return fmt.Errorf("%w: %q", ErrUnknownMode, *modeFlag)
}

func runWindow(p config.Profile, src heart.Source, hb *sound.Heartbeat) error {
	swarm, err := heart.NewSwarm(p, config.WindowWidth*p.Resolution, config.WindowHeight*p.Resolution, src)
	if err != nil {
		return err
	}
	logStart(p, swarm)
	g := game.New(p, swarm, game.Options{ShowHUD: *hudFlag, Heartbeat: hb})
	if err := game.Run(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}

func runTerminal(p config.Profile, src heart.Source, hb *sound.Heartbeat) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	r, err := term.New(screen, p, src, hb)
	if err != nil {
		return err
	}
	defer r.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return r.Run(ctx)
}

func runSnapshot(p config.Profile, src heart.Source) error {
	if *widthFlag <= 0 || *heightFlag <= 0 || *scaleFlag <= 0 {
		return fmt.Errorf("snapshot size %dx%d @%v is not positive", *widthFlag, *heightFlag, *scaleFlag)
	}
	w := float64(*widthFlag) * p.Resolution
	h := float64(*heightFlag) * p.Resolution
	surface := raster.New(int(w**scaleFlag), int(h**scaleFlag), *scaleFlag)
	swarm, err := heart.NewSwarm(p, w, h, src)
	if err != nil {
		return err
	}
	logStart(p, swarm)

	for range *framesFlag {
		swarm.Tick(surface)
	}

	f, err := os.Create(*outFlag)
	if err != nil {
		return err
	}
	if err := raster.Encode(f, surface.Image(), *thumbFlag); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	log.Printf("wrote %s after %d frames", *outFlag, *framesFlag)
	return nil
}

func logStart(p config.Profile, s *heart.Swarm) {
	w, h := s.Size()
	log.Printf("profile %s: %d emitters, %d targets, trail %d, %.0fx%.0f",
		p.Name, len(s.Emitters()), s.TargetCount(), p.TracePointCount, w, h)
}
