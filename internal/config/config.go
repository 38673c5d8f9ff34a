package config

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

const (
	WindowWidth  = 1024
	WindowHeight = 768
	WindowTitle  = "Heart Swarm"

	// Simulation parameters
	TraceK         = 0.4
	TimeDelta      = 0.01
	ArrivalRadius  = 10.0
	TeleportChance = 0.05
	FlipChance     = 0.01
	FullPulse      = 0.8 // n above this slows time down

	// Emitter randomisation
	SpeedBase    = 5.0
	ForceBase    = 0.7
	ForceSpread  = 0.2
	SatBase      = 60
	SatSpread    = 40
	LightBase    = 20
	LightSpread  = 60
	TrailAlpha   = 0.3
	FadeAlpha    = 0.1
	EmitterHue   = 0.0
	OutlineCount = 3

	// Terminal host
	TerminalFPS   = 60
	TerminalScale = 0.25 // one half-block pixel per 4x4 logical pixels

	// HUD
	HUDFadeSeconds = 3.0
	HUDX           = 12
	HUDY           = 12

	// Heartbeat sound
	SampleRate    = 44100
	BeatFrequency = 55.0
	BeatVolume    = 0.6
)

var (
	ErrUnknownProfile = errors.New("unknown profile")
	ErrInvalidProfile = errors.New("invalid profile")
)

// Profile holds the device-class dependent constants supplied by the host.
type Profile struct {
	Name            string
	TracePointCount int
	AngularStep     float64
	// Resolution is the ratio of logical canvas size to host window size.
	Resolution float64
}

var (
	Desktop = Profile{Name: "desktop", TracePointCount: 50, AngularStep: 0.1, Resolution: 1}
	Compact = Profile{Name: "compact", TracePointCount: 20, AngularStep: 0.3, Resolution: 0.5}
)

// ProfileByName looks a profile up case-insensitively.
func ProfileByName(name string) (Profile, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", Desktop.Name:
		return Desktop, nil
	case Compact.Name, "mobile":
		return Compact, nil
	}
	return Profile{}, fmt.Errorf("%w: %q", ErrUnknownProfile, name)
}

func (p Profile) Validate() error {
	if p.TracePointCount < 1 {
		return fmt.Errorf("%w: trace point count %d", ErrInvalidProfile, p.TracePointCount)
	}
	if !(p.AngularStep > 0) || math.IsInf(p.AngularStep, 0) {
		return fmt.Errorf("%w: angular step %v", ErrInvalidProfile, p.AngularStep)
	}
	if !(p.Resolution > 0) || p.Resolution > 1 {
		return fmt.Errorf("%w: resolution %v", ErrInvalidProfile, p.Resolution)
	}
	return nil
}
