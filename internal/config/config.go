// SPDX-License-Identifier: EPL-2.0

// Package config collects the simulator settings from defaults, DOPPLER_*
// environment variables and command-line flags, in that order of precedence.
package config

import (
	"flag"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/studentenherz/Doppler-Effect-Simulator/doppler"
)

// Trajectory kinds.
const (
	Circular   = "circular"
	Linear     = "linear"
	Stationary = "stationary"
)

type Config struct {
	Kind string // circular, linear or stationary

	// Circular.
	Radius       float64
	AngularSpeed float64
	CenterX      float64
	CenterY      float64
	Phase        float64

	// Linear. Stationary uses StartX/StartY as its position.
	StartX float64
	StartY float64
	VelX   float64
	VelY   float64

	ListenerX float64
	ListenerY float64
	Speed     float64
	Attenuate bool
	Ordering  string

	OutRate  int // 0 keeps the input rate
	BitDepth int

	LogLevel string
	Port     int
	Debounce time.Duration
}

// Default returns a source circling the origin at 50 m, 1 rad/s, heard from
// (0, 60).
func Default() Config {
	return Config{
		Kind:         Circular,
		Radius:       50,
		AngularSpeed: 1,
		StartX:       100,
		StartY:       10,
		VelX:         -30,
		ListenerY:    60,
		Speed:        doppler.DefaultSpeed,
		Attenuate:    true,
		Ordering:     doppler.SortArrivals.String(),
		BitDepth:     16,
		LogLevel:     "info",
		Port:         8080,
		Debounce:     50 * time.Millisecond,
	}
}

// BindFlags registers every field on fs with the current values as defaults.
func (c *Config) BindFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.Kind, "trajectory", c.Kind, "source path: circular, linear or stationary")
	fs.Float64Var(&c.Radius, "radius", c.Radius, "circular path radius in m")
	fs.Float64Var(&c.AngularSpeed, "omega", c.AngularSpeed, "circular angular speed in rad/s")
	fs.Float64Var(&c.CenterX, "center-x", c.CenterX, "circle center x in m")
	fs.Float64Var(&c.CenterY, "center-y", c.CenterY, "circle center y in m")
	fs.Float64Var(&c.Phase, "phase", c.Phase, "circular start angle in rad")
	fs.Float64Var(&c.StartX, "start-x", c.StartX, "linear start (or stationary position) x in m")
	fs.Float64Var(&c.StartY, "start-y", c.StartY, "linear start (or stationary position) y in m")
	fs.Float64Var(&c.VelX, "vel-x", c.VelX, "linear velocity x in m/s")
	fs.Float64Var(&c.VelY, "vel-y", c.VelY, "linear velocity y in m/s")
	fs.Float64Var(&c.ListenerX, "listener-x", c.ListenerX, "listener x in m")
	fs.Float64Var(&c.ListenerY, "listener-y", c.ListenerY, "listener y in m")
	fs.Float64Var(&c.Speed, "speed", c.Speed, "propagation speed in m/s")
	fs.BoolVar(&c.Attenuate, "attenuate", c.Attenuate, "scale amplitude by inverse distance")
	fs.StringVar(&c.Ordering, "ordering", c.Ordering, "out of order arrivals: sort or strict")
	fs.IntVar(&c.OutRate, "out-rate", c.OutRate, "output sample rate, 0 keeps the input rate")
	fs.IntVar(&c.BitDepth, "bit-depth", c.BitDepth, "output WAV bit depth: 16 or 24")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "debug, info, warn or error")
	fs.IntVar(&c.Port, "port", c.Port, "viewer HTTP port")
	fs.DurationVar(&c.Debounce, "debounce", c.Debounce, "viewer recompute debounce")
}

// ApplyEnv overrides fields from DOPPLER_* variables found by lookup, usually
// os.LookupEnv. PORT is honoured as well.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok {
			*dst = v
		}
	}
	var errs []string
	num := func(key string, dst *float64) {
		if v, ok := lookup(key); ok {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				errs = append(errs, key)
				return
			}
			*dst = f
		}
	}
	integer := func(key string, dst *int) {
		if v, ok := lookup(key); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				errs = append(errs, key)
				return
			}
			*dst = n
		}
	}

	str("DOPPLER_TRAJECTORY", &c.Kind)
	num("DOPPLER_RADIUS", &c.Radius)
	num("DOPPLER_OMEGA", &c.AngularSpeed)
	num("DOPPLER_CENTER_X", &c.CenterX)
	num("DOPPLER_CENTER_Y", &c.CenterY)
	num("DOPPLER_PHASE", &c.Phase)
	num("DOPPLER_START_X", &c.StartX)
	num("DOPPLER_START_Y", &c.StartY)
	num("DOPPLER_VEL_X", &c.VelX)
	num("DOPPLER_VEL_Y", &c.VelY)
	num("DOPPLER_LISTENER_X", &c.ListenerX)
	num("DOPPLER_LISTENER_Y", &c.ListenerY)
	num("DOPPLER_SPEED", &c.Speed)
	str("DOPPLER_ORDERING", &c.Ordering)
	integer("DOPPLER_OUT_RATE", &c.OutRate)
	integer("DOPPLER_BIT_DEPTH", &c.BitDepth)
	str("DOPPLER_LOG_LEVEL", &c.LogLevel)
	integer("PORT", &c.Port)
	integer("DOPPLER_PORT", &c.Port)

	if v, ok := lookup("DOPPLER_ATTENUATE"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, "DOPPLER_ATTENUATE")
		} else {
			c.Attenuate = b
		}
	}
	if v, ok := lookup("DOPPLER_DEBOUNCE"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			errs = append(errs, "DOPPLER_DEBOUNCE")
		} else {
			c.Debounce = d
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidValue, strings.Join(errs, ", "))
	}
	return nil
}

// Validate checks ranges and names. It does not evaluate the trajectory.
func (c Config) Validate() error {
	switch c.Kind {
	case Circular:
		if !(c.Radius >= 0) {
			return fmt.Errorf("%w: radius %v", ErrInvalidValue, c.Radius)
		}
	case Linear, Stationary:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownTrajectory, c.Kind)
	}

	for name, v := range map[string]float64{
		"radius": c.Radius, "omega": c.AngularSpeed, "phase": c.Phase,
		"center-x": c.CenterX, "center-y": c.CenterY,
		"start-x": c.StartX, "start-y": c.StartY, "vel-x": c.VelX, "vel-y": c.VelY,
		"listener-x": c.ListenerX, "listener-y": c.ListenerY,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s is not finite", ErrInvalidValue, name)
		}
	}

	if !(c.Speed > 0) || math.IsInf(c.Speed, 0) {
		return fmt.Errorf("%w: speed %v", ErrInvalidValue, c.Speed)
	}
	if _, err := doppler.ParseOrdering(c.Ordering); err != nil {
		return err
	}
	if c.OutRate < 0 {
		return fmt.Errorf("%w: out-rate %d", ErrInvalidValue, c.OutRate)
	}
	if c.BitDepth != 16 && c.BitDepth != 24 {
		return fmt.Errorf("%w: bit-depth %d", ErrInvalidValue, c.BitDepth)
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("%w: port %d", ErrInvalidValue, c.Port)
	}
	if c.Debounce < 0 {
		return fmt.Errorf("%w: debounce %v", ErrInvalidValue, c.Debounce)
	}
	return nil
}

// Trajectory builds the configured source path.
func (c Config) Trajectory() (doppler.Trajectory, error) {
	switch c.Kind {
	case Circular:
		return doppler.Circular{
			Center:       doppler.Point{X: c.CenterX, Y: c.CenterY},
			Radius:       c.Radius,
			AngularSpeed: c.AngularSpeed,
			Phase:        c.Phase,
		}, nil
	case Linear:
		return doppler.Linear{
			Start:    doppler.Point{X: c.StartX, Y: c.StartY},
			Velocity: doppler.Point{X: c.VelX, Y: c.VelY},
		}, nil
	case Stationary:
		return doppler.Stationary{At: doppler.Point{X: c.StartX, Y: c.StartY}}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownTrajectory, c.Kind)
}

// Options builds transform options from the listener and medium settings.
func (c Config) Options() (doppler.Options, error) {
	ord, err := doppler.ParseOrdering(c.Ordering)
	if err != nil {
		return doppler.Options{}, err
	}
	return doppler.Options{
		Listener:  doppler.Point{X: c.ListenerX, Y: c.ListenerY},
		Speed:     c.Speed,
		Attenuate: c.Attenuate,
		Ordering:  ord,
	}, nil
}
