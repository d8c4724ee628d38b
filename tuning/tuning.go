package tuning

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

var ErrInvalid = errors.New("tuning: invalid value")

// Flight holds the 2D player and ball parameters.
// Player velocities are per tick and integrate accelerations scaled by dt;
// the ball uses the same per tick velocity as its displacement.
type Flight struct {
	Gravity        float64 `yaml:"gravity"`
	LinearAirDrag  float64 `yaml:"linear_air_drag"`
	AngularAirDrag float64 `yaml:"angular_air_drag"`
	GroundFriction float64 `yaml:"ground_friction"`
	Thrust         float64 `yaml:"thrust"`
	AngularThrust  float64 `yaml:"angular_thrust"`

	GrabRadius float64 `yaml:"grab_radius"`
	BallOffset float64 `yaml:"ball_offset"`

	BallElasticity float64 `yaml:"ball_elasticity"`
	BallStopBounce float64 `yaml:"ball_stop_bounce"`
	BallSlow       float64 `yaml:"ball_slow"`

	// Extra downward reach of the ground probe
	ProbeBias float64 `yaml:"probe_bias"`

	BounceIntensityScale float64 `yaml:"bounce_intensity_scale"`
	BounceMinIntensity   float64 `yaml:"bounce_min_intensity"`

	PlayerHalfExtents [2]float64 `yaml:"player_half_extents"`
	BallHalfExtents   [2]float64 `yaml:"ball_half_extents"`
}

// Craft3D holds the 3D variant parameters
type Craft3D struct {
	Gravity        float64    `yaml:"gravity"`
	LinearAirDrag  float64    `yaml:"linear_air_drag"`
	AngularAirDrag float64    `yaml:"angular_air_drag"`
	GroundFriction float64    `yaml:"ground_friction"`
	Thrust         float64    `yaml:"thrust"`
	AngularThrust  float64    `yaml:"angular_thrust"`
	YawThrust      float64    `yaml:"yaw_thrust"`
	HalfExtents    [3]float64 `yaml:"half_extents"`
}

// Tiers are the upper bounds, in seconds, of the gold and silver ratings
type Tiers struct {
	Gold   float64 `yaml:"gold"`
	Silver float64 `yaml:"silver"`
}

type Tuning struct {
	Tick    float64 `yaml:"tick"`
	Flight  Flight  `yaml:"flight"`
	Craft3D Craft3D `yaml:"craft3d"`
	Tiers   Tiers   `yaml:"tiers"`
}

//go:embed default.yaml
var defaultPayload []byte

var (
	defaultOnce sync.Once
	defaultData Tuning
	defaultErr  error
)

// Default returns the built-in tuning
func Default() Tuning {
	defaultOnce.Do(func() {
		defaultErr = yaml.Unmarshal(defaultPayload, &defaultData)
	})
	// The payload is compiled in: failing to decode it is a programming error
	if defaultErr != nil {
		panic(defaultErr)
	}
	return defaultData
}

// Parse decodes data over the defaults: absent keys keep their default value
func Parse(data []byte) (Tuning, error) {
	t := Default()
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tuning{}, fmt.Errorf("tuning: decode: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, err
	}
	return t, nil
}

// Load reads a tuning file. See Parse.
func Load(path string) (Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Tuning{}, fmt.Errorf("tuning: %w", err)
	}
	return Parse(data)
}

// Validate rejects values no level can be simulated with
func (t Tuning) Validate() error {
	f := t.Flight
	switch {
	case t.Tick <= 0:
		return fmt.Errorf("%w: tick must be positive, got %v", ErrInvalid, t.Tick)
	case f.GrabRadius < 0:
		return fmt.Errorf("%w: grab_radius must not be negative, got %v", ErrInvalid, f.GrabRadius)
	case f.BallElasticity < 0 || f.BallElasticity > 1:
		return fmt.Errorf("%w: ball_elasticity must be in [0, 1], got %v", ErrInvalid, f.BallElasticity)
	case f.BallSlow < 0 || f.BallSlow > 1:
		return fmt.Errorf("%w: ball_slow must be in [0, 1], got %v", ErrInvalid, f.BallSlow)
	case f.BallStopBounce < 0:
		return fmt.Errorf("%w: ball_stop_bounce must not be negative, got %v", ErrInvalid, f.BallStopBounce)
	case f.PlayerHalfExtents[0] <= 0 || f.PlayerHalfExtents[1] <= 0:
		return fmt.Errorf("%w: player_half_extents must be positive, got %v", ErrInvalid, f.PlayerHalfExtents)
	case f.BallHalfExtents[0] <= 0 || f.BallHalfExtents[1] <= 0:
		return fmt.Errorf("%w: ball_half_extents must be positive, got %v", ErrInvalid, f.BallHalfExtents)
	case t.Craft3D.HalfExtents[0] <= 0 || t.Craft3D.HalfExtents[1] <= 0 || t.Craft3D.HalfExtents[2] <= 0:
		return fmt.Errorf("%w: craft3d.half_extents must be positive, got %v", ErrInvalid, t.Craft3D.HalfExtents)
	case t.Tiers.Gold <= 0 || t.Tiers.Silver < t.Tiers.Gold:
		return fmt.Errorf("%w: tiers must satisfy 0 < gold <= silver, got %v / %v", ErrInvalid, t.Tiers.Gold, t.Tiers.Silver)
	}
	return nil
}
