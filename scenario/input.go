// Package scenario loads and constructs simulation inputs: YAML-tagged
// records describing a world and its initial bodies, built-in named
// scenarios, and the conversion into a runnable physics.World.
package scenario

import (
	"fmt"

	"github.com/detersim/determinisk/dlog"
	"github.com/detersim/determinisk/fixedpoint"
	"github.com/detersim/determinisk/physics"
)

// CircleConfig is one body's initial configuration.
type CircleConfig struct {
	Position [2]float64 `yaml:"position"`
	Velocity [2]float64 `yaml:"velocity"`
	Radius   float64    `yaml:"radius"`
	Mass     float64    `yaml:"mass"`
}

// Input is a complete, serializable simulation description: world
// configuration, physics coefficients, initial bodies, and run parameters.
// Defaults for Restitution/PositionCorrection match the values the rest of
// the pack's scenario data assumes.
type Input struct {
	WorldWidth  float64    `yaml:"world_width"`
	WorldHeight float64    `yaml:"world_height"`
	Gravity     [2]float64 `yaml:"gravity"`
	Timestep    float64    `yaml:"timestep"`

	Restitution        float64 `yaml:"restitution"`
	PositionCorrection float64 `yaml:"position_correction"`

	Circles []CircleConfig `yaml:"circles"`

	NumSteps         uint32 `yaml:"num_steps"`
	RecordTrajectory bool   `yaml:"record_trajectory"`

	// Seed is reserved: nothing in this engine consumes it to drive an
	// RNG (there is none in the deterministic core), but it is carried
	// through the input and its fingerprint so a caller who
	// does add seeded randomness upstream has a place to record it.
	Seed uint64 `yaml:"seed"`
}

const (
	defaultRestitution        = 0.8
	defaultPositionCorrection = 0.8
)

// ApplyDefaults fills Restitution/PositionCorrection when the input was
// decoded without them (YAML zero value), logging the substitution the way
// a loader applying deprecated-field defaults would.
func (in *Input) ApplyDefaults(logger dlog.Logger) {
	if in.Restitution == 0 {
		logger.Infof("scenario: restitution not set, defaulting to %.2f", defaultRestitution)
		in.Restitution = defaultRestitution
	}
	if in.PositionCorrection == 0 {
		logger.Infof("scenario: position_correction not set, defaulting to %.2f", defaultPositionCorrection)
		in.PositionCorrection = defaultPositionCorrection
	}
}

// BuildWorld converts an Input into a runnable physics.World, validating
// extents, timestep, and every body's radius/mass at the boundary.
func (in Input) BuildWorld() (*physics.World, error) {
	w, err := physics.NewWorld(in.WorldWidth, in.WorldHeight)
	if err != nil {
		return nil, fmt.Errorf("scenario: %w", err)
	}

	w.Gravity = fixedpoint.Vec2FromFloat64(in.Gravity[0], in.Gravity[1])
	if in.Timestep > 0 {
		w.Timestep = fixedpoint.FromFloat64(in.Timestep)
	}
	w.CollisionConfig = physics.CollisionConfig{
		Restitution:        fixedpoint.FromFloat64(in.Restitution),
		PositionCorrection: fixedpoint.FromFloat64(in.PositionCorrection),
		VelocityThreshold:  fixedpoint.FromFloat64(0.01),
	}

	for i, cc := range in.Circles {
		position := fixedpoint.Vec2FromFloat64(cc.Position[0], cc.Position[1])
		circle := physics.NewCircle(position, fixedpoint.FromFloat64(cc.Radius), fixedpoint.FromFloat64(cc.Mass))
		circle.SetVelocity(fixedpoint.Vec2FromFloat64(cc.Velocity[0], cc.Velocity[1]), w.Timestep)
		if err := w.AddCircle(circle); err != nil {
			return nil, fmt.Errorf("scenario: circle %d: %w", i, err)
		}
	}

	if err := w.Validate(); err != nil {
		return nil, fmt.Errorf("scenario: %w", err)
	}
	return w, nil
}
