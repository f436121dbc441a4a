package physics

import (
	"fmt"

	"github.com/detersim/determinisk/fixedpoint"
)

// CollisionConfig holds the simulation-wide resolver parameters. Restitution
// here overrides any per-body Circle.Restitution during resolution.
type CollisionConfig struct {
	Restitution        fixedpoint.Scalar
	PositionCorrection fixedpoint.Scalar
	VelocityThreshold  fixedpoint.Scalar
}

// DefaultCollisionConfig matches the values the rest of the pack's scenario
// data assumes: 80% restitution, 80% position correction, a small velocity
// floor below which restitution is suppressed to avoid resting jitter.
func DefaultCollisionConfig() CollisionConfig {
	return CollisionConfig{
		Restitution:        fixedpoint.FromFloat64(0.8),
		PositionCorrection: fixedpoint.FromFloat64(0.8),
		VelocityThreshold:  fixedpoint.FromFloat64(0.01),
	}
}

// World is the physics simulation container: bounds, gravity, timestep, and
// the ordered sequence of bodies whose index is their stable identity for
// the lifetime of the world.
type World struct {
	Bounds          fixedpoint.Vec2
	Gravity         fixedpoint.Vec2
	Timestep        fixedpoint.Scalar
	Circles         []Circle
	CollisionConfig CollisionConfig
}

// NewWorld builds a world with the conventional defaults: gravity (0,-9.81),
// timestep 1/60, default CollisionConfig. Returns an error if the requested
// extent is not strictly positive.
func NewWorld(width, height float64) (*World, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("physics: world extent must be positive, got %gx%g", width, height)
	}
	return &World{
		Bounds:          fixedpoint.Vec2FromFloat64(width, height),
		Gravity:         fixedpoint.Vec2FromFloat64(0, -9.81),
		Timestep:        fixedpoint.FromFloat64(1.0 / 60.0),
		CollisionConfig: DefaultCollisionConfig(),
	}, nil
}

// AddCircle appends a body, rejecting non-positive mass or radius at the
// boundary rather than letting the resolver divide by zero deep in a step.
func (w *World) AddCircle(c Circle) error {
	if c.Radius <= fixedpoint.Zero {
		return fmt.Errorf("physics: circle radius must be positive, got %v", c.Radius)
	}
	if c.Mass <= fixedpoint.Zero {
		return fmt.Errorf("physics: circle mass must be positive, got %v", c.Mass)
	}
	w.Circles = append(w.Circles, c)
	return nil
}

// Validate checks the invariants NewWorld doesn't itself enforce (timestep
// set after construction, bounds overwritten by a caller). Callers that
// build a World by hand (rather than via NewWorld/scenario loading) should
// call this before stepping.
func (w *World) Validate() error {
	if w.Timestep <= fixedpoint.Zero {
		return fmt.Errorf("physics: timestep must be positive, got %v", w.Timestep)
	}
	if w.Bounds.X <= fixedpoint.Zero || w.Bounds.Y <= fixedpoint.Zero {
		return fmt.Errorf("physics: world bounds must be positive, got %v", w.Bounds)
	}
	return nil
}

// Step advances the world by one tick in three passes: Verlet-integrate
// every body under gravity and refresh its velocity projection, resolve all
// collisions as a pure functional update of Circles, then refresh the
// velocity projection again against the post-resolution (but still
// pre-resolution old_position) Verlet state. No step reads memory
// addresses, hash randomness, or wall-clock time.
func (w *World) Step() {
	dt := w.Timestep

	for i := range w.Circles {
		c := &w.Circles[i]
		current := c.Position
		c.Position = current.Scale(fixedpoint.Two).Sub(c.OldPosition).Add(w.Gravity.Scale(dt).Scale(dt))
		c.OldPosition = current
		c.UpdateVelocity(dt)
	}

	w.Circles = ResolveAllCollisions(w.Circles, w.Bounds, dt, w.CollisionConfig)

	for i := range w.Circles {
		w.Circles[i].UpdateVelocity(dt)
	}
}

// StepNoCollision integrates positions without running collision detection
// or resolution, clamping a body to the floor on penetration. This mirrors
// the "no-collision" variant in the original source, which spec §9 says is
// acceptable only as a test hook — it exists here solely to support tests
// that need to observe pure Verlet motion.
func (w *World) StepNoCollision() {
	dt := w.Timestep
	for i := range w.Circles {
		c := &w.Circles[i]
		current := c.Position
		c.Position = current.Scale(fixedpoint.Two).Sub(c.OldPosition).Add(w.Gravity.Scale(dt).Scale(dt))
		c.OldPosition = current

		if c.Position.Y.Sub(c.Radius) < fixedpoint.Zero {
			c.Position.Y = c.Radius
			c.OldPosition.Y = c.Radius
		}
	}
}

// DetectCollisionPairs rebuilds the broad-phase grid and runs narrow phase,
// without resolving anything. Used by the trace recorder to count
// per-frame circle-circle contacts.
func (w *World) DetectCollisionPairs() []Collision {
	grid := BuildGrid(w.Circles)
	pairs := grid.CollisionPairs()
	return DetectCollisions(w.Circles, pairs)
}

// DetectBoundaryHits returns every boundary contact this tick, without
// resolving them. Used by the trace recorder for frame_boundary_hits.
func (w *World) DetectBoundaryHits() []BoundaryCollision {
	return DetectBoundaryCollisions(w.Circles, w.Bounds)
}
