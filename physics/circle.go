// Package physics implements the deterministic 2D rigid-body core: Verlet
// integration, a broad-phase spatial grid, and impulse-based collision
// resolution over circular bodies, all on Q16.16 fixed-point arithmetic.
package physics

import "github.com/detersim/determinisk/fixedpoint"

// Circle is a physics body with position, velocity (derived, cached),
// radius, mass, and the two coefficients the resolver consumes. Friction is
// carried per §9 of the spec this engine implements but is reserved: no
// resolver in this package reads it.
type Circle struct {
	Position    fixedpoint.Vec2
	OldPosition fixedpoint.Vec2 // Verlet state: previous position
	Velocity    fixedpoint.Vec2 // cached projection of (Position-OldPosition)/dt
	Radius      fixedpoint.Scalar
	Mass        fixedpoint.Scalar
	Restitution fixedpoint.Scalar
	Friction    fixedpoint.Scalar
}

// NewCircle creates a circle at rest (zero velocity) with the default
// restitution (0.5) and friction (0.1) coefficients. A world-level
// CollisionConfig.Restitution overrides the per-body value during
// resolution.
func NewCircle(position fixedpoint.Vec2, radius, mass fixedpoint.Scalar) Circle {
	return Circle{
		Position:    position,
		OldPosition: position,
		Radius:      radius,
		Mass:        mass,
		Restitution: fixedpoint.FromFloat64(0.5),
		Friction:    fixedpoint.FromFloat64(0.1),
	}
}

// UpdateVelocity refreshes the cached velocity projection from the current
// Verlet state. Velocity is never authoritative; it is always recomputed
// from position history.
func (c *Circle) UpdateVelocity(dt fixedpoint.Scalar) {
	c.Velocity = c.Position.Sub(c.OldPosition).Divide(dt)
}

// SetVelocity is the only way to seed a body with an initial velocity: it
// backdates OldPosition so that (Position-OldPosition)/dt equals v, then
// refreshes the cached Velocity from that Verlet state.
func (c *Circle) SetVelocity(v fixedpoint.Vec2, dt fixedpoint.Scalar) {
	c.OldPosition = c.Position.Sub(v.Scale(dt))
	c.UpdateVelocity(dt)
}
