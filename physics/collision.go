package physics

import "github.com/detersim/determinisk/fixedpoint"

// Collision is a detected circle-circle contact: indices into the owning
// World.Circles slice (a < b is not guaranteed; callers that need a
// canonical order should sort), the separating normal (pointing from a to
// b), and the penetration depth.
type Collision struct {
	A, B   int
	Normal fixedpoint.Vec2
	Depth  fixedpoint.Scalar
}

// Boundary identifies which world edge a body has crossed. Detection order
// is always Left, Right, Bottom, Top, so a body pinned in a corner produces
// its boundary hits in a fixed, reproducible sequence.
type Boundary int

const (
	BoundaryLeft Boundary = iota
	BoundaryRight
	BoundaryBottom
	BoundaryTop
)

// BoundaryCollision is a detected body-vs-wall contact.
type BoundaryCollision struct {
	Index    int
	Boundary Boundary
	Depth    fixedpoint.Scalar
}

// Impulse is a pending, not-yet-applied velocity and position correction
// for one body. Multiple impulses against the same body accumulate by
// summation before ApplyImpulses runs, so resolution order within a tick
// never changes the outcome.
type Impulse struct {
	Index   int
	DeltaV  fixedpoint.Vec2
	DeltaP  fixedpoint.Vec2
}

// DetectCollisions runs the narrow phase over the candidate pairs the
// broad-phase grid produced. A pair whose centers exactly coincide is
// reported as no contact: there is no well-defined normal to separate
// along.
func DetectCollisions(circles []Circle, pairs [][2]int) []Collision {
	var out []Collision
	for _, pair := range pairs {
		a, b := circles[pair[0]], circles[pair[1]]
		delta := b.Position.Sub(a.Position)
		distSq := delta.MagnitudeSquared()
		radiusSum := a.Radius.Add(b.Radius)
		if distSq >= radiusSum.Mul(radiusSum) {
			continue
		}
		if distSq == fixedpoint.Zero {
			continue
		}
		dist := delta.Magnitude()
		normal := delta.Divide(dist)
		depth := radiusSum.Sub(dist)
		out = append(out, Collision{A: pair[0], B: pair[1], Normal: normal, Depth: depth})
	}
	return out
}

// DetectBoundaryCollisions checks every body against all four walls, in
// Left, Right, Bottom, Top order, reporting up to four hits per body.
func DetectBoundaryCollisions(circles []Circle, bounds fixedpoint.Vec2) []BoundaryCollision {
	var out []BoundaryCollision
	for i, c := range circles {
		if left := c.Position.X.Sub(c.Radius); left < fixedpoint.Zero {
			out = append(out, BoundaryCollision{Index: i, Boundary: BoundaryLeft, Depth: left.Neg()})
		}
		if right := c.Position.X.Add(c.Radius).Sub(bounds.X); right > fixedpoint.Zero {
			out = append(out, BoundaryCollision{Index: i, Boundary: BoundaryRight, Depth: right})
		}
		if bottom := c.Position.Y.Sub(c.Radius); bottom < fixedpoint.Zero {
			out = append(out, BoundaryCollision{Index: i, Boundary: BoundaryBottom, Depth: bottom.Neg()})
		}
		if top := c.Position.Y.Add(c.Radius).Sub(bounds.Y); top > fixedpoint.Zero {
			out = append(out, BoundaryCollision{Index: i, Boundary: BoundaryTop, Depth: top})
		}
	}
	return out
}

// ResolvePairImpulses turns each circle-circle Collision into a pair of
// Impulses: an equal-and-opposite impulse along the normal, sized by the
// standard impulse-resolution formula and turned into each body's velocity
// change by its inverse mass, plus a position correction
// split by inverse mass so the heavier body moves less.
func ResolvePairImpulses(circles []Circle, collisions []Collision, cfg CollisionConfig) []Impulse {
	var impulses []Impulse
	for _, col := range collisions {
		a, b := circles[col.A], circles[col.B]

		relVel := b.Velocity.Sub(a.Velocity)
		velAlongNormal := relVel.Dot(col.Normal)
		if velAlongNormal > fixedpoint.Zero {
			continue
		}

		restitution := cfg.Restitution
		if velAlongNormal.Abs() < cfg.VelocityThreshold {
			restitution = fixedpoint.Zero
		}

		invMassA := fixedpoint.One.Div(a.Mass)
		invMassB := fixedpoint.One.Div(b.Mass)
		invMassSum := invMassA.Add(invMassB)
		if invMassSum <= fixedpoint.Zero {
			continue
		}

		numerator := fixedpoint.One.Add(restitution).Mul(velAlongNormal).Neg()
		j := numerator.Div(invMassSum)

		impulseVec := col.Normal.Scale(j)
		impulses = append(impulses,
			Impulse{Index: col.A, DeltaV: impulseVec.Scale(invMassA).Neg()},
			Impulse{Index: col.B, DeltaV: impulseVec.Scale(invMassB)},
		)

		correctionMag := col.Depth.Mul(cfg.PositionCorrection).Div(invMassSum)
		correction := col.Normal.Scale(correctionMag)
		impulses = append(impulses,
			Impulse{Index: col.A, DeltaP: correction.Scale(invMassA).Neg()},
			Impulse{Index: col.B, DeltaP: correction.Scale(invMassB)},
		)
	}
	return impulses
}

// ResolveBoundaryImpulses turns each BoundaryCollision into a velocity
// reflection and a position correction of depth*PositionCorrection along
// the wall normal, so with a factor below one the body is pushed only part
// of the way back inside the bounds. The wall itself is treated as
// infinite mass: all of
// the impulse and all of the correction lands on the body.
func ResolveBoundaryImpulses(circles []Circle, hits []BoundaryCollision, cfg CollisionConfig) []Impulse {
	var impulses []Impulse
	for _, hit := range hits {
		c := circles[hit.Index]
		var normal fixedpoint.Vec2
		switch hit.Boundary {
		case BoundaryLeft:
			normal = fixedpoint.NewVec2(fixedpoint.One, fixedpoint.Zero)
		case BoundaryRight:
			normal = fixedpoint.NewVec2(fixedpoint.One.Neg(), fixedpoint.Zero)
		case BoundaryBottom:
			normal = fixedpoint.NewVec2(fixedpoint.Zero, fixedpoint.One)
		case BoundaryTop:
			normal = fixedpoint.NewVec2(fixedpoint.Zero, fixedpoint.One.Neg())
		}

		velAlongNormal := c.Velocity.Dot(normal)
		if velAlongNormal > fixedpoint.Zero {
			continue
		}

		restitution := cfg.Restitution
		if velAlongNormal.Abs() < cfg.VelocityThreshold {
			restitution = fixedpoint.Zero
		}

		j := fixedpoint.One.Add(restitution).Mul(velAlongNormal).Neg()
		deltaV := normal.Scale(j)
		deltaP := normal.Scale(hit.Depth.Mul(cfg.PositionCorrection))

		impulses = append(impulses, Impulse{Index: hit.Index, DeltaV: deltaV, DeltaP: deltaP})
	}
	return impulses
}

// ApplyImpulses accumulates every pending Impulse per body, then applies
// the totals once: DeltaP shifts Position, DeltaV shifts the cached
// Velocity. OldPosition is left untouched — it is not authoritative
// Verlet state to back-solve, and the velocity projection is refreshed
// from (position-old_position)/dt by the caller after resolution, not
// reconstructed here. Summation is commutative, so the order impulses
// arrive in never affects the result.
func ApplyImpulses(circles []Circle, dt fixedpoint.Scalar, impulses []Impulse) []Circle {
	out := make([]Circle, len(circles))
	copy(out, circles)

	for _, imp := range impulses {
		c := &out[imp.Index]
		c.Position = c.Position.Add(imp.DeltaP)
		c.Velocity = c.Velocity.Add(imp.DeltaV)
	}
	return out
}

// ResolveAllCollisions runs the full per-tick resolution pipeline: rebuild
// the broad-phase grid, detect circle-circle and boundary contacts, resolve
// both into impulses, and apply them as a single functional update of
// circles. Detection always runs against the pre-resolution snapshot, so
// resolving one contact never perturbs which other contacts were detected
// this tick.
func ResolveAllCollisions(circles []Circle, bounds fixedpoint.Vec2, dt fixedpoint.Scalar, cfg CollisionConfig) []Circle {
	if len(circles) == 0 {
		return circles
	}

	grid := BuildGrid(circles)
	pairs := grid.CollisionPairs()
	collisions := DetectCollisions(circles, pairs)
	boundaryHits := DetectBoundaryCollisions(circles, bounds)

	impulses := ResolvePairImpulses(circles, collisions, cfg)
	impulses = append(impulses, ResolveBoundaryImpulses(circles, boundaryHits, cfg)...)

	return ApplyImpulses(circles, dt, impulses)
}
