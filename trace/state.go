// Package trace captures simulation state over time: per-frame snapshots,
// run-level aggregates, and the small serializable forms (checkpoint, input
// fingerprint) that let a run be paused, persisted, and resumed without
// smuggling the deterministic core's numeric state through floats.
package trace

import (
	"github.com/detersim/determinisk/fixedpoint"
	"github.com/detersim/determinisk/physics"
)

// CircleState is a serializable snapshot of one body at one step.
type CircleState struct {
	Position fixedpoint.Vec2
	Velocity fixedpoint.Vec2
	Radius   fixedpoint.Scalar
	Mass     fixedpoint.Scalar
}

// SimulationState is a full-world snapshot: every body's state plus the
// per-frame contact counts observed at that step.
type SimulationState struct {
	Step              uint64
	Circles           []CircleState
	FrameCollisions   uint32
	FrameBoundaryHits uint32
}

// SimulationMetrics aggregates a completed run.
type SimulationMetrics struct {
	TotalEnergy    fixedpoint.Scalar
	MaxVelocity    fixedpoint.Scalar
	CollisionCount uint32
	BoundaryHits   uint32
}

// SimulationOutput is the terminal result of a run: the final state plus
// the aggregated metrics over every step taken.
type SimulationOutput struct {
	FinalState    SimulationState
	StepsExecuted uint32
	Metrics       SimulationMetrics
}

// SimulationTrace is the complete recorded history of a run: one state per
// step (step 0 is the pre-tick snapshot) plus the terminal output. Once
// returned from Record, a trace is never mutated in place.
type SimulationTrace struct {
	States []SimulationState
	Output SimulationOutput
}

// CaptureState snapshots a world at the given step index, counting current
// contacts without resolving them.
func CaptureState(w *physics.World, step uint64) SimulationState {
	collisions := w.DetectCollisionPairs()
	boundaryHits := w.DetectBoundaryHits()

	circles := make([]CircleState, len(w.Circles))
	for i, c := range w.Circles {
		circles[i] = CircleState{
			Position: c.Position,
			Velocity: c.Velocity,
			Radius:   c.Radius,
			Mass:     c.Mass,
		}
	}

	return SimulationState{
		Step:              step,
		Circles:           circles,
		FrameCollisions:   uint32(len(collisions)),
		FrameBoundaryHits: uint32(len(boundaryHits)),
	}
}

// Record runs the world forward numSteps ticks, capturing a snapshot before
// stepping (step 0) and after every subsequent step, then aggregating
// metrics over the run. A zero-step run returns a trace of length 1
// containing only the initial snapshot, with zero CollisionCount,
// BoundaryHits and MaxVelocity; TotalEnergy is always the energy of the
// world's final state.
func Record(w *physics.World, numSteps uint32) SimulationTrace {
	states := make([]SimulationState, 0, numSteps+1)
	states = append(states, CaptureState(w, 0))

	var maxVelocity fixedpoint.Scalar
	var collisionCount, boundaryHits uint32

	for step := uint32(1); step <= numSteps; step++ {
		w.Step()
		states = append(states, CaptureState(w, uint64(step)))

		for _, c := range w.Circles {
			speed := c.Velocity.Magnitude()
			if speed > maxVelocity {
				maxVelocity = speed
			}
		}

		collisions := w.DetectCollisionPairs()
		collisionCount += uint32(len(collisions))
		hits := w.DetectBoundaryHits()
		boundaryHits += uint32(len(hits))
	}

	finalState := states[len(states)-1]
	output := SimulationOutput{
		FinalState:    finalState,
		StepsExecuted: numSteps,
		Metrics: SimulationMetrics{
			TotalEnergy:    TotalEnergy(w),
			MaxVelocity:    maxVelocity,
			CollisionCount: collisionCount,
			BoundaryHits:   boundaryHits,
		},
	}

	return SimulationTrace{States: states, Output: output}
}

// TotalEnergy computes KE+PE over every body in the world: kinetic energy
// is 1/2*m*|v|^2, potential energy is m*(-gravity.Y)*position.Y.
func TotalEnergy(w *physics.World) fixedpoint.Scalar {
	total := fixedpoint.Zero
	for _, c := range w.Circles {
		vSquared := c.Velocity.MagnitudeSquared()
		kinetic := c.Mass.Mul(vSquared).Mul(fixedpoint.Half)
		potential := c.Mass.Mul(w.Gravity.Y.Neg()).Mul(c.Position.Y)
		total = total.Add(kinetic).Add(potential)
	}
	return total
}
