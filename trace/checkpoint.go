package trace

import (
	"fmt"

	"github.com/detersim/determinisk/fixedpoint"
	"github.com/detersim/determinisk/physics"
)

// Checkpoint is the minimal persisted form needed to resume a run: body
// state and the step count reached. World-level configuration (bounds,
// gravity, timestep, collision config) is deliberately omitted — a resumed
// run reinstates it from the scenario/defaults, matching how a persisted
// form typically drops collision_config in favor of reapplying defaults at
// load time.
type Checkpoint struct {
	Step    uint64
	Circles []CircleState
}

// ExportCheckpoint captures the minimal resumable state from a world at the
// given step.
func ExportCheckpoint(w *physics.World, step uint64) Checkpoint {
	circles := make([]CircleState, len(w.Circles))
	for i, c := range w.Circles {
		circles[i] = CircleState{
			Position: c.Position,
			Velocity: c.Velocity,
			Radius:   c.Radius,
			Mass:     c.Mass,
		}
	}
	return Checkpoint{Step: step, Circles: circles}
}

// ImportCheckpoint restores a checkpoint's bodies into a world that already
// carries the desired bounds/gravity/timestep/collision config (from a
// freshly-loaded scenario, typically). Velocity is reinstated by backdating
// OldPosition rather than stored directly, since velocity is never
// authoritative Verlet state.
func ImportCheckpoint(w *physics.World, cp Checkpoint) error {
	if w.Timestep <= fixedpoint.Zero {
		return fmt.Errorf("trace: cannot import checkpoint into world with non-positive timestep")
	}
	circles := make([]physics.Circle, len(cp.Circles))
	for i, cs := range cp.Circles {
		c := physics.NewCircle(cs.Position, cs.Radius, cs.Mass)
		c.SetVelocity(cs.Velocity, w.Timestep)
		circles[i] = c
	}
	w.Circles = circles
	return nil
}
