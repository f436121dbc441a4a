package trace

import (
	"testing"

	"github.com/detersim/determinisk/fixedpoint"
	"github.com/detersim/determinisk/physics"
)

func buildFallingWorld(t *testing.T) *physics.World {
	t.Helper()
	w, err := physics.NewWorld(100, 100)
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	if err := w.AddCircle(physics.NewCircle(fixedpoint.Vec2FromFloat64(50, 80), fixedpoint.One, fixedpoint.One)); err != nil {
		t.Fatalf("AddCircle: %v", err)
	}
	return w
}

func TestRecordZeroStepsHasOnlyInitialSnapshot(t *testing.T) {
	w := buildFallingWorld(t)
	tr := Record(w, 0)

	if len(tr.States) != 1 {
		t.Fatalf("len(States) = %d, want 1", len(tr.States))
	}
	if tr.Output.StepsExecuted != 0 {
		t.Errorf("StepsExecuted = %d, want 0", tr.Output.StepsExecuted)
	}
	if tr.Output.Metrics.CollisionCount != 0 || tr.Output.Metrics.BoundaryHits != 0 {
		t.Errorf("Metrics = %+v, want zeroed aggregates", tr.Output.Metrics)
	}
}

func TestRecordLengthMatchesSteps(t *testing.T) {
	w := buildFallingWorld(t)
	tr := Record(w, 10)
	if len(tr.States) != 11 {
		t.Errorf("len(States) = %d, want 11 (step 0 plus 10 steps)", len(tr.States))
	}
	if tr.States[0].Step != 0 || tr.States[10].Step != 10 {
		t.Errorf("step indices = %d..%d, want 0..10", tr.States[0].Step, tr.States[10].Step)
	}
}

func TestRecordMaxVelocityIncreasesDuringFreeFall(t *testing.T) {
	w := buildFallingWorld(t)
	tr := Record(w, 20)
	if tr.Output.Metrics.MaxVelocity.ToFloat64() <= 0 {
		t.Errorf("MaxVelocity = %v, want positive after free fall", tr.Output.Metrics.MaxVelocity)
	}
}

func TestTotalEnergyAtRestIsPotentialOnly(t *testing.T) {
	w, err := physics.NewWorld(10, 10)
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	w.Gravity = fixedpoint.Vec2FromFloat64(0, -10)
	c := physics.NewCircle(fixedpoint.Vec2FromFloat64(5, 2), fixedpoint.One, fixedpoint.One)
	if err := w.AddCircle(c); err != nil {
		t.Fatalf("AddCircle: %v", err)
	}

	got := TotalEnergy(w)
	want := fixedpoint.FromFloat64(20) // m*g*h = 1*10*2
	if diff := got.Sub(want).Abs(); diff.ToFloat64() > 0.1 {
		t.Errorf("TotalEnergy = %v, want ~%v", got, want)
	}
}
