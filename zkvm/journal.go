// Package zkvm mirrors the host/guest boundary a real zkVM prover would
// run across: a guest reads a scenario.Input, steps the world forward, and
// commits a small journal the host (or a verifier) can check independent
// of re-running the simulation. No real proving-system SDK is wired in
// here — RunGuest is the deterministic computation a guest program would
// perform before handing its result to a proof backend.
package zkvm

import (
	"github.com/detersim/determinisk/scenario"
	"github.com/detersim/determinisk/trace"
)

// PositionEncoding is one body's final position as raw Q16.16 encodings,
// the form committed to a journal rather than a float.
type PositionEncoding struct {
	X, Y int32
}

// SimulationJournal is what a guest commits: final positions, the number
// of steps actually executed, and the 32-byte state digest a verifier
// checks against an independently-computed one.
type SimulationJournal struct {
	FinalPositions []PositionEncoding
	StepsExecuted  uint32
	StateDigest    [32]byte
}

// RunGuest builds a world from in, steps it in.NumSteps times, and commits
// a journal — the computation a zkVM guest performs inside the proved
// execution trace.
func RunGuest(in scenario.Input) (SimulationJournal, error) {
	w, err := in.BuildWorld()
	if err != nil {
		return SimulationJournal{}, err
	}

	for i := uint32(0); i < in.NumSteps; i++ {
		w.Step()
	}

	positions := make([]PositionEncoding, len(w.Circles))
	for i, c := range w.Circles {
		positions[i] = PositionEncoding{X: c.Position.X.Bits(), Y: c.Position.Y.Bits()}
	}

	return SimulationJournal{
		FinalPositions: positions,
		StepsExecuted:  in.NumSteps,
		StateDigest:    trace.StateDigest(w),
	}, nil
}
