// Package runner is the boundary between the deterministic physics core
// and everything outside the proving contract: recording a trace, handing
// it to a proof backend, and exposing live proof-metrics updates through a
// write-once-per-update slot.
package runner

import "github.com/detersim/determinisk/scenario"

// ProofMetrics summarizes a completed (or in-progress) proof generation.
// Only a Mock backend is implemented in this module — real RISC0/SP1
// backends are out of scope — but the shape matches what either would
// report.
type ProofMetrics struct {
	TotalCycles            uint64
	UserCycles             *uint64
	Segments               uint32
	ProofSizeBytes         int
	ProvingTimeMillis      int64
	VerificationTimeMillis *int64
	Backend                string
}

// ProofBackend generates and verifies proofs for a scenario.Input. A real
// implementation would invoke a zkVM SDK; MockBackend estimates metrics
// from the input's size instead.
type ProofBackend interface {
	Prove(in scenario.Input) (ProofMetrics, error)
	Verify(proof []byte) (bool, error)
}
