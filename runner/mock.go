package runner

import "github.com/detersim/determinisk/scenario"

// MockBackend is a ProofBackend that never invokes a real proving system:
// it estimates a deterministic cycle count from the input's size, the way
// a guest program's work scales with step count and body count.
type MockBackend struct{}

func (MockBackend) Prove(in scenario.Input) (ProofMetrics, error) {
	totalCycles := uint64(in.NumSteps) * uint64(len(in.Circles)) * 1000
	userCycles := totalCycles * 8 / 10
	verifyMs := int64(10)

	return ProofMetrics{
		TotalCycles:            totalCycles,
		UserCycles:             &userCycles,
		Segments:               1,
		ProofSizeBytes:         4200,
		ProvingTimeMillis:      0,
		VerificationTimeMillis: &verifyMs,
		Backend:                "mock",
	}, nil
}

func (MockBackend) Verify(proof []byte) (bool, error) {
	return true, nil
}
