package runner

import (
	"testing"

	"github.com/detersim/determinisk/scenario"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunProducesTraceAndRunID(t *testing.T) {
	r := New(Config{}, nil)
	in := scenario.SimpleDrop()
	in.NumSteps = 5

	result, err := r.Run(in, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, result.RunID)
	assert.Len(t, result.Trace.States, 6)
	assert.Nil(t, result.ProofMetrics)
}

func TestRunWithProveGeneratesMetrics(t *testing.T) {
	r := New(Config{Prove: true, Backend: BackendMock}, nil)
	in := scenario.SimpleDrop()
	in.NumSteps = 5

	var box ProofMetricsBox
	result, err := r.Run(in, &box)
	require.NoError(t, err)
	require.NotNil(t, result.ProofMetrics)
	assert.Equal(t, "mock", result.ProofMetrics.Backend)

	snapshot := box.Get()
	require.NotNil(t, snapshot)
	assert.Equal(t, result.ProofMetrics.TotalCycles, snapshot.TotalCycles)
}

func TestRunPropagatesBuildError(t *testing.T) {
	r := New(Config{}, nil)
	in := scenario.SimpleDrop()
	in.WorldWidth = 0

	_, err := r.Run(in, nil)
	require.Error(t, err)
}

func TestRunBatchSkipsFailures(t *testing.T) {
	r := New(Config{}, nil)
	good := scenario.SimpleDrop()
	good.NumSteps = 2
	bad := scenario.SimpleDrop()
	bad.WorldWidth = 0

	results := r.RunBatch([]scenario.Input{good, bad, good})
	assert.Len(t, results, 2)
}

func TestProofMetricsBoxReturnsLatestValue(t *testing.T) {
	var box ProofMetricsBox
	if got := box.Get(); got != nil {
		t.Fatalf("Get() on empty box = %+v, want nil", got)
	}

	box.Set(ProofMetrics{Backend: "mock", TotalCycles: 1})
	box.Set(ProofMetrics{Backend: "mock", TotalCycles: 2})

	got := box.Get()
	require.NotNil(t, got)
	assert.Equal(t, uint64(2), got.TotalCycles)
}

func TestBackendString(t *testing.T) {
	assert.Equal(t, "mock", BackendMock.String())
	assert.Equal(t, "risc0", BackendRisc0.String())
	assert.Equal(t, "sp1", BackendSP1.String())
}
