package runner

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/detersim/determinisk/dlog"
	"github.com/detersim/determinisk/scenario"
	"github.com/detersim/determinisk/trace"
)

// Backend selects which ProofBackend a Runner uses. Only BackendMock has a
// concrete implementation in this module; the others are named so a
// caller's configuration can express intent even though the real SDKs
// aren't wired in.
type Backend int

const (
	BackendMock Backend = iota
	BackendRisc0
	BackendSP1
)

func (b Backend) String() string {
	switch b {
	case BackendMock:
		return "mock"
	case BackendRisc0:
		return "risc0"
	case BackendSP1:
		return "sp1"
	default:
		return "unknown"
	}
}

// Config controls one Runner's behavior.
type Config struct {
	Prove   bool
	Backend Backend
	Verbose bool
}

// Result is what running one scenario produces: the recorded trace, the
// proof metrics if Config.Prove was set, a per-run identifier outside the
// deterministic digest, and wall-clock execution time (diagnostic only,
// never fed back into the simulation).
type Result struct {
	RunID            string
	Trace            trace.SimulationTrace
	ProofMetrics     *ProofMetrics
	ExecutionTimeMillis int64
}

// ProofMetricsBox is a mutex-guarded write-once-per-update slot for a
// live-updating proof-metrics snapshot: a background prover writes its
// latest estimate, a UI or log line reads the most recent value, and
// neither carries simulation state across the boundary.
type ProofMetricsBox struct {
	mu    sync.Mutex
	value *ProofMetrics
}

func (b *ProofMetricsBox) Set(m ProofMetrics) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.value = &m
}

func (b *ProofMetricsBox) Get() *ProofMetrics {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.value
}

// Runner ties a scenario.Input to a recorded trace and, optionally, a
// generated proof.
type Runner struct {
	config  Config
	backend ProofBackend
	logger  dlog.Logger
}

// New builds a Runner. A nil logger uses a fresh dlog.DefaultLogger; the
// backend is always MockBackend in this module regardless of
// Config.Backend, since no real zkVM SDK is available to select between.
func New(config Config, logger dlog.Logger) *Runner {
	if logger == nil {
		logger = dlog.NewDefaultLogger()
	}
	return &Runner{config: config, backend: MockBackend{}, logger: logger}
}

// Run builds a world from in, records its full trace, and — if
// Config.Prove is set — generates proof metrics into the Result and, when
// metrics is non-nil, into the caller's ProofMetricsBox as well.
func (r *Runner) Run(in scenario.Input, metrics *ProofMetricsBox) (Result, error) {
	start := time.Now()

	if r.config.Verbose {
		r.logger.Infof("runner: building world (%d circles, %d steps)", len(in.Circles), in.NumSteps)
	}

	w, err := in.BuildWorld()
	if err != nil {
		return Result{}, err
	}
	recorded := trace.Record(w, in.NumSteps)

	var proofMetrics *ProofMetrics
	if r.config.Prove {
		pm, err := r.backend.Prove(in)
		if err != nil {
			return Result{}, err
		}
		proofMetrics = &pm
		if metrics != nil {
			metrics.Set(pm)
		}
		if r.config.Verbose {
			r.logger.Infof("runner: proof generated via %s backend, %d total cycles", r.config.Backend, pm.TotalCycles)
		}
	}

	return Result{
		RunID:               uuid.NewString(),
		Trace:               recorded,
		ProofMetrics:         proofMetrics,
		ExecutionTimeMillis: time.Since(start).Milliseconds(),
	}, nil
}

// RunBatch runs every input in sequence, collecting one Result per input.
// A failed run is logged and omitted rather than aborting the whole batch,
// matching the original runner's "skip and continue" behavior for
// multi-scenario sweeps.
func (r *Runner) RunBatch(inputs []scenario.Input) []Result {
	results := make([]Result, 0, len(inputs))
	for i, in := range inputs {
		result, err := r.Run(in, nil)
		if err != nil {
			r.logger.Errorf("runner: batch item %d failed: %v", i, err)
			continue
		}
		results = append(results, result)
	}
	return results
}
