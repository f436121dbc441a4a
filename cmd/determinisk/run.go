package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/detersim/determinisk/runner"
	"github.com/detersim/determinisk/scenario"
	"github.com/detersim/determinisk/trace"
)

var (
	visualize   bool
	prove       bool
	backendName string
	verbose     bool
)

var runCmd = &cobra.Command{
	Use:   "run <scenario-or-file>",
	Short: "Run a scenario and report its trace summary",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if visualize {
			logrus.Error("visualization requires a separate windowed binary, not available in this build")
			os.Exit(1)
		}

		backend, err := parseBackend(backendName)
		if err != nil {
			logrus.Fatalf("run: %v", err)
		}

		in, err := scenario.Resolve(args[0], nil)
		if err != nil {
			logrus.Errorf("run: %v", err)
			os.Exit(1)
		}

		logrus.Infof("run: starting %q (%d circles, %d steps)", args[0], len(in.Circles), in.NumSteps)

		r := runner.New(runner.Config{Prove: prove, Backend: backend, Verbose: verbose}, nil)
		var metrics runner.ProofMetricsBox
		result, err := r.Run(in, &metrics)
		if err != nil {
			logrus.Errorf("run: %v", err)
			os.Exit(1)
		}

		fingerprint := trace.InputFingerprint(in)
		digest := result.Trace.Output.FinalState
		fmt.Printf("run_id: %s\n", result.RunID)
		fmt.Printf("input_fingerprint: %x\n", fingerprint)
		fmt.Printf("steps_executed: %d\n", result.Trace.Output.StepsExecuted)
		fmt.Printf("final_step: %d\n", digest.Step)
		fmt.Printf("collision_count: %d\n", result.Trace.Output.Metrics.CollisionCount)
		fmt.Printf("boundary_hits: %d\n", result.Trace.Output.Metrics.BoundaryHits)
		fmt.Printf("max_velocity: %s\n", result.Trace.Output.Metrics.MaxVelocity)
		fmt.Printf("total_energy: %s\n", result.Trace.Output.Metrics.TotalEnergy)
		fmt.Printf("execution_time_ms: %d\n", result.ExecutionTimeMillis)
		if result.ProofMetrics != nil {
			fmt.Printf("proof_backend: %s\n", result.ProofMetrics.Backend)
			fmt.Printf("proof_total_cycles: %d\n", result.ProofMetrics.TotalCycles)
		}
	},
}

func parseBackend(name string) (runner.Backend, error) {
	switch name {
	case "", "mock":
		return runner.BackendMock, nil
	case "risc0":
		return runner.BackendRisc0, nil
	case "sp1":
		return runner.BackendSP1, nil
	default:
		return 0, fmt.Errorf("unknown backend %q (want mock, risc0, or sp1)", name)
	}
}

func init() {
	runCmd.Flags().BoolVar(&visualize, "visual", false, "Enable visualization (not supported by this binary)")
	runCmd.Flags().BoolVar(&prove, "prove", false, "Generate a proof for the run")
	runCmd.Flags().StringVar(&backendName, "backend", "mock", "Proof backend (mock, risc0, sp1)")
	runCmd.Flags().BoolVar(&verbose, "verbose", false, "Verbose logging")
}
