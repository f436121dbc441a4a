package trace

import (
	"crypto/sha256"
	"fmt"

	"github.com/detersim/determinisk/scenario"
)

// InputFingerprint hashes a whole scenario.Input, including the reserved
// Seed field, for trace/log correlation. This is a diagnostic hash distinct
// from StateDigest/the zkVM journal digest: it is never part of the
// proving contract, only a convenience for telling two runs' inputs apart.
func InputFingerprint(in scenario.Input) [32]byte {
	var b []byte
	b = fmt.Appendf(b, "%v|%v|%v|%v|%v|%v|%v|%v|%v",
		in.WorldWidth, in.WorldHeight, in.Gravity, in.Timestep,
		in.Restitution, in.PositionCorrection, in.NumSteps, in.RecordTrajectory, in.Seed)
	for _, c := range in.Circles {
		b = fmt.Appendf(b, "|%v|%v|%v|%v", c.Position, c.Velocity, c.Radius, c.Mass)
	}
	return sha256.Sum256(b)
}
