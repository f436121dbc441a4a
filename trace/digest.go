package trace

import (
	"crypto/sha256"
	"encoding/binary"

	"github.com/detersim/determinisk/physics"
)

// StateDigest computes the 32-byte zkVM state digest for a world: sha256
// over the concatenation, in body-index order, of each body's x-encoding
// and y-encoding as little-endian int32 bytes. This is the same digest the
// zkvm package commits as part of its journal; it is exposed here too so a
// trace consumer can verify a recorded run against a guest's output without
// importing zkvm.
func StateDigest(w *physics.World) [32]byte {
	buf := make([]byte, 0, len(w.Circles)*8)
	for _, c := range w.Circles {
		var x, y [4]byte
		binary.LittleEndian.PutUint32(x[:], uint32(c.Position.X.Bits()))
		binary.LittleEndian.PutUint32(y[:], uint32(c.Position.Y.Bits()))
		buf = append(buf, x[:]...)
		buf = append(buf, y[:]...)
	}
	return sha256.Sum256(buf)
}
