package record

import "math/bits"

// mixStep folds one field hash into the running accumulator. Not
// cryptographic; deterministic and order-sensitive.
func mixStep(acc, h uint64) uint64 {
	return bits.RotateLeft64(acc, 5) ^ h
}
