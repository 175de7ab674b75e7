package schemabridge

import "github.com/arloliu/colex/codecerr"

// WidenFloat widens a producer float (already read as float64, which is
// exact whether the wire value was F32 or F64) into a target of the given
// bit width. F64 -> F32 is a SchemaMismatch per spec unless the producer
// value happens to have arrived as an F32 in the first place (producerBits
// tells the caller which); that exactness check is the caller's
// responsibility, not this function's — WidenFloat only enforces the
// width direction.
func WidenFloat(v float64, producerBits, targetBits int) (float64, error) {
	if targetBits < producerBits {
		return 0, codecerr.SchemaMismatch
	}

	return v, nil
}
