package main

// Linear congruential step shared by every draw. Three steps are folded into
// one 31-bit value so the low-quality low-order bits of the state never reach
// the caller.
const (
	lcgMultiplier = 1103515245
	lcgIncrement  = 12345

	// randRange is one past the largest value lcgNext can return.
	randRange = 1 << 31
)

func lcgNext(seed uint32) (uint32, uint32) {
	next := seed

	next = next*lcgMultiplier + lcgIncrement
	result := (next >> 16) % 2048

	next = next*lcgMultiplier + lcgIncrement
	result <<= 10
	result ^= (next >> 16) % 1024

	next = next*lcgMultiplier + lcgIncrement
	result <<= 10
	result ^= (next >> 16) % 1024

	return result, next
}

// nextUniform maps seed to a value in [-1, 1) and the seed to use for the
// following draw. It has no other effect, so equal inputs give equal outputs.
func nextUniform(seed uint32) (float64, uint32) {
	r, next := lcgNext(seed)
	return float64(r)*2/randRange - 1, next
}

// uniform draws one value in [-1, 1) and advances *seed in place.
func uniform(seed *uint32) float64 {
	v, next := nextUniform(*seed)
	*seed = next
	return v
}
