package random

// IntBetween returns a random int in [min, max).
func IntBetween(min, max int) int {
	return int(rnd.Int63n(int64(max-min))) + min
}

// FloatBetween returns a random float64 in [min, max).
func FloatBetween(min, max float64) float64 {
	return min + rnd.Float64()*(max-min)
}
