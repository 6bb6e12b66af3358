// Package rngstream derives the per-ensemble-member random stream the
// ensemble driver needs for reproducibility: member i always sees the
// stream seeded from (rngSeed + i), independent of worker count or
// scheduling order.
package rngstream

import "math/rand"

// ForMember returns a fresh *rand.Rand seeded deterministically from
// (rngSeed, memberIndex). Two calls with the same arguments always
// produce generators with identical output sequences.
func ForMember(rngSeed int64, memberIndex int) *rand.Rand {
	return rand.New(rand.NewSource(rngSeed + int64(memberIndex)))
}

// Gaussian fills dst with iid samples from N(0, sigma) drawn from r.
func Gaussian(r *rand.Rand, sigma float64, dst []float64) {
	for i := range dst {
		dst[i] = r.NormFloat64() * sigma
	}
}

// UnitVarianceNoise fills dst with iid samples from N(0, 1), the raw
// per-member noise realisation CEEMDAN scales per mode.
func UnitVarianceNoise(r *rand.Rand, dst []float64) {
	for i := range dst {
		dst[i] = r.NormFloat64()
	}
}
