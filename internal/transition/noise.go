package transition

import "math/rand/v2"

// NewNoise returns n thresholds in [0, 1). The same non-zero seed always
// yields the same thresholds; seed 0 picks a random seed.
func NewNoise(n int, seed uint64) []float32 {
	if seed == 0 {
		seed = rand.Uint64()
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	noise := make([]float32, n)
	for i := range noise {
		noise[i] = rng.Float32()
	}
	return noise
}
