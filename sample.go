package main

import "math/rand"

// randomSample draws size integers in [low, high] from a generator seeded with
// seed, so the same flags always give the same sample.
func randomSample(seed int64, size int, low, high int) []float64 {

	r := rand.New(rand.NewSource(seed))

	data := make([]float64, size)
	for i := range data {
		data[i] = float64(low + r.Intn(high-low+1))
	}

	return data
}
