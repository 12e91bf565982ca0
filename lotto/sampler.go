package lotto

import (
	"math"
	"math/rand"
	"sort"
)

// poolWeight returns the sampling weight for number n in a pool of poolSize.
// Numbers away from the pool midpoint carry slightly more mass. This is a
// deliberately simple display heuristic, not a statistical model.
func poolWeight(n, poolSize int) float64 {
	mid := float64(poolSize) / 2.0
	return 0.6 + math.Abs(float64(n)-mid)/float64(poolSize)
}

// WeightedSample draws k distinct numbers from [1, poolSize] without
// replacement, biased by poolWeight, and returns them sorted ascending.
//
// Each draw picks a uniform threshold over the remaining effective mass and
// scans numbers in ascending order; already-picked numbers carry zero weight
// on later draws, so termination is guaranteed for k <= poolSize and exactly
// one uniform variate is consumed per selected number. Callers validate
// k <= poolSize via GameProfile.Validate.
func WeightedSample(rng *rand.Rand, poolSize, k int) []int {
	chosen := make([]bool, poolSize+1)
	remaining := 0.0
	for n := 1; n <= poolSize; n++ {
		remaining += poolWeight(n, poolSize)
	}

	result := make([]int, 0, k)
	for len(result) < k {
		threshold := rng.Float64() * remaining
		acc := 0.0
		picked := 0
		for n := 1; n <= poolSize; n++ {
			if chosen[n] {
				continue
			}
			acc += poolWeight(n, poolSize)
			if acc >= threshold {
				picked = n
				break
			}
		}
		if picked == 0 {
			// Float accumulation can land the threshold a hair past the last
			// unchosen number; take it.
			for n := poolSize; n >= 1; n-- {
				if !chosen[n] {
					picked = n
					break
				}
			}
		}
		chosen[picked] = true
		remaining -= poolWeight(picked, poolSize)
		result = append(result, picked)
	}

	sort.Ints(result)
	return result
}
