package lotto

import (
	"math/rand"
	"sort"
)

// applyStrategy nudges a sampled main-number set toward the configured
// composition. The input slice is sorted ascending; the result is too, with
// exactly len(mains) unique members in [1, profile.MainPoolSize].
func applyStrategy(mains []int, profile GameProfile, class Classification, cfg GeneratorConfig, rng *rand.Rand) []int {
	switch cfg.Strategy {
	case StrategyBlend:
		return blendNudge(mains, profile, class, cfg, rng)
	case StrategyCold:
		return coldNudge(mains, profile, class, rng)
	default:
		return mains
	}
}

// blendNudge enforces the blend composition: at least MinHotCount hot and
// MinColdCount cold members. Hot adjustment runs first, then cold; each is
// bounded by the pick count and preserves the other band's gains. With
// OverdueProbability the overdue cluster is then unioned in, displacing
// randomly chosen non-cluster members.
func blendNudge(mains []int, profile GameProfile, class Classification, cfg GeneratorConfig, rng *rand.Rand) []int {
	pick := profile.MainPickCount
	mains = ensureBandMinimum(mains, class.Hot, class.Cold, cfg.MinHotCount, pick, rng)
	mains = ensureBandMinimum(mains, class.Cold, class.Hot, cfg.MinColdCount, pick, rng)

	if len(cfg.OverdueCluster) > 0 && cfg.OverdueProbability > 0 && rng.Float64() < cfg.OverdueProbability {
		mains = unionCluster(mains, cfg.OverdueCluster, profile.MainPoolSize, pick, rng)
	}

	mains = topUp(mains, profile.MainPoolSize, pick, rng)
	sort.Ints(mains)
	return mains
}

// coldNudge replaces one or two random positions with cold numbers not
// already on the ticket, when any are available.
func coldNudge(mains []int, profile GameProfile, class Classification, rng *rand.Rand) []int {
	replacements := 1 + rng.Intn(2)
	for i := 0; i < replacements; i++ {
		candidates := missingFrom(class.Cold, mains)
		if len(candidates) == 0 {
			break
		}
		pos := rng.Intn(len(mains))
		mains[pos] = candidates[rng.Intn(len(candidates))]
	}
	sort.Ints(mains)
	return mains
}

// ensureBandMinimum raises the count of band members on the ticket to
// minCount by replacing members that belong to neither band nor protected,
// or by appending when the ticket is short of pickCount. Stops early when no
// candidates or replaceable positions remain.
func ensureBandMinimum(mains []int, band, protected []int, minCount, pickCount int, rng *rand.Rand) []int {
	bandSet := toSet(band)
	protectedSet := toSet(protected)

	have := 0
	for _, v := range mains {
		if bandSet[v] {
			have++
		}
	}

	for have < minCount {
		candidates := missingFrom(band, mains)
		if len(candidates) == 0 {
			break
		}
		pick := candidates[rng.Intn(len(candidates))]

		if len(mains) < pickCount {
			mains = append(mains, pick)
			have++
			continue
		}

		var replaceable []int
		for i, v := range mains {
			if !bandSet[v] && !protectedSet[v] {
				replaceable = append(replaceable, i)
			}
		}
		if len(replaceable) == 0 {
			break
		}
		mains[replaceable[rng.Intn(len(replaceable))]] = pick
		have++
	}
	return mains
}

// unionCluster adds the in-range cluster members missing from the ticket,
// then removes randomly chosen non-cluster members until the ticket is back
// to pickCount. Removal is the minimum needed, so non-displaced originals
// always survive.
func unionCluster(mains []int, cluster []int, poolSize, pickCount int, rng *rand.Rand) []int {
	present := toSet(mains)
	clusterSet := make(map[int]bool, len(cluster))
	for _, c := range cluster {
		if c >= 1 && c <= poolSize {
			clusterSet[c] = true
			if !present[c] {
				mains = append(mains, c)
				present[c] = true
			}
		}
	}

	for len(mains) > pickCount {
		var removable []int
		for i, v := range mains {
			if !clusterSet[v] {
				removable = append(removable, i)
			}
		}
		drop := rng.Intn(len(mains))
		if len(removable) > 0 {
			drop = removable[rng.Intn(len(removable))]
		}
		mains = append(mains[:drop], mains[drop+1:]...)
	}
	return mains
}

// topUp fills a short ticket to pickCount with uniformly chosen numbers not
// already present.
func topUp(mains []int, poolSize, pickCount int, rng *rand.Rand) []int {
	for len(mains) < pickCount {
		present := toSet(mains)
		var free []int
		for n := 1; n <= poolSize; n++ {
			if !present[n] {
				free = append(free, n)
			}
		}
		if len(free) == 0 {
			break
		}
		mains = append(mains, free[rng.Intn(len(free))])
	}
	return mains
}

// satisfiesTicketConstraints applies the optional parity/sum acceptance
// checks. Rejected tickets are resampled by the generator under its retry
// budget.
func satisfiesTicketConstraints(mains []int, cfg GeneratorConfig) bool {
	if cfg.ParityTarget != nil {
		even := 0
		for _, v := range mains {
			if v%2 == 0 {
				even++
			}
		}
		if even != *cfg.ParityTarget {
			return false
		}
	}
	if cfg.SumRange != nil {
		sum := 0
		for _, v := range mains {
			sum += v
		}
		if sum < cfg.SumRange[0] || sum > cfg.SumRange[1] {
			return false
		}
	}
	return true
}

func toSet(values []int) map[int]bool {
	s := make(map[int]bool, len(values))
	for _, v := range values {
		s[v] = true
	}
	return s
}

// missingFrom returns the members of band not present in mains, in ascending
// band order (deterministic candidate indexing for the injected RNG).
func missingFrom(band, mains []int) []int {
	present := toSet(mains)
	var out []int
	for _, v := range band {
		if !present[v] {
			out = append(out, v)
		}
	}
	return out
}
