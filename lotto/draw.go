package lotto

// DrawRecord is one historical drawing, real or simulated.
// MainNumbers are unique values in [1, MainPoolSize]; SpecialNumber is 0 when
// the game has no special pool. SequenceIndex 0 is the oldest record.
// Immutable once created.
type DrawRecord struct {
	MainNumbers   []int
	SpecialNumber int
	SequenceIndex int
}

// SimulateHistory produces n synthetic drawings for a profile using the
// weighted sampler on the isolated history RNG stream. Used as the fallback
// when no real draw history is available.
func SimulateHistory(profile GameProfile, n int, rng *PartitionedRNG) []DrawRecord {
	src := rng.ForSubsystem(SubsystemHistory)
	records := make([]DrawRecord, 0, n)
	for i := 0; i < n; i++ {
		rec := DrawRecord{
			MainNumbers:   WeightedSample(src, profile.MainPoolSize, profile.MainPickCount),
			SequenceIndex: i,
		}
		if profile.HasSpecial() {
			rec.SpecialNumber = WeightedSample(src, profile.SpecialPoolSize, 1)[0]
		}
		records = append(records, rec)
	}
	return records
}
