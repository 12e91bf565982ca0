package lotto

import (
	"hash/fnv"
	"math/rand"
)

// === DrawKey ===

// DrawKey uniquely identifies a reproducible generation run.
// Two runs with the same DrawKey and identical configuration MUST produce
// bit-for-bit identical classifications and tickets. The key is the "Seed"
// value shown to end users on generated reports.
type DrawKey int64

// NewDrawKey creates a DrawKey from a seed value.
func NewDrawKey(seed int64) DrawKey {
	return DrawKey(seed)
}

// === Subsystem Constants ===

const (
	// SubsystemMainPool is the RNG subsystem for main-pool ticket sampling.
	// Uses the master seed directly so a bare `--seed N` run matches the
	// single-generator behavior users already rely on.
	SubsystemMainPool = "main_pool"

	// SubsystemSpecialPool is the RNG subsystem for special-pool sampling
	// (bonus ball, Super Ball, Powerball).
	SubsystemSpecialPool = "special_pool"

	// SubsystemStrategy is the RNG subsystem for blend/cold nudging decisions.
	SubsystemStrategy = "strategy"

	// SubsystemHistory is the RNG subsystem for simulated draw history.
	// Isolated so generating tickets never perturbs the simulated history
	// stream and vice versa.
	SubsystemHistory = "history"
)

// === PartitionedRNG ===

// PartitionedRNG provides deterministic, isolated RNG instances per subsystem.
//
// Derivation formula:
//   - For SubsystemMainPool: uses masterSeed directly
//   - For all other subsystems: masterSeed XOR fnv1a64(subsystemName)
//
// Thread-safety: NOT thread-safe. A concurrent host must use one
// PartitionedRNG per request; interleaved draws from a shared instance would
// break reproducibility.
type PartitionedRNG struct {
	key        DrawKey
	subsystems map[string]*rand.Rand
}

// NewPartitionedRNG creates a PartitionedRNG from a DrawKey.
func NewPartitionedRNG(key DrawKey) *PartitionedRNG {
	return &PartitionedRNG{
		key:        key,
		subsystems: make(map[string]*rand.Rand),
	}
}

// ForSubsystem returns a deterministically-seeded RNG for the named subsystem.
// The same subsystem name always returns the same *rand.Rand instance (cached).
// Never returns nil.
func (p *PartitionedRNG) ForSubsystem(name string) *rand.Rand {
	if rng, ok := p.subsystems[name]; ok {
		return rng
	}

	var derivedSeed int64
	if name == SubsystemMainPool {
		derivedSeed = int64(p.key)
	} else {
		derivedSeed = int64(p.key) ^ fnv1a64(name)
	}

	rng := rand.New(rand.NewSource(derivedSeed))
	p.subsystems[name] = rng
	return rng
}

// Key returns the DrawKey used to create this PartitionedRNG.
func (p *PartitionedRNG) Key() DrawKey {
	return p.key
}

// fnv1a64 computes a 64-bit FNV-1a hash of the input string.
func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}
