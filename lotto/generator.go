package lotto

import (
	"github.com/sirupsen/logrus"
)

// Generator produces tickets for one game profile from a seeded RNG.
// Deterministic given its DrawKey: the same key, configuration, and call
// sequence yields identical tickets. Not safe for concurrent use; create one
// Generator per request.
type Generator struct {
	profile GameProfile
	cfg     GeneratorConfig
	rng     *PartitionedRNG
}

// NewGenerator validates the configuration and returns a Generator seeded
// from key.
func NewGenerator(profile GameProfile, cfg GeneratorConfig, key DrawKey) (*Generator, error) {
	if err := cfg.Validate(profile); err != nil {
		return nil, err
	}
	return &Generator{profile: profile, cfg: cfg, rng: NewPartitionedRNG(key)}, nil
}

// RNG exposes the generator's partitioned RNG so callers can share one seed
// across estimation fallback and generation.
func (g *Generator) RNG() *PartitionedRNG {
	return g.rng
}

// Ticket samples one ticket and applies the configured strategy nudging.
// class supplies the hot/warm/cold bands consumed by blend/cold strategies;
// nil is valid for StrategyNone.
func (g *Generator) Ticket(class *Classification) Ticket {
	mains := WeightedSample(g.rng.ForSubsystem(SubsystemMainPool), g.profile.MainPoolSize, g.profile.MainPickCount)
	if class != nil {
		mains = applyStrategy(mains, g.profile, *class, g.cfg, g.rng.ForSubsystem(SubsystemStrategy))
	}

	t := Ticket{MainNumbers: mains}
	if g.profile.HasSpecial() {
		t.SpecialNumber = WeightedSample(g.rng.ForSubsystem(SubsystemSpecialPool), g.profile.SpecialPoolSize, 1)[0]
	}
	return t
}

// Tickets generates up to n unique tickets. See TicketsExcluding.
func (g *Generator) Tickets(n int, class *Classification) []Ticket {
	return g.TicketsExcluding(n, class, nil)
}

// TicketsExcluding generates up to n tickets whose normalized identities are
// unique among themselves and absent from exclude. Sampling continues until
// n unique tickets are collected or the retry budget (n * RetryBudget
// attempts) is exhausted, in which case fewer tickets are returned with a
// warning. Underfill is a valid result, never an error.
func (g *Generator) TicketsExcluding(n int, class *Classification, exclude map[string]struct{}) []Ticket {
	seen := make(map[string]struct{}, n+len(exclude))
	for k := range exclude {
		seen[k] = struct{}{}
	}

	out := make([]Ticket, 0, n)
	for budget := n * g.cfg.RetryBudget; len(out) < n && budget > 0; budget-- {
		t := g.Ticket(class)
		if !satisfiesTicketConstraints(t.MainNumbers, g.cfg) {
			continue
		}
		key := t.Key()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, t)
	}

	if len(out) < n {
		logrus.Warnf("ticket generation underfilled for %q: requested %d, produced %d", g.profile.Name, n, len(out))
	}
	return out
}
