// Package lotto provides the core number-analysis and ticket-generation
// engine for SmartPlay.
//
// # Reading Guide
//
// Start with these three files to understand the engine:
//   - game.go: GameProfile (pool sizes, pick counts) and the built-in games
//   - frequency.go: recency-weighted frequency estimation and hot/warm/cold bands
//   - generator.go: weighted ticket sampling, strategy nudging, dedupe
//
// # Architecture
//
// The lotto package holds the pure computation core; collaborators live in
// sub-packages:
//   - lotto/history/: CSV draw-history loading
//   - lotto/report/: pure data types and CSV writers for the report layer
//   - lotto/store/: Badger-backed draw archive
//
// Every random decision flows through a PartitionedRNG (rng.go) derived from
// a single int64 seed, so a run is bit-for-bit reproducible given its seed.
// Nothing in this package keeps mutable package-level state.
package lotto
