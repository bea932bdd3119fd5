// Package rng abstracts every stochastic decision the battle engine makes
// (damage variance, miss checks, multi-hit counts, secondary-effect triggers,
// confusion duration and self-hits, move-order tie-breaks) behind a single
// interface.
//
// ProductionRNG backs the interface with math/rand for real play.
// TestRNG records the parameters of the most recent call to each method and
// lets tests force specific outcomes, so battle scenarios are fully
// reproducible without seeding a generator and hoping for the right rolls.
package rng
