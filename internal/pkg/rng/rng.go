// Package rng provides the seedable randomness source every roll in a run
// draws from.
package rng

//go:generate mockgen -destination=mock/mock_roller.go -package=rngmock github.com/KirkDiggler/rpg-toolkit/dice Roller

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/chunin-dm/internal/errors"
)

// Source is a deterministic stream of uniform integers. It satisfies the
// rpg-toolkit dice.Roller contract so the dice engine can run on it or on
// any other roller.
//
// A Source is not safe for concurrent use. Runs are single-threaded and the
// order of draws is part of the output contract for a seed.
type Source struct {
	seed  int64
	src   *rand.Rand
	draws int64
}

var _ dice.Roller = (*Source)(nil)

// New creates a source seeded with seed.
func New(seed int64) *Source {
	return &Source{
		seed: seed,
		src:  rand.New(rand.NewSource(seed)),
	}
}

// NewRandom creates a source with a seed read from crypto/rand. The seed is
// still available through Seed so an unseeded run can be replayed.
func NewRandom() (*Source, error) {
	seed, err := NewSeed()
	if err != nil {
		return nil, err
	}
	return New(seed), nil
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, errors.Wrap(err, "failed to read random seed")
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// Seed returns the seed the source was created with.
func (s *Source) Seed() int64 {
	return s.seed
}

// Draws returns the number of integers drawn so far.
func (s *Source) Draws() int64 {
	return s.draws
}

// Roll returns a uniform integer in [1, size].
func (s *Source) Roll(size int) (int, error) {
	return s.Between(1, size)
}

// RollN rolls count dice of the given size in order.
func (s *Source) RollN(count, size int) ([]int, error) {
	if count < 0 {
		return nil, errors.InvalidArgumentf("dice count must be non-negative: %d", count)
	}
	results := make([]int, count)
	for i := range results {
		r, err := s.Roll(size)
		if err != nil {
			return nil, err
		}
		results[i] = r
	}
	return results, nil
}

// Between returns a uniform integer in the closed range [lo, hi].
func (s *Source) Between(lo, hi int) (int, error) {
	if hi < lo {
		return 0, errors.InvalidArgumentf("invalid range [%d, %d]", lo, hi).
			WithMeta("lo", lo).
			WithMeta("hi", hi)
	}
	s.draws++
	return lo + s.src.Intn(hi-lo+1), nil
}
