// SPDX-License-Identifier: MIT
// Package: manager
//
// options.go: functional options for New.
//
// Contract:
//   • Option constructors validate and panic on meaningless input (nil source,
//     nil logger); New itself never validates options.
//   • Later options override earlier ones.
//   • Deterministic defaults: seed 1, no-op logger.

package manager

import (
	"math/rand/v2"

	"go.uber.org/zap"
)

// DefaultSeed seeds the generator when neither WithSeed nor WithRand is given.
const DefaultSeed uint64 = 1

// Option customizes a Manager.
type Option func(*config)

type config struct {
	src    rand.Source
	logger *zap.Logger
}

func newConfig(opts ...Option) config {
	c := config{}
	for _, opt := range opts {
		opt(&c)
	}
	if c.src == nil {
		c.src = newSource(DefaultSeed)
	}
	if c.logger == nil {
		c.logger = zap.NewNop()
	}
	return c
}

// newSource returns the PCG source used for a seed.
func newSource(seed uint64) rand.Source {
	return rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
}

// WithSeed makes every random operation reproducible from seed.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.src = newSource(seed)
	}
}

// WithRand uses src for every random draw. Panics on nil.
func WithRand(src rand.Source) Option {
	if src == nil {
		panic("manager: WithRand(nil)")
	}
	return func(c *config) {
		c.src = src
	}
}

// WithLogger routes diagnostics (check failures, shortfalls) to logger.
// Panics on nil; use zap.NewNop to silence.
func WithLogger(logger *zap.Logger) Option {
	if logger == nil {
		panic("manager: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = logger
	}
}
