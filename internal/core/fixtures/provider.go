package fixtures

import (
	"hash/fnv"
	"math/rand"
)

// DefaultSeed is used when no seed is configured
const DefaultSeed int64 = 20250128

// Provider serves the mock dashboard data.
// Every random series draws from its own stream derived from the seed,
// so results do not depend on call order.
type Provider struct {
	seed int64
}

func New(seed int64) *Provider {
	return &Provider{seed: seed}
}

func (p *Provider) Seed() int64 {
	return p.seed
}

func (p *Provider) stream(series string) *rand.Rand {
	h := fnv.New64a()
	h.Write([]byte(series))
	return rand.New(rand.NewSource(p.seed ^ int64(h.Sum64())))
}
