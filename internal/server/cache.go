package server

import (
	"fmt"
	"log"
	"math/rand/v2"
	"sync"

	lru "github.com/hashicorp/golang-lru"

	"noisy/gen"
)

// GenCache shares generator instances between sessions. Generators are
// immutable, so one instance can serve any number of sessions at once.
type GenCache struct {
	cache *lru.Cache

	mu    sync.Mutex
	seeds map[gen.Kind]int64 // seeds picked for zero-seed requests
}

type cacheKey struct {
	kind gen.Kind
	seed int64
}

// NewGenCache returns a cache holding at most size generators.
func NewGenCache(size int) (*GenCache, error) {
	c, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("create generator cache: %w", err)
	}
	return &GenCache{
		cache: c,
		seeds: make(map[gen.Kind]int64),
	}, nil
}

// Get returns the generator for kind and seed, building it on first use.
// A zero seed is replaced by a random seed that stays fixed per kind for
// the lifetime of the cache. The effective seed is returned.
func (c *GenCache) Get(kind gen.Kind, seed int64) (gen.NoiseGen, int64) {
	if seed == 0 {
		seed = c.seedFor(kind)
	}
	key := cacheKey{kind: kind, seed: seed}
	if v, ok := c.cache.Get(key); ok {
		return v.(gen.NoiseGen), seed
	}

	g, err := gen.New(kind, seed)
	if err != nil {
		// Kinds reaching the cache were already parsed.
		panic(err)
	}
	c.cache.Add(key, g)
	log.Printf("Generator built: %s (seed %d)", kind, seed)
	return g, seed
}

// Len returns the number of cached generators.
func (c *GenCache) Len() int {
	return c.cache.Len()
}

func (c *GenCache) seedFor(kind gen.Kind) int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if s, ok := c.seeds[kind]; ok {
		return s
	}
	var s int64
	for s == 0 {
		s = rand.Int64()
	}
	c.seeds[kind] = s
	return s
}
