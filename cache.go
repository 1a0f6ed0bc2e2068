//go:build decimal

package memcomparable

import (
	"math/big"
	"sync"
)

// cache is a simple, thread-safe, non-evicting memoizing cache. The
// compute function must be thread-safe and idempotent; it may run more
// than once for the same key if two callers race on a miss.
type cache[K comparable, V any] struct {
	lock    *sync.RWMutex
	cached  map[K]V
	compute func(K) V
}

func makeCache[K comparable, V any](compute func(K) V) cache[K, V] {
	return cache[K, V]{
		lock:    &sync.RWMutex{},
		cached:  map[K]V{},
		compute: compute,
	}
}

func (c *cache[K, V]) Get(key K) V {
	c.lock.RLock()
	value, ok := c.cached[key]
	c.lock.RUnlock()
	if ok {
		return value
	}
	value = c.compute(key)
	c.lock.Lock()
	c.cached[key] = value
	c.lock.Unlock()
	return value
}

// pow10Cache memoizes powers of ten as *big.Int. Decimal encode/decode
// repeatedly needs 10^n for small n (trailing-zero re-padding); this
// avoids rebuilding the same big.Int on every decimal that needs it.
var pow10Cache = makeCache(func(n int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
})

func pow10(n int) *big.Int {
	return new(big.Int).Set(pow10Cache.Get(n))
}
