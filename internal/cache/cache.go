package cache

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// Idempotency remembers the record created for a client-supplied key, so a
// retried create returns the original record instead of a new one.
type Idempotency[V any] struct {
	size int
	lru  *lru.Cache[string, V]
}

func New[V any](size int) (*Idempotency[V], error) {
	c, err := lru.New[string, V](size)
	if err != nil {
		return nil, err
	}
	return &Idempotency[V]{
		size: size,
		lru:  c,
	}, nil
}

func (c *Idempotency[V]) Get(key string) (V, bool) {
	return c.lru.Get(key)
}

func (c *Idempotency[V]) Set(key string, v V) {
	c.lru.Add(key, v)
}

func (c *Idempotency[V]) Len() int { return c.lru.Len() }
