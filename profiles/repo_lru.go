package profiles

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"maps"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/jrsteele09/go-backoffice/internal/errors"
)

var _ Repo = (*LRURepo)(nil)

// LRURepo is a size-bounded, time-bounded in-memory Repo. Tokens are hashed before being
// used as keys.
type LRURepo struct {
	cache *expirable.LRU[string, map[string]any]
}

func NewLRURepo(size int, ttl time.Duration) *LRURepo {
	return &LRURepo{
		cache: expirable.NewLRU[string, map[string]any](size, nil, ttl),
	}
}

func (r *LRURepo) Upsert(token string, fields map[string]any) error {
	if token == "" {
		return fmt.Errorf("token is required")
	}
	r.cache.Add(key(token), maps.Clone(fields))
	return nil
}

func (r *LRURepo) Get(token string) (map[string]any, error) {
	fields, ok := r.cache.Get(key(token))
	if !ok {
		return nil, errors.ErrNotFound
	}
	return maps.Clone(fields), nil
}

func (r *LRURepo) Delete(token string) error {
	r.cache.Remove(key(token))
	return nil
}

func (r *LRURepo) Len() int {
	return r.cache.Len()
}

func key(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
