// Package idempotency guards against duplicate checkout submissions.
// A client sends the same Idempotency-Key with every retry of one logical
// checkout; the store accepts the first submission and reports every
// subsequent one as already seen.
package idempotency

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Header is the request header carrying the client's idempotency key.
const Header = "Idempotency-Key"

// KeyFromRequest extracts the idempotency key from an HTTP request.
// Returns the empty string when the client sent none.
func KeyFromRequest(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(Header))
}

// Store records seen checkout submissions in redis with a bounded lifetime.
// The reservation is a SETNX: exactly one submission per key wins, every
// other one observes the key as taken.
type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewStore creates a Store over the given redis client. Keys expire after
// ttl, bounding how long a retry is recognized as a duplicate.
func NewStore(rdb *redis.Client, ttl time.Duration) *Store {
	return &Store{rdb: rdb, ttl: ttl}
}

// Key builds the storage key for one customer's checkout submission.
// Scoping by customer keeps two customers' identical keys independent.
func (s *Store) Key(customerID string, requestKey string) string {
	return fmt.Sprintf("idem:checkout:%s:%s", customerID, requestKey)
}

// Seen reserves the key and reports whether it had already been used.
// The first call for a key returns false and claims it; concurrent and later
// calls return true until the key expires.
func (s *Store) Seen(ctx context.Context, key string) (bool, error) {
	ok, err := s.rdb.SetNX(ctx, key, "1", s.ttl).Result()
	if err != nil {
		return false, err
	}

	return !ok, nil
}
