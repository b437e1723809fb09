package kvstore

import "context"

// Store is the persistence contract for per-user learning progress and
// activity logs. An absent key is a valid state, distinguishable from a key
// present with a zero value.
//
// Implementations never surface storage failures to callers: reads degrade
// to absent and writes are logged and dropped, so dashboards built on top of
// the store keep rendering when the backend is unavailable.
type Store interface {
	// Get returns the value for key and whether it exists.
	Get(ctx context.Context, key string) (string, bool)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string)
	// IncrBy adds delta to the integer counter stored under key, creating it
	// at delta if absent. Additive so that overlapping activity ticks each
	// contribute their own elapsed seconds.
	IncrBy(ctx context.Context, key string, delta int64)
}
