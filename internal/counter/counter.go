// Package counter caches organization follower counts outside the record store.
package counter

import "context"

// FollowerCounter is a read-through cache of followers_count.
// Get reports a miss with ok == false.
type FollowerCounter interface {
	Get(ctx context.Context, orgID string) (count int64, ok bool, err error)
	Set(ctx context.Context, orgID string, count int64) error
	Incr(ctx context.Context, orgID string) error
	Decr(ctx context.Context, orgID string) error
	Close() error
}

// Nop is used when no counter cache is configured. Every Get misses.
type Nop struct{}

func (Nop) Get(context.Context, string) (int64, bool, error) { return 0, false, nil }
func (Nop) Set(context.Context, string, int64) error         { return nil }
func (Nop) Incr(context.Context, string) error               { return nil }
func (Nop) Decr(context.Context, string) error               { return nil }
func (Nop) Close() error                                     { return nil }

var _ FollowerCounter = Nop{}
