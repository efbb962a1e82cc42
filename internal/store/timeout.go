package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dangerclosesec/tounesna/internal/domain"
	"github.com/dangerclosesec/tounesna/internal/metrics"
)

// DefaultTimeout bounds a single store call when no other limit is configured.
const DefaultTimeout = 5 * time.Second

// timeoutStore bounds every call of the wrapped store with its own deadline.
type timeoutStore struct {
	next    Store
	timeout time.Duration
}

// WithTimeout decorates s so each call gets at most d to finish.
// An expired deadline surfaces as domain.ErrTimeout.
func WithTimeout(s Store, d time.Duration) Store {
	if d <= 0 {
		d = DefaultTimeout
	}
	return &timeoutStore{next: s, timeout: d}
}

func (s *timeoutStore) call(ctx context.Context, op, collection string, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	err := fn(ctx)
	if err == nil {
		return nil
	}
	timedOut := errors.Is(err, domain.ErrTimeout)
	if !timedOut && (errors.Is(err, context.DeadlineExceeded) || ctx.Err() == context.DeadlineExceeded) {
		err = fmt.Errorf("%s %s after %s: %w", op, collection, s.timeout, domain.ErrTimeout)
		timedOut = true
	}
	if timedOut {
		metrics.StoreTimeouts.WithLabelValues(op, collection).Inc()
	}
	return err
}

// WithinTx is not bounded as a whole; each call made inside it is.
func (s *timeoutStore) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return s.next.WithinTx(ctx, fn)
}

func (s *timeoutStore) GenerateID(collection string) string {
	return s.next.GenerateID(collection)
}

func (s *timeoutStore) Get(ctx context.Context, collection, id string, dst any) error {
	return s.call(ctx, "get", collection, func(ctx context.Context) error {
		return s.next.Get(ctx, collection, id, dst)
	})
}

func (s *timeoutStore) Query(ctx context.Context, collection, field string, value any, dst any) error {
	return s.call(ctx, "query", collection, func(ctx context.Context) error {
		return s.next.Query(ctx, collection, field, value, dst)
	})
}

func (s *timeoutStore) List(ctx context.Context, collection string, dst any) error {
	return s.call(ctx, "list", collection, func(ctx context.Context) error {
		return s.next.List(ctx, collection, dst)
	})
}

func (s *timeoutStore) Create(ctx context.Context, collection string, doc Document) error {
	return s.call(ctx, "create", collection, func(ctx context.Context) error {
		return s.next.Create(ctx, collection, doc)
	})
}

func (s *timeoutStore) Update(ctx context.Context, collection, id string, fields map[string]any) error {
	return s.call(ctx, "update", collection, func(ctx context.Context) error {
		return s.next.Update(ctx, collection, id, fields)
	})
}

func (s *timeoutStore) CompareAndSwap(ctx context.Context, collection, id, field string, expected any, fields map[string]any) error {
	return s.call(ctx, "compare_and_swap", collection, func(ctx context.Context) error {
		return s.next.CompareAndSwap(ctx, collection, id, field, expected, fields)
	})
}

func (s *timeoutStore) Increment(ctx context.Context, collection, id string, deltas map[string]float64) error {
	return s.call(ctx, "increment", collection, func(ctx context.Context) error {
		return s.next.Increment(ctx, collection, id, deltas)
	})
}

func (s *timeoutStore) Delete(ctx context.Context, collection, id string) error {
	return s.call(ctx, "delete", collection, func(ctx context.Context) error {
		return s.next.Delete(ctx, collection, id)
	})
}

// wrapContextErr maps a context failure to the store's error kinds.
func wrapContextErr(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", domain.ErrTimeout, err)
	}
	return err
}
