package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/dangerclosesec/tounesna/internal/domain"
	"github.com/dangerclosesec/tounesna/internal/model"
	"github.com/dangerclosesec/tounesna/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stalledStore never answers until the caller gives up.
type stalledStore struct {
	store.Store
}

func (s stalledStore) Get(ctx context.Context, collection, id string, dst any) error {
	<-ctx.Done()
	return ctx.Err()
}

func (s stalledStore) Increment(ctx context.Context, collection, id string, deltas map[string]float64) error {
	<-ctx.Done()
	return ctx.Err()
}

func TestWithTimeout(t *testing.T) {
	ctx := context.Background()

	t.Run("stalled call reports timeout", func(t *testing.T) {
		s := store.WithTimeout(stalledStore{Store: store.NewMemoryStore()}, 20*time.Millisecond)

		start := time.Now()
		var got model.Organization
		err := s.Get(ctx, model.CollectionOrganizations, "o1", &got)
		assert.ErrorIs(t, err, domain.ErrTimeout)
		assert.Less(t, time.Since(start), time.Second)

		err = s.Increment(ctx, model.CollectionOrganizations, "o1", map[string]float64{"followers_count": 1})
		assert.ErrorIs(t, err, domain.ErrTimeout)
	})

	t.Run("fast calls pass through", func(t *testing.T) {
		s := store.WithTimeout(store.NewMemoryStore(), time.Second)
		org := &model.Organization{Entity: model.Entity{ID: "o1"}, Name: "Enactus", Email: "e@example.tn"}
		require.NoError(t, s.Create(ctx, model.CollectionOrganizations, org))

		var got model.Organization
		require.NoError(t, s.Get(ctx, model.CollectionOrganizations, "o1", &got))
		assert.Equal(t, "Enactus", got.Name)

		assert.ErrorIs(t, s.Get(ctx, model.CollectionOrganizations, "o2", &got), domain.ErrNotFound)
	})

	t.Run("transaction calls keep their deadline", func(t *testing.T) {
		s := store.WithTimeout(store.NewMemoryStore(), time.Second)
		err := s.WithinTx(ctx, func(ctx context.Context) error {
			org := &model.Organization{Entity: model.Entity{ID: "o1"}, Name: "Enactus", Email: "e@example.tn"}
			return s.Create(ctx, model.CollectionOrganizations, org)
		})
		require.NoError(t, err)
	})
}
