package store_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/dangerclosesec/tounesna/internal/domain"
	"github.com/dangerclosesec/tounesna/internal/model"
	"github.com/dangerclosesec/tounesna/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// contract exercises the behavior every backend must share.
func contract(t *testing.T, newStore func(t *testing.T) store.Store) {
	ctx := context.Background()

	t.Run("create then get", func(t *testing.T) {
		s := newStore(t)
		org := &model.Organization{Entity: model.Entity{ID: s.GenerateID(model.CollectionOrganizations)}, Name: "Croissant Rouge", Email: "cr@example.tn"}
		require.NoError(t, s.Create(ctx, model.CollectionOrganizations, org))

		var got model.Organization
		require.NoError(t, s.Get(ctx, model.CollectionOrganizations, org.ID, &got))
		assert.Equal(t, "Croissant Rouge", got.Name)
		assert.False(t, got.CreatedAt.IsZero())
	})

	t.Run("get missing is not found", func(t *testing.T) {
		s := newStore(t)
		var got model.Organization
		err := s.Get(ctx, model.CollectionOrganizations, "nope", &got)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("duplicate id already exists", func(t *testing.T) {
		s := newStore(t)
		f := &model.Follow{Entity: model.Entity{ID: model.FollowID("v1", "o1")}, VolunteerID: "v1", OrganizationID: "o1"}
		require.NoError(t, s.Create(ctx, model.CollectionFollows, f))

		dup := &model.Follow{Entity: model.Entity{ID: model.FollowID("v1", "o1")}, VolunteerID: "v1", OrganizationID: "o1"}
		assert.ErrorIs(t, s.Create(ctx, model.CollectionFollows, dup), domain.ErrAlreadyExists)
	})

	t.Run("query filters on equality in creation order", func(t *testing.T) {
		s := newStore(t)
		for i, org := range []string{"a", "b", "a", "c", "a"} {
			leg := &model.RequestLeg{
				Entity:         model.Entity{ID: s.GenerateID(model.CollectionRequestLegs), CreatedAt: time.Now().Add(time.Duration(i) * time.Second)},
				RequestID:      "r",
				VolunteerID:    "v",
				OrganizationID: org,
				Status:         model.LegPending,
			}
			require.NoError(t, s.Create(ctx, model.CollectionRequestLegs, leg))
		}

		var legs []*model.RequestLeg
		require.NoError(t, s.Query(ctx, model.CollectionRequestLegs, "organization_id", "a", &legs))
		require.Len(t, legs, 3)
		for i, leg := range legs {
			assert.Equal(t, "a", leg.OrganizationID)
			if i > 0 {
				assert.False(t, leg.CreatedAt.Before(legs[i-1].CreatedAt))
			}
		}
	})

	t.Run("update merges fields", func(t *testing.T) {
		s := newStore(t)
		v := &model.Volunteer{Entity: model.Entity{ID: "v1"}, Name: "Amira", Surname: "Ben Salah", Email: "amira@example.tn"}
		require.NoError(t, s.Create(ctx, model.CollectionVolunteers, v))
		require.NoError(t, s.Update(ctx, model.CollectionVolunteers, "v1", map[string]any{"location": "Sfax"}))

		var got model.Volunteer
		require.NoError(t, s.Get(ctx, model.CollectionVolunteers, "v1", &got))
		assert.Equal(t, "Sfax", got.Location)
		assert.Equal(t, "Ben Salah", got.Surname)

		assert.ErrorIs(t, s.Update(ctx, model.CollectionVolunteers, "missing", map[string]any{"location": "Sfax"}), domain.ErrNotFound)
	})

	t.Run("compare and swap guards on the current value", func(t *testing.T) {
		s := newStore(t)
		leg := &model.RequestLeg{Entity: model.Entity{ID: "l1"}, RequestID: "r", VolunteerID: "v", OrganizationID: "o", Status: model.LegPending}
		require.NoError(t, s.Create(ctx, model.CollectionRequestLegs, leg))

		require.NoError(t, s.CompareAndSwap(ctx, model.CollectionRequestLegs, "l1", "status", model.LegPending,
			map[string]any{"status": model.LegRejected}))

		err := s.CompareAndSwap(ctx, model.CollectionRequestLegs, "l1", "status", model.LegPending,
			map[string]any{"status": model.LegApproved})
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)

		var got model.RequestLeg
		require.NoError(t, s.Get(ctx, model.CollectionRequestLegs, "l1", &got))
		assert.Equal(t, model.LegRejected, got.Status)

		err = s.CompareAndSwap(ctx, model.CollectionRequestLegs, "missing", "status", model.LegPending,
			map[string]any{"status": model.LegApproved})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("increment floors at zero", func(t *testing.T) {
		s := newStore(t)
		org := &model.Organization{Entity: model.Entity{ID: "o1"}, Name: "Enactus", Email: "e@example.tn"}
		require.NoError(t, s.Create(ctx, model.CollectionOrganizations, org))

		require.NoError(t, s.Increment(ctx, model.CollectionOrganizations, "o1", map[string]float64{"followers_count": 2, "rating_sum": 4.5}))
		require.NoError(t, s.Increment(ctx, model.CollectionOrganizations, "o1", map[string]float64{"followers_count": -5}))

		var got model.Organization
		require.NoError(t, s.Get(ctx, model.CollectionOrganizations, "o1", &got))
		assert.Equal(t, 0, got.FollowersCount)
		assert.InDelta(t, 4.5, got.RatingSum, 1e-9)

		assert.ErrorIs(t, s.Increment(ctx, model.CollectionOrganizations, "missing", map[string]float64{"followers_count": 1}), domain.ErrNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		s := newStore(t)
		f := &model.Follow{Entity: model.Entity{ID: "v:o"}, VolunteerID: "v", OrganizationID: "o"}
		require.NoError(t, s.Create(ctx, model.CollectionFollows, f))
		require.NoError(t, s.Delete(ctx, model.CollectionFollows, "v:o"))
		assert.ErrorIs(t, s.Delete(ctx, model.CollectionFollows, "v:o"), domain.ErrNotFound)

		var follows []*model.Follow
		require.NoError(t, s.List(ctx, model.CollectionFollows, &follows))
		assert.Empty(t, follows)
	})

	t.Run("failed transaction rolls back", func(t *testing.T) {
		s := newStore(t)
		org := &model.Organization{Entity: model.Entity{ID: "o1"}, Name: "Enactus", Email: "e@example.tn"}
		require.NoError(t, s.Create(ctx, model.CollectionOrganizations, org))

		boom := errors.New("boom")
		err := s.WithinTx(ctx, func(ctx context.Context) error {
			f := &model.Follow{Entity: model.Entity{ID: "v:o1"}, VolunteerID: "v", OrganizationID: "o1"}
			if err := s.Create(ctx, model.CollectionFollows, f); err != nil {
				return err
			}
			if err := s.Increment(ctx, model.CollectionOrganizations, "o1", map[string]float64{"followers_count": 1}); err != nil {
				return err
			}
			return boom
		})
		assert.ErrorIs(t, err, boom)

		var got model.Organization
		require.NoError(t, s.Get(ctx, model.CollectionOrganizations, "o1", &got))
		assert.Equal(t, 0, got.FollowersCount)

		var follow model.Follow
		assert.ErrorIs(t, s.Get(ctx, model.CollectionFollows, "v:o1", &follow), domain.ErrNotFound)
	})
}

func TestMemoryStore(t *testing.T) {
	contract(t, func(t *testing.T) store.Store {
		return store.NewMemoryStore()
	})
}

func TestMemoryStoreConcurrentIncrement(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	org := &model.Organization{Entity: model.Entity{ID: "o1"}, Name: "Enactus", Email: "e@example.tn"}
	require.NoError(t, s.Create(ctx, model.CollectionOrganizations, org))

	const workers = 200
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			assert.NoError(t, s.Increment(ctx, model.CollectionOrganizations, "o1", map[string]float64{"followers_count": 1}))
		}()
	}
	wg.Wait()

	var got model.Organization
	require.NoError(t, s.Get(ctx, model.CollectionOrganizations, "o1", &got))
	assert.Equal(t, workers, got.FollowersCount)
}

func TestMemoryStoreConcurrentReadsOfEmptyCollections(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	collections := []string{model.CollectionFollows, model.CollectionRatings, model.CollectionRequestLegs, model.CollectionNotifications}

	const workers = 64
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		name := collections[i%len(collections)]
		go func() {
			defer wg.Done()
			var docs []map[string]any
			assert.NoError(t, s.Query(ctx, name, "organization_id", "o1", &docs))
			assert.Empty(t, docs)
			assert.NoError(t, s.List(ctx, name, &docs))
			var doc map[string]any
			assert.ErrorIs(t, s.Get(ctx, name, "missing", &doc), domain.ErrNotFound)
		}()
	}
	wg.Wait()

	// Reads leave no trace, and a later write still creates the collection.
	org := &model.Organization{Entity: model.Entity{ID: "o1"}, Name: "Enactus", Email: "e@example.tn"}
	require.NoError(t, s.Create(ctx, model.CollectionOrganizations, org))
	var orgs []model.Organization
	require.NoError(t, s.List(ctx, model.CollectionOrganizations, &orgs))
	assert.Len(t, orgs, 1)
}

func TestMemoryStoreCancelledContext(t *testing.T) {
	s := store.NewMemoryStore()
	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()

	var got model.Organization
	err := s.Get(ctx, model.CollectionOrganizations, "o1", &got)
	assert.ErrorIs(t, err, domain.ErrTimeout)
}
