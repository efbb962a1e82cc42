package service_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/dangerclosesec/tounesna/internal/domain"
	"github.com/dangerclosesec/tounesna/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowUnfollowRoundTrip(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	vol := h.volunteer(t, "amira")
	org := h.organization(t, "enactus")

	follow, err := h.follows.Follow(ctx, vol.ID, org.ID)
	require.NoError(t, err)
	assert.Equal(t, model.FollowID(vol.ID, org.ID), follow.ID)
	assert.Equal(t, 1, h.reload(t, org.ID).FollowersCount)

	following, err := h.follows.IsFollowing(ctx, vol.ID, org.ID)
	require.NoError(t, err)
	assert.True(t, following)

	notes := h.notificationsOf(t, org.ID, model.NotificationNewFollower)
	require.Len(t, notes, 1)
	assert.Equal(t, "New Follower!", notes[0].Title)
	assert.Equal(t, vol.ID, notes[0].RelatedVolunteerID)

	require.NoError(t, h.follows.Unfollow(ctx, vol.ID, org.ID))
	assert.Equal(t, 0, h.reload(t, org.ID).FollowersCount)

	following, err = h.follows.IsFollowing(ctx, vol.ID, org.ID)
	require.NoError(t, err)
	assert.False(t, following)
}

func TestFollowTwice(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	vol := h.volunteer(t, "amira")
	org := h.organization(t, "enactus")

	_, err := h.follows.Follow(ctx, vol.ID, org.ID)
	require.NoError(t, err)

	_, err = h.follows.Follow(ctx, vol.ID, org.ID)
	assert.ErrorIs(t, err, domain.ErrAlreadyFollowing)
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
	assert.Equal(t, 1, h.reload(t, org.ID).FollowersCount)
}

func TestUnfollowWithoutFollow(t *testing.T) {
	h := newHarness(t)
	vol := h.volunteer(t, "amira")
	org := h.organization(t, "enactus")

	err := h.follows.Unfollow(context.Background(), vol.ID, org.ID)
	assert.ErrorIs(t, err, domain.ErrFollowNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 0, h.reload(t, org.ID).FollowersCount)
}

func TestUnfollowFloorsAtZero(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	vol := h.volunteer(t, "amira")
	org := h.organization(t, "enactus")

	// An edge written without its counter, as left behind by older clients.
	require.NoError(t, h.followRepo.Create(ctx, &model.Follow{VolunteerID: vol.ID, OrganizationID: org.ID}))
	require.Equal(t, 0, h.reload(t, org.ID).FollowersCount)

	require.NoError(t, h.follows.Unfollow(ctx, vol.ID, org.ID))
	assert.Equal(t, 0, h.reload(t, org.ID).FollowersCount)
}

func TestFollowUnknownOrganization(t *testing.T) {
	h := newHarness(t)
	vol := h.volunteer(t, "amira")

	_, err := h.follows.Follow(context.Background(), vol.ID, "missing")
	assert.ErrorIs(t, err, domain.ErrOrganizationNotFound)

	following, err := h.follows.IsFollowing(context.Background(), vol.ID, "missing")
	require.NoError(t, err)
	assert.False(t, following)
}

func TestConcurrentFollowsLoseNoUpdates(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	org := h.organization(t, "enactus")

	const n = 50
	volunteers := make([]*model.Volunteer, n)
	for i := range volunteers {
		volunteers[i] = h.volunteer(t, fmt.Sprintf("vol%d", i))
	}

	var wg sync.WaitGroup
	errs := make(chan error, n)
	for _, v := range volunteers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := h.follows.Follow(ctx, v.ID, org.ID); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Errorf("follow failed: %v", err)
	}

	assert.Equal(t, n, h.reload(t, org.ID).FollowersCount)

	for _, v := range volunteers[:20] {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, h.follows.Unfollow(ctx, v.ID, org.ID))
		}()
	}
	wg.Wait()

	assert.Equal(t, n-20, h.reload(t, org.ID).FollowersCount)
}

func TestFollowersCountUsesCounterCache(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	org := h.organization(t, "enactus")
	a := h.volunteer(t, "amira")
	b := h.volunteer(t, "sami")

	_, err := h.follows.Follow(ctx, a.ID, org.ID)
	require.NoError(t, err)

	// First read misses and seeds the counter from the record.
	count, err := h.follows.FollowersCount(ctx, org.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
	cached, ok, _ := h.counter.Get(ctx, org.ID)
	require.True(t, ok)
	assert.EqualValues(t, 1, cached)

	_, err = h.follows.Follow(ctx, b.ID, org.ID)
	require.NoError(t, err)

	count, err = h.follows.FollowersCount(ctx, org.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}

func TestFollowListings(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	vol := h.volunteer(t, "amira")
	a := h.organization(t, "enactus")
	b := h.organization(t, "croissant")

	_, err := h.follows.Follow(ctx, vol.ID, a.ID)
	require.NoError(t, err)
	_, err = h.follows.Follow(ctx, vol.ID, b.ID)
	require.NoError(t, err)

	orgs, err := h.follows.FollowedOrganizations(ctx, vol.ID)
	require.NoError(t, err)
	assert.Len(t, orgs, 2)
	for _, o := range orgs {
		assert.Empty(t, o.PasswordHash)
	}

	followers, err := h.follows.Followers(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, followers, 1)
	assert.Equal(t, vol.ID, followers[0].ID)
}
