package service_test

import (
	"context"
	"math"
	"testing"

	"github.com/dangerclosesec/tounesna/internal/domain"
	"github.com/dangerclosesec/tounesna/internal/model"
	"github.com/dangerclosesec/tounesna/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddRatingRejectsOutOfRange(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	vol := h.volunteer(t, "amira")
	org := h.organization(t, "enactus")

	for _, score := range []float64{-0.1, 5.01, 10, math.NaN()} {
		_, err := h.ratings.AddRating(ctx, service.AddRatingInput{
			VolunteerID:    vol.ID,
			OrganizationID: org.ID,
			Score:          score,
		})
		assert.ErrorIs(t, err, domain.ErrOutOfRange, "score %v", score)
	}

	stored := h.reload(t, org.ID)
	assert.Zero(t, stored.RatingCount)
	assert.Zero(t, stored.Rating)

	rated, err := h.ratings.HasRated(ctx, vol.ID, org.ID)
	require.NoError(t, err)
	assert.False(t, rated)
}

func TestAddRatingBoundaries(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	org := h.organization(t, "enactus")

	for _, score := range []float64{model.MinScore, model.MaxScore} {
		vol := h.volunteer(t, "v"+string(rune('a'+int(score))))
		_, err := h.ratings.AddRating(ctx, service.AddRatingInput{VolunteerID: vol.ID, OrganizationID: org.ID, Score: score})
		require.NoError(t, err)
	}

	stored := h.reload(t, org.ID)
	assert.Equal(t, 2, stored.RatingCount)
	assert.InDelta(t, 2.5, stored.Rating, 1e-9)
}

func TestAddRatingAverage(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	org := h.organization(t, "croissant")

	var last *service.AddRatingOutput
	for i, score := range []float64{3, 4, 5} {
		vol := h.volunteer(t, string(rune('a'+i)))
		out, err := h.ratings.AddRating(ctx, service.AddRatingInput{
			VolunteerID:    vol.ID,
			OrganizationID: org.ID,
			Score:          score,
			Comment:        "great",
		})
		require.NoError(t, err)
		last = out
	}

	assert.InDelta(t, 4.0, last.Organization.Rating, 1e-9)
	assert.Equal(t, 3, last.Organization.RatingCount)
	assert.Empty(t, last.Organization.PasswordHash)

	stored := h.reload(t, org.ID)
	assert.InDelta(t, 4.0, stored.Rating, 1e-9)
	assert.InDelta(t, 12.0, stored.RatingSum, 1e-9)
	assert.Equal(t, 3, stored.RatingCount)

	assert.Len(t, h.notificationsOf(t, org.ID, model.NotificationNewRating), 3)
}

func TestAddRatingOncePerVolunteer(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	vol := h.volunteer(t, "amira")
	org := h.organization(t, "enactus")

	_, err := h.ratings.AddRating(ctx, service.AddRatingInput{VolunteerID: vol.ID, OrganizationID: org.ID, Score: 4})
	require.NoError(t, err)

	_, err = h.ratings.AddRating(ctx, service.AddRatingInput{VolunteerID: vol.ID, OrganizationID: org.ID, Score: 1})
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)

	stored := h.reload(t, org.ID)
	assert.Equal(t, 1, stored.RatingCount)
	assert.InDelta(t, 4.0, stored.Rating, 1e-9)
}

func TestAddRatingUnknownOrganization(t *testing.T) {
	h := newHarness(t)
	vol := h.volunteer(t, "amira")

	_, err := h.ratings.AddRating(context.Background(), service.AddRatingInput{VolunteerID: vol.ID, OrganizationID: "missing", Score: 3})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	rated, err := h.ratings.HasRated(context.Background(), vol.ID, "missing")
	require.NoError(t, err)
	assert.False(t, rated, "no rating is stored for an unknown organization")
}

func TestRatingsForOrganizationHidesAnonymous(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	org := h.organization(t, "enactus")
	named := h.volunteer(t, "amira")
	anon := h.volunteer(t, "sami")

	_, err := h.ratings.AddRating(ctx, service.AddRatingInput{VolunteerID: named.ID, OrganizationID: org.ID, Score: 5})
	require.NoError(t, err)
	_, err = h.ratings.AddRating(ctx, service.AddRatingInput{VolunteerID: anon.ID, OrganizationID: org.ID, Score: 2, Anonymous: true})
	require.NoError(t, err)

	ratings, err := h.ratings.RatingsForOrganization(ctx, org.ID)
	require.NoError(t, err)
	require.Len(t, ratings, 2)
	for _, r := range ratings {
		if r.Anonymous {
			assert.Empty(t, r.VolunteerID)
		} else {
			assert.Equal(t, named.ID, r.VolunteerID)
		}
	}
}
