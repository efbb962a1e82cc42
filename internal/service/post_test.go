package service_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/dangerclosesec/tounesna/internal/domain"
	"github.com/dangerclosesec/tounesna/internal/model"
	"github.com/dangerclosesec/tounesna/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postInput(orgID, title, location string, category model.Category) service.CreatePostInput {
	start := time.Now().UTC()
	return service.CreatePostInput{
		OrganizationID:   orgID,
		Title:            title,
		Description:      "Join us",
		Location:         location,
		StartDate:        start,
		EndDate:          start.Add(48 * time.Hour),
		VolunteersNeeded: 5,
		Category:         category,
	}
}

func TestCreatePostNotifiesFollowers(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	org := h.organization(t, "enactus")

	const followers = 12
	for i := 0; i < followers; i++ {
		v := h.volunteer(t, fmt.Sprintf("vol%d", i))
		_, err := h.follows.Follow(ctx, v.ID, org.ID)
		require.NoError(t, err)
	}

	input := postInput(org.ID, "Tree planting", "Bizerte", model.CategoryEnvironment)
	input.ImageURL = "data:image/png;base64,AAAA"
	post, err := h.posts.CreatePost(ctx, input)
	require.NoError(t, err)

	assert.Equal(t, model.PriorityMedium, post.Priority)
	assert.Empty(t, post.ImageURL, "inline images are dropped")
	require.NotNil(t, post.Organization)
	assert.Empty(t, post.Organization.PasswordHash)

	follows, err := h.followRepo.FindByOrganization(ctx, org.ID)
	require.NoError(t, err)
	for _, f := range follows {
		notes := h.notificationsOf(t, f.VolunteerID, model.NotificationFollowedOrgPosted)
		require.Len(t, notes, 1)
		assert.Equal(t, post.ID, notes[0].RelatedPostID)
	}

	orgNotes := h.notificationsOf(t, org.ID, model.NotificationFollowedOrgPostedOrg)
	require.Len(t, orgNotes, 1)
	assert.Equal(t, "Your post reached 12 followers", orgNotes[0].Message)
}

func TestCreatePostValidation(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	org := h.organization(t, "enactus")

	_, err := h.posts.CreatePost(ctx, postInput(org.ID, "Bad", "Tunis", "PARTY"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	backwards := postInput(org.ID, "Backwards", "Tunis", model.CategoryEvent)
	backwards.EndDate = backwards.StartDate.Add(-time.Hour)
	_, err = h.posts.CreatePost(ctx, backwards)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = h.posts.CreatePost(ctx, postInput("missing", "Orphan", "Tunis", model.CategoryEvent))
	assert.ErrorIs(t, err, domain.ErrOrganizationNotFound)
}

func TestPostQueries(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	a := h.organization(t, "enactus")
	b := h.organization(t, "croissant")

	for _, in := range []service.CreatePostInput{
		postInput(a.ID, "Beach cleanup", "Sousse", model.CategoryEnvironment),
		postInput(a.ID, "Math tutoring", "Tunis", model.CategoryEducation),
		postInput(b.ID, "Blood drive", "Sousse", model.CategoryHealth),
	} {
		_, err := h.posts.CreatePost(ctx, in)
		require.NoError(t, err)
	}

	recent, err := h.posts.RecentPosts(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, recent, 2)

	byOrg, err := h.posts.PostsByOrganization(ctx, a.ID)
	require.NoError(t, err)
	assert.Len(t, byOrg, 2)

	found, err := h.posts.SearchPosts(ctx, "BEACH")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Beach cleanup", found[0].Title)
	assert.Equal(t, a.ID, found[0].Organization.ID)

	sousse, err := h.posts.Dashboard(ctx, "sousse", nil)
	require.NoError(t, err)
	assert.Len(t, sousse, 2)

	health, err := h.posts.Dashboard(ctx, "Sousse", []model.Category{model.CategoryHealth})
	require.NoError(t, err)
	require.Len(t, health, 1)
	assert.Equal(t, "Blood drive", health[0].Title)

	post, err := h.posts.GetPost(ctx, health[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "croissant", post.Organization.Name)

	_, err = h.posts.GetPost(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrPostNotFound)
}
