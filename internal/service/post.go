// internal/service/post.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync/atomic"
	"time"

	"github.com/dangerclosesec/tounesna/internal/domain"
	"github.com/dangerclosesec/tounesna/internal/model"
	"github.com/dangerclosesec/tounesna/internal/repository"
	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"
)

// notifyConcurrency bounds parallel notification writes during fan-out.
const notifyConcurrency = 8

type PostService struct {
	posts         repository.PostRepositoryIface
	orgs          repository.OrganizationRepositoryIface
	follows       repository.FollowRepositoryIface
	notifications *NotificationService
	validate      *validator.Validate
	logger        *slog.Logger
}

func NewPostService(
	posts repository.PostRepositoryIface,
	orgs repository.OrganizationRepositoryIface,
	follows repository.FollowRepositoryIface,
	notifications *NotificationService,
	logger *slog.Logger,
) *PostService {
	if logger == nil {
		logger = slog.Default()
	}
	return &PostService{
		posts:         posts,
		orgs:          orgs,
		follows:       follows,
		notifications: notifications,
		validate:      newValidator(),
		logger:        logger.With("service", "post"),
	}
}

type CreatePostInput struct {
	OrganizationID   string         `json:"organization_id" validate:"required"`
	Title            string         `json:"title" validate:"required"`
	Description      string         `json:"description"`
	ImageURL         string         `json:"image_url"`
	Location         string         `json:"location"`
	StartDate        time.Time      `json:"start_date" validate:"required"`
	EndDate          time.Time      `json:"end_date" validate:"required"`
	VolunteersNeeded int            `json:"volunteers_needed" validate:"gte=0"`
	Category         model.Category `json:"category" validate:"required"`
	Priority         model.Priority `json:"priority" validate:"omitempty,oneof=LOW MEDIUM HIGH VERY_HIGH"`
	Needs            []string       `json:"needs"`
}

// CreatePost stores a post and notifies every follower of its organization.
// Notification failures are logged and do not fail the post.
func (s *PostService) CreatePost(ctx context.Context, input CreatePostInput) (*model.Post, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, invalid(err)
	}
	if !input.Category.Valid() {
		return nil, fmt.Errorf("%w: unknown category %q", domain.ErrInvalidInput, input.Category)
	}
	if input.EndDate.Before(input.StartDate) {
		return nil, fmt.Errorf("%w: end date before start date", domain.ErrInvalidInput)
	}

	org, err := s.orgs.FindByID(ctx, input.OrganizationID)
	if err != nil {
		return nil, err
	}

	post := &model.Post{
		Title:            input.Title,
		Description:      input.Description,
		ImageURL:         usableImage(input.ImageURL),
		Location:         input.Location,
		StartDate:        input.StartDate.UTC(),
		EndDate:          input.EndDate.UTC(),
		VolunteersNeeded: input.VolunteersNeeded,
		Category:         input.Category,
		Priority:         input.Priority.OrDefault(),
		Needs:            model.StringList(input.Needs),
		OrganizationID:   input.OrganizationID,
	}
	if post.Needs == nil {
		post.Needs = model.StringList{}
	}

	if err := s.posts.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("creating post: %w", err)
	}
	post.Organization = org.Sanitized()

	s.notifyFollowers(ctx, org, post)
	return post, nil
}

func (s *PostService) notifyFollowers(ctx context.Context, org *model.Organization, post *model.Post) {
	if s.notifications == nil || s.follows == nil {
		return
	}

	follows, err := s.follows.FindByOrganization(ctx, org.ID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to load followers", "organization_id", org.ID, "error", err)
		return
	}

	var reached atomic.Int64
	g := new(errgroup.Group)
	g.SetLimit(notifyConcurrency)
	for _, f := range follows {
		g.Go(func() error {
			err := s.notifications.Notify(ctx, &model.Notification{
				UserID:        f.VolunteerID,
				UserType:      model.UserTypeVolunteer,
				Type:          model.NotificationFollowedOrgPosted,
				Title:         org.Name + " posted",
				Message:       post.Title,
				RelatedPostID: post.ID,
			})
			if err != nil {
				s.logger.WarnContext(ctx, "failed to notify follower",
					"volunteer_id", f.VolunteerID,
					"post_id", post.ID,
					"error", err,
				)
				return nil
			}
			reached.Add(1)
			return nil
		})
	}
	_ = g.Wait()

	s.notifications.notifyQuietly(ctx, &model.Notification{
		UserID:        org.ID,
		UserType:      model.UserTypeOrganization,
		Type:          model.NotificationFollowedOrgPostedOrg,
		Title:         "Post published",
		Message:       fmt.Sprintf("Your post reached %d followers", reached.Load()),
		RelatedPostID: post.ID,
	})
}

// GetPost returns the post with its organization attached.
func (s *PostService) GetPost(ctx context.Context, id string) (*model.Post, error) {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.attachOrganizations(ctx, []*model.Post{post}); err != nil {
		return nil, err
	}
	return post, nil
}

// RecentPosts returns up to limit posts, newest first. limit <= 0 means all.
func (s *PostService) RecentPosts(ctx context.Context, limit int) ([]*model.Post, error) {
	posts, err := s.posts.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	posts = newestFirst(visible(posts))
	if limit > 0 && len(posts) > limit {
		posts = posts[:limit]
	}
	if err := s.attachOrganizations(ctx, posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *PostService) PostsByOrganization(ctx context.Context, orgID string) ([]*model.Post, error) {
	posts, err := s.posts.FindByOrganization(ctx, orgID)
	if err != nil {
		return nil, err
	}
	return newestFirst(visible(posts)), nil
}

// SearchPosts matches keyword against title, description and location, ignoring case.
func (s *PostService) SearchPosts(ctx context.Context, keyword string) ([]*model.Post, error) {
	posts, err := s.posts.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	var out []*model.Post
	for _, p := range visible(posts) {
		if containsFold(keyword, p.Title, p.Description, p.Location) {
			out = append(out, p)
		}
	}
	out = newestFirst(out)
	if err := s.attachOrganizations(ctx, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Dashboard filters posts by location and categories. Empty filters match everything.
func (s *PostService) Dashboard(ctx context.Context, location string, categories []model.Category) ([]*model.Post, error) {
	posts, err := s.posts.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	wanted := make(map[model.Category]bool, len(categories))
	for _, c := range categories {
		wanted[c] = true
	}

	var out []*model.Post
	for _, p := range visible(posts) {
		if location != "" && !strings.EqualFold(p.Location, location) {
			continue
		}
		if len(wanted) > 0 && !wanted[p.Category] {
			continue
		}
		out = append(out, p)
	}
	out = newestFirst(out)
	if err := s.attachOrganizations(ctx, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *PostService) attachOrganizations(ctx context.Context, posts []*model.Post) error {
	seen := make(map[string]*model.Organization)
	for _, p := range posts {
		org, ok := seen[p.OrganizationID]
		if !ok {
			found, err := s.orgs.FindByID(ctx, p.OrganizationID)
			if err != nil && !errors.Is(err, domain.ErrNotFound) {
				return err
			}
			if found != nil {
				org = found.Sanitized()
			}
			seen[p.OrganizationID] = org
		}
		p.Organization = org
	}
	return nil
}

func visible(posts []*model.Post) []*model.Post {
	out := posts[:0]
	for _, p := range posts {
		if !p.IsDeleted {
			out = append(out, p)
		}
	}
	return out
}

func newestFirst(posts []*model.Post) []*model.Post {
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	return posts
}
