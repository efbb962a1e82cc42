// internal/service/follow.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dangerclosesec/tounesna/internal/counter"
	"github.com/dangerclosesec/tounesna/internal/domain"
	"github.com/dangerclosesec/tounesna/internal/metrics"
	"github.com/dangerclosesec/tounesna/internal/model"
	"github.com/dangerclosesec/tounesna/internal/repository"
)

// FollowService maintains follow edges together with the organization's
// followers_count aggregate.
type FollowService struct {
	follows       repository.FollowRepositoryIface
	volunteers    repository.VolunteerRepositoryIface
	orgs          repository.OrganizationRepositoryIface
	tx            repository.Transaction
	counter       counter.FollowerCounter
	cacheService  *CacheService
	notifications *NotificationService
	logger        *slog.Logger
}

func NewFollowService(
	follows repository.FollowRepositoryIface,
	volunteers repository.VolunteerRepositoryIface,
	orgs repository.OrganizationRepositoryIface,
	tx repository.Transaction,
	followerCounter counter.FollowerCounter,
	cacheService *CacheService,
	notifications *NotificationService,
	logger *slog.Logger,
) *FollowService {
	if followerCounter == nil {
		followerCounter = counter.Nop{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &FollowService{
		follows:       follows,
		volunteers:    volunteers,
		orgs:          orgs,
		tx:            tx,
		counter:       followerCounter,
		cacheService:  cacheService,
		notifications: notifications,
		logger:        logger.With("service", "follow"),
	}
}

// Follow records that volunteerID follows orgID and bumps the count in the
// same transaction. A second follow of the same pair fails with
// domain.ErrAlreadyFollowing and leaves the count untouched.
func (s *FollowService) Follow(ctx context.Context, volunteerID, orgID string) (*model.Follow, error) {
	if _, err := s.volunteers.FindByID(ctx, volunteerID); err != nil {
		return nil, err
	}

	follow := &model.Follow{
		VolunteerID:    volunteerID,
		OrganizationID: orgID,
	}

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.orgs.FindByID(ctx, orgID); err != nil {
			return err
		}
		if err := s.follows.Create(ctx, follow); err != nil {
			return err
		}
		return s.orgs.AdjustFollowers(ctx, orgID, 1)
	})
	metrics.AggregateUpdates.WithLabelValues("followers_count", metrics.Result(err)).Inc()
	if err != nil {
		return nil, fmt.Errorf("following organization: %w", err)
	}

	if err := s.counter.Incr(ctx, orgID); err != nil {
		s.logger.WarnContext(ctx, "follower counter incr failed", "organization_id", orgID, "error", err)
	}
	s.invalidate(ctx, orgID)

	if s.notifications != nil {
		s.notifications.notifyQuietly(ctx, &model.Notification{
			UserID:             orgID,
			UserType:           model.UserTypeOrganization,
			Type:               model.NotificationNewFollower,
			Title:              "New Follower!",
			Message:            "A volunteer started following your organization",
			RelatedVolunteerID: volunteerID,
		})
	}

	return follow, nil
}

// Unfollow removes the edge and decrements the count, never below zero.
func (s *FollowService) Unfollow(ctx context.Context, volunteerID, orgID string) error {
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.follows.Delete(ctx, volunteerID, orgID); err != nil {
			return err
		}
		return s.orgs.AdjustFollowers(ctx, orgID, -1)
	})
	metrics.AggregateUpdates.WithLabelValues("followers_count", metrics.Result(err)).Inc()
	if err != nil {
		return fmt.Errorf("unfollowing organization: %w", err)
	}

	if err := s.counter.Decr(ctx, orgID); err != nil {
		s.logger.WarnContext(ctx, "follower counter decr failed", "organization_id", orgID, "error", err)
	}
	s.invalidate(ctx, orgID)
	return nil
}

func (s *FollowService) IsFollowing(ctx context.Context, volunteerID, orgID string) (bool, error) {
	_, err := s.follows.Find(ctx, volunteerID, orgID)
	if errors.Is(err, domain.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// FollowedOrganizations lists the organizations a volunteer follows.
// Edges pointing at deleted organizations are skipped.
func (s *FollowService) FollowedOrganizations(ctx context.Context, volunteerID string) ([]*model.Organization, error) {
	follows, err := s.follows.FindByVolunteer(ctx, volunteerID)
	if err != nil {
		return nil, err
	}

	orgs := make([]*model.Organization, 0, len(follows))
	for _, f := range follows {
		org, err := s.orgs.FindByID(ctx, f.OrganizationID)
		if errors.Is(err, domain.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		orgs = append(orgs, org.Sanitized())
	}
	return orgs, nil
}

// Followers lists the volunteers following an organization.
func (s *FollowService) Followers(ctx context.Context, orgID string) ([]*model.Volunteer, error) {
	follows, err := s.follows.FindByOrganization(ctx, orgID)
	if err != nil {
		return nil, err
	}

	volunteers := make([]*model.Volunteer, 0, len(follows))
	for _, f := range follows {
		v, err := s.volunteers.FindByID(ctx, f.VolunteerID)
		if errors.Is(err, domain.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		volunteers = append(volunteers, v.Sanitized())
	}
	return volunteers, nil
}

// FollowersCount reads the cached counter and falls back to the stored aggregate.
func (s *FollowService) FollowersCount(ctx context.Context, orgID string) (int64, error) {
	count, ok, err := s.counter.Get(ctx, orgID)
	if err != nil {
		s.logger.WarnContext(ctx, "follower counter read failed", "organization_id", orgID, "error", err)
	}
	if ok && err == nil {
		return count, nil
	}

	org, err := s.orgs.FindByID(ctx, orgID)
	if err != nil {
		return 0, err
	}
	count = int64(org.FollowersCount)
	if err := s.counter.Set(ctx, orgID, count); err != nil {
		s.logger.WarnContext(ctx, "follower counter seed failed", "organization_id", orgID, "error", err)
	}
	return count, nil
}

func (s *FollowService) invalidate(ctx context.Context, orgID string) {
	if s.cacheService != nil {
		_ = s.cacheService.Delete(ctx, organizationKey(orgID))
	}
}
