// internal/service/rating.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dangerclosesec/tounesna/internal/domain"
	"github.com/dangerclosesec/tounesna/internal/metrics"
	"github.com/dangerclosesec/tounesna/internal/model"
	"github.com/dangerclosesec/tounesna/internal/repository"
)

// RatingService stores ratings and keeps the organization average current.
type RatingService struct {
	ratings       repository.RatingRepositoryIface
	volunteers    repository.VolunteerRepositoryIface
	orgs          repository.OrganizationRepositoryIface
	tx            repository.Transaction
	cacheService  *CacheService
	notifications *NotificationService
	logger        *slog.Logger
}

func NewRatingService(
	ratings repository.RatingRepositoryIface,
	volunteers repository.VolunteerRepositoryIface,
	orgs repository.OrganizationRepositoryIface,
	tx repository.Transaction,
	cacheService *CacheService,
	notifications *NotificationService,
	logger *slog.Logger,
) *RatingService {
	if logger == nil {
		logger = slog.Default()
	}
	return &RatingService{
		ratings:       ratings,
		volunteers:    volunteers,
		orgs:          orgs,
		tx:            tx,
		cacheService:  cacheService,
		notifications: notifications,
		logger:        logger.With("service", "rating"),
	}
}

type AddRatingInput struct {
	VolunteerID    string  `json:"volunteer_id"`
	OrganizationID string  `json:"organization_id"`
	Score          float64 `json:"score"`
	Comment        string  `json:"comment"`
	Anonymous      bool    `json:"anonymous"`
}

type AddRatingOutput struct {
	Rating       *model.Rating       `json:"rating"`
	Organization *model.Organization `json:"organization"`
}

// AddRating records one rating and folds it into the organization average.
// Out of range scores are rejected before anything is written.
func (s *RatingService) AddRating(ctx context.Context, input AddRatingInput) (*AddRatingOutput, error) {
	if !model.ScoreInRange(input.Score) {
		return nil, fmt.Errorf("%w: got %v, want %v-%v", domain.ErrScoreOutOfRange, input.Score, model.MinScore, model.MaxScore)
	}
	if input.VolunteerID == "" || input.OrganizationID == "" {
		return nil, fmt.Errorf("%w: volunteer and organization are required", domain.ErrInvalidInput)
	}
	if _, err := s.volunteers.FindByID(ctx, input.VolunteerID); err != nil {
		return nil, err
	}

	rating := &model.Rating{
		VolunteerID:    input.VolunteerID,
		OrganizationID: input.OrganizationID,
		Score:          input.Score,
		Comment:        input.Comment,
		Anonymous:      input.Anonymous,
	}

	var org *model.Organization
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.orgs.FindByID(ctx, input.OrganizationID); err != nil {
			return err
		}
		if err := s.ratings.Create(ctx, rating); err != nil {
			return err
		}
		var err error
		org, err = s.orgs.AddRatingScore(ctx, input.OrganizationID, input.Score)
		return err
	})
	metrics.AggregateUpdates.WithLabelValues("rating", metrics.Result(err)).Inc()
	if err != nil {
		return nil, fmt.Errorf("adding rating: %w", err)
	}

	if s.cacheService != nil {
		_ = s.cacheService.Delete(ctx, organizationKey(input.OrganizationID))
	}

	if s.notifications != nil {
		n := &model.Notification{
			UserID:   input.OrganizationID,
			UserType: model.UserTypeOrganization,
			Type:     model.NotificationNewRating,
			Title:    "New Rating",
			Message:  fmt.Sprintf("Your organization received a %.1f star rating", input.Score),
		}
		if input.Anonymous {
			n.RelatedOrganizationID = input.OrganizationID
		} else {
			n.RelatedVolunteerID = input.VolunteerID
		}
		s.notifications.notifyQuietly(ctx, n)
	}

	return &AddRatingOutput{Rating: rating, Organization: org.Sanitized()}, nil
}

// RatingsForOrganization lists ratings; anonymous ones have the volunteer id hidden.
func (s *RatingService) RatingsForOrganization(ctx context.Context, orgID string) ([]*model.Rating, error) {
	ratings, err := s.ratings.FindByOrganization(ctx, orgID)
	if err != nil {
		return nil, err
	}
	for _, r := range ratings {
		if r.Anonymous {
			r.VolunteerID = ""
			r.ID = ""
		}
	}
	return ratings, nil
}

func (s *RatingService) HasRated(ctx context.Context, volunteerID, orgID string) (bool, error) {
	_, err := s.ratings.Find(ctx, volunteerID, orgID)
	if errors.Is(err, domain.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
