package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/dangerclosesec/tounesna/internal/domain"
	"github.com/dangerclosesec/tounesna/internal/model"
	"github.com/dangerclosesec/tounesna/internal/store"
)

type RatingRepositoryIface interface {
	Create(ctx context.Context, rating *model.Rating) error
	Find(ctx context.Context, volunteerID, orgID string) (*model.Rating, error)
	FindByOrganization(ctx context.Context, orgID string) ([]*model.Rating, error)
}

type RatingRepository struct {
	store store.Store
}

func NewRatingRepository(s store.Store) *RatingRepository {
	return &RatingRepository{store: s}
}

func (r *RatingRepository) Create(ctx context.Context, rating *model.Rating) error {
	rating.ID = model.RatingID(rating.VolunteerID, rating.OrganizationID)
	if err := r.store.Create(ctx, model.CollectionRatings, rating); err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return domain.ErrAlreadyRated
		}
		return fmt.Errorf("creating rating: %w", err)
	}
	return nil
}

func (r *RatingRepository) Find(ctx context.Context, volunteerID, orgID string) (*model.Rating, error) {
	var rating model.Rating
	if err := r.store.Get(ctx, model.CollectionRatings, model.RatingID(volunteerID, orgID), &rating); err != nil {
		return nil, err
	}
	return &rating, nil
}

func (r *RatingRepository) FindByOrganization(ctx context.Context, orgID string) ([]*model.Rating, error) {
	var ratings []*model.Rating
	if err := r.store.Query(ctx, model.CollectionRatings, "organization_id", orgID, &ratings); err != nil {
		return nil, fmt.Errorf("finding ratings: %w", err)
	}
	return ratings, nil
}
