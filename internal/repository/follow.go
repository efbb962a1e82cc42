package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/dangerclosesec/tounesna/internal/domain"
	"github.com/dangerclosesec/tounesna/internal/model"
	"github.com/dangerclosesec/tounesna/internal/store"
)

type FollowRepositoryIface interface {
	Create(ctx context.Context, follow *model.Follow) error
	Find(ctx context.Context, volunteerID, orgID string) (*model.Follow, error)
	Delete(ctx context.Context, volunteerID, orgID string) error
	FindByVolunteer(ctx context.Context, volunteerID string) ([]*model.Follow, error)
	FindByOrganization(ctx context.Context, orgID string) ([]*model.Follow, error)
}

// FollowRepository keys each edge by its (volunteer, organization) pair so
// the store itself refuses a second edge for the same pair.
type FollowRepository struct {
	store store.Store
}

func NewFollowRepository(s store.Store) *FollowRepository {
	return &FollowRepository{store: s}
}

func (r *FollowRepository) Create(ctx context.Context, follow *model.Follow) error {
	follow.ID = model.FollowID(follow.VolunteerID, follow.OrganizationID)
	if err := r.store.Create(ctx, model.CollectionFollows, follow); err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return domain.ErrAlreadyFollowing
		}
		return fmt.Errorf("creating follow: %w", err)
	}
	return nil
}

func (r *FollowRepository) Find(ctx context.Context, volunteerID, orgID string) (*model.Follow, error) {
	var follow model.Follow
	if err := r.store.Get(ctx, model.CollectionFollows, model.FollowID(volunteerID, orgID), &follow); err != nil {
		return nil, notFound(err, domain.ErrFollowNotFound)
	}
	return &follow, nil
}

func (r *FollowRepository) Delete(ctx context.Context, volunteerID, orgID string) error {
	if err := r.store.Delete(ctx, model.CollectionFollows, model.FollowID(volunteerID, orgID)); err != nil {
		return notFound(err, domain.ErrFollowNotFound)
	}
	return nil
}

func (r *FollowRepository) FindByVolunteer(ctx context.Context, volunteerID string) ([]*model.Follow, error) {
	var follows []*model.Follow
	if err := r.store.Query(ctx, model.CollectionFollows, "volunteer_id", volunteerID, &follows); err != nil {
		return nil, fmt.Errorf("finding follows: %w", err)
	}
	return follows, nil
}

func (r *FollowRepository) FindByOrganization(ctx context.Context, orgID string) ([]*model.Follow, error) {
	var follows []*model.Follow
	if err := r.store.Query(ctx, model.CollectionFollows, "organization_id", orgID, &follows); err != nil {
		return nil, fmt.Errorf("finding followers: %w", err)
	}
	return follows, nil
}
