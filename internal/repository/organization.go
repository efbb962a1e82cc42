// internal/repository/organization.go
package repository

import (
	"context"
	"fmt"

	"github.com/dangerclosesec/tounesna/internal/domain"
	"github.com/dangerclosesec/tounesna/internal/model"
	"github.com/dangerclosesec/tounesna/internal/store"
)

type OrganizationRepositoryIface interface {
	Create(ctx context.Context, org *model.Organization) error
	FindByID(ctx context.Context, id string) (*model.Organization, error)
	FindByEmail(ctx context.Context, email string) (*model.Organization, error)
	FindAll(ctx context.Context) ([]*model.Organization, error)
	FindByApproval(ctx context.Context, approved bool) ([]*model.Organization, error)
	Update(ctx context.Context, id string, fields map[string]any) error
	AdjustFollowers(ctx context.Context, id string, delta int) error
	AddRatingScore(ctx context.Context, id string, score float64) (*model.Organization, error)
}

type OrganizationRepository struct {
	store store.Store
}

func NewOrganizationRepository(s store.Store) *OrganizationRepository {
	return &OrganizationRepository{store: s}
}

func (r *OrganizationRepository) Create(ctx context.Context, org *model.Organization) error {
	if org.ID == "" {
		org.ID = r.store.GenerateID(model.CollectionOrganizations)
	}
	if err := r.store.Create(ctx, model.CollectionOrganizations, org); err != nil {
		return fmt.Errorf("creating organization: %w", err)
	}
	return nil
}

func (r *OrganizationRepository) FindByID(ctx context.Context, id string) (*model.Organization, error) {
	var org model.Organization
	if err := r.store.Get(ctx, model.CollectionOrganizations, id, &org); err != nil {
		return nil, notFound(err, domain.ErrOrganizationNotFound)
	}
	return &org, nil
}

func (r *OrganizationRepository) FindByEmail(ctx context.Context, email string) (*model.Organization, error) {
	var orgs []*model.Organization
	if err := r.store.Query(ctx, model.CollectionOrganizations, "email", email, &orgs); err != nil {
		return nil, fmt.Errorf("failed to find organization: %w", err)
	}
	if len(orgs) == 0 {
		return nil, domain.ErrOrganizationNotFound
	}
	return orgs[0], nil
}

// FindAll returns all organizations
func (r *OrganizationRepository) FindAll(ctx context.Context) ([]*model.Organization, error) {
	var orgs []*model.Organization
	if err := r.store.List(ctx, model.CollectionOrganizations, &orgs); err != nil {
		return nil, fmt.Errorf("failed to find all organizations: %w", err)
	}
	return orgs, nil
}

// FindByApproval returns the organizations whose approval flag matches approved
func (r *OrganizationRepository) FindByApproval(ctx context.Context, approved bool) ([]*model.Organization, error) {
	var orgs []*model.Organization
	if err := r.store.Query(ctx, model.CollectionOrganizations, "is_approved", approved, &orgs); err != nil {
		return nil, fmt.Errorf("failed to find organizations: %w", err)
	}
	return orgs, nil
}

func (r *OrganizationRepository) Update(ctx context.Context, id string, fields map[string]any) error {
	if err := r.store.Update(ctx, model.CollectionOrganizations, id, fields); err != nil {
		return notFound(fmt.Errorf("updating organization: %w", err), domain.ErrOrganizationNotFound)
	}
	return nil
}

// AdjustFollowers moves followers_count by delta in a single atomic step, never below zero.
func (r *OrganizationRepository) AdjustFollowers(ctx context.Context, id string, delta int) error {
	err := r.store.Increment(ctx, model.CollectionOrganizations, id, map[string]float64{
		"followers_count": float64(delta),
	})
	if err != nil {
		return notFound(fmt.Errorf("adjusting followers: %w", err), domain.ErrOrganizationNotFound)
	}
	return nil
}

// AddRatingScore folds one score into the running sum and count and
// rewrites the average from them. Call it inside a transaction so the
// average is derived from the same sum and count it incremented.
func (r *OrganizationRepository) AddRatingScore(ctx context.Context, id string, score float64) (*model.Organization, error) {
	err := r.store.Increment(ctx, model.CollectionOrganizations, id, map[string]float64{
		"rating_sum":   score,
		"rating_count": 1,
	})
	if err != nil {
		return nil, notFound(fmt.Errorf("adding rating: %w", err), domain.ErrOrganizationNotFound)
	}

	org, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	org.Rating = org.AverageRating()
	if err := r.Update(ctx, id, map[string]any{"rating": org.Rating}); err != nil {
		return nil, err
	}
	return org, nil
}
