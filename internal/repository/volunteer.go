package repository

import (
	"context"
	"fmt"

	"github.com/dangerclosesec/tounesna/internal/domain"
	"github.com/dangerclosesec/tounesna/internal/model"
	"github.com/dangerclosesec/tounesna/internal/store"
)

type VolunteerRepositoryIface interface {
	Create(ctx context.Context, volunteer *model.Volunteer) error
	FindByID(ctx context.Context, id string) (*model.Volunteer, error)
	FindByEmail(ctx context.Context, email string) (*model.Volunteer, error)
	FindAll(ctx context.Context) ([]*model.Volunteer, error)
	Update(ctx context.Context, id string, fields map[string]any) error
}

type VolunteerRepository struct {
	store store.Store
}

func NewVolunteerRepository(s store.Store) *VolunteerRepository {
	return &VolunteerRepository{store: s}
}

func (r *VolunteerRepository) Create(ctx context.Context, volunteer *model.Volunteer) error {
	if volunteer.ID == "" {
		volunteer.ID = r.store.GenerateID(model.CollectionVolunteers)
	}
	if err := r.store.Create(ctx, model.CollectionVolunteers, volunteer); err != nil {
		return fmt.Errorf("failed to create volunteer: %w", err)
	}
	return nil
}

func (r *VolunteerRepository) FindByID(ctx context.Context, id string) (*model.Volunteer, error) {
	var volunteer model.Volunteer
	if err := r.store.Get(ctx, model.CollectionVolunteers, id, &volunteer); err != nil {
		return nil, notFound(err, domain.ErrVolunteerNotFound)
	}
	return &volunteer, nil
}

func (r *VolunteerRepository) FindByEmail(ctx context.Context, email string) (*model.Volunteer, error) {
	var volunteers []*model.Volunteer
	if err := r.store.Query(ctx, model.CollectionVolunteers, "email", email, &volunteers); err != nil {
		return nil, fmt.Errorf("failed to find volunteer: %w", err)
	}
	if len(volunteers) == 0 {
		return nil, domain.ErrVolunteerNotFound
	}
	return volunteers[0], nil
}

// FindAll returns all volunteers
func (r *VolunteerRepository) FindAll(ctx context.Context) ([]*model.Volunteer, error) {
	var volunteers []*model.Volunteer
	if err := r.store.List(ctx, model.CollectionVolunteers, &volunteers); err != nil {
		return nil, fmt.Errorf("failed to find all volunteers: %w", err)
	}
	return volunteers, nil
}

func (r *VolunteerRepository) Update(ctx context.Context, id string, fields map[string]any) error {
	if err := r.store.Update(ctx, model.CollectionVolunteers, id, fields); err != nil {
		return notFound(fmt.Errorf("failed to update volunteer: %w", err), domain.ErrVolunteerNotFound)
	}
	return nil
}
