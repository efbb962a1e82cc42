package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/dangerclosesec/tounesna/internal/domain"
	"github.com/dangerclosesec/tounesna/internal/model"
	"github.com/dangerclosesec/tounesna/internal/store"
)

type EmailClaimRepositoryIface interface {
	Claim(ctx context.Context, userType model.UserType, email, userID string) error
	Find(ctx context.Context, userType model.UserType, email string) (*model.EmailClaim, error)
}

// EmailClaimRepository reserves one email address per account type.
type EmailClaimRepository struct {
	store store.Store
}

func NewEmailClaimRepository(s store.Store) *EmailClaimRepository {
	return &EmailClaimRepository{store: s}
}

func (r *EmailClaimRepository) Claim(ctx context.Context, userType model.UserType, email, userID string) error {
	claim := &model.EmailClaim{
		Entity:   model.Entity{ID: model.EmailClaimID(userType, email)},
		UserID:   userID,
		UserType: userType,
	}
	if err := r.store.Create(ctx, model.CollectionEmailClaims, claim); err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("claiming email: %w", err)
	}
	return nil
}

func (r *EmailClaimRepository) Find(ctx context.Context, userType model.UserType, email string) (*model.EmailClaim, error) {
	var claim model.EmailClaim
	if err := r.store.Get(ctx, model.CollectionEmailClaims, model.EmailClaimID(userType, email), &claim); err != nil {
		return nil, err
	}
	return &claim, nil
}
