// internal/service/auth.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dangerclosesec/tounesna/internal/audit"
	"github.com/dangerclosesec/tounesna/internal/auth"
	"github.com/dangerclosesec/tounesna/internal/config"
	"github.com/dangerclosesec/tounesna/internal/domain"
	"github.com/dangerclosesec/tounesna/internal/model"
	"github.com/dangerclosesec/tounesna/internal/repository"
	"github.com/go-playground/validator/v10"
)

// AuthService owns volunteer and organization accounts.
type AuthService struct {
	volunteers     repository.VolunteerRepositoryIface
	orgs           repository.OrganizationRepositoryIface
	claims         repository.EmailClaimRepositoryIface
	tx             repository.Transaction
	passwordHasher *auth.PasswordHasher
	tokenManager   *auth.TokenManager
	cacheService   *CacheService
	config         *config.Config
	auditor        audit.Logger
	validate       *validator.Validate
	logger         *slog.Logger
}

func NewAuthService(
	volunteers repository.VolunteerRepositoryIface,
	orgs repository.OrganizationRepositoryIface,
	claims repository.EmailClaimRepositoryIface,
	tx repository.Transaction,
	passwordHasher *auth.PasswordHasher,
	tokenManager *auth.TokenManager,
	cacheService *CacheService,
	config *config.Config,
	logger *slog.Logger,
) *AuthService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthService{
		volunteers:     volunteers,
		orgs:           orgs,
		claims:         claims,
		tx:             tx,
		passwordHasher: passwordHasher,
		tokenManager:   tokenManager,
		cacheService:   cacheService,
		config:         config,
		auditor:        &audit.NoOpLogger{},
		validate:       newValidator(),
		logger:         logger.With("service", "auth"),
	}
}

type RegisterVolunteerInput struct {
	Name         string     `json:"name" validate:"required"`
	Surname      string     `json:"surname"`
	Email        string     `json:"email" validate:"required,email"`
	Password     string     `json:"password" validate:"required,password"`
	Phone        string     `json:"phone"`
	Location     string     `json:"location" validate:"governorate"`
	Interests    []string   `json:"interests"`
	Skills       []string   `json:"skills"`
	Availability string     `json:"availability"`
	DateOfBirth  *time.Time `json:"date_of_birth,omitempty"`
}

type RegisterOrganizationInput struct {
	Name               string   `json:"name" validate:"required"`
	Domain             string   `json:"domain"`
	Email              string   `json:"email" validate:"required,email"`
	Password           string   `json:"password" validate:"required,password"`
	Location           string   `json:"location" validate:"governorate"`
	Website            string   `json:"website" validate:"omitempty,url"`
	Phone              string   `json:"phone"`
	RegistrationNumber string   `json:"registration_number"`
	Description        string   `json:"description"`
	MemberCount        int      `json:"member_count" validate:"gte=0"`
	FoundedYear        int      `json:"founded_year" validate:"omitempty,gte=1800"`
	Tags               []string `json:"tags"`
}

type LoginInput struct {
	UserType model.UserType `json:"user_type" validate:"required,oneof=volunteer organization"`
	Email    string         `json:"email" validate:"required,email"`
	Password string         `json:"password" validate:"required"`
}

// AuthOutput is returned by login. Volunteer or Organization is set
// depending on the account type.
type AuthOutput struct {
	UserType     model.UserType      `json:"user_type"`
	Volunteer    *model.Volunteer    `json:"volunteer,omitempty"`
	Organization *model.Organization `json:"organization,omitempty"`
	Token        string              `json:"token,omitempty"`
}

// SetAuditLogger records organization approvals with l.
func (s *AuthService) SetAuditLogger(l audit.Logger) {
	if l != nil {
		s.auditor = l
	}
}

func (s *AuthService) hashPassword(password string) (string, error) {
	hash, err := s.passwordHasher.Hash(password)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return hash, nil
}

// rehash stores the password again under the current hashing cost. Failures
// only cost a later retry, so they are logged and the login proceeds.
func (s *AuthService) rehash(ctx context.Context, userType model.UserType, userID, password string) {
	hash, err := s.passwordHasher.Hash(password)
	if err == nil {
		fields := map[string]any{"password_hash": hash}
		if userType == model.UserTypeOrganization {
			err = s.orgs.Update(ctx, userID, fields)
		} else {
			err = s.volunteers.Update(ctx, userID, fields)
		}
	}
	if err != nil {
		s.logger.WarnContext(ctx, "password rehash failed", "user_id", userID, "error", err)
		return
	}
	s.logger.InfoContext(ctx, "password rehashed", "user_id", userID)
}

// RegisterVolunteer creates a volunteer account and reserves its email.
func (s *AuthService) RegisterVolunteer(ctx context.Context, input RegisterVolunteerInput) (*model.Volunteer, error) {
	input.Email = normalizeEmail(input.Email)
	if err := s.validate.Struct(input); err != nil {
		return nil, invalid(err)
	}

	hash, err := s.hashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	volunteer := &model.Volunteer{
		Name:         input.Name,
		Surname:      input.Surname,
		Email:        input.Email,
		PasswordHash: hash,
		Phone:        input.Phone,
		Location:     input.Location,
		Interests:    model.StringList(input.Interests),
		Skills:       model.StringList(input.Skills),
		Availability: input.Availability,
		DateOfBirth:  input.DateOfBirth,
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.volunteers.Create(ctx, volunteer); err != nil {
			return err
		}
		return s.claims.Claim(ctx, model.UserTypeVolunteer, volunteer.Email, volunteer.ID)
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, domain.ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("registering volunteer: %w", err)
	}

	s.logger.InfoContext(ctx, "volunteer registered", "volunteer_id", volunteer.ID)
	return volunteer.Sanitized(), nil
}

// RegisterOrganization creates an organization account. It starts approved
// only when auto approval is configured.
func (s *AuthService) RegisterOrganization(ctx context.Context, input RegisterOrganizationInput) (*model.Organization, error) {
	input.Email = normalizeEmail(input.Email)
	if err := s.validate.Struct(input); err != nil {
		return nil, invalid(err)
	}

	hash, err := s.hashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	org := &model.Organization{
		Name:               input.Name,
		Domain:             input.Domain,
		Location:           input.Location,
		Website:            input.Website,
		Email:              input.Email,
		PasswordHash:       hash,
		Phone:              input.Phone,
		RegistrationNumber: input.RegistrationNumber,
		Description:        input.Description,
		MemberCount:        input.MemberCount,
		FoundedYear:        input.FoundedYear,
		Tags:               model.StringList(input.Tags),
		IsApproved:         s.config.Organizations.AutoApprove,
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.orgs.Create(ctx, org); err != nil {
			return err
		}
		return s.claims.Claim(ctx, model.UserTypeOrganization, org.Email, org.ID)
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, domain.ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("registering organization: %w", err)
	}

	s.logger.InfoContext(ctx, "organization registered",
		"organization_id", org.ID,
		"approved", org.IsApproved,
	)
	return org.Sanitized(), nil
}

// Login checks the credentials of a volunteer or organization and issues a token.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*AuthOutput, error) {
	input.Email = normalizeEmail(input.Email)
	if err := s.validate.Struct(input); err != nil {
		return nil, invalid(err)
	}

	var (
		userID string
		hash   string
		out    = &AuthOutput{UserType: input.UserType}
	)

	switch input.UserType {
	case model.UserTypeVolunteer:
		volunteer, err := s.volunteers.FindByEmail(ctx, input.Email)
		if err != nil {
			return nil, err
		}
		userID, hash = volunteer.ID, volunteer.PasswordHash
		out.Volunteer = volunteer.Sanitized()

	case model.UserTypeOrganization:
		org, err := s.orgs.FindByEmail(ctx, input.Email)
		if err != nil {
			return nil, err
		}
		userID, hash = org.ID, org.PasswordHash
		out.Organization = org.Sanitized()
	}

	verified, err := s.passwordHasher.Verify(input.Password, hash)
	if err != nil {
		return nil, fmt.Errorf("verifying password: %w", err)
	}
	if !verified {
		return nil, domain.ErrInvalidCredentials
	}

	if out.Organization != nil && !out.Organization.IsApproved {
		return nil, domain.ErrNotApproved
	}

	if s.passwordHasher.NeedsRehash(hash) {
		s.rehash(ctx, input.UserType, userID, input.Password)
	}

	out.Token, err = s.tokenManager.Generate(userID, input.Email, input.UserType)
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}
	return out, nil
}

type UpdateVolunteerInput struct {
	Name              *string    `json:"name,omitempty" validate:"omitempty,min=1"`
	Surname           *string    `json:"surname,omitempty"`
	Phone             *string    `json:"phone,omitempty"`
	Location          *string    `json:"location,omitempty" validate:"omitempty,governorate"`
	ProfilePictureURL *string    `json:"profile_picture_url,omitempty"`
	Interests         []string   `json:"interests,omitempty"`
	Skills            []string   `json:"skills,omitempty"`
	Availability      *string    `json:"availability,omitempty"`
	DateOfBirth       *time.Time `json:"date_of_birth,omitempty"`
}

// UpdateVolunteer merges the set fields into the volunteer profile.
func (s *AuthService) UpdateVolunteer(ctx context.Context, id string, input UpdateVolunteerInput) (*model.Volunteer, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, invalid(err)
	}

	fields := map[string]any{}
	setString(fields, "name", input.Name)
	setString(fields, "surname", input.Surname)
	setString(fields, "phone", input.Phone)
	setString(fields, "location", input.Location)
	setString(fields, "availability", input.Availability)
	if input.ProfilePictureURL != nil {
		fields["profile_picture_url"] = usableImage(*input.ProfilePictureURL)
	}
	if input.Interests != nil {
		fields["interests"] = model.StringList(input.Interests)
	}
	if input.Skills != nil {
		fields["skills"] = model.StringList(input.Skills)
	}
	if input.DateOfBirth != nil {
		fields["date_of_birth"] = *input.DateOfBirth
	}

	if len(fields) > 0 {
		if err := s.volunteers.Update(ctx, id, fields); err != nil {
			return nil, err
		}
	}

	volunteer, err := s.volunteers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return volunteer.Sanitized(), nil
}

type UpdateOrganizationInput struct {
	Name              *string  `json:"name,omitempty" validate:"omitempty,min=1"`
	Domain            *string  `json:"domain,omitempty"`
	Location          *string  `json:"location,omitempty" validate:"omitempty,governorate"`
	Website           *string  `json:"website,omitempty" validate:"omitempty,url"`
	Phone             *string  `json:"phone,omitempty"`
	ProfilePictureURL *string  `json:"profile_picture_url,omitempty"`
	Description       *string  `json:"description,omitempty"`
	MemberCount       *int     `json:"member_count,omitempty" validate:"omitempty,gte=0"`
	Tags              []string `json:"tags,omitempty"`
}

// UpdateOrganization merges the set fields into the organization profile.
// Aggregates are not writable here.
func (s *AuthService) UpdateOrganization(ctx context.Context, id string, input UpdateOrganizationInput) (*model.Organization, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, invalid(err)
	}

	fields := map[string]any{}
	setString(fields, "name", input.Name)
	setString(fields, "domain", input.Domain)
	setString(fields, "location", input.Location)
	setString(fields, "website", input.Website)
	setString(fields, "phone", input.Phone)
	setString(fields, "description", input.Description)
	if input.ProfilePictureURL != nil {
		fields["profile_picture_url"] = usableImage(*input.ProfilePictureURL)
	}
	if input.MemberCount != nil {
		fields["member_count"] = *input.MemberCount
	}
	if input.Tags != nil {
		fields["tags"] = model.StringList(input.Tags)
	}

	if len(fields) > 0 {
		if err := s.orgs.Update(ctx, id, fields); err != nil {
			return nil, err
		}
		s.invalidateOrganization(ctx, id)
	}

	org, err := s.orgs.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return org.Sanitized(), nil
}

// ApproveOrganization lets a pending organization log in.
func (s *AuthService) ApproveOrganization(ctx context.Context, id string) (*model.Organization, error) {
	if err := s.orgs.Update(ctx, id, map[string]any{"is_approved": true}); err != nil {
		return nil, err
	}
	s.invalidateOrganization(ctx, id)
	s.logger.InfoContext(ctx, "organization approved", "organization_id", id)
	_ = s.auditor.LogOrganizationApproval(ctx, id)

	org, err := s.orgs.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return org.Sanitized(), nil
}

// PendingOrganizations lists organizations waiting for approval.
func (s *AuthService) PendingOrganizations(ctx context.Context) ([]*model.Organization, error) {
	orgs, err := s.orgs.FindByApproval(ctx, false)
	if err != nil {
		return nil, err
	}
	out := make([]*model.Organization, 0, len(orgs))
	for _, org := range orgs {
		out = append(out, org.Sanitized())
	}
	return out, nil
}

func (s *AuthService) invalidateOrganization(ctx context.Context, id string) {
	if s.cacheService != nil {
		_ = s.cacheService.Delete(ctx, organizationKey(id))
	}
}

func setString(fields map[string]any, key string, value *string) {
	if value != nil {
		fields[key] = *value
	}
}

// usableImage drops inline data and search result links.
func usableImage(url string) string {
	if model.UsableImageURL(url) {
		return url
	}
	return ""
}
