// internal/domain/errors.go
package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// General errors
	ErrNotFound          = errors.New("not found")
	ErrAlreadyExists     = errors.New("already exists")
	ErrInvalidInput      = errors.New("invalid input")
	ErrOutOfRange        = errors.New("value out of range")
	ErrTimeout           = errors.New("store operation timed out")
	ErrPartialFailure    = errors.New("partial failure")
	ErrInvalidTransition = errors.New("invalid status transition")

	// Account-related errors
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = fmt.Errorf("invalid credentials: %w", ErrUnauthorized)
	ErrNotApproved        = fmt.Errorf("organization not approved yet: %w", ErrUnauthorized)
	ErrEmailAlreadyExists = fmt.Errorf("email already registered: %w", ErrAlreadyExists)
	ErrPasswordTooWeak    = fmt.Errorf("password too weak: %w", ErrInvalidInput)

	// Entity lookups
	ErrVolunteerNotFound    = fmt.Errorf("volunteer %w", ErrNotFound)
	ErrOrganizationNotFound = fmt.Errorf("organization %w", ErrNotFound)
	ErrPostNotFound         = fmt.Errorf("post %w", ErrNotFound)
	ErrRequestNotFound      = fmt.Errorf("request %w", ErrNotFound)
	ErrNotificationNotFound = fmt.Errorf("notification %w", ErrNotFound)
	ErrFollowNotFound       = fmt.Errorf("follow relationship %w", ErrNotFound)

	// Workflow errors
	ErrNoOrganizationSelected = fmt.Errorf("%w: no organization selected", ErrInvalidInput)
	ErrAlreadyFollowing       = fmt.Errorf("follow relationship %w", ErrAlreadyExists)
	ErrAlreadyRated           = fmt.Errorf("rating %w", ErrAlreadyExists)
	ErrScoreOutOfRange        = fmt.Errorf("rating score %w", ErrOutOfRange)
	ErrAlreadyResolved        = fmt.Errorf("request already resolved: %w", ErrInvalidTransition)
	ErrPostNotCreated         = errors.New("request approved but failed to create post")
)

// LegFailure records one target organization whose request leg could not be written.
type LegFailure struct {
	OrganizationID string `json:"organization_id"`
	Err            error  `json:"-"`
}

// FanoutError is returned when some legs of a multi-target write failed.
// Succeeded lists the organizations that did receive the request.
type FanoutError struct {
	RequestID string
	Succeeded []string
	Failed    []LegFailure
}

func (e *FanoutError) Error() string {
	ids := make([]string, 0, len(e.Failed))
	for _, f := range e.Failed {
		ids = append(ids, f.OrganizationID)
	}
	return fmt.Sprintf("request %s: %d of %d legs failed (%s)",
		e.RequestID, len(e.Failed), len(e.Failed)+len(e.Succeeded), strings.Join(ids, ", "))
}

func (e *FanoutError) Is(target error) bool {
	return target == ErrPartialFailure
}

// Unwrap exposes the per-leg causes so callers can test for ErrTimeout and friends.
func (e *FanoutError) Unwrap() []error {
	errs := make([]error, 0, len(e.Failed))
	for _, f := range e.Failed {
		if f.Err != nil {
			errs = append(errs, f.Err)
		}
	}
	return errs
}

// ApprovalError reports a leg that was approved but whose post was not created.
type ApprovalError struct {
	RequestID string
	LegID     string
	Err       error
}

func (e *ApprovalError) Error() string {
	return fmt.Sprintf("%s (leg %s): %v", ErrPostNotCreated, e.LegID, e.Err)
}

func (e *ApprovalError) Is(target error) bool {
	return target == ErrPostNotCreated || target == ErrPartialFailure
}

func (e *ApprovalError) Unwrap() error {
	return e.Err
}
