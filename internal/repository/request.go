package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/dangerclosesec/tounesna/internal/domain"
	"github.com/dangerclosesec/tounesna/internal/model"
	"github.com/dangerclosesec/tounesna/internal/store"
)

type RequestRepositoryIface interface {
	CreateRequest(ctx context.Context, request *model.VolunteerRequest) error
	FindRequestByID(ctx context.Context, id string) (*model.VolunteerRequest, error)
	FindRequestsByVolunteer(ctx context.Context, volunteerID string) ([]*model.VolunteerRequest, error)
	FindAllRequests(ctx context.Context) ([]*model.VolunteerRequest, error)
	DeleteRequest(ctx context.Context, id string) error
	AdjustPendingLegs(ctx context.Context, requestID string, delta int) error
	SetPendingLegs(ctx context.Context, requestID string, pending int) error

	CreateLeg(ctx context.Context, leg *model.RequestLeg) error
	FindLegByID(ctx context.Context, id string) (*model.RequestLeg, error)
	FindLegsByRequest(ctx context.Context, requestID string) ([]*model.RequestLeg, error)
	FindLegsByOrganization(ctx context.Context, orgID string) ([]*model.RequestLeg, error)
	ResolveLeg(ctx context.Context, legID string, status model.LegStatus, approvedBy string, at time.Time) error
	SetLegPost(ctx context.Context, legID, postID string) error
}

// RequestRepository stores request parents and their per-organization legs.
type RequestRepository struct {
	store store.Store
}

func NewRequestRepository(s store.Store) *RequestRepository {
	return &RequestRepository{store: s}
}

func (r *RequestRepository) CreateRequest(ctx context.Context, request *model.VolunteerRequest) error {
	if request.ID == "" {
		request.ID = r.store.GenerateID(model.CollectionRequests)
	}
	if err := r.store.Create(ctx, model.CollectionRequests, request); err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	return nil
}

func (r *RequestRepository) FindRequestByID(ctx context.Context, id string) (*model.VolunteerRequest, error) {
	var request model.VolunteerRequest
	if err := r.store.Get(ctx, model.CollectionRequests, id, &request); err != nil {
		return nil, notFound(err, domain.ErrRequestNotFound)
	}
	return &request, nil
}

func (r *RequestRepository) FindRequestsByVolunteer(ctx context.Context, volunteerID string) ([]*model.VolunteerRequest, error) {
	var requests []*model.VolunteerRequest
	if err := r.store.Query(ctx, model.CollectionRequests, "volunteer_id", volunteerID, &requests); err != nil {
		return nil, fmt.Errorf("finding requests: %w", err)
	}
	return requests, nil
}

func (r *RequestRepository) FindAllRequests(ctx context.Context) ([]*model.VolunteerRequest, error) {
	var requests []*model.VolunteerRequest
	if err := r.store.List(ctx, model.CollectionRequests, &requests); err != nil {
		return nil, fmt.Errorf("finding all requests: %w", err)
	}
	return requests, nil
}

func (r *RequestRepository) DeleteRequest(ctx context.Context, id string) error {
	if err := r.store.Delete(ctx, model.CollectionRequests, id); err != nil {
		return notFound(err, domain.ErrRequestNotFound)
	}
	return nil
}

// AdjustPendingLegs moves the parent's open-leg counter atomically.
func (r *RequestRepository) AdjustPendingLegs(ctx context.Context, requestID string, delta int) error {
	err := r.store.Increment(ctx, model.CollectionRequests, requestID, map[string]float64{
		"pending_legs": float64(delta),
	})
	if err != nil {
		return notFound(err, domain.ErrRequestNotFound)
	}
	return nil
}

// SetPendingLegs overwrites the counter with a recount. Only reconciliation
// uses it; live paths go through AdjustPendingLegs.
func (r *RequestRepository) SetPendingLegs(ctx context.Context, requestID string, pending int) error {
	if err := r.store.Update(ctx, model.CollectionRequests, requestID, map[string]any{"pending_legs": pending}); err != nil {
		return notFound(err, domain.ErrRequestNotFound)
	}
	return nil
}

func (r *RequestRepository) CreateLeg(ctx context.Context, leg *model.RequestLeg) error {
	if leg.ID == "" {
		leg.ID = r.store.GenerateID(model.CollectionRequestLegs)
	}
	if err := r.store.Create(ctx, model.CollectionRequestLegs, leg); err != nil {
		return fmt.Errorf("creating request leg for %s: %w", leg.OrganizationID, err)
	}
	return nil
}

func (r *RequestRepository) FindLegByID(ctx context.Context, id string) (*model.RequestLeg, error) {
	var leg model.RequestLeg
	if err := r.store.Get(ctx, model.CollectionRequestLegs, id, &leg); err != nil {
		return nil, notFound(err, domain.ErrRequestNotFound)
	}
	return &leg, nil
}

func (r *RequestRepository) FindLegsByRequest(ctx context.Context, requestID string) ([]*model.RequestLeg, error) {
	var legs []*model.RequestLeg
	if err := r.store.Query(ctx, model.CollectionRequestLegs, "request_id", requestID, &legs); err != nil {
		return nil, fmt.Errorf("finding request legs: %w", err)
	}
	return legs, nil
}

func (r *RequestRepository) FindLegsByOrganization(ctx context.Context, orgID string) ([]*model.RequestLeg, error) {
	var legs []*model.RequestLeg
	if err := r.store.Query(ctx, model.CollectionRequestLegs, "organization_id", orgID, &legs); err != nil {
		return nil, fmt.Errorf("finding request legs: %w", err)
	}
	return legs, nil
}

// ResolveLeg moves a leg out of PENDING. It fails with
// domain.ErrInvalidTransition when the leg was already resolved.
func (r *RequestRepository) ResolveLeg(ctx context.Context, legID string, status model.LegStatus, approvedBy string, at time.Time) error {
	fields := map[string]any{
		"status":      status,
		"resolved_at": at,
	}
	if approvedBy != "" {
		fields["approved_by_org_id"] = approvedBy
	}
	err := r.store.CompareAndSwap(ctx, model.CollectionRequestLegs, legID, "status", model.LegPending, fields)
	if err != nil {
		return notFound(err, domain.ErrRequestNotFound)
	}
	return nil
}

func (r *RequestRepository) SetLegPost(ctx context.Context, legID, postID string) error {
	if err := r.store.Update(ctx, model.CollectionRequestLegs, legID, map[string]any{"created_post_id": postID}); err != nil {
		return notFound(err, domain.ErrRequestNotFound)
	}
	return nil
}
