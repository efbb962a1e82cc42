// internal/service/request.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/dangerclosesec/tounesna/internal/audit"
	"github.com/dangerclosesec/tounesna/internal/domain"
	"github.com/dangerclosesec/tounesna/internal/email/mailer"
	"github.com/dangerclosesec/tounesna/internal/metrics"
	"github.com/dangerclosesec/tounesna/internal/model"
	"github.com/dangerclosesec/tounesna/internal/repository"
	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"
)

// Defaults for the post synthesized from an approved request.
const (
	approvedPostVolunteers = 10
	approvedPostCategory   = model.CategoryAid
	approvedPostDuration   = 7 * 24 * time.Hour
	approvedPostTitle      = "Volunteer Request"

	fanoutConcurrency = 8
)

// RequestService sends volunteer requests to organizations and runs the
// approve/reject workflow on each per-organization leg.
type RequestService struct {
	requests      repository.RequestRepositoryIface
	volunteers    repository.VolunteerRepositoryIface
	orgs          repository.OrganizationRepositoryIface
	tx            repository.Transaction
	posts         *PostService
	notifications *NotificationService
	auditor       audit.Logger
	validate      *validator.Validate
	logger        *slog.Logger
	now           func() time.Time
}

func NewRequestService(
	requests repository.RequestRepositoryIface,
	volunteers repository.VolunteerRepositoryIface,
	orgs repository.OrganizationRepositoryIface,
	tx repository.Transaction,
	posts *PostService,
	notifications *NotificationService,
	logger *slog.Logger,
) *RequestService {
	if logger == nil {
		logger = slog.Default()
	}
	return &RequestService{
		requests:      requests,
		volunteers:    volunteers,
		orgs:          orgs,
		tx:            tx,
		posts:         posts,
		notifications: notifications,
		auditor:       &audit.NoOpLogger{},
		validate:      newValidator(),
		logger:        logger.With("service", "request"),
		now: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// SetAuditLogger records every approve and reject attempt with l.
func (s *RequestService) SetAuditLogger(l audit.Logger) {
	if l != nil {
		s.auditor = l
	}
}

type SubmitRequestInput struct {
	VolunteerID     string         `json:"-" validate:"required"`
	OrganizationIDs []string       `json:"organization_ids"`
	OrganizationID  string         `json:"organization_id"`
	PostID          string         `json:"post_id"`
	Title           string         `json:"title" validate:"required"`
	Description     string         `json:"description"`
	Location        string         `json:"location"`
	Priority        model.Priority `json:"priority" validate:"omitempty,oneof=LOW MEDIUM HIGH VERY_HIGH"`
	Needs           []string       `json:"needs"`
	Message         string         `json:"message"`
	ImageURL        string         `json:"image_url"`
}

// targets returns the distinct organization ids, falling back to the
// single OrganizationID when the list is empty.
func (in SubmitRequestInput) targets() []string {
	seen := make(map[string]bool, len(in.OrganizationIDs))
	var ids []string
	for _, id := range in.OrganizationIDs {
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		if id := strings.TrimSpace(in.OrganizationID); id != "" {
			ids = []string{id}
		}
	}
	return ids
}

type SubmitRequestOutput struct {
	Request *model.VolunteerRequest `json:"request"`
	Legs    []*model.RequestLeg     `json:"legs"`
}

type legResult struct {
	leg *model.RequestLeg
	err error
}

// SubmitRequest writes one PENDING leg per target organization. Every leg
// is attempted; when some fail the created legs are still returned along
// with a *domain.FanoutError naming the failed organizations.
func (s *RequestService) SubmitRequest(ctx context.Context, input SubmitRequestInput) (*SubmitRequestOutput, error) {
	targets := input.targets()
	if len(targets) == 0 {
		return nil, domain.ErrNoOrganizationSelected
	}
	if err := s.validate.Struct(input); err != nil {
		return nil, invalid(err)
	}

	volunteer, err := s.volunteers.FindByID(ctx, input.VolunteerID)
	if err != nil {
		return nil, err
	}

	request := &model.VolunteerRequest{
		VolunteerID:     input.VolunteerID,
		PostID:          input.PostID,
		Title:           input.Title,
		Description:     input.Description,
		Location:        input.Location,
		Priority:        input.Priority.OrDefault(),
		Needs:           model.StringList(input.Needs),
		Message:         input.Message,
		ImageURL:        usableImage(input.ImageURL),
		OrganizationIDs: model.StringList(targets),
		PendingLegs:     len(targets),
	}
	if request.Needs == nil {
		request.Needs = model.StringList{}
	}
	if err := s.requests.CreateRequest(ctx, request); err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	results := make([]legResult, len(targets))
	g := new(errgroup.Group)
	g.SetLimit(fanoutConcurrency)
	for i, orgID := range targets {
		g.Go(func() error {
			leg, err := s.writeLeg(ctx, request, volunteer, orgID)
			results[i] = legResult{leg: leg, err: err}
			metrics.FanoutLegs.WithLabelValues(metrics.Result(err)).Inc()
			return nil
		})
	}
	_ = g.Wait()

	out := &SubmitRequestOutput{Request: request}
	fanoutErr := &domain.FanoutError{RequestID: request.ID}
	for i, r := range results {
		if r.err != nil {
			fanoutErr.Failed = append(fanoutErr.Failed, domain.LegFailure{OrganizationID: targets[i], Err: r.err})
			continue
		}
		out.Legs = append(out.Legs, r.leg)
		fanoutErr.Succeeded = append(fanoutErr.Succeeded, targets[i])
	}

	if len(fanoutErr.Failed) == 0 {
		s.logger.InfoContext(ctx, "request submitted",
			"request_id", request.ID,
			"legs", len(out.Legs),
		)
		return out, nil
	}

	s.logger.WarnContext(ctx, "request fan-out incomplete",
		"request_id", request.ID,
		"succeeded", len(fanoutErr.Succeeded),
		"failed", len(fanoutErr.Failed),
	)
	if len(out.Legs) == 0 {
		if err := s.requests.DeleteRequest(ctx, request.ID); err != nil {
			s.logger.ErrorContext(ctx, "failed to drop empty request", "request_id", request.ID, "error", err)
		}
	} else if err := s.requests.AdjustPendingLegs(ctx, request.ID, -len(fanoutErr.Failed)); err != nil {
		s.logger.ErrorContext(ctx, "failed to correct pending legs", "request_id", request.ID, "error", err)
	} else if current, err := s.requests.FindRequestByID(ctx, request.ID); err == nil {
		// Surviving legs may already have been resolved.
		out.Request = current
	} else {
		request.PendingLegs -= len(fanoutErr.Failed)
	}
	return out, fanoutErr
}

// writeLeg stores the leg for one organization and sends the received and
// sent notifications for it.
func (s *RequestService) writeLeg(ctx context.Context, request *model.VolunteerRequest, volunteer *model.Volunteer, orgID string) (*model.RequestLeg, error) {
	org, err := s.orgs.FindByID(ctx, orgID)
	if err != nil {
		return nil, err
	}

	leg := &model.RequestLeg{
		RequestID:      request.ID,
		VolunteerID:    request.VolunteerID,
		OrganizationID: orgID,
		Status:         model.LegPending,
	}
	if err := s.requests.CreateLeg(ctx, leg); err != nil {
		return nil, err
	}

	if s.notifications != nil {
		s.notifications.notifyQuietly(ctx, &model.Notification{
			UserID:           orgID,
			UserType:         model.UserTypeOrganization,
			Type:             model.NotificationRequestReceived,
			Title:            "New Volunteer Request",
			Message:          volunteer.FullName() + " sent you a request: " + request.Title,
			RelatedRequestID: leg.ID,
		})
		s.notifications.notifyQuietly(ctx, &model.Notification{
			UserID:           request.VolunteerID,
			UserType:         model.UserTypeVolunteer,
			Type:             model.NotificationRequestSent,
			Title:            "Request Sent",
			Message:          "Your request was sent to " + org.Name,
			RelatedRequestID: leg.ID,
		})
		s.notifications.EmailRequest(ctx, model.NotificationRequestReceived, org.Email, mailer.RequestTemplateData{
			VolunteerName:    volunteer.FullName(),
			OrganizationName: org.Name,
			Title:            request.Title,
			Location:         request.Location,
			Message:          request.Message,
		})
	}
	return leg, nil
}

type ApproveOutput struct {
	Leg  *model.RequestLeg `json:"leg"`
	Post *model.Post       `json:"post,omitempty"`
}

// loadLegFor fetches the leg and checks that orgID is the organization it
// was addressed to.
func (s *RequestService) loadLegFor(ctx context.Context, legID, orgID string) (*model.RequestLeg, *model.VolunteerRequest, error) {
	leg, err := s.requests.FindLegByID(ctx, legID)
	if err != nil {
		return nil, nil, err
	}
	if leg.OrganizationID != orgID {
		return nil, nil, domain.ErrUnauthorized
	}
	request, err := s.requests.FindRequestByID(ctx, leg.RequestID)
	if err != nil {
		return nil, nil, err
	}
	return leg, request, nil
}

// resolve moves the leg out of PENDING and releases its slot on the parent
// in one transaction.
func (s *RequestService) resolve(ctx context.Context, leg *model.RequestLeg, status model.LegStatus, approvedBy string) error {
	at := s.now()
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.requests.ResolveLeg(ctx, leg.ID, status, approvedBy, at); err != nil {
			return err
		}
		return s.requests.AdjustPendingLegs(ctx, leg.RequestID, -1)
	})
	metrics.LegTransitions.WithLabelValues(string(status), metrics.Result(err)).Inc()
	if auditErr := s.auditor.LogLegTransition(ctx, audit.LegTransition{
		RequestID:      leg.RequestID,
		LegID:          leg.ID,
		OrganizationID: leg.OrganizationID,
		To:             string(status),
		At:             at,
		Err:            err,
	}); auditErr != nil {
		s.logger.WarnContext(ctx, "failed to audit leg transition", "leg_id", leg.ID, "error", auditErr)
	}
	if err != nil {
		if errors.Is(err, domain.ErrInvalidTransition) {
			return fmt.Errorf("leg %s: %w", leg.ID, domain.ErrAlreadyResolved)
		}
		return err
	}

	leg.Status = status
	leg.ResolvedAt = &at
	if approvedBy != "" {
		leg.ApprovedByOrgID = approvedBy
	}
	return nil
}

// Approve accepts the leg for orgID and publishes a post built from the
// request. When the post cannot be created the leg stays APPROVED and a
// *domain.ApprovalError is returned with the leg.
func (s *RequestService) Approve(ctx context.Context, legID, orgID string) (*ApproveOutput, error) {
	leg, request, err := s.loadLegFor(ctx, legID, orgID)
	if err != nil {
		return nil, err
	}
	if err := s.resolve(ctx, leg, model.LegApproved, orgID); err != nil {
		return nil, err
	}

	out := &ApproveOutput{Leg: leg}
	post, err := s.publish(ctx, request, orgID)
	if err != nil {
		s.logger.ErrorContext(ctx, "approved request without post",
			"request_id", request.ID,
			"leg_id", leg.ID,
			"error", err,
		)
		return out, &domain.ApprovalError{RequestID: request.ID, LegID: leg.ID, Err: err}
	}
	out.Post = post

	if err := s.requests.SetLegPost(ctx, leg.ID, post.ID); err != nil {
		s.logger.WarnContext(ctx, "failed to link post to leg", "leg_id", leg.ID, "post_id", post.ID, "error", err)
	} else {
		leg.CreatedPostID = post.ID
	}

	s.notifyVolunteer(ctx, leg, request, model.NotificationRequestApproved)
	return out, nil
}

func (s *RequestService) publish(ctx context.Context, request *model.VolunteerRequest, orgID string) (*model.Post, error) {
	if s.posts == nil {
		return nil, errors.New("post publishing unavailable")
	}

	title := request.Title
	if title == "" {
		title = approvedPostTitle
	}
	start := s.now()
	return s.posts.CreatePost(ctx, CreatePostInput{
		OrganizationID:   orgID,
		Title:            title,
		Description:      request.Description,
		ImageURL:         request.ImageURL,
		Location:         request.Location,
		StartDate:        start,
		EndDate:          start.Add(approvedPostDuration),
		VolunteersNeeded: approvedPostVolunteers,
		Category:         approvedPostCategory,
		Priority:         request.Priority.OrDefault(),
		Needs:            request.Needs,
	})
}

// Reject declines the leg for orgID. Sibling legs are unaffected.
func (s *RequestService) Reject(ctx context.Context, legID, orgID string) (*model.RequestLeg, error) {
	leg, request, err := s.loadLegFor(ctx, legID, orgID)
	if err != nil {
		return nil, err
	}
	if err := s.resolve(ctx, leg, model.LegRejected, ""); err != nil {
		return nil, err
	}

	s.notifyVolunteer(ctx, leg, request, model.NotificationRequestRejected)
	return leg, nil
}

func (s *RequestService) notifyVolunteer(ctx context.Context, leg *model.RequestLeg, request *model.VolunteerRequest, kind model.NotificationType) {
	if s.notifications == nil {
		return
	}

	orgName := "An organization"
	org, err := s.orgs.FindByID(ctx, leg.OrganizationID)
	if err == nil {
		orgName = org.Name
	}

	title, verb := "Request Approved", "approved"
	if kind == model.NotificationRequestRejected {
		title, verb = "Request Rejected", "declined"
	}
	s.notifications.notifyQuietly(ctx, &model.Notification{
		UserID:           leg.VolunteerID,
		UserType:         model.UserTypeVolunteer,
		Type:             kind,
		Title:            title,
		Message:          fmt.Sprintf("%s %s your request: %s", orgName, verb, request.Title),
		RelatedRequestID: leg.ID,
	})

	volunteer, err := s.volunteers.FindByID(ctx, leg.VolunteerID)
	if err != nil {
		return
	}
	s.notifications.EmailRequest(ctx, kind, volunteer.Email, mailer.RequestTemplateData{
		VolunteerName:    volunteer.FullName(),
		OrganizationName: orgName,
		Title:            request.Title,
		Location:         request.Location,
		Message:          request.Message,
	})
}

// Inbox sort orders.
const (
	SortRecent       = "recent"
	SortOld          = "old"
	SortPriorityHigh = "priority_high"
	SortPriorityLow  = "priority_low"
)

// InboxFilter narrows an organization's pending requests. Zero values match everything.
type InboxFilter struct {
	Location string         `json:"location"`
	Priority model.Priority `json:"priority"`
	Needs    []string       `json:"needs"`
	From     *time.Time     `json:"from,omitempty"`
	To       *time.Time     `json:"to,omitempty"`
	Sort     string         `json:"sort"`
}

func (f InboxFilter) match(leg *model.RequestLeg, request *model.VolunteerRequest) bool {
	if f.Location != "" && !strings.EqualFold(request.Location, f.Location) {
		return false
	}
	if f.Priority != "" && request.Priority.OrDefault() != f.Priority {
		return false
	}
	if f.From != nil && leg.CreatedAt.Before(*f.From) {
		return false
	}
	if f.To != nil && leg.CreatedAt.After(*f.To) {
		return false
	}
	if len(f.Needs) == 0 {
		return true
	}
	for _, want := range f.Needs {
		for _, have := range request.Needs {
			if strings.EqualFold(want, have) {
				return true
			}
		}
	}
	return false
}

// Inbox lists the PENDING legs addressed to orgID with their request payload.
func (s *RequestService) Inbox(ctx context.Context, orgID string, filter InboxFilter) ([]*model.RequestView, error) {
	legs, err := s.requests.FindLegsByOrganization(ctx, orgID)
	if err != nil {
		return nil, err
	}

	parents := make(map[string]*model.VolunteerRequest)
	views := make([]*model.RequestView, 0, len(legs))
	for _, leg := range legs {
		if leg.Status != model.LegPending || leg.IsDeleted {
			continue
		}
		request, ok := parents[leg.RequestID]
		if !ok {
			request, err = s.requests.FindRequestByID(ctx, leg.RequestID)
			if errors.Is(err, domain.ErrNotFound) {
				continue
			}
			if err != nil {
				return nil, err
			}
			parents[leg.RequestID] = request
		}
		if filter.match(leg, request) {
			views = append(views, &model.RequestView{Leg: leg, Request: request})
		}
	}

	sortViews(views, filter.Sort)
	return views, nil
}

func sortViews(views []*model.RequestView, order string) {
	byTime := func(i, j int) bool {
		return views[i].Leg.CreatedAt.After(views[j].Leg.CreatedAt)
	}
	switch order {
	case SortOld:
		sort.SliceStable(views, func(i, j int) bool { return byTime(j, i) })
	case SortPriorityHigh, SortPriorityLow:
		sort.SliceStable(views, func(i, j int) bool {
			ri, rj := views[i].Request.Priority.Rank(), views[j].Request.Priority.Rank()
			if ri == rj {
				return byTime(i, j)
			}
			if order == SortPriorityHigh {
				return ri > rj
			}
			return ri < rj
		})
	default:
		sort.SliceStable(views, byTime)
	}
}

// GetRequest returns the request with all of its legs.
func (s *RequestService) GetRequest(ctx context.Context, requestID string) (*model.RequestStatus, error) {
	request, err := s.requests.FindRequestByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	legs, err := s.requests.FindLegsByRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	return &model.RequestStatus{Request: request, Legs: legs, Resolved: request.IsResolved()}, nil
}

// GetLeg returns a single leg.
func (s *RequestService) GetLeg(ctx context.Context, legID string) (*model.RequestLeg, error) {
	return s.requests.FindLegByID(ctx, legID)
}

// RequestsByVolunteer lists everything the volunteer has sent, newest first.
func (s *RequestService) RequestsByVolunteer(ctx context.Context, volunteerID string) ([]*model.RequestStatus, error) {
	requests, err := s.requests.FindRequestsByVolunteer(ctx, volunteerID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(requests, func(i, j int) bool {
		return requests[i].CreatedAt.After(requests[j].CreatedAt)
	})

	out := make([]*model.RequestStatus, 0, len(requests))
	for _, request := range requests {
		legs, err := s.requests.FindLegsByRequest(ctx, request.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, &model.RequestStatus{Request: request, Legs: legs, Resolved: request.IsResolved()})
	}
	return out, nil
}
