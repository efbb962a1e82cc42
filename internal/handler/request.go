package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/dangerclosesec/tounesna/internal/domain"
	"github.com/dangerclosesec/tounesna/internal/middleware"
	"github.com/dangerclosesec/tounesna/internal/model"
	"github.com/dangerclosesec/tounesna/internal/service"
	"github.com/go-chi/chi/v5"
	chmw "github.com/go-chi/chi/v5/middleware"
)

type RequestHandler struct {
	requestService *service.RequestService
}

func NewRequestHandler(requestService *service.RequestService) *RequestHandler {
	return &RequestHandler{requestService: requestService}
}

type FailedLeg struct {
	OrganizationID string `json:"organization_id"`
	Error          string `json:"error"`
}

type SubmitRequestResponse struct {
	BaseResponse
	Request *model.VolunteerRequest `json:"request"`
	Legs    []*model.RequestLeg     `json:"legs"`
	Failed  []FailedLeg             `json:"failed,omitempty"`
}

type RequestStatusResponse struct {
	BaseResponse
	*model.RequestStatus
}

type RequestsResponse struct {
	BaseResponse
	Requests []*model.RequestStatus `json:"requests"`
}

type InboxResponse struct {
	BaseResponse
	Requests []*model.RequestView `json:"requests"`
}

type LegResponse struct {
	BaseResponse
	Leg  *model.RequestLeg `json:"leg"`
	Post *model.Post       `json:"post,omitempty"`
}

// ApprovalFailedResponse is sent when a leg was approved but its post was not created.
type ApprovalFailedResponse struct {
	ErrorResponse
	Leg *model.RequestLeg `json:"leg"`
}

// Submit fans the request out to every selected organization. A partial
// fan-out answers 207 with the legs that were written and the ones that failed.
func (h *RequestHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var input service.SubmitRequestInput
	if !decode(w, r, &input) {
		return
	}
	input.VolunteerID = middleware.UserID(r.Context())

	out, err := h.requestService.SubmitRequest(r.Context(), input)
	var fanoutErr *domain.FanoutError
	switch {
	case err == nil:
		respondWithJSON(w, http.StatusCreated, SubmitRequestResponse{
			BaseResponse: BaseResponse{Ok: true},
			Request:      out.Request,
			Legs:         out.Legs,
		})
	case errors.As(err, &fanoutErr) && len(out.Legs) > 0:
		slog.WarnContext(r.Context(), "Partial request fan-out", "error", err, "requestID", chmw.GetReqID(r.Context()))
		resp := SubmitRequestResponse{Request: out.Request, Legs: out.Legs}
		for _, f := range fanoutErr.Failed {
			resp.Failed = append(resp.Failed, FailedLeg{OrganizationID: f.OrganizationID, Error: f.Err.Error()})
		}
		respondWithJSON(w, http.StatusMultiStatus, resp)
	case errors.As(err, &fanoutErr) && len(fanoutErr.Failed) > 0:
		// nothing was written, report the first cause
		handleError(w, r, fanoutErr.Failed[0].Err, "Request fan-out failed")
	default:
		handleError(w, r, err, "Request submission error")
	}
}

// Mine lists the caller's own requests with their legs.
func (h *RequestHandler) Mine(w http.ResponseWriter, r *http.Request) {
	requests, err := h.requestService.RequestsByVolunteer(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		handleError(w, r, err, "Request listing error")
		return
	}
	respondWithJSON(w, http.StatusOK, RequestsResponse{BaseResponse{Ok: true}, requests})
}

func (h *RequestHandler) Inbox(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := service.InboxFilter{
		Location: q.Get("location"),
		Priority: model.Priority(strings.ToUpper(q.Get("priority"))),
		Sort:     q.Get("sort"),
	}
	if needs := q.Get("needs"); needs != "" {
		filter.Needs = strings.Split(needs, ",")
	}
	for key, dst := range map[string]**time.Time{"from": &filter.From, "to": &filter.To} {
		v := q.Get(key)
		if v == "" {
			continue
		}
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			respondWithErrorCode(w, http.StatusBadRequest, "Invalid "+key+" date, expected RFC3339", CodeInvalidInput)
			return
		}
		*dst = &t
	}

	views, err := h.requestService.Inbox(r.Context(), middleware.UserID(r.Context()), filter)
	if err != nil {
		handleError(w, r, err, "Inbox error")
		return
	}
	respondWithJSON(w, http.StatusOK, InboxResponse{BaseResponse{Ok: true}, views})
}

// Get returns a request to its volunteer or to one of its target organizations.
func (h *RequestHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	status, err := h.requestService.GetRequest(ctx, chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, r, err, "Request lookup error")
		return
	}

	userID := middleware.UserID(ctx)
	switch middleware.UserType(ctx) {
	case model.UserTypeVolunteer:
		if status.Request.VolunteerID != userID {
			handleError(w, r, domain.ErrUnauthorized, "Request lookup denied")
			return
		}
	case model.UserTypeOrganization:
		if !slices.Contains([]string(status.Request.OrganizationIDs), userID) {
			handleError(w, r, domain.ErrUnauthorized, "Request lookup denied")
			return
		}
		// organizations only see their own leg
		legs := status.Legs[:0:0]
		for _, leg := range status.Legs {
			if leg.OrganizationID == userID {
				legs = append(legs, leg)
			}
		}
		status.Legs = legs
	}
	respondWithJSON(w, http.StatusOK, RequestStatusResponse{BaseResponse{Ok: true}, status})
}

func (h *RequestHandler) Approve(w http.ResponseWriter, r *http.Request) {
	out, err := h.requestService.Approve(r.Context(), chi.URLParam(r, "id"), middleware.UserID(r.Context()))
	var approvalErr *domain.ApprovalError
	switch {
	case err == nil:
		respondWithJSON(w, http.StatusOK, LegResponse{BaseResponse{Ok: true}, out.Leg, out.Post})
	case errors.As(err, &approvalErr) && out != nil:
		slog.ErrorContext(r.Context(), "Approval without post", "error", err, "requestID", chmw.GetReqID(r.Context()))
		code := CodePostNotCreated
		respondWithJSON(w, http.StatusInternalServerError, ApprovalFailedResponse{
			ErrorResponse: ErrorResponse{Error: domain.ErrPostNotCreated.Error(), Code: &code},
			Leg:           out.Leg,
		})
	default:
		handleError(w, r, err, "Approval error")
	}
}

func (h *RequestHandler) Reject(w http.ResponseWriter, r *http.Request) {
	leg, err := h.requestService.Reject(r.Context(), chi.URLParam(r, "id"), middleware.UserID(r.Context()))
	if err != nil {
		handleError(w, r, err, "Rejection error")
		return
	}
	respondWithJSON(w, http.StatusOK, LegResponse{BaseResponse: BaseResponse{Ok: true}, Leg: leg})
}
