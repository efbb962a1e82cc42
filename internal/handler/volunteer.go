package handler

import (
	"net/http"

	"github.com/dangerclosesec/tounesna/internal/middleware"
	"github.com/dangerclosesec/tounesna/internal/model"
	"github.com/dangerclosesec/tounesna/internal/service"
	"github.com/go-chi/chi/v5"
)

type VolunteerHandler struct {
	authService      *service.AuthService
	volunteerService *service.VolunteerService
	followService    *service.FollowService
}

func NewVolunteerHandler(
	authService *service.AuthService,
	volunteerService *service.VolunteerService,
	followService *service.FollowService,
) *VolunteerHandler {
	return &VolunteerHandler{
		authService:      authService,
		volunteerService: volunteerService,
		followService:    followService,
	}
}

type VolunteerResponse struct {
	BaseResponse
	Volunteer *model.Volunteer `json:"volunteer"`
}

type VolunteersResponse struct {
	BaseResponse
	Volunteers []*model.Volunteer `json:"volunteers"`
}

func (h *VolunteerHandler) Search(w http.ResponseWriter, r *http.Request) {
	volunteers, err := h.volunteerService.SearchVolunteers(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		handleError(w, r, err, "Volunteer search error")
		return
	}
	respondWithJSON(w, http.StatusOK, VolunteersResponse{BaseResponse{Ok: true}, volunteers})
}

func (h *VolunteerHandler) Get(w http.ResponseWriter, r *http.Request) {
	volunteer, err := h.volunteerService.GetVolunteer(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, r, err, "Volunteer lookup error")
		return
	}
	respondWithJSON(w, http.StatusOK, VolunteerResponse{BaseResponse{Ok: true}, volunteer})
}

func (h *VolunteerHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	var input service.UpdateVolunteerInput
	if !decode(w, r, &input) {
		return
	}

	volunteer, err := h.authService.UpdateVolunteer(r.Context(), middleware.UserID(r.Context()), input)
	if err != nil {
		handleError(w, r, err, "Volunteer update error")
		return
	}
	respondWithJSON(w, http.StatusOK, VolunteerResponse{BaseResponse{Ok: true}, volunteer})
}

// Following lists the organizations the caller follows.
func (h *VolunteerHandler) Following(w http.ResponseWriter, r *http.Request) {
	orgs, err := h.followService.FollowedOrganizations(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		handleError(w, r, err, "Followed organizations error")
		return
	}
	respondWithJSON(w, http.StatusOK, OrganizationsResponse{BaseResponse{Ok: true}, orgs})
}
