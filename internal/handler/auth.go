// internal/handler/auth.go
package handler

import (
	"net/http"

	"github.com/dangerclosesec/tounesna/internal/middleware"
	"github.com/dangerclosesec/tounesna/internal/model"
	"github.com/dangerclosesec/tounesna/internal/service"
)

type AuthHandler struct {
	authService         *service.AuthService
	volunteerService    *service.VolunteerService
	organizationService *service.OrganizationService
}

func NewAuthHandler(
	authService *service.AuthService,
	volunteerService *service.VolunteerService,
	organizationService *service.OrganizationService,
) *AuthHandler {
	return &AuthHandler{
		authService:         authService,
		volunteerService:    volunteerService,
		organizationService: organizationService,
	}
}

type AccountResponse struct {
	BaseResponse
	UserType     model.UserType      `json:"user_type"`
	Volunteer    *model.Volunteer    `json:"volunteer,omitempty"`
	Organization *model.Organization `json:"organization,omitempty"`
	Token        string              `json:"token,omitempty"`
}

func (h *AuthHandler) RegisterVolunteer(w http.ResponseWriter, r *http.Request) {
	var input service.RegisterVolunteerInput
	if !decode(w, r, &input) {
		return
	}

	volunteer, err := h.authService.RegisterVolunteer(r.Context(), input)
	if err != nil {
		handleError(w, r, err, "Volunteer registration error")
		return
	}

	respondWithJSON(w, http.StatusCreated, AccountResponse{
		BaseResponse: BaseResponse{Ok: true},
		UserType:     model.UserTypeVolunteer,
		Volunteer:    volunteer,
	})
}

func (h *AuthHandler) RegisterOrganization(w http.ResponseWriter, r *http.Request) {
	var input service.RegisterOrganizationInput
	if !decode(w, r, &input) {
		return
	}

	org, err := h.authService.RegisterOrganization(r.Context(), input)
	if err != nil {
		handleError(w, r, err, "Organization registration error")
		return
	}

	respondWithJSON(w, http.StatusCreated, AccountResponse{
		BaseResponse: BaseResponse{Ok: true},
		UserType:     model.UserTypeOrganization,
		Organization: org,
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input service.LoginInput
	if !decode(w, r, &input) {
		return
	}

	out, err := h.authService.Login(r.Context(), input)
	if err != nil {
		handleError(w, r, err, "Login error")
		return
	}

	respondWithJSON(w, http.StatusOK, AccountResponse{
		BaseResponse: BaseResponse{Ok: true},
		UserType:     out.UserType,
		Volunteer:    out.Volunteer,
		Organization: out.Organization,
		Token:        out.Token,
	})
}

// Me returns the profile of the authenticated account.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	resp := AccountResponse{
		BaseResponse: BaseResponse{Ok: true},
		UserType:     middleware.UserType(ctx),
	}

	var err error
	switch resp.UserType {
	case model.UserTypeVolunteer:
		resp.Volunteer, err = h.volunteerService.GetVolunteer(ctx, middleware.UserID(ctx))
	case model.UserTypeOrganization:
		resp.Organization, err = h.organizationService.GetOrganization(ctx, middleware.UserID(ctx))
	default:
		respondWithErrorCode(w, http.StatusUnauthorized, "Unknown account type", CodeUnauthorized)
		return
	}
	if err != nil {
		handleError(w, r, err, "Profile lookup error")
		return
	}

	respondWithJSON(w, http.StatusOK, resp)
}
