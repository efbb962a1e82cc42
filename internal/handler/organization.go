package handler

import (
	"net/http"

	"github.com/dangerclosesec/tounesna/internal/middleware"
	"github.com/dangerclosesec/tounesna/internal/model"
	"github.com/dangerclosesec/tounesna/internal/service"
	"github.com/go-chi/chi/v5"
)

type OrganizationHandler struct {
	authService         *service.AuthService
	organizationService *service.OrganizationService
	followService       *service.FollowService
	ratingService       *service.RatingService
	postService         *service.PostService
}

func NewOrganizationHandler(
	authService *service.AuthService,
	organizationService *service.OrganizationService,
	followService *service.FollowService,
	ratingService *service.RatingService,
	postService *service.PostService,
) *OrganizationHandler {
	return &OrganizationHandler{
		authService:         authService,
		organizationService: organizationService,
		followService:       followService,
		ratingService:       ratingService,
		postService:         postService,
	}
}

type OrganizationResponse struct {
	BaseResponse
	Organization *model.Organization `json:"organization"`
	Following    *bool               `json:"following,omitempty"`
	Rated        *bool               `json:"rated,omitempty"`
}

type OrganizationsResponse struct {
	BaseResponse
	Organizations []*model.Organization `json:"organizations"`
}

type FollowersResponse struct {
	BaseResponse
	OrganizationID string             `json:"organization_id"`
	Count          int64              `json:"count"`
	Followers      []*model.Volunteer `json:"followers,omitempty"`
}

type RatingsResponse struct {
	BaseResponse
	Ratings []*model.Rating `json:"ratings"`
}

type RatingResponse struct {
	BaseResponse
	Rating       *model.Rating       `json:"rating"`
	Organization *model.Organization `json:"organization"`
}

func (h *OrganizationHandler) Search(w http.ResponseWriter, r *http.Request) {
	orgs, err := h.organizationService.SearchOrganizations(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		handleError(w, r, err, "Organization search error")
		return
	}
	respondWithJSON(w, http.StatusOK, OrganizationsResponse{BaseResponse{Ok: true}, orgs})
}

// Get returns an organization. Volunteers also learn whether they
// follow and have rated it.
func (h *OrganizationHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	org, err := h.organizationService.GetOrganization(ctx, id)
	if err != nil {
		handleError(w, r, err, "Organization lookup error")
		return
	}

	resp := OrganizationResponse{BaseResponse: BaseResponse{Ok: true}, Organization: org}
	if middleware.UserType(ctx) == model.UserTypeVolunteer {
		volunteerID := middleware.UserID(ctx)
		following, err := h.followService.IsFollowing(ctx, volunteerID, id)
		if err != nil {
			handleError(w, r, err, "Follow lookup error")
			return
		}
		rated, err := h.ratingService.HasRated(ctx, volunteerID, id)
		if err != nil {
			handleError(w, r, err, "Rating lookup error")
			return
		}
		resp.Following, resp.Rated = &following, &rated
	}

	respondWithJSON(w, http.StatusOK, resp)
}

func (h *OrganizationHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	var input service.UpdateOrganizationInput
	if !decode(w, r, &input) {
		return
	}

	org, err := h.authService.UpdateOrganization(r.Context(), middleware.UserID(r.Context()), input)
	if err != nil {
		handleError(w, r, err, "Organization update error")
		return
	}
	respondWithJSON(w, http.StatusOK, OrganizationResponse{BaseResponse: BaseResponse{Ok: true}, Organization: org})
}

func (h *OrganizationHandler) Follow(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orgID := chi.URLParam(r, "id")

	if _, err := h.followService.Follow(ctx, middleware.UserID(ctx), orgID); err != nil {
		handleError(w, r, err, "Follow error")
		return
	}

	count, err := h.followService.FollowersCount(ctx, orgID)
	if err != nil {
		handleError(w, r, err, "Followers count error")
		return
	}
	respondWithJSON(w, http.StatusCreated, FollowersResponse{BaseResponse: BaseResponse{Ok: true}, OrganizationID: orgID, Count: count})
}

func (h *OrganizationHandler) Unfollow(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orgID := chi.URLParam(r, "id")

	if err := h.followService.Unfollow(ctx, middleware.UserID(ctx), orgID); err != nil {
		handleError(w, r, err, "Unfollow error")
		return
	}

	count, err := h.followService.FollowersCount(ctx, orgID)
	if err != nil {
		handleError(w, r, err, "Followers count error")
		return
	}
	respondWithJSON(w, http.StatusOK, FollowersResponse{BaseResponse: BaseResponse{Ok: true}, OrganizationID: orgID, Count: count})
}

// Followers lists the followers of an organization. Only the organization
// itself sees the list, everyone else gets the count.
func (h *OrganizationHandler) Followers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orgID := chi.URLParam(r, "id")

	count, err := h.followService.FollowersCount(ctx, orgID)
	if err != nil {
		handleError(w, r, err, "Followers count error")
		return
	}

	resp := FollowersResponse{BaseResponse: BaseResponse{Ok: true}, OrganizationID: orgID, Count: count}
	if middleware.UserType(ctx) == model.UserTypeOrganization && middleware.UserID(ctx) == orgID {
		if resp.Followers, err = h.followService.Followers(ctx, orgID); err != nil {
			handleError(w, r, err, "Followers lookup error")
			return
		}
	}
	respondWithJSON(w, http.StatusOK, resp)
}

func (h *OrganizationHandler) Rate(w http.ResponseWriter, r *http.Request) {
	var input service.AddRatingInput
	if !decode(w, r, &input) {
		return
	}
	input.VolunteerID = middleware.UserID(r.Context())
	input.OrganizationID = chi.URLParam(r, "id")

	out, err := h.ratingService.AddRating(r.Context(), input)
	if err != nil {
		handleError(w, r, err, "Rating error")
		return
	}
	respondWithJSON(w, http.StatusCreated, RatingResponse{BaseResponse{Ok: true}, out.Rating, out.Organization})
}

func (h *OrganizationHandler) Ratings(w http.ResponseWriter, r *http.Request) {
	ratings, err := h.ratingService.RatingsForOrganization(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, r, err, "Ratings lookup error")
		return
	}
	respondWithJSON(w, http.StatusOK, RatingsResponse{BaseResponse{Ok: true}, ratings})
}

func (h *OrganizationHandler) Posts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.postService.PostsByOrganization(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, r, err, "Posts lookup error")
		return
	}
	respondWithJSON(w, http.StatusOK, PostsResponse{BaseResponse{Ok: true}, posts})
}
