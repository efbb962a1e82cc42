package handler

import (
	"net/http"
	"strings"

	"github.com/dangerclosesec/tounesna/internal/middleware"
	"github.com/dangerclosesec/tounesna/internal/model"
	"github.com/dangerclosesec/tounesna/internal/service"
	"github.com/go-chi/chi/v5"
)

const defaultRecentPosts = 10

type PostHandler struct {
	postService *service.PostService
}

func NewPostHandler(postService *service.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

type PostResponse struct {
	BaseResponse
	Post *model.Post `json:"post"`
}

type PostsResponse struct {
	BaseResponse
	Posts []*model.Post `json:"posts"`
}

func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.CreatePostInput
	if !decode(w, r, &input) {
		return
	}
	input.OrganizationID = middleware.UserID(r.Context())

	post, err := h.postService.CreatePost(r.Context(), input)
	if err != nil {
		handleError(w, r, err, "Post creation error")
		return
	}
	respondWithJSON(w, http.StatusCreated, PostResponse{BaseResponse{Ok: true}, post})
}

func (h *PostHandler) Get(w http.ResponseWriter, r *http.Request) {
	post, err := h.postService.GetPost(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, r, err, "Post lookup error")
		return
	}
	respondWithJSON(w, http.StatusOK, PostResponse{BaseResponse{Ok: true}, post})
}

func (h *PostHandler) Recent(w http.ResponseWriter, r *http.Request) {
	posts, err := h.postService.RecentPosts(r.Context(), queryInt(r, "limit", defaultRecentPosts))
	if err != nil {
		handleError(w, r, err, "Recent posts error")
		return
	}
	respondWithJSON(w, http.StatusOK, PostsResponse{BaseResponse{Ok: true}, posts})
}

func (h *PostHandler) Search(w http.ResponseWriter, r *http.Request) {
	posts, err := h.postService.SearchPosts(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		handleError(w, r, err, "Post search error")
		return
	}
	respondWithJSON(w, http.StatusOK, PostsResponse{BaseResponse{Ok: true}, posts})
}

// Dashboard filters active posts by location and a comma separated category list.
func (h *PostHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	var categories []model.Category
	if raw := r.URL.Query().Get("category"); raw != "" {
		for _, c := range strings.Split(raw, ",") {
			categories = append(categories, model.Category(strings.ToUpper(strings.TrimSpace(c))))
		}
	}

	posts, err := h.postService.Dashboard(r.Context(), r.URL.Query().Get("location"), categories)
	if err != nil {
		handleError(w, r, err, "Dashboard error")
		return
	}
	respondWithJSON(w, http.StatusOK, PostsResponse{BaseResponse{Ok: true}, posts})
}
