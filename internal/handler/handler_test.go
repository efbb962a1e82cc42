package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dangerclosesec/tounesna/internal/auth"
	"github.com/dangerclosesec/tounesna/internal/config"
	"github.com/dangerclosesec/tounesna/internal/counter"
	"github.com/dangerclosesec/tounesna/internal/handler"
	"github.com/dangerclosesec/tounesna/internal/repository"
	"github.com/dangerclosesec/tounesna/internal/service"
	"github.com/dangerclosesec/tounesna/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPassword = "volunteer2024"

// newTestServer serves the whole API over an in-memory store.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	s := store.NewMemoryStore()
	volunteers := repository.NewVolunteerRepository(s)
	orgs := repository.NewOrganizationRepository(s)
	follows := repository.NewFollowRepository(s)

	cfg := &config.Config{}
	cfg.Organizations.AutoApprove = true

	tokenManager := auth.NewTokenManager("test_secret", time.Hour)
	cache := service.NewCacheService(service.CacheConfig{TTL: time.Minute, Size: 64})
	t.Cleanup(cache.Close)

	notifications := service.NewNotificationService(repository.NewNotificationRepository(s), nil, "", nil)
	authService := service.NewAuthService(volunteers, orgs, repository.NewEmailClaimRepository(s), s,
		auth.NewPasswordHasher(), tokenManager, cache, cfg, nil)
	volunteerService := service.NewVolunteerService(volunteers)
	organizationService := service.NewOrganizationService(orgs, cache)
	followService := service.NewFollowService(follows, volunteers, orgs, s, counter.Nop{}, cache, notifications, nil)
	ratingService := service.NewRatingService(repository.NewRatingRepository(s), volunteers, orgs, s, cache, notifications, nil)
	postService := service.NewPostService(repository.NewPostRepository(s), orgs, follows, notifications, nil)
	requestService := service.NewRequestService(repository.NewRequestRepository(s), volunteers, orgs, s, postService, notifications, nil)

	handlers := &handler.Handlers{
		Auth:          handler.NewAuthHandler(authService, volunteerService, organizationService),
		Organizations: handler.NewOrganizationHandler(authService, organizationService, followService, ratingService, postService),
		Volunteers:    handler.NewVolunteerHandler(authService, volunteerService, followService),
		Requests:      handler.NewRequestHandler(requestService),
		Posts:         handler.NewPostHandler(postService),
		Notifications: handler.NewNotificationHandler(notifications),
	}

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		handlers.Routes(r, tokenManager)
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

type apiResult struct {
	Status int
	Body   map[string]any
}

func call(t *testing.T, srv *httptest.Server, method, path, token string, body any) apiResult {
	t.Helper()

	var payload *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		payload = bytes.NewReader(raw)
	} else {
		payload = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, srv.URL+"/api"+path, payload)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	out := apiResult{Status: resp.StatusCode, Body: map[string]any{}}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out.Body))
	return out
}

type account struct {
	ID    string
	Token string
}

func registerVolunteer(t *testing.T, srv *httptest.Server, name string) account {
	t.Helper()
	email := name + "@example.tn"
	res := call(t, srv, http.MethodPost, "/auth/volunteers", "", map[string]any{
		"name": name, "email": email, "password": testPassword, "location": "Tunis",
	})
	require.Equal(t, http.StatusCreated, res.Status, res.Body)

	login := call(t, srv, http.MethodPost, "/auth/login", "", map[string]any{
		"user_type": "volunteer", "email": email, "password": testPassword,
	})
	require.Equal(t, http.StatusOK, login.Status, login.Body)
	return account{
		ID:    login.Body["volunteer"].(map[string]any)["id"].(string),
		Token: login.Body["token"].(string),
	}
}

func registerOrganization(t *testing.T, srv *httptest.Server, name string) account {
	t.Helper()
	email := name + "@org.tn"
	res := call(t, srv, http.MethodPost, "/auth/organizations", "", map[string]any{
		"name": name, "email": email, "password": testPassword, "location": "Sfax",
	})
	require.Equal(t, http.StatusCreated, res.Status, res.Body)

	login := call(t, srv, http.MethodPost, "/auth/login", "", map[string]any{
		"user_type": "organization", "email": email, "password": testPassword,
	})
	require.Equal(t, http.StatusOK, login.Status, login.Body)
	return account{
		ID:    login.Body["organization"].(map[string]any)["id"].(string),
		Token: login.Body["token"].(string),
	}
}

func errorCode(res apiResult) string {
	code, _ := res.Body["error_code"].(string)
	return code
}

func TestAuthEndpoints(t *testing.T) {
	srv := newTestServer(t)
	vol := registerVolunteer(t, srv, "amira")

	t.Run("duplicate email", func(t *testing.T) {
		res := call(t, srv, http.MethodPost, "/auth/volunteers", "", map[string]any{
			"name": "amira", "email": "AMIRA@example.tn", "password": testPassword,
		})
		assert.Equal(t, http.StatusConflict, res.Status)
		assert.Equal(t, handler.CodeAlreadyExists, errorCode(res))
	})

	t.Run("weak password", func(t *testing.T) {
		res := call(t, srv, http.MethodPost, "/auth/volunteers", "", map[string]any{
			"name": "sami", "email": "sami@example.tn", "password": "short",
		})
		assert.Equal(t, http.StatusBadRequest, res.Status)
		assert.Equal(t, handler.CodeInvalidInput, errorCode(res))
	})

	t.Run("wrong password", func(t *testing.T) {
		res := call(t, srv, http.MethodPost, "/auth/login", "", map[string]any{
			"user_type": "volunteer", "email": "amira@example.tn", "password": "wrongpass123",
		})
		assert.Equal(t, http.StatusUnauthorized, res.Status)
	})

	t.Run("me", func(t *testing.T) {
		res := call(t, srv, http.MethodGet, "/me", vol.Token, nil)
		require.Equal(t, http.StatusOK, res.Status)
		assert.Equal(t, "volunteer", res.Body["user_type"])
		assert.Equal(t, vol.ID, res.Body["volunteer"].(map[string]any)["id"])
		assert.NotContains(t, res.Body["volunteer"], "password_hash")
	})

	t.Run("missing token", func(t *testing.T) {
		res := call(t, srv, http.MethodGet, "/me", "", nil)
		assert.Equal(t, http.StatusUnauthorized, res.Status)
	})
}

func TestFollowAndRateEndpoints(t *testing.T) {
	srv := newTestServer(t)
	vol := registerVolunteer(t, srv, "amira")
	org := registerOrganization(t, srv, "croissant")

	res := call(t, srv, http.MethodPost, "/organizations/"+org.ID+"/follow", vol.Token, nil)
	require.Equal(t, http.StatusCreated, res.Status, res.Body)
	assert.EqualValues(t, 1, res.Body["count"])

	res = call(t, srv, http.MethodPost, "/organizations/"+org.ID+"/follow", vol.Token, nil)
	assert.Equal(t, http.StatusConflict, res.Status)

	res = call(t, srv, http.MethodPost, "/organizations/"+org.ID+"/follow", org.Token, nil)
	assert.Equal(t, http.StatusForbidden, res.Status)

	res = call(t, srv, http.MethodPost, "/organizations/"+org.ID+"/ratings", vol.Token, map[string]any{"score": 6})
	assert.Equal(t, http.StatusBadRequest, res.Status)
	assert.Equal(t, handler.CodeOutOfRange, errorCode(res))

	res = call(t, srv, http.MethodPost, "/organizations/"+org.ID+"/ratings", vol.Token, map[string]any{"score": 4, "comment": "great"})
	require.Equal(t, http.StatusCreated, res.Status, res.Body)
	updated := res.Body["organization"].(map[string]any)
	assert.EqualValues(t, 4, updated["rating"])
	assert.EqualValues(t, 1, updated["rating_count"])

	res = call(t, srv, http.MethodGet, "/organizations/"+org.ID, vol.Token, nil)
	require.Equal(t, http.StatusOK, res.Status)
	assert.Equal(t, true, res.Body["following"])
	assert.Equal(t, true, res.Body["rated"])
	assert.EqualValues(t, 1, res.Body["organization"].(map[string]any)["followers_count"])

	res = call(t, srv, http.MethodGet, "/organizations/"+org.ID+"/followers", org.Token, nil)
	require.Equal(t, http.StatusOK, res.Status)
	assert.Len(t, res.Body["followers"], 1)

	res = call(t, srv, http.MethodDelete, "/organizations/"+org.ID+"/follow", vol.Token, nil)
	require.Equal(t, http.StatusOK, res.Status)
	assert.EqualValues(t, 0, res.Body["count"])

	res = call(t, srv, http.MethodPost, "/organizations/missing/follow", vol.Token, nil)
	assert.Equal(t, http.StatusNotFound, res.Status)
}

func TestRequestEndpoints(t *testing.T) {
	srv := newTestServer(t)
	vol := registerVolunteer(t, srv, "amira")
	first := registerOrganization(t, srv, "croissant")
	second := registerOrganization(t, srv, "scouts")

	res := call(t, srv, http.MethodPost, "/requests", vol.Token, map[string]any{
		"organization_ids": []string{first.ID, second.ID, "missing"},
		"title":            "Food drive",
		"location":         "Tunis",
		"priority":         "HIGH",
	})
	require.Equal(t, http.StatusMultiStatus, res.Status, res.Body)
	assert.Equal(t, false, res.Body["ok"])
	assert.Len(t, res.Body["legs"], 2)
	require.Len(t, res.Body["failed"], 1)
	assert.Equal(t, "missing", res.Body["failed"].([]any)[0].(map[string]any)["organization_id"])
	assert.EqualValues(t, 2, res.Body["request"].(map[string]any)["pending_legs"])
	requestID := res.Body["request"].(map[string]any)["id"].(string)

	inbox := call(t, srv, http.MethodGet, "/requests/inbox?priority=high", first.Token, nil)
	require.Equal(t, http.StatusOK, inbox.Status)
	require.Len(t, inbox.Body["requests"], 1)
	firstLeg := inbox.Body["requests"].([]any)[0].(map[string]any)["leg"].(map[string]any)["id"].(string)

	inbox = call(t, srv, http.MethodGet, "/requests/inbox", second.Token, nil)
	require.Len(t, inbox.Body["requests"], 1)
	secondLeg := inbox.Body["requests"].([]any)[0].(map[string]any)["leg"].(map[string]any)["id"].(string)

	t.Run("other organization cannot approve", func(t *testing.T) {
		res := call(t, srv, http.MethodPost, "/requests/legs/"+firstLeg+"/approve", second.Token, nil)
		assert.Equal(t, http.StatusForbidden, res.Status)
	})

	t.Run("volunteer cannot approve", func(t *testing.T) {
		res := call(t, srv, http.MethodPost, "/requests/legs/"+firstLeg+"/approve", vol.Token, nil)
		assert.Equal(t, http.StatusForbidden, res.Status)
	})

	t.Run("approve publishes a post", func(t *testing.T) {
		res := call(t, srv, http.MethodPost, "/requests/legs/"+firstLeg+"/approve", first.Token, nil)
		require.Equal(t, http.StatusOK, res.Status, res.Body)
		assert.Equal(t, "APPROVED", res.Body["leg"].(map[string]any)["status"])
		post := res.Body["post"].(map[string]any)
		assert.Equal(t, "Food drive", post["title"])
		assert.Equal(t, first.ID, post["organization_id"])
	})

	t.Run("approve twice conflicts", func(t *testing.T) {
		res := call(t, srv, http.MethodPost, "/requests/legs/"+firstLeg+"/approve", first.Token, nil)
		assert.Equal(t, http.StatusConflict, res.Status)
		assert.Equal(t, handler.CodeInvalidTransition, errorCode(res))
	})

	t.Run("reject sibling", func(t *testing.T) {
		res := call(t, srv, http.MethodPost, "/requests/legs/"+secondLeg+"/reject", second.Token, nil)
		require.Equal(t, http.StatusOK, res.Status)
		assert.Equal(t, "REJECTED", res.Body["leg"].(map[string]any)["status"])
	})

	t.Run("volunteer sees resolved request", func(t *testing.T) {
		res := call(t, srv, http.MethodGet, "/requests/"+requestID, vol.Token, nil)
		require.Equal(t, http.StatusOK, res.Status)
		assert.Equal(t, true, res.Body["resolved"])
		assert.Len(t, res.Body["legs"], 2)
		assert.EqualValues(t, 0, res.Body["request"].(map[string]any)["pending_legs"])
	})

	t.Run("organization sees only its leg", func(t *testing.T) {
		res := call(t, srv, http.MethodGet, "/requests/"+requestID, second.Token, nil)
		require.Equal(t, http.StatusOK, res.Status)
		assert.Len(t, res.Body["legs"], 1)
	})

	t.Run("bad inbox date", func(t *testing.T) {
		res := call(t, srv, http.MethodGet, "/requests/inbox?from=yesterday", first.Token, nil)
		assert.Equal(t, http.StatusBadRequest, res.Status)
	})
}

func TestSubmitRequestErrors(t *testing.T) {
	srv := newTestServer(t)
	vol := registerVolunteer(t, srv, "amira")

	res := call(t, srv, http.MethodPost, "/requests", vol.Token, map[string]any{"title": "Nobody"})
	assert.Equal(t, http.StatusBadRequest, res.Status)

	res = call(t, srv, http.MethodPost, "/requests", vol.Token, map[string]any{
		"organization_ids": []string{"missing"},
		"title":            "Nobody",
	})
	assert.Equal(t, http.StatusNotFound, res.Status)

	mine := call(t, srv, http.MethodGet, "/requests", vol.Token, nil)
	require.Equal(t, http.StatusOK, mine.Status)
	assert.Empty(t, mine.Body["requests"])
}

func TestPostAndNotificationEndpoints(t *testing.T) {
	srv := newTestServer(t)
	vol := registerVolunteer(t, srv, "amira")
	org := registerOrganization(t, srv, "croissant")

	res := call(t, srv, http.MethodPost, "/organizations/"+org.ID+"/follow", vol.Token, nil)
	require.Equal(t, http.StatusCreated, res.Status)

	start := time.Now().Add(time.Hour)
	res = call(t, srv, http.MethodPost, "/posts", org.Token, map[string]any{
		"title":      "Beach cleanup",
		"category":   "ENVIRONMENT",
		"location":   "Sfax",
		"start_date": start,
		"end_date":   start.Add(48 * time.Hour),
	})
	require.Equal(t, http.StatusCreated, res.Status, res.Body)
	postID := res.Body["post"].(map[string]any)["id"].(string)

	res = call(t, srv, http.MethodPost, "/posts", vol.Token, map[string]any{"title": "nope"})
	assert.Equal(t, http.StatusForbidden, res.Status)

	res = call(t, srv, http.MethodGet, "/posts/"+postID, vol.Token, nil)
	require.Equal(t, http.StatusOK, res.Status)

	res = call(t, srv, http.MethodGet, "/posts/dashboard?location=sfax&category=environment", vol.Token, nil)
	require.Equal(t, http.StatusOK, res.Status)
	assert.Len(t, res.Body["posts"], 1)

	res = call(t, srv, http.MethodGet, "/posts/search?q=beach", vol.Token, nil)
	require.Equal(t, http.StatusOK, res.Status)
	assert.Len(t, res.Body["posts"], 1)

	res = call(t, srv, http.MethodGet, "/organizations/"+org.ID+"/posts", vol.Token, nil)
	require.Equal(t, http.StatusOK, res.Status)
	assert.Len(t, res.Body["posts"], 1)

	res = call(t, srv, http.MethodGet, "/notifications/unread/count", vol.Token, nil)
	require.Equal(t, http.StatusOK, res.Status)
	assert.EqualValues(t, 1, res.Body["count"])

	res = call(t, srv, http.MethodGet, "/notifications?unread=true", vol.Token, nil)
	require.Equal(t, http.StatusOK, res.Status)
	notes := res.Body["notifications"].([]any)
	require.Len(t, notes, 1)
	noteID := notes[0].(map[string]any)["id"].(string)

	res = call(t, srv, http.MethodPost, "/notifications/"+noteID+"/read", org.Token, nil)
	assert.Equal(t, http.StatusForbidden, res.Status)

	res = call(t, srv, http.MethodPost, "/notifications/"+noteID+"/read", vol.Token, nil)
	require.Equal(t, http.StatusOK, res.Status)

	res = call(t, srv, http.MethodPost, "/notifications/read", org.Token, nil)
	require.Equal(t, http.StatusOK, res.Status)
	assert.EqualValues(t, 2, res.Body["count"])
}
