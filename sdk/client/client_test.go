package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNewClient(t *testing.T) {
	// Test with nil config
	client := NewClient(nil)
	if client.config.BaseURL != "http://localhost:8080" {
		t.Errorf("Expected default BaseURL, got %s", client.config.BaseURL)
	}
	if client.client != http.DefaultClient {
		t.Error("Expected default HTTP client")
	}

	// Test with custom config
	customConfig := &Config{
		BaseURL:    "http://example.com",
		Timeout:    5 * time.Second,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
		Token:      "abc",
	}
	client = NewClient(customConfig)
	if client.config.BaseURL != "http://example.com" {
		t.Errorf("Expected custom BaseURL, got %s", client.config.BaseURL)
	}
	if client.client != customConfig.HTTPClient {
		t.Error("Expected custom HTTP client")
	}
	if client.Token() != "abc" {
		t.Errorf("Expected token from config, got %q", client.Token())
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func TestLoginKeepsToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/login":
			var req map[string]string
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				t.Errorf("Failed to decode request: %v", err)
			}
			if req["user_type"] != "volunteer" || req["email"] != "amira@example.tn" {
				t.Errorf("Unexpected login body: %v", req)
			}
			writeJSON(w, http.StatusOK, map[string]interface{}{
				"ok":        true,
				"user_type": "volunteer",
				"volunteer": map[string]string{"id": "v1", "name": "Amira"},
				"token":     "jwt-token",
			})
		case "/api/notifications/unread/count":
			if got := r.Header.Get("Authorization"); got != "Bearer jwt-token" {
				t.Errorf("Expected bearer token, got %q", got)
			}
			writeJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "count": 3})
		default:
			t.Errorf("Unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	client := NewClient(&Config{BaseURL: server.URL})
	account, err := client.Login(context.Background(), "volunteer", "amira@example.tn", "volunteer2024")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if account.ID() != "v1" {
		t.Errorf("Expected volunteer id v1, got %s", account.ID())
	}

	count, err := client.UnreadCount(context.Background())
	if err != nil {
		t.Fatalf("UnreadCount failed: %v", err)
	}
	if count != 3 {
		t.Errorf("Expected 3 unread, got %d", count)
	}
}

func TestSubmitRequestPartialFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/requests" {
			t.Errorf("Unexpected request %s %s", r.Method, r.URL.Path)
		}
		writeJSON(w, http.StatusMultiStatus, map[string]interface{}{
			"ok":      false,
			"request": map[string]interface{}{"id": "r1", "pending_legs": 1},
			"legs":    []map[string]string{{"id": "l1", "organization_id": "o1", "status": "PENDING"}},
			"failed":  []map[string]string{{"organization_id": "o2", "error": "organization not found"}},
		})
	}))
	defer server.Close()

	client := NewClient(&Config{BaseURL: server.URL})
	result, err := client.SubmitRequest(context.Background(), &SubmitRequest{
		OrganizationIDs: []string{"o1", "o2"},
		Title:           "Food drive",
	})

	var partial *PartialFailureError
	if !errors.As(err, &partial) {
		t.Fatalf("Expected PartialFailureError, got %v", err)
	}
	if len(partial.Failed) != 1 || partial.Failed[0].OrganizationID != "o2" {
		t.Errorf("Unexpected failures: %+v", partial.Failed)
	}
	if result == nil || len(result.Legs) != 1 || result.Request.PendingLegs != 1 {
		t.Errorf("Expected the delivered leg with the error, got %+v", result)
	}
}

func TestSubmitRequestValidation(t *testing.T) {
	client := NewClient(&Config{BaseURL: "http://unused"})

	if _, err := client.SubmitRequest(context.Background(), nil); err == nil {
		t.Error("Expected error for nil request")
	}
	if _, err := client.SubmitRequest(context.Background(), &SubmitRequest{Title: "x"}); err == nil {
		t.Error("Expected error without organizations")
	}
	if _, err := client.Rate(context.Background(), "o1", &RateRequest{Score: 6}); err == nil {
		t.Error("Expected error for score out of range")
	}
}

func TestAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusConflict, map[string]interface{}{
			"ok":         false,
			"error":      "request already resolved: invalid status transition",
			"error_code": "invalid_transition",
		})
	}))
	defer server.Close()

	client := NewClient(&Config{BaseURL: server.URL})
	_, err := client.Approve(context.Background(), "l1")

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Expected APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusConflict {
		t.Errorf("Expected 409, got %d", apiErr.StatusCode)
	}
	if !IsCode(err, "invalid_transition") {
		t.Errorf("Expected invalid_transition code, got %q", apiErr.Code)
	}
}

func TestAPIErrorWithoutBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(&Config{BaseURL: server.URL})
	err := client.MarkRead(context.Background(), "n1")

	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusBadGateway {
		t.Fatalf("Expected generic 502 APIError, got %v", err)
	}
}

func TestInboxQuery(t *testing.T) {
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if r.URL.Path != "/api/requests/inbox" {
			t.Errorf("Unexpected path %s", r.URL.Path)
		}
		if q.Get("location") != "Sfax" || q.Get("needs") != "food,water" || q.Get("sort") != "priority_high" {
			t.Errorf("Unexpected query %s", r.URL.RawQuery)
		}
		if q.Get("from") != "2026-03-01T00:00:00Z" {
			t.Errorf("Unexpected from %q", q.Get("from"))
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"ok": true,
			"requests": []map[string]interface{}{
				{"leg": map[string]string{"id": "l1", "status": "PENDING"}, "request": map[string]string{"id": "r1"}},
			},
		})
	}))
	defer server.Close()

	client := NewClient(&Config{BaseURL: server.URL, Token: "t"})
	views, err := client.Inbox(context.Background(), InboxFilter{
		Location: "Sfax",
		Needs:    []string{"food", "water"},
		From:     &from,
		Sort:     "priority_high",
	})
	if err != nil {
		t.Fatalf("Inbox failed: %v", err)
	}
	if len(views) != 1 || views[0].Leg.ID != "l1" {
		t.Errorf("Unexpected inbox %+v", views)
	}
}
