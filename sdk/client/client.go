package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

// Config represents the configuration for the Tounesna API client
type Config struct {
	// BaseURL is the base URL of the API server, without the /api prefix
	BaseURL string
	// HTTPClient is an optional custom HTTP client
	HTTPClient *http.Client
	// Timeout is the default request timeout
	Timeout time.Duration
	// Token is an optional bearer token obtained from a previous login
	Token string
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		BaseURL:    "http://localhost:8080",
		HTTPClient: http.DefaultClient,
		Timeout:    10 * time.Second,
	}
}

// Client talks to the Tounesna API on behalf of one account.
type Client struct {
	config *Config
	client *http.Client

	mu    sync.RWMutex
	token string
}

// NewClient creates a new API client with the given configuration
func NewClient(config *Config) *Client {
	if config == nil {
		config = DefaultConfig()
	}

	client := config.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	return &Client{
		config: config,
		client: client,
		token:  config.Token,
	}
}

// SetToken replaces the bearer token sent with each request.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// Volunteer is the public profile of a volunteer account.
type Volunteer struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Surname   string   `json:"surname"`
	Email     string   `json:"email"`
	Location  string   `json:"location"`
	Interests []string `json:"interests"`
	Skills    []string `json:"skills"`
}

// Organization carries the profile and its denormalized aggregates.
type Organization struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Location       string    `json:"location"`
	Description    string    `json:"description"`
	IsApproved     bool      `json:"is_approved"`
	Rating         float64   `json:"rating"`
	RatingCount    int       `json:"rating_count"`
	FollowersCount int       `json:"followers_count"`
	CreatedAt      time.Time `json:"created_at"`
}

type Post struct {
	ID               string        `json:"id"`
	OrganizationID   string        `json:"organization_id"`
	Title            string        `json:"title"`
	Description      string        `json:"description"`
	Location         string        `json:"location"`
	Category         string        `json:"category"`
	Priority         string        `json:"priority"`
	VolunteersNeeded int           `json:"volunteers_needed"`
	StartDate        time.Time     `json:"start_date"`
	EndDate          time.Time     `json:"end_date"`
	Organization     *Organization `json:"organization,omitempty"`
}

type VolunteerRequest struct {
	ID              string    `json:"id"`
	VolunteerID     string    `json:"volunteer_id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Location        string    `json:"location"`
	Priority        string    `json:"priority"`
	Needs           []string  `json:"needs"`
	OrganizationIDs []string  `json:"organization_ids"`
	PendingLegs     int       `json:"pending_legs"`
	CreatedAt       time.Time `json:"created_at"`
}

// RequestLeg is the copy of a request addressed to one organization.
type RequestLeg struct {
	ID              string     `json:"id"`
	RequestID       string     `json:"request_id"`
	OrganizationID  string     `json:"organization_id"`
	Status          string     `json:"status"`
	ApprovedByOrgID string     `json:"approved_by_org_id,omitempty"`
	CreatedPostID   string     `json:"created_post_id,omitempty"`
	ResolvedAt      *time.Time `json:"resolved_at,omitempty"`
}

type Notification struct {
	ID               string    `json:"id"`
	Type             string    `json:"type"`
	Title            string    `json:"title"`
	Message          string    `json:"message"`
	IsRead           bool      `json:"is_read"`
	RelatedPostID    string    `json:"related_post_id,omitempty"`
	RelatedRequestID string    `json:"related_request_id,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

// Account is returned by registration and login.
type Account struct {
	UserType     string        `json:"user_type"`
	Volunteer    *Volunteer    `json:"volunteer,omitempty"`
	Organization *Organization `json:"organization,omitempty"`
	Token        string        `json:"token,omitempty"`
}

// ID returns the id of whichever profile the account holds.
func (a *Account) ID() string {
	switch {
	case a.Volunteer != nil:
		return a.Volunteer.ID
	case a.Organization != nil:
		return a.Organization.ID
	}
	return ""
}

// RegisterVolunteerRequest represents a volunteer sign up
type RegisterVolunteerRequest struct {
	Name      string   `json:"name"`
	Surname   string   `json:"surname,omitempty"`
	Email     string   `json:"email"`
	Password  string   `json:"password"`
	Location  string   `json:"location,omitempty"`
	Interests []string `json:"interests,omitempty"`
	Skills    []string `json:"skills,omitempty"`
}

// RegisterOrganizationRequest represents an organization sign up
type RegisterOrganizationRequest struct {
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Password    string   `json:"password"`
	Location    string   `json:"location,omitempty"`
	Website     string   `json:"website,omitempty"`
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

func (c *Client) RegisterVolunteer(ctx context.Context, req *RegisterVolunteerRequest) (*Account, error) {
	if req == nil {
		return nil, errors.New("request cannot be nil")
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return nil, errors.New("name, email and password are required")
	}

	var resp Account
	if _, err := c.do(ctx, http.MethodPost, "/auth/volunteers", req, &resp); err != nil {
		return nil, fmt.Errorf("failed to register volunteer: %w", err)
	}
	return &resp, nil
}

func (c *Client) RegisterOrganization(ctx context.Context, req *RegisterOrganizationRequest) (*Account, error) {
	if req == nil {
		return nil, errors.New("request cannot be nil")
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return nil, errors.New("name, email and password are required")
	}

	var resp Account
	if _, err := c.do(ctx, http.MethodPost, "/auth/organizations", req, &resp); err != nil {
		return nil, fmt.Errorf("failed to register organization: %w", err)
	}
	return &resp, nil
}

// Login authenticates and keeps the returned token for later calls.
// userType is "volunteer" or "organization".
func (c *Client) Login(ctx context.Context, userType, email, password string) (*Account, error) {
	req := map[string]string{"user_type": userType, "email": email, "password": password}

	var resp Account
	if _, err := c.do(ctx, http.MethodPost, "/auth/login", req, &resp); err != nil {
		return nil, fmt.Errorf("failed to log in: %w", err)
	}
	c.SetToken(resp.Token)
	return &resp, nil
}

// OrganizationDetails is an organization as seen by the caller.
type OrganizationDetails struct {
	Organization *Organization `json:"organization"`
	Following    *bool         `json:"following,omitempty"`
	Rated        *bool         `json:"rated,omitempty"`
}

func (c *Client) GetOrganization(ctx context.Context, id string) (*OrganizationDetails, error) {
	if id == "" {
		return nil, errors.New("organization id is required")
	}

	var resp OrganizationDetails
	if _, err := c.do(ctx, http.MethodGet, "/organizations/"+url.PathEscape(id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) SearchOrganizations(ctx context.Context, keyword string) ([]Organization, error) {
	var resp struct {
		Organizations []Organization `json:"organizations"`
	}
	if _, err := c.do(ctx, http.MethodGet, "/organizations?q="+url.QueryEscape(keyword), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Organizations, nil
}

type followersResponse struct {
	Count int64 `json:"count"`
}

// Follow follows the organization and returns its new follower count.
func (c *Client) Follow(ctx context.Context, orgID string) (int64, error) {
	var resp followersResponse
	if _, err := c.do(ctx, http.MethodPost, "/organizations/"+url.PathEscape(orgID)+"/follow", nil, &resp); err != nil {
		return 0, err
	}
	return resp.Count, nil
}

// Unfollow stops following the organization and returns its new follower count.
func (c *Client) Unfollow(ctx context.Context, orgID string) (int64, error) {
	var resp followersResponse
	if _, err := c.do(ctx, http.MethodDelete, "/organizations/"+url.PathEscape(orgID)+"/follow", nil, &resp); err != nil {
		return 0, err
	}
	return resp.Count, nil
}

// RateRequest represents a rating of an organization
type RateRequest struct {
	Score     float64 `json:"score"`
	Comment   string  `json:"comment,omitempty"`
	Anonymous bool    `json:"anonymous,omitempty"`
}

// Rate rates an organization and returns it with the updated average.
func (c *Client) Rate(ctx context.Context, orgID string, req *RateRequest) (*Organization, error) {
	if req == nil {
		return nil, errors.New("request cannot be nil")
	}
	if req.Score < 1 || req.Score > 5 {
		return nil, errors.New("score must be between 1 and 5")
	}

	var resp struct {
		Organization *Organization `json:"organization"`
	}
	if _, err := c.do(ctx, http.MethodPost, "/organizations/"+url.PathEscape(orgID)+"/ratings", req, &resp); err != nil {
		return nil, err
	}
	return resp.Organization, nil
}

// SubmitRequest represents a volunteer request sent to one or more organizations
type SubmitRequest struct {
	OrganizationIDs []string `json:"organization_ids"`
	PostID          string   `json:"post_id,omitempty"`
	Title           string   `json:"title"`
	Description     string   `json:"description,omitempty"`
	Location        string   `json:"location,omitempty"`
	Priority        string   `json:"priority,omitempty"`
	Needs           []string `json:"needs,omitempty"`
	Message         string   `json:"message,omitempty"`
}

type FailedLeg struct {
	OrganizationID string `json:"organization_id"`
	Error          string `json:"error"`
}

type SubmitResult struct {
	Request *VolunteerRequest `json:"request"`
	Legs    []RequestLeg      `json:"legs"`
	Failed  []FailedLeg       `json:"failed,omitempty"`
}

// PartialFailureError is returned with the result when only some
// organizations received the request.
type PartialFailureError struct {
	Failed []FailedLeg
}

func (e *PartialFailureError) Error() string {
	ids := make([]string, 0, len(e.Failed))
	for _, f := range e.Failed {
		ids = append(ids, f.OrganizationID)
	}
	return "request not delivered to: " + strings.Join(ids, ", ")
}

// SubmitRequest sends the request to every listed organization. When some
// deliveries fail the result is still returned alongside a *PartialFailureError.
func (c *Client) SubmitRequest(ctx context.Context, req *SubmitRequest) (*SubmitResult, error) {
	if req == nil {
		return nil, errors.New("request cannot be nil")
	}
	if len(req.OrganizationIDs) == 0 || req.Title == "" {
		return nil, errors.New("organization_ids and title are required")
	}

	var resp SubmitResult
	status, err := c.do(ctx, http.MethodPost, "/requests", req, &resp)
	if err != nil {
		return nil, fmt.Errorf("failed to submit request: %w", err)
	}
	if status == http.StatusMultiStatus || len(resp.Failed) > 0 {
		return &resp, &PartialFailureError{Failed: resp.Failed}
	}
	return &resp, nil
}

// RequestStatus is a request with every leg the caller may see.
type RequestStatus struct {
	Request  *VolunteerRequest `json:"request"`
	Legs     []RequestLeg      `json:"legs"`
	Resolved bool              `json:"resolved"`
}

func (c *Client) GetRequest(ctx context.Context, id string) (*RequestStatus, error) {
	var resp RequestStatus
	if _, err := c.do(ctx, http.MethodGet, "/requests/"+url.PathEscape(id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// MyRequests lists the requests sent by the logged in volunteer.
func (c *Client) MyRequests(ctx context.Context) ([]RequestStatus, error) {
	var resp struct {
		Requests []RequestStatus `json:"requests"`
	}
	if _, err := c.do(ctx, http.MethodGet, "/requests", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Requests, nil
}

type InboxFilter struct {
	Location string
	Priority string
	Needs    []string
	From     *time.Time
	To       *time.Time
	// Sort is one of recent, old, priority_high, priority_low
	Sort string
}

func (f InboxFilter) query() string {
	q := url.Values{}
	if f.Location != "" {
		q.Set("location", f.Location)
	}
	if f.Priority != "" {
		q.Set("priority", f.Priority)
	}
	if len(f.Needs) > 0 {
		q.Set("needs", strings.Join(f.Needs, ","))
	}
	if f.From != nil {
		q.Set("from", f.From.Format(time.RFC3339))
	}
	if f.To != nil {
		q.Set("to", f.To.Format(time.RFC3339))
	}
	if f.Sort != "" {
		q.Set("sort", f.Sort)
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

type RequestView struct {
	Leg     *RequestLeg       `json:"leg"`
	Request *VolunteerRequest `json:"request"`
}

// Inbox lists the legs addressed to the logged in organization.
func (c *Client) Inbox(ctx context.Context, filter InboxFilter) ([]RequestView, error) {
	var resp struct {
		Requests []RequestView `json:"requests"`
	}
	if _, err := c.do(ctx, http.MethodGet, "/requests/inbox"+filter.query(), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Requests, nil
}

type Approval struct {
	Leg  *RequestLeg `json:"leg"`
	Post *Post       `json:"post,omitempty"`
}

// Approve approves a leg. The post created from the request comes back with it.
func (c *Client) Approve(ctx context.Context, legID string) (*Approval, error) {
	var resp Approval
	if _, err := c.do(ctx, http.MethodPost, "/requests/legs/"+url.PathEscape(legID)+"/approve", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Reject(ctx context.Context, legID string) (*RequestLeg, error) {
	var resp Approval
	if _, err := c.do(ctx, http.MethodPost, "/requests/legs/"+url.PathEscape(legID)+"/reject", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Leg, nil
}

func (c *Client) RecentPosts(ctx context.Context, limit int) ([]Post, error) {
	var resp struct {
		Posts []Post `json:"posts"`
	}
	if _, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/posts?limit=%d", limit), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Posts, nil
}

// Notifications lists the caller's notifications, newest first.
func (c *Client) Notifications(ctx context.Context, unreadOnly bool) ([]Notification, error) {
	path := "/notifications"
	if unreadOnly {
		path += "?unread=true"
	}

	var resp struct {
		Notifications []Notification `json:"notifications"`
	}
	if _, err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Notifications, nil
}

func (c *Client) UnreadCount(ctx context.Context) (int, error) {
	var resp struct {
		Count int `json:"count"`
	}
	if _, err := c.do(ctx, http.MethodGet, "/notifications/unread/count", nil, &resp); err != nil {
		return 0, err
	}
	return resp.Count, nil
}

func (c *Client) MarkRead(ctx context.Context, notificationID string) error {
	_, err := c.do(ctx, http.MethodPost, "/notifications/"+url.PathEscape(notificationID)+"/read", nil, nil)
	return err
}

// MarkAllRead marks every notification read and returns how many changed.
func (c *Client) MarkAllRead(ctx context.Context) (int, error) {
	var resp struct {
		Count int `json:"count"`
	}
	if _, err := c.do(ctx, http.MethodPost, "/notifications/read", nil, &resp); err != nil {
		return 0, err
	}
	return resp.Count, nil
}

// APIError is a non-2xx answer from the server.
type APIError struct {
	StatusCode int    `json:"-"`
	Code       string `json:"error_code,omitempty"`
	Message    string `json:"error"`
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("[%s] %s (Status: %d)", e.Code, e.Message, e.StatusCode)
	}
	return fmt.Sprintf("%s (Status: %d)", e.Message, e.StatusCode)
}

// IsCode reports whether err is an *APIError carrying code.
func IsCode(err error, code string) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Code == code
}

// do sends req as JSON to the API path and decodes a 2xx body into resp.
// It returns the HTTP status code.
func (c *Client) do(ctx context.Context, method, path string, req interface{}, resp interface{}) (int, error) {
	// Set up context with timeout
	if c.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.config.Timeout)
		defer cancel()
	}

	var body *bytes.Reader
	if req != nil {
		reqBody, err := json.Marshal(req)
		if err != nil {
			return 0, fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(reqBody)
	} else {
		body = bytes.NewReader(nil)
	}

	// Create HTTP request
	httpReq, err := http.NewRequestWithContext(ctx, method, strings.TrimRight(c.config.BaseURL, "/")+"/api"+path, body)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if req != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if token := c.Token(); token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	// Send request
	httpResp, err := c.client.Do(httpReq)
	if err != nil {
		return 0, fmt.Errorf("failed to send request: %w", err)
	}
	defer httpResp.Body.Close()

	// Check for non-success status code
	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		// Try to decode error response
		var apiErr APIError
		if err := json.NewDecoder(httpResp.Body).Decode(&apiErr); err != nil || apiErr.Message == "" {
			// If we can't decode the error, create a generic one
			return httpResp.StatusCode, &APIError{
				StatusCode: httpResp.StatusCode,
				Message:    fmt.Sprintf("request failed with status code %d", httpResp.StatusCode),
			}
		}

		apiErr.StatusCode = httpResp.StatusCode
		return httpResp.StatusCode, &apiErr
	}

	if resp == nil {
		return httpResp.StatusCode, nil
	}

	// Decode response
	if err := json.NewDecoder(httpResp.Body).Decode(resp); err != nil {
		return httpResp.StatusCode, fmt.Errorf("failed to decode response: %w", err)
	}

	return httpResp.StatusCode, nil
}
