package service_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/dangerclosesec/tounesna/internal/auth"
	"github.com/dangerclosesec/tounesna/internal/config"
	"github.com/dangerclosesec/tounesna/internal/counter"
	"github.com/dangerclosesec/tounesna/internal/model"
	"github.com/dangerclosesec/tounesna/internal/repository"
	"github.com/dangerclosesec/tounesna/internal/service"
	"github.com/dangerclosesec/tounesna/internal/store"
	"github.com/stretchr/testify/require"
)

// harness wires every service over one in-memory store.
type harness struct {
	store *store.MemoryStore

	volunteerRepo    *repository.VolunteerRepository
	orgRepo          *repository.OrganizationRepository
	followRepo       *repository.FollowRepository
	ratingRepo       *repository.RatingRepository
	requestRepo      *repository.RequestRepository
	notificationRepo *repository.NotificationRepository

	counter       *fakeCounter
	cache         *service.CacheService
	notifications *service.NotificationService
	auth          *service.AuthService
	follows       *service.FollowService
	ratings       *service.RatingService
	posts         *service.PostService
	requests      *service.RequestService
	reconcile     *service.ReconciliationService
}

type harnessOption func(*harnessOptions)

type harnessOptions struct {
	postRepo    repository.PostRepositoryIface
	requestRepo repository.RequestRepositoryIface
}

func withPostRepository(repo repository.PostRepositoryIface) harnessOption {
	return func(o *harnessOptions) { o.postRepo = repo }
}

func withRequestRepository(repo repository.RequestRepositoryIface) harnessOption {
	return func(o *harnessOptions) { o.requestRepo = repo }
}

func newHarness(t *testing.T, opts ...harnessOption) *harness {
	t.Helper()

	s := store.NewMemoryStore()
	h := &harness{
		store:            s,
		volunteerRepo:    repository.NewVolunteerRepository(s),
		orgRepo:          repository.NewOrganizationRepository(s),
		followRepo:       repository.NewFollowRepository(s),
		ratingRepo:       repository.NewRatingRepository(s),
		requestRepo:      repository.NewRequestRepository(s),
		notificationRepo: repository.NewNotificationRepository(s),
		counter:          newFakeCounter(),
		cache:            service.NewCacheService(service.CacheConfig{TTL: time.Minute, Size: 64}),
	}

	o := &harnessOptions{postRepo: repository.NewPostRepository(s), requestRepo: h.requestRepo}
	for _, opt := range opts {
		opt(o)
	}

	cfg := &config.Config{}
	cfg.Organizations.AutoApprove = true

	h.notifications = service.NewNotificationService(h.notificationRepo, nil, "http://localhost:8080", nil)
	h.auth = service.NewAuthService(
		h.volunteerRepo,
		h.orgRepo,
		repository.NewEmailClaimRepository(s),
		s,
		auth.NewPasswordHasher(),
		auth.NewTokenManager("test_secret", time.Hour),
		h.cache,
		cfg,
		nil,
	)
	h.follows = service.NewFollowService(h.followRepo, h.volunteerRepo, h.orgRepo, s, h.counter, h.cache, h.notifications, nil)
	h.ratings = service.NewRatingService(h.ratingRepo, h.volunteerRepo, h.orgRepo, s, h.cache, h.notifications, nil)
	h.posts = service.NewPostService(o.postRepo, h.orgRepo, h.followRepo, h.notifications, nil)
	h.requests = service.NewRequestService(o.requestRepo, h.volunteerRepo, h.orgRepo, s, h.posts, h.notifications, nil)
	h.reconcile = service.NewReconciliationService(h.orgRepo, h.followRepo, h.ratingRepo, h.requestRepo, s, h.counter, h.cache, nil)

	return h
}

func (h *harness) volunteer(t *testing.T, name string) *model.Volunteer {
	t.Helper()
	v := &model.Volunteer{Name: name, Email: name + "@example.tn", PasswordHash: "x", Location: "Tunis"}
	require.NoError(t, h.volunteerRepo.Create(context.Background(), v))
	return v
}

func (h *harness) organization(t *testing.T, name string) *model.Organization {
	t.Helper()
	org := &model.Organization{Name: name, Email: name + "@org.tn", PasswordHash: "x", IsApproved: true, Location: "Sfax"}
	require.NoError(t, h.orgRepo.Create(context.Background(), org))
	return org
}

func (h *harness) reload(t *testing.T, orgID string) *model.Organization {
	t.Helper()
	org, err := h.orgRepo.FindByID(context.Background(), orgID)
	require.NoError(t, err)
	return org
}

func (h *harness) notificationsOf(t *testing.T, userID string, kind model.NotificationType) []*model.Notification {
	t.Helper()
	all, err := h.notificationRepo.FindByUser(context.Background(), userID)
	require.NoError(t, err)
	var out []*model.Notification
	for _, n := range all {
		if n.Type == kind {
			out = append(out, n)
		}
	}
	return out
}

// fakeCounter is an in-process FollowerCounter with the same
// only-when-present semantics as the Redis one.
type fakeCounter struct {
	mu     sync.Mutex
	counts map[string]int64
}

func newFakeCounter() *fakeCounter {
	return &fakeCounter{counts: make(map[string]int64)}
}

func (c *fakeCounter) Get(_ context.Context, orgID string) (int64, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	n, ok := c.counts[orgID]
	return n, ok, nil
}

func (c *fakeCounter) Set(_ context.Context, orgID string, count int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counts[orgID] = count
	return nil
}

func (c *fakeCounter) Incr(_ context.Context, orgID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if n, ok := c.counts[orgID]; ok {
		c.counts[orgID] = n + 1
	}
	return nil
}

func (c *fakeCounter) Decr(_ context.Context, orgID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if n, ok := c.counts[orgID]; ok && n > 0 {
		c.counts[orgID] = n - 1
	}
	return nil
}

func (c *fakeCounter) Close() error { return nil }

var _ counter.FollowerCounter = (*fakeCounter)(nil)

func mustClaims(h *harness) *repository.EmailClaimRepository {
	return repository.NewEmailClaimRepository(h.store)
}
