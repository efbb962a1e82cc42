// Package app wires the store, caches and services shared by the binaries.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dangerclosesec/tounesna/internal/audit"
	"github.com/dangerclosesec/tounesna/internal/auth"
	"github.com/dangerclosesec/tounesna/internal/config"
	"github.com/dangerclosesec/tounesna/internal/counter"
	"github.com/dangerclosesec/tounesna/internal/database"
	"github.com/dangerclosesec/tounesna/internal/email"
	"github.com/dangerclosesec/tounesna/internal/repository"
	"github.com/dangerclosesec/tounesna/internal/service"
	"github.com/dangerclosesec/tounesna/internal/store"
)

// App holds every long lived dependency of a process.
type App struct {
	Config       *config.Config
	Store        store.Store
	Counter      counter.FollowerCounter
	Cache        *service.CacheService
	TokenManager *auth.TokenManager

	Auth           *service.AuthService
	Volunteers     *service.VolunteerService
	Organizations  *service.OrganizationService
	Follows        *service.FollowService
	Ratings        *service.RatingService
	Posts          *service.PostService
	Requests       *service.RequestService
	Notifications  *service.NotificationService
	Reconciliation *service.ReconciliationService

	closers []func() error
}

// New opens the configured backends and builds the services on top of them.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	a := &App{Config: cfg}

	s, closeStore, err := database.NewStore(cfg)
	if err != nil {
		return nil, fmt.Errorf("setting up store: %w", err)
	}
	a.Store = s
	a.closers = append(a.closers, closeStore)

	a.Counter = counter.Nop{}
	if cfg.Redis.Addr != "" {
		redisCounter, err := counter.NewRedisFollowerCounter(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			// counts fall back to the record store
			logger.Warn("redis unavailable, follower counter disabled", "addr", cfg.Redis.Addr, "error", err)
		} else {
			a.Counter = redisCounter
		}
	}
	a.closers = append(a.closers, a.Counter.Close)

	emailService, err := newEmailService(cfg)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("initializing email service: %w", err)
	}

	a.Cache = service.NewCacheService(service.CacheConfig{TTL: cfg.Cache.TTL, Size: cfg.Cache.Size})
	a.closers = append(a.closers, func() error { a.Cache.Close(); return nil })

	// Initialize repositories
	volunteerRepo := repository.NewVolunteerRepository(s)
	orgRepo := repository.NewOrganizationRepository(s)
	followRepo := repository.NewFollowRepository(s)
	ratingRepo := repository.NewRatingRepository(s)
	requestRepo := repository.NewRequestRepository(s)

	a.TokenManager = auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.ExpiryPeriod)

	a.Notifications = service.NewNotificationService(repository.NewNotificationRepository(s), emailService, cfg.BaseURL, logger)
	a.Auth = service.NewAuthService(
		volunteerRepo,
		orgRepo,
		repository.NewEmailClaimRepository(s),
		s,
		auth.NewPasswordHasher(auth.WithParams(auth.HashParams{
			Time:    cfg.PasswordHash.Time,
			Memory:  cfg.PasswordHash.MemoryKiB,
			Threads: cfg.PasswordHash.Threads,
		})),
		a.TokenManager,
		a.Cache,
		cfg,
		logger,
	)
	a.Volunteers = service.NewVolunteerService(volunteerRepo)
	a.Organizations = service.NewOrganizationService(orgRepo, a.Cache)
	a.Follows = service.NewFollowService(followRepo, volunteerRepo, orgRepo, s, a.Counter, a.Cache, a.Notifications, logger)
	a.Ratings = service.NewRatingService(ratingRepo, volunteerRepo, orgRepo, s, a.Cache, a.Notifications, logger)
	a.Posts = service.NewPostService(repository.NewPostRepository(s), orgRepo, followRepo, a.Notifications, logger)
	a.Requests = service.NewRequestService(requestRepo, volunteerRepo, orgRepo, s, a.Posts, a.Notifications, logger)
	a.Reconciliation = service.NewReconciliationService(orgRepo, followRepo, ratingRepo, requestRepo, s, a.Counter, a.Cache, logger)
	auditor := audit.NewSlogLogger(logger)
	a.Auth.SetAuditLogger(auditor)
	a.Requests.SetAuditLogger(auditor)

	if cfg.Reconcile.BatchSize > 0 {
		a.Reconciliation.SetBatchSize(cfg.Reconcile.BatchSize)
	}

	return a, nil
}

// newEmailService picks sendgrid when a key is configured, then the default
// SMTP relay, and otherwise only logs outgoing mail. It returns nil when
// email notifications are off.
func newEmailService(cfg *config.Config) (*email.Service, error) {
	if !cfg.EmailNotifications {
		return nil, nil
	}

	provider := email.ProviderLog
	if cfg.Sendgrid.APIKey != "" {
		provider = email.ProviderSendgrid
	} else if _, ok := cfg.SMTP["default"]; ok {
		provider = email.ProviderSMTP
	}
	return email.NewEmailService(cfg, provider)
}

// Close releases the backends in reverse order of opening.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
