package app_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/dangerclosesec/tounesna/internal/app"
	"github.com/dangerclosesec/tounesna/internal/config"
	"github.com/dangerclosesec/tounesna/internal/counter"
	"github.com/dangerclosesec/tounesna/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Database.Driver = "memory"
	cfg.Database.Timeout = time.Second
	cfg.JWT.Secret = "test_secret"
	cfg.JWT.ExpiryPeriod = time.Hour
	cfg.Cache.TTL = time.Minute
	cfg.Cache.Size = 16
	cfg.Organizations.AutoApprove = true
	cfg.EmailNotifications = true
	return cfg
}

func TestNewWiresMemoryBackend(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	a, err := app.New(context.Background(), testConfig(), logger)
	require.NoError(t, err)
	defer a.Close()

	assert.Equal(t, counter.Nop{}, a.Counter)

	ctx := context.Background()
	org, err := a.Auth.RegisterOrganization(ctx, service.RegisterOrganizationInput{
		Name: "Croissant", Email: "c@org.tn", Password: "volunteer2024",
	})
	require.NoError(t, err)

	vol, err := a.Auth.RegisterVolunteer(ctx, service.RegisterVolunteerInput{
		Name: "Amira", Email: "amira@example.tn", Password: "volunteer2024",
	})
	require.NoError(t, err)

	_, err = a.Follows.Follow(ctx, vol.ID, org.ID)
	require.NoError(t, err)

	report, err := a.Reconciliation.ReconcileAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Organizations)
	assert.Zero(t, report.FollowersFixed)
}

func TestNewRejectsUnknownDriver(t *testing.T) {
	cfg := testConfig()
	cfg.Database.Driver = "oracle"

	_, err := app.New(context.Background(), cfg, slog.Default())
	assert.ErrorContains(t, err, "unsupported database driver")
}
