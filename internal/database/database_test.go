package database_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/dangerclosesec/tounesna/internal/config"
	"github.com/dangerclosesec/tounesna/internal/database"
	"github.com/dangerclosesec/tounesna/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenSQLiteAndMigrate(t *testing.T) {
	cfg := &config.Config{}
	cfg.Database.Driver = "sqlite"
	cfg.Database.FilePath = filepath.Join(t.TempDir(), "tounesna.db")

	db, err := database.Open(cfg)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	for _, table := range []string{
		model.CollectionVolunteers,
		model.CollectionOrganizations,
		model.CollectionRequests,
		model.CollectionRequestLegs,
	} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
}

func TestOpenUnknownDriver(t *testing.T) {
	cfg := &config.Config{}
	cfg.Database.Driver = "oracle"

	_, err := database.Open(cfg)
	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestNewStore(t *testing.T) {
	for _, driver := range []string{"memory", "sqlite"} {
		t.Run(driver, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.Database.Driver = driver
			cfg.Database.FilePath = filepath.Join(t.TempDir(), "tounesna.db")

			s, closeFn, err := database.NewStore(cfg)
			require.NoError(t, err)
			defer closeFn()

			ctx := context.Background()
			org := &model.Organization{Name: "Croissant", Email: "c@org.tn", PasswordHash: "x"}
			org.ID = s.GenerateID(model.CollectionOrganizations)
			require.NoError(t, s.Create(ctx, model.CollectionOrganizations, org))

			var got model.Organization
			require.NoError(t, s.Get(ctx, model.CollectionOrganizations, org.ID, &got))
			assert.Equal(t, "Croissant", got.Name)
		})
	}
}
