package database

import (
	"context"
	"path/filepath"
	"testing"

	"jobportal/internal/config"
	"jobportal/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectAndMigrateSQLite(t *testing.T) {
	cfg := config.Config{
		DBDriver:   "sqlite",
		SQLitePath: filepath.Join(t.TempDir(), "jobportal.db"),
	}

	db, err := ConnectDatabase(cfg)
	require.NoError(t, err)

	require.NoError(t, MigrateDatabase(db))
	assert.True(t, db.Migrator().HasTable(&models.User{}))
	assert.True(t, db.Migrator().HasTable(&models.Job{}))
	assert.True(t, db.Migrator().HasTable(&models.Application{}))
	assert.True(t, db.Migrator().HasIndex(&models.Application{}, "idx_applications_user_job"))

	assert.NoError(t, Ping(context.Background(), db))
}
