package test

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stockroom-app/inventory/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TmpFile returns the path to a unique file to be used in tests
func TmpFile(t *testing.T) string {
	dir := t.TempDir()
	return filepath.Join(dir, uuid.New().String())
}

// Database connects to a new, migrated SQLite database in a temporary file.
// The connection is closed when the test finishes.
func Database(t *testing.T) *gorm.DB {
	db, err := models.Connect(models.SQLite(TmpFile(t)), models.PoolConfig{MaxOpenConns: 1})
	require.NoError(t, err, "Database connection failed")

	t.Cleanup(func() {
		_ = models.Close(db)
	})

	require.NoError(t, models.Migrate(db), "Database migration failed")
	return db
}
