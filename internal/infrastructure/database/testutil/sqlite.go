// Package testutil opens migrated in-memory SQLite databases for repository
// and use case tests.
package testutil

import (
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/ecobarangay/wasteops/internal/infrastructure/migration"
	"github.com/ecobarangay/wasteops/internal/infrastructure/persistence/models"
	"github.com/ecobarangay/wasteops/internal/shared/authorization"
)

var dbSeq atomic.Int64

// NewSQLiteDB returns a fresh schema with the status and priority catalog
// seeded. The pool is pinned to a single connection so the in-memory
// database lives as long as the test.
func NewSQLiteDB(t testing.TB) *gorm.DB {
	t.Helper()

	name := fmt.Sprintf("%s_%d_%s", sanitize(t.Name()), dbSeq.Add(1), uuid.NewString()[:8])
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=0", name)

	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	require.NoError(t, migration.NewGormAutoMigrateStrategy().Migrate(gdb))

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})
	return gdb
}

// Account is a row for SeedAccounts.
type Account struct {
	ID   uint
	Name string
	Role authorization.Role
}

// SeedAccounts inserts accounts with a derived email address.
func SeedAccounts(t testing.TB, gdb *gorm.DB, accounts ...Account) {
	t.Helper()
	for _, a := range accounts {
		row := models.AccountModel{
			ID:          a.ID,
			DisplayName: a.Name,
			Email:       strings.ToLower(strings.ReplaceAll(a.Name, " ", ".")) + "@example.test",
			RoleID:      uint8(a.Role),
		}
		require.NoError(t, gdb.Create(&row).Error)
	}
}

func sanitize(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		default:
			return '_'
		}
	}, name)
}
