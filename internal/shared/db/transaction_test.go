package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type lockedRow struct {
	ID     uint
	Status uint
}

func (lockedRow) TableName() string {
	return "tickets"
}

func newMySQLDryRun(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(mysql.New(mysql.Config{
		DSN:                       "wasteops:wasteops@tcp(127.0.0.1:3306)/wasteops?parseTime=true",
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
		Logger:               logger.Discard,
	})
	require.NoError(t, err)
	return gdb
}

func lockedSelectSQL(gdb *gorm.DB, ctx context.Context) string {
	return gdb.ToSQL(func(tx *gorm.DB) *gorm.DB {
		var row lockedRow
		return tx.Scopes(ForUpdate(ctx)).Where("id = ?", 7).First(&row)
	})
}

func TestForUpdate_MySQL(t *testing.T) {
	gdb := newMySQLDryRun(t)

	t.Run("inside transaction", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), txKey{}, gdb)
		assert.Contains(t, lockedSelectSQL(gdb, ctx), "FOR UPDATE")
	})

	t.Run("outside transaction", func(t *testing.T) {
		assert.NotContains(t, lockedSelectSQL(gdb, context.Background()), "FOR UPDATE")
	})
}

func TestGetTxFromContext(t *testing.T) {
	gdb := newMySQLDryRun(t)
	tx := gdb.Session(&gorm.Session{})

	ctx := context.WithValue(context.Background(), txKey{}, tx)
	assert.True(t, InTransaction(ctx))
	assert.Same(t, tx, GetTxFromContext(ctx, gdb))

	assert.False(t, InTransaction(context.Background()))
	assert.NotSame(t, gdb, GetTxFromContext(context.Background(), gdb))
}
