package db

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestIsUniqueViolation(t *testing.T) {
	assert.False(t, IsUniqueViolation(nil))
	assert.False(t, IsUniqueViolation(errors.New("connection reset")))
	assert.True(t, IsUniqueViolation(gorm.ErrDuplicatedKey))
	assert.True(t, IsUniqueViolation(fmt.Errorf("insert user: %w", &pgconn.PgError{Code: "23505"})))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.True(t, IsUniqueViolation(errors.New("constraint failed: UNIQUE constraint failed: users.username (2067)")))
}

type widget struct {
	ID   string `gorm:"primaryKey"`
	Name string `gorm:"uniqueIndex;not null"`
}

func TestConnectSQLite(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "nested", "test.db")

	conn, err := Connect(Options{Driver: "sqlite", DSN: dsn, PoolSize: 2})
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(conn) })

	require.NoError(t, Ping(context.Background(), conn))
	require.NoError(t, conn.AutoMigrate(&widget{}))

	require.NoError(t, conn.Create(&widget{ID: "1", Name: "a"}).Error)
	err = conn.Create(&widget{ID: "2", Name: "a"}).Error
	assert.True(t, IsUniqueViolation(err), "got %v", err)

	var w widget
	err = conn.First(&w, "id = ?", "missing").Error
	assert.True(t, IsNotFound(err))
}

func TestConnectRejectsUnknownDriver(t *testing.T) {
	_, err := Connect(Options{Driver: "mysql", DSN: "x"})
	assert.Error(t, err)

	_, err = Connect(Options{Driver: "sqlite"})
	assert.Error(t, err)
}
