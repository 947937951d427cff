package session

import (
	"context"
	"fmt"
	"time"

	"github.com/EmpoweredVote/Review-Backend/internal/db"
	"gorm.io/gorm"
)

// Session is the row layout of the database-backed store.
type Session struct {
	SessionID string    `gorm:"primaryKey" json:"-"`
	UserID    string    `gorm:"not null;index" json:"-"`
	Username  string    `gorm:"not null" json:"-"`
	CreatedAt time.Time `gorm:"not null"`
	ExpiresAt time.Time `gorm:"not null;index"`
}

func (Session) TableName() string { return "sessions" }

// DBStore keeps sessions in the relational store so they survive restarts
// of a single process.
type DBStore struct {
	db *gorm.DB
}

var _ Store = (*DBStore)(nil)

func NewDBStore(conn *gorm.DB) (*DBStore, error) {
	if err := conn.AutoMigrate(&Session{}); err != nil {
		return nil, fmt.Errorf("migrate sessions: %w", err)
	}
	return &DBStore{db: conn}, nil
}

func (s *DBStore) Save(ctx context.Context, rec Record) error {
	row := Session{
		SessionID: rec.Token,
		UserID:    rec.UserID,
		Username:  rec.Username,
		CreatedAt: rec.CreatedAt,
		ExpiresAt: rec.ExpiresAt,
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

func (s *DBStore) Get(ctx context.Context, token string) (Record, error) {
	var row Session
	err := s.db.WithContext(ctx).First(&row, "session_id = ?", token).Error
	if db.IsNotFound(err) {
		return Record{}, ErrNotFound
	}
	if err != nil {
		return Record{}, fmt.Errorf("find session: %w", err)
	}
	return Record{
		Token:     row.SessionID,
		UserID:    row.UserID,
		Username:  row.Username,
		CreatedAt: row.CreatedAt,
		ExpiresAt: row.ExpiresAt,
	}, nil
}

func (s *DBStore) Delete(ctx context.Context, token string) error {
	if err := s.db.WithContext(ctx).Where("session_id = ?", token).Delete(&Session{}).Error; err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// PurgeExpired deletes rows that expired before cutoff.
func (s *DBStore) PurgeExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	res := s.db.WithContext(ctx).Where("expires_at <= ?", cutoff).Delete(&Session{})
	if res.Error != nil {
		return 0, fmt.Errorf("purge sessions: %w", res.Error)
	}
	return res.RowsAffected, nil
}

// Close is a no-op; the connection pool is owned by the caller.
func (s *DBStore) Close() error { return nil }
