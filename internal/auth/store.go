package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/EmpoweredVote/Review-Backend/internal/db"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrDuplicateUsername = errors.New("username already exists")
)

type UserStore interface {
	FindByUsername(ctx context.Context, username string) (User, error)
	Create(ctx context.Context, user *User) error
}

type GormUserStore struct {
	db *gorm.DB
}

var _ UserStore = (*GormUserStore)(nil)

func NewGormUserStore(conn *gorm.DB) *GormUserStore {
	return &GormUserStore{db: conn}
}

func (s *GormUserStore) FindByUsername(ctx context.Context, username string) (User, error) {
	var user User
	err := s.db.WithContext(ctx).First(&user, "username = ?", username).Error
	if db.IsNotFound(err) {
		return User{}, ErrUserNotFound
	}
	if err != nil {
		return User{}, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

func (s *GormUserStore) Create(ctx context.Context, user *User) error {
	err := s.db.WithContext(ctx).Create(user).Error
	if db.IsUniqueViolation(err) {
		return ErrDuplicateUsername
	}
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}
