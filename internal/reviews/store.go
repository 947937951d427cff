package reviews

import (
	"context"
	"errors"
	"fmt"

	"github.com/EmpoweredVote/Review-Backend/internal/db"
	"gorm.io/gorm"
)

var ErrReviewNotFound = errors.New("review not found")

type Store interface {
	ListByArtist(ctx context.Context, artistID string) ([]Review, error)
	Create(ctx context.Context, review *Review) error
	FindByID(ctx context.Context, id string) (Review, error)
	Delete(ctx context.Context, id string) error
}

type GormStore struct {
	db *gorm.DB
}

var _ Store = (*GormStore)(nil)

func NewGormStore(conn *gorm.DB) *GormStore {
	return &GormStore{db: conn}
}

// withAuthor selects reviews joined with their author's username.
func (s *GormStore) withAuthor(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).
		Model(&Review{}).
		Select("reviews.*, users.username").
		Joins("JOIN users ON users.id = reviews.user_id")
}

// ListByArtist returns the artist's reviews, newest first. An artist with no
// reviews yields an empty, non-nil slice.
func (s *GormStore) ListByArtist(ctx context.Context, artistID string) ([]Review, error) {
	reviews := make([]Review, 0)
	err := s.withAuthor(ctx).
		Where("reviews.artist_id = ?", artistID).
		Order("reviews.created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return reviews, nil
}

func (s *GormStore) Create(ctx context.Context, review *Review) error {
	if err := s.db.WithContext(ctx).Create(review).Error; err != nil {
		return fmt.Errorf("insert review: %w", err)
	}
	return nil
}

func (s *GormStore) FindByID(ctx context.Context, id string) (Review, error) {
	var review Review
	err := s.withAuthor(ctx).Where("reviews.id = ?", id).Take(&review).Error
	if db.IsNotFound(err) {
		return Review{}, ErrReviewNotFound
	}
	if err != nil {
		return Review{}, fmt.Errorf("find review: %w", err)
	}
	return review, nil
}

func (s *GormStore) Delete(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Delete(&Review{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("delete review: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrReviewNotFound
	}
	return nil
}
