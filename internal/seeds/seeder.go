package seeds

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/EmpoweredVote/Review-Backend/internal/apperr"
	"github.com/EmpoweredVote/Review-Backend/internal/auth"
	"github.com/EmpoweredVote/Review-Backend/internal/reviews"
	"gorm.io/gorm"
)

type Seeder struct {
	db      *gorm.DB
	users   *auth.Service
	reviews *reviews.Service
}

func NewSeeder(conn *gorm.DB, hasher auth.PasswordHasher) *Seeder {
	return &Seeder{
		db:      conn,
		users:   auth.NewService(auth.NewGormUserStore(conn), hasher),
		reviews: reviews.NewService(reviews.NewGormStore(conn)),
	}
}

// SeedUsers signs up each fixture user and returns their ids by username.
// An existing user is logged in with the fixture password instead.
func (s *Seeder) SeedUsers(ctx context.Context, users []UserFixture) (map[string]string, error) {
	ids := make(map[string]string, len(users))
	created := 0
	for _, u := range users {
		identity, err := s.users.Signup(ctx, u.Username, u.Password)
		if errors.Is(err, apperr.ErrConflict) {
			slog.Info("user exists, skipping", "username", u.Username)
			identity, err = s.users.Login(ctx, u.Username, u.Password)
		} else if err == nil {
			created++
		}
		if err != nil {
			return nil, fmt.Errorf("seed user %s: %w", u.Username, err)
		}
		ids[u.Username] = identity.UserID
	}

	slog.Info("seeded users", "created", created, "total", len(users))
	return ids, nil
}

// SeedReviews creates each review for its fixture user. A review with the
// same author, artist and title is treated as already seeded.
func (s *Seeder) SeedReviews(ctx context.Context, fixtures []ReviewFixture, userIDs map[string]string) error {
	created := 0
	for _, f := range fixtures {
		userID, ok := userIDs[f.Username]
		if !ok {
			return fmt.Errorf("review %q references unknown user %s", f.ReviewTitle, f.Username)
		}

		var existing int64
		err := s.db.WithContext(ctx).Model(&reviews.Review{}).
			Where("user_id = ? AND artist_id = ? AND review_title = ?", userID, f.ArtistID, f.ReviewTitle).
			Count(&existing).Error
		if err != nil {
			return fmt.Errorf("DB error on review %q: %w", f.ReviewTitle, err)
		}
		if existing > 0 {
			slog.Info("review exists, skipping", "title", f.ReviewTitle)
			continue
		}

		_, err = s.reviews.Create(ctx, userID, reviews.NewReview{
			ArtistID:          f.ArtistID,
			ArtistName:        f.ArtistName,
			ArtistDescription: f.ArtistDescription,
			ArtistPicture:     f.ArtistPicture,
			AlbumTitle:        f.AlbumTitle,
			TrackTitle:        f.TrackTitle,
			TrackLength:       f.TrackLength,
			TrackArtwork:      f.TrackArtwork,
			ReviewTitle:       f.ReviewTitle,
			ReviewDescription: f.ReviewDescription,
			StarRating:        ratingString(f.StarRating),
		})
		if err != nil {
			return fmt.Errorf("failed to create review %q: %w", f.ReviewTitle, err)
		}
		created++
	}

	slog.Info("seeded reviews", "created", created, "total", len(fixtures))
	return nil
}
