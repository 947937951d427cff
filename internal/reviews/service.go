package reviews

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/EmpoweredVote/Review-Backend/internal/apperr"
	"github.com/google/uuid"
)

type Service struct {
	store Store
	now   func() time.Time
}

func NewService(store Store) *Service {
	return &Service{store: store, now: time.Now}
}

// List is public; it never fails for an unknown artist.
func (s *Service) List(ctx context.Context, artistID string) ([]Review, error) {
	reviews, err := s.store.ListByArtist(ctx, artistID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return reviews, nil
}

// Create stores a review owned by ownerID and returns it as read back from
// the store, author username included.
func (s *Service) Create(ctx context.Context, ownerID string, in NewReview) (Review, error) {
	if missingRequired(in) {
		return Review{}, apperr.InvalidInput("missing required fields")
	}

	review := Review{
		ID:                uuid.NewString(),
		UserID:            ownerID,
		ArtistID:          in.ArtistID,
		ArtistName:        in.ArtistName,
		ArtistDescription: in.ArtistDescription,
		ArtistPicture:     in.ArtistPicture,
		AlbumTitle:        in.AlbumTitle,
		TrackTitle:        in.TrackTitle,
		TrackLength:       in.TrackLength,
		TrackArtwork:      in.TrackArtwork,
		ReviewTitle:       in.ReviewTitle,
		ReviewDescription: in.ReviewDescription,
		StarRating:        ParseStarRating(in.StarRating),
		CreatedAt:         s.now().UTC(),
	}
	if err := s.store.Create(ctx, &review); err != nil {
		return Review{}, apperr.Internal(err)
	}

	// A concurrent delete between insert and read surfaces as a server error.
	created, err := s.store.FindByID(ctx, review.ID)
	if err != nil {
		return Review{}, apperr.Internal(err)
	}

	slog.InfoContext(ctx, "review created", "review_id", created.ID, "user_id", ownerID, "artist_id", created.ArtistID)
	return created, nil
}

// Delete removes a review. Only its owner may delete it.
func (s *Service) Delete(ctx context.Context, requesterID, reviewID string) error {
	review, err := s.store.FindByID(ctx, reviewID)
	if errors.Is(err, ErrReviewNotFound) {
		return apperr.NotFound("Not found")
	}
	if err != nil {
		return apperr.Internal(err)
	}
	if review.UserID != requesterID {
		return apperr.Forbidden("Forbidden")
	}

	err = s.store.Delete(ctx, reviewID)
	if errors.Is(err, ErrReviewNotFound) {
		return apperr.NotFound("Not found")
	}
	if err != nil {
		return apperr.Internal(err)
	}

	slog.InfoContext(ctx, "review deleted", "review_id", reviewID, "user_id", requesterID)
	return nil
}

func missingRequired(in NewReview) bool {
	for _, v := range []string{in.ArtistID, in.ArtistName, in.TrackTitle, in.ReviewTitle, in.ReviewDescription} {
		if v == "" {
			return true
		}
	}
	return false
}
