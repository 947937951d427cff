package reviews

import "time"

// Review is one user's review of a track. Username is filled from the users
// table on read and never written.
type Review struct {
	ID                string    `gorm:"primaryKey" json:"id"`
	UserID            string    `gorm:"not null;index" json:"user_id"`
	ArtistID          string    `gorm:"not null;index:idx_reviews_artist_created,priority:1" json:"artist_id"`
	ArtistName        string    `gorm:"not null" json:"artist_name"`
	ArtistDescription string    `gorm:"not null;default:''" json:"artist_description"`
	ArtistPicture     string    `gorm:"not null;default:''" json:"artist_picture"`
	AlbumTitle        string    `gorm:"not null;default:''" json:"album_title"`
	TrackTitle        string    `gorm:"not null" json:"track_title"`
	TrackLength       string    `gorm:"not null;default:''" json:"track_length"`
	TrackArtwork      string    `gorm:"not null;default:''" json:"track_artwork"`
	ReviewTitle       string    `gorm:"not null" json:"review_title"`
	ReviewDescription string    `gorm:"type:text;not null" json:"review_description"`
	StarRating        int       `gorm:"not null;check:star_rating >= 1 AND star_rating <= 5" json:"star_rating"`
	CreatedAt         time.Time `gorm:"index:idx_reviews_artist_created,priority:2" json:"created_at"`

	Username string `gorm:"->;-:migration" json:"username"`
}

func (Review) TableName() string { return "reviews" }

// NewReview holds the caller-supplied fields of a review. StarRating is kept
// raw so it can be parsed leniently.
type NewReview struct {
	ArtistID          string
	ArtistName        string
	ArtistDescription string
	ArtistPicture     string
	AlbumTitle        string
	TrackTitle        string
	TrackLength       string
	TrackArtwork      string
	ReviewTitle       string
	ReviewDescription string
	StarRating        string
}
