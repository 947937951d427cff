// Package seeds loads development fixtures into the database.
package seeds

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/goccy/go-yaml"
)

type UserFixture struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

type ReviewFixture struct {
	Username          string `yaml:"username"`
	ArtistID          string `yaml:"artist_id"`
	ArtistName        string `yaml:"artist_name"`
	ArtistDescription string `yaml:"artist_description"`
	ArtistPicture     string `yaml:"artist_picture"`
	AlbumTitle        string `yaml:"album_title"`
	TrackTitle        string `yaml:"track_title"`
	TrackLength       string `yaml:"track_length"`
	TrackArtwork      string `yaml:"track_artwork"`
	ReviewTitle       string `yaml:"review_title"`
	ReviewDescription string `yaml:"review_description"`
	StarRating        int    `yaml:"star_rating"`
}

type Fixtures struct {
	Users   []UserFixture   `yaml:"users"`
	Reviews []ReviewFixture `yaml:"reviews"`
}

func LoadFile(path string) (Fixtures, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Fixtures{}, fmt.Errorf("could not read %s: %w", path, err)
	}
	return Parse(data)
}

func Parse(data []byte) (Fixtures, error) {
	var f Fixtures
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Fixtures{}, fmt.Errorf("failed to parse fixtures: %w", err)
	}
	return f, nil
}

// SeedAll inserts users first, then their reviews. Entries already present
// are skipped so the seeder can be re-run.
func (s *Seeder) SeedAll(ctx context.Context, f Fixtures) error {
	ids, err := s.SeedUsers(ctx, f.Users)
	if err != nil {
		return err
	}
	return s.SeedReviews(ctx, f.Reviews, ids)
}

func ratingString(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}
