package auth

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/EmpoweredVote/Review-Backend/internal/apperr"
	"github.com/EmpoweredVote/Review-Backend/internal/utils"
	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"
)

// bcrypt ignores everything past 72 bytes.
const maxPasswordBytes = 72

var errInvalidCredentials = apperr.Unauthorized("invalid credentials")

type Service struct {
	users  UserStore
	hasher PasswordHasher
	now    func() time.Time

	dummyOnce sync.Once
	dummyHash string
}

func NewService(users UserStore, hasher PasswordHasher) *Service {
	return &Service{users: users, hasher: hasher, now: time.Now}
}

// Signup registers a new user. The username pre-check is only an
// optimization; the unique index decides races between concurrent signups.
func (s *Service) Signup(ctx context.Context, username, password string) (utils.Identity, error) {
	username = normalizeUsername(username)
	if username == "" || password == "" {
		return utils.Identity{}, apperr.InvalidInput("username and password required")
	}
	if len(password) > maxPasswordBytes {
		return utils.Identity{}, apperr.InvalidInput("password must not exceed 72 bytes")
	}

	_, err := s.users.FindByUsername(ctx, username)
	switch {
	case err == nil:
		return utils.Identity{}, apperr.Conflict("username already taken")
	case !errors.Is(err, ErrUserNotFound):
		return utils.Identity{}, apperr.Internal(err)
	}

	hashed, err := s.hasher.Hash(password)
	if err != nil {
		return utils.Identity{}, apperr.Internal(err)
	}

	user := User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: hashed,
		CreatedAt:    s.now(),
	}
	if err := s.users.Create(ctx, &user); err != nil {
		if errors.Is(err, ErrDuplicateUsername) {
			return utils.Identity{}, apperr.Conflict("username already taken")
		}
		return utils.Identity{}, apperr.Internal(err)
	}

	slog.InfoContext(ctx, "user signed up", "user_id", user.ID)
	return utils.Identity{UserID: user.ID, Username: user.Username}, nil
}

// Login checks credentials. Unknown usernames and wrong passwords fail with
// the same error and comparable cost.
func (s *Service) Login(ctx context.Context, username, password string) (utils.Identity, error) {
	username = normalizeUsername(username)
	if username == "" || password == "" {
		return utils.Identity{}, apperr.InvalidInput("username and password required")
	}

	user, err := s.users.FindByUsername(ctx, username)
	if errors.Is(err, ErrUserNotFound) {
		s.hasher.Verify(password, s.dummyDigest())
		return utils.Identity{}, errInvalidCredentials
	}
	if err != nil {
		return utils.Identity{}, apperr.Internal(err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return utils.Identity{}, errInvalidCredentials
	}

	return utils.Identity{UserID: user.ID, Username: user.Username}, nil
}

func (s *Service) dummyDigest() string {
	s.dummyOnce.Do(func() {
		h, err := s.hasher.Hash(uuid.NewString())
		if err != nil {
			slog.Warn("build dummy password digest", "error", err)
		}
		s.dummyHash = h
	})
	return s.dummyHash
}

// normalizeUsername maps canonically equivalent spellings to one form so
// the unique index sees them as the same name.
func normalizeUsername(username string) string {
	return norm.NFC.String(username)
}
