package media

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/EmpoweredVote/Review-Backend/internal/apperr"
)

const DefaultMaxSize int64 = 5 << 20

var (
	ErrNotImage     = apperr.InvalidInput("Only image uploads allowed")
	ErrFileTooLarge = apperr.PayloadTooLarge("File too large")
)

// Intake validates uploaded images and hands them to a Storage.
type Intake struct {
	storage Storage
	maxSize int64
	now     func() time.Time
}

func NewIntake(storage Storage, maxSize int64) *Intake {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	return &Intake{storage: storage, maxSize: maxSize, now: time.Now}
}

func (in *Intake) MaxSize() int64 { return in.maxSize }

// Upload stores body and returns the URL it is served from. The mime type
// is checked before body is read, and nothing is stored unless the whole
// body fits within the size limit.
func (in *Intake) Upload(ctx context.Context, body io.Reader, originalName, mimeType string) (string, error) {
	if !strings.HasPrefix(strings.ToLower(strings.TrimSpace(mimeType)), "image/") {
		return "", ErrNotImage
	}

	buf, err := io.ReadAll(io.LimitReader(body, in.maxSize+1))
	if err != nil {
		return "", apperr.Wrap(apperr.KindInvalidInput, "Invalid upload", err)
	}
	if int64(len(buf)) > in.maxSize {
		return "", ErrFileTooLarge
	}

	name := storedName(in.now(), originalName)
	if err := in.storage.Save(ctx, name, bytes.NewReader(buf), int64(len(buf)), mimeType); err != nil {
		return "", apperr.Internal(fmt.Errorf("save upload %s: %w", name, err))
	}

	slog.InfoContext(ctx, "image uploaded", "name", name, "size", len(buf), "mime", mimeType)
	return in.storage.URL(name), nil
}
