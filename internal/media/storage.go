package media

import (
	"context"
	"io"
)

// Storage persists uploaded files under a flat name and reports where
// clients can fetch them.
type Storage interface {
	Save(ctx context.Context, name string, body io.Reader, size int64, contentType string) error
	URL(name string) string
}
