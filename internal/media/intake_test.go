package media

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/EmpoweredVote/Review-Backend/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spyStorage records every Save and fails the test if the body is read
// when it should not be.
type spyStorage struct {
	mu    sync.Mutex
	saved map[string][]byte
}

func newSpyStorage() *spyStorage {
	return &spyStorage{saved: make(map[string][]byte)}
}

func (s *spyStorage) Save(_ context.Context, name string, body io.Reader, _ int64, _ string) error {
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saved[name] = data
	return nil
}

func (s *spyStorage) URL(name string) string { return "/uploads/" + name }

func (s *spyStorage) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.saved)
}

// untouchedReader fails if anything reads from it.
type untouchedReader struct{ t *testing.T }

func (u untouchedReader) Read([]byte) (int, error) {
	u.t.Error("body must not be read")
	return 0, io.EOF
}

func TestIntakeUpload(t *testing.T) {
	storage := newSpyStorage()
	intake := NewIntake(storage, 0)
	intake.now = func() time.Time { return time.Unix(0, 1234) }

	url, err := intake.Upload(context.Background(), strings.NewReader("pixels"), "my cover.png", "image/png")
	require.NoError(t, err)

	assert.Equal(t, "/uploads/1234-my_cover.png", url)
	assert.Equal(t, []byte("pixels"), storage.saved["1234-my_cover.png"])
}

func TestIntakeRejectsNonImage(t *testing.T) {
	storage := newSpyStorage()
	intake := NewIntake(storage, 0)

	for _, mime := range []string{"text/plain", "application/pdf", "", "imagex/png"} {
		_, err := intake.Upload(context.Background(), untouchedReader{t}, "notes.txt", mime)
		require.Error(t, err, mime)
		assert.Equal(t, apperr.KindInvalidInput, apperr.KindOf(err))
		assert.ErrorIs(t, err, ErrNotImage)
	}
	assert.Zero(t, storage.count())
}

func TestIntakeSizeLimit(t *testing.T) {
	storage := newSpyStorage()
	intake := NewIntake(storage, DefaultMaxSize)

	_, err := intake.Upload(context.Background(), bytes.NewReader(make([]byte, DefaultMaxSize)), "exact.png", "image/png")
	require.NoError(t, err, "a file of exactly the limit is accepted")

	_, err = intake.Upload(context.Background(), bytes.NewReader(make([]byte, DefaultMaxSize+1)), "big.png", "image/png")
	require.Error(t, err)
	assert.Equal(t, apperr.KindPayloadTooLarge, apperr.KindOf(err))
	assert.Equal(t, 1, storage.count(), "oversized file must not be stored")
}

func TestDiskStorageSave(t *testing.T) {
	root := filepath.Join(t.TempDir(), "uploads")
	disk, err := NewDiskStorage(root)
	require.NoError(t, err)

	require.NoError(t, disk.Save(context.Background(), "1-a.png", strings.NewReader("data"), 4, "image/png"))

	got, err := os.ReadFile(filepath.Join(root, "1-a.png"))
	require.NoError(t, err)
	assert.Equal(t, "data", string(got))
	assert.Equal(t, "/uploads/1-a.png", disk.URL("1-a.png"))
	assert.Equal(t, "/uploads/1-cover%231.png", disk.URL("1-cover#1.png"))
	assert.Equal(t, "/uploads/1-100%25.png", disk.URL("1-100%.png"))

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files left behind")

	assert.Error(t, disk.Save(context.Background(), "../escape.png", strings.NewReader("x"), 1, "image/png"))
}

func TestS3PublicURL(t *testing.T) {
	assert.Equal(t, "https://media.s3.eu-west-1.amazonaws.com",
		s3PublicURL(S3Config{Bucket: "media", Region: "eu-west-1"}))
	assert.Equal(t, "http://localhost:9000/media",
		s3PublicURL(S3Config{Bucket: "media", Endpoint: "http://localhost:9000/"}))
}
