package media

import (
	"strings"
	"testing"
	"time"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "cover.png", "cover.png"},
		{"spaces", "my  album\tcover.jpg", "my_album_cover.jpg"},
		{"unix path", "../../etc/passwd", "passwd"},
		{"windows path", `C:\Users\me\art work.gif`, "art_work.gif"},
		{"empty", "", "image"},
		{"dot dot", "..", "image"},
		{"trailing slash", "dir/", "dir"},
		{"control chars", "a\x00b.png", "ab.png"},
		{"decomposed accent", "cafe\u0301.png", "caf\u00e9.png"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeFilename(tt.in); got != tt.want {
				t.Errorf("SanitizeFilename(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestStoredNameIsTimePrefixed(t *testing.T) {
	at := time.Unix(1700000000, 42)
	got := storedName(at, "my cover.png")

	if !strings.HasPrefix(got, "1700000000000000042-") {
		t.Errorf("expected unix-nanos prefix, got %q", got)
	}
	if !strings.HasSuffix(got, "-my_cover.png") {
		t.Errorf("expected sanitized suffix, got %q", got)
	}
}
