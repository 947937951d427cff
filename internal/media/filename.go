package media

import (
	"path"
	"strconv"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

const fallbackName = "image"

// SanitizeFilename reduces a client-supplied name to a single safe path
// element: directories are dropped, the name is NFC-normalized, whitespace
// runs become "_" and control characters are removed.
func SanitizeFilename(name string) string {
	name = path.Base(strings.ReplaceAll(name, `\`, "/"))
	name = norm.NFC.String(name)

	var b strings.Builder
	inSpace := false
	for _, r := range name {
		switch {
		case unicode.IsSpace(r):
			if !inSpace {
				b.WriteByte('_')
			}
			inSpace = true
			continue
		case r == '/' || r == '\\' || unicode.IsControl(r):
			// dropped
		default:
			b.WriteRune(r)
		}
		inSpace = false
	}

	out := b.String()
	if out == "" || out == "." || out == ".." {
		return fallbackName
	}
	return out
}

// storedName prefixes the sanitized name with the upload time so repeated
// uploads of the same file do not collide.
func storedName(at time.Time, original string) string {
	return strconv.FormatInt(at.UnixNano(), 10) + "-" + SanitizeFilename(original)
}
