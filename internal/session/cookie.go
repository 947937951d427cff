package session

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"strings"
)

const DefaultCookieName = "session_id"

func sign(secret, token string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(token))
	return token + "." + base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

// unsign returns the token carried by a signed cookie value. Values with a
// missing or wrong signature are rejected.
func unsign(secret, value string) (string, bool) {
	i := strings.LastIndexByte(value, '.')
	if i <= 0 || i == len(value)-1 {
		return "", false
	}
	token := value[:i]
	expected := sign(secret, token)
	if !hmac.Equal([]byte(value), []byte(expected)) {
		return "", false
	}
	return token, true
}
