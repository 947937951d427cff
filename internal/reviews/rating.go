package reviews

import "strings"

const (
	MinStars     = 1
	MaxStars     = 5
	DefaultStars = 1
)

// ParseStarRating reads the leading base-10 integer of raw, so "4", " 4 " and
// "4 stars" all give 4 and "4.9" gives 4. Input without a leading integer
// falls back to DefaultStars. The result is always within [MinStars, MaxStars].
func ParseStarRating(raw string) int {
	s := strings.TrimLeft(raw, " \t\n\r\v\f")

	negative := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		negative = s[0] == '-'
		s = s[1:]
	}

	n, digits := 0, 0
	for ; digits < len(s) && s[digits] >= '0' && s[digits] <= '9'; digits++ {
		// Anything past MaxStars clamps the same way, so stop growing n.
		if n <= MaxStars {
			n = n*10 + int(s[digits]-'0')
		}
	}
	if digits == 0 {
		return DefaultStars
	}
	if negative {
		n = -n
	}
	return clampStars(n)
}

func clampStars(n int) int {
	if n < MinStars {
		return MinStars
	}
	if n > MaxStars {
		return MaxStars
	}
	return n
}
