package strength

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// SpecialCharacters is the fixed set of characters counted as "special".
const SpecialCharacters = `!@#$%^&*(),.?":{}|<>`

// DefaultMotifs are the sequential motifs flagged by a default [Analyzer].
// Each motif also matches in reverse ("cba" for "abc").
var DefaultMotifs = []string{"abc", "123", "xyz", "qwe", "asd"}

// charClasses holds the four character-class flags.
type charClasses struct {
	upper, lower, digit, special bool
}

// detectClasses scans the password once.  Letters are ASCII only; digits
// are any Unicode decimal digit.
func detectClasses(password string) charClasses {
	var c charClasses
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			c.upper = true
		case r >= 'a' && r <= 'z':
			c.lower = true
		case unicode.IsDigit(r):
			c.digit = true
		case strings.ContainsRune(SpecialCharacters, r):
			c.special = true
		}
	}
	return c
}

// symbols splits password into code points.  Each byte that is not part of
// valid UTF-8 becomes its own negative symbol, so distinct invalid bytes
// stay distinct and never collide with a real U+FFFD.
func symbols(password string) []rune {
	out := make([]rune, 0, len(password))
	for i := 0; i < len(password); {
		r, size := utf8.DecodeRuneInString(password[i:])
		if r == utf8.RuneError && size == 1 {
			r = -1 - rune(password[i])
		}
		out = append(out, r)
		i += size
	}
	return out
}

// hasRepeatedRun reports whether three identical code points appear
// consecutively anywhere in runes.
func hasRepeatedRun(runes []rune) bool {
	for i := 0; i+2 < len(runes); i++ {
		if runes[i] == runes[i+1] && runes[i+1] == runes[i+2] {
			return true
		}
	}
	return false
}

// hasSequentialPattern reports whether lower contains any of patterns as a
// substring.  patterns already includes the reversed motifs.
func hasSequentialPattern(lower string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

func reverse(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}
